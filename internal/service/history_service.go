package service

import (
	"context"
	"fmt"

	"backend/internal/repository"
)

type HistoryRecordResponse struct {
	ID             string `json:"id"`
	Platform       string `json:"platform"`
	ShippingMode   string `json:"shipping_mode,omitempty"`
	Country        string `json:"country,omitempty"`
	ItemTitle      string `json:"item_title"`
	Category       string `json:"category"`
	PurchasePrice  string `json:"purchase_price"`
	SellPrice      string `json:"sell_price"`
	ProfitJPY      string `json:"profit_jpy"`
	MarginPercent  string `json:"margin_percent"`
	ROIPercent     string `json:"roi_percent"`
	DutyLocal      string `json:"duty_local"`
	ExchangeRate   string `json:"exchange_rate"`
	ExchangeMargin string `json:"exchange_margin"`
	CreatedAt      string `json:"created_at"`
}

type HistoryService interface {
	GetHistory(ctx context.Context, page, limit int, platform string) ([]HistoryRecordResponse, int64, error)
}

type historyService struct {
	historyRepo repository.CalculationHistoryRepository
}

func NewHistoryService(historyRepo repository.CalculationHistoryRepository) HistoryService {
	return &historyService{historyRepo: historyRepo}
}

// GetHistory retrieves recent calculation records, newest first.
func (s *historyService) GetHistory(ctx context.Context, page, limit int, platform string) ([]HistoryRecordResponse, int64, error) {
	records, total, err := s.historyRepo.List(ctx, page, limit, platform)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch calculation history: %w", err)
	}

	res := make([]HistoryRecordResponse, 0, len(records))
	for _, r := range records {
		res = append(res, HistoryRecordResponse{
			ID:             r.ID.String(),
			Platform:       r.Platform,
			ShippingMode:   r.ShippingMode,
			Country:        r.Country,
			ItemTitle:      r.ItemTitle,
			Category:       r.Category,
			PurchasePrice:  r.PurchasePrice.StringFixed(0),
			SellPrice:      r.SellPrice.StringFixed(2),
			ProfitJPY:      r.ProfitJPY.StringFixed(0),
			MarginPercent:  r.MarginPercent.StringFixed(2),
			ROIPercent:     r.ROIPercent.StringFixed(2),
			DutyLocal:      r.DutyLocal.StringFixed(2),
			ExchangeRate:   r.ExchangeRate.StringFixed(4),
			ExchangeMargin: r.ExchangeMargin.StringFixed(2),
			CreatedAt:      r.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}

	return res, total, nil
}
