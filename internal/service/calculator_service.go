package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"backend/internal/model"
	"backend/internal/pricing"
	"backend/internal/repository"
	"backend/internal/websocket"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// --- DTOs ---

// CalculationFormula is the rendered explanation of one calculation,
// built from the engine's breakdown rows.
type CalculationFormula struct {
	Title string   `json:"title"`
	Steps []string `json:"steps"`
}

// CalculationResponse is the success envelope for one calculation.
type CalculationResponse struct {
	Success            bool                       `json:"success"`
	Platform           string                     `json:"platform"`
	ShippingMode       string                     `json:"shipping_mode,omitempty"`
	Country            string                     `json:"country,omitempty"`
	CalculationFormula CalculationFormula         `json:"calculation_formula"`
	Data               *pricing.CalculationResult `json:"data"`
	Timestamp          string                     `json:"timestamp"`
}

// --- Interface ---

type CalculatorService interface {
	Calculate(ctx context.Context, req pricing.CalculationRequest) (*CalculationResponse, error)
}

type calculatorService struct {
	rateRepo    repository.ExchangeRateRepository
	historyRepo repository.CalculationHistoryRepository
	hub         *websocket.Hub
}

// NewCalculatorService wires the engine to its stored reference data, the
// history log and the live feed. hub may be nil when no feed is attached.
func NewCalculatorService(rateRepo repository.ExchangeRateRepository, historyRepo repository.CalculationHistoryRepository, hub *websocket.Hub) CalculatorService {
	return &calculatorService{rateRepo: rateRepo, historyRepo: historyRepo, hub: hub}
}

// --- Implementation ---

func (s *calculatorService) Calculate(ctx context.Context, req pricing.CalculationRequest) (*CalculationResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	snap := s.resolveRate(ctx, req)

	result, err := pricing.Calculate(req, snap)
	if err != nil {
		return nil, err
	}

	// Best-effort side effects: the result is already final, a failure here
	// must not reach the caller.
	s.appendHistory(ctx, req, result)
	s.broadcast(req, result)

	return &CalculationResponse{
		Success:            true,
		Platform:           req.Platform,
		ShippingMode:       req.ShippingMode,
		Country:            req.Country,
		CalculationFormula: buildFormula(req, result),
		Data:               result,
		Timestamp:          time.Now().Format(time.RFC3339),
	}, nil
}

// resolveRate fetches the most recent stored rate for the marketplace
// currency, falling back to the platform default when none is stored.
// A missing or unreachable store is recoverable, never an error.
func (s *calculatorService) resolveRate(ctx context.Context, req pricing.CalculationRequest) pricing.RateSnapshot {
	currency := "USD"
	fallback := decimal.NewFromFloat(pricing.DefaultUSDJPYRate)

	if req.Platform == pricing.PlatformShopee {
		// Country already validated
		profile, _ := pricing.CountryProfileFor(req.Country)
		currency = profile.Currency
		fallback = profile.BaseRate
	}

	stored, err := s.rateRepo.Latest(ctx, currency, "JPY")
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("exchange rate lookup failed for %s/JPY, using default: %v", currency, err)
		}
		return pricing.RateSnapshot{BaseRate: fallback, Source: pricing.RateSourceDefault}
	}

	return pricing.RateSnapshot{BaseRate: stored.Rate, Source: pricing.RateSourceStored}
}

func (s *calculatorService) appendHistory(ctx context.Context, req pricing.CalculationRequest, result *pricing.CalculationResult) {
	record := model.CalculationHistory{
		Platform:       req.Platform,
		ShippingMode:   req.ShippingMode,
		Country:        req.Country,
		ItemTitle:      req.ItemTitle,
		Category:       req.Category,
		PurchasePrice:  req.PurchasePrice,
		SellPrice:      req.SellPrice,
		Shipping:       req.Shipping,
		ProfitJPY:      result.ProfitJPY,
		MarginPercent:  result.MarginPercent,
		ROIPercent:     result.ROIPercent,
		DutyLocal:      result.DutyLocal,
		FeesLocal:      result.FeesLocal,
		OutsourceFee:   req.AdditionalCosts.OutsourceFee,
		PackagingFee:   req.AdditionalCosts.PackagingFee,
		ExchangeMargin: req.AdditionalCosts.ExchangeMargin,
		ExchangeRate:   result.ExchangeRate,
	}

	if err := s.historyRepo.Append(ctx, &record); err != nil {
		log.Printf("failed to append calculation history for '%s': %v", req.ItemTitle, err)
	}
}

func (s *calculatorService) broadcast(req pricing.CalculationRequest, result *pricing.CalculationResult) {
	if s.hub == nil {
		return
	}

	msg, err := json.Marshal(map[string]interface{}{
		"type":           "calculation",
		"platform":       req.Platform,
		"item_title":     req.ItemTitle,
		"profit_jpy":     result.ProfitJPY,
		"margin_percent": result.MarginPercent,
		"roi_percent":    result.ROIPercent,
	})
	if err != nil {
		return
	}
	s.hub.Broadcast <- msg
}

func buildFormula(req pricing.CalculationRequest, result *pricing.CalculationResult) CalculationFormula {
	var title string
	switch req.Platform {
	case pricing.PlatformEbayUSA:
		title = fmt.Sprintf("eBay USA (%s) landed-cost calculation", req.ShippingMode)
	case pricing.PlatformShopee:
		profile, _ := pricing.CountryProfileFor(req.Country)
		title = fmt.Sprintf("Shopee %s landed-cost calculation", profile.Name)
	}

	steps := make([]string, 0, len(result.Details))
	for _, row := range result.Details {
		step := fmt.Sprintf("%s: %s", row.Label, row.Amount)
		if row.Formula != "" && row.Formula != "0" {
			step += fmt.Sprintf(" = %s", row.Formula)
		}
		if row.Note != "" {
			step += fmt.Sprintf(" (%s)", row.Note)
		}
		steps = append(steps, step)
	}

	return CalculationFormula{Title: title, Steps: steps}
}
