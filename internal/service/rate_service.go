package service

import (
	"context"
	"fmt"
	"time"

	"backend/internal/model"
	"backend/internal/repository"

	"github.com/shopspring/decimal"
)

// --- DTOs ---

type UpsertRateRequest struct {
	FromCurrency string `json:"from_currency" binding:"required"`
	ToCurrency   string `json:"to_currency" binding:"required"`
	Rate         string `json:"rate" binding:"required"` // decimal string, e.g. "149.85"
	Source       string `json:"source"`
}

type RateResponse struct {
	FromCurrency string `json:"from_currency"`
	ToCurrency   string `json:"to_currency"`
	Rate         string `json:"rate"`
	Source       string `json:"source"`
	CreatedAt    string `json:"created_at"`
}

// --- Interface ---

type RateService interface {
	// Upsert appends a new observation of a pair; the resolver always reads
	// the newest row, so older observations stay as audit trail.
	Upsert(ctx context.Context, req UpsertRateRequest) (RateResponse, error)
	// List returns the current (newest) rate of every stored pair.
	List(ctx context.Context) ([]RateResponse, error)
}

type rateService struct {
	rateRepo repository.ExchangeRateRepository
}

func NewRateService(rateRepo repository.ExchangeRateRepository) RateService {
	return &rateService{rateRepo: rateRepo}
}

// --- Implementation ---

func (s *rateService) Upsert(ctx context.Context, req UpsertRateRequest) (RateResponse, error) {
	rate, err := decimal.NewFromString(req.Rate)
	if err != nil {
		return RateResponse{}, fmt.Errorf("invalid rate value: %w", err)
	}
	if !rate.IsPositive() {
		return RateResponse{}, fmt.Errorf("rate must be greater than zero")
	}

	source := req.Source
	if source == "" {
		source = "manual"
	}

	record := model.ExchangeRate{
		FromCurrency: req.FromCurrency,
		ToCurrency:   req.ToCurrency,
		Rate:         rate,
		Source:       source,
	}

	if err := s.rateRepo.Create(ctx, &record); err != nil {
		return RateResponse{}, fmt.Errorf("failed to store exchange rate: %w", err)
	}

	return toRateResponse(record), nil
}

func (s *rateService) List(ctx context.Context) ([]RateResponse, error) {
	rates, err := s.rateRepo.LatestPerPair(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list exchange rates: %w", err)
	}

	res := make([]RateResponse, 0, len(rates))
	for _, r := range rates {
		res = append(res, toRateResponse(r))
	}
	return res, nil
}

func toRateResponse(r model.ExchangeRate) RateResponse {
	return RateResponse{
		FromCurrency: r.FromCurrency,
		ToCurrency:   r.ToCurrency,
		Rate:         r.Rate.StringFixed(6),
		Source:       r.Source,
		CreatedAt:    r.CreatedAt.Format(time.RFC3339),
	}
}
