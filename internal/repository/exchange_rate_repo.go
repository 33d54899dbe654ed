package repository

import (
	"context"

	"backend/internal/model"

	"gorm.io/gorm"
)

type ExchangeRateRepository interface {
	Create(ctx context.Context, rate *model.ExchangeRate) error
	// Latest returns the most recent stored rate for a currency pair, or
	// gorm.ErrRecordNotFound when none exists.
	Latest(ctx context.Context, from, to string) (*model.ExchangeRate, error)
	// LatestPerPair returns the newest stored rate of every currency pair.
	LatestPerPair(ctx context.Context) ([]model.ExchangeRate, error)
}

type exchangeRateRepository struct {
	db *gorm.DB
}

func NewExchangeRateRepository(db *gorm.DB) ExchangeRateRepository {
	return &exchangeRateRepository{db: db}
}

func (r *exchangeRateRepository) Create(ctx context.Context, rate *model.ExchangeRate) error {
	return r.db.WithContext(ctx).Create(rate).Error
}

func (r *exchangeRateRepository) Latest(ctx context.Context, from, to string) (*model.ExchangeRate, error) {
	var rate model.ExchangeRate
	if err := r.db.WithContext(ctx).
		Where("from_currency = ? AND to_currency = ?", from, to).
		Order("created_at DESC").
		First(&rate).Error; err != nil {
		return nil, err
	}
	return &rate, nil
}

func (r *exchangeRateRepository) LatestPerPair(ctx context.Context) ([]model.ExchangeRate, error) {
	var rates []model.ExchangeRate
	query := `
		SELECT DISTINCT ON (from_currency, to_currency) *
		FROM exchange_rates
		ORDER BY from_currency, to_currency, created_at DESC
	`
	if err := r.db.WithContext(ctx).Raw(query).Scan(&rates).Error; err != nil {
		return nil, err
	}
	return rates, nil
}
