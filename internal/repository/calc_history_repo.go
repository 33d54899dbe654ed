package repository

import (
	"context"

	"backend/internal/model"

	"gorm.io/gorm"
)

type CalculationHistoryRepository interface {
	// Append writes one history record. Records are never updated or deleted.
	Append(ctx context.Context, record *model.CalculationHistory) error
	// List returns records newest first with the total count, optionally
	// filtered by platform.
	List(ctx context.Context, page, limit int, platform string) ([]model.CalculationHistory, int64, error)
}

type calculationHistoryRepository struct {
	db *gorm.DB
}

func NewCalculationHistoryRepository(db *gorm.DB) CalculationHistoryRepository {
	return &calculationHistoryRepository{db: db}
}

func (r *calculationHistoryRepository) Append(ctx context.Context, record *model.CalculationHistory) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *calculationHistoryRepository) List(ctx context.Context, page, limit int, platform string) ([]model.CalculationHistory, int64, error) {
	var records []model.CalculationHistory
	var total int64

	query := r.db.WithContext(ctx).Model(&model.CalculationHistory{})
	if platform != "" {
		query = query.Where("platform = ?", platform)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := query.Order("created_at desc").Offset(offset).Limit(limit).Find(&records).Error; err != nil {
		return nil, 0, err
	}

	return records, total, nil
}
