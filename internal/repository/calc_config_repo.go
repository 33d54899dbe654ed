package repository

import (
	"context"

	"backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CalcConfigRepository interface {
	// Upsert inserts the preset or, on a name conflict, overwrites platform
	// and payload (last writer wins, updated_at refreshed).
	Upsert(ctx context.Context, cfg *model.CalcConfig) error
	FindByName(ctx context.Context, name string) (*model.CalcConfig, error)
	// List returns presets newest-updated first, optionally filtered by platform.
	List(ctx context.Context, platform string) ([]model.CalcConfig, error)
}

type calcConfigRepository struct {
	db *gorm.DB
}

func NewCalcConfigRepository(db *gorm.DB) CalcConfigRepository {
	return &calcConfigRepository{db: db}
}

func (r *calcConfigRepository) Upsert(ctx context.Context, cfg *model.CalcConfig) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"platform", "config_data", "updated_at"}),
	}).Create(cfg).Error
}

func (r *calcConfigRepository) FindByName(ctx context.Context, name string) (*model.CalcConfig, error) {
	var cfg model.CalcConfig
	if err := r.db.WithContext(ctx).First(&cfg, "name = ?", name).Error; err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (r *calcConfigRepository) List(ctx context.Context, platform string) ([]model.CalcConfig, error) {
	var configs []model.CalcConfig
	query := r.db.WithContext(ctx).Order("updated_at DESC")
	if platform != "" {
		query = query.Where("platform = ?", platform)
	}
	if err := query.Find(&configs).Error; err != nil {
		return nil, err
	}
	return configs, nil
}
