package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"backend/internal/model"
	"backend/internal/repository"

	"gorm.io/gorm"
)

// ErrConfigNotFound is returned when no preset exists under the given name.
var ErrConfigNotFound = errors.New("config not found")

// --- DTOs ---

type SaveConfigRequest struct {
	ConfigName string          `json:"config_name" binding:"required"`
	Platform   string          `json:"platform" binding:"required,oneof=ebay_usa shopee"`
	ConfigData json.RawMessage `json:"config_data" binding:"required"`
}

type ConfigResponse struct {
	Name      string          `json:"name"`
	Platform  string          `json:"platform"`
	Data      json.RawMessage `json:"data"`
	CreatedAt string          `json:"created_at"`
	UpdatedAt string          `json:"updated_at"`
}

// --- Interface ---

type ConfigService interface {
	Save(ctx context.Context, req SaveConfigRequest) error
	Load(ctx context.Context, name string) (ConfigResponse, error)
	List(ctx context.Context, platform string) ([]ConfigResponse, error)
}

type configService struct {
	configRepo repository.CalcConfigRepository
}

func NewConfigService(configRepo repository.CalcConfigRepository) ConfigService {
	return &configService{configRepo: configRepo}
}

// --- Implementation ---

// Save upserts a preset by name. The payload is opaque at this layer; a
// concurrent save of the same name resolves to last writer wins.
func (s *configService) Save(ctx context.Context, req SaveConfigRequest) error {
	cfg := model.CalcConfig{
		Name:       req.ConfigName,
		Platform:   req.Platform,
		ConfigData: string(req.ConfigData),
	}

	if err := s.configRepo.Upsert(ctx, &cfg); err != nil {
		return fmt.Errorf("failed to save config '%s': %w", req.ConfigName, err)
	}
	return nil
}

func (s *configService) Load(ctx context.Context, name string) (ConfigResponse, error) {
	cfg, err := s.configRepo.FindByName(ctx, name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ConfigResponse{}, ErrConfigNotFound
		}
		return ConfigResponse{}, fmt.Errorf("failed to load config '%s': %w", name, err)
	}

	return toConfigResponse(*cfg), nil
}

func (s *configService) List(ctx context.Context, platform string) ([]ConfigResponse, error) {
	configs, err := s.configRepo.List(ctx, platform)
	if err != nil {
		return nil, fmt.Errorf("failed to list configs: %w", err)
	}

	res := make([]ConfigResponse, 0, len(configs))
	for _, c := range configs {
		res = append(res, toConfigResponse(c))
	}
	return res, nil
}

func toConfigResponse(c model.CalcConfig) ConfigResponse {
	return ConfigResponse{
		Name:      c.Name,
		Platform:  c.Platform,
		Data:      json.RawMessage(c.ConfigData),
		CreatedAt: c.CreatedAt.Format(time.RFC3339),
		UpdatedAt: c.UpdatedAt.Format(time.RFC3339),
	}
}
