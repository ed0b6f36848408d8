package services

import (
	"context"

	"torami_backend/internal/models"
	"torami_backend/internal/repositories"
	"torami_backend/internal/services/dto"
)

// AppConfigService owns the app-wide configuration singleton.
type AppConfigService interface {
	// GetOrCreate returns the configuration row, creating the default one
	// on first access. Safe to call concurrently.
	GetOrCreate(ctx context.Context) (*models.AppConfig, error)
	Update(ctx context.Context, req *dto.UpdateConfigRequest) (*models.AppConfig, error)
	// Reset drops the row and recreates the defaults.
	Reset(ctx context.Context) (*models.AppConfig, error)
}

type appConfigService struct {
	configs repositories.AppConfigRepository
}

func NewAppConfigService(configs repositories.AppConfigRepository) AppConfigService {
	return &appConfigService{configs: configs}
}

func (s *appConfigService) GetOrCreate(ctx context.Context) (*models.AppConfig, error) {
	cfg, err := s.configs.Find(ctx)
	if err == nil {
		return cfg, nil
	}
	if !repositories.IsNotFound(err) {
		return nil, err
	}

	// First access: insert defaults. ON CONFLICT DO NOTHING in the
	// repository makes a concurrent first access harmless.
	if err := s.configs.CreateDefault(ctx); err != nil {
		return nil, err
	}
	return s.configs.Find(ctx)
}

func (s *appConfigService) Update(ctx context.Context, req *dto.UpdateConfigRequest) (*models.AppConfig, error) {
	cfg, err := s.GetOrCreate(ctx)
	if err != nil {
		return nil, err
	}

	if req.DonationsEnabled != nil {
		cfg.DonationsEnabled = *req.DonationsEnabled
	}
	if req.HomeGalleryImages != nil {
		cfg.HomeGalleryImages = toJSONArray(req.HomeGalleryImages)
	}

	if err := s.configs.Update(ctx, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (s *appConfigService) Reset(ctx context.Context) (*models.AppConfig, error) {
	if err := s.configs.DeleteAll(ctx); err != nil {
		return nil, err
	}
	if err := s.configs.CreateDefault(ctx); err != nil {
		return nil, err
	}
	return s.configs.Find(ctx)
}
