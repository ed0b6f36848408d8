package repositories

import (
	"context"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"torami_backend/internal/models"
)

type AppConfigRepository interface {
	Find(ctx context.Context) (*models.AppConfig, error)
	// CreateDefault inserts the default singleton row. ON CONFLICT DO NOTHING
	// keeps concurrent get-or-create calls idempotent.
	CreateDefault(ctx context.Context) error
	Update(ctx context.Context, cfg *models.AppConfig) error
	DeleteAll(ctx context.Context) error
}

type appConfigRepository struct {
	db *gorm.DB
}

func NewAppConfigRepository(db *gorm.DB) AppConfigRepository {
	return &appConfigRepository{db: db}
}

func (r *appConfigRepository) Find(ctx context.Context) (*models.AppConfig, error) {
	var cfg models.AppConfig
	if err := r.db.WithContext(ctx).Where("id = ?", models.AppConfigID).Take(&cfg).Error; err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (r *appConfigRepository) CreateDefault(ctx context.Context) error {
	cfg := &models.AppConfig{
		ID:                models.AppConfigID,
		DonationsEnabled:  true,
		HomeGalleryImages: datatypes.JSON("[]"),
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(cfg).Error
}

func (r *appConfigRepository) Update(ctx context.Context, cfg *models.AppConfig) error {
	cfg.ID = models.AppConfigID
	return r.db.WithContext(ctx).Save(cfg).Error
}

func (r *appConfigRepository) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).
		Where("1 = 1").
		Delete(&models.AppConfig{}).Error
}
