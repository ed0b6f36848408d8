package repositories

import (
	"context"

	"gorm.io/gorm"

	"torami_backend/internal/models"
)

type StampRepository interface {
	// Create inserts the stamp; a duplicate (user, code) pair fails on the
	// composite unique index.
	Create(ctx context.Context, stamp *models.Stamp) error
	FindByUser(ctx context.Context, userID string) ([]models.Stamp, error)
}

type stampRepository struct {
	db *gorm.DB
}

func NewStampRepository(db *gorm.DB) StampRepository {
	return &stampRepository{db: db}
}

func (r *stampRepository) Create(ctx context.Context, stamp *models.Stamp) error {
	return r.db.WithContext(ctx).Create(stamp).Error
}

func (r *stampRepository) FindByUser(ctx context.Context, userID string) ([]models.Stamp, error) {
	var stamps []models.Stamp
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&stamps).Error
	return stamps, err
}
