package repositories

import (
	"context"

	"gorm.io/gorm"

	"torami_backend/internal/models"
)

type SponsorRepository interface {
	Create(ctx context.Context, sponsor *models.Sponsor) error
	FindByID(ctx context.Context, id string) (*models.Sponsor, error)
	FindAll(ctx context.Context) ([]models.Sponsor, error)
	Update(ctx context.Context, sponsor *models.Sponsor) error
	Delete(ctx context.Context, id string) error
}

type sponsorRepository struct {
	db *gorm.DB
}

func NewSponsorRepository(db *gorm.DB) SponsorRepository {
	return &sponsorRepository{db: db}
}

func (r *sponsorRepository) Create(ctx context.Context, sponsor *models.Sponsor) error {
	return r.db.WithContext(ctx).Create(sponsor).Error
}

func (r *sponsorRepository) FindByID(ctx context.Context, id string) (*models.Sponsor, error) {
	var sponsor models.Sponsor
	if err := r.db.WithContext(ctx).Where("id = ?", id).Take(&sponsor).Error; err != nil {
		return nil, err
	}
	return &sponsor, nil
}

func (r *sponsorRepository) FindAll(ctx context.Context) ([]models.Sponsor, error) {
	var sponsors []models.Sponsor
	err := r.db.WithContext(ctx).Order("name ASC").Find(&sponsors).Error
	return sponsors, err
}

func (r *sponsorRepository) Update(ctx context.Context, sponsor *models.Sponsor) error {
	return r.db.WithContext(ctx).Save(sponsor).Error
}

func (r *sponsorRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&models.Sponsor{}, "id = ?", id).Error
}
