package repositories

import (
	"context"

	"gorm.io/gorm"

	"torami_backend/internal/models"
)

type GiveawayRepository interface {
	Create(ctx context.Context, g *models.Giveaway) error
	FindByID(ctx context.Context, id string) (*models.Giveaway, error)
	FindAll(ctx context.Context) ([]models.Giveaway, error)
	Update(ctx context.Context, g *models.Giveaway) error
	Delete(ctx context.Context, id string) error
	// AddParticipant inserts the (user, giveaway) row. The composite unique
	// index makes a concurrent duplicate fail atomically; callers check the
	// error with IsDuplicateKey.
	AddParticipant(ctx context.Context, p *models.GiveawayParticipant) error
	FindByParticipant(ctx context.Context, userID string) ([]models.Giveaway, error)
	CountParticipants(ctx context.Context, giveawayID string) (int64, error)
	CountByStatus(ctx context.Context, status models.GiveawayStatus) (int64, error)
}

type giveawayRepository struct {
	db *gorm.DB
}

func NewGiveawayRepository(db *gorm.DB) GiveawayRepository {
	return &giveawayRepository{db: db}
}

func (r *giveawayRepository) Create(ctx context.Context, g *models.Giveaway) error {
	return r.db.WithContext(ctx).Create(g).Error
}

func (r *giveawayRepository) FindByID(ctx context.Context, id string) (*models.Giveaway, error) {
	var g models.Giveaway
	err := r.db.WithContext(ctx).
		Preload("Participants").
		Where("id = ?", id).
		Take(&g).Error
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *giveawayRepository) FindAll(ctx context.Context) ([]models.Giveaway, error) {
	var giveaways []models.Giveaway
	err := r.db.WithContext(ctx).
		Preload("Participants").
		Order("created_at DESC").
		Find(&giveaways).Error
	return giveaways, err
}

func (r *giveawayRepository) Update(ctx context.Context, g *models.Giveaway) error {
	return r.db.WithContext(ctx).Save(g).Error
}

func (r *giveawayRepository) Delete(ctx context.Context, id string) error {
	// Participants go with the giveaway (FK cascade).
	return r.db.WithContext(ctx).Delete(&models.Giveaway{}, "id = ?", id).Error
}

func (r *giveawayRepository) AddParticipant(ctx context.Context, p *models.GiveawayParticipant) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *giveawayRepository) FindByParticipant(ctx context.Context, userID string) ([]models.Giveaway, error) {
	var giveaways []models.Giveaway
	err := r.db.WithContext(ctx).
		Joins("JOIN giveaway_participants gp ON gp.giveaway_id = giveaways.id").
		Where("gp.user_id = ?", userID).
		Preload("Participants").
		Order("giveaways.created_at DESC").
		Find(&giveaways).Error
	return giveaways, err
}

func (r *giveawayRepository) CountParticipants(ctx context.Context, giveawayID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.GiveawayParticipant{}).
		Where("giveaway_id = ?", giveawayID).
		Count(&count).Error
	return count, err
}

func (r *giveawayRepository) CountByStatus(ctx context.Context, status models.GiveawayStatus) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Giveaway{}).
		Where("status = ?", status).
		Count(&count).Error
	return count, err
}
