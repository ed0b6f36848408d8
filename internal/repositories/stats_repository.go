package repositories

import (
	"context"

	"gorm.io/gorm"

	"torami_backend/internal/models"
)

// PlatformStats is the admin dashboard summary.
type PlatformStats struct {
	Users            int64 `json:"users"`
	StandsPending    int64 `json:"standsPending"`
	StandsApproved   int64 `json:"standsApproved"`
	CosplayTotal     int64 `json:"cosplayTotal"`
	CosplayConfirmed int64 `json:"cosplayConfirmed"`
	GiveawaysActive  int64 `json:"giveawaysActive"`
	GalleryPending   int64 `json:"galleryPending"`
}

type StatsRepository interface {
	Collect(ctx context.Context) (*PlatformStats, error)
}

type statsRepository struct {
	db *gorm.DB
}

func NewStatsRepository(db *gorm.DB) StatsRepository {
	return &statsRepository{db: db}
}

func (r *statsRepository) Collect(ctx context.Context) (*PlatformStats, error) {
	db := r.db.WithContext(ctx)
	var stats PlatformStats

	counts := []struct {
		dest  *int64
		query *gorm.DB
	}{
		{&stats.Users, db.Model(&models.User{})},
		{&stats.StandsPending, db.Model(&models.StandApplication{}).Where("status = ?", models.StandStatusPending)},
		{&stats.StandsApproved, db.Model(&models.StandApplication{}).Where("status = ?", models.StandStatusApproved)},
		{&stats.CosplayTotal, db.Model(&models.CosplayRegistration{})},
		{&stats.CosplayConfirmed, db.Model(&models.CosplayRegistration{}).Where("status = ?", models.CosplayStatusConfirmed)},
		{&stats.GiveawaysActive, db.Model(&models.Giveaway{}).Where("status = ?", models.GiveawayStatusActive)},
		{&stats.GalleryPending, db.Model(&models.GalleryItem{}).Where("status = ?", models.GalleryStatusPending)},
	}

	for _, c := range counts {
		if err := c.query.Count(c.dest).Error; err != nil {
			return nil, err
		}
	}

	return &stats, nil
}
