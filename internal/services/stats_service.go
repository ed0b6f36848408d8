package services

import (
	"context"

	"torami_backend/internal/repositories"
	"torami_backend/pkg/apperrors"
)

type StatsService interface {
	Platform(ctx context.Context, actor Actor) (*repositories.PlatformStats, error)
}

type statsService struct {
	stats repositories.StatsRepository
}

func NewStatsService(stats repositories.StatsRepository) StatsService {
	return &statsService{stats: stats}
}

func (s *statsService) Platform(ctx context.Context, actor Actor) (*repositories.PlatformStats, error) {
	if !actor.IsModerator() {
		return nil, apperrors.ErrInsufficientPermissions
	}
	return s.stats.Collect(ctx)
}
