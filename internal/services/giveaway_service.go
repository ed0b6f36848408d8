package services

import (
	"context"

	"torami_backend/internal/logger"
	"torami_backend/internal/models"
	"torami_backend/internal/repositories"
	"torami_backend/internal/services/dto"
	"torami_backend/pkg/apperrors"
)

type GiveawayService interface {
	Create(ctx context.Context, actor Actor, req *dto.CreateGiveawayRequest) (*models.Giveaway, error)
	Get(ctx context.Context, id string) (*models.Giveaway, error)
	List(ctx context.Context) ([]models.Giveaway, error)
	Update(ctx context.Context, actor Actor, id string, req *dto.UpdateGiveawayRequest) (*models.Giveaway, error)
	Delete(ctx context.Context, actor Actor, id string) error
	// Join registers the user as a participant, exactly once per
	// (user, giveaway) pair.
	Join(ctx context.Context, actor Actor, giveawayID string) (*models.Giveaway, error)
	UserGiveaways(ctx context.Context, userID string) ([]models.Giveaway, error)
}

type giveawayService struct {
	giveaways repositories.GiveawayRepository
}

func NewGiveawayService(giveaways repositories.GiveawayRepository) GiveawayService {
	return &giveawayService{giveaways: giveaways}
}

func (s *giveawayService) Create(ctx context.Context, actor Actor, req *dto.CreateGiveawayRequest) (*models.Giveaway, error) {
	if !actor.IsModerator() {
		return nil, apperrors.ErrInsufficientPermissions
	}

	g := &models.Giveaway{
		Title:       req.Title,
		Description: req.Description,
		Prize:       req.Prize,
		Images:      toJSONArray(req.Images),
		Status:      models.GiveawayStatusActive,
		EndsAt:      req.EndsAt,
	}

	if err := s.giveaways.Create(ctx, g); err != nil {
		return nil, err
	}
	return g, nil
}

func (s *giveawayService) Get(ctx context.Context, id string) (*models.Giveaway, error) {
	g, err := s.giveaways.FindByID(ctx, id)
	if err != nil {
		if repositories.IsNotFound(err) {
			return nil, apperrors.ErrNotFound(err, "giveaway")
		}
		return nil, err
	}
	return g, nil
}

func (s *giveawayService) List(ctx context.Context) ([]models.Giveaway, error) {
	return s.giveaways.FindAll(ctx)
}

func (s *giveawayService) Update(ctx context.Context, actor Actor, id string, req *dto.UpdateGiveawayRequest) (*models.Giveaway, error) {
	if !actor.IsModerator() {
		return nil, apperrors.ErrInsufficientPermissions
	}

	g, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		g.Title = *req.Title
	}
	if req.Description != nil {
		g.Description = *req.Description
	}
	if req.Prize != nil {
		g.Prize = *req.Prize
	}
	if req.Images != nil {
		g.Images = toJSONArray(req.Images)
	}
	if req.Status != nil {
		g.Status = *req.Status
	}
	if req.EndsAt != nil {
		g.EndsAt = req.EndsAt
	}

	if err := s.giveaways.Update(ctx, g); err != nil {
		return nil, err
	}
	return g, nil
}

func (s *giveawayService) Delete(ctx context.Context, actor Actor, id string) error {
	if !actor.IsModerator() {
		return apperrors.ErrInsufficientPermissions
	}

	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.giveaways.Delete(ctx, id)
}

func (s *giveawayService) Join(ctx context.Context, actor Actor, giveawayID string) (*models.Giveaway, error) {
	g, err := s.Get(ctx, giveawayID)
	if err != nil {
		return nil, err
	}

	if g.Status != models.GiveawayStatusActive {
		return nil, apperrors.ErrGiveawayClosed
	}

	participant := &models.GiveawayParticipant{
		UserID:     actor.UserID,
		GiveawayID: giveawayID,
	}
	if err := s.giveaways.AddParticipant(ctx, participant); err != nil {
		// The unique index decides the race: whoever inserts second gets
		// the constraint violation, never a silent overwrite.
		if repositories.IsDuplicateKey(err) {
			return nil, apperrors.ErrDuplicateParticipation
		}
		return nil, err
	}

	logger.FromContext(ctx).Info("giveaway joined",
		"giveaway_id", giveawayID,
		"user_id", actor.UserID,
	)
	return s.Get(ctx, giveawayID)
}

func (s *giveawayService) UserGiveaways(ctx context.Context, userID string) ([]models.Giveaway, error) {
	return s.giveaways.FindByParticipant(ctx, userID)
}
