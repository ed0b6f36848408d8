package services

import (
	"context"

	"torami_backend/internal/models"
	"torami_backend/internal/repositories"
	"torami_backend/internal/services/dto"
	"torami_backend/pkg/apperrors"
)

// validStampCodes maps venue codes to stamp types. Codes are printed on
// signage at the event; anything else is rejected.
var validStampCodes = map[string]string{
	"TORAMI-MAIN": "stage",
	"TORAMI-GAME": "gaming",
	"TORAMI-FOOD": "food",
	"TORAMI-SHOP": "merch",
}

type StampService interface {
	// Collect validates the code and registers the stamp for the user,
	// once per (user, code) pair.
	Collect(ctx context.Context, userID, code string) (*dto.CollectStampResponse, error)
	UserStamps(ctx context.Context, userID string) ([]models.Stamp, error)
}

type stampService struct {
	stamps repositories.StampRepository
}

func NewStampService(stamps repositories.StampRepository) StampService {
	return &stampService{stamps: stamps}
}

func (s *stampService) Collect(ctx context.Context, userID, code string) (*dto.CollectStampResponse, error) {
	stampType, ok := validStampCodes[code]
	if !ok {
		return nil, apperrors.ErrInvalidStampCode
	}

	stamp := &models.Stamp{
		UserID: userID,
		Code:   code,
		Type:   stampType,
	}
	if err := s.stamps.Create(ctx, stamp); err != nil {
		if repositories.IsDuplicateKey(err) {
			return nil, apperrors.ErrStampAlreadyCollected
		}
		return nil, err
	}

	collected, err := s.stamps.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &dto.CollectStampResponse{
		Stamp:     stamp,
		Message:   "Stamp collected successfully!",
		Total:     len(collected),
		Collected: collected,
	}, nil
}

func (s *stampService) UserStamps(ctx context.Context, userID string) ([]models.Stamp, error) {
	return s.stamps.FindByUser(ctx, userID)
}
