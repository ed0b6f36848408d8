package services

import (
	"context"

	"torami_backend/internal/models"
	"torami_backend/internal/repositories"
	"torami_backend/internal/services/dto"
	"torami_backend/pkg/apperrors"
)

type SponsorService interface {
	Create(ctx context.Context, req *dto.CreateSponsorRequest) (*models.Sponsor, error)
	Get(ctx context.Context, id string) (*models.Sponsor, error)
	List(ctx context.Context) ([]models.Sponsor, error)
	Update(ctx context.Context, id string, req *dto.UpdateSponsorRequest) (*models.Sponsor, error)
	Delete(ctx context.Context, id string) error
}

type sponsorService struct {
	sponsors repositories.SponsorRepository
}

func NewSponsorService(sponsors repositories.SponsorRepository) SponsorService {
	return &sponsorService{sponsors: sponsors}
}

func (s *sponsorService) Create(ctx context.Context, req *dto.CreateSponsorRequest) (*models.Sponsor, error) {
	sponsor := &models.Sponsor{
		Name:    req.Name,
		LogoURL: req.LogoURL,
		Tier:    req.Tier,
		WebURL:  req.WebURL,
	}

	if err := s.sponsors.Create(ctx, sponsor); err != nil {
		return nil, err
	}
	return sponsor, nil
}

func (s *sponsorService) Get(ctx context.Context, id string) (*models.Sponsor, error) {
	sponsor, err := s.sponsors.FindByID(ctx, id)
	if err != nil {
		if repositories.IsNotFound(err) {
			return nil, apperrors.ErrNotFound(err, "sponsors")
		}
		return nil, err
	}
	return sponsor, nil
}

func (s *sponsorService) List(ctx context.Context) ([]models.Sponsor, error) {
	return s.sponsors.FindAll(ctx)
}

func (s *sponsorService) Update(ctx context.Context, id string, req *dto.UpdateSponsorRequest) (*models.Sponsor, error) {
	sponsor, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		sponsor.Name = *req.Name
	}
	if req.LogoURL != nil {
		sponsor.LogoURL = *req.LogoURL
	}
	if req.Tier != nil {
		sponsor.Tier = *req.Tier
	}
	if req.WebURL != nil {
		sponsor.WebURL = *req.WebURL
	}

	if err := s.sponsors.Update(ctx, sponsor); err != nil {
		return nil, err
	}
	return sponsor, nil
}

func (s *sponsorService) Delete(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.sponsors.Delete(ctx, id)
}
