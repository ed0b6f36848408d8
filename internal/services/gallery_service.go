package services

import (
	"context"

	"torami_backend/internal/logger"
	"torami_backend/internal/models"
	"torami_backend/internal/repositories"
	"torami_backend/internal/services/dto"
	"torami_backend/pkg/apperrors"
)

type GalleryService interface {
	Create(ctx context.Context, ownerID string, req *dto.CreateGalleryItemRequest) (*models.GalleryItem, error)
	Get(ctx context.Context, id string) (*models.GalleryItem, error)
	// ListPublic returns approved items only.
	ListPublic(ctx context.Context) ([]models.GalleryItem, error)
	ListByUser(ctx context.Context, actor Actor, userID string) ([]models.GalleryItem, error)
	// ListAll is the moderation queue: every item, any status.
	ListAll(ctx context.Context, actor Actor) ([]models.GalleryItem, error)
	Moderate(ctx context.Context, actor Actor, id string, req *dto.ModerateGalleryItemRequest) (*models.GalleryItem, error)
	UpdateDescription(ctx context.Context, actor Actor, id string, req *dto.UpdateGalleryDescriptionRequest) (*models.GalleryItem, error)
	HardDelete(ctx context.Context, actor Actor, id string) error
}

type galleryService struct {
	items repositories.GalleryRepository
}

func NewGalleryService(items repositories.GalleryRepository) GalleryService {
	return &galleryService{items: items}
}

func (s *galleryService) Create(ctx context.Context, ownerID string, req *dto.CreateGalleryItemRequest) (*models.GalleryItem, error) {
	item := &models.GalleryItem{
		UserID:      ownerID,
		EventID:     req.EventID,
		URL:         req.URL,
		Description: req.Description,
		// New items always start pending, whatever the caller sends.
		Status: models.GalleryStatusPending,
	}

	if err := s.items.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *galleryService) Get(ctx context.Context, id string) (*models.GalleryItem, error) {
	item, err := s.items.FindByID(ctx, id)
	if err != nil {
		if repositories.IsNotFound(err) {
			return nil, apperrors.ErrNotFound(err, "gallery")
		}
		return nil, err
	}
	return item, nil
}

func (s *galleryService) ListPublic(ctx context.Context) ([]models.GalleryItem, error) {
	return s.items.FindAll(ctx, repositories.GalleryFilter{ApprovedOnly: true})
}

func (s *galleryService) ListByUser(ctx context.Context, actor Actor, userID string) ([]models.GalleryItem, error) {
	if !actor.CanActFor(userID) {
		return nil, apperrors.ErrInsufficientPermissions
	}
	return s.items.FindAll(ctx, repositories.GalleryFilter{UserID: userID})
}

func (s *galleryService) ListAll(ctx context.Context, actor Actor) ([]models.GalleryItem, error) {
	if !actor.IsModerator() {
		return nil, apperrors.ErrInsufficientPermissions
	}
	return s.items.FindAll(ctx, repositories.GalleryFilter{})
}

// Moderate sets the item's status and, when provided, feedback. Re-approving
// an approved item is allowed; it just re-asserts the state. Feedback from a
// previous rejection is left in place unless the new action overwrites it.
func (s *galleryService) Moderate(ctx context.Context, actor Actor, id string, req *dto.ModerateGalleryItemRequest) (*models.GalleryItem, error) {
	if !actor.IsModerator() {
		return nil, apperrors.ErrInsufficientPermissions
	}

	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}

	if req.Status == models.GalleryStatusRejected && (req.Feedback == nil || *req.Feedback == "") {
		// Empty-feedback rejections are legal but worth noticing.
		logger.CtxWarn(ctx, "gallery item rejected without feedback", "item_id", id)
	}

	if err := s.items.UpdateModeration(ctx, id, req.Status, req.Feedback); err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

// UpdateDescription is the owner's only edit path. It never touches status
// or feedback, in any status including rejected.
func (s *galleryService) UpdateDescription(ctx context.Context, actor Actor, id string, req *dto.UpdateGalleryDescriptionRequest) (*models.GalleryItem, error) {
	item, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.Owns(item.UserID) {
		return nil, apperrors.ErrNotOwner
	}

	if err := s.items.UpdateDescription(ctx, id, req.Description); err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

// HardDelete permanently removes the item. Distinct from rejection: the
// record is gone, not marked.
func (s *galleryService) HardDelete(ctx context.Context, actor Actor, id string) error {
	if !actor.IsModerator() {
		return apperrors.ErrInsufficientPermissions
	}

	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.items.Delete(ctx, id)
}
