package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"

	"torami_backend/internal/models"
)

type GalleryFilter struct {
	UserID       string
	ApprovedOnly bool
}

type GalleryRepository interface {
	Create(ctx context.Context, item *models.GalleryItem) error
	FindByID(ctx context.Context, id string) (*models.GalleryItem, error)
	FindAll(ctx context.Context, filter GalleryFilter) ([]models.GalleryItem, error)
	// UpdateModeration sets status and, when feedback is non-nil, feedback.
	UpdateModeration(ctx context.Context, id string, status models.GalleryStatus, feedback *string) error
	// UpdateDescription changes only the description column.
	UpdateDescription(ctx context.Context, id, description string) error
	Delete(ctx context.Context, id string) error
	CountByStatus(ctx context.Context, status models.GalleryStatus) (int64, error)
}

type galleryRepository struct {
	db *gorm.DB
}

func NewGalleryRepository(db *gorm.DB) GalleryRepository {
	return &galleryRepository{db: db}
}

func (r *galleryRepository) Create(ctx context.Context, item *models.GalleryItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *galleryRepository) FindByID(ctx context.Context, id string) (*models.GalleryItem, error) {
	var item models.GalleryItem
	if err := r.db.WithContext(ctx).Where("id = ?", id).Take(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *galleryRepository) FindAll(ctx context.Context, filter GalleryFilter) ([]models.GalleryItem, error) {
	q := r.db.WithContext(ctx).Model(&models.GalleryItem{})
	if filter.UserID != "" {
		q = q.Where("user_id = ?", filter.UserID)
	} else if filter.ApprovedOnly {
		q = q.Where("status = ?", models.GalleryStatusApproved)
	}

	var items []models.GalleryItem
	err := q.Order("created_at DESC").Find(&items).Error
	return items, err
}

func (r *galleryRepository) UpdateModeration(ctx context.Context, id string, status models.GalleryStatus, feedback *string) error {
	updates := map[string]interface{}{
		"status":     status,
		"updated_at": time.Now(),
	}
	if feedback != nil {
		updates["feedback"] = *feedback
	}
	return r.db.WithContext(ctx).
		Model(&models.GalleryItem{}).
		Where("id = ?", id).
		Updates(updates).Error
}

func (r *galleryRepository) UpdateDescription(ctx context.Context, id, description string) error {
	return r.db.WithContext(ctx).
		Model(&models.GalleryItem{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"description": description,
			"updated_at":  time.Now(),
		}).Error
}

func (r *galleryRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&models.GalleryItem{}, "id = ?", id).Error
}

func (r *galleryRepository) CountByStatus(ctx context.Context, status models.GalleryStatus) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.GalleryItem{}).
		Where("status = ?", status).
		Count(&count).Error
	return count, err
}
