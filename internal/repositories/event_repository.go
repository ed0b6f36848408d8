package repositories

import (
	"context"

	"gorm.io/gorm"

	"torami_backend/internal/models"
)

type EventRepository interface {
	Create(ctx context.Context, event *models.Event) error
	FindByID(ctx context.Context, id string) (*models.Event, error)
	FindAll(ctx context.Context, upcomingOnly bool) ([]models.Event, error)
	Update(ctx context.Context, event *models.Event) error
	Delete(ctx context.Context, id string) error
}

type eventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) EventRepository {
	return &eventRepository{db: db}
}

func (r *eventRepository) Create(ctx context.Context, event *models.Event) error {
	return r.db.WithContext(ctx).Create(event).Error
}

func (r *eventRepository) FindByID(ctx context.Context, id string) (*models.Event, error) {
	var event models.Event
	if err := r.db.WithContext(ctx).Where("id = ?", id).Take(&event).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *eventRepository) FindAll(ctx context.Context, upcomingOnly bool) ([]models.Event, error) {
	q := r.db.WithContext(ctx).Model(&models.Event{})
	if upcomingOnly {
		q = q.Where("is_past = ?", false)
	}

	var events []models.Event
	err := q.Order("date ASC").Find(&events).Error
	return events, err
}

func (r *eventRepository) Update(ctx context.Context, event *models.Event) error {
	return r.db.WithContext(ctx).Save(event).Error
}

func (r *eventRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&models.Event{}, "id = ?", id).Error
}
