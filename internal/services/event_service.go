package services

import (
	"context"

	"torami_backend/internal/models"
	"torami_backend/internal/repositories"
	"torami_backend/internal/services/dto"
	"torami_backend/pkg/apperrors"
)

type EventService interface {
	Create(ctx context.Context, req *dto.CreateEventRequest) (*models.Event, error)
	Get(ctx context.Context, id string) (*models.Event, error)
	List(ctx context.Context, upcomingOnly bool) ([]models.Event, error)
	Update(ctx context.Context, id string, req *dto.UpdateEventRequest) (*models.Event, error)
	Delete(ctx context.Context, id string) error
}

type eventService struct {
	events repositories.EventRepository
}

func NewEventService(events repositories.EventRepository) EventService {
	return &eventService{events: events}
}

func (s *eventService) Create(ctx context.Context, req *dto.CreateEventRequest) (*models.Event, error) {
	event := &models.Event{
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		Location:    req.Location,
		Tags:        toJSONArray(req.Tags),
		Images:      toJSONArray(req.Images),
	}

	if err := s.events.Create(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

func (s *eventService) Get(ctx context.Context, id string) (*models.Event, error) {
	event, err := s.events.FindByID(ctx, id)
	if err != nil {
		if repositories.IsNotFound(err) {
			return nil, apperrors.ErrNotFound(err, "events")
		}
		return nil, err
	}
	return event, nil
}

func (s *eventService) List(ctx context.Context, upcomingOnly bool) ([]models.Event, error) {
	return s.events.FindAll(ctx, upcomingOnly)
}

func (s *eventService) Update(ctx context.Context, id string, req *dto.UpdateEventRequest) (*models.Event, error) {
	event, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		event.Title = *req.Title
	}
	if req.Description != nil {
		event.Description = *req.Description
	}
	if req.Date != nil {
		event.Date = *req.Date
	}
	if req.Location != nil {
		event.Location = *req.Location
	}
	if req.Tags != nil {
		event.Tags = toJSONArray(req.Tags)
	}
	if req.Images != nil {
		event.Images = toJSONArray(req.Images)
	}
	if req.IsPast != nil {
		event.IsPast = *req.IsPast
	}

	if err := s.events.Update(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

func (s *eventService) Delete(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.events.Delete(ctx, id)
}
