package services

import (
	"context"

	"torami_backend/internal/models"
	"torami_backend/internal/repositories"
	"torami_backend/internal/services/dto"
	"torami_backend/pkg/apperrors"
)

type StandService interface {
	Create(ctx context.Context, ownerID string, req *dto.CreateStandRequest) (*models.StandApplication, error)
	List(ctx context.Context, actor Actor) ([]models.StandApplication, error)
	ListByUser(ctx context.Context, actor Actor, userID string) ([]models.StandApplication, error)
	UpdateStatus(ctx context.Context, actor Actor, id string, req *dto.UpdateSubmissionStatusRequest) (*models.StandApplication, error)
	AddMessage(ctx context.Context, actor Actor, id string, req *dto.AddMessageRequest) (*models.SubmissionMessage, error)
	Messages(ctx context.Context, actor Actor, id string) ([]models.SubmissionMessage, error)
}

type standService struct {
	workflow *SubmissionWorkflow
	stands   repositories.StandRepository
}

func NewStandService(workflow *SubmissionWorkflow, stands repositories.StandRepository) StandService {
	return &standService{
		workflow: workflow,
		stands:   stands,
	}
}

func (s *standService) Create(ctx context.Context, ownerID string, req *dto.CreateStandRequest) (*models.StandApplication, error) {
	stand := &models.StandApplication{
		UserID:      ownerID,
		BrandName:   req.BrandName,
		Type:        req.Type,
		ContactName: req.ContactName,
		Email:       req.Email,
		Phone:       req.Phone,
		Socials:     req.Socials,
		Description: req.Description,
		Needs:       req.Needs,
		Images:      toJSONArray(req.Images),
		EventID:     req.EventID,
		Status:      models.StandStatusPending,
	}

	if err := s.stands.Create(ctx, stand); err != nil {
		return nil, err
	}
	return stand, nil
}

func (s *standService) List(ctx context.Context, actor Actor) ([]models.StandApplication, error) {
	if !actor.IsModerator() {
		return nil, apperrors.ErrInsufficientPermissions
	}
	return s.stands.FindAll(ctx)
}

func (s *standService) ListByUser(ctx context.Context, actor Actor, userID string) ([]models.StandApplication, error) {
	if !actor.CanActFor(userID) {
		return nil, apperrors.ErrInsufficientPermissions
	}
	return s.stands.FindByUser(ctx, userID)
}

// UpdateStatus runs the moderation action: approval is a bare transition,
// rejection goes through the orchestrated reject-with-reason path.
func (s *standService) UpdateStatus(ctx context.Context, actor Actor, id string, req *dto.UpdateSubmissionStatusRequest) (*models.StandApplication, error) {
	var err error
	switch req.Status {
	case s.workflow.Policy().Rejected:
		err = s.workflow.RejectWithReason(ctx, actor, id, req.Reason)
	default:
		err = s.workflow.Transition(ctx, actor, id, req.Status)
	}
	if err != nil {
		return nil, err
	}

	return s.stands.FindByID(ctx, id)
}

func (s *standService) AddMessage(ctx context.Context, actor Actor, id string, req *dto.AddMessageRequest) (*models.SubmissionMessage, error) {
	return s.workflow.AppendMessage(ctx, actor, id, req)
}

func (s *standService) Messages(ctx context.Context, actor Actor, id string) ([]models.SubmissionMessage, error) {
	return s.workflow.Messages(ctx, actor, id)
}
