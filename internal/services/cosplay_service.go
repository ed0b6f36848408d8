package services

import (
	"context"

	"torami_backend/internal/models"
	"torami_backend/internal/repositories"
	"torami_backend/internal/services/dto"
	"torami_backend/pkg/apperrors"
)

type CosplayService interface {
	Create(ctx context.Context, ownerID string, req *dto.CreateCosplayRequest) (*models.CosplayRegistration, error)
	List(ctx context.Context, actor Actor) ([]models.CosplayRegistration, error)
	ListByUser(ctx context.Context, actor Actor, userID string) ([]models.CosplayRegistration, error)
	UpdateStatus(ctx context.Context, actor Actor, id string, req *dto.UpdateSubmissionStatusRequest) (*models.CosplayRegistration, error)
	AddMessage(ctx context.Context, actor Actor, id string, req *dto.AddMessageRequest) (*models.SubmissionMessage, error)
	Messages(ctx context.Context, actor Actor, id string) ([]models.SubmissionMessage, error)
}

type cosplayService struct {
	workflow *SubmissionWorkflow
	regs     repositories.CosplayRepository
}

func NewCosplayService(workflow *SubmissionWorkflow, regs repositories.CosplayRepository) CosplayService {
	return &cosplayService{
		workflow: workflow,
		regs:     regs,
	}
}

func (s *cosplayService) Create(ctx context.Context, ownerID string, req *dto.CreateCosplayRequest) (*models.CosplayRegistration, error) {
	reg := &models.CosplayRegistration{
		UserID:          ownerID,
		ParticipantName: req.ParticipantName,
		Nickname:        req.Nickname,
		Whatsapp:        req.Whatsapp,
		CharacterName:   req.CharacterName,
		SeriesName:      req.SeriesName,
		Category:        req.Category,
		ReferenceImage:  req.ReferenceImage,
		AudioLink:       req.AudioLink,
		Status:          models.CosplayStatusRegistered,
	}

	if err := s.regs.Create(ctx, reg); err != nil {
		return nil, err
	}
	return reg, nil
}

func (s *cosplayService) List(ctx context.Context, actor Actor) ([]models.CosplayRegistration, error) {
	if !actor.IsModerator() {
		return nil, apperrors.ErrInsufficientPermissions
	}
	return s.regs.FindAll(ctx)
}

func (s *cosplayService) ListByUser(ctx context.Context, actor Actor, userID string) ([]models.CosplayRegistration, error) {
	if !actor.CanActFor(userID) {
		return nil, apperrors.ErrInsufficientPermissions
	}
	return s.regs.FindByUser(ctx, userID)
}

func (s *cosplayService) UpdateStatus(ctx context.Context, actor Actor, id string, req *dto.UpdateSubmissionStatusRequest) (*models.CosplayRegistration, error) {
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

	return s.regs.FindByID(ctx, id)
}

func (s *cosplayService) AddMessage(ctx context.Context, actor Actor, id string, req *dto.AddMessageRequest) (*models.SubmissionMessage, error) {
	return s.workflow.AppendMessage(ctx, actor, id, req)
}

func (s *cosplayService) Messages(ctx context.Context, actor Actor, id string) ([]models.SubmissionMessage, error) {
	return s.workflow.Messages(ctx, actor, id)
}
