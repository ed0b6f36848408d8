package services

import (
	"context"
	"fmt"

	"torami_backend/internal/email"
	"torami_backend/internal/logger"
	"torami_backend/internal/models"
	"torami_backend/internal/repositories"
	"torami_backend/internal/services/dto"
	"torami_backend/pkg/apperrors"
)

// rejectionNoticePrefix marks a thread message as the system-authored
// rejection explanation.
const rejectionNoticePrefix = "Rejection reason: "

// SubmissionPolicy parametrizes the moderated-submission workflow for one
// submission kind: which statuses exist and what the kind is called in
// errors and notifications.
type SubmissionPolicy struct {
	Kind     models.SubmissionKind
	Domain   string
	Label    string
	Initial  models.SubmissionStatus
	Approved models.SubmissionStatus
	Rejected models.SubmissionStatus
}

// IsTerminal reports whether status is one of the kind's terminal statuses.
func (p SubmissionPolicy) IsTerminal(status models.SubmissionStatus) bool {
	return status == p.Approved || status == p.Rejected
}

var StandPolicy = SubmissionPolicy{
	Kind:     models.SubmissionKindStand,
	Domain:   "stands",
	Label:    "stand application",
	Initial:  models.StandStatusPending,
	Approved: models.StandStatusApproved,
	Rejected: models.StandStatusRejected,
}

var CosplayPolicy = SubmissionPolicy{
	Kind:     models.SubmissionKindCosplay,
	Domain:   "cosplay",
	Label:    "cosplay registration",
	Initial:  models.CosplayStatusRegistered,
	Approved: models.CosplayStatusConfirmed,
	Rejected: models.CosplayStatusRejected,
}

// SubmissionWorkflow is the state machine, conversation thread, and
// moderation orchestrator shared by all submission kinds. Stand and cosplay
// services embed one instance each, parametrized by their policy.
type SubmissionWorkflow struct {
	policy   SubmissionPolicy
	subs     repositories.SubmissionRepository
	messages repositories.MessageRepository
	users    repositories.UserRepository
	mailer   email.Provider
}

func NewSubmissionWorkflow(
	policy SubmissionPolicy,
	subs repositories.SubmissionRepository,
	messages repositories.MessageRepository,
	users repositories.UserRepository,
	mailer email.Provider,
) *SubmissionWorkflow {
	return &SubmissionWorkflow{
		policy:   policy,
		subs:     subs,
		messages: messages,
		users:    users,
		mailer:   mailer,
	}
}

func (w *SubmissionWorkflow) Policy() SubmissionPolicy {
	return w.policy
}

func (w *SubmissionWorkflow) head(ctx context.Context, id string) (*repositories.SubmissionHead, error) {
	head, err := w.subs.Head(ctx, id)
	if err != nil {
		if repositories.IsNotFound(err) {
			return nil, apperrors.ErrNotFound(err, w.policy.Domain)
		}
		return nil, err
	}
	return head, nil
}

// Transition moves the submission from its initial status to target.
// Only moderators may transition; only terminal targets are legal; a
// submission that already reached a terminal status stays there.
func (w *SubmissionWorkflow) Transition(ctx context.Context, actor Actor, id string, target models.SubmissionStatus) error {
	if !actor.IsModerator() {
		return apperrors.ErrInsufficientPermissions
	}
	if !w.policy.IsTerminal(target) {
		return apperrors.ErrInvalidOperation(w.policy.Domain,
			fmt.Sprintf("status must be %q or %q", w.policy.Approved, w.policy.Rejected))
	}

	if _, err := w.head(ctx, id); err != nil {
		return err
	}

	// Conditional UPDATE: applies only while the row is still in the
	// initial status, so a concurrent decision cannot be overwritten.
	applied, err := w.subs.UpdateStatus(ctx, id, w.policy.Initial, target)
	if err != nil {
		return err
	}
	if !applied {
		return apperrors.ErrSubmissionDecided
	}

	logger.FromContext(ctx).Info("submission status changed",
		"kind", w.policy.Kind,
		"submission_id", id,
		"status", target,
	)
	return nil
}

// Approve transitions to the kind's positive terminal status. It never
// appends a message.
func (w *SubmissionWorkflow) Approve(ctx context.Context, actor Actor, id string) error {
	return w.Transition(ctx, actor, id, w.policy.Approved)
}

// RejectWithReason transitions to rejected and, when reason is non-empty,
// appends exactly one moderator notice carrying it. The two writes are
// independent: a crash after the transition leaves a rejection without its
// notice, which moderators can repair by posting the message again.
func (w *SubmissionWorkflow) RejectWithReason(ctx context.Context, actor Actor, id, reason string) error {
	if err := w.Transition(ctx, actor, id, w.policy.Rejected); err != nil {
		return err
	}

	if reason == "" {
		return nil
	}

	msg := &models.SubmissionMessage{
		Kind:         w.policy.Kind,
		SubmissionID: id,
		Sender:       models.MessageSenderModerator,
		Text:         rejectionNoticePrefix + reason,
	}
	if err := w.messages.Append(ctx, msg); err != nil {
		return err
	}
	if err := w.subs.Touch(ctx, id); err != nil {
		return err
	}

	w.notifyRejection(ctx, id, reason)
	return nil
}

// notifyRejection emails the owner about the rejection. Best effort only;
// the moderation call already succeeded.
func (w *SubmissionWorkflow) notifyRejection(ctx context.Context, id, reason string) {
	head, err := w.subs.Head(ctx, id)
	if err != nil {
		logger.CtxWithError(ctx, "rejection notice: failed to load submission", err, "submission_id", id)
		return
	}
	owner, err := w.users.FindByID(ctx, head.OwnerID)
	if err != nil {
		logger.CtxWithError(ctx, "rejection notice: failed to load owner", err, "user_id", head.OwnerID)
		return
	}

	msg := email.Message{
		To:      owner.Email,
		Subject: fmt.Sprintf("Your %s was reviewed", w.policy.Label),
		Body: fmt.Sprintf("Hi %s,\n\nYour %s was rejected.\n%s%s\n\nYou can reply to the moderators from your dashboard.",
			owner.Name, w.policy.Label, rejectionNoticePrefix, reason),
	}
	if err := w.mailer.Send(ctx, msg); err != nil {
		logger.CtxWithError(ctx, "rejection notice: email delivery failed", err, "user_id", head.OwnerID)
	}
}

// AppendMessage adds one message to the submission's thread. The sender tag
// must match the requester: OWNER messages only from the submission's owner,
// MODERATOR messages only from moderators.
func (w *SubmissionWorkflow) AppendMessage(ctx context.Context, actor Actor, id string, req *dto.AddMessageRequest) (*models.SubmissionMessage, error) {
	if req.Text == "" && req.AttachmentURL == nil {
		return nil, apperrors.ErrEmptyMessage
	}

	head, err := w.head(ctx, id)
	if err != nil {
		return nil, err
	}

	switch req.Sender {
	case models.MessageSenderOwner:
		if !actor.Owns(head.OwnerID) {
			return nil, apperrors.ErrSenderRoleMismatch
		}
	case models.MessageSenderModerator:
		if !actor.IsModerator() {
			return nil, apperrors.ErrSenderRoleMismatch
		}
	default:
		return nil, apperrors.ErrInvalidOperation(w.policy.Domain, "unknown message sender")
	}

	msg := &models.SubmissionMessage{
		Kind:          w.policy.Kind,
		SubmissionID:  id,
		Sender:        req.Sender,
		Text:          req.Text,
		AttachmentURL: req.AttachmentURL,
	}
	if err := w.messages.Append(ctx, msg); err != nil {
		return nil, err
	}
	if err := w.subs.Touch(ctx, id); err != nil {
		return nil, err
	}

	return msg, nil
}

// Messages returns the thread in append order. Readable by the owner and by
// moderators.
func (w *SubmissionWorkflow) Messages(ctx context.Context, actor Actor, id string) ([]models.SubmissionMessage, error) {
	head, err := w.head(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.CanActFor(head.OwnerID) {
		return nil, apperrors.ErrNotOwner
	}

	return w.messages.ListThread(ctx, w.policy.Kind, id)
}
