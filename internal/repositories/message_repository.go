package repositories

import (
	"context"

	"gorm.io/gorm"

	"torami_backend/internal/models"
)

// MessageRepository is the append-only conversation log. Append is a plain
// INSERT; the database assigns Seq, so two concurrent appends both land and
// end up totally ordered. There is no update or delete.
type MessageRepository interface {
	Append(ctx context.Context, msg *models.SubmissionMessage) error
	ListThread(ctx context.Context, kind models.SubmissionKind, submissionID string) ([]models.SubmissionMessage, error)
	CountThread(ctx context.Context, kind models.SubmissionKind, submissionID string) (int64, error)
}

type messageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) Append(ctx context.Context, msg *models.SubmissionMessage) error {
	return r.db.WithContext(ctx).Create(msg).Error
}

func (r *messageRepository) ListThread(ctx context.Context, kind models.SubmissionKind, submissionID string) ([]models.SubmissionMessage, error) {
	var msgs []models.SubmissionMessage
	err := r.db.WithContext(ctx).
		Where("kind = ? AND submission_id = ?", kind, submissionID).
		Order("seq ASC").
		Find(&msgs).Error
	return msgs, err
}

func (r *messageRepository) CountThread(ctx context.Context, kind models.SubmissionKind, submissionID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.SubmissionMessage{}).
		Where("kind = ? AND submission_id = ?", kind, submissionID).
		Count(&count).Error
	return count, err
}
