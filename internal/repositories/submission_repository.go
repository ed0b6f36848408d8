package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"

	"torami_backend/internal/models"
)

// SubmissionHead is the slice of a submission the workflow needs to decide
// authorization and legality of a move: who owns it and where it stands.
type SubmissionHead struct {
	ID      string                  `gorm:"column:id"`
	OwnerID string                  `gorm:"column:user_id"`
	Status  models.SubmissionStatus `gorm:"column:status"`
}

// SubmissionRepository is the kind-agnostic persistence surface of the
// moderated-submission workflow. Both stand and cosplay repositories
// implement it over their own tables.
type SubmissionRepository interface {
	Head(ctx context.Context, id string) (*SubmissionHead, error)
	// UpdateStatus applies the transition only if the current status still
	// equals from (conditional UPDATE). Returns false when no row matched,
	// i.e. the submission moved or never was in `from`.
	UpdateStatus(ctx context.Context, id string, from, to models.SubmissionStatus) (bool, error)
	// Touch bumps the submission's updated_at, marking the record as changed
	// after a thread append.
	Touch(ctx context.Context, id string) error
}

// submissionRepository implements SubmissionRepository for a concrete GORM
// model; model must be a pointer to the kind's struct type.
type submissionRepository struct {
	db    *gorm.DB
	model interface{}
}

func (r *submissionRepository) Head(ctx context.Context, id string) (*SubmissionHead, error) {
	var head SubmissionHead
	err := r.db.WithContext(ctx).
		Model(r.model).
		Select("id", "user_id", "status").
		Where("id = ?", id).
		Take(&head).Error
	if err != nil {
		return nil, err
	}
	return &head, nil
}

func (r *submissionRepository) UpdateStatus(ctx context.Context, id string, from, to models.SubmissionStatus) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(r.model).
		Where("id = ? AND status = ?", id, from).
		Updates(map[string]interface{}{
			"status":     to,
			"updated_at": time.Now(),
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *submissionRepository) Touch(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Model(r.model).
		Where("id = ?", id).
		Update("updated_at", time.Now()).Error
}

// --- Stand applications ---

type StandRepository interface {
	SubmissionRepository
	Create(ctx context.Context, stand *models.StandApplication) error
	FindByID(ctx context.Context, id string) (*models.StandApplication, error)
	FindAll(ctx context.Context) ([]models.StandApplication, error)
	FindByUser(ctx context.Context, userID string) ([]models.StandApplication, error)
}

type standRepository struct {
	submissionRepository
}

func NewStandRepository(db *gorm.DB) StandRepository {
	return &standRepository{
		submissionRepository: submissionRepository{db: db, model: &models.StandApplication{}},
	}
}

func (r *standRepository) Create(ctx context.Context, stand *models.StandApplication) error {
	return r.db.WithContext(ctx).Create(stand).Error
}

func (r *standRepository) FindByID(ctx context.Context, id string) (*models.StandApplication, error) {
	var stand models.StandApplication
	if err := r.db.WithContext(ctx).Where("id = ?", id).Take(&stand).Error; err != nil {
		return nil, err
	}
	return &stand, nil
}

func (r *standRepository) FindAll(ctx context.Context) ([]models.StandApplication, error) {
	var stands []models.StandApplication
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&stands).Error
	return stands, err
}

func (r *standRepository) FindByUser(ctx context.Context, userID string) ([]models.StandApplication, error) {
	var stands []models.StandApplication
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at DESC").Find(&stands).Error
	return stands, err
}

// --- Cosplay registrations ---

type CosplayRepository interface {
	SubmissionRepository
	Create(ctx context.Context, reg *models.CosplayRegistration) error
	FindByID(ctx context.Context, id string) (*models.CosplayRegistration, error)
	FindAll(ctx context.Context) ([]models.CosplayRegistration, error)
	FindByUser(ctx context.Context, userID string) ([]models.CosplayRegistration, error)
}

type cosplayRepository struct {
	submissionRepository
}

func NewCosplayRepository(db *gorm.DB) CosplayRepository {
	return &cosplayRepository{
		submissionRepository: submissionRepository{db: db, model: &models.CosplayRegistration{}},
	}
}

func (r *cosplayRepository) Create(ctx context.Context, reg *models.CosplayRegistration) error {
	return r.db.WithContext(ctx).Create(reg).Error
}

func (r *cosplayRepository) FindByID(ctx context.Context, id string) (*models.CosplayRegistration, error) {
	var reg models.CosplayRegistration
	if err := r.db.WithContext(ctx).Where("id = ?", id).Take(&reg).Error; err != nil {
		return nil, err
	}
	return &reg, nil
}

func (r *cosplayRepository) FindAll(ctx context.Context) ([]models.CosplayRegistration, error) {
	var regs []models.CosplayRegistration
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&regs).Error
	return regs, err
}

func (r *cosplayRepository) FindByUser(ctx context.Context, userID string) ([]models.CosplayRegistration, error) {
	var regs []models.CosplayRegistration
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at DESC").Find(&regs).Error
	return regs, err
}
