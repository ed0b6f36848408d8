package services

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"torami_backend/internal/models"
	"torami_backend/internal/repositories"
	"torami_backend/internal/services/dto"
	"torami_backend/pkg/apperrors"
)

type fakeGalleryRepo struct {
	mu    sync.Mutex
	items map[string]*models.GalleryItem
}

func newFakeGalleryRepo() *fakeGalleryRepo {
	return &fakeGalleryRepo{items: make(map[string]*models.GalleryItem)}
}

func (r *fakeGalleryRepo) Create(ctx context.Context, item *models.GalleryItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if item.ID == "" {
		item.ID = fmt.Sprintf("item-%d", len(r.items)+1)
	}
	copied := *item
	r.items[item.ID] = &copied
	return nil
}

func (r *fakeGalleryRepo) FindByID(ctx context.Context, id string) (*models.GalleryItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	item, ok := r.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *item
	return &copied, nil
}

func (r *fakeGalleryRepo) FindAll(ctx context.Context, filter repositories.GalleryFilter) ([]models.GalleryItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.GalleryItem
	for _, item := range r.items {
		if filter.UserID != "" && item.UserID != filter.UserID {
			continue
		}
		if filter.UserID == "" && filter.ApprovedOnly && item.Status != models.GalleryStatusApproved {
			continue
		}
		out = append(out, *item)
	}
	return out, nil
}

func (r *fakeGalleryRepo) UpdateModeration(ctx context.Context, id string, status models.GalleryStatus, feedback *string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	item, ok := r.items[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	item.Status = status
	if feedback != nil {
		item.Feedback = feedback
	}
	item.UpdatedAt = time.Now()
	return nil
}

func (r *fakeGalleryRepo) UpdateDescription(ctx context.Context, id, description string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	item, ok := r.items[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	item.Description = description
	item.UpdatedAt = time.Now()
	return nil
}

func (r *fakeGalleryRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.items, id)
	return nil
}

func (r *fakeGalleryRepo) CountByStatus(ctx context.Context, status models.GalleryStatus) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var count int64
	for _, item := range r.items {
		if item.Status == status {
			count++
		}
	}
	return count, nil
}

func TestGalleryService_Moderation(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	setup := func(t *testing.T) (GalleryService, string) {
		t.Helper()
		svc := NewGalleryService(newFakeGalleryRepo())
		item, err := svc.Create(ctx, owner.UserID, &dto.CreateGalleryItemRequest{
			URL:         "https://cdn.torami.test/photo.jpg",
			Description: "group shot",
		})
		require.NoError(t, err)
		return svc, item.ID
	}

	t.Run("new items always start pending", func(t *testing.T) {
		svc, id := setup(t)
		item, err := svc.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, models.GalleryStatusPending, item.Status)
	})

	t.Run("only moderators moderate", func(t *testing.T) {
		svc, id := setup(t)
		_, err := svc.Moderate(ctx, owner, id, &dto.ModerateGalleryItemRequest{Status: models.GalleryStatusApproved})
		assert.ErrorIs(t, err, apperrors.ErrInsufficientPermissions)
	})

	t.Run("reject stores feedback, approve leaves it", func(t *testing.T) {
		svc, id := setup(t)

		feedback := "faces are blurred, please re-upload"
		item, err := svc.Moderate(ctx, moderator, id, &dto.ModerateGalleryItemRequest{
			Status:   models.GalleryStatusRejected,
			Feedback: &feedback,
		})
		require.NoError(t, err)
		assert.Equal(t, models.GalleryStatusRejected, item.Status)
		require.NotNil(t, item.Feedback)
		assert.Equal(t, feedback, *item.Feedback)

		// Approving later without feedback keeps the old note around.
		item, err = svc.Moderate(ctx, moderator, id, &dto.ModerateGalleryItemRequest{Status: models.GalleryStatusApproved})
		require.NoError(t, err)
		assert.Equal(t, models.GalleryStatusApproved, item.Status)
		require.NotNil(t, item.Feedback)
		assert.Equal(t, feedback, *item.Feedback)
	})

	t.Run("re-approving an approved item is a no-op, not an error", func(t *testing.T) {
		svc, id := setup(t)

		_, err := svc.Moderate(ctx, moderator, id, &dto.ModerateGalleryItemRequest{Status: models.GalleryStatusApproved})
		require.NoError(t, err)
		item, err := svc.Moderate(ctx, moderator, id, &dto.ModerateGalleryItemRequest{Status: models.GalleryStatusApproved})
		require.NoError(t, err)
		assert.Equal(t, models.GalleryStatusApproved, item.Status)
	})
}

func TestGalleryService_UpdateDescription(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc := NewGalleryService(newFakeGalleryRepo())
	item, err := svc.Create(ctx, owner.UserID, &dto.CreateGalleryItemRequest{
		URL: "https://cdn.torami.test/cosplay.jpg",
	})
	require.NoError(t, err)

	feedback := "wrong event tag"
	_, err = svc.Moderate(ctx, moderator, item.ID, &dto.ModerateGalleryItemRequest{
		Status:   models.GalleryStatusRejected,
		Feedback: &feedback,
	})
	require.NoError(t, err)

	t.Run("owner edits description in any status", func(t *testing.T) {
		updated, err := svc.UpdateDescription(ctx, owner, item.ID, &dto.UpdateGalleryDescriptionRequest{
			Description: "fixed the tag",
		})
		require.NoError(t, err)
		assert.Equal(t, "fixed the tag", updated.Description)
		// The edit never touches moderation state.
		assert.Equal(t, models.GalleryStatusRejected, updated.Status)
		require.NotNil(t, updated.Feedback)
		assert.Equal(t, feedback, *updated.Feedback)
	})

	t.Run("non-owner cannot edit, moderator included", func(t *testing.T) {
		_, err := svc.UpdateDescription(ctx, stranger, item.ID, &dto.UpdateGalleryDescriptionRequest{Description: "x"})
		assert.ErrorIs(t, err, apperrors.ErrNotOwner)

		_, err = svc.UpdateDescription(ctx, moderator, item.ID, &dto.UpdateGalleryDescriptionRequest{Description: "x"})
		assert.ErrorIs(t, err, apperrors.ErrNotOwner)
	})
}

func TestGalleryService_Listing(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc := NewGalleryService(newFakeGalleryRepo())

	mine, err := svc.Create(ctx, owner.UserID, &dto.CreateGalleryItemRequest{URL: "https://cdn.torami.test/a.jpg"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, stranger.UserID, &dto.CreateGalleryItemRequest{URL: "https://cdn.torami.test/b.jpg"})
	require.NoError(t, err)

	_, err = svc.Moderate(ctx, moderator, mine.ID, &dto.ModerateGalleryItemRequest{Status: models.GalleryStatusApproved})
	require.NoError(t, err)

	t.Run("public feed contains approved items only", func(t *testing.T) {
		items, err := svc.ListPublic(ctx)
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, mine.ID, items[0].ID)
	})

	t.Run("own listing includes pending and rejected", func(t *testing.T) {
		items, err := svc.ListByUser(ctx, stranger, stranger.UserID)
		require.NoError(t, err)
		assert.Len(t, items, 1)
	})

	t.Run("listing someone else's items needs moderator", func(t *testing.T) {
		_, err := svc.ListByUser(ctx, stranger, owner.UserID)
		assert.ErrorIs(t, err, apperrors.ErrInsufficientPermissions)

		items, err := svc.ListByUser(ctx, moderator, owner.UserID)
		require.NoError(t, err)
		assert.Len(t, items, 1)
	})

	t.Run("moderation queue needs moderator", func(t *testing.T) {
		_, err := svc.ListAll(ctx, owner)
		assert.ErrorIs(t, err, apperrors.ErrInsufficientPermissions)

		items, err := svc.ListAll(ctx, moderator)
		require.NoError(t, err)
		assert.Len(t, items, 2)
	})

	t.Run("hard delete removes the record", func(t *testing.T) {
		require.NoError(t, svc.HardDelete(ctx, moderator, mine.ID))
		_, err := svc.Get(ctx, mine.ID)
		assert.Error(t, err)
	})
}
