package services

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"torami_backend/internal/models"
	"torami_backend/pkg/apperrors"
)

type fakeStampRepo struct {
	mu     sync.Mutex
	stamps map[string]*models.Stamp // keyed by userID/code
}

func newFakeStampRepo() *fakeStampRepo {
	return &fakeStampRepo{stamps: make(map[string]*models.Stamp)}
}

func (r *fakeStampRepo) Create(ctx context.Context, stamp *models.Stamp) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := stamp.UserID + "/" + stamp.Code
	if _, exists := r.stamps[key]; exists {
		return gorm.ErrDuplicatedKey
	}
	r.stamps[key] = stamp
	return nil
}

func (r *fakeStampRepo) FindByUser(ctx context.Context, userID string) ([]models.Stamp, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Stamp
	for _, s := range r.stamps {
		if s.UserID == userID {
			out = append(out, *s)
		}
	}
	return out, nil
}

func TestStampService_Collect(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("valid code collects once", func(t *testing.T) {
		svc := NewStampService(newFakeStampRepo())

		resp, err := svc.Collect(ctx, owner.UserID, "TORAMI-MAIN")
		require.NoError(t, err)
		assert.Equal(t, "stage", resp.Stamp.Type)
		assert.Equal(t, 1, resp.Total)

		_, err = svc.Collect(ctx, owner.UserID, "TORAMI-MAIN")
		assert.ErrorIs(t, err, apperrors.ErrStampAlreadyCollected)
	})

	t.Run("unknown code is rejected", func(t *testing.T) {
		svc := NewStampService(newFakeStampRepo())

		_, err := svc.Collect(ctx, owner.UserID, "TORAMI-FAKE")
		assert.ErrorIs(t, err, apperrors.ErrInvalidStampCode)

		stamps, err := svc.UserStamps(ctx, owner.UserID)
		require.NoError(t, err)
		assert.Empty(t, stamps)
	})

	t.Run("total grows across venues", func(t *testing.T) {
		svc := NewStampService(newFakeStampRepo())

		for _, code := range []string{"TORAMI-MAIN", "TORAMI-GAME", "TORAMI-FOOD", "TORAMI-SHOP"} {
			_, err := svc.Collect(ctx, owner.UserID, code)
			require.NoError(t, err)
		}

		stamps, err := svc.UserStamps(ctx, owner.UserID)
		require.NoError(t, err)
		assert.Len(t, stamps, 4)
	})

	t.Run("concurrent scans of the same code: one stamp", func(t *testing.T) {
		repo := newFakeStampRepo()
		svc := NewStampService(repo)

		const n = 8
		results := make(chan error, n)
		var wg sync.WaitGroup
		for i := 0; i < n; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := svc.Collect(ctx, owner.UserID, "TORAMI-GAME")
				results <- err
			}()
		}
		wg.Wait()
		close(results)

		var ok int
		for err := range results {
			if err == nil {
				ok++
			} else {
				assert.ErrorIs(t, err, apperrors.ErrStampAlreadyCollected)
			}
		}
		assert.Equal(t, 1, ok)
	})
}
