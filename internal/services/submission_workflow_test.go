package services

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"torami_backend/internal/email"
	"torami_backend/internal/models"
	"torami_backend/internal/repositories"
	"torami_backend/internal/services/dto"
	"torami_backend/pkg/apperrors"
)

// --- in-memory fakes ---

type fakeSubmissionRepo struct {
	mu    sync.Mutex
	heads map[string]*repositories.SubmissionHead
}

func newFakeSubmissionRepo() *fakeSubmissionRepo {
	return &fakeSubmissionRepo{heads: make(map[string]*repositories.SubmissionHead)}
}

func (r *fakeSubmissionRepo) add(id, ownerID string, status models.SubmissionStatus) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.heads[id] = &repositories.SubmissionHead{ID: id, OwnerID: ownerID, Status: status}
}

func (r *fakeSubmissionRepo) status(id string) models.SubmissionStatus {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.heads[id].Status
}

func (r *fakeSubmissionRepo) Head(ctx context.Context, id string) (*repositories.SubmissionHead, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	head, ok := r.heads[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *head
	return &copied, nil
}

func (r *fakeSubmissionRepo) UpdateStatus(ctx context.Context, id string, from, to models.SubmissionStatus) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	head, ok := r.heads[id]
	if !ok || head.Status != from {
		return false, nil
	}
	head.Status = to
	return true, nil
}

func (r *fakeSubmissionRepo) Touch(ctx context.Context, id string) error {
	return nil
}

type fakeMessageRepo struct {
	mu   sync.Mutex
	seq  int64
	msgs []models.SubmissionMessage
}

func (r *fakeMessageRepo) Append(ctx context.Context, msg *models.SubmissionMessage) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	msg.Seq = r.seq
	r.msgs = append(r.msgs, *msg)
	return nil
}

func (r *fakeMessageRepo) ListThread(ctx context.Context, kind models.SubmissionKind, submissionID string) ([]models.SubmissionMessage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.SubmissionMessage
	for _, m := range r.msgs {
		if m.Kind == kind && m.SubmissionID == submissionID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *fakeMessageRepo) CountThread(ctx context.Context, kind models.SubmissionKind, submissionID string) (int64, error) {
	msgs, _ := r.ListThread(ctx, kind, submissionID)
	return int64(len(msgs)), nil
}

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*models.User)}
}

func (r *fakeUserRepo) add(user *models.User) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[user.ID] = user
}

func (r *fakeUserRepo) Create(ctx context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == user.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	if user.ID == "" {
		user.ID = fmt.Sprintf("user-%d", len(r.users)+1)
	}
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) FindByID(ctx context.Context, id string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (r *fakeUserRepo) FindByEmail(ctx context.Context, emailAddr string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == emailAddr {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) Count(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.users)), nil
}

type fakeMailer struct {
	mu   sync.Mutex
	sent []email.Message
}

func (m *fakeMailer) Send(ctx context.Context, msg email.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, msg)
	return nil
}

func (m *fakeMailer) sentCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sent)
}

// --- fixtures ---

var (
	owner     = Actor{UserID: "owner-1", Role: models.UserRoleUser}
	stranger  = Actor{UserID: "someone-else", Role: models.UserRoleUser}
	moderator = Actor{UserID: "mod-1", Role: models.UserRoleAdmin}
)

type workflowFixture struct {
	subs     *fakeSubmissionRepo
	messages *fakeMessageRepo
	users    *fakeUserRepo
	mailer   *fakeMailer
	workflow *SubmissionWorkflow
}

func newWorkflowFixture(t *testing.T, policy SubmissionPolicy) *workflowFixture {
	t.Helper()

	subs := newFakeSubmissionRepo()
	messages := &fakeMessageRepo{}
	users := newFakeUserRepo()
	mailer := &fakeMailer{}

	users.add(&models.User{
		BaseModel: models.BaseModel{ID: owner.UserID},
		Name:      "Owner",
		Email:     "owner@torami.test",
		Role:      models.UserRoleUser,
	})

	return &workflowFixture{
		subs:     subs,
		messages: messages,
		users:    users,
		mailer:   mailer,
		workflow: NewSubmissionWorkflow(policy, subs, messages, users, mailer),
	}
}

// --- tests ---

func TestSubmissionWorkflow_Transition(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("non-moderator cannot transition", func(t *testing.T) {
		f := newWorkflowFixture(t, StandPolicy)
		f.subs.add("s1", owner.UserID, StandPolicy.Initial)

		err := f.workflow.Transition(ctx, owner, "s1", StandPolicy.Approved)
		assert.ErrorIs(t, err, apperrors.ErrInsufficientPermissions)
		assert.Equal(t, StandPolicy.Initial, f.subs.status("s1"))
	})

	t.Run("target must be terminal", func(t *testing.T) {
		f := newWorkflowFixture(t, StandPolicy)
		f.subs.add("s1", owner.UserID, StandPolicy.Initial)

		err := f.workflow.Transition(ctx, moderator, "s1", StandPolicy.Initial)
		require.Error(t, err)

		var appErr *apperrors.AppError
		require.True(t, apperrors.As(err, &appErr))
		assert.Equal(t, apperrors.CodeInvalidOperation, appErr.Code)
	})

	t.Run("unknown submission", func(t *testing.T) {
		f := newWorkflowFixture(t, StandPolicy)

		err := f.workflow.Transition(ctx, moderator, "missing", StandPolicy.Approved)
		require.Error(t, err)

		var appErr *apperrors.AppError
		require.True(t, apperrors.As(err, &appErr))
		assert.Equal(t, apperrors.CodeNotFound, appErr.Code)
	})

	t.Run("terminal status is final", func(t *testing.T) {
		f := newWorkflowFixture(t, StandPolicy)
		f.subs.add("s1", owner.UserID, StandPolicy.Initial)

		require.NoError(t, f.workflow.Approve(ctx, moderator, "s1"))

		// Second decision loses, in either direction.
		err := f.workflow.Transition(ctx, moderator, "s1", StandPolicy.Rejected)
		assert.ErrorIs(t, err, apperrors.ErrSubmissionDecided)
		err = f.workflow.Approve(ctx, moderator, "s1")
		assert.ErrorIs(t, err, apperrors.ErrSubmissionDecided)
		assert.Equal(t, StandPolicy.Approved, f.subs.status("s1"))
	})

	t.Run("concurrent decisions: exactly one wins", func(t *testing.T) {
		f := newWorkflowFixture(t, CosplayPolicy)
		f.subs.add("c1", owner.UserID, CosplayPolicy.Initial)

		const n = 16
		results := make(chan error, n)
		var wg sync.WaitGroup
		for i := 0; i < n; i++ {
			target := CosplayPolicy.Approved
			if i%2 == 1 {
				target = CosplayPolicy.Rejected
			}
			wg.Add(1)
			go func(target models.SubmissionStatus) {
				defer wg.Done()
				results <- f.workflow.Transition(ctx, moderator, "c1", target)
			}(target)
		}
		wg.Wait()
		close(results)

		var wins, losses int
		for err := range results {
			switch {
			case err == nil:
				wins++
			case apperrors.Is(err, apperrors.ErrSubmissionDecided):
				losses++
			default:
				t.Fatalf("unexpected error: %v", err)
			}
		}
		assert.Equal(t, 1, wins)
		assert.Equal(t, n-1, losses)
	})
}

func TestSubmissionWorkflow_RejectWithReason(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("reason becomes one moderator notice", func(t *testing.T) {
		f := newWorkflowFixture(t, StandPolicy)
		f.subs.add("s1", owner.UserID, StandPolicy.Initial)

		require.NoError(t, f.workflow.RejectWithReason(ctx, moderator, "s1", "incomplete booth layout"))

		assert.Equal(t, StandPolicy.Rejected, f.subs.status("s1"))

		msgs, err := f.messages.ListThread(ctx, StandPolicy.Kind, "s1")
		require.NoError(t, err)
		require.Len(t, msgs, 1)
		assert.Equal(t, models.MessageSenderModerator, msgs[0].Sender)
		assert.Equal(t, "Rejection reason: incomplete booth layout", msgs[0].Text)

		assert.Equal(t, 1, f.mailer.sentCount())
	})

	t.Run("empty reason appends nothing", func(t *testing.T) {
		f := newWorkflowFixture(t, StandPolicy)
		f.subs.add("s1", owner.UserID, StandPolicy.Initial)

		require.NoError(t, f.workflow.RejectWithReason(ctx, moderator, "s1", ""))

		assert.Equal(t, StandPolicy.Rejected, f.subs.status("s1"))
		count, _ := f.messages.CountThread(ctx, StandPolicy.Kind, "s1")
		assert.Zero(t, count)
		assert.Zero(t, f.mailer.sentCount())
	})

	t.Run("already decided: no notice, no mail", func(t *testing.T) {
		f := newWorkflowFixture(t, StandPolicy)
		f.subs.add("s1", owner.UserID, StandPolicy.Approved)

		err := f.workflow.RejectWithReason(ctx, moderator, "s1", "too late")
		assert.ErrorIs(t, err, apperrors.ErrSubmissionDecided)

		count, _ := f.messages.CountThread(ctx, StandPolicy.Kind, "s1")
		assert.Zero(t, count)
		assert.Zero(t, f.mailer.sentCount())
	})
}

func TestSubmissionWorkflow_AppendMessage(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	ownerMsg := func(text string) *dto.AddMessageRequest {
		return &dto.AddMessageRequest{Sender: models.MessageSenderOwner, Text: text}
	}
	modMsg := func(text string) *dto.AddMessageRequest {
		return &dto.AddMessageRequest{Sender: models.MessageSenderModerator, Text: text}
	}

	t.Run("sender tag must match requester", func(t *testing.T) {
		f := newWorkflowFixture(t, StandPolicy)
		f.subs.add("s1", owner.UserID, StandPolicy.Initial)

		// Owner posting as OWNER: fine.
		_, err := f.workflow.AppendMessage(ctx, owner, "s1", ownerMsg("hello"))
		assert.NoError(t, err)

		// Moderator posting as MODERATOR: fine.
		_, err = f.workflow.AppendMessage(ctx, moderator, "s1", modMsg("hi"))
		assert.NoError(t, err)

		// Owner claiming to be a moderator: rejected.
		_, err = f.workflow.AppendMessage(ctx, owner, "s1", modMsg("fake"))
		assert.ErrorIs(t, err, apperrors.ErrSenderRoleMismatch)

		// Unrelated user posting as OWNER: rejected.
		_, err = f.workflow.AppendMessage(ctx, stranger, "s1", ownerMsg("not mine"))
		assert.ErrorIs(t, err, apperrors.ErrSenderRoleMismatch)

		// Moderator posting as OWNER of someone else's thread: rejected.
		_, err = f.workflow.AppendMessage(ctx, moderator, "s1", ownerMsg("impersonation"))
		assert.ErrorIs(t, err, apperrors.ErrSenderRoleMismatch)

		count, _ := f.messages.CountThread(ctx, StandPolicy.Kind, "s1")
		assert.EqualValues(t, 2, count)
	})

	t.Run("message must carry text or attachment", func(t *testing.T) {
		f := newWorkflowFixture(t, StandPolicy)
		f.subs.add("s1", owner.UserID, StandPolicy.Initial)

		_, err := f.workflow.AppendMessage(ctx, owner, "s1", ownerMsg(""))
		assert.ErrorIs(t, err, apperrors.ErrEmptyMessage)

		url := "https://cdn.torami.test/file.png"
		_, err = f.workflow.AppendMessage(ctx, owner, "s1", &dto.AddMessageRequest{
			Sender:        models.MessageSenderOwner,
			AttachmentURL: &url,
		})
		assert.NoError(t, err)
	})

	t.Run("thread stays usable after decision", func(t *testing.T) {
		f := newWorkflowFixture(t, StandPolicy)
		f.subs.add("s1", owner.UserID, StandPolicy.Initial)
		require.NoError(t, f.workflow.RejectWithReason(ctx, moderator, "s1", "missing info"))

		_, err := f.workflow.AppendMessage(ctx, owner, "s1", ownerMsg("here is the info"))
		assert.NoError(t, err)
	})

	t.Run("concurrent appends all land in order", func(t *testing.T) {
		f := newWorkflowFixture(t, StandPolicy)
		f.subs.add("s1", owner.UserID, StandPolicy.Initial)

		const n = 20
		var wg sync.WaitGroup
		for i := 0; i < n; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				_, err := f.workflow.AppendMessage(ctx, owner, "s1", ownerMsg(fmt.Sprintf("msg %d", i)))
				assert.NoError(t, err)
			}(i)
		}
		wg.Wait()

		msgs, err := f.workflow.Messages(ctx, owner, "s1")
		require.NoError(t, err)
		require.Len(t, msgs, n)
		for i := 1; i < len(msgs); i++ {
			assert.Greater(t, msgs[i].Seq, msgs[i-1].Seq, "thread must be strictly ordered")
		}
	})
}

func TestSubmissionWorkflow_Messages(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	f := newWorkflowFixture(t, CosplayPolicy)
	f.subs.add("c1", owner.UserID, CosplayPolicy.Initial)
	_, err := f.workflow.AppendMessage(ctx, owner, "c1", &dto.AddMessageRequest{
		Sender: models.MessageSenderOwner,
		Text:   "is wig swap allowed?",
	})
	require.NoError(t, err)

	t.Run("owner reads own thread", func(t *testing.T) {
		msgs, err := f.workflow.Messages(ctx, owner, "c1")
		require.NoError(t, err)
		assert.Len(t, msgs, 1)
	})

	t.Run("moderator reads any thread", func(t *testing.T) {
		msgs, err := f.workflow.Messages(ctx, moderator, "c1")
		require.NoError(t, err)
		assert.Len(t, msgs, 1)
	})

	t.Run("stranger is rejected", func(t *testing.T) {
		_, err := f.workflow.Messages(ctx, stranger, "c1")
		assert.ErrorIs(t, err, apperrors.ErrNotOwner)
	})
}
