package apperrors

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_Wrapping(t *testing.T) {
	t.Parallel()

	cause := errors.New("row not found")
	appErr := ErrNotFound(cause, "stands")

	assert.Equal(t, CodeNotFound, appErr.Code)
	assert.Equal(t, http.StatusNotFound, appErr.HTTPCode)
	assert.ErrorIs(t, appErr, cause)

	var unwrapped *AppError
	require.True(t, As(appErr, &unwrapped))
	assert.Equal(t, "stands", unwrapped.Domain)
}

func TestAppError_SentinelIdentity(t *testing.T) {
	t.Parallel()

	// Sentinels compare by identity so services can return them directly
	// and callers can errors.Is on them.
	assert.ErrorIs(t, error(ErrSubmissionDecided), ErrSubmissionDecided)
	assert.NotErrorIs(t, error(ErrSubmissionDecided), ErrGiveawayClosed)
}

func TestAppError_JSONHidesInternals(t *testing.T) {
	t.Parallel()

	appErr := Wrap(errors.New("pq: secret dsn detail"), CodeDatabaseError, "stands", "Database error", http.StatusInternalServerError)
	data, err := json.Marshal(appErr)
	require.NoError(t, err)

	assert.NotContains(t, string(data), "secret dsn detail")
	assert.Contains(t, string(data), "DATABASE_ERROR")
}

func TestHandleError_StatusMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"not found", ErrNotFound(errors.New("miss"), "gallery"), http.StatusNotFound},
		{"forbidden", ErrInsufficientPermissions, http.StatusForbidden},
		{"already decided", ErrSubmissionDecided, http.StatusConflict},
		{"duplicate join", ErrDuplicateParticipation, http.StatusConflict},
		{"validation", ValidationError(map[string]string{"title": "required"}), http.StatusBadRequest},
		{"credentials", ErrInvalidCredentials, http.StatusUnauthorized},
		{"raw error becomes 500", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(rec)

			HandleError(c, tc.err)

			assert.Equal(t, tc.status, rec.Code)

			var resp ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			require.NotNil(t, resp.Error)
			assert.NotEmpty(t, resp.Error.Code)
		})
	}
}
