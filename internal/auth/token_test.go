package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"torami_backend/internal/config"
	"torami_backend/internal/models"
)

func init() {
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.TTL = 60
	config.AppConfig = cfg
}

func TestTokenRoundTrip(t *testing.T) {
	user := &models.User{
		BaseModel: models.BaseModel{ID: "user-42"},
		Email:     "user@torami.test",
		Role:      models.UserRoleAdmin,
	}

	token, err := GenerateToken(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-42", claims.UserID)
	assert.Equal(t, models.UserRoleAdmin, claims.Role)
	assert.Equal(t, "user-42", claims.Subject)
}

func TestParseToken_Invalid(t *testing.T) {
	t.Run("garbage", func(t *testing.T) {
		_, err := ParseToken("not-a-token")
		assert.Error(t, err)
	})

	t.Run("wrong signature", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{UserID: "user-1"})
		signed, err := token.SignedString([]byte("some-other-secret"))
		require.NoError(t, err)

		_, err = ParseToken(signed)
		assert.Error(t, err)
	})

	t.Run("expired", func(t *testing.T) {
		claims := &Claims{
			UserID: "user-1",
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			},
		}
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
		signed, err := token.SignedString([]byte("test-secret"))
		require.NoError(t, err)

		_, err = ParseToken(signed)
		assert.Error(t, err)
	})

	t.Run("alg none is rejected", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{UserID: "user-1"})
		signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = ParseToken(signed)
		assert.Error(t, err)
	})
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("hunter2hunter2")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter2hunter2", hash)

	assert.True(t, CheckPassword(hash, "hunter2hunter2"))
	assert.False(t, CheckPassword(hash, "wrong-password"))
}
