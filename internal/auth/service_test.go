package auth

import (
	"testing"
	"time"

	"ml-league-backend/internal/database/models"
	apperrors "ml-league-backend/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T, ttlMinutes int) *Service {
	t.Helper()
	service, err := NewService(&Config{
		JWTSecret:       "test-signing-key-for-token-operations",
		TokenTTLMinutes: ttlMinutes,
	})
	require.NoError(t, err)
	return service
}

func TestNewService(t *testing.T) {
	t.Run("rejects missing secret", func(t *testing.T) {
		_, err := NewService(&Config{TokenTTLMinutes: 60})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "JWT secret is required")
	})

	t.Run("rejects non-positive TTL", func(t *testing.T) {
		_, err := NewService(&Config{JWTSecret: "secret", TokenTTLMinutes: 0})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "token TTL must be positive")
	})
}

func TestIssueAndValidateToken(t *testing.T) {
	service := newTestService(t, 60)

	t.Run("roundtrip preserves identity", func(t *testing.T) {
		user := &models.User{Handle: "alice"}

		token, err := service.IssueToken(user)
		require.NoError(t, err)
		require.NotEmpty(t, token)

		claims, err := service.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, "alice", claims.Subject)
		assert.False(t, claims.IsAdmin)
		assert.Equal(t, tokenIssuer, claims.Issuer)
	})

	t.Run("admin flag is carried in claims", func(t *testing.T) {
		token, err := service.IssueToken(&models.User{Handle: "root", IsAdmin: true})
		require.NoError(t, err)

		claims, err := service.ValidateToken(token)
		require.NoError(t, err)
		assert.True(t, claims.IsAdmin)
	})

	t.Run("expiry honors configured TTL", func(t *testing.T) {
		token, err := service.IssueToken(&models.User{Handle: "alice"})
		require.NoError(t, err)

		claims, err := service.ValidateToken(token)
		require.NoError(t, err)

		expectedExpiry := time.Now().Add(60 * time.Minute)
		assert.WithinDuration(t, expectedExpiry, claims.ExpiresAt.Time, 5*time.Second)
	})
}

func TestValidateTokenFailures(t *testing.T) {
	service := newTestService(t, 60)

	t.Run("malformed token", func(t *testing.T) {
		_, err := service.ValidateToken("not.a.token")
		assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	})

	t.Run("empty token", func(t *testing.T) {
		_, err := service.ValidateToken("")
		assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	})

	t.Run("token signed with a different secret", func(t *testing.T) {
		other := newTestService(t, 60)
		other.config.JWTSecret = "completely-different-secret"

		token, err := other.IssueToken(&models.User{Handle: "alice"})
		require.NoError(t, err)

		_, err = service.ValidateToken(token)
		assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	})

	t.Run("expired token", func(t *testing.T) {
		past := time.Now().Add(-2 * time.Hour)
		claims := &Claims{
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(past.Add(time.Hour)),
				IssuedAt:  jwt.NewNumericDate(past),
				Subject:   "alice",
			},
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
			SignedString([]byte(service.config.JWTSecret))
		require.NoError(t, err)

		_, err = service.ValidateToken(token)
		assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	})

	t.Run("unexpected signing method", func(t *testing.T) {
		// alg=none style tokens must never pass
		token, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
			Subject:   "alice",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		}).SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = service.ValidateToken(token)
		assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	})

	t.Run("missing subject", func(t *testing.T) {
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		}).SignedString([]byte(service.config.JWTSecret))
		require.NoError(t, err)

		_, err = service.ValidateToken(token)
		assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	})
}
