package auth

import (
	"testing"
	"time"

	"portfolio_backend/internal/domain/entities"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTService_IssueAndParse(t *testing.T) {
	svc := NewJWTService("test-secret", 0)
	issuedAt := time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return issuedAt }

	token, expiresAt, err := svc.Issue("admin")
	require.NoError(t, err)
	assert.Equal(t, issuedAt.Add(24*time.Hour), expiresAt)

	session, err := svc.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", session.Username)
	assert.Equal(t, entities.AdminRole, session.Role)
	assert.True(t, session.ExpiresAt.Equal(expiresAt))
}

func TestJWTService_Rejections(t *testing.T) {
	issuedAt := time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)
	svc := NewJWTService("test-secret", time.Hour)
	svc.now = func() time.Time { return issuedAt }
	token, _, err := svc.Issue("admin")
	require.NoError(t, err)

	t.Run("expired", func(t *testing.T) {
		later := NewJWTService("test-secret", time.Hour)
		later.now = func() time.Time { return issuedAt.Add(2 * time.Hour) }
		_, err := later.Parse(token)
		assert.ErrorIs(t, err, ErrExpiredToken)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := NewJWTService("other-secret", time.Hour)
		other.now = svc.now
		_, err := other.Parse(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := svc.Parse("not-a-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("non admin role", func(t *testing.T) {
		claims := &Claims{
			RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(issuedAt.Add(time.Hour))},
			Username:         "visitor",
			Role:             "viewer",
		}
		forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
		require.NoError(t, err)
		_, err = svc.Parse(forged)
		assert.ErrorIs(t, err, ErrInvalidRole)
	})

	t.Run("missing secret", func(t *testing.T) {
		empty := NewJWTService("", time.Hour)
		_, _, err := empty.Issue("admin")
		assert.ErrorIs(t, err, ErrSigningKeyMissing)
	})
}

func TestBcryptHasher(t *testing.T) {
	h := NewBcryptHasher(4)
	hash, err := h.Hash("s3cret!")
	require.NoError(t, err)
	assert.True(t, h.Matches(hash, "s3cret!"))
	assert.False(t, h.Matches(hash, "wrong"))
	assert.False(t, h.Matches("not-a-hash", "s3cret!"))
}
