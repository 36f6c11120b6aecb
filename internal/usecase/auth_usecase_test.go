package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"portfolio_backend/internal/domain/entities"
	"portfolio_backend/internal/infrastructure/auth"
	mock_interfaces "portfolio_backend/internal/usecase/interfaces/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func newAuthUseCase(t *testing.T) (*AuthUseCase, *mock_interfaces.MockIAdminCredentialRepository, *auth.BcryptHasher) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockIAdminCredentialRepository(ctrl)
	hasher := auth.NewBcryptHasher(bcrypt.MinCost)
	tokens := auth.NewJWTService("test-secret", time.Hour)
	return NewAuthUseCase(repo, hasher, tokens, zap.NewNop()), repo, hasher
}

func TestAuthUseCase_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("missing fields", func(t *testing.T) {
		uc, _, _ := newAuthUseCase(t)
		_, err := uc.Login(ctx, " ", "")
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, []string{"username", "password"}, verr.MissingFields)
	})

	t.Run("not provisioned", func(t *testing.T) {
		uc, repo, _ := newAuthUseCase(t)
		repo.EXPECT().Get(gomock.Any()).Return(entities.AdminCredential{}, nil)
		_, err := uc.Login(ctx, "admin", "secret1")
		assert.ErrorIs(t, err, ErrNotProvisioned)
	})

	t.Run("incomplete credential", func(t *testing.T) {
		uc, repo, _ := newAuthUseCase(t)
		repo.EXPECT().Get(gomock.Any()).Return(entities.AdminCredential{ID: "a-1", Username: "admin"}, nil)
		_, err := uc.Login(ctx, "admin", "secret1")
		assert.ErrorIs(t, err, ErrAdminMisconfigured)
	})

	t.Run("repo error", func(t *testing.T) {
		uc, repo, _ := newAuthUseCase(t)
		repo.EXPECT().Get(gomock.Any()).Return(entities.AdminCredential{}, errors.New("db"))
		_, err := uc.Login(ctx, "admin", "secret1")
		assert.EqualError(t, err, "db")
	})

	t.Run("wrong username and wrong password look the same", func(t *testing.T) {
		uc, repo, hasher := newAuthUseCase(t)
		hash, err := hasher.Hash("secret1")
		require.NoError(t, err)
		repo.EXPECT().Get(gomock.Any()).Return(entities.AdminCredential{ID: "a-1", Username: "admin", PasswordHash: hash}, nil).Times(2)

		_, errUser := uc.Login(ctx, "root", "secret1")
		_, errPass := uc.Login(ctx, "admin", "wrong")
		assert.ErrorIs(t, errUser, ErrInvalidCredentials)
		assert.ErrorIs(t, errPass, ErrInvalidCredentials)
		assert.Equal(t, errUser.Error(), errPass.Error())
	})

	t.Run("success issues a verifiable token", func(t *testing.T) {
		uc, repo, hasher := newAuthUseCase(t)
		hash, err := hasher.Hash("secret1")
		require.NoError(t, err)
		repo.EXPECT().Get(gomock.Any()).Return(entities.AdminCredential{ID: "a-1", Username: "admin", PasswordHash: hash}, nil)

		res, err := uc.Login(ctx, " admin ", "secret1")
		require.NoError(t, err)
		assert.Equal(t, "admin", res.Username)
		assert.NotEmpty(t, res.Token)
		assert.True(t, res.ExpiresAt.After(time.Now()))

		session, err := uc.Authenticate(ctx, res.Token)
		require.NoError(t, err)
		assert.Equal(t, "admin", session.Username)
		assert.Equal(t, entities.AdminRole, session.Role)
	})
}

func TestAuthUseCase_Authenticate(t *testing.T) {
	uc, _, _ := newAuthUseCase(t)

	_, err := uc.Authenticate(context.Background(), "")
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = uc.Authenticate(context.Background(), "not-a-jwt")
	assert.ErrorIs(t, err, ErrUnauthorized)

	other := auth.NewJWTService("other-secret", time.Hour)
	foreign, _, err := other.Issue("admin")
	require.NoError(t, err)
	_, err = uc.Authenticate(context.Background(), foreign)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}
