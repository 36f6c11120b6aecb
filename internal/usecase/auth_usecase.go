package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"portfolio_backend/internal/domain/entities"
	"portfolio_backend/internal/infrastructure/metrics"
	"portfolio_backend/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// MinPasswordLength applies when provisioning the admin credential.
const MinPasswordLength = 6

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrNotProvisioned     = errors.New("admin credentials not configured, run `admin init` to provision them")
	ErrAdminMisconfigured = errors.New("stored admin credential is incomplete, run `admin init` to fix it")
	ErrUnauthorized       = errors.New("unauthorized")
)

// LoginResult is a freshly issued admin session.
type LoginResult struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	Username  string    `json:"username"`
}

type IAuthUseCase interface {
	Login(ctx context.Context, username, password string) (LoginResult, error)
	Authenticate(ctx context.Context, token string) (entities.AdminSession, error)
}

type AuthUseCase struct {
	repo   interfaces.IAdminCredentialRepository
	hasher interfaces.IPasswordHasher
	tokens interfaces.ITokenService
	logger *zap.Logger
}

var _ IAuthUseCase = (*AuthUseCase)(nil)

func NewAuthUseCase(repo interfaces.IAdminCredentialRepository, hasher interfaces.IPasswordHasher, tokens interfaces.ITokenService, logger *zap.Logger) *AuthUseCase {
	return &AuthUseCase{repo: repo, hasher: hasher, tokens: tokens, logger: logger.Named("auth")}
}

// Login checks the admin credential. A wrong username and a wrong password
// produce the same ErrInvalidCredentials.
func (u *AuthUseCase) Login(ctx context.Context, username, password string) (LoginResult, error) {
	username = strings.TrimSpace(username)
	verr := &ValidationError{}
	if username == "" {
		verr.MissingFields = append(verr.MissingFields, "username")
	}
	if password == "" {
		verr.MissingFields = append(verr.MissingFields, "password")
	}
	if err := verr.orNil(); err != nil {
		return LoginResult{}, err
	}

	cred, err := u.repo.Get(ctx)
	if err != nil {
		return LoginResult{}, err
	}
	if cred.ID == "" {
		u.logger.Error("[auth][usecase] login attempted before admin provisioning")
		return LoginResult{}, ErrNotProvisioned
	}
	if cred.Username == "" || cred.PasswordHash == "" {
		u.logger.Error("[auth][usecase] admin credential is missing username or password hash", zap.String("id", cred.ID))
		return LoginResult{}, ErrAdminMisconfigured
	}

	if username != cred.Username || !u.hasher.Matches(cred.PasswordHash, password) {
		metrics.RecordAuthAttempt(false)
		u.logger.Warn("[auth][usecase] login failed: incorrect username or password", zap.String("username", username))
		return LoginResult{}, ErrInvalidCredentials
	}

	token, expiresAt, err := u.tokens.Issue(cred.Username)
	if err != nil {
		return LoginResult{}, err
	}

	metrics.RecordAuthAttempt(true)
	u.logger.Info("[auth][usecase] login success", zap.String("username", cred.Username))
	return LoginResult{Token: token, ExpiresAt: expiresAt, Username: cred.Username}, nil
}

// Authenticate verifies a session token. Any failure maps to ErrUnauthorized
// wrapping the cause.
func (u *AuthUseCase) Authenticate(_ context.Context, token string) (entities.AdminSession, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return entities.AdminSession{}, ErrUnauthorized
	}
	session, err := u.tokens.Parse(token)
	if err != nil {
		return entities.AdminSession{}, errors.Join(ErrUnauthorized, err)
	}
	return session, nil
}
