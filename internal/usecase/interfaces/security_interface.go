package interfaces

import (
	"time"

	"portfolio_backend/internal/domain/entities"
)

// ITokenService issues and verifies admin session tokens.
type ITokenService interface {
	Issue(username string) (token string, expiresAt time.Time, err error)
	Parse(token string) (entities.AdminSession, error)
}

// IPasswordHasher wraps a one-way password hash.
type IPasswordHasher interface {
	Hash(password string) (string, error)
	Matches(hash, password string) bool
}
