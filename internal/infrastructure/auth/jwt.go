package auth

import (
	"errors"
	"fmt"
	"time"

	"portfolio_backend/internal/domain/entities"
	"portfolio_backend/internal/usecase/interfaces"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTokenTTL is the absolute lifetime of an admin session. There is no refresh.
const DefaultTokenTTL = 24 * time.Hour

var (
	ErrSigningKeyMissing = errors.New("token signing key is not configured")
	ErrInvalidToken      = errors.New("invalid token")
	ErrExpiredToken      = errors.New("token has expired")
	ErrInvalidRole       = errors.New("token does not grant admin access")
)

// Claims is the session token payload.
type Claims struct {
	jwt.RegisteredClaims
	Username string `json:"username"`
	Role     string `json:"role"`
}

// JWTService signs and verifies HS256 admin session tokens.
type JWTService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

var _ interfaces.ITokenService = (*JWTService)(nil)

func NewJWTService(secret string, ttl time.Duration) *JWTService {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &JWTService{secret: []byte(secret), ttl: ttl, now: time.Now}
}

func (s *JWTService) Issue(username string) (string, time.Time, error) {
	if len(s.secret) == 0 {
		return "", time.Time{}, ErrSigningKeyMissing
	}

	issuedAt := s.now()
	expiresAt := issuedAt.Add(s.ttl)
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			NotBefore: jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		Username: username,
		Role:     entities.AdminRole,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, expiresAt, nil
}

func (s *JWTService) Parse(tokenString string) (entities.AdminSession, error) {
	if len(s.secret) == 0 {
		return entities.AdminSession{}, ErrSigningKeyMissing
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return entities.AdminSession{}, ErrExpiredToken
		}
		return entities.AdminSession{}, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return entities.AdminSession{}, ErrInvalidToken
	}
	if claims.Role != entities.AdminRole {
		return entities.AdminSession{}, ErrInvalidRole
	}

	session := entities.AdminSession{Username: claims.Username, Role: claims.Role}
	if claims.ExpiresAt != nil {
		session.ExpiresAt = claims.ExpiresAt.Time
	}
	return session, nil
}
