package services

import (
	"context"
	"crypto/subtle"
	"fmt"
	"log/slog"

	"celebrationgarden/internal/domain"
)

// PasswordComparer checks a plaintext password against a stored hash.
type PasswordComparer interface {
	Compare(hash, password string) bool
}

// AuthService authenticates the single concierge admin configured through
// the environment.
type AuthService struct {
	adminEmail   string
	passwordHash string
	hasher       PasswordComparer
	issuer       domain.TokenIssuer
	logger       *slog.Logger
}

// NewAuthService creates the admin auth service.
func NewAuthService(adminEmail, passwordHash string, hasher PasswordComparer, issuer domain.TokenIssuer, logger *slog.Logger) *AuthService {
	return &AuthService{
		adminEmail:   adminEmail,
		passwordHash: passwordHash,
		hasher:       hasher,
		issuer:       issuer,
		logger:       logger,
	}
}

// Login verifies admin credentials and returns a signed token. Credential
// checks are in-memory so no timeout applies. Wrong email and wrong password
// are indistinguishable to the caller.
func (s *AuthService) Login(_ context.Context, email, password string) (string, error) {
	if s.adminEmail == "" || s.passwordHash == "" {
		s.logger.Error("admin login attempted without admin credentials configured")
		return "", domain.ErrUnauthorized
	}

	emailMatch := subtle.ConstantTimeCompare([]byte(email), []byte(s.adminEmail)) == 1
	passwordMatch := s.hasher.Compare(s.passwordHash, password)
	if !emailMatch || !passwordMatch {
		return "", domain.ErrUnauthorized
	}

	token, err := s.issuer.Issue("admin", email)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}
	return token, nil
}
