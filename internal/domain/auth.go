package domain

import "context"

// TokenIssuer creates signed access tokens.
type TokenIssuer interface {
	Issue(subject, email string) (string, error)
}

// TokenVerifier validates access tokens and returns the subject.
type TokenVerifier interface {
	Verify(token string) (string, error)
}

// AuthService authenticates the concierge admin.
type AuthService interface {
	Login(ctx context.Context, email, password string) (string, error)
}
