package service

import (
	"context"

	"github.com/samadhan-setu/grievance-service/internal/domain"
)

// SessionBackend adapts AuthService to the session.Authenticator contract,
// letting a session manager run against this service in-process.
type SessionBackend struct {
	auth *AuthService
}

// NewSessionBackend wraps an AuthService.
func NewSessionBackend(auth *AuthService) *SessionBackend {
	return &SessionBackend{auth: auth}
}

// Login authenticates credentials and returns the issued token and user.
func (b *SessionBackend) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	user, token, _, err := b.auth.Login(ctx, email, password)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// Profile validates a token and returns the current user.
func (b *SessionBackend) Profile(ctx context.Context, token string) (*domain.User, error) {
	return b.auth.Profile(ctx, token)
}
