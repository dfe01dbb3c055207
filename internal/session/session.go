// Package session implements the login/logout/token-validation lifecycle as
// an explicit state machine. The manager is handed to whatever needs the
// current user instead of being read from ambient scope; it is created on
// app start and torn down on logout.
package session

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/samadhan-setu/grievance-service/internal/access"
	"github.com/samadhan-setu/grievance-service/internal/domain"
)

// State enumerates session lifecycle states.
type State string

const (
	StateUnauthenticated State = "UNAUTHENTICATED"
	StateValidating      State = "VALIDATING"
	StateAuthenticated   State = "AUTHENTICATED"
	// StateAuthFailed is transient: it always collapses back to
	// Unauthenticated inside the same operation, after the stale token
	// has been cleared. It is observable only through the logs.
	StateAuthFailed State = "AUTH_FAILED"
)

// Authenticator is the external backend the session talks to.
type Authenticator interface {
	Login(ctx context.Context, email, password string) (token string, user *domain.User, err error)
	Profile(ctx context.Context, token string) (*domain.User, error)
}

// Manager owns one client session: the persisted token, the current user and
// the state transitions between them. It is not safe for concurrent use; the
// portal's event loop drives it from a single goroutine.
type Manager struct {
	store  TokenStore
	auth   Authenticator
	logger *zap.Logger

	state State
	user  *domain.User
}

// NewManager builds a manager in the Unauthenticated state.
func NewManager(store TokenStore, auth Authenticator, logger *zap.Logger) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager{store: store, auth: auth, logger: logger, state: StateUnauthenticated}
}

// State returns the current lifecycle state.
func (m *Manager) State() State { return m.state }

// CurrentUser returns the authenticated user, or nil.
func (m *Manager) CurrentUser() *domain.User { return m.user }

// Start restores a session from the persisted token, if any. With a token
// present it passes through Validating and lands Authenticated on a
// successful profile fetch; any fetch failure clears the stale token and
// lands Unauthenticated. The returned route is where the UI should go next.
func (m *Manager) Start(ctx context.Context) (access.Route, error) {
	token, err := m.store.Load(ctx)
	if err != nil {
		return access.RouteLogin, fmt.Errorf("session: load token: %w", err)
	}
	if token == "" {
		m.state = StateUnauthenticated
		return access.RouteLogin, nil
	}

	m.state = StateValidating
	user, err := m.auth.Profile(ctx, token)
	if err != nil {
		m.state = StateAuthFailed
		m.logger.Warn("session validation failed", zap.Error(err))
		if clearErr := m.store.Clear(ctx); clearErr != nil {
			m.logger.Warn("clearing stale token failed", zap.Error(clearErr))
		}
		m.user = nil
		m.state = StateUnauthenticated
		return access.RouteLogin, nil
	}

	m.user = user
	m.state = StateAuthenticated
	home, err := access.HomeRoute(user.Role)
	if err != nil {
		return access.RouteLogin, err
	}
	return home, nil
}

// Login authenticates credentials against the backend. On success the issued
// token is persisted, the session becomes Authenticated and the role-keyed
// home route is returned; on failure the session stays Unauthenticated and
// the reason is surfaced to the caller.
func (m *Manager) Login(ctx context.Context, email, password string) (access.Route, error) {
	token, user, err := m.auth.Login(ctx, email, password)
	if err != nil {
		m.state = StateUnauthenticated
		m.user = nil
		return access.RouteLogin, err
	}

	if err := m.store.Save(ctx, token); err != nil {
		m.state = StateUnauthenticated
		m.user = nil
		return access.RouteLogin, fmt.Errorf("session: persist token: %w", err)
	}

	m.user = user
	m.state = StateAuthenticated
	home, err := access.HomeRoute(user.Role)
	if err != nil {
		return access.RouteLogin, err
	}
	m.logger.Info("session established",
		zap.String("user_id", user.ID),
		zap.String("role", string(user.Role)))
	return home, nil
}

// Logout clears the persisted token and returns the login route. A failure
// to clear durable storage is logged but the in-memory session still ends.
func (m *Manager) Logout(ctx context.Context) access.Route {
	if err := m.store.Clear(ctx); err != nil {
		m.logger.Warn("clearing token on logout failed", zap.Error(err))
	}
	m.user = nil
	m.state = StateUnauthenticated
	return access.RouteLogin
}
