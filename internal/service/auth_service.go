package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/samadhan-setu/grievance-service/internal/access"
	"github.com/samadhan-setu/grievance-service/internal/auth"
	"github.com/samadhan-setu/grievance-service/internal/config"
	"github.com/samadhan-setu/grievance-service/internal/domain"
	"github.com/samadhan-setu/grievance-service/internal/events"
	"github.com/samadhan-setu/grievance-service/internal/repository"
	apperrors "github.com/samadhan-setu/grievance-service/pkg/util"
)

// AuthService coordinates registration and login flows.
type AuthService struct {
	users      repository.UserRepository
	dispatcher events.Dispatcher
	tokenMgr   *auth.TokenManager
	bcryptCost int
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, users repository.UserRepository, dispatcher events.Dispatcher) *AuthService {
	return &AuthService{
		users:      users,
		dispatcher: dispatcher,
		tokenMgr:   auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTLMinutes),
		bcryptCost: cfg.Auth.BcryptCost,
	}
}

// TokenManager exposes the token manager for middleware wiring.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}

// CitizenInput describes a self-registration payload.
type CitizenInput struct {
	Name     string
	Email    string
	Password string
	District string
}

// RegisterCitizen creates a citizen account; the role is forced to CITIZEN
// regardless of what the caller sent.
func (s *AuthService) RegisterCitizen(ctx context.Context, input CitizenInput) (*domain.User, string, time.Time, error) {
	if err := s.ensureEmailFree(ctx, input.Email); err != nil {
		return nil, "", time.Time{}, err
	}

	hash, err := auth.HashPassword(input.Password, s.bcryptCost)
	if err != nil {
		return nil, "", time.Time{}, err
	}

	user := &domain.User{
		Name:         strings.TrimSpace(input.Name),
		Email:        strings.ToLower(strings.TrimSpace(input.Email)),
		PasswordHash: hash,
		Role:         domain.RoleCitizen,
		District:     strings.TrimSpace(input.District),
	}
	if err := user.Validate(); err != nil {
		return nil, "", time.Time{}, apperrors.NewValidationError(err.Error(), nil)
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, "", time.Time{}, err
	}

	token, exp, err := s.tokenMgr.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return user, token, exp, nil
}

// OfficialInput describes an official account created by a superior.
type OfficialInput struct {
	Name          string
	Email         string
	Password      string
	District      string
	Department    string
	SubDepartment *string
}

// CreateOfficial creates the one official role the creator may appoint: the
// CM appoints department heads, a department head appoints sub-heads pinned
// to the creator's own department.
func (s *AuthService) CreateOfficial(ctx context.Context, creator *domain.User, input OfficialInput) (*domain.User, error) {
	role, err := access.CreatableRole(creator.Role)
	if err != nil {
		return nil, apperrors.NewForbidden(err.Error())
	}

	department := strings.TrimSpace(input.Department)
	if creator.Role == domain.RoleHeadDept {
		department = creator.DepartmentName()
	}
	if department == "" {
		return nil, apperrors.NewValidationError("department required", nil)
	}

	if err := s.ensureEmailFree(ctx, input.Email); err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(input.Password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	official := &domain.User{
		Name:          strings.TrimSpace(input.Name),
		Email:         strings.ToLower(strings.TrimSpace(input.Email)),
		PasswordHash:  hash,
		Role:          role,
		District:      strings.TrimSpace(input.District),
		Department:    &department,
		SubDepartment: input.SubDepartment,
	}
	if err := official.Validate(); err != nil {
		return nil, apperrors.NewValidationError(err.Error(), nil)
	}
	if err := s.users.Create(ctx, official); err != nil {
		return nil, err
	}

	s.publish(ctx, events.Event{
		Type:    events.EventOfficialCreated,
		ActorID: creator.ID,
		Payload: events.OfficialCreatedPayload{
			OfficialID: official.ID,
			Role:       official.Role,
			Department: department,
		},
	})
	return official, nil
}

// Login authenticates any role and issues a bearer token.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, string, time.Time, error) {
	user, err := s.users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, "", time.Time{}, apperrors.NewUnauthorized("invalid credentials")
		}
		return nil, "", time.Time{}, err
	}
	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		return nil, "", time.Time{}, apperrors.NewUnauthorized("invalid credentials")
	}
	token, exp, err := s.tokenMgr.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return user, token, exp, nil
}

// Profile validates a token and returns the current user.
func (s *AuthService) Profile(ctx context.Context, token string) (*domain.User, error) {
	claims, err := s.tokenMgr.ParseToken(token)
	if err != nil {
		return nil, apperrors.NewUnauthorized("invalid token")
	}
	user, err := s.users.GetByID(ctx, claims.UserID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewUnauthorized("user not found")
		}
		return nil, err
	}
	return user, nil
}

// ProfileUpdate carries the self-service editable fields.
type ProfileUpdate struct {
	Name     string
	District string
}

// UpdateProfile changes the caller's own display fields. Role, email and
// department scoping are not editable here.
func (s *AuthService) UpdateProfile(ctx context.Context, user *domain.User, input ProfileUpdate) (*domain.User, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, apperrors.NewValidationError("name required", nil)
	}

	updated := *user
	updated.Name = name
	updated.District = strings.TrimSpace(input.District)
	if err := updated.Validate(); err != nil {
		return nil, apperrors.NewValidationError(err.Error(), nil)
	}
	if err := s.users.Update(ctx, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *AuthService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	event.ID = uuid.NewString()
	event.Timestamp = time.Now()
	_ = s.dispatcher.Publish(ctx, event)
}

func (s *AuthService) ensureEmailFree(ctx context.Context, email string) error {
	_, err := s.users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err == nil {
		return apperrors.NewConflict("email already registered", nil)
	}
	if err != pgx.ErrNoRows {
		return err
	}
	return nil
}
