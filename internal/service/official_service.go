package service

import (
	"context"

	"github.com/samadhan-setu/grievance-service/internal/domain"
	"github.com/samadhan-setu/grievance-service/internal/hierarchy"
	"github.com/samadhan-setu/grievance-service/internal/repository"
	apperrors "github.com/samadhan-setu/grievance-service/pkg/util"
)

// OfficialService serves official listings and the org tree.
type OfficialService struct {
	users repository.UserRepository
}

// NewOfficialService constructs the service.
func NewOfficialService(users repository.UserRepository) *OfficialService {
	return &OfficialService{users: users}
}

// ListByRole lists officials of one tier. Only the two head roles are
// listable; everything else is a bad request.
func (s *OfficialService) ListByRole(ctx context.Context, viewer *domain.User, role domain.Role) ([]domain.User, error) {
	if !viewer.Role.IsOfficial() {
		return nil, apperrors.NewForbidden("officials only")
	}
	if role != domain.RoleHeadDept && role != domain.RoleHeadSub {
		return nil, apperrors.NewValidationError("role must be HEAD_DEPT or HEAD_SUB", nil)
	}
	return s.users.ListByRole(ctx, role)
}

// Hierarchy fetches both head tiers concurrently, concatenates them in tier
// order and builds the viewer-scoped org tree. The two fetches are one
// logical unit: if either fails nothing is returned, never a partial tree.
func (s *OfficialService) Hierarchy(ctx context.Context, viewer *domain.User) (map[string]*hierarchy.DepartmentNode, error) {
	type fetchResult struct {
		users []domain.User
		err   error
	}

	headsCh := make(chan fetchResult, 1)
	subsCh := make(chan fetchResult, 1)

	go func() {
		users, err := s.users.ListByRole(ctx, domain.RoleHeadDept)
		headsCh <- fetchResult{users, err}
	}()
	go func() {
		users, err := s.users.ListByRole(ctx, domain.RoleHeadSub)
		subsCh <- fetchResult{users, err}
	}()

	heads := <-headsCh
	subs := <-subsCh
	if heads.err != nil {
		return nil, heads.err
	}
	if subs.err != nil {
		return nil, subs.err
	}

	combined := append(heads.users, subs.users...)
	nodes, err := hierarchy.Build(combined, viewer.Role, viewer.DepartmentName())
	if err != nil {
		return nil, apperrors.NewForbidden(err.Error())
	}
	return nodes, nil
}
