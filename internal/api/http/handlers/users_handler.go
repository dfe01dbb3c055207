package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/samadhan-setu/grievance-service/internal/api/dto"
	"github.com/samadhan-setu/grievance-service/internal/auth"
	"github.com/samadhan-setu/grievance-service/internal/domain"
	"github.com/samadhan-setu/grievance-service/internal/service"
	apperrors "github.com/samadhan-setu/grievance-service/pkg/util"
)

// UsersHandler exposes profile and official listings.
type UsersHandler struct {
	officials *service.OfficialService
	auth      *service.AuthService
}

// NewUsersHandler constructs handler.
func NewUsersHandler(officials *service.OfficialService, authService *service.AuthService) *UsersHandler {
	return &UsersHandler{officials: officials, auth: authService}
}

// Profile handles GET /users/profile: a bearer token round-trips into the
// current user, which is how clients validate a persisted token.
func (h *UsersHandler) Profile(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	return c.JSON(dto.NewUserResponse(principal.User))
}

// UpdateProfile handles PATCH /users/profile: callers edit their own name
// and district only.
func (h *UsersHandler) UpdateProfile(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	var req dto.UpdateProfileRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	user, err := h.auth.UpdateProfile(c.Context(), principal.User, service.ProfileUpdate{
		Name:     req.Name,
		District: req.District,
	})
	if err != nil {
		return err
	}
	return c.JSON(dto.NewUserResponse(user))
}

// ListByRole handles GET /users/role/:role.
func (h *UsersHandler) ListByRole(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	role := domain.Role(c.Params("role"))
	users, err := h.officials.ListByRole(c.Context(), principal.User, role)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewUserResponses(users))
}

// Officials handles GET /users/officials: the viewer-scoped org tree.
func (h *UsersHandler) Officials(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	nodes, err := h.officials.Hierarchy(c.Context(), principal.User)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewHierarchyResponse(nodes))
}
