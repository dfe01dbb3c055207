package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/samadhan-setu/grievance-service/internal/api/dto"
	"github.com/samadhan-setu/grievance-service/internal/auth"
	"github.com/samadhan-setu/grievance-service/internal/service"
	apperrors "github.com/samadhan-setu/grievance-service/pkg/util"
)

// AuthHandler exposes login and registration.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: authService}
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	user, token, exp, err := h.auth.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(dto.AuthResponse{
		AccessToken: token,
		ExpiresAt:   exp,
		User:        dto.NewUserResponse(user),
	})
}

// Register handles POST /auth/register. Unauthenticated callers register as
// citizens whatever role they claim; an authenticated official requesting an
// official role creates the one subordinate tier it is allowed to appoint.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	principal, authenticated := auth.PrincipalFromContext(c)

	if req.Role.IsOfficial() {
		if !authenticated {
			return apperrors.NewUnauthorized("official accounts require an authenticated creator")
		}
		official, err := h.auth.CreateOfficial(c.Context(), principal.User, service.OfficialInput{
			Name:          req.Name,
			Email:         req.Email,
			Password:      req.Password,
			District:      req.District,
			Department:    req.Department,
			SubDepartment: req.SubDepartment,
		})
		if err != nil {
			return err
		}
		return c.Status(http.StatusCreated).JSON(fiber.Map{
			"user": dto.NewUserResponse(official),
		})
	}

	user, token, exp, err := h.auth.RegisterCitizen(c.Context(), service.CitizenInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		District: req.District,
	})
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(dto.AuthResponse{
		AccessToken: token,
		ExpiresAt:   exp,
		User:        dto.NewUserResponse(user),
	})
}
