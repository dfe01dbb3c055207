package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/samadhan-setu/grievance-service/internal/api/dto"
	"github.com/samadhan-setu/grievance-service/internal/auth"
	"github.com/samadhan-setu/grievance-service/internal/service"
	apperrors "github.com/samadhan-setu/grievance-service/pkg/util"
)

// ComplaintsHandler exposes the grievance endpoints.
type ComplaintsHandler struct {
	complaints *service.ComplaintService
}

// NewComplaintsHandler constructs handler.
func NewComplaintsHandler(complaints *service.ComplaintService) *ComplaintsHandler {
	return &ComplaintsHandler{complaints: complaints}
}

// Create handles POST /complaints.
func (h *ComplaintsHandler) Create(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	var req dto.CreateComplaintRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	complaint, err := h.complaints.Submit(c.Context(), principal.User, req.Text)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(dto.NewComplaintResponse(complaint))
}

// List handles GET /complaints; scope comes from the caller's role.
func (h *ComplaintsHandler) List(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	complaints, err := h.complaints.ListForViewer(c.Context(), principal.User)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewComplaintResponses(complaints))
}

// Filter handles GET /complaints/filter?dept=&sub=.
func (h *ComplaintsHandler) Filter(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	complaints, err := h.complaints.ListFiltered(c.Context(), principal.User,
		c.Query("dept"), c.Query("sub"))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewComplaintResponses(complaints))
}

// Stats handles GET /complaints/stats: the KPI rollup over the caller's
// complaint scope.
func (h *ComplaintsHandler) Stats(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	stats, err := h.complaints.StatsForViewer(c.Context(), principal.User)
	if err != nil {
		return err
	}
	return c.JSON(stats)
}

// UpdateStatus handles PATCH /complaints/:id/status.
func (h *ComplaintsHandler) UpdateStatus(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	var req dto.ResolveComplaintRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	complaint, err := h.complaints.Resolve(c.Context(), principal.User,
		c.Params("id"), req.Status, req.Remarks)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewComplaintResponse(complaint))
}
