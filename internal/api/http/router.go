package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/samadhan-setu/grievance-service/internal/api/http/handlers"
	"github.com/samadhan-setu/grievance-service/internal/auth"
	"github.com/samadhan-setu/grievance-service/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Users          *handlers.UsersHandler
	Complaints     *handlers.ComplaintsHandler
	AuthMiddleware *auth.Middleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	app.Get("/health/metrics", cfg.Health.Metrics)

	authGroup := app.Group("/auth")
	authGroup.Post("/login", cfg.Auth.Login)
	authGroup.Post("/register", cfg.AuthMiddleware.HandleOptional, cfg.Auth.Register)

	users := app.Group("/users", cfg.AuthMiddleware.Handle)
	users.Get("/profile", auth.RequireRoles(), cfg.Users.Profile)
	users.Patch("/profile", auth.RequireRoles(), cfg.Users.UpdateProfile)
	users.Get("/officials", auth.RequireOfficial(), cfg.Users.Officials)
	users.Get("/role/:role", auth.RequireOfficial(), cfg.Users.ListByRole)

	complaints := app.Group("/complaints", cfg.AuthMiddleware.Handle)
	complaints.Post("/", auth.RequireRoles(domain.RoleCitizen), cfg.Complaints.Create)
	complaints.Get("/", auth.RequireRoles(), cfg.Complaints.List)
	complaints.Get("/filter", auth.RequireOfficial(), cfg.Complaints.Filter)
	complaints.Get("/stats", auth.RequireRoles(), cfg.Complaints.Stats)
	complaints.Patch("/:id/status", auth.RequireOfficial(), cfg.Complaints.UpdateStatus)
}
