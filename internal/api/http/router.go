package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/student-service/internal/api/http/handlers"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health   *handlers.HealthHandler
	Auth     *handlers.AuthHandler
	Students *handlers.StudentsHandler
}

// RegisterRoutes wires HTTP routes. Access control is not declared per route:
// the policy middleware has already decided by the time a handler runs.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	authGroup := app.Group("/api/auth")
	authGroup.Post("/login", cfg.Auth.Login)
	authGroup.Get("/me", cfg.Auth.Me)

	students := app.Group("/api/students")
	students.Get("/", cfg.Students.List)
	students.Get("/search", cfg.Students.Search)
	students.Get("/:id", cfg.Students.Get)
	students.Post("/", cfg.Students.Create)
	students.Put("/:id", cfg.Students.Update)
	students.Delete("/:id", cfg.Students.Delete)
}
