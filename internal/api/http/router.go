package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Rodger11/geo-reconexion/internal/api/http/handlers"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health  *handlers.HealthHandler
	Auth    *handlers.AuthHandler
	Surveys *handlers.SurveysHandler
	Users   *handlers.UsersHandler
}

// RegisterRoutes wires HTTP routes. None of the /api endpoints require the
// session token; the token is issued for downstream consumers only.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	api := app.Group("/api")
	api.Post("/login", cfg.Auth.Login)
	api.Get("/encuestas", cfg.Surveys.List)
	api.Post("/encuestas", cfg.Surveys.Create)
	api.Get("/usuarios", cfg.Users.List)
	api.Post("/usuarios", cfg.Users.Upsert)
}
