package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/artem13815/atsmatch/api/http/handlers"
)

// Register wires all HTTP routes onto given Fiber app.
func Register(app *fiber.App, health *handlers.HealthHandler, analysis *handlers.AnalysisHandler, resume *handlers.ResumeHandler) {
	app.Use(recover.New())
	app.Use(RequestLogger())

	api := app.Group("/api")
	v1 := api.Group("/v1")

	// Health and readiness endpoints for probes/monitoring
	v1.Get("/health", health.Health)
	v1.Get("/ready", health.Ready)

	// Анализ резюме и история
	v1.Post("/analyze", analysis.Analyze)
	v1.Get("/analyses", analysis.List)
	v1.Get("/analyses/:id", analysis.Get)

	rg := v1.Group("/resume")
	rg.Post("/extract", resume.Extract)
}
