package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/careerforge/internal/api"
	apiMiddleware "github.com/phrazzld/careerforge/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	// CORS runs before routing so preflight requests never reach a handler,
	// and before the recoverer so panic responses carry the origin header too.
	r.Use(apiMiddleware.CORS)
	r.Use(apiMiddleware.TraceMiddleware(app.logger))
	r.Use(apiMiddleware.Recoverer)

	generationHandler := api.NewGenerationHandler(app.generator)
	healthHandler := api.NewHealthHandler(app.config.LLM)

	r.Route("/api", func(r chi.Router) {
		r.Post("/generate-career-content", generationHandler.GenerateCareerContent)
	})

	r.Get("/health", healthHandler.Health)

	return r
}
