package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/ntvhoang/lingo-api/internal/api"
	apiMiddleware "github.com/ntvhoang/lingo-api/internal/api/middleware"
	"github.com/rs/cors"
)

// setupRouter creates and configures the application router with all routes
// and middleware. It uses the application's dependencies to create handlers
// and register routes. Returns the configured router.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	// The API is consumed by browser frontends; allow cross-origin calls.
	r.Use(cors.New(cors.Options{
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Content-Type"},
	}).Handler)

	learningHandler := api.NewLearningHandler(app.generator, app.logger)
	healthHandler := api.NewHealthHandler(app.checker, app.logger)

	r.Route("/api", func(r chi.Router) {
		r.Post("/process", learningHandler.Process)
		r.Get("/health", healthHandler.Health)
	})

	return r
}
