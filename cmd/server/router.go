package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/storyspark/storyspark-api/internal/api"
	apiMiddleware "github.com/storyspark/storyspark-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes
// and middleware. Returns the configured router.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(apiMiddleware.NewTraceMiddleware(app.logger))
	// The recoverer is ours rather than chi's so panics still produce the
	// JSON error envelope.
	r.Use(apiMiddleware.NewRecoverer(app.logger))

	storyHandler := api.NewStoryHandler(app.generator, app.logger)

	// Landing page
	r.Get("/", app.handleIndex)

	// Story generation endpoint
	r.Post("/generate_story", storyHandler.GenerateStory)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, err := w.Write([]byte("OK"))
		if err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}

// handleIndex serves the static landing page.
func (app *application) handleIndex(w http.ResponseWriter, r *http.Request) {
	http.ServeFile(w, r, app.config.Server.IndexPath)
}
