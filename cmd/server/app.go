package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/storyspark/storyspark-api/internal/config"
	"github.com/storyspark/storyspark-api/internal/generation"
	"github.com/storyspark/storyspark-api/internal/platform/gemini"
)

// application holds all the shared application dependencies to simplify
// management and wiring.
type application struct {
	// Configuration
	config *config.Config

	// Core services
	logger *slog.Logger

	// generator is the process-wide story generator, built once at startup
	// and read-only afterwards.
	generator generation.StoryGenerator
}

// newApplication creates a new application instance with all dependencies
// initialized.
//
// A missing or rejected Gemini credential does not fail startup: the
// application degrades to an unavailable generator so the landing page
// still serves while the action route reports the misconfiguration.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) *application {
	app := &application{
		config: cfg,
		logger: logger,
	}

	app.generator = buildGenerator(ctx, cfg, logger)
	return app
}

// buildGenerator constructs the Gemini-backed story generator, or the
// explicit unavailable variant when no usable credential exists.
func buildGenerator(ctx context.Context, cfg *config.Config, logger *slog.Logger) generation.StoryGenerator {
	if cfg.LLM.GeminiAPIKey == "" {
		logger.Warn("GEMINI_API_KEY is not set; story generation will report itself as unconfigured")
		return generation.Unavailable("no API key configured")
	}

	generator, err := gemini.NewGeminiGenerator(ctx, logger.With("component", "story_generator"), cfg.LLM)
	if err != nil {
		logger.Error("failed to initialize Gemini generator; story generation will report itself as unconfigured",
			"error", err,
			"model", cfg.LLM.ModelName)
		return generation.Unavailable(fmt.Sprintf("generator initialization failed: %v", err))
	}

	logger.Info("Gemini story generator initialized", "model", cfg.LLM.ModelName)
	return generator
}

// Run starts the application server, handling lifecycle and shutdown.
// It returns an error if the server fails to start or encounters problems.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}
