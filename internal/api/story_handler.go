package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/storyspark/storyspark-api/internal/api/shared"
	"github.com/storyspark/storyspark-api/internal/generation"
)

// StoryHandler handles story generation HTTP requests
type StoryHandler struct {
	generator generation.StoryGenerator
	logger    *slog.Logger
}

// NewStoryHandler creates a new StoryHandler
func NewStoryHandler(generator generation.StoryGenerator, logger *slog.Logger) *StoryHandler {
	return &StoryHandler{
		generator: generator,
		logger:    logger,
	}
}

// GenerateStory handles POST /generate_story requests
func (h *StoryHandler) GenerateStory(w http.ResponseWriter, r *http.Request) {
	// Parse request body
	var req GenerateStoryRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	// Validate request; the prompt gate runs before any remote call
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, promptValidationMessage(err))
		return
	}

	// Delegate to the generation adapter
	story, err := h.generator.GenerateStory(r.Context(), req.Prompt)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, GenerateStoryResponse{Story: story})
}

// promptValidationMessage maps a validation failure on the request payload
// to its user-facing message.
func promptValidationMessage(err error) string {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		for _, fieldErr := range validationErrs {
			if fieldErr.Field() != "Prompt" {
				continue
			}
			switch fieldErr.Tag() {
			case "required":
				return "Prompt is missing"
			case "max":
				return "Prompt is too long (max 2000 characters for this demo)"
			}
		}
	}
	return "Invalid request"
}
