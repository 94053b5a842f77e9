package api

import (
	"errors"
	"net/http"

	"github.com/storyspark/storyspark-api/internal/generation"
)

// MapErrorToStatusCode maps generation errors to appropriate HTTP status
// codes based on the error kind. This keeps the status policy in one place
// instead of scattering it across handlers.
func MapErrorToStatusCode(err error) int {
	switch {
	// The generator was never configured (missing credential at startup).
	case errors.Is(err, generation.ErrGeneratorUnavailable):
		return http.StatusInternalServerError

	// Input problems, including content the service refused to continue.
	case errors.Is(err, generation.ErrEmptyPrompt),
		errors.Is(err, generation.ErrContentBlocked),
		errors.Is(err, generation.ErrUpstreamBadRequest):
		return http.StatusBadRequest

	// The remote service rejected our credential.
	case errors.Is(err, generation.ErrAuthFailed):
		return http.StatusUnauthorized

	// The remote service reported resource exhaustion.
	case errors.Is(err, generation.ErrQuotaExceeded):
		return http.StatusTooManyRequests

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns the user-facing error message for a
// generation error. Auth and quota failures get fixed generic text;
// blocked-content and upstream errors surface the detail the adapter
// built into the error, which is already phrased for users.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, generation.ErrGeneratorUnavailable):
		return "Story generation is not configured on the server. Check server logs."

	case errors.Is(err, generation.ErrAuthFailed):
		return "Authentication with the Google AI service failed. Check the API key."

	case errors.Is(err, generation.ErrQuotaExceeded):
		return "Google AI service quota exceeded. Please check your usage or try again later."

	case errors.Is(err, generation.ErrEmptyPrompt):
		return "Prompt is missing"

	case errors.Is(err, generation.ErrContentBlocked),
		errors.Is(err, generation.ErrUpstreamBadRequest),
		errors.Is(err, generation.ErrUpstreamFailure):
		return err.Error()

	default:
		return "An unexpected error occurred"
	}
}
