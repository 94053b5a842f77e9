package gemini

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/storyspark/storyspark-api/internal/generation"
	"google.golang.org/genai"
)

// classifyError maps a failure from the genai SDK onto the generation
// package's error taxonomy.
//
// Errors carrying the SDK's typed APIError shape are classified by their
// HTTP code and RPC status. Anything else falls back to substring matching
// on the error text; the remote error surface is not a stable contract, so
// that path is a best-effort heuristic, evaluated in priority order.
func classifyError(err error) error {
	if err == nil {
		return nil
	}

	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.Code == http.StatusUnauthorized,
			apiErr.Code == http.StatusForbidden,
			apiErr.Status == "UNAUTHENTICATED",
			apiErr.Status == "PERMISSION_DENIED":
			return fmt.Errorf("%w: %v", generation.ErrAuthFailed, err)
		case apiErr.Code == http.StatusTooManyRequests,
			apiErr.Status == "RESOURCE_EXHAUSTED":
			return fmt.Errorf("%w: %v", generation.ErrQuotaExceeded, err)
		case apiErr.Code == http.StatusBadRequest,
			apiErr.Status == "INVALID_ARGUMENT":
			return fmt.Errorf("%w: %s", generation.ErrUpstreamBadRequest, apiErr.Message)
		default:
			return fmt.Errorf("%w: %s", generation.ErrUpstreamFailure, apiErr.Message)
		}
	}

	// Heuristic fallback for untyped errors.
	msg := err.Error()
	switch {
	case containsAny(msg, "API key not valid", "API_KEY_INVALID", "PermissionDenied", "Unauthenticated"):
		return fmt.Errorf("%w: %v", generation.ErrAuthFailed, err)
	case containsAny(msg, "Quota", "quota", "ResourceExhausted", "RESOURCE_EXHAUSTED"):
		return fmt.Errorf("%w: %v", generation.ErrQuotaExceeded, err)
	case containsAny(msg, "Invalid", "BadRequest", "INVALID_ARGUMENT"):
		return fmt.Errorf("%w: %s", generation.ErrUpstreamBadRequest, msg)
	default:
		return fmt.Errorf("%w: %s", generation.ErrUpstreamFailure, msg)
	}
}

// containsAny reports whether s contains at least one of the substrings.
func containsAny(s string, substrings ...string) bool {
	for _, sub := range substrings {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
