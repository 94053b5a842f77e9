package generation

import "errors"

// Common errors returned by story generators
var (
	// ErrGeneratorUnavailable is returned when no generator was configured
	// at startup, typically because the API key is missing
	ErrGeneratorUnavailable = errors.New("story generator is not configured")

	// ErrEmptyPrompt is returned when the prompt text is empty
	ErrEmptyPrompt = errors.New("prompt cannot be empty")

	// ErrContentBlocked is returned when the LLM suppresses all output,
	// usually due to safety filters
	ErrContentBlocked = errors.New("content generation blocked")

	// ErrAuthFailed is returned when the LLM rejects the configured credential
	ErrAuthFailed = errors.New("authentication with the generation service failed")

	// ErrQuotaExceeded is returned when the LLM reports resource exhaustion
	ErrQuotaExceeded = errors.New("generation service quota exceeded")

	// ErrUpstreamBadRequest is returned when the LLM rejects the request as
	// malformed (for example, an unknown model name)
	ErrUpstreamBadRequest = errors.New("invalid request to the generation service")

	// ErrUpstreamFailure is returned for any remote failure that could not
	// be classified more precisely
	ErrUpstreamFailure = errors.New("generation service request failed")

	// ErrInvalidConfig is returned when the generator configuration is invalid
	ErrInvalidConfig = errors.New("invalid generator configuration")
)
