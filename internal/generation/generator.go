package generation

import (
	"context"
	"fmt"
)

// StoryGenerator defines the interface for producing a story continuation
// from a user-supplied prompt. This interface serves as a boundary between
// the HTTP layer and external AI/LLM services, following the hexagonal
// architecture pattern.
type StoryGenerator interface {
	// GenerateStory produces a continuation for the given story prompt.
	//
	// Parameters:
	//   - ctx: Context for the operation, which can be used for cancellation
	//   - prompt: The user's story starter text
	//
	// Returns:
	//   - The generated continuation, trimmed of surrounding whitespace
	//   - An error if generation fails (see errors.go for the specific kinds)
	GenerateStory(ctx context.Context, prompt string) (string, error)
}

// unavailableGenerator is the explicit "not configured" variant of
// StoryGenerator. Every call fails with ErrGeneratorUnavailable.
type unavailableGenerator struct {
	reason string
}

// GenerateStory implements StoryGenerator.
func (g *unavailableGenerator) GenerateStory(ctx context.Context, prompt string) (string, error) {
	return "", fmt.Errorf("%w: %s", ErrGeneratorUnavailable, g.reason)
}

// Unavailable returns a StoryGenerator whose calls always fail with
// ErrGeneratorUnavailable. It is used at startup when the remote-service
// credential is absent or the real client could not be built, so the server
// can still boot and serve the landing page without nil checks in handlers.
func Unavailable(reason string) StoryGenerator {
	if reason == "" {
		reason = "no API key configured"
	}
	return &unavailableGenerator{reason: reason}
}
