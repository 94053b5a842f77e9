package gemini

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"text/template"
	"time"

	"github.com/storyspark/storyspark-api/internal/config"
	"github.com/storyspark/storyspark-api/internal/generation"
	"google.golang.org/genai"
)

var _ generation.StoryGenerator = (*GeminiGenerator)(nil)

// GeminiGenerator implements the generation.StoryGenerator interface using
// Google's Gemini API to continue a user-supplied story prompt.
type GeminiGenerator struct {
	// logger is used for structured logging
	logger *slog.Logger

	// config contains LLM-specific configuration
	config config.LLMConfig

	// promptTemplate is the parsed template for creating prompts
	promptTemplate *template.Template

	// client is the Gemini API client for making requests
	client *genai.Client

	// model is the name of the Gemini model to use
	model string

	// timeout bounds each remote call
	timeout time.Duration
}

// NewGeminiGenerator creates a new instance of GeminiGenerator with the provided dependencies.
//
// Parameters:
//   - ctx: Context for the operation, which can be used for cancellation
//   - logger: A structured logger for operation logging
//   - config: LLM configuration containing the API key, model name, and timeout
//
// Returns:
//   - A properly initialized GeminiGenerator or an error if initialization fails
func NewGeminiGenerator(ctx context.Context, logger *slog.Logger, cfg config.LLMConfig) (*GeminiGenerator, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("%w: gemini API key cannot be empty", generation.ErrInvalidConfig)
	}

	if cfg.ModelName == "" {
		return nil, fmt.Errorf("%w: model name cannot be empty", generation.ErrInvalidConfig)
	}

	if cfg.RequestTimeoutSeconds <= 0 {
		return nil, fmt.Errorf("%w: request timeout must be positive", generation.ErrInvalidConfig)
	}

	// The built-in storyteller template is used unless a file path is
	// configured.
	templateContent := defaultPromptTemplate
	if cfg.PromptTemplatePath != "" {
		raw, err := os.ReadFile(cfg.PromptTemplatePath)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to read prompt template from %s: %v",
				generation.ErrInvalidConfig, cfg.PromptTemplatePath, err)
		}
		templateContent = string(raw)
	}

	promptTemplate, err := template.New("story").Parse(templateContent)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse prompt template: %v",
			generation.ErrInvalidConfig, err)
	}

	clientConfig := &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	}

	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create Gemini client: %v",
			generation.ErrInvalidConfig, err)
	}

	return &GeminiGenerator{
		logger:         logger,
		config:         cfg,
		promptTemplate: promptTemplate,
		client:         client,
		model:          cfg.ModelName,
		timeout:        time.Duration(cfg.RequestTimeoutSeconds) * time.Second,
	}, nil
}

// GenerateStory produces a continuation for the given story prompt.
//
// It wraps the prompt in the storyteller template, calls the Gemini API with
// the fixed sampling configuration, and interprets the response. Remote
// failures are classified into the generation package's error taxonomy.
func (g *GeminiGenerator) GenerateStory(ctx context.Context, prompt string) (string, error) {
	if prompt == "" {
		return "", generation.ErrEmptyPrompt
	}

	fullPrompt, err := g.buildPrompt(ctx, prompt)
	if err != nil {
		return "", err
	}

	// Each call is bounded explicitly instead of relying on the remote
	// client's defaults.
	callCtx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	g.logger.InfoContext(ctx, "calling Gemini API",
		"model", g.model,
		"prompt_length", len(prompt))

	resp, err := g.client.Models.GenerateContent(callCtx, g.model, genai.Text(fullPrompt), samplingConfig())
	if err != nil {
		classified := classifyError(err)
		g.logger.ErrorContext(ctx, "Gemini API call failed",
			"error", err,
			"classified", classified)
		return "", classified
	}

	story, err := storyFromResponse(resp)
	if err != nil {
		g.logger.WarnContext(ctx, "Gemini response yielded no usable story",
			"error", err)
		return "", err
	}

	g.logger.InfoContext(ctx, "Gemini API call successful",
		"story_length", len(story))
	return story, nil
}

// buildPrompt generates the full prompt string from the template with the
// user's story starter embedded verbatim.
func (g *GeminiGenerator) buildPrompt(ctx context.Context, prompt string) (string, error) {
	var buf bytes.Buffer
	if err := g.promptTemplate.Execute(&buf, promptData{Prompt: prompt}); err != nil {
		return "", fmt.Errorf("failed to execute prompt template: %w", err)
	}

	g.logger.DebugContext(ctx, "prompt generated from template",
		"template_name", g.promptTemplate.Name(),
		"prompt_length", buf.Len())

	return buf.String(), nil
}

// samplingConfig returns the fixed sampling configuration sent with every
// generation request.
func samplingConfig() *genai.GenerateContentConfig {
	return &genai.GenerateContentConfig{
		MaxOutputTokens: maxOutputTokens,
		Temperature:     genai.Ptr[float32](temperature),
		TopP:            genai.Ptr[float32](topP),
		TopK:            genai.Ptr[float32](topK),
		CandidateCount:  candidateCount,
	}
}

// storyFromResponse interprets a Gemini response.
//
// No candidates means the service suppressed all output; the resulting
// error surfaces the service's block reason when one is present. A
// candidate whose finish reason indicates filtering is treated the same
// way, surfacing the service's own reason rather than guessing further.
// A candidate whose text trims to nothing yields the fixed fallback
// sentence as a success.
func storyFromResponse(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", blockedError(resp)
	}

	candidate := resp.Candidates[0]
	if candidate.FinishReason == genai.FinishReasonSafety ||
		candidate.FinishReason == genai.FinishReasonProhibitedContent {
		return "", fmt.Errorf("%w: generation stopped due to: %s",
			generation.ErrContentBlocked, candidate.FinishReason)
	}

	var text strings.Builder
	if candidate.Content != nil {
		for _, part := range candidate.Content.Parts {
			if part != nil {
				text.WriteString(part.Text)
			}
		}
	}

	story := strings.TrimSpace(text.String())
	if story == "" {
		return fallbackStory, nil
	}
	return story, nil
}

// blockedError builds a ErrContentBlocked error with a human-readable
// reason derived from the prompt feedback when the service provides one.
func blockedError(resp *genai.GenerateContentResponse) error {
	if resp != nil && resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
		return fmt.Errorf("%w due to: %s", generation.ErrContentBlocked, resp.PromptFeedback.BlockReason)
	}
	return fmt.Errorf("%w: the prompt may have violated safety guidelines or produced no valid output",
		generation.ErrContentBlocked)
}
