package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/storyspark/storyspark-api/internal/generation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockStoryGenerator is a mock implementation of generation.StoryGenerator
// for testing
type MockStoryGenerator struct {
	GenerateStoryFn func(ctx context.Context, prompt string) (string, error)
	Calls           int
}

// GenerateStory implements generation.StoryGenerator
func (m *MockStoryGenerator) GenerateStory(ctx context.Context, prompt string) (string, error) {
	m.Calls++
	if m.GenerateStoryFn != nil {
		return m.GenerateStoryFn(ctx, prompt)
	}
	return "", nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError + 4}))
}

// TestStoryHandler_GenerateStory tests the GenerateStory handler functionality.
func TestStoryHandler_GenerateStory(t *testing.T) {
	tests := []struct {
		name            string
		rawBody         string // used verbatim when set, otherwise requestBody is marshaled
		requestBody     interface{}
		setupMock       func(*MockStoryGenerator)
		expectedStatus  int
		expectedStory   string
		expectedErrMsg  string
		expectRemoteHit bool
	}{
		{
			name:        "successful_generation",
			requestBody: GenerateStoryRequest{Prompt: "Once upon a time"},
			setupMock: func(m *MockStoryGenerator) {
				m.GenerateStoryFn = func(ctx context.Context, prompt string) (string, error) {
					return "A hero arose.", nil
				}
			},
			expectedStatus:  http.StatusOK,
			expectedStory:   "A hero arose.",
			expectRemoteHit: true,
		},
		{
			name:           "missing_prompt_key",
			rawBody:        `{}`,
			setupMock:      func(m *MockStoryGenerator) {},
			expectedStatus: http.StatusBadRequest,
			expectedErrMsg: "Prompt is missing",
		},
		{
			name:           "empty_prompt",
			requestBody:    GenerateStoryRequest{Prompt: ""},
			setupMock:      func(m *MockStoryGenerator) {},
			expectedStatus: http.StatusBadRequest,
			expectedErrMsg: "Prompt is missing",
		},
		{
			name:           "prompt_too_long",
			requestBody:    GenerateStoryRequest{Prompt: strings.Repeat("a", 2001)},
			setupMock:      func(m *MockStoryGenerator) {},
			expectedStatus: http.StatusBadRequest,
			expectedErrMsg: "Prompt is too long (max 2000 characters for this demo)",
		},
		{
			name:        "prompt_at_limit_passes_gate",
			requestBody: GenerateStoryRequest{Prompt: strings.Repeat("a", 2000)},
			setupMock: func(m *MockStoryGenerator) {
				m.GenerateStoryFn = func(ctx context.Context, prompt string) (string, error) {
					return "Right at the limit.", nil
				}
			},
			expectedStatus:  http.StatusOK,
			expectedStory:   "Right at the limit.",
			expectRemoteHit: true,
		},
		{
			name:           "malformed_json",
			rawBody:        `{"prompt": `,
			setupMock:      func(m *MockStoryGenerator) {},
			expectedStatus: http.StatusBadRequest,
			expectedErrMsg: "Invalid request format",
		},
		{
			name:        "generator_unavailable",
			requestBody: GenerateStoryRequest{Prompt: "Once upon a time"},
			setupMock: func(m *MockStoryGenerator) {
				m.GenerateStoryFn = generation.Unavailable("no API key configured").GenerateStory
			},
			expectedStatus:  http.StatusInternalServerError,
			expectedErrMsg:  "Story generation is not configured on the server. Check server logs.",
			expectRemoteHit: true,
		},
		{
			name:        "content_blocked",
			requestBody: GenerateStoryRequest{Prompt: "something dubious"},
			setupMock: func(m *MockStoryGenerator) {
				m.GenerateStoryFn = func(ctx context.Context, prompt string) (string, error) {
					return "", fmt.Errorf("%w due to: SAFETY", generation.ErrContentBlocked)
				}
			},
			expectedStatus:  http.StatusBadRequest,
			expectedErrMsg:  "content generation blocked due to: SAFETY",
			expectRemoteHit: true,
		},
		{
			name:        "auth_failure",
			requestBody: GenerateStoryRequest{Prompt: "Once upon a time"},
			setupMock: func(m *MockStoryGenerator) {
				m.GenerateStoryFn = func(ctx context.Context, prompt string) (string, error) {
					return "", fmt.Errorf("%w: API key not valid", generation.ErrAuthFailed)
				}
			},
			expectedStatus:  http.StatusUnauthorized,
			expectedErrMsg:  "Authentication with the Google AI service failed. Check the API key.",
			expectRemoteHit: true,
		},
		{
			name:        "quota_exceeded",
			requestBody: GenerateStoryRequest{Prompt: "Once upon a time"},
			setupMock: func(m *MockStoryGenerator) {
				m.GenerateStoryFn = func(ctx context.Context, prompt string) (string, error) {
					return "", fmt.Errorf("%w: per-minute limit hit", generation.ErrQuotaExceeded)
				}
			},
			expectedStatus:  http.StatusTooManyRequests,
			expectedErrMsg:  "Google AI service quota exceeded. Please check your usage or try again later.",
			expectRemoteHit: true,
		},
		{
			name:        "upstream_bad_request",
			requestBody: GenerateStoryRequest{Prompt: "Once upon a time"},
			setupMock: func(m *MockStoryGenerator) {
				m.GenerateStoryFn = func(ctx context.Context, prompt string) (string, error) {
					return "", fmt.Errorf("%w: model not found", generation.ErrUpstreamBadRequest)
				}
			},
			expectedStatus:  http.StatusBadRequest,
			expectedErrMsg:  "invalid request to the generation service: model not found",
			expectRemoteHit: true,
		},
		{
			name:        "unclassified_upstream_failure",
			requestBody: GenerateStoryRequest{Prompt: "Once upon a time"},
			setupMock: func(m *MockStoryGenerator) {
				m.GenerateStoryFn = func(ctx context.Context, prompt string) (string, error) {
					return "", fmt.Errorf("%w: connection reset", generation.ErrUpstreamFailure)
				}
			},
			expectedStatus:  http.StatusInternalServerError,
			expectedErrMsg:  "generation service request failed: connection reset",
			expectRemoteHit: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mock := &MockStoryGenerator{}
			tc.setupMock(mock)

			handler := NewStoryHandler(mock, testLogger())

			var body []byte
			if tc.rawBody != "" {
				body = []byte(tc.rawBody)
			} else {
				var err error
				body, err = json.Marshal(tc.requestBody)
				require.NoError(t, err)
			}

			req := httptest.NewRequest(http.MethodPost, "/generate_story", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()

			handler.GenerateStory(rec, req)

			assert.Equal(t, tc.expectedStatus, rec.Code)

			var response map[string]interface{}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))

			if tc.expectedStory != "" {
				assert.Equal(t, tc.expectedStory, response["story"])
				assert.NotContains(t, response, "error")
			}
			if tc.expectedErrMsg != "" {
				assert.Equal(t, tc.expectedErrMsg, response["error"])
				assert.NotContains(t, response, "story")
			}

			if tc.expectRemoteHit {
				assert.Equal(t, 1, mock.Calls, "generator should be called exactly once")
			} else {
				assert.Zero(t, mock.Calls, "generator must not be called when the input gate fails")
			}
		})
	}
}
