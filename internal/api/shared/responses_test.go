package shared_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/storyspark/storyspark-api/internal/api/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondWithJSON(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/test", nil)

	shared.RespondWithJSON(rec, req, http.StatusOK, map[string]string{"story": "Once upon a time."})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Once upon a time.", body["story"])
}

func TestRespondWithErrorIncludesTraceID(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/generate_story", nil)
	req = req.WithContext(shared.SetTraceID(req.Context()))

	shared.RespondWithError(rec, req, http.StatusBadRequest, "Prompt is missing")

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body shared.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Prompt is missing", body.Error)
	assert.NotEmpty(t, body.TraceID)
}

func TestRespondWithErrorAndLogHidesInternalError(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/generate_story", nil)

	internal := errors.New("dial tcp: connection refused to genai backend")
	shared.RespondWithErrorAndLog(rec, req, http.StatusInternalServerError,
		"An internal server error occurred", internal)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "dial tcp")
	assert.Contains(t, rec.Body.String(), "An internal server error occurred")
}

func TestTraceIDRoundTrip(t *testing.T) {
	t.Parallel()

	ctx := shared.SetTraceID(context.Background())
	traceID := shared.GetTraceID(ctx)
	assert.NotEmpty(t, traceID)

	// A context without a trace ID yields the empty string.
	assert.Empty(t, shared.GetTraceID(context.Background()))
}
