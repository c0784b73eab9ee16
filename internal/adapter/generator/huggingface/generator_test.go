package huggingface

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/travel-planner/ai-travel-planner/internal/domain"
)

func testPrompt() domain.Prompt {
	return domain.Prompt{
		System: "You are an expert travel planner.",
		User:   "Plan a trip to Tokyo.",
	}
}

func newTestServer(t *testing.T, handler http.HandlerFunc) *Generator {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	gen, err := New(Config{APIToken: "test-token", BaseURL: server.URL})
	require.NoError(t, err)
	return gen
}

func TestNewRequiresAPIToken(t *testing.T) {
	_, err := New(Config{})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrMissingAPIKey)
}

func TestGenerateMergesPromptIntoSingleMessage(t *testing.T) {
	var captured struct {
		Model     string `json:"model"`
		MaxTokens int    `json:"max_tokens"`
		Messages  []struct{ Role, Content string } `json:"messages"`
	}

	gen := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "cmpl-1",
			"object": "chat.completion",
			"choices": [{"index": 0, "message": {"role": "assistant", "content": "{\"destination\": \"Tokyo\"}"}, "finish_reason": "stop"}]
		}`))
	})

	got, err := gen.Generate(context.Background(), testPrompt())
	require.NoError(t, err)
	assert.Equal(t, `{"destination": "Tokyo"}`, got)

	assert.Equal(t, DefaultModel, captured.Model)
	assert.Equal(t, maxCompletionTokens, captured.MaxTokens)
	require.Len(t, captured.Messages, 1)
	assert.Equal(t, "user", captured.Messages[0].Role)
	assert.Contains(t, captured.Messages[0].Content, "expert travel planner")
	assert.Contains(t, captured.Messages[0].Content, "Plan a trip to Tokyo.")
}

func TestGenerateRateLimitIsRetryable(t *testing.T) {
	gen := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error": {"message": "rate limited", "type": "rate_limit_error"}}`))
	})

	_, err := gen.Generate(context.Background(), testPrompt())
	require.Error(t, err)

	var pe *domain.ProviderError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, BackendName, pe.Provider)
	assert.True(t, pe.Retryable)
}

func TestGenerateEmptyChoices(t *testing.T) {
	gen := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id": "cmpl-1", "object": "chat.completion", "choices": []}`))
	})

	_, err := gen.Generate(context.Background(), testPrompt())
	require.Error(t, err)
	assert.True(t, domain.IsProviderError(err))
}
