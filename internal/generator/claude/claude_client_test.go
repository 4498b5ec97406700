package claude_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"legibrief/internal/config"
	"legibrief/internal/generator"
	"legibrief/internal/generator/claude"
	"legibrief/internal/port"
)

func newTestClient(serverURL string) *claude.Client {
	cfg := &config.GeneratorConfig{
		Provider:     "claude",
		APIKey:       "test-api-key",
		DefaultModel: "claude-sonnet-4-20250514",
		TimeoutSecs:  30,
	}
	return claude.NewClientWithEndpoint(cfg, serverURL)
}

func TestClient_Generate_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-api-key", r.Header.Get("x-api-key"))
		assert.Equal(t, "2023-06-01", r.Header.Get("anthropic-version"))

		var reqBody map[string]any
		err := json.NewDecoder(r.Body).Decode(&reqBody)
		assert.NoError(t, err)
		assert.Equal(t, "claude-sonnet-4-20250514", reqBody["model"])
		assert.Equal(t, "You are a legislative analyst.", reqBody["system"])

		messages := reqBody["messages"].([]any)
		assert.Len(t, messages, 1)
		msg := messages[0].(map[string]any)
		assert.Equal(t, "user", msg["role"])
		// JSON mode rides on the prompt for this provider.
		assert.True(t, strings.Contains(msg["content"].(string), "Return ONLY valid JSON"))

		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"content": []map[string]any{
				{"type": "text", "text": `{"billNumber":"SB 2"}`},
			},
		})
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	text, err := client.Generate(context.Background(), port.GenerationRequest{
		System:      "You are a legislative analyst.",
		User:        "Analyze this bill.",
		MaxTokens:   4000,
		Temperature: 0.3,
		JSONOnly:    true,
	})

	assert.NoError(t, err)
	assert.Equal(t, `{"billNumber":"SB 2"}`, text)
}

func TestClient_Generate_RateLimited(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Retry-After", "15")
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.Generate(context.Background(), port.GenerationRequest{User: "x"})

	var rlErr *generator.RateLimitError
	assert.True(t, errors.As(err, &rlErr))
	assert.Equal(t, "claude", rlErr.Provider)
}

func TestClient_Generate_EmptyContent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"content": []any{}})
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.Generate(context.Background(), port.GenerationRequest{User: "x"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "empty response")
}
