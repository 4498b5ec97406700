package openai_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"legibrief/internal/config"
	"legibrief/internal/generator"
	"legibrief/internal/generator/openai"
	"legibrief/internal/port"
)

func newTestClient(serverURL string) *openai.Client {
	cfg := &config.GeneratorConfig{
		Provider:     "openai",
		APIKey:       "test-api-key",
		DefaultModel: "gpt-4o-mini",
		TimeoutSecs:  30,
	}
	return openai.NewClientWithEndpoint(cfg, serverURL)
}

func TestClient_Generate_Success(t *testing.T) {
	responseBody := map[string]any{
		"choices": []map[string]any{
			{
				"message":       map[string]any{"content": `{"billNumber":"HB 1"}`},
				"finish_reason": "stop",
			},
		},
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-api-key", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var reqBody map[string]any
		err := json.NewDecoder(r.Body).Decode(&reqBody)
		assert.NoError(t, err)
		assert.Equal(t, "gpt-4o-mini", reqBody["model"])
		assert.Equal(t, 0.3, reqBody["temperature"])
		assert.Equal(t, float64(4000), reqBody["max_tokens"])

		respFormat := reqBody["response_format"].(map[string]any)
		assert.Equal(t, "json_object", respFormat["type"])

		messages := reqBody["messages"].([]any)
		assert.Len(t, messages, 2)
		system := messages[0].(map[string]any)
		assert.Equal(t, "system", system["role"])
		user := messages[1].(map[string]any)
		assert.Equal(t, "user", user["role"])

		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(responseBody)
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
	assert.Equal(t, `{"billNumber":"HB 1"}`, text)
}

func TestClient_Generate_NoJSONModeOmitsResponseFormat(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var reqBody map[string]any
		_ = json.NewDecoder(r.Body).Decode(&reqBody)
		_, hasFormat := reqBody["response_format"]
		assert.False(t, hasFormat)

		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"content": "Yes"}},
			},
		})
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	text, err := client.Generate(context.Background(), port.GenerationRequest{
		User:      "Is this a bill?",
		MaxTokens: 10,
	})

	assert.NoError(t, err)
	assert.Equal(t, "Yes", text)
}

func TestClient_Generate_RateLimited(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Retry-After", "30")
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"message":"rate limit"}}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.Generate(context.Background(), port.GenerationRequest{User: "x"})

	var rlErr *generator.RateLimitError
	assert.True(t, errors.As(err, &rlErr))
	assert.Equal(t, "openai", rlErr.Provider)
	assert.Equal(t, float64(30), rlErr.RetryAfter.Seconds())
}

func TestClient_Generate_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("boom"))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.Generate(context.Background(), port.GenerationRequest{User: "x"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
}

func TestClient_Generate_EmptyChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"choices": []any{}})
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.Generate(context.Background(), port.GenerationRequest{User: "x"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "empty response")
}
