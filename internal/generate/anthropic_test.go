// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package generate

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// withTestServer points the backend at a local test server for the duration
// of one test.
func withTestServer(t *testing.T, handler http.HandlerFunc) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	orig := anthropicAPIURL
	anthropicAPIURL = srv.URL
	t.Cleanup(func() { anthropicAPIURL = orig })
}

func TestAnthropicComplete(t *testing.T) {
	var gotReq anthropicRequest
	var gotAPIKey, gotVersion string

	withTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotAPIKey = r.Header.Get("x-api-key")
		gotVersion = r.Header.Get("anthropic-version")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

		json.NewEncoder(w).Encode(map[string]any{
			"content": []map[string]any{
				{"type": "text", "text": "# Generated Draft\n\nBody."},
			},
			"usage": map[string]int{"input_tokens": 42, "output_tokens": 850},
		})
	})

	backend := &AnthropicBackend{
		APIKey:      "sk-ant-test",
		Model:       "test-model",
		MaxTokens:   5000,
		Temperature: 0.7,
	}

	resp, err := backend.Complete(context.Background(), "write the draft")
	require.NoError(t, err)

	assert.Equal(t, "# Generated Draft\n\nBody.", resp.Text)
	assert.Equal(t, 42, resp.Usage.InputTokens)
	assert.Equal(t, 850, resp.Usage.OutputTokens)
	assert.Equal(t, 892, resp.Usage.Total())

	assert.Equal(t, "sk-ant-test", gotAPIKey)
	assert.Equal(t, "2023-06-01", gotVersion)
	assert.Equal(t, "test-model", gotReq.Model)
	assert.Equal(t, 5000, gotReq.MaxTokens)
	assert.InDelta(t, 0.7, gotReq.Temperature, 1e-9)
	require.Len(t, gotReq.Messages, 1)
	assert.Equal(t, "user", gotReq.Messages[0].Role)
	assert.Equal(t, "write the draft", gotReq.Messages[0].Content)
}

func TestAnthropicCompleteJoinsTextBlocks(t *testing.T) {
	withTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"content": []map[string]any{
				{"type": "text", "text": "part one "},
				{"type": "tool_use", "text": "ignored"},
				{"type": "text", "text": "part two"},
			},
			"usage": map[string]int{"input_tokens": 1, "output_tokens": 2},
		})
	})

	backend := &AnthropicBackend{APIKey: "k", Model: "m"}
	resp, err := backend.Complete(context.Background(), "p")
	require.NoError(t, err)
	assert.Equal(t, "part one part two", resp.Text)
}

func TestAnthropicCompleteAPIError(t *testing.T) {
	withTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":{"type":"authentication_error"}}`))
	})

	backend := &AnthropicBackend{APIKey: "bad-key", Model: "m"}
	_, err := backend.Complete(context.Background(), "p")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}

func TestAnthropicCompleteEmptyContent(t *testing.T) {
	withTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"content": []map[string]any{},
			"usage":   map[string]int{"input_tokens": 1, "output_tokens": 0},
		})
	})

	backend := &AnthropicBackend{APIKey: "k", Model: "m"}
	_, err := backend.Complete(context.Background(), "p")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty content")
}

func TestAnthropicCompleteDefaultMaxTokens(t *testing.T) {
	var gotReq anthropicRequest
	withTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&gotReq)
		json.NewEncoder(w).Encode(map[string]any{
			"content": []map[string]any{{"type": "text", "text": "ok"}},
			"usage":   map[string]int{"input_tokens": 1, "output_tokens": 1},
		})
	})

	backend := &AnthropicBackend{APIKey: "k", Model: "m"}
	_, err := backend.Complete(context.Background(), strings.Repeat("p", 10))
	require.NoError(t, err)
	assert.Equal(t, 8000, gotReq.MaxTokens)
}
