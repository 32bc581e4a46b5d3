package genai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tracklight/timesheet-backend-go/internal/config"
)

func newTestClient(serverURL string) *Client {
	return NewClient(config.GenAIConfig{
		APIKey:  "test-key",
		Model:   "gemini-2.5-flash",
		BaseURL: serverURL,
	})
}

func TestGenerateRequiresAPIKey(t *testing.T) {
	c := NewClient(config.GenAIConfig{Model: "gemini-2.5-flash"})
	_, err := c.Generate(context.Background(), "hello", nil)
	assert.Error(t, err)
}

func TestGenerateConcatenatesParts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1beta/models/gemini-2.5-flash:generateContent", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("x-goog-api-key"))

		var req generateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Contents, 1)
		assert.Empty(t, req.Tools)

		json.NewEncoder(w).Encode(map[string]any{
			"candidates": []map[string]any{{
				"content": map[string]any{
					"parts": []map[string]any{{"text": "Hello, "}, {"text": "world."}},
				},
			}},
		})
	}))
	defer srv.Close()

	result, err := newTestClient(srv.URL).Generate(context.Background(), "greet me", nil)
	require.NoError(t, err)
	assert.Equal(t, "Hello, world.", result.Text)
	assert.Empty(t, result.Sources)
}

func TestGenerateGroundedSearch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req generateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Tools, 1, "grounded requests must carry the google_search tool")

		json.NewEncoder(w).Encode(map[string]any{
			"candidates": []map[string]any{{
				"content": map[string]any{
					"parts": []map[string]any{{"text": "grounded answer"}},
				},
				"groundingMetadata": map[string]any{
					"groundingChunks": []map[string]any{
						{"web": map[string]any{"uri": "https://example.com/a", "title": "A"}},
						{"web": map[string]any{"uri": "https://example.com/a", "title": "A again"}},
						{"web": map[string]any{"uri": "https://example.com/b"}},
						{"web": map[string]any{"uri": ""}},
					},
				},
			}},
		})
	}))
	defer srv.Close()

	result, err := newTestClient(srv.URL).Generate(context.Background(), "research", &Options{GroundedSearch: true})
	require.NoError(t, err)
	assert.Equal(t, "grounded answer", result.Text)

	// Duplicates collapse by URI; a missing title falls back to the URI.
	require.Len(t, result.Sources, 2)
	assert.Equal(t, Source{URI: "https://example.com/a", Title: "A"}, result.Sources[0])
	assert.Equal(t, Source{URI: "https://example.com/b", Title: "https://example.com/b"}, result.Sources[1])
}

func TestGenerateAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{"code": 429, "message": "quota exceeded"},
		})
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).Generate(context.Background(), "hi", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "quota exceeded")
}

func TestGenerateEmptyCandidates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"candidates": []any{}})
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).Generate(context.Background(), "hi", nil)
	assert.Error(t, err)
}
