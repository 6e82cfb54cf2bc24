package coach

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOllamaGenerateHappyPath(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/generate", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)

		var request ollamaGenerateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&request))
		assert.Equal(t, "llama2", request.Model)
		assert.False(t, request.Stream)
		assert.Contains(t, request.Prompt, "workout")

		_, _ = fmt.Fprint(w, `{"response":"Nice pacing on that run."}`)
	}))
	defer server.Close()

	backend := NewOllama(server.URL, "llama2", server.Client())

	text, err := backend.Generate(context.Background(), "analyze this workout activity")
	require.NoError(t, err)
	assert.Equal(t, "Nice pacing on that run.", text)
}

func TestOllamaGenerateNonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = fmt.Fprint(w, `{"error":"model not loaded"}`)
	}))
	defer server.Close()

	backend := NewOllama(server.URL, "llama2", server.Client())

	_, err := backend.Generate(context.Background(), "prompt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
}

func TestOllamaGenerateConnectionRefused(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	server.Close()

	backend := NewOllama(server.URL, "llama2", nil)

	_, err := backend.Generate(context.Background(), "prompt")
	require.Error(t, err)
}

func TestOllamaGenerateEmptyResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = fmt.Fprint(w, `{"response":"   "}`)
	}))
	defer server.Close()

	backend := NewOllama(server.URL, "llama2", server.Client())

	_, err := backend.Generate(context.Background(), "prompt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty response")
}
