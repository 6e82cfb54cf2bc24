package coach

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClaudeGenerateUsesConfiguredBaseURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/messages", r.URL.Path)
		assert.Equal(t, "sk-ant-test", r.Header.Get("X-Api-Key"))

		_, _ = fmt.Fprint(w, `{"id":"msg_1","type":"message","role":"assistant","model":"claude-3-haiku-20240307","content":[{"type":"text","text":"Prioritize recovery this week."}]}`)
	}))
	defer server.Close()

	backend := NewClaude("sk-ant-test", "claude-3-haiku-20240307", server.URL, server.Client())

	text, err := backend.Generate(context.Background(), "analyze these daily health metrics")
	require.NoError(t, err)
	assert.Equal(t, "Prioritize recovery this week.", text)
}

func TestClaudeGenerateBoundedByClientTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		_, _ = io.Copy(io.Discard, r.Body)
		<-r.Context().Done()
	}))
	defer server.Close()
	defer server.CloseClientConnections()

	backend := NewClaude("sk-ant-test", "claude-3-haiku-20240307", server.URL, &http.Client{Timeout: 50 * time.Millisecond})

	start := time.Now()
	_, err := backend.Generate(context.Background(), "prompt")
	require.Error(t, err)
	assert.Less(t, time.Since(start), 5*time.Second)
}
