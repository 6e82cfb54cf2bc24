package coach

import (
	"context"
	"fmt"
	"net/http"

	"github.com/bnema/garmin-coach/internal/ports"
	anthropic "github.com/liushuangls/go-anthropic/v2"
)

const claudeMaxTokens = 1000

// Claude generates text through the Anthropic messages API.
type Claude struct {
	client *anthropic.Client
	model  string
}

var _ ports.CoachingBackend = (*Claude)(nil)

// NewClaude keeps the SDK endpoint when baseURL is empty. A nil client
// falls back to the SDK default, which carries no timeout; callers that
// need a bounded request must pass their own.
func NewClaude(apiKey, model, baseURL string, client *http.Client) *Claude {
	var opts []anthropic.ClientOption
	if baseURL != "" {
		opts = append(opts, anthropic.WithBaseURL(baseURL))
	}
	if client != nil {
		opts = append(opts, anthropic.WithHTTPClient(client))
	}

	return &Claude{
		client: anthropic.NewClient(apiKey, opts...),
		model:  model,
	}
}

func (c *Claude) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.CreateMessages(ctx, anthropic.MessagesRequest{
		Model: anthropic.Model(c.model),
		Messages: []anthropic.Message{
			{
				Role: anthropic.RoleUser,
				Content: []anthropic.MessageContent{
					anthropic.NewTextMessageContent(prompt),
				},
			},
		},
		MaxTokens: claudeMaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("create messages: %w", err)
	}
	if len(resp.Content) == 0 || resp.Content[0].Text == nil {
		return "", fmt.Errorf("no response content")
	}

	return *resp.Content[0].Text, nil
}
