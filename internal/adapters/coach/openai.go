package coach

import (
	"context"
	"fmt"
	"net/http"

	"github.com/bnema/garmin-coach/internal/ports"
	openai "github.com/sashabaranov/go-openai"
)

// OpenAI generates text through the OpenAI chat completions API, or any
// OpenAI-compatible endpoint when a base URL is configured.
type OpenAI struct {
	client *openai.Client
	model  string
}

var _ ports.CoachingBackend = (*OpenAI)(nil)

// NewOpenAI keeps the SDK endpoint when baseURL is empty. A nil client
// falls back to the SDK default, which carries no timeout; callers that
// need a bounded request must pass their own.
func NewOpenAI(apiKey, model, baseURL string, client *http.Client) *OpenAI {
	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL
	}
	if client != nil {
		config.HTTPClient = client
	}

	return &OpenAI{
		client: openai.NewClientWithConfig(config),
		model:  model,
	}
}

func (o *OpenAI) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: o.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("create chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response choices")
	}

	return resp.Choices[0].Message.Content, nil
}
