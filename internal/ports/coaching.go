package ports

import "context"

// CoachingBackend turns a prompt into free-form coaching text. One attempt
// per call; implementations bound the request with their own timeout.
type CoachingBackend interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
