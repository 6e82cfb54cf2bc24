package coach

import (
	"context"

	"github.com/bnema/garmin-coach/internal/ports"
)

// Mock is the no-op backend: it answers every prompt from the canned
// rules without a network call.
type Mock struct{}

var _ ports.CoachingBackend = Mock{}

func (Mock) Generate(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	return CannedResponse(prompt), nil
}
