package coach

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/bnema/garmin-coach/internal/config"
	"github.com/bnema/garmin-coach/internal/domain"
	"github.com/bnema/garmin-coach/internal/ports"
)

// New builds the backend selected by the provider tag. Unknown providers
// are a construction-time error; everything after construction degrades to
// canned responses instead of failing. Every network backend shares an
// HTTP client bounded by the configured timeout, so a hung server falls
// through to the canned rules instead of stalling the run.
func New(cfg config.Coach) (ports.CoachingBackend, error) {
	provider := domain.Provider(strings.ToLower(cfg.Provider))
	if !provider.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownProvider, cfg.Provider)
	}

	client := &http.Client{Timeout: cfg.Timeout()}

	switch provider {
	case domain.ProviderOllama:
		return NewOllama(cfg.BaseURL, cfg.Model, client), nil

	case domain.ProviderOpenAI:
		return NewOpenAI(cfg.APIKey, cfg.Model, cfg.BaseURL, client), nil

	case domain.ProviderClaude:
		return NewClaude(cfg.APIKey, cfg.Model, cfg.BaseURL, client), nil

	default:
		return Mock{}, nil
	}
}
