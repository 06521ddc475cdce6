// Package llm provides the language-model client contract used by synthetic
// participant workers, with OpenAI and Anthropic implementations.
package llm

import (
	"context"
	"fmt"
	"os"

	"github.com/dyadlab/fabula/pkg/models"
)

// Client generates one agent action per call. Implementations are safe for
// concurrent use.
type Client interface {
	// Generate sends the system and user prompts and parses the response
	// into a structured action.
	Generate(ctx context.Context, systemPrompt, userPrompt string) (*models.AgentAction, error)

	// IsConfigured reports whether the client has credentials and can make
	// API calls.
	IsConfigured() bool
}

// Provider names accepted in LLMConfig.
const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
)

// NewClient builds a client for the given configuration. The API key is read
// from the environment variable named by cfg.APIKeyEnv; a missing key yields
// a client whose IsConfigured reports false.
func NewClient(cfg models.LLMConfig) (Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	switch cfg.Provider {
	case ProviderOpenAI:
		return newOpenAIClient(cfg, apiKeyFor(cfg, "OPENAI_API_KEY")), nil
	case ProviderAnthropic:
		return newAnthropicClient(cfg, apiKeyFor(cfg, "ANTHROPIC_API_KEY")), nil
	default:
		return nil, fmt.Errorf("unknown llm provider %q", cfg.Provider)
	}
}

func apiKeyFor(cfg models.LLMConfig, defaultEnv string) string {
	env := cfg.APIKeyEnv
	if env == "" {
		env = defaultEnv
	}
	return os.Getenv(env)
}
