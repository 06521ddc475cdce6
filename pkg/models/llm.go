package models

import "fmt"

// LLMConfig selects the provider and sampling parameters for a synthetic
// participant. Stored as JSON on the participant row; nil for humans.
type LLMConfig struct {
	Provider    string  `json:"provider"` // "openai" or "anthropic"
	Model       string  `json:"model"`
	Temperature float32 `json:"temperature,omitempty"`
	MaxTokens   int     `json:"max_tokens,omitempty"`
	APIKeyEnv   string  `json:"api_key_env,omitempty"` // env var holding the key; provider default if empty
}

// Validate checks the fields required to construct a client.
func (c *LLMConfig) Validate() error {
	if c == nil {
		return fmt.Errorf("llm config is required")
	}
	if c.Provider == "" {
		return fmt.Errorf("llm config: provider is required")
	}
	if c.Model == "" {
		return fmt.Errorf("llm config: model is required")
	}
	if c.Temperature < 0 || c.Temperature > 2 {
		return fmt.Errorf("llm config: temperature %v out of range [0, 2]", c.Temperature)
	}
	if c.MaxTokens < 0 {
		return fmt.Errorf("llm config: max_tokens must be >= 0")
	}
	return nil
}
