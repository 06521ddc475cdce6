package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/dyadlab/fabula/pkg/models"
)

const defaultAnthropicMaxTokens = 4096

type anthropicClient struct {
	client     anthropic.Client
	cfg        models.LLMConfig
	configured bool
}

func newAnthropicClient(cfg models.LLMConfig, apiKey string) *anthropicClient {
	c := &anthropicClient{cfg: cfg}
	if apiKey != "" {
		c.client = anthropic.NewClient(option.WithAPIKey(apiKey))
		c.configured = true
	}
	return c
}

func (c *anthropicClient) IsConfigured() bool {
	return c.configured
}

func (c *anthropicClient) Generate(ctx context.Context, systemPrompt, userPrompt string) (*models.AgentAction, error) {
	if !c.configured {
		return nil, fmt.Errorf("anthropic client not configured: missing API key")
	}

	maxTokens := int64(c.cfg.MaxTokens)
	if maxTokens <= 0 {
		maxTokens = defaultAnthropicMaxTokens
	}

	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(c.cfg.Model),
		MaxTokens: maxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(userPrompt)),
		},
	}
	if systemPrompt != "" {
		params.System = []anthropic.TextBlockParam{{Text: systemPrompt}}
	}
	if c.cfg.Temperature > 0 {
		params.Temperature = anthropic.Float(float64(c.cfg.Temperature))
	}

	msg, err := c.client.Messages.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("anthropic completion: %w", err)
	}

	var sb strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}
	if sb.Len() == 0 {
		return nil, fmt.Errorf("anthropic completion: empty response")
	}
	return ParseAction(sb.String())
}
