package llm

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	"github.com/dyadlab/fabula/pkg/models"
)

type openAIClient struct {
	client *openai.Client
	cfg    models.LLMConfig
	apiKey string
}

func newOpenAIClient(cfg models.LLMConfig, apiKey string) *openAIClient {
	c := &openAIClient{cfg: cfg, apiKey: apiKey}
	if apiKey != "" {
		c.client = openai.NewClient(apiKey)
	}
	return c
}

func (c *openAIClient) IsConfigured() bool {
	return c.client != nil
}

func (c *openAIClient) Generate(ctx context.Context, systemPrompt, userPrompt string) (*models.AgentAction, error) {
	if c.client == nil {
		return nil, fmt.Errorf("openai client not configured: missing API key")
	}

	req := openai.ChatCompletionRequest{
		Model:       c.cfg.Model,
		Temperature: c.cfg.Temperature,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt},
		},
	}
	if c.cfg.MaxTokens > 0 {
		req.MaxTokens = c.cfg.MaxTokens
	}

	resp, err := c.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("openai completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("openai completion: empty response")
	}
	return ParseAction(resp.Choices[0].Message.Content)
}
