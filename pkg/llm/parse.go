package llm

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/dyadlab/fabula/pkg/models"
)

// ParseAction extracts a structured action from raw model output. Models
// frequently wrap JSON in markdown fences or surround it with prose, so the
// parser locates the outermost JSON object before decoding.
func ParseAction(raw string) (*models.AgentAction, error) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return nil, fmt.Errorf("empty llm response")
	}

	text = stripFences(text)

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end <= start {
		return nil, fmt.Errorf("no JSON object in llm response")
	}

	var action models.AgentAction
	if err := json.Unmarshal([]byte(text[start:end+1]), &action); err != nil {
		return nil, fmt.Errorf("failed to decode llm action: %w", err)
	}
	if action.Type == "" {
		return nil, fmt.Errorf("llm action missing type")
	}
	return &action, nil
}

// stripFences removes a surrounding markdown code fence, with or without a
// language tag.
func stripFences(text string) string {
	if !strings.HasPrefix(text, "```") {
		return text
	}
	text = strings.TrimPrefix(text, "```")
	if idx := strings.Index(text, "\n"); idx >= 0 {
		// Drop the language tag line ("json", "JSON", or empty).
		firstLine := strings.TrimSpace(text[:idx])
		if firstLine == "" || len(firstLine) <= 10 && !strings.Contains(firstLine, "{") {
			text = text[idx+1:]
		}
	}
	text = strings.TrimSuffix(strings.TrimSpace(text), "```")
	return strings.TrimSpace(text)
}
