package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAction_PlainJSON(t *testing.T) {
	action, err := ParseAction(`{"type": "choose", "params": {"label": "Go north"}}`)
	require.NoError(t, err)
	assert.Equal(t, "choose", action.Type)
	assert.JSONEq(t, `{"label": "Go north"}`, string(action.Params))
}

func TestParseAction_FencedJSON(t *testing.T) {
	raw := "```json\n{\"type\": \"create_story\", \"reasoning\": \"short draft\"}\n```"
	action, err := ParseAction(raw)
	require.NoError(t, err)
	assert.Equal(t, "create_story", action.Type)
	assert.Equal(t, "short draft", action.Reasoning)
}

func TestParseAction_FenceWithoutLanguageTag(t *testing.T) {
	raw := "```\n{\"type\": \"choose\", \"params\": {\"label\": \"Left\"}}\n```"
	action, err := ParseAction(raw)
	require.NoError(t, err)
	assert.Equal(t, "choose", action.Type)
}

func TestParseAction_ProseWrapped(t *testing.T) {
	raw := `Here is my choice for this turn:

{"type": "choose", "params": {"label": "Open the door"}}

Let me know what happens next.`
	action, err := ParseAction(raw)
	require.NoError(t, err)
	assert.Equal(t, "choose", action.Type)
}

func TestParseAction_Errors(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"empty", ""},
		{"whitespace only", "   \n\t"},
		{"no json", "I will choose the first option."},
		{"missing type", `{"params": {"label": "x"}}`},
		{"malformed", `{"type": "choose",`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseAction(tt.raw)
			assert.Error(t, err)
		})
	}
}
