package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validStoryParams() *CreateStoryParams {
	return &CreateStoryParams{
		StartPassage: "start",
		Passages: []Passage{
			{ID: "start", Text: "You wake up.", Links: []PassageLink{
				{Label: "Get up", Target: "hall"},
				{Label: "Sleep in", Target: "end"},
			}},
			{ID: "hall", Text: "A long hallway.", Links: []PassageLink{
				{Label: "Leave", Target: "end"},
			}},
			{ID: "end", Text: "The end."},
		},
	}
}

func TestCreateStoryParams_Validate(t *testing.T) {
	assert.NoError(t, validStoryParams().Validate())

	tests := []struct {
		name   string
		mutate func(*CreateStoryParams)
	}{
		{"no passages", func(p *CreateStoryParams) { p.Passages = nil }},
		{"empty passage id", func(p *CreateStoryParams) { p.Passages[1].ID = "" }},
		{"duplicate passage id", func(p *CreateStoryParams) { p.Passages[1].ID = "start" }},
		{"missing start", func(p *CreateStoryParams) { p.StartPassage = "" }},
		{"unknown start", func(p *CreateStoryParams) { p.StartPassage = "nowhere" }},
		{"dangling link", func(p *CreateStoryParams) { p.Passages[0].Links[0].Target = "nowhere" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validStoryParams()
			tt.mutate(p)
			assert.Error(t, p.Validate())
		})
	}
}

func TestAgentAction_DecodeParams(t *testing.T) {
	action := &AgentAction{
		Type:   ActionChoose,
		Params: json.RawMessage(`{"label": "Get up", "observation": "rested"}`),
	}

	var params ChooseParams
	require.NoError(t, action.DecodeParams(&params))
	assert.Equal(t, "Get up", params.Label)
	assert.Equal(t, "rested", params.Observation)
}

func TestAgentAction_DecodeParamsErrors(t *testing.T) {
	var params ChooseParams

	noParams := &AgentAction{Type: ActionChoose}
	assert.Error(t, noParams.DecodeParams(&params))

	badParams := &AgentAction{Type: ActionChoose, Params: json.RawMessage(`[1, 2]`)}
	assert.Error(t, badParams.DecodeParams(&params))
}
