package orchestrator

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dyadlab/fabula/pkg/models"
)

// promptRecordingClient captures the prompts of one Generate call.
type promptRecordingClient struct {
	system string
	user   string
	action *models.AgentAction
}

func (c *promptRecordingClient) Generate(_ context.Context, systemPrompt, userPrompt string) (*models.AgentAction, error) {
	c.system = systemPrompt
	c.user = userPrompt
	return c.action, nil
}

func (c *promptRecordingClient) IsConfigured() bool { return true }

func TestAdapterFor_UnknownRoleFallsBack(t *testing.T) {
	a := AdapterFor(nil, "twine", "dungeon_master")
	assert.Equal(t, models.RoleNavigator, a.Role())

	a = AdapterFor(nil, "", models.RoleCollaborative)
	assert.Equal(t, models.RoleCollaborative, a.Role())
}

func TestGenerateAction_PromptAssembly(t *testing.T) {
	client := &promptRecordingClient{
		action: &models.AgentAction{Type: models.ActionChoose, Params: json.RawMessage(`{"label": "Left"}`)},
	}
	a := AdapterFor(client, "twine", models.RoleCollaborative)

	rc := &models.CollaborativeRoleContext{
		Phase: models.PhasePlay,
		Round: 2,
		Role:  models.RoleCollaborative,
		PlayState: &models.PlayState{
			CurrentPassage: models.Passage{ID: "fork", Title: "The Fork", Text: "Two paths diverge."},
			Choices:        []string{"Left", "Right"},
		},
	}
	action, err := a.GenerateAction(context.Background(), rc)
	require.NoError(t, err)
	assert.Equal(t, models.ActionChoose, action.Type)

	assert.Contains(t, client.system, "collaborative storytelling")
	assert.Contains(t, client.system, "PLAY phase")
	assert.Contains(t, client.system, "exactly one JSON object")

	assert.Contains(t, client.user, "Round 2, phase play.")
	assert.Contains(t, client.user, "## The Fork")
	assert.Contains(t, client.user, "Two paths diverge.")
	assert.Contains(t, client.user, "- Left")
	assert.Contains(t, client.user, "- Right")
}

func TestGenerateAction_FeedbackInPrompt(t *testing.T) {
	client := &promptRecordingClient{action: &models.AgentAction{Type: models.ActionCreateStory}}
	a := AdapterFor(client, "twine", models.RoleCollaborative)

	rc := &models.CollaborativeRoleContext{
		Phase: models.PhaseAuthor,
		Round: 2,
		PartnerFeedback: []models.FeedbackComment{
			{PassageID: "start", Content: "Stronger hook needed."},
			{Content: "Tighten the middle."},
		},
	}
	_, err := a.GenerateAction(context.Background(), rc)
	require.NoError(t, err)

	assert.Contains(t, client.system, "AUTHOR phase")
	assert.Contains(t, client.user, "# Feedback on your previous draft")
	assert.Contains(t, client.user, "- [passage start] Stronger hook needed.")
	assert.Contains(t, client.user, "- Tighten the middle.")
}

func TestGenerateSoloAction_PromptAssembly(t *testing.T) {
	client := &promptRecordingClient{action: &models.AgentAction{Type: models.ActionChoose}}
	a := AdapterFor(client, "twine", models.RolePlayer)

	rc := &models.RoleContext{
		State:            map[string]any{"mode": "playing"},
		Role:             models.RolePlayer,
		AvailableActions: []string{models.ActionChoose},
		ActionHistory: []models.AgentAction{
			{Type: models.ActionChoose, Reasoning: "the left path looked safer"},
		},
	}
	_, err := a.GenerateSoloAction(context.Background(), rc)
	require.NoError(t, err)

	assert.Contains(t, client.user, "# Current state")
	assert.Contains(t, client.user, `"mode":"playing"`)
	assert.Contains(t, client.user, "- choose")
	assert.Contains(t, client.user, "# Your recent actions")
	assert.Contains(t, client.user, "- choose: the left path looked safer")
}
