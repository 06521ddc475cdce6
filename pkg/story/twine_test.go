package story

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dyadlab/fabula/pkg/models"
)

func testStoryDocument() *Document {
	return &Document{
		Title:        "The Hallway",
		StartPassage: "start",
		Passages: []models.Passage{
			{ID: "start", Text: "You wake up.", Links: []models.PassageLink{
				{Label: "Get up", Target: "hall"},
				{Label: "Sleep in", Target: "end"},
			}},
			{ID: "hall", Text: "A long hallway.", Links: []models.PassageLink{
				{Label: "Leave", Target: "end"},
			}},
			{ID: "end", Text: "The end."},
		},
	}
}

func chooseAction(t *testing.T, label string) *models.AgentAction {
	t.Helper()
	params, err := json.Marshal(models.ChooseParams{Label: label})
	require.NoError(t, err)
	return &models.AgentAction{Type: models.ActionChoose, Params: params}
}

func TestTwinePlugin_AuthoringMode(t *testing.T) {
	ctx := context.Background()
	p := NewTwinePlugin()
	require.NoError(t, p.InitHeadless(ctx, InitConfig{}))

	state := p.GetState()
	assert.Equal(t, "authoring", state["mode"])
	assert.Equal(t, []string{models.ActionCreateStory}, p.GetAvailableActions())
	assert.False(t, p.IsComplete())

	params, err := json.Marshal(models.CreateStoryParams{
		Passages:     testStoryDocument().Passages,
		StartPassage: "start",
		Title:        "The Hallway",
	})
	require.NoError(t, err)
	result, err := p.ExecuteHeadless(ctx, &models.AgentAction{Type: models.ActionCreateStory, Params: params})
	require.NoError(t, err)
	assert.True(t, result.Success)

	state = p.GetState()
	assert.Equal(t, "playing", state["mode"])
	assert.Equal(t, []string{models.ActionChoose}, p.GetAvailableActions())
}

func TestTwinePlugin_CreateStoryRejectsInvalid(t *testing.T) {
	ctx := context.Background()
	p := NewTwinePlugin()
	require.NoError(t, p.InitHeadless(ctx, InitConfig{}))

	params, err := json.Marshal(models.CreateStoryParams{StartPassage: "nowhere"})
	require.NoError(t, err)
	result, err := p.ExecuteHeadless(ctx, &models.AgentAction{Type: models.ActionCreateStory, Params: params})
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.NotEmpty(t, result.Message)

	// Still in authoring mode after a rejected document.
	assert.Equal(t, []string{models.ActionCreateStory}, p.GetAvailableActions())
}

func TestTwinePlugin_PlayThrough(t *testing.T) {
	ctx := context.Background()
	p := NewTwinePlugin()
	require.NoError(t, p.InitHeadless(ctx, InitConfig{Document: testStoryDocument()}))

	assert.False(t, p.IsComplete())
	state := p.GetState()
	assert.Equal(t, "playing", state["mode"])
	assert.Equal(t, []string{"Get up", "Sleep in"}, state["choices"])

	result, err := p.ExecuteHeadless(ctx, chooseAction(t, "Get up"))
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.False(t, p.IsComplete())

	result, err = p.ExecuteHeadless(ctx, chooseAction(t, "Leave"))
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.True(t, p.IsComplete())

	state = p.GetState()
	assert.Equal(t, true, state["ended"])
	assert.Equal(t, []string{"start", "hall", "end"}, state["visited"])
	assert.Empty(t, p.GetAvailableActions())

	// Choosing after the ending is rejected but not fatal.
	result, err = p.ExecuteHeadless(ctx, chooseAction(t, "Leave"))
	require.NoError(t, err)
	assert.False(t, result.Success)
}

func TestTwinePlugin_UnknownChoice(t *testing.T) {
	ctx := context.Background()
	p := NewTwinePlugin()
	require.NoError(t, p.InitHeadless(ctx, InitConfig{Document: testStoryDocument()}))

	result, err := p.ExecuteHeadless(ctx, chooseAction(t, "Fly away"))
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Contains(t, result.Message, "Fly away")
}

func TestTwinePlugin_UnsupportedAction(t *testing.T) {
	ctx := context.Background()
	p := NewTwinePlugin()
	require.NoError(t, p.InitHeadless(ctx, InitConfig{Document: testStoryDocument()}))

	result, err := p.ExecuteHeadless(ctx, &models.AgentAction{Type: "dance"})
	require.NoError(t, err)
	assert.False(t, result.Success)
}

func TestTwinePlugin_Destroy(t *testing.T) {
	ctx := context.Background()
	p := NewTwinePlugin()
	require.NoError(t, p.InitHeadless(ctx, InitConfig{Document: testStoryDocument()}))

	p.Destroy()
	p.Destroy() // idempotent

	_, err := p.ExecuteHeadless(ctx, chooseAction(t, "Get up"))
	assert.Error(t, err)
}

func TestRegistry(t *testing.T) {
	r := DefaultRegistry()
	assert.Equal(t, []string{"twine"}, r.Types())

	p, err := r.New("")
	require.NoError(t, err)
	assert.IsType(t, &TwinePlugin{}, p)

	_, err = r.New("unknown")
	assert.Error(t, err)
}
