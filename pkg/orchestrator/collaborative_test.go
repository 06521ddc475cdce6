package orchestrator

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dyadlab/fabula/pkg/models"
)

func TestFindLink(t *testing.T) {
	links := []models.PassageLink{
		{Label: "Go north", Target: "north"},
		{Label: "Go south", Target: "south"},
	}

	link, ok := findLink(links, "Go south")
	require.True(t, ok)
	assert.Equal(t, "south", link.Target)

	// Case and surrounding whitespace are forgiven.
	link, ok = findLink(links, "  go NORTH ")
	require.True(t, ok)
	assert.Equal(t, "north", link.Target)

	_, ok = findLink(links, "Fly away")
	assert.False(t, ok)
}

func TestSessionStatus(t *testing.T) {
	ok := PhaseResult{Success: true}
	bad := PhaseResult{Success: false}

	assert.Equal(t, models.SessionFailed, sessionStatus(nil))
	assert.Equal(t, models.SessionFailed, sessionStatus([]PhaseResult{bad, bad}))
	assert.Equal(t, models.SessionComplete, sessionStatus([]PhaseResult{ok, ok}))
	assert.Equal(t, models.SessionPartial, sessionStatus([]PhaseResult{ok, bad}))
}

func newTestCollaborative(cfg *models.StudyConfig) (*Collaborative, *fakeContextStore, *fakeCommentStore, *fakeArtifactStore, *fakeEventStore) {
	contexts := newFakeContextStore()
	comments := &fakeCommentStore{}
	artifacts := newFakeArtifactStore()
	events := &fakeEventStore{}
	o := NewCollaborative(contexts, comments, artifacts, events, cfg, "twine")
	return o, contexts, comments, artifacts, events
}

func TestRunSession_SingleRoundComplete(t *testing.T) {
	ctx := context.Background()
	o, contexts, comments, artifacts, events := newTestCollaborative(nil)

	a := &Actor{ID: "p-a", Role: models.RoleCollaborative, Adapter: &scriptedGenerator{t: t}}
	b := &Actor{ID: "p-b", Role: models.RoleCollaborative, Adapter: &scriptedGenerator{t: t}}

	var progress []int
	result, err := o.RunSession(ctx, a, b, func(pct int) { progress = append(progress, pct) })
	require.NoError(t, err)

	assert.Equal(t, models.SessionComplete, result.Status)
	// Three phases, two sides each.
	assert.Len(t, result.PhaseResults, 6)
	for _, r := range result.PhaseResults {
		assert.True(t, r.Success, "phase %s for %s", r.Phase, r.ParticipantID)
	}

	// Both sides authored a story and played the partner's.
	assert.Len(t, artifacts.artifacts, 2)
	for _, pid := range []string{"p-a", "p-b"} {
		c, err := contexts.GetOrCreate(ctx, pid)
		require.NoError(t, err)
		assert.Len(t, c.OwnStoryDrafts, 1)
		assert.Len(t, c.PartnerStoriesPlayed, 1)
		assert.Len(t, c.FeedbackGiven, 1)
		assert.Len(t, c.FeedbackReceived, 1)
		assert.NotEmpty(t, c.CumulativeLearnings)
	}

	// Review comments landed with the reviewer as author.
	require.Len(t, comments.comments, 2)
	for _, c := range comments.comments {
		assert.NotEqual(t, c.AuthorID, c.TargetParticipantID)
		assert.Equal(t, models.CommentPraise, c.Type)
	}

	// Every phase completion was journaled.
	assert.Len(t, events.byType(models.EventPhaseComplete), 6)

	// Progress moved monotonically.
	require.NotEmpty(t, progress)
	for i := 1; i < len(progress); i++ {
		assert.GreaterOrEqual(t, progress[i], progress[i-1])
	}
	assert.Equal(t, 90, progress[len(progress)-1])
}

func TestRunSession_MultiRoundAdvances(t *testing.T) {
	ctx := context.Background()
	cfg := &models.StudyConfig{
		Collaboration: &models.CollaborationConfig{
			Enabled:          true,
			Rounds:           2,
			FeedbackRequired: true,
		},
	}
	o, contexts, _, artifacts, _ := newTestCollaborative(cfg)

	a := &Actor{ID: "p-a", Role: models.RoleCollaborative, Adapter: &scriptedGenerator{t: t}}
	b := &Actor{ID: "p-b", Role: models.RoleCollaborative, Adapter: &scriptedGenerator{t: t}}

	result, err := o.RunSession(ctx, a, b, nil)
	require.NoError(t, err)
	assert.Equal(t, models.SessionComplete, result.Status)
	assert.Len(t, result.PhaseResults, 12)

	// Round advanced once, after round 1.
	for _, pid := range []string{"p-a", "p-b"} {
		c, err := contexts.GetOrCreate(ctx, pid)
		require.NoError(t, err)
		assert.Equal(t, 2, c.CurrentRound)
		assert.Len(t, c.OwnStoryDrafts, 2)
	}
	assert.Len(t, artifacts.artifacts, 4)
}

func TestExecutePhase_AuthorWrongAction(t *testing.T) {
	ctx := context.Background()
	o, _, _, _, events := newTestCollaborative(nil)

	gen := &scriptedGenerator{t: t, authorAction: &models.AgentAction{Type: models.ActionChoose, Params: json.RawMessage(`{"label": "x"}`)}}
	actor := &Actor{ID: "p-a", Role: models.RoleCollaborative, Adapter: gen}
	partner := &Actor{ID: "p-b", Role: models.RoleCollaborative, Adapter: &scriptedGenerator{t: t}}

	result := o.ExecutePhase(ctx, actor, partner, models.PhaseAuthor, 1)
	assert.False(t, result.Success)
	assert.Contains(t, result.Error, "create_story")

	// The failure is still journaled.
	journaled := events.byType(models.EventPhaseComplete)
	require.Len(t, journaled, 1)
	assert.Equal(t, false, journaled[0].Data["success"])
}

func TestExecutePhase_OneSideFailureDoesNotAbortOther(t *testing.T) {
	ctx := context.Background()
	o, _, _, _, _ := newTestCollaborative(nil)

	bad := &Actor{ID: "p-a", Role: models.RoleCollaborative,
		Adapter: &scriptedGenerator{t: t, authorAction: &models.AgentAction{Type: "noop"}}}
	good := &Actor{ID: "p-b", Role: models.RoleCollaborative, Adapter: &scriptedGenerator{t: t}}

	result, err := o.RunSession(ctx, bad, good, nil)
	require.NoError(t, err)
	assert.Equal(t, models.SessionPartial, result.Status)

	// The good side authored and reviewed despite the partner's failures.
	var goodSuccesses int
	for _, r := range result.PhaseResults {
		if r.ParticipantID == "p-b" && r.Success {
			goodSuccesses++
		}
	}
	assert.GreaterOrEqual(t, goodSuccesses, 2)
}

func TestExecutePhase_PlayStopsOnUnknownChoice(t *testing.T) {
	ctx := context.Background()
	o, contexts, _, artifacts, _ := newTestCollaborative(nil)

	// The partner's story must exist before the play phase.
	_, err := artifacts.SaveStory(ctx, "p-b", "twine", 1, &models.CreateStoryParams{
		StartPassage: "start",
		Passages: []models.Passage{
			{ID: "start", Text: "Fork.", Links: []models.PassageLink{{Label: "Left", Target: "end"}}},
			{ID: "end", Text: "Done."},
		},
	})
	require.NoError(t, err)

	gen := &scriptedGenerator{t: t,
		playAction: actionWithParams(t, models.ActionChoose, models.ChooseParams{Label: "Teleport"})}
	actor := &Actor{ID: "p-a", Role: models.RoleCollaborative, Adapter: gen}
	partner := &Actor{ID: "p-b", Role: models.RoleCollaborative}

	result := o.ExecutePhase(ctx, actor, partner, models.PhasePlay, 1)
	assert.True(t, result.Success, "a bad choice ends the play-through, it does not fail the phase")

	c, err := contexts.GetOrCreate(ctx, "p-a")
	require.NoError(t, err)
	require.Len(t, c.PartnerStoriesPlayed, 1)
	assert.Equal(t, "stopped early", c.PartnerStoriesPlayed[0].PlayNotes)
	assert.Empty(t, c.PartnerStoriesPlayed[0].ChoicesMade)
}

func TestExecutePhase_PlayRespectsActionLimit(t *testing.T) {
	ctx := context.Background()
	cfg := &models.StudyConfig{MaxPlayActions: 3}
	o, contexts, _, artifacts, _ := newTestCollaborative(cfg)

	// A story that loops forever.
	_, err := artifacts.SaveStory(ctx, "p-b", "twine", 1, &models.CreateStoryParams{
		StartPassage: "loop",
		Passages: []models.Passage{
			{ID: "loop", Text: "Around again.", Links: []models.PassageLink{{Label: "Again", Target: "loop"}}},
		},
	})
	require.NoError(t, err)

	actor := &Actor{ID: "p-a", Role: models.RoleCollaborative, Adapter: &scriptedGenerator{t: t}}
	partner := &Actor{ID: "p-b", Role: models.RoleCollaborative}

	result := o.ExecutePhase(ctx, actor, partner, models.PhasePlay, 1)
	assert.True(t, result.Success)

	c, err := contexts.GetOrCreate(ctx, "p-a")
	require.NoError(t, err)
	require.Len(t, c.PartnerStoriesPlayed, 1)
	assert.Equal(t, "stopped at the play action limit", c.PartnerStoriesPlayed[0].PlayNotes)
	assert.Len(t, c.PartnerStoriesPlayed[0].ChoicesMade, 3)
}

func TestExecutePhase_PlayWithoutPartnerStoryFails(t *testing.T) {
	ctx := context.Background()
	o, _, _, _, _ := newTestCollaborative(nil)

	actor := &Actor{ID: "p-a", Role: models.RoleCollaborative, Adapter: &scriptedGenerator{t: t}}
	partner := &Actor{ID: "p-b", Role: models.RoleCollaborative}

	result := o.ExecutePhase(ctx, actor, partner, models.PhasePlay, 1)
	assert.False(t, result.Success)
	assert.Contains(t, result.Error, "partner story unavailable")
}

func TestRunSession_FeedbackFlowsIntoNextRound(t *testing.T) {
	ctx := context.Background()
	cfg := &models.StudyConfig{
		Collaboration: &models.CollaborationConfig{
			Enabled:          true,
			Rounds:           2,
			FeedbackRequired: true,
		},
	}
	o, _, _, _, _ := newTestCollaborative(cfg)

	var sawFeedback bool
	gen := &feedbackProbeGenerator{inner: &scriptedGenerator{t: t}, sawFeedback: &sawFeedback}
	a := &Actor{ID: "p-a", Role: models.RoleCollaborative, Adapter: gen}
	b := &Actor{ID: "p-b", Role: models.RoleCollaborative, Adapter: &scriptedGenerator{t: t}}

	result, err := o.RunSession(ctx, a, b, nil)
	require.NoError(t, err)
	assert.Equal(t, models.SessionComplete, result.Status)
	assert.True(t, sawFeedback, "round 2 author phase should carry round 1 review feedback")
}

// feedbackProbeGenerator records whether a round >1 author prompt carried
// partner feedback.
type feedbackProbeGenerator struct {
	inner       ActionGenerator
	sawFeedback *bool
}

func (g *feedbackProbeGenerator) GenerateAction(ctx context.Context, rc *models.CollaborativeRoleContext) (*models.AgentAction, error) {
	if rc.Phase == models.PhaseAuthor && rc.Round > 1 && len(rc.PartnerFeedback) > 0 {
		*g.sawFeedback = true
	}
	return g.inner.GenerateAction(ctx, rc)
}
