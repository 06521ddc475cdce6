package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dyadlab/fabula/pkg/models"
)

func TestBuildContextSummary_Nil(t *testing.T) {
	assert.Equal(t, "", BuildContextSummary(nil))
}

func TestBuildContextSummary_PositionOnly(t *testing.T) {
	c := &models.AgentContext{CurrentRound: 2, CurrentPhase: models.PhasePlay}
	assert.Equal(t, "Current position: round 2, phase play.\n", BuildContextSummary(c))
}

func TestBuildContextSummary_FullContext(t *testing.T) {
	c := &models.AgentContext{
		ParticipantID: "p1",
		CurrentRound:  2,
		CurrentPhase:  models.PhaseAuthor,
		OwnStoryDrafts: []models.StoryDraftEntry{
			{Round: 1, StoryArtifactID: "a1", Version: 1, Title: "The Hallway", PassageCount: 3, Summary: "a short maze"},
		},
		PartnerStoriesPlayed: []models.PartnerStoryEntry{
			{Round: 1, StoryArtifactID: "a2", ChoicesMade: []string{"Get up", "Leave"}, OverallImpression: "tense"},
		},
		FeedbackGiven: []models.FeedbackEntry{
			{Round: 1, CommentIDs: []string{"c1", "c2"}, OverallAssessment: "promising start"},
		},
		FeedbackReceived: []models.FeedbackEntry{
			{Round: 1, CommentIDs: []string{"c3"}, Strengths: []string{"pacing"}, Improvements: []string{"endings"}},
		},
		CumulativeLearnings: []models.LearningEntry{
			{Round: 1, Category: "storytelling", Insight: "shorter passages read better"},
		},
	}

	want := "Current position: round 2, phase author.\n" +
		"\n## Round 1\n" +
		"- Authored story v1 \"The Hallway\" (3 passages): a short maze\n" +
		"- Played partner story a2, choices: Get up > Leave. Impression: tense\n" +
		"- Gave feedback (2 comments): promising start\n" +
		"- Received feedback (1 comments). Strengths: pacing. Improvements: endings\n" +
		"\n## Learnings\n" +
		"- [round 1, storytelling] shorter passages read better\n"

	assert.Equal(t, want, BuildContextSummary(c))
}

func TestBuildContextSummary_RoundsAscending(t *testing.T) {
	c := &models.AgentContext{
		CurrentRound: 3,
		CurrentPhase: models.PhaseReview,
		OwnStoryDrafts: []models.StoryDraftEntry{
			{Round: 2, Version: 2},
			{Round: 1, Version: 1},
		},
	}

	out := BuildContextSummary(c)
	r1 := strings.Index(out, "## Round 1")
	r2 := strings.Index(out, "## Round 2")
	require.GreaterOrEqual(t, r1, 0)
	require.GreaterOrEqual(t, r2, 0)
	assert.Less(t, r1, r2)
}

func TestBuildContextSummary_Deterministic(t *testing.T) {
	c := &models.AgentContext{
		CurrentRound: 1,
		CurrentPhase: models.PhaseAuthor,
		OwnStoryDrafts: []models.StoryDraftEntry{
			{Round: 1, Version: 1, Title: "Draft"},
		},
		CumulativeLearnings: []models.LearningEntry{
			{Round: 1, Category: "play", Insight: "explore every branch"},
		},
	}

	first := BuildContextSummary(c)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, BuildContextSummary(c))
	}
}
