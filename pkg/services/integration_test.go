package services

import (
	"context"
	"fmt"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/dyadlab/fabula/pkg/blob"
	"github.com/dyadlab/fabula/pkg/models"
	"github.com/dyadlab/fabula/pkg/statuscache"
	testdb "github.com/dyadlab/fabula/test/database"
)

// TestServiceIntegration exercises the services working together over a real
// database: study creation, batch materialization, the collaborative data
// flow, and pairing.
func TestServiceIntegration(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	studyService := NewStudyService(client.Client)
	batchService := NewBatchService(client.Client, statuscache.New(time.Minute))
	participantService := NewParticipantService(client.Client)
	contextService := NewContextService(client.Client)
	commentService := NewCommentService(client.Client)
	eventService := NewEventService(client.Client)
	artifactService := NewArtifactService(client.Client, blob.NewMemStore("test-bucket"))
	surveyService := NewSurveyService(client.Client)

	// 1. Create a study with a condition and a survey.
	study, err := studyService.CreateStudyWithRelations(ctx, CreateStudyInput{
		Name:    "Collaborative authoring pilot",
		OwnerID: "researcher-1",
		Config: &models.StudyConfig{
			Collaboration: &models.CollaborationConfig{
				Enabled:          true,
				Rounds:           2,
				FeedbackRequired: true,
			},
		},
		Conditions: []ConditionInput{{Name: "control", Parameters: map[string]any{"temperature": 0.7}}},
		Surveys:    []SurveyInput{{Name: "post-session", Questions: []map[string]any{{"id": "q1", "text": "How was it?"}}}},
	})
	require.NoError(t, err)

	cfg, err := studyService.Config(ctx, study.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Rounds())
	assert.True(t, cfg.FeedbackRequired())

	// 2. Create a batch and materialize a synthetic pair into it.
	batch, err := batchService.Create(ctx, study.ID, "pilot-batch", nil)
	require.NoError(t, err)
	require.NoError(t, batchService.MarkRunning(ctx, batch.ID))

	llm := &models.LLMConfig{Provider: "anthropic", Model: "claude-sonnet-4-5"}
	created, err := participantService.CreateBulk(ctx, []CreateParticipantInput{
		{ID: "pair1-a", StudyID: study.ID, BatchID: batch.ID, UniqueID: "pilot-1",
			Role: models.RoleCollaborative, PartnerID: "pair1-b", LLMConfig: llm},
		{ID: "pair1-b", StudyID: study.ID, BatchID: batch.ID, UniqueID: "pilot-2",
			Role: models.RoleCollaborative, PartnerID: "pair1-a", LLMConfig: llm},
	})
	require.NoError(t, err)
	require.Len(t, created, 2)
	assert.Equal(t, models.ActorSynthetic, created[0].ActorType)
	assert.Equal(t, "pair1-b", created[0].PartnerID)

	listed, err := participantService.ListForBatch(ctx, batch.ID)
	require.NoError(t, err)
	assert.Len(t, listed, 2)

	// 3. Author a story and record it on the agent context.
	doc := &models.CreateStoryParams{
		Title:        "The Hallway",
		StartPassage: "start",
		StorySummary: "a short maze",
		Passages: []models.Passage{
			{ID: "start", Text: "You wake up.", Links: []models.PassageLink{{Label: "Get up", Target: "end"}}},
			{ID: "end", Text: "The end."},
		},
	}
	artifact, err := artifactService.SaveStory(ctx, "pair1-a", "twine", 1, doc)
	require.NoError(t, err)
	assert.Equal(t, 1, artifact.Version)

	loaded, err := artifactService.LoadStory(ctx, artifact.ID)
	require.NoError(t, err)
	assert.Equal(t, "The Hallway", loaded.Title)
	assert.Len(t, loaded.Passages, 2)

	found, err := artifactService.FindForRound(ctx, "pair1-a", 1)
	require.NoError(t, err)
	assert.Equal(t, artifact.ID, found.ID)

	require.NoError(t, contextService.AppendOwnDraft(ctx, "pair1-a", models.StoryDraftEntry{
		Round:           1,
		StoryArtifactID: artifact.ID,
		Version:         artifact.Version,
		Title:           doc.Title,
		PassageCount:    len(doc.Passages),
		CreatedAt:       time.Now(),
	}))

	agentCtx, err := contextService.GetOrCreate(ctx, "pair1-a")
	require.NoError(t, err)
	require.Len(t, agentCtx.OwnStoryDrafts, 1)
	assert.Equal(t, artifact.ID, agentCtx.OwnStoryDrafts[0].StoryArtifactID)

	// 4. Partner reviews the story; feedback becomes readable for round 2.
	comment, err := commentService.Create(ctx, CreateCommentInput{
		AuthorID:            "pair1-b",
		TargetParticipantID: "pair1-a",
		StoryArtifactID:     artifact.ID,
		PassageID:           "start",
		Content:             "Strong opening image.",
		Type:                models.CommentPraise,
		Round:               1,
		Phase:               models.PhaseReview,
	})
	require.NoError(t, err)

	received, err := commentService.Received(ctx, "pair1-a", 1, models.PhaseReview)
	require.NoError(t, err)
	require.Len(t, received, 1)
	assert.Equal(t, comment.ID, received[0].ID)
	assert.Equal(t, models.CommentPraise, received[0].Type)

	byStory, err := commentService.ByStory(ctx, artifact.ID)
	require.NoError(t, err)
	assert.Len(t, byStory, 1)

	require.NoError(t, commentService.Resolve(ctx, comment.ID, 2))
	resolved, err := commentService.Get(ctx, comment.ID)
	require.NoError(t, err)
	assert.True(t, resolved.Resolved)
	assert.Equal(t, 2, resolved.AddressedInRound)

	// 5. State transitions journal events and drive batch progress.
	_, err = participantService.UpdateStateWithEvent(ctx, "pair1-a", models.ParticipantActive, map[string]any{"reason": "session started"})
	require.NoError(t, err)
	_, err = participantService.UpdateStateWithEvent(ctx, "pair1-a", models.ParticipantComplete, nil)
	require.NoError(t, err)

	events, err := eventService.ListForParticipant(ctx, "pair1-a", models.EventStateChange)
	require.NoError(t, err)
	assert.Len(t, events, 2)

	terminal, total, err := participantService.CountTerminalForBatch(ctx, batch.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, terminal)
	assert.Equal(t, 2, total)

	// 6. Survey responses are stored and exportable in bulk.
	_, err = surveyService.SubmitResponse(ctx, study.QuerySurveys().FirstX(ctx).ID, "pair1-a", map[string]any{"q1": "engaging"})
	require.NoError(t, err)

	responses, err := surveyService.ListForParticipants(ctx, []string{"pair1-a", "pair1-b"})
	require.NoError(t, err)
	assert.Len(t, responses, 1)
}

// TestPairingIntegration exercises the symmetric pairing writes over a real
// database.
func TestPairingIntegration(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	studyService := NewStudyService(client.Client)
	participantService := NewParticipantService(client.Client)
	pairingService := NewPairingService(client.Client)

	study, err := studyService.CreateStudyWithRelations(ctx, CreateStudyInput{
		Name:    "Pairing study",
		OwnerID: "researcher-1",
	})
	require.NoError(t, err)

	_, err = participantService.CreateBulk(ctx, []CreateParticipantInput{
		{ID: "h1", StudyID: study.ID, ActorType: models.ActorHuman, Role: models.RoleCollaborative},
		{ID: "h2", StudyID: study.ID, ActorType: models.ActorHuman, Role: models.RoleCollaborative},
		{ID: "s1", StudyID: study.ID, Role: models.RoleCollaborative,
			LLMConfig: &models.LLMConfig{Provider: "openai", Model: "gpt-4o"}},
	})
	require.NoError(t, err)

	pairs, err := pairingService.Pair(ctx, PairConfig{StudyID: study.ID, Strategy: models.PairHumanHuman})
	require.NoError(t, err)
	require.Len(t, pairs, 1)

	// Both rows carry the partner reference.
	a, err := participantService.Get(ctx, pairs[0][0])
	require.NoError(t, err)
	b, err := participantService.Get(ctx, pairs[0][1])
	require.NoError(t, err)
	assert.Equal(t, b.ID, a.PartnerID)
	assert.Equal(t, a.ID, b.PartnerID)
	assert.Equal(t, "auto", a.PairingMetadata["matched_by"])

	// A paired participant cannot be manually paired again.
	err = pairingService.ManualPair(ctx, a.ID, "s1", "researcher-1")
	assert.ErrorIs(t, err, ErrConflict)

	// Unpair clears both sides; manual pairing then works.
	require.NoError(t, pairingService.Unpair(ctx, a.ID))
	require.NoError(t, pairingService.ManualPair(ctx, a.ID, "s1", "researcher-1"))

	a, err = participantService.Get(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, "s1", a.PartnerID)
	assert.Equal(t, "manual", a.PairingMetadata["matched_by"])
	assert.Equal(t, "researcher-1", a.PairingMetadata["paired_by_researcher_id"])
}

// TestWriteContention exercises the serializable read-modify-write paths
// under real concurrency: context appends must not lose updates and story
// versions must stay dense.
func TestWriteContention(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	studyService := NewStudyService(client.Client)
	participantService := NewParticipantService(client.Client)
	contextService := NewContextService(client.Client)
	artifactService := NewArtifactService(client.Client, blob.NewMemStore("test-bucket"))

	study, err := studyService.CreateStudyWithRelations(ctx, CreateStudyInput{
		Name:    "Contention study",
		OwnerID: "researcher-1",
	})
	require.NoError(t, err)
	_, err = participantService.CreateBulk(ctx, []CreateParticipantInput{
		{ID: "p1", StudyID: study.ID, Role: models.RoleCollaborative,
			LLMConfig: &models.LLMConfig{Provider: "anthropic", Model: "claude-sonnet-4-5"}},
	})
	require.NoError(t, err)

	t.Run("concurrent context appends all land", func(t *testing.T) {
		const writers = 50
		var g errgroup.Group
		for i := 0; i < writers; i++ {
			entry := models.StoryDraftEntry{
				Round:           1,
				StoryArtifactID: fmt.Sprintf("draft-%02d", i),
				Version:         i + 1,
				CreatedAt:       time.Now(),
			}
			g.Go(func() error {
				return contextService.AppendOwnDraft(ctx, "p1", entry)
			})
		}
		require.NoError(t, g.Wait())

		agentCtx, err := contextService.GetOrCreate(ctx, "p1")
		require.NoError(t, err)
		require.Len(t, agentCtx.OwnStoryDrafts, writers)

		seen := make(map[string]bool, writers)
		for _, d := range agentCtx.OwnStoryDrafts {
			seen[d.StoryArtifactID] = true
		}
		assert.Len(t, seen, writers)
	})

	t.Run("concurrent story saves keep versions dense", func(t *testing.T) {
		const savers = 10
		doc := &models.CreateStoryParams{
			Title:        "Contended Hallway",
			StartPassage: "start",
			Passages: []models.Passage{
				{ID: "start", Text: "You wake up.", Links: []models.PassageLink{{Label: "Get up", Target: "end"}}},
				{ID: "end", Text: "The end."},
			},
		}
		var g errgroup.Group
		for i := 0; i < savers; i++ {
			g.Go(func() error {
				_, err := artifactService.SaveStory(ctx, "p1", "twine", 1, doc)
				return err
			})
		}
		require.NoError(t, g.Wait())

		artifacts, err := artifactService.ListForParticipants(ctx, []string{"p1"})
		require.NoError(t, err)
		require.Len(t, artifacts, savers)

		versions := make([]int, 0, savers)
		for _, a := range artifacts {
			versions = append(versions, a.Version)
		}
		sort.Ints(versions)
		for i, v := range versions {
			assert.Equal(t, i+1, v)
		}
	})
}
