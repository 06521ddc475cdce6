package orchestrator

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dyadlab/fabula/pkg/models"
	"github.com/dyadlab/fabula/pkg/services"
)

// In-memory store fakes backing the orchestrator tests.

type fakeContextStore struct {
	mu       sync.Mutex
	contexts map[string]*models.AgentContext
}

func newFakeContextStore() *fakeContextStore {
	return &fakeContextStore{contexts: make(map[string]*models.AgentContext)}
}

func (f *fakeContextStore) getLocked(participantID string) *models.AgentContext {
	c, ok := f.contexts[participantID]
	if !ok {
		c = &models.AgentContext{
			ParticipantID: participantID,
			CurrentRound:  1,
			CurrentPhase:  models.PhaseAuthor,
		}
		f.contexts[participantID] = c
	}
	return c
}

func (f *fakeContextStore) GetOrCreate(_ context.Context, participantID string) (*models.AgentContext, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c := f.getLocked(participantID)
	clone := *c
	return &clone, nil
}

func (f *fakeContextStore) UpdatePhase(_ context.Context, participantID string, phase models.Phase) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.getLocked(participantID).CurrentPhase = phase
	return nil
}

func (f *fakeContextStore) AdvanceRound(_ context.Context, participantID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.getLocked(participantID).CurrentRound++
	return nil
}

func (f *fakeContextStore) AppendOwnDraft(_ context.Context, participantID string, entry models.StoryDraftEntry) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	c := f.getLocked(participantID)
	c.OwnStoryDrafts = append(c.OwnStoryDrafts, entry)
	return nil
}

func (f *fakeContextStore) AppendPartnerStoryPlayed(_ context.Context, participantID string, entry models.PartnerStoryEntry) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	c := f.getLocked(participantID)
	c.PartnerStoriesPlayed = append(c.PartnerStoriesPlayed, entry)
	return nil
}

func (f *fakeContextStore) AppendFeedbackGiven(_ context.Context, participantID string, entry models.FeedbackEntry) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	c := f.getLocked(participantID)
	c.FeedbackGiven = append(c.FeedbackGiven, entry)
	return nil
}

func (f *fakeContextStore) AppendFeedbackReceived(_ context.Context, participantID string, entry models.FeedbackEntry) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	c := f.getLocked(participantID)
	c.FeedbackReceived = append(c.FeedbackReceived, entry)
	return nil
}

func (f *fakeContextStore) AppendLearning(_ context.Context, participantID string, entry models.LearningEntry) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	c := f.getLocked(participantID)
	c.CumulativeLearnings = append(c.CumulativeLearnings, entry)
	return nil
}

type fakeCommentStore struct {
	mu       sync.Mutex
	comments []*models.Comment
}

func (f *fakeCommentStore) Create(_ context.Context, input services.CreateCommentInput) (*models.Comment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c := &models.Comment{
		ID:                  fmt.Sprintf("c%d", len(f.comments)+1),
		AuthorID:            input.AuthorID,
		TargetParticipantID: input.TargetParticipantID,
		StoryArtifactID:     input.StoryArtifactID,
		PassageID:           input.PassageID,
		Content:             input.Content,
		Type:                input.Type,
		Round:               input.Round,
		Phase:               input.Phase,
	}
	f.comments = append(f.comments, c)
	return c, nil
}

func (f *fakeCommentStore) Received(_ context.Context, participantID string, round int, phase models.Phase) ([]*models.Comment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*models.Comment
	for _, c := range f.comments {
		if c.TargetParticipantID == participantID && c.Round == round && c.Phase == phase {
			out = append(out, c)
		}
	}
	return out, nil
}

type fakeArtifactStore struct {
	mu        sync.Mutex
	docs      map[string]*models.CreateStoryParams
	artifacts []*models.StoryArtifact
}

func newFakeArtifactStore() *fakeArtifactStore {
	return &fakeArtifactStore{docs: make(map[string]*models.CreateStoryParams)}
}

func (f *fakeArtifactStore) SaveStory(_ context.Context, participantID, pluginType string, round int, doc *models.CreateStoryParams) (*models.StoryArtifact, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	version := 1
	for _, a := range f.artifacts {
		if a.ParticipantID == participantID {
			version++
		}
	}
	artifact := &models.StoryArtifact{
		ID:            fmt.Sprintf("art-%s-v%d", participantID, version),
		ParticipantID: participantID,
		PluginType:    pluginType,
		Version:       version,
		Round:         round,
		Status:        models.ArtifactConfirmed,
	}
	f.artifacts = append(f.artifacts, artifact)
	f.docs[artifact.ID] = doc
	return artifact, nil
}

func (f *fakeArtifactStore) LoadStory(_ context.Context, artifactID string) (*models.CreateStoryParams, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	doc, ok := f.docs[artifactID]
	if !ok {
		return nil, fmt.Errorf("artifact %s not found", artifactID)
	}
	return doc, nil
}

func (f *fakeArtifactStore) FindForRound(_ context.Context, participantID string, round int) (*models.StoryArtifact, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := len(f.artifacts) - 1; i >= 0; i-- {
		a := f.artifacts[i]
		if a.ParticipantID == participantID && a.Round == round {
			return a, nil
		}
	}
	return nil, fmt.Errorf("no artifact for participant %s round %d", participantID, round)
}

type fakeEventStore struct {
	mu     sync.Mutex
	events []*models.Event
}

func (f *fakeEventStore) Append(_ context.Context, participantID string, eventType models.EventType, data map[string]any) (*models.Event, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	ev := &models.Event{
		ID:            fmt.Sprintf("ev%d", len(f.events)+1),
		ParticipantID: participantID,
		Type:          eventType,
		Data:          data,
	}
	f.events = append(f.events, ev)
	return ev, nil
}

func (f *fakeEventStore) byType(eventType models.EventType) []*models.Event {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*models.Event
	for _, ev := range f.events {
		if ev.Type == eventType {
			out = append(out, ev)
		}
	}
	return out
}

type fakeSessionStore struct {
	mu       sync.Mutex
	sessions map[string]*models.HybridSessionState
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{sessions: make(map[string]*models.HybridSessionState)}
}

func (f *fakeSessionStore) Create(_ context.Context, state *models.HybridSessionState) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, exists := f.sessions[state.SessionID]; exists {
		return fmt.Errorf("session %s already exists", state.SessionID)
	}
	f.sessions[state.SessionID] = state
	return nil
}

func (f *fakeSessionStore) Get(_ context.Context, sessionID string) (*models.HybridSessionState, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	state, ok := f.sessions[sessionID]
	if !ok {
		return nil, fmt.Errorf("session %s not found", sessionID)
	}
	clone := *state
	clone.Completions = append([]models.PhaseCompletion(nil), state.Completions...)
	return &clone, nil
}

func (f *fakeSessionStore) Mutate(_ context.Context, sessionID string, fn func(*models.HybridSessionState) error) (*models.HybridSessionState, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	state, ok := f.sessions[sessionID]
	if !ok {
		return nil, fmt.Errorf("session %s not found", sessionID)
	}
	if err := fn(state); err != nil {
		return nil, err
	}
	clone := *state
	clone.Completions = append([]models.PhaseCompletion(nil), state.Completions...)
	return &clone, nil
}

type fakeEnqueuer struct {
	mu       sync.Mutex
	payloads []models.HybridSyntheticPhasePayload
}

func (f *fakeEnqueuer) EnqueueSyntheticPhase(_ context.Context, payload models.HybridSyntheticPhasePayload) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.payloads = append(f.payloads, payload)
	return nil
}

func (f *fakeEnqueuer) all() []models.HybridSyntheticPhasePayload {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.HybridSyntheticPhasePayload(nil), f.payloads...)
}

// scriptedGenerator produces phase-appropriate actions: it authors a fixed
// two-passage story, always picks the first offered choice, and submits a
// fixed feedback set.
type scriptedGenerator struct {
	t *testing.T

	// playAction, when set, overrides the generated play action.
	playAction *models.AgentAction
	// authorAction, when set, overrides the generated author action.
	authorAction *models.AgentAction
}

func (g *scriptedGenerator) GenerateAction(_ context.Context, rc *models.CollaborativeRoleContext) (*models.AgentAction, error) {
	switch rc.Phase {
	case models.PhaseAuthor:
		if g.authorAction != nil {
			return g.authorAction, nil
		}
		return actionWithParams(g.t, models.ActionCreateStory, models.CreateStoryParams{
			Title:        "Fixture Story",
			StartPassage: "start",
			Passages: []models.Passage{
				{ID: "start", Text: "A fork in the road.", Links: []models.PassageLink{
					{Label: "Left", Target: "end"},
					{Label: "Right", Target: "end"},
				}},
				{ID: "end", Text: "The end."},
			},
		}), nil
	case models.PhasePlay:
		if g.playAction != nil {
			return g.playAction, nil
		}
		if rc.PlayState == nil || len(rc.PlayState.Choices) == 0 {
			return nil, fmt.Errorf("play phase without choices")
		}
		return actionWithParams(g.t, models.ActionChoose, models.ChooseParams{
			Label:       rc.PlayState.Choices[0],
			Observation: "took the first path",
		}), nil
	case models.PhaseReview:
		return actionWithParams(g.t, models.ActionSubmitFeedback, models.SubmitFeedbackParams{
			Strengths:         []string{"clear structure"},
			Improvements:      []string{"longer endings"},
			OverallAssessment: "solid draft",
			Comments: []models.FeedbackComment{
				{PassageID: "start", Content: "Good hook.", Type: "praise"},
			},
		}), nil
	}
	return nil, fmt.Errorf("unexpected phase %q", rc.Phase)
}

func actionWithParams(t *testing.T, actionType string, params any) *models.AgentAction {
	t.Helper()
	raw, err := json.Marshal(params)
	require.NoError(t, err)
	return &models.AgentAction{Type: actionType, Params: raw}
}
