package workers

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dyadlab/fabula/pkg/broker"
	"github.com/dyadlab/fabula/pkg/llm"
	"github.com/dyadlab/fabula/pkg/models"
	"github.com/dyadlab/fabula/pkg/services"
	"github.com/dyadlab/fabula/pkg/story"
)

type fakeParticipants struct {
	mu   sync.Mutex
	rows map[string]*models.Participant
}

func (f *fakeParticipants) Get(_ context.Context, id string) (*models.Participant, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.rows[id]
	if !ok {
		return nil, services.ErrNotFound
	}
	return p, nil
}

func (f *fakeParticipants) UpdateStateWithEvent(_ context.Context, id string, newState models.ParticipantState, _ map[string]any) (*models.Participant, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.rows[id]
	if !ok {
		return nil, services.ErrNotFound
	}
	p.State = newState
	return p, nil
}

func (f *fakeParticipants) state(id string) models.ParticipantState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.rows[id].State
}

func (f *fakeParticipants) ListForBatch(context.Context, string) ([]*models.Participant, error) {
	return nil, nil
}

func (f *fakeParticipants) CreateBulk(context.Context, []services.CreateParticipantInput) ([]*models.Participant, error) {
	return nil, nil
}

// fakeBatches serves a scripted sequence of statuses; the last one repeats.
type fakeBatches struct {
	mu         sync.Mutex
	statuses   []models.BatchStatus
	recomputes int
}

func (f *fakeBatches) Status(context.Context, string) (models.BatchStatus, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	status := f.statuses[0]
	if len(f.statuses) > 1 {
		f.statuses = f.statuses[1:]
	}
	return status, nil
}

func (f *fakeBatches) RecomputeProgress(context.Context, string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.recomputes++
	return nil
}

func (f *fakeBatches) MarkRunning(context.Context, string) error { return nil }

func (f *fakeBatches) MarkFailed(context.Context, string, string) error { return nil }

func (f *fakeBatches) SetActorsCreated(context.Context, string, int) error { return nil }

func (f *fakeBatches) SetExportPath(context.Context, string, string) error { return nil }

type fakeJournal struct {
	mu     sync.Mutex
	events []*models.Event
}

func (f *fakeJournal) Append(_ context.Context, participantID string, eventType models.EventType, data map[string]any) (*models.Event, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	ev := &models.Event{ParticipantID: participantID, Type: eventType, Data: data}
	f.events = append(f.events, ev)
	return ev, nil
}

func (f *fakeJournal) ListForParticipants(context.Context, []string, ...models.EventType) ([]*models.Event, error) {
	return nil, nil
}

func (f *fakeJournal) count(eventType models.EventType) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, ev := range f.events {
		if ev.Type == eventType {
			n++
		}
	}
	return n
}

type fakeArtifacts struct{}

func (fakeArtifacts) SaveStory(context.Context, string, string, int, *models.CreateStoryParams) (*models.StoryArtifact, error) {
	return nil, errors.New("not implemented")
}
func (fakeArtifacts) LoadStory(context.Context, string) (*models.CreateStoryParams, error) {
	return nil, errors.New("not implemented")
}
func (fakeArtifacts) FindForRound(context.Context, string, int) (*models.StoryArtifact, error) {
	return nil, errors.New("not implemented")
}
func (fakeArtifacts) ListForParticipants(context.Context, []string) ([]*models.StoryArtifact, error) {
	return nil, nil
}

// loopingPlugin accepts every action and completes after completeAfter
// actions (0 means never).
type loopingPlugin struct {
	executed      int
	completeAfter int
}

func (p *loopingPlugin) InitHeadless(context.Context, story.InitConfig) error { return nil }

func (p *loopingPlugin) GetState() map[string]any {
	return map[string]any{"mode": "playing"}
}

func (p *loopingPlugin) GetAvailableActions() []string {
	return []string{models.ActionChoose}
}

func (p *loopingPlugin) ExecuteHeadless(context.Context, *models.AgentAction) (*story.ActionResult, error) {
	p.executed++
	return &story.ActionResult{Success: true}, nil
}
func (p *loopingPlugin) IsComplete() bool {
	return p.completeAfter > 0 && p.executed >= p.completeAfter
}
func (p *loopingPlugin) Destroy() {}

// stubLLM returns a fixed action, optionally after a fixed sleep that
// ignores the context, or blocks until the context ends.
type stubLLM struct {
	action        *models.AgentAction
	err           error
	delay         time.Duration
	blockUntilCtx bool
}

func (s *stubLLM) Generate(ctx context.Context, _, _ string) (*models.AgentAction, error) {
	if s.blockUntilCtx {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	if s.delay > 0 {
		time.Sleep(s.delay)
	}
	if s.err != nil {
		return nil, s.err
	}
	return s.action, nil
}

func (s *stubLLM) IsConfigured() bool { return true }

type syntheticFixture struct {
	workers      *Workers
	participants *fakeParticipants
	batches      *fakeBatches
	journal      *fakeJournal
	plugin       *loopingPlugin
}

func newSyntheticFixture(client llm.Client, plugin *loopingPlugin, statuses ...models.BatchStatus) *syntheticFixture {
	if len(statuses) == 0 {
		statuses = []models.BatchStatus{models.BatchRunning}
	}
	participants := &fakeParticipants{rows: map[string]*models.Participant{
		"p1": {
			ID:        "p1",
			BatchID:   "b1",
			ActorType: models.ActorSynthetic,
			State:     models.ParticipantEnrolled,
			Role:      models.RolePlayer,
			LLMConfig: &models.LLMConfig{Provider: "anthropic", Model: "claude-sonnet-4-5"},
		},
	}}
	batches := &fakeBatches{statuses: statuses}
	journal := &fakeJournal{}

	registry := story.NewRegistry()
	registry.Register("twine", func() story.Plugin { return plugin })

	w := New(Deps{
		Participants: participants,
		Batches:      batches,
		Events:       journal,
		Artifacts:    fakeArtifacts{},
		Plugins:      registry,
		NewLLM:       func(models.LLMConfig) (llm.Client, error) { return client, nil },
	})
	return &syntheticFixture{
		workers:      w,
		participants: participants,
		batches:      batches,
		journal:      journal,
		plugin:       plugin,
	}
}

func syntheticJob(t *testing.T, payload models.SyntheticExecutionPayload) *broker.Job {
	t.Helper()
	raw, err := json.Marshal(payload)
	require.NoError(t, err)
	return &broker.Job{ID: "job1", Queue: models.QueueSyntheticExecution, Payload: raw}
}

func TestHandleSyntheticExecution_CompletesRun(t *testing.T) {
	client := &stubLLM{action: &models.AgentAction{Type: models.ActionChoose}}
	fx := newSyntheticFixture(client, &loopingPlugin{completeAfter: 3})

	result, err := fx.workers.HandleSyntheticExecution(context.Background(), syntheticJob(t, models.SyntheticExecutionPayload{
		ParticipantID: "p1",
		TaskConfig:    &models.TaskConfig{MaxActions: 10},
	}))
	require.NoError(t, err)

	assert.Equal(t, models.ResultStatusComplete, result["status"])
	assert.Equal(t, 3, result["actions_executed"])
	assert.Equal(t, true, result["story_complete"])

	assert.Equal(t, models.ParticipantComplete, fx.participants.state("p1"))
	assert.Equal(t, 1, fx.journal.count(models.EventSessionStart))
	assert.Equal(t, 3, fx.journal.count(models.EventSyntheticAction))
	assert.Equal(t, 1, fx.journal.count(models.EventSessionEnd))
	assert.Equal(t, 1, fx.batches.recomputes)
}

// A pause flips mid-run; the handler must notice within the status re-check
// window and raise a retryable error without journaling further actions.
func TestHandleSyntheticExecution_PauseDetectedMidRun(t *testing.T) {
	client := &stubLLM{action: &models.AgentAction{Type: models.ActionChoose}}
	fx := newSyntheticFixture(client, &loopingPlugin{},
		models.BatchRunning, models.BatchPaused)

	_, err := fx.workers.HandleSyntheticExecution(context.Background(), syntheticJob(t, models.SyntheticExecutionPayload{
		ParticipantID: "p1",
		TaskConfig:    &models.TaskConfig{MaxActions: 50},
	}))
	require.Error(t, err)
	assert.True(t, broker.IsRetryable(err))

	// The pause lands at the first re-check, so exactly pauseCheckEvery
	// actions ran and nothing was journaled after detection.
	assert.Equal(t, pauseCheckEvery, fx.journal.count(models.EventSyntheticAction))
	assert.Equal(t, 0, fx.journal.count(models.EventSessionEnd))
	assert.Equal(t, models.ParticipantActive, fx.participants.state("p1"))
}

// Wall-clock expiry mid-run still completes the participant; the timeout is
// visible in the journal and the job result records the partial progress.
func TestHandleSyntheticExecution_Timeout(t *testing.T) {
	client := &stubLLM{
		action: &models.AgentAction{Type: models.ActionChoose},
		delay:  200 * time.Millisecond,
	}
	fx := newSyntheticFixture(client, &loopingPlugin{})

	result, err := fx.workers.HandleSyntheticExecution(context.Background(), syntheticJob(t, models.SyntheticExecutionPayload{
		ParticipantID: "p1",
		TaskConfig:    &models.TaskConfig{MaxActions: 10, TimeoutMs: 100},
	}))
	require.NoError(t, err)

	assert.Equal(t, models.ResultStatusTimeout, result["status"])
	executed, ok := result["actions_executed"].(int)
	require.True(t, ok)
	assert.Less(t, executed, 10)

	assert.Equal(t, executed, fx.journal.count(models.EventSyntheticAction))
	assert.Equal(t, 1, fx.journal.count(models.EventSyntheticTimeout))
	assert.Equal(t, 1, fx.journal.count(models.EventSessionEnd))
	assert.Equal(t, models.ParticipantComplete, fx.participants.state("p1"))
}

// An LLM call that never returns must end the run as a timeout, not map the
// participant to excluded.
func TestHandleSyntheticExecution_HungCallTimesOut(t *testing.T) {
	client := &stubLLM{blockUntilCtx: true}
	fx := newSyntheticFixture(client, &loopingPlugin{})

	result, err := fx.workers.HandleSyntheticExecution(context.Background(), syntheticJob(t, models.SyntheticExecutionPayload{
		ParticipantID: "p1",
		TaskConfig:    &models.TaskConfig{MaxActions: 10, TimeoutMs: 50},
	}))
	require.NoError(t, err)

	assert.Equal(t, models.ResultStatusTimeout, result["status"])
	assert.Equal(t, 0, result["actions_executed"])
	assert.Equal(t, 1, fx.journal.count(models.EventSyntheticTimeout))
	assert.Equal(t, 0, fx.journal.count(models.EventSyntheticError))
	assert.Equal(t, models.ParticipantComplete, fx.participants.state("p1"))
}

func TestHandleSyntheticExecution_FailureExcludes(t *testing.T) {
	client := &stubLLM{err: errors.New("provider rejected the request")}
	fx := newSyntheticFixture(client, &loopingPlugin{})

	_, err := fx.workers.HandleSyntheticExecution(context.Background(), syntheticJob(t, models.SyntheticExecutionPayload{
		ParticipantID: "p1",
		TaskConfig:    &models.TaskConfig{MaxActions: 10},
	}))
	require.Error(t, err)
	assert.False(t, broker.IsRetryable(err))
	assert.Contains(t, err.Error(), "provider rejected the request")

	assert.Equal(t, models.ParticipantExcluded, fx.participants.state("p1"))
	assert.Equal(t, 1, fx.journal.count(models.EventSyntheticError))
}

func TestHandleSyntheticExecution_TerminalParticipantSkips(t *testing.T) {
	client := &stubLLM{action: &models.AgentAction{Type: models.ActionChoose}}
	fx := newSyntheticFixture(client, &loopingPlugin{})
	fx.participants.rows["p1"].State = models.ParticipantComplete

	result, err := fx.workers.HandleSyntheticExecution(context.Background(), syntheticJob(t, models.SyntheticExecutionPayload{
		ParticipantID: "p1",
	}))
	require.NoError(t, err)
	assert.Equal(t, models.ResultStatusSkipped, result["status"])
	assert.Equal(t, 0, fx.journal.count(models.EventSessionStart))
}
