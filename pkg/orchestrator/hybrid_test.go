package orchestrator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dyadlab/fabula/pkg/models"
)

func hybridSessionState(sessionID string, actorA, actorB models.ActorType, rounds int) *models.HybridSessionState {
	return &models.HybridSessionState{
		SessionID:    sessionID,
		StudyID:      "study1",
		ParticipantA: "p-a",
		ParticipantB: "p-b",
		ActorTypeA:   actorA,
		ActorTypeB:   actorB,
		Config: &models.StudyConfig{
			Collaboration: &models.CollaborationConfig{Enabled: true, Rounds: rounds},
		},
	}
}

func newTestHybrid() (*Hybrid, *fakeSessionStore, *fakeEnqueuer, *fakeArtifactStore, *fakeEventStore) {
	sessions := newFakeSessionStore()
	enqueuer := &fakeEnqueuer{}
	artifacts := newFakeArtifactStore()
	events := &fakeEventStore{}
	h := NewHybrid(sessions, newFakeContextStore(), &fakeCommentStore{}, artifacts, events, enqueuer, "twine")
	return h, sessions, enqueuer, artifacts, events
}

func completeN(state *models.HybridSessionState, participantID string, n int) {
	cfg := state.Config
	phases := cfg.Phases()
	for i := 0; i < n; i++ {
		state.Completions = append(state.Completions, models.PhaseCompletion{
			ParticipantID: participantID,
			Round:         i/len(phases) + 1,
			Phase:         phases[i%len(phases)],
			Status:        models.CompletionComplete,
		})
	}
}

func TestNextPending(t *testing.T) {
	state := hybridSessionState("s1", models.ActorHuman, models.ActorSynthetic, 2)

	round, phase, done := nextPending(state, "p-a")
	assert.False(t, done)
	assert.Equal(t, 1, round)
	assert.Equal(t, models.PhaseAuthor, phase)

	completeN(state, "p-a", 2)
	round, phase, done = nextPending(state, "p-a")
	assert.False(t, done)
	assert.Equal(t, 1, round)
	assert.Equal(t, models.PhaseReview, phase)

	state.Completions = nil
	completeN(state, "p-a", 4)
	round, phase, done = nextPending(state, "p-a")
	assert.False(t, done)
	assert.Equal(t, 2, round)
	assert.Equal(t, models.PhasePlay, phase)

	state.Completions = nil
	completeN(state, "p-a", 6)
	_, _, done = nextPending(state, "p-a")
	assert.True(t, done)
}

func TestCompletedCount_IgnoresFailures(t *testing.T) {
	state := hybridSessionState("s1", models.ActorHuman, models.ActorHuman, 1)
	state.Completions = []models.PhaseCompletion{
		{ParticipantID: "p-a", Round: 1, Phase: models.PhaseAuthor, Status: models.CompletionComplete},
		{ParticipantID: "p-a", Round: 1, Phase: models.PhasePlay, Status: models.CompletionFailed},
		{ParticipantID: "p-b", Round: 1, Phase: models.PhaseAuthor, Status: models.CompletionComplete},
	}
	assert.Equal(t, 1, completedCount(state, "p-a"))
	assert.Equal(t, 1, completedCount(state, "p-b"))
	assert.Equal(t, 3, totalPhases(state))
}

func TestInitializeSession_SignalsBothSides(t *testing.T) {
	ctx := context.Background()
	h, _, enqueuer, _, _ := newTestHybrid()

	events, unsubscribe := h.Subscribe("s1")
	defer unsubscribe()

	state := hybridSessionState("s1", models.ActorHuman, models.ActorSynthetic, 1)
	require.NoError(t, h.InitializeSession(ctx, state))

	// Both sides get phase:ready for round 1 author.
	ready := map[string]bool{}
	for i := 0; i < 2; i++ {
		ev := <-events
		assert.Equal(t, EventPhaseReady, ev.Type)
		assert.Equal(t, 1, ev.Round)
		assert.Equal(t, models.PhaseAuthor, ev.Phase)
		ready[ev.ParticipantID] = true
	}
	assert.True(t, ready["p-a"])
	assert.True(t, ready["p-b"])

	// Only the synthetic side was enqueued.
	payloads := enqueuer.all()
	require.Len(t, payloads, 1)
	assert.Equal(t, "p-b", payloads[0].SyntheticParticipantID)
	assert.Equal(t, "p-a", payloads[0].HumanParticipantID)
	assert.Equal(t, models.PhaseAuthor, payloads[0].Phase)
}

func TestOnPhaseComplete_BarrierHoldsLeaderBack(t *testing.T) {
	ctx := context.Background()
	h, _, _, _, _ := newTestHybrid()

	state := hybridSessionState("s1", models.ActorHuman, models.ActorHuman, 1)
	require.NoError(t, h.InitializeSession(ctx, state))

	events, unsubscribe := h.Subscribe("s1")
	defer unsubscribe()

	// A completes author; B has not. A is now one ahead and must wait.
	require.NoError(t, h.OnPhaseComplete(ctx, "s1", "p-a", nil))

	ev := <-events
	assert.Equal(t, EventPhaseCompleted, ev.Type)
	assert.Equal(t, "p-a", ev.ParticipantID)
	select {
	case extra := <-events:
		t.Fatalf("unexpected event while blocked: %+v", extra)
	default:
	}

	// B completes author; the counts level out and both sides get play ready.
	require.NoError(t, h.OnPhaseComplete(ctx, "s1", "p-b", nil))

	got := map[string]SessionEvent{}
	for i := 0; i < 3; i++ {
		ev := <-events
		if ev.Type == EventPhaseReady {
			got[ev.ParticipantID] = ev
		}
	}
	require.Len(t, got, 2)
	assert.Equal(t, models.PhasePlay, got["p-a"].Phase)
	assert.Equal(t, models.PhasePlay, got["p-b"].Phase)
}

func TestOnPhaseComplete_SessionCompletes(t *testing.T) {
	ctx := context.Background()
	h, sessions, _, _, journal := newTestHybrid()

	state := hybridSessionState("s1", models.ActorHuman, models.ActorHuman, 1)
	require.NoError(t, h.InitializeSession(ctx, state))

	events, unsubscribe := h.Subscribe("s1")
	defer unsubscribe()

	// Walk both sides through all three phases in lockstep.
	for i := 0; i < 3; i++ {
		require.NoError(t, h.OnPhaseComplete(ctx, "s1", "p-a", nil))
		require.NoError(t, h.OnPhaseComplete(ctx, "s1", "p-b", nil))
	}

	final, err := sessions.Get(ctx, "s1")
	require.NoError(t, err)
	assert.NotNil(t, final.CompletedAt)
	assert.Equal(t, 3, completedCount(final, "p-a"))
	assert.Equal(t, 3, completedCount(final, "p-b"))

	var sawComplete bool
	for len(events) > 0 {
		if ev := <-events; ev.Type == EventSessionComplete {
			sawComplete = true
		}
	}
	assert.True(t, sawComplete)

	// Six phase completions in the journal.
	assert.Len(t, journal.byType(models.EventPhaseComplete), 6)
}

func TestOnPhaseComplete_AfterFinishIsNoOp(t *testing.T) {
	ctx := context.Background()
	h, sessions, _, _, journal := newTestHybrid()

	state := hybridSessionState("s1", models.ActorHuman, models.ActorHuman, 1)
	require.NoError(t, h.InitializeSession(ctx, state))

	for i := 0; i < 3; i++ {
		require.NoError(t, h.OnPhaseComplete(ctx, "s1", "p-a", nil))
		require.NoError(t, h.OnPhaseComplete(ctx, "s1", "p-b", nil))
	}
	journaled := len(journal.byType(models.EventPhaseComplete))

	// A late duplicate submission resolves quietly.
	require.NoError(t, h.OnPhaseComplete(ctx, "s1", "p-a", nil))

	final, err := sessions.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, 3, completedCount(final, "p-a"))
	assert.Len(t, journal.byType(models.EventPhaseComplete), journaled)
}

func TestOnPhaseComplete_EnqueuesSyntheticPartner(t *testing.T) {
	ctx := context.Background()
	h, _, enqueuer, _, _ := newTestHybrid()

	state := hybridSessionState("s1", models.ActorHuman, models.ActorSynthetic, 1)
	state.Config.SyntheticPartner = &models.SyntheticPartnerConfig{
		LLMConfig:       &models.LLMConfig{Provider: "anthropic", Model: "claude-sonnet-4-5"},
		ResponseDelayMs: 250,
	}
	require.NoError(t, h.InitializeSession(ctx, state))
	require.Len(t, enqueuer.all(), 1, "init enqueues the synthetic author phase")

	// Human and synthetic both complete author; the synthetic play phase is
	// enqueued when the counts level.
	require.NoError(t, h.OnPhaseComplete(ctx, "s1", "p-a", nil))
	require.NoError(t, h.OnPhaseComplete(ctx, "s1", "p-b", nil))

	payloads := enqueuer.all()
	require.Len(t, payloads, 2)
	next := payloads[1]
	assert.Equal(t, models.PhasePlay, next.Phase)
	assert.Equal(t, 1, next.Round)
	assert.Equal(t, "p-b", next.SyntheticParticipantID)
	assert.Equal(t, 250, next.ResponseDelayMs)
	require.NotNil(t, next.LLMConfig)
	assert.Equal(t, "anthropic", next.LLMConfig.Provider)
}

func TestTriggerSyntheticPhase_Blocked(t *testing.T) {
	ctx := context.Background()
	h, sessions, _, _, _ := newTestHybrid()

	state := hybridSessionState("s1", models.ActorHuman, models.ActorSynthetic, 1)
	require.NoError(t, sessions.Create(ctx, state))

	// The synthetic side already completed author; the human has not.
	_, err := sessions.Mutate(ctx, "s1", func(s *models.HybridSessionState) error {
		completeN(s, "p-b", 1)
		return nil
	})
	require.NoError(t, err)

	_, err = h.TriggerSyntheticPhase(ctx, "s1", "p-b", &scriptedGenerator{t: t})
	assert.ErrorIs(t, err, ErrPhaseBlocked)
}

func TestTriggerSyntheticPhase_AlreadyDone(t *testing.T) {
	ctx := context.Background()
	h, sessions, _, _, _ := newTestHybrid()

	state := hybridSessionState("s1", models.ActorHuman, models.ActorSynthetic, 1)
	require.NoError(t, sessions.Create(ctx, state))
	_, err := sessions.Mutate(ctx, "s1", func(s *models.HybridSessionState) error {
		completeN(s, "p-b", 3)
		return nil
	})
	require.NoError(t, err)

	result, err := h.TriggerSyntheticPhase(ctx, "s1", "p-b", &scriptedGenerator{t: t})
	require.NoError(t, err)
	assert.Nil(t, result)
}

func TestTriggerSyntheticPhase_ExecutesAndAdvances(t *testing.T) {
	ctx := context.Background()
	h, sessions, _, artifacts, _ := newTestHybrid()

	state := hybridSessionState("s1", models.ActorHuman, models.ActorSynthetic, 1)
	require.NoError(t, sessions.Create(ctx, state))

	result, err := h.TriggerSyntheticPhase(ctx, "s1", "p-b", &scriptedGenerator{t: t})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.Success)
	assert.Equal(t, models.PhaseAuthor, result.Phase)

	// The authored artifact exists and the completion is recorded.
	_, err = artifacts.FindForRound(ctx, "p-b", 1)
	assert.NoError(t, err)

	final, err := sessions.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, 1, completedCount(final, "p-b"))
}

func TestTriggerSyntheticPhase_FailureRecorded(t *testing.T) {
	ctx := context.Background()
	h, sessions, _, _, _ := newTestHybrid()

	state := hybridSessionState("s1", models.ActorHuman, models.ActorSynthetic, 1)
	require.NoError(t, sessions.Create(ctx, state))

	gen := &scriptedGenerator{t: t, authorAction: &models.AgentAction{Type: "noop"}}
	result, err := h.TriggerSyntheticPhase(ctx, "s1", "p-b", gen)
	require.Error(t, err)
	require.NotNil(t, result)
	assert.False(t, result.Success)

	final, getErr := sessions.Get(ctx, "s1")
	require.NoError(t, getErr)
	c := final.CompletionFor("p-b", 1, models.PhaseAuthor)
	require.NotNil(t, c)
	assert.Equal(t, models.CompletionFailed, c.Status)

	// A failed completion does not count toward the barrier.
	assert.Equal(t, 0, completedCount(final, "p-b"))
}

func TestSubscribe_Unsubscribe(t *testing.T) {
	h, _, _, _, _ := newTestHybrid()

	ch1, unsub1 := h.Subscribe("s1")
	ch2, unsub2 := h.Subscribe("s1")
	defer unsub2()

	h.emit(SessionEvent{Type: EventPhaseReady, SessionID: "s1"})
	assert.Len(t, ch1, 1)
	assert.Len(t, ch2, 1)

	<-ch1
	unsub1()
	h.emit(SessionEvent{Type: EventPhaseReady, SessionID: "s1"})
	assert.Len(t, ch1, 0)
	assert.Len(t, ch2, 2)

	// Events for other sessions are not delivered.
	h.emit(SessionEvent{Type: EventPhaseReady, SessionID: "other"})
	assert.Len(t, ch2, 2)
}
