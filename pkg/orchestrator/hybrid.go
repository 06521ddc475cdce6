package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/dyadlab/fabula/pkg/models"
)

// ErrPhaseBlocked means the participant's next phase cannot start yet because
// the partner has not caught up. Callers retry after the partner advances.
var ErrPhaseBlocked = errors.New("phase blocked on partner")

// Session event types delivered to subscribers.
const (
	EventPhaseReady      = "phase:ready"
	EventPhaseCompleted  = "phase:complete"
	EventSessionComplete = "session:complete"
	EventSessionError    = "error"
)

// SessionEvent is one notification about a hybrid session. PartnerContent
// carries what the participant needs to start the phase: the partner's story
// artifact for a play phase, the prior round's feedback ids for a revision
// author phase.
type SessionEvent struct {
	Type             string         `json:"type"`
	SessionID        string         `json:"session_id"`
	ParticipantID    string         `json:"participant_id,omitempty"`
	Round            int            `json:"round,omitempty"`
	Phase            models.Phase   `json:"phase,omitempty"`
	PartnerContent   map[string]any `json:"partner_content,omitempty"`
	TimeLimitSeconds int            `json:"time_limit_seconds,omitempty"`
	Error            string         `json:"error,omitempty"`
}

// Hybrid coordinates paired sessions that include a human: phases complete
// asynchronously, the persisted session row is the authoritative state, and
// both sides stay within one phase of each other. When the partner of a
// human is synthetic, completing a human phase enqueues the synthetic
// partner's next phase.
type Hybrid struct {
	sessions   SessionStore
	contexts   ContextStore
	comments   CommentStore
	artifacts  ArtifactStore
	events     EventStore
	enqueuer   SyntheticPhaseEnqueuer
	pluginType string
	log        *slog.Logger

	mu   sync.Mutex
	subs map[string]map[chan SessionEvent]struct{}
}

// NewHybrid creates the hybrid orchestrator.
func NewHybrid(sessions SessionStore, contexts ContextStore, comments CommentStore, artifacts ArtifactStore, events EventStore, enqueuer SyntheticPhaseEnqueuer, pluginType string) *Hybrid {
	if pluginType == "" {
		pluginType = "twine"
	}
	return &Hybrid{
		sessions:   sessions,
		contexts:   contexts,
		comments:   comments,
		artifacts:  artifacts,
		events:     events,
		enqueuer:   enqueuer,
		pluginType: pluginType,
		log:        slog.With("component", "hybrid_orchestrator"),
		subs:       make(map[string]map[chan SessionEvent]struct{}),
	}
}

// SessionState returns the persisted session state.
func (h *Hybrid) SessionState(ctx context.Context, sessionID string) (*models.HybridSessionState, error) {
	return h.sessions.Get(ctx, sessionID)
}

// Subscribe returns a channel of events for one session and an unsubscribe
// function. Events are dropped rather than blocking slow consumers.
func (h *Hybrid) Subscribe(sessionID string) (<-chan SessionEvent, func()) {
	ch := make(chan SessionEvent, 16)
	h.mu.Lock()
	if h.subs[sessionID] == nil {
		h.subs[sessionID] = make(map[chan SessionEvent]struct{})
	}
	h.subs[sessionID][ch] = struct{}{}
	h.mu.Unlock()

	return ch, func() {
		h.mu.Lock()
		if set, ok := h.subs[sessionID]; ok {
			delete(set, ch)
			if len(set) == 0 {
				delete(h.subs, sessionID)
			}
		}
		h.mu.Unlock()
	}
}

func (h *Hybrid) emit(ev SessionEvent) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for ch := range h.subs[ev.SessionID] {
		select {
		case ch <- ev:
		default:
		}
	}
}

// InitializeSession persists a new session and signals both sides that the
// first phase is ready. Synthetic sides are enqueued immediately.
func (h *Hybrid) InitializeSession(ctx context.Context, state *models.HybridSessionState) error {
	if state.Completions == nil {
		state.Completions = []models.PhaseCompletion{}
	}
	if err := h.sessions.Create(ctx, state); err != nil {
		return err
	}

	cfg := configOf(state)
	firstPhase := cfg.Phases()[0]
	for _, pid := range []string{state.ParticipantA, state.ParticipantB} {
		h.emitReady(ctx, state, pid, 1, firstPhase)
		if state.ActorTypeOf(pid) == models.ActorSynthetic {
			if err := h.enqueueSynthetic(ctx, state, pid, 1, firstPhase); err != nil {
				return err
			}
		}
	}
	return nil
}

// OnPhaseComplete records a participant's completion of its current phase
// and advances whichever sides the barrier now permits. Completing an
// already-completed phase is a no-op, so a human submission racing the
// synthetic executor resolves quietly.
func (h *Hybrid) OnPhaseComplete(ctx context.Context, sessionID, participantID string, result map[string]any) error {
	var (
		duplicate bool
		doneRound int
		donePhase models.Phase
	)
	state, err := h.sessions.Mutate(ctx, sessionID, func(s *models.HybridSessionState) error {
		round, phase, done := nextPending(s, participantID)
		if done {
			duplicate = true
			return nil
		}
		doneRound, donePhase = round, phase

		now := time.Now()
		if c := s.CompletionFor(participantID, round, phase); c != nil {
			if c.Status == models.CompletionComplete {
				duplicate = true
				return nil
			}
			c.Status = models.CompletionComplete
			c.CompletedAt = &now
			c.Result = result
		} else {
			s.Completions = append(s.Completions, models.PhaseCompletion{
				ParticipantID: participantID,
				PartnerID:     s.PartnerOf(participantID),
				Round:         round,
				Phase:         phase,
				Status:        models.CompletionComplete,
				CompletedAt:   &now,
				Result:        result,
			})
		}

		total := totalPhases(s)
		if completedCount(s, s.ParticipantA) >= total && completedCount(s, s.ParticipantB) >= total {
			s.CompletedAt = &now
		}
		return nil
	})
	if err != nil {
		return err
	}
	if duplicate {
		return nil
	}

	h.emit(SessionEvent{
		Type:          EventPhaseCompleted,
		SessionID:     sessionID,
		ParticipantID: participantID,
		Round:         doneRound,
		Phase:         donePhase,
	})
	if _, evErr := h.events.Append(ctx, participantID, models.EventPhaseComplete, map[string]any{
		"session_id": sessionID,
		"phase":      string(donePhase),
		"round":      doneRound,
		"success":    true,
	}); evErr != nil {
		h.log.Warn("Failed to journal phase completion",
			"session_id", sessionID, "participant_id", participantID, "error", evErr)
	}

	if state.CompletedAt != nil {
		h.emit(SessionEvent{Type: EventSessionComplete, SessionID: sessionID})
		return nil
	}

	partnerID := state.PartnerOf(participantID)
	n := completedCount(state, participantID)
	m := completedCount(state, partnerID)

	// The completer may continue as long as it stays at most one phase
	// ahead of the partner.
	if n <= m {
		h.advanceSide(ctx, state, participantID)
	}
	// The partner was waiting on this completion exactly when the counts
	// are now level.
	if m == n {
		h.advanceSide(ctx, state, partnerID)
	}
	return nil
}

// advanceSide signals the side's next pending phase and enqueues it when the
// side is synthetic.
func (h *Hybrid) advanceSide(ctx context.Context, state *models.HybridSessionState, participantID string) {
	round, phase, done := nextPending(state, participantID)
	if done {
		return
	}
	h.emitReady(ctx, state, participantID, round, phase)
	if state.ActorTypeOf(participantID) == models.ActorSynthetic {
		if err := h.enqueueSynthetic(ctx, state, participantID, round, phase); err != nil {
			h.log.Error("Failed to enqueue synthetic phase",
				"session_id", state.SessionID, "participant_id", participantID,
				"phase", phase, "round", round, "error", err)
			h.emit(SessionEvent{
				Type:          EventSessionError,
				SessionID:     state.SessionID,
				ParticipantID: participantID,
				Round:         round,
				Phase:         phase,
				Error:         err.Error(),
			})
		}
	}
}

func (h *Hybrid) emitReady(ctx context.Context, state *models.HybridSessionState, participantID string, round int, phase models.Phase) {
	content, err := h.partnerContent(ctx, state, participantID, round, phase)
	if err != nil {
		h.log.Warn("Failed to assemble partner content",
			"session_id", state.SessionID, "participant_id", participantID,
			"phase", phase, "round", round, "error", err)
	}
	h.emit(SessionEvent{
		Type:             EventPhaseReady,
		SessionID:        state.SessionID,
		ParticipantID:    participantID,
		Round:            round,
		Phase:            phase,
		PartnerContent:   content,
		TimeLimitSeconds: configOf(state).TimeLimitFor(phase),
	})
}

// partnerContent assembles what the participant needs from its partner to
// start the phase.
func (h *Hybrid) partnerContent(ctx context.Context, state *models.HybridSessionState, participantID string, round int, phase models.Phase) (map[string]any, error) {
	partnerID := state.PartnerOf(participantID)
	switch phase {
	case models.PhasePlay:
		artifact, err := h.artifacts.FindForRound(ctx, partnerID, round)
		if err != nil {
			return nil, err
		}
		return map[string]any{"story_artifact_id": artifact.ID}, nil
	case models.PhaseAuthor:
		if round > 1 && configOf(state).FeedbackRequired() {
			received, err := h.comments.Received(ctx, participantID, round-1, models.PhaseReview)
			if err != nil {
				return nil, err
			}
			ids := make([]string, len(received))
			for i, c := range received {
				ids[i] = c.ID
			}
			return map[string]any{"feedback_ids": ids}, nil
		}
	}
	return nil, nil
}

func (h *Hybrid) enqueueSynthetic(ctx context.Context, state *models.HybridSessionState, syntheticID string, round int, phase models.Phase) error {
	if h.enqueuer == nil {
		return fmt.Errorf("no synthetic phase enqueuer configured")
	}
	cfg := configOf(state)
	payload := models.HybridSyntheticPhasePayload{
		SessionID:              state.SessionID,
		SyntheticParticipantID: syntheticID,
		HumanParticipantID:     state.PartnerOf(syntheticID),
		Phase:                  phase,
		Round:                  round,
	}
	if sp := cfg.SyntheticPartner; sp != nil {
		payload.LLMConfig = sp.LLMConfig
		payload.ResponseDelayMs = sp.ResponseDelayMs
	}
	return h.enqueuer.EnqueueSyntheticPhase(ctx, payload)
}

// TriggerSyntheticPhase executes the synthetic participant's next pending
// phase synchronously. A nil result with nil error means the phase was
// already complete when the trigger ran.
func (h *Hybrid) TriggerSyntheticPhase(ctx context.Context, sessionID, syntheticID string, gen ActionGenerator) (*PhaseResult, error) {
	state, err := h.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	round, phase, done := nextPending(state, syntheticID)
	if done {
		return nil, nil
	}
	partnerID := state.PartnerOf(syntheticID)
	if partnerID == "" {
		return nil, fmt.Errorf("participant %s is not a member of session %s", syntheticID, sessionID)
	}
	if completedCount(state, syntheticID) > completedCount(state, partnerID) {
		return nil, fmt.Errorf("%w: session %s participant %s at round %d phase %s", ErrPhaseBlocked, sessionID, syntheticID, round, phase)
	}

	collab := NewCollaborative(h.contexts, h.comments, h.artifacts, h.events, configOf(state), h.pluginType)
	actor := &Actor{ID: syntheticID, Role: models.RoleCollaborative, Adapter: gen}
	partner := &Actor{ID: partnerID}
	result := collab.ExecutePhase(ctx, actor, partner, phase, round)
	if result.Success {
		if err := h.OnPhaseComplete(ctx, sessionID, syntheticID, result.Data); err != nil {
			return &result, err
		}
		return &result, nil
	}

	// Record the failure so the session state reflects it, then surface the
	// error to the caller for retry handling.
	if _, mutErr := h.sessions.Mutate(ctx, sessionID, func(s *models.HybridSessionState) error {
		now := time.Now()
		if c := s.CompletionFor(syntheticID, round, phase); c != nil {
			if c.Status == models.CompletionComplete {
				return nil
			}
			c.Status = models.CompletionFailed
			c.CompletedAt = &now
			c.Result = map[string]any{"error": result.Error}
			return nil
		}
		s.Completions = append(s.Completions, models.PhaseCompletion{
			ParticipantID: syntheticID,
			PartnerID:     partnerID,
			Round:         round,
			Phase:         phase,
			Status:        models.CompletionFailed,
			CompletedAt:   &now,
			Result:        map[string]any{"error": result.Error},
		})
		return nil
	}); mutErr != nil {
		h.log.Error("Failed to record synthetic phase failure",
			"session_id", sessionID, "participant_id", syntheticID, "error", mutErr)
	}
	h.emit(SessionEvent{
		Type:          EventSessionError,
		SessionID:     sessionID,
		ParticipantID: syntheticID,
		Round:         round,
		Phase:         phase,
		Error:         result.Error,
	})
	return &result, fmt.Errorf("synthetic %s phase of round %d failed: %s", phase, round, result.Error)
}

func configOf(state *models.HybridSessionState) *models.StudyConfig {
	if state.Config != nil {
		return state.Config
	}
	return &models.StudyConfig{}
}

func totalPhases(state *models.HybridSessionState) int {
	cfg := configOf(state)
	return cfg.Rounds() * len(cfg.Phases())
}

// completedCount is the number of phases the participant has completed.
func completedCount(state *models.HybridSessionState, participantID string) int {
	n := 0
	for i := range state.Completions {
		c := &state.Completions[i]
		if c.ParticipantID == participantID && c.Status == models.CompletionComplete {
			n++
		}
	}
	return n
}

// nextPending returns the participant's next (round, phase) to complete, or
// done=true when the participant finished the protocol.
func nextPending(state *models.HybridSessionState, participantID string) (round int, phase models.Phase, done bool) {
	cfg := configOf(state)
	phases := cfg.Phases()
	n := completedCount(state, participantID)
	if n >= cfg.Rounds()*len(phases) {
		return 0, "", true
	}
	return n/len(phases) + 1, phases[n%len(phases)], false
}
