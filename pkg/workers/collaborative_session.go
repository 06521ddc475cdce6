package workers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dyadlab/fabula/pkg/broker"
	"github.com/dyadlab/fabula/pkg/models"
	"github.com/dyadlab/fabula/pkg/orchestrator"
	"github.com/dyadlab/fabula/pkg/services"
	"github.com/dyadlab/fabula/pkg/story"
)

// HandleCollaborativeSession runs one all-synthetic pair through every round
// and phase synchronously. Each side's terminal state follows its own phase
// outcomes: a side whose phases all succeeded completes even when the partner
// failed.
func (w *Workers) HandleCollaborativeSession(ctx context.Context, job *broker.Job) (map[string]any, error) {
	var payload models.CollaborativeSessionPayload
	if err := json.Unmarshal(job.Payload, &payload); err != nil {
		return nil, fmt.Errorf("invalid collaborative session payload: %w", err)
	}
	if err := payload.Validate(); err != nil {
		return nil, fmt.Errorf("invalid collaborative session payload: %w", err)
	}
	log := w.log.With("job_id", job.ID, "batch_id", payload.BatchID)

	if skip, result, err := w.batchGuard(ctx, payload.BatchID); skip || err != nil {
		return result, err
	}

	pa, err := w.getSessionParticipant(ctx, payload.ParticipantA)
	if err != nil {
		return nil, err
	}
	pb, err := w.getSessionParticipant(ctx, payload.ParticipantB)
	if err != nil {
		return nil, err
	}
	if pa.State.Terminal() && pb.State.Terminal() {
		return map[string]any{
			"status": models.ResultStatusSkipped,
			"reason": "both participants are already terminal",
		}, nil
	}

	cfg, err := w.studies.Config(ctx, payload.StudyID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) || errors.Is(err, services.ErrInvalidInput) {
			return nil, err
		}
		return nil, broker.Retryable(err)
	}

	actors := make([]*orchestrator.Actor, 2)
	for i, p := range []*models.Participant{pa, pb} {
		if p.LLMConfig == nil {
			return nil, fmt.Errorf("participant %s has no llm config", p.ID)
		}
		client, err := w.newLLM(*p.LLMConfig)
		if err != nil {
			return nil, err
		}
		if !client.IsConfigured() {
			return nil, fmt.Errorf("llm provider %s is not configured", p.LLMConfig.Provider)
		}
		actors[i] = &orchestrator.Actor{
			ID:      p.ID,
			Role:    p.Role,
			Adapter: orchestrator.AdapterFor(client, story.DefaultPluginType, p.Role),
		}
	}

	for _, p := range []*models.Participant{pa, pb} {
		if p.State.Terminal() {
			continue
		}
		if _, err := w.participants.UpdateStateWithEvent(ctx, p.ID, models.ParticipantActive, map[string]any{
			"reason": "collaborative session started",
		}); err != nil {
			return nil, broker.Retryable(err)
		}
		if _, err := w.events.Append(ctx, p.ID, models.EventSessionStart, map[string]any{
			"job_id":     job.ID,
			"partner_id": otherOf(p.ID, pa.ID, pb.ID),
		}); err != nil {
			log.Warn("Failed to journal session start", "participant_id", p.ID, "error", err)
		}
	}
	job.ReportProgress(ctx, 10)

	collab := orchestrator.NewCollaborative(w.contexts, w.comments, w.artifacts, w.events, cfg, story.DefaultPluginType)
	result, runErr := collab.RunSession(ctx, actors[0], actors[1], func(pct int) {
		job.ReportProgress(ctx, pct)
	})

	base := context.WithoutCancel(ctx)
	for _, p := range []*models.Participant{pa, pb} {
		w.settleSessionSide(base, p, result)
	}
	w.recomputeBatch(base, payload.BatchID)

	if runErr != nil {
		return nil, runErr
	}
	if result.Status == models.SessionFailed {
		return nil, fmt.Errorf("collaborative session failed on both sides")
	}
	job.ReportProgress(ctx, 100)
	log.Info("Collaborative session finished", "status", result.Status)
	return map[string]any{
		"status":        string(result.Status),
		"phases_run":    len(result.PhaseResults),
		"participant_a": payload.ParticipantA,
		"participant_b": payload.ParticipantB,
	}, nil
}

func (w *Workers) getSessionParticipant(ctx context.Context, id string) (*models.Participant, error) {
	p, err := w.participants.Get(ctx, id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return nil, err
		}
		return nil, broker.Retryable(err)
	}
	return p, nil
}

// settleSessionSide terminalizes one participant from its own phase
// outcomes and journals the session end.
func (w *Workers) settleSessionSide(ctx context.Context, p *models.Participant, result *orchestrator.SessionResult) {
	succeeded, failed := 0, 0
	for _, r := range result.PhaseResults {
		if r.ParticipantID != p.ID {
			continue
		}
		if r.Success {
			succeeded++
		} else {
			failed++
		}
	}

	if _, err := w.events.Append(ctx, p.ID, models.EventSessionEnd, map[string]any{
		"phases_succeeded": succeeded,
		"phases_failed":    failed,
	}); err != nil {
		w.log.Warn("Failed to journal session end", "participant_id", p.ID, "error", err)
	}

	state := models.ParticipantComplete
	reason := "collaborative session finished"
	if failed > 0 {
		state = models.ParticipantExcluded
		reason = "collaborative session phase failures"
	}
	if _, err := w.participants.UpdateStateWithEvent(ctx, p.ID, state, map[string]any{
		"reason":           reason,
		"phases_succeeded": succeeded,
		"phases_failed":    failed,
	}); err != nil {
		w.log.Error("Failed to terminalize session participant",
			"participant_id", p.ID, "error", err)
	}
}

func otherOf(id, a, b string) string {
	if id == a {
		return b
	}
	return a
}
