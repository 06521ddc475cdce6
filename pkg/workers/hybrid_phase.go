package workers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dyadlab/fabula/pkg/broker"
	"github.com/dyadlab/fabula/pkg/models"
	"github.com/dyadlab/fabula/pkg/orchestrator"
	"github.com/dyadlab/fabula/pkg/story"
)

// HandleHybridSyntheticPhase executes one synthetic phase of a hybrid
// session. Invalid configuration is a terminal failure; a phase still blocked
// on the human partner retries with backoff; a phase the human side already
// raced to completion returns quietly.
func (w *Workers) HandleHybridSyntheticPhase(ctx context.Context, job *broker.Job) (map[string]any, error) {
	var payload models.HybridSyntheticPhasePayload
	if err := json.Unmarshal(job.Payload, &payload); err != nil {
		return nil, fmt.Errorf("invalid hybrid synthetic phase payload: %w", err)
	}
	if err := payload.Validate(); err != nil {
		return nil, fmt.Errorf("invalid hybrid synthetic phase payload: %w", err)
	}
	log := w.log.With("job_id", job.ID, "session_id", payload.SessionID,
		"participant_id", payload.SyntheticParticipantID)

	// Simulated think-time so the human partner does not see instant replies.
	if payload.ResponseDelayMs > 0 {
		select {
		case <-time.After(time.Duration(payload.ResponseDelayMs) * time.Millisecond):
		case <-ctx.Done():
			return nil, broker.Retryable(ctx.Err())
		}
	}

	client, err := w.newLLM(*payload.LLMConfig)
	if err != nil {
		return nil, err
	}
	if !client.IsConfigured() {
		return nil, fmt.Errorf("llm provider %s is not configured", payload.LLMConfig.Provider)
	}
	adapter := orchestrator.AdapterFor(client, story.DefaultPluginType, models.RoleCollaborative)

	result, err := w.hybrid.TriggerSyntheticPhase(ctx, payload.SessionID, payload.SyntheticParticipantID, adapter)
	if err != nil {
		if errors.Is(err, orchestrator.ErrPhaseBlocked) {
			return nil, broker.Retryable(err)
		}
		return nil, err
	}
	if result == nil {
		log.Info("Synthetic phase already complete")
		return map[string]any{
			"status": models.ResultStatusComplete,
			"note":   "phase was already complete",
		}, nil
	}

	log.Info("Synthetic phase executed", "phase", result.Phase, "round", result.Round)
	return map[string]any{
		"status": models.ResultStatusComplete,
		"phase":  string(result.Phase),
		"round":  result.Round,
	}, nil
}
