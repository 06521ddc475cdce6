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
	"github.com/dyadlab/fabula/pkg/services"
	"github.com/dyadlab/fabula/pkg/story"
)

// pauseCheckEvery is how many actions run between batch status re-checks.
const pauseCheckEvery = 5

// actionHistoryWindow bounds the history included in each prompt.
const actionHistoryWindow = 10

// HandleSyntheticExecution drives one synthetic participant through a
// single-actor session: plugin init, an LLM action loop bounded by action
// count and wall clock, then terminalization. A paused batch re-queues the
// job; a terminal batch skips it.
func (w *Workers) HandleSyntheticExecution(ctx context.Context, job *broker.Job) (map[string]any, error) {
	var payload models.SyntheticExecutionPayload
	if err := json.Unmarshal(job.Payload, &payload); err != nil {
		return nil, fmt.Errorf("invalid synthetic execution payload: %w", err)
	}
	if err := payload.Validate(); err != nil {
		return nil, fmt.Errorf("invalid synthetic execution payload: %w", err)
	}

	p, err := w.participants.Get(ctx, payload.ParticipantID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return nil, err
		}
		return nil, broker.Retryable(err)
	}
	log := w.log.With("job_id", job.ID, "participant_id", p.ID, "batch_id", p.BatchID)

	if skip, result, err := w.batchGuard(ctx, p.BatchID); skip || err != nil {
		return result, err
	}
	if p.State.Terminal() {
		return map[string]any{
			"status": models.ResultStatusSkipped,
			"reason": fmt.Sprintf("participant is already %s", p.State),
		}, nil
	}

	if _, err := w.participants.UpdateStateWithEvent(ctx, p.ID, models.ParticipantActive, map[string]any{
		"reason": "synthetic execution started",
	}); err != nil {
		return nil, broker.Retryable(err)
	}
	if _, err := w.events.Append(ctx, p.ID, models.EventSessionStart, map[string]any{
		"job_id": job.ID,
	}); err != nil {
		log.Warn("Failed to journal session start", "error", err)
	}
	job.ReportProgress(ctx, 15)

	return w.runSyntheticSession(ctx, job, p, &payload)
}

func (w *Workers) runSyntheticSession(ctx context.Context, job *broker.Job, p *models.Participant, payload *models.SyntheticExecutionPayload) (map[string]any, error) {
	pluginType := payload.TaskConfig.EffectivePluginType()
	plugin, err := w.plugins.New(pluginType)
	if err != nil {
		return w.failSynthetic(ctx, p, 0, err)
	}
	defer plugin.Destroy()

	initCfg := story.InitConfig{}
	if payload.TaskConfig != nil && payload.TaskConfig.StoryID != "" {
		params, err := w.artifacts.LoadStory(ctx, payload.TaskConfig.StoryID)
		if err != nil {
			return w.failSynthetic(ctx, p, 0, fmt.Errorf("failed to load task story: %w", err))
		}
		initCfg.StoryID = payload.TaskConfig.StoryID
		initCfg.Document = story.FromCreateStory(params)
	}
	if err := plugin.InitHeadless(ctx, initCfg); err != nil {
		return w.failSynthetic(ctx, p, 0, err)
	}

	if p.LLMConfig == nil {
		return w.failSynthetic(ctx, p, 0, fmt.Errorf("participant %s has no llm config", p.ID))
	}
	client, err := w.newLLM(*p.LLMConfig)
	if err != nil {
		return w.failSynthetic(ctx, p, 0, err)
	}
	if !client.IsConfigured() {
		return w.failSynthetic(ctx, p, 0, fmt.Errorf("llm provider %s is not configured", p.LLMConfig.Provider))
	}
	adapter := orchestrator.AdapterFor(client, pluginType, p.Role)

	maxActions := payload.TaskConfig.EffectiveMaxActions()
	deadline := time.Now().Add(payload.TaskConfig.EffectiveTimeout())
	// Action calls run under the session deadline so a hung LLM call ends
	// the run as a timeout, not a failure.
	sessionCtx, cancelSession := context.WithDeadline(ctx, deadline)
	defer cancelSession()
	var history []models.AgentAction
	executed := 0

	for i := 0; i < maxActions && !plugin.IsComplete(); i++ {
		if time.Now().After(deadline) {
			return w.timeoutSynthetic(ctx, p, executed)
		}
		if i > 0 && i%pauseCheckEvery == 0 && p.BatchID != "" {
			status, err := w.batches.Status(ctx, p.BatchID)
			if err == nil {
				if status.Terminal() {
					return map[string]any{
						"status":           models.ResultStatusSkipped,
						"reason":           fmt.Sprintf("batch became %s mid-run", status),
						"actions_executed": executed,
					}, nil
				}
				if status == models.BatchPaused {
					return nil, broker.Retryable(fmt.Errorf("batch %s is paused", p.BatchID))
				}
			}
		}

		rc := &models.RoleContext{
			State:            plugin.GetState(),
			Role:             adapter.Role(),
			AvailableActions: plugin.GetAvailableActions(),
			ActionHistory:    lastN(history, actionHistoryWindow),
		}
		action, err := adapter.GenerateSoloAction(sessionCtx, rc)
		if err != nil {
			if sessionCtx.Err() != nil && ctx.Err() == nil {
				return w.timeoutSynthetic(ctx, p, executed)
			}
			return w.failSynthetic(ctx, p, executed, err)
		}
		result, err := plugin.ExecuteHeadless(sessionCtx, action)
		if err != nil {
			if sessionCtx.Err() != nil && ctx.Err() == nil {
				return w.timeoutSynthetic(ctx, p, executed)
			}
			return w.failSynthetic(ctx, p, executed, err)
		}
		executed++
		history = append(history, *action)

		if _, err := w.events.Append(ctx, p.ID, models.EventSyntheticAction, map[string]any{
			"action":  action.Type,
			"success": result.Success,
			"message": result.Message,
			"index":   executed,
		}); err != nil {
			w.log.Warn("Failed to journal synthetic action",
				"participant_id", p.ID, "error", err)
		}
		job.ReportProgress(ctx, 15+70*executed/maxActions)
	}

	w.endSyntheticSession(ctx, p, executed, plugin.IsComplete())
	if _, err := w.participants.UpdateStateWithEvent(ctx, p.ID, models.ParticipantComplete, map[string]any{
		"reason":           "synthetic execution finished",
		"actions_executed": executed,
	}); err != nil {
		return nil, broker.Retryable(err)
	}
	w.recomputeBatch(ctx, p.BatchID)

	job.ReportProgress(ctx, 100)
	return map[string]any{
		"status":           models.ResultStatusComplete,
		"actions_executed": executed,
		"story_complete":   plugin.IsComplete(),
	}, nil
}

// timeoutSynthetic ends a run that exhausted its wall clock: the participant
// still completes, and the timeout is visible in the journal and the job
// result.
func (w *Workers) timeoutSynthetic(ctx context.Context, p *models.Participant, executed int) (map[string]any, error) {
	base := context.WithoutCancel(ctx)
	if _, err := w.events.Append(base, p.ID, models.EventSyntheticTimeout, map[string]any{
		"actions_executed": executed,
	}); err != nil {
		w.log.Warn("Failed to journal synthetic timeout", "participant_id", p.ID, "error", err)
	}
	w.endSyntheticSession(base, p, executed, false)
	if _, err := w.participants.UpdateStateWithEvent(base, p.ID, models.ParticipantComplete, map[string]any{
		"reason":           "synthetic execution timed out",
		"actions_executed": executed,
	}); err != nil {
		return nil, broker.Retryable(err)
	}
	w.recomputeBatch(base, p.BatchID)
	return map[string]any{
		"status":           models.ResultStatusTimeout,
		"actions_executed": executed,
	}, nil
}

// failSynthetic excludes the participant and surfaces the cause as a terminal
// job error. Cleanup failures are logged, never returned, so they cannot mask
// the cause.
func (w *Workers) failSynthetic(ctx context.Context, p *models.Participant, executed int, cause error) (map[string]any, error) {
	base := context.WithoutCancel(ctx)
	if _, err := w.events.Append(base, p.ID, models.EventSyntheticError, map[string]any{
		"error":            cause.Error(),
		"actions_executed": executed,
	}); err != nil {
		w.log.Warn("Failed to journal synthetic error", "participant_id", p.ID, "error", err)
	}
	w.endSyntheticSession(base, p, executed, false)
	if _, err := w.participants.UpdateStateWithEvent(base, p.ID, models.ParticipantExcluded, map[string]any{
		"reason": "synthetic execution failed",
		"error":  cause.Error(),
	}); err != nil {
		w.log.Error("Failed to exclude participant", "participant_id", p.ID, "error", err)
	}
	w.recomputeBatch(base, p.BatchID)
	return nil, cause
}

func (w *Workers) endSyntheticSession(ctx context.Context, p *models.Participant, executed int, storyComplete bool) {
	if _, err := w.events.Append(ctx, p.ID, models.EventSessionEnd, map[string]any{
		"actions_executed": executed,
		"story_complete":   storyComplete,
	}); err != nil {
		w.log.Warn("Failed to journal session end", "participant_id", p.ID, "error", err)
	}
}

func (w *Workers) recomputeBatch(ctx context.Context, batchID string) {
	if batchID == "" {
		return
	}
	if err := w.batches.RecomputeProgress(ctx, batchID); err != nil {
		w.log.Error("Failed to recompute batch progress", "batch_id", batchID, "error", err)
	}
}

// batchGuard enforces batch control before work starts: terminal batches
// skip, paused batches retry later.
func (w *Workers) batchGuard(ctx context.Context, batchID string) (skip bool, result map[string]any, err error) {
	if batchID == "" {
		return false, nil, nil
	}
	status, err := w.batches.Status(ctx, batchID)
	if err != nil {
		return false, nil, broker.Retryable(err)
	}
	if status.Terminal() {
		return true, map[string]any{
			"status": models.ResultStatusSkipped,
			"reason": fmt.Sprintf("batch %s is %s", batchID, status),
		}, nil
	}
	if status == models.BatchPaused {
		return false, nil, broker.Retryable(fmt.Errorf("batch %s is paused", batchID))
	}
	return false, nil, nil
}
