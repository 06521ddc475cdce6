package workers

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/dyadlab/fabula/pkg/broker"
	"github.com/dyadlab/fabula/pkg/models"
	"github.com/dyadlab/fabula/pkg/services"
)

// batchChunkSize bounds participant rows per bulk insert.
const batchChunkSize = 100

// HandleBatchCreation materializes a batch into single-actor synthetic
// participants and enqueues one execution job per participant. Re-running the
// job is safe: participants are keyed by batch-scoped unique IDs and
// execution jobs by deterministic job IDs.
func (w *Workers) HandleBatchCreation(ctx context.Context, job *broker.Job) (map[string]any, error) {
	var payload models.BatchCreationPayload
	if err := json.Unmarshal(job.Payload, &payload); err != nil {
		return nil, fmt.Errorf("invalid batch creation payload: %w", err)
	}
	if err := payload.Validate(); err != nil {
		return nil, fmt.Errorf("invalid batch creation payload: %w", err)
	}
	log := w.log.With("job_id", job.ID, "batch_id", payload.BatchID)

	if err := w.batches.MarkRunning(ctx, payload.BatchID); err != nil {
		return nil, broker.Retryable(err)
	}
	job.ReportProgress(ctx, 5)

	existing, err := w.participants.ListForBatch(ctx, payload.BatchID)
	if err != nil {
		return nil, broker.Retryable(err)
	}
	byUniqueID := make(map[string]*models.Participant, len(existing))
	for _, p := range existing {
		byUniqueID[p.UniqueID] = p
	}

	prefix := batchPrefix(payload.BatchID)
	priority := models.EffectivePriority(payload.Priority)
	participantIDs := make([]string, 0, payload.ActorCount)
	var pending []services.CreateParticipantInput

	flush := func() error {
		if len(pending) == 0 {
			return nil
		}
		if _, err := w.participants.CreateBulk(ctx, pending); err != nil {
			return err
		}
		pending = pending[:0]
		return nil
	}

	for n := 1; n <= payload.ActorCount; n++ {
		uniqueID := fmt.Sprintf("%s-%d", prefix, n)
		if p, ok := byUniqueID[uniqueID]; ok {
			participantIDs = append(participantIDs, p.ID)
			continue
		}
		id := uuid.NewString()
		participantIDs = append(participantIDs, id)
		pending = append(pending, services.CreateParticipantInput{
			ID:          id,
			StudyID:     payload.StudyID,
			BatchID:     payload.BatchID,
			ConditionID: payload.ConditionID,
			UniqueID:    uniqueID,
			ActorType:   models.ActorSynthetic,
			Role:        payload.Role,
			LLMConfig:   payload.LLMConfig,
			Metadata: map[string]any{
				"created_by_batch": payload.BatchID,
				"priority":         int(priority),
				"batch_index":      n,
			},
		})
		if len(pending) >= batchChunkSize {
			if err := flush(); err != nil {
				w.failBatch(ctx, payload.BatchID, err)
				return nil, err
			}
			job.ReportProgress(ctx, 5+75*n/payload.ActorCount)
		}
	}
	if err := flush(); err != nil {
		w.failBatch(ctx, payload.BatchID, err)
		return nil, err
	}
	job.ReportProgress(ctx, 80)

	specs := make([]broker.JobSpec, len(participantIDs))
	for i, pid := range participantIDs {
		specs[i] = broker.JobSpec{
			ID: models.SyntheticExecutionJobID(payload.BatchID, pid),
			Payload: models.SyntheticExecutionPayload{
				ParticipantID:    pid,
				ConditionID:      payload.ConditionID,
				BatchExecutionID: job.ID,
				TaskConfig:       payload.TaskConfig,
				Priority:         priority,
			},
			Priority: int(priority),
		}
	}
	if _, err := w.broker.EnqueueBulk(ctx, models.QueueSyntheticExecution, specs); err != nil {
		w.failBatch(ctx, payload.BatchID, err)
		return nil, err
	}

	if err := w.batches.SetActorsCreated(ctx, payload.BatchID, len(participantIDs)); err != nil {
		return nil, broker.Retryable(err)
	}
	job.ReportProgress(ctx, 100)
	log.Info("Batch materialized",
		"actors_created", len(participantIDs), "jobs_enqueued", len(specs))
	return map[string]any{
		"status":         models.ResultStatusComplete,
		"actors_created": len(participantIDs),
		"jobs_enqueued":  len(specs),
	}, nil
}

// HandleCollaborativeBatchCreation materializes a batch into pre-paired
// synthetic pairs and enqueues one session job per pair.
func (w *Workers) HandleCollaborativeBatchCreation(ctx context.Context, job *broker.Job) (map[string]any, error) {
	var payload models.CollaborativeBatchPayload
	if err := json.Unmarshal(job.Payload, &payload); err != nil {
		return nil, fmt.Errorf("invalid collaborative batch payload: %w", err)
	}
	if err := payload.Validate(); err != nil {
		return nil, fmt.Errorf("invalid collaborative batch payload: %w", err)
	}
	log := w.log.With("job_id", job.ID, "batch_id", payload.BatchID)

	if err := w.batches.MarkRunning(ctx, payload.BatchID); err != nil {
		return nil, broker.Retryable(err)
	}
	job.ReportProgress(ctx, 5)

	existing, err := w.participants.ListForBatch(ctx, payload.BatchID)
	if err != nil {
		return nil, broker.Retryable(err)
	}
	byUniqueID := make(map[string]*models.Participant, len(existing))
	for _, p := range existing {
		byUniqueID[p.UniqueID] = p
	}

	partnerCfg := payload.LLMConfig
	if payload.VaryPartnerConfig && payload.PartnerLLMConfig != nil {
		partnerCfg = payload.PartnerLLMConfig
	}

	prefix := batchPrefix(payload.BatchID)
	priority := models.EffectivePriority(payload.Priority)
	specs := make([]broker.JobSpec, 0, payload.PairCount)
	actorsCreated := len(existing)
	var pending []services.CreateParticipantInput

	flush := func() error {
		if len(pending) == 0 {
			return nil
		}
		created, err := w.participants.CreateBulk(ctx, pending)
		if err != nil {
			return err
		}
		actorsCreated += len(created)
		pending = pending[:0]
		return nil
	}

	for k := 1; k <= payload.PairCount; k++ {
		uidA := fmt.Sprintf("%s-pair%d-A", prefix, k)
		uidB := fmt.Sprintf("%s-pair%d-B", prefix, k)

		var idA, idB string
		if a, okA := byUniqueID[uidA]; okA {
			if b, okB := byUniqueID[uidB]; okB {
				idA, idB = a.ID, b.ID
			}
		}
		if idA == "" {
			idA, idB = uuid.NewString(), uuid.NewString()
			meta := func(index int) map[string]any {
				return map[string]any{
					"created_by_batch": payload.BatchID,
					"priority":         int(priority),
					"batch_index":      index,
				}
			}
			pending = append(pending,
				services.CreateParticipantInput{
					ID:          idA,
					StudyID:     payload.StudyID,
					BatchID:     payload.BatchID,
					ConditionID: payload.ConditionID,
					UniqueID:    uidA,
					ActorType:   models.ActorSynthetic,
					Role:        models.RoleCollaborative,
					PartnerID:   idB,
					LLMConfig:   payload.LLMConfig,
					Metadata:    meta(2*k - 1),
				},
				services.CreateParticipantInput{
					ID:          idB,
					StudyID:     payload.StudyID,
					BatchID:     payload.BatchID,
					ConditionID: payload.ConditionID,
					UniqueID:    uidB,
					ActorType:   models.ActorSynthetic,
					Role:        models.RoleCollaborative,
					PartnerID:   idA,
					LLMConfig:   partnerCfg,
					Metadata:    meta(2 * k),
				},
			)
		}

		specs = append(specs, broker.JobSpec{
			ID: models.CollaborativeSessionJobID(payload.BatchID, idA),
			Payload: models.CollaborativeSessionPayload{
				BatchID:      payload.BatchID,
				StudyID:      payload.StudyID,
				ParticipantA: idA,
				ParticipantB: idB,
				Priority:     priority,
			},
			Priority: int(priority),
		})

		if len(pending) >= batchChunkSize {
			if err := flush(); err != nil {
				w.failBatch(ctx, payload.BatchID, err)
				return nil, err
			}
			job.ReportProgress(ctx, 5+75*k/payload.PairCount)
		}
	}
	if err := flush(); err != nil {
		w.failBatch(ctx, payload.BatchID, err)
		return nil, err
	}
	job.ReportProgress(ctx, 80)

	if _, err := w.broker.EnqueueBulk(ctx, models.QueueCollaborativeSession, specs); err != nil {
		w.failBatch(ctx, payload.BatchID, err)
		return nil, err
	}
	if err := w.batches.SetActorsCreated(ctx, payload.BatchID, actorsCreated); err != nil {
		return nil, broker.Retryable(err)
	}
	job.ReportProgress(ctx, 100)
	log.Info("Collaborative batch materialized",
		"pairs", payload.PairCount, "actors_created", actorsCreated)
	return map[string]any{
		"status":         models.ResultStatusComplete,
		"pairs":          payload.PairCount,
		"actors_created": actorsCreated,
	}, nil
}

// failBatch records a terminal batch failure without masking the handler's
// own error.
func (w *Workers) failBatch(ctx context.Context, batchID string, cause error) {
	if err := w.batches.MarkFailed(context.WithoutCancel(ctx), batchID, cause.Error()); err != nil {
		w.log.Error("Failed to mark batch failed", "batch_id", batchID, "error", err)
	}
}
