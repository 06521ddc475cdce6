package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dyadlab/fabula/ent"
	"github.com/dyadlab/fabula/ent/batch"
	"github.com/dyadlab/fabula/ent/participant"
	"github.com/dyadlab/fabula/pkg/models"
	"github.com/dyadlab/fabula/pkg/statuscache"
)

// BatchService manages batch rows, their control status, and progress
// recomputation. Status reads prefer the in-process cache and fall back to
// the store; status writes go to the store first, then the cache.
type BatchService struct {
	client *ent.Client
	cache  *statuscache.Cache
}

// NewBatchService creates a new BatchService
func NewBatchService(client *ent.Client, cache *statuscache.Cache) *BatchService {
	return &BatchService{client: client, cache: cache}
}

// Create inserts a draft batch for a study.
func (s *BatchService) Create(ctx context.Context, studyID, name string, metadata map[string]any) (*ent.Batch, error) {
	if name == "" {
		return nil, NewValidationError("name", "batch name is required")
	}
	builder := s.client.Batch.Create().
		SetID(uuid.NewString()).
		SetStudyID(studyID).
		SetName(name)
	if metadata != nil {
		builder = builder.SetMetadata(metadata)
	}
	row, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create batch for study %s: %w", studyID, err)
	}
	return row, nil
}

// Get fetches a batch by ID.
func (s *BatchService) Get(ctx context.Context, id string) (*ent.Batch, error) {
	row, err := s.client.Batch.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: batch %s", ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to get batch %s: %w", id, err)
	}
	return row, nil
}

// Status returns a batch's status, preferring the cache. A cached terminal
// status is re-checked against the store so a stale cache can never report
// terminal while the batch is actually still running.
func (s *BatchService) Status(ctx context.Context, id string) (models.BatchStatus, error) {
	if cached, ok := s.cache.Get(id); ok {
		if !cached.Terminal() {
			return cached, nil
		}
		row, err := s.Get(ctx, id)
		if err != nil {
			return "", err
		}
		actual := models.BatchStatus(row.Status)
		if actual != cached {
			s.cache.Set(id, actual)
		}
		return actual, nil
	}

	row, err := s.Get(ctx, id)
	if err != nil {
		return "", err
	}
	status := models.BatchStatus(row.Status)
	s.cache.Set(id, status)
	return status, nil
}

// MarkRunning transitions a batch to running and stamps started_at.
func (s *BatchService) MarkRunning(ctx context.Context, id string) error {
	return s.setStatus(ctx, id, models.BatchRunning, func(u *ent.BatchUpdateOne) {
		u.SetStartedAt(time.Now())
	})
}

// Pause asks in-flight work to back off. Only a running batch can pause.
func (s *BatchService) Pause(ctx context.Context, id string) error {
	row, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if models.BatchStatus(row.Status) != models.BatchRunning {
		return fmt.Errorf("%w: batch %s is %s, only running batches pause", ErrConflict, id, row.Status)
	}
	return s.setStatus(ctx, id, models.BatchPaused, nil)
}

// Resume returns a paused batch to running.
func (s *BatchService) Resume(ctx context.Context, id string) error {
	row, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if models.BatchStatus(row.Status) != models.BatchPaused {
		return fmt.Errorf("%w: batch %s is %s, only paused batches resume", ErrConflict, id, row.Status)
	}
	return s.setStatus(ctx, id, models.BatchRunning, nil)
}

// MarkDeleting flags a batch for deletion; in-flight jobs observe the
// terminal status and return skipped.
func (s *BatchService) MarkDeleting(ctx context.Context, id string) error {
	return s.setStatus(ctx, id, models.BatchDeleting, nil)
}

// MarkFailed records a terminal failure with its message.
func (s *BatchService) MarkFailed(ctx context.Context, id, errorMessage string) error {
	return s.setStatus(ctx, id, models.BatchFailed, func(u *ent.BatchUpdateOne) {
		u.SetErrorMessage(errorMessage).
			SetCompletedAt(time.Now())
	})
}

// SetActorsCreated records the declared participant count.
func (s *BatchService) SetActorsCreated(ctx context.Context, id string, count int) error {
	if err := s.client.Batch.UpdateOneID(id).
		SetActorsCreated(count).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to set actors_created for batch %s: %w", id, err)
	}
	return nil
}

// SetExportPath records the blob key of the latest export.
func (s *BatchService) SetExportPath(ctx context.Context, id, path string) error {
	if err := s.client.Batch.UpdateOneID(id).
		SetExportPath(path).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to set export path for batch %s: %w", id, err)
	}
	return nil
}

// RecomputeProgress recounts terminal participants, writes actors_completed,
// and terminalizes the batch to complete when every participant is done.
// Called after any participant terminalization.
func (s *BatchService) RecomputeProgress(ctx context.Context, id string) error {
	total, err := s.client.Participant.Query().
		Where(participant.BatchIDEQ(id)).
		Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count batch %s participants: %w", id, err)
	}
	completed, err := s.client.Participant.Query().
		Where(
			participant.BatchIDEQ(id),
			participant.StateIn(
				participant.State(models.ParticipantComplete),
				participant.State(models.ParticipantExcluded),
			),
		).
		Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count terminal participants of batch %s: %w", id, err)
	}

	row, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	update := row.Update().SetActorsCompleted(completed)

	status := models.BatchStatus(row.Status)
	if completed == total && total > 0 && !status.Terminal() {
		update = update.
			SetStatus(batch.Status(models.BatchComplete)).
			SetCompletedAt(time.Now())
	}
	if err := update.Exec(ctx); err != nil {
		return fmt.Errorf("failed to update progress for batch %s: %w", id, err)
	}
	if completed == total && total > 0 && !status.Terminal() {
		s.cache.Delete(id)
	}
	return nil
}

func (s *BatchService) setStatus(ctx context.Context, id string, status models.BatchStatus, mutate func(*ent.BatchUpdateOne)) error {
	update := s.client.Batch.UpdateOneID(id).
		SetStatus(batch.Status(status))
	if mutate != nil {
		mutate(update)
	}
	if err := update.Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("%w: batch %s", ErrNotFound, id)
		}
		return fmt.Errorf("failed to set batch %s status to %s: %w", id, status, err)
	}
	s.cache.Set(id, status)
	return nil
}
