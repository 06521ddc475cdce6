package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dyadlab/fabula/ent"
	"github.com/dyadlab/fabula/ent/job"
)

// Broker enqueues jobs and inspects queue state. Processing is done by
// per-queue Pools.
type Broker struct {
	client *ent.Client
}

// NewBroker creates a broker backed by the given database client.
func NewBroker(client *ent.Client) *Broker {
	return &Broker{client: client}
}

// JobSpec describes one job for Enqueue and EnqueueBulk.
type JobSpec struct {
	// ID is the caller-supplied job ID. Re-enqueueing an existing ID is a
	// no-op, which makes enqueue idempotent. Empty means a random UUID.
	ID string

	Payload any

	// Priority orders dispatch: lower runs first. Zero means default (10).
	Priority int

	// MaxAttempts bounds retries. Zero means default (3).
	MaxAttempts int

	// Delay postpones the first run.
	Delay time.Duration
}

// Enqueue inserts one job into the named queue. If a job with the same ID
// already exists the call is a no-op and the existing ID is returned.
func (b *Broker) Enqueue(ctx context.Context, queue string, spec JobSpec) (string, error) {
	builder, id, err := b.createBuilder(queue, spec)
	if err != nil {
		return "", err
	}
	if err := builder.
		OnConflictColumns(job.FieldID).
		Ignore().
		Exec(ctx); err != nil {
		return "", fmt.Errorf("failed to enqueue job %s on queue %s: %w", id, queue, err)
	}
	return id, nil
}

// EnqueueBulk inserts many jobs into the named queue in one statement.
// Jobs whose IDs already exist are skipped.
func (b *Broker) EnqueueBulk(ctx context.Context, queue string, specs []JobSpec) ([]string, error) {
	if len(specs) == 0 {
		return nil, nil
	}
	builders := make([]*ent.JobCreate, 0, len(specs))
	ids := make([]string, 0, len(specs))
	for _, spec := range specs {
		builder, id, err := b.createBuilder(queue, spec)
		if err != nil {
			return nil, err
		}
		builders = append(builders, builder)
		ids = append(ids, id)
	}
	if err := b.client.Job.CreateBulk(builders...).
		OnConflictColumns(job.FieldID).
		Ignore().
		Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to bulk enqueue %d jobs on queue %s: %w", len(specs), queue, err)
	}
	return ids, nil
}

func (b *Broker) createBuilder(queue string, spec JobSpec) (*ent.JobCreate, string, error) {
	id := spec.ID
	if id == "" {
		id = uuid.NewString()
	}
	payload, err := toMap(spec.Payload)
	if err != nil {
		return nil, "", fmt.Errorf("failed to encode payload for job %s: %w", id, err)
	}
	priority := spec.Priority
	if priority == 0 {
		priority = 10
	}
	maxAttempts := spec.MaxAttempts
	if maxAttempts == 0 {
		maxAttempts = 3
	}
	builder := b.client.Job.Create().
		SetID(id).
		SetQueue(queue).
		SetPayload(payload).
		SetPriority(priority).
		SetAttemptsRemaining(maxAttempts).
		SetMaxAttempts(maxAttempts).
		SetNextRunAt(time.Now().Add(spec.Delay))
	return builder, id, nil
}

// Get returns the job row for status inspection.
func (b *Broker) Get(ctx context.Context, jobID string) (*ent.Job, error) {
	return b.client.Job.Get(ctx, jobID)
}

// UpdateProgress records a job's progress percentage, clamped to [0, 100].
func (b *Broker) UpdateProgress(ctx context.Context, jobID string, percent int) error {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	return b.client.Job.UpdateOneID(jobID).
		SetProgress(percent).
		Exec(ctx)
}

// Stats returns the population of the named queue.
func (b *Broker) Stats(ctx context.Context, queue string) (*Stats, error) {
	now := time.Now()

	waiting, err := b.client.Job.Query().
		Where(job.QueueEQ(queue), job.StatusEQ(job.StatusPending), job.NextRunAtLTE(now)).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count waiting jobs: %w", err)
	}
	delayed, err := b.client.Job.Query().
		Where(job.QueueEQ(queue), job.StatusEQ(job.StatusPending), job.NextRunAtGT(now)).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count delayed jobs: %w", err)
	}
	active, err := b.client.Job.Query().
		Where(job.QueueEQ(queue), job.StatusEQ(job.StatusActive)).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count active jobs: %w", err)
	}
	completed, err := b.client.Job.Query().
		Where(job.QueueEQ(queue), job.StatusEQ(job.StatusCompleted)).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count completed jobs: %w", err)
	}
	failed, err := b.client.Job.Query().
		Where(job.QueueEQ(queue), job.StatusEQ(job.StatusFailed)).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count failed jobs: %w", err)
	}

	return &Stats{
		Waiting:   waiting,
		Active:    active,
		Completed: completed,
		Failed:    failed,
		Delayed:   delayed,
	}, nil
}

// toMap converts an arbitrary payload into the JSON object form stored in
// the jobs table.
func toMap(payload any) (map[string]interface{}, error) {
	if payload == nil {
		return map[string]interface{}{}, nil
	}
	if m, ok := payload.(map[string]interface{}); ok {
		return m, nil
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	var m map[string]interface{}
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	return m, nil
}
