// Package broker provides durable named job queues on PostgreSQL: idempotent
// enqueue, priority ordering, retry with exponential backoff, bounded-
// concurrency worker pools, progress reporting, and graceful shutdown.
package broker

import (
	"context"
	"encoding/json"
	"errors"
	"time"
)

// Sentinel errors for queue operations.
var (
	// ErrNoJobsAvailable indicates no runnable jobs are in the queue.
	ErrNoJobsAvailable = errors.New("no jobs available")

	// ErrAtCapacity indicates the pool's concurrent job limit has been reached.
	ErrAtCapacity = errors.New("at capacity")
)

// retryableError marks a handler failure as transient: the job is re-queued
// with backoff instead of moving to the failed set.
type retryableError struct {
	err error
}

func (e *retryableError) Error() string { return e.err.Error() }
func (e *retryableError) Unwrap() error { return e.err }

// Retryable wraps err so the broker re-queues the job with backoff.
func Retryable(err error) error {
	if err == nil {
		return nil
	}
	return &retryableError{err: err}
}

// IsRetryable reports whether err was marked with Retryable.
func IsRetryable(err error) bool {
	var re *retryableError
	return errors.As(err, &re)
}

// Job is the handler-facing view of a claimed job.
type Job struct {
	ID                string
	Queue             string
	Payload           json.RawMessage
	Priority          int
	AttemptsRemaining int

	progress progressFunc
}

type progressFunc func(ctx context.Context, percent int)

// ReportProgress records the job's progress percentage (best-effort).
func (j *Job) ReportProgress(ctx context.Context, percent int) {
	if j.progress != nil {
		j.progress(ctx, percent)
	}
}

// Handler processes one job. A nil error completes the job; an error wrapped
// with Retryable re-queues it with backoff; any other error is terminal.
// The returned map is persisted as the job result.
type Handler func(ctx context.Context, job *Job) (map[string]any, error)

// FailureCallback fires when a job moves to the failed set (terminal failure
// or retry exhaustion).
type FailureCallback func(jobID string, err error)

// PoolConfig configures one queue's worker pool.
type PoolConfig struct {
	// Queue is the named queue this pool serves.
	Queue string

	// Concurrency is the number of worker goroutines.
	Concurrency int

	// MaxActive is the global limit of concurrently active jobs for this
	// queue across all replicas. Enforced by a database COUNT check.
	MaxActive int

	// PollInterval is the base interval for checking pending jobs.
	PollInterval time.Duration

	// PollIntervalJitter randomizes the poll interval:
	// PollInterval ± PollIntervalJitter.
	PollIntervalJitter time.Duration

	// JobTimeout bounds a single handler invocation.
	JobTimeout time.Duration

	// HeartbeatInterval is how often an active job's heartbeat is refreshed.
	HeartbeatInterval time.Duration

	// BackoffInitial is the first retry delay; it doubles per attempt.
	BackoffInitial time.Duration

	// CompletedRetention and FailedRetention bound how long terminal job
	// rows are kept before the cleanup service sweeps them.
	CompletedRetention time.Duration
	FailedRetention    time.Duration

	// OrphanDetectionInterval and OrphanThreshold control recovery of
	// active jobs whose worker died.
	OrphanDetectionInterval time.Duration
	OrphanThreshold         time.Duration

	// OnFailure is invoked on terminal failures. May be nil.
	OnFailure FailureCallback
}

// DefaultPoolConfig returns built-in defaults for a queue.
func DefaultPoolConfig(queue string) PoolConfig {
	return PoolConfig{
		Queue:                   queue,
		Concurrency:             3,
		MaxActive:               10,
		PollInterval:            time.Second,
		PollIntervalJitter:      500 * time.Millisecond,
		JobTimeout:              15 * time.Minute,
		HeartbeatInterval:       30 * time.Second,
		BackoffInitial:          5 * time.Second,
		CompletedRetention:      24 * time.Hour,
		FailedRetention:         7 * 24 * time.Hour,
		OrphanDetectionInterval: 5 * time.Minute,
		OrphanThreshold:         5 * time.Minute,
	}
}

// Stats summarizes a queue's population.
type Stats struct {
	Waiting   int `json:"waiting"`
	Active    int `json:"active"`
	Completed int `json:"completed"`
	Failed    int `json:"failed"`
	Delayed   int `json:"delayed"`
}

// WorkerHealth contains health information for a single worker.
type WorkerHealth struct {
	ID            string    `json:"id"`
	Status        string    `json:"status"` // "idle" or "working"
	CurrentJobID  string    `json:"current_job_id,omitempty"`
	JobsProcessed int       `json:"jobs_processed"`
	LastActivity  time.Time `json:"last_activity"`
}

// PoolHealth contains health information for one queue's pool.
type PoolHealth struct {
	Queue            string         `json:"queue"`
	IsHealthy        bool           `json:"is_healthy"`
	PodID            string         `json:"pod_id"`
	ActiveWorkers    int            `json:"active_workers"`
	TotalWorkers     int            `json:"total_workers"`
	QueueDepth       int            `json:"queue_depth"`
	WorkerStats      []WorkerHealth `json:"worker_stats"`
	LastOrphanScan   time.Time      `json:"last_orphan_scan"`
	OrphansRecovered int            `json:"orphans_recovered"`
}
