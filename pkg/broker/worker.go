package broker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"entgo.io/ent/dialect/sql"

	"github.com/dyadlab/fabula/ent"
	"github.com/dyadlab/fabula/ent/job"
)

// maxBackoff caps the retry delay regardless of attempt count.
const maxBackoff = 5 * time.Minute

// Worker is a single queue worker that polls for and processes jobs.
type Worker struct {
	id      string
	podID   string
	client  *ent.Client
	config  PoolConfig
	handler Handler
	pool    jobRegistry
	stopCh  chan struct{}
	stopOnce sync.Once
	wg      sync.WaitGroup

	// Health tracking
	mu            sync.RWMutex
	status        string
	currentJobID  string
	jobsProcessed int
	lastActivity  time.Time
}

// jobRegistry is the subset of Pool used by Worker for cancel registration.
type jobRegistry interface {
	RegisterJob(jobID string, cancel context.CancelFunc)
	UnregisterJob(jobID string)
}

func newWorker(id, podID string, client *ent.Client, cfg PoolConfig, handler Handler, pool jobRegistry) *Worker {
	return &Worker{
		id:           id,
		podID:        podID,
		client:       client,
		config:       cfg,
		handler:      handler,
		pool:         pool,
		stopCh:       make(chan struct{}),
		status:       "idle",
		lastActivity: time.Now(),
	}
}

// Start begins the worker polling loop in a goroutine.
func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
}

// Stop signals the worker to stop and waits for it to finish.
// It is safe to call Stop multiple times.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	w.wg.Wait()
}

// Health returns the current worker health status.
func (w *Worker) Health() WorkerHealth {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return WorkerHealth{
		ID:            w.id,
		Status:        w.status,
		CurrentJobID:  w.currentJobID,
		JobsProcessed: w.jobsProcessed,
		LastActivity:  w.lastActivity,
	}
}

func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()

	log := slog.With("worker_id", w.id, "queue", w.config.Queue, "pod_id", w.podID)
	log.Info("Worker started")

	for {
		select {
		case <-w.stopCh:
			log.Info("Worker shutting down")
			return
		case <-ctx.Done():
			log.Info("Context cancelled, worker shutting down")
			return
		default:
			if err := w.pollAndProcess(ctx); err != nil {
				if errors.Is(err, ErrNoJobsAvailable) || errors.Is(err, ErrAtCapacity) {
					w.sleep(w.pollInterval())
					continue
				}
				log.Error("Error processing job", "error", err)
				w.sleep(time.Second) // Brief backoff on error
			}
		}
	}
}

// sleep waits for the given duration or until stop is signalled.
func (w *Worker) sleep(d time.Duration) {
	select {
	case <-w.stopCh:
	case <-time.After(d):
	}
}

// pollAndProcess checks capacity, claims a job, and processes it.
func (w *Worker) pollAndProcess(ctx context.Context) error {
	// 1. Check per-queue capacity (best-effort; racy with concurrent workers
	//    but bounded by Concurrency and mitigated by poll jitter).
	activeCount, err := w.client.Job.Query().
		Where(job.QueueEQ(w.config.Queue), job.StatusEQ(job.StatusActive)).
		Count(ctx)
	if err != nil {
		return fmt.Errorf("checking active jobs: %w", err)
	}
	if activeCount >= w.config.MaxActive {
		return ErrAtCapacity
	}

	// 2. Claim next job
	row, err := w.claimNextJob(ctx)
	if err != nil {
		return err
	}

	log := slog.With("job_id", row.ID, "queue", w.config.Queue, "worker_id", w.id)
	log.Info("Job claimed", "priority", row.Priority, "attempts_remaining", row.AttemptsRemaining)

	w.setStatus("working", row.ID)
	defer w.setStatus("idle", "")

	// 3. Create job context with timeout
	jobCtx, cancelJob := context.WithTimeout(ctx, w.config.JobTimeout)
	defer cancelJob()

	// 4. Register cancel function for API-triggered cancellation
	w.pool.RegisterJob(row.ID, cancelJob)
	defer w.pool.UnregisterJob(row.ID)

	// 5. Start heartbeat
	heartbeatCtx, cancelHeartbeat := context.WithCancel(jobCtx)
	go w.runHeartbeat(heartbeatCtx, row.ID)

	// 6. Execute handler
	result, handlerErr := w.handler(jobCtx, w.jobView(row))

	// Timed-out handlers often surface the deadline as their own error; fold
	// both cases into a single terminal timeout.
	if handlerErr != nil && errors.Is(jobCtx.Err(), context.DeadlineExceeded) {
		handlerErr = fmt.Errorf("job timed out after %v: %w", w.config.JobTimeout, handlerErr)
	}

	// 7. Stop heartbeat
	cancelHeartbeat()

	// 8. Write terminal or retry state (background context: job ctx may be cancelled)
	if err := w.settle(context.Background(), row, result, handlerErr); err != nil {
		log.Error("Failed to settle job", "error", err)
		return err
	}

	w.mu.Lock()
	w.jobsProcessed++
	w.mu.Unlock()

	log.Info("Job processing complete", "error", handlerErr != nil)
	return nil
}

// claimNextJob atomically claims the next runnable job using FOR UPDATE SKIP LOCKED.
func (w *Worker) claimNextJob(ctx context.Context) (*ent.Job, error) {
	tx, err := w.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	// SELECT ... FOR UPDATE SKIP LOCKED
	// Order by priority, then created_at for FIFO within a priority band.
	row, err := tx.Job.Query().
		Where(
			job.QueueEQ(w.config.Queue),
			job.StatusEQ(job.StatusPending),
			job.NextRunAtLTE(time.Now()),
		).
		Order(ent.Asc(job.FieldPriority), ent.Asc(job.FieldCreatedAt)).
		Limit(1).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNoJobsAvailable
		}
		return nil, fmt.Errorf("failed to query pending job: %w", err)
	}

	now := time.Now()
	row, err = row.Update().
		SetStatus(job.StatusActive).
		SetPodID(w.podID).
		SetStartedAt(now).
		SetLastHeartbeatAt(now).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to claim job: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}

	return row, nil
}

// jobView builds the handler-facing Job from the claimed row.
func (w *Worker) jobView(row *ent.Job) *Job {
	payload, err := json.Marshal(row.Payload)
	if err != nil {
		payload = []byte("{}")
	}
	return &Job{
		ID:                row.ID,
		Queue:             row.Queue,
		Payload:           payload,
		Priority:          row.Priority,
		AttemptsRemaining: row.AttemptsRemaining,
		progress: func(ctx context.Context, percent int) {
			if percent < 0 {
				percent = 0
			}
			if percent > 100 {
				percent = 100
			}
			if err := w.client.Job.UpdateOneID(row.ID).
				SetProgress(percent).
				Exec(ctx); err != nil {
				slog.Warn("Progress update failed", "job_id", row.ID, "error", err)
			}
		},
	}
}

// runHeartbeat periodically refreshes last_heartbeat_at for orphan detection.
func (w *Worker) runHeartbeat(ctx context.Context, jobID string) {
	ticker := time.NewTicker(w.config.HeartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := w.client.Job.UpdateOneID(jobID).
				SetLastHeartbeatAt(time.Now()).
				Exec(ctx); err != nil {
				slog.Warn("Heartbeat update failed", "job_id", jobID, "error", err)
			}
		}
	}
}

// settle writes the job's post-execution state: completed, re-queued with
// backoff, or failed.
func (w *Worker) settle(ctx context.Context, row *ent.Job, result map[string]any, handlerErr error) error {
	now := time.Now()

	if handlerErr == nil {
		update := row.Update().
			SetStatus(job.StatusCompleted).
			SetProgress(100).
			SetCompletedAt(now).
			SetRetainUntil(now.Add(w.config.CompletedRetention)).
			ClearPodID()
		if result != nil {
			update = update.SetResult(result)
		}
		return update.Exec(ctx)
	}

	if IsRetryable(handlerErr) && row.AttemptsRemaining > 1 {
		attemptsUsed := row.MaxAttempts - row.AttemptsRemaining + 1
		delay := w.backoff(attemptsUsed)
		slog.Warn("Job failed, scheduling retry",
			"job_id", row.ID,
			"queue", w.config.Queue,
			"attempts_remaining", row.AttemptsRemaining-1,
			"delay", delay,
			"error", handlerErr)
		return row.Update().
			SetStatus(job.StatusPending).
			AddAttemptsRemaining(-1).
			SetNextRunAt(now.Add(delay)).
			SetErrorMessage(handlerErr.Error()).
			ClearPodID().
			ClearLastHeartbeatAt().
			Exec(ctx)
	}

	if err := row.Update().
		SetStatus(job.StatusFailed).
		SetCompletedAt(now).
		SetRetainUntil(now.Add(w.config.FailedRetention)).
		SetErrorMessage(handlerErr.Error()).
		ClearPodID().
		Exec(ctx); err != nil {
		return err
	}
	if w.config.OnFailure != nil {
		w.config.OnFailure(row.ID, handlerErr)
	}
	return nil
}

// backoff returns the exponential retry delay for the given attempt count.
func (w *Worker) backoff(attemptsUsed int) time.Duration {
	delay := w.config.BackoffInitial
	for i := 1; i < attemptsUsed; i++ {
		delay *= 2
		if delay >= maxBackoff {
			return maxBackoff
		}
	}
	if delay > maxBackoff {
		delay = maxBackoff
	}
	return delay
}

// pollInterval returns the poll duration with jitter.
func (w *Worker) pollInterval() time.Duration {
	base := w.config.PollInterval
	jitter := w.config.PollIntervalJitter
	if jitter <= 0 {
		return base
	}
	// Range: [base - jitter, base + jitter]
	offset := time.Duration(rand.Int64N(int64(2 * jitter)))
	return base - jitter + offset
}

// setStatus updates the worker's health tracking state.
func (w *Worker) setStatus(status, jobID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.status = status
	w.currentJobID = jobID
	w.lastActivity = time.Now()
}
