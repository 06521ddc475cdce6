package broker

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/dyadlab/fabula/ent"
	"github.com/dyadlab/fabula/ent/job"
)

// orphanState tracks orphan detection metrics (thread-safe).
type orphanState struct {
	mu               sync.Mutex
	lastOrphanScan   time.Time
	orphansRecovered int
}

// runOrphanDetection periodically scans for orphaned jobs on this pool's
// queue. All pods run this independently: operations are idempotent.
func (p *Pool) runOrphanDetection(ctx context.Context) {
	ticker := time.NewTicker(p.config.OrphanDetectionInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-p.stopCh:
			return
		case <-ticker.C:
			if err := p.detectAndRecoverOrphans(ctx); err != nil {
				slog.Error("Orphan detection failed", "queue", p.config.Queue, "error", err)
			}
		}
	}
}

// detectAndRecoverOrphans finds active jobs with stale heartbeats and either
// re-queues them (attempts left) or marks them failed.
func (p *Pool) detectAndRecoverOrphans(ctx context.Context) error {
	threshold := time.Now().Add(-p.config.OrphanThreshold)

	orphans, err := p.client.Job.Query().
		Where(
			job.QueueEQ(p.config.Queue),
			job.StatusEQ(job.StatusActive),
			job.LastHeartbeatAtNotNil(),
			job.LastHeartbeatAtLT(threshold),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query orphaned jobs: %w", err)
	}

	if len(orphans) == 0 {
		p.orphans.mu.Lock()
		p.orphans.lastOrphanScan = time.Now()
		p.orphans.mu.Unlock()
		return nil
	}

	slog.Warn("Detected orphaned jobs", "queue", p.config.Queue, "count", len(orphans))

	recovered := 0
	for _, row := range orphans {
		if err := p.recoverOrphanedJob(ctx, row); err != nil {
			slog.Error("Failed to recover orphaned job",
				"job_id", row.ID,
				"error", err)
			continue
		}
		recovered++
	}

	p.orphans.mu.Lock()
	p.orphans.lastOrphanScan = time.Now()
	p.orphans.orphansRecovered += recovered
	p.orphans.mu.Unlock()

	return nil
}

// recoverOrphanedJob re-queues a single orphan, or fails it when retries
// are exhausted.
func (p *Pool) recoverOrphanedJob(ctx context.Context, row *ent.Job) error {
	podID := "unknown"
	if row.PodID != nil {
		podID = *row.PodID
	}
	lastHeartbeat := "unknown"
	if row.LastHeartbeatAt != nil {
		lastHeartbeat = row.LastHeartbeatAt.Format(time.RFC3339)
	}
	log := slog.With("job_id", row.ID, "queue", p.config.Queue, "old_pod_id", podID)

	now := time.Now()
	reason := fmt.Sprintf("orphaned: no heartbeat from pod %s since %s", podID, lastHeartbeat)

	if row.AttemptsRemaining > 1 {
		err := row.Update().
			SetStatus(job.StatusPending).
			AddAttemptsRemaining(-1).
			SetNextRunAt(now).
			SetErrorMessage(reason).
			ClearPodID().
			ClearLastHeartbeatAt().
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to re-queue orphaned job: %w", err)
		}
		log.Warn("Orphaned job re-queued", "last_heartbeat", lastHeartbeat)
		return nil
	}

	err := row.Update().
		SetStatus(job.StatusFailed).
		SetCompletedAt(now).
		SetRetainUntil(now.Add(p.config.FailedRetention)).
		SetErrorMessage(reason).
		ClearPodID().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to mark orphaned job as failed: %w", err)
	}
	if p.config.OnFailure != nil {
		p.config.OnFailure(row.ID, fmt.Errorf("%s", reason))
	}
	log.Warn("Orphaned job marked as failed", "last_heartbeat", lastHeartbeat)
	return nil
}

// CleanupStartupOrphans performs a one-time recovery of jobs owned by this
// pod that were active when the pod previously crashed.
// Called once during startup, before the pools begin processing.
func CleanupStartupOrphans(ctx context.Context, client *ent.Client, podID string) error {
	orphans, err := client.Job.Query().
		Where(
			job.StatusEQ(job.StatusActive),
			job.PodIDEQ(podID),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query startup orphans: %w", err)
	}

	if len(orphans) == 0 {
		return nil
	}

	slog.Warn("Found startup orphans from previous run",
		"pod_id", podID,
		"count", len(orphans))

	now := time.Now()
	for _, row := range orphans {
		var updateErr error
		if row.AttemptsRemaining > 1 {
			updateErr = row.Update().
				SetStatus(job.StatusPending).
				AddAttemptsRemaining(-1).
				SetNextRunAt(now).
				SetErrorMessage(fmt.Sprintf("orphaned: pod %s restarted while job was active", podID)).
				ClearPodID().
				ClearLastHeartbeatAt().
				Exec(ctx)
		} else {
			updateErr = row.Update().
				SetStatus(job.StatusFailed).
				SetCompletedAt(now).
				SetErrorMessage(fmt.Sprintf("orphaned: pod %s restarted while job was active", podID)).
				ClearPodID().
				Exec(ctx)
		}
		if updateErr != nil {
			slog.Error("Failed to recover startup orphan",
				"job_id", row.ID,
				"error", updateErr)
			continue
		}
		slog.Info("Startup orphan recovered", "job_id", row.ID, "queue", row.Queue)
	}

	return nil
}
