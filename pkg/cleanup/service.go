// Package cleanup provides data retention sweeps.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/dyadlab/fabula/ent"
	"github.com/dyadlab/fabula/ent/job"
	"github.com/dyadlab/fabula/pkg/config"
	"github.com/dyadlab/fabula/pkg/statuscache"
)

// Service periodically enforces retention:
//   - Deletes terminal job rows past their retain_until instant
//   - Evicts expired batch statuses from the in-process cache
//
// All operations are idempotent and safe to run from multiple pods.
type Service struct {
	config *config.RetentionConfig
	client *ent.Client
	cache  *statuscache.Cache

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new cleanup service.
func NewService(cfg *config.RetentionConfig, client *ent.Client, cache *statuscache.Cache) *Service {
	return &Service{
		config: cfg,
		client: client,
		cache:  cache,
	}
}

// Start launches the background cleanup loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Cleanup service started",
		"completed_job_retention", s.config.CompletedJobRetention,
		"failed_job_retention", s.config.FailedJobRetention,
		"interval", s.config.CleanupInterval)
}

// Stop signals the cleanup loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.runAll(ctx)

	ticker := time.NewTicker(s.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runAll(ctx)
		}
	}
}

func (s *Service) runAll(ctx context.Context) {
	s.sweepTerminalJobs(ctx)
	s.sweepStatusCache()
}

// sweepTerminalJobs deletes completed and failed job rows whose retention
// window has passed.
func (s *Service) sweepTerminalJobs(_ context.Context) {
	count, err := s.client.Job.Delete().
		Where(
			job.StatusIn(job.StatusCompleted, job.StatusFailed),
			job.RetainUntilLT(time.Now()),
		).
		Exec(context.Background())
	if err != nil {
		slog.Error("Retention: job sweep failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: swept terminal jobs", "count", count)
	}
}

func (s *Service) sweepStatusCache() {
	if count := s.cache.Sweep(); count > 0 {
		slog.Info("Retention: evicted expired batch statuses", "count", count)
	}
}
