package config

import (
	"time"

	"github.com/dyadlab/fabula/pkg/models"
)

// RetentionConfig bounds how long terminal job rows and cached batch
// statuses are kept. Export jobs keep their results longer so researchers
// can fetch them well after the batch finished.
type RetentionConfig struct {
	CompletedJobRetention       time.Duration
	FailedJobRetention          time.Duration
	ExportCompletedJobRetention time.Duration
	ExportFailedJobRetention    time.Duration
	CleanupInterval             time.Duration
	StatusCacheTTL              time.Duration
}

// JobRetention returns the completed/failed retention windows for a queue.
func (c RetentionConfig) JobRetention(queue string) (completed, failed time.Duration) {
	if queue == models.QueueDataExport {
		return c.ExportCompletedJobRetention, c.ExportFailedJobRetention
	}
	return c.CompletedJobRetention, c.FailedJobRetention
}

func loadRetentionConfig() (RetentionConfig, error) {
	var (
		cfg RetentionConfig
		err error
	)
	if cfg.CompletedJobRetention, err = getEnvDuration("RETENTION_COMPLETED_JOBS", 24*time.Hour); err != nil {
		return cfg, err
	}
	if cfg.FailedJobRetention, err = getEnvDuration("RETENTION_FAILED_JOBS", 7*24*time.Hour); err != nil {
		return cfg, err
	}
	if cfg.ExportCompletedJobRetention, err = getEnvDuration("RETENTION_EXPORT_COMPLETED_JOBS", 7*24*time.Hour); err != nil {
		return cfg, err
	}
	if cfg.ExportFailedJobRetention, err = getEnvDuration("RETENTION_EXPORT_FAILED_JOBS", 30*24*time.Hour); err != nil {
		return cfg, err
	}
	if cfg.CleanupInterval, err = getEnvDuration("RETENTION_CLEANUP_INTERVAL", time.Hour); err != nil {
		return cfg, err
	}
	if cfg.StatusCacheTTL, err = getEnvDuration("STATUS_CACHE_TTL", time.Hour); err != nil {
		return cfg, err
	}
	return cfg, nil
}
