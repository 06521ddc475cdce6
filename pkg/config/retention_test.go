package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dyadlab/fabula/pkg/models"
)

func TestLoadRetentionConfig_Defaults(t *testing.T) {
	cfg, err := loadRetentionConfig()
	require.NoError(t, err)

	assert.Equal(t, 24*time.Hour, cfg.CompletedJobRetention)
	assert.Equal(t, 7*24*time.Hour, cfg.FailedJobRetention)
	assert.Equal(t, 7*24*time.Hour, cfg.ExportCompletedJobRetention)
	assert.Equal(t, 30*24*time.Hour, cfg.ExportFailedJobRetention)
	assert.Equal(t, time.Hour, cfg.CleanupInterval)
	assert.Equal(t, time.Hour, cfg.StatusCacheTTL)
}

func TestLoadRetentionConfig_EnvOverrides(t *testing.T) {
	t.Setenv("RETENTION_EXPORT_COMPLETED_JOBS", "48h")
	t.Setenv("RETENTION_EXPORT_FAILED_JOBS", "96h")

	cfg, err := loadRetentionConfig()
	require.NoError(t, err)
	assert.Equal(t, 48*time.Hour, cfg.ExportCompletedJobRetention)
	assert.Equal(t, 96*time.Hour, cfg.ExportFailedJobRetention)
}

func TestLoadRetentionConfig_Invalid(t *testing.T) {
	t.Setenv("RETENTION_EXPORT_FAILED_JOBS", "a month")

	_, err := loadRetentionConfig()
	assert.Error(t, err)
}

// Export jobs keep their results longer than the bookkeeping queues.
func TestRetentionConfig_JobRetention(t *testing.T) {
	cfg, err := loadRetentionConfig()
	require.NoError(t, err)

	completed, failed := cfg.JobRetention(models.QueueSyntheticExecution)
	assert.Equal(t, 24*time.Hour, completed)
	assert.Equal(t, 7*24*time.Hour, failed)

	completed, failed = cfg.JobRetention(models.QueueDataExport)
	assert.Equal(t, 7*24*time.Hour, completed)
	assert.Equal(t, 30*24*time.Hour, failed)
}
