package broker

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRetryable(t *testing.T) {
	base := errors.New("connection reset")
	wrapped := Retryable(base)

	assert.True(t, IsRetryable(wrapped))
	assert.ErrorIs(t, wrapped, base)
	assert.Equal(t, "connection reset", wrapped.Error())

	// Wrapping again deeper in the chain still detects the marker.
	deeper := fmt.Errorf("handler failed: %w", wrapped)
	assert.True(t, IsRetryable(deeper))

	assert.False(t, IsRetryable(base))
	assert.Nil(t, Retryable(nil))
	assert.False(t, IsRetryable(nil))
}

func TestDefaultPoolConfig(t *testing.T) {
	cfg := DefaultPoolConfig("batch-creation")

	assert.Equal(t, "batch-creation", cfg.Queue)
	assert.Equal(t, 3, cfg.Concurrency)
	assert.Equal(t, 10, cfg.MaxActive)
	assert.Equal(t, time.Second, cfg.PollInterval)
	assert.Equal(t, 500*time.Millisecond, cfg.PollIntervalJitter)
	assert.Equal(t, 15*time.Minute, cfg.JobTimeout)
	assert.Equal(t, 30*time.Second, cfg.HeartbeatInterval)
	assert.Equal(t, 5*time.Second, cfg.BackoffInitial)
	assert.Equal(t, 24*time.Hour, cfg.CompletedRetention)
	assert.Equal(t, 7*24*time.Hour, cfg.FailedRetention)
}

func TestJobReportProgress(t *testing.T) {
	var recorded []int
	j := &Job{progress: func(_ context.Context, percent int) {
		recorded = append(recorded, percent)
	}}

	j.ReportProgress(context.Background(), 40)
	j.ReportProgress(context.Background(), 80)
	assert.Equal(t, []int{40, 80}, recorded)

	// No progress func is a no-op, not a panic.
	empty := &Job{}
	empty.ReportProgress(context.Background(), 50)
}
