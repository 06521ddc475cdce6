package broker

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func testWorkerConfig() PoolConfig {
	cfg := DefaultPoolConfig("test-queue")
	cfg.BackoffInitial = 5 * time.Second
	cfg.PollInterval = time.Second
	cfg.PollIntervalJitter = 500 * time.Millisecond
	return cfg
}

func TestBackoff_Doubling(t *testing.T) {
	w := &Worker{config: testWorkerConfig()}

	tests := []struct {
		attemptsUsed int
		want         time.Duration
	}{
		{1, 5 * time.Second},
		{2, 10 * time.Second},
		{3, 20 * time.Second},
		{4, 40 * time.Second},
		{5, 80 * time.Second},
		{6, 160 * time.Second},
		{7, maxBackoff},
		{8, maxBackoff},
		{20, maxBackoff},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, w.backoff(tt.attemptsUsed),
			"attemptsUsed=%d", tt.attemptsUsed)
	}
}

func TestBackoff_LargeInitialCapped(t *testing.T) {
	cfg := testWorkerConfig()
	cfg.BackoffInitial = 10 * time.Minute
	w := &Worker{config: cfg}

	assert.Equal(t, maxBackoff, w.backoff(1))
	assert.Equal(t, maxBackoff, w.backoff(3))
}

func TestPollInterval_Jitter(t *testing.T) {
	w := &Worker{config: testWorkerConfig()}
	min := w.config.PollInterval - w.config.PollIntervalJitter
	max := w.config.PollInterval + w.config.PollIntervalJitter

	for i := 0; i < 100; i++ {
		d := w.pollInterval()
		assert.GreaterOrEqual(t, d, min)
		assert.LessOrEqual(t, d, max)
	}
}

func TestPollInterval_NoJitter(t *testing.T) {
	cfg := testWorkerConfig()
	cfg.PollIntervalJitter = 0
	w := &Worker{config: cfg}

	assert.Equal(t, cfg.PollInterval, w.pollInterval())
}

func TestWorkerHealthTracking(t *testing.T) {
	w := newWorker("worker-1", "pod-1", nil, testWorkerConfig(), nil, nil)

	h := w.Health()
	assert.Equal(t, "worker-1", h.ID)
	assert.Equal(t, "idle", h.Status)
	assert.Empty(t, h.CurrentJobID)
	assert.Equal(t, 0, h.JobsProcessed)

	w.setStatus("working", "job-42")
	h = w.Health()
	assert.Equal(t, "working", h.Status)
	assert.Equal(t, "job-42", h.CurrentJobID)

	w.setStatus("idle", "")
	h = w.Health()
	assert.Equal(t, "idle", h.Status)
	assert.Empty(t, h.CurrentJobID)
}
