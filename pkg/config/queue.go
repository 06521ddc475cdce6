package config

import "time"

// QueueConfig tunes the worker pools. Session jobs get a longer timeout than
// the bookkeeping queues because a collaborative session makes many LLM calls.
type QueueConfig struct {
	Concurrency             int
	MaxActive               int
	PollInterval            time.Duration
	JobTimeout              time.Duration
	SessionJobTimeout       time.Duration
	HeartbeatInterval       time.Duration
	GracefulShutdownTimeout time.Duration
}

func loadQueueConfig() (QueueConfig, error) {
	var (
		cfg QueueConfig
		err error
	)
	if cfg.Concurrency, err = getEnvInt("QUEUE_CONCURRENCY", 3); err != nil {
		return cfg, err
	}
	if cfg.MaxActive, err = getEnvInt("QUEUE_MAX_ACTIVE", 10); err != nil {
		return cfg, err
	}
	if cfg.PollInterval, err = getEnvDuration("QUEUE_POLL_INTERVAL", time.Second); err != nil {
		return cfg, err
	}
	if cfg.JobTimeout, err = getEnvDuration("QUEUE_JOB_TIMEOUT", 15*time.Minute); err != nil {
		return cfg, err
	}
	if cfg.SessionJobTimeout, err = getEnvDuration("QUEUE_SESSION_JOB_TIMEOUT", 45*time.Minute); err != nil {
		return cfg, err
	}
	if cfg.HeartbeatInterval, err = getEnvDuration("QUEUE_HEARTBEAT_INTERVAL", 30*time.Second); err != nil {
		return cfg, err
	}
	if cfg.GracefulShutdownTimeout, err = getEnvDuration("QUEUE_GRACEFUL_SHUTDOWN_TIMEOUT", 30*time.Second); err != nil {
		return cfg, err
	}
	return cfg, nil
}
