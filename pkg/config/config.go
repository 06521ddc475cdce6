// Package config loads the engine's runtime configuration from the
// environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/dyadlab/fabula/pkg/blob"
)

// Config is the engine's runtime configuration.
type Config struct {
	HTTPPort  string
	PodID     string
	Queue     QueueConfig
	Retention RetentionConfig
	Blob      blob.Config
}

// Load reads configuration from the environment, applying defaults.
func Load() (*Config, error) {
	queue, err := loadQueueConfig()
	if err != nil {
		return nil, err
	}
	retention, err := loadRetentionConfig()
	if err != nil {
		return nil, err
	}
	return &Config{
		HTTPPort:  getEnv("HTTP_PORT", "8080"),
		PodID:     resolvePodID(),
		Queue:     queue,
		Retention: retention,
		Blob: blob.Config{
			Bucket:          getEnv("BLOB_BUCKET", "fabula"),
			Region:          getEnv("BLOB_REGION", "us-east-1"),
			Endpoint:        os.Getenv("BLOB_ENDPOINT"),
			AccessKeyID:     os.Getenv("BLOB_ACCESS_KEY_ID"),
			SecretAccessKey: os.Getenv("BLOB_SECRET_ACCESS_KEY"),
			UsePathStyle:    getEnv("BLOB_USE_PATH_STYLE", "false") == "true",
		},
	}, nil
}

// resolvePodID determines the pod identifier for multi-replica coordination.
// Priority: POD_ID env > HOSTNAME env > "local".
func resolvePodID() string {
	if id := os.Getenv("POD_ID"); id != "" {
		return id
	}
	if hostname := os.Getenv("HOSTNAME"); hostname != "" {
		return hostname
	}
	return "local"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func getEnvDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}
