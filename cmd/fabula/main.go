// Fabula study execution engine runs the broker worker pools, the session
// orchestrators, the retention cleanup loop, and the operational HTTP API.
package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/dyadlab/fabula/pkg/api"
	"github.com/dyadlab/fabula/pkg/blob"
	"github.com/dyadlab/fabula/pkg/broker"
	"github.com/dyadlab/fabula/pkg/cleanup"
	"github.com/dyadlab/fabula/pkg/config"
	"github.com/dyadlab/fabula/pkg/database"
	"github.com/dyadlab/fabula/pkg/models"
	"github.com/dyadlab/fabula/pkg/orchestrator"
	"github.com/dyadlab/fabula/pkg/services"
	"github.com/dyadlab/fabula/pkg/statuscache"
	"github.com/dyadlab/fabula/pkg/story"
	"github.com/dyadlab/fabula/pkg/workers"
)

func main() {
	envFile := flag.String("env-file", ".env", "Path to the .env file")
	flag.Parse()

	if err := godotenv.Load(*envFile); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", *envFile, "error", err)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	slog.Info("Starting fabula", "http_port", cfg.HTTPPort, "pod_id", cfg.PodID)

	ctx := context.Background()

	// Database
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}
	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// One-time startup orphan cleanup. Non-fatal; the periodic detector
	// catches anything this misses.
	if err := broker.CleanupStartupOrphans(ctx, dbClient.Client, cfg.PodID); err != nil {
		slog.Error("Failed to cleanup startup orphans", "error", err)
	}

	// Blob store
	blobs, err := blob.NewS3Store(ctx, cfg.Blob)
	if err != nil {
		slog.Error("Failed to initialize blob store", "error", err)
		os.Exit(1)
	}
	slog.Info("Blob store initialized", "bucket", cfg.Blob.Bucket)

	// Services
	cache := statuscache.New(cfg.Retention.StatusCacheTTL)
	batchService := services.NewBatchService(dbClient.Client, cache)
	participantService := services.NewParticipantService(dbClient.Client)
	studyService := services.NewStudyService(dbClient.Client)
	eventService := services.NewEventService(dbClient.Client)
	contextService := services.NewContextService(dbClient.Client)
	commentService := services.NewCommentService(dbClient.Client)
	artifactService := services.NewArtifactService(dbClient.Client, blobs)
	surveyService := services.NewSurveyService(dbClient.Client)
	sessionService := services.NewSessionService(dbClient.Client)
	slog.Info("Services initialized")

	// Broker and orchestrators
	brk := broker.NewBroker(dbClient.Client)
	hybrid := orchestrator.NewHybrid(
		sessionService, contextService, commentService, artifactService,
		eventService, workers.PhaseEnqueuer{Broker: brk}, story.DefaultPluginType,
	)

	w := workers.New(workers.Deps{
		Broker:       brk,
		Batches:      batchService,
		Participants: participantService,
		Studies:      studyService,
		Contexts:     contextService,
		Comments:     commentService,
		Artifacts:    artifactService,
		Events:       eventService,
		Surveys:      surveyService,
		Hybrid:       hybrid,
		Blobs:        blobs,
	})

	// One pool per queue. Session queues get the longer timeout; everything
	// else runs on the standard job budget.
	poolSpecs := []struct {
		queue   string
		timeout time.Duration
		handler broker.Handler
	}{
		{models.QueueBatchCreation, cfg.Queue.JobTimeout, w.HandleBatchCreation},
		{models.QueueCollaborativeBatchCreation, cfg.Queue.JobTimeout, w.HandleCollaborativeBatchCreation},
		{models.QueueSyntheticExecution, cfg.Queue.SessionJobTimeout, w.HandleSyntheticExecution},
		{models.QueueCollaborativeSession, cfg.Queue.SessionJobTimeout, w.HandleCollaborativeSession},
		{models.QueueHybridSyntheticPhase, cfg.Queue.JobTimeout, w.HandleHybridSyntheticPhase},
		{models.QueueDataExport, cfg.Queue.JobTimeout, w.HandleDataExport},
	}
	pools := make([]*broker.Pool, 0, len(poolSpecs))
	for _, spec := range poolSpecs {
		pools = append(pools, broker.NewPool(cfg.PodID, dbClient.Client, poolConfig(cfg, spec.queue, spec.timeout), spec.handler))
	}
	for _, pool := range pools {
		if err := pool.Start(ctx); err != nil {
			slog.Error("Failed to start worker pool", "error", err)
			os.Exit(1)
		}
	}

	// Retention cleanup loop
	cleaner := cleanup.NewService(&cfg.Retention, dbClient.Client, cache)
	cleaner.Start(ctx)

	// HTTP server
	httpServer := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: api.NewServer(dbClient, brk, pools, batchService, hybrid, blobs).Router(),
	}
	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("Fabula started successfully", "pod_id", cfg.PodID, "queues", len(pools))

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	cleaner.Stop()

	// Stop pools within the graceful budget; anything still running is
	// orphan-recovered on the next startup.
	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.Queue.GracefulShutdownTimeout)
	defer cancel()
	done := make(chan struct{})
	go func() {
		for _, pool := range pools {
			pool.Stop()
		}
		close(done)
	}()
	select {
	case <-done:
		slog.Info("Worker pools stopped gracefully")
	case <-shutdownCtx.Done():
		slog.Warn("Shutdown timeout exceeded; incomplete jobs will be orphan-recovered")
	}

	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}

// poolConfig builds one queue's pool configuration from the runtime config.
func poolConfig(cfg *config.Config, queue string, timeout time.Duration) broker.PoolConfig {
	pc := broker.DefaultPoolConfig(queue)
	pc.Concurrency = cfg.Queue.Concurrency
	pc.MaxActive = cfg.Queue.MaxActive
	pc.PollInterval = cfg.Queue.PollInterval
	pc.JobTimeout = timeout
	pc.HeartbeatInterval = cfg.Queue.HeartbeatInterval
	pc.CompletedRetention, pc.FailedRetention = cfg.Retention.JobRetention(queue)
	return pc
}
