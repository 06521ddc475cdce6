// Package api exposes the engine's operational HTTP surface: health, queue
// stats, batch control, export triggering, and hybrid session endpoints.
package api

import (
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dyadlab/fabula/pkg/blob"
	"github.com/dyadlab/fabula/pkg/broker"
	"github.com/dyadlab/fabula/pkg/database"
	"github.com/dyadlab/fabula/pkg/models"
	"github.com/dyadlab/fabula/pkg/orchestrator"
	"github.com/dyadlab/fabula/pkg/services"
	"github.com/dyadlab/fabula/pkg/version"
)

// Server hosts the HTTP handlers.
type Server struct {
	db      *database.Client
	broker  *broker.Broker
	pools   []*broker.Pool
	batches *services.BatchService
	hybrid  *orchestrator.Hybrid
	blobs   blob.Store
	log     *slog.Logger
}

// NewServer creates the API server.
func NewServer(db *database.Client, brk *broker.Broker, pools []*broker.Pool, batches *services.BatchService, hybrid *orchestrator.Hybrid, blobs blob.Store) *Server {
	return &Server{
		db:      db,
		broker:  brk,
		pools:   pools,
		batches: batches,
		hybrid:  hybrid,
		blobs:   blobs,
		log:     slog.With("component", "api"),
	}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", s.health)

	api := r.Group("/api/v1")
	{
		api.GET("/queues/:queue/stats", s.queueStats)
		api.GET("/jobs/:id", s.jobStatus)

		api.GET("/batches/:id", s.batchStatus)
		api.POST("/batches/:id/pause", s.pauseBatch)
		api.POST("/batches/:id/resume", s.resumeBatch)
		api.POST("/batches/:id/export", s.exportBatch)

		api.GET("/sessions/:id", s.sessionState)
		api.GET("/sessions/:id/events", s.sessionEvents)
		api.POST("/sessions/:id/phases/complete", s.completePhase)

		api.POST("/participants/:id/biosignals/presign", s.presignBiosignal)
	}
	return r
}

const (
	healthStatusHealthy   = "healthy"
	healthStatusDegraded  = "degraded"
	healthStatusUnhealthy = "unhealthy"
)

// health reports database connectivity and worker pool health. Only the
// engine's own components are checked; LLM providers and the blob store are
// excluded so an external outage does not get the process restarted.
func (s *Server) health(c *gin.Context) {
	status := healthStatusHealthy
	checks := gin.H{}

	if err := s.db.HealthCheck(c.Request.Context()); err != nil {
		status = healthStatusUnhealthy
		checks["database"] = gin.H{"status": healthStatusUnhealthy, "message": err.Error()}
	} else {
		checks["database"] = gin.H{"status": healthStatusHealthy}
	}

	pools := make([]*broker.PoolHealth, 0, len(s.pools))
	for _, pool := range s.pools {
		h := pool.Health()
		pools = append(pools, h)
		if !h.IsHealthy && status == healthStatusHealthy {
			status = healthStatusDegraded
		}
	}
	checks["pools"] = pools

	httpStatus := http.StatusOK
	if status == healthStatusUnhealthy {
		httpStatus = http.StatusServiceUnavailable
	}
	c.JSON(httpStatus, gin.H{"status": status, "version": version.GitCommit, "checks": checks})
}

func (s *Server) queueStats(c *gin.Context) {
	stats, err := s.broker.Stats(c.Request.Context(), c.Param("queue"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (s *Server) jobStatus(c *gin.Context) {
	row, err := s.broker.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"id":                 row.ID,
		"queue":              row.Queue,
		"status":             row.Status,
		"progress":           row.Progress,
		"attempts_remaining": row.AttemptsRemaining,
		"result":             row.Result,
		"error":              row.ErrorMessage,
	})
}

func (s *Server) batchStatus(c *gin.Context) {
	row, err := s.batches.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"id":               row.ID,
		"study_id":         row.StudyID,
		"name":             row.Name,
		"status":           row.Status,
		"actors_created":   row.ActorsCreated,
		"actors_completed": row.ActorsCompleted,
		"export_path":      row.ExportPath,
		"error_message":    row.ErrorMessage,
	})
}

func (s *Server) pauseBatch(c *gin.Context) {
	id := c.Param("id")
	if err := s.batches.Pause(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	s.log.Info("Batch paused", "batch_id", id)
	c.JSON(http.StatusOK, gin.H{"id": id, "status": models.BatchPaused})
}

func (s *Server) resumeBatch(c *gin.Context) {
	id := c.Param("id")
	if err := s.batches.Resume(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	s.log.Info("Batch resumed", "batch_id", id)
	c.JSON(http.StatusOK, gin.H{"id": id, "status": models.BatchRunning})
}

// exportRequest narrows the export payload to what the caller may choose;
// batch and study ids come from the path and the batch row.
type exportRequest struct {
	Format                 models.ExportFormat `json:"format"`
	IncludeEvents          *bool               `json:"include_events,omitempty"`
	IncludeSurveyResponses *bool               `json:"include_survey_responses,omitempty"`
	IncludeStoryData       *bool               `json:"include_story_data,omitempty"`
	ParticipantIDs         []string            `json:"participant_ids,omitempty"`
	EventTypes             []models.EventType  `json:"event_types,omitempty"`
}

func (s *Server) exportBatch(c *gin.Context) {
	var req exportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}
	if req.Format == "" {
		req.Format = models.ExportJSON
	}

	batchID := c.Param("id")
	row, err := s.batches.Get(c.Request.Context(), batchID)
	if err != nil {
		writeError(c, err)
		return
	}

	payload := models.ExportPayload{
		BatchID:                batchID,
		StudyID:                row.StudyID,
		Format:                 req.Format,
		IncludeEvents:          req.IncludeEvents,
		IncludeSurveyResponses: req.IncludeSurveyResponses,
		IncludeStoryData:       req.IncludeStoryData,
		ParticipantIDs:         req.ParticipantIDs,
		EventTypes:             req.EventTypes,
	}
	if err := payload.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	jobID, err := s.broker.Enqueue(c.Request.Context(), models.QueueDataExport, broker.JobSpec{Payload: payload})
	if err != nil {
		writeError(c, err)
		return
	}
	s.log.Info("Export enqueued", "batch_id", batchID, "job_id", jobID, "format", payload.Format)
	c.JSON(http.StatusAccepted, gin.H{"job_id": jobID})
}

func (s *Server) sessionState(c *gin.Context) {
	state, err := s.hybrid.SessionState(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// completePhaseRequest is a human participant's phase submission.
type completePhaseRequest struct {
	ParticipantID string         `json:"participant_id" binding:"required"`
	Result        map[string]any `json:"result"`
}

func (s *Server) completePhase(c *gin.Context) {
	var req completePhaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}
	sessionID := c.Param("id")
	if err := s.hybrid.OnPhaseComplete(c.Request.Context(), sessionID, req.ParticipantID, req.Result); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session_id": sessionID, "participant_id": req.ParticipantID})
}

// biosignalPresignRequest names the capture a wearable client is about to
// upload.
type biosignalPresignRequest struct {
	Type     string `json:"type" binding:"required"`
	DeviceID string `json:"device_id,omitempty"`
}

// presignBiosignal returns a presigned URL for a direct biosignal upload.
// The key embeds the signal type, the optional device id, and the capture
// instant.
func (s *Server) presignBiosignal(c *gin.Context) {
	var req biosignalPresignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}
	key := blob.BiosignalKey(c.Param("id"), req.Type, req.DeviceID, time.Now())
	if err := blob.ValidateKey(key); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	url, err := s.blobs.PresignPut(c.Request.Context(), key, 15*time.Minute)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"key": key, "url": url, "bucket": s.blobs.Bucket()})
}

// sessionEvents streams session notifications over SSE until the client
// disconnects or the session completes.
func (s *Server) sessionEvents(c *gin.Context) {
	sessionID := c.Param("id")
	events, unsubscribe := s.hybrid.Subscribe(sessionID)
	defer unsubscribe()

	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	clientGone := c.Request.Context().Done()
	c.Stream(func(w io.Writer) bool {
		select {
		case <-clientGone:
			return false
		case ev, ok := <-events:
			if !ok {
				return false
			}
			c.SSEvent(ev.Type, ev)
			return ev.Type != orchestrator.EventSessionComplete
		}
	})
}
