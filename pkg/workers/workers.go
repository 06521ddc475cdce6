// Package workers implements the job handlers behind the engine's queues:
// batch materialization, synthetic execution, collaborative sessions, hybrid
// synthetic phases, and data export.
package workers

import (
	"context"
	"log/slog"

	"github.com/dyadlab/fabula/pkg/blob"
	"github.com/dyadlab/fabula/pkg/broker"
	"github.com/dyadlab/fabula/pkg/llm"
	"github.com/dyadlab/fabula/pkg/models"
	"github.com/dyadlab/fabula/pkg/orchestrator"
	"github.com/dyadlab/fabula/pkg/services"
	"github.com/dyadlab/fabula/pkg/story"
)

// BatchControl is the batch surface handlers use. *services.BatchService
// satisfies it.
type BatchControl interface {
	Status(ctx context.Context, id string) (models.BatchStatus, error)
	MarkRunning(ctx context.Context, id string) error
	MarkFailed(ctx context.Context, id, errorMessage string) error
	SetActorsCreated(ctx context.Context, id string, count int) error
	SetExportPath(ctx context.Context, id, path string) error
	RecomputeProgress(ctx context.Context, id string) error
}

// ParticipantStore is the participant surface handlers use.
// *services.ParticipantService satisfies it.
type ParticipantStore interface {
	Get(ctx context.Context, id string) (*models.Participant, error)
	ListForBatch(ctx context.Context, batchID string) ([]*models.Participant, error)
	CreateBulk(ctx context.Context, inputs []services.CreateParticipantInput) ([]*models.Participant, error)
	UpdateStateWithEvent(ctx context.Context, id string, newState models.ParticipantState, eventData map[string]any) (*models.Participant, error)
}

// Enqueuer is the job-producing surface handlers use. *broker.Broker
// satisfies it.
type Enqueuer interface {
	Enqueue(ctx context.Context, queue string, spec broker.JobSpec) (string, error)
	EnqueueBulk(ctx context.Context, queue string, specs []broker.JobSpec) ([]string, error)
}

// StudyConfigSource resolves a study's configuration document.
// *services.StudyService satisfies it.
type StudyConfigSource interface {
	Config(ctx context.Context, studyID string) (*models.StudyConfig, error)
}

// EventSource extends the journal with the bulk read used by export.
// *services.EventService satisfies it.
type EventSource interface {
	orchestrator.EventStore
	ListForParticipants(ctx context.Context, participantIDs []string, types ...models.EventType) ([]*models.Event, error)
}

// SurveySource is the survey read surface used by export.
// *services.SurveyService satisfies it.
type SurveySource interface {
	ListForParticipants(ctx context.Context, participantIDs []string) ([]*models.SurveyResponse, error)
}

// ArtifactSource extends the artifact store with the bulk read used by
// export. *services.ArtifactService satisfies it.
type ArtifactSource interface {
	orchestrator.ArtifactStore
	ListForParticipants(ctx context.Context, participantIDs []string) ([]*models.StoryArtifact, error)
}

// Deps wires the handler dependencies.
type Deps struct {
	Broker       Enqueuer
	Batches      BatchControl
	Participants ParticipantStore
	Studies      StudyConfigSource
	Contexts     orchestrator.ContextStore
	Comments     orchestrator.CommentStore
	Artifacts    ArtifactSource
	Events       EventSource
	Surveys      SurveySource
	Hybrid       *orchestrator.Hybrid
	Blobs        blob.Store

	// Plugins defaults to the built-in registry.
	Plugins *story.Registry

	// NewLLM defaults to llm.NewClient.
	NewLLM func(models.LLMConfig) (llm.Client, error)
}

// Workers hosts the queue handlers. Each Handle method matches
// broker.Handler and is registered on its queue's pool.
type Workers struct {
	broker       Enqueuer
	batches      BatchControl
	participants ParticipantStore
	studies      StudyConfigSource
	contexts     orchestrator.ContextStore
	comments     orchestrator.CommentStore
	artifacts    ArtifactSource
	events       EventSource
	surveys      SurveySource
	hybrid       *orchestrator.Hybrid
	blobs        blob.Store
	plugins      *story.Registry
	newLLM       func(models.LLMConfig) (llm.Client, error)
	log          *slog.Logger
}

// New creates the worker set.
func New(deps Deps) *Workers {
	plugins := deps.Plugins
	if plugins == nil {
		plugins = story.DefaultRegistry()
	}
	newLLM := deps.NewLLM
	if newLLM == nil {
		newLLM = llm.NewClient
	}
	return &Workers{
		broker:       deps.Broker,
		batches:      deps.Batches,
		participants: deps.Participants,
		studies:      deps.Studies,
		contexts:     deps.Contexts,
		comments:     deps.Comments,
		artifacts:    deps.Artifacts,
		events:       deps.Events,
		surveys:      deps.Surveys,
		hybrid:       deps.Hybrid,
		blobs:        deps.Blobs,
		plugins:      plugins,
		newLLM:       newLLM,
		log:          slog.With("component", "workers"),
	}
}

// PhaseEnqueuer adapts the broker to the hybrid orchestrator's synthetic
// phase signal. Phase jobs run at real-time priority so a waiting human is
// not stuck behind batch work.
type PhaseEnqueuer struct {
	Broker Enqueuer
}

// EnqueueSyntheticPhase enqueues one synthetic phase job.
func (e PhaseEnqueuer) EnqueueSyntheticPhase(ctx context.Context, payload models.HybridSyntheticPhasePayload) error {
	_, err := e.Broker.Enqueue(ctx, models.QueueHybridSyntheticPhase, broker.JobSpec{
		ID:       models.HybridPhaseJobID(payload.SessionID, payload.SyntheticParticipantID, payload.Round, payload.Phase),
		Payload:  payload,
		Priority: int(models.PriorityRealTime),
	})
	return err
}

// batchPrefix is the short batch identifier embedded in participant unique
// IDs.
func batchPrefix(batchID string) string {
	if len(batchID) > 8 {
		return batchID[:8]
	}
	return batchID
}

func lastN(actions []models.AgentAction, n int) []models.AgentAction {
	if len(actions) <= n {
		return actions
	}
	return actions[len(actions)-n:]
}
