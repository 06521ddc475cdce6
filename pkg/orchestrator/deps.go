// Package orchestrator runs paired collaborative sessions: the synchronous
// orchestrator for all-synthetic pairs and the asynchronous hybrid
// orchestrator whose phase barrier spans human think-time.
package orchestrator

import (
	"context"

	"github.com/dyadlab/fabula/pkg/models"
	"github.com/dyadlab/fabula/pkg/services"
)

// ContextStore is the agent-context surface the orchestrators use.
// *services.ContextService satisfies it.
type ContextStore interface {
	GetOrCreate(ctx context.Context, participantID string) (*models.AgentContext, error)
	UpdatePhase(ctx context.Context, participantID string, phase models.Phase) error
	AdvanceRound(ctx context.Context, participantID string) error
	AppendOwnDraft(ctx context.Context, participantID string, entry models.StoryDraftEntry) error
	AppendPartnerStoryPlayed(ctx context.Context, participantID string, entry models.PartnerStoryEntry) error
	AppendFeedbackGiven(ctx context.Context, participantID string, entry models.FeedbackEntry) error
	AppendFeedbackReceived(ctx context.Context, participantID string, entry models.FeedbackEntry) error
	AppendLearning(ctx context.Context, participantID string, entry models.LearningEntry) error
}

// CommentStore is the comment surface the orchestrators use.
// *services.CommentService satisfies it.
type CommentStore interface {
	Create(ctx context.Context, input services.CreateCommentInput) (*models.Comment, error)
	Received(ctx context.Context, participantID string, round int, phase models.Phase) ([]*models.Comment, error)
}

// ArtifactStore is the story persistence surface the orchestrators use.
// *services.ArtifactService satisfies it.
type ArtifactStore interface {
	SaveStory(ctx context.Context, participantID, pluginType string, round int, doc *models.CreateStoryParams) (*models.StoryArtifact, error)
	LoadStory(ctx context.Context, artifactID string) (*models.CreateStoryParams, error)
	FindForRound(ctx context.Context, participantID string, round int) (*models.StoryArtifact, error)
}

// EventStore is the journal surface the orchestrators use.
// *services.EventService satisfies it.
type EventStore interface {
	Append(ctx context.Context, participantID string, eventType models.EventType, data map[string]any) (*models.Event, error)
}

// SessionStore is the hybrid-session persistence surface.
// *services.SessionService satisfies it.
type SessionStore interface {
	Create(ctx context.Context, state *models.HybridSessionState) error
	Get(ctx context.Context, sessionID string) (*models.HybridSessionState, error)
	Mutate(ctx context.Context, sessionID string, fn func(*models.HybridSessionState) error) (*models.HybridSessionState, error)
}

// ActionGenerator produces one structured action for a collaborative phase.
// Role adapters implement it over an llm.Client.
type ActionGenerator interface {
	GenerateAction(ctx context.Context, rc *models.CollaborativeRoleContext) (*models.AgentAction, error)
}

// SyntheticPhaseEnqueuer schedules a synthetic partner's phase execution.
// The hybrid orchestrator uses it when a human's partner is synthetic.
type SyntheticPhaseEnqueuer interface {
	EnqueueSyntheticPhase(ctx context.Context, payload models.HybridSyntheticPhasePayload) error
}

// PhaseResult reports one side's outcome of one phase.
type PhaseResult struct {
	Phase         models.Phase   `json:"phase"`
	Round         int            `json:"round"`
	ParticipantID string         `json:"participant_id"`
	Success       bool           `json:"success"`
	Data          map[string]any `json:"data,omitempty"`
	Error         string         `json:"error,omitempty"`
}

// SessionResult aggregates a full synchronous session run.
type SessionResult struct {
	Status       models.SessionStatus `json:"status"`
	PhaseResults []PhaseResult        `json:"phase_results"`
}

// Actor binds a participant to its action generator for the duration of a
// session.
type Actor struct {
	ID      string
	Role    string
	Adapter ActionGenerator
}
