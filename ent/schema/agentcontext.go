package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"

	"github.com/dyadlab/fabula/pkg/models"
)

// AgentContext holds the schema definition for the AgentContext entity — the
// per-participant persistent memory. One row per participant; the five lists
// are append-only JSON arrays mutated only under serializable transactions.
type AgentContext struct {
	ent.Schema
}

// Fields of the AgentContext.
func (AgentContext) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("agent_context_id").
			Unique().
			Immutable(),
		field.String("participant_id").
			Unique().
			Immutable(),
		field.Int("current_round").
			Default(1),
		field.Enum("current_phase").
			Values("author", "play", "review").
			Default("author"),
		field.JSON("own_story_drafts", []models.StoryDraftEntry{}).
			Default([]models.StoryDraftEntry{}),
		field.JSON("partner_stories_played", []models.PartnerStoryEntry{}).
			Default([]models.PartnerStoryEntry{}),
		field.JSON("feedback_given", []models.FeedbackEntry{}).
			Default([]models.FeedbackEntry{}),
		field.JSON("feedback_received", []models.FeedbackEntry{}).
			Default([]models.FeedbackEntry{}),
		field.JSON("cumulative_learnings", []models.LearningEntry{}).
			Default([]models.LearningEntry{}),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the AgentContext.
func (AgentContext) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("participant", Participant.Type).
			Ref("agent_context").
			Field("participant_id").
			Unique().
			Required().
			Immutable(),
	}
}
