package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/dyadlab/fabula/pkg/models"
)

// Participant holds the schema definition for the Participant entity — one
// actor instance (human or synthetic).
type Participant struct {
	ent.Schema
}

// Fields of the Participant.
func (Participant) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("participant_id").
			Unique().
			Immutable(),
		field.String("study_id").
			Immutable(),
		field.String("batch_id").
			Optional().
			Nillable(),
		field.String("condition_id").
			Optional().
			Nillable(),
		field.String("unique_id").
			Optional().
			Comment("Batch-scoped display id, e.g. {batchPrefix}-3"),
		field.Enum("actor_type").
			Values("human", "synthetic"),
		field.Enum("state").
			Values("enrolled", "scheduled", "confirmed", "checked_in", "active", "complete", "withdrawn", "excluded").
			Default("enrolled"),
		field.String("role").
			Default("player"),
		field.String("partner_id").
			Optional().
			Nillable().
			Comment("Symmetric: set and cleared on both rows in one transaction"),
		field.JSON("llm_config", &models.LLMConfig{}).
			Optional().
			Comment("Nil for humans"),
		field.JSON("availability", []models.AvailabilityWindow{}).
			Optional().
			Comment("Weekly availability windows used by human pairing"),
		field.JSON("pairing_metadata", map[string]interface{}{}).
			Optional(),
		field.JSON("metadata", map[string]interface{}{}).
			Optional(),
		field.String("email").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

// Edges of the Participant.
func (Participant) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("study", Study.Type).
			Ref("participants").
			Field("study_id").
			Unique().
			Required().
			Immutable(),
		edge.From("batch", Batch.Type).
			Ref("participants").
			Field("batch_id").
			Unique(),
		edge.To("events", Event.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("story_artifacts", StoryArtifact.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("agent_context", AgentContext.Type).
			Unique().
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("survey_responses", SurveyResponse.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("authored_comments", Comment.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("received_comments", Comment.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Participant.
func (Participant) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("batch_id", "state"),
		index.Fields("study_id", "state"),
		index.Fields("partner_id"),
	}
}
