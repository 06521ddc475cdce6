package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/dyadlab/fabula/pkg/models"
)

// HybridSession holds the schema definition for the HybridSession entity —
// the persisted state machine of one paired asynchronous session. In-memory
// orchestrator state is a cache; this row is authoritative.
type HybridSession struct {
	ent.Schema
}

// Fields of the HybridSession.
func (HybridSession) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("session_id").
			Unique().
			Immutable(),
		field.String("study_id").
			Immutable(),
		field.String("participant_a").
			Immutable(),
		field.String("participant_b").
			Immutable(),
		field.Enum("actor_type_a").
			Values("human", "synthetic").
			Immutable(),
		field.Enum("actor_type_b").
			Values("human", "synthetic").
			Immutable(),
		field.JSON("config", map[string]interface{}{}).
			Optional().
			Comment("Study config snapshot taken at session start"),
		field.JSON("completions", []models.PhaseCompletion{}).
			Default([]models.PhaseCompletion{}),
		field.Time("started_at").
			Default(time.Now).
			Immutable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

// Indexes of the HybridSession.
func (HybridSession) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("study_id"),
		index.Fields("participant_a"),
		index.Fields("participant_b"),
	}
}
