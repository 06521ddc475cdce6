package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Event holds the schema definition for the Event entity — the append-only
// per-participant journal. Rows are immutable after write.
type Event struct {
	ent.Schema
}

// Fields of the Event.
func (Event) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("event_id").
			Unique().
			Immutable(),
		field.String("participant_id").
			Immutable(),
		field.String("type").
			Immutable().
			Comment("session_start, session_end, synthetic_action, synthetic_error, synthetic_timeout, state_change, ..."),
		field.JSON("data", map[string]interface{}{}).
			Optional().
			Immutable(),
		field.Time("timestamp").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Event.
func (Event) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("participant", Participant.Type).
			Ref("events").
			Field("participant_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Event.
func (Event) Indexes() []ent.Index {
	return []ent.Index{
		// Per-participant total order
		index.Fields("participant_id", "timestamp"),
		index.Fields("participant_id", "type"),
	}
}
