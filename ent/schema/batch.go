package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Batch holds the schema definition for the Batch entity — a named group of
// executions within a study.
type Batch struct {
	ent.Schema
}

// Fields of the Batch.
func (Batch) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("batch_id").
			Unique().
			Immutable(),
		field.String("study_id").
			Immutable(),
		field.String("name"),
		field.Enum("status").
			Values("draft", "queued", "running", "paused", "complete", "failed", "deleting").
			Default("draft"),
		field.Int("actors_created").
			Default(0).
			Comment("Declared participant count; actors_completed never exceeds it"),
		field.Int("actors_completed").
			Default(0),
		field.String("export_path").
			Optional().
			Nillable().
			Comment("Blob key of the latest export"),
		field.String("error_message").
			Optional().
			Nillable(),
		field.JSON("metadata", map[string]interface{}{}).
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("started_at").
			Optional().
			Nillable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

// Edges of the Batch.
func (Batch) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("study", Study.Type).
			Ref("batches").
			Field("study_id").
			Unique().
			Required().
			Immutable(),
		edge.To("participants", Participant.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Batch.
func (Batch) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("study_id", "status"),
	}
}
