package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Study holds the schema definition for the Study entity — the top-level
// research container.
type Study struct {
	ent.Schema
}

// Fields of the Study.
func (Study) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("study_id").
			Unique().
			Immutable(),
		field.String("name"),
		field.Text("description").
			Optional(),
		field.Enum("status").
			Values("draft", "active", "archived").
			Default("draft"),
		field.JSON("config", map[string]interface{}{}).
			Optional().
			Comment("Study configuration document (execution mode, collaboration protocol, time limits)"),
		field.String("owner_id").
			Optional().
			Nillable().
			Comment("Researcher who created the study"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Study.
func (Study) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("conditions", Condition.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("batches", Batch.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("participants", Participant.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("surveys", Survey.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Study.
func (Study) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
	}
}
