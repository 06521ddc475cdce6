package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// Condition holds the schema definition for the Condition entity — one cell
// of a study's factorial design.
type Condition struct {
	ent.Schema
}

// Fields of the Condition.
func (Condition) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("condition_id").
			Unique().
			Immutable(),
		field.String("study_id").
			Immutable(),
		field.String("name"),
		field.JSON("parameters", map[string]interface{}{}).
			Optional().
			Comment("Factor levels for this cell"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Condition.
func (Condition) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("study", Study.Type).
			Ref("conditions").
			Field("study_id").
			Unique().
			Required().
			Immutable(),
	}
}
