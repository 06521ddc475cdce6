package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// Survey holds the schema definition for the Survey entity — a questionnaire
// instrument attached to a study.
type Survey struct {
	ent.Schema
}

// Fields of the Survey.
func (Survey) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("survey_id").
			Unique().
			Immutable(),
		field.String("study_id").
			Immutable(),
		field.String("name"),
		field.JSON("questions", []map[string]interface{}{}).
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Survey.
func (Survey) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("study", Study.Type).
			Ref("surveys").
			Field("study_id").
			Unique().
			Required().
			Immutable(),
		edge.To("responses", SurveyResponse.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}
