package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SurveyResponse holds the schema definition for the SurveyResponse entity.
type SurveyResponse struct {
	ent.Schema
}

// Fields of the SurveyResponse.
func (SurveyResponse) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("survey_response_id").
			Unique().
			Immutable(),
		field.String("survey_id").
			Immutable(),
		field.String("participant_id").
			Immutable(),
		field.JSON("responses", map[string]interface{}{}),
		field.Time("submitted_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the SurveyResponse.
func (SurveyResponse) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("survey", Survey.Type).
			Ref("responses").
			Field("survey_id").
			Unique().
			Required().
			Immutable(),
		edge.From("participant", Participant.Type).
			Ref("survey_responses").
			Field("participant_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the SurveyResponse.
func (SurveyResponse) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("participant_id"),
	}
}
