// Code generated by ent, DO NOT EDIT.

package surveyresponse

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/dyadlab/fabula/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.SurveyResponse {
	return predicate.SurveyResponse(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.SurveyResponse {
	return predicate.SurveyResponse(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.SurveyResponse {
	return predicate.SurveyResponse(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.SurveyResponse {
	return predicate.SurveyResponse(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.SurveyResponse {
	return predicate.SurveyResponse(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.SurveyResponse {
	return predicate.SurveyResponse(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.SurveyResponse {
	return predicate.SurveyResponse(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.SurveyResponse {
	return predicate.SurveyResponse(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.SurveyResponse {
	return predicate.SurveyResponse(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.SurveyResponse {
	return predicate.SurveyResponse(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.SurveyResponse {
	return predicate.SurveyResponse(sql.FieldContainsFold(FieldID, id))
}

// SurveyID applies equality check predicate on the "survey_id" field. It's identical to SurveyIDEQ.
func SurveyID(v string) predicate.SurveyResponse {
	return predicate.SurveyResponse(sql.FieldEQ(FieldSurveyID, v))
}

// ParticipantID applies equality check predicate on the "participant_id" field. It's identical to ParticipantIDEQ.
func ParticipantID(v string) predicate.SurveyResponse {
	return predicate.SurveyResponse(sql.FieldEQ(FieldParticipantID, v))
}

// SubmittedAt applies equality check predicate on the "submitted_at" field. It's identical to SubmittedAtEQ.
func SubmittedAt(v time.Time) predicate.SurveyResponse {
	return predicate.SurveyResponse(sql.FieldEQ(FieldSubmittedAt, v))
}

// SurveyIDEQ applies the EQ predicate on the "survey_id" field.
func SurveyIDEQ(v string) predicate.SurveyResponse {
	return predicate.SurveyResponse(sql.FieldEQ(FieldSurveyID, v))
}

// SurveyIDNEQ applies the NEQ predicate on the "survey_id" field.
func SurveyIDNEQ(v string) predicate.SurveyResponse {
	return predicate.SurveyResponse(sql.FieldNEQ(FieldSurveyID, v))
}

// SurveyIDIn applies the In predicate on the "survey_id" field.
func SurveyIDIn(vs ...string) predicate.SurveyResponse {
	return predicate.SurveyResponse(sql.FieldIn(FieldSurveyID, vs...))
}

// SurveyIDNotIn applies the NotIn predicate on the "survey_id" field.
func SurveyIDNotIn(vs ...string) predicate.SurveyResponse {
	return predicate.SurveyResponse(sql.FieldNotIn(FieldSurveyID, vs...))
}

// SurveyIDGT applies the GT predicate on the "survey_id" field.
func SurveyIDGT(v string) predicate.SurveyResponse {
	return predicate.SurveyResponse(sql.FieldGT(FieldSurveyID, v))
}

// SurveyIDGTE applies the GTE predicate on the "survey_id" field.
func SurveyIDGTE(v string) predicate.SurveyResponse {
	return predicate.SurveyResponse(sql.FieldGTE(FieldSurveyID, v))
}

// SurveyIDLT applies the LT predicate on the "survey_id" field.
func SurveyIDLT(v string) predicate.SurveyResponse {
	return predicate.SurveyResponse(sql.FieldLT(FieldSurveyID, v))
}

// SurveyIDLTE applies the LTE predicate on the "survey_id" field.
func SurveyIDLTE(v string) predicate.SurveyResponse {
	return predicate.SurveyResponse(sql.FieldLTE(FieldSurveyID, v))
}

// SurveyIDContains applies the Contains predicate on the "survey_id" field.
func SurveyIDContains(v string) predicate.SurveyResponse {
	return predicate.SurveyResponse(sql.FieldContains(FieldSurveyID, v))
}

// SurveyIDHasPrefix applies the HasPrefix predicate on the "survey_id" field.
func SurveyIDHasPrefix(v string) predicate.SurveyResponse {
	return predicate.SurveyResponse(sql.FieldHasPrefix(FieldSurveyID, v))
}

// SurveyIDHasSuffix applies the HasSuffix predicate on the "survey_id" field.
func SurveyIDHasSuffix(v string) predicate.SurveyResponse {
	return predicate.SurveyResponse(sql.FieldHasSuffix(FieldSurveyID, v))
}

// SurveyIDEqualFold applies the EqualFold predicate on the "survey_id" field.
func SurveyIDEqualFold(v string) predicate.SurveyResponse {
	return predicate.SurveyResponse(sql.FieldEqualFold(FieldSurveyID, v))
}

// SurveyIDContainsFold applies the ContainsFold predicate on the "survey_id" field.
func SurveyIDContainsFold(v string) predicate.SurveyResponse {
	return predicate.SurveyResponse(sql.FieldContainsFold(FieldSurveyID, v))
}

// ParticipantIDEQ applies the EQ predicate on the "participant_id" field.
func ParticipantIDEQ(v string) predicate.SurveyResponse {
	return predicate.SurveyResponse(sql.FieldEQ(FieldParticipantID, v))
}

// ParticipantIDNEQ applies the NEQ predicate on the "participant_id" field.
func ParticipantIDNEQ(v string) predicate.SurveyResponse {
	return predicate.SurveyResponse(sql.FieldNEQ(FieldParticipantID, v))
}

// ParticipantIDIn applies the In predicate on the "participant_id" field.
func ParticipantIDIn(vs ...string) predicate.SurveyResponse {
	return predicate.SurveyResponse(sql.FieldIn(FieldParticipantID, vs...))
}

// ParticipantIDNotIn applies the NotIn predicate on the "participant_id" field.
func ParticipantIDNotIn(vs ...string) predicate.SurveyResponse {
	return predicate.SurveyResponse(sql.FieldNotIn(FieldParticipantID, vs...))
}

// ParticipantIDGT applies the GT predicate on the "participant_id" field.
func ParticipantIDGT(v string) predicate.SurveyResponse {
	return predicate.SurveyResponse(sql.FieldGT(FieldParticipantID, v))
}

// ParticipantIDGTE applies the GTE predicate on the "participant_id" field.
func ParticipantIDGTE(v string) predicate.SurveyResponse {
	return predicate.SurveyResponse(sql.FieldGTE(FieldParticipantID, v))
}

// ParticipantIDLT applies the LT predicate on the "participant_id" field.
func ParticipantIDLT(v string) predicate.SurveyResponse {
	return predicate.SurveyResponse(sql.FieldLT(FieldParticipantID, v))
}

// ParticipantIDLTE applies the LTE predicate on the "participant_id" field.
func ParticipantIDLTE(v string) predicate.SurveyResponse {
	return predicate.SurveyResponse(sql.FieldLTE(FieldParticipantID, v))
}

// ParticipantIDContains applies the Contains predicate on the "participant_id" field.
func ParticipantIDContains(v string) predicate.SurveyResponse {
	return predicate.SurveyResponse(sql.FieldContains(FieldParticipantID, v))
}

// ParticipantIDHasPrefix applies the HasPrefix predicate on the "participant_id" field.
func ParticipantIDHasPrefix(v string) predicate.SurveyResponse {
	return predicate.SurveyResponse(sql.FieldHasPrefix(FieldParticipantID, v))
}

// ParticipantIDHasSuffix applies the HasSuffix predicate on the "participant_id" field.
func ParticipantIDHasSuffix(v string) predicate.SurveyResponse {
	return predicate.SurveyResponse(sql.FieldHasSuffix(FieldParticipantID, v))
}

// ParticipantIDEqualFold applies the EqualFold predicate on the "participant_id" field.
func ParticipantIDEqualFold(v string) predicate.SurveyResponse {
	return predicate.SurveyResponse(sql.FieldEqualFold(FieldParticipantID, v))
}

// ParticipantIDContainsFold applies the ContainsFold predicate on the "participant_id" field.
func ParticipantIDContainsFold(v string) predicate.SurveyResponse {
	return predicate.SurveyResponse(sql.FieldContainsFold(FieldParticipantID, v))
}

// SubmittedAtEQ applies the EQ predicate on the "submitted_at" field.
func SubmittedAtEQ(v time.Time) predicate.SurveyResponse {
	return predicate.SurveyResponse(sql.FieldEQ(FieldSubmittedAt, v))
}

// SubmittedAtNEQ applies the NEQ predicate on the "submitted_at" field.
func SubmittedAtNEQ(v time.Time) predicate.SurveyResponse {
	return predicate.SurveyResponse(sql.FieldNEQ(FieldSubmittedAt, v))
}

// SubmittedAtIn applies the In predicate on the "submitted_at" field.
func SubmittedAtIn(vs ...time.Time) predicate.SurveyResponse {
	return predicate.SurveyResponse(sql.FieldIn(FieldSubmittedAt, vs...))
}

// SubmittedAtNotIn applies the NotIn predicate on the "submitted_at" field.
func SubmittedAtNotIn(vs ...time.Time) predicate.SurveyResponse {
	return predicate.SurveyResponse(sql.FieldNotIn(FieldSubmittedAt, vs...))
}

// SubmittedAtGT applies the GT predicate on the "submitted_at" field.
func SubmittedAtGT(v time.Time) predicate.SurveyResponse {
	return predicate.SurveyResponse(sql.FieldGT(FieldSubmittedAt, v))
}

// SubmittedAtGTE applies the GTE predicate on the "submitted_at" field.
func SubmittedAtGTE(v time.Time) predicate.SurveyResponse {
	return predicate.SurveyResponse(sql.FieldGTE(FieldSubmittedAt, v))
}

// SubmittedAtLT applies the LT predicate on the "submitted_at" field.
func SubmittedAtLT(v time.Time) predicate.SurveyResponse {
	return predicate.SurveyResponse(sql.FieldLT(FieldSubmittedAt, v))
}

// SubmittedAtLTE applies the LTE predicate on the "submitted_at" field.
func SubmittedAtLTE(v time.Time) predicate.SurveyResponse {
	return predicate.SurveyResponse(sql.FieldLTE(FieldSubmittedAt, v))
}

// HasSurvey applies the HasEdge predicate on the "survey" edge.
func HasSurvey() predicate.SurveyResponse {
	return predicate.SurveyResponse(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SurveyTable, SurveyColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSurveyWith applies the HasEdge predicate on the "survey" edge with a given conditions (other predicates).
func HasSurveyWith(preds ...predicate.Survey) predicate.SurveyResponse {
	return predicate.SurveyResponse(func(s *sql.Selector) {
		step := newSurveyStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasParticipant applies the HasEdge predicate on the "participant" edge.
func HasParticipant() predicate.SurveyResponse {
	return predicate.SurveyResponse(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ParticipantTable, ParticipantColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasParticipantWith applies the HasEdge predicate on the "participant" edge with a given conditions (other predicates).
func HasParticipantWith(preds ...predicate.Participant) predicate.SurveyResponse {
	return predicate.SurveyResponse(func(s *sql.Selector) {
		step := newParticipantStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SurveyResponse) predicate.SurveyResponse {
	return predicate.SurveyResponse(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SurveyResponse) predicate.SurveyResponse {
	return predicate.SurveyResponse(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SurveyResponse) predicate.SurveyResponse {
	return predicate.SurveyResponse(sql.NotPredicates(p))
}
