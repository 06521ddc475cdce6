// Code generated by ent, DO NOT EDIT.

package agentcontext

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/dyadlab/fabula/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.AgentContext {
	return predicate.AgentContext(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.AgentContext {
	return predicate.AgentContext(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.AgentContext {
	return predicate.AgentContext(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.AgentContext {
	return predicate.AgentContext(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.AgentContext {
	return predicate.AgentContext(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.AgentContext {
	return predicate.AgentContext(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.AgentContext {
	return predicate.AgentContext(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.AgentContext {
	return predicate.AgentContext(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.AgentContext {
	return predicate.AgentContext(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.AgentContext {
	return predicate.AgentContext(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.AgentContext {
	return predicate.AgentContext(sql.FieldContainsFold(FieldID, id))
}

// ParticipantID applies equality check predicate on the "participant_id" field. It's identical to ParticipantIDEQ.
func ParticipantID(v string) predicate.AgentContext {
	return predicate.AgentContext(sql.FieldEQ(FieldParticipantID, v))
}

// CurrentRound applies equality check predicate on the "current_round" field. It's identical to CurrentRoundEQ.
func CurrentRound(v int) predicate.AgentContext {
	return predicate.AgentContext(sql.FieldEQ(FieldCurrentRound, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.AgentContext {
	return predicate.AgentContext(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.AgentContext {
	return predicate.AgentContext(sql.FieldEQ(FieldUpdatedAt, v))
}

// ParticipantIDEQ applies the EQ predicate on the "participant_id" field.
func ParticipantIDEQ(v string) predicate.AgentContext {
	return predicate.AgentContext(sql.FieldEQ(FieldParticipantID, v))
}

// ParticipantIDNEQ applies the NEQ predicate on the "participant_id" field.
func ParticipantIDNEQ(v string) predicate.AgentContext {
	return predicate.AgentContext(sql.FieldNEQ(FieldParticipantID, v))
}

// ParticipantIDIn applies the In predicate on the "participant_id" field.
func ParticipantIDIn(vs ...string) predicate.AgentContext {
	return predicate.AgentContext(sql.FieldIn(FieldParticipantID, vs...))
}

// ParticipantIDNotIn applies the NotIn predicate on the "participant_id" field.
func ParticipantIDNotIn(vs ...string) predicate.AgentContext {
	return predicate.AgentContext(sql.FieldNotIn(FieldParticipantID, vs...))
}

// ParticipantIDGT applies the GT predicate on the "participant_id" field.
func ParticipantIDGT(v string) predicate.AgentContext {
	return predicate.AgentContext(sql.FieldGT(FieldParticipantID, v))
}

// ParticipantIDGTE applies the GTE predicate on the "participant_id" field.
func ParticipantIDGTE(v string) predicate.AgentContext {
	return predicate.AgentContext(sql.FieldGTE(FieldParticipantID, v))
}

// ParticipantIDLT applies the LT predicate on the "participant_id" field.
func ParticipantIDLT(v string) predicate.AgentContext {
	return predicate.AgentContext(sql.FieldLT(FieldParticipantID, v))
}

// ParticipantIDLTE applies the LTE predicate on the "participant_id" field.
func ParticipantIDLTE(v string) predicate.AgentContext {
	return predicate.AgentContext(sql.FieldLTE(FieldParticipantID, v))
}

// ParticipantIDContains applies the Contains predicate on the "participant_id" field.
func ParticipantIDContains(v string) predicate.AgentContext {
	return predicate.AgentContext(sql.FieldContains(FieldParticipantID, v))
}

// ParticipantIDHasPrefix applies the HasPrefix predicate on the "participant_id" field.
func ParticipantIDHasPrefix(v string) predicate.AgentContext {
	return predicate.AgentContext(sql.FieldHasPrefix(FieldParticipantID, v))
}

// ParticipantIDHasSuffix applies the HasSuffix predicate on the "participant_id" field.
func ParticipantIDHasSuffix(v string) predicate.AgentContext {
	return predicate.AgentContext(sql.FieldHasSuffix(FieldParticipantID, v))
}

// ParticipantIDEqualFold applies the EqualFold predicate on the "participant_id" field.
func ParticipantIDEqualFold(v string) predicate.AgentContext {
	return predicate.AgentContext(sql.FieldEqualFold(FieldParticipantID, v))
}

// ParticipantIDContainsFold applies the ContainsFold predicate on the "participant_id" field.
func ParticipantIDContainsFold(v string) predicate.AgentContext {
	return predicate.AgentContext(sql.FieldContainsFold(FieldParticipantID, v))
}

// CurrentRoundEQ applies the EQ predicate on the "current_round" field.
func CurrentRoundEQ(v int) predicate.AgentContext {
	return predicate.AgentContext(sql.FieldEQ(FieldCurrentRound, v))
}

// CurrentRoundNEQ applies the NEQ predicate on the "current_round" field.
func CurrentRoundNEQ(v int) predicate.AgentContext {
	return predicate.AgentContext(sql.FieldNEQ(FieldCurrentRound, v))
}

// CurrentRoundIn applies the In predicate on the "current_round" field.
func CurrentRoundIn(vs ...int) predicate.AgentContext {
	return predicate.AgentContext(sql.FieldIn(FieldCurrentRound, vs...))
}

// CurrentRoundNotIn applies the NotIn predicate on the "current_round" field.
func CurrentRoundNotIn(vs ...int) predicate.AgentContext {
	return predicate.AgentContext(sql.FieldNotIn(FieldCurrentRound, vs...))
}

// CurrentRoundGT applies the GT predicate on the "current_round" field.
func CurrentRoundGT(v int) predicate.AgentContext {
	return predicate.AgentContext(sql.FieldGT(FieldCurrentRound, v))
}

// CurrentRoundGTE applies the GTE predicate on the "current_round" field.
func CurrentRoundGTE(v int) predicate.AgentContext {
	return predicate.AgentContext(sql.FieldGTE(FieldCurrentRound, v))
}

// CurrentRoundLT applies the LT predicate on the "current_round" field.
func CurrentRoundLT(v int) predicate.AgentContext {
	return predicate.AgentContext(sql.FieldLT(FieldCurrentRound, v))
}

// CurrentRoundLTE applies the LTE predicate on the "current_round" field.
func CurrentRoundLTE(v int) predicate.AgentContext {
	return predicate.AgentContext(sql.FieldLTE(FieldCurrentRound, v))
}

// CurrentPhaseEQ applies the EQ predicate on the "current_phase" field.
func CurrentPhaseEQ(v CurrentPhase) predicate.AgentContext {
	return predicate.AgentContext(sql.FieldEQ(FieldCurrentPhase, v))
}

// CurrentPhaseNEQ applies the NEQ predicate on the "current_phase" field.
func CurrentPhaseNEQ(v CurrentPhase) predicate.AgentContext {
	return predicate.AgentContext(sql.FieldNEQ(FieldCurrentPhase, v))
}

// CurrentPhaseIn applies the In predicate on the "current_phase" field.
func CurrentPhaseIn(vs ...CurrentPhase) predicate.AgentContext {
	return predicate.AgentContext(sql.FieldIn(FieldCurrentPhase, vs...))
}

// CurrentPhaseNotIn applies the NotIn predicate on the "current_phase" field.
func CurrentPhaseNotIn(vs ...CurrentPhase) predicate.AgentContext {
	return predicate.AgentContext(sql.FieldNotIn(FieldCurrentPhase, vs...))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.AgentContext {
	return predicate.AgentContext(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.AgentContext {
	return predicate.AgentContext(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.AgentContext {
	return predicate.AgentContext(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.AgentContext {
	return predicate.AgentContext(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.AgentContext {
	return predicate.AgentContext(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.AgentContext {
	return predicate.AgentContext(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.AgentContext {
	return predicate.AgentContext(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.AgentContext {
	return predicate.AgentContext(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.AgentContext {
	return predicate.AgentContext(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.AgentContext {
	return predicate.AgentContext(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.AgentContext {
	return predicate.AgentContext(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.AgentContext {
	return predicate.AgentContext(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.AgentContext {
	return predicate.AgentContext(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.AgentContext {
	return predicate.AgentContext(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.AgentContext {
	return predicate.AgentContext(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.AgentContext {
	return predicate.AgentContext(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasParticipant applies the HasEdge predicate on the "participant" edge.
func HasParticipant() predicate.AgentContext {
	return predicate.AgentContext(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, ParticipantTable, ParticipantColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasParticipantWith applies the HasEdge predicate on the "participant" edge with a given conditions (other predicates).
func HasParticipantWith(preds ...predicate.Participant) predicate.AgentContext {
	return predicate.AgentContext(func(s *sql.Selector) {
		step := newParticipantStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AgentContext) predicate.AgentContext {
	return predicate.AgentContext(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AgentContext) predicate.AgentContext {
	return predicate.AgentContext(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AgentContext) predicate.AgentContext {
	return predicate.AgentContext(sql.NotPredicates(p))
}
