// Code generated by ent, DO NOT EDIT.

package hybridsession

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/dyadlab/fabula/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.HybridSession {
	return predicate.HybridSession(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.HybridSession {
	return predicate.HybridSession(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.HybridSession {
	return predicate.HybridSession(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.HybridSession {
	return predicate.HybridSession(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.HybridSession {
	return predicate.HybridSession(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.HybridSession {
	return predicate.HybridSession(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.HybridSession {
	return predicate.HybridSession(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.HybridSession {
	return predicate.HybridSession(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.HybridSession {
	return predicate.HybridSession(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.HybridSession {
	return predicate.HybridSession(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.HybridSession {
	return predicate.HybridSession(sql.FieldContainsFold(FieldID, id))
}

// StudyID applies equality check predicate on the "study_id" field. It's identical to StudyIDEQ.
func StudyID(v string) predicate.HybridSession {
	return predicate.HybridSession(sql.FieldEQ(FieldStudyID, v))
}

// ParticipantA applies equality check predicate on the "participant_a" field. It's identical to ParticipantAEQ.
func ParticipantA(v string) predicate.HybridSession {
	return predicate.HybridSession(sql.FieldEQ(FieldParticipantA, v))
}

// ParticipantB applies equality check predicate on the "participant_b" field. It's identical to ParticipantBEQ.
func ParticipantB(v string) predicate.HybridSession {
	return predicate.HybridSession(sql.FieldEQ(FieldParticipantB, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.HybridSession {
	return predicate.HybridSession(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.HybridSession {
	return predicate.HybridSession(sql.FieldEQ(FieldCompletedAt, v))
}

// StudyIDEQ applies the EQ predicate on the "study_id" field.
func StudyIDEQ(v string) predicate.HybridSession {
	return predicate.HybridSession(sql.FieldEQ(FieldStudyID, v))
}

// StudyIDNEQ applies the NEQ predicate on the "study_id" field.
func StudyIDNEQ(v string) predicate.HybridSession {
	return predicate.HybridSession(sql.FieldNEQ(FieldStudyID, v))
}

// StudyIDIn applies the In predicate on the "study_id" field.
func StudyIDIn(vs ...string) predicate.HybridSession {
	return predicate.HybridSession(sql.FieldIn(FieldStudyID, vs...))
}

// StudyIDNotIn applies the NotIn predicate on the "study_id" field.
func StudyIDNotIn(vs ...string) predicate.HybridSession {
	return predicate.HybridSession(sql.FieldNotIn(FieldStudyID, vs...))
}

// StudyIDGT applies the GT predicate on the "study_id" field.
func StudyIDGT(v string) predicate.HybridSession {
	return predicate.HybridSession(sql.FieldGT(FieldStudyID, v))
}

// StudyIDGTE applies the GTE predicate on the "study_id" field.
func StudyIDGTE(v string) predicate.HybridSession {
	return predicate.HybridSession(sql.FieldGTE(FieldStudyID, v))
}

// StudyIDLT applies the LT predicate on the "study_id" field.
func StudyIDLT(v string) predicate.HybridSession {
	return predicate.HybridSession(sql.FieldLT(FieldStudyID, v))
}

// StudyIDLTE applies the LTE predicate on the "study_id" field.
func StudyIDLTE(v string) predicate.HybridSession {
	return predicate.HybridSession(sql.FieldLTE(FieldStudyID, v))
}

// StudyIDContains applies the Contains predicate on the "study_id" field.
func StudyIDContains(v string) predicate.HybridSession {
	return predicate.HybridSession(sql.FieldContains(FieldStudyID, v))
}

// StudyIDHasPrefix applies the HasPrefix predicate on the "study_id" field.
func StudyIDHasPrefix(v string) predicate.HybridSession {
	return predicate.HybridSession(sql.FieldHasPrefix(FieldStudyID, v))
}

// StudyIDHasSuffix applies the HasSuffix predicate on the "study_id" field.
func StudyIDHasSuffix(v string) predicate.HybridSession {
	return predicate.HybridSession(sql.FieldHasSuffix(FieldStudyID, v))
}

// StudyIDEqualFold applies the EqualFold predicate on the "study_id" field.
func StudyIDEqualFold(v string) predicate.HybridSession {
	return predicate.HybridSession(sql.FieldEqualFold(FieldStudyID, v))
}

// StudyIDContainsFold applies the ContainsFold predicate on the "study_id" field.
func StudyIDContainsFold(v string) predicate.HybridSession {
	return predicate.HybridSession(sql.FieldContainsFold(FieldStudyID, v))
}

// ParticipantAEQ applies the EQ predicate on the "participant_a" field.
func ParticipantAEQ(v string) predicate.HybridSession {
	return predicate.HybridSession(sql.FieldEQ(FieldParticipantA, v))
}

// ParticipantANEQ applies the NEQ predicate on the "participant_a" field.
func ParticipantANEQ(v string) predicate.HybridSession {
	return predicate.HybridSession(sql.FieldNEQ(FieldParticipantA, v))
}

// ParticipantAIn applies the In predicate on the "participant_a" field.
func ParticipantAIn(vs ...string) predicate.HybridSession {
	return predicate.HybridSession(sql.FieldIn(FieldParticipantA, vs...))
}

// ParticipantANotIn applies the NotIn predicate on the "participant_a" field.
func ParticipantANotIn(vs ...string) predicate.HybridSession {
	return predicate.HybridSession(sql.FieldNotIn(FieldParticipantA, vs...))
}

// ParticipantAGT applies the GT predicate on the "participant_a" field.
func ParticipantAGT(v string) predicate.HybridSession {
	return predicate.HybridSession(sql.FieldGT(FieldParticipantA, v))
}

// ParticipantAGTE applies the GTE predicate on the "participant_a" field.
func ParticipantAGTE(v string) predicate.HybridSession {
	return predicate.HybridSession(sql.FieldGTE(FieldParticipantA, v))
}

// ParticipantALT applies the LT predicate on the "participant_a" field.
func ParticipantALT(v string) predicate.HybridSession {
	return predicate.HybridSession(sql.FieldLT(FieldParticipantA, v))
}

// ParticipantALTE applies the LTE predicate on the "participant_a" field.
func ParticipantALTE(v string) predicate.HybridSession {
	return predicate.HybridSession(sql.FieldLTE(FieldParticipantA, v))
}

// ParticipantAContains applies the Contains predicate on the "participant_a" field.
func ParticipantAContains(v string) predicate.HybridSession {
	return predicate.HybridSession(sql.FieldContains(FieldParticipantA, v))
}

// ParticipantAHasPrefix applies the HasPrefix predicate on the "participant_a" field.
func ParticipantAHasPrefix(v string) predicate.HybridSession {
	return predicate.HybridSession(sql.FieldHasPrefix(FieldParticipantA, v))
}

// ParticipantAHasSuffix applies the HasSuffix predicate on the "participant_a" field.
func ParticipantAHasSuffix(v string) predicate.HybridSession {
	return predicate.HybridSession(sql.FieldHasSuffix(FieldParticipantA, v))
}

// ParticipantAEqualFold applies the EqualFold predicate on the "participant_a" field.
func ParticipantAEqualFold(v string) predicate.HybridSession {
	return predicate.HybridSession(sql.FieldEqualFold(FieldParticipantA, v))
}

// ParticipantAContainsFold applies the ContainsFold predicate on the "participant_a" field.
func ParticipantAContainsFold(v string) predicate.HybridSession {
	return predicate.HybridSession(sql.FieldContainsFold(FieldParticipantA, v))
}

// ParticipantBEQ applies the EQ predicate on the "participant_b" field.
func ParticipantBEQ(v string) predicate.HybridSession {
	return predicate.HybridSession(sql.FieldEQ(FieldParticipantB, v))
}

// ParticipantBNEQ applies the NEQ predicate on the "participant_b" field.
func ParticipantBNEQ(v string) predicate.HybridSession {
	return predicate.HybridSession(sql.FieldNEQ(FieldParticipantB, v))
}

// ParticipantBIn applies the In predicate on the "participant_b" field.
func ParticipantBIn(vs ...string) predicate.HybridSession {
	return predicate.HybridSession(sql.FieldIn(FieldParticipantB, vs...))
}

// ParticipantBNotIn applies the NotIn predicate on the "participant_b" field.
func ParticipantBNotIn(vs ...string) predicate.HybridSession {
	return predicate.HybridSession(sql.FieldNotIn(FieldParticipantB, vs...))
}

// ParticipantBGT applies the GT predicate on the "participant_b" field.
func ParticipantBGT(v string) predicate.HybridSession {
	return predicate.HybridSession(sql.FieldGT(FieldParticipantB, v))
}

// ParticipantBGTE applies the GTE predicate on the "participant_b" field.
func ParticipantBGTE(v string) predicate.HybridSession {
	return predicate.HybridSession(sql.FieldGTE(FieldParticipantB, v))
}

// ParticipantBLT applies the LT predicate on the "participant_b" field.
func ParticipantBLT(v string) predicate.HybridSession {
	return predicate.HybridSession(sql.FieldLT(FieldParticipantB, v))
}

// ParticipantBLTE applies the LTE predicate on the "participant_b" field.
func ParticipantBLTE(v string) predicate.HybridSession {
	return predicate.HybridSession(sql.FieldLTE(FieldParticipantB, v))
}

// ParticipantBContains applies the Contains predicate on the "participant_b" field.
func ParticipantBContains(v string) predicate.HybridSession {
	return predicate.HybridSession(sql.FieldContains(FieldParticipantB, v))
}

// ParticipantBHasPrefix applies the HasPrefix predicate on the "participant_b" field.
func ParticipantBHasPrefix(v string) predicate.HybridSession {
	return predicate.HybridSession(sql.FieldHasPrefix(FieldParticipantB, v))
}

// ParticipantBHasSuffix applies the HasSuffix predicate on the "participant_b" field.
func ParticipantBHasSuffix(v string) predicate.HybridSession {
	return predicate.HybridSession(sql.FieldHasSuffix(FieldParticipantB, v))
}

// ParticipantBEqualFold applies the EqualFold predicate on the "participant_b" field.
func ParticipantBEqualFold(v string) predicate.HybridSession {
	return predicate.HybridSession(sql.FieldEqualFold(FieldParticipantB, v))
}

// ParticipantBContainsFold applies the ContainsFold predicate on the "participant_b" field.
func ParticipantBContainsFold(v string) predicate.HybridSession {
	return predicate.HybridSession(sql.FieldContainsFold(FieldParticipantB, v))
}

// ActorTypeAEQ applies the EQ predicate on the "actor_type_a" field.
func ActorTypeAEQ(v ActorTypeA) predicate.HybridSession {
	return predicate.HybridSession(sql.FieldEQ(FieldActorTypeA, v))
}

// ActorTypeANEQ applies the NEQ predicate on the "actor_type_a" field.
func ActorTypeANEQ(v ActorTypeA) predicate.HybridSession {
	return predicate.HybridSession(sql.FieldNEQ(FieldActorTypeA, v))
}

// ActorTypeAIn applies the In predicate on the "actor_type_a" field.
func ActorTypeAIn(vs ...ActorTypeA) predicate.HybridSession {
	return predicate.HybridSession(sql.FieldIn(FieldActorTypeA, vs...))
}

// ActorTypeANotIn applies the NotIn predicate on the "actor_type_a" field.
func ActorTypeANotIn(vs ...ActorTypeA) predicate.HybridSession {
	return predicate.HybridSession(sql.FieldNotIn(FieldActorTypeA, vs...))
}

// ActorTypeBEQ applies the EQ predicate on the "actor_type_b" field.
func ActorTypeBEQ(v ActorTypeB) predicate.HybridSession {
	return predicate.HybridSession(sql.FieldEQ(FieldActorTypeB, v))
}

// ActorTypeBNEQ applies the NEQ predicate on the "actor_type_b" field.
func ActorTypeBNEQ(v ActorTypeB) predicate.HybridSession {
	return predicate.HybridSession(sql.FieldNEQ(FieldActorTypeB, v))
}

// ActorTypeBIn applies the In predicate on the "actor_type_b" field.
func ActorTypeBIn(vs ...ActorTypeB) predicate.HybridSession {
	return predicate.HybridSession(sql.FieldIn(FieldActorTypeB, vs...))
}

// ActorTypeBNotIn applies the NotIn predicate on the "actor_type_b" field.
func ActorTypeBNotIn(vs ...ActorTypeB) predicate.HybridSession {
	return predicate.HybridSession(sql.FieldNotIn(FieldActorTypeB, vs...))
}

// ConfigIsNil applies the IsNil predicate on the "config" field.
func ConfigIsNil() predicate.HybridSession {
	return predicate.HybridSession(sql.FieldIsNull(FieldConfig))
}

// ConfigNotNil applies the NotNil predicate on the "config" field.
func ConfigNotNil() predicate.HybridSession {
	return predicate.HybridSession(sql.FieldNotNull(FieldConfig))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.HybridSession {
	return predicate.HybridSession(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.HybridSession {
	return predicate.HybridSession(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.HybridSession {
	return predicate.HybridSession(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.HybridSession {
	return predicate.HybridSession(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.HybridSession {
	return predicate.HybridSession(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.HybridSession {
	return predicate.HybridSession(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.HybridSession {
	return predicate.HybridSession(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.HybridSession {
	return predicate.HybridSession(sql.FieldLTE(FieldStartedAt, v))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.HybridSession {
	return predicate.HybridSession(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.HybridSession {
	return predicate.HybridSession(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.HybridSession {
	return predicate.HybridSession(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.HybridSession {
	return predicate.HybridSession(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.HybridSession {
	return predicate.HybridSession(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.HybridSession {
	return predicate.HybridSession(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.HybridSession {
	return predicate.HybridSession(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.HybridSession {
	return predicate.HybridSession(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.HybridSession {
	return predicate.HybridSession(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.HybridSession {
	return predicate.HybridSession(sql.FieldNotNull(FieldCompletedAt))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.HybridSession) predicate.HybridSession {
	return predicate.HybridSession(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.HybridSession) predicate.HybridSession {
	return predicate.HybridSession(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.HybridSession) predicate.HybridSession {
	return predicate.HybridSession(sql.NotPredicates(p))
}
