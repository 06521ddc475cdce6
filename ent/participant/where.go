// Code generated by ent, DO NOT EDIT.

package participant

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/dyadlab/fabula/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Participant {
	return predicate.Participant(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Participant {
	return predicate.Participant(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Participant {
	return predicate.Participant(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Participant {
	return predicate.Participant(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Participant {
	return predicate.Participant(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Participant {
	return predicate.Participant(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Participant {
	return predicate.Participant(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Participant {
	return predicate.Participant(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Participant {
	return predicate.Participant(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Participant {
	return predicate.Participant(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Participant {
	return predicate.Participant(sql.FieldContainsFold(FieldID, id))
}

// StudyID applies equality check predicate on the "study_id" field. It's identical to StudyIDEQ.
func StudyID(v string) predicate.Participant {
	return predicate.Participant(sql.FieldEQ(FieldStudyID, v))
}

// BatchID applies equality check predicate on the "batch_id" field. It's identical to BatchIDEQ.
func BatchID(v string) predicate.Participant {
	return predicate.Participant(sql.FieldEQ(FieldBatchID, v))
}

// ConditionID applies equality check predicate on the "condition_id" field. It's identical to ConditionIDEQ.
func ConditionID(v string) predicate.Participant {
	return predicate.Participant(sql.FieldEQ(FieldConditionID, v))
}

// UniqueID applies equality check predicate on the "unique_id" field. It's identical to UniqueIDEQ.
func UniqueID(v string) predicate.Participant {
	return predicate.Participant(sql.FieldEQ(FieldUniqueID, v))
}

// Role applies equality check predicate on the "role" field. It's identical to RoleEQ.
func Role(v string) predicate.Participant {
	return predicate.Participant(sql.FieldEQ(FieldRole, v))
}

// PartnerID applies equality check predicate on the "partner_id" field. It's identical to PartnerIDEQ.
func PartnerID(v string) predicate.Participant {
	return predicate.Participant(sql.FieldEQ(FieldPartnerID, v))
}

// Email applies equality check predicate on the "email" field. It's identical to EmailEQ.
func Email(v string) predicate.Participant {
	return predicate.Participant(sql.FieldEQ(FieldEmail, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Participant {
	return predicate.Participant(sql.FieldEQ(FieldCreatedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.Participant {
	return predicate.Participant(sql.FieldEQ(FieldCompletedAt, v))
}

// StudyIDEQ applies the EQ predicate on the "study_id" field.
func StudyIDEQ(v string) predicate.Participant {
	return predicate.Participant(sql.FieldEQ(FieldStudyID, v))
}

// StudyIDNEQ applies the NEQ predicate on the "study_id" field.
func StudyIDNEQ(v string) predicate.Participant {
	return predicate.Participant(sql.FieldNEQ(FieldStudyID, v))
}

// StudyIDIn applies the In predicate on the "study_id" field.
func StudyIDIn(vs ...string) predicate.Participant {
	return predicate.Participant(sql.FieldIn(FieldStudyID, vs...))
}

// StudyIDNotIn applies the NotIn predicate on the "study_id" field.
func StudyIDNotIn(vs ...string) predicate.Participant {
	return predicate.Participant(sql.FieldNotIn(FieldStudyID, vs...))
}

// StudyIDGT applies the GT predicate on the "study_id" field.
func StudyIDGT(v string) predicate.Participant {
	return predicate.Participant(sql.FieldGT(FieldStudyID, v))
}

// StudyIDGTE applies the GTE predicate on the "study_id" field.
func StudyIDGTE(v string) predicate.Participant {
	return predicate.Participant(sql.FieldGTE(FieldStudyID, v))
}

// StudyIDLT applies the LT predicate on the "study_id" field.
func StudyIDLT(v string) predicate.Participant {
	return predicate.Participant(sql.FieldLT(FieldStudyID, v))
}

// StudyIDLTE applies the LTE predicate on the "study_id" field.
func StudyIDLTE(v string) predicate.Participant {
	return predicate.Participant(sql.FieldLTE(FieldStudyID, v))
}

// StudyIDContains applies the Contains predicate on the "study_id" field.
func StudyIDContains(v string) predicate.Participant {
	return predicate.Participant(sql.FieldContains(FieldStudyID, v))
}

// StudyIDHasPrefix applies the HasPrefix predicate on the "study_id" field.
func StudyIDHasPrefix(v string) predicate.Participant {
	return predicate.Participant(sql.FieldHasPrefix(FieldStudyID, v))
}

// StudyIDHasSuffix applies the HasSuffix predicate on the "study_id" field.
func StudyIDHasSuffix(v string) predicate.Participant {
	return predicate.Participant(sql.FieldHasSuffix(FieldStudyID, v))
}

// StudyIDEqualFold applies the EqualFold predicate on the "study_id" field.
func StudyIDEqualFold(v string) predicate.Participant {
	return predicate.Participant(sql.FieldEqualFold(FieldStudyID, v))
}

// StudyIDContainsFold applies the ContainsFold predicate on the "study_id" field.
func StudyIDContainsFold(v string) predicate.Participant {
	return predicate.Participant(sql.FieldContainsFold(FieldStudyID, v))
}

// BatchIDEQ applies the EQ predicate on the "batch_id" field.
func BatchIDEQ(v string) predicate.Participant {
	return predicate.Participant(sql.FieldEQ(FieldBatchID, v))
}

// BatchIDNEQ applies the NEQ predicate on the "batch_id" field.
func BatchIDNEQ(v string) predicate.Participant {
	return predicate.Participant(sql.FieldNEQ(FieldBatchID, v))
}

// BatchIDIn applies the In predicate on the "batch_id" field.
func BatchIDIn(vs ...string) predicate.Participant {
	return predicate.Participant(sql.FieldIn(FieldBatchID, vs...))
}

// BatchIDNotIn applies the NotIn predicate on the "batch_id" field.
func BatchIDNotIn(vs ...string) predicate.Participant {
	return predicate.Participant(sql.FieldNotIn(FieldBatchID, vs...))
}

// BatchIDGT applies the GT predicate on the "batch_id" field.
func BatchIDGT(v string) predicate.Participant {
	return predicate.Participant(sql.FieldGT(FieldBatchID, v))
}

// BatchIDGTE applies the GTE predicate on the "batch_id" field.
func BatchIDGTE(v string) predicate.Participant {
	return predicate.Participant(sql.FieldGTE(FieldBatchID, v))
}

// BatchIDLT applies the LT predicate on the "batch_id" field.
func BatchIDLT(v string) predicate.Participant {
	return predicate.Participant(sql.FieldLT(FieldBatchID, v))
}

// BatchIDLTE applies the LTE predicate on the "batch_id" field.
func BatchIDLTE(v string) predicate.Participant {
	return predicate.Participant(sql.FieldLTE(FieldBatchID, v))
}

// BatchIDContains applies the Contains predicate on the "batch_id" field.
func BatchIDContains(v string) predicate.Participant {
	return predicate.Participant(sql.FieldContains(FieldBatchID, v))
}

// BatchIDHasPrefix applies the HasPrefix predicate on the "batch_id" field.
func BatchIDHasPrefix(v string) predicate.Participant {
	return predicate.Participant(sql.FieldHasPrefix(FieldBatchID, v))
}

// BatchIDHasSuffix applies the HasSuffix predicate on the "batch_id" field.
func BatchIDHasSuffix(v string) predicate.Participant {
	return predicate.Participant(sql.FieldHasSuffix(FieldBatchID, v))
}

// BatchIDIsNil applies the IsNil predicate on the "batch_id" field.
func BatchIDIsNil() predicate.Participant {
	return predicate.Participant(sql.FieldIsNull(FieldBatchID))
}

// BatchIDNotNil applies the NotNil predicate on the "batch_id" field.
func BatchIDNotNil() predicate.Participant {
	return predicate.Participant(sql.FieldNotNull(FieldBatchID))
}

// BatchIDEqualFold applies the EqualFold predicate on the "batch_id" field.
func BatchIDEqualFold(v string) predicate.Participant {
	return predicate.Participant(sql.FieldEqualFold(FieldBatchID, v))
}

// BatchIDContainsFold applies the ContainsFold predicate on the "batch_id" field.
func BatchIDContainsFold(v string) predicate.Participant {
	return predicate.Participant(sql.FieldContainsFold(FieldBatchID, v))
}

// ConditionIDEQ applies the EQ predicate on the "condition_id" field.
func ConditionIDEQ(v string) predicate.Participant {
	return predicate.Participant(sql.FieldEQ(FieldConditionID, v))
}

// ConditionIDNEQ applies the NEQ predicate on the "condition_id" field.
func ConditionIDNEQ(v string) predicate.Participant {
	return predicate.Participant(sql.FieldNEQ(FieldConditionID, v))
}

// ConditionIDIn applies the In predicate on the "condition_id" field.
func ConditionIDIn(vs ...string) predicate.Participant {
	return predicate.Participant(sql.FieldIn(FieldConditionID, vs...))
}

// ConditionIDNotIn applies the NotIn predicate on the "condition_id" field.
func ConditionIDNotIn(vs ...string) predicate.Participant {
	return predicate.Participant(sql.FieldNotIn(FieldConditionID, vs...))
}

// ConditionIDGT applies the GT predicate on the "condition_id" field.
func ConditionIDGT(v string) predicate.Participant {
	return predicate.Participant(sql.FieldGT(FieldConditionID, v))
}

// ConditionIDGTE applies the GTE predicate on the "condition_id" field.
func ConditionIDGTE(v string) predicate.Participant {
	return predicate.Participant(sql.FieldGTE(FieldConditionID, v))
}

// ConditionIDLT applies the LT predicate on the "condition_id" field.
func ConditionIDLT(v string) predicate.Participant {
	return predicate.Participant(sql.FieldLT(FieldConditionID, v))
}

// ConditionIDLTE applies the LTE predicate on the "condition_id" field.
func ConditionIDLTE(v string) predicate.Participant {
	return predicate.Participant(sql.FieldLTE(FieldConditionID, v))
}

// ConditionIDContains applies the Contains predicate on the "condition_id" field.
func ConditionIDContains(v string) predicate.Participant {
	return predicate.Participant(sql.FieldContains(FieldConditionID, v))
}

// ConditionIDHasPrefix applies the HasPrefix predicate on the "condition_id" field.
func ConditionIDHasPrefix(v string) predicate.Participant {
	return predicate.Participant(sql.FieldHasPrefix(FieldConditionID, v))
}

// ConditionIDHasSuffix applies the HasSuffix predicate on the "condition_id" field.
func ConditionIDHasSuffix(v string) predicate.Participant {
	return predicate.Participant(sql.FieldHasSuffix(FieldConditionID, v))
}

// ConditionIDIsNil applies the IsNil predicate on the "condition_id" field.
func ConditionIDIsNil() predicate.Participant {
	return predicate.Participant(sql.FieldIsNull(FieldConditionID))
}

// ConditionIDNotNil applies the NotNil predicate on the "condition_id" field.
func ConditionIDNotNil() predicate.Participant {
	return predicate.Participant(sql.FieldNotNull(FieldConditionID))
}

// ConditionIDEqualFold applies the EqualFold predicate on the "condition_id" field.
func ConditionIDEqualFold(v string) predicate.Participant {
	return predicate.Participant(sql.FieldEqualFold(FieldConditionID, v))
}

// ConditionIDContainsFold applies the ContainsFold predicate on the "condition_id" field.
func ConditionIDContainsFold(v string) predicate.Participant {
	return predicate.Participant(sql.FieldContainsFold(FieldConditionID, v))
}

// UniqueIDEQ applies the EQ predicate on the "unique_id" field.
func UniqueIDEQ(v string) predicate.Participant {
	return predicate.Participant(sql.FieldEQ(FieldUniqueID, v))
}

// UniqueIDNEQ applies the NEQ predicate on the "unique_id" field.
func UniqueIDNEQ(v string) predicate.Participant {
	return predicate.Participant(sql.FieldNEQ(FieldUniqueID, v))
}

// UniqueIDIn applies the In predicate on the "unique_id" field.
func UniqueIDIn(vs ...string) predicate.Participant {
	return predicate.Participant(sql.FieldIn(FieldUniqueID, vs...))
}

// UniqueIDNotIn applies the NotIn predicate on the "unique_id" field.
func UniqueIDNotIn(vs ...string) predicate.Participant {
	return predicate.Participant(sql.FieldNotIn(FieldUniqueID, vs...))
}

// UniqueIDGT applies the GT predicate on the "unique_id" field.
func UniqueIDGT(v string) predicate.Participant {
	return predicate.Participant(sql.FieldGT(FieldUniqueID, v))
}

// UniqueIDGTE applies the GTE predicate on the "unique_id" field.
func UniqueIDGTE(v string) predicate.Participant {
	return predicate.Participant(sql.FieldGTE(FieldUniqueID, v))
}

// UniqueIDLT applies the LT predicate on the "unique_id" field.
func UniqueIDLT(v string) predicate.Participant {
	return predicate.Participant(sql.FieldLT(FieldUniqueID, v))
}

// UniqueIDLTE applies the LTE predicate on the "unique_id" field.
func UniqueIDLTE(v string) predicate.Participant {
	return predicate.Participant(sql.FieldLTE(FieldUniqueID, v))
}

// UniqueIDContains applies the Contains predicate on the "unique_id" field.
func UniqueIDContains(v string) predicate.Participant {
	return predicate.Participant(sql.FieldContains(FieldUniqueID, v))
}

// UniqueIDHasPrefix applies the HasPrefix predicate on the "unique_id" field.
func UniqueIDHasPrefix(v string) predicate.Participant {
	return predicate.Participant(sql.FieldHasPrefix(FieldUniqueID, v))
}

// UniqueIDHasSuffix applies the HasSuffix predicate on the "unique_id" field.
func UniqueIDHasSuffix(v string) predicate.Participant {
	return predicate.Participant(sql.FieldHasSuffix(FieldUniqueID, v))
}

// UniqueIDIsNil applies the IsNil predicate on the "unique_id" field.
func UniqueIDIsNil() predicate.Participant {
	return predicate.Participant(sql.FieldIsNull(FieldUniqueID))
}

// UniqueIDNotNil applies the NotNil predicate on the "unique_id" field.
func UniqueIDNotNil() predicate.Participant {
	return predicate.Participant(sql.FieldNotNull(FieldUniqueID))
}

// UniqueIDEqualFold applies the EqualFold predicate on the "unique_id" field.
func UniqueIDEqualFold(v string) predicate.Participant {
	return predicate.Participant(sql.FieldEqualFold(FieldUniqueID, v))
}

// UniqueIDContainsFold applies the ContainsFold predicate on the "unique_id" field.
func UniqueIDContainsFold(v string) predicate.Participant {
	return predicate.Participant(sql.FieldContainsFold(FieldUniqueID, v))
}

// ActorTypeEQ applies the EQ predicate on the "actor_type" field.
func ActorTypeEQ(v ActorType) predicate.Participant {
	return predicate.Participant(sql.FieldEQ(FieldActorType, v))
}

// ActorTypeNEQ applies the NEQ predicate on the "actor_type" field.
func ActorTypeNEQ(v ActorType) predicate.Participant {
	return predicate.Participant(sql.FieldNEQ(FieldActorType, v))
}

// ActorTypeIn applies the In predicate on the "actor_type" field.
func ActorTypeIn(vs ...ActorType) predicate.Participant {
	return predicate.Participant(sql.FieldIn(FieldActorType, vs...))
}

// ActorTypeNotIn applies the NotIn predicate on the "actor_type" field.
func ActorTypeNotIn(vs ...ActorType) predicate.Participant {
	return predicate.Participant(sql.FieldNotIn(FieldActorType, vs...))
}

// StateEQ applies the EQ predicate on the "state" field.
func StateEQ(v State) predicate.Participant {
	return predicate.Participant(sql.FieldEQ(FieldState, v))
}

// StateNEQ applies the NEQ predicate on the "state" field.
func StateNEQ(v State) predicate.Participant {
	return predicate.Participant(sql.FieldNEQ(FieldState, v))
}

// StateIn applies the In predicate on the "state" field.
func StateIn(vs ...State) predicate.Participant {
	return predicate.Participant(sql.FieldIn(FieldState, vs...))
}

// StateNotIn applies the NotIn predicate on the "state" field.
func StateNotIn(vs ...State) predicate.Participant {
	return predicate.Participant(sql.FieldNotIn(FieldState, vs...))
}

// RoleEQ applies the EQ predicate on the "role" field.
func RoleEQ(v string) predicate.Participant {
	return predicate.Participant(sql.FieldEQ(FieldRole, v))
}

// RoleNEQ applies the NEQ predicate on the "role" field.
func RoleNEQ(v string) predicate.Participant {
	return predicate.Participant(sql.FieldNEQ(FieldRole, v))
}

// RoleIn applies the In predicate on the "role" field.
func RoleIn(vs ...string) predicate.Participant {
	return predicate.Participant(sql.FieldIn(FieldRole, vs...))
}

// RoleNotIn applies the NotIn predicate on the "role" field.
func RoleNotIn(vs ...string) predicate.Participant {
	return predicate.Participant(sql.FieldNotIn(FieldRole, vs...))
}

// RoleGT applies the GT predicate on the "role" field.
func RoleGT(v string) predicate.Participant {
	return predicate.Participant(sql.FieldGT(FieldRole, v))
}

// RoleGTE applies the GTE predicate on the "role" field.
func RoleGTE(v string) predicate.Participant {
	return predicate.Participant(sql.FieldGTE(FieldRole, v))
}

// RoleLT applies the LT predicate on the "role" field.
func RoleLT(v string) predicate.Participant {
	return predicate.Participant(sql.FieldLT(FieldRole, v))
}

// RoleLTE applies the LTE predicate on the "role" field.
func RoleLTE(v string) predicate.Participant {
	return predicate.Participant(sql.FieldLTE(FieldRole, v))
}

// RoleContains applies the Contains predicate on the "role" field.
func RoleContains(v string) predicate.Participant {
	return predicate.Participant(sql.FieldContains(FieldRole, v))
}

// RoleHasPrefix applies the HasPrefix predicate on the "role" field.
func RoleHasPrefix(v string) predicate.Participant {
	return predicate.Participant(sql.FieldHasPrefix(FieldRole, v))
}

// RoleHasSuffix applies the HasSuffix predicate on the "role" field.
func RoleHasSuffix(v string) predicate.Participant {
	return predicate.Participant(sql.FieldHasSuffix(FieldRole, v))
}

// RoleEqualFold applies the EqualFold predicate on the "role" field.
func RoleEqualFold(v string) predicate.Participant {
	return predicate.Participant(sql.FieldEqualFold(FieldRole, v))
}

// RoleContainsFold applies the ContainsFold predicate on the "role" field.
func RoleContainsFold(v string) predicate.Participant {
	return predicate.Participant(sql.FieldContainsFold(FieldRole, v))
}

// PartnerIDEQ applies the EQ predicate on the "partner_id" field.
func PartnerIDEQ(v string) predicate.Participant {
	return predicate.Participant(sql.FieldEQ(FieldPartnerID, v))
}

// PartnerIDNEQ applies the NEQ predicate on the "partner_id" field.
func PartnerIDNEQ(v string) predicate.Participant {
	return predicate.Participant(sql.FieldNEQ(FieldPartnerID, v))
}

// PartnerIDIn applies the In predicate on the "partner_id" field.
func PartnerIDIn(vs ...string) predicate.Participant {
	return predicate.Participant(sql.FieldIn(FieldPartnerID, vs...))
}

// PartnerIDNotIn applies the NotIn predicate on the "partner_id" field.
func PartnerIDNotIn(vs ...string) predicate.Participant {
	return predicate.Participant(sql.FieldNotIn(FieldPartnerID, vs...))
}

// PartnerIDGT applies the GT predicate on the "partner_id" field.
func PartnerIDGT(v string) predicate.Participant {
	return predicate.Participant(sql.FieldGT(FieldPartnerID, v))
}

// PartnerIDGTE applies the GTE predicate on the "partner_id" field.
func PartnerIDGTE(v string) predicate.Participant {
	return predicate.Participant(sql.FieldGTE(FieldPartnerID, v))
}

// PartnerIDLT applies the LT predicate on the "partner_id" field.
func PartnerIDLT(v string) predicate.Participant {
	return predicate.Participant(sql.FieldLT(FieldPartnerID, v))
}

// PartnerIDLTE applies the LTE predicate on the "partner_id" field.
func PartnerIDLTE(v string) predicate.Participant {
	return predicate.Participant(sql.FieldLTE(FieldPartnerID, v))
}

// PartnerIDContains applies the Contains predicate on the "partner_id" field.
func PartnerIDContains(v string) predicate.Participant {
	return predicate.Participant(sql.FieldContains(FieldPartnerID, v))
}

// PartnerIDHasPrefix applies the HasPrefix predicate on the "partner_id" field.
func PartnerIDHasPrefix(v string) predicate.Participant {
	return predicate.Participant(sql.FieldHasPrefix(FieldPartnerID, v))
}

// PartnerIDHasSuffix applies the HasSuffix predicate on the "partner_id" field.
func PartnerIDHasSuffix(v string) predicate.Participant {
	return predicate.Participant(sql.FieldHasSuffix(FieldPartnerID, v))
}

// PartnerIDIsNil applies the IsNil predicate on the "partner_id" field.
func PartnerIDIsNil() predicate.Participant {
	return predicate.Participant(sql.FieldIsNull(FieldPartnerID))
}

// PartnerIDNotNil applies the NotNil predicate on the "partner_id" field.
func PartnerIDNotNil() predicate.Participant {
	return predicate.Participant(sql.FieldNotNull(FieldPartnerID))
}

// PartnerIDEqualFold applies the EqualFold predicate on the "partner_id" field.
func PartnerIDEqualFold(v string) predicate.Participant {
	return predicate.Participant(sql.FieldEqualFold(FieldPartnerID, v))
}

// PartnerIDContainsFold applies the ContainsFold predicate on the "partner_id" field.
func PartnerIDContainsFold(v string) predicate.Participant {
	return predicate.Participant(sql.FieldContainsFold(FieldPartnerID, v))
}

// LlmConfigIsNil applies the IsNil predicate on the "llm_config" field.
func LlmConfigIsNil() predicate.Participant {
	return predicate.Participant(sql.FieldIsNull(FieldLlmConfig))
}

// LlmConfigNotNil applies the NotNil predicate on the "llm_config" field.
func LlmConfigNotNil() predicate.Participant {
	return predicate.Participant(sql.FieldNotNull(FieldLlmConfig))
}

// AvailabilityIsNil applies the IsNil predicate on the "availability" field.
func AvailabilityIsNil() predicate.Participant {
	return predicate.Participant(sql.FieldIsNull(FieldAvailability))
}

// AvailabilityNotNil applies the NotNil predicate on the "availability" field.
func AvailabilityNotNil() predicate.Participant {
	return predicate.Participant(sql.FieldNotNull(FieldAvailability))
}

// PairingMetadataIsNil applies the IsNil predicate on the "pairing_metadata" field.
func PairingMetadataIsNil() predicate.Participant {
	return predicate.Participant(sql.FieldIsNull(FieldPairingMetadata))
}

// PairingMetadataNotNil applies the NotNil predicate on the "pairing_metadata" field.
func PairingMetadataNotNil() predicate.Participant {
	return predicate.Participant(sql.FieldNotNull(FieldPairingMetadata))
}

// MetadataIsNil applies the IsNil predicate on the "metadata" field.
func MetadataIsNil() predicate.Participant {
	return predicate.Participant(sql.FieldIsNull(FieldMetadata))
}

// MetadataNotNil applies the NotNil predicate on the "metadata" field.
func MetadataNotNil() predicate.Participant {
	return predicate.Participant(sql.FieldNotNull(FieldMetadata))
}

// EmailEQ applies the EQ predicate on the "email" field.
func EmailEQ(v string) predicate.Participant {
	return predicate.Participant(sql.FieldEQ(FieldEmail, v))
}

// EmailNEQ applies the NEQ predicate on the "email" field.
func EmailNEQ(v string) predicate.Participant {
	return predicate.Participant(sql.FieldNEQ(FieldEmail, v))
}

// EmailIn applies the In predicate on the "email" field.
func EmailIn(vs ...string) predicate.Participant {
	return predicate.Participant(sql.FieldIn(FieldEmail, vs...))
}

// EmailNotIn applies the NotIn predicate on the "email" field.
func EmailNotIn(vs ...string) predicate.Participant {
	return predicate.Participant(sql.FieldNotIn(FieldEmail, vs...))
}

// EmailGT applies the GT predicate on the "email" field.
func EmailGT(v string) predicate.Participant {
	return predicate.Participant(sql.FieldGT(FieldEmail, v))
}

// EmailGTE applies the GTE predicate on the "email" field.
func EmailGTE(v string) predicate.Participant {
	return predicate.Participant(sql.FieldGTE(FieldEmail, v))
}

// EmailLT applies the LT predicate on the "email" field.
func EmailLT(v string) predicate.Participant {
	return predicate.Participant(sql.FieldLT(FieldEmail, v))
}

// EmailLTE applies the LTE predicate on the "email" field.
func EmailLTE(v string) predicate.Participant {
	return predicate.Participant(sql.FieldLTE(FieldEmail, v))
}

// EmailContains applies the Contains predicate on the "email" field.
func EmailContains(v string) predicate.Participant {
	return predicate.Participant(sql.FieldContains(FieldEmail, v))
}

// EmailHasPrefix applies the HasPrefix predicate on the "email" field.
func EmailHasPrefix(v string) predicate.Participant {
	return predicate.Participant(sql.FieldHasPrefix(FieldEmail, v))
}

// EmailHasSuffix applies the HasSuffix predicate on the "email" field.
func EmailHasSuffix(v string) predicate.Participant {
	return predicate.Participant(sql.FieldHasSuffix(FieldEmail, v))
}

// EmailIsNil applies the IsNil predicate on the "email" field.
func EmailIsNil() predicate.Participant {
	return predicate.Participant(sql.FieldIsNull(FieldEmail))
}

// EmailNotNil applies the NotNil predicate on the "email" field.
func EmailNotNil() predicate.Participant {
	return predicate.Participant(sql.FieldNotNull(FieldEmail))
}

// EmailEqualFold applies the EqualFold predicate on the "email" field.
func EmailEqualFold(v string) predicate.Participant {
	return predicate.Participant(sql.FieldEqualFold(FieldEmail, v))
}

// EmailContainsFold applies the ContainsFold predicate on the "email" field.
func EmailContainsFold(v string) predicate.Participant {
	return predicate.Participant(sql.FieldContainsFold(FieldEmail, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Participant {
	return predicate.Participant(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Participant {
	return predicate.Participant(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Participant {
	return predicate.Participant(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Participant {
	return predicate.Participant(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Participant {
	return predicate.Participant(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Participant {
	return predicate.Participant(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Participant {
	return predicate.Participant(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Participant {
	return predicate.Participant(sql.FieldLTE(FieldCreatedAt, v))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.Participant {
	return predicate.Participant(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.Participant {
	return predicate.Participant(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.Participant {
	return predicate.Participant(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.Participant {
	return predicate.Participant(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.Participant {
	return predicate.Participant(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.Participant {
	return predicate.Participant(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.Participant {
	return predicate.Participant(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.Participant {
	return predicate.Participant(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.Participant {
	return predicate.Participant(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.Participant {
	return predicate.Participant(sql.FieldNotNull(FieldCompletedAt))
}

// HasStudy applies the HasEdge predicate on the "study" edge.
func HasStudy() predicate.Participant {
	return predicate.Participant(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, StudyTable, StudyColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasStudyWith applies the HasEdge predicate on the "study" edge with a given conditions (other predicates).
func HasStudyWith(preds ...predicate.Study) predicate.Participant {
	return predicate.Participant(func(s *sql.Selector) {
		step := newStudyStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasBatch applies the HasEdge predicate on the "batch" edge.
func HasBatch() predicate.Participant {
	return predicate.Participant(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, BatchTable, BatchColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasBatchWith applies the HasEdge predicate on the "batch" edge with a given conditions (other predicates).
func HasBatchWith(preds ...predicate.Batch) predicate.Participant {
	return predicate.Participant(func(s *sql.Selector) {
		step := newBatchStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasEvents applies the HasEdge predicate on the "events" edge.
func HasEvents() predicate.Participant {
	return predicate.Participant(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, EventsTable, EventsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasEventsWith applies the HasEdge predicate on the "events" edge with a given conditions (other predicates).
func HasEventsWith(preds ...predicate.Event) predicate.Participant {
	return predicate.Participant(func(s *sql.Selector) {
		step := newEventsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasStoryArtifacts applies the HasEdge predicate on the "story_artifacts" edge.
func HasStoryArtifacts() predicate.Participant {
	return predicate.Participant(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, StoryArtifactsTable, StoryArtifactsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasStoryArtifactsWith applies the HasEdge predicate on the "story_artifacts" edge with a given conditions (other predicates).
func HasStoryArtifactsWith(preds ...predicate.StoryArtifact) predicate.Participant {
	return predicate.Participant(func(s *sql.Selector) {
		step := newStoryArtifactsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasAgentContext applies the HasEdge predicate on the "agent_context" edge.
func HasAgentContext() predicate.Participant {
	return predicate.Participant(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, AgentContextTable, AgentContextColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAgentContextWith applies the HasEdge predicate on the "agent_context" edge with a given conditions (other predicates).
func HasAgentContextWith(preds ...predicate.AgentContext) predicate.Participant {
	return predicate.Participant(func(s *sql.Selector) {
		step := newAgentContextStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasSurveyResponses applies the HasEdge predicate on the "survey_responses" edge.
func HasSurveyResponses() predicate.Participant {
	return predicate.Participant(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, SurveyResponsesTable, SurveyResponsesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSurveyResponsesWith applies the HasEdge predicate on the "survey_responses" edge with a given conditions (other predicates).
func HasSurveyResponsesWith(preds ...predicate.SurveyResponse) predicate.Participant {
	return predicate.Participant(func(s *sql.Selector) {
		step := newSurveyResponsesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasAuthoredComments applies the HasEdge predicate on the "authored_comments" edge.
func HasAuthoredComments() predicate.Participant {
	return predicate.Participant(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, AuthoredCommentsTable, AuthoredCommentsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAuthoredCommentsWith applies the HasEdge predicate on the "authored_comments" edge with a given conditions (other predicates).
func HasAuthoredCommentsWith(preds ...predicate.Comment) predicate.Participant {
	return predicate.Participant(func(s *sql.Selector) {
		step := newAuthoredCommentsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasReceivedComments applies the HasEdge predicate on the "received_comments" edge.
func HasReceivedComments() predicate.Participant {
	return predicate.Participant(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ReceivedCommentsTable, ReceivedCommentsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasReceivedCommentsWith applies the HasEdge predicate on the "received_comments" edge with a given conditions (other predicates).
func HasReceivedCommentsWith(preds ...predicate.Comment) predicate.Participant {
	return predicate.Participant(func(s *sql.Selector) {
		step := newReceivedCommentsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Participant) predicate.Participant {
	return predicate.Participant(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Participant) predicate.Participant {
	return predicate.Participant(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Participant) predicate.Participant {
	return predicate.Participant(sql.NotPredicates(p))
}
