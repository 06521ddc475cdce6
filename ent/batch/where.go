// Code generated by ent, DO NOT EDIT.

package batch

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/dyadlab/fabula/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Batch {
	return predicate.Batch(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Batch {
	return predicate.Batch(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Batch {
	return predicate.Batch(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Batch {
	return predicate.Batch(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Batch {
	return predicate.Batch(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Batch {
	return predicate.Batch(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Batch {
	return predicate.Batch(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Batch {
	return predicate.Batch(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Batch {
	return predicate.Batch(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Batch {
	return predicate.Batch(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Batch {
	return predicate.Batch(sql.FieldContainsFold(FieldID, id))
}

// StudyID applies equality check predicate on the "study_id" field. It's identical to StudyIDEQ.
func StudyID(v string) predicate.Batch {
	return predicate.Batch(sql.FieldEQ(FieldStudyID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Batch {
	return predicate.Batch(sql.FieldEQ(FieldName, v))
}

// ActorsCreated applies equality check predicate on the "actors_created" field. It's identical to ActorsCreatedEQ.
func ActorsCreated(v int) predicate.Batch {
	return predicate.Batch(sql.FieldEQ(FieldActorsCreated, v))
}

// ActorsCompleted applies equality check predicate on the "actors_completed" field. It's identical to ActorsCompletedEQ.
func ActorsCompleted(v int) predicate.Batch {
	return predicate.Batch(sql.FieldEQ(FieldActorsCompleted, v))
}

// ExportPath applies equality check predicate on the "export_path" field. It's identical to ExportPathEQ.
func ExportPath(v string) predicate.Batch {
	return predicate.Batch(sql.FieldEQ(FieldExportPath, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.Batch {
	return predicate.Batch(sql.FieldEQ(FieldErrorMessage, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Batch {
	return predicate.Batch(sql.FieldEQ(FieldCreatedAt, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.Batch {
	return predicate.Batch(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.Batch {
	return predicate.Batch(sql.FieldEQ(FieldCompletedAt, v))
}

// StudyIDEQ applies the EQ predicate on the "study_id" field.
func StudyIDEQ(v string) predicate.Batch {
	return predicate.Batch(sql.FieldEQ(FieldStudyID, v))
}

// StudyIDNEQ applies the NEQ predicate on the "study_id" field.
func StudyIDNEQ(v string) predicate.Batch {
	return predicate.Batch(sql.FieldNEQ(FieldStudyID, v))
}

// StudyIDIn applies the In predicate on the "study_id" field.
func StudyIDIn(vs ...string) predicate.Batch {
	return predicate.Batch(sql.FieldIn(FieldStudyID, vs...))
}

// StudyIDNotIn applies the NotIn predicate on the "study_id" field.
func StudyIDNotIn(vs ...string) predicate.Batch {
	return predicate.Batch(sql.FieldNotIn(FieldStudyID, vs...))
}

// StudyIDGT applies the GT predicate on the "study_id" field.
func StudyIDGT(v string) predicate.Batch {
	return predicate.Batch(sql.FieldGT(FieldStudyID, v))
}

// StudyIDGTE applies the GTE predicate on the "study_id" field.
func StudyIDGTE(v string) predicate.Batch {
	return predicate.Batch(sql.FieldGTE(FieldStudyID, v))
}

// StudyIDLT applies the LT predicate on the "study_id" field.
func StudyIDLT(v string) predicate.Batch {
	return predicate.Batch(sql.FieldLT(FieldStudyID, v))
}

// StudyIDLTE applies the LTE predicate on the "study_id" field.
func StudyIDLTE(v string) predicate.Batch {
	return predicate.Batch(sql.FieldLTE(FieldStudyID, v))
}

// StudyIDContains applies the Contains predicate on the "study_id" field.
func StudyIDContains(v string) predicate.Batch {
	return predicate.Batch(sql.FieldContains(FieldStudyID, v))
}

// StudyIDHasPrefix applies the HasPrefix predicate on the "study_id" field.
func StudyIDHasPrefix(v string) predicate.Batch {
	return predicate.Batch(sql.FieldHasPrefix(FieldStudyID, v))
}

// StudyIDHasSuffix applies the HasSuffix predicate on the "study_id" field.
func StudyIDHasSuffix(v string) predicate.Batch {
	return predicate.Batch(sql.FieldHasSuffix(FieldStudyID, v))
}

// StudyIDEqualFold applies the EqualFold predicate on the "study_id" field.
func StudyIDEqualFold(v string) predicate.Batch {
	return predicate.Batch(sql.FieldEqualFold(FieldStudyID, v))
}

// StudyIDContainsFold applies the ContainsFold predicate on the "study_id" field.
func StudyIDContainsFold(v string) predicate.Batch {
	return predicate.Batch(sql.FieldContainsFold(FieldStudyID, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Batch {
	return predicate.Batch(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Batch {
	return predicate.Batch(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Batch {
	return predicate.Batch(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Batch {
	return predicate.Batch(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Batch {
	return predicate.Batch(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Batch {
	return predicate.Batch(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Batch {
	return predicate.Batch(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Batch {
	return predicate.Batch(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Batch {
	return predicate.Batch(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Batch {
	return predicate.Batch(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Batch {
	return predicate.Batch(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Batch {
	return predicate.Batch(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Batch {
	return predicate.Batch(sql.FieldContainsFold(FieldName, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Batch {
	return predicate.Batch(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Batch {
	return predicate.Batch(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Batch {
	return predicate.Batch(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Batch {
	return predicate.Batch(sql.FieldNotIn(FieldStatus, vs...))
}

// ActorsCreatedEQ applies the EQ predicate on the "actors_created" field.
func ActorsCreatedEQ(v int) predicate.Batch {
	return predicate.Batch(sql.FieldEQ(FieldActorsCreated, v))
}

// ActorsCreatedNEQ applies the NEQ predicate on the "actors_created" field.
func ActorsCreatedNEQ(v int) predicate.Batch {
	return predicate.Batch(sql.FieldNEQ(FieldActorsCreated, v))
}

// ActorsCreatedIn applies the In predicate on the "actors_created" field.
func ActorsCreatedIn(vs ...int) predicate.Batch {
	return predicate.Batch(sql.FieldIn(FieldActorsCreated, vs...))
}

// ActorsCreatedNotIn applies the NotIn predicate on the "actors_created" field.
func ActorsCreatedNotIn(vs ...int) predicate.Batch {
	return predicate.Batch(sql.FieldNotIn(FieldActorsCreated, vs...))
}

// ActorsCreatedGT applies the GT predicate on the "actors_created" field.
func ActorsCreatedGT(v int) predicate.Batch {
	return predicate.Batch(sql.FieldGT(FieldActorsCreated, v))
}

// ActorsCreatedGTE applies the GTE predicate on the "actors_created" field.
func ActorsCreatedGTE(v int) predicate.Batch {
	return predicate.Batch(sql.FieldGTE(FieldActorsCreated, v))
}

// ActorsCreatedLT applies the LT predicate on the "actors_created" field.
func ActorsCreatedLT(v int) predicate.Batch {
	return predicate.Batch(sql.FieldLT(FieldActorsCreated, v))
}

// ActorsCreatedLTE applies the LTE predicate on the "actors_created" field.
func ActorsCreatedLTE(v int) predicate.Batch {
	return predicate.Batch(sql.FieldLTE(FieldActorsCreated, v))
}

// ActorsCompletedEQ applies the EQ predicate on the "actors_completed" field.
func ActorsCompletedEQ(v int) predicate.Batch {
	return predicate.Batch(sql.FieldEQ(FieldActorsCompleted, v))
}

// ActorsCompletedNEQ applies the NEQ predicate on the "actors_completed" field.
func ActorsCompletedNEQ(v int) predicate.Batch {
	return predicate.Batch(sql.FieldNEQ(FieldActorsCompleted, v))
}

// ActorsCompletedIn applies the In predicate on the "actors_completed" field.
func ActorsCompletedIn(vs ...int) predicate.Batch {
	return predicate.Batch(sql.FieldIn(FieldActorsCompleted, vs...))
}

// ActorsCompletedNotIn applies the NotIn predicate on the "actors_completed" field.
func ActorsCompletedNotIn(vs ...int) predicate.Batch {
	return predicate.Batch(sql.FieldNotIn(FieldActorsCompleted, vs...))
}

// ActorsCompletedGT applies the GT predicate on the "actors_completed" field.
func ActorsCompletedGT(v int) predicate.Batch {
	return predicate.Batch(sql.FieldGT(FieldActorsCompleted, v))
}

// ActorsCompletedGTE applies the GTE predicate on the "actors_completed" field.
func ActorsCompletedGTE(v int) predicate.Batch {
	return predicate.Batch(sql.FieldGTE(FieldActorsCompleted, v))
}

// ActorsCompletedLT applies the LT predicate on the "actors_completed" field.
func ActorsCompletedLT(v int) predicate.Batch {
	return predicate.Batch(sql.FieldLT(FieldActorsCompleted, v))
}

// ActorsCompletedLTE applies the LTE predicate on the "actors_completed" field.
func ActorsCompletedLTE(v int) predicate.Batch {
	return predicate.Batch(sql.FieldLTE(FieldActorsCompleted, v))
}

// ExportPathEQ applies the EQ predicate on the "export_path" field.
func ExportPathEQ(v string) predicate.Batch {
	return predicate.Batch(sql.FieldEQ(FieldExportPath, v))
}

// ExportPathNEQ applies the NEQ predicate on the "export_path" field.
func ExportPathNEQ(v string) predicate.Batch {
	return predicate.Batch(sql.FieldNEQ(FieldExportPath, v))
}

// ExportPathIn applies the In predicate on the "export_path" field.
func ExportPathIn(vs ...string) predicate.Batch {
	return predicate.Batch(sql.FieldIn(FieldExportPath, vs...))
}

// ExportPathNotIn applies the NotIn predicate on the "export_path" field.
func ExportPathNotIn(vs ...string) predicate.Batch {
	return predicate.Batch(sql.FieldNotIn(FieldExportPath, vs...))
}

// ExportPathGT applies the GT predicate on the "export_path" field.
func ExportPathGT(v string) predicate.Batch {
	return predicate.Batch(sql.FieldGT(FieldExportPath, v))
}

// ExportPathGTE applies the GTE predicate on the "export_path" field.
func ExportPathGTE(v string) predicate.Batch {
	return predicate.Batch(sql.FieldGTE(FieldExportPath, v))
}

// ExportPathLT applies the LT predicate on the "export_path" field.
func ExportPathLT(v string) predicate.Batch {
	return predicate.Batch(sql.FieldLT(FieldExportPath, v))
}

// ExportPathLTE applies the LTE predicate on the "export_path" field.
func ExportPathLTE(v string) predicate.Batch {
	return predicate.Batch(sql.FieldLTE(FieldExportPath, v))
}

// ExportPathContains applies the Contains predicate on the "export_path" field.
func ExportPathContains(v string) predicate.Batch {
	return predicate.Batch(sql.FieldContains(FieldExportPath, v))
}

// ExportPathHasPrefix applies the HasPrefix predicate on the "export_path" field.
func ExportPathHasPrefix(v string) predicate.Batch {
	return predicate.Batch(sql.FieldHasPrefix(FieldExportPath, v))
}

// ExportPathHasSuffix applies the HasSuffix predicate on the "export_path" field.
func ExportPathHasSuffix(v string) predicate.Batch {
	return predicate.Batch(sql.FieldHasSuffix(FieldExportPath, v))
}

// ExportPathIsNil applies the IsNil predicate on the "export_path" field.
func ExportPathIsNil() predicate.Batch {
	return predicate.Batch(sql.FieldIsNull(FieldExportPath))
}

// ExportPathNotNil applies the NotNil predicate on the "export_path" field.
func ExportPathNotNil() predicate.Batch {
	return predicate.Batch(sql.FieldNotNull(FieldExportPath))
}

// ExportPathEqualFold applies the EqualFold predicate on the "export_path" field.
func ExportPathEqualFold(v string) predicate.Batch {
	return predicate.Batch(sql.FieldEqualFold(FieldExportPath, v))
}

// ExportPathContainsFold applies the ContainsFold predicate on the "export_path" field.
func ExportPathContainsFold(v string) predicate.Batch {
	return predicate.Batch(sql.FieldContainsFold(FieldExportPath, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.Batch {
	return predicate.Batch(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.Batch {
	return predicate.Batch(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.Batch {
	return predicate.Batch(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.Batch {
	return predicate.Batch(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.Batch {
	return predicate.Batch(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.Batch {
	return predicate.Batch(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.Batch {
	return predicate.Batch(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.Batch {
	return predicate.Batch(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.Batch {
	return predicate.Batch(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.Batch {
	return predicate.Batch(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.Batch {
	return predicate.Batch(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.Batch {
	return predicate.Batch(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.Batch {
	return predicate.Batch(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.Batch {
	return predicate.Batch(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.Batch {
	return predicate.Batch(sql.FieldContainsFold(FieldErrorMessage, v))
}

// MetadataIsNil applies the IsNil predicate on the "metadata" field.
func MetadataIsNil() predicate.Batch {
	return predicate.Batch(sql.FieldIsNull(FieldMetadata))
}

// MetadataNotNil applies the NotNil predicate on the "metadata" field.
func MetadataNotNil() predicate.Batch {
	return predicate.Batch(sql.FieldNotNull(FieldMetadata))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Batch {
	return predicate.Batch(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Batch {
	return predicate.Batch(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Batch {
	return predicate.Batch(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Batch {
	return predicate.Batch(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Batch {
	return predicate.Batch(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Batch {
	return predicate.Batch(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Batch {
	return predicate.Batch(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Batch {
	return predicate.Batch(sql.FieldLTE(FieldCreatedAt, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.Batch {
	return predicate.Batch(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.Batch {
	return predicate.Batch(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.Batch {
	return predicate.Batch(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.Batch {
	return predicate.Batch(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.Batch {
	return predicate.Batch(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.Batch {
	return predicate.Batch(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.Batch {
	return predicate.Batch(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.Batch {
	return predicate.Batch(sql.FieldLTE(FieldStartedAt, v))
}

// StartedAtIsNil applies the IsNil predicate on the "started_at" field.
func StartedAtIsNil() predicate.Batch {
	return predicate.Batch(sql.FieldIsNull(FieldStartedAt))
}

// StartedAtNotNil applies the NotNil predicate on the "started_at" field.
func StartedAtNotNil() predicate.Batch {
	return predicate.Batch(sql.FieldNotNull(FieldStartedAt))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.Batch {
	return predicate.Batch(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.Batch {
	return predicate.Batch(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.Batch {
	return predicate.Batch(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.Batch {
	return predicate.Batch(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.Batch {
	return predicate.Batch(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.Batch {
	return predicate.Batch(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.Batch {
	return predicate.Batch(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.Batch {
	return predicate.Batch(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.Batch {
	return predicate.Batch(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.Batch {
	return predicate.Batch(sql.FieldNotNull(FieldCompletedAt))
}

// HasStudy applies the HasEdge predicate on the "study" edge.
func HasStudy() predicate.Batch {
	return predicate.Batch(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, StudyTable, StudyColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasStudyWith applies the HasEdge predicate on the "study" edge with a given conditions (other predicates).
func HasStudyWith(preds ...predicate.Study) predicate.Batch {
	return predicate.Batch(func(s *sql.Selector) {
		step := newStudyStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasParticipants applies the HasEdge predicate on the "participants" edge.
func HasParticipants() predicate.Batch {
	return predicate.Batch(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ParticipantsTable, ParticipantsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasParticipantsWith applies the HasEdge predicate on the "participants" edge with a given conditions (other predicates).
func HasParticipantsWith(preds ...predicate.Participant) predicate.Batch {
	return predicate.Batch(func(s *sql.Selector) {
		step := newParticipantsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Batch) predicate.Batch {
	return predicate.Batch(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Batch) predicate.Batch {
	return predicate.Batch(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Batch) predicate.Batch {
	return predicate.Batch(sql.NotPredicates(p))
}
