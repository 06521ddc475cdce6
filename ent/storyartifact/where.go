// Code generated by ent, DO NOT EDIT.

package storyartifact

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/dyadlab/fabula/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.StoryArtifact {
	return predicate.StoryArtifact(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.StoryArtifact {
	return predicate.StoryArtifact(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.StoryArtifact {
	return predicate.StoryArtifact(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.StoryArtifact {
	return predicate.StoryArtifact(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.StoryArtifact {
	return predicate.StoryArtifact(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.StoryArtifact {
	return predicate.StoryArtifact(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.StoryArtifact {
	return predicate.StoryArtifact(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.StoryArtifact {
	return predicate.StoryArtifact(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.StoryArtifact {
	return predicate.StoryArtifact(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.StoryArtifact {
	return predicate.StoryArtifact(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.StoryArtifact {
	return predicate.StoryArtifact(sql.FieldContainsFold(FieldID, id))
}

// ParticipantID applies equality check predicate on the "participant_id" field. It's identical to ParticipantIDEQ.
func ParticipantID(v string) predicate.StoryArtifact {
	return predicate.StoryArtifact(sql.FieldEQ(FieldParticipantID, v))
}

// PluginType applies equality check predicate on the "plugin_type" field. It's identical to PluginTypeEQ.
func PluginType(v string) predicate.StoryArtifact {
	return predicate.StoryArtifact(sql.FieldEQ(FieldPluginType, v))
}

// Version applies equality check predicate on the "version" field. It's identical to VersionEQ.
func Version(v int) predicate.StoryArtifact {
	return predicate.StoryArtifact(sql.FieldEQ(FieldVersion, v))
}

// BlobKey applies equality check predicate on the "blob_key" field. It's identical to BlobKeyEQ.
func BlobKey(v string) predicate.StoryArtifact {
	return predicate.StoryArtifact(sql.FieldEQ(FieldBlobKey, v))
}

// Bucket applies equality check predicate on the "bucket" field. It's identical to BucketEQ.
func Bucket(v string) predicate.StoryArtifact {
	return predicate.StoryArtifact(sql.FieldEQ(FieldBucket, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.StoryArtifact {
	return predicate.StoryArtifact(sql.FieldEQ(FieldName, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.StoryArtifact {
	return predicate.StoryArtifact(sql.FieldEQ(FieldDescription, v))
}

// Round applies equality check predicate on the "round" field. It's identical to RoundEQ.
func Round(v int) predicate.StoryArtifact {
	return predicate.StoryArtifact(sql.FieldEQ(FieldRound, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.StoryArtifact {
	return predicate.StoryArtifact(sql.FieldEQ(FieldCreatedAt, v))
}

// ParticipantIDEQ applies the EQ predicate on the "participant_id" field.
func ParticipantIDEQ(v string) predicate.StoryArtifact {
	return predicate.StoryArtifact(sql.FieldEQ(FieldParticipantID, v))
}

// ParticipantIDNEQ applies the NEQ predicate on the "participant_id" field.
func ParticipantIDNEQ(v string) predicate.StoryArtifact {
	return predicate.StoryArtifact(sql.FieldNEQ(FieldParticipantID, v))
}

// ParticipantIDIn applies the In predicate on the "participant_id" field.
func ParticipantIDIn(vs ...string) predicate.StoryArtifact {
	return predicate.StoryArtifact(sql.FieldIn(FieldParticipantID, vs...))
}

// ParticipantIDNotIn applies the NotIn predicate on the "participant_id" field.
func ParticipantIDNotIn(vs ...string) predicate.StoryArtifact {
	return predicate.StoryArtifact(sql.FieldNotIn(FieldParticipantID, vs...))
}

// ParticipantIDGT applies the GT predicate on the "participant_id" field.
func ParticipantIDGT(v string) predicate.StoryArtifact {
	return predicate.StoryArtifact(sql.FieldGT(FieldParticipantID, v))
}

// ParticipantIDGTE applies the GTE predicate on the "participant_id" field.
func ParticipantIDGTE(v string) predicate.StoryArtifact {
	return predicate.StoryArtifact(sql.FieldGTE(FieldParticipantID, v))
}

// ParticipantIDLT applies the LT predicate on the "participant_id" field.
func ParticipantIDLT(v string) predicate.StoryArtifact {
	return predicate.StoryArtifact(sql.FieldLT(FieldParticipantID, v))
}

// ParticipantIDLTE applies the LTE predicate on the "participant_id" field.
func ParticipantIDLTE(v string) predicate.StoryArtifact {
	return predicate.StoryArtifact(sql.FieldLTE(FieldParticipantID, v))
}

// ParticipantIDContains applies the Contains predicate on the "participant_id" field.
func ParticipantIDContains(v string) predicate.StoryArtifact {
	return predicate.StoryArtifact(sql.FieldContains(FieldParticipantID, v))
}

// ParticipantIDHasPrefix applies the HasPrefix predicate on the "participant_id" field.
func ParticipantIDHasPrefix(v string) predicate.StoryArtifact {
	return predicate.StoryArtifact(sql.FieldHasPrefix(FieldParticipantID, v))
}

// ParticipantIDHasSuffix applies the HasSuffix predicate on the "participant_id" field.
func ParticipantIDHasSuffix(v string) predicate.StoryArtifact {
	return predicate.StoryArtifact(sql.FieldHasSuffix(FieldParticipantID, v))
}

// ParticipantIDEqualFold applies the EqualFold predicate on the "participant_id" field.
func ParticipantIDEqualFold(v string) predicate.StoryArtifact {
	return predicate.StoryArtifact(sql.FieldEqualFold(FieldParticipantID, v))
}

// ParticipantIDContainsFold applies the ContainsFold predicate on the "participant_id" field.
func ParticipantIDContainsFold(v string) predicate.StoryArtifact {
	return predicate.StoryArtifact(sql.FieldContainsFold(FieldParticipantID, v))
}

// PluginTypeEQ applies the EQ predicate on the "plugin_type" field.
func PluginTypeEQ(v string) predicate.StoryArtifact {
	return predicate.StoryArtifact(sql.FieldEQ(FieldPluginType, v))
}

// PluginTypeNEQ applies the NEQ predicate on the "plugin_type" field.
func PluginTypeNEQ(v string) predicate.StoryArtifact {
	return predicate.StoryArtifact(sql.FieldNEQ(FieldPluginType, v))
}

// PluginTypeIn applies the In predicate on the "plugin_type" field.
func PluginTypeIn(vs ...string) predicate.StoryArtifact {
	return predicate.StoryArtifact(sql.FieldIn(FieldPluginType, vs...))
}

// PluginTypeNotIn applies the NotIn predicate on the "plugin_type" field.
func PluginTypeNotIn(vs ...string) predicate.StoryArtifact {
	return predicate.StoryArtifact(sql.FieldNotIn(FieldPluginType, vs...))
}

// PluginTypeGT applies the GT predicate on the "plugin_type" field.
func PluginTypeGT(v string) predicate.StoryArtifact {
	return predicate.StoryArtifact(sql.FieldGT(FieldPluginType, v))
}

// PluginTypeGTE applies the GTE predicate on the "plugin_type" field.
func PluginTypeGTE(v string) predicate.StoryArtifact {
	return predicate.StoryArtifact(sql.FieldGTE(FieldPluginType, v))
}

// PluginTypeLT applies the LT predicate on the "plugin_type" field.
func PluginTypeLT(v string) predicate.StoryArtifact {
	return predicate.StoryArtifact(sql.FieldLT(FieldPluginType, v))
}

// PluginTypeLTE applies the LTE predicate on the "plugin_type" field.
func PluginTypeLTE(v string) predicate.StoryArtifact {
	return predicate.StoryArtifact(sql.FieldLTE(FieldPluginType, v))
}

// PluginTypeContains applies the Contains predicate on the "plugin_type" field.
func PluginTypeContains(v string) predicate.StoryArtifact {
	return predicate.StoryArtifact(sql.FieldContains(FieldPluginType, v))
}

// PluginTypeHasPrefix applies the HasPrefix predicate on the "plugin_type" field.
func PluginTypeHasPrefix(v string) predicate.StoryArtifact {
	return predicate.StoryArtifact(sql.FieldHasPrefix(FieldPluginType, v))
}

// PluginTypeHasSuffix applies the HasSuffix predicate on the "plugin_type" field.
func PluginTypeHasSuffix(v string) predicate.StoryArtifact {
	return predicate.StoryArtifact(sql.FieldHasSuffix(FieldPluginType, v))
}

// PluginTypeEqualFold applies the EqualFold predicate on the "plugin_type" field.
func PluginTypeEqualFold(v string) predicate.StoryArtifact {
	return predicate.StoryArtifact(sql.FieldEqualFold(FieldPluginType, v))
}

// PluginTypeContainsFold applies the ContainsFold predicate on the "plugin_type" field.
func PluginTypeContainsFold(v string) predicate.StoryArtifact {
	return predicate.StoryArtifact(sql.FieldContainsFold(FieldPluginType, v))
}

// VersionEQ applies the EQ predicate on the "version" field.
func VersionEQ(v int) predicate.StoryArtifact {
	return predicate.StoryArtifact(sql.FieldEQ(FieldVersion, v))
}

// VersionNEQ applies the NEQ predicate on the "version" field.
func VersionNEQ(v int) predicate.StoryArtifact {
	return predicate.StoryArtifact(sql.FieldNEQ(FieldVersion, v))
}

// VersionIn applies the In predicate on the "version" field.
func VersionIn(vs ...int) predicate.StoryArtifact {
	return predicate.StoryArtifact(sql.FieldIn(FieldVersion, vs...))
}

// VersionNotIn applies the NotIn predicate on the "version" field.
func VersionNotIn(vs ...int) predicate.StoryArtifact {
	return predicate.StoryArtifact(sql.FieldNotIn(FieldVersion, vs...))
}

// VersionGT applies the GT predicate on the "version" field.
func VersionGT(v int) predicate.StoryArtifact {
	return predicate.StoryArtifact(sql.FieldGT(FieldVersion, v))
}

// VersionGTE applies the GTE predicate on the "version" field.
func VersionGTE(v int) predicate.StoryArtifact {
	return predicate.StoryArtifact(sql.FieldGTE(FieldVersion, v))
}

// VersionLT applies the LT predicate on the "version" field.
func VersionLT(v int) predicate.StoryArtifact {
	return predicate.StoryArtifact(sql.FieldLT(FieldVersion, v))
}

// VersionLTE applies the LTE predicate on the "version" field.
func VersionLTE(v int) predicate.StoryArtifact {
	return predicate.StoryArtifact(sql.FieldLTE(FieldVersion, v))
}

// BlobKeyEQ applies the EQ predicate on the "blob_key" field.
func BlobKeyEQ(v string) predicate.StoryArtifact {
	return predicate.StoryArtifact(sql.FieldEQ(FieldBlobKey, v))
}

// BlobKeyNEQ applies the NEQ predicate on the "blob_key" field.
func BlobKeyNEQ(v string) predicate.StoryArtifact {
	return predicate.StoryArtifact(sql.FieldNEQ(FieldBlobKey, v))
}

// BlobKeyIn applies the In predicate on the "blob_key" field.
func BlobKeyIn(vs ...string) predicate.StoryArtifact {
	return predicate.StoryArtifact(sql.FieldIn(FieldBlobKey, vs...))
}

// BlobKeyNotIn applies the NotIn predicate on the "blob_key" field.
func BlobKeyNotIn(vs ...string) predicate.StoryArtifact {
	return predicate.StoryArtifact(sql.FieldNotIn(FieldBlobKey, vs...))
}

// BlobKeyGT applies the GT predicate on the "blob_key" field.
func BlobKeyGT(v string) predicate.StoryArtifact {
	return predicate.StoryArtifact(sql.FieldGT(FieldBlobKey, v))
}

// BlobKeyGTE applies the GTE predicate on the "blob_key" field.
func BlobKeyGTE(v string) predicate.StoryArtifact {
	return predicate.StoryArtifact(sql.FieldGTE(FieldBlobKey, v))
}

// BlobKeyLT applies the LT predicate on the "blob_key" field.
func BlobKeyLT(v string) predicate.StoryArtifact {
	return predicate.StoryArtifact(sql.FieldLT(FieldBlobKey, v))
}

// BlobKeyLTE applies the LTE predicate on the "blob_key" field.
func BlobKeyLTE(v string) predicate.StoryArtifact {
	return predicate.StoryArtifact(sql.FieldLTE(FieldBlobKey, v))
}

// BlobKeyContains applies the Contains predicate on the "blob_key" field.
func BlobKeyContains(v string) predicate.StoryArtifact {
	return predicate.StoryArtifact(sql.FieldContains(FieldBlobKey, v))
}

// BlobKeyHasPrefix applies the HasPrefix predicate on the "blob_key" field.
func BlobKeyHasPrefix(v string) predicate.StoryArtifact {
	return predicate.StoryArtifact(sql.FieldHasPrefix(FieldBlobKey, v))
}

// BlobKeyHasSuffix applies the HasSuffix predicate on the "blob_key" field.
func BlobKeyHasSuffix(v string) predicate.StoryArtifact {
	return predicate.StoryArtifact(sql.FieldHasSuffix(FieldBlobKey, v))
}

// BlobKeyEqualFold applies the EqualFold predicate on the "blob_key" field.
func BlobKeyEqualFold(v string) predicate.StoryArtifact {
	return predicate.StoryArtifact(sql.FieldEqualFold(FieldBlobKey, v))
}

// BlobKeyContainsFold applies the ContainsFold predicate on the "blob_key" field.
func BlobKeyContainsFold(v string) predicate.StoryArtifact {
	return predicate.StoryArtifact(sql.FieldContainsFold(FieldBlobKey, v))
}

// BucketEQ applies the EQ predicate on the "bucket" field.
func BucketEQ(v string) predicate.StoryArtifact {
	return predicate.StoryArtifact(sql.FieldEQ(FieldBucket, v))
}

// BucketNEQ applies the NEQ predicate on the "bucket" field.
func BucketNEQ(v string) predicate.StoryArtifact {
	return predicate.StoryArtifact(sql.FieldNEQ(FieldBucket, v))
}

// BucketIn applies the In predicate on the "bucket" field.
func BucketIn(vs ...string) predicate.StoryArtifact {
	return predicate.StoryArtifact(sql.FieldIn(FieldBucket, vs...))
}

// BucketNotIn applies the NotIn predicate on the "bucket" field.
func BucketNotIn(vs ...string) predicate.StoryArtifact {
	return predicate.StoryArtifact(sql.FieldNotIn(FieldBucket, vs...))
}

// BucketGT applies the GT predicate on the "bucket" field.
func BucketGT(v string) predicate.StoryArtifact {
	return predicate.StoryArtifact(sql.FieldGT(FieldBucket, v))
}

// BucketGTE applies the GTE predicate on the "bucket" field.
func BucketGTE(v string) predicate.StoryArtifact {
	return predicate.StoryArtifact(sql.FieldGTE(FieldBucket, v))
}

// BucketLT applies the LT predicate on the "bucket" field.
func BucketLT(v string) predicate.StoryArtifact {
	return predicate.StoryArtifact(sql.FieldLT(FieldBucket, v))
}

// BucketLTE applies the LTE predicate on the "bucket" field.
func BucketLTE(v string) predicate.StoryArtifact {
	return predicate.StoryArtifact(sql.FieldLTE(FieldBucket, v))
}

// BucketContains applies the Contains predicate on the "bucket" field.
func BucketContains(v string) predicate.StoryArtifact {
	return predicate.StoryArtifact(sql.FieldContains(FieldBucket, v))
}

// BucketHasPrefix applies the HasPrefix predicate on the "bucket" field.
func BucketHasPrefix(v string) predicate.StoryArtifact {
	return predicate.StoryArtifact(sql.FieldHasPrefix(FieldBucket, v))
}

// BucketHasSuffix applies the HasSuffix predicate on the "bucket" field.
func BucketHasSuffix(v string) predicate.StoryArtifact {
	return predicate.StoryArtifact(sql.FieldHasSuffix(FieldBucket, v))
}

// BucketEqualFold applies the EqualFold predicate on the "bucket" field.
func BucketEqualFold(v string) predicate.StoryArtifact {
	return predicate.StoryArtifact(sql.FieldEqualFold(FieldBucket, v))
}

// BucketContainsFold applies the ContainsFold predicate on the "bucket" field.
func BucketContainsFold(v string) predicate.StoryArtifact {
	return predicate.StoryArtifact(sql.FieldContainsFold(FieldBucket, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.StoryArtifact {
	return predicate.StoryArtifact(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.StoryArtifact {
	return predicate.StoryArtifact(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.StoryArtifact {
	return predicate.StoryArtifact(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.StoryArtifact {
	return predicate.StoryArtifact(sql.FieldNotIn(FieldStatus, vs...))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.StoryArtifact {
	return predicate.StoryArtifact(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.StoryArtifact {
	return predicate.StoryArtifact(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.StoryArtifact {
	return predicate.StoryArtifact(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.StoryArtifact {
	return predicate.StoryArtifact(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.StoryArtifact {
	return predicate.StoryArtifact(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.StoryArtifact {
	return predicate.StoryArtifact(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.StoryArtifact {
	return predicate.StoryArtifact(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.StoryArtifact {
	return predicate.StoryArtifact(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.StoryArtifact {
	return predicate.StoryArtifact(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.StoryArtifact {
	return predicate.StoryArtifact(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.StoryArtifact {
	return predicate.StoryArtifact(sql.FieldHasSuffix(FieldName, v))
}

// NameIsNil applies the IsNil predicate on the "name" field.
func NameIsNil() predicate.StoryArtifact {
	return predicate.StoryArtifact(sql.FieldIsNull(FieldName))
}

// NameNotNil applies the NotNil predicate on the "name" field.
func NameNotNil() predicate.StoryArtifact {
	return predicate.StoryArtifact(sql.FieldNotNull(FieldName))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.StoryArtifact {
	return predicate.StoryArtifact(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.StoryArtifact {
	return predicate.StoryArtifact(sql.FieldContainsFold(FieldName, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.StoryArtifact {
	return predicate.StoryArtifact(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.StoryArtifact {
	return predicate.StoryArtifact(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.StoryArtifact {
	return predicate.StoryArtifact(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.StoryArtifact {
	return predicate.StoryArtifact(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.StoryArtifact {
	return predicate.StoryArtifact(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.StoryArtifact {
	return predicate.StoryArtifact(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.StoryArtifact {
	return predicate.StoryArtifact(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.StoryArtifact {
	return predicate.StoryArtifact(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.StoryArtifact {
	return predicate.StoryArtifact(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.StoryArtifact {
	return predicate.StoryArtifact(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.StoryArtifact {
	return predicate.StoryArtifact(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.StoryArtifact {
	return predicate.StoryArtifact(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.StoryArtifact {
	return predicate.StoryArtifact(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.StoryArtifact {
	return predicate.StoryArtifact(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.StoryArtifact {
	return predicate.StoryArtifact(sql.FieldContainsFold(FieldDescription, v))
}

// RoundEQ applies the EQ predicate on the "round" field.
func RoundEQ(v int) predicate.StoryArtifact {
	return predicate.StoryArtifact(sql.FieldEQ(FieldRound, v))
}

// RoundNEQ applies the NEQ predicate on the "round" field.
func RoundNEQ(v int) predicate.StoryArtifact {
	return predicate.StoryArtifact(sql.FieldNEQ(FieldRound, v))
}

// RoundIn applies the In predicate on the "round" field.
func RoundIn(vs ...int) predicate.StoryArtifact {
	return predicate.StoryArtifact(sql.FieldIn(FieldRound, vs...))
}

// RoundNotIn applies the NotIn predicate on the "round" field.
func RoundNotIn(vs ...int) predicate.StoryArtifact {
	return predicate.StoryArtifact(sql.FieldNotIn(FieldRound, vs...))
}

// RoundGT applies the GT predicate on the "round" field.
func RoundGT(v int) predicate.StoryArtifact {
	return predicate.StoryArtifact(sql.FieldGT(FieldRound, v))
}

// RoundGTE applies the GTE predicate on the "round" field.
func RoundGTE(v int) predicate.StoryArtifact {
	return predicate.StoryArtifact(sql.FieldGTE(FieldRound, v))
}

// RoundLT applies the LT predicate on the "round" field.
func RoundLT(v int) predicate.StoryArtifact {
	return predicate.StoryArtifact(sql.FieldLT(FieldRound, v))
}

// RoundLTE applies the LTE predicate on the "round" field.
func RoundLTE(v int) predicate.StoryArtifact {
	return predicate.StoryArtifact(sql.FieldLTE(FieldRound, v))
}

// RoundIsNil applies the IsNil predicate on the "round" field.
func RoundIsNil() predicate.StoryArtifact {
	return predicate.StoryArtifact(sql.FieldIsNull(FieldRound))
}

// RoundNotNil applies the NotNil predicate on the "round" field.
func RoundNotNil() predicate.StoryArtifact {
	return predicate.StoryArtifact(sql.FieldNotNull(FieldRound))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.StoryArtifact {
	return predicate.StoryArtifact(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.StoryArtifact {
	return predicate.StoryArtifact(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.StoryArtifact {
	return predicate.StoryArtifact(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.StoryArtifact {
	return predicate.StoryArtifact(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.StoryArtifact {
	return predicate.StoryArtifact(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.StoryArtifact {
	return predicate.StoryArtifact(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.StoryArtifact {
	return predicate.StoryArtifact(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.StoryArtifact {
	return predicate.StoryArtifact(sql.FieldLTE(FieldCreatedAt, v))
}

// HasParticipant applies the HasEdge predicate on the "participant" edge.
func HasParticipant() predicate.StoryArtifact {
	return predicate.StoryArtifact(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ParticipantTable, ParticipantColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasParticipantWith applies the HasEdge predicate on the "participant" edge with a given conditions (other predicates).
func HasParticipantWith(preds ...predicate.Participant) predicate.StoryArtifact {
	return predicate.StoryArtifact(func(s *sql.Selector) {
		step := newParticipantStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.StoryArtifact) predicate.StoryArtifact {
	return predicate.StoryArtifact(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.StoryArtifact) predicate.StoryArtifact {
	return predicate.StoryArtifact(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.StoryArtifact) predicate.StoryArtifact {
	return predicate.StoryArtifact(sql.NotPredicates(p))
}
