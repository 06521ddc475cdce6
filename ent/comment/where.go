// Code generated by ent, DO NOT EDIT.

package comment

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/dyadlab/fabula/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Comment {
	return predicate.Comment(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Comment {
	return predicate.Comment(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Comment {
	return predicate.Comment(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Comment {
	return predicate.Comment(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Comment {
	return predicate.Comment(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Comment {
	return predicate.Comment(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Comment {
	return predicate.Comment(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Comment {
	return predicate.Comment(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Comment {
	return predicate.Comment(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Comment {
	return predicate.Comment(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Comment {
	return predicate.Comment(sql.FieldContainsFold(FieldID, id))
}

// AuthorID applies equality check predicate on the "author_id" field. It's identical to AuthorIDEQ.
func AuthorID(v string) predicate.Comment {
	return predicate.Comment(sql.FieldEQ(FieldAuthorID, v))
}

// TargetParticipantID applies equality check predicate on the "target_participant_id" field. It's identical to TargetParticipantIDEQ.
func TargetParticipantID(v string) predicate.Comment {
	return predicate.Comment(sql.FieldEQ(FieldTargetParticipantID, v))
}

// StoryArtifactID applies equality check predicate on the "story_artifact_id" field. It's identical to StoryArtifactIDEQ.
func StoryArtifactID(v string) predicate.Comment {
	return predicate.Comment(sql.FieldEQ(FieldStoryArtifactID, v))
}

// PassageID applies equality check predicate on the "passage_id" field. It's identical to PassageIDEQ.
func PassageID(v string) predicate.Comment {
	return predicate.Comment(sql.FieldEQ(FieldPassageID, v))
}

// Content applies equality check predicate on the "content" field. It's identical to ContentEQ.
func Content(v string) predicate.Comment {
	return predicate.Comment(sql.FieldEQ(FieldContent, v))
}

// Round applies equality check predicate on the "round" field. It's identical to RoundEQ.
func Round(v int) predicate.Comment {
	return predicate.Comment(sql.FieldEQ(FieldRound, v))
}

// ParentID applies equality check predicate on the "parent_id" field. It's identical to ParentIDEQ.
func ParentID(v string) predicate.Comment {
	return predicate.Comment(sql.FieldEQ(FieldParentID, v))
}

// Resolved applies equality check predicate on the "resolved" field. It's identical to ResolvedEQ.
func Resolved(v bool) predicate.Comment {
	return predicate.Comment(sql.FieldEQ(FieldResolved, v))
}

// AddressedInRound applies equality check predicate on the "addressed_in_round" field. It's identical to AddressedInRoundEQ.
func AddressedInRound(v int) predicate.Comment {
	return predicate.Comment(sql.FieldEQ(FieldAddressedInRound, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Comment {
	return predicate.Comment(sql.FieldEQ(FieldCreatedAt, v))
}

// AuthorIDEQ applies the EQ predicate on the "author_id" field.
func AuthorIDEQ(v string) predicate.Comment {
	return predicate.Comment(sql.FieldEQ(FieldAuthorID, v))
}

// AuthorIDNEQ applies the NEQ predicate on the "author_id" field.
func AuthorIDNEQ(v string) predicate.Comment {
	return predicate.Comment(sql.FieldNEQ(FieldAuthorID, v))
}

// AuthorIDIn applies the In predicate on the "author_id" field.
func AuthorIDIn(vs ...string) predicate.Comment {
	return predicate.Comment(sql.FieldIn(FieldAuthorID, vs...))
}

// AuthorIDNotIn applies the NotIn predicate on the "author_id" field.
func AuthorIDNotIn(vs ...string) predicate.Comment {
	return predicate.Comment(sql.FieldNotIn(FieldAuthorID, vs...))
}

// AuthorIDGT applies the GT predicate on the "author_id" field.
func AuthorIDGT(v string) predicate.Comment {
	return predicate.Comment(sql.FieldGT(FieldAuthorID, v))
}

// AuthorIDGTE applies the GTE predicate on the "author_id" field.
func AuthorIDGTE(v string) predicate.Comment {
	return predicate.Comment(sql.FieldGTE(FieldAuthorID, v))
}

// AuthorIDLT applies the LT predicate on the "author_id" field.
func AuthorIDLT(v string) predicate.Comment {
	return predicate.Comment(sql.FieldLT(FieldAuthorID, v))
}

// AuthorIDLTE applies the LTE predicate on the "author_id" field.
func AuthorIDLTE(v string) predicate.Comment {
	return predicate.Comment(sql.FieldLTE(FieldAuthorID, v))
}

// AuthorIDContains applies the Contains predicate on the "author_id" field.
func AuthorIDContains(v string) predicate.Comment {
	return predicate.Comment(sql.FieldContains(FieldAuthorID, v))
}

// AuthorIDHasPrefix applies the HasPrefix predicate on the "author_id" field.
func AuthorIDHasPrefix(v string) predicate.Comment {
	return predicate.Comment(sql.FieldHasPrefix(FieldAuthorID, v))
}

// AuthorIDHasSuffix applies the HasSuffix predicate on the "author_id" field.
func AuthorIDHasSuffix(v string) predicate.Comment {
	return predicate.Comment(sql.FieldHasSuffix(FieldAuthorID, v))
}

// AuthorIDEqualFold applies the EqualFold predicate on the "author_id" field.
func AuthorIDEqualFold(v string) predicate.Comment {
	return predicate.Comment(sql.FieldEqualFold(FieldAuthorID, v))
}

// AuthorIDContainsFold applies the ContainsFold predicate on the "author_id" field.
func AuthorIDContainsFold(v string) predicate.Comment {
	return predicate.Comment(sql.FieldContainsFold(FieldAuthorID, v))
}

// TargetParticipantIDEQ applies the EQ predicate on the "target_participant_id" field.
func TargetParticipantIDEQ(v string) predicate.Comment {
	return predicate.Comment(sql.FieldEQ(FieldTargetParticipantID, v))
}

// TargetParticipantIDNEQ applies the NEQ predicate on the "target_participant_id" field.
func TargetParticipantIDNEQ(v string) predicate.Comment {
	return predicate.Comment(sql.FieldNEQ(FieldTargetParticipantID, v))
}

// TargetParticipantIDIn applies the In predicate on the "target_participant_id" field.
func TargetParticipantIDIn(vs ...string) predicate.Comment {
	return predicate.Comment(sql.FieldIn(FieldTargetParticipantID, vs...))
}

// TargetParticipantIDNotIn applies the NotIn predicate on the "target_participant_id" field.
func TargetParticipantIDNotIn(vs ...string) predicate.Comment {
	return predicate.Comment(sql.FieldNotIn(FieldTargetParticipantID, vs...))
}

// TargetParticipantIDGT applies the GT predicate on the "target_participant_id" field.
func TargetParticipantIDGT(v string) predicate.Comment {
	return predicate.Comment(sql.FieldGT(FieldTargetParticipantID, v))
}

// TargetParticipantIDGTE applies the GTE predicate on the "target_participant_id" field.
func TargetParticipantIDGTE(v string) predicate.Comment {
	return predicate.Comment(sql.FieldGTE(FieldTargetParticipantID, v))
}

// TargetParticipantIDLT applies the LT predicate on the "target_participant_id" field.
func TargetParticipantIDLT(v string) predicate.Comment {
	return predicate.Comment(sql.FieldLT(FieldTargetParticipantID, v))
}

// TargetParticipantIDLTE applies the LTE predicate on the "target_participant_id" field.
func TargetParticipantIDLTE(v string) predicate.Comment {
	return predicate.Comment(sql.FieldLTE(FieldTargetParticipantID, v))
}

// TargetParticipantIDContains applies the Contains predicate on the "target_participant_id" field.
func TargetParticipantIDContains(v string) predicate.Comment {
	return predicate.Comment(sql.FieldContains(FieldTargetParticipantID, v))
}

// TargetParticipantIDHasPrefix applies the HasPrefix predicate on the "target_participant_id" field.
func TargetParticipantIDHasPrefix(v string) predicate.Comment {
	return predicate.Comment(sql.FieldHasPrefix(FieldTargetParticipantID, v))
}

// TargetParticipantIDHasSuffix applies the HasSuffix predicate on the "target_participant_id" field.
func TargetParticipantIDHasSuffix(v string) predicate.Comment {
	return predicate.Comment(sql.FieldHasSuffix(FieldTargetParticipantID, v))
}

// TargetParticipantIDEqualFold applies the EqualFold predicate on the "target_participant_id" field.
func TargetParticipantIDEqualFold(v string) predicate.Comment {
	return predicate.Comment(sql.FieldEqualFold(FieldTargetParticipantID, v))
}

// TargetParticipantIDContainsFold applies the ContainsFold predicate on the "target_participant_id" field.
func TargetParticipantIDContainsFold(v string) predicate.Comment {
	return predicate.Comment(sql.FieldContainsFold(FieldTargetParticipantID, v))
}

// StoryArtifactIDEQ applies the EQ predicate on the "story_artifact_id" field.
func StoryArtifactIDEQ(v string) predicate.Comment {
	return predicate.Comment(sql.FieldEQ(FieldStoryArtifactID, v))
}

// StoryArtifactIDNEQ applies the NEQ predicate on the "story_artifact_id" field.
func StoryArtifactIDNEQ(v string) predicate.Comment {
	return predicate.Comment(sql.FieldNEQ(FieldStoryArtifactID, v))
}

// StoryArtifactIDIn applies the In predicate on the "story_artifact_id" field.
func StoryArtifactIDIn(vs ...string) predicate.Comment {
	return predicate.Comment(sql.FieldIn(FieldStoryArtifactID, vs...))
}

// StoryArtifactIDNotIn applies the NotIn predicate on the "story_artifact_id" field.
func StoryArtifactIDNotIn(vs ...string) predicate.Comment {
	return predicate.Comment(sql.FieldNotIn(FieldStoryArtifactID, vs...))
}

// StoryArtifactIDGT applies the GT predicate on the "story_artifact_id" field.
func StoryArtifactIDGT(v string) predicate.Comment {
	return predicate.Comment(sql.FieldGT(FieldStoryArtifactID, v))
}

// StoryArtifactIDGTE applies the GTE predicate on the "story_artifact_id" field.
func StoryArtifactIDGTE(v string) predicate.Comment {
	return predicate.Comment(sql.FieldGTE(FieldStoryArtifactID, v))
}

// StoryArtifactIDLT applies the LT predicate on the "story_artifact_id" field.
func StoryArtifactIDLT(v string) predicate.Comment {
	return predicate.Comment(sql.FieldLT(FieldStoryArtifactID, v))
}

// StoryArtifactIDLTE applies the LTE predicate on the "story_artifact_id" field.
func StoryArtifactIDLTE(v string) predicate.Comment {
	return predicate.Comment(sql.FieldLTE(FieldStoryArtifactID, v))
}

// StoryArtifactIDContains applies the Contains predicate on the "story_artifact_id" field.
func StoryArtifactIDContains(v string) predicate.Comment {
	return predicate.Comment(sql.FieldContains(FieldStoryArtifactID, v))
}

// StoryArtifactIDHasPrefix applies the HasPrefix predicate on the "story_artifact_id" field.
func StoryArtifactIDHasPrefix(v string) predicate.Comment {
	return predicate.Comment(sql.FieldHasPrefix(FieldStoryArtifactID, v))
}

// StoryArtifactIDHasSuffix applies the HasSuffix predicate on the "story_artifact_id" field.
func StoryArtifactIDHasSuffix(v string) predicate.Comment {
	return predicate.Comment(sql.FieldHasSuffix(FieldStoryArtifactID, v))
}

// StoryArtifactIDIsNil applies the IsNil predicate on the "story_artifact_id" field.
func StoryArtifactIDIsNil() predicate.Comment {
	return predicate.Comment(sql.FieldIsNull(FieldStoryArtifactID))
}

// StoryArtifactIDNotNil applies the NotNil predicate on the "story_artifact_id" field.
func StoryArtifactIDNotNil() predicate.Comment {
	return predicate.Comment(sql.FieldNotNull(FieldStoryArtifactID))
}

// StoryArtifactIDEqualFold applies the EqualFold predicate on the "story_artifact_id" field.
func StoryArtifactIDEqualFold(v string) predicate.Comment {
	return predicate.Comment(sql.FieldEqualFold(FieldStoryArtifactID, v))
}

// StoryArtifactIDContainsFold applies the ContainsFold predicate on the "story_artifact_id" field.
func StoryArtifactIDContainsFold(v string) predicate.Comment {
	return predicate.Comment(sql.FieldContainsFold(FieldStoryArtifactID, v))
}

// PassageIDEQ applies the EQ predicate on the "passage_id" field.
func PassageIDEQ(v string) predicate.Comment {
	return predicate.Comment(sql.FieldEQ(FieldPassageID, v))
}

// PassageIDNEQ applies the NEQ predicate on the "passage_id" field.
func PassageIDNEQ(v string) predicate.Comment {
	return predicate.Comment(sql.FieldNEQ(FieldPassageID, v))
}

// PassageIDIn applies the In predicate on the "passage_id" field.
func PassageIDIn(vs ...string) predicate.Comment {
	return predicate.Comment(sql.FieldIn(FieldPassageID, vs...))
}

// PassageIDNotIn applies the NotIn predicate on the "passage_id" field.
func PassageIDNotIn(vs ...string) predicate.Comment {
	return predicate.Comment(sql.FieldNotIn(FieldPassageID, vs...))
}

// PassageIDGT applies the GT predicate on the "passage_id" field.
func PassageIDGT(v string) predicate.Comment {
	return predicate.Comment(sql.FieldGT(FieldPassageID, v))
}

// PassageIDGTE applies the GTE predicate on the "passage_id" field.
func PassageIDGTE(v string) predicate.Comment {
	return predicate.Comment(sql.FieldGTE(FieldPassageID, v))
}

// PassageIDLT applies the LT predicate on the "passage_id" field.
func PassageIDLT(v string) predicate.Comment {
	return predicate.Comment(sql.FieldLT(FieldPassageID, v))
}

// PassageIDLTE applies the LTE predicate on the "passage_id" field.
func PassageIDLTE(v string) predicate.Comment {
	return predicate.Comment(sql.FieldLTE(FieldPassageID, v))
}

// PassageIDContains applies the Contains predicate on the "passage_id" field.
func PassageIDContains(v string) predicate.Comment {
	return predicate.Comment(sql.FieldContains(FieldPassageID, v))
}

// PassageIDHasPrefix applies the HasPrefix predicate on the "passage_id" field.
func PassageIDHasPrefix(v string) predicate.Comment {
	return predicate.Comment(sql.FieldHasPrefix(FieldPassageID, v))
}

// PassageIDHasSuffix applies the HasSuffix predicate on the "passage_id" field.
func PassageIDHasSuffix(v string) predicate.Comment {
	return predicate.Comment(sql.FieldHasSuffix(FieldPassageID, v))
}

// PassageIDIsNil applies the IsNil predicate on the "passage_id" field.
func PassageIDIsNil() predicate.Comment {
	return predicate.Comment(sql.FieldIsNull(FieldPassageID))
}

// PassageIDNotNil applies the NotNil predicate on the "passage_id" field.
func PassageIDNotNil() predicate.Comment {
	return predicate.Comment(sql.FieldNotNull(FieldPassageID))
}

// PassageIDEqualFold applies the EqualFold predicate on the "passage_id" field.
func PassageIDEqualFold(v string) predicate.Comment {
	return predicate.Comment(sql.FieldEqualFold(FieldPassageID, v))
}

// PassageIDContainsFold applies the ContainsFold predicate on the "passage_id" field.
func PassageIDContainsFold(v string) predicate.Comment {
	return predicate.Comment(sql.FieldContainsFold(FieldPassageID, v))
}

// ContentEQ applies the EQ predicate on the "content" field.
func ContentEQ(v string) predicate.Comment {
	return predicate.Comment(sql.FieldEQ(FieldContent, v))
}

// ContentNEQ applies the NEQ predicate on the "content" field.
func ContentNEQ(v string) predicate.Comment {
	return predicate.Comment(sql.FieldNEQ(FieldContent, v))
}

// ContentIn applies the In predicate on the "content" field.
func ContentIn(vs ...string) predicate.Comment {
	return predicate.Comment(sql.FieldIn(FieldContent, vs...))
}

// ContentNotIn applies the NotIn predicate on the "content" field.
func ContentNotIn(vs ...string) predicate.Comment {
	return predicate.Comment(sql.FieldNotIn(FieldContent, vs...))
}

// ContentGT applies the GT predicate on the "content" field.
func ContentGT(v string) predicate.Comment {
	return predicate.Comment(sql.FieldGT(FieldContent, v))
}

// ContentGTE applies the GTE predicate on the "content" field.
func ContentGTE(v string) predicate.Comment {
	return predicate.Comment(sql.FieldGTE(FieldContent, v))
}

// ContentLT applies the LT predicate on the "content" field.
func ContentLT(v string) predicate.Comment {
	return predicate.Comment(sql.FieldLT(FieldContent, v))
}

// ContentLTE applies the LTE predicate on the "content" field.
func ContentLTE(v string) predicate.Comment {
	return predicate.Comment(sql.FieldLTE(FieldContent, v))
}

// ContentContains applies the Contains predicate on the "content" field.
func ContentContains(v string) predicate.Comment {
	return predicate.Comment(sql.FieldContains(FieldContent, v))
}

// ContentHasPrefix applies the HasPrefix predicate on the "content" field.
func ContentHasPrefix(v string) predicate.Comment {
	return predicate.Comment(sql.FieldHasPrefix(FieldContent, v))
}

// ContentHasSuffix applies the HasSuffix predicate on the "content" field.
func ContentHasSuffix(v string) predicate.Comment {
	return predicate.Comment(sql.FieldHasSuffix(FieldContent, v))
}

// ContentEqualFold applies the EqualFold predicate on the "content" field.
func ContentEqualFold(v string) predicate.Comment {
	return predicate.Comment(sql.FieldEqualFold(FieldContent, v))
}

// ContentContainsFold applies the ContainsFold predicate on the "content" field.
func ContentContainsFold(v string) predicate.Comment {
	return predicate.Comment(sql.FieldContainsFold(FieldContent, v))
}

// TypeEQ applies the EQ predicate on the "type" field.
func TypeEQ(v Type) predicate.Comment {
	return predicate.Comment(sql.FieldEQ(FieldType, v))
}

// TypeNEQ applies the NEQ predicate on the "type" field.
func TypeNEQ(v Type) predicate.Comment {
	return predicate.Comment(sql.FieldNEQ(FieldType, v))
}

// TypeIn applies the In predicate on the "type" field.
func TypeIn(vs ...Type) predicate.Comment {
	return predicate.Comment(sql.FieldIn(FieldType, vs...))
}

// TypeNotIn applies the NotIn predicate on the "type" field.
func TypeNotIn(vs ...Type) predicate.Comment {
	return predicate.Comment(sql.FieldNotIn(FieldType, vs...))
}

// RoundEQ applies the EQ predicate on the "round" field.
func RoundEQ(v int) predicate.Comment {
	return predicate.Comment(sql.FieldEQ(FieldRound, v))
}

// RoundNEQ applies the NEQ predicate on the "round" field.
func RoundNEQ(v int) predicate.Comment {
	return predicate.Comment(sql.FieldNEQ(FieldRound, v))
}

// RoundIn applies the In predicate on the "round" field.
func RoundIn(vs ...int) predicate.Comment {
	return predicate.Comment(sql.FieldIn(FieldRound, vs...))
}

// RoundNotIn applies the NotIn predicate on the "round" field.
func RoundNotIn(vs ...int) predicate.Comment {
	return predicate.Comment(sql.FieldNotIn(FieldRound, vs...))
}

// RoundGT applies the GT predicate on the "round" field.
func RoundGT(v int) predicate.Comment {
	return predicate.Comment(sql.FieldGT(FieldRound, v))
}

// RoundGTE applies the GTE predicate on the "round" field.
func RoundGTE(v int) predicate.Comment {
	return predicate.Comment(sql.FieldGTE(FieldRound, v))
}

// RoundLT applies the LT predicate on the "round" field.
func RoundLT(v int) predicate.Comment {
	return predicate.Comment(sql.FieldLT(FieldRound, v))
}

// RoundLTE applies the LTE predicate on the "round" field.
func RoundLTE(v int) predicate.Comment {
	return predicate.Comment(sql.FieldLTE(FieldRound, v))
}

// PhaseEQ applies the EQ predicate on the "phase" field.
func PhaseEQ(v Phase) predicate.Comment {
	return predicate.Comment(sql.FieldEQ(FieldPhase, v))
}

// PhaseNEQ applies the NEQ predicate on the "phase" field.
func PhaseNEQ(v Phase) predicate.Comment {
	return predicate.Comment(sql.FieldNEQ(FieldPhase, v))
}

// PhaseIn applies the In predicate on the "phase" field.
func PhaseIn(vs ...Phase) predicate.Comment {
	return predicate.Comment(sql.FieldIn(FieldPhase, vs...))
}

// PhaseNotIn applies the NotIn predicate on the "phase" field.
func PhaseNotIn(vs ...Phase) predicate.Comment {
	return predicate.Comment(sql.FieldNotIn(FieldPhase, vs...))
}

// ParentIDEQ applies the EQ predicate on the "parent_id" field.
func ParentIDEQ(v string) predicate.Comment {
	return predicate.Comment(sql.FieldEQ(FieldParentID, v))
}

// ParentIDNEQ applies the NEQ predicate on the "parent_id" field.
func ParentIDNEQ(v string) predicate.Comment {
	return predicate.Comment(sql.FieldNEQ(FieldParentID, v))
}

// ParentIDIn applies the In predicate on the "parent_id" field.
func ParentIDIn(vs ...string) predicate.Comment {
	return predicate.Comment(sql.FieldIn(FieldParentID, vs...))
}

// ParentIDNotIn applies the NotIn predicate on the "parent_id" field.
func ParentIDNotIn(vs ...string) predicate.Comment {
	return predicate.Comment(sql.FieldNotIn(FieldParentID, vs...))
}

// ParentIDGT applies the GT predicate on the "parent_id" field.
func ParentIDGT(v string) predicate.Comment {
	return predicate.Comment(sql.FieldGT(FieldParentID, v))
}

// ParentIDGTE applies the GTE predicate on the "parent_id" field.
func ParentIDGTE(v string) predicate.Comment {
	return predicate.Comment(sql.FieldGTE(FieldParentID, v))
}

// ParentIDLT applies the LT predicate on the "parent_id" field.
func ParentIDLT(v string) predicate.Comment {
	return predicate.Comment(sql.FieldLT(FieldParentID, v))
}

// ParentIDLTE applies the LTE predicate on the "parent_id" field.
func ParentIDLTE(v string) predicate.Comment {
	return predicate.Comment(sql.FieldLTE(FieldParentID, v))
}

// ParentIDContains applies the Contains predicate on the "parent_id" field.
func ParentIDContains(v string) predicate.Comment {
	return predicate.Comment(sql.FieldContains(FieldParentID, v))
}

// ParentIDHasPrefix applies the HasPrefix predicate on the "parent_id" field.
func ParentIDHasPrefix(v string) predicate.Comment {
	return predicate.Comment(sql.FieldHasPrefix(FieldParentID, v))
}

// ParentIDHasSuffix applies the HasSuffix predicate on the "parent_id" field.
func ParentIDHasSuffix(v string) predicate.Comment {
	return predicate.Comment(sql.FieldHasSuffix(FieldParentID, v))
}

// ParentIDIsNil applies the IsNil predicate on the "parent_id" field.
func ParentIDIsNil() predicate.Comment {
	return predicate.Comment(sql.FieldIsNull(FieldParentID))
}

// ParentIDNotNil applies the NotNil predicate on the "parent_id" field.
func ParentIDNotNil() predicate.Comment {
	return predicate.Comment(sql.FieldNotNull(FieldParentID))
}

// ParentIDEqualFold applies the EqualFold predicate on the "parent_id" field.
func ParentIDEqualFold(v string) predicate.Comment {
	return predicate.Comment(sql.FieldEqualFold(FieldParentID, v))
}

// ParentIDContainsFold applies the ContainsFold predicate on the "parent_id" field.
func ParentIDContainsFold(v string) predicate.Comment {
	return predicate.Comment(sql.FieldContainsFold(FieldParentID, v))
}

// ResolvedEQ applies the EQ predicate on the "resolved" field.
func ResolvedEQ(v bool) predicate.Comment {
	return predicate.Comment(sql.FieldEQ(FieldResolved, v))
}

// ResolvedNEQ applies the NEQ predicate on the "resolved" field.
func ResolvedNEQ(v bool) predicate.Comment {
	return predicate.Comment(sql.FieldNEQ(FieldResolved, v))
}

// AddressedInRoundEQ applies the EQ predicate on the "addressed_in_round" field.
func AddressedInRoundEQ(v int) predicate.Comment {
	return predicate.Comment(sql.FieldEQ(FieldAddressedInRound, v))
}

// AddressedInRoundNEQ applies the NEQ predicate on the "addressed_in_round" field.
func AddressedInRoundNEQ(v int) predicate.Comment {
	return predicate.Comment(sql.FieldNEQ(FieldAddressedInRound, v))
}

// AddressedInRoundIn applies the In predicate on the "addressed_in_round" field.
func AddressedInRoundIn(vs ...int) predicate.Comment {
	return predicate.Comment(sql.FieldIn(FieldAddressedInRound, vs...))
}

// AddressedInRoundNotIn applies the NotIn predicate on the "addressed_in_round" field.
func AddressedInRoundNotIn(vs ...int) predicate.Comment {
	return predicate.Comment(sql.FieldNotIn(FieldAddressedInRound, vs...))
}

// AddressedInRoundGT applies the GT predicate on the "addressed_in_round" field.
func AddressedInRoundGT(v int) predicate.Comment {
	return predicate.Comment(sql.FieldGT(FieldAddressedInRound, v))
}

// AddressedInRoundGTE applies the GTE predicate on the "addressed_in_round" field.
func AddressedInRoundGTE(v int) predicate.Comment {
	return predicate.Comment(sql.FieldGTE(FieldAddressedInRound, v))
}

// AddressedInRoundLT applies the LT predicate on the "addressed_in_round" field.
func AddressedInRoundLT(v int) predicate.Comment {
	return predicate.Comment(sql.FieldLT(FieldAddressedInRound, v))
}

// AddressedInRoundLTE applies the LTE predicate on the "addressed_in_round" field.
func AddressedInRoundLTE(v int) predicate.Comment {
	return predicate.Comment(sql.FieldLTE(FieldAddressedInRound, v))
}

// AddressedInRoundIsNil applies the IsNil predicate on the "addressed_in_round" field.
func AddressedInRoundIsNil() predicate.Comment {
	return predicate.Comment(sql.FieldIsNull(FieldAddressedInRound))
}

// AddressedInRoundNotNil applies the NotNil predicate on the "addressed_in_round" field.
func AddressedInRoundNotNil() predicate.Comment {
	return predicate.Comment(sql.FieldNotNull(FieldAddressedInRound))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Comment {
	return predicate.Comment(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Comment {
	return predicate.Comment(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Comment {
	return predicate.Comment(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Comment {
	return predicate.Comment(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Comment {
	return predicate.Comment(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Comment {
	return predicate.Comment(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Comment {
	return predicate.Comment(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Comment {
	return predicate.Comment(sql.FieldLTE(FieldCreatedAt, v))
}

// HasAuthor applies the HasEdge predicate on the "author" edge.
func HasAuthor() predicate.Comment {
	return predicate.Comment(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, AuthorTable, AuthorColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAuthorWith applies the HasEdge predicate on the "author" edge with a given conditions (other predicates).
func HasAuthorWith(preds ...predicate.Participant) predicate.Comment {
	return predicate.Comment(func(s *sql.Selector) {
		step := newAuthorStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasTarget applies the HasEdge predicate on the "target" edge.
func HasTarget() predicate.Comment {
	return predicate.Comment(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, TargetTable, TargetColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTargetWith applies the HasEdge predicate on the "target" edge with a given conditions (other predicates).
func HasTargetWith(preds ...predicate.Participant) predicate.Comment {
	return predicate.Comment(func(s *sql.Selector) {
		step := newTargetStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Comment) predicate.Comment {
	return predicate.Comment(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Comment) predicate.Comment {
	return predicate.Comment(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Comment) predicate.Comment {
	return predicate.Comment(sql.NotPredicates(p))
}
