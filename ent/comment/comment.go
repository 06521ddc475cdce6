// Code generated by ent, DO NOT EDIT.

package comment

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the comment type in the database.
	Label = "comment"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "comment_id"
	// FieldAuthorID holds the string denoting the author_id field in the database.
	FieldAuthorID = "author_id"
	// FieldTargetParticipantID holds the string denoting the target_participant_id field in the database.
	FieldTargetParticipantID = "target_participant_id"
	// FieldStoryArtifactID holds the string denoting the story_artifact_id field in the database.
	FieldStoryArtifactID = "story_artifact_id"
	// FieldPassageID holds the string denoting the passage_id field in the database.
	FieldPassageID = "passage_id"
	// FieldContent holds the string denoting the content field in the database.
	FieldContent = "content"
	// FieldType holds the string denoting the type field in the database.
	FieldType = "type"
	// FieldRound holds the string denoting the round field in the database.
	FieldRound = "round"
	// FieldPhase holds the string denoting the phase field in the database.
	FieldPhase = "phase"
	// FieldParentID holds the string denoting the parent_id field in the database.
	FieldParentID = "parent_id"
	// FieldResolved holds the string denoting the resolved field in the database.
	FieldResolved = "resolved"
	// FieldAddressedInRound holds the string denoting the addressed_in_round field in the database.
	FieldAddressedInRound = "addressed_in_round"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeAuthor holds the string denoting the author edge name in mutations.
	EdgeAuthor = "author"
	// EdgeTarget holds the string denoting the target edge name in mutations.
	EdgeTarget = "target"
	// ParticipantFieldID holds the string denoting the ID field of the Participant.
	ParticipantFieldID = "participant_id"
	// Table holds the table name of the comment in the database.
	Table = "comments"
	// AuthorTable is the table that holds the author relation/edge.
	AuthorTable = "comments"
	// AuthorInverseTable is the table name for the Participant entity.
	// It exists in this package in order to avoid circular dependency with the "participant" package.
	AuthorInverseTable = "participants"
	// AuthorColumn is the table column denoting the author relation/edge.
	AuthorColumn = "author_id"
	// TargetTable is the table that holds the target relation/edge.
	TargetTable = "comments"
	// TargetInverseTable is the table name for the Participant entity.
	// It exists in this package in order to avoid circular dependency with the "participant" package.
	TargetInverseTable = "participants"
	// TargetColumn is the table column denoting the target relation/edge.
	TargetColumn = "target_participant_id"
)

// Columns holds all SQL columns for comment fields.
var Columns = []string{
	FieldID,
	FieldAuthorID,
	FieldTargetParticipantID,
	FieldStoryArtifactID,
	FieldPassageID,
	FieldContent,
	FieldType,
	FieldRound,
	FieldPhase,
	FieldParentID,
	FieldResolved,
	FieldAddressedInRound,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultResolved holds the default value on creation for the "resolved" field.
	DefaultResolved bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Type defines the type for the "type" enum field.
type Type string

// TypeFeedback is the default value of the Type enum.
const DefaultType = TypeFeedback

// Type values.
const (
	TypeFeedback   Type = "feedback"
	TypePraise     Type = "praise"
	TypeSuggestion Type = "suggestion"
	TypeCritique   Type = "critique"
	TypeQuestion   Type = "question"
)

func (_type Type) String() string {
	return string(_type)
}

// TypeValidator is a validator for the "type" field enum values. It is called by the builders before save.
func TypeValidator(_type Type) error {
	switch _type {
	case TypeFeedback, TypePraise, TypeSuggestion, TypeCritique, TypeQuestion:
		return nil
	default:
		return fmt.Errorf("comment: invalid enum value for type field: %q", _type)
	}
}

// Phase defines the type for the "phase" enum field.
type Phase string

// PhaseReview is the default value of the Phase enum.
const DefaultPhase = PhaseReview

// Phase values.
const (
	PhaseAuthor Phase = "author"
	PhasePlay   Phase = "play"
	PhaseReview Phase = "review"
)

func (ph Phase) String() string {
	return string(ph)
}

// PhaseValidator is a validator for the "phase" field enum values. It is called by the builders before save.
func PhaseValidator(ph Phase) error {
	switch ph {
	case PhaseAuthor, PhasePlay, PhaseReview:
		return nil
	default:
		return fmt.Errorf("comment: invalid enum value for phase field: %q", ph)
	}
}

// OrderOption defines the ordering options for the Comment queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByAuthorID orders the results by the author_id field.
func ByAuthorID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAuthorID, opts...).ToFunc()
}

// ByTargetParticipantID orders the results by the target_participant_id field.
func ByTargetParticipantID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTargetParticipantID, opts...).ToFunc()
}

// ByStoryArtifactID orders the results by the story_artifact_id field.
func ByStoryArtifactID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStoryArtifactID, opts...).ToFunc()
}

// ByPassageID orders the results by the passage_id field.
func ByPassageID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPassageID, opts...).ToFunc()
}

// ByContent orders the results by the content field.
func ByContent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContent, opts...).ToFunc()
}

// ByType orders the results by the type field.
func ByType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldType, opts...).ToFunc()
}

// ByRound orders the results by the round field.
func ByRound(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRound, opts...).ToFunc()
}

// ByPhase orders the results by the phase field.
func ByPhase(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPhase, opts...).ToFunc()
}

// ByParentID orders the results by the parent_id field.
func ByParentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldParentID, opts...).ToFunc()
}

// ByResolved orders the results by the resolved field.
func ByResolved(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResolved, opts...).ToFunc()
}

// ByAddressedInRound orders the results by the addressed_in_round field.
func ByAddressedInRound(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAddressedInRound, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByAuthorField orders the results by author field.
func ByAuthorField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAuthorStep(), sql.OrderByField(field, opts...))
	}
}

// ByTargetField orders the results by target field.
func ByTargetField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTargetStep(), sql.OrderByField(field, opts...))
	}
}
func newAuthorStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AuthorInverseTable, ParticipantFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, AuthorTable, AuthorColumn),
	)
}
func newTargetStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TargetInverseTable, ParticipantFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, TargetTable, TargetColumn),
	)
}
