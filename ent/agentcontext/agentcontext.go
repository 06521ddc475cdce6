// Code generated by ent, DO NOT EDIT.

package agentcontext

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/dyadlab/fabula/pkg/models"
)

const (
	// Label holds the string label denoting the agentcontext type in the database.
	Label = "agent_context"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "agent_context_id"
	// FieldParticipantID holds the string denoting the participant_id field in the database.
	FieldParticipantID = "participant_id"
	// FieldCurrentRound holds the string denoting the current_round field in the database.
	FieldCurrentRound = "current_round"
	// FieldCurrentPhase holds the string denoting the current_phase field in the database.
	FieldCurrentPhase = "current_phase"
	// FieldOwnStoryDrafts holds the string denoting the own_story_drafts field in the database.
	FieldOwnStoryDrafts = "own_story_drafts"
	// FieldPartnerStoriesPlayed holds the string denoting the partner_stories_played field in the database.
	FieldPartnerStoriesPlayed = "partner_stories_played"
	// FieldFeedbackGiven holds the string denoting the feedback_given field in the database.
	FieldFeedbackGiven = "feedback_given"
	// FieldFeedbackReceived holds the string denoting the feedback_received field in the database.
	FieldFeedbackReceived = "feedback_received"
	// FieldCumulativeLearnings holds the string denoting the cumulative_learnings field in the database.
	FieldCumulativeLearnings = "cumulative_learnings"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeParticipant holds the string denoting the participant edge name in mutations.
	EdgeParticipant = "participant"
	// ParticipantFieldID holds the string denoting the ID field of the Participant.
	ParticipantFieldID = "participant_id"
	// Table holds the table name of the agentcontext in the database.
	Table = "agent_contexts"
	// ParticipantTable is the table that holds the participant relation/edge.
	ParticipantTable = "agent_contexts"
	// ParticipantInverseTable is the table name for the Participant entity.
	// It exists in this package in order to avoid circular dependency with the "participant" package.
	ParticipantInverseTable = "participants"
	// ParticipantColumn is the table column denoting the participant relation/edge.
	ParticipantColumn = "participant_id"
)

// Columns holds all SQL columns for agentcontext fields.
var Columns = []string{
	FieldID,
	FieldParticipantID,
	FieldCurrentRound,
	FieldCurrentPhase,
	FieldOwnStoryDrafts,
	FieldPartnerStoriesPlayed,
	FieldFeedbackGiven,
	FieldFeedbackReceived,
	FieldCumulativeLearnings,
	FieldCreatedAt,
	FieldUpdatedAt,
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
	// DefaultCurrentRound holds the default value on creation for the "current_round" field.
	DefaultCurrentRound int
	// DefaultOwnStoryDrafts holds the default value on creation for the "own_story_drafts" field.
	DefaultOwnStoryDrafts []models.StoryDraftEntry
	// DefaultPartnerStoriesPlayed holds the default value on creation for the "partner_stories_played" field.
	DefaultPartnerStoriesPlayed []models.PartnerStoryEntry
	// DefaultFeedbackGiven holds the default value on creation for the "feedback_given" field.
	DefaultFeedbackGiven []models.FeedbackEntry
	// DefaultFeedbackReceived holds the default value on creation for the "feedback_received" field.
	DefaultFeedbackReceived []models.FeedbackEntry
	// DefaultCumulativeLearnings holds the default value on creation for the "cumulative_learnings" field.
	DefaultCumulativeLearnings []models.LearningEntry
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// CurrentPhase defines the type for the "current_phase" enum field.
type CurrentPhase string

// CurrentPhaseAuthor is the default value of the CurrentPhase enum.
const DefaultCurrentPhase = CurrentPhaseAuthor

// CurrentPhase values.
const (
	CurrentPhaseAuthor CurrentPhase = "author"
	CurrentPhasePlay   CurrentPhase = "play"
	CurrentPhaseReview CurrentPhase = "review"
)

func (cp CurrentPhase) String() string {
	return string(cp)
}

// CurrentPhaseValidator is a validator for the "current_phase" field enum values. It is called by the builders before save.
func CurrentPhaseValidator(cp CurrentPhase) error {
	switch cp {
	case CurrentPhaseAuthor, CurrentPhasePlay, CurrentPhaseReview:
		return nil
	default:
		return fmt.Errorf("agentcontext: invalid enum value for current_phase field: %q", cp)
	}
}

// OrderOption defines the ordering options for the AgentContext queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByParticipantID orders the results by the participant_id field.
func ByParticipantID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldParticipantID, opts...).ToFunc()
}

// ByCurrentRound orders the results by the current_round field.
func ByCurrentRound(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrentRound, opts...).ToFunc()
}

// ByCurrentPhase orders the results by the current_phase field.
func ByCurrentPhase(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrentPhase, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByParticipantField orders the results by participant field.
func ByParticipantField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newParticipantStep(), sql.OrderByField(field, opts...))
	}
}
func newParticipantStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ParticipantInverseTable, ParticipantFieldID),
		sqlgraph.Edge(sqlgraph.O2O, true, ParticipantTable, ParticipantColumn),
	)
}
