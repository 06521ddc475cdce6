// Code generated by ent, DO NOT EDIT.

package participant

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the participant type in the database.
	Label = "participant"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "participant_id"
	// FieldStudyID holds the string denoting the study_id field in the database.
	FieldStudyID = "study_id"
	// FieldBatchID holds the string denoting the batch_id field in the database.
	FieldBatchID = "batch_id"
	// FieldConditionID holds the string denoting the condition_id field in the database.
	FieldConditionID = "condition_id"
	// FieldUniqueID holds the string denoting the unique_id field in the database.
	FieldUniqueID = "unique_id"
	// FieldActorType holds the string denoting the actor_type field in the database.
	FieldActorType = "actor_type"
	// FieldState holds the string denoting the state field in the database.
	FieldState = "state"
	// FieldRole holds the string denoting the role field in the database.
	FieldRole = "role"
	// FieldPartnerID holds the string denoting the partner_id field in the database.
	FieldPartnerID = "partner_id"
	// FieldLlmConfig holds the string denoting the llm_config field in the database.
	FieldLlmConfig = "llm_config"
	// FieldAvailability holds the string denoting the availability field in the database.
	FieldAvailability = "availability"
	// FieldPairingMetadata holds the string denoting the pairing_metadata field in the database.
	FieldPairingMetadata = "pairing_metadata"
	// FieldMetadata holds the string denoting the metadata field in the database.
	FieldMetadata = "metadata"
	// FieldEmail holds the string denoting the email field in the database.
	FieldEmail = "email"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// EdgeStudy holds the string denoting the study edge name in mutations.
	EdgeStudy = "study"
	// EdgeBatch holds the string denoting the batch edge name in mutations.
	EdgeBatch = "batch"
	// EdgeEvents holds the string denoting the events edge name in mutations.
	EdgeEvents = "events"
	// EdgeStoryArtifacts holds the string denoting the story_artifacts edge name in mutations.
	EdgeStoryArtifacts = "story_artifacts"
	// EdgeAgentContext holds the string denoting the agent_context edge name in mutations.
	EdgeAgentContext = "agent_context"
	// EdgeSurveyResponses holds the string denoting the survey_responses edge name in mutations.
	EdgeSurveyResponses = "survey_responses"
	// EdgeAuthoredComments holds the string denoting the authored_comments edge name in mutations.
	EdgeAuthoredComments = "authored_comments"
	// EdgeReceivedComments holds the string denoting the received_comments edge name in mutations.
	EdgeReceivedComments = "received_comments"
	// StudyFieldID holds the string denoting the ID field of the Study.
	StudyFieldID = "study_id"
	// BatchFieldID holds the string denoting the ID field of the Batch.
	BatchFieldID = "batch_id"
	// EventFieldID holds the string denoting the ID field of the Event.
	EventFieldID = "event_id"
	// StoryArtifactFieldID holds the string denoting the ID field of the StoryArtifact.
	StoryArtifactFieldID = "story_artifact_id"
	// AgentContextFieldID holds the string denoting the ID field of the AgentContext.
	AgentContextFieldID = "agent_context_id"
	// SurveyResponseFieldID holds the string denoting the ID field of the SurveyResponse.
	SurveyResponseFieldID = "survey_response_id"
	// CommentFieldID holds the string denoting the ID field of the Comment.
	CommentFieldID = "comment_id"
	// Table holds the table name of the participant in the database.
	Table = "participants"
	// StudyTable is the table that holds the study relation/edge.
	StudyTable = "participants"
	// StudyInverseTable is the table name for the Study entity.
	// It exists in this package in order to avoid circular dependency with the "study" package.
	StudyInverseTable = "studies"
	// StudyColumn is the table column denoting the study relation/edge.
	StudyColumn = "study_id"
	// BatchTable is the table that holds the batch relation/edge.
	BatchTable = "participants"
	// BatchInverseTable is the table name for the Batch entity.
	// It exists in this package in order to avoid circular dependency with the "batch" package.
	BatchInverseTable = "batches"
	// BatchColumn is the table column denoting the batch relation/edge.
	BatchColumn = "batch_id"
	// EventsTable is the table that holds the events relation/edge.
	EventsTable = "events"
	// EventsInverseTable is the table name for the Event entity.
	// It exists in this package in order to avoid circular dependency with the "event" package.
	EventsInverseTable = "events"
	// EventsColumn is the table column denoting the events relation/edge.
	EventsColumn = "participant_id"
	// StoryArtifactsTable is the table that holds the story_artifacts relation/edge.
	StoryArtifactsTable = "story_artifacts"
	// StoryArtifactsInverseTable is the table name for the StoryArtifact entity.
	// It exists in this package in order to avoid circular dependency with the "storyartifact" package.
	StoryArtifactsInverseTable = "story_artifacts"
	// StoryArtifactsColumn is the table column denoting the story_artifacts relation/edge.
	StoryArtifactsColumn = "participant_id"
	// AgentContextTable is the table that holds the agent_context relation/edge.
	AgentContextTable = "agent_contexts"
	// AgentContextInverseTable is the table name for the AgentContext entity.
	// It exists in this package in order to avoid circular dependency with the "agentcontext" package.
	AgentContextInverseTable = "agent_contexts"
	// AgentContextColumn is the table column denoting the agent_context relation/edge.
	AgentContextColumn = "participant_id"
	// SurveyResponsesTable is the table that holds the survey_responses relation/edge.
	SurveyResponsesTable = "survey_responses"
	// SurveyResponsesInverseTable is the table name for the SurveyResponse entity.
	// It exists in this package in order to avoid circular dependency with the "surveyresponse" package.
	SurveyResponsesInverseTable = "survey_responses"
	// SurveyResponsesColumn is the table column denoting the survey_responses relation/edge.
	SurveyResponsesColumn = "participant_id"
	// AuthoredCommentsTable is the table that holds the authored_comments relation/edge.
	AuthoredCommentsTable = "comments"
	// AuthoredCommentsInverseTable is the table name for the Comment entity.
	// It exists in this package in order to avoid circular dependency with the "comment" package.
	AuthoredCommentsInverseTable = "comments"
	// AuthoredCommentsColumn is the table column denoting the authored_comments relation/edge.
	AuthoredCommentsColumn = "author_id"
	// ReceivedCommentsTable is the table that holds the received_comments relation/edge.
	ReceivedCommentsTable = "comments"
	// ReceivedCommentsInverseTable is the table name for the Comment entity.
	// It exists in this package in order to avoid circular dependency with the "comment" package.
	ReceivedCommentsInverseTable = "comments"
	// ReceivedCommentsColumn is the table column denoting the received_comments relation/edge.
	ReceivedCommentsColumn = "target_participant_id"
)

// Columns holds all SQL columns for participant fields.
var Columns = []string{
	FieldID,
	FieldStudyID,
	FieldBatchID,
	FieldConditionID,
	FieldUniqueID,
	FieldActorType,
	FieldState,
	FieldRole,
	FieldPartnerID,
	FieldLlmConfig,
	FieldAvailability,
	FieldPairingMetadata,
	FieldMetadata,
	FieldEmail,
	FieldCreatedAt,
	FieldCompletedAt,
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
	// DefaultRole holds the default value on creation for the "role" field.
	DefaultRole string
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// ActorType defines the type for the "actor_type" enum field.
type ActorType string

// ActorType values.
const (
	ActorTypeHuman     ActorType = "human"
	ActorTypeSynthetic ActorType = "synthetic"
)

func (at ActorType) String() string {
	return string(at)
}

// ActorTypeValidator is a validator for the "actor_type" field enum values. It is called by the builders before save.
func ActorTypeValidator(at ActorType) error {
	switch at {
	case ActorTypeHuman, ActorTypeSynthetic:
		return nil
	default:
		return fmt.Errorf("participant: invalid enum value for actor_type field: %q", at)
	}
}

// State defines the type for the "state" enum field.
type State string

// StateEnrolled is the default value of the State enum.
const DefaultState = StateEnrolled

// State values.
const (
	StateEnrolled  State = "enrolled"
	StateScheduled State = "scheduled"
	StateConfirmed State = "confirmed"
	StateCheckedIn State = "checked_in"
	StateActive    State = "active"
	StateComplete  State = "complete"
	StateWithdrawn State = "withdrawn"
	StateExcluded  State = "excluded"
)

func (s State) String() string {
	return string(s)
}

// StateValidator is a validator for the "state" field enum values. It is called by the builders before save.
func StateValidator(s State) error {
	switch s {
	case StateEnrolled, StateScheduled, StateConfirmed, StateCheckedIn, StateActive, StateComplete, StateWithdrawn, StateExcluded:
		return nil
	default:
		return fmt.Errorf("participant: invalid enum value for state field: %q", s)
	}
}

// OrderOption defines the ordering options for the Participant queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByStudyID orders the results by the study_id field.
func ByStudyID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStudyID, opts...).ToFunc()
}

// ByBatchID orders the results by the batch_id field.
func ByBatchID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBatchID, opts...).ToFunc()
}

// ByConditionID orders the results by the condition_id field.
func ByConditionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConditionID, opts...).ToFunc()
}

// ByUniqueID orders the results by the unique_id field.
func ByUniqueID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUniqueID, opts...).ToFunc()
}

// ByActorType orders the results by the actor_type field.
func ByActorType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActorType, opts...).ToFunc()
}

// ByState orders the results by the state field.
func ByState(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldState, opts...).ToFunc()
}

// ByRole orders the results by the role field.
func ByRole(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRole, opts...).ToFunc()
}

// ByPartnerID orders the results by the partner_id field.
func ByPartnerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPartnerID, opts...).ToFunc()
}

// ByEmail orders the results by the email field.
func ByEmail(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmail, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByStudyField orders the results by study field.
func ByStudyField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newStudyStep(), sql.OrderByField(field, opts...))
	}
}

// ByBatchField orders the results by batch field.
func ByBatchField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newBatchStep(), sql.OrderByField(field, opts...))
	}
}

// ByEventsCount orders the results by events count.
func ByEventsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newEventsStep(), opts...)
	}
}

// ByEvents orders the results by events terms.
func ByEvents(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newEventsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByStoryArtifactsCount orders the results by story_artifacts count.
func ByStoryArtifactsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newStoryArtifactsStep(), opts...)
	}
}

// ByStoryArtifacts orders the results by story_artifacts terms.
func ByStoryArtifacts(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newStoryArtifactsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByAgentContextField orders the results by agent_context field.
func ByAgentContextField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAgentContextStep(), sql.OrderByField(field, opts...))
	}
}

// BySurveyResponsesCount orders the results by survey_responses count.
func BySurveyResponsesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newSurveyResponsesStep(), opts...)
	}
}

// BySurveyResponses orders the results by survey_responses terms.
func BySurveyResponses(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSurveyResponsesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByAuthoredCommentsCount orders the results by authored_comments count.
func ByAuthoredCommentsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newAuthoredCommentsStep(), opts...)
	}
}

// ByAuthoredComments orders the results by authored_comments terms.
func ByAuthoredComments(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAuthoredCommentsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByReceivedCommentsCount orders the results by received_comments count.
func ByReceivedCommentsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newReceivedCommentsStep(), opts...)
	}
}

// ByReceivedComments orders the results by received_comments terms.
func ByReceivedComments(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newReceivedCommentsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newStudyStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(StudyInverseTable, StudyFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, StudyTable, StudyColumn),
	)
}
func newBatchStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(BatchInverseTable, BatchFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, BatchTable, BatchColumn),
	)
}
func newEventsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(EventsInverseTable, EventFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, EventsTable, EventsColumn),
	)
}
func newStoryArtifactsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(StoryArtifactsInverseTable, StoryArtifactFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, StoryArtifactsTable, StoryArtifactsColumn),
	)
}
func newAgentContextStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AgentContextInverseTable, AgentContextFieldID),
		sqlgraph.Edge(sqlgraph.O2O, false, AgentContextTable, AgentContextColumn),
	)
}
func newSurveyResponsesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SurveyResponsesInverseTable, SurveyResponseFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, SurveyResponsesTable, SurveyResponsesColumn),
	)
}
func newAuthoredCommentsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AuthoredCommentsInverseTable, CommentFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, AuthoredCommentsTable, AuthoredCommentsColumn),
	)
}
func newReceivedCommentsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ReceivedCommentsInverseTable, CommentFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ReceivedCommentsTable, ReceivedCommentsColumn),
	)
}
