// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/dyadlab/fabula/ent/agentcontext"
	"github.com/dyadlab/fabula/ent/batch"
	"github.com/dyadlab/fabula/ent/participant"
	"github.com/dyadlab/fabula/ent/study"
	"github.com/dyadlab/fabula/pkg/models"
)

// Participant is the model entity for the Participant schema.
type Participant struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// StudyID holds the value of the "study_id" field.
	StudyID string `json:"study_id,omitempty"`
	// BatchID holds the value of the "batch_id" field.
	BatchID *string `json:"batch_id,omitempty"`
	// ConditionID holds the value of the "condition_id" field.
	ConditionID *string `json:"condition_id,omitempty"`
	// Batch-scoped display id, e.g. {batchPrefix}-3
	UniqueID string `json:"unique_id,omitempty"`
	// ActorType holds the value of the "actor_type" field.
	ActorType participant.ActorType `json:"actor_type,omitempty"`
	// State holds the value of the "state" field.
	State participant.State `json:"state,omitempty"`
	// Role holds the value of the "role" field.
	Role string `json:"role,omitempty"`
	// Symmetric: set and cleared on both rows in one transaction
	PartnerID *string `json:"partner_id,omitempty"`
	// Nil for humans
	LlmConfig *models.LLMConfig `json:"llm_config,omitempty"`
	// Weekly availability windows used by human pairing
	Availability []models.AvailabilityWindow `json:"availability,omitempty"`
	// PairingMetadata holds the value of the "pairing_metadata" field.
	PairingMetadata map[string]interface{} `json:"pairing_metadata,omitempty"`
	// Metadata holds the value of the "metadata" field.
	Metadata map[string]interface{} `json:"metadata,omitempty"`
	// Email holds the value of the "email" field.
	Email *string `json:"email,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ParticipantQuery when eager-loading is set.
	Edges        ParticipantEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ParticipantEdges holds the relations/edges for other nodes in the graph.
type ParticipantEdges struct {
	// Study holds the value of the study edge.
	Study *Study `json:"study,omitempty"`
	// Batch holds the value of the batch edge.
	Batch *Batch `json:"batch,omitempty"`
	// Events holds the value of the events edge.
	Events []*Event `json:"events,omitempty"`
	// StoryArtifacts holds the value of the story_artifacts edge.
	StoryArtifacts []*StoryArtifact `json:"story_artifacts,omitempty"`
	// AgentContext holds the value of the agent_context edge.
	AgentContext *AgentContext `json:"agent_context,omitempty"`
	// SurveyResponses holds the value of the survey_responses edge.
	SurveyResponses []*SurveyResponse `json:"survey_responses,omitempty"`
	// AuthoredComments holds the value of the authored_comments edge.
	AuthoredComments []*Comment `json:"authored_comments,omitempty"`
	// ReceivedComments holds the value of the received_comments edge.
	ReceivedComments []*Comment `json:"received_comments,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [8]bool
}

// StudyOrErr returns the Study value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ParticipantEdges) StudyOrErr() (*Study, error) {
	if e.Study != nil {
		return e.Study, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: study.Label}
	}
	return nil, &NotLoadedError{edge: "study"}
}

// BatchOrErr returns the Batch value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ParticipantEdges) BatchOrErr() (*Batch, error) {
	if e.Batch != nil {
		return e.Batch, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: batch.Label}
	}
	return nil, &NotLoadedError{edge: "batch"}
}

// EventsOrErr returns the Events value or an error if the edge
// was not loaded in eager-loading.
func (e ParticipantEdges) EventsOrErr() ([]*Event, error) {
	if e.loadedTypes[2] {
		return e.Events, nil
	}
	return nil, &NotLoadedError{edge: "events"}
}

// StoryArtifactsOrErr returns the StoryArtifacts value or an error if the edge
// was not loaded in eager-loading.
func (e ParticipantEdges) StoryArtifactsOrErr() ([]*StoryArtifact, error) {
	if e.loadedTypes[3] {
		return e.StoryArtifacts, nil
	}
	return nil, &NotLoadedError{edge: "story_artifacts"}
}

// AgentContextOrErr returns the AgentContext value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ParticipantEdges) AgentContextOrErr() (*AgentContext, error) {
	if e.AgentContext != nil {
		return e.AgentContext, nil
	} else if e.loadedTypes[4] {
		return nil, &NotFoundError{label: agentcontext.Label}
	}
	return nil, &NotLoadedError{edge: "agent_context"}
}

// SurveyResponsesOrErr returns the SurveyResponses value or an error if the edge
// was not loaded in eager-loading.
func (e ParticipantEdges) SurveyResponsesOrErr() ([]*SurveyResponse, error) {
	if e.loadedTypes[5] {
		return e.SurveyResponses, nil
	}
	return nil, &NotLoadedError{edge: "survey_responses"}
}

// AuthoredCommentsOrErr returns the AuthoredComments value or an error if the edge
// was not loaded in eager-loading.
func (e ParticipantEdges) AuthoredCommentsOrErr() ([]*Comment, error) {
	if e.loadedTypes[6] {
		return e.AuthoredComments, nil
	}
	return nil, &NotLoadedError{edge: "authored_comments"}
}

// ReceivedCommentsOrErr returns the ReceivedComments value or an error if the edge
// was not loaded in eager-loading.
func (e ParticipantEdges) ReceivedCommentsOrErr() ([]*Comment, error) {
	if e.loadedTypes[7] {
		return e.ReceivedComments, nil
	}
	return nil, &NotLoadedError{edge: "received_comments"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Participant) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case participant.FieldLlmConfig, participant.FieldAvailability, participant.FieldPairingMetadata, participant.FieldMetadata:
			values[i] = new([]byte)
		case participant.FieldID, participant.FieldStudyID, participant.FieldBatchID, participant.FieldConditionID, participant.FieldUniqueID, participant.FieldActorType, participant.FieldState, participant.FieldRole, participant.FieldPartnerID, participant.FieldEmail:
			values[i] = new(sql.NullString)
		case participant.FieldCreatedAt, participant.FieldCompletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Participant fields.
func (_m *Participant) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case participant.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case participant.FieldStudyID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field study_id", values[i])
			} else if value.Valid {
				_m.StudyID = value.String
			}
		case participant.FieldBatchID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field batch_id", values[i])
			} else if value.Valid {
				_m.BatchID = new(string)
				*_m.BatchID = value.String
			}
		case participant.FieldConditionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field condition_id", values[i])
			} else if value.Valid {
				_m.ConditionID = new(string)
				*_m.ConditionID = value.String
			}
		case participant.FieldUniqueID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field unique_id", values[i])
			} else if value.Valid {
				_m.UniqueID = value.String
			}
		case participant.FieldActorType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field actor_type", values[i])
			} else if value.Valid {
				_m.ActorType = participant.ActorType(value.String)
			}
		case participant.FieldState:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field state", values[i])
			} else if value.Valid {
				_m.State = participant.State(value.String)
			}
		case participant.FieldRole:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field role", values[i])
			} else if value.Valid {
				_m.Role = value.String
			}
		case participant.FieldPartnerID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field partner_id", values[i])
			} else if value.Valid {
				_m.PartnerID = new(string)
				*_m.PartnerID = value.String
			}
		case participant.FieldLlmConfig:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field llm_config", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.LlmConfig); err != nil {
					return fmt.Errorf("unmarshal field llm_config: %w", err)
				}
			}
		case participant.FieldAvailability:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field availability", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Availability); err != nil {
					return fmt.Errorf("unmarshal field availability: %w", err)
				}
			}
		case participant.FieldPairingMetadata:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field pairing_metadata", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.PairingMetadata); err != nil {
					return fmt.Errorf("unmarshal field pairing_metadata: %w", err)
				}
			}
		case participant.FieldMetadata:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field metadata", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Metadata); err != nil {
					return fmt.Errorf("unmarshal field metadata: %w", err)
				}
			}
		case participant.FieldEmail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field email", values[i])
			} else if value.Valid {
				_m.Email = new(string)
				*_m.Email = value.String
			}
		case participant.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case participant.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Participant.
// This includes values selected through modifiers, order, etc.
func (_m *Participant) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryStudy queries the "study" edge of the Participant entity.
func (_m *Participant) QueryStudy() *StudyQuery {
	return NewParticipantClient(_m.config).QueryStudy(_m)
}

// QueryBatch queries the "batch" edge of the Participant entity.
func (_m *Participant) QueryBatch() *BatchQuery {
	return NewParticipantClient(_m.config).QueryBatch(_m)
}

// QueryEvents queries the "events" edge of the Participant entity.
func (_m *Participant) QueryEvents() *EventQuery {
	return NewParticipantClient(_m.config).QueryEvents(_m)
}

// QueryStoryArtifacts queries the "story_artifacts" edge of the Participant entity.
func (_m *Participant) QueryStoryArtifacts() *StoryArtifactQuery {
	return NewParticipantClient(_m.config).QueryStoryArtifacts(_m)
}

// QueryAgentContext queries the "agent_context" edge of the Participant entity.
func (_m *Participant) QueryAgentContext() *AgentContextQuery {
	return NewParticipantClient(_m.config).QueryAgentContext(_m)
}

// QuerySurveyResponses queries the "survey_responses" edge of the Participant entity.
func (_m *Participant) QuerySurveyResponses() *SurveyResponseQuery {
	return NewParticipantClient(_m.config).QuerySurveyResponses(_m)
}

// QueryAuthoredComments queries the "authored_comments" edge of the Participant entity.
func (_m *Participant) QueryAuthoredComments() *CommentQuery {
	return NewParticipantClient(_m.config).QueryAuthoredComments(_m)
}

// QueryReceivedComments queries the "received_comments" edge of the Participant entity.
func (_m *Participant) QueryReceivedComments() *CommentQuery {
	return NewParticipantClient(_m.config).QueryReceivedComments(_m)
}

// Update returns a builder for updating this Participant.
// Note that you need to call Participant.Unwrap() before calling this method if this Participant
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Participant) Update() *ParticipantUpdateOne {
	return NewParticipantClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Participant entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Participant) Unwrap() *Participant {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Participant is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Participant) String() string {
	var builder strings.Builder
	builder.WriteString("Participant(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("study_id=")
	builder.WriteString(_m.StudyID)
	builder.WriteString(", ")
	if v := _m.BatchID; v != nil {
		builder.WriteString("batch_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ConditionID; v != nil {
		builder.WriteString("condition_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("unique_id=")
	builder.WriteString(_m.UniqueID)
	builder.WriteString(", ")
	builder.WriteString("actor_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.ActorType))
	builder.WriteString(", ")
	builder.WriteString("state=")
	builder.WriteString(fmt.Sprintf("%v", _m.State))
	builder.WriteString(", ")
	builder.WriteString("role=")
	builder.WriteString(_m.Role)
	builder.WriteString(", ")
	if v := _m.PartnerID; v != nil {
		builder.WriteString("partner_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("llm_config=")
	builder.WriteString(fmt.Sprintf("%v", _m.LlmConfig))
	builder.WriteString(", ")
	builder.WriteString("availability=")
	builder.WriteString(fmt.Sprintf("%v", _m.Availability))
	builder.WriteString(", ")
	builder.WriteString("pairing_metadata=")
	builder.WriteString(fmt.Sprintf("%v", _m.PairingMetadata))
	builder.WriteString(", ")
	builder.WriteString("metadata=")
	builder.WriteString(fmt.Sprintf("%v", _m.Metadata))
	builder.WriteString(", ")
	if v := _m.Email; v != nil {
		builder.WriteString("email=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// Participants is a parsable slice of Participant.
type Participants []*Participant
