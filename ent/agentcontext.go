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
	"github.com/dyadlab/fabula/ent/participant"
	"github.com/dyadlab/fabula/pkg/models"
)

// AgentContext is the model entity for the AgentContext schema.
type AgentContext struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// ParticipantID holds the value of the "participant_id" field.
	ParticipantID string `json:"participant_id,omitempty"`
	// CurrentRound holds the value of the "current_round" field.
	CurrentRound int `json:"current_round,omitempty"`
	// CurrentPhase holds the value of the "current_phase" field.
	CurrentPhase agentcontext.CurrentPhase `json:"current_phase,omitempty"`
	// OwnStoryDrafts holds the value of the "own_story_drafts" field.
	OwnStoryDrafts []models.StoryDraftEntry `json:"own_story_drafts,omitempty"`
	// PartnerStoriesPlayed holds the value of the "partner_stories_played" field.
	PartnerStoriesPlayed []models.PartnerStoryEntry `json:"partner_stories_played,omitempty"`
	// FeedbackGiven holds the value of the "feedback_given" field.
	FeedbackGiven []models.FeedbackEntry `json:"feedback_given,omitempty"`
	// FeedbackReceived holds the value of the "feedback_received" field.
	FeedbackReceived []models.FeedbackEntry `json:"feedback_received,omitempty"`
	// CumulativeLearnings holds the value of the "cumulative_learnings" field.
	CumulativeLearnings []models.LearningEntry `json:"cumulative_learnings,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AgentContextQuery when eager-loading is set.
	Edges        AgentContextEdges `json:"edges"`
	selectValues sql.SelectValues
}

// AgentContextEdges holds the relations/edges for other nodes in the graph.
type AgentContextEdges struct {
	// Participant holds the value of the participant edge.
	Participant *Participant `json:"participant,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ParticipantOrErr returns the Participant value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AgentContextEdges) ParticipantOrErr() (*Participant, error) {
	if e.Participant != nil {
		return e.Participant, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: participant.Label}
	}
	return nil, &NotLoadedError{edge: "participant"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AgentContext) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case agentcontext.FieldOwnStoryDrafts, agentcontext.FieldPartnerStoriesPlayed, agentcontext.FieldFeedbackGiven, agentcontext.FieldFeedbackReceived, agentcontext.FieldCumulativeLearnings:
			values[i] = new([]byte)
		case agentcontext.FieldCurrentRound:
			values[i] = new(sql.NullInt64)
		case agentcontext.FieldID, agentcontext.FieldParticipantID, agentcontext.FieldCurrentPhase:
			values[i] = new(sql.NullString)
		case agentcontext.FieldCreatedAt, agentcontext.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AgentContext fields.
func (_m *AgentContext) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case agentcontext.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case agentcontext.FieldParticipantID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field participant_id", values[i])
			} else if value.Valid {
				_m.ParticipantID = value.String
			}
		case agentcontext.FieldCurrentRound:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field current_round", values[i])
			} else if value.Valid {
				_m.CurrentRound = int(value.Int64)
			}
		case agentcontext.FieldCurrentPhase:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field current_phase", values[i])
			} else if value.Valid {
				_m.CurrentPhase = agentcontext.CurrentPhase(value.String)
			}
		case agentcontext.FieldOwnStoryDrafts:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field own_story_drafts", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.OwnStoryDrafts); err != nil {
					return fmt.Errorf("unmarshal field own_story_drafts: %w", err)
				}
			}
		case agentcontext.FieldPartnerStoriesPlayed:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field partner_stories_played", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.PartnerStoriesPlayed); err != nil {
					return fmt.Errorf("unmarshal field partner_stories_played: %w", err)
				}
			}
		case agentcontext.FieldFeedbackGiven:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field feedback_given", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.FeedbackGiven); err != nil {
					return fmt.Errorf("unmarshal field feedback_given: %w", err)
				}
			}
		case agentcontext.FieldFeedbackReceived:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field feedback_received", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.FeedbackReceived); err != nil {
					return fmt.Errorf("unmarshal field feedback_received: %w", err)
				}
			}
		case agentcontext.FieldCumulativeLearnings:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field cumulative_learnings", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.CumulativeLearnings); err != nil {
					return fmt.Errorf("unmarshal field cumulative_learnings: %w", err)
				}
			}
		case agentcontext.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case agentcontext.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AgentContext.
// This includes values selected through modifiers, order, etc.
func (_m *AgentContext) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryParticipant queries the "participant" edge of the AgentContext entity.
func (_m *AgentContext) QueryParticipant() *ParticipantQuery {
	return NewAgentContextClient(_m.config).QueryParticipant(_m)
}

// Update returns a builder for updating this AgentContext.
// Note that you need to call AgentContext.Unwrap() before calling this method if this AgentContext
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AgentContext) Update() *AgentContextUpdateOne {
	return NewAgentContextClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AgentContext entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AgentContext) Unwrap() *AgentContext {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AgentContext is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AgentContext) String() string {
	var builder strings.Builder
	builder.WriteString("AgentContext(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("participant_id=")
	builder.WriteString(_m.ParticipantID)
	builder.WriteString(", ")
	builder.WriteString("current_round=")
	builder.WriteString(fmt.Sprintf("%v", _m.CurrentRound))
	builder.WriteString(", ")
	builder.WriteString("current_phase=")
	builder.WriteString(fmt.Sprintf("%v", _m.CurrentPhase))
	builder.WriteString(", ")
	builder.WriteString("own_story_drafts=")
	builder.WriteString(fmt.Sprintf("%v", _m.OwnStoryDrafts))
	builder.WriteString(", ")
	builder.WriteString("partner_stories_played=")
	builder.WriteString(fmt.Sprintf("%v", _m.PartnerStoriesPlayed))
	builder.WriteString(", ")
	builder.WriteString("feedback_given=")
	builder.WriteString(fmt.Sprintf("%v", _m.FeedbackGiven))
	builder.WriteString(", ")
	builder.WriteString("feedback_received=")
	builder.WriteString(fmt.Sprintf("%v", _m.FeedbackReceived))
	builder.WriteString(", ")
	builder.WriteString("cumulative_learnings=")
	builder.WriteString(fmt.Sprintf("%v", _m.CumulativeLearnings))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// AgentContexts is a parsable slice of AgentContext.
type AgentContexts []*AgentContext
