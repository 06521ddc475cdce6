// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/dyadlab/fabula/ent/participant"
	"github.com/dyadlab/fabula/ent/survey"
	"github.com/dyadlab/fabula/ent/surveyresponse"
)

// SurveyResponse is the model entity for the SurveyResponse schema.
type SurveyResponse struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// SurveyID holds the value of the "survey_id" field.
	SurveyID string `json:"survey_id,omitempty"`
	// ParticipantID holds the value of the "participant_id" field.
	ParticipantID string `json:"participant_id,omitempty"`
	// Responses holds the value of the "responses" field.
	Responses map[string]interface{} `json:"responses,omitempty"`
	// SubmittedAt holds the value of the "submitted_at" field.
	SubmittedAt time.Time `json:"submitted_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the SurveyResponseQuery when eager-loading is set.
	Edges        SurveyResponseEdges `json:"edges"`
	selectValues sql.SelectValues
}

// SurveyResponseEdges holds the relations/edges for other nodes in the graph.
type SurveyResponseEdges struct {
	// Survey holds the value of the survey edge.
	Survey *Survey `json:"survey,omitempty"`
	// Participant holds the value of the participant edge.
	Participant *Participant `json:"participant,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// SurveyOrErr returns the Survey value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e SurveyResponseEdges) SurveyOrErr() (*Survey, error) {
	if e.Survey != nil {
		return e.Survey, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: survey.Label}
	}
	return nil, &NotLoadedError{edge: "survey"}
}

// ParticipantOrErr returns the Participant value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e SurveyResponseEdges) ParticipantOrErr() (*Participant, error) {
	if e.Participant != nil {
		return e.Participant, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: participant.Label}
	}
	return nil, &NotLoadedError{edge: "participant"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SurveyResponse) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case surveyresponse.FieldResponses:
			values[i] = new([]byte)
		case surveyresponse.FieldID, surveyresponse.FieldSurveyID, surveyresponse.FieldParticipantID:
			values[i] = new(sql.NullString)
		case surveyresponse.FieldSubmittedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SurveyResponse fields.
func (_m *SurveyResponse) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case surveyresponse.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case surveyresponse.FieldSurveyID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field survey_id", values[i])
			} else if value.Valid {
				_m.SurveyID = value.String
			}
		case surveyresponse.FieldParticipantID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field participant_id", values[i])
			} else if value.Valid {
				_m.ParticipantID = value.String
			}
		case surveyresponse.FieldResponses:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field responses", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Responses); err != nil {
					return fmt.Errorf("unmarshal field responses: %w", err)
				}
			}
		case surveyresponse.FieldSubmittedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field submitted_at", values[i])
			} else if value.Valid {
				_m.SubmittedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SurveyResponse.
// This includes values selected through modifiers, order, etc.
func (_m *SurveyResponse) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySurvey queries the "survey" edge of the SurveyResponse entity.
func (_m *SurveyResponse) QuerySurvey() *SurveyQuery {
	return NewSurveyResponseClient(_m.config).QuerySurvey(_m)
}

// QueryParticipant queries the "participant" edge of the SurveyResponse entity.
func (_m *SurveyResponse) QueryParticipant() *ParticipantQuery {
	return NewSurveyResponseClient(_m.config).QueryParticipant(_m)
}

// Update returns a builder for updating this SurveyResponse.
// Note that you need to call SurveyResponse.Unwrap() before calling this method if this SurveyResponse
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SurveyResponse) Update() *SurveyResponseUpdateOne {
	return NewSurveyResponseClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SurveyResponse entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SurveyResponse) Unwrap() *SurveyResponse {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SurveyResponse is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SurveyResponse) String() string {
	var builder strings.Builder
	builder.WriteString("SurveyResponse(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("survey_id=")
	builder.WriteString(_m.SurveyID)
	builder.WriteString(", ")
	builder.WriteString("participant_id=")
	builder.WriteString(_m.ParticipantID)
	builder.WriteString(", ")
	builder.WriteString("responses=")
	builder.WriteString(fmt.Sprintf("%v", _m.Responses))
	builder.WriteString(", ")
	builder.WriteString("submitted_at=")
	builder.WriteString(_m.SubmittedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// SurveyResponses is a parsable slice of SurveyResponse.
type SurveyResponses []*SurveyResponse
