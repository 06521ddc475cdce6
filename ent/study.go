// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/dyadlab/fabula/ent/study"
)

// Study is the model entity for the Study schema.
type Study struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// Status holds the value of the "status" field.
	Status study.Status `json:"status,omitempty"`
	// Study configuration document (execution mode, collaboration protocol, time limits)
	Config map[string]interface{} `json:"config,omitempty"`
	// Researcher who created the study
	OwnerID *string `json:"owner_id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the StudyQuery when eager-loading is set.
	Edges        StudyEdges `json:"edges"`
	selectValues sql.SelectValues
}

// StudyEdges holds the relations/edges for other nodes in the graph.
type StudyEdges struct {
	// Conditions holds the value of the conditions edge.
	Conditions []*Condition `json:"conditions,omitempty"`
	// Batches holds the value of the batches edge.
	Batches []*Batch `json:"batches,omitempty"`
	// Participants holds the value of the participants edge.
	Participants []*Participant `json:"participants,omitempty"`
	// Surveys holds the value of the surveys edge.
	Surveys []*Survey `json:"surveys,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [4]bool
}

// ConditionsOrErr returns the Conditions value or an error if the edge
// was not loaded in eager-loading.
func (e StudyEdges) ConditionsOrErr() ([]*Condition, error) {
	if e.loadedTypes[0] {
		return e.Conditions, nil
	}
	return nil, &NotLoadedError{edge: "conditions"}
}

// BatchesOrErr returns the Batches value or an error if the edge
// was not loaded in eager-loading.
func (e StudyEdges) BatchesOrErr() ([]*Batch, error) {
	if e.loadedTypes[1] {
		return e.Batches, nil
	}
	return nil, &NotLoadedError{edge: "batches"}
}

// ParticipantsOrErr returns the Participants value or an error if the edge
// was not loaded in eager-loading.
func (e StudyEdges) ParticipantsOrErr() ([]*Participant, error) {
	if e.loadedTypes[2] {
		return e.Participants, nil
	}
	return nil, &NotLoadedError{edge: "participants"}
}

// SurveysOrErr returns the Surveys value or an error if the edge
// was not loaded in eager-loading.
func (e StudyEdges) SurveysOrErr() ([]*Survey, error) {
	if e.loadedTypes[3] {
		return e.Surveys, nil
	}
	return nil, &NotLoadedError{edge: "surveys"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Study) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case study.FieldConfig:
			values[i] = new([]byte)
		case study.FieldID, study.FieldName, study.FieldDescription, study.FieldStatus, study.FieldOwnerID:
			values[i] = new(sql.NullString)
		case study.FieldCreatedAt, study.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Study fields.
func (_m *Study) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case study.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case study.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case study.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case study.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = study.Status(value.String)
			}
		case study.FieldConfig:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field config", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Config); err != nil {
					return fmt.Errorf("unmarshal field config: %w", err)
				}
			}
		case study.FieldOwnerID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field owner_id", values[i])
			} else if value.Valid {
				_m.OwnerID = new(string)
				*_m.OwnerID = value.String
			}
		case study.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case study.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Study.
// This includes values selected through modifiers, order, etc.
func (_m *Study) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryConditions queries the "conditions" edge of the Study entity.
func (_m *Study) QueryConditions() *ConditionQuery {
	return NewStudyClient(_m.config).QueryConditions(_m)
}

// QueryBatches queries the "batches" edge of the Study entity.
func (_m *Study) QueryBatches() *BatchQuery {
	return NewStudyClient(_m.config).QueryBatches(_m)
}

// QueryParticipants queries the "participants" edge of the Study entity.
func (_m *Study) QueryParticipants() *ParticipantQuery {
	return NewStudyClient(_m.config).QueryParticipants(_m)
}

// QuerySurveys queries the "surveys" edge of the Study entity.
func (_m *Study) QuerySurveys() *SurveyQuery {
	return NewStudyClient(_m.config).QuerySurveys(_m)
}

// Update returns a builder for updating this Study.
// Note that you need to call Study.Unwrap() before calling this method if this Study
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Study) Update() *StudyUpdateOne {
	return NewStudyClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Study entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Study) Unwrap() *Study {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Study is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Study) String() string {
	var builder strings.Builder
	builder.WriteString("Study(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("config=")
	builder.WriteString(fmt.Sprintf("%v", _m.Config))
	builder.WriteString(", ")
	if v := _m.OwnerID; v != nil {
		builder.WriteString("owner_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Studies is a parsable slice of Study.
type Studies []*Study
