// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/dyadlab/fabula/ent/hybridsession"
	"github.com/dyadlab/fabula/pkg/models"
)

// HybridSession is the model entity for the HybridSession schema.
type HybridSession struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// StudyID holds the value of the "study_id" field.
	StudyID string `json:"study_id,omitempty"`
	// ParticipantA holds the value of the "participant_a" field.
	ParticipantA string `json:"participant_a,omitempty"`
	// ParticipantB holds the value of the "participant_b" field.
	ParticipantB string `json:"participant_b,omitempty"`
	// ActorTypeA holds the value of the "actor_type_a" field.
	ActorTypeA hybridsession.ActorTypeA `json:"actor_type_a,omitempty"`
	// ActorTypeB holds the value of the "actor_type_b" field.
	ActorTypeB hybridsession.ActorTypeB `json:"actor_type_b,omitempty"`
	// Study config snapshot taken at session start
	Config map[string]interface{} `json:"config,omitempty"`
	// Completions holds the value of the "completions" field.
	Completions []models.PhaseCompletion `json:"completions,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt time.Time `json:"started_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt  *time.Time `json:"completed_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*HybridSession) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case hybridsession.FieldConfig, hybridsession.FieldCompletions:
			values[i] = new([]byte)
		case hybridsession.FieldID, hybridsession.FieldStudyID, hybridsession.FieldParticipantA, hybridsession.FieldParticipantB, hybridsession.FieldActorTypeA, hybridsession.FieldActorTypeB:
			values[i] = new(sql.NullString)
		case hybridsession.FieldStartedAt, hybridsession.FieldCompletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the HybridSession fields.
func (_m *HybridSession) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case hybridsession.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case hybridsession.FieldStudyID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field study_id", values[i])
			} else if value.Valid {
				_m.StudyID = value.String
			}
		case hybridsession.FieldParticipantA:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field participant_a", values[i])
			} else if value.Valid {
				_m.ParticipantA = value.String
			}
		case hybridsession.FieldParticipantB:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field participant_b", values[i])
			} else if value.Valid {
				_m.ParticipantB = value.String
			}
		case hybridsession.FieldActorTypeA:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field actor_type_a", values[i])
			} else if value.Valid {
				_m.ActorTypeA = hybridsession.ActorTypeA(value.String)
			}
		case hybridsession.FieldActorTypeB:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field actor_type_b", values[i])
			} else if value.Valid {
				_m.ActorTypeB = hybridsession.ActorTypeB(value.String)
			}
		case hybridsession.FieldConfig:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field config", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Config); err != nil {
					return fmt.Errorf("unmarshal field config: %w", err)
				}
			}
		case hybridsession.FieldCompletions:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field completions", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Completions); err != nil {
					return fmt.Errorf("unmarshal field completions: %w", err)
				}
			}
		case hybridsession.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = value.Time
			}
		case hybridsession.FieldCompletedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the HybridSession.
// This includes values selected through modifiers, order, etc.
func (_m *HybridSession) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this HybridSession.
// Note that you need to call HybridSession.Unwrap() before calling this method if this HybridSession
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *HybridSession) Update() *HybridSessionUpdateOne {
	return NewHybridSessionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the HybridSession entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *HybridSession) Unwrap() *HybridSession {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: HybridSession is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *HybridSession) String() string {
	var builder strings.Builder
	builder.WriteString("HybridSession(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("study_id=")
	builder.WriteString(_m.StudyID)
	builder.WriteString(", ")
	builder.WriteString("participant_a=")
	builder.WriteString(_m.ParticipantA)
	builder.WriteString(", ")
	builder.WriteString("participant_b=")
	builder.WriteString(_m.ParticipantB)
	builder.WriteString(", ")
	builder.WriteString("actor_type_a=")
	builder.WriteString(fmt.Sprintf("%v", _m.ActorTypeA))
	builder.WriteString(", ")
	builder.WriteString("actor_type_b=")
	builder.WriteString(fmt.Sprintf("%v", _m.ActorTypeB))
	builder.WriteString(", ")
	builder.WriteString("config=")
	builder.WriteString(fmt.Sprintf("%v", _m.Config))
	builder.WriteString(", ")
	builder.WriteString("completions=")
	builder.WriteString(fmt.Sprintf("%v", _m.Completions))
	builder.WriteString(", ")
	builder.WriteString("started_at=")
	builder.WriteString(_m.StartedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// HybridSessions is a parsable slice of HybridSession.
type HybridSessions []*HybridSession
