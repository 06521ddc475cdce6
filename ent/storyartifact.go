// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/dyadlab/fabula/ent/participant"
	"github.com/dyadlab/fabula/ent/storyartifact"
)

// StoryArtifact is the model entity for the StoryArtifact schema.
type StoryArtifact struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// ParticipantID holds the value of the "participant_id" field.
	ParticipantID string `json:"participant_id,omitempty"`
	// PluginType holds the value of the "plugin_type" field.
	PluginType string `json:"plugin_type,omitempty"`
	// Dense per (participant_id, plugin_type); allocated in the same transaction as the blob-write commit
	Version int `json:"version,omitempty"`
	// BlobKey holds the value of the "blob_key" field.
	BlobKey string `json:"blob_key,omitempty"`
	// Bucket holds the value of the "bucket" field.
	Bucket string `json:"bucket,omitempty"`
	// Status holds the value of the "status" field.
	Status storyartifact.Status `json:"status,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// Collaborative round the story was authored in
	Round int `json:"round,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the StoryArtifactQuery when eager-loading is set.
	Edges        StoryArtifactEdges `json:"edges"`
	selectValues sql.SelectValues
}

// StoryArtifactEdges holds the relations/edges for other nodes in the graph.
type StoryArtifactEdges struct {
	// Participant holds the value of the participant edge.
	Participant *Participant `json:"participant,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ParticipantOrErr returns the Participant value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e StoryArtifactEdges) ParticipantOrErr() (*Participant, error) {
	if e.Participant != nil {
		return e.Participant, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: participant.Label}
	}
	return nil, &NotLoadedError{edge: "participant"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*StoryArtifact) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case storyartifact.FieldVersion, storyartifact.FieldRound:
			values[i] = new(sql.NullInt64)
		case storyartifact.FieldID, storyartifact.FieldParticipantID, storyartifact.FieldPluginType, storyartifact.FieldBlobKey, storyartifact.FieldBucket, storyartifact.FieldStatus, storyartifact.FieldName, storyartifact.FieldDescription:
			values[i] = new(sql.NullString)
		case storyartifact.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the StoryArtifact fields.
func (_m *StoryArtifact) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case storyartifact.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case storyartifact.FieldParticipantID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field participant_id", values[i])
			} else if value.Valid {
				_m.ParticipantID = value.String
			}
		case storyartifact.FieldPluginType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field plugin_type", values[i])
			} else if value.Valid {
				_m.PluginType = value.String
			}
		case storyartifact.FieldVersion:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field version", values[i])
			} else if value.Valid {
				_m.Version = int(value.Int64)
			}
		case storyartifact.FieldBlobKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field blob_key", values[i])
			} else if value.Valid {
				_m.BlobKey = value.String
			}
		case storyartifact.FieldBucket:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field bucket", values[i])
			} else if value.Valid {
				_m.Bucket = value.String
			}
		case storyartifact.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = storyartifact.Status(value.String)
			}
		case storyartifact.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case storyartifact.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case storyartifact.FieldRound:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field round", values[i])
			} else if value.Valid {
				_m.Round = int(value.Int64)
			}
		case storyartifact.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the StoryArtifact.
// This includes values selected through modifiers, order, etc.
func (_m *StoryArtifact) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryParticipant queries the "participant" edge of the StoryArtifact entity.
func (_m *StoryArtifact) QueryParticipant() *ParticipantQuery {
	return NewStoryArtifactClient(_m.config).QueryParticipant(_m)
}

// Update returns a builder for updating this StoryArtifact.
// Note that you need to call StoryArtifact.Unwrap() before calling this method if this StoryArtifact
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *StoryArtifact) Update() *StoryArtifactUpdateOne {
	return NewStoryArtifactClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the StoryArtifact entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *StoryArtifact) Unwrap() *StoryArtifact {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: StoryArtifact is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *StoryArtifact) String() string {
	var builder strings.Builder
	builder.WriteString("StoryArtifact(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("participant_id=")
	builder.WriteString(_m.ParticipantID)
	builder.WriteString(", ")
	builder.WriteString("plugin_type=")
	builder.WriteString(_m.PluginType)
	builder.WriteString(", ")
	builder.WriteString("version=")
	builder.WriteString(fmt.Sprintf("%v", _m.Version))
	builder.WriteString(", ")
	builder.WriteString("blob_key=")
	builder.WriteString(_m.BlobKey)
	builder.WriteString(", ")
	builder.WriteString("bucket=")
	builder.WriteString(_m.Bucket)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("round=")
	builder.WriteString(fmt.Sprintf("%v", _m.Round))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// StoryArtifacts is a parsable slice of StoryArtifact.
type StoryArtifacts []*StoryArtifact
