// Code generated by ent, DO NOT EDIT.

package hybridsession

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/dyadlab/fabula/pkg/models"
)

const (
	// Label holds the string label denoting the hybridsession type in the database.
	Label = "hybrid_session"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "session_id"
	// FieldStudyID holds the string denoting the study_id field in the database.
	FieldStudyID = "study_id"
	// FieldParticipantA holds the string denoting the participant_a field in the database.
	FieldParticipantA = "participant_a"
	// FieldParticipantB holds the string denoting the participant_b field in the database.
	FieldParticipantB = "participant_b"
	// FieldActorTypeA holds the string denoting the actor_type_a field in the database.
	FieldActorTypeA = "actor_type_a"
	// FieldActorTypeB holds the string denoting the actor_type_b field in the database.
	FieldActorTypeB = "actor_type_b"
	// FieldConfig holds the string denoting the config field in the database.
	FieldConfig = "config"
	// FieldCompletions holds the string denoting the completions field in the database.
	FieldCompletions = "completions"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// Table holds the table name of the hybridsession in the database.
	Table = "hybrid_sessions"
)

// Columns holds all SQL columns for hybridsession fields.
var Columns = []string{
	FieldID,
	FieldStudyID,
	FieldParticipantA,
	FieldParticipantB,
	FieldActorTypeA,
	FieldActorTypeB,
	FieldConfig,
	FieldCompletions,
	FieldStartedAt,
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
	// DefaultCompletions holds the default value on creation for the "completions" field.
	DefaultCompletions []models.PhaseCompletion
	// DefaultStartedAt holds the default value on creation for the "started_at" field.
	DefaultStartedAt func() time.Time
)

// ActorTypeA defines the type for the "actor_type_a" enum field.
type ActorTypeA string

// ActorTypeA values.
const (
	ActorTypeAHuman     ActorTypeA = "human"
	ActorTypeASynthetic ActorTypeA = "synthetic"
)

func (actor_type_a ActorTypeA) String() string {
	return string(actor_type_a)
}

// ActorTypeAValidator is a validator for the "actor_type_a" field enum values. It is called by the builders before save.
func ActorTypeAValidator(actor_type_a ActorTypeA) error {
	switch actor_type_a {
	case ActorTypeAHuman, ActorTypeASynthetic:
		return nil
	default:
		return fmt.Errorf("hybridsession: invalid enum value for actor_type_a field: %q", actor_type_a)
	}
}

// ActorTypeB defines the type for the "actor_type_b" enum field.
type ActorTypeB string

// ActorTypeB values.
const (
	ActorTypeBHuman     ActorTypeB = "human"
	ActorTypeBSynthetic ActorTypeB = "synthetic"
)

func (actor_type_b ActorTypeB) String() string {
	return string(actor_type_b)
}

// ActorTypeBValidator is a validator for the "actor_type_b" field enum values. It is called by the builders before save.
func ActorTypeBValidator(actor_type_b ActorTypeB) error {
	switch actor_type_b {
	case ActorTypeBHuman, ActorTypeBSynthetic:
		return nil
	default:
		return fmt.Errorf("hybridsession: invalid enum value for actor_type_b field: %q", actor_type_b)
	}
}

// OrderOption defines the ordering options for the HybridSession queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByStudyID orders the results by the study_id field.
func ByStudyID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStudyID, opts...).ToFunc()
}

// ByParticipantA orders the results by the participant_a field.
func ByParticipantA(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldParticipantA, opts...).ToFunc()
}

// ByParticipantB orders the results by the participant_b field.
func ByParticipantB(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldParticipantB, opts...).ToFunc()
}

// ByActorTypeA orders the results by the actor_type_a field.
func ByActorTypeA(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActorTypeA, opts...).ToFunc()
}

// ByActorTypeB orders the results by the actor_type_b field.
func ByActorTypeB(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActorTypeB, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}
