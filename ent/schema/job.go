package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Job holds the schema definition for the Job entity — one row per queued
// unit of work. The broker claims pending rows with FOR UPDATE SKIP LOCKED.
type Job struct {
	ent.Schema
}

// Fields of the Job.
func (Job) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("job_id").
			Unique().
			Immutable().
			Comment("Caller-supplied for idempotent enqueue, otherwise a UUID"),
		field.String("queue").
			Immutable(),
		field.JSON("payload", map[string]interface{}{}).
			Immutable(),
		field.Int("priority").
			Default(10).
			Comment("Lower runs first; ties by enqueue time"),
		field.Enum("status").
			Values("pending", "active", "completed", "failed").
			Default("pending"),
		field.Int("attempts_remaining").
			Default(3),
		field.Int("max_attempts").
			Default(3),
		field.Time("next_run_at").
			Default(time.Now).
			Comment("Pending jobs with next_run_at in the future are delayed (backoff)"),
		field.Int("progress").
			Default(0),
		field.JSON("result", map[string]interface{}{}).
			Optional(),
		field.String("error_message").
			Optional().
			Nillable(),
		field.String("pod_id").
			Optional().
			Nillable().
			Comment("For multi-replica coordination"),
		field.Time("last_heartbeat_at").
			Optional().
			Nillable().
			Comment("For orphan detection"),
		field.Time("retain_until").
			Optional().
			Nillable().
			Comment("Terminal rows past this instant are swept by the cleanup service"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("started_at").
			Optional().
			Nillable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

// Indexes of the Job.
func (Job) Indexes() []ent.Index {
	return []ent.Index{
		// Claim scan: pending jobs of a queue ordered by priority then age
		index.Fields("queue", "status", "priority", "created_at"),
		index.Fields("status", "next_run_at"),
		index.Fields("status", "last_heartbeat_at"),
		index.Fields("retain_until"),
	}
}
