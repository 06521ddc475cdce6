// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/dyadlab/fabula/ent/job"
)

// JobCreate is the builder for creating a Job entity.
type JobCreate struct {
	config
	mutation *JobMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetQueue sets the "queue" field.
func (_c *JobCreate) SetQueue(v string) *JobCreate {
	_c.mutation.SetQueue(v)
	return _c
}

// SetPayload sets the "payload" field.
func (_c *JobCreate) SetPayload(v map[string]interface{}) *JobCreate {
	_c.mutation.SetPayload(v)
	return _c
}

// SetPriority sets the "priority" field.
func (_c *JobCreate) SetPriority(v int) *JobCreate {
	_c.mutation.SetPriority(v)
	return _c
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_c *JobCreate) SetNillablePriority(v *int) *JobCreate {
	if v != nil {
		_c.SetPriority(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *JobCreate) SetStatus(v job.Status) *JobCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *JobCreate) SetNillableStatus(v *job.Status) *JobCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetAttemptsRemaining sets the "attempts_remaining" field.
func (_c *JobCreate) SetAttemptsRemaining(v int) *JobCreate {
	_c.mutation.SetAttemptsRemaining(v)
	return _c
}

// SetNillableAttemptsRemaining sets the "attempts_remaining" field if the given value is not nil.
func (_c *JobCreate) SetNillableAttemptsRemaining(v *int) *JobCreate {
	if v != nil {
		_c.SetAttemptsRemaining(*v)
	}
	return _c
}

// SetMaxAttempts sets the "max_attempts" field.
func (_c *JobCreate) SetMaxAttempts(v int) *JobCreate {
	_c.mutation.SetMaxAttempts(v)
	return _c
}

// SetNillableMaxAttempts sets the "max_attempts" field if the given value is not nil.
func (_c *JobCreate) SetNillableMaxAttempts(v *int) *JobCreate {
	if v != nil {
		_c.SetMaxAttempts(*v)
	}
	return _c
}

// SetNextRunAt sets the "next_run_at" field.
func (_c *JobCreate) SetNextRunAt(v time.Time) *JobCreate {
	_c.mutation.SetNextRunAt(v)
	return _c
}

// SetNillableNextRunAt sets the "next_run_at" field if the given value is not nil.
func (_c *JobCreate) SetNillableNextRunAt(v *time.Time) *JobCreate {
	if v != nil {
		_c.SetNextRunAt(*v)
	}
	return _c
}

// SetProgress sets the "progress" field.
func (_c *JobCreate) SetProgress(v int) *JobCreate {
	_c.mutation.SetProgress(v)
	return _c
}

// SetNillableProgress sets the "progress" field if the given value is not nil.
func (_c *JobCreate) SetNillableProgress(v *int) *JobCreate {
	if v != nil {
		_c.SetProgress(*v)
	}
	return _c
}

// SetResult sets the "result" field.
func (_c *JobCreate) SetResult(v map[string]interface{}) *JobCreate {
	_c.mutation.SetResult(v)
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *JobCreate) SetErrorMessage(v string) *JobCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *JobCreate) SetNillableErrorMessage(v *string) *JobCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetPodID sets the "pod_id" field.
func (_c *JobCreate) SetPodID(v string) *JobCreate {
	_c.mutation.SetPodID(v)
	return _c
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_c *JobCreate) SetNillablePodID(v *string) *JobCreate {
	if v != nil {
		_c.SetPodID(*v)
	}
	return _c
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_c *JobCreate) SetLastHeartbeatAt(v time.Time) *JobCreate {
	_c.mutation.SetLastHeartbeatAt(v)
	return _c
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_c *JobCreate) SetNillableLastHeartbeatAt(v *time.Time) *JobCreate {
	if v != nil {
		_c.SetLastHeartbeatAt(*v)
	}
	return _c
}

// SetRetainUntil sets the "retain_until" field.
func (_c *JobCreate) SetRetainUntil(v time.Time) *JobCreate {
	_c.mutation.SetRetainUntil(v)
	return _c
}

// SetNillableRetainUntil sets the "retain_until" field if the given value is not nil.
func (_c *JobCreate) SetNillableRetainUntil(v *time.Time) *JobCreate {
	if v != nil {
		_c.SetRetainUntil(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *JobCreate) SetCreatedAt(v time.Time) *JobCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *JobCreate) SetNillableCreatedAt(v *time.Time) *JobCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *JobCreate) SetStartedAt(v time.Time) *JobCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *JobCreate) SetNillableStartedAt(v *time.Time) *JobCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *JobCreate) SetCompletedAt(v time.Time) *JobCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *JobCreate) SetNillableCompletedAt(v *time.Time) *JobCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *JobCreate) SetID(v string) *JobCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the JobMutation object of the builder.
func (_c *JobCreate) Mutation() *JobMutation {
	return _c.mutation
}

// Save creates the Job in the database.
func (_c *JobCreate) Save(ctx context.Context) (*Job, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *JobCreate) SaveX(ctx context.Context) *Job {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *JobCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *JobCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *JobCreate) defaults() {
	if _, ok := _c.mutation.Priority(); !ok {
		v := job.DefaultPriority
		_c.mutation.SetPriority(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := job.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.AttemptsRemaining(); !ok {
		v := job.DefaultAttemptsRemaining
		_c.mutation.SetAttemptsRemaining(v)
	}
	if _, ok := _c.mutation.MaxAttempts(); !ok {
		v := job.DefaultMaxAttempts
		_c.mutation.SetMaxAttempts(v)
	}
	if _, ok := _c.mutation.NextRunAt(); !ok {
		v := job.DefaultNextRunAt()
		_c.mutation.SetNextRunAt(v)
	}
	if _, ok := _c.mutation.Progress(); !ok {
		v := job.DefaultProgress
		_c.mutation.SetProgress(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := job.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *JobCreate) check() error {
	if _, ok := _c.mutation.Queue(); !ok {
		return &ValidationError{Name: "queue", err: errors.New(`ent: missing required field "Job.queue"`)}
	}
	if _, ok := _c.mutation.Payload(); !ok {
		return &ValidationError{Name: "payload", err: errors.New(`ent: missing required field "Job.payload"`)}
	}
	if _, ok := _c.mutation.Priority(); !ok {
		return &ValidationError{Name: "priority", err: errors.New(`ent: missing required field "Job.priority"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Job.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := job.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Job.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AttemptsRemaining(); !ok {
		return &ValidationError{Name: "attempts_remaining", err: errors.New(`ent: missing required field "Job.attempts_remaining"`)}
	}
	if _, ok := _c.mutation.MaxAttempts(); !ok {
		return &ValidationError{Name: "max_attempts", err: errors.New(`ent: missing required field "Job.max_attempts"`)}
	}
	if _, ok := _c.mutation.NextRunAt(); !ok {
		return &ValidationError{Name: "next_run_at", err: errors.New(`ent: missing required field "Job.next_run_at"`)}
	}
	if _, ok := _c.mutation.Progress(); !ok {
		return &ValidationError{Name: "progress", err: errors.New(`ent: missing required field "Job.progress"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Job.created_at"`)}
	}
	return nil
}

func (_c *JobCreate) sqlSave(ctx context.Context) (*Job, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Job.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *JobCreate) createSpec() (*Job, *sqlgraph.CreateSpec) {
	var (
		_node = &Job{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(job.Table, sqlgraph.NewFieldSpec(job.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Queue(); ok {
		_spec.SetField(job.FieldQueue, field.TypeString, value)
		_node.Queue = value
	}
	if value, ok := _c.mutation.Payload(); ok {
		_spec.SetField(job.FieldPayload, field.TypeJSON, value)
		_node.Payload = value
	}
	if value, ok := _c.mutation.Priority(); ok {
		_spec.SetField(job.FieldPriority, field.TypeInt, value)
		_node.Priority = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(job.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.AttemptsRemaining(); ok {
		_spec.SetField(job.FieldAttemptsRemaining, field.TypeInt, value)
		_node.AttemptsRemaining = value
	}
	if value, ok := _c.mutation.MaxAttempts(); ok {
		_spec.SetField(job.FieldMaxAttempts, field.TypeInt, value)
		_node.MaxAttempts = value
	}
	if value, ok := _c.mutation.NextRunAt(); ok {
		_spec.SetField(job.FieldNextRunAt, field.TypeTime, value)
		_node.NextRunAt = value
	}
	if value, ok := _c.mutation.Progress(); ok {
		_spec.SetField(job.FieldProgress, field.TypeInt, value)
		_node.Progress = value
	}
	if value, ok := _c.mutation.Result(); ok {
		_spec.SetField(job.FieldResult, field.TypeJSON, value)
		_node.Result = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(job.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.PodID(); ok {
		_spec.SetField(job.FieldPodID, field.TypeString, value)
		_node.PodID = &value
	}
	if value, ok := _c.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(job.FieldLastHeartbeatAt, field.TypeTime, value)
		_node.LastHeartbeatAt = &value
	}
	if value, ok := _c.mutation.RetainUntil(); ok {
		_spec.SetField(job.FieldRetainUntil, field.TypeTime, value)
		_node.RetainUntil = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(job.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(job.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(job.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Job.Create().
//		SetQueue(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.JobUpsert) {
//			SetQueue(v+v).
//		}).
//		Exec(ctx)
func (_c *JobCreate) OnConflict(opts ...sql.ConflictOption) *JobUpsertOne {
	_c.conflict = opts
	return &JobUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Job.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *JobCreate) OnConflictColumns(columns ...string) *JobUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &JobUpsertOne{
		create: _c,
	}
}

type (
	// JobUpsertOne is the builder for "upsert"-ing
	//  one Job node.
	JobUpsertOne struct {
		create *JobCreate
	}

	// JobUpsert is the "OnConflict" setter.
	JobUpsert struct {
		*sql.UpdateSet
	}
)

// SetPriority sets the "priority" field.
func (u *JobUpsert) SetPriority(v int) *JobUpsert {
	u.Set(job.FieldPriority, v)
	return u
}

// UpdatePriority sets the "priority" field to the value that was provided on create.
func (u *JobUpsert) UpdatePriority() *JobUpsert {
	u.SetExcluded(job.FieldPriority)
	return u
}

// AddPriority adds v to the "priority" field.
func (u *JobUpsert) AddPriority(v int) *JobUpsert {
	u.Add(job.FieldPriority, v)
	return u
}

// SetStatus sets the "status" field.
func (u *JobUpsert) SetStatus(v job.Status) *JobUpsert {
	u.Set(job.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *JobUpsert) UpdateStatus() *JobUpsert {
	u.SetExcluded(job.FieldStatus)
	return u
}

// SetAttemptsRemaining sets the "attempts_remaining" field.
func (u *JobUpsert) SetAttemptsRemaining(v int) *JobUpsert {
	u.Set(job.FieldAttemptsRemaining, v)
	return u
}

// UpdateAttemptsRemaining sets the "attempts_remaining" field to the value that was provided on create.
func (u *JobUpsert) UpdateAttemptsRemaining() *JobUpsert {
	u.SetExcluded(job.FieldAttemptsRemaining)
	return u
}

// AddAttemptsRemaining adds v to the "attempts_remaining" field.
func (u *JobUpsert) AddAttemptsRemaining(v int) *JobUpsert {
	u.Add(job.FieldAttemptsRemaining, v)
	return u
}

// SetMaxAttempts sets the "max_attempts" field.
func (u *JobUpsert) SetMaxAttempts(v int) *JobUpsert {
	u.Set(job.FieldMaxAttempts, v)
	return u
}

// UpdateMaxAttempts sets the "max_attempts" field to the value that was provided on create.
func (u *JobUpsert) UpdateMaxAttempts() *JobUpsert {
	u.SetExcluded(job.FieldMaxAttempts)
	return u
}

// AddMaxAttempts adds v to the "max_attempts" field.
func (u *JobUpsert) AddMaxAttempts(v int) *JobUpsert {
	u.Add(job.FieldMaxAttempts, v)
	return u
}

// SetNextRunAt sets the "next_run_at" field.
func (u *JobUpsert) SetNextRunAt(v time.Time) *JobUpsert {
	u.Set(job.FieldNextRunAt, v)
	return u
}

// UpdateNextRunAt sets the "next_run_at" field to the value that was provided on create.
func (u *JobUpsert) UpdateNextRunAt() *JobUpsert {
	u.SetExcluded(job.FieldNextRunAt)
	return u
}

// SetProgress sets the "progress" field.
func (u *JobUpsert) SetProgress(v int) *JobUpsert {
	u.Set(job.FieldProgress, v)
	return u
}

// UpdateProgress sets the "progress" field to the value that was provided on create.
func (u *JobUpsert) UpdateProgress() *JobUpsert {
	u.SetExcluded(job.FieldProgress)
	return u
}

// AddProgress adds v to the "progress" field.
func (u *JobUpsert) AddProgress(v int) *JobUpsert {
	u.Add(job.FieldProgress, v)
	return u
}

// SetResult sets the "result" field.
func (u *JobUpsert) SetResult(v map[string]interface{}) *JobUpsert {
	u.Set(job.FieldResult, v)
	return u
}

// UpdateResult sets the "result" field to the value that was provided on create.
func (u *JobUpsert) UpdateResult() *JobUpsert {
	u.SetExcluded(job.FieldResult)
	return u
}

// ClearResult clears the value of the "result" field.
func (u *JobUpsert) ClearResult() *JobUpsert {
	u.SetNull(job.FieldResult)
	return u
}

// SetErrorMessage sets the "error_message" field.
func (u *JobUpsert) SetErrorMessage(v string) *JobUpsert {
	u.Set(job.FieldErrorMessage, v)
	return u
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *JobUpsert) UpdateErrorMessage() *JobUpsert {
	u.SetExcluded(job.FieldErrorMessage)
	return u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *JobUpsert) ClearErrorMessage() *JobUpsert {
	u.SetNull(job.FieldErrorMessage)
	return u
}

// SetPodID sets the "pod_id" field.
func (u *JobUpsert) SetPodID(v string) *JobUpsert {
	u.Set(job.FieldPodID, v)
	return u
}

// UpdatePodID sets the "pod_id" field to the value that was provided on create.
func (u *JobUpsert) UpdatePodID() *JobUpsert {
	u.SetExcluded(job.FieldPodID)
	return u
}

// ClearPodID clears the value of the "pod_id" field.
func (u *JobUpsert) ClearPodID() *JobUpsert {
	u.SetNull(job.FieldPodID)
	return u
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (u *JobUpsert) SetLastHeartbeatAt(v time.Time) *JobUpsert {
	u.Set(job.FieldLastHeartbeatAt, v)
	return u
}

// UpdateLastHeartbeatAt sets the "last_heartbeat_at" field to the value that was provided on create.
func (u *JobUpsert) UpdateLastHeartbeatAt() *JobUpsert {
	u.SetExcluded(job.FieldLastHeartbeatAt)
	return u
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (u *JobUpsert) ClearLastHeartbeatAt() *JobUpsert {
	u.SetNull(job.FieldLastHeartbeatAt)
	return u
}

// SetRetainUntil sets the "retain_until" field.
func (u *JobUpsert) SetRetainUntil(v time.Time) *JobUpsert {
	u.Set(job.FieldRetainUntil, v)
	return u
}

// UpdateRetainUntil sets the "retain_until" field to the value that was provided on create.
func (u *JobUpsert) UpdateRetainUntil() *JobUpsert {
	u.SetExcluded(job.FieldRetainUntil)
	return u
}

// ClearRetainUntil clears the value of the "retain_until" field.
func (u *JobUpsert) ClearRetainUntil() *JobUpsert {
	u.SetNull(job.FieldRetainUntil)
	return u
}

// SetStartedAt sets the "started_at" field.
func (u *JobUpsert) SetStartedAt(v time.Time) *JobUpsert {
	u.Set(job.FieldStartedAt, v)
	return u
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *JobUpsert) UpdateStartedAt() *JobUpsert {
	u.SetExcluded(job.FieldStartedAt)
	return u
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *JobUpsert) ClearStartedAt() *JobUpsert {
	u.SetNull(job.FieldStartedAt)
	return u
}

// SetCompletedAt sets the "completed_at" field.
func (u *JobUpsert) SetCompletedAt(v time.Time) *JobUpsert {
	u.Set(job.FieldCompletedAt, v)
	return u
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *JobUpsert) UpdateCompletedAt() *JobUpsert {
	u.SetExcluded(job.FieldCompletedAt)
	return u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *JobUpsert) ClearCompletedAt() *JobUpsert {
	u.SetNull(job.FieldCompletedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Job.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(job.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *JobUpsertOne) UpdateNewValues() *JobUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(job.FieldID)
		}
		if _, exists := u.create.mutation.Queue(); exists {
			s.SetIgnore(job.FieldQueue)
		}
		if _, exists := u.create.mutation.Payload(); exists {
			s.SetIgnore(job.FieldPayload)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(job.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Job.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *JobUpsertOne) Ignore() *JobUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *JobUpsertOne) DoNothing() *JobUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the JobCreate.OnConflict
// documentation for more info.
func (u *JobUpsertOne) Update(set func(*JobUpsert)) *JobUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&JobUpsert{UpdateSet: update})
	}))
	return u
}

// SetPriority sets the "priority" field.
func (u *JobUpsertOne) SetPriority(v int) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.SetPriority(v)
	})
}

// AddPriority adds v to the "priority" field.
func (u *JobUpsertOne) AddPriority(v int) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.AddPriority(v)
	})
}

// UpdatePriority sets the "priority" field to the value that was provided on create.
func (u *JobUpsertOne) UpdatePriority() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.UpdatePriority()
	})
}

// SetStatus sets the "status" field.
func (u *JobUpsertOne) SetStatus(v job.Status) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *JobUpsertOne) UpdateStatus() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.UpdateStatus()
	})
}

// SetAttemptsRemaining sets the "attempts_remaining" field.
func (u *JobUpsertOne) SetAttemptsRemaining(v int) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.SetAttemptsRemaining(v)
	})
}

// AddAttemptsRemaining adds v to the "attempts_remaining" field.
func (u *JobUpsertOne) AddAttemptsRemaining(v int) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.AddAttemptsRemaining(v)
	})
}

// UpdateAttemptsRemaining sets the "attempts_remaining" field to the value that was provided on create.
func (u *JobUpsertOne) UpdateAttemptsRemaining() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.UpdateAttemptsRemaining()
	})
}

// SetMaxAttempts sets the "max_attempts" field.
func (u *JobUpsertOne) SetMaxAttempts(v int) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.SetMaxAttempts(v)
	})
}

// AddMaxAttempts adds v to the "max_attempts" field.
func (u *JobUpsertOne) AddMaxAttempts(v int) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.AddMaxAttempts(v)
	})
}

// UpdateMaxAttempts sets the "max_attempts" field to the value that was provided on create.
func (u *JobUpsertOne) UpdateMaxAttempts() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.UpdateMaxAttempts()
	})
}

// SetNextRunAt sets the "next_run_at" field.
func (u *JobUpsertOne) SetNextRunAt(v time.Time) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.SetNextRunAt(v)
	})
}

// UpdateNextRunAt sets the "next_run_at" field to the value that was provided on create.
func (u *JobUpsertOne) UpdateNextRunAt() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.UpdateNextRunAt()
	})
}

// SetProgress sets the "progress" field.
func (u *JobUpsertOne) SetProgress(v int) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.SetProgress(v)
	})
}

// AddProgress adds v to the "progress" field.
func (u *JobUpsertOne) AddProgress(v int) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.AddProgress(v)
	})
}

// UpdateProgress sets the "progress" field to the value that was provided on create.
func (u *JobUpsertOne) UpdateProgress() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.UpdateProgress()
	})
}

// SetResult sets the "result" field.
func (u *JobUpsertOne) SetResult(v map[string]interface{}) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.SetResult(v)
	})
}

// UpdateResult sets the "result" field to the value that was provided on create.
func (u *JobUpsertOne) UpdateResult() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.UpdateResult()
	})
}

// ClearResult clears the value of the "result" field.
func (u *JobUpsertOne) ClearResult() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.ClearResult()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *JobUpsertOne) SetErrorMessage(v string) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *JobUpsertOne) UpdateErrorMessage() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *JobUpsertOne) ClearErrorMessage() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.ClearErrorMessage()
	})
}

// SetPodID sets the "pod_id" field.
func (u *JobUpsertOne) SetPodID(v string) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.SetPodID(v)
	})
}

// UpdatePodID sets the "pod_id" field to the value that was provided on create.
func (u *JobUpsertOne) UpdatePodID() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.UpdatePodID()
	})
}

// ClearPodID clears the value of the "pod_id" field.
func (u *JobUpsertOne) ClearPodID() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.ClearPodID()
	})
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (u *JobUpsertOne) SetLastHeartbeatAt(v time.Time) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.SetLastHeartbeatAt(v)
	})
}

// UpdateLastHeartbeatAt sets the "last_heartbeat_at" field to the value that was provided on create.
func (u *JobUpsertOne) UpdateLastHeartbeatAt() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.UpdateLastHeartbeatAt()
	})
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (u *JobUpsertOne) ClearLastHeartbeatAt() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.ClearLastHeartbeatAt()
	})
}

// SetRetainUntil sets the "retain_until" field.
func (u *JobUpsertOne) SetRetainUntil(v time.Time) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.SetRetainUntil(v)
	})
}

// UpdateRetainUntil sets the "retain_until" field to the value that was provided on create.
func (u *JobUpsertOne) UpdateRetainUntil() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.UpdateRetainUntil()
	})
}

// ClearRetainUntil clears the value of the "retain_until" field.
func (u *JobUpsertOne) ClearRetainUntil() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.ClearRetainUntil()
	})
}

// SetStartedAt sets the "started_at" field.
func (u *JobUpsertOne) SetStartedAt(v time.Time) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.SetStartedAt(v)
	})
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *JobUpsertOne) UpdateStartedAt() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.UpdateStartedAt()
	})
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *JobUpsertOne) ClearStartedAt() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.ClearStartedAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *JobUpsertOne) SetCompletedAt(v time.Time) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *JobUpsertOne) UpdateCompletedAt() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *JobUpsertOne) ClearCompletedAt() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.ClearCompletedAt()
	})
}

// Exec executes the query.
func (u *JobUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for JobCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *JobUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *JobUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: JobUpsertOne.ID is not supported by MySQL driver. Use JobUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *JobUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// JobCreateBulk is the builder for creating many Job entities in bulk.
type JobCreateBulk struct {
	config
	err      error
	builders []*JobCreate
	conflict []sql.ConflictOption
}

// Save creates the Job entities in the database.
func (_c *JobCreateBulk) Save(ctx context.Context) ([]*Job, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Job, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*JobMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *JobCreateBulk) SaveX(ctx context.Context) []*Job {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *JobCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *JobCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Job.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.JobUpsert) {
//			SetQueue(v+v).
//		}).
//		Exec(ctx)
func (_c *JobCreateBulk) OnConflict(opts ...sql.ConflictOption) *JobUpsertBulk {
	_c.conflict = opts
	return &JobUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Job.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *JobCreateBulk) OnConflictColumns(columns ...string) *JobUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &JobUpsertBulk{
		create: _c,
	}
}

// JobUpsertBulk is the builder for "upsert"-ing
// a bulk of Job nodes.
type JobUpsertBulk struct {
	create *JobCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Job.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(job.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *JobUpsertBulk) UpdateNewValues() *JobUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(job.FieldID)
			}
			if _, exists := b.mutation.Queue(); exists {
				s.SetIgnore(job.FieldQueue)
			}
			if _, exists := b.mutation.Payload(); exists {
				s.SetIgnore(job.FieldPayload)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(job.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Job.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *JobUpsertBulk) Ignore() *JobUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *JobUpsertBulk) DoNothing() *JobUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the JobCreateBulk.OnConflict
// documentation for more info.
func (u *JobUpsertBulk) Update(set func(*JobUpsert)) *JobUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&JobUpsert{UpdateSet: update})
	}))
	return u
}

// SetPriority sets the "priority" field.
func (u *JobUpsertBulk) SetPriority(v int) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.SetPriority(v)
	})
}

// AddPriority adds v to the "priority" field.
func (u *JobUpsertBulk) AddPriority(v int) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.AddPriority(v)
	})
}

// UpdatePriority sets the "priority" field to the value that was provided on create.
func (u *JobUpsertBulk) UpdatePriority() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.UpdatePriority()
	})
}

// SetStatus sets the "status" field.
func (u *JobUpsertBulk) SetStatus(v job.Status) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *JobUpsertBulk) UpdateStatus() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.UpdateStatus()
	})
}

// SetAttemptsRemaining sets the "attempts_remaining" field.
func (u *JobUpsertBulk) SetAttemptsRemaining(v int) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.SetAttemptsRemaining(v)
	})
}

// AddAttemptsRemaining adds v to the "attempts_remaining" field.
func (u *JobUpsertBulk) AddAttemptsRemaining(v int) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.AddAttemptsRemaining(v)
	})
}

// UpdateAttemptsRemaining sets the "attempts_remaining" field to the value that was provided on create.
func (u *JobUpsertBulk) UpdateAttemptsRemaining() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.UpdateAttemptsRemaining()
	})
}

// SetMaxAttempts sets the "max_attempts" field.
func (u *JobUpsertBulk) SetMaxAttempts(v int) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.SetMaxAttempts(v)
	})
}

// AddMaxAttempts adds v to the "max_attempts" field.
func (u *JobUpsertBulk) AddMaxAttempts(v int) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.AddMaxAttempts(v)
	})
}

// UpdateMaxAttempts sets the "max_attempts" field to the value that was provided on create.
func (u *JobUpsertBulk) UpdateMaxAttempts() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.UpdateMaxAttempts()
	})
}

// SetNextRunAt sets the "next_run_at" field.
func (u *JobUpsertBulk) SetNextRunAt(v time.Time) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.SetNextRunAt(v)
	})
}

// UpdateNextRunAt sets the "next_run_at" field to the value that was provided on create.
func (u *JobUpsertBulk) UpdateNextRunAt() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.UpdateNextRunAt()
	})
}

// SetProgress sets the "progress" field.
func (u *JobUpsertBulk) SetProgress(v int) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.SetProgress(v)
	})
}

// AddProgress adds v to the "progress" field.
func (u *JobUpsertBulk) AddProgress(v int) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.AddProgress(v)
	})
}

// UpdateProgress sets the "progress" field to the value that was provided on create.
func (u *JobUpsertBulk) UpdateProgress() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.UpdateProgress()
	})
}

// SetResult sets the "result" field.
func (u *JobUpsertBulk) SetResult(v map[string]interface{}) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.SetResult(v)
	})
}

// UpdateResult sets the "result" field to the value that was provided on create.
func (u *JobUpsertBulk) UpdateResult() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.UpdateResult()
	})
}

// ClearResult clears the value of the "result" field.
func (u *JobUpsertBulk) ClearResult() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.ClearResult()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *JobUpsertBulk) SetErrorMessage(v string) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *JobUpsertBulk) UpdateErrorMessage() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *JobUpsertBulk) ClearErrorMessage() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.ClearErrorMessage()
	})
}

// SetPodID sets the "pod_id" field.
func (u *JobUpsertBulk) SetPodID(v string) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.SetPodID(v)
	})
}

// UpdatePodID sets the "pod_id" field to the value that was provided on create.
func (u *JobUpsertBulk) UpdatePodID() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.UpdatePodID()
	})
}

// ClearPodID clears the value of the "pod_id" field.
func (u *JobUpsertBulk) ClearPodID() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.ClearPodID()
	})
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (u *JobUpsertBulk) SetLastHeartbeatAt(v time.Time) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.SetLastHeartbeatAt(v)
	})
}

// UpdateLastHeartbeatAt sets the "last_heartbeat_at" field to the value that was provided on create.
func (u *JobUpsertBulk) UpdateLastHeartbeatAt() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.UpdateLastHeartbeatAt()
	})
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (u *JobUpsertBulk) ClearLastHeartbeatAt() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.ClearLastHeartbeatAt()
	})
}

// SetRetainUntil sets the "retain_until" field.
func (u *JobUpsertBulk) SetRetainUntil(v time.Time) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.SetRetainUntil(v)
	})
}

// UpdateRetainUntil sets the "retain_until" field to the value that was provided on create.
func (u *JobUpsertBulk) UpdateRetainUntil() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.UpdateRetainUntil()
	})
}

// ClearRetainUntil clears the value of the "retain_until" field.
func (u *JobUpsertBulk) ClearRetainUntil() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.ClearRetainUntil()
	})
}

// SetStartedAt sets the "started_at" field.
func (u *JobUpsertBulk) SetStartedAt(v time.Time) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.SetStartedAt(v)
	})
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *JobUpsertBulk) UpdateStartedAt() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.UpdateStartedAt()
	})
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *JobUpsertBulk) ClearStartedAt() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.ClearStartedAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *JobUpsertBulk) SetCompletedAt(v time.Time) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *JobUpsertBulk) UpdateCompletedAt() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *JobUpsertBulk) ClearCompletedAt() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.ClearCompletedAt()
	})
}

// Exec executes the query.
func (u *JobUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the JobCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for JobCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *JobUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
