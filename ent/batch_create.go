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
	"github.com/dyadlab/fabula/ent/batch"
	"github.com/dyadlab/fabula/ent/participant"
	"github.com/dyadlab/fabula/ent/study"
)

// BatchCreate is the builder for creating a Batch entity.
type BatchCreate struct {
	config
	mutation *BatchMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetStudyID sets the "study_id" field.
func (_c *BatchCreate) SetStudyID(v string) *BatchCreate {
	_c.mutation.SetStudyID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *BatchCreate) SetName(v string) *BatchCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *BatchCreate) SetStatus(v batch.Status) *BatchCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *BatchCreate) SetNillableStatus(v *batch.Status) *BatchCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetActorsCreated sets the "actors_created" field.
func (_c *BatchCreate) SetActorsCreated(v int) *BatchCreate {
	_c.mutation.SetActorsCreated(v)
	return _c
}

// SetNillableActorsCreated sets the "actors_created" field if the given value is not nil.
func (_c *BatchCreate) SetNillableActorsCreated(v *int) *BatchCreate {
	if v != nil {
		_c.SetActorsCreated(*v)
	}
	return _c
}

// SetActorsCompleted sets the "actors_completed" field.
func (_c *BatchCreate) SetActorsCompleted(v int) *BatchCreate {
	_c.mutation.SetActorsCompleted(v)
	return _c
}

// SetNillableActorsCompleted sets the "actors_completed" field if the given value is not nil.
func (_c *BatchCreate) SetNillableActorsCompleted(v *int) *BatchCreate {
	if v != nil {
		_c.SetActorsCompleted(*v)
	}
	return _c
}

// SetExportPath sets the "export_path" field.
func (_c *BatchCreate) SetExportPath(v string) *BatchCreate {
	_c.mutation.SetExportPath(v)
	return _c
}

// SetNillableExportPath sets the "export_path" field if the given value is not nil.
func (_c *BatchCreate) SetNillableExportPath(v *string) *BatchCreate {
	if v != nil {
		_c.SetExportPath(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *BatchCreate) SetErrorMessage(v string) *BatchCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *BatchCreate) SetNillableErrorMessage(v *string) *BatchCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetMetadata sets the "metadata" field.
func (_c *BatchCreate) SetMetadata(v map[string]interface{}) *BatchCreate {
	_c.mutation.SetMetadata(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *BatchCreate) SetCreatedAt(v time.Time) *BatchCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *BatchCreate) SetNillableCreatedAt(v *time.Time) *BatchCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *BatchCreate) SetStartedAt(v time.Time) *BatchCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *BatchCreate) SetNillableStartedAt(v *time.Time) *BatchCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *BatchCreate) SetCompletedAt(v time.Time) *BatchCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *BatchCreate) SetNillableCompletedAt(v *time.Time) *BatchCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *BatchCreate) SetID(v string) *BatchCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetStudy sets the "study" edge to the Study entity.
func (_c *BatchCreate) SetStudy(v *Study) *BatchCreate {
	return _c.SetStudyID(v.ID)
}

// AddParticipantIDs adds the "participants" edge to the Participant entity by IDs.
func (_c *BatchCreate) AddParticipantIDs(ids ...string) *BatchCreate {
	_c.mutation.AddParticipantIDs(ids...)
	return _c
}

// AddParticipants adds the "participants" edges to the Participant entity.
func (_c *BatchCreate) AddParticipants(v ...*Participant) *BatchCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddParticipantIDs(ids...)
}

// Mutation returns the BatchMutation object of the builder.
func (_c *BatchCreate) Mutation() *BatchMutation {
	return _c.mutation
}

// Save creates the Batch in the database.
func (_c *BatchCreate) Save(ctx context.Context) (*Batch, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BatchCreate) SaveX(ctx context.Context) *Batch {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BatchCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BatchCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BatchCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := batch.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.ActorsCreated(); !ok {
		v := batch.DefaultActorsCreated
		_c.mutation.SetActorsCreated(v)
	}
	if _, ok := _c.mutation.ActorsCompleted(); !ok {
		v := batch.DefaultActorsCompleted
		_c.mutation.SetActorsCompleted(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := batch.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BatchCreate) check() error {
	if _, ok := _c.mutation.StudyID(); !ok {
		return &ValidationError{Name: "study_id", err: errors.New(`ent: missing required field "Batch.study_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Batch.name"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Batch.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := batch.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Batch.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ActorsCreated(); !ok {
		return &ValidationError{Name: "actors_created", err: errors.New(`ent: missing required field "Batch.actors_created"`)}
	}
	if _, ok := _c.mutation.ActorsCompleted(); !ok {
		return &ValidationError{Name: "actors_completed", err: errors.New(`ent: missing required field "Batch.actors_completed"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Batch.created_at"`)}
	}
	if len(_c.mutation.StudyIDs()) == 0 {
		return &ValidationError{Name: "study", err: errors.New(`ent: missing required edge "Batch.study"`)}
	}
	return nil
}

func (_c *BatchCreate) sqlSave(ctx context.Context) (*Batch, error) {
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
			return nil, fmt.Errorf("unexpected Batch.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *BatchCreate) createSpec() (*Batch, *sqlgraph.CreateSpec) {
	var (
		_node = &Batch{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(batch.Table, sqlgraph.NewFieldSpec(batch.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(batch.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(batch.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ActorsCreated(); ok {
		_spec.SetField(batch.FieldActorsCreated, field.TypeInt, value)
		_node.ActorsCreated = value
	}
	if value, ok := _c.mutation.ActorsCompleted(); ok {
		_spec.SetField(batch.FieldActorsCompleted, field.TypeInt, value)
		_node.ActorsCompleted = value
	}
	if value, ok := _c.mutation.ExportPath(); ok {
		_spec.SetField(batch.FieldExportPath, field.TypeString, value)
		_node.ExportPath = &value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(batch.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.Metadata(); ok {
		_spec.SetField(batch.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(batch.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(batch.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(batch.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if nodes := _c.mutation.StudyIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   batch.StudyTable,
			Columns: []string{batch.StudyColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(study.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.StudyID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ParticipantsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   batch.ParticipantsTable,
			Columns: []string{batch.ParticipantsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(participant.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Batch.Create().
//		SetStudyID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.BatchUpsert) {
//			SetStudyID(v+v).
//		}).
//		Exec(ctx)
func (_c *BatchCreate) OnConflict(opts ...sql.ConflictOption) *BatchUpsertOne {
	_c.conflict = opts
	return &BatchUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Batch.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *BatchCreate) OnConflictColumns(columns ...string) *BatchUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &BatchUpsertOne{
		create: _c,
	}
}

type (
	// BatchUpsertOne is the builder for "upsert"-ing
	//  one Batch node.
	BatchUpsertOne struct {
		create *BatchCreate
	}

	// BatchUpsert is the "OnConflict" setter.
	BatchUpsert struct {
		*sql.UpdateSet
	}
)

// SetName sets the "name" field.
func (u *BatchUpsert) SetName(v string) *BatchUpsert {
	u.Set(batch.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *BatchUpsert) UpdateName() *BatchUpsert {
	u.SetExcluded(batch.FieldName)
	return u
}

// SetStatus sets the "status" field.
func (u *BatchUpsert) SetStatus(v batch.Status) *BatchUpsert {
	u.Set(batch.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *BatchUpsert) UpdateStatus() *BatchUpsert {
	u.SetExcluded(batch.FieldStatus)
	return u
}

// SetActorsCreated sets the "actors_created" field.
func (u *BatchUpsert) SetActorsCreated(v int) *BatchUpsert {
	u.Set(batch.FieldActorsCreated, v)
	return u
}

// UpdateActorsCreated sets the "actors_created" field to the value that was provided on create.
func (u *BatchUpsert) UpdateActorsCreated() *BatchUpsert {
	u.SetExcluded(batch.FieldActorsCreated)
	return u
}

// AddActorsCreated adds v to the "actors_created" field.
func (u *BatchUpsert) AddActorsCreated(v int) *BatchUpsert {
	u.Add(batch.FieldActorsCreated, v)
	return u
}

// SetActorsCompleted sets the "actors_completed" field.
func (u *BatchUpsert) SetActorsCompleted(v int) *BatchUpsert {
	u.Set(batch.FieldActorsCompleted, v)
	return u
}

// UpdateActorsCompleted sets the "actors_completed" field to the value that was provided on create.
func (u *BatchUpsert) UpdateActorsCompleted() *BatchUpsert {
	u.SetExcluded(batch.FieldActorsCompleted)
	return u
}

// AddActorsCompleted adds v to the "actors_completed" field.
func (u *BatchUpsert) AddActorsCompleted(v int) *BatchUpsert {
	u.Add(batch.FieldActorsCompleted, v)
	return u
}

// SetExportPath sets the "export_path" field.
func (u *BatchUpsert) SetExportPath(v string) *BatchUpsert {
	u.Set(batch.FieldExportPath, v)
	return u
}

// UpdateExportPath sets the "export_path" field to the value that was provided on create.
func (u *BatchUpsert) UpdateExportPath() *BatchUpsert {
	u.SetExcluded(batch.FieldExportPath)
	return u
}

// ClearExportPath clears the value of the "export_path" field.
func (u *BatchUpsert) ClearExportPath() *BatchUpsert {
	u.SetNull(batch.FieldExportPath)
	return u
}

// SetErrorMessage sets the "error_message" field.
func (u *BatchUpsert) SetErrorMessage(v string) *BatchUpsert {
	u.Set(batch.FieldErrorMessage, v)
	return u
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *BatchUpsert) UpdateErrorMessage() *BatchUpsert {
	u.SetExcluded(batch.FieldErrorMessage)
	return u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *BatchUpsert) ClearErrorMessage() *BatchUpsert {
	u.SetNull(batch.FieldErrorMessage)
	return u
}

// SetMetadata sets the "metadata" field.
func (u *BatchUpsert) SetMetadata(v map[string]interface{}) *BatchUpsert {
	u.Set(batch.FieldMetadata, v)
	return u
}

// UpdateMetadata sets the "metadata" field to the value that was provided on create.
func (u *BatchUpsert) UpdateMetadata() *BatchUpsert {
	u.SetExcluded(batch.FieldMetadata)
	return u
}

// ClearMetadata clears the value of the "metadata" field.
func (u *BatchUpsert) ClearMetadata() *BatchUpsert {
	u.SetNull(batch.FieldMetadata)
	return u
}

// SetStartedAt sets the "started_at" field.
func (u *BatchUpsert) SetStartedAt(v time.Time) *BatchUpsert {
	u.Set(batch.FieldStartedAt, v)
	return u
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *BatchUpsert) UpdateStartedAt() *BatchUpsert {
	u.SetExcluded(batch.FieldStartedAt)
	return u
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *BatchUpsert) ClearStartedAt() *BatchUpsert {
	u.SetNull(batch.FieldStartedAt)
	return u
}

// SetCompletedAt sets the "completed_at" field.
func (u *BatchUpsert) SetCompletedAt(v time.Time) *BatchUpsert {
	u.Set(batch.FieldCompletedAt, v)
	return u
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *BatchUpsert) UpdateCompletedAt() *BatchUpsert {
	u.SetExcluded(batch.FieldCompletedAt)
	return u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *BatchUpsert) ClearCompletedAt() *BatchUpsert {
	u.SetNull(batch.FieldCompletedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Batch.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(batch.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *BatchUpsertOne) UpdateNewValues() *BatchUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(batch.FieldID)
		}
		if _, exists := u.create.mutation.StudyID(); exists {
			s.SetIgnore(batch.FieldStudyID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(batch.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Batch.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *BatchUpsertOne) Ignore() *BatchUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *BatchUpsertOne) DoNothing() *BatchUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the BatchCreate.OnConflict
// documentation for more info.
func (u *BatchUpsertOne) Update(set func(*BatchUpsert)) *BatchUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&BatchUpsert{UpdateSet: update})
	}))
	return u
}

// SetName sets the "name" field.
func (u *BatchUpsertOne) SetName(v string) *BatchUpsertOne {
	return u.Update(func(s *BatchUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *BatchUpsertOne) UpdateName() *BatchUpsertOne {
	return u.Update(func(s *BatchUpsert) {
		s.UpdateName()
	})
}

// SetStatus sets the "status" field.
func (u *BatchUpsertOne) SetStatus(v batch.Status) *BatchUpsertOne {
	return u.Update(func(s *BatchUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *BatchUpsertOne) UpdateStatus() *BatchUpsertOne {
	return u.Update(func(s *BatchUpsert) {
		s.UpdateStatus()
	})
}

// SetActorsCreated sets the "actors_created" field.
func (u *BatchUpsertOne) SetActorsCreated(v int) *BatchUpsertOne {
	return u.Update(func(s *BatchUpsert) {
		s.SetActorsCreated(v)
	})
}

// AddActorsCreated adds v to the "actors_created" field.
func (u *BatchUpsertOne) AddActorsCreated(v int) *BatchUpsertOne {
	return u.Update(func(s *BatchUpsert) {
		s.AddActorsCreated(v)
	})
}

// UpdateActorsCreated sets the "actors_created" field to the value that was provided on create.
func (u *BatchUpsertOne) UpdateActorsCreated() *BatchUpsertOne {
	return u.Update(func(s *BatchUpsert) {
		s.UpdateActorsCreated()
	})
}

// SetActorsCompleted sets the "actors_completed" field.
func (u *BatchUpsertOne) SetActorsCompleted(v int) *BatchUpsertOne {
	return u.Update(func(s *BatchUpsert) {
		s.SetActorsCompleted(v)
	})
}

// AddActorsCompleted adds v to the "actors_completed" field.
func (u *BatchUpsertOne) AddActorsCompleted(v int) *BatchUpsertOne {
	return u.Update(func(s *BatchUpsert) {
		s.AddActorsCompleted(v)
	})
}

// UpdateActorsCompleted sets the "actors_completed" field to the value that was provided on create.
func (u *BatchUpsertOne) UpdateActorsCompleted() *BatchUpsertOne {
	return u.Update(func(s *BatchUpsert) {
		s.UpdateActorsCompleted()
	})
}

// SetExportPath sets the "export_path" field.
func (u *BatchUpsertOne) SetExportPath(v string) *BatchUpsertOne {
	return u.Update(func(s *BatchUpsert) {
		s.SetExportPath(v)
	})
}

// UpdateExportPath sets the "export_path" field to the value that was provided on create.
func (u *BatchUpsertOne) UpdateExportPath() *BatchUpsertOne {
	return u.Update(func(s *BatchUpsert) {
		s.UpdateExportPath()
	})
}

// ClearExportPath clears the value of the "export_path" field.
func (u *BatchUpsertOne) ClearExportPath() *BatchUpsertOne {
	return u.Update(func(s *BatchUpsert) {
		s.ClearExportPath()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *BatchUpsertOne) SetErrorMessage(v string) *BatchUpsertOne {
	return u.Update(func(s *BatchUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *BatchUpsertOne) UpdateErrorMessage() *BatchUpsertOne {
	return u.Update(func(s *BatchUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *BatchUpsertOne) ClearErrorMessage() *BatchUpsertOne {
	return u.Update(func(s *BatchUpsert) {
		s.ClearErrorMessage()
	})
}

// SetMetadata sets the "metadata" field.
func (u *BatchUpsertOne) SetMetadata(v map[string]interface{}) *BatchUpsertOne {
	return u.Update(func(s *BatchUpsert) {
		s.SetMetadata(v)
	})
}

// UpdateMetadata sets the "metadata" field to the value that was provided on create.
func (u *BatchUpsertOne) UpdateMetadata() *BatchUpsertOne {
	return u.Update(func(s *BatchUpsert) {
		s.UpdateMetadata()
	})
}

// ClearMetadata clears the value of the "metadata" field.
func (u *BatchUpsertOne) ClearMetadata() *BatchUpsertOne {
	return u.Update(func(s *BatchUpsert) {
		s.ClearMetadata()
	})
}

// SetStartedAt sets the "started_at" field.
func (u *BatchUpsertOne) SetStartedAt(v time.Time) *BatchUpsertOne {
	return u.Update(func(s *BatchUpsert) {
		s.SetStartedAt(v)
	})
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *BatchUpsertOne) UpdateStartedAt() *BatchUpsertOne {
	return u.Update(func(s *BatchUpsert) {
		s.UpdateStartedAt()
	})
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *BatchUpsertOne) ClearStartedAt() *BatchUpsertOne {
	return u.Update(func(s *BatchUpsert) {
		s.ClearStartedAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *BatchUpsertOne) SetCompletedAt(v time.Time) *BatchUpsertOne {
	return u.Update(func(s *BatchUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *BatchUpsertOne) UpdateCompletedAt() *BatchUpsertOne {
	return u.Update(func(s *BatchUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *BatchUpsertOne) ClearCompletedAt() *BatchUpsertOne {
	return u.Update(func(s *BatchUpsert) {
		s.ClearCompletedAt()
	})
}

// Exec executes the query.
func (u *BatchUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for BatchCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *BatchUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *BatchUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: BatchUpsertOne.ID is not supported by MySQL driver. Use BatchUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *BatchUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// BatchCreateBulk is the builder for creating many Batch entities in bulk.
type BatchCreateBulk struct {
	config
	err      error
	builders []*BatchCreate
	conflict []sql.ConflictOption
}

// Save creates the Batch entities in the database.
func (_c *BatchCreateBulk) Save(ctx context.Context) ([]*Batch, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Batch, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BatchMutation)
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
func (_c *BatchCreateBulk) SaveX(ctx context.Context) []*Batch {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BatchCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BatchCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Batch.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.BatchUpsert) {
//			SetStudyID(v+v).
//		}).
//		Exec(ctx)
func (_c *BatchCreateBulk) OnConflict(opts ...sql.ConflictOption) *BatchUpsertBulk {
	_c.conflict = opts
	return &BatchUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Batch.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *BatchCreateBulk) OnConflictColumns(columns ...string) *BatchUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &BatchUpsertBulk{
		create: _c,
	}
}

// BatchUpsertBulk is the builder for "upsert"-ing
// a bulk of Batch nodes.
type BatchUpsertBulk struct {
	create *BatchCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Batch.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(batch.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *BatchUpsertBulk) UpdateNewValues() *BatchUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(batch.FieldID)
			}
			if _, exists := b.mutation.StudyID(); exists {
				s.SetIgnore(batch.FieldStudyID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(batch.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Batch.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *BatchUpsertBulk) Ignore() *BatchUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *BatchUpsertBulk) DoNothing() *BatchUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the BatchCreateBulk.OnConflict
// documentation for more info.
func (u *BatchUpsertBulk) Update(set func(*BatchUpsert)) *BatchUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&BatchUpsert{UpdateSet: update})
	}))
	return u
}

// SetName sets the "name" field.
func (u *BatchUpsertBulk) SetName(v string) *BatchUpsertBulk {
	return u.Update(func(s *BatchUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *BatchUpsertBulk) UpdateName() *BatchUpsertBulk {
	return u.Update(func(s *BatchUpsert) {
		s.UpdateName()
	})
}

// SetStatus sets the "status" field.
func (u *BatchUpsertBulk) SetStatus(v batch.Status) *BatchUpsertBulk {
	return u.Update(func(s *BatchUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *BatchUpsertBulk) UpdateStatus() *BatchUpsertBulk {
	return u.Update(func(s *BatchUpsert) {
		s.UpdateStatus()
	})
}

// SetActorsCreated sets the "actors_created" field.
func (u *BatchUpsertBulk) SetActorsCreated(v int) *BatchUpsertBulk {
	return u.Update(func(s *BatchUpsert) {
		s.SetActorsCreated(v)
	})
}

// AddActorsCreated adds v to the "actors_created" field.
func (u *BatchUpsertBulk) AddActorsCreated(v int) *BatchUpsertBulk {
	return u.Update(func(s *BatchUpsert) {
		s.AddActorsCreated(v)
	})
}

// UpdateActorsCreated sets the "actors_created" field to the value that was provided on create.
func (u *BatchUpsertBulk) UpdateActorsCreated() *BatchUpsertBulk {
	return u.Update(func(s *BatchUpsert) {
		s.UpdateActorsCreated()
	})
}

// SetActorsCompleted sets the "actors_completed" field.
func (u *BatchUpsertBulk) SetActorsCompleted(v int) *BatchUpsertBulk {
	return u.Update(func(s *BatchUpsert) {
		s.SetActorsCompleted(v)
	})
}

// AddActorsCompleted adds v to the "actors_completed" field.
func (u *BatchUpsertBulk) AddActorsCompleted(v int) *BatchUpsertBulk {
	return u.Update(func(s *BatchUpsert) {
		s.AddActorsCompleted(v)
	})
}

// UpdateActorsCompleted sets the "actors_completed" field to the value that was provided on create.
func (u *BatchUpsertBulk) UpdateActorsCompleted() *BatchUpsertBulk {
	return u.Update(func(s *BatchUpsert) {
		s.UpdateActorsCompleted()
	})
}

// SetExportPath sets the "export_path" field.
func (u *BatchUpsertBulk) SetExportPath(v string) *BatchUpsertBulk {
	return u.Update(func(s *BatchUpsert) {
		s.SetExportPath(v)
	})
}

// UpdateExportPath sets the "export_path" field to the value that was provided on create.
func (u *BatchUpsertBulk) UpdateExportPath() *BatchUpsertBulk {
	return u.Update(func(s *BatchUpsert) {
		s.UpdateExportPath()
	})
}

// ClearExportPath clears the value of the "export_path" field.
func (u *BatchUpsertBulk) ClearExportPath() *BatchUpsertBulk {
	return u.Update(func(s *BatchUpsert) {
		s.ClearExportPath()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *BatchUpsertBulk) SetErrorMessage(v string) *BatchUpsertBulk {
	return u.Update(func(s *BatchUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *BatchUpsertBulk) UpdateErrorMessage() *BatchUpsertBulk {
	return u.Update(func(s *BatchUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *BatchUpsertBulk) ClearErrorMessage() *BatchUpsertBulk {
	return u.Update(func(s *BatchUpsert) {
		s.ClearErrorMessage()
	})
}

// SetMetadata sets the "metadata" field.
func (u *BatchUpsertBulk) SetMetadata(v map[string]interface{}) *BatchUpsertBulk {
	return u.Update(func(s *BatchUpsert) {
		s.SetMetadata(v)
	})
}

// UpdateMetadata sets the "metadata" field to the value that was provided on create.
func (u *BatchUpsertBulk) UpdateMetadata() *BatchUpsertBulk {
	return u.Update(func(s *BatchUpsert) {
		s.UpdateMetadata()
	})
}

// ClearMetadata clears the value of the "metadata" field.
func (u *BatchUpsertBulk) ClearMetadata() *BatchUpsertBulk {
	return u.Update(func(s *BatchUpsert) {
		s.ClearMetadata()
	})
}

// SetStartedAt sets the "started_at" field.
func (u *BatchUpsertBulk) SetStartedAt(v time.Time) *BatchUpsertBulk {
	return u.Update(func(s *BatchUpsert) {
		s.SetStartedAt(v)
	})
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *BatchUpsertBulk) UpdateStartedAt() *BatchUpsertBulk {
	return u.Update(func(s *BatchUpsert) {
		s.UpdateStartedAt()
	})
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *BatchUpsertBulk) ClearStartedAt() *BatchUpsertBulk {
	return u.Update(func(s *BatchUpsert) {
		s.ClearStartedAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *BatchUpsertBulk) SetCompletedAt(v time.Time) *BatchUpsertBulk {
	return u.Update(func(s *BatchUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *BatchUpsertBulk) UpdateCompletedAt() *BatchUpsertBulk {
	return u.Update(func(s *BatchUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *BatchUpsertBulk) ClearCompletedAt() *BatchUpsertBulk {
	return u.Update(func(s *BatchUpsert) {
		s.ClearCompletedAt()
	})
}

// Exec executes the query.
func (u *BatchUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the BatchCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for BatchCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *BatchUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
