// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/dyadlab/fabula/ent/batch"
	"github.com/dyadlab/fabula/ent/participant"
	"github.com/dyadlab/fabula/ent/predicate"
)

// BatchUpdate is the builder for updating Batch entities.
type BatchUpdate struct {
	config
	hooks    []Hook
	mutation *BatchMutation
}

// Where appends a list predicates to the BatchUpdate builder.
func (_u *BatchUpdate) Where(ps ...predicate.Batch) *BatchUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *BatchUpdate) SetName(v string) *BatchUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *BatchUpdate) SetNillableName(v *string) *BatchUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *BatchUpdate) SetStatus(v batch.Status) *BatchUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *BatchUpdate) SetNillableStatus(v *batch.Status) *BatchUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetActorsCreated sets the "actors_created" field.
func (_u *BatchUpdate) SetActorsCreated(v int) *BatchUpdate {
	_u.mutation.ResetActorsCreated()
	_u.mutation.SetActorsCreated(v)
	return _u
}

// SetNillableActorsCreated sets the "actors_created" field if the given value is not nil.
func (_u *BatchUpdate) SetNillableActorsCreated(v *int) *BatchUpdate {
	if v != nil {
		_u.SetActorsCreated(*v)
	}
	return _u
}

// AddActorsCreated adds value to the "actors_created" field.
func (_u *BatchUpdate) AddActorsCreated(v int) *BatchUpdate {
	_u.mutation.AddActorsCreated(v)
	return _u
}

// SetActorsCompleted sets the "actors_completed" field.
func (_u *BatchUpdate) SetActorsCompleted(v int) *BatchUpdate {
	_u.mutation.ResetActorsCompleted()
	_u.mutation.SetActorsCompleted(v)
	return _u
}

// SetNillableActorsCompleted sets the "actors_completed" field if the given value is not nil.
func (_u *BatchUpdate) SetNillableActorsCompleted(v *int) *BatchUpdate {
	if v != nil {
		_u.SetActorsCompleted(*v)
	}
	return _u
}

// AddActorsCompleted adds value to the "actors_completed" field.
func (_u *BatchUpdate) AddActorsCompleted(v int) *BatchUpdate {
	_u.mutation.AddActorsCompleted(v)
	return _u
}

// SetExportPath sets the "export_path" field.
func (_u *BatchUpdate) SetExportPath(v string) *BatchUpdate {
	_u.mutation.SetExportPath(v)
	return _u
}

// SetNillableExportPath sets the "export_path" field if the given value is not nil.
func (_u *BatchUpdate) SetNillableExportPath(v *string) *BatchUpdate {
	if v != nil {
		_u.SetExportPath(*v)
	}
	return _u
}

// ClearExportPath clears the value of the "export_path" field.
func (_u *BatchUpdate) ClearExportPath() *BatchUpdate {
	_u.mutation.ClearExportPath()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *BatchUpdate) SetErrorMessage(v string) *BatchUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *BatchUpdate) SetNillableErrorMessage(v *string) *BatchUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *BatchUpdate) ClearErrorMessage() *BatchUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *BatchUpdate) SetMetadata(v map[string]interface{}) *BatchUpdate {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *BatchUpdate) ClearMetadata() *BatchUpdate {
	_u.mutation.ClearMetadata()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *BatchUpdate) SetStartedAt(v time.Time) *BatchUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *BatchUpdate) SetNillableStartedAt(v *time.Time) *BatchUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *BatchUpdate) ClearStartedAt() *BatchUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *BatchUpdate) SetCompletedAt(v time.Time) *BatchUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *BatchUpdate) SetNillableCompletedAt(v *time.Time) *BatchUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *BatchUpdate) ClearCompletedAt() *BatchUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// AddParticipantIDs adds the "participants" edge to the Participant entity by IDs.
func (_u *BatchUpdate) AddParticipantIDs(ids ...string) *BatchUpdate {
	_u.mutation.AddParticipantIDs(ids...)
	return _u
}

// AddParticipants adds the "participants" edges to the Participant entity.
func (_u *BatchUpdate) AddParticipants(v ...*Participant) *BatchUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddParticipantIDs(ids...)
}

// Mutation returns the BatchMutation object of the builder.
func (_u *BatchUpdate) Mutation() *BatchMutation {
	return _u.mutation
}

// ClearParticipants clears all "participants" edges to the Participant entity.
func (_u *BatchUpdate) ClearParticipants() *BatchUpdate {
	_u.mutation.ClearParticipants()
	return _u
}

// RemoveParticipantIDs removes the "participants" edge to Participant entities by IDs.
func (_u *BatchUpdate) RemoveParticipantIDs(ids ...string) *BatchUpdate {
	_u.mutation.RemoveParticipantIDs(ids...)
	return _u
}

// RemoveParticipants removes "participants" edges to Participant entities.
func (_u *BatchUpdate) RemoveParticipants(v ...*Participant) *BatchUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveParticipantIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BatchUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BatchUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BatchUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BatchUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BatchUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := batch.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Batch.status": %w`, err)}
		}
	}
	if _u.mutation.StudyCleared() && len(_u.mutation.StudyIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Batch.study"`)
	}
	return nil
}

func (_u *BatchUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(batch.Table, batch.Columns, sqlgraph.NewFieldSpec(batch.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(batch.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(batch.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ActorsCreated(); ok {
		_spec.SetField(batch.FieldActorsCreated, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedActorsCreated(); ok {
		_spec.AddField(batch.FieldActorsCreated, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ActorsCompleted(); ok {
		_spec.SetField(batch.FieldActorsCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedActorsCompleted(); ok {
		_spec.AddField(batch.FieldActorsCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ExportPath(); ok {
		_spec.SetField(batch.FieldExportPath, field.TypeString, value)
	}
	if _u.mutation.ExportPathCleared() {
		_spec.ClearField(batch.FieldExportPath, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(batch.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(batch.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(batch.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(batch.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(batch.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(batch.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(batch.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(batch.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.ParticipantsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedParticipantsIDs(); len(nodes) > 0 && !_u.mutation.ParticipantsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ParticipantsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{batch.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BatchUpdateOne is the builder for updating a single Batch entity.
type BatchUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BatchMutation
}

// SetName sets the "name" field.
func (_u *BatchUpdateOne) SetName(v string) *BatchUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *BatchUpdateOne) SetNillableName(v *string) *BatchUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *BatchUpdateOne) SetStatus(v batch.Status) *BatchUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *BatchUpdateOne) SetNillableStatus(v *batch.Status) *BatchUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetActorsCreated sets the "actors_created" field.
func (_u *BatchUpdateOne) SetActorsCreated(v int) *BatchUpdateOne {
	_u.mutation.ResetActorsCreated()
	_u.mutation.SetActorsCreated(v)
	return _u
}

// SetNillableActorsCreated sets the "actors_created" field if the given value is not nil.
func (_u *BatchUpdateOne) SetNillableActorsCreated(v *int) *BatchUpdateOne {
	if v != nil {
		_u.SetActorsCreated(*v)
	}
	return _u
}

// AddActorsCreated adds value to the "actors_created" field.
func (_u *BatchUpdateOne) AddActorsCreated(v int) *BatchUpdateOne {
	_u.mutation.AddActorsCreated(v)
	return _u
}

// SetActorsCompleted sets the "actors_completed" field.
func (_u *BatchUpdateOne) SetActorsCompleted(v int) *BatchUpdateOne {
	_u.mutation.ResetActorsCompleted()
	_u.mutation.SetActorsCompleted(v)
	return _u
}

// SetNillableActorsCompleted sets the "actors_completed" field if the given value is not nil.
func (_u *BatchUpdateOne) SetNillableActorsCompleted(v *int) *BatchUpdateOne {
	if v != nil {
		_u.SetActorsCompleted(*v)
	}
	return _u
}

// AddActorsCompleted adds value to the "actors_completed" field.
func (_u *BatchUpdateOne) AddActorsCompleted(v int) *BatchUpdateOne {
	_u.mutation.AddActorsCompleted(v)
	return _u
}

// SetExportPath sets the "export_path" field.
func (_u *BatchUpdateOne) SetExportPath(v string) *BatchUpdateOne {
	_u.mutation.SetExportPath(v)
	return _u
}

// SetNillableExportPath sets the "export_path" field if the given value is not nil.
func (_u *BatchUpdateOne) SetNillableExportPath(v *string) *BatchUpdateOne {
	if v != nil {
		_u.SetExportPath(*v)
	}
	return _u
}

// ClearExportPath clears the value of the "export_path" field.
func (_u *BatchUpdateOne) ClearExportPath() *BatchUpdateOne {
	_u.mutation.ClearExportPath()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *BatchUpdateOne) SetErrorMessage(v string) *BatchUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *BatchUpdateOne) SetNillableErrorMessage(v *string) *BatchUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *BatchUpdateOne) ClearErrorMessage() *BatchUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *BatchUpdateOne) SetMetadata(v map[string]interface{}) *BatchUpdateOne {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *BatchUpdateOne) ClearMetadata() *BatchUpdateOne {
	_u.mutation.ClearMetadata()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *BatchUpdateOne) SetStartedAt(v time.Time) *BatchUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *BatchUpdateOne) SetNillableStartedAt(v *time.Time) *BatchUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *BatchUpdateOne) ClearStartedAt() *BatchUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *BatchUpdateOne) SetCompletedAt(v time.Time) *BatchUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *BatchUpdateOne) SetNillableCompletedAt(v *time.Time) *BatchUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *BatchUpdateOne) ClearCompletedAt() *BatchUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// AddParticipantIDs adds the "participants" edge to the Participant entity by IDs.
func (_u *BatchUpdateOne) AddParticipantIDs(ids ...string) *BatchUpdateOne {
	_u.mutation.AddParticipantIDs(ids...)
	return _u
}

// AddParticipants adds the "participants" edges to the Participant entity.
func (_u *BatchUpdateOne) AddParticipants(v ...*Participant) *BatchUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddParticipantIDs(ids...)
}

// Mutation returns the BatchMutation object of the builder.
func (_u *BatchUpdateOne) Mutation() *BatchMutation {
	return _u.mutation
}

// ClearParticipants clears all "participants" edges to the Participant entity.
func (_u *BatchUpdateOne) ClearParticipants() *BatchUpdateOne {
	_u.mutation.ClearParticipants()
	return _u
}

// RemoveParticipantIDs removes the "participants" edge to Participant entities by IDs.
func (_u *BatchUpdateOne) RemoveParticipantIDs(ids ...string) *BatchUpdateOne {
	_u.mutation.RemoveParticipantIDs(ids...)
	return _u
}

// RemoveParticipants removes "participants" edges to Participant entities.
func (_u *BatchUpdateOne) RemoveParticipants(v ...*Participant) *BatchUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveParticipantIDs(ids...)
}

// Where appends a list predicates to the BatchUpdate builder.
func (_u *BatchUpdateOne) Where(ps ...predicate.Batch) *BatchUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BatchUpdateOne) Select(field string, fields ...string) *BatchUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Batch entity.
func (_u *BatchUpdateOne) Save(ctx context.Context) (*Batch, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BatchUpdateOne) SaveX(ctx context.Context) *Batch {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BatchUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BatchUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BatchUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := batch.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Batch.status": %w`, err)}
		}
	}
	if _u.mutation.StudyCleared() && len(_u.mutation.StudyIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Batch.study"`)
	}
	return nil
}

func (_u *BatchUpdateOne) sqlSave(ctx context.Context) (_node *Batch, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(batch.Table, batch.Columns, sqlgraph.NewFieldSpec(batch.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Batch.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, batch.FieldID)
		for _, f := range fields {
			if !batch.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != batch.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(batch.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(batch.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ActorsCreated(); ok {
		_spec.SetField(batch.FieldActorsCreated, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedActorsCreated(); ok {
		_spec.AddField(batch.FieldActorsCreated, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ActorsCompleted(); ok {
		_spec.SetField(batch.FieldActorsCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedActorsCompleted(); ok {
		_spec.AddField(batch.FieldActorsCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ExportPath(); ok {
		_spec.SetField(batch.FieldExportPath, field.TypeString, value)
	}
	if _u.mutation.ExportPathCleared() {
		_spec.ClearField(batch.FieldExportPath, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(batch.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(batch.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(batch.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(batch.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(batch.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(batch.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(batch.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(batch.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.ParticipantsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedParticipantsIDs(); len(nodes) > 0 && !_u.mutation.ParticipantsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ParticipantsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Batch{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{batch.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
