// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/dyadlab/fabula/ent/predicate"
	"github.com/dyadlab/fabula/ent/storyartifact"
)

// StoryArtifactUpdate is the builder for updating StoryArtifact entities.
type StoryArtifactUpdate struct {
	config
	hooks    []Hook
	mutation *StoryArtifactMutation
}

// Where appends a list predicates to the StoryArtifactUpdate builder.
func (_u *StoryArtifactUpdate) Where(ps ...predicate.StoryArtifact) *StoryArtifactUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetVersion sets the "version" field.
func (_u *StoryArtifactUpdate) SetVersion(v int) *StoryArtifactUpdate {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *StoryArtifactUpdate) SetNillableVersion(v *int) *StoryArtifactUpdate {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *StoryArtifactUpdate) AddVersion(v int) *StoryArtifactUpdate {
	_u.mutation.AddVersion(v)
	return _u
}

// SetBlobKey sets the "blob_key" field.
func (_u *StoryArtifactUpdate) SetBlobKey(v string) *StoryArtifactUpdate {
	_u.mutation.SetBlobKey(v)
	return _u
}

// SetNillableBlobKey sets the "blob_key" field if the given value is not nil.
func (_u *StoryArtifactUpdate) SetNillableBlobKey(v *string) *StoryArtifactUpdate {
	if v != nil {
		_u.SetBlobKey(*v)
	}
	return _u
}

// SetBucket sets the "bucket" field.
func (_u *StoryArtifactUpdate) SetBucket(v string) *StoryArtifactUpdate {
	_u.mutation.SetBucket(v)
	return _u
}

// SetNillableBucket sets the "bucket" field if the given value is not nil.
func (_u *StoryArtifactUpdate) SetNillableBucket(v *string) *StoryArtifactUpdate {
	if v != nil {
		_u.SetBucket(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *StoryArtifactUpdate) SetStatus(v storyartifact.Status) *StoryArtifactUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *StoryArtifactUpdate) SetNillableStatus(v *storyartifact.Status) *StoryArtifactUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *StoryArtifactUpdate) SetName(v string) *StoryArtifactUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *StoryArtifactUpdate) SetNillableName(v *string) *StoryArtifactUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// ClearName clears the value of the "name" field.
func (_u *StoryArtifactUpdate) ClearName() *StoryArtifactUpdate {
	_u.mutation.ClearName()
	return _u
}

// SetDescription sets the "description" field.
func (_u *StoryArtifactUpdate) SetDescription(v string) *StoryArtifactUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *StoryArtifactUpdate) SetNillableDescription(v *string) *StoryArtifactUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *StoryArtifactUpdate) ClearDescription() *StoryArtifactUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetRound sets the "round" field.
func (_u *StoryArtifactUpdate) SetRound(v int) *StoryArtifactUpdate {
	_u.mutation.ResetRound()
	_u.mutation.SetRound(v)
	return _u
}

// SetNillableRound sets the "round" field if the given value is not nil.
func (_u *StoryArtifactUpdate) SetNillableRound(v *int) *StoryArtifactUpdate {
	if v != nil {
		_u.SetRound(*v)
	}
	return _u
}

// AddRound adds value to the "round" field.
func (_u *StoryArtifactUpdate) AddRound(v int) *StoryArtifactUpdate {
	_u.mutation.AddRound(v)
	return _u
}

// ClearRound clears the value of the "round" field.
func (_u *StoryArtifactUpdate) ClearRound() *StoryArtifactUpdate {
	_u.mutation.ClearRound()
	return _u
}

// Mutation returns the StoryArtifactMutation object of the builder.
func (_u *StoryArtifactUpdate) Mutation() *StoryArtifactMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *StoryArtifactUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StoryArtifactUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *StoryArtifactUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StoryArtifactUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StoryArtifactUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := storyartifact.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "StoryArtifact.status": %w`, err)}
		}
	}
	if _u.mutation.ParticipantCleared() && len(_u.mutation.ParticipantIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "StoryArtifact.participant"`)
	}
	return nil
}

func (_u *StoryArtifactUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(storyartifact.Table, storyartifact.Columns, sqlgraph.NewFieldSpec(storyartifact.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(storyartifact.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(storyartifact.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.BlobKey(); ok {
		_spec.SetField(storyartifact.FieldBlobKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Bucket(); ok {
		_spec.SetField(storyartifact.FieldBucket, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(storyartifact.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(storyartifact.FieldName, field.TypeString, value)
	}
	if _u.mutation.NameCleared() {
		_spec.ClearField(storyartifact.FieldName, field.TypeString)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(storyartifact.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(storyartifact.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Round(); ok {
		_spec.SetField(storyartifact.FieldRound, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRound(); ok {
		_spec.AddField(storyartifact.FieldRound, field.TypeInt, value)
	}
	if _u.mutation.RoundCleared() {
		_spec.ClearField(storyartifact.FieldRound, field.TypeInt)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{storyartifact.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// StoryArtifactUpdateOne is the builder for updating a single StoryArtifact entity.
type StoryArtifactUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *StoryArtifactMutation
}

// SetVersion sets the "version" field.
func (_u *StoryArtifactUpdateOne) SetVersion(v int) *StoryArtifactUpdateOne {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *StoryArtifactUpdateOne) SetNillableVersion(v *int) *StoryArtifactUpdateOne {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *StoryArtifactUpdateOne) AddVersion(v int) *StoryArtifactUpdateOne {
	_u.mutation.AddVersion(v)
	return _u
}

// SetBlobKey sets the "blob_key" field.
func (_u *StoryArtifactUpdateOne) SetBlobKey(v string) *StoryArtifactUpdateOne {
	_u.mutation.SetBlobKey(v)
	return _u
}

// SetNillableBlobKey sets the "blob_key" field if the given value is not nil.
func (_u *StoryArtifactUpdateOne) SetNillableBlobKey(v *string) *StoryArtifactUpdateOne {
	if v != nil {
		_u.SetBlobKey(*v)
	}
	return _u
}

// SetBucket sets the "bucket" field.
func (_u *StoryArtifactUpdateOne) SetBucket(v string) *StoryArtifactUpdateOne {
	_u.mutation.SetBucket(v)
	return _u
}

// SetNillableBucket sets the "bucket" field if the given value is not nil.
func (_u *StoryArtifactUpdateOne) SetNillableBucket(v *string) *StoryArtifactUpdateOne {
	if v != nil {
		_u.SetBucket(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *StoryArtifactUpdateOne) SetStatus(v storyartifact.Status) *StoryArtifactUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *StoryArtifactUpdateOne) SetNillableStatus(v *storyartifact.Status) *StoryArtifactUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *StoryArtifactUpdateOne) SetName(v string) *StoryArtifactUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *StoryArtifactUpdateOne) SetNillableName(v *string) *StoryArtifactUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// ClearName clears the value of the "name" field.
func (_u *StoryArtifactUpdateOne) ClearName() *StoryArtifactUpdateOne {
	_u.mutation.ClearName()
	return _u
}

// SetDescription sets the "description" field.
func (_u *StoryArtifactUpdateOne) SetDescription(v string) *StoryArtifactUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *StoryArtifactUpdateOne) SetNillableDescription(v *string) *StoryArtifactUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *StoryArtifactUpdateOne) ClearDescription() *StoryArtifactUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetRound sets the "round" field.
func (_u *StoryArtifactUpdateOne) SetRound(v int) *StoryArtifactUpdateOne {
	_u.mutation.ResetRound()
	_u.mutation.SetRound(v)
	return _u
}

// SetNillableRound sets the "round" field if the given value is not nil.
func (_u *StoryArtifactUpdateOne) SetNillableRound(v *int) *StoryArtifactUpdateOne {
	if v != nil {
		_u.SetRound(*v)
	}
	return _u
}

// AddRound adds value to the "round" field.
func (_u *StoryArtifactUpdateOne) AddRound(v int) *StoryArtifactUpdateOne {
	_u.mutation.AddRound(v)
	return _u
}

// ClearRound clears the value of the "round" field.
func (_u *StoryArtifactUpdateOne) ClearRound() *StoryArtifactUpdateOne {
	_u.mutation.ClearRound()
	return _u
}

// Mutation returns the StoryArtifactMutation object of the builder.
func (_u *StoryArtifactUpdateOne) Mutation() *StoryArtifactMutation {
	return _u.mutation
}

// Where appends a list predicates to the StoryArtifactUpdate builder.
func (_u *StoryArtifactUpdateOne) Where(ps ...predicate.StoryArtifact) *StoryArtifactUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *StoryArtifactUpdateOne) Select(field string, fields ...string) *StoryArtifactUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated StoryArtifact entity.
func (_u *StoryArtifactUpdateOne) Save(ctx context.Context) (*StoryArtifact, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StoryArtifactUpdateOne) SaveX(ctx context.Context) *StoryArtifact {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *StoryArtifactUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StoryArtifactUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StoryArtifactUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := storyartifact.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "StoryArtifact.status": %w`, err)}
		}
	}
	if _u.mutation.ParticipantCleared() && len(_u.mutation.ParticipantIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "StoryArtifact.participant"`)
	}
	return nil
}

func (_u *StoryArtifactUpdateOne) sqlSave(ctx context.Context) (_node *StoryArtifact, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(storyartifact.Table, storyartifact.Columns, sqlgraph.NewFieldSpec(storyartifact.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "StoryArtifact.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, storyartifact.FieldID)
		for _, f := range fields {
			if !storyartifact.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != storyartifact.FieldID {
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
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(storyartifact.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(storyartifact.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.BlobKey(); ok {
		_spec.SetField(storyartifact.FieldBlobKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Bucket(); ok {
		_spec.SetField(storyartifact.FieldBucket, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(storyartifact.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(storyartifact.FieldName, field.TypeString, value)
	}
	if _u.mutation.NameCleared() {
		_spec.ClearField(storyartifact.FieldName, field.TypeString)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(storyartifact.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(storyartifact.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Round(); ok {
		_spec.SetField(storyartifact.FieldRound, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRound(); ok {
		_spec.AddField(storyartifact.FieldRound, field.TypeInt, value)
	}
	if _u.mutation.RoundCleared() {
		_spec.ClearField(storyartifact.FieldRound, field.TypeInt)
	}
	_node = &StoryArtifact{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{storyartifact.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
