// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/dyadlab/fabula/ent/comment"
	"github.com/dyadlab/fabula/ent/predicate"
)

// CommentUpdate is the builder for updating Comment entities.
type CommentUpdate struct {
	config
	hooks    []Hook
	mutation *CommentMutation
}

// Where appends a list predicates to the CommentUpdate builder.
func (_u *CommentUpdate) Where(ps ...predicate.Comment) *CommentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStoryArtifactID sets the "story_artifact_id" field.
func (_u *CommentUpdate) SetStoryArtifactID(v string) *CommentUpdate {
	_u.mutation.SetStoryArtifactID(v)
	return _u
}

// SetNillableStoryArtifactID sets the "story_artifact_id" field if the given value is not nil.
func (_u *CommentUpdate) SetNillableStoryArtifactID(v *string) *CommentUpdate {
	if v != nil {
		_u.SetStoryArtifactID(*v)
	}
	return _u
}

// ClearStoryArtifactID clears the value of the "story_artifact_id" field.
func (_u *CommentUpdate) ClearStoryArtifactID() *CommentUpdate {
	_u.mutation.ClearStoryArtifactID()
	return _u
}

// SetPassageID sets the "passage_id" field.
func (_u *CommentUpdate) SetPassageID(v string) *CommentUpdate {
	_u.mutation.SetPassageID(v)
	return _u
}

// SetNillablePassageID sets the "passage_id" field if the given value is not nil.
func (_u *CommentUpdate) SetNillablePassageID(v *string) *CommentUpdate {
	if v != nil {
		_u.SetPassageID(*v)
	}
	return _u
}

// ClearPassageID clears the value of the "passage_id" field.
func (_u *CommentUpdate) ClearPassageID() *CommentUpdate {
	_u.mutation.ClearPassageID()
	return _u
}

// SetContent sets the "content" field.
func (_u *CommentUpdate) SetContent(v string) *CommentUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *CommentUpdate) SetNillableContent(v *string) *CommentUpdate {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetType sets the "type" field.
func (_u *CommentUpdate) SetType(v comment.Type) *CommentUpdate {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *CommentUpdate) SetNillableType(v *comment.Type) *CommentUpdate {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetRound sets the "round" field.
func (_u *CommentUpdate) SetRound(v int) *CommentUpdate {
	_u.mutation.ResetRound()
	_u.mutation.SetRound(v)
	return _u
}

// SetNillableRound sets the "round" field if the given value is not nil.
func (_u *CommentUpdate) SetNillableRound(v *int) *CommentUpdate {
	if v != nil {
		_u.SetRound(*v)
	}
	return _u
}

// AddRound adds value to the "round" field.
func (_u *CommentUpdate) AddRound(v int) *CommentUpdate {
	_u.mutation.AddRound(v)
	return _u
}

// SetPhase sets the "phase" field.
func (_u *CommentUpdate) SetPhase(v comment.Phase) *CommentUpdate {
	_u.mutation.SetPhase(v)
	return _u
}

// SetNillablePhase sets the "phase" field if the given value is not nil.
func (_u *CommentUpdate) SetNillablePhase(v *comment.Phase) *CommentUpdate {
	if v != nil {
		_u.SetPhase(*v)
	}
	return _u
}

// SetParentID sets the "parent_id" field.
func (_u *CommentUpdate) SetParentID(v string) *CommentUpdate {
	_u.mutation.SetParentID(v)
	return _u
}

// SetNillableParentID sets the "parent_id" field if the given value is not nil.
func (_u *CommentUpdate) SetNillableParentID(v *string) *CommentUpdate {
	if v != nil {
		_u.SetParentID(*v)
	}
	return _u
}

// ClearParentID clears the value of the "parent_id" field.
func (_u *CommentUpdate) ClearParentID() *CommentUpdate {
	_u.mutation.ClearParentID()
	return _u
}

// SetResolved sets the "resolved" field.
func (_u *CommentUpdate) SetResolved(v bool) *CommentUpdate {
	_u.mutation.SetResolved(v)
	return _u
}

// SetNillableResolved sets the "resolved" field if the given value is not nil.
func (_u *CommentUpdate) SetNillableResolved(v *bool) *CommentUpdate {
	if v != nil {
		_u.SetResolved(*v)
	}
	return _u
}

// SetAddressedInRound sets the "addressed_in_round" field.
func (_u *CommentUpdate) SetAddressedInRound(v int) *CommentUpdate {
	_u.mutation.ResetAddressedInRound()
	_u.mutation.SetAddressedInRound(v)
	return _u
}

// SetNillableAddressedInRound sets the "addressed_in_round" field if the given value is not nil.
func (_u *CommentUpdate) SetNillableAddressedInRound(v *int) *CommentUpdate {
	if v != nil {
		_u.SetAddressedInRound(*v)
	}
	return _u
}

// AddAddressedInRound adds value to the "addressed_in_round" field.
func (_u *CommentUpdate) AddAddressedInRound(v int) *CommentUpdate {
	_u.mutation.AddAddressedInRound(v)
	return _u
}

// ClearAddressedInRound clears the value of the "addressed_in_round" field.
func (_u *CommentUpdate) ClearAddressedInRound() *CommentUpdate {
	_u.mutation.ClearAddressedInRound()
	return _u
}

// Mutation returns the CommentMutation object of the builder.
func (_u *CommentUpdate) Mutation() *CommentMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CommentUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CommentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CommentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CommentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CommentUpdate) check() error {
	if v, ok := _u.mutation.GetType(); ok {
		if err := comment.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "Comment.type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Phase(); ok {
		if err := comment.PhaseValidator(v); err != nil {
			return &ValidationError{Name: "phase", err: fmt.Errorf(`ent: validator failed for field "Comment.phase": %w`, err)}
		}
	}
	if _u.mutation.AuthorCleared() && len(_u.mutation.AuthorIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Comment.author"`)
	}
	if _u.mutation.TargetCleared() && len(_u.mutation.TargetIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Comment.target"`)
	}
	return nil
}

func (_u *CommentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(comment.Table, comment.Columns, sqlgraph.NewFieldSpec(comment.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.StoryArtifactID(); ok {
		_spec.SetField(comment.FieldStoryArtifactID, field.TypeString, value)
	}
	if _u.mutation.StoryArtifactIDCleared() {
		_spec.ClearField(comment.FieldStoryArtifactID, field.TypeString)
	}
	if value, ok := _u.mutation.PassageID(); ok {
		_spec.SetField(comment.FieldPassageID, field.TypeString, value)
	}
	if _u.mutation.PassageIDCleared() {
		_spec.ClearField(comment.FieldPassageID, field.TypeString)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(comment.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(comment.FieldType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Round(); ok {
		_spec.SetField(comment.FieldRound, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRound(); ok {
		_spec.AddField(comment.FieldRound, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Phase(); ok {
		_spec.SetField(comment.FieldPhase, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ParentID(); ok {
		_spec.SetField(comment.FieldParentID, field.TypeString, value)
	}
	if _u.mutation.ParentIDCleared() {
		_spec.ClearField(comment.FieldParentID, field.TypeString)
	}
	if value, ok := _u.mutation.Resolved(); ok {
		_spec.SetField(comment.FieldResolved, field.TypeBool, value)
	}
	if value, ok := _u.mutation.AddressedInRound(); ok {
		_spec.SetField(comment.FieldAddressedInRound, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAddressedInRound(); ok {
		_spec.AddField(comment.FieldAddressedInRound, field.TypeInt, value)
	}
	if _u.mutation.AddressedInRoundCleared() {
		_spec.ClearField(comment.FieldAddressedInRound, field.TypeInt)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{comment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CommentUpdateOne is the builder for updating a single Comment entity.
type CommentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CommentMutation
}

// SetStoryArtifactID sets the "story_artifact_id" field.
func (_u *CommentUpdateOne) SetStoryArtifactID(v string) *CommentUpdateOne {
	_u.mutation.SetStoryArtifactID(v)
	return _u
}

// SetNillableStoryArtifactID sets the "story_artifact_id" field if the given value is not nil.
func (_u *CommentUpdateOne) SetNillableStoryArtifactID(v *string) *CommentUpdateOne {
	if v != nil {
		_u.SetStoryArtifactID(*v)
	}
	return _u
}

// ClearStoryArtifactID clears the value of the "story_artifact_id" field.
func (_u *CommentUpdateOne) ClearStoryArtifactID() *CommentUpdateOne {
	_u.mutation.ClearStoryArtifactID()
	return _u
}

// SetPassageID sets the "passage_id" field.
func (_u *CommentUpdateOne) SetPassageID(v string) *CommentUpdateOne {
	_u.mutation.SetPassageID(v)
	return _u
}

// SetNillablePassageID sets the "passage_id" field if the given value is not nil.
func (_u *CommentUpdateOne) SetNillablePassageID(v *string) *CommentUpdateOne {
	if v != nil {
		_u.SetPassageID(*v)
	}
	return _u
}

// ClearPassageID clears the value of the "passage_id" field.
func (_u *CommentUpdateOne) ClearPassageID() *CommentUpdateOne {
	_u.mutation.ClearPassageID()
	return _u
}

// SetContent sets the "content" field.
func (_u *CommentUpdateOne) SetContent(v string) *CommentUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *CommentUpdateOne) SetNillableContent(v *string) *CommentUpdateOne {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetType sets the "type" field.
func (_u *CommentUpdateOne) SetType(v comment.Type) *CommentUpdateOne {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *CommentUpdateOne) SetNillableType(v *comment.Type) *CommentUpdateOne {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetRound sets the "round" field.
func (_u *CommentUpdateOne) SetRound(v int) *CommentUpdateOne {
	_u.mutation.ResetRound()
	_u.mutation.SetRound(v)
	return _u
}

// SetNillableRound sets the "round" field if the given value is not nil.
func (_u *CommentUpdateOne) SetNillableRound(v *int) *CommentUpdateOne {
	if v != nil {
		_u.SetRound(*v)
	}
	return _u
}

// AddRound adds value to the "round" field.
func (_u *CommentUpdateOne) AddRound(v int) *CommentUpdateOne {
	_u.mutation.AddRound(v)
	return _u
}

// SetPhase sets the "phase" field.
func (_u *CommentUpdateOne) SetPhase(v comment.Phase) *CommentUpdateOne {
	_u.mutation.SetPhase(v)
	return _u
}

// SetNillablePhase sets the "phase" field if the given value is not nil.
func (_u *CommentUpdateOne) SetNillablePhase(v *comment.Phase) *CommentUpdateOne {
	if v != nil {
		_u.SetPhase(*v)
	}
	return _u
}

// SetParentID sets the "parent_id" field.
func (_u *CommentUpdateOne) SetParentID(v string) *CommentUpdateOne {
	_u.mutation.SetParentID(v)
	return _u
}

// SetNillableParentID sets the "parent_id" field if the given value is not nil.
func (_u *CommentUpdateOne) SetNillableParentID(v *string) *CommentUpdateOne {
	if v != nil {
		_u.SetParentID(*v)
	}
	return _u
}

// ClearParentID clears the value of the "parent_id" field.
func (_u *CommentUpdateOne) ClearParentID() *CommentUpdateOne {
	_u.mutation.ClearParentID()
	return _u
}

// SetResolved sets the "resolved" field.
func (_u *CommentUpdateOne) SetResolved(v bool) *CommentUpdateOne {
	_u.mutation.SetResolved(v)
	return _u
}

// SetNillableResolved sets the "resolved" field if the given value is not nil.
func (_u *CommentUpdateOne) SetNillableResolved(v *bool) *CommentUpdateOne {
	if v != nil {
		_u.SetResolved(*v)
	}
	return _u
}

// SetAddressedInRound sets the "addressed_in_round" field.
func (_u *CommentUpdateOne) SetAddressedInRound(v int) *CommentUpdateOne {
	_u.mutation.ResetAddressedInRound()
	_u.mutation.SetAddressedInRound(v)
	return _u
}

// SetNillableAddressedInRound sets the "addressed_in_round" field if the given value is not nil.
func (_u *CommentUpdateOne) SetNillableAddressedInRound(v *int) *CommentUpdateOne {
	if v != nil {
		_u.SetAddressedInRound(*v)
	}
	return _u
}

// AddAddressedInRound adds value to the "addressed_in_round" field.
func (_u *CommentUpdateOne) AddAddressedInRound(v int) *CommentUpdateOne {
	_u.mutation.AddAddressedInRound(v)
	return _u
}

// ClearAddressedInRound clears the value of the "addressed_in_round" field.
func (_u *CommentUpdateOne) ClearAddressedInRound() *CommentUpdateOne {
	_u.mutation.ClearAddressedInRound()
	return _u
}

// Mutation returns the CommentMutation object of the builder.
func (_u *CommentUpdateOne) Mutation() *CommentMutation {
	return _u.mutation
}

// Where appends a list predicates to the CommentUpdate builder.
func (_u *CommentUpdateOne) Where(ps ...predicate.Comment) *CommentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CommentUpdateOne) Select(field string, fields ...string) *CommentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Comment entity.
func (_u *CommentUpdateOne) Save(ctx context.Context) (*Comment, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CommentUpdateOne) SaveX(ctx context.Context) *Comment {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CommentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CommentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CommentUpdateOne) check() error {
	if v, ok := _u.mutation.GetType(); ok {
		if err := comment.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "Comment.type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Phase(); ok {
		if err := comment.PhaseValidator(v); err != nil {
			return &ValidationError{Name: "phase", err: fmt.Errorf(`ent: validator failed for field "Comment.phase": %w`, err)}
		}
	}
	if _u.mutation.AuthorCleared() && len(_u.mutation.AuthorIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Comment.author"`)
	}
	if _u.mutation.TargetCleared() && len(_u.mutation.TargetIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Comment.target"`)
	}
	return nil
}

func (_u *CommentUpdateOne) sqlSave(ctx context.Context) (_node *Comment, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(comment.Table, comment.Columns, sqlgraph.NewFieldSpec(comment.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Comment.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, comment.FieldID)
		for _, f := range fields {
			if !comment.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != comment.FieldID {
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
	if value, ok := _u.mutation.StoryArtifactID(); ok {
		_spec.SetField(comment.FieldStoryArtifactID, field.TypeString, value)
	}
	if _u.mutation.StoryArtifactIDCleared() {
		_spec.ClearField(comment.FieldStoryArtifactID, field.TypeString)
	}
	if value, ok := _u.mutation.PassageID(); ok {
		_spec.SetField(comment.FieldPassageID, field.TypeString, value)
	}
	if _u.mutation.PassageIDCleared() {
		_spec.ClearField(comment.FieldPassageID, field.TypeString)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(comment.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(comment.FieldType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Round(); ok {
		_spec.SetField(comment.FieldRound, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRound(); ok {
		_spec.AddField(comment.FieldRound, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Phase(); ok {
		_spec.SetField(comment.FieldPhase, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ParentID(); ok {
		_spec.SetField(comment.FieldParentID, field.TypeString, value)
	}
	if _u.mutation.ParentIDCleared() {
		_spec.ClearField(comment.FieldParentID, field.TypeString)
	}
	if value, ok := _u.mutation.Resolved(); ok {
		_spec.SetField(comment.FieldResolved, field.TypeBool, value)
	}
	if value, ok := _u.mutation.AddressedInRound(); ok {
		_spec.SetField(comment.FieldAddressedInRound, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAddressedInRound(); ok {
		_spec.AddField(comment.FieldAddressedInRound, field.TypeInt, value)
	}
	if _u.mutation.AddressedInRoundCleared() {
		_spec.ClearField(comment.FieldAddressedInRound, field.TypeInt)
	}
	_node = &Comment{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{comment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
