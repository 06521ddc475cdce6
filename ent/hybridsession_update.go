// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/dyadlab/fabula/ent/hybridsession"
	"github.com/dyadlab/fabula/ent/predicate"
	"github.com/dyadlab/fabula/pkg/models"
)

// HybridSessionUpdate is the builder for updating HybridSession entities.
type HybridSessionUpdate struct {
	config
	hooks    []Hook
	mutation *HybridSessionMutation
}

// Where appends a list predicates to the HybridSessionUpdate builder.
func (_u *HybridSessionUpdate) Where(ps ...predicate.HybridSession) *HybridSessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetConfig sets the "config" field.
func (_u *HybridSessionUpdate) SetConfig(v map[string]interface{}) *HybridSessionUpdate {
	_u.mutation.SetConfig(v)
	return _u
}

// ClearConfig clears the value of the "config" field.
func (_u *HybridSessionUpdate) ClearConfig() *HybridSessionUpdate {
	_u.mutation.ClearConfig()
	return _u
}

// SetCompletions sets the "completions" field.
func (_u *HybridSessionUpdate) SetCompletions(v []models.PhaseCompletion) *HybridSessionUpdate {
	_u.mutation.SetCompletions(v)
	return _u
}

// AppendCompletions appends value to the "completions" field.
func (_u *HybridSessionUpdate) AppendCompletions(v []models.PhaseCompletion) *HybridSessionUpdate {
	_u.mutation.AppendCompletions(v)
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *HybridSessionUpdate) SetCompletedAt(v time.Time) *HybridSessionUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *HybridSessionUpdate) SetNillableCompletedAt(v *time.Time) *HybridSessionUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *HybridSessionUpdate) ClearCompletedAt() *HybridSessionUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// Mutation returns the HybridSessionMutation object of the builder.
func (_u *HybridSessionUpdate) Mutation() *HybridSessionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *HybridSessionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *HybridSessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *HybridSessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *HybridSessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *HybridSessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(hybridsession.Table, hybridsession.Columns, sqlgraph.NewFieldSpec(hybridsession.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Config(); ok {
		_spec.SetField(hybridsession.FieldConfig, field.TypeJSON, value)
	}
	if _u.mutation.ConfigCleared() {
		_spec.ClearField(hybridsession.FieldConfig, field.TypeJSON)
	}
	if value, ok := _u.mutation.Completions(); ok {
		_spec.SetField(hybridsession.FieldCompletions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCompletions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, hybridsession.FieldCompletions, value)
		})
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(hybridsession.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(hybridsession.FieldCompletedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{hybridsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// HybridSessionUpdateOne is the builder for updating a single HybridSession entity.
type HybridSessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *HybridSessionMutation
}

// SetConfig sets the "config" field.
func (_u *HybridSessionUpdateOne) SetConfig(v map[string]interface{}) *HybridSessionUpdateOne {
	_u.mutation.SetConfig(v)
	return _u
}

// ClearConfig clears the value of the "config" field.
func (_u *HybridSessionUpdateOne) ClearConfig() *HybridSessionUpdateOne {
	_u.mutation.ClearConfig()
	return _u
}

// SetCompletions sets the "completions" field.
func (_u *HybridSessionUpdateOne) SetCompletions(v []models.PhaseCompletion) *HybridSessionUpdateOne {
	_u.mutation.SetCompletions(v)
	return _u
}

// AppendCompletions appends value to the "completions" field.
func (_u *HybridSessionUpdateOne) AppendCompletions(v []models.PhaseCompletion) *HybridSessionUpdateOne {
	_u.mutation.AppendCompletions(v)
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *HybridSessionUpdateOne) SetCompletedAt(v time.Time) *HybridSessionUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *HybridSessionUpdateOne) SetNillableCompletedAt(v *time.Time) *HybridSessionUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *HybridSessionUpdateOne) ClearCompletedAt() *HybridSessionUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// Mutation returns the HybridSessionMutation object of the builder.
func (_u *HybridSessionUpdateOne) Mutation() *HybridSessionMutation {
	return _u.mutation
}

// Where appends a list predicates to the HybridSessionUpdate builder.
func (_u *HybridSessionUpdateOne) Where(ps ...predicate.HybridSession) *HybridSessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *HybridSessionUpdateOne) Select(field string, fields ...string) *HybridSessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated HybridSession entity.
func (_u *HybridSessionUpdateOne) Save(ctx context.Context) (*HybridSession, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *HybridSessionUpdateOne) SaveX(ctx context.Context) *HybridSession {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *HybridSessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *HybridSessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *HybridSessionUpdateOne) sqlSave(ctx context.Context) (_node *HybridSession, err error) {
	_spec := sqlgraph.NewUpdateSpec(hybridsession.Table, hybridsession.Columns, sqlgraph.NewFieldSpec(hybridsession.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "HybridSession.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, hybridsession.FieldID)
		for _, f := range fields {
			if !hybridsession.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != hybridsession.FieldID {
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
	if value, ok := _u.mutation.Config(); ok {
		_spec.SetField(hybridsession.FieldConfig, field.TypeJSON, value)
	}
	if _u.mutation.ConfigCleared() {
		_spec.ClearField(hybridsession.FieldConfig, field.TypeJSON)
	}
	if value, ok := _u.mutation.Completions(); ok {
		_spec.SetField(hybridsession.FieldCompletions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCompletions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, hybridsession.FieldCompletions, value)
		})
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(hybridsession.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(hybridsession.FieldCompletedAt, field.TypeTime)
	}
	_node = &HybridSession{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{hybridsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
