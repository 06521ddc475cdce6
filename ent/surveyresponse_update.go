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
	"github.com/dyadlab/fabula/ent/surveyresponse"
)

// SurveyResponseUpdate is the builder for updating SurveyResponse entities.
type SurveyResponseUpdate struct {
	config
	hooks    []Hook
	mutation *SurveyResponseMutation
}

// Where appends a list predicates to the SurveyResponseUpdate builder.
func (_u *SurveyResponseUpdate) Where(ps ...predicate.SurveyResponse) *SurveyResponseUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetResponses sets the "responses" field.
func (_u *SurveyResponseUpdate) SetResponses(v map[string]interface{}) *SurveyResponseUpdate {
	_u.mutation.SetResponses(v)
	return _u
}

// Mutation returns the SurveyResponseMutation object of the builder.
func (_u *SurveyResponseUpdate) Mutation() *SurveyResponseMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SurveyResponseUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SurveyResponseUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SurveyResponseUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SurveyResponseUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SurveyResponseUpdate) check() error {
	if _u.mutation.SurveyCleared() && len(_u.mutation.SurveyIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "SurveyResponse.survey"`)
	}
	if _u.mutation.ParticipantCleared() && len(_u.mutation.ParticipantIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "SurveyResponse.participant"`)
	}
	return nil
}

func (_u *SurveyResponseUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(surveyresponse.Table, surveyresponse.Columns, sqlgraph.NewFieldSpec(surveyresponse.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Responses(); ok {
		_spec.SetField(surveyresponse.FieldResponses, field.TypeJSON, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{surveyresponse.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SurveyResponseUpdateOne is the builder for updating a single SurveyResponse entity.
type SurveyResponseUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SurveyResponseMutation
}

// SetResponses sets the "responses" field.
func (_u *SurveyResponseUpdateOne) SetResponses(v map[string]interface{}) *SurveyResponseUpdateOne {
	_u.mutation.SetResponses(v)
	return _u
}

// Mutation returns the SurveyResponseMutation object of the builder.
func (_u *SurveyResponseUpdateOne) Mutation() *SurveyResponseMutation {
	return _u.mutation
}

// Where appends a list predicates to the SurveyResponseUpdate builder.
func (_u *SurveyResponseUpdateOne) Where(ps ...predicate.SurveyResponse) *SurveyResponseUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SurveyResponseUpdateOne) Select(field string, fields ...string) *SurveyResponseUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SurveyResponse entity.
func (_u *SurveyResponseUpdateOne) Save(ctx context.Context) (*SurveyResponse, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SurveyResponseUpdateOne) SaveX(ctx context.Context) *SurveyResponse {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SurveyResponseUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SurveyResponseUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SurveyResponseUpdateOne) check() error {
	if _u.mutation.SurveyCleared() && len(_u.mutation.SurveyIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "SurveyResponse.survey"`)
	}
	if _u.mutation.ParticipantCleared() && len(_u.mutation.ParticipantIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "SurveyResponse.participant"`)
	}
	return nil
}

func (_u *SurveyResponseUpdateOne) sqlSave(ctx context.Context) (_node *SurveyResponse, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(surveyresponse.Table, surveyresponse.Columns, sqlgraph.NewFieldSpec(surveyresponse.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SurveyResponse.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, surveyresponse.FieldID)
		for _, f := range fields {
			if !surveyresponse.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != surveyresponse.FieldID {
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
	if value, ok := _u.mutation.Responses(); ok {
		_spec.SetField(surveyresponse.FieldResponses, field.TypeJSON, value)
	}
	_node = &SurveyResponse{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{surveyresponse.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
