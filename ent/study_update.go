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
	"github.com/dyadlab/fabula/ent/condition"
	"github.com/dyadlab/fabula/ent/participant"
	"github.com/dyadlab/fabula/ent/predicate"
	"github.com/dyadlab/fabula/ent/study"
	"github.com/dyadlab/fabula/ent/survey"
)

// StudyUpdate is the builder for updating Study entities.
type StudyUpdate struct {
	config
	hooks    []Hook
	mutation *StudyMutation
}

// Where appends a list predicates to the StudyUpdate builder.
func (_u *StudyUpdate) Where(ps ...predicate.Study) *StudyUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *StudyUpdate) SetName(v string) *StudyUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *StudyUpdate) SetNillableName(v *string) *StudyUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *StudyUpdate) SetDescription(v string) *StudyUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *StudyUpdate) SetNillableDescription(v *string) *StudyUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *StudyUpdate) ClearDescription() *StudyUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetStatus sets the "status" field.
func (_u *StudyUpdate) SetStatus(v study.Status) *StudyUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *StudyUpdate) SetNillableStatus(v *study.Status) *StudyUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetConfig sets the "config" field.
func (_u *StudyUpdate) SetConfig(v map[string]interface{}) *StudyUpdate {
	_u.mutation.SetConfig(v)
	return _u
}

// ClearConfig clears the value of the "config" field.
func (_u *StudyUpdate) ClearConfig() *StudyUpdate {
	_u.mutation.ClearConfig()
	return _u
}

// SetOwnerID sets the "owner_id" field.
func (_u *StudyUpdate) SetOwnerID(v string) *StudyUpdate {
	_u.mutation.SetOwnerID(v)
	return _u
}

// SetNillableOwnerID sets the "owner_id" field if the given value is not nil.
func (_u *StudyUpdate) SetNillableOwnerID(v *string) *StudyUpdate {
	if v != nil {
		_u.SetOwnerID(*v)
	}
	return _u
}

// ClearOwnerID clears the value of the "owner_id" field.
func (_u *StudyUpdate) ClearOwnerID() *StudyUpdate {
	_u.mutation.ClearOwnerID()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *StudyUpdate) SetUpdatedAt(v time.Time) *StudyUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddConditionIDs adds the "conditions" edge to the Condition entity by IDs.
func (_u *StudyUpdate) AddConditionIDs(ids ...string) *StudyUpdate {
	_u.mutation.AddConditionIDs(ids...)
	return _u
}

// AddConditions adds the "conditions" edges to the Condition entity.
func (_u *StudyUpdate) AddConditions(v ...*Condition) *StudyUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddConditionIDs(ids...)
}

// AddBatchIDs adds the "batches" edge to the Batch entity by IDs.
func (_u *StudyUpdate) AddBatchIDs(ids ...string) *StudyUpdate {
	_u.mutation.AddBatchIDs(ids...)
	return _u
}

// AddBatches adds the "batches" edges to the Batch entity.
func (_u *StudyUpdate) AddBatches(v ...*Batch) *StudyUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddBatchIDs(ids...)
}

// AddParticipantIDs adds the "participants" edge to the Participant entity by IDs.
func (_u *StudyUpdate) AddParticipantIDs(ids ...string) *StudyUpdate {
	_u.mutation.AddParticipantIDs(ids...)
	return _u
}

// AddParticipants adds the "participants" edges to the Participant entity.
func (_u *StudyUpdate) AddParticipants(v ...*Participant) *StudyUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddParticipantIDs(ids...)
}

// AddSurveyIDs adds the "surveys" edge to the Survey entity by IDs.
func (_u *StudyUpdate) AddSurveyIDs(ids ...string) *StudyUpdate {
	_u.mutation.AddSurveyIDs(ids...)
	return _u
}

// AddSurveys adds the "surveys" edges to the Survey entity.
func (_u *StudyUpdate) AddSurveys(v ...*Survey) *StudyUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSurveyIDs(ids...)
}

// Mutation returns the StudyMutation object of the builder.
func (_u *StudyUpdate) Mutation() *StudyMutation {
	return _u.mutation
}

// ClearConditions clears all "conditions" edges to the Condition entity.
func (_u *StudyUpdate) ClearConditions() *StudyUpdate {
	_u.mutation.ClearConditions()
	return _u
}

// RemoveConditionIDs removes the "conditions" edge to Condition entities by IDs.
func (_u *StudyUpdate) RemoveConditionIDs(ids ...string) *StudyUpdate {
	_u.mutation.RemoveConditionIDs(ids...)
	return _u
}

// RemoveConditions removes "conditions" edges to Condition entities.
func (_u *StudyUpdate) RemoveConditions(v ...*Condition) *StudyUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveConditionIDs(ids...)
}

// ClearBatches clears all "batches" edges to the Batch entity.
func (_u *StudyUpdate) ClearBatches() *StudyUpdate {
	_u.mutation.ClearBatches()
	return _u
}

// RemoveBatchIDs removes the "batches" edge to Batch entities by IDs.
func (_u *StudyUpdate) RemoveBatchIDs(ids ...string) *StudyUpdate {
	_u.mutation.RemoveBatchIDs(ids...)
	return _u
}

// RemoveBatches removes "batches" edges to Batch entities.
func (_u *StudyUpdate) RemoveBatches(v ...*Batch) *StudyUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveBatchIDs(ids...)
}

// ClearParticipants clears all "participants" edges to the Participant entity.
func (_u *StudyUpdate) ClearParticipants() *StudyUpdate {
	_u.mutation.ClearParticipants()
	return _u
}

// RemoveParticipantIDs removes the "participants" edge to Participant entities by IDs.
func (_u *StudyUpdate) RemoveParticipantIDs(ids ...string) *StudyUpdate {
	_u.mutation.RemoveParticipantIDs(ids...)
	return _u
}

// RemoveParticipants removes "participants" edges to Participant entities.
func (_u *StudyUpdate) RemoveParticipants(v ...*Participant) *StudyUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveParticipantIDs(ids...)
}

// ClearSurveys clears all "surveys" edges to the Survey entity.
func (_u *StudyUpdate) ClearSurveys() *StudyUpdate {
	_u.mutation.ClearSurveys()
	return _u
}

// RemoveSurveyIDs removes the "surveys" edge to Survey entities by IDs.
func (_u *StudyUpdate) RemoveSurveyIDs(ids ...string) *StudyUpdate {
	_u.mutation.RemoveSurveyIDs(ids...)
	return _u
}

// RemoveSurveys removes "surveys" edges to Survey entities.
func (_u *StudyUpdate) RemoveSurveys(v ...*Survey) *StudyUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSurveyIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *StudyUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StudyUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *StudyUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StudyUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *StudyUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := study.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StudyUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := study.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Study.status": %w`, err)}
		}
	}
	return nil
}

func (_u *StudyUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(study.Table, study.Columns, sqlgraph.NewFieldSpec(study.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(study.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(study.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(study.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(study.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Config(); ok {
		_spec.SetField(study.FieldConfig, field.TypeJSON, value)
	}
	if _u.mutation.ConfigCleared() {
		_spec.ClearField(study.FieldConfig, field.TypeJSON)
	}
	if value, ok := _u.mutation.OwnerID(); ok {
		_spec.SetField(study.FieldOwnerID, field.TypeString, value)
	}
	if _u.mutation.OwnerIDCleared() {
		_spec.ClearField(study.FieldOwnerID, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(study.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ConditionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   study.ConditionsTable,
			Columns: []string{study.ConditionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(condition.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedConditionsIDs(); len(nodes) > 0 && !_u.mutation.ConditionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   study.ConditionsTable,
			Columns: []string{study.ConditionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(condition.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ConditionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   study.ConditionsTable,
			Columns: []string{study.ConditionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(condition.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.BatchesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   study.BatchesTable,
			Columns: []string{study.BatchesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(batch.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedBatchesIDs(); len(nodes) > 0 && !_u.mutation.BatchesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   study.BatchesTable,
			Columns: []string{study.BatchesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(batch.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BatchesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   study.BatchesTable,
			Columns: []string{study.BatchesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(batch.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ParticipantsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   study.ParticipantsTable,
			Columns: []string{study.ParticipantsColumn},
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
			Table:   study.ParticipantsTable,
			Columns: []string{study.ParticipantsColumn},
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
			Table:   study.ParticipantsTable,
			Columns: []string{study.ParticipantsColumn},
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
	if _u.mutation.SurveysCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   study.SurveysTable,
			Columns: []string{study.SurveysColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(survey.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSurveysIDs(); len(nodes) > 0 && !_u.mutation.SurveysCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   study.SurveysTable,
			Columns: []string{study.SurveysColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(survey.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SurveysIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   study.SurveysTable,
			Columns: []string{study.SurveysColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(survey.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{study.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// StudyUpdateOne is the builder for updating a single Study entity.
type StudyUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *StudyMutation
}

// SetName sets the "name" field.
func (_u *StudyUpdateOne) SetName(v string) *StudyUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *StudyUpdateOne) SetNillableName(v *string) *StudyUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *StudyUpdateOne) SetDescription(v string) *StudyUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *StudyUpdateOne) SetNillableDescription(v *string) *StudyUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *StudyUpdateOne) ClearDescription() *StudyUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetStatus sets the "status" field.
func (_u *StudyUpdateOne) SetStatus(v study.Status) *StudyUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *StudyUpdateOne) SetNillableStatus(v *study.Status) *StudyUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetConfig sets the "config" field.
func (_u *StudyUpdateOne) SetConfig(v map[string]interface{}) *StudyUpdateOne {
	_u.mutation.SetConfig(v)
	return _u
}

// ClearConfig clears the value of the "config" field.
func (_u *StudyUpdateOne) ClearConfig() *StudyUpdateOne {
	_u.mutation.ClearConfig()
	return _u
}

// SetOwnerID sets the "owner_id" field.
func (_u *StudyUpdateOne) SetOwnerID(v string) *StudyUpdateOne {
	_u.mutation.SetOwnerID(v)
	return _u
}

// SetNillableOwnerID sets the "owner_id" field if the given value is not nil.
func (_u *StudyUpdateOne) SetNillableOwnerID(v *string) *StudyUpdateOne {
	if v != nil {
		_u.SetOwnerID(*v)
	}
	return _u
}

// ClearOwnerID clears the value of the "owner_id" field.
func (_u *StudyUpdateOne) ClearOwnerID() *StudyUpdateOne {
	_u.mutation.ClearOwnerID()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *StudyUpdateOne) SetUpdatedAt(v time.Time) *StudyUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddConditionIDs adds the "conditions" edge to the Condition entity by IDs.
func (_u *StudyUpdateOne) AddConditionIDs(ids ...string) *StudyUpdateOne {
	_u.mutation.AddConditionIDs(ids...)
	return _u
}

// AddConditions adds the "conditions" edges to the Condition entity.
func (_u *StudyUpdateOne) AddConditions(v ...*Condition) *StudyUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddConditionIDs(ids...)
}

// AddBatchIDs adds the "batches" edge to the Batch entity by IDs.
func (_u *StudyUpdateOne) AddBatchIDs(ids ...string) *StudyUpdateOne {
	_u.mutation.AddBatchIDs(ids...)
	return _u
}

// AddBatches adds the "batches" edges to the Batch entity.
func (_u *StudyUpdateOne) AddBatches(v ...*Batch) *StudyUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddBatchIDs(ids...)
}

// AddParticipantIDs adds the "participants" edge to the Participant entity by IDs.
func (_u *StudyUpdateOne) AddParticipantIDs(ids ...string) *StudyUpdateOne {
	_u.mutation.AddParticipantIDs(ids...)
	return _u
}

// AddParticipants adds the "participants" edges to the Participant entity.
func (_u *StudyUpdateOne) AddParticipants(v ...*Participant) *StudyUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddParticipantIDs(ids...)
}

// AddSurveyIDs adds the "surveys" edge to the Survey entity by IDs.
func (_u *StudyUpdateOne) AddSurveyIDs(ids ...string) *StudyUpdateOne {
	_u.mutation.AddSurveyIDs(ids...)
	return _u
}

// AddSurveys adds the "surveys" edges to the Survey entity.
func (_u *StudyUpdateOne) AddSurveys(v ...*Survey) *StudyUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSurveyIDs(ids...)
}

// Mutation returns the StudyMutation object of the builder.
func (_u *StudyUpdateOne) Mutation() *StudyMutation {
	return _u.mutation
}

// ClearConditions clears all "conditions" edges to the Condition entity.
func (_u *StudyUpdateOne) ClearConditions() *StudyUpdateOne {
	_u.mutation.ClearConditions()
	return _u
}

// RemoveConditionIDs removes the "conditions" edge to Condition entities by IDs.
func (_u *StudyUpdateOne) RemoveConditionIDs(ids ...string) *StudyUpdateOne {
	_u.mutation.RemoveConditionIDs(ids...)
	return _u
}

// RemoveConditions removes "conditions" edges to Condition entities.
func (_u *StudyUpdateOne) RemoveConditions(v ...*Condition) *StudyUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveConditionIDs(ids...)
}

// ClearBatches clears all "batches" edges to the Batch entity.
func (_u *StudyUpdateOne) ClearBatches() *StudyUpdateOne {
	_u.mutation.ClearBatches()
	return _u
}

// RemoveBatchIDs removes the "batches" edge to Batch entities by IDs.
func (_u *StudyUpdateOne) RemoveBatchIDs(ids ...string) *StudyUpdateOne {
	_u.mutation.RemoveBatchIDs(ids...)
	return _u
}

// RemoveBatches removes "batches" edges to Batch entities.
func (_u *StudyUpdateOne) RemoveBatches(v ...*Batch) *StudyUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveBatchIDs(ids...)
}

// ClearParticipants clears all "participants" edges to the Participant entity.
func (_u *StudyUpdateOne) ClearParticipants() *StudyUpdateOne {
	_u.mutation.ClearParticipants()
	return _u
}

// RemoveParticipantIDs removes the "participants" edge to Participant entities by IDs.
func (_u *StudyUpdateOne) RemoveParticipantIDs(ids ...string) *StudyUpdateOne {
	_u.mutation.RemoveParticipantIDs(ids...)
	return _u
}

// RemoveParticipants removes "participants" edges to Participant entities.
func (_u *StudyUpdateOne) RemoveParticipants(v ...*Participant) *StudyUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveParticipantIDs(ids...)
}

// ClearSurveys clears all "surveys" edges to the Survey entity.
func (_u *StudyUpdateOne) ClearSurveys() *StudyUpdateOne {
	_u.mutation.ClearSurveys()
	return _u
}

// RemoveSurveyIDs removes the "surveys" edge to Survey entities by IDs.
func (_u *StudyUpdateOne) RemoveSurveyIDs(ids ...string) *StudyUpdateOne {
	_u.mutation.RemoveSurveyIDs(ids...)
	return _u
}

// RemoveSurveys removes "surveys" edges to Survey entities.
func (_u *StudyUpdateOne) RemoveSurveys(v ...*Survey) *StudyUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSurveyIDs(ids...)
}

// Where appends a list predicates to the StudyUpdate builder.
func (_u *StudyUpdateOne) Where(ps ...predicate.Study) *StudyUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *StudyUpdateOne) Select(field string, fields ...string) *StudyUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Study entity.
func (_u *StudyUpdateOne) Save(ctx context.Context) (*Study, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StudyUpdateOne) SaveX(ctx context.Context) *Study {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *StudyUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StudyUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *StudyUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := study.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StudyUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := study.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Study.status": %w`, err)}
		}
	}
	return nil
}

func (_u *StudyUpdateOne) sqlSave(ctx context.Context) (_node *Study, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(study.Table, study.Columns, sqlgraph.NewFieldSpec(study.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Study.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, study.FieldID)
		for _, f := range fields {
			if !study.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != study.FieldID {
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
		_spec.SetField(study.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(study.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(study.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(study.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Config(); ok {
		_spec.SetField(study.FieldConfig, field.TypeJSON, value)
	}
	if _u.mutation.ConfigCleared() {
		_spec.ClearField(study.FieldConfig, field.TypeJSON)
	}
	if value, ok := _u.mutation.OwnerID(); ok {
		_spec.SetField(study.FieldOwnerID, field.TypeString, value)
	}
	if _u.mutation.OwnerIDCleared() {
		_spec.ClearField(study.FieldOwnerID, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(study.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ConditionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   study.ConditionsTable,
			Columns: []string{study.ConditionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(condition.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedConditionsIDs(); len(nodes) > 0 && !_u.mutation.ConditionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   study.ConditionsTable,
			Columns: []string{study.ConditionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(condition.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ConditionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   study.ConditionsTable,
			Columns: []string{study.ConditionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(condition.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.BatchesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   study.BatchesTable,
			Columns: []string{study.BatchesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(batch.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedBatchesIDs(); len(nodes) > 0 && !_u.mutation.BatchesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   study.BatchesTable,
			Columns: []string{study.BatchesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(batch.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BatchesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   study.BatchesTable,
			Columns: []string{study.BatchesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(batch.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ParticipantsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   study.ParticipantsTable,
			Columns: []string{study.ParticipantsColumn},
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
			Table:   study.ParticipantsTable,
			Columns: []string{study.ParticipantsColumn},
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
			Table:   study.ParticipantsTable,
			Columns: []string{study.ParticipantsColumn},
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
	if _u.mutation.SurveysCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   study.SurveysTable,
			Columns: []string{study.SurveysColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(survey.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSurveysIDs(); len(nodes) > 0 && !_u.mutation.SurveysCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   study.SurveysTable,
			Columns: []string{study.SurveysColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(survey.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SurveysIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   study.SurveysTable,
			Columns: []string{study.SurveysColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(survey.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Study{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{study.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
