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
	"github.com/dyadlab/fabula/ent/condition"
	"github.com/dyadlab/fabula/ent/participant"
	"github.com/dyadlab/fabula/ent/study"
	"github.com/dyadlab/fabula/ent/survey"
)

// StudyCreate is the builder for creating a Study entity.
type StudyCreate struct {
	config
	mutation *StudyMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetName sets the "name" field.
func (_c *StudyCreate) SetName(v string) *StudyCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *StudyCreate) SetDescription(v string) *StudyCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *StudyCreate) SetNillableDescription(v *string) *StudyCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *StudyCreate) SetStatus(v study.Status) *StudyCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *StudyCreate) SetNillableStatus(v *study.Status) *StudyCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetConfig sets the "config" field.
func (_c *StudyCreate) SetConfig(v map[string]interface{}) *StudyCreate {
	_c.mutation.SetConfig(v)
	return _c
}

// SetOwnerID sets the "owner_id" field.
func (_c *StudyCreate) SetOwnerID(v string) *StudyCreate {
	_c.mutation.SetOwnerID(v)
	return _c
}

// SetNillableOwnerID sets the "owner_id" field if the given value is not nil.
func (_c *StudyCreate) SetNillableOwnerID(v *string) *StudyCreate {
	if v != nil {
		_c.SetOwnerID(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *StudyCreate) SetCreatedAt(v time.Time) *StudyCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *StudyCreate) SetNillableCreatedAt(v *time.Time) *StudyCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *StudyCreate) SetUpdatedAt(v time.Time) *StudyCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *StudyCreate) SetNillableUpdatedAt(v *time.Time) *StudyCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *StudyCreate) SetID(v string) *StudyCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddConditionIDs adds the "conditions" edge to the Condition entity by IDs.
func (_c *StudyCreate) AddConditionIDs(ids ...string) *StudyCreate {
	_c.mutation.AddConditionIDs(ids...)
	return _c
}

// AddConditions adds the "conditions" edges to the Condition entity.
func (_c *StudyCreate) AddConditions(v ...*Condition) *StudyCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddConditionIDs(ids...)
}

// AddBatchIDs adds the "batches" edge to the Batch entity by IDs.
func (_c *StudyCreate) AddBatchIDs(ids ...string) *StudyCreate {
	_c.mutation.AddBatchIDs(ids...)
	return _c
}

// AddBatches adds the "batches" edges to the Batch entity.
func (_c *StudyCreate) AddBatches(v ...*Batch) *StudyCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddBatchIDs(ids...)
}

// AddParticipantIDs adds the "participants" edge to the Participant entity by IDs.
func (_c *StudyCreate) AddParticipantIDs(ids ...string) *StudyCreate {
	_c.mutation.AddParticipantIDs(ids...)
	return _c
}

// AddParticipants adds the "participants" edges to the Participant entity.
func (_c *StudyCreate) AddParticipants(v ...*Participant) *StudyCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddParticipantIDs(ids...)
}

// AddSurveyIDs adds the "surveys" edge to the Survey entity by IDs.
func (_c *StudyCreate) AddSurveyIDs(ids ...string) *StudyCreate {
	_c.mutation.AddSurveyIDs(ids...)
	return _c
}

// AddSurveys adds the "surveys" edges to the Survey entity.
func (_c *StudyCreate) AddSurveys(v ...*Survey) *StudyCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddSurveyIDs(ids...)
}

// Mutation returns the StudyMutation object of the builder.
func (_c *StudyCreate) Mutation() *StudyMutation {
	return _c.mutation
}

// Save creates the Study in the database.
func (_c *StudyCreate) Save(ctx context.Context) (*Study, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *StudyCreate) SaveX(ctx context.Context) *Study {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StudyCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StudyCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *StudyCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := study.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := study.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := study.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *StudyCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Study.name"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Study.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := study.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Study.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Study.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Study.updated_at"`)}
	}
	return nil
}

func (_c *StudyCreate) sqlSave(ctx context.Context) (*Study, error) {
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
			return nil, fmt.Errorf("unexpected Study.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *StudyCreate) createSpec() (*Study, *sqlgraph.CreateSpec) {
	var (
		_node = &Study{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(study.Table, sqlgraph.NewFieldSpec(study.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(study.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(study.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(study.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Config(); ok {
		_spec.SetField(study.FieldConfig, field.TypeJSON, value)
		_node.Config = value
	}
	if value, ok := _c.mutation.OwnerID(); ok {
		_spec.SetField(study.FieldOwnerID, field.TypeString, value)
		_node.OwnerID = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(study.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(study.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.ConditionsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.BatchesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ParticipantsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.SurveysIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Study.Create().
//		SetName(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.StudyUpsert) {
//			SetName(v+v).
//		}).
//		Exec(ctx)
func (_c *StudyCreate) OnConflict(opts ...sql.ConflictOption) *StudyUpsertOne {
	_c.conflict = opts
	return &StudyUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Study.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *StudyCreate) OnConflictColumns(columns ...string) *StudyUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &StudyUpsertOne{
		create: _c,
	}
}

type (
	// StudyUpsertOne is the builder for "upsert"-ing
	//  one Study node.
	StudyUpsertOne struct {
		create *StudyCreate
	}

	// StudyUpsert is the "OnConflict" setter.
	StudyUpsert struct {
		*sql.UpdateSet
	}
)

// SetName sets the "name" field.
func (u *StudyUpsert) SetName(v string) *StudyUpsert {
	u.Set(study.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *StudyUpsert) UpdateName() *StudyUpsert {
	u.SetExcluded(study.FieldName)
	return u
}

// SetDescription sets the "description" field.
func (u *StudyUpsert) SetDescription(v string) *StudyUpsert {
	u.Set(study.FieldDescription, v)
	return u
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *StudyUpsert) UpdateDescription() *StudyUpsert {
	u.SetExcluded(study.FieldDescription)
	return u
}

// ClearDescription clears the value of the "description" field.
func (u *StudyUpsert) ClearDescription() *StudyUpsert {
	u.SetNull(study.FieldDescription)
	return u
}

// SetStatus sets the "status" field.
func (u *StudyUpsert) SetStatus(v study.Status) *StudyUpsert {
	u.Set(study.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *StudyUpsert) UpdateStatus() *StudyUpsert {
	u.SetExcluded(study.FieldStatus)
	return u
}

// SetConfig sets the "config" field.
func (u *StudyUpsert) SetConfig(v map[string]interface{}) *StudyUpsert {
	u.Set(study.FieldConfig, v)
	return u
}

// UpdateConfig sets the "config" field to the value that was provided on create.
func (u *StudyUpsert) UpdateConfig() *StudyUpsert {
	u.SetExcluded(study.FieldConfig)
	return u
}

// ClearConfig clears the value of the "config" field.
func (u *StudyUpsert) ClearConfig() *StudyUpsert {
	u.SetNull(study.FieldConfig)
	return u
}

// SetOwnerID sets the "owner_id" field.
func (u *StudyUpsert) SetOwnerID(v string) *StudyUpsert {
	u.Set(study.FieldOwnerID, v)
	return u
}

// UpdateOwnerID sets the "owner_id" field to the value that was provided on create.
func (u *StudyUpsert) UpdateOwnerID() *StudyUpsert {
	u.SetExcluded(study.FieldOwnerID)
	return u
}

// ClearOwnerID clears the value of the "owner_id" field.
func (u *StudyUpsert) ClearOwnerID() *StudyUpsert {
	u.SetNull(study.FieldOwnerID)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *StudyUpsert) SetUpdatedAt(v time.Time) *StudyUpsert {
	u.Set(study.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *StudyUpsert) UpdateUpdatedAt() *StudyUpsert {
	u.SetExcluded(study.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Study.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(study.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *StudyUpsertOne) UpdateNewValues() *StudyUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(study.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(study.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Study.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *StudyUpsertOne) Ignore() *StudyUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *StudyUpsertOne) DoNothing() *StudyUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the StudyCreate.OnConflict
// documentation for more info.
func (u *StudyUpsertOne) Update(set func(*StudyUpsert)) *StudyUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&StudyUpsert{UpdateSet: update})
	}))
	return u
}

// SetName sets the "name" field.
func (u *StudyUpsertOne) SetName(v string) *StudyUpsertOne {
	return u.Update(func(s *StudyUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *StudyUpsertOne) UpdateName() *StudyUpsertOne {
	return u.Update(func(s *StudyUpsert) {
		s.UpdateName()
	})
}

// SetDescription sets the "description" field.
func (u *StudyUpsertOne) SetDescription(v string) *StudyUpsertOne {
	return u.Update(func(s *StudyUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *StudyUpsertOne) UpdateDescription() *StudyUpsertOne {
	return u.Update(func(s *StudyUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *StudyUpsertOne) ClearDescription() *StudyUpsertOne {
	return u.Update(func(s *StudyUpsert) {
		s.ClearDescription()
	})
}

// SetStatus sets the "status" field.
func (u *StudyUpsertOne) SetStatus(v study.Status) *StudyUpsertOne {
	return u.Update(func(s *StudyUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *StudyUpsertOne) UpdateStatus() *StudyUpsertOne {
	return u.Update(func(s *StudyUpsert) {
		s.UpdateStatus()
	})
}

// SetConfig sets the "config" field.
func (u *StudyUpsertOne) SetConfig(v map[string]interface{}) *StudyUpsertOne {
	return u.Update(func(s *StudyUpsert) {
		s.SetConfig(v)
	})
}

// UpdateConfig sets the "config" field to the value that was provided on create.
func (u *StudyUpsertOne) UpdateConfig() *StudyUpsertOne {
	return u.Update(func(s *StudyUpsert) {
		s.UpdateConfig()
	})
}

// ClearConfig clears the value of the "config" field.
func (u *StudyUpsertOne) ClearConfig() *StudyUpsertOne {
	return u.Update(func(s *StudyUpsert) {
		s.ClearConfig()
	})
}

// SetOwnerID sets the "owner_id" field.
func (u *StudyUpsertOne) SetOwnerID(v string) *StudyUpsertOne {
	return u.Update(func(s *StudyUpsert) {
		s.SetOwnerID(v)
	})
}

// UpdateOwnerID sets the "owner_id" field to the value that was provided on create.
func (u *StudyUpsertOne) UpdateOwnerID() *StudyUpsertOne {
	return u.Update(func(s *StudyUpsert) {
		s.UpdateOwnerID()
	})
}

// ClearOwnerID clears the value of the "owner_id" field.
func (u *StudyUpsertOne) ClearOwnerID() *StudyUpsertOne {
	return u.Update(func(s *StudyUpsert) {
		s.ClearOwnerID()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *StudyUpsertOne) SetUpdatedAt(v time.Time) *StudyUpsertOne {
	return u.Update(func(s *StudyUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *StudyUpsertOne) UpdateUpdatedAt() *StudyUpsertOne {
	return u.Update(func(s *StudyUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *StudyUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for StudyCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *StudyUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *StudyUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: StudyUpsertOne.ID is not supported by MySQL driver. Use StudyUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *StudyUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// StudyCreateBulk is the builder for creating many Study entities in bulk.
type StudyCreateBulk struct {
	config
	err      error
	builders []*StudyCreate
	conflict []sql.ConflictOption
}

// Save creates the Study entities in the database.
func (_c *StudyCreateBulk) Save(ctx context.Context) ([]*Study, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Study, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*StudyMutation)
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
func (_c *StudyCreateBulk) SaveX(ctx context.Context) []*Study {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StudyCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StudyCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Study.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.StudyUpsert) {
//			SetName(v+v).
//		}).
//		Exec(ctx)
func (_c *StudyCreateBulk) OnConflict(opts ...sql.ConflictOption) *StudyUpsertBulk {
	_c.conflict = opts
	return &StudyUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Study.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *StudyCreateBulk) OnConflictColumns(columns ...string) *StudyUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &StudyUpsertBulk{
		create: _c,
	}
}

// StudyUpsertBulk is the builder for "upsert"-ing
// a bulk of Study nodes.
type StudyUpsertBulk struct {
	create *StudyCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Study.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(study.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *StudyUpsertBulk) UpdateNewValues() *StudyUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(study.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(study.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Study.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *StudyUpsertBulk) Ignore() *StudyUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *StudyUpsertBulk) DoNothing() *StudyUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the StudyCreateBulk.OnConflict
// documentation for more info.
func (u *StudyUpsertBulk) Update(set func(*StudyUpsert)) *StudyUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&StudyUpsert{UpdateSet: update})
	}))
	return u
}

// SetName sets the "name" field.
func (u *StudyUpsertBulk) SetName(v string) *StudyUpsertBulk {
	return u.Update(func(s *StudyUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *StudyUpsertBulk) UpdateName() *StudyUpsertBulk {
	return u.Update(func(s *StudyUpsert) {
		s.UpdateName()
	})
}

// SetDescription sets the "description" field.
func (u *StudyUpsertBulk) SetDescription(v string) *StudyUpsertBulk {
	return u.Update(func(s *StudyUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *StudyUpsertBulk) UpdateDescription() *StudyUpsertBulk {
	return u.Update(func(s *StudyUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *StudyUpsertBulk) ClearDescription() *StudyUpsertBulk {
	return u.Update(func(s *StudyUpsert) {
		s.ClearDescription()
	})
}

// SetStatus sets the "status" field.
func (u *StudyUpsertBulk) SetStatus(v study.Status) *StudyUpsertBulk {
	return u.Update(func(s *StudyUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *StudyUpsertBulk) UpdateStatus() *StudyUpsertBulk {
	return u.Update(func(s *StudyUpsert) {
		s.UpdateStatus()
	})
}

// SetConfig sets the "config" field.
func (u *StudyUpsertBulk) SetConfig(v map[string]interface{}) *StudyUpsertBulk {
	return u.Update(func(s *StudyUpsert) {
		s.SetConfig(v)
	})
}

// UpdateConfig sets the "config" field to the value that was provided on create.
func (u *StudyUpsertBulk) UpdateConfig() *StudyUpsertBulk {
	return u.Update(func(s *StudyUpsert) {
		s.UpdateConfig()
	})
}

// ClearConfig clears the value of the "config" field.
func (u *StudyUpsertBulk) ClearConfig() *StudyUpsertBulk {
	return u.Update(func(s *StudyUpsert) {
		s.ClearConfig()
	})
}

// SetOwnerID sets the "owner_id" field.
func (u *StudyUpsertBulk) SetOwnerID(v string) *StudyUpsertBulk {
	return u.Update(func(s *StudyUpsert) {
		s.SetOwnerID(v)
	})
}

// UpdateOwnerID sets the "owner_id" field to the value that was provided on create.
func (u *StudyUpsertBulk) UpdateOwnerID() *StudyUpsertBulk {
	return u.Update(func(s *StudyUpsert) {
		s.UpdateOwnerID()
	})
}

// ClearOwnerID clears the value of the "owner_id" field.
func (u *StudyUpsertBulk) ClearOwnerID() *StudyUpsertBulk {
	return u.Update(func(s *StudyUpsert) {
		s.ClearOwnerID()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *StudyUpsertBulk) SetUpdatedAt(v time.Time) *StudyUpsertBulk {
	return u.Update(func(s *StudyUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *StudyUpsertBulk) UpdateUpdatedAt() *StudyUpsertBulk {
	return u.Update(func(s *StudyUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *StudyUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the StudyCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for StudyCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *StudyUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
