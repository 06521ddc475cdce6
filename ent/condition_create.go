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
	"github.com/dyadlab/fabula/ent/condition"
	"github.com/dyadlab/fabula/ent/study"
)

// ConditionCreate is the builder for creating a Condition entity.
type ConditionCreate struct {
	config
	mutation *ConditionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetStudyID sets the "study_id" field.
func (_c *ConditionCreate) SetStudyID(v string) *ConditionCreate {
	_c.mutation.SetStudyID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *ConditionCreate) SetName(v string) *ConditionCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetParameters sets the "parameters" field.
func (_c *ConditionCreate) SetParameters(v map[string]interface{}) *ConditionCreate {
	_c.mutation.SetParameters(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ConditionCreate) SetCreatedAt(v time.Time) *ConditionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ConditionCreate) SetNillableCreatedAt(v *time.Time) *ConditionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ConditionCreate) SetID(v string) *ConditionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetStudy sets the "study" edge to the Study entity.
func (_c *ConditionCreate) SetStudy(v *Study) *ConditionCreate {
	return _c.SetStudyID(v.ID)
}

// Mutation returns the ConditionMutation object of the builder.
func (_c *ConditionCreate) Mutation() *ConditionMutation {
	return _c.mutation
}

// Save creates the Condition in the database.
func (_c *ConditionCreate) Save(ctx context.Context) (*Condition, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ConditionCreate) SaveX(ctx context.Context) *Condition {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ConditionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ConditionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ConditionCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := condition.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ConditionCreate) check() error {
	if _, ok := _c.mutation.StudyID(); !ok {
		return &ValidationError{Name: "study_id", err: errors.New(`ent: missing required field "Condition.study_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Condition.name"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Condition.created_at"`)}
	}
	if len(_c.mutation.StudyIDs()) == 0 {
		return &ValidationError{Name: "study", err: errors.New(`ent: missing required edge "Condition.study"`)}
	}
	return nil
}

func (_c *ConditionCreate) sqlSave(ctx context.Context) (*Condition, error) {
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
			return nil, fmt.Errorf("unexpected Condition.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ConditionCreate) createSpec() (*Condition, *sqlgraph.CreateSpec) {
	var (
		_node = &Condition{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(condition.Table, sqlgraph.NewFieldSpec(condition.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(condition.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Parameters(); ok {
		_spec.SetField(condition.FieldParameters, field.TypeJSON, value)
		_node.Parameters = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(condition.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.StudyIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   condition.StudyTable,
			Columns: []string{condition.StudyColumn},
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
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Condition.Create().
//		SetStudyID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ConditionUpsert) {
//			SetStudyID(v+v).
//		}).
//		Exec(ctx)
func (_c *ConditionCreate) OnConflict(opts ...sql.ConflictOption) *ConditionUpsertOne {
	_c.conflict = opts
	return &ConditionUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Condition.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ConditionCreate) OnConflictColumns(columns ...string) *ConditionUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ConditionUpsertOne{
		create: _c,
	}
}

type (
	// ConditionUpsertOne is the builder for "upsert"-ing
	//  one Condition node.
	ConditionUpsertOne struct {
		create *ConditionCreate
	}

	// ConditionUpsert is the "OnConflict" setter.
	ConditionUpsert struct {
		*sql.UpdateSet
	}
)

// SetName sets the "name" field.
func (u *ConditionUpsert) SetName(v string) *ConditionUpsert {
	u.Set(condition.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *ConditionUpsert) UpdateName() *ConditionUpsert {
	u.SetExcluded(condition.FieldName)
	return u
}

// SetParameters sets the "parameters" field.
func (u *ConditionUpsert) SetParameters(v map[string]interface{}) *ConditionUpsert {
	u.Set(condition.FieldParameters, v)
	return u
}

// UpdateParameters sets the "parameters" field to the value that was provided on create.
func (u *ConditionUpsert) UpdateParameters() *ConditionUpsert {
	u.SetExcluded(condition.FieldParameters)
	return u
}

// ClearParameters clears the value of the "parameters" field.
func (u *ConditionUpsert) ClearParameters() *ConditionUpsert {
	u.SetNull(condition.FieldParameters)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Condition.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(condition.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ConditionUpsertOne) UpdateNewValues() *ConditionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(condition.FieldID)
		}
		if _, exists := u.create.mutation.StudyID(); exists {
			s.SetIgnore(condition.FieldStudyID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(condition.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Condition.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ConditionUpsertOne) Ignore() *ConditionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ConditionUpsertOne) DoNothing() *ConditionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ConditionCreate.OnConflict
// documentation for more info.
func (u *ConditionUpsertOne) Update(set func(*ConditionUpsert)) *ConditionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ConditionUpsert{UpdateSet: update})
	}))
	return u
}

// SetName sets the "name" field.
func (u *ConditionUpsertOne) SetName(v string) *ConditionUpsertOne {
	return u.Update(func(s *ConditionUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *ConditionUpsertOne) UpdateName() *ConditionUpsertOne {
	return u.Update(func(s *ConditionUpsert) {
		s.UpdateName()
	})
}

// SetParameters sets the "parameters" field.
func (u *ConditionUpsertOne) SetParameters(v map[string]interface{}) *ConditionUpsertOne {
	return u.Update(func(s *ConditionUpsert) {
		s.SetParameters(v)
	})
}

// UpdateParameters sets the "parameters" field to the value that was provided on create.
func (u *ConditionUpsertOne) UpdateParameters() *ConditionUpsertOne {
	return u.Update(func(s *ConditionUpsert) {
		s.UpdateParameters()
	})
}

// ClearParameters clears the value of the "parameters" field.
func (u *ConditionUpsertOne) ClearParameters() *ConditionUpsertOne {
	return u.Update(func(s *ConditionUpsert) {
		s.ClearParameters()
	})
}

// Exec executes the query.
func (u *ConditionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ConditionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ConditionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ConditionUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ConditionUpsertOne.ID is not supported by MySQL driver. Use ConditionUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ConditionUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ConditionCreateBulk is the builder for creating many Condition entities in bulk.
type ConditionCreateBulk struct {
	config
	err      error
	builders []*ConditionCreate
	conflict []sql.ConflictOption
}

// Save creates the Condition entities in the database.
func (_c *ConditionCreateBulk) Save(ctx context.Context) ([]*Condition, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Condition, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ConditionMutation)
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
func (_c *ConditionCreateBulk) SaveX(ctx context.Context) []*Condition {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ConditionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ConditionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Condition.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ConditionUpsert) {
//			SetStudyID(v+v).
//		}).
//		Exec(ctx)
func (_c *ConditionCreateBulk) OnConflict(opts ...sql.ConflictOption) *ConditionUpsertBulk {
	_c.conflict = opts
	return &ConditionUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Condition.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ConditionCreateBulk) OnConflictColumns(columns ...string) *ConditionUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ConditionUpsertBulk{
		create: _c,
	}
}

// ConditionUpsertBulk is the builder for "upsert"-ing
// a bulk of Condition nodes.
type ConditionUpsertBulk struct {
	create *ConditionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Condition.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(condition.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ConditionUpsertBulk) UpdateNewValues() *ConditionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(condition.FieldID)
			}
			if _, exists := b.mutation.StudyID(); exists {
				s.SetIgnore(condition.FieldStudyID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(condition.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Condition.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ConditionUpsertBulk) Ignore() *ConditionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ConditionUpsertBulk) DoNothing() *ConditionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ConditionCreateBulk.OnConflict
// documentation for more info.
func (u *ConditionUpsertBulk) Update(set func(*ConditionUpsert)) *ConditionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ConditionUpsert{UpdateSet: update})
	}))
	return u
}

// SetName sets the "name" field.
func (u *ConditionUpsertBulk) SetName(v string) *ConditionUpsertBulk {
	return u.Update(func(s *ConditionUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *ConditionUpsertBulk) UpdateName() *ConditionUpsertBulk {
	return u.Update(func(s *ConditionUpsert) {
		s.UpdateName()
	})
}

// SetParameters sets the "parameters" field.
func (u *ConditionUpsertBulk) SetParameters(v map[string]interface{}) *ConditionUpsertBulk {
	return u.Update(func(s *ConditionUpsert) {
		s.SetParameters(v)
	})
}

// UpdateParameters sets the "parameters" field to the value that was provided on create.
func (u *ConditionUpsertBulk) UpdateParameters() *ConditionUpsertBulk {
	return u.Update(func(s *ConditionUpsert) {
		s.UpdateParameters()
	})
}

// ClearParameters clears the value of the "parameters" field.
func (u *ConditionUpsertBulk) ClearParameters() *ConditionUpsertBulk {
	return u.Update(func(s *ConditionUpsert) {
		s.ClearParameters()
	})
}

// Exec executes the query.
func (u *ConditionUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ConditionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ConditionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ConditionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
