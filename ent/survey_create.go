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
	"github.com/dyadlab/fabula/ent/study"
	"github.com/dyadlab/fabula/ent/survey"
	"github.com/dyadlab/fabula/ent/surveyresponse"
)

// SurveyCreate is the builder for creating a Survey entity.
type SurveyCreate struct {
	config
	mutation *SurveyMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetStudyID sets the "study_id" field.
func (_c *SurveyCreate) SetStudyID(v string) *SurveyCreate {
	_c.mutation.SetStudyID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *SurveyCreate) SetName(v string) *SurveyCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetQuestions sets the "questions" field.
func (_c *SurveyCreate) SetQuestions(v []map[string]interface{}) *SurveyCreate {
	_c.mutation.SetQuestions(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SurveyCreate) SetCreatedAt(v time.Time) *SurveyCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SurveyCreate) SetNillableCreatedAt(v *time.Time) *SurveyCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SurveyCreate) SetID(v string) *SurveyCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetStudy sets the "study" edge to the Study entity.
func (_c *SurveyCreate) SetStudy(v *Study) *SurveyCreate {
	return _c.SetStudyID(v.ID)
}

// AddResponseIDs adds the "responses" edge to the SurveyResponse entity by IDs.
func (_c *SurveyCreate) AddResponseIDs(ids ...string) *SurveyCreate {
	_c.mutation.AddResponseIDs(ids...)
	return _c
}

// AddResponses adds the "responses" edges to the SurveyResponse entity.
func (_c *SurveyCreate) AddResponses(v ...*SurveyResponse) *SurveyCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddResponseIDs(ids...)
}

// Mutation returns the SurveyMutation object of the builder.
func (_c *SurveyCreate) Mutation() *SurveyMutation {
	return _c.mutation
}

// Save creates the Survey in the database.
func (_c *SurveyCreate) Save(ctx context.Context) (*Survey, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SurveyCreate) SaveX(ctx context.Context) *Survey {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SurveyCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SurveyCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SurveyCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := survey.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SurveyCreate) check() error {
	if _, ok := _c.mutation.StudyID(); !ok {
		return &ValidationError{Name: "study_id", err: errors.New(`ent: missing required field "Survey.study_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Survey.name"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Survey.created_at"`)}
	}
	if len(_c.mutation.StudyIDs()) == 0 {
		return &ValidationError{Name: "study", err: errors.New(`ent: missing required edge "Survey.study"`)}
	}
	return nil
}

func (_c *SurveyCreate) sqlSave(ctx context.Context) (*Survey, error) {
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
			return nil, fmt.Errorf("unexpected Survey.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SurveyCreate) createSpec() (*Survey, *sqlgraph.CreateSpec) {
	var (
		_node = &Survey{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(survey.Table, sqlgraph.NewFieldSpec(survey.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(survey.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Questions(); ok {
		_spec.SetField(survey.FieldQuestions, field.TypeJSON, value)
		_node.Questions = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(survey.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.StudyIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   survey.StudyTable,
			Columns: []string{survey.StudyColumn},
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
	if nodes := _c.mutation.ResponsesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   survey.ResponsesTable,
			Columns: []string{survey.ResponsesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(surveyresponse.FieldID, field.TypeString),
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
//	client.Survey.Create().
//		SetStudyID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SurveyUpsert) {
//			SetStudyID(v+v).
//		}).
//		Exec(ctx)
func (_c *SurveyCreate) OnConflict(opts ...sql.ConflictOption) *SurveyUpsertOne {
	_c.conflict = opts
	return &SurveyUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Survey.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SurveyCreate) OnConflictColumns(columns ...string) *SurveyUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SurveyUpsertOne{
		create: _c,
	}
}

type (
	// SurveyUpsertOne is the builder for "upsert"-ing
	//  one Survey node.
	SurveyUpsertOne struct {
		create *SurveyCreate
	}

	// SurveyUpsert is the "OnConflict" setter.
	SurveyUpsert struct {
		*sql.UpdateSet
	}
)

// SetName sets the "name" field.
func (u *SurveyUpsert) SetName(v string) *SurveyUpsert {
	u.Set(survey.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *SurveyUpsert) UpdateName() *SurveyUpsert {
	u.SetExcluded(survey.FieldName)
	return u
}

// SetQuestions sets the "questions" field.
func (u *SurveyUpsert) SetQuestions(v []map[string]interface{}) *SurveyUpsert {
	u.Set(survey.FieldQuestions, v)
	return u
}

// UpdateQuestions sets the "questions" field to the value that was provided on create.
func (u *SurveyUpsert) UpdateQuestions() *SurveyUpsert {
	u.SetExcluded(survey.FieldQuestions)
	return u
}

// ClearQuestions clears the value of the "questions" field.
func (u *SurveyUpsert) ClearQuestions() *SurveyUpsert {
	u.SetNull(survey.FieldQuestions)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Survey.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(survey.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *SurveyUpsertOne) UpdateNewValues() *SurveyUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(survey.FieldID)
		}
		if _, exists := u.create.mutation.StudyID(); exists {
			s.SetIgnore(survey.FieldStudyID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(survey.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Survey.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *SurveyUpsertOne) Ignore() *SurveyUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SurveyUpsertOne) DoNothing() *SurveyUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SurveyCreate.OnConflict
// documentation for more info.
func (u *SurveyUpsertOne) Update(set func(*SurveyUpsert)) *SurveyUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SurveyUpsert{UpdateSet: update})
	}))
	return u
}

// SetName sets the "name" field.
func (u *SurveyUpsertOne) SetName(v string) *SurveyUpsertOne {
	return u.Update(func(s *SurveyUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *SurveyUpsertOne) UpdateName() *SurveyUpsertOne {
	return u.Update(func(s *SurveyUpsert) {
		s.UpdateName()
	})
}

// SetQuestions sets the "questions" field.
func (u *SurveyUpsertOne) SetQuestions(v []map[string]interface{}) *SurveyUpsertOne {
	return u.Update(func(s *SurveyUpsert) {
		s.SetQuestions(v)
	})
}

// UpdateQuestions sets the "questions" field to the value that was provided on create.
func (u *SurveyUpsertOne) UpdateQuestions() *SurveyUpsertOne {
	return u.Update(func(s *SurveyUpsert) {
		s.UpdateQuestions()
	})
}

// ClearQuestions clears the value of the "questions" field.
func (u *SurveyUpsertOne) ClearQuestions() *SurveyUpsertOne {
	return u.Update(func(s *SurveyUpsert) {
		s.ClearQuestions()
	})
}

// Exec executes the query.
func (u *SurveyUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SurveyCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SurveyUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *SurveyUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: SurveyUpsertOne.ID is not supported by MySQL driver. Use SurveyUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *SurveyUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// SurveyCreateBulk is the builder for creating many Survey entities in bulk.
type SurveyCreateBulk struct {
	config
	err      error
	builders []*SurveyCreate
	conflict []sql.ConflictOption
}

// Save creates the Survey entities in the database.
func (_c *SurveyCreateBulk) Save(ctx context.Context) ([]*Survey, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Survey, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SurveyMutation)
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
func (_c *SurveyCreateBulk) SaveX(ctx context.Context) []*Survey {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SurveyCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SurveyCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Survey.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SurveyUpsert) {
//			SetStudyID(v+v).
//		}).
//		Exec(ctx)
func (_c *SurveyCreateBulk) OnConflict(opts ...sql.ConflictOption) *SurveyUpsertBulk {
	_c.conflict = opts
	return &SurveyUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Survey.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SurveyCreateBulk) OnConflictColumns(columns ...string) *SurveyUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SurveyUpsertBulk{
		create: _c,
	}
}

// SurveyUpsertBulk is the builder for "upsert"-ing
// a bulk of Survey nodes.
type SurveyUpsertBulk struct {
	create *SurveyCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Survey.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(survey.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *SurveyUpsertBulk) UpdateNewValues() *SurveyUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(survey.FieldID)
			}
			if _, exists := b.mutation.StudyID(); exists {
				s.SetIgnore(survey.FieldStudyID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(survey.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Survey.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *SurveyUpsertBulk) Ignore() *SurveyUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SurveyUpsertBulk) DoNothing() *SurveyUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SurveyCreateBulk.OnConflict
// documentation for more info.
func (u *SurveyUpsertBulk) Update(set func(*SurveyUpsert)) *SurveyUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SurveyUpsert{UpdateSet: update})
	}))
	return u
}

// SetName sets the "name" field.
func (u *SurveyUpsertBulk) SetName(v string) *SurveyUpsertBulk {
	return u.Update(func(s *SurveyUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *SurveyUpsertBulk) UpdateName() *SurveyUpsertBulk {
	return u.Update(func(s *SurveyUpsert) {
		s.UpdateName()
	})
}

// SetQuestions sets the "questions" field.
func (u *SurveyUpsertBulk) SetQuestions(v []map[string]interface{}) *SurveyUpsertBulk {
	return u.Update(func(s *SurveyUpsert) {
		s.SetQuestions(v)
	})
}

// UpdateQuestions sets the "questions" field to the value that was provided on create.
func (u *SurveyUpsertBulk) UpdateQuestions() *SurveyUpsertBulk {
	return u.Update(func(s *SurveyUpsert) {
		s.UpdateQuestions()
	})
}

// ClearQuestions clears the value of the "questions" field.
func (u *SurveyUpsertBulk) ClearQuestions() *SurveyUpsertBulk {
	return u.Update(func(s *SurveyUpsert) {
		s.ClearQuestions()
	})
}

// Exec executes the query.
func (u *SurveyUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the SurveyCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SurveyCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SurveyUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
