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
	"github.com/dyadlab/fabula/ent/participant"
	"github.com/dyadlab/fabula/ent/survey"
	"github.com/dyadlab/fabula/ent/surveyresponse"
)

// SurveyResponseCreate is the builder for creating a SurveyResponse entity.
type SurveyResponseCreate struct {
	config
	mutation *SurveyResponseMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetSurveyID sets the "survey_id" field.
func (_c *SurveyResponseCreate) SetSurveyID(v string) *SurveyResponseCreate {
	_c.mutation.SetSurveyID(v)
	return _c
}

// SetParticipantID sets the "participant_id" field.
func (_c *SurveyResponseCreate) SetParticipantID(v string) *SurveyResponseCreate {
	_c.mutation.SetParticipantID(v)
	return _c
}

// SetResponses sets the "responses" field.
func (_c *SurveyResponseCreate) SetResponses(v map[string]interface{}) *SurveyResponseCreate {
	_c.mutation.SetResponses(v)
	return _c
}

// SetSubmittedAt sets the "submitted_at" field.
func (_c *SurveyResponseCreate) SetSubmittedAt(v time.Time) *SurveyResponseCreate {
	_c.mutation.SetSubmittedAt(v)
	return _c
}

// SetNillableSubmittedAt sets the "submitted_at" field if the given value is not nil.
func (_c *SurveyResponseCreate) SetNillableSubmittedAt(v *time.Time) *SurveyResponseCreate {
	if v != nil {
		_c.SetSubmittedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SurveyResponseCreate) SetID(v string) *SurveyResponseCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetSurvey sets the "survey" edge to the Survey entity.
func (_c *SurveyResponseCreate) SetSurvey(v *Survey) *SurveyResponseCreate {
	return _c.SetSurveyID(v.ID)
}

// SetParticipant sets the "participant" edge to the Participant entity.
func (_c *SurveyResponseCreate) SetParticipant(v *Participant) *SurveyResponseCreate {
	return _c.SetParticipantID(v.ID)
}

// Mutation returns the SurveyResponseMutation object of the builder.
func (_c *SurveyResponseCreate) Mutation() *SurveyResponseMutation {
	return _c.mutation
}

// Save creates the SurveyResponse in the database.
func (_c *SurveyResponseCreate) Save(ctx context.Context) (*SurveyResponse, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SurveyResponseCreate) SaveX(ctx context.Context) *SurveyResponse {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SurveyResponseCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SurveyResponseCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SurveyResponseCreate) defaults() {
	if _, ok := _c.mutation.SubmittedAt(); !ok {
		v := surveyresponse.DefaultSubmittedAt()
		_c.mutation.SetSubmittedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SurveyResponseCreate) check() error {
	if _, ok := _c.mutation.SurveyID(); !ok {
		return &ValidationError{Name: "survey_id", err: errors.New(`ent: missing required field "SurveyResponse.survey_id"`)}
	}
	if _, ok := _c.mutation.ParticipantID(); !ok {
		return &ValidationError{Name: "participant_id", err: errors.New(`ent: missing required field "SurveyResponse.participant_id"`)}
	}
	if _, ok := _c.mutation.Responses(); !ok {
		return &ValidationError{Name: "responses", err: errors.New(`ent: missing required field "SurveyResponse.responses"`)}
	}
	if _, ok := _c.mutation.SubmittedAt(); !ok {
		return &ValidationError{Name: "submitted_at", err: errors.New(`ent: missing required field "SurveyResponse.submitted_at"`)}
	}
	if len(_c.mutation.SurveyIDs()) == 0 {
		return &ValidationError{Name: "survey", err: errors.New(`ent: missing required edge "SurveyResponse.survey"`)}
	}
	if len(_c.mutation.ParticipantIDs()) == 0 {
		return &ValidationError{Name: "participant", err: errors.New(`ent: missing required edge "SurveyResponse.participant"`)}
	}
	return nil
}

func (_c *SurveyResponseCreate) sqlSave(ctx context.Context) (*SurveyResponse, error) {
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
			return nil, fmt.Errorf("unexpected SurveyResponse.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SurveyResponseCreate) createSpec() (*SurveyResponse, *sqlgraph.CreateSpec) {
	var (
		_node = &SurveyResponse{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(surveyresponse.Table, sqlgraph.NewFieldSpec(surveyresponse.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Responses(); ok {
		_spec.SetField(surveyresponse.FieldResponses, field.TypeJSON, value)
		_node.Responses = value
	}
	if value, ok := _c.mutation.SubmittedAt(); ok {
		_spec.SetField(surveyresponse.FieldSubmittedAt, field.TypeTime, value)
		_node.SubmittedAt = value
	}
	if nodes := _c.mutation.SurveyIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   surveyresponse.SurveyTable,
			Columns: []string{surveyresponse.SurveyColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(survey.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.SurveyID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ParticipantIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   surveyresponse.ParticipantTable,
			Columns: []string{surveyresponse.ParticipantColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(participant.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ParticipantID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.SurveyResponse.Create().
//		SetSurveyID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SurveyResponseUpsert) {
//			SetSurveyID(v+v).
//		}).
//		Exec(ctx)
func (_c *SurveyResponseCreate) OnConflict(opts ...sql.ConflictOption) *SurveyResponseUpsertOne {
	_c.conflict = opts
	return &SurveyResponseUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.SurveyResponse.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SurveyResponseCreate) OnConflictColumns(columns ...string) *SurveyResponseUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SurveyResponseUpsertOne{
		create: _c,
	}
}

type (
	// SurveyResponseUpsertOne is the builder for "upsert"-ing
	//  one SurveyResponse node.
	SurveyResponseUpsertOne struct {
		create *SurveyResponseCreate
	}

	// SurveyResponseUpsert is the "OnConflict" setter.
	SurveyResponseUpsert struct {
		*sql.UpdateSet
	}
)

// SetResponses sets the "responses" field.
func (u *SurveyResponseUpsert) SetResponses(v map[string]interface{}) *SurveyResponseUpsert {
	u.Set(surveyresponse.FieldResponses, v)
	return u
}

// UpdateResponses sets the "responses" field to the value that was provided on create.
func (u *SurveyResponseUpsert) UpdateResponses() *SurveyResponseUpsert {
	u.SetExcluded(surveyresponse.FieldResponses)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.SurveyResponse.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(surveyresponse.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *SurveyResponseUpsertOne) UpdateNewValues() *SurveyResponseUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(surveyresponse.FieldID)
		}
		if _, exists := u.create.mutation.SurveyID(); exists {
			s.SetIgnore(surveyresponse.FieldSurveyID)
		}
		if _, exists := u.create.mutation.ParticipantID(); exists {
			s.SetIgnore(surveyresponse.FieldParticipantID)
		}
		if _, exists := u.create.mutation.SubmittedAt(); exists {
			s.SetIgnore(surveyresponse.FieldSubmittedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.SurveyResponse.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *SurveyResponseUpsertOne) Ignore() *SurveyResponseUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SurveyResponseUpsertOne) DoNothing() *SurveyResponseUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SurveyResponseCreate.OnConflict
// documentation for more info.
func (u *SurveyResponseUpsertOne) Update(set func(*SurveyResponseUpsert)) *SurveyResponseUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SurveyResponseUpsert{UpdateSet: update})
	}))
	return u
}

// SetResponses sets the "responses" field.
func (u *SurveyResponseUpsertOne) SetResponses(v map[string]interface{}) *SurveyResponseUpsertOne {
	return u.Update(func(s *SurveyResponseUpsert) {
		s.SetResponses(v)
	})
}

// UpdateResponses sets the "responses" field to the value that was provided on create.
func (u *SurveyResponseUpsertOne) UpdateResponses() *SurveyResponseUpsertOne {
	return u.Update(func(s *SurveyResponseUpsert) {
		s.UpdateResponses()
	})
}

// Exec executes the query.
func (u *SurveyResponseUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SurveyResponseCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SurveyResponseUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *SurveyResponseUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: SurveyResponseUpsertOne.ID is not supported by MySQL driver. Use SurveyResponseUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *SurveyResponseUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// SurveyResponseCreateBulk is the builder for creating many SurveyResponse entities in bulk.
type SurveyResponseCreateBulk struct {
	config
	err      error
	builders []*SurveyResponseCreate
	conflict []sql.ConflictOption
}

// Save creates the SurveyResponse entities in the database.
func (_c *SurveyResponseCreateBulk) Save(ctx context.Context) ([]*SurveyResponse, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SurveyResponse, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SurveyResponseMutation)
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
func (_c *SurveyResponseCreateBulk) SaveX(ctx context.Context) []*SurveyResponse {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SurveyResponseCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SurveyResponseCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.SurveyResponse.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SurveyResponseUpsert) {
//			SetSurveyID(v+v).
//		}).
//		Exec(ctx)
func (_c *SurveyResponseCreateBulk) OnConflict(opts ...sql.ConflictOption) *SurveyResponseUpsertBulk {
	_c.conflict = opts
	return &SurveyResponseUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.SurveyResponse.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SurveyResponseCreateBulk) OnConflictColumns(columns ...string) *SurveyResponseUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SurveyResponseUpsertBulk{
		create: _c,
	}
}

// SurveyResponseUpsertBulk is the builder for "upsert"-ing
// a bulk of SurveyResponse nodes.
type SurveyResponseUpsertBulk struct {
	create *SurveyResponseCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.SurveyResponse.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(surveyresponse.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *SurveyResponseUpsertBulk) UpdateNewValues() *SurveyResponseUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(surveyresponse.FieldID)
			}
			if _, exists := b.mutation.SurveyID(); exists {
				s.SetIgnore(surveyresponse.FieldSurveyID)
			}
			if _, exists := b.mutation.ParticipantID(); exists {
				s.SetIgnore(surveyresponse.FieldParticipantID)
			}
			if _, exists := b.mutation.SubmittedAt(); exists {
				s.SetIgnore(surveyresponse.FieldSubmittedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.SurveyResponse.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *SurveyResponseUpsertBulk) Ignore() *SurveyResponseUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SurveyResponseUpsertBulk) DoNothing() *SurveyResponseUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SurveyResponseCreateBulk.OnConflict
// documentation for more info.
func (u *SurveyResponseUpsertBulk) Update(set func(*SurveyResponseUpsert)) *SurveyResponseUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SurveyResponseUpsert{UpdateSet: update})
	}))
	return u
}

// SetResponses sets the "responses" field.
func (u *SurveyResponseUpsertBulk) SetResponses(v map[string]interface{}) *SurveyResponseUpsertBulk {
	return u.Update(func(s *SurveyResponseUpsert) {
		s.SetResponses(v)
	})
}

// UpdateResponses sets the "responses" field to the value that was provided on create.
func (u *SurveyResponseUpsertBulk) UpdateResponses() *SurveyResponseUpsertBulk {
	return u.Update(func(s *SurveyResponseUpsert) {
		s.UpdateResponses()
	})
}

// Exec executes the query.
func (u *SurveyResponseUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the SurveyResponseCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SurveyResponseCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SurveyResponseUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
