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
	"github.com/dyadlab/fabula/ent/hybridsession"
	"github.com/dyadlab/fabula/pkg/models"
)

// HybridSessionCreate is the builder for creating a HybridSession entity.
type HybridSessionCreate struct {
	config
	mutation *HybridSessionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetStudyID sets the "study_id" field.
func (_c *HybridSessionCreate) SetStudyID(v string) *HybridSessionCreate {
	_c.mutation.SetStudyID(v)
	return _c
}

// SetParticipantA sets the "participant_a" field.
func (_c *HybridSessionCreate) SetParticipantA(v string) *HybridSessionCreate {
	_c.mutation.SetParticipantA(v)
	return _c
}

// SetParticipantB sets the "participant_b" field.
func (_c *HybridSessionCreate) SetParticipantB(v string) *HybridSessionCreate {
	_c.mutation.SetParticipantB(v)
	return _c
}

// SetActorTypeA sets the "actor_type_a" field.
func (_c *HybridSessionCreate) SetActorTypeA(v hybridsession.ActorTypeA) *HybridSessionCreate {
	_c.mutation.SetActorTypeA(v)
	return _c
}

// SetActorTypeB sets the "actor_type_b" field.
func (_c *HybridSessionCreate) SetActorTypeB(v hybridsession.ActorTypeB) *HybridSessionCreate {
	_c.mutation.SetActorTypeB(v)
	return _c
}

// SetConfig sets the "config" field.
func (_c *HybridSessionCreate) SetConfig(v map[string]interface{}) *HybridSessionCreate {
	_c.mutation.SetConfig(v)
	return _c
}

// SetCompletions sets the "completions" field.
func (_c *HybridSessionCreate) SetCompletions(v []models.PhaseCompletion) *HybridSessionCreate {
	_c.mutation.SetCompletions(v)
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *HybridSessionCreate) SetStartedAt(v time.Time) *HybridSessionCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *HybridSessionCreate) SetNillableStartedAt(v *time.Time) *HybridSessionCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *HybridSessionCreate) SetCompletedAt(v time.Time) *HybridSessionCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *HybridSessionCreate) SetNillableCompletedAt(v *time.Time) *HybridSessionCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *HybridSessionCreate) SetID(v string) *HybridSessionCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the HybridSessionMutation object of the builder.
func (_c *HybridSessionCreate) Mutation() *HybridSessionMutation {
	return _c.mutation
}

// Save creates the HybridSession in the database.
func (_c *HybridSessionCreate) Save(ctx context.Context) (*HybridSession, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *HybridSessionCreate) SaveX(ctx context.Context) *HybridSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *HybridSessionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *HybridSessionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *HybridSessionCreate) defaults() {
	if _, ok := _c.mutation.Completions(); !ok {
		v := hybridsession.DefaultCompletions
		_c.mutation.SetCompletions(v)
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		v := hybridsession.DefaultStartedAt()
		_c.mutation.SetStartedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *HybridSessionCreate) check() error {
	if _, ok := _c.mutation.StudyID(); !ok {
		return &ValidationError{Name: "study_id", err: errors.New(`ent: missing required field "HybridSession.study_id"`)}
	}
	if _, ok := _c.mutation.ParticipantA(); !ok {
		return &ValidationError{Name: "participant_a", err: errors.New(`ent: missing required field "HybridSession.participant_a"`)}
	}
	if _, ok := _c.mutation.ParticipantB(); !ok {
		return &ValidationError{Name: "participant_b", err: errors.New(`ent: missing required field "HybridSession.participant_b"`)}
	}
	if _, ok := _c.mutation.ActorTypeA(); !ok {
		return &ValidationError{Name: "actor_type_a", err: errors.New(`ent: missing required field "HybridSession.actor_type_a"`)}
	}
	if v, ok := _c.mutation.ActorTypeA(); ok {
		if err := hybridsession.ActorTypeAValidator(v); err != nil {
			return &ValidationError{Name: "actor_type_a", err: fmt.Errorf(`ent: validator failed for field "HybridSession.actor_type_a": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ActorTypeB(); !ok {
		return &ValidationError{Name: "actor_type_b", err: errors.New(`ent: missing required field "HybridSession.actor_type_b"`)}
	}
	if v, ok := _c.mutation.ActorTypeB(); ok {
		if err := hybridsession.ActorTypeBValidator(v); err != nil {
			return &ValidationError{Name: "actor_type_b", err: fmt.Errorf(`ent: validator failed for field "HybridSession.actor_type_b": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Completions(); !ok {
		return &ValidationError{Name: "completions", err: errors.New(`ent: missing required field "HybridSession.completions"`)}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "HybridSession.started_at"`)}
	}
	return nil
}

func (_c *HybridSessionCreate) sqlSave(ctx context.Context) (*HybridSession, error) {
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
			return nil, fmt.Errorf("unexpected HybridSession.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *HybridSessionCreate) createSpec() (*HybridSession, *sqlgraph.CreateSpec) {
	var (
		_node = &HybridSession{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(hybridsession.Table, sqlgraph.NewFieldSpec(hybridsession.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.StudyID(); ok {
		_spec.SetField(hybridsession.FieldStudyID, field.TypeString, value)
		_node.StudyID = value
	}
	if value, ok := _c.mutation.ParticipantA(); ok {
		_spec.SetField(hybridsession.FieldParticipantA, field.TypeString, value)
		_node.ParticipantA = value
	}
	if value, ok := _c.mutation.ParticipantB(); ok {
		_spec.SetField(hybridsession.FieldParticipantB, field.TypeString, value)
		_node.ParticipantB = value
	}
	if value, ok := _c.mutation.ActorTypeA(); ok {
		_spec.SetField(hybridsession.FieldActorTypeA, field.TypeEnum, value)
		_node.ActorTypeA = value
	}
	if value, ok := _c.mutation.ActorTypeB(); ok {
		_spec.SetField(hybridsession.FieldActorTypeB, field.TypeEnum, value)
		_node.ActorTypeB = value
	}
	if value, ok := _c.mutation.Config(); ok {
		_spec.SetField(hybridsession.FieldConfig, field.TypeJSON, value)
		_node.Config = value
	}
	if value, ok := _c.mutation.Completions(); ok {
		_spec.SetField(hybridsession.FieldCompletions, field.TypeJSON, value)
		_node.Completions = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(hybridsession.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(hybridsession.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.HybridSession.Create().
//		SetStudyID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.HybridSessionUpsert) {
//			SetStudyID(v+v).
//		}).
//		Exec(ctx)
func (_c *HybridSessionCreate) OnConflict(opts ...sql.ConflictOption) *HybridSessionUpsertOne {
	_c.conflict = opts
	return &HybridSessionUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.HybridSession.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *HybridSessionCreate) OnConflictColumns(columns ...string) *HybridSessionUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &HybridSessionUpsertOne{
		create: _c,
	}
}

type (
	// HybridSessionUpsertOne is the builder for "upsert"-ing
	//  one HybridSession node.
	HybridSessionUpsertOne struct {
		create *HybridSessionCreate
	}

	// HybridSessionUpsert is the "OnConflict" setter.
	HybridSessionUpsert struct {
		*sql.UpdateSet
	}
)

// SetConfig sets the "config" field.
func (u *HybridSessionUpsert) SetConfig(v map[string]interface{}) *HybridSessionUpsert {
	u.Set(hybridsession.FieldConfig, v)
	return u
}

// UpdateConfig sets the "config" field to the value that was provided on create.
func (u *HybridSessionUpsert) UpdateConfig() *HybridSessionUpsert {
	u.SetExcluded(hybridsession.FieldConfig)
	return u
}

// ClearConfig clears the value of the "config" field.
func (u *HybridSessionUpsert) ClearConfig() *HybridSessionUpsert {
	u.SetNull(hybridsession.FieldConfig)
	return u
}

// SetCompletions sets the "completions" field.
func (u *HybridSessionUpsert) SetCompletions(v []models.PhaseCompletion) *HybridSessionUpsert {
	u.Set(hybridsession.FieldCompletions, v)
	return u
}

// UpdateCompletions sets the "completions" field to the value that was provided on create.
func (u *HybridSessionUpsert) UpdateCompletions() *HybridSessionUpsert {
	u.SetExcluded(hybridsession.FieldCompletions)
	return u
}

// SetCompletedAt sets the "completed_at" field.
func (u *HybridSessionUpsert) SetCompletedAt(v time.Time) *HybridSessionUpsert {
	u.Set(hybridsession.FieldCompletedAt, v)
	return u
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *HybridSessionUpsert) UpdateCompletedAt() *HybridSessionUpsert {
	u.SetExcluded(hybridsession.FieldCompletedAt)
	return u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *HybridSessionUpsert) ClearCompletedAt() *HybridSessionUpsert {
	u.SetNull(hybridsession.FieldCompletedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.HybridSession.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(hybridsession.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *HybridSessionUpsertOne) UpdateNewValues() *HybridSessionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(hybridsession.FieldID)
		}
		if _, exists := u.create.mutation.StudyID(); exists {
			s.SetIgnore(hybridsession.FieldStudyID)
		}
		if _, exists := u.create.mutation.ParticipantA(); exists {
			s.SetIgnore(hybridsession.FieldParticipantA)
		}
		if _, exists := u.create.mutation.ParticipantB(); exists {
			s.SetIgnore(hybridsession.FieldParticipantB)
		}
		if _, exists := u.create.mutation.ActorTypeA(); exists {
			s.SetIgnore(hybridsession.FieldActorTypeA)
		}
		if _, exists := u.create.mutation.ActorTypeB(); exists {
			s.SetIgnore(hybridsession.FieldActorTypeB)
		}
		if _, exists := u.create.mutation.StartedAt(); exists {
			s.SetIgnore(hybridsession.FieldStartedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.HybridSession.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *HybridSessionUpsertOne) Ignore() *HybridSessionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *HybridSessionUpsertOne) DoNothing() *HybridSessionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the HybridSessionCreate.OnConflict
// documentation for more info.
func (u *HybridSessionUpsertOne) Update(set func(*HybridSessionUpsert)) *HybridSessionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&HybridSessionUpsert{UpdateSet: update})
	}))
	return u
}

// SetConfig sets the "config" field.
func (u *HybridSessionUpsertOne) SetConfig(v map[string]interface{}) *HybridSessionUpsertOne {
	return u.Update(func(s *HybridSessionUpsert) {
		s.SetConfig(v)
	})
}

// UpdateConfig sets the "config" field to the value that was provided on create.
func (u *HybridSessionUpsertOne) UpdateConfig() *HybridSessionUpsertOne {
	return u.Update(func(s *HybridSessionUpsert) {
		s.UpdateConfig()
	})
}

// ClearConfig clears the value of the "config" field.
func (u *HybridSessionUpsertOne) ClearConfig() *HybridSessionUpsertOne {
	return u.Update(func(s *HybridSessionUpsert) {
		s.ClearConfig()
	})
}

// SetCompletions sets the "completions" field.
func (u *HybridSessionUpsertOne) SetCompletions(v []models.PhaseCompletion) *HybridSessionUpsertOne {
	return u.Update(func(s *HybridSessionUpsert) {
		s.SetCompletions(v)
	})
}

// UpdateCompletions sets the "completions" field to the value that was provided on create.
func (u *HybridSessionUpsertOne) UpdateCompletions() *HybridSessionUpsertOne {
	return u.Update(func(s *HybridSessionUpsert) {
		s.UpdateCompletions()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *HybridSessionUpsertOne) SetCompletedAt(v time.Time) *HybridSessionUpsertOne {
	return u.Update(func(s *HybridSessionUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *HybridSessionUpsertOne) UpdateCompletedAt() *HybridSessionUpsertOne {
	return u.Update(func(s *HybridSessionUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *HybridSessionUpsertOne) ClearCompletedAt() *HybridSessionUpsertOne {
	return u.Update(func(s *HybridSessionUpsert) {
		s.ClearCompletedAt()
	})
}

// Exec executes the query.
func (u *HybridSessionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for HybridSessionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *HybridSessionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *HybridSessionUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: HybridSessionUpsertOne.ID is not supported by MySQL driver. Use HybridSessionUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *HybridSessionUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// HybridSessionCreateBulk is the builder for creating many HybridSession entities in bulk.
type HybridSessionCreateBulk struct {
	config
	err      error
	builders []*HybridSessionCreate
	conflict []sql.ConflictOption
}

// Save creates the HybridSession entities in the database.
func (_c *HybridSessionCreateBulk) Save(ctx context.Context) ([]*HybridSession, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*HybridSession, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*HybridSessionMutation)
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
func (_c *HybridSessionCreateBulk) SaveX(ctx context.Context) []*HybridSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *HybridSessionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *HybridSessionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.HybridSession.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.HybridSessionUpsert) {
//			SetStudyID(v+v).
//		}).
//		Exec(ctx)
func (_c *HybridSessionCreateBulk) OnConflict(opts ...sql.ConflictOption) *HybridSessionUpsertBulk {
	_c.conflict = opts
	return &HybridSessionUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.HybridSession.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *HybridSessionCreateBulk) OnConflictColumns(columns ...string) *HybridSessionUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &HybridSessionUpsertBulk{
		create: _c,
	}
}

// HybridSessionUpsertBulk is the builder for "upsert"-ing
// a bulk of HybridSession nodes.
type HybridSessionUpsertBulk struct {
	create *HybridSessionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.HybridSession.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(hybridsession.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *HybridSessionUpsertBulk) UpdateNewValues() *HybridSessionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(hybridsession.FieldID)
			}
			if _, exists := b.mutation.StudyID(); exists {
				s.SetIgnore(hybridsession.FieldStudyID)
			}
			if _, exists := b.mutation.ParticipantA(); exists {
				s.SetIgnore(hybridsession.FieldParticipantA)
			}
			if _, exists := b.mutation.ParticipantB(); exists {
				s.SetIgnore(hybridsession.FieldParticipantB)
			}
			if _, exists := b.mutation.ActorTypeA(); exists {
				s.SetIgnore(hybridsession.FieldActorTypeA)
			}
			if _, exists := b.mutation.ActorTypeB(); exists {
				s.SetIgnore(hybridsession.FieldActorTypeB)
			}
			if _, exists := b.mutation.StartedAt(); exists {
				s.SetIgnore(hybridsession.FieldStartedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.HybridSession.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *HybridSessionUpsertBulk) Ignore() *HybridSessionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *HybridSessionUpsertBulk) DoNothing() *HybridSessionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the HybridSessionCreateBulk.OnConflict
// documentation for more info.
func (u *HybridSessionUpsertBulk) Update(set func(*HybridSessionUpsert)) *HybridSessionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&HybridSessionUpsert{UpdateSet: update})
	}))
	return u
}

// SetConfig sets the "config" field.
func (u *HybridSessionUpsertBulk) SetConfig(v map[string]interface{}) *HybridSessionUpsertBulk {
	return u.Update(func(s *HybridSessionUpsert) {
		s.SetConfig(v)
	})
}

// UpdateConfig sets the "config" field to the value that was provided on create.
func (u *HybridSessionUpsertBulk) UpdateConfig() *HybridSessionUpsertBulk {
	return u.Update(func(s *HybridSessionUpsert) {
		s.UpdateConfig()
	})
}

// ClearConfig clears the value of the "config" field.
func (u *HybridSessionUpsertBulk) ClearConfig() *HybridSessionUpsertBulk {
	return u.Update(func(s *HybridSessionUpsert) {
		s.ClearConfig()
	})
}

// SetCompletions sets the "completions" field.
func (u *HybridSessionUpsertBulk) SetCompletions(v []models.PhaseCompletion) *HybridSessionUpsertBulk {
	return u.Update(func(s *HybridSessionUpsert) {
		s.SetCompletions(v)
	})
}

// UpdateCompletions sets the "completions" field to the value that was provided on create.
func (u *HybridSessionUpsertBulk) UpdateCompletions() *HybridSessionUpsertBulk {
	return u.Update(func(s *HybridSessionUpsert) {
		s.UpdateCompletions()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *HybridSessionUpsertBulk) SetCompletedAt(v time.Time) *HybridSessionUpsertBulk {
	return u.Update(func(s *HybridSessionUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *HybridSessionUpsertBulk) UpdateCompletedAt() *HybridSessionUpsertBulk {
	return u.Update(func(s *HybridSessionUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *HybridSessionUpsertBulk) ClearCompletedAt() *HybridSessionUpsertBulk {
	return u.Update(func(s *HybridSessionUpsert) {
		s.ClearCompletedAt()
	})
}

// Exec executes the query.
func (u *HybridSessionUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the HybridSessionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for HybridSessionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *HybridSessionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
