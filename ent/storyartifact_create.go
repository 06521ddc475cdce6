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
	"github.com/dyadlab/fabula/ent/storyartifact"
)

// StoryArtifactCreate is the builder for creating a StoryArtifact entity.
type StoryArtifactCreate struct {
	config
	mutation *StoryArtifactMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetParticipantID sets the "participant_id" field.
func (_c *StoryArtifactCreate) SetParticipantID(v string) *StoryArtifactCreate {
	_c.mutation.SetParticipantID(v)
	return _c
}

// SetPluginType sets the "plugin_type" field.
func (_c *StoryArtifactCreate) SetPluginType(v string) *StoryArtifactCreate {
	_c.mutation.SetPluginType(v)
	return _c
}

// SetVersion sets the "version" field.
func (_c *StoryArtifactCreate) SetVersion(v int) *StoryArtifactCreate {
	_c.mutation.SetVersion(v)
	return _c
}

// SetBlobKey sets the "blob_key" field.
func (_c *StoryArtifactCreate) SetBlobKey(v string) *StoryArtifactCreate {
	_c.mutation.SetBlobKey(v)
	return _c
}

// SetBucket sets the "bucket" field.
func (_c *StoryArtifactCreate) SetBucket(v string) *StoryArtifactCreate {
	_c.mutation.SetBucket(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *StoryArtifactCreate) SetStatus(v storyartifact.Status) *StoryArtifactCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *StoryArtifactCreate) SetNillableStatus(v *storyartifact.Status) *StoryArtifactCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetName sets the "name" field.
func (_c *StoryArtifactCreate) SetName(v string) *StoryArtifactCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_c *StoryArtifactCreate) SetNillableName(v *string) *StoryArtifactCreate {
	if v != nil {
		_c.SetName(*v)
	}
	return _c
}

// SetDescription sets the "description" field.
func (_c *StoryArtifactCreate) SetDescription(v string) *StoryArtifactCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *StoryArtifactCreate) SetNillableDescription(v *string) *StoryArtifactCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetRound sets the "round" field.
func (_c *StoryArtifactCreate) SetRound(v int) *StoryArtifactCreate {
	_c.mutation.SetRound(v)
	return _c
}

// SetNillableRound sets the "round" field if the given value is not nil.
func (_c *StoryArtifactCreate) SetNillableRound(v *int) *StoryArtifactCreate {
	if v != nil {
		_c.SetRound(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *StoryArtifactCreate) SetCreatedAt(v time.Time) *StoryArtifactCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *StoryArtifactCreate) SetNillableCreatedAt(v *time.Time) *StoryArtifactCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *StoryArtifactCreate) SetID(v string) *StoryArtifactCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetParticipant sets the "participant" edge to the Participant entity.
func (_c *StoryArtifactCreate) SetParticipant(v *Participant) *StoryArtifactCreate {
	return _c.SetParticipantID(v.ID)
}

// Mutation returns the StoryArtifactMutation object of the builder.
func (_c *StoryArtifactCreate) Mutation() *StoryArtifactMutation {
	return _c.mutation
}

// Save creates the StoryArtifact in the database.
func (_c *StoryArtifactCreate) Save(ctx context.Context) (*StoryArtifact, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *StoryArtifactCreate) SaveX(ctx context.Context) *StoryArtifact {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StoryArtifactCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StoryArtifactCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *StoryArtifactCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := storyartifact.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := storyartifact.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *StoryArtifactCreate) check() error {
	if _, ok := _c.mutation.ParticipantID(); !ok {
		return &ValidationError{Name: "participant_id", err: errors.New(`ent: missing required field "StoryArtifact.participant_id"`)}
	}
	if _, ok := _c.mutation.PluginType(); !ok {
		return &ValidationError{Name: "plugin_type", err: errors.New(`ent: missing required field "StoryArtifact.plugin_type"`)}
	}
	if _, ok := _c.mutation.Version(); !ok {
		return &ValidationError{Name: "version", err: errors.New(`ent: missing required field "StoryArtifact.version"`)}
	}
	if _, ok := _c.mutation.BlobKey(); !ok {
		return &ValidationError{Name: "blob_key", err: errors.New(`ent: missing required field "StoryArtifact.blob_key"`)}
	}
	if _, ok := _c.mutation.Bucket(); !ok {
		return &ValidationError{Name: "bucket", err: errors.New(`ent: missing required field "StoryArtifact.bucket"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "StoryArtifact.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := storyartifact.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "StoryArtifact.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "StoryArtifact.created_at"`)}
	}
	if len(_c.mutation.ParticipantIDs()) == 0 {
		return &ValidationError{Name: "participant", err: errors.New(`ent: missing required edge "StoryArtifact.participant"`)}
	}
	return nil
}

func (_c *StoryArtifactCreate) sqlSave(ctx context.Context) (*StoryArtifact, error) {
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
			return nil, fmt.Errorf("unexpected StoryArtifact.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *StoryArtifactCreate) createSpec() (*StoryArtifact, *sqlgraph.CreateSpec) {
	var (
		_node = &StoryArtifact{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(storyartifact.Table, sqlgraph.NewFieldSpec(storyartifact.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.PluginType(); ok {
		_spec.SetField(storyartifact.FieldPluginType, field.TypeString, value)
		_node.PluginType = value
	}
	if value, ok := _c.mutation.Version(); ok {
		_spec.SetField(storyartifact.FieldVersion, field.TypeInt, value)
		_node.Version = value
	}
	if value, ok := _c.mutation.BlobKey(); ok {
		_spec.SetField(storyartifact.FieldBlobKey, field.TypeString, value)
		_node.BlobKey = value
	}
	if value, ok := _c.mutation.Bucket(); ok {
		_spec.SetField(storyartifact.FieldBucket, field.TypeString, value)
		_node.Bucket = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(storyartifact.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(storyartifact.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(storyartifact.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.Round(); ok {
		_spec.SetField(storyartifact.FieldRound, field.TypeInt, value)
		_node.Round = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(storyartifact.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.ParticipantIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   storyartifact.ParticipantTable,
			Columns: []string{storyartifact.ParticipantColumn},
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
//	client.StoryArtifact.Create().
//		SetParticipantID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.StoryArtifactUpsert) {
//			SetParticipantID(v+v).
//		}).
//		Exec(ctx)
func (_c *StoryArtifactCreate) OnConflict(opts ...sql.ConflictOption) *StoryArtifactUpsertOne {
	_c.conflict = opts
	return &StoryArtifactUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.StoryArtifact.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *StoryArtifactCreate) OnConflictColumns(columns ...string) *StoryArtifactUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &StoryArtifactUpsertOne{
		create: _c,
	}
}

type (
	// StoryArtifactUpsertOne is the builder for "upsert"-ing
	//  one StoryArtifact node.
	StoryArtifactUpsertOne struct {
		create *StoryArtifactCreate
	}

	// StoryArtifactUpsert is the "OnConflict" setter.
	StoryArtifactUpsert struct {
		*sql.UpdateSet
	}
)

// SetVersion sets the "version" field.
func (u *StoryArtifactUpsert) SetVersion(v int) *StoryArtifactUpsert {
	u.Set(storyartifact.FieldVersion, v)
	return u
}

// UpdateVersion sets the "version" field to the value that was provided on create.
func (u *StoryArtifactUpsert) UpdateVersion() *StoryArtifactUpsert {
	u.SetExcluded(storyartifact.FieldVersion)
	return u
}

// AddVersion adds v to the "version" field.
func (u *StoryArtifactUpsert) AddVersion(v int) *StoryArtifactUpsert {
	u.Add(storyartifact.FieldVersion, v)
	return u
}

// SetBlobKey sets the "blob_key" field.
func (u *StoryArtifactUpsert) SetBlobKey(v string) *StoryArtifactUpsert {
	u.Set(storyartifact.FieldBlobKey, v)
	return u
}

// UpdateBlobKey sets the "blob_key" field to the value that was provided on create.
func (u *StoryArtifactUpsert) UpdateBlobKey() *StoryArtifactUpsert {
	u.SetExcluded(storyartifact.FieldBlobKey)
	return u
}

// SetBucket sets the "bucket" field.
func (u *StoryArtifactUpsert) SetBucket(v string) *StoryArtifactUpsert {
	u.Set(storyartifact.FieldBucket, v)
	return u
}

// UpdateBucket sets the "bucket" field to the value that was provided on create.
func (u *StoryArtifactUpsert) UpdateBucket() *StoryArtifactUpsert {
	u.SetExcluded(storyartifact.FieldBucket)
	return u
}

// SetStatus sets the "status" field.
func (u *StoryArtifactUpsert) SetStatus(v storyartifact.Status) *StoryArtifactUpsert {
	u.Set(storyartifact.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *StoryArtifactUpsert) UpdateStatus() *StoryArtifactUpsert {
	u.SetExcluded(storyartifact.FieldStatus)
	return u
}

// SetName sets the "name" field.
func (u *StoryArtifactUpsert) SetName(v string) *StoryArtifactUpsert {
	u.Set(storyartifact.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *StoryArtifactUpsert) UpdateName() *StoryArtifactUpsert {
	u.SetExcluded(storyartifact.FieldName)
	return u
}

// ClearName clears the value of the "name" field.
func (u *StoryArtifactUpsert) ClearName() *StoryArtifactUpsert {
	u.SetNull(storyartifact.FieldName)
	return u
}

// SetDescription sets the "description" field.
func (u *StoryArtifactUpsert) SetDescription(v string) *StoryArtifactUpsert {
	u.Set(storyartifact.FieldDescription, v)
	return u
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *StoryArtifactUpsert) UpdateDescription() *StoryArtifactUpsert {
	u.SetExcluded(storyartifact.FieldDescription)
	return u
}

// ClearDescription clears the value of the "description" field.
func (u *StoryArtifactUpsert) ClearDescription() *StoryArtifactUpsert {
	u.SetNull(storyartifact.FieldDescription)
	return u
}

// SetRound sets the "round" field.
func (u *StoryArtifactUpsert) SetRound(v int) *StoryArtifactUpsert {
	u.Set(storyartifact.FieldRound, v)
	return u
}

// UpdateRound sets the "round" field to the value that was provided on create.
func (u *StoryArtifactUpsert) UpdateRound() *StoryArtifactUpsert {
	u.SetExcluded(storyartifact.FieldRound)
	return u
}

// AddRound adds v to the "round" field.
func (u *StoryArtifactUpsert) AddRound(v int) *StoryArtifactUpsert {
	u.Add(storyartifact.FieldRound, v)
	return u
}

// ClearRound clears the value of the "round" field.
func (u *StoryArtifactUpsert) ClearRound() *StoryArtifactUpsert {
	u.SetNull(storyartifact.FieldRound)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.StoryArtifact.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(storyartifact.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *StoryArtifactUpsertOne) UpdateNewValues() *StoryArtifactUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(storyartifact.FieldID)
		}
		if _, exists := u.create.mutation.ParticipantID(); exists {
			s.SetIgnore(storyartifact.FieldParticipantID)
		}
		if _, exists := u.create.mutation.PluginType(); exists {
			s.SetIgnore(storyartifact.FieldPluginType)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(storyartifact.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.StoryArtifact.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *StoryArtifactUpsertOne) Ignore() *StoryArtifactUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *StoryArtifactUpsertOne) DoNothing() *StoryArtifactUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the StoryArtifactCreate.OnConflict
// documentation for more info.
func (u *StoryArtifactUpsertOne) Update(set func(*StoryArtifactUpsert)) *StoryArtifactUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&StoryArtifactUpsert{UpdateSet: update})
	}))
	return u
}

// SetVersion sets the "version" field.
func (u *StoryArtifactUpsertOne) SetVersion(v int) *StoryArtifactUpsertOne {
	return u.Update(func(s *StoryArtifactUpsert) {
		s.SetVersion(v)
	})
}

// AddVersion adds v to the "version" field.
func (u *StoryArtifactUpsertOne) AddVersion(v int) *StoryArtifactUpsertOne {
	return u.Update(func(s *StoryArtifactUpsert) {
		s.AddVersion(v)
	})
}

// UpdateVersion sets the "version" field to the value that was provided on create.
func (u *StoryArtifactUpsertOne) UpdateVersion() *StoryArtifactUpsertOne {
	return u.Update(func(s *StoryArtifactUpsert) {
		s.UpdateVersion()
	})
}

// SetBlobKey sets the "blob_key" field.
func (u *StoryArtifactUpsertOne) SetBlobKey(v string) *StoryArtifactUpsertOne {
	return u.Update(func(s *StoryArtifactUpsert) {
		s.SetBlobKey(v)
	})
}

// UpdateBlobKey sets the "blob_key" field to the value that was provided on create.
func (u *StoryArtifactUpsertOne) UpdateBlobKey() *StoryArtifactUpsertOne {
	return u.Update(func(s *StoryArtifactUpsert) {
		s.UpdateBlobKey()
	})
}

// SetBucket sets the "bucket" field.
func (u *StoryArtifactUpsertOne) SetBucket(v string) *StoryArtifactUpsertOne {
	return u.Update(func(s *StoryArtifactUpsert) {
		s.SetBucket(v)
	})
}

// UpdateBucket sets the "bucket" field to the value that was provided on create.
func (u *StoryArtifactUpsertOne) UpdateBucket() *StoryArtifactUpsertOne {
	return u.Update(func(s *StoryArtifactUpsert) {
		s.UpdateBucket()
	})
}

// SetStatus sets the "status" field.
func (u *StoryArtifactUpsertOne) SetStatus(v storyartifact.Status) *StoryArtifactUpsertOne {
	return u.Update(func(s *StoryArtifactUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *StoryArtifactUpsertOne) UpdateStatus() *StoryArtifactUpsertOne {
	return u.Update(func(s *StoryArtifactUpsert) {
		s.UpdateStatus()
	})
}

// SetName sets the "name" field.
func (u *StoryArtifactUpsertOne) SetName(v string) *StoryArtifactUpsertOne {
	return u.Update(func(s *StoryArtifactUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *StoryArtifactUpsertOne) UpdateName() *StoryArtifactUpsertOne {
	return u.Update(func(s *StoryArtifactUpsert) {
		s.UpdateName()
	})
}

// ClearName clears the value of the "name" field.
func (u *StoryArtifactUpsertOne) ClearName() *StoryArtifactUpsertOne {
	return u.Update(func(s *StoryArtifactUpsert) {
		s.ClearName()
	})
}

// SetDescription sets the "description" field.
func (u *StoryArtifactUpsertOne) SetDescription(v string) *StoryArtifactUpsertOne {
	return u.Update(func(s *StoryArtifactUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *StoryArtifactUpsertOne) UpdateDescription() *StoryArtifactUpsertOne {
	return u.Update(func(s *StoryArtifactUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *StoryArtifactUpsertOne) ClearDescription() *StoryArtifactUpsertOne {
	return u.Update(func(s *StoryArtifactUpsert) {
		s.ClearDescription()
	})
}

// SetRound sets the "round" field.
func (u *StoryArtifactUpsertOne) SetRound(v int) *StoryArtifactUpsertOne {
	return u.Update(func(s *StoryArtifactUpsert) {
		s.SetRound(v)
	})
}

// AddRound adds v to the "round" field.
func (u *StoryArtifactUpsertOne) AddRound(v int) *StoryArtifactUpsertOne {
	return u.Update(func(s *StoryArtifactUpsert) {
		s.AddRound(v)
	})
}

// UpdateRound sets the "round" field to the value that was provided on create.
func (u *StoryArtifactUpsertOne) UpdateRound() *StoryArtifactUpsertOne {
	return u.Update(func(s *StoryArtifactUpsert) {
		s.UpdateRound()
	})
}

// ClearRound clears the value of the "round" field.
func (u *StoryArtifactUpsertOne) ClearRound() *StoryArtifactUpsertOne {
	return u.Update(func(s *StoryArtifactUpsert) {
		s.ClearRound()
	})
}

// Exec executes the query.
func (u *StoryArtifactUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for StoryArtifactCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *StoryArtifactUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *StoryArtifactUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: StoryArtifactUpsertOne.ID is not supported by MySQL driver. Use StoryArtifactUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *StoryArtifactUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// StoryArtifactCreateBulk is the builder for creating many StoryArtifact entities in bulk.
type StoryArtifactCreateBulk struct {
	config
	err      error
	builders []*StoryArtifactCreate
	conflict []sql.ConflictOption
}

// Save creates the StoryArtifact entities in the database.
func (_c *StoryArtifactCreateBulk) Save(ctx context.Context) ([]*StoryArtifact, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*StoryArtifact, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*StoryArtifactMutation)
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
func (_c *StoryArtifactCreateBulk) SaveX(ctx context.Context) []*StoryArtifact {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StoryArtifactCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StoryArtifactCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.StoryArtifact.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.StoryArtifactUpsert) {
//			SetParticipantID(v+v).
//		}).
//		Exec(ctx)
func (_c *StoryArtifactCreateBulk) OnConflict(opts ...sql.ConflictOption) *StoryArtifactUpsertBulk {
	_c.conflict = opts
	return &StoryArtifactUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.StoryArtifact.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *StoryArtifactCreateBulk) OnConflictColumns(columns ...string) *StoryArtifactUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &StoryArtifactUpsertBulk{
		create: _c,
	}
}

// StoryArtifactUpsertBulk is the builder for "upsert"-ing
// a bulk of StoryArtifact nodes.
type StoryArtifactUpsertBulk struct {
	create *StoryArtifactCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.StoryArtifact.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(storyartifact.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *StoryArtifactUpsertBulk) UpdateNewValues() *StoryArtifactUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(storyartifact.FieldID)
			}
			if _, exists := b.mutation.ParticipantID(); exists {
				s.SetIgnore(storyartifact.FieldParticipantID)
			}
			if _, exists := b.mutation.PluginType(); exists {
				s.SetIgnore(storyartifact.FieldPluginType)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(storyartifact.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.StoryArtifact.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *StoryArtifactUpsertBulk) Ignore() *StoryArtifactUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *StoryArtifactUpsertBulk) DoNothing() *StoryArtifactUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the StoryArtifactCreateBulk.OnConflict
// documentation for more info.
func (u *StoryArtifactUpsertBulk) Update(set func(*StoryArtifactUpsert)) *StoryArtifactUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&StoryArtifactUpsert{UpdateSet: update})
	}))
	return u
}

// SetVersion sets the "version" field.
func (u *StoryArtifactUpsertBulk) SetVersion(v int) *StoryArtifactUpsertBulk {
	return u.Update(func(s *StoryArtifactUpsert) {
		s.SetVersion(v)
	})
}

// AddVersion adds v to the "version" field.
func (u *StoryArtifactUpsertBulk) AddVersion(v int) *StoryArtifactUpsertBulk {
	return u.Update(func(s *StoryArtifactUpsert) {
		s.AddVersion(v)
	})
}

// UpdateVersion sets the "version" field to the value that was provided on create.
func (u *StoryArtifactUpsertBulk) UpdateVersion() *StoryArtifactUpsertBulk {
	return u.Update(func(s *StoryArtifactUpsert) {
		s.UpdateVersion()
	})
}

// SetBlobKey sets the "blob_key" field.
func (u *StoryArtifactUpsertBulk) SetBlobKey(v string) *StoryArtifactUpsertBulk {
	return u.Update(func(s *StoryArtifactUpsert) {
		s.SetBlobKey(v)
	})
}

// UpdateBlobKey sets the "blob_key" field to the value that was provided on create.
func (u *StoryArtifactUpsertBulk) UpdateBlobKey() *StoryArtifactUpsertBulk {
	return u.Update(func(s *StoryArtifactUpsert) {
		s.UpdateBlobKey()
	})
}

// SetBucket sets the "bucket" field.
func (u *StoryArtifactUpsertBulk) SetBucket(v string) *StoryArtifactUpsertBulk {
	return u.Update(func(s *StoryArtifactUpsert) {
		s.SetBucket(v)
	})
}

// UpdateBucket sets the "bucket" field to the value that was provided on create.
func (u *StoryArtifactUpsertBulk) UpdateBucket() *StoryArtifactUpsertBulk {
	return u.Update(func(s *StoryArtifactUpsert) {
		s.UpdateBucket()
	})
}

// SetStatus sets the "status" field.
func (u *StoryArtifactUpsertBulk) SetStatus(v storyartifact.Status) *StoryArtifactUpsertBulk {
	return u.Update(func(s *StoryArtifactUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *StoryArtifactUpsertBulk) UpdateStatus() *StoryArtifactUpsertBulk {
	return u.Update(func(s *StoryArtifactUpsert) {
		s.UpdateStatus()
	})
}

// SetName sets the "name" field.
func (u *StoryArtifactUpsertBulk) SetName(v string) *StoryArtifactUpsertBulk {
	return u.Update(func(s *StoryArtifactUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *StoryArtifactUpsertBulk) UpdateName() *StoryArtifactUpsertBulk {
	return u.Update(func(s *StoryArtifactUpsert) {
		s.UpdateName()
	})
}

// ClearName clears the value of the "name" field.
func (u *StoryArtifactUpsertBulk) ClearName() *StoryArtifactUpsertBulk {
	return u.Update(func(s *StoryArtifactUpsert) {
		s.ClearName()
	})
}

// SetDescription sets the "description" field.
func (u *StoryArtifactUpsertBulk) SetDescription(v string) *StoryArtifactUpsertBulk {
	return u.Update(func(s *StoryArtifactUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *StoryArtifactUpsertBulk) UpdateDescription() *StoryArtifactUpsertBulk {
	return u.Update(func(s *StoryArtifactUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *StoryArtifactUpsertBulk) ClearDescription() *StoryArtifactUpsertBulk {
	return u.Update(func(s *StoryArtifactUpsert) {
		s.ClearDescription()
	})
}

// SetRound sets the "round" field.
func (u *StoryArtifactUpsertBulk) SetRound(v int) *StoryArtifactUpsertBulk {
	return u.Update(func(s *StoryArtifactUpsert) {
		s.SetRound(v)
	})
}

// AddRound adds v to the "round" field.
func (u *StoryArtifactUpsertBulk) AddRound(v int) *StoryArtifactUpsertBulk {
	return u.Update(func(s *StoryArtifactUpsert) {
		s.AddRound(v)
	})
}

// UpdateRound sets the "round" field to the value that was provided on create.
func (u *StoryArtifactUpsertBulk) UpdateRound() *StoryArtifactUpsertBulk {
	return u.Update(func(s *StoryArtifactUpsert) {
		s.UpdateRound()
	})
}

// ClearRound clears the value of the "round" field.
func (u *StoryArtifactUpsertBulk) ClearRound() *StoryArtifactUpsertBulk {
	return u.Update(func(s *StoryArtifactUpsert) {
		s.ClearRound()
	})
}

// Exec executes the query.
func (u *StoryArtifactUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the StoryArtifactCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for StoryArtifactCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *StoryArtifactUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
