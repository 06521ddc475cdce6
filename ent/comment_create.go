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
	"github.com/dyadlab/fabula/ent/comment"
	"github.com/dyadlab/fabula/ent/participant"
)

// CommentCreate is the builder for creating a Comment entity.
type CommentCreate struct {
	config
	mutation *CommentMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetAuthorID sets the "author_id" field.
func (_c *CommentCreate) SetAuthorID(v string) *CommentCreate {
	_c.mutation.SetAuthorID(v)
	return _c
}

// SetTargetParticipantID sets the "target_participant_id" field.
func (_c *CommentCreate) SetTargetParticipantID(v string) *CommentCreate {
	_c.mutation.SetTargetParticipantID(v)
	return _c
}

// SetStoryArtifactID sets the "story_artifact_id" field.
func (_c *CommentCreate) SetStoryArtifactID(v string) *CommentCreate {
	_c.mutation.SetStoryArtifactID(v)
	return _c
}

// SetNillableStoryArtifactID sets the "story_artifact_id" field if the given value is not nil.
func (_c *CommentCreate) SetNillableStoryArtifactID(v *string) *CommentCreate {
	if v != nil {
		_c.SetStoryArtifactID(*v)
	}
	return _c
}

// SetPassageID sets the "passage_id" field.
func (_c *CommentCreate) SetPassageID(v string) *CommentCreate {
	_c.mutation.SetPassageID(v)
	return _c
}

// SetNillablePassageID sets the "passage_id" field if the given value is not nil.
func (_c *CommentCreate) SetNillablePassageID(v *string) *CommentCreate {
	if v != nil {
		_c.SetPassageID(*v)
	}
	return _c
}

// SetContent sets the "content" field.
func (_c *CommentCreate) SetContent(v string) *CommentCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetType sets the "type" field.
func (_c *CommentCreate) SetType(v comment.Type) *CommentCreate {
	_c.mutation.SetType(v)
	return _c
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_c *CommentCreate) SetNillableType(v *comment.Type) *CommentCreate {
	if v != nil {
		_c.SetType(*v)
	}
	return _c
}

// SetRound sets the "round" field.
func (_c *CommentCreate) SetRound(v int) *CommentCreate {
	_c.mutation.SetRound(v)
	return _c
}

// SetPhase sets the "phase" field.
func (_c *CommentCreate) SetPhase(v comment.Phase) *CommentCreate {
	_c.mutation.SetPhase(v)
	return _c
}

// SetNillablePhase sets the "phase" field if the given value is not nil.
func (_c *CommentCreate) SetNillablePhase(v *comment.Phase) *CommentCreate {
	if v != nil {
		_c.SetPhase(*v)
	}
	return _c
}

// SetParentID sets the "parent_id" field.
func (_c *CommentCreate) SetParentID(v string) *CommentCreate {
	_c.mutation.SetParentID(v)
	return _c
}

// SetNillableParentID sets the "parent_id" field if the given value is not nil.
func (_c *CommentCreate) SetNillableParentID(v *string) *CommentCreate {
	if v != nil {
		_c.SetParentID(*v)
	}
	return _c
}

// SetResolved sets the "resolved" field.
func (_c *CommentCreate) SetResolved(v bool) *CommentCreate {
	_c.mutation.SetResolved(v)
	return _c
}

// SetNillableResolved sets the "resolved" field if the given value is not nil.
func (_c *CommentCreate) SetNillableResolved(v *bool) *CommentCreate {
	if v != nil {
		_c.SetResolved(*v)
	}
	return _c
}

// SetAddressedInRound sets the "addressed_in_round" field.
func (_c *CommentCreate) SetAddressedInRound(v int) *CommentCreate {
	_c.mutation.SetAddressedInRound(v)
	return _c
}

// SetNillableAddressedInRound sets the "addressed_in_round" field if the given value is not nil.
func (_c *CommentCreate) SetNillableAddressedInRound(v *int) *CommentCreate {
	if v != nil {
		_c.SetAddressedInRound(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *CommentCreate) SetCreatedAt(v time.Time) *CommentCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CommentCreate) SetNillableCreatedAt(v *time.Time) *CommentCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CommentCreate) SetID(v string) *CommentCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetAuthor sets the "author" edge to the Participant entity.
func (_c *CommentCreate) SetAuthor(v *Participant) *CommentCreate {
	return _c.SetAuthorID(v.ID)
}

// SetTargetID sets the "target" edge to the Participant entity by ID.
func (_c *CommentCreate) SetTargetID(id string) *CommentCreate {
	_c.mutation.SetTargetID(id)
	return _c
}

// SetTarget sets the "target" edge to the Participant entity.
func (_c *CommentCreate) SetTarget(v *Participant) *CommentCreate {
	return _c.SetTargetID(v.ID)
}

// Mutation returns the CommentMutation object of the builder.
func (_c *CommentCreate) Mutation() *CommentMutation {
	return _c.mutation
}

// Save creates the Comment in the database.
func (_c *CommentCreate) Save(ctx context.Context) (*Comment, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CommentCreate) SaveX(ctx context.Context) *Comment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CommentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CommentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CommentCreate) defaults() {
	if _, ok := _c.mutation.GetType(); !ok {
		v := comment.DefaultType
		_c.mutation.SetType(v)
	}
	if _, ok := _c.mutation.Phase(); !ok {
		v := comment.DefaultPhase
		_c.mutation.SetPhase(v)
	}
	if _, ok := _c.mutation.Resolved(); !ok {
		v := comment.DefaultResolved
		_c.mutation.SetResolved(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := comment.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CommentCreate) check() error {
	if _, ok := _c.mutation.AuthorID(); !ok {
		return &ValidationError{Name: "author_id", err: errors.New(`ent: missing required field "Comment.author_id"`)}
	}
	if _, ok := _c.mutation.TargetParticipantID(); !ok {
		return &ValidationError{Name: "target_participant_id", err: errors.New(`ent: missing required field "Comment.target_participant_id"`)}
	}
	if _, ok := _c.mutation.Content(); !ok {
		return &ValidationError{Name: "content", err: errors.New(`ent: missing required field "Comment.content"`)}
	}
	if _, ok := _c.mutation.GetType(); !ok {
		return &ValidationError{Name: "type", err: errors.New(`ent: missing required field "Comment.type"`)}
	}
	if v, ok := _c.mutation.GetType(); ok {
		if err := comment.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "Comment.type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Round(); !ok {
		return &ValidationError{Name: "round", err: errors.New(`ent: missing required field "Comment.round"`)}
	}
	if _, ok := _c.mutation.Phase(); !ok {
		return &ValidationError{Name: "phase", err: errors.New(`ent: missing required field "Comment.phase"`)}
	}
	if v, ok := _c.mutation.Phase(); ok {
		if err := comment.PhaseValidator(v); err != nil {
			return &ValidationError{Name: "phase", err: fmt.Errorf(`ent: validator failed for field "Comment.phase": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Resolved(); !ok {
		return &ValidationError{Name: "resolved", err: errors.New(`ent: missing required field "Comment.resolved"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Comment.created_at"`)}
	}
	if len(_c.mutation.AuthorIDs()) == 0 {
		return &ValidationError{Name: "author", err: errors.New(`ent: missing required edge "Comment.author"`)}
	}
	if len(_c.mutation.TargetIDs()) == 0 {
		return &ValidationError{Name: "target", err: errors.New(`ent: missing required edge "Comment.target"`)}
	}
	return nil
}

func (_c *CommentCreate) sqlSave(ctx context.Context) (*Comment, error) {
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
			return nil, fmt.Errorf("unexpected Comment.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CommentCreate) createSpec() (*Comment, *sqlgraph.CreateSpec) {
	var (
		_node = &Comment{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(comment.Table, sqlgraph.NewFieldSpec(comment.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.StoryArtifactID(); ok {
		_spec.SetField(comment.FieldStoryArtifactID, field.TypeString, value)
		_node.StoryArtifactID = &value
	}
	if value, ok := _c.mutation.PassageID(); ok {
		_spec.SetField(comment.FieldPassageID, field.TypeString, value)
		_node.PassageID = &value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(comment.FieldContent, field.TypeString, value)
		_node.Content = value
	}
	if value, ok := _c.mutation.GetType(); ok {
		_spec.SetField(comment.FieldType, field.TypeEnum, value)
		_node.Type = value
	}
	if value, ok := _c.mutation.Round(); ok {
		_spec.SetField(comment.FieldRound, field.TypeInt, value)
		_node.Round = value
	}
	if value, ok := _c.mutation.Phase(); ok {
		_spec.SetField(comment.FieldPhase, field.TypeEnum, value)
		_node.Phase = value
	}
	if value, ok := _c.mutation.ParentID(); ok {
		_spec.SetField(comment.FieldParentID, field.TypeString, value)
		_node.ParentID = &value
	}
	if value, ok := _c.mutation.Resolved(); ok {
		_spec.SetField(comment.FieldResolved, field.TypeBool, value)
		_node.Resolved = value
	}
	if value, ok := _c.mutation.AddressedInRound(); ok {
		_spec.SetField(comment.FieldAddressedInRound, field.TypeInt, value)
		_node.AddressedInRound = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(comment.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.AuthorIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   comment.AuthorTable,
			Columns: []string{comment.AuthorColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(participant.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.AuthorID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.TargetIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   comment.TargetTable,
			Columns: []string{comment.TargetColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(participant.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.TargetParticipantID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Comment.Create().
//		SetAuthorID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CommentUpsert) {
//			SetAuthorID(v+v).
//		}).
//		Exec(ctx)
func (_c *CommentCreate) OnConflict(opts ...sql.ConflictOption) *CommentUpsertOne {
	_c.conflict = opts
	return &CommentUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Comment.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CommentCreate) OnConflictColumns(columns ...string) *CommentUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CommentUpsertOne{
		create: _c,
	}
}

type (
	// CommentUpsertOne is the builder for "upsert"-ing
	//  one Comment node.
	CommentUpsertOne struct {
		create *CommentCreate
	}

	// CommentUpsert is the "OnConflict" setter.
	CommentUpsert struct {
		*sql.UpdateSet
	}
)

// SetStoryArtifactID sets the "story_artifact_id" field.
func (u *CommentUpsert) SetStoryArtifactID(v string) *CommentUpsert {
	u.Set(comment.FieldStoryArtifactID, v)
	return u
}

// UpdateStoryArtifactID sets the "story_artifact_id" field to the value that was provided on create.
func (u *CommentUpsert) UpdateStoryArtifactID() *CommentUpsert {
	u.SetExcluded(comment.FieldStoryArtifactID)
	return u
}

// ClearStoryArtifactID clears the value of the "story_artifact_id" field.
func (u *CommentUpsert) ClearStoryArtifactID() *CommentUpsert {
	u.SetNull(comment.FieldStoryArtifactID)
	return u
}

// SetPassageID sets the "passage_id" field.
func (u *CommentUpsert) SetPassageID(v string) *CommentUpsert {
	u.Set(comment.FieldPassageID, v)
	return u
}

// UpdatePassageID sets the "passage_id" field to the value that was provided on create.
func (u *CommentUpsert) UpdatePassageID() *CommentUpsert {
	u.SetExcluded(comment.FieldPassageID)
	return u
}

// ClearPassageID clears the value of the "passage_id" field.
func (u *CommentUpsert) ClearPassageID() *CommentUpsert {
	u.SetNull(comment.FieldPassageID)
	return u
}

// SetContent sets the "content" field.
func (u *CommentUpsert) SetContent(v string) *CommentUpsert {
	u.Set(comment.FieldContent, v)
	return u
}

// UpdateContent sets the "content" field to the value that was provided on create.
func (u *CommentUpsert) UpdateContent() *CommentUpsert {
	u.SetExcluded(comment.FieldContent)
	return u
}

// SetType sets the "type" field.
func (u *CommentUpsert) SetType(v comment.Type) *CommentUpsert {
	u.Set(comment.FieldType, v)
	return u
}

// UpdateType sets the "type" field to the value that was provided on create.
func (u *CommentUpsert) UpdateType() *CommentUpsert {
	u.SetExcluded(comment.FieldType)
	return u
}

// SetRound sets the "round" field.
func (u *CommentUpsert) SetRound(v int) *CommentUpsert {
	u.Set(comment.FieldRound, v)
	return u
}

// UpdateRound sets the "round" field to the value that was provided on create.
func (u *CommentUpsert) UpdateRound() *CommentUpsert {
	u.SetExcluded(comment.FieldRound)
	return u
}

// AddRound adds v to the "round" field.
func (u *CommentUpsert) AddRound(v int) *CommentUpsert {
	u.Add(comment.FieldRound, v)
	return u
}

// SetPhase sets the "phase" field.
func (u *CommentUpsert) SetPhase(v comment.Phase) *CommentUpsert {
	u.Set(comment.FieldPhase, v)
	return u
}

// UpdatePhase sets the "phase" field to the value that was provided on create.
func (u *CommentUpsert) UpdatePhase() *CommentUpsert {
	u.SetExcluded(comment.FieldPhase)
	return u
}

// SetParentID sets the "parent_id" field.
func (u *CommentUpsert) SetParentID(v string) *CommentUpsert {
	u.Set(comment.FieldParentID, v)
	return u
}

// UpdateParentID sets the "parent_id" field to the value that was provided on create.
func (u *CommentUpsert) UpdateParentID() *CommentUpsert {
	u.SetExcluded(comment.FieldParentID)
	return u
}

// ClearParentID clears the value of the "parent_id" field.
func (u *CommentUpsert) ClearParentID() *CommentUpsert {
	u.SetNull(comment.FieldParentID)
	return u
}

// SetResolved sets the "resolved" field.
func (u *CommentUpsert) SetResolved(v bool) *CommentUpsert {
	u.Set(comment.FieldResolved, v)
	return u
}

// UpdateResolved sets the "resolved" field to the value that was provided on create.
func (u *CommentUpsert) UpdateResolved() *CommentUpsert {
	u.SetExcluded(comment.FieldResolved)
	return u
}

// SetAddressedInRound sets the "addressed_in_round" field.
func (u *CommentUpsert) SetAddressedInRound(v int) *CommentUpsert {
	u.Set(comment.FieldAddressedInRound, v)
	return u
}

// UpdateAddressedInRound sets the "addressed_in_round" field to the value that was provided on create.
func (u *CommentUpsert) UpdateAddressedInRound() *CommentUpsert {
	u.SetExcluded(comment.FieldAddressedInRound)
	return u
}

// AddAddressedInRound adds v to the "addressed_in_round" field.
func (u *CommentUpsert) AddAddressedInRound(v int) *CommentUpsert {
	u.Add(comment.FieldAddressedInRound, v)
	return u
}

// ClearAddressedInRound clears the value of the "addressed_in_round" field.
func (u *CommentUpsert) ClearAddressedInRound() *CommentUpsert {
	u.SetNull(comment.FieldAddressedInRound)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Comment.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(comment.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *CommentUpsertOne) UpdateNewValues() *CommentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(comment.FieldID)
		}
		if _, exists := u.create.mutation.AuthorID(); exists {
			s.SetIgnore(comment.FieldAuthorID)
		}
		if _, exists := u.create.mutation.TargetParticipantID(); exists {
			s.SetIgnore(comment.FieldTargetParticipantID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(comment.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Comment.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *CommentUpsertOne) Ignore() *CommentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CommentUpsertOne) DoNothing() *CommentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CommentCreate.OnConflict
// documentation for more info.
func (u *CommentUpsertOne) Update(set func(*CommentUpsert)) *CommentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CommentUpsert{UpdateSet: update})
	}))
	return u
}

// SetStoryArtifactID sets the "story_artifact_id" field.
func (u *CommentUpsertOne) SetStoryArtifactID(v string) *CommentUpsertOne {
	return u.Update(func(s *CommentUpsert) {
		s.SetStoryArtifactID(v)
	})
}

// UpdateStoryArtifactID sets the "story_artifact_id" field to the value that was provided on create.
func (u *CommentUpsertOne) UpdateStoryArtifactID() *CommentUpsertOne {
	return u.Update(func(s *CommentUpsert) {
		s.UpdateStoryArtifactID()
	})
}

// ClearStoryArtifactID clears the value of the "story_artifact_id" field.
func (u *CommentUpsertOne) ClearStoryArtifactID() *CommentUpsertOne {
	return u.Update(func(s *CommentUpsert) {
		s.ClearStoryArtifactID()
	})
}

// SetPassageID sets the "passage_id" field.
func (u *CommentUpsertOne) SetPassageID(v string) *CommentUpsertOne {
	return u.Update(func(s *CommentUpsert) {
		s.SetPassageID(v)
	})
}

// UpdatePassageID sets the "passage_id" field to the value that was provided on create.
func (u *CommentUpsertOne) UpdatePassageID() *CommentUpsertOne {
	return u.Update(func(s *CommentUpsert) {
		s.UpdatePassageID()
	})
}

// ClearPassageID clears the value of the "passage_id" field.
func (u *CommentUpsertOne) ClearPassageID() *CommentUpsertOne {
	return u.Update(func(s *CommentUpsert) {
		s.ClearPassageID()
	})
}

// SetContent sets the "content" field.
func (u *CommentUpsertOne) SetContent(v string) *CommentUpsertOne {
	return u.Update(func(s *CommentUpsert) {
		s.SetContent(v)
	})
}

// UpdateContent sets the "content" field to the value that was provided on create.
func (u *CommentUpsertOne) UpdateContent() *CommentUpsertOne {
	return u.Update(func(s *CommentUpsert) {
		s.UpdateContent()
	})
}

// SetType sets the "type" field.
func (u *CommentUpsertOne) SetType(v comment.Type) *CommentUpsertOne {
	return u.Update(func(s *CommentUpsert) {
		s.SetType(v)
	})
}

// UpdateType sets the "type" field to the value that was provided on create.
func (u *CommentUpsertOne) UpdateType() *CommentUpsertOne {
	return u.Update(func(s *CommentUpsert) {
		s.UpdateType()
	})
}

// SetRound sets the "round" field.
func (u *CommentUpsertOne) SetRound(v int) *CommentUpsertOne {
	return u.Update(func(s *CommentUpsert) {
		s.SetRound(v)
	})
}

// AddRound adds v to the "round" field.
func (u *CommentUpsertOne) AddRound(v int) *CommentUpsertOne {
	return u.Update(func(s *CommentUpsert) {
		s.AddRound(v)
	})
}

// UpdateRound sets the "round" field to the value that was provided on create.
func (u *CommentUpsertOne) UpdateRound() *CommentUpsertOne {
	return u.Update(func(s *CommentUpsert) {
		s.UpdateRound()
	})
}

// SetPhase sets the "phase" field.
func (u *CommentUpsertOne) SetPhase(v comment.Phase) *CommentUpsertOne {
	return u.Update(func(s *CommentUpsert) {
		s.SetPhase(v)
	})
}

// UpdatePhase sets the "phase" field to the value that was provided on create.
func (u *CommentUpsertOne) UpdatePhase() *CommentUpsertOne {
	return u.Update(func(s *CommentUpsert) {
		s.UpdatePhase()
	})
}

// SetParentID sets the "parent_id" field.
func (u *CommentUpsertOne) SetParentID(v string) *CommentUpsertOne {
	return u.Update(func(s *CommentUpsert) {
		s.SetParentID(v)
	})
}

// UpdateParentID sets the "parent_id" field to the value that was provided on create.
func (u *CommentUpsertOne) UpdateParentID() *CommentUpsertOne {
	return u.Update(func(s *CommentUpsert) {
		s.UpdateParentID()
	})
}

// ClearParentID clears the value of the "parent_id" field.
func (u *CommentUpsertOne) ClearParentID() *CommentUpsertOne {
	return u.Update(func(s *CommentUpsert) {
		s.ClearParentID()
	})
}

// SetResolved sets the "resolved" field.
func (u *CommentUpsertOne) SetResolved(v bool) *CommentUpsertOne {
	return u.Update(func(s *CommentUpsert) {
		s.SetResolved(v)
	})
}

// UpdateResolved sets the "resolved" field to the value that was provided on create.
func (u *CommentUpsertOne) UpdateResolved() *CommentUpsertOne {
	return u.Update(func(s *CommentUpsert) {
		s.UpdateResolved()
	})
}

// SetAddressedInRound sets the "addressed_in_round" field.
func (u *CommentUpsertOne) SetAddressedInRound(v int) *CommentUpsertOne {
	return u.Update(func(s *CommentUpsert) {
		s.SetAddressedInRound(v)
	})
}

// AddAddressedInRound adds v to the "addressed_in_round" field.
func (u *CommentUpsertOne) AddAddressedInRound(v int) *CommentUpsertOne {
	return u.Update(func(s *CommentUpsert) {
		s.AddAddressedInRound(v)
	})
}

// UpdateAddressedInRound sets the "addressed_in_round" field to the value that was provided on create.
func (u *CommentUpsertOne) UpdateAddressedInRound() *CommentUpsertOne {
	return u.Update(func(s *CommentUpsert) {
		s.UpdateAddressedInRound()
	})
}

// ClearAddressedInRound clears the value of the "addressed_in_round" field.
func (u *CommentUpsertOne) ClearAddressedInRound() *CommentUpsertOne {
	return u.Update(func(s *CommentUpsert) {
		s.ClearAddressedInRound()
	})
}

// Exec executes the query.
func (u *CommentUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CommentCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CommentUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *CommentUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: CommentUpsertOne.ID is not supported by MySQL driver. Use CommentUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *CommentUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// CommentCreateBulk is the builder for creating many Comment entities in bulk.
type CommentCreateBulk struct {
	config
	err      error
	builders []*CommentCreate
	conflict []sql.ConflictOption
}

// Save creates the Comment entities in the database.
func (_c *CommentCreateBulk) Save(ctx context.Context) ([]*Comment, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Comment, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CommentMutation)
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
func (_c *CommentCreateBulk) SaveX(ctx context.Context) []*Comment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CommentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CommentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Comment.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CommentUpsert) {
//			SetAuthorID(v+v).
//		}).
//		Exec(ctx)
func (_c *CommentCreateBulk) OnConflict(opts ...sql.ConflictOption) *CommentUpsertBulk {
	_c.conflict = opts
	return &CommentUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Comment.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CommentCreateBulk) OnConflictColumns(columns ...string) *CommentUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CommentUpsertBulk{
		create: _c,
	}
}

// CommentUpsertBulk is the builder for "upsert"-ing
// a bulk of Comment nodes.
type CommentUpsertBulk struct {
	create *CommentCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Comment.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(comment.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *CommentUpsertBulk) UpdateNewValues() *CommentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(comment.FieldID)
			}
			if _, exists := b.mutation.AuthorID(); exists {
				s.SetIgnore(comment.FieldAuthorID)
			}
			if _, exists := b.mutation.TargetParticipantID(); exists {
				s.SetIgnore(comment.FieldTargetParticipantID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(comment.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Comment.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *CommentUpsertBulk) Ignore() *CommentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CommentUpsertBulk) DoNothing() *CommentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CommentCreateBulk.OnConflict
// documentation for more info.
func (u *CommentUpsertBulk) Update(set func(*CommentUpsert)) *CommentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CommentUpsert{UpdateSet: update})
	}))
	return u
}

// SetStoryArtifactID sets the "story_artifact_id" field.
func (u *CommentUpsertBulk) SetStoryArtifactID(v string) *CommentUpsertBulk {
	return u.Update(func(s *CommentUpsert) {
		s.SetStoryArtifactID(v)
	})
}

// UpdateStoryArtifactID sets the "story_artifact_id" field to the value that was provided on create.
func (u *CommentUpsertBulk) UpdateStoryArtifactID() *CommentUpsertBulk {
	return u.Update(func(s *CommentUpsert) {
		s.UpdateStoryArtifactID()
	})
}

// ClearStoryArtifactID clears the value of the "story_artifact_id" field.
func (u *CommentUpsertBulk) ClearStoryArtifactID() *CommentUpsertBulk {
	return u.Update(func(s *CommentUpsert) {
		s.ClearStoryArtifactID()
	})
}

// SetPassageID sets the "passage_id" field.
func (u *CommentUpsertBulk) SetPassageID(v string) *CommentUpsertBulk {
	return u.Update(func(s *CommentUpsert) {
		s.SetPassageID(v)
	})
}

// UpdatePassageID sets the "passage_id" field to the value that was provided on create.
func (u *CommentUpsertBulk) UpdatePassageID() *CommentUpsertBulk {
	return u.Update(func(s *CommentUpsert) {
		s.UpdatePassageID()
	})
}

// ClearPassageID clears the value of the "passage_id" field.
func (u *CommentUpsertBulk) ClearPassageID() *CommentUpsertBulk {
	return u.Update(func(s *CommentUpsert) {
		s.ClearPassageID()
	})
}

// SetContent sets the "content" field.
func (u *CommentUpsertBulk) SetContent(v string) *CommentUpsertBulk {
	return u.Update(func(s *CommentUpsert) {
		s.SetContent(v)
	})
}

// UpdateContent sets the "content" field to the value that was provided on create.
func (u *CommentUpsertBulk) UpdateContent() *CommentUpsertBulk {
	return u.Update(func(s *CommentUpsert) {
		s.UpdateContent()
	})
}

// SetType sets the "type" field.
func (u *CommentUpsertBulk) SetType(v comment.Type) *CommentUpsertBulk {
	return u.Update(func(s *CommentUpsert) {
		s.SetType(v)
	})
}

// UpdateType sets the "type" field to the value that was provided on create.
func (u *CommentUpsertBulk) UpdateType() *CommentUpsertBulk {
	return u.Update(func(s *CommentUpsert) {
		s.UpdateType()
	})
}

// SetRound sets the "round" field.
func (u *CommentUpsertBulk) SetRound(v int) *CommentUpsertBulk {
	return u.Update(func(s *CommentUpsert) {
		s.SetRound(v)
	})
}

// AddRound adds v to the "round" field.
func (u *CommentUpsertBulk) AddRound(v int) *CommentUpsertBulk {
	return u.Update(func(s *CommentUpsert) {
		s.AddRound(v)
	})
}

// UpdateRound sets the "round" field to the value that was provided on create.
func (u *CommentUpsertBulk) UpdateRound() *CommentUpsertBulk {
	return u.Update(func(s *CommentUpsert) {
		s.UpdateRound()
	})
}

// SetPhase sets the "phase" field.
func (u *CommentUpsertBulk) SetPhase(v comment.Phase) *CommentUpsertBulk {
	return u.Update(func(s *CommentUpsert) {
		s.SetPhase(v)
	})
}

// UpdatePhase sets the "phase" field to the value that was provided on create.
func (u *CommentUpsertBulk) UpdatePhase() *CommentUpsertBulk {
	return u.Update(func(s *CommentUpsert) {
		s.UpdatePhase()
	})
}

// SetParentID sets the "parent_id" field.
func (u *CommentUpsertBulk) SetParentID(v string) *CommentUpsertBulk {
	return u.Update(func(s *CommentUpsert) {
		s.SetParentID(v)
	})
}

// UpdateParentID sets the "parent_id" field to the value that was provided on create.
func (u *CommentUpsertBulk) UpdateParentID() *CommentUpsertBulk {
	return u.Update(func(s *CommentUpsert) {
		s.UpdateParentID()
	})
}

// ClearParentID clears the value of the "parent_id" field.
func (u *CommentUpsertBulk) ClearParentID() *CommentUpsertBulk {
	return u.Update(func(s *CommentUpsert) {
		s.ClearParentID()
	})
}

// SetResolved sets the "resolved" field.
func (u *CommentUpsertBulk) SetResolved(v bool) *CommentUpsertBulk {
	return u.Update(func(s *CommentUpsert) {
		s.SetResolved(v)
	})
}

// UpdateResolved sets the "resolved" field to the value that was provided on create.
func (u *CommentUpsertBulk) UpdateResolved() *CommentUpsertBulk {
	return u.Update(func(s *CommentUpsert) {
		s.UpdateResolved()
	})
}

// SetAddressedInRound sets the "addressed_in_round" field.
func (u *CommentUpsertBulk) SetAddressedInRound(v int) *CommentUpsertBulk {
	return u.Update(func(s *CommentUpsert) {
		s.SetAddressedInRound(v)
	})
}

// AddAddressedInRound adds v to the "addressed_in_round" field.
func (u *CommentUpsertBulk) AddAddressedInRound(v int) *CommentUpsertBulk {
	return u.Update(func(s *CommentUpsert) {
		s.AddAddressedInRound(v)
	})
}

// UpdateAddressedInRound sets the "addressed_in_round" field to the value that was provided on create.
func (u *CommentUpsertBulk) UpdateAddressedInRound() *CommentUpsertBulk {
	return u.Update(func(s *CommentUpsert) {
		s.UpdateAddressedInRound()
	})
}

// ClearAddressedInRound clears the value of the "addressed_in_round" field.
func (u *CommentUpsertBulk) ClearAddressedInRound() *CommentUpsertBulk {
	return u.Update(func(s *CommentUpsert) {
		s.ClearAddressedInRound()
	})
}

// Exec executes the query.
func (u *CommentUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the CommentCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CommentCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CommentUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
