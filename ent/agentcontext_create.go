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
	"github.com/dyadlab/fabula/ent/agentcontext"
	"github.com/dyadlab/fabula/ent/participant"
	"github.com/dyadlab/fabula/pkg/models"
)

// AgentContextCreate is the builder for creating a AgentContext entity.
type AgentContextCreate struct {
	config
	mutation *AgentContextMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetParticipantID sets the "participant_id" field.
func (_c *AgentContextCreate) SetParticipantID(v string) *AgentContextCreate {
	_c.mutation.SetParticipantID(v)
	return _c
}

// SetCurrentRound sets the "current_round" field.
func (_c *AgentContextCreate) SetCurrentRound(v int) *AgentContextCreate {
	_c.mutation.SetCurrentRound(v)
	return _c
}

// SetNillableCurrentRound sets the "current_round" field if the given value is not nil.
func (_c *AgentContextCreate) SetNillableCurrentRound(v *int) *AgentContextCreate {
	if v != nil {
		_c.SetCurrentRound(*v)
	}
	return _c
}

// SetCurrentPhase sets the "current_phase" field.
func (_c *AgentContextCreate) SetCurrentPhase(v agentcontext.CurrentPhase) *AgentContextCreate {
	_c.mutation.SetCurrentPhase(v)
	return _c
}

// SetNillableCurrentPhase sets the "current_phase" field if the given value is not nil.
func (_c *AgentContextCreate) SetNillableCurrentPhase(v *agentcontext.CurrentPhase) *AgentContextCreate {
	if v != nil {
		_c.SetCurrentPhase(*v)
	}
	return _c
}

// SetOwnStoryDrafts sets the "own_story_drafts" field.
func (_c *AgentContextCreate) SetOwnStoryDrafts(v []models.StoryDraftEntry) *AgentContextCreate {
	_c.mutation.SetOwnStoryDrafts(v)
	return _c
}

// SetPartnerStoriesPlayed sets the "partner_stories_played" field.
func (_c *AgentContextCreate) SetPartnerStoriesPlayed(v []models.PartnerStoryEntry) *AgentContextCreate {
	_c.mutation.SetPartnerStoriesPlayed(v)
	return _c
}

// SetFeedbackGiven sets the "feedback_given" field.
func (_c *AgentContextCreate) SetFeedbackGiven(v []models.FeedbackEntry) *AgentContextCreate {
	_c.mutation.SetFeedbackGiven(v)
	return _c
}

// SetFeedbackReceived sets the "feedback_received" field.
func (_c *AgentContextCreate) SetFeedbackReceived(v []models.FeedbackEntry) *AgentContextCreate {
	_c.mutation.SetFeedbackReceived(v)
	return _c
}

// SetCumulativeLearnings sets the "cumulative_learnings" field.
func (_c *AgentContextCreate) SetCumulativeLearnings(v []models.LearningEntry) *AgentContextCreate {
	_c.mutation.SetCumulativeLearnings(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AgentContextCreate) SetCreatedAt(v time.Time) *AgentContextCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AgentContextCreate) SetNillableCreatedAt(v *time.Time) *AgentContextCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *AgentContextCreate) SetUpdatedAt(v time.Time) *AgentContextCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *AgentContextCreate) SetNillableUpdatedAt(v *time.Time) *AgentContextCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AgentContextCreate) SetID(v string) *AgentContextCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetParticipant sets the "participant" edge to the Participant entity.
func (_c *AgentContextCreate) SetParticipant(v *Participant) *AgentContextCreate {
	return _c.SetParticipantID(v.ID)
}

// Mutation returns the AgentContextMutation object of the builder.
func (_c *AgentContextCreate) Mutation() *AgentContextMutation {
	return _c.mutation
}

// Save creates the AgentContext in the database.
func (_c *AgentContextCreate) Save(ctx context.Context) (*AgentContext, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AgentContextCreate) SaveX(ctx context.Context) *AgentContext {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentContextCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentContextCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AgentContextCreate) defaults() {
	if _, ok := _c.mutation.CurrentRound(); !ok {
		v := agentcontext.DefaultCurrentRound
		_c.mutation.SetCurrentRound(v)
	}
	if _, ok := _c.mutation.CurrentPhase(); !ok {
		v := agentcontext.DefaultCurrentPhase
		_c.mutation.SetCurrentPhase(v)
	}
	if _, ok := _c.mutation.OwnStoryDrafts(); !ok {
		v := agentcontext.DefaultOwnStoryDrafts
		_c.mutation.SetOwnStoryDrafts(v)
	}
	if _, ok := _c.mutation.PartnerStoriesPlayed(); !ok {
		v := agentcontext.DefaultPartnerStoriesPlayed
		_c.mutation.SetPartnerStoriesPlayed(v)
	}
	if _, ok := _c.mutation.FeedbackGiven(); !ok {
		v := agentcontext.DefaultFeedbackGiven
		_c.mutation.SetFeedbackGiven(v)
	}
	if _, ok := _c.mutation.FeedbackReceived(); !ok {
		v := agentcontext.DefaultFeedbackReceived
		_c.mutation.SetFeedbackReceived(v)
	}
	if _, ok := _c.mutation.CumulativeLearnings(); !ok {
		v := agentcontext.DefaultCumulativeLearnings
		_c.mutation.SetCumulativeLearnings(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := agentcontext.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := agentcontext.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AgentContextCreate) check() error {
	if _, ok := _c.mutation.ParticipantID(); !ok {
		return &ValidationError{Name: "participant_id", err: errors.New(`ent: missing required field "AgentContext.participant_id"`)}
	}
	if _, ok := _c.mutation.CurrentRound(); !ok {
		return &ValidationError{Name: "current_round", err: errors.New(`ent: missing required field "AgentContext.current_round"`)}
	}
	if _, ok := _c.mutation.CurrentPhase(); !ok {
		return &ValidationError{Name: "current_phase", err: errors.New(`ent: missing required field "AgentContext.current_phase"`)}
	}
	if v, ok := _c.mutation.CurrentPhase(); ok {
		if err := agentcontext.CurrentPhaseValidator(v); err != nil {
			return &ValidationError{Name: "current_phase", err: fmt.Errorf(`ent: validator failed for field "AgentContext.current_phase": %w`, err)}
		}
	}
	if _, ok := _c.mutation.OwnStoryDrafts(); !ok {
		return &ValidationError{Name: "own_story_drafts", err: errors.New(`ent: missing required field "AgentContext.own_story_drafts"`)}
	}
	if _, ok := _c.mutation.PartnerStoriesPlayed(); !ok {
		return &ValidationError{Name: "partner_stories_played", err: errors.New(`ent: missing required field "AgentContext.partner_stories_played"`)}
	}
	if _, ok := _c.mutation.FeedbackGiven(); !ok {
		return &ValidationError{Name: "feedback_given", err: errors.New(`ent: missing required field "AgentContext.feedback_given"`)}
	}
	if _, ok := _c.mutation.FeedbackReceived(); !ok {
		return &ValidationError{Name: "feedback_received", err: errors.New(`ent: missing required field "AgentContext.feedback_received"`)}
	}
	if _, ok := _c.mutation.CumulativeLearnings(); !ok {
		return &ValidationError{Name: "cumulative_learnings", err: errors.New(`ent: missing required field "AgentContext.cumulative_learnings"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "AgentContext.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "AgentContext.updated_at"`)}
	}
	if len(_c.mutation.ParticipantIDs()) == 0 {
		return &ValidationError{Name: "participant", err: errors.New(`ent: missing required edge "AgentContext.participant"`)}
	}
	return nil
}

func (_c *AgentContextCreate) sqlSave(ctx context.Context) (*AgentContext, error) {
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
			return nil, fmt.Errorf("unexpected AgentContext.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AgentContextCreate) createSpec() (*AgentContext, *sqlgraph.CreateSpec) {
	var (
		_node = &AgentContext{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(agentcontext.Table, sqlgraph.NewFieldSpec(agentcontext.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CurrentRound(); ok {
		_spec.SetField(agentcontext.FieldCurrentRound, field.TypeInt, value)
		_node.CurrentRound = value
	}
	if value, ok := _c.mutation.CurrentPhase(); ok {
		_spec.SetField(agentcontext.FieldCurrentPhase, field.TypeEnum, value)
		_node.CurrentPhase = value
	}
	if value, ok := _c.mutation.OwnStoryDrafts(); ok {
		_spec.SetField(agentcontext.FieldOwnStoryDrafts, field.TypeJSON, value)
		_node.OwnStoryDrafts = value
	}
	if value, ok := _c.mutation.PartnerStoriesPlayed(); ok {
		_spec.SetField(agentcontext.FieldPartnerStoriesPlayed, field.TypeJSON, value)
		_node.PartnerStoriesPlayed = value
	}
	if value, ok := _c.mutation.FeedbackGiven(); ok {
		_spec.SetField(agentcontext.FieldFeedbackGiven, field.TypeJSON, value)
		_node.FeedbackGiven = value
	}
	if value, ok := _c.mutation.FeedbackReceived(); ok {
		_spec.SetField(agentcontext.FieldFeedbackReceived, field.TypeJSON, value)
		_node.FeedbackReceived = value
	}
	if value, ok := _c.mutation.CumulativeLearnings(); ok {
		_spec.SetField(agentcontext.FieldCumulativeLearnings, field.TypeJSON, value)
		_node.CumulativeLearnings = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(agentcontext.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(agentcontext.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.ParticipantIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   agentcontext.ParticipantTable,
			Columns: []string{agentcontext.ParticipantColumn},
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
//	client.AgentContext.Create().
//		SetParticipantID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AgentContextUpsert) {
//			SetParticipantID(v+v).
//		}).
//		Exec(ctx)
func (_c *AgentContextCreate) OnConflict(opts ...sql.ConflictOption) *AgentContextUpsertOne {
	_c.conflict = opts
	return &AgentContextUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AgentContext.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AgentContextCreate) OnConflictColumns(columns ...string) *AgentContextUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AgentContextUpsertOne{
		create: _c,
	}
}

type (
	// AgentContextUpsertOne is the builder for "upsert"-ing
	//  one AgentContext node.
	AgentContextUpsertOne struct {
		create *AgentContextCreate
	}

	// AgentContextUpsert is the "OnConflict" setter.
	AgentContextUpsert struct {
		*sql.UpdateSet
	}
)

// SetCurrentRound sets the "current_round" field.
func (u *AgentContextUpsert) SetCurrentRound(v int) *AgentContextUpsert {
	u.Set(agentcontext.FieldCurrentRound, v)
	return u
}

// UpdateCurrentRound sets the "current_round" field to the value that was provided on create.
func (u *AgentContextUpsert) UpdateCurrentRound() *AgentContextUpsert {
	u.SetExcluded(agentcontext.FieldCurrentRound)
	return u
}

// AddCurrentRound adds v to the "current_round" field.
func (u *AgentContextUpsert) AddCurrentRound(v int) *AgentContextUpsert {
	u.Add(agentcontext.FieldCurrentRound, v)
	return u
}

// SetCurrentPhase sets the "current_phase" field.
func (u *AgentContextUpsert) SetCurrentPhase(v agentcontext.CurrentPhase) *AgentContextUpsert {
	u.Set(agentcontext.FieldCurrentPhase, v)
	return u
}

// UpdateCurrentPhase sets the "current_phase" field to the value that was provided on create.
func (u *AgentContextUpsert) UpdateCurrentPhase() *AgentContextUpsert {
	u.SetExcluded(agentcontext.FieldCurrentPhase)
	return u
}

// SetOwnStoryDrafts sets the "own_story_drafts" field.
func (u *AgentContextUpsert) SetOwnStoryDrafts(v []models.StoryDraftEntry) *AgentContextUpsert {
	u.Set(agentcontext.FieldOwnStoryDrafts, v)
	return u
}

// UpdateOwnStoryDrafts sets the "own_story_drafts" field to the value that was provided on create.
func (u *AgentContextUpsert) UpdateOwnStoryDrafts() *AgentContextUpsert {
	u.SetExcluded(agentcontext.FieldOwnStoryDrafts)
	return u
}

// SetPartnerStoriesPlayed sets the "partner_stories_played" field.
func (u *AgentContextUpsert) SetPartnerStoriesPlayed(v []models.PartnerStoryEntry) *AgentContextUpsert {
	u.Set(agentcontext.FieldPartnerStoriesPlayed, v)
	return u
}

// UpdatePartnerStoriesPlayed sets the "partner_stories_played" field to the value that was provided on create.
func (u *AgentContextUpsert) UpdatePartnerStoriesPlayed() *AgentContextUpsert {
	u.SetExcluded(agentcontext.FieldPartnerStoriesPlayed)
	return u
}

// SetFeedbackGiven sets the "feedback_given" field.
func (u *AgentContextUpsert) SetFeedbackGiven(v []models.FeedbackEntry) *AgentContextUpsert {
	u.Set(agentcontext.FieldFeedbackGiven, v)
	return u
}

// UpdateFeedbackGiven sets the "feedback_given" field to the value that was provided on create.
func (u *AgentContextUpsert) UpdateFeedbackGiven() *AgentContextUpsert {
	u.SetExcluded(agentcontext.FieldFeedbackGiven)
	return u
}

// SetFeedbackReceived sets the "feedback_received" field.
func (u *AgentContextUpsert) SetFeedbackReceived(v []models.FeedbackEntry) *AgentContextUpsert {
	u.Set(agentcontext.FieldFeedbackReceived, v)
	return u
}

// UpdateFeedbackReceived sets the "feedback_received" field to the value that was provided on create.
func (u *AgentContextUpsert) UpdateFeedbackReceived() *AgentContextUpsert {
	u.SetExcluded(agentcontext.FieldFeedbackReceived)
	return u
}

// SetCumulativeLearnings sets the "cumulative_learnings" field.
func (u *AgentContextUpsert) SetCumulativeLearnings(v []models.LearningEntry) *AgentContextUpsert {
	u.Set(agentcontext.FieldCumulativeLearnings, v)
	return u
}

// UpdateCumulativeLearnings sets the "cumulative_learnings" field to the value that was provided on create.
func (u *AgentContextUpsert) UpdateCumulativeLearnings() *AgentContextUpsert {
	u.SetExcluded(agentcontext.FieldCumulativeLearnings)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *AgentContextUpsert) SetUpdatedAt(v time.Time) *AgentContextUpsert {
	u.Set(agentcontext.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *AgentContextUpsert) UpdateUpdatedAt() *AgentContextUpsert {
	u.SetExcluded(agentcontext.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.AgentContext.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(agentcontext.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AgentContextUpsertOne) UpdateNewValues() *AgentContextUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(agentcontext.FieldID)
		}
		if _, exists := u.create.mutation.ParticipantID(); exists {
			s.SetIgnore(agentcontext.FieldParticipantID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(agentcontext.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AgentContext.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *AgentContextUpsertOne) Ignore() *AgentContextUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AgentContextUpsertOne) DoNothing() *AgentContextUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AgentContextCreate.OnConflict
// documentation for more info.
func (u *AgentContextUpsertOne) Update(set func(*AgentContextUpsert)) *AgentContextUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AgentContextUpsert{UpdateSet: update})
	}))
	return u
}

// SetCurrentRound sets the "current_round" field.
func (u *AgentContextUpsertOne) SetCurrentRound(v int) *AgentContextUpsertOne {
	return u.Update(func(s *AgentContextUpsert) {
		s.SetCurrentRound(v)
	})
}

// AddCurrentRound adds v to the "current_round" field.
func (u *AgentContextUpsertOne) AddCurrentRound(v int) *AgentContextUpsertOne {
	return u.Update(func(s *AgentContextUpsert) {
		s.AddCurrentRound(v)
	})
}

// UpdateCurrentRound sets the "current_round" field to the value that was provided on create.
func (u *AgentContextUpsertOne) UpdateCurrentRound() *AgentContextUpsertOne {
	return u.Update(func(s *AgentContextUpsert) {
		s.UpdateCurrentRound()
	})
}

// SetCurrentPhase sets the "current_phase" field.
func (u *AgentContextUpsertOne) SetCurrentPhase(v agentcontext.CurrentPhase) *AgentContextUpsertOne {
	return u.Update(func(s *AgentContextUpsert) {
		s.SetCurrentPhase(v)
	})
}

// UpdateCurrentPhase sets the "current_phase" field to the value that was provided on create.
func (u *AgentContextUpsertOne) UpdateCurrentPhase() *AgentContextUpsertOne {
	return u.Update(func(s *AgentContextUpsert) {
		s.UpdateCurrentPhase()
	})
}

// SetOwnStoryDrafts sets the "own_story_drafts" field.
func (u *AgentContextUpsertOne) SetOwnStoryDrafts(v []models.StoryDraftEntry) *AgentContextUpsertOne {
	return u.Update(func(s *AgentContextUpsert) {
		s.SetOwnStoryDrafts(v)
	})
}

// UpdateOwnStoryDrafts sets the "own_story_drafts" field to the value that was provided on create.
func (u *AgentContextUpsertOne) UpdateOwnStoryDrafts() *AgentContextUpsertOne {
	return u.Update(func(s *AgentContextUpsert) {
		s.UpdateOwnStoryDrafts()
	})
}

// SetPartnerStoriesPlayed sets the "partner_stories_played" field.
func (u *AgentContextUpsertOne) SetPartnerStoriesPlayed(v []models.PartnerStoryEntry) *AgentContextUpsertOne {
	return u.Update(func(s *AgentContextUpsert) {
		s.SetPartnerStoriesPlayed(v)
	})
}

// UpdatePartnerStoriesPlayed sets the "partner_stories_played" field to the value that was provided on create.
func (u *AgentContextUpsertOne) UpdatePartnerStoriesPlayed() *AgentContextUpsertOne {
	return u.Update(func(s *AgentContextUpsert) {
		s.UpdatePartnerStoriesPlayed()
	})
}

// SetFeedbackGiven sets the "feedback_given" field.
func (u *AgentContextUpsertOne) SetFeedbackGiven(v []models.FeedbackEntry) *AgentContextUpsertOne {
	return u.Update(func(s *AgentContextUpsert) {
		s.SetFeedbackGiven(v)
	})
}

// UpdateFeedbackGiven sets the "feedback_given" field to the value that was provided on create.
func (u *AgentContextUpsertOne) UpdateFeedbackGiven() *AgentContextUpsertOne {
	return u.Update(func(s *AgentContextUpsert) {
		s.UpdateFeedbackGiven()
	})
}

// SetFeedbackReceived sets the "feedback_received" field.
func (u *AgentContextUpsertOne) SetFeedbackReceived(v []models.FeedbackEntry) *AgentContextUpsertOne {
	return u.Update(func(s *AgentContextUpsert) {
		s.SetFeedbackReceived(v)
	})
}

// UpdateFeedbackReceived sets the "feedback_received" field to the value that was provided on create.
func (u *AgentContextUpsertOne) UpdateFeedbackReceived() *AgentContextUpsertOne {
	return u.Update(func(s *AgentContextUpsert) {
		s.UpdateFeedbackReceived()
	})
}

// SetCumulativeLearnings sets the "cumulative_learnings" field.
func (u *AgentContextUpsertOne) SetCumulativeLearnings(v []models.LearningEntry) *AgentContextUpsertOne {
	return u.Update(func(s *AgentContextUpsert) {
		s.SetCumulativeLearnings(v)
	})
}

// UpdateCumulativeLearnings sets the "cumulative_learnings" field to the value that was provided on create.
func (u *AgentContextUpsertOne) UpdateCumulativeLearnings() *AgentContextUpsertOne {
	return u.Update(func(s *AgentContextUpsert) {
		s.UpdateCumulativeLearnings()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *AgentContextUpsertOne) SetUpdatedAt(v time.Time) *AgentContextUpsertOne {
	return u.Update(func(s *AgentContextUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *AgentContextUpsertOne) UpdateUpdatedAt() *AgentContextUpsertOne {
	return u.Update(func(s *AgentContextUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *AgentContextUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AgentContextCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AgentContextUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *AgentContextUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: AgentContextUpsertOne.ID is not supported by MySQL driver. Use AgentContextUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *AgentContextUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// AgentContextCreateBulk is the builder for creating many AgentContext entities in bulk.
type AgentContextCreateBulk struct {
	config
	err      error
	builders []*AgentContextCreate
	conflict []sql.ConflictOption
}

// Save creates the AgentContext entities in the database.
func (_c *AgentContextCreateBulk) Save(ctx context.Context) ([]*AgentContext, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AgentContext, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AgentContextMutation)
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
func (_c *AgentContextCreateBulk) SaveX(ctx context.Context) []*AgentContext {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentContextCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentContextCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AgentContext.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AgentContextUpsert) {
//			SetParticipantID(v+v).
//		}).
//		Exec(ctx)
func (_c *AgentContextCreateBulk) OnConflict(opts ...sql.ConflictOption) *AgentContextUpsertBulk {
	_c.conflict = opts
	return &AgentContextUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AgentContext.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AgentContextCreateBulk) OnConflictColumns(columns ...string) *AgentContextUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AgentContextUpsertBulk{
		create: _c,
	}
}

// AgentContextUpsertBulk is the builder for "upsert"-ing
// a bulk of AgentContext nodes.
type AgentContextUpsertBulk struct {
	create *AgentContextCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.AgentContext.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(agentcontext.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AgentContextUpsertBulk) UpdateNewValues() *AgentContextUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(agentcontext.FieldID)
			}
			if _, exists := b.mutation.ParticipantID(); exists {
				s.SetIgnore(agentcontext.FieldParticipantID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(agentcontext.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AgentContext.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *AgentContextUpsertBulk) Ignore() *AgentContextUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AgentContextUpsertBulk) DoNothing() *AgentContextUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AgentContextCreateBulk.OnConflict
// documentation for more info.
func (u *AgentContextUpsertBulk) Update(set func(*AgentContextUpsert)) *AgentContextUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AgentContextUpsert{UpdateSet: update})
	}))
	return u
}

// SetCurrentRound sets the "current_round" field.
func (u *AgentContextUpsertBulk) SetCurrentRound(v int) *AgentContextUpsertBulk {
	return u.Update(func(s *AgentContextUpsert) {
		s.SetCurrentRound(v)
	})
}

// AddCurrentRound adds v to the "current_round" field.
func (u *AgentContextUpsertBulk) AddCurrentRound(v int) *AgentContextUpsertBulk {
	return u.Update(func(s *AgentContextUpsert) {
		s.AddCurrentRound(v)
	})
}

// UpdateCurrentRound sets the "current_round" field to the value that was provided on create.
func (u *AgentContextUpsertBulk) UpdateCurrentRound() *AgentContextUpsertBulk {
	return u.Update(func(s *AgentContextUpsert) {
		s.UpdateCurrentRound()
	})
}

// SetCurrentPhase sets the "current_phase" field.
func (u *AgentContextUpsertBulk) SetCurrentPhase(v agentcontext.CurrentPhase) *AgentContextUpsertBulk {
	return u.Update(func(s *AgentContextUpsert) {
		s.SetCurrentPhase(v)
	})
}

// UpdateCurrentPhase sets the "current_phase" field to the value that was provided on create.
func (u *AgentContextUpsertBulk) UpdateCurrentPhase() *AgentContextUpsertBulk {
	return u.Update(func(s *AgentContextUpsert) {
		s.UpdateCurrentPhase()
	})
}

// SetOwnStoryDrafts sets the "own_story_drafts" field.
func (u *AgentContextUpsertBulk) SetOwnStoryDrafts(v []models.StoryDraftEntry) *AgentContextUpsertBulk {
	return u.Update(func(s *AgentContextUpsert) {
		s.SetOwnStoryDrafts(v)
	})
}

// UpdateOwnStoryDrafts sets the "own_story_drafts" field to the value that was provided on create.
func (u *AgentContextUpsertBulk) UpdateOwnStoryDrafts() *AgentContextUpsertBulk {
	return u.Update(func(s *AgentContextUpsert) {
		s.UpdateOwnStoryDrafts()
	})
}

// SetPartnerStoriesPlayed sets the "partner_stories_played" field.
func (u *AgentContextUpsertBulk) SetPartnerStoriesPlayed(v []models.PartnerStoryEntry) *AgentContextUpsertBulk {
	return u.Update(func(s *AgentContextUpsert) {
		s.SetPartnerStoriesPlayed(v)
	})
}

// UpdatePartnerStoriesPlayed sets the "partner_stories_played" field to the value that was provided on create.
func (u *AgentContextUpsertBulk) UpdatePartnerStoriesPlayed() *AgentContextUpsertBulk {
	return u.Update(func(s *AgentContextUpsert) {
		s.UpdatePartnerStoriesPlayed()
	})
}

// SetFeedbackGiven sets the "feedback_given" field.
func (u *AgentContextUpsertBulk) SetFeedbackGiven(v []models.FeedbackEntry) *AgentContextUpsertBulk {
	return u.Update(func(s *AgentContextUpsert) {
		s.SetFeedbackGiven(v)
	})
}

// UpdateFeedbackGiven sets the "feedback_given" field to the value that was provided on create.
func (u *AgentContextUpsertBulk) UpdateFeedbackGiven() *AgentContextUpsertBulk {
	return u.Update(func(s *AgentContextUpsert) {
		s.UpdateFeedbackGiven()
	})
}

// SetFeedbackReceived sets the "feedback_received" field.
func (u *AgentContextUpsertBulk) SetFeedbackReceived(v []models.FeedbackEntry) *AgentContextUpsertBulk {
	return u.Update(func(s *AgentContextUpsert) {
		s.SetFeedbackReceived(v)
	})
}

// UpdateFeedbackReceived sets the "feedback_received" field to the value that was provided on create.
func (u *AgentContextUpsertBulk) UpdateFeedbackReceived() *AgentContextUpsertBulk {
	return u.Update(func(s *AgentContextUpsert) {
		s.UpdateFeedbackReceived()
	})
}

// SetCumulativeLearnings sets the "cumulative_learnings" field.
func (u *AgentContextUpsertBulk) SetCumulativeLearnings(v []models.LearningEntry) *AgentContextUpsertBulk {
	return u.Update(func(s *AgentContextUpsert) {
		s.SetCumulativeLearnings(v)
	})
}

// UpdateCumulativeLearnings sets the "cumulative_learnings" field to the value that was provided on create.
func (u *AgentContextUpsertBulk) UpdateCumulativeLearnings() *AgentContextUpsertBulk {
	return u.Update(func(s *AgentContextUpsert) {
		s.UpdateCumulativeLearnings()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *AgentContextUpsertBulk) SetUpdatedAt(v time.Time) *AgentContextUpsertBulk {
	return u.Update(func(s *AgentContextUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *AgentContextUpsertBulk) UpdateUpdatedAt() *AgentContextUpsertBulk {
	return u.Update(func(s *AgentContextUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *AgentContextUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the AgentContextCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AgentContextCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AgentContextUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
