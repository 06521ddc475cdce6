// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/dyadlab/fabula/ent/agentcontext"
	"github.com/dyadlab/fabula/ent/predicate"
	"github.com/dyadlab/fabula/pkg/models"
)

// AgentContextUpdate is the builder for updating AgentContext entities.
type AgentContextUpdate struct {
	config
	hooks    []Hook
	mutation *AgentContextMutation
}

// Where appends a list predicates to the AgentContextUpdate builder.
func (_u *AgentContextUpdate) Where(ps ...predicate.AgentContext) *AgentContextUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCurrentRound sets the "current_round" field.
func (_u *AgentContextUpdate) SetCurrentRound(v int) *AgentContextUpdate {
	_u.mutation.ResetCurrentRound()
	_u.mutation.SetCurrentRound(v)
	return _u
}

// SetNillableCurrentRound sets the "current_round" field if the given value is not nil.
func (_u *AgentContextUpdate) SetNillableCurrentRound(v *int) *AgentContextUpdate {
	if v != nil {
		_u.SetCurrentRound(*v)
	}
	return _u
}

// AddCurrentRound adds value to the "current_round" field.
func (_u *AgentContextUpdate) AddCurrentRound(v int) *AgentContextUpdate {
	_u.mutation.AddCurrentRound(v)
	return _u
}

// SetCurrentPhase sets the "current_phase" field.
func (_u *AgentContextUpdate) SetCurrentPhase(v agentcontext.CurrentPhase) *AgentContextUpdate {
	_u.mutation.SetCurrentPhase(v)
	return _u
}

// SetNillableCurrentPhase sets the "current_phase" field if the given value is not nil.
func (_u *AgentContextUpdate) SetNillableCurrentPhase(v *agentcontext.CurrentPhase) *AgentContextUpdate {
	if v != nil {
		_u.SetCurrentPhase(*v)
	}
	return _u
}

// SetOwnStoryDrafts sets the "own_story_drafts" field.
func (_u *AgentContextUpdate) SetOwnStoryDrafts(v []models.StoryDraftEntry) *AgentContextUpdate {
	_u.mutation.SetOwnStoryDrafts(v)
	return _u
}

// AppendOwnStoryDrafts appends value to the "own_story_drafts" field.
func (_u *AgentContextUpdate) AppendOwnStoryDrafts(v []models.StoryDraftEntry) *AgentContextUpdate {
	_u.mutation.AppendOwnStoryDrafts(v)
	return _u
}

// SetPartnerStoriesPlayed sets the "partner_stories_played" field.
func (_u *AgentContextUpdate) SetPartnerStoriesPlayed(v []models.PartnerStoryEntry) *AgentContextUpdate {
	_u.mutation.SetPartnerStoriesPlayed(v)
	return _u
}

// AppendPartnerStoriesPlayed appends value to the "partner_stories_played" field.
func (_u *AgentContextUpdate) AppendPartnerStoriesPlayed(v []models.PartnerStoryEntry) *AgentContextUpdate {
	_u.mutation.AppendPartnerStoriesPlayed(v)
	return _u
}

// SetFeedbackGiven sets the "feedback_given" field.
func (_u *AgentContextUpdate) SetFeedbackGiven(v []models.FeedbackEntry) *AgentContextUpdate {
	_u.mutation.SetFeedbackGiven(v)
	return _u
}

// AppendFeedbackGiven appends value to the "feedback_given" field.
func (_u *AgentContextUpdate) AppendFeedbackGiven(v []models.FeedbackEntry) *AgentContextUpdate {
	_u.mutation.AppendFeedbackGiven(v)
	return _u
}

// SetFeedbackReceived sets the "feedback_received" field.
func (_u *AgentContextUpdate) SetFeedbackReceived(v []models.FeedbackEntry) *AgentContextUpdate {
	_u.mutation.SetFeedbackReceived(v)
	return _u
}

// AppendFeedbackReceived appends value to the "feedback_received" field.
func (_u *AgentContextUpdate) AppendFeedbackReceived(v []models.FeedbackEntry) *AgentContextUpdate {
	_u.mutation.AppendFeedbackReceived(v)
	return _u
}

// SetCumulativeLearnings sets the "cumulative_learnings" field.
func (_u *AgentContextUpdate) SetCumulativeLearnings(v []models.LearningEntry) *AgentContextUpdate {
	_u.mutation.SetCumulativeLearnings(v)
	return _u
}

// AppendCumulativeLearnings appends value to the "cumulative_learnings" field.
func (_u *AgentContextUpdate) AppendCumulativeLearnings(v []models.LearningEntry) *AgentContextUpdate {
	_u.mutation.AppendCumulativeLearnings(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AgentContextUpdate) SetUpdatedAt(v time.Time) *AgentContextUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the AgentContextMutation object of the builder.
func (_u *AgentContextUpdate) Mutation() *AgentContextMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AgentContextUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentContextUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AgentContextUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentContextUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AgentContextUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := agentcontext.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentContextUpdate) check() error {
	if v, ok := _u.mutation.CurrentPhase(); ok {
		if err := agentcontext.CurrentPhaseValidator(v); err != nil {
			return &ValidationError{Name: "current_phase", err: fmt.Errorf(`ent: validator failed for field "AgentContext.current_phase": %w`, err)}
		}
	}
	if _u.mutation.ParticipantCleared() && len(_u.mutation.ParticipantIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AgentContext.participant"`)
	}
	return nil
}

func (_u *AgentContextUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agentcontext.Table, agentcontext.Columns, sqlgraph.NewFieldSpec(agentcontext.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CurrentRound(); ok {
		_spec.SetField(agentcontext.FieldCurrentRound, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCurrentRound(); ok {
		_spec.AddField(agentcontext.FieldCurrentRound, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CurrentPhase(); ok {
		_spec.SetField(agentcontext.FieldCurrentPhase, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.OwnStoryDrafts(); ok {
		_spec.SetField(agentcontext.FieldOwnStoryDrafts, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedOwnStoryDrafts(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, agentcontext.FieldOwnStoryDrafts, value)
		})
	}
	if value, ok := _u.mutation.PartnerStoriesPlayed(); ok {
		_spec.SetField(agentcontext.FieldPartnerStoriesPlayed, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPartnerStoriesPlayed(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, agentcontext.FieldPartnerStoriesPlayed, value)
		})
	}
	if value, ok := _u.mutation.FeedbackGiven(); ok {
		_spec.SetField(agentcontext.FieldFeedbackGiven, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFeedbackGiven(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, agentcontext.FieldFeedbackGiven, value)
		})
	}
	if value, ok := _u.mutation.FeedbackReceived(); ok {
		_spec.SetField(agentcontext.FieldFeedbackReceived, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFeedbackReceived(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, agentcontext.FieldFeedbackReceived, value)
		})
	}
	if value, ok := _u.mutation.CumulativeLearnings(); ok {
		_spec.SetField(agentcontext.FieldCumulativeLearnings, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCumulativeLearnings(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, agentcontext.FieldCumulativeLearnings, value)
		})
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(agentcontext.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentcontext.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AgentContextUpdateOne is the builder for updating a single AgentContext entity.
type AgentContextUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AgentContextMutation
}

// SetCurrentRound sets the "current_round" field.
func (_u *AgentContextUpdateOne) SetCurrentRound(v int) *AgentContextUpdateOne {
	_u.mutation.ResetCurrentRound()
	_u.mutation.SetCurrentRound(v)
	return _u
}

// SetNillableCurrentRound sets the "current_round" field if the given value is not nil.
func (_u *AgentContextUpdateOne) SetNillableCurrentRound(v *int) *AgentContextUpdateOne {
	if v != nil {
		_u.SetCurrentRound(*v)
	}
	return _u
}

// AddCurrentRound adds value to the "current_round" field.
func (_u *AgentContextUpdateOne) AddCurrentRound(v int) *AgentContextUpdateOne {
	_u.mutation.AddCurrentRound(v)
	return _u
}

// SetCurrentPhase sets the "current_phase" field.
func (_u *AgentContextUpdateOne) SetCurrentPhase(v agentcontext.CurrentPhase) *AgentContextUpdateOne {
	_u.mutation.SetCurrentPhase(v)
	return _u
}

// SetNillableCurrentPhase sets the "current_phase" field if the given value is not nil.
func (_u *AgentContextUpdateOne) SetNillableCurrentPhase(v *agentcontext.CurrentPhase) *AgentContextUpdateOne {
	if v != nil {
		_u.SetCurrentPhase(*v)
	}
	return _u
}

// SetOwnStoryDrafts sets the "own_story_drafts" field.
func (_u *AgentContextUpdateOne) SetOwnStoryDrafts(v []models.StoryDraftEntry) *AgentContextUpdateOne {
	_u.mutation.SetOwnStoryDrafts(v)
	return _u
}

// AppendOwnStoryDrafts appends value to the "own_story_drafts" field.
func (_u *AgentContextUpdateOne) AppendOwnStoryDrafts(v []models.StoryDraftEntry) *AgentContextUpdateOne {
	_u.mutation.AppendOwnStoryDrafts(v)
	return _u
}

// SetPartnerStoriesPlayed sets the "partner_stories_played" field.
func (_u *AgentContextUpdateOne) SetPartnerStoriesPlayed(v []models.PartnerStoryEntry) *AgentContextUpdateOne {
	_u.mutation.SetPartnerStoriesPlayed(v)
	return _u
}

// AppendPartnerStoriesPlayed appends value to the "partner_stories_played" field.
func (_u *AgentContextUpdateOne) AppendPartnerStoriesPlayed(v []models.PartnerStoryEntry) *AgentContextUpdateOne {
	_u.mutation.AppendPartnerStoriesPlayed(v)
	return _u
}

// SetFeedbackGiven sets the "feedback_given" field.
func (_u *AgentContextUpdateOne) SetFeedbackGiven(v []models.FeedbackEntry) *AgentContextUpdateOne {
	_u.mutation.SetFeedbackGiven(v)
	return _u
}

// AppendFeedbackGiven appends value to the "feedback_given" field.
func (_u *AgentContextUpdateOne) AppendFeedbackGiven(v []models.FeedbackEntry) *AgentContextUpdateOne {
	_u.mutation.AppendFeedbackGiven(v)
	return _u
}

// SetFeedbackReceived sets the "feedback_received" field.
func (_u *AgentContextUpdateOne) SetFeedbackReceived(v []models.FeedbackEntry) *AgentContextUpdateOne {
	_u.mutation.SetFeedbackReceived(v)
	return _u
}

// AppendFeedbackReceived appends value to the "feedback_received" field.
func (_u *AgentContextUpdateOne) AppendFeedbackReceived(v []models.FeedbackEntry) *AgentContextUpdateOne {
	_u.mutation.AppendFeedbackReceived(v)
	return _u
}

// SetCumulativeLearnings sets the "cumulative_learnings" field.
func (_u *AgentContextUpdateOne) SetCumulativeLearnings(v []models.LearningEntry) *AgentContextUpdateOne {
	_u.mutation.SetCumulativeLearnings(v)
	return _u
}

// AppendCumulativeLearnings appends value to the "cumulative_learnings" field.
func (_u *AgentContextUpdateOne) AppendCumulativeLearnings(v []models.LearningEntry) *AgentContextUpdateOne {
	_u.mutation.AppendCumulativeLearnings(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AgentContextUpdateOne) SetUpdatedAt(v time.Time) *AgentContextUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the AgentContextMutation object of the builder.
func (_u *AgentContextUpdateOne) Mutation() *AgentContextMutation {
	return _u.mutation
}

// Where appends a list predicates to the AgentContextUpdate builder.
func (_u *AgentContextUpdateOne) Where(ps ...predicate.AgentContext) *AgentContextUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AgentContextUpdateOne) Select(field string, fields ...string) *AgentContextUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AgentContext entity.
func (_u *AgentContextUpdateOne) Save(ctx context.Context) (*AgentContext, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentContextUpdateOne) SaveX(ctx context.Context) *AgentContext {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AgentContextUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentContextUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AgentContextUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := agentcontext.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentContextUpdateOne) check() error {
	if v, ok := _u.mutation.CurrentPhase(); ok {
		if err := agentcontext.CurrentPhaseValidator(v); err != nil {
			return &ValidationError{Name: "current_phase", err: fmt.Errorf(`ent: validator failed for field "AgentContext.current_phase": %w`, err)}
		}
	}
	if _u.mutation.ParticipantCleared() && len(_u.mutation.ParticipantIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AgentContext.participant"`)
	}
	return nil
}

func (_u *AgentContextUpdateOne) sqlSave(ctx context.Context) (_node *AgentContext, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agentcontext.Table, agentcontext.Columns, sqlgraph.NewFieldSpec(agentcontext.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AgentContext.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, agentcontext.FieldID)
		for _, f := range fields {
			if !agentcontext.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != agentcontext.FieldID {
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
	if value, ok := _u.mutation.CurrentRound(); ok {
		_spec.SetField(agentcontext.FieldCurrentRound, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCurrentRound(); ok {
		_spec.AddField(agentcontext.FieldCurrentRound, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CurrentPhase(); ok {
		_spec.SetField(agentcontext.FieldCurrentPhase, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.OwnStoryDrafts(); ok {
		_spec.SetField(agentcontext.FieldOwnStoryDrafts, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedOwnStoryDrafts(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, agentcontext.FieldOwnStoryDrafts, value)
		})
	}
	if value, ok := _u.mutation.PartnerStoriesPlayed(); ok {
		_spec.SetField(agentcontext.FieldPartnerStoriesPlayed, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPartnerStoriesPlayed(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, agentcontext.FieldPartnerStoriesPlayed, value)
		})
	}
	if value, ok := _u.mutation.FeedbackGiven(); ok {
		_spec.SetField(agentcontext.FieldFeedbackGiven, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFeedbackGiven(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, agentcontext.FieldFeedbackGiven, value)
		})
	}
	if value, ok := _u.mutation.FeedbackReceived(); ok {
		_spec.SetField(agentcontext.FieldFeedbackReceived, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFeedbackReceived(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, agentcontext.FieldFeedbackReceived, value)
		})
	}
	if value, ok := _u.mutation.CumulativeLearnings(); ok {
		_spec.SetField(agentcontext.FieldCumulativeLearnings, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCumulativeLearnings(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, agentcontext.FieldCumulativeLearnings, value)
		})
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(agentcontext.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &AgentContext{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentcontext.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
