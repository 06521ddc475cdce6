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
	"github.com/dyadlab/fabula/ent/batch"
	"github.com/dyadlab/fabula/ent/comment"
	"github.com/dyadlab/fabula/ent/event"
	"github.com/dyadlab/fabula/ent/participant"
	"github.com/dyadlab/fabula/ent/storyartifact"
	"github.com/dyadlab/fabula/ent/study"
	"github.com/dyadlab/fabula/ent/surveyresponse"
	"github.com/dyadlab/fabula/pkg/models"
)

// ParticipantCreate is the builder for creating a Participant entity.
type ParticipantCreate struct {
	config
	mutation *ParticipantMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetStudyID sets the "study_id" field.
func (_c *ParticipantCreate) SetStudyID(v string) *ParticipantCreate {
	_c.mutation.SetStudyID(v)
	return _c
}

// SetBatchID sets the "batch_id" field.
func (_c *ParticipantCreate) SetBatchID(v string) *ParticipantCreate {
	_c.mutation.SetBatchID(v)
	return _c
}

// SetNillableBatchID sets the "batch_id" field if the given value is not nil.
func (_c *ParticipantCreate) SetNillableBatchID(v *string) *ParticipantCreate {
	if v != nil {
		_c.SetBatchID(*v)
	}
	return _c
}

// SetConditionID sets the "condition_id" field.
func (_c *ParticipantCreate) SetConditionID(v string) *ParticipantCreate {
	_c.mutation.SetConditionID(v)
	return _c
}

// SetNillableConditionID sets the "condition_id" field if the given value is not nil.
func (_c *ParticipantCreate) SetNillableConditionID(v *string) *ParticipantCreate {
	if v != nil {
		_c.SetConditionID(*v)
	}
	return _c
}

// SetUniqueID sets the "unique_id" field.
func (_c *ParticipantCreate) SetUniqueID(v string) *ParticipantCreate {
	_c.mutation.SetUniqueID(v)
	return _c
}

// SetNillableUniqueID sets the "unique_id" field if the given value is not nil.
func (_c *ParticipantCreate) SetNillableUniqueID(v *string) *ParticipantCreate {
	if v != nil {
		_c.SetUniqueID(*v)
	}
	return _c
}

// SetActorType sets the "actor_type" field.
func (_c *ParticipantCreate) SetActorType(v participant.ActorType) *ParticipantCreate {
	_c.mutation.SetActorType(v)
	return _c
}

// SetState sets the "state" field.
func (_c *ParticipantCreate) SetState(v participant.State) *ParticipantCreate {
	_c.mutation.SetState(v)
	return _c
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_c *ParticipantCreate) SetNillableState(v *participant.State) *ParticipantCreate {
	if v != nil {
		_c.SetState(*v)
	}
	return _c
}

// SetRole sets the "role" field.
func (_c *ParticipantCreate) SetRole(v string) *ParticipantCreate {
	_c.mutation.SetRole(v)
	return _c
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_c *ParticipantCreate) SetNillableRole(v *string) *ParticipantCreate {
	if v != nil {
		_c.SetRole(*v)
	}
	return _c
}

// SetPartnerID sets the "partner_id" field.
func (_c *ParticipantCreate) SetPartnerID(v string) *ParticipantCreate {
	_c.mutation.SetPartnerID(v)
	return _c
}

// SetNillablePartnerID sets the "partner_id" field if the given value is not nil.
func (_c *ParticipantCreate) SetNillablePartnerID(v *string) *ParticipantCreate {
	if v != nil {
		_c.SetPartnerID(*v)
	}
	return _c
}

// SetLlmConfig sets the "llm_config" field.
func (_c *ParticipantCreate) SetLlmConfig(v *models.LLMConfig) *ParticipantCreate {
	_c.mutation.SetLlmConfig(v)
	return _c
}

// SetAvailability sets the "availability" field.
func (_c *ParticipantCreate) SetAvailability(v []models.AvailabilityWindow) *ParticipantCreate {
	_c.mutation.SetAvailability(v)
	return _c
}

// SetPairingMetadata sets the "pairing_metadata" field.
func (_c *ParticipantCreate) SetPairingMetadata(v map[string]interface{}) *ParticipantCreate {
	_c.mutation.SetPairingMetadata(v)
	return _c
}

// SetMetadata sets the "metadata" field.
func (_c *ParticipantCreate) SetMetadata(v map[string]interface{}) *ParticipantCreate {
	_c.mutation.SetMetadata(v)
	return _c
}

// SetEmail sets the "email" field.
func (_c *ParticipantCreate) SetEmail(v string) *ParticipantCreate {
	_c.mutation.SetEmail(v)
	return _c
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_c *ParticipantCreate) SetNillableEmail(v *string) *ParticipantCreate {
	if v != nil {
		_c.SetEmail(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ParticipantCreate) SetCreatedAt(v time.Time) *ParticipantCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ParticipantCreate) SetNillableCreatedAt(v *time.Time) *ParticipantCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *ParticipantCreate) SetCompletedAt(v time.Time) *ParticipantCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *ParticipantCreate) SetNillableCompletedAt(v *time.Time) *ParticipantCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ParticipantCreate) SetID(v string) *ParticipantCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetStudy sets the "study" edge to the Study entity.
func (_c *ParticipantCreate) SetStudy(v *Study) *ParticipantCreate {
	return _c.SetStudyID(v.ID)
}

// SetBatch sets the "batch" edge to the Batch entity.
func (_c *ParticipantCreate) SetBatch(v *Batch) *ParticipantCreate {
	return _c.SetBatchID(v.ID)
}

// AddEventIDs adds the "events" edge to the Event entity by IDs.
func (_c *ParticipantCreate) AddEventIDs(ids ...string) *ParticipantCreate {
	_c.mutation.AddEventIDs(ids...)
	return _c
}

// AddEvents adds the "events" edges to the Event entity.
func (_c *ParticipantCreate) AddEvents(v ...*Event) *ParticipantCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddEventIDs(ids...)
}

// AddStoryArtifactIDs adds the "story_artifacts" edge to the StoryArtifact entity by IDs.
func (_c *ParticipantCreate) AddStoryArtifactIDs(ids ...string) *ParticipantCreate {
	_c.mutation.AddStoryArtifactIDs(ids...)
	return _c
}

// AddStoryArtifacts adds the "story_artifacts" edges to the StoryArtifact entity.
func (_c *ParticipantCreate) AddStoryArtifacts(v ...*StoryArtifact) *ParticipantCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddStoryArtifactIDs(ids...)
}

// SetAgentContextID sets the "agent_context" edge to the AgentContext entity by ID.
func (_c *ParticipantCreate) SetAgentContextID(id string) *ParticipantCreate {
	_c.mutation.SetAgentContextID(id)
	return _c
}

// SetNillableAgentContextID sets the "agent_context" edge to the AgentContext entity by ID if the given value is not nil.
func (_c *ParticipantCreate) SetNillableAgentContextID(id *string) *ParticipantCreate {
	if id != nil {
		_c = _c.SetAgentContextID(*id)
	}
	return _c
}

// SetAgentContext sets the "agent_context" edge to the AgentContext entity.
func (_c *ParticipantCreate) SetAgentContext(v *AgentContext) *ParticipantCreate {
	return _c.SetAgentContextID(v.ID)
}

// AddSurveyResponseIDs adds the "survey_responses" edge to the SurveyResponse entity by IDs.
func (_c *ParticipantCreate) AddSurveyResponseIDs(ids ...string) *ParticipantCreate {
	_c.mutation.AddSurveyResponseIDs(ids...)
	return _c
}

// AddSurveyResponses adds the "survey_responses" edges to the SurveyResponse entity.
func (_c *ParticipantCreate) AddSurveyResponses(v ...*SurveyResponse) *ParticipantCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddSurveyResponseIDs(ids...)
}

// AddAuthoredCommentIDs adds the "authored_comments" edge to the Comment entity by IDs.
func (_c *ParticipantCreate) AddAuthoredCommentIDs(ids ...string) *ParticipantCreate {
	_c.mutation.AddAuthoredCommentIDs(ids...)
	return _c
}

// AddAuthoredComments adds the "authored_comments" edges to the Comment entity.
func (_c *ParticipantCreate) AddAuthoredComments(v ...*Comment) *ParticipantCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddAuthoredCommentIDs(ids...)
}

// AddReceivedCommentIDs adds the "received_comments" edge to the Comment entity by IDs.
func (_c *ParticipantCreate) AddReceivedCommentIDs(ids ...string) *ParticipantCreate {
	_c.mutation.AddReceivedCommentIDs(ids...)
	return _c
}

// AddReceivedComments adds the "received_comments" edges to the Comment entity.
func (_c *ParticipantCreate) AddReceivedComments(v ...*Comment) *ParticipantCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddReceivedCommentIDs(ids...)
}

// Mutation returns the ParticipantMutation object of the builder.
func (_c *ParticipantCreate) Mutation() *ParticipantMutation {
	return _c.mutation
}

// Save creates the Participant in the database.
func (_c *ParticipantCreate) Save(ctx context.Context) (*Participant, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ParticipantCreate) SaveX(ctx context.Context) *Participant {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ParticipantCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ParticipantCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ParticipantCreate) defaults() {
	if _, ok := _c.mutation.State(); !ok {
		v := participant.DefaultState
		_c.mutation.SetState(v)
	}
	if _, ok := _c.mutation.Role(); !ok {
		v := participant.DefaultRole
		_c.mutation.SetRole(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := participant.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ParticipantCreate) check() error {
	if _, ok := _c.mutation.StudyID(); !ok {
		return &ValidationError{Name: "study_id", err: errors.New(`ent: missing required field "Participant.study_id"`)}
	}
	if _, ok := _c.mutation.ActorType(); !ok {
		return &ValidationError{Name: "actor_type", err: errors.New(`ent: missing required field "Participant.actor_type"`)}
	}
	if v, ok := _c.mutation.ActorType(); ok {
		if err := participant.ActorTypeValidator(v); err != nil {
			return &ValidationError{Name: "actor_type", err: fmt.Errorf(`ent: validator failed for field "Participant.actor_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.State(); !ok {
		return &ValidationError{Name: "state", err: errors.New(`ent: missing required field "Participant.state"`)}
	}
	if v, ok := _c.mutation.State(); ok {
		if err := participant.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "Participant.state": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Role(); !ok {
		return &ValidationError{Name: "role", err: errors.New(`ent: missing required field "Participant.role"`)}
	}
	if v, ok := _c.mutation.LlmConfig(); ok {
		if err := v.Validate(); err != nil {
			return &ValidationError{Name: "llm_config", err: fmt.Errorf(`ent: validator failed for field "Participant.llm_config": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Participant.created_at"`)}
	}
	if len(_c.mutation.StudyIDs()) == 0 {
		return &ValidationError{Name: "study", err: errors.New(`ent: missing required edge "Participant.study"`)}
	}
	return nil
}

func (_c *ParticipantCreate) sqlSave(ctx context.Context) (*Participant, error) {
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
			return nil, fmt.Errorf("unexpected Participant.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ParticipantCreate) createSpec() (*Participant, *sqlgraph.CreateSpec) {
	var (
		_node = &Participant{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(participant.Table, sqlgraph.NewFieldSpec(participant.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ConditionID(); ok {
		_spec.SetField(participant.FieldConditionID, field.TypeString, value)
		_node.ConditionID = &value
	}
	if value, ok := _c.mutation.UniqueID(); ok {
		_spec.SetField(participant.FieldUniqueID, field.TypeString, value)
		_node.UniqueID = value
	}
	if value, ok := _c.mutation.ActorType(); ok {
		_spec.SetField(participant.FieldActorType, field.TypeEnum, value)
		_node.ActorType = value
	}
	if value, ok := _c.mutation.State(); ok {
		_spec.SetField(participant.FieldState, field.TypeEnum, value)
		_node.State = value
	}
	if value, ok := _c.mutation.Role(); ok {
		_spec.SetField(participant.FieldRole, field.TypeString, value)
		_node.Role = value
	}
	if value, ok := _c.mutation.PartnerID(); ok {
		_spec.SetField(participant.FieldPartnerID, field.TypeString, value)
		_node.PartnerID = &value
	}
	if value, ok := _c.mutation.LlmConfig(); ok {
		_spec.SetField(participant.FieldLlmConfig, field.TypeJSON, value)
		_node.LlmConfig = value
	}
	if value, ok := _c.mutation.Availability(); ok {
		_spec.SetField(participant.FieldAvailability, field.TypeJSON, value)
		_node.Availability = value
	}
	if value, ok := _c.mutation.PairingMetadata(); ok {
		_spec.SetField(participant.FieldPairingMetadata, field.TypeJSON, value)
		_node.PairingMetadata = value
	}
	if value, ok := _c.mutation.Metadata(); ok {
		_spec.SetField(participant.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	if value, ok := _c.mutation.Email(); ok {
		_spec.SetField(participant.FieldEmail, field.TypeString, value)
		_node.Email = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(participant.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(participant.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if nodes := _c.mutation.StudyIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   participant.StudyTable,
			Columns: []string{participant.StudyColumn},
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
	if nodes := _c.mutation.BatchIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   participant.BatchTable,
			Columns: []string{participant.BatchColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(batch.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.BatchID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.EventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   participant.EventsTable,
			Columns: []string{participant.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.StoryArtifactsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   participant.StoryArtifactsTable,
			Columns: []string{participant.StoryArtifactsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(storyartifact.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.AgentContextIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   participant.AgentContextTable,
			Columns: []string{participant.AgentContextColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentcontext.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.SurveyResponsesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   participant.SurveyResponsesTable,
			Columns: []string{participant.SurveyResponsesColumn},
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
	if nodes := _c.mutation.AuthoredCommentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   participant.AuthoredCommentsTable,
			Columns: []string{participant.AuthoredCommentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(comment.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ReceivedCommentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   participant.ReceivedCommentsTable,
			Columns: []string{participant.ReceivedCommentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(comment.FieldID, field.TypeString),
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
//	client.Participant.Create().
//		SetStudyID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ParticipantUpsert) {
//			SetStudyID(v+v).
//		}).
//		Exec(ctx)
func (_c *ParticipantCreate) OnConflict(opts ...sql.ConflictOption) *ParticipantUpsertOne {
	_c.conflict = opts
	return &ParticipantUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Participant.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ParticipantCreate) OnConflictColumns(columns ...string) *ParticipantUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ParticipantUpsertOne{
		create: _c,
	}
}

type (
	// ParticipantUpsertOne is the builder for "upsert"-ing
	//  one Participant node.
	ParticipantUpsertOne struct {
		create *ParticipantCreate
	}

	// ParticipantUpsert is the "OnConflict" setter.
	ParticipantUpsert struct {
		*sql.UpdateSet
	}
)

// SetBatchID sets the "batch_id" field.
func (u *ParticipantUpsert) SetBatchID(v string) *ParticipantUpsert {
	u.Set(participant.FieldBatchID, v)
	return u
}

// UpdateBatchID sets the "batch_id" field to the value that was provided on create.
func (u *ParticipantUpsert) UpdateBatchID() *ParticipantUpsert {
	u.SetExcluded(participant.FieldBatchID)
	return u
}

// ClearBatchID clears the value of the "batch_id" field.
func (u *ParticipantUpsert) ClearBatchID() *ParticipantUpsert {
	u.SetNull(participant.FieldBatchID)
	return u
}

// SetConditionID sets the "condition_id" field.
func (u *ParticipantUpsert) SetConditionID(v string) *ParticipantUpsert {
	u.Set(participant.FieldConditionID, v)
	return u
}

// UpdateConditionID sets the "condition_id" field to the value that was provided on create.
func (u *ParticipantUpsert) UpdateConditionID() *ParticipantUpsert {
	u.SetExcluded(participant.FieldConditionID)
	return u
}

// ClearConditionID clears the value of the "condition_id" field.
func (u *ParticipantUpsert) ClearConditionID() *ParticipantUpsert {
	u.SetNull(participant.FieldConditionID)
	return u
}

// SetUniqueID sets the "unique_id" field.
func (u *ParticipantUpsert) SetUniqueID(v string) *ParticipantUpsert {
	u.Set(participant.FieldUniqueID, v)
	return u
}

// UpdateUniqueID sets the "unique_id" field to the value that was provided on create.
func (u *ParticipantUpsert) UpdateUniqueID() *ParticipantUpsert {
	u.SetExcluded(participant.FieldUniqueID)
	return u
}

// ClearUniqueID clears the value of the "unique_id" field.
func (u *ParticipantUpsert) ClearUniqueID() *ParticipantUpsert {
	u.SetNull(participant.FieldUniqueID)
	return u
}

// SetActorType sets the "actor_type" field.
func (u *ParticipantUpsert) SetActorType(v participant.ActorType) *ParticipantUpsert {
	u.Set(participant.FieldActorType, v)
	return u
}

// UpdateActorType sets the "actor_type" field to the value that was provided on create.
func (u *ParticipantUpsert) UpdateActorType() *ParticipantUpsert {
	u.SetExcluded(participant.FieldActorType)
	return u
}

// SetState sets the "state" field.
func (u *ParticipantUpsert) SetState(v participant.State) *ParticipantUpsert {
	u.Set(participant.FieldState, v)
	return u
}

// UpdateState sets the "state" field to the value that was provided on create.
func (u *ParticipantUpsert) UpdateState() *ParticipantUpsert {
	u.SetExcluded(participant.FieldState)
	return u
}

// SetRole sets the "role" field.
func (u *ParticipantUpsert) SetRole(v string) *ParticipantUpsert {
	u.Set(participant.FieldRole, v)
	return u
}

// UpdateRole sets the "role" field to the value that was provided on create.
func (u *ParticipantUpsert) UpdateRole() *ParticipantUpsert {
	u.SetExcluded(participant.FieldRole)
	return u
}

// SetPartnerID sets the "partner_id" field.
func (u *ParticipantUpsert) SetPartnerID(v string) *ParticipantUpsert {
	u.Set(participant.FieldPartnerID, v)
	return u
}

// UpdatePartnerID sets the "partner_id" field to the value that was provided on create.
func (u *ParticipantUpsert) UpdatePartnerID() *ParticipantUpsert {
	u.SetExcluded(participant.FieldPartnerID)
	return u
}

// ClearPartnerID clears the value of the "partner_id" field.
func (u *ParticipantUpsert) ClearPartnerID() *ParticipantUpsert {
	u.SetNull(participant.FieldPartnerID)
	return u
}

// SetLlmConfig sets the "llm_config" field.
func (u *ParticipantUpsert) SetLlmConfig(v *models.LLMConfig) *ParticipantUpsert {
	u.Set(participant.FieldLlmConfig, v)
	return u
}

// UpdateLlmConfig sets the "llm_config" field to the value that was provided on create.
func (u *ParticipantUpsert) UpdateLlmConfig() *ParticipantUpsert {
	u.SetExcluded(participant.FieldLlmConfig)
	return u
}

// ClearLlmConfig clears the value of the "llm_config" field.
func (u *ParticipantUpsert) ClearLlmConfig() *ParticipantUpsert {
	u.SetNull(participant.FieldLlmConfig)
	return u
}

// SetAvailability sets the "availability" field.
func (u *ParticipantUpsert) SetAvailability(v []models.AvailabilityWindow) *ParticipantUpsert {
	u.Set(participant.FieldAvailability, v)
	return u
}

// UpdateAvailability sets the "availability" field to the value that was provided on create.
func (u *ParticipantUpsert) UpdateAvailability() *ParticipantUpsert {
	u.SetExcluded(participant.FieldAvailability)
	return u
}

// ClearAvailability clears the value of the "availability" field.
func (u *ParticipantUpsert) ClearAvailability() *ParticipantUpsert {
	u.SetNull(participant.FieldAvailability)
	return u
}

// SetPairingMetadata sets the "pairing_metadata" field.
func (u *ParticipantUpsert) SetPairingMetadata(v map[string]interface{}) *ParticipantUpsert {
	u.Set(participant.FieldPairingMetadata, v)
	return u
}

// UpdatePairingMetadata sets the "pairing_metadata" field to the value that was provided on create.
func (u *ParticipantUpsert) UpdatePairingMetadata() *ParticipantUpsert {
	u.SetExcluded(participant.FieldPairingMetadata)
	return u
}

// ClearPairingMetadata clears the value of the "pairing_metadata" field.
func (u *ParticipantUpsert) ClearPairingMetadata() *ParticipantUpsert {
	u.SetNull(participant.FieldPairingMetadata)
	return u
}

// SetMetadata sets the "metadata" field.
func (u *ParticipantUpsert) SetMetadata(v map[string]interface{}) *ParticipantUpsert {
	u.Set(participant.FieldMetadata, v)
	return u
}

// UpdateMetadata sets the "metadata" field to the value that was provided on create.
func (u *ParticipantUpsert) UpdateMetadata() *ParticipantUpsert {
	u.SetExcluded(participant.FieldMetadata)
	return u
}

// ClearMetadata clears the value of the "metadata" field.
func (u *ParticipantUpsert) ClearMetadata() *ParticipantUpsert {
	u.SetNull(participant.FieldMetadata)
	return u
}

// SetEmail sets the "email" field.
func (u *ParticipantUpsert) SetEmail(v string) *ParticipantUpsert {
	u.Set(participant.FieldEmail, v)
	return u
}

// UpdateEmail sets the "email" field to the value that was provided on create.
func (u *ParticipantUpsert) UpdateEmail() *ParticipantUpsert {
	u.SetExcluded(participant.FieldEmail)
	return u
}

// ClearEmail clears the value of the "email" field.
func (u *ParticipantUpsert) ClearEmail() *ParticipantUpsert {
	u.SetNull(participant.FieldEmail)
	return u
}

// SetCompletedAt sets the "completed_at" field.
func (u *ParticipantUpsert) SetCompletedAt(v time.Time) *ParticipantUpsert {
	u.Set(participant.FieldCompletedAt, v)
	return u
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *ParticipantUpsert) UpdateCompletedAt() *ParticipantUpsert {
	u.SetExcluded(participant.FieldCompletedAt)
	return u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *ParticipantUpsert) ClearCompletedAt() *ParticipantUpsert {
	u.SetNull(participant.FieldCompletedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Participant.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(participant.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ParticipantUpsertOne) UpdateNewValues() *ParticipantUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(participant.FieldID)
		}
		if _, exists := u.create.mutation.StudyID(); exists {
			s.SetIgnore(participant.FieldStudyID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(participant.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Participant.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ParticipantUpsertOne) Ignore() *ParticipantUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ParticipantUpsertOne) DoNothing() *ParticipantUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ParticipantCreate.OnConflict
// documentation for more info.
func (u *ParticipantUpsertOne) Update(set func(*ParticipantUpsert)) *ParticipantUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ParticipantUpsert{UpdateSet: update})
	}))
	return u
}

// SetBatchID sets the "batch_id" field.
func (u *ParticipantUpsertOne) SetBatchID(v string) *ParticipantUpsertOne {
	return u.Update(func(s *ParticipantUpsert) {
		s.SetBatchID(v)
	})
}

// UpdateBatchID sets the "batch_id" field to the value that was provided on create.
func (u *ParticipantUpsertOne) UpdateBatchID() *ParticipantUpsertOne {
	return u.Update(func(s *ParticipantUpsert) {
		s.UpdateBatchID()
	})
}

// ClearBatchID clears the value of the "batch_id" field.
func (u *ParticipantUpsertOne) ClearBatchID() *ParticipantUpsertOne {
	return u.Update(func(s *ParticipantUpsert) {
		s.ClearBatchID()
	})
}

// SetConditionID sets the "condition_id" field.
func (u *ParticipantUpsertOne) SetConditionID(v string) *ParticipantUpsertOne {
	return u.Update(func(s *ParticipantUpsert) {
		s.SetConditionID(v)
	})
}

// UpdateConditionID sets the "condition_id" field to the value that was provided on create.
func (u *ParticipantUpsertOne) UpdateConditionID() *ParticipantUpsertOne {
	return u.Update(func(s *ParticipantUpsert) {
		s.UpdateConditionID()
	})
}

// ClearConditionID clears the value of the "condition_id" field.
func (u *ParticipantUpsertOne) ClearConditionID() *ParticipantUpsertOne {
	return u.Update(func(s *ParticipantUpsert) {
		s.ClearConditionID()
	})
}

// SetUniqueID sets the "unique_id" field.
func (u *ParticipantUpsertOne) SetUniqueID(v string) *ParticipantUpsertOne {
	return u.Update(func(s *ParticipantUpsert) {
		s.SetUniqueID(v)
	})
}

// UpdateUniqueID sets the "unique_id" field to the value that was provided on create.
func (u *ParticipantUpsertOne) UpdateUniqueID() *ParticipantUpsertOne {
	return u.Update(func(s *ParticipantUpsert) {
		s.UpdateUniqueID()
	})
}

// ClearUniqueID clears the value of the "unique_id" field.
func (u *ParticipantUpsertOne) ClearUniqueID() *ParticipantUpsertOne {
	return u.Update(func(s *ParticipantUpsert) {
		s.ClearUniqueID()
	})
}

// SetActorType sets the "actor_type" field.
func (u *ParticipantUpsertOne) SetActorType(v participant.ActorType) *ParticipantUpsertOne {
	return u.Update(func(s *ParticipantUpsert) {
		s.SetActorType(v)
	})
}

// UpdateActorType sets the "actor_type" field to the value that was provided on create.
func (u *ParticipantUpsertOne) UpdateActorType() *ParticipantUpsertOne {
	return u.Update(func(s *ParticipantUpsert) {
		s.UpdateActorType()
	})
}

// SetState sets the "state" field.
func (u *ParticipantUpsertOne) SetState(v participant.State) *ParticipantUpsertOne {
	return u.Update(func(s *ParticipantUpsert) {
		s.SetState(v)
	})
}

// UpdateState sets the "state" field to the value that was provided on create.
func (u *ParticipantUpsertOne) UpdateState() *ParticipantUpsertOne {
	return u.Update(func(s *ParticipantUpsert) {
		s.UpdateState()
	})
}

// SetRole sets the "role" field.
func (u *ParticipantUpsertOne) SetRole(v string) *ParticipantUpsertOne {
	return u.Update(func(s *ParticipantUpsert) {
		s.SetRole(v)
	})
}

// UpdateRole sets the "role" field to the value that was provided on create.
func (u *ParticipantUpsertOne) UpdateRole() *ParticipantUpsertOne {
	return u.Update(func(s *ParticipantUpsert) {
		s.UpdateRole()
	})
}

// SetPartnerID sets the "partner_id" field.
func (u *ParticipantUpsertOne) SetPartnerID(v string) *ParticipantUpsertOne {
	return u.Update(func(s *ParticipantUpsert) {
		s.SetPartnerID(v)
	})
}

// UpdatePartnerID sets the "partner_id" field to the value that was provided on create.
func (u *ParticipantUpsertOne) UpdatePartnerID() *ParticipantUpsertOne {
	return u.Update(func(s *ParticipantUpsert) {
		s.UpdatePartnerID()
	})
}

// ClearPartnerID clears the value of the "partner_id" field.
func (u *ParticipantUpsertOne) ClearPartnerID() *ParticipantUpsertOne {
	return u.Update(func(s *ParticipantUpsert) {
		s.ClearPartnerID()
	})
}

// SetLlmConfig sets the "llm_config" field.
func (u *ParticipantUpsertOne) SetLlmConfig(v *models.LLMConfig) *ParticipantUpsertOne {
	return u.Update(func(s *ParticipantUpsert) {
		s.SetLlmConfig(v)
	})
}

// UpdateLlmConfig sets the "llm_config" field to the value that was provided on create.
func (u *ParticipantUpsertOne) UpdateLlmConfig() *ParticipantUpsertOne {
	return u.Update(func(s *ParticipantUpsert) {
		s.UpdateLlmConfig()
	})
}

// ClearLlmConfig clears the value of the "llm_config" field.
func (u *ParticipantUpsertOne) ClearLlmConfig() *ParticipantUpsertOne {
	return u.Update(func(s *ParticipantUpsert) {
		s.ClearLlmConfig()
	})
}

// SetAvailability sets the "availability" field.
func (u *ParticipantUpsertOne) SetAvailability(v []models.AvailabilityWindow) *ParticipantUpsertOne {
	return u.Update(func(s *ParticipantUpsert) {
		s.SetAvailability(v)
	})
}

// UpdateAvailability sets the "availability" field to the value that was provided on create.
func (u *ParticipantUpsertOne) UpdateAvailability() *ParticipantUpsertOne {
	return u.Update(func(s *ParticipantUpsert) {
		s.UpdateAvailability()
	})
}

// ClearAvailability clears the value of the "availability" field.
func (u *ParticipantUpsertOne) ClearAvailability() *ParticipantUpsertOne {
	return u.Update(func(s *ParticipantUpsert) {
		s.ClearAvailability()
	})
}

// SetPairingMetadata sets the "pairing_metadata" field.
func (u *ParticipantUpsertOne) SetPairingMetadata(v map[string]interface{}) *ParticipantUpsertOne {
	return u.Update(func(s *ParticipantUpsert) {
		s.SetPairingMetadata(v)
	})
}

// UpdatePairingMetadata sets the "pairing_metadata" field to the value that was provided on create.
func (u *ParticipantUpsertOne) UpdatePairingMetadata() *ParticipantUpsertOne {
	return u.Update(func(s *ParticipantUpsert) {
		s.UpdatePairingMetadata()
	})
}

// ClearPairingMetadata clears the value of the "pairing_metadata" field.
func (u *ParticipantUpsertOne) ClearPairingMetadata() *ParticipantUpsertOne {
	return u.Update(func(s *ParticipantUpsert) {
		s.ClearPairingMetadata()
	})
}

// SetMetadata sets the "metadata" field.
func (u *ParticipantUpsertOne) SetMetadata(v map[string]interface{}) *ParticipantUpsertOne {
	return u.Update(func(s *ParticipantUpsert) {
		s.SetMetadata(v)
	})
}

// UpdateMetadata sets the "metadata" field to the value that was provided on create.
func (u *ParticipantUpsertOne) UpdateMetadata() *ParticipantUpsertOne {
	return u.Update(func(s *ParticipantUpsert) {
		s.UpdateMetadata()
	})
}

// ClearMetadata clears the value of the "metadata" field.
func (u *ParticipantUpsertOne) ClearMetadata() *ParticipantUpsertOne {
	return u.Update(func(s *ParticipantUpsert) {
		s.ClearMetadata()
	})
}

// SetEmail sets the "email" field.
func (u *ParticipantUpsertOne) SetEmail(v string) *ParticipantUpsertOne {
	return u.Update(func(s *ParticipantUpsert) {
		s.SetEmail(v)
	})
}

// UpdateEmail sets the "email" field to the value that was provided on create.
func (u *ParticipantUpsertOne) UpdateEmail() *ParticipantUpsertOne {
	return u.Update(func(s *ParticipantUpsert) {
		s.UpdateEmail()
	})
}

// ClearEmail clears the value of the "email" field.
func (u *ParticipantUpsertOne) ClearEmail() *ParticipantUpsertOne {
	return u.Update(func(s *ParticipantUpsert) {
		s.ClearEmail()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *ParticipantUpsertOne) SetCompletedAt(v time.Time) *ParticipantUpsertOne {
	return u.Update(func(s *ParticipantUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *ParticipantUpsertOne) UpdateCompletedAt() *ParticipantUpsertOne {
	return u.Update(func(s *ParticipantUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *ParticipantUpsertOne) ClearCompletedAt() *ParticipantUpsertOne {
	return u.Update(func(s *ParticipantUpsert) {
		s.ClearCompletedAt()
	})
}

// Exec executes the query.
func (u *ParticipantUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ParticipantCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ParticipantUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ParticipantUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ParticipantUpsertOne.ID is not supported by MySQL driver. Use ParticipantUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ParticipantUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ParticipantCreateBulk is the builder for creating many Participant entities in bulk.
type ParticipantCreateBulk struct {
	config
	err      error
	builders []*ParticipantCreate
	conflict []sql.ConflictOption
}

// Save creates the Participant entities in the database.
func (_c *ParticipantCreateBulk) Save(ctx context.Context) ([]*Participant, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Participant, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ParticipantMutation)
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
func (_c *ParticipantCreateBulk) SaveX(ctx context.Context) []*Participant {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ParticipantCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ParticipantCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Participant.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ParticipantUpsert) {
//			SetStudyID(v+v).
//		}).
//		Exec(ctx)
func (_c *ParticipantCreateBulk) OnConflict(opts ...sql.ConflictOption) *ParticipantUpsertBulk {
	_c.conflict = opts
	return &ParticipantUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Participant.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ParticipantCreateBulk) OnConflictColumns(columns ...string) *ParticipantUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ParticipantUpsertBulk{
		create: _c,
	}
}

// ParticipantUpsertBulk is the builder for "upsert"-ing
// a bulk of Participant nodes.
type ParticipantUpsertBulk struct {
	create *ParticipantCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Participant.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(participant.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ParticipantUpsertBulk) UpdateNewValues() *ParticipantUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(participant.FieldID)
			}
			if _, exists := b.mutation.StudyID(); exists {
				s.SetIgnore(participant.FieldStudyID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(participant.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Participant.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ParticipantUpsertBulk) Ignore() *ParticipantUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ParticipantUpsertBulk) DoNothing() *ParticipantUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ParticipantCreateBulk.OnConflict
// documentation for more info.
func (u *ParticipantUpsertBulk) Update(set func(*ParticipantUpsert)) *ParticipantUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ParticipantUpsert{UpdateSet: update})
	}))
	return u
}

// SetBatchID sets the "batch_id" field.
func (u *ParticipantUpsertBulk) SetBatchID(v string) *ParticipantUpsertBulk {
	return u.Update(func(s *ParticipantUpsert) {
		s.SetBatchID(v)
	})
}

// UpdateBatchID sets the "batch_id" field to the value that was provided on create.
func (u *ParticipantUpsertBulk) UpdateBatchID() *ParticipantUpsertBulk {
	return u.Update(func(s *ParticipantUpsert) {
		s.UpdateBatchID()
	})
}

// ClearBatchID clears the value of the "batch_id" field.
func (u *ParticipantUpsertBulk) ClearBatchID() *ParticipantUpsertBulk {
	return u.Update(func(s *ParticipantUpsert) {
		s.ClearBatchID()
	})
}

// SetConditionID sets the "condition_id" field.
func (u *ParticipantUpsertBulk) SetConditionID(v string) *ParticipantUpsertBulk {
	return u.Update(func(s *ParticipantUpsert) {
		s.SetConditionID(v)
	})
}

// UpdateConditionID sets the "condition_id" field to the value that was provided on create.
func (u *ParticipantUpsertBulk) UpdateConditionID() *ParticipantUpsertBulk {
	return u.Update(func(s *ParticipantUpsert) {
		s.UpdateConditionID()
	})
}

// ClearConditionID clears the value of the "condition_id" field.
func (u *ParticipantUpsertBulk) ClearConditionID() *ParticipantUpsertBulk {
	return u.Update(func(s *ParticipantUpsert) {
		s.ClearConditionID()
	})
}

// SetUniqueID sets the "unique_id" field.
func (u *ParticipantUpsertBulk) SetUniqueID(v string) *ParticipantUpsertBulk {
	return u.Update(func(s *ParticipantUpsert) {
		s.SetUniqueID(v)
	})
}

// UpdateUniqueID sets the "unique_id" field to the value that was provided on create.
func (u *ParticipantUpsertBulk) UpdateUniqueID() *ParticipantUpsertBulk {
	return u.Update(func(s *ParticipantUpsert) {
		s.UpdateUniqueID()
	})
}

// ClearUniqueID clears the value of the "unique_id" field.
func (u *ParticipantUpsertBulk) ClearUniqueID() *ParticipantUpsertBulk {
	return u.Update(func(s *ParticipantUpsert) {
		s.ClearUniqueID()
	})
}

// SetActorType sets the "actor_type" field.
func (u *ParticipantUpsertBulk) SetActorType(v participant.ActorType) *ParticipantUpsertBulk {
	return u.Update(func(s *ParticipantUpsert) {
		s.SetActorType(v)
	})
}

// UpdateActorType sets the "actor_type" field to the value that was provided on create.
func (u *ParticipantUpsertBulk) UpdateActorType() *ParticipantUpsertBulk {
	return u.Update(func(s *ParticipantUpsert) {
		s.UpdateActorType()
	})
}

// SetState sets the "state" field.
func (u *ParticipantUpsertBulk) SetState(v participant.State) *ParticipantUpsertBulk {
	return u.Update(func(s *ParticipantUpsert) {
		s.SetState(v)
	})
}

// UpdateState sets the "state" field to the value that was provided on create.
func (u *ParticipantUpsertBulk) UpdateState() *ParticipantUpsertBulk {
	return u.Update(func(s *ParticipantUpsert) {
		s.UpdateState()
	})
}

// SetRole sets the "role" field.
func (u *ParticipantUpsertBulk) SetRole(v string) *ParticipantUpsertBulk {
	return u.Update(func(s *ParticipantUpsert) {
		s.SetRole(v)
	})
}

// UpdateRole sets the "role" field to the value that was provided on create.
func (u *ParticipantUpsertBulk) UpdateRole() *ParticipantUpsertBulk {
	return u.Update(func(s *ParticipantUpsert) {
		s.UpdateRole()
	})
}

// SetPartnerID sets the "partner_id" field.
func (u *ParticipantUpsertBulk) SetPartnerID(v string) *ParticipantUpsertBulk {
	return u.Update(func(s *ParticipantUpsert) {
		s.SetPartnerID(v)
	})
}

// UpdatePartnerID sets the "partner_id" field to the value that was provided on create.
func (u *ParticipantUpsertBulk) UpdatePartnerID() *ParticipantUpsertBulk {
	return u.Update(func(s *ParticipantUpsert) {
		s.UpdatePartnerID()
	})
}

// ClearPartnerID clears the value of the "partner_id" field.
func (u *ParticipantUpsertBulk) ClearPartnerID() *ParticipantUpsertBulk {
	return u.Update(func(s *ParticipantUpsert) {
		s.ClearPartnerID()
	})
}

// SetLlmConfig sets the "llm_config" field.
func (u *ParticipantUpsertBulk) SetLlmConfig(v *models.LLMConfig) *ParticipantUpsertBulk {
	return u.Update(func(s *ParticipantUpsert) {
		s.SetLlmConfig(v)
	})
}

// UpdateLlmConfig sets the "llm_config" field to the value that was provided on create.
func (u *ParticipantUpsertBulk) UpdateLlmConfig() *ParticipantUpsertBulk {
	return u.Update(func(s *ParticipantUpsert) {
		s.UpdateLlmConfig()
	})
}

// ClearLlmConfig clears the value of the "llm_config" field.
func (u *ParticipantUpsertBulk) ClearLlmConfig() *ParticipantUpsertBulk {
	return u.Update(func(s *ParticipantUpsert) {
		s.ClearLlmConfig()
	})
}

// SetAvailability sets the "availability" field.
func (u *ParticipantUpsertBulk) SetAvailability(v []models.AvailabilityWindow) *ParticipantUpsertBulk {
	return u.Update(func(s *ParticipantUpsert) {
		s.SetAvailability(v)
	})
}

// UpdateAvailability sets the "availability" field to the value that was provided on create.
func (u *ParticipantUpsertBulk) UpdateAvailability() *ParticipantUpsertBulk {
	return u.Update(func(s *ParticipantUpsert) {
		s.UpdateAvailability()
	})
}

// ClearAvailability clears the value of the "availability" field.
func (u *ParticipantUpsertBulk) ClearAvailability() *ParticipantUpsertBulk {
	return u.Update(func(s *ParticipantUpsert) {
		s.ClearAvailability()
	})
}

// SetPairingMetadata sets the "pairing_metadata" field.
func (u *ParticipantUpsertBulk) SetPairingMetadata(v map[string]interface{}) *ParticipantUpsertBulk {
	return u.Update(func(s *ParticipantUpsert) {
		s.SetPairingMetadata(v)
	})
}

// UpdatePairingMetadata sets the "pairing_metadata" field to the value that was provided on create.
func (u *ParticipantUpsertBulk) UpdatePairingMetadata() *ParticipantUpsertBulk {
	return u.Update(func(s *ParticipantUpsert) {
		s.UpdatePairingMetadata()
	})
}

// ClearPairingMetadata clears the value of the "pairing_metadata" field.
func (u *ParticipantUpsertBulk) ClearPairingMetadata() *ParticipantUpsertBulk {
	return u.Update(func(s *ParticipantUpsert) {
		s.ClearPairingMetadata()
	})
}

// SetMetadata sets the "metadata" field.
func (u *ParticipantUpsertBulk) SetMetadata(v map[string]interface{}) *ParticipantUpsertBulk {
	return u.Update(func(s *ParticipantUpsert) {
		s.SetMetadata(v)
	})
}

// UpdateMetadata sets the "metadata" field to the value that was provided on create.
func (u *ParticipantUpsertBulk) UpdateMetadata() *ParticipantUpsertBulk {
	return u.Update(func(s *ParticipantUpsert) {
		s.UpdateMetadata()
	})
}

// ClearMetadata clears the value of the "metadata" field.
func (u *ParticipantUpsertBulk) ClearMetadata() *ParticipantUpsertBulk {
	return u.Update(func(s *ParticipantUpsert) {
		s.ClearMetadata()
	})
}

// SetEmail sets the "email" field.
func (u *ParticipantUpsertBulk) SetEmail(v string) *ParticipantUpsertBulk {
	return u.Update(func(s *ParticipantUpsert) {
		s.SetEmail(v)
	})
}

// UpdateEmail sets the "email" field to the value that was provided on create.
func (u *ParticipantUpsertBulk) UpdateEmail() *ParticipantUpsertBulk {
	return u.Update(func(s *ParticipantUpsert) {
		s.UpdateEmail()
	})
}

// ClearEmail clears the value of the "email" field.
func (u *ParticipantUpsertBulk) ClearEmail() *ParticipantUpsertBulk {
	return u.Update(func(s *ParticipantUpsert) {
		s.ClearEmail()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *ParticipantUpsertBulk) SetCompletedAt(v time.Time) *ParticipantUpsertBulk {
	return u.Update(func(s *ParticipantUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *ParticipantUpsertBulk) UpdateCompletedAt() *ParticipantUpsertBulk {
	return u.Update(func(s *ParticipantUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *ParticipantUpsertBulk) ClearCompletedAt() *ParticipantUpsertBulk {
	return u.Update(func(s *ParticipantUpsert) {
		s.ClearCompletedAt()
	})
}

// Exec executes the query.
func (u *ParticipantUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ParticipantCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ParticipantCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ParticipantUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
