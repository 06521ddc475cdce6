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
	"github.com/dyadlab/fabula/ent/batch"
	"github.com/dyadlab/fabula/ent/comment"
	"github.com/dyadlab/fabula/ent/event"
	"github.com/dyadlab/fabula/ent/participant"
	"github.com/dyadlab/fabula/ent/predicate"
	"github.com/dyadlab/fabula/ent/storyartifact"
	"github.com/dyadlab/fabula/ent/surveyresponse"
	"github.com/dyadlab/fabula/pkg/models"
)

// ParticipantUpdate is the builder for updating Participant entities.
type ParticipantUpdate struct {
	config
	hooks    []Hook
	mutation *ParticipantMutation
}

// Where appends a list predicates to the ParticipantUpdate builder.
func (_u *ParticipantUpdate) Where(ps ...predicate.Participant) *ParticipantUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetBatchID sets the "batch_id" field.
func (_u *ParticipantUpdate) SetBatchID(v string) *ParticipantUpdate {
	_u.mutation.SetBatchID(v)
	return _u
}

// SetNillableBatchID sets the "batch_id" field if the given value is not nil.
func (_u *ParticipantUpdate) SetNillableBatchID(v *string) *ParticipantUpdate {
	if v != nil {
		_u.SetBatchID(*v)
	}
	return _u
}

// ClearBatchID clears the value of the "batch_id" field.
func (_u *ParticipantUpdate) ClearBatchID() *ParticipantUpdate {
	_u.mutation.ClearBatchID()
	return _u
}

// SetConditionID sets the "condition_id" field.
func (_u *ParticipantUpdate) SetConditionID(v string) *ParticipantUpdate {
	_u.mutation.SetConditionID(v)
	return _u
}

// SetNillableConditionID sets the "condition_id" field if the given value is not nil.
func (_u *ParticipantUpdate) SetNillableConditionID(v *string) *ParticipantUpdate {
	if v != nil {
		_u.SetConditionID(*v)
	}
	return _u
}

// ClearConditionID clears the value of the "condition_id" field.
func (_u *ParticipantUpdate) ClearConditionID() *ParticipantUpdate {
	_u.mutation.ClearConditionID()
	return _u
}

// SetUniqueID sets the "unique_id" field.
func (_u *ParticipantUpdate) SetUniqueID(v string) *ParticipantUpdate {
	_u.mutation.SetUniqueID(v)
	return _u
}

// SetNillableUniqueID sets the "unique_id" field if the given value is not nil.
func (_u *ParticipantUpdate) SetNillableUniqueID(v *string) *ParticipantUpdate {
	if v != nil {
		_u.SetUniqueID(*v)
	}
	return _u
}

// ClearUniqueID clears the value of the "unique_id" field.
func (_u *ParticipantUpdate) ClearUniqueID() *ParticipantUpdate {
	_u.mutation.ClearUniqueID()
	return _u
}

// SetActorType sets the "actor_type" field.
func (_u *ParticipantUpdate) SetActorType(v participant.ActorType) *ParticipantUpdate {
	_u.mutation.SetActorType(v)
	return _u
}

// SetNillableActorType sets the "actor_type" field if the given value is not nil.
func (_u *ParticipantUpdate) SetNillableActorType(v *participant.ActorType) *ParticipantUpdate {
	if v != nil {
		_u.SetActorType(*v)
	}
	return _u
}

// SetState sets the "state" field.
func (_u *ParticipantUpdate) SetState(v participant.State) *ParticipantUpdate {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *ParticipantUpdate) SetNillableState(v *participant.State) *ParticipantUpdate {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetRole sets the "role" field.
func (_u *ParticipantUpdate) SetRole(v string) *ParticipantUpdate {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *ParticipantUpdate) SetNillableRole(v *string) *ParticipantUpdate {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// SetPartnerID sets the "partner_id" field.
func (_u *ParticipantUpdate) SetPartnerID(v string) *ParticipantUpdate {
	_u.mutation.SetPartnerID(v)
	return _u
}

// SetNillablePartnerID sets the "partner_id" field if the given value is not nil.
func (_u *ParticipantUpdate) SetNillablePartnerID(v *string) *ParticipantUpdate {
	if v != nil {
		_u.SetPartnerID(*v)
	}
	return _u
}

// ClearPartnerID clears the value of the "partner_id" field.
func (_u *ParticipantUpdate) ClearPartnerID() *ParticipantUpdate {
	_u.mutation.ClearPartnerID()
	return _u
}

// SetLlmConfig sets the "llm_config" field.
func (_u *ParticipantUpdate) SetLlmConfig(v *models.LLMConfig) *ParticipantUpdate {
	_u.mutation.SetLlmConfig(v)
	return _u
}

// ClearLlmConfig clears the value of the "llm_config" field.
func (_u *ParticipantUpdate) ClearLlmConfig() *ParticipantUpdate {
	_u.mutation.ClearLlmConfig()
	return _u
}

// SetAvailability sets the "availability" field.
func (_u *ParticipantUpdate) SetAvailability(v []models.AvailabilityWindow) *ParticipantUpdate {
	_u.mutation.SetAvailability(v)
	return _u
}

// AppendAvailability appends value to the "availability" field.
func (_u *ParticipantUpdate) AppendAvailability(v []models.AvailabilityWindow) *ParticipantUpdate {
	_u.mutation.AppendAvailability(v)
	return _u
}

// ClearAvailability clears the value of the "availability" field.
func (_u *ParticipantUpdate) ClearAvailability() *ParticipantUpdate {
	_u.mutation.ClearAvailability()
	return _u
}

// SetPairingMetadata sets the "pairing_metadata" field.
func (_u *ParticipantUpdate) SetPairingMetadata(v map[string]interface{}) *ParticipantUpdate {
	_u.mutation.SetPairingMetadata(v)
	return _u
}

// ClearPairingMetadata clears the value of the "pairing_metadata" field.
func (_u *ParticipantUpdate) ClearPairingMetadata() *ParticipantUpdate {
	_u.mutation.ClearPairingMetadata()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *ParticipantUpdate) SetMetadata(v map[string]interface{}) *ParticipantUpdate {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *ParticipantUpdate) ClearMetadata() *ParticipantUpdate {
	_u.mutation.ClearMetadata()
	return _u
}

// SetEmail sets the "email" field.
func (_u *ParticipantUpdate) SetEmail(v string) *ParticipantUpdate {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *ParticipantUpdate) SetNillableEmail(v *string) *ParticipantUpdate {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// ClearEmail clears the value of the "email" field.
func (_u *ParticipantUpdate) ClearEmail() *ParticipantUpdate {
	_u.mutation.ClearEmail()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *ParticipantUpdate) SetCompletedAt(v time.Time) *ParticipantUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *ParticipantUpdate) SetNillableCompletedAt(v *time.Time) *ParticipantUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *ParticipantUpdate) ClearCompletedAt() *ParticipantUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetBatch sets the "batch" edge to the Batch entity.
func (_u *ParticipantUpdate) SetBatch(v *Batch) *ParticipantUpdate {
	return _u.SetBatchID(v.ID)
}

// AddEventIDs adds the "events" edge to the Event entity by IDs.
func (_u *ParticipantUpdate) AddEventIDs(ids ...string) *ParticipantUpdate {
	_u.mutation.AddEventIDs(ids...)
	return _u
}

// AddEvents adds the "events" edges to the Event entity.
func (_u *ParticipantUpdate) AddEvents(v ...*Event) *ParticipantUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEventIDs(ids...)
}

// AddStoryArtifactIDs adds the "story_artifacts" edge to the StoryArtifact entity by IDs.
func (_u *ParticipantUpdate) AddStoryArtifactIDs(ids ...string) *ParticipantUpdate {
	_u.mutation.AddStoryArtifactIDs(ids...)
	return _u
}

// AddStoryArtifacts adds the "story_artifacts" edges to the StoryArtifact entity.
func (_u *ParticipantUpdate) AddStoryArtifacts(v ...*StoryArtifact) *ParticipantUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStoryArtifactIDs(ids...)
}

// SetAgentContextID sets the "agent_context" edge to the AgentContext entity by ID.
func (_u *ParticipantUpdate) SetAgentContextID(id string) *ParticipantUpdate {
	_u.mutation.SetAgentContextID(id)
	return _u
}

// SetNillableAgentContextID sets the "agent_context" edge to the AgentContext entity by ID if the given value is not nil.
func (_u *ParticipantUpdate) SetNillableAgentContextID(id *string) *ParticipantUpdate {
	if id != nil {
		_u = _u.SetAgentContextID(*id)
	}
	return _u
}

// SetAgentContext sets the "agent_context" edge to the AgentContext entity.
func (_u *ParticipantUpdate) SetAgentContext(v *AgentContext) *ParticipantUpdate {
	return _u.SetAgentContextID(v.ID)
}

// AddSurveyResponseIDs adds the "survey_responses" edge to the SurveyResponse entity by IDs.
func (_u *ParticipantUpdate) AddSurveyResponseIDs(ids ...string) *ParticipantUpdate {
	_u.mutation.AddSurveyResponseIDs(ids...)
	return _u
}

// AddSurveyResponses adds the "survey_responses" edges to the SurveyResponse entity.
func (_u *ParticipantUpdate) AddSurveyResponses(v ...*SurveyResponse) *ParticipantUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSurveyResponseIDs(ids...)
}

// AddAuthoredCommentIDs adds the "authored_comments" edge to the Comment entity by IDs.
func (_u *ParticipantUpdate) AddAuthoredCommentIDs(ids ...string) *ParticipantUpdate {
	_u.mutation.AddAuthoredCommentIDs(ids...)
	return _u
}

// AddAuthoredComments adds the "authored_comments" edges to the Comment entity.
func (_u *ParticipantUpdate) AddAuthoredComments(v ...*Comment) *ParticipantUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAuthoredCommentIDs(ids...)
}

// AddReceivedCommentIDs adds the "received_comments" edge to the Comment entity by IDs.
func (_u *ParticipantUpdate) AddReceivedCommentIDs(ids ...string) *ParticipantUpdate {
	_u.mutation.AddReceivedCommentIDs(ids...)
	return _u
}

// AddReceivedComments adds the "received_comments" edges to the Comment entity.
func (_u *ParticipantUpdate) AddReceivedComments(v ...*Comment) *ParticipantUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddReceivedCommentIDs(ids...)
}

// Mutation returns the ParticipantMutation object of the builder.
func (_u *ParticipantUpdate) Mutation() *ParticipantMutation {
	return _u.mutation
}

// ClearBatch clears the "batch" edge to the Batch entity.
func (_u *ParticipantUpdate) ClearBatch() *ParticipantUpdate {
	_u.mutation.ClearBatch()
	return _u
}

// ClearEvents clears all "events" edges to the Event entity.
func (_u *ParticipantUpdate) ClearEvents() *ParticipantUpdate {
	_u.mutation.ClearEvents()
	return _u
}

// RemoveEventIDs removes the "events" edge to Event entities by IDs.
func (_u *ParticipantUpdate) RemoveEventIDs(ids ...string) *ParticipantUpdate {
	_u.mutation.RemoveEventIDs(ids...)
	return _u
}

// RemoveEvents removes "events" edges to Event entities.
func (_u *ParticipantUpdate) RemoveEvents(v ...*Event) *ParticipantUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEventIDs(ids...)
}

// ClearStoryArtifacts clears all "story_artifacts" edges to the StoryArtifact entity.
func (_u *ParticipantUpdate) ClearStoryArtifacts() *ParticipantUpdate {
	_u.mutation.ClearStoryArtifacts()
	return _u
}

// RemoveStoryArtifactIDs removes the "story_artifacts" edge to StoryArtifact entities by IDs.
func (_u *ParticipantUpdate) RemoveStoryArtifactIDs(ids ...string) *ParticipantUpdate {
	_u.mutation.RemoveStoryArtifactIDs(ids...)
	return _u
}

// RemoveStoryArtifacts removes "story_artifacts" edges to StoryArtifact entities.
func (_u *ParticipantUpdate) RemoveStoryArtifacts(v ...*StoryArtifact) *ParticipantUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStoryArtifactIDs(ids...)
}

// ClearAgentContext clears the "agent_context" edge to the AgentContext entity.
func (_u *ParticipantUpdate) ClearAgentContext() *ParticipantUpdate {
	_u.mutation.ClearAgentContext()
	return _u
}

// ClearSurveyResponses clears all "survey_responses" edges to the SurveyResponse entity.
func (_u *ParticipantUpdate) ClearSurveyResponses() *ParticipantUpdate {
	_u.mutation.ClearSurveyResponses()
	return _u
}

// RemoveSurveyResponseIDs removes the "survey_responses" edge to SurveyResponse entities by IDs.
func (_u *ParticipantUpdate) RemoveSurveyResponseIDs(ids ...string) *ParticipantUpdate {
	_u.mutation.RemoveSurveyResponseIDs(ids...)
	return _u
}

// RemoveSurveyResponses removes "survey_responses" edges to SurveyResponse entities.
func (_u *ParticipantUpdate) RemoveSurveyResponses(v ...*SurveyResponse) *ParticipantUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSurveyResponseIDs(ids...)
}

// ClearAuthoredComments clears all "authored_comments" edges to the Comment entity.
func (_u *ParticipantUpdate) ClearAuthoredComments() *ParticipantUpdate {
	_u.mutation.ClearAuthoredComments()
	return _u
}

// RemoveAuthoredCommentIDs removes the "authored_comments" edge to Comment entities by IDs.
func (_u *ParticipantUpdate) RemoveAuthoredCommentIDs(ids ...string) *ParticipantUpdate {
	_u.mutation.RemoveAuthoredCommentIDs(ids...)
	return _u
}

// RemoveAuthoredComments removes "authored_comments" edges to Comment entities.
func (_u *ParticipantUpdate) RemoveAuthoredComments(v ...*Comment) *ParticipantUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAuthoredCommentIDs(ids...)
}

// ClearReceivedComments clears all "received_comments" edges to the Comment entity.
func (_u *ParticipantUpdate) ClearReceivedComments() *ParticipantUpdate {
	_u.mutation.ClearReceivedComments()
	return _u
}

// RemoveReceivedCommentIDs removes the "received_comments" edge to Comment entities by IDs.
func (_u *ParticipantUpdate) RemoveReceivedCommentIDs(ids ...string) *ParticipantUpdate {
	_u.mutation.RemoveReceivedCommentIDs(ids...)
	return _u
}

// RemoveReceivedComments removes "received_comments" edges to Comment entities.
func (_u *ParticipantUpdate) RemoveReceivedComments(v ...*Comment) *ParticipantUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveReceivedCommentIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ParticipantUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ParticipantUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ParticipantUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ParticipantUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ParticipantUpdate) check() error {
	if v, ok := _u.mutation.ActorType(); ok {
		if err := participant.ActorTypeValidator(v); err != nil {
			return &ValidationError{Name: "actor_type", err: fmt.Errorf(`ent: validator failed for field "Participant.actor_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.State(); ok {
		if err := participant.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "Participant.state": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LlmConfig(); ok {
		if err := v.Validate(); err != nil {
			return &ValidationError{Name: "llm_config", err: fmt.Errorf(`ent: validator failed for field "Participant.llm_config": %w`, err)}
		}
	}
	if _u.mutation.StudyCleared() && len(_u.mutation.StudyIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Participant.study"`)
	}
	return nil
}

func (_u *ParticipantUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(participant.Table, participant.Columns, sqlgraph.NewFieldSpec(participant.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ConditionID(); ok {
		_spec.SetField(participant.FieldConditionID, field.TypeString, value)
	}
	if _u.mutation.ConditionIDCleared() {
		_spec.ClearField(participant.FieldConditionID, field.TypeString)
	}
	if value, ok := _u.mutation.UniqueID(); ok {
		_spec.SetField(participant.FieldUniqueID, field.TypeString, value)
	}
	if _u.mutation.UniqueIDCleared() {
		_spec.ClearField(participant.FieldUniqueID, field.TypeString)
	}
	if value, ok := _u.mutation.ActorType(); ok {
		_spec.SetField(participant.FieldActorType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(participant.FieldState, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(participant.FieldRole, field.TypeString, value)
	}
	if value, ok := _u.mutation.PartnerID(); ok {
		_spec.SetField(participant.FieldPartnerID, field.TypeString, value)
	}
	if _u.mutation.PartnerIDCleared() {
		_spec.ClearField(participant.FieldPartnerID, field.TypeString)
	}
	if value, ok := _u.mutation.LlmConfig(); ok {
		_spec.SetField(participant.FieldLlmConfig, field.TypeJSON, value)
	}
	if _u.mutation.LlmConfigCleared() {
		_spec.ClearField(participant.FieldLlmConfig, field.TypeJSON)
	}
	if value, ok := _u.mutation.Availability(); ok {
		_spec.SetField(participant.FieldAvailability, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAvailability(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, participant.FieldAvailability, value)
		})
	}
	if _u.mutation.AvailabilityCleared() {
		_spec.ClearField(participant.FieldAvailability, field.TypeJSON)
	}
	if value, ok := _u.mutation.PairingMetadata(); ok {
		_spec.SetField(participant.FieldPairingMetadata, field.TypeJSON, value)
	}
	if _u.mutation.PairingMetadataCleared() {
		_spec.ClearField(participant.FieldPairingMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(participant.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(participant.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(participant.FieldEmail, field.TypeString, value)
	}
	if _u.mutation.EmailCleared() {
		_spec.ClearField(participant.FieldEmail, field.TypeString)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(participant.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(participant.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.BatchCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BatchIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEventsIDs(); len(nodes) > 0 && !_u.mutation.EventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.StoryArtifactsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedStoryArtifactsIDs(); len(nodes) > 0 && !_u.mutation.StoryArtifactsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StoryArtifactsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AgentContextCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AgentContextIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SurveyResponsesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSurveyResponsesIDs(); len(nodes) > 0 && !_u.mutation.SurveyResponsesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SurveyResponsesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AuthoredCommentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAuthoredCommentsIDs(); len(nodes) > 0 && !_u.mutation.AuthoredCommentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AuthoredCommentsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ReceivedCommentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedReceivedCommentsIDs(); len(nodes) > 0 && !_u.mutation.ReceivedCommentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ReceivedCommentsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{participant.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ParticipantUpdateOne is the builder for updating a single Participant entity.
type ParticipantUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ParticipantMutation
}

// SetBatchID sets the "batch_id" field.
func (_u *ParticipantUpdateOne) SetBatchID(v string) *ParticipantUpdateOne {
	_u.mutation.SetBatchID(v)
	return _u
}

// SetNillableBatchID sets the "batch_id" field if the given value is not nil.
func (_u *ParticipantUpdateOne) SetNillableBatchID(v *string) *ParticipantUpdateOne {
	if v != nil {
		_u.SetBatchID(*v)
	}
	return _u
}

// ClearBatchID clears the value of the "batch_id" field.
func (_u *ParticipantUpdateOne) ClearBatchID() *ParticipantUpdateOne {
	_u.mutation.ClearBatchID()
	return _u
}

// SetConditionID sets the "condition_id" field.
func (_u *ParticipantUpdateOne) SetConditionID(v string) *ParticipantUpdateOne {
	_u.mutation.SetConditionID(v)
	return _u
}

// SetNillableConditionID sets the "condition_id" field if the given value is not nil.
func (_u *ParticipantUpdateOne) SetNillableConditionID(v *string) *ParticipantUpdateOne {
	if v != nil {
		_u.SetConditionID(*v)
	}
	return _u
}

// ClearConditionID clears the value of the "condition_id" field.
func (_u *ParticipantUpdateOne) ClearConditionID() *ParticipantUpdateOne {
	_u.mutation.ClearConditionID()
	return _u
}

// SetUniqueID sets the "unique_id" field.
func (_u *ParticipantUpdateOne) SetUniqueID(v string) *ParticipantUpdateOne {
	_u.mutation.SetUniqueID(v)
	return _u
}

// SetNillableUniqueID sets the "unique_id" field if the given value is not nil.
func (_u *ParticipantUpdateOne) SetNillableUniqueID(v *string) *ParticipantUpdateOne {
	if v != nil {
		_u.SetUniqueID(*v)
	}
	return _u
}

// ClearUniqueID clears the value of the "unique_id" field.
func (_u *ParticipantUpdateOne) ClearUniqueID() *ParticipantUpdateOne {
	_u.mutation.ClearUniqueID()
	return _u
}

// SetActorType sets the "actor_type" field.
func (_u *ParticipantUpdateOne) SetActorType(v participant.ActorType) *ParticipantUpdateOne {
	_u.mutation.SetActorType(v)
	return _u
}

// SetNillableActorType sets the "actor_type" field if the given value is not nil.
func (_u *ParticipantUpdateOne) SetNillableActorType(v *participant.ActorType) *ParticipantUpdateOne {
	if v != nil {
		_u.SetActorType(*v)
	}
	return _u
}

// SetState sets the "state" field.
func (_u *ParticipantUpdateOne) SetState(v participant.State) *ParticipantUpdateOne {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *ParticipantUpdateOne) SetNillableState(v *participant.State) *ParticipantUpdateOne {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetRole sets the "role" field.
func (_u *ParticipantUpdateOne) SetRole(v string) *ParticipantUpdateOne {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *ParticipantUpdateOne) SetNillableRole(v *string) *ParticipantUpdateOne {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// SetPartnerID sets the "partner_id" field.
func (_u *ParticipantUpdateOne) SetPartnerID(v string) *ParticipantUpdateOne {
	_u.mutation.SetPartnerID(v)
	return _u
}

// SetNillablePartnerID sets the "partner_id" field if the given value is not nil.
func (_u *ParticipantUpdateOne) SetNillablePartnerID(v *string) *ParticipantUpdateOne {
	if v != nil {
		_u.SetPartnerID(*v)
	}
	return _u
}

// ClearPartnerID clears the value of the "partner_id" field.
func (_u *ParticipantUpdateOne) ClearPartnerID() *ParticipantUpdateOne {
	_u.mutation.ClearPartnerID()
	return _u
}

// SetLlmConfig sets the "llm_config" field.
func (_u *ParticipantUpdateOne) SetLlmConfig(v *models.LLMConfig) *ParticipantUpdateOne {
	_u.mutation.SetLlmConfig(v)
	return _u
}

// ClearLlmConfig clears the value of the "llm_config" field.
func (_u *ParticipantUpdateOne) ClearLlmConfig() *ParticipantUpdateOne {
	_u.mutation.ClearLlmConfig()
	return _u
}

// SetAvailability sets the "availability" field.
func (_u *ParticipantUpdateOne) SetAvailability(v []models.AvailabilityWindow) *ParticipantUpdateOne {
	_u.mutation.SetAvailability(v)
	return _u
}

// AppendAvailability appends value to the "availability" field.
func (_u *ParticipantUpdateOne) AppendAvailability(v []models.AvailabilityWindow) *ParticipantUpdateOne {
	_u.mutation.AppendAvailability(v)
	return _u
}

// ClearAvailability clears the value of the "availability" field.
func (_u *ParticipantUpdateOne) ClearAvailability() *ParticipantUpdateOne {
	_u.mutation.ClearAvailability()
	return _u
}

// SetPairingMetadata sets the "pairing_metadata" field.
func (_u *ParticipantUpdateOne) SetPairingMetadata(v map[string]interface{}) *ParticipantUpdateOne {
	_u.mutation.SetPairingMetadata(v)
	return _u
}

// ClearPairingMetadata clears the value of the "pairing_metadata" field.
func (_u *ParticipantUpdateOne) ClearPairingMetadata() *ParticipantUpdateOne {
	_u.mutation.ClearPairingMetadata()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *ParticipantUpdateOne) SetMetadata(v map[string]interface{}) *ParticipantUpdateOne {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *ParticipantUpdateOne) ClearMetadata() *ParticipantUpdateOne {
	_u.mutation.ClearMetadata()
	return _u
}

// SetEmail sets the "email" field.
func (_u *ParticipantUpdateOne) SetEmail(v string) *ParticipantUpdateOne {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *ParticipantUpdateOne) SetNillableEmail(v *string) *ParticipantUpdateOne {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// ClearEmail clears the value of the "email" field.
func (_u *ParticipantUpdateOne) ClearEmail() *ParticipantUpdateOne {
	_u.mutation.ClearEmail()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *ParticipantUpdateOne) SetCompletedAt(v time.Time) *ParticipantUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *ParticipantUpdateOne) SetNillableCompletedAt(v *time.Time) *ParticipantUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *ParticipantUpdateOne) ClearCompletedAt() *ParticipantUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetBatch sets the "batch" edge to the Batch entity.
func (_u *ParticipantUpdateOne) SetBatch(v *Batch) *ParticipantUpdateOne {
	return _u.SetBatchID(v.ID)
}

// AddEventIDs adds the "events" edge to the Event entity by IDs.
func (_u *ParticipantUpdateOne) AddEventIDs(ids ...string) *ParticipantUpdateOne {
	_u.mutation.AddEventIDs(ids...)
	return _u
}

// AddEvents adds the "events" edges to the Event entity.
func (_u *ParticipantUpdateOne) AddEvents(v ...*Event) *ParticipantUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEventIDs(ids...)
}

// AddStoryArtifactIDs adds the "story_artifacts" edge to the StoryArtifact entity by IDs.
func (_u *ParticipantUpdateOne) AddStoryArtifactIDs(ids ...string) *ParticipantUpdateOne {
	_u.mutation.AddStoryArtifactIDs(ids...)
	return _u
}

// AddStoryArtifacts adds the "story_artifacts" edges to the StoryArtifact entity.
func (_u *ParticipantUpdateOne) AddStoryArtifacts(v ...*StoryArtifact) *ParticipantUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStoryArtifactIDs(ids...)
}

// SetAgentContextID sets the "agent_context" edge to the AgentContext entity by ID.
func (_u *ParticipantUpdateOne) SetAgentContextID(id string) *ParticipantUpdateOne {
	_u.mutation.SetAgentContextID(id)
	return _u
}

// SetNillableAgentContextID sets the "agent_context" edge to the AgentContext entity by ID if the given value is not nil.
func (_u *ParticipantUpdateOne) SetNillableAgentContextID(id *string) *ParticipantUpdateOne {
	if id != nil {
		_u = _u.SetAgentContextID(*id)
	}
	return _u
}

// SetAgentContext sets the "agent_context" edge to the AgentContext entity.
func (_u *ParticipantUpdateOne) SetAgentContext(v *AgentContext) *ParticipantUpdateOne {
	return _u.SetAgentContextID(v.ID)
}

// AddSurveyResponseIDs adds the "survey_responses" edge to the SurveyResponse entity by IDs.
func (_u *ParticipantUpdateOne) AddSurveyResponseIDs(ids ...string) *ParticipantUpdateOne {
	_u.mutation.AddSurveyResponseIDs(ids...)
	return _u
}

// AddSurveyResponses adds the "survey_responses" edges to the SurveyResponse entity.
func (_u *ParticipantUpdateOne) AddSurveyResponses(v ...*SurveyResponse) *ParticipantUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSurveyResponseIDs(ids...)
}

// AddAuthoredCommentIDs adds the "authored_comments" edge to the Comment entity by IDs.
func (_u *ParticipantUpdateOne) AddAuthoredCommentIDs(ids ...string) *ParticipantUpdateOne {
	_u.mutation.AddAuthoredCommentIDs(ids...)
	return _u
}

// AddAuthoredComments adds the "authored_comments" edges to the Comment entity.
func (_u *ParticipantUpdateOne) AddAuthoredComments(v ...*Comment) *ParticipantUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAuthoredCommentIDs(ids...)
}

// AddReceivedCommentIDs adds the "received_comments" edge to the Comment entity by IDs.
func (_u *ParticipantUpdateOne) AddReceivedCommentIDs(ids ...string) *ParticipantUpdateOne {
	_u.mutation.AddReceivedCommentIDs(ids...)
	return _u
}

// AddReceivedComments adds the "received_comments" edges to the Comment entity.
func (_u *ParticipantUpdateOne) AddReceivedComments(v ...*Comment) *ParticipantUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddReceivedCommentIDs(ids...)
}

// Mutation returns the ParticipantMutation object of the builder.
func (_u *ParticipantUpdateOne) Mutation() *ParticipantMutation {
	return _u.mutation
}

// ClearBatch clears the "batch" edge to the Batch entity.
func (_u *ParticipantUpdateOne) ClearBatch() *ParticipantUpdateOne {
	_u.mutation.ClearBatch()
	return _u
}

// ClearEvents clears all "events" edges to the Event entity.
func (_u *ParticipantUpdateOne) ClearEvents() *ParticipantUpdateOne {
	_u.mutation.ClearEvents()
	return _u
}

// RemoveEventIDs removes the "events" edge to Event entities by IDs.
func (_u *ParticipantUpdateOne) RemoveEventIDs(ids ...string) *ParticipantUpdateOne {
	_u.mutation.RemoveEventIDs(ids...)
	return _u
}

// RemoveEvents removes "events" edges to Event entities.
func (_u *ParticipantUpdateOne) RemoveEvents(v ...*Event) *ParticipantUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEventIDs(ids...)
}

// ClearStoryArtifacts clears all "story_artifacts" edges to the StoryArtifact entity.
func (_u *ParticipantUpdateOne) ClearStoryArtifacts() *ParticipantUpdateOne {
	_u.mutation.ClearStoryArtifacts()
	return _u
}

// RemoveStoryArtifactIDs removes the "story_artifacts" edge to StoryArtifact entities by IDs.
func (_u *ParticipantUpdateOne) RemoveStoryArtifactIDs(ids ...string) *ParticipantUpdateOne {
	_u.mutation.RemoveStoryArtifactIDs(ids...)
	return _u
}

// RemoveStoryArtifacts removes "story_artifacts" edges to StoryArtifact entities.
func (_u *ParticipantUpdateOne) RemoveStoryArtifacts(v ...*StoryArtifact) *ParticipantUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStoryArtifactIDs(ids...)
}

// ClearAgentContext clears the "agent_context" edge to the AgentContext entity.
func (_u *ParticipantUpdateOne) ClearAgentContext() *ParticipantUpdateOne {
	_u.mutation.ClearAgentContext()
	return _u
}

// ClearSurveyResponses clears all "survey_responses" edges to the SurveyResponse entity.
func (_u *ParticipantUpdateOne) ClearSurveyResponses() *ParticipantUpdateOne {
	_u.mutation.ClearSurveyResponses()
	return _u
}

// RemoveSurveyResponseIDs removes the "survey_responses" edge to SurveyResponse entities by IDs.
func (_u *ParticipantUpdateOne) RemoveSurveyResponseIDs(ids ...string) *ParticipantUpdateOne {
	_u.mutation.RemoveSurveyResponseIDs(ids...)
	return _u
}

// RemoveSurveyResponses removes "survey_responses" edges to SurveyResponse entities.
func (_u *ParticipantUpdateOne) RemoveSurveyResponses(v ...*SurveyResponse) *ParticipantUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSurveyResponseIDs(ids...)
}

// ClearAuthoredComments clears all "authored_comments" edges to the Comment entity.
func (_u *ParticipantUpdateOne) ClearAuthoredComments() *ParticipantUpdateOne {
	_u.mutation.ClearAuthoredComments()
	return _u
}

// RemoveAuthoredCommentIDs removes the "authored_comments" edge to Comment entities by IDs.
func (_u *ParticipantUpdateOne) RemoveAuthoredCommentIDs(ids ...string) *ParticipantUpdateOne {
	_u.mutation.RemoveAuthoredCommentIDs(ids...)
	return _u
}

// RemoveAuthoredComments removes "authored_comments" edges to Comment entities.
func (_u *ParticipantUpdateOne) RemoveAuthoredComments(v ...*Comment) *ParticipantUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAuthoredCommentIDs(ids...)
}

// ClearReceivedComments clears all "received_comments" edges to the Comment entity.
func (_u *ParticipantUpdateOne) ClearReceivedComments() *ParticipantUpdateOne {
	_u.mutation.ClearReceivedComments()
	return _u
}

// RemoveReceivedCommentIDs removes the "received_comments" edge to Comment entities by IDs.
func (_u *ParticipantUpdateOne) RemoveReceivedCommentIDs(ids ...string) *ParticipantUpdateOne {
	_u.mutation.RemoveReceivedCommentIDs(ids...)
	return _u
}

// RemoveReceivedComments removes "received_comments" edges to Comment entities.
func (_u *ParticipantUpdateOne) RemoveReceivedComments(v ...*Comment) *ParticipantUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveReceivedCommentIDs(ids...)
}

// Where appends a list predicates to the ParticipantUpdate builder.
func (_u *ParticipantUpdateOne) Where(ps ...predicate.Participant) *ParticipantUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ParticipantUpdateOne) Select(field string, fields ...string) *ParticipantUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Participant entity.
func (_u *ParticipantUpdateOne) Save(ctx context.Context) (*Participant, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ParticipantUpdateOne) SaveX(ctx context.Context) *Participant {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ParticipantUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ParticipantUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ParticipantUpdateOne) check() error {
	if v, ok := _u.mutation.ActorType(); ok {
		if err := participant.ActorTypeValidator(v); err != nil {
			return &ValidationError{Name: "actor_type", err: fmt.Errorf(`ent: validator failed for field "Participant.actor_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.State(); ok {
		if err := participant.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "Participant.state": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LlmConfig(); ok {
		if err := v.Validate(); err != nil {
			return &ValidationError{Name: "llm_config", err: fmt.Errorf(`ent: validator failed for field "Participant.llm_config": %w`, err)}
		}
	}
	if _u.mutation.StudyCleared() && len(_u.mutation.StudyIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Participant.study"`)
	}
	return nil
}

func (_u *ParticipantUpdateOne) sqlSave(ctx context.Context) (_node *Participant, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(participant.Table, participant.Columns, sqlgraph.NewFieldSpec(participant.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Participant.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, participant.FieldID)
		for _, f := range fields {
			if !participant.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != participant.FieldID {
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
	if value, ok := _u.mutation.ConditionID(); ok {
		_spec.SetField(participant.FieldConditionID, field.TypeString, value)
	}
	if _u.mutation.ConditionIDCleared() {
		_spec.ClearField(participant.FieldConditionID, field.TypeString)
	}
	if value, ok := _u.mutation.UniqueID(); ok {
		_spec.SetField(participant.FieldUniqueID, field.TypeString, value)
	}
	if _u.mutation.UniqueIDCleared() {
		_spec.ClearField(participant.FieldUniqueID, field.TypeString)
	}
	if value, ok := _u.mutation.ActorType(); ok {
		_spec.SetField(participant.FieldActorType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(participant.FieldState, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(participant.FieldRole, field.TypeString, value)
	}
	if value, ok := _u.mutation.PartnerID(); ok {
		_spec.SetField(participant.FieldPartnerID, field.TypeString, value)
	}
	if _u.mutation.PartnerIDCleared() {
		_spec.ClearField(participant.FieldPartnerID, field.TypeString)
	}
	if value, ok := _u.mutation.LlmConfig(); ok {
		_spec.SetField(participant.FieldLlmConfig, field.TypeJSON, value)
	}
	if _u.mutation.LlmConfigCleared() {
		_spec.ClearField(participant.FieldLlmConfig, field.TypeJSON)
	}
	if value, ok := _u.mutation.Availability(); ok {
		_spec.SetField(participant.FieldAvailability, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAvailability(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, participant.FieldAvailability, value)
		})
	}
	if _u.mutation.AvailabilityCleared() {
		_spec.ClearField(participant.FieldAvailability, field.TypeJSON)
	}
	if value, ok := _u.mutation.PairingMetadata(); ok {
		_spec.SetField(participant.FieldPairingMetadata, field.TypeJSON, value)
	}
	if _u.mutation.PairingMetadataCleared() {
		_spec.ClearField(participant.FieldPairingMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(participant.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(participant.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(participant.FieldEmail, field.TypeString, value)
	}
	if _u.mutation.EmailCleared() {
		_spec.ClearField(participant.FieldEmail, field.TypeString)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(participant.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(participant.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.BatchCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BatchIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEventsIDs(); len(nodes) > 0 && !_u.mutation.EventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.StoryArtifactsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedStoryArtifactsIDs(); len(nodes) > 0 && !_u.mutation.StoryArtifactsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StoryArtifactsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AgentContextCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AgentContextIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SurveyResponsesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSurveyResponsesIDs(); len(nodes) > 0 && !_u.mutation.SurveyResponsesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SurveyResponsesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AuthoredCommentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAuthoredCommentsIDs(); len(nodes) > 0 && !_u.mutation.AuthoredCommentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AuthoredCommentsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ReceivedCommentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedReceivedCommentsIDs(); len(nodes) > 0 && !_u.mutation.ReceivedCommentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ReceivedCommentsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Participant{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{participant.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
