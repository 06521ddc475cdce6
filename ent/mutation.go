// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/dyadlab/fabula/ent/agentcontext"
	"github.com/dyadlab/fabula/ent/batch"
	"github.com/dyadlab/fabula/ent/comment"
	"github.com/dyadlab/fabula/ent/condition"
	"github.com/dyadlab/fabula/ent/event"
	"github.com/dyadlab/fabula/ent/hybridsession"
	"github.com/dyadlab/fabula/ent/job"
	"github.com/dyadlab/fabula/ent/participant"
	"github.com/dyadlab/fabula/ent/predicate"
	"github.com/dyadlab/fabula/ent/storyartifact"
	"github.com/dyadlab/fabula/ent/study"
	"github.com/dyadlab/fabula/ent/survey"
	"github.com/dyadlab/fabula/ent/surveyresponse"
	"github.com/dyadlab/fabula/pkg/models"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAgentContext   = "AgentContext"
	TypeBatch          = "Batch"
	TypeComment        = "Comment"
	TypeCondition      = "Condition"
	TypeEvent          = "Event"
	TypeHybridSession  = "HybridSession"
	TypeJob            = "Job"
	TypeParticipant    = "Participant"
	TypeStoryArtifact  = "StoryArtifact"
	TypeStudy          = "Study"
	TypeSurvey         = "Survey"
	TypeSurveyResponse = "SurveyResponse"
)

// AgentContextMutation represents an operation that mutates the AgentContext nodes in the graph.
type AgentContextMutation struct {
	config
	op                           Op
	typ                          string
	id                           *string
	current_round                *int
	addcurrent_round             *int
	current_phase                *agentcontext.CurrentPhase
	own_story_drafts             *[]models.StoryDraftEntry
	appendown_story_drafts       []models.StoryDraftEntry
	partner_stories_played       *[]models.PartnerStoryEntry
	appendpartner_stories_played []models.PartnerStoryEntry
	feedback_given               *[]models.FeedbackEntry
	appendfeedback_given         []models.FeedbackEntry
	feedback_received            *[]models.FeedbackEntry
	appendfeedback_received      []models.FeedbackEntry
	cumulative_learnings         *[]models.LearningEntry
	appendcumulative_learnings   []models.LearningEntry
	created_at                   *time.Time
	updated_at                   *time.Time
	clearedFields                map[string]struct{}
	participant                  *string
	clearedparticipant           bool
	done                         bool
	oldValue                     func(context.Context) (*AgentContext, error)
	predicates                   []predicate.AgentContext
}

var _ ent.Mutation = (*AgentContextMutation)(nil)

// agentcontextOption allows management of the mutation configuration using functional options.
type agentcontextOption func(*AgentContextMutation)

// newAgentContextMutation creates new mutation for the AgentContext entity.
func newAgentContextMutation(c config, op Op, opts ...agentcontextOption) *AgentContextMutation {
	m := &AgentContextMutation{
		config:        c,
		op:            op,
		typ:           TypeAgentContext,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAgentContextID sets the ID field of the mutation.
func withAgentContextID(id string) agentcontextOption {
	return func(m *AgentContextMutation) {
		var (
			err   error
			once  sync.Once
			value *AgentContext
		)
		m.oldValue = func(ctx context.Context) (*AgentContext, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AgentContext.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAgentContext sets the old AgentContext of the mutation.
func withAgentContext(node *AgentContext) agentcontextOption {
	return func(m *AgentContextMutation) {
		m.oldValue = func(context.Context) (*AgentContext, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AgentContextMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AgentContextMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AgentContext entities.
func (m *AgentContextMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AgentContextMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AgentContextMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AgentContext.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetParticipantID sets the "participant_id" field.
func (m *AgentContextMutation) SetParticipantID(s string) {
	m.participant = &s
}

// ParticipantID returns the value of the "participant_id" field in the mutation.
func (m *AgentContextMutation) ParticipantID() (r string, exists bool) {
	v := m.participant
	if v == nil {
		return
	}
	return *v, true
}

// OldParticipantID returns the old "participant_id" field's value of the AgentContext entity.
// If the AgentContext object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentContextMutation) OldParticipantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParticipantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParticipantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParticipantID: %w", err)
	}
	return oldValue.ParticipantID, nil
}

// ResetParticipantID resets all changes to the "participant_id" field.
func (m *AgentContextMutation) ResetParticipantID() {
	m.participant = nil
}

// SetCurrentRound sets the "current_round" field.
func (m *AgentContextMutation) SetCurrentRound(i int) {
	m.current_round = &i
	m.addcurrent_round = nil
}

// CurrentRound returns the value of the "current_round" field in the mutation.
func (m *AgentContextMutation) CurrentRound() (r int, exists bool) {
	v := m.current_round
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentRound returns the old "current_round" field's value of the AgentContext entity.
// If the AgentContext object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentContextMutation) OldCurrentRound(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentRound is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentRound requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentRound: %w", err)
	}
	return oldValue.CurrentRound, nil
}

// AddCurrentRound adds i to the "current_round" field.
func (m *AgentContextMutation) AddCurrentRound(i int) {
	if m.addcurrent_round != nil {
		*m.addcurrent_round += i
	} else {
		m.addcurrent_round = &i
	}
}

// AddedCurrentRound returns the value that was added to the "current_round" field in this mutation.
func (m *AgentContextMutation) AddedCurrentRound() (r int, exists bool) {
	v := m.addcurrent_round
	if v == nil {
		return
	}
	return *v, true
}

// ResetCurrentRound resets all changes to the "current_round" field.
func (m *AgentContextMutation) ResetCurrentRound() {
	m.current_round = nil
	m.addcurrent_round = nil
}

// SetCurrentPhase sets the "current_phase" field.
func (m *AgentContextMutation) SetCurrentPhase(ap agentcontext.CurrentPhase) {
	m.current_phase = &ap
}

// CurrentPhase returns the value of the "current_phase" field in the mutation.
func (m *AgentContextMutation) CurrentPhase() (r agentcontext.CurrentPhase, exists bool) {
	v := m.current_phase
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentPhase returns the old "current_phase" field's value of the AgentContext entity.
// If the AgentContext object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentContextMutation) OldCurrentPhase(ctx context.Context) (v agentcontext.CurrentPhase, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentPhase is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentPhase requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentPhase: %w", err)
	}
	return oldValue.CurrentPhase, nil
}

// ResetCurrentPhase resets all changes to the "current_phase" field.
func (m *AgentContextMutation) ResetCurrentPhase() {
	m.current_phase = nil
}

// SetOwnStoryDrafts sets the "own_story_drafts" field.
func (m *AgentContextMutation) SetOwnStoryDrafts(mde []models.StoryDraftEntry) {
	m.own_story_drafts = &mde
	m.appendown_story_drafts = nil
}

// OwnStoryDrafts returns the value of the "own_story_drafts" field in the mutation.
func (m *AgentContextMutation) OwnStoryDrafts() (r []models.StoryDraftEntry, exists bool) {
	v := m.own_story_drafts
	if v == nil {
		return
	}
	return *v, true
}

// OldOwnStoryDrafts returns the old "own_story_drafts" field's value of the AgentContext entity.
// If the AgentContext object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentContextMutation) OldOwnStoryDrafts(ctx context.Context) (v []models.StoryDraftEntry, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOwnStoryDrafts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOwnStoryDrafts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOwnStoryDrafts: %w", err)
	}
	return oldValue.OwnStoryDrafts, nil
}

// AppendOwnStoryDrafts adds mde to the "own_story_drafts" field.
func (m *AgentContextMutation) AppendOwnStoryDrafts(mde []models.StoryDraftEntry) {
	m.appendown_story_drafts = append(m.appendown_story_drafts, mde...)
}

// AppendedOwnStoryDrafts returns the list of values that were appended to the "own_story_drafts" field in this mutation.
func (m *AgentContextMutation) AppendedOwnStoryDrafts() ([]models.StoryDraftEntry, bool) {
	if len(m.appendown_story_drafts) == 0 {
		return nil, false
	}
	return m.appendown_story_drafts, true
}

// ResetOwnStoryDrafts resets all changes to the "own_story_drafts" field.
func (m *AgentContextMutation) ResetOwnStoryDrafts() {
	m.own_story_drafts = nil
	m.appendown_story_drafts = nil
}

// SetPartnerStoriesPlayed sets the "partner_stories_played" field.
func (m *AgentContextMutation) SetPartnerStoriesPlayed(mse []models.PartnerStoryEntry) {
	m.partner_stories_played = &mse
	m.appendpartner_stories_played = nil
}

// PartnerStoriesPlayed returns the value of the "partner_stories_played" field in the mutation.
func (m *AgentContextMutation) PartnerStoriesPlayed() (r []models.PartnerStoryEntry, exists bool) {
	v := m.partner_stories_played
	if v == nil {
		return
	}
	return *v, true
}

// OldPartnerStoriesPlayed returns the old "partner_stories_played" field's value of the AgentContext entity.
// If the AgentContext object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentContextMutation) OldPartnerStoriesPlayed(ctx context.Context) (v []models.PartnerStoryEntry, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPartnerStoriesPlayed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPartnerStoriesPlayed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPartnerStoriesPlayed: %w", err)
	}
	return oldValue.PartnerStoriesPlayed, nil
}

// AppendPartnerStoriesPlayed adds mse to the "partner_stories_played" field.
func (m *AgentContextMutation) AppendPartnerStoriesPlayed(mse []models.PartnerStoryEntry) {
	m.appendpartner_stories_played = append(m.appendpartner_stories_played, mse...)
}

// AppendedPartnerStoriesPlayed returns the list of values that were appended to the "partner_stories_played" field in this mutation.
func (m *AgentContextMutation) AppendedPartnerStoriesPlayed() ([]models.PartnerStoryEntry, bool) {
	if len(m.appendpartner_stories_played) == 0 {
		return nil, false
	}
	return m.appendpartner_stories_played, true
}

// ResetPartnerStoriesPlayed resets all changes to the "partner_stories_played" field.
func (m *AgentContextMutation) ResetPartnerStoriesPlayed() {
	m.partner_stories_played = nil
	m.appendpartner_stories_played = nil
}

// SetFeedbackGiven sets the "feedback_given" field.
func (m *AgentContextMutation) SetFeedbackGiven(me []models.FeedbackEntry) {
	m.feedback_given = &me
	m.appendfeedback_given = nil
}

// FeedbackGiven returns the value of the "feedback_given" field in the mutation.
func (m *AgentContextMutation) FeedbackGiven() (r []models.FeedbackEntry, exists bool) {
	v := m.feedback_given
	if v == nil {
		return
	}
	return *v, true
}

// OldFeedbackGiven returns the old "feedback_given" field's value of the AgentContext entity.
// If the AgentContext object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentContextMutation) OldFeedbackGiven(ctx context.Context) (v []models.FeedbackEntry, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFeedbackGiven is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFeedbackGiven requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFeedbackGiven: %w", err)
	}
	return oldValue.FeedbackGiven, nil
}

// AppendFeedbackGiven adds me to the "feedback_given" field.
func (m *AgentContextMutation) AppendFeedbackGiven(me []models.FeedbackEntry) {
	m.appendfeedback_given = append(m.appendfeedback_given, me...)
}

// AppendedFeedbackGiven returns the list of values that were appended to the "feedback_given" field in this mutation.
func (m *AgentContextMutation) AppendedFeedbackGiven() ([]models.FeedbackEntry, bool) {
	if len(m.appendfeedback_given) == 0 {
		return nil, false
	}
	return m.appendfeedback_given, true
}

// ResetFeedbackGiven resets all changes to the "feedback_given" field.
func (m *AgentContextMutation) ResetFeedbackGiven() {
	m.feedback_given = nil
	m.appendfeedback_given = nil
}

// SetFeedbackReceived sets the "feedback_received" field.
func (m *AgentContextMutation) SetFeedbackReceived(me []models.FeedbackEntry) {
	m.feedback_received = &me
	m.appendfeedback_received = nil
}

// FeedbackReceived returns the value of the "feedback_received" field in the mutation.
func (m *AgentContextMutation) FeedbackReceived() (r []models.FeedbackEntry, exists bool) {
	v := m.feedback_received
	if v == nil {
		return
	}
	return *v, true
}

// OldFeedbackReceived returns the old "feedback_received" field's value of the AgentContext entity.
// If the AgentContext object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentContextMutation) OldFeedbackReceived(ctx context.Context) (v []models.FeedbackEntry, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFeedbackReceived is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFeedbackReceived requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFeedbackReceived: %w", err)
	}
	return oldValue.FeedbackReceived, nil
}

// AppendFeedbackReceived adds me to the "feedback_received" field.
func (m *AgentContextMutation) AppendFeedbackReceived(me []models.FeedbackEntry) {
	m.appendfeedback_received = append(m.appendfeedback_received, me...)
}

// AppendedFeedbackReceived returns the list of values that were appended to the "feedback_received" field in this mutation.
func (m *AgentContextMutation) AppendedFeedbackReceived() ([]models.FeedbackEntry, bool) {
	if len(m.appendfeedback_received) == 0 {
		return nil, false
	}
	return m.appendfeedback_received, true
}

// ResetFeedbackReceived resets all changes to the "feedback_received" field.
func (m *AgentContextMutation) ResetFeedbackReceived() {
	m.feedback_received = nil
	m.appendfeedback_received = nil
}

// SetCumulativeLearnings sets the "cumulative_learnings" field.
func (m *AgentContextMutation) SetCumulativeLearnings(me []models.LearningEntry) {
	m.cumulative_learnings = &me
	m.appendcumulative_learnings = nil
}

// CumulativeLearnings returns the value of the "cumulative_learnings" field in the mutation.
func (m *AgentContextMutation) CumulativeLearnings() (r []models.LearningEntry, exists bool) {
	v := m.cumulative_learnings
	if v == nil {
		return
	}
	return *v, true
}

// OldCumulativeLearnings returns the old "cumulative_learnings" field's value of the AgentContext entity.
// If the AgentContext object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentContextMutation) OldCumulativeLearnings(ctx context.Context) (v []models.LearningEntry, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCumulativeLearnings is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCumulativeLearnings requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCumulativeLearnings: %w", err)
	}
	return oldValue.CumulativeLearnings, nil
}

// AppendCumulativeLearnings adds me to the "cumulative_learnings" field.
func (m *AgentContextMutation) AppendCumulativeLearnings(me []models.LearningEntry) {
	m.appendcumulative_learnings = append(m.appendcumulative_learnings, me...)
}

// AppendedCumulativeLearnings returns the list of values that were appended to the "cumulative_learnings" field in this mutation.
func (m *AgentContextMutation) AppendedCumulativeLearnings() ([]models.LearningEntry, bool) {
	if len(m.appendcumulative_learnings) == 0 {
		return nil, false
	}
	return m.appendcumulative_learnings, true
}

// ResetCumulativeLearnings resets all changes to the "cumulative_learnings" field.
func (m *AgentContextMutation) ResetCumulativeLearnings() {
	m.cumulative_learnings = nil
	m.appendcumulative_learnings = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *AgentContextMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AgentContextMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AgentContext entity.
// If the AgentContext object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentContextMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AgentContextMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *AgentContextMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *AgentContextMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the AgentContext entity.
// If the AgentContext object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentContextMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *AgentContextMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearParticipant clears the "participant" edge to the Participant entity.
func (m *AgentContextMutation) ClearParticipant() {
	m.clearedparticipant = true
	m.clearedFields[agentcontext.FieldParticipantID] = struct{}{}
}

// ParticipantCleared reports if the "participant" edge to the Participant entity was cleared.
func (m *AgentContextMutation) ParticipantCleared() bool {
	return m.clearedparticipant
}

// ParticipantIDs returns the "participant" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ParticipantID instead. It exists only for internal usage by the builders.
func (m *AgentContextMutation) ParticipantIDs() (ids []string) {
	if id := m.participant; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetParticipant resets all changes to the "participant" edge.
func (m *AgentContextMutation) ResetParticipant() {
	m.participant = nil
	m.clearedparticipant = false
}

// Where appends a list predicates to the AgentContextMutation builder.
func (m *AgentContextMutation) Where(ps ...predicate.AgentContext) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AgentContextMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AgentContextMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AgentContext, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AgentContextMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AgentContextMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AgentContext).
func (m *AgentContextMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AgentContextMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.participant != nil {
		fields = append(fields, agentcontext.FieldParticipantID)
	}
	if m.current_round != nil {
		fields = append(fields, agentcontext.FieldCurrentRound)
	}
	if m.current_phase != nil {
		fields = append(fields, agentcontext.FieldCurrentPhase)
	}
	if m.own_story_drafts != nil {
		fields = append(fields, agentcontext.FieldOwnStoryDrafts)
	}
	if m.partner_stories_played != nil {
		fields = append(fields, agentcontext.FieldPartnerStoriesPlayed)
	}
	if m.feedback_given != nil {
		fields = append(fields, agentcontext.FieldFeedbackGiven)
	}
	if m.feedback_received != nil {
		fields = append(fields, agentcontext.FieldFeedbackReceived)
	}
	if m.cumulative_learnings != nil {
		fields = append(fields, agentcontext.FieldCumulativeLearnings)
	}
	if m.created_at != nil {
		fields = append(fields, agentcontext.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, agentcontext.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AgentContextMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case agentcontext.FieldParticipantID:
		return m.ParticipantID()
	case agentcontext.FieldCurrentRound:
		return m.CurrentRound()
	case agentcontext.FieldCurrentPhase:
		return m.CurrentPhase()
	case agentcontext.FieldOwnStoryDrafts:
		return m.OwnStoryDrafts()
	case agentcontext.FieldPartnerStoriesPlayed:
		return m.PartnerStoriesPlayed()
	case agentcontext.FieldFeedbackGiven:
		return m.FeedbackGiven()
	case agentcontext.FieldFeedbackReceived:
		return m.FeedbackReceived()
	case agentcontext.FieldCumulativeLearnings:
		return m.CumulativeLearnings()
	case agentcontext.FieldCreatedAt:
		return m.CreatedAt()
	case agentcontext.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AgentContextMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case agentcontext.FieldParticipantID:
		return m.OldParticipantID(ctx)
	case agentcontext.FieldCurrentRound:
		return m.OldCurrentRound(ctx)
	case agentcontext.FieldCurrentPhase:
		return m.OldCurrentPhase(ctx)
	case agentcontext.FieldOwnStoryDrafts:
		return m.OldOwnStoryDrafts(ctx)
	case agentcontext.FieldPartnerStoriesPlayed:
		return m.OldPartnerStoriesPlayed(ctx)
	case agentcontext.FieldFeedbackGiven:
		return m.OldFeedbackGiven(ctx)
	case agentcontext.FieldFeedbackReceived:
		return m.OldFeedbackReceived(ctx)
	case agentcontext.FieldCumulativeLearnings:
		return m.OldCumulativeLearnings(ctx)
	case agentcontext.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case agentcontext.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AgentContext field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentContextMutation) SetField(name string, value ent.Value) error {
	switch name {
	case agentcontext.FieldParticipantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParticipantID(v)
		return nil
	case agentcontext.FieldCurrentRound:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentRound(v)
		return nil
	case agentcontext.FieldCurrentPhase:
		v, ok := value.(agentcontext.CurrentPhase)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentPhase(v)
		return nil
	case agentcontext.FieldOwnStoryDrafts:
		v, ok := value.([]models.StoryDraftEntry)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOwnStoryDrafts(v)
		return nil
	case agentcontext.FieldPartnerStoriesPlayed:
		v, ok := value.([]models.PartnerStoryEntry)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPartnerStoriesPlayed(v)
		return nil
	case agentcontext.FieldFeedbackGiven:
		v, ok := value.([]models.FeedbackEntry)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFeedbackGiven(v)
		return nil
	case agentcontext.FieldFeedbackReceived:
		v, ok := value.([]models.FeedbackEntry)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFeedbackReceived(v)
		return nil
	case agentcontext.FieldCumulativeLearnings:
		v, ok := value.([]models.LearningEntry)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCumulativeLearnings(v)
		return nil
	case agentcontext.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case agentcontext.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AgentContext field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AgentContextMutation) AddedFields() []string {
	var fields []string
	if m.addcurrent_round != nil {
		fields = append(fields, agentcontext.FieldCurrentRound)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AgentContextMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case agentcontext.FieldCurrentRound:
		return m.AddedCurrentRound()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentContextMutation) AddField(name string, value ent.Value) error {
	switch name {
	case agentcontext.FieldCurrentRound:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCurrentRound(v)
		return nil
	}
	return fmt.Errorf("unknown AgentContext numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AgentContextMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AgentContextMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AgentContextMutation) ClearField(name string) error {
	return fmt.Errorf("unknown AgentContext nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AgentContextMutation) ResetField(name string) error {
	switch name {
	case agentcontext.FieldParticipantID:
		m.ResetParticipantID()
		return nil
	case agentcontext.FieldCurrentRound:
		m.ResetCurrentRound()
		return nil
	case agentcontext.FieldCurrentPhase:
		m.ResetCurrentPhase()
		return nil
	case agentcontext.FieldOwnStoryDrafts:
		m.ResetOwnStoryDrafts()
		return nil
	case agentcontext.FieldPartnerStoriesPlayed:
		m.ResetPartnerStoriesPlayed()
		return nil
	case agentcontext.FieldFeedbackGiven:
		m.ResetFeedbackGiven()
		return nil
	case agentcontext.FieldFeedbackReceived:
		m.ResetFeedbackReceived()
		return nil
	case agentcontext.FieldCumulativeLearnings:
		m.ResetCumulativeLearnings()
		return nil
	case agentcontext.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case agentcontext.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown AgentContext field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AgentContextMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.participant != nil {
		edges = append(edges, agentcontext.EdgeParticipant)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AgentContextMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case agentcontext.EdgeParticipant:
		if id := m.participant; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AgentContextMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AgentContextMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AgentContextMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedparticipant {
		edges = append(edges, agentcontext.EdgeParticipant)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AgentContextMutation) EdgeCleared(name string) bool {
	switch name {
	case agentcontext.EdgeParticipant:
		return m.clearedparticipant
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AgentContextMutation) ClearEdge(name string) error {
	switch name {
	case agentcontext.EdgeParticipant:
		m.ClearParticipant()
		return nil
	}
	return fmt.Errorf("unknown AgentContext unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AgentContextMutation) ResetEdge(name string) error {
	switch name {
	case agentcontext.EdgeParticipant:
		m.ResetParticipant()
		return nil
	}
	return fmt.Errorf("unknown AgentContext edge %s", name)
}

// BatchMutation represents an operation that mutates the Batch nodes in the graph.
type BatchMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	name                *string
	status              *batch.Status
	actors_created      *int
	addactors_created   *int
	actors_completed    *int
	addactors_completed *int
	export_path         *string
	error_message       *string
	metadata            *map[string]interface{}
	created_at          *time.Time
	started_at          *time.Time
	completed_at        *time.Time
	clearedFields       map[string]struct{}
	study               *string
	clearedstudy        bool
	participants        map[string]struct{}
	removedparticipants map[string]struct{}
	clearedparticipants bool
	done                bool
	oldValue            func(context.Context) (*Batch, error)
	predicates          []predicate.Batch
}

var _ ent.Mutation = (*BatchMutation)(nil)

// batchOption allows management of the mutation configuration using functional options.
type batchOption func(*BatchMutation)

// newBatchMutation creates new mutation for the Batch entity.
func newBatchMutation(c config, op Op, opts ...batchOption) *BatchMutation {
	m := &BatchMutation{
		config:        c,
		op:            op,
		typ:           TypeBatch,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withBatchID sets the ID field of the mutation.
func withBatchID(id string) batchOption {
	return func(m *BatchMutation) {
		var (
			err   error
			once  sync.Once
			value *Batch
		)
		m.oldValue = func(ctx context.Context) (*Batch, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Batch.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withBatch sets the old Batch of the mutation.
func withBatch(node *Batch) batchOption {
	return func(m *BatchMutation) {
		m.oldValue = func(context.Context) (*Batch, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m BatchMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m BatchMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Batch entities.
func (m *BatchMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *BatchMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *BatchMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Batch.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetStudyID sets the "study_id" field.
func (m *BatchMutation) SetStudyID(s string) {
	m.study = &s
}

// StudyID returns the value of the "study_id" field in the mutation.
func (m *BatchMutation) StudyID() (r string, exists bool) {
	v := m.study
	if v == nil {
		return
	}
	return *v, true
}

// OldStudyID returns the old "study_id" field's value of the Batch entity.
// If the Batch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchMutation) OldStudyID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStudyID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStudyID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStudyID: %w", err)
	}
	return oldValue.StudyID, nil
}

// ResetStudyID resets all changes to the "study_id" field.
func (m *BatchMutation) ResetStudyID() {
	m.study = nil
}

// SetName sets the "name" field.
func (m *BatchMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *BatchMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Batch entity.
// If the Batch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *BatchMutation) ResetName() {
	m.name = nil
}

// SetStatus sets the "status" field.
func (m *BatchMutation) SetStatus(b batch.Status) {
	m.status = &b
}

// Status returns the value of the "status" field in the mutation.
func (m *BatchMutation) Status() (r batch.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Batch entity.
// If the Batch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchMutation) OldStatus(ctx context.Context) (v batch.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *BatchMutation) ResetStatus() {
	m.status = nil
}

// SetActorsCreated sets the "actors_created" field.
func (m *BatchMutation) SetActorsCreated(i int) {
	m.actors_created = &i
	m.addactors_created = nil
}

// ActorsCreated returns the value of the "actors_created" field in the mutation.
func (m *BatchMutation) ActorsCreated() (r int, exists bool) {
	v := m.actors_created
	if v == nil {
		return
	}
	return *v, true
}

// OldActorsCreated returns the old "actors_created" field's value of the Batch entity.
// If the Batch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchMutation) OldActorsCreated(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActorsCreated is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActorsCreated requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActorsCreated: %w", err)
	}
	return oldValue.ActorsCreated, nil
}

// AddActorsCreated adds i to the "actors_created" field.
func (m *BatchMutation) AddActorsCreated(i int) {
	if m.addactors_created != nil {
		*m.addactors_created += i
	} else {
		m.addactors_created = &i
	}
}

// AddedActorsCreated returns the value that was added to the "actors_created" field in this mutation.
func (m *BatchMutation) AddedActorsCreated() (r int, exists bool) {
	v := m.addactors_created
	if v == nil {
		return
	}
	return *v, true
}

// ResetActorsCreated resets all changes to the "actors_created" field.
func (m *BatchMutation) ResetActorsCreated() {
	m.actors_created = nil
	m.addactors_created = nil
}

// SetActorsCompleted sets the "actors_completed" field.
func (m *BatchMutation) SetActorsCompleted(i int) {
	m.actors_completed = &i
	m.addactors_completed = nil
}

// ActorsCompleted returns the value of the "actors_completed" field in the mutation.
func (m *BatchMutation) ActorsCompleted() (r int, exists bool) {
	v := m.actors_completed
	if v == nil {
		return
	}
	return *v, true
}

// OldActorsCompleted returns the old "actors_completed" field's value of the Batch entity.
// If the Batch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchMutation) OldActorsCompleted(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActorsCompleted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActorsCompleted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActorsCompleted: %w", err)
	}
	return oldValue.ActorsCompleted, nil
}

// AddActorsCompleted adds i to the "actors_completed" field.
func (m *BatchMutation) AddActorsCompleted(i int) {
	if m.addactors_completed != nil {
		*m.addactors_completed += i
	} else {
		m.addactors_completed = &i
	}
}

// AddedActorsCompleted returns the value that was added to the "actors_completed" field in this mutation.
func (m *BatchMutation) AddedActorsCompleted() (r int, exists bool) {
	v := m.addactors_completed
	if v == nil {
		return
	}
	return *v, true
}

// ResetActorsCompleted resets all changes to the "actors_completed" field.
func (m *BatchMutation) ResetActorsCompleted() {
	m.actors_completed = nil
	m.addactors_completed = nil
}

// SetExportPath sets the "export_path" field.
func (m *BatchMutation) SetExportPath(s string) {
	m.export_path = &s
}

// ExportPath returns the value of the "export_path" field in the mutation.
func (m *BatchMutation) ExportPath() (r string, exists bool) {
	v := m.export_path
	if v == nil {
		return
	}
	return *v, true
}

// OldExportPath returns the old "export_path" field's value of the Batch entity.
// If the Batch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchMutation) OldExportPath(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExportPath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExportPath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExportPath: %w", err)
	}
	return oldValue.ExportPath, nil
}

// ClearExportPath clears the value of the "export_path" field.
func (m *BatchMutation) ClearExportPath() {
	m.export_path = nil
	m.clearedFields[batch.FieldExportPath] = struct{}{}
}

// ExportPathCleared returns if the "export_path" field was cleared in this mutation.
func (m *BatchMutation) ExportPathCleared() bool {
	_, ok := m.clearedFields[batch.FieldExportPath]
	return ok
}

// ResetExportPath resets all changes to the "export_path" field.
func (m *BatchMutation) ResetExportPath() {
	m.export_path = nil
	delete(m.clearedFields, batch.FieldExportPath)
}

// SetErrorMessage sets the "error_message" field.
func (m *BatchMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *BatchMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the Batch entity.
// If the Batch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *BatchMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[batch.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *BatchMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[batch.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *BatchMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, batch.FieldErrorMessage)
}

// SetMetadata sets the "metadata" field.
func (m *BatchMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *BatchMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the Batch entity.
// If the Batch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *BatchMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[batch.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *BatchMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[batch.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *BatchMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, batch.FieldMetadata)
}

// SetCreatedAt sets the "created_at" field.
func (m *BatchMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *BatchMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Batch entity.
// If the Batch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *BatchMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetStartedAt sets the "started_at" field.
func (m *BatchMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *BatchMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the Batch entity.
// If the Batch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *BatchMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[batch.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *BatchMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[batch.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *BatchMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, batch.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *BatchMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *BatchMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the Batch entity.
// If the Batch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *BatchMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[batch.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *BatchMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[batch.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *BatchMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, batch.FieldCompletedAt)
}

// ClearStudy clears the "study" edge to the Study entity.
func (m *BatchMutation) ClearStudy() {
	m.clearedstudy = true
	m.clearedFields[batch.FieldStudyID] = struct{}{}
}

// StudyCleared reports if the "study" edge to the Study entity was cleared.
func (m *BatchMutation) StudyCleared() bool {
	return m.clearedstudy
}

// StudyIDs returns the "study" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// StudyID instead. It exists only for internal usage by the builders.
func (m *BatchMutation) StudyIDs() (ids []string) {
	if id := m.study; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetStudy resets all changes to the "study" edge.
func (m *BatchMutation) ResetStudy() {
	m.study = nil
	m.clearedstudy = false
}

// AddParticipantIDs adds the "participants" edge to the Participant entity by ids.
func (m *BatchMutation) AddParticipantIDs(ids ...string) {
	if m.participants == nil {
		m.participants = make(map[string]struct{})
	}
	for i := range ids {
		m.participants[ids[i]] = struct{}{}
	}
}

// ClearParticipants clears the "participants" edge to the Participant entity.
func (m *BatchMutation) ClearParticipants() {
	m.clearedparticipants = true
}

// ParticipantsCleared reports if the "participants" edge to the Participant entity was cleared.
func (m *BatchMutation) ParticipantsCleared() bool {
	return m.clearedparticipants
}

// RemoveParticipantIDs removes the "participants" edge to the Participant entity by IDs.
func (m *BatchMutation) RemoveParticipantIDs(ids ...string) {
	if m.removedparticipants == nil {
		m.removedparticipants = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.participants, ids[i])
		m.removedparticipants[ids[i]] = struct{}{}
	}
}

// RemovedParticipants returns the removed IDs of the "participants" edge to the Participant entity.
func (m *BatchMutation) RemovedParticipantsIDs() (ids []string) {
	for id := range m.removedparticipants {
		ids = append(ids, id)
	}
	return
}

// ParticipantsIDs returns the "participants" edge IDs in the mutation.
func (m *BatchMutation) ParticipantsIDs() (ids []string) {
	for id := range m.participants {
		ids = append(ids, id)
	}
	return
}

// ResetParticipants resets all changes to the "participants" edge.
func (m *BatchMutation) ResetParticipants() {
	m.participants = nil
	m.clearedparticipants = false
	m.removedparticipants = nil
}

// Where appends a list predicates to the BatchMutation builder.
func (m *BatchMutation) Where(ps ...predicate.Batch) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the BatchMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *BatchMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Batch, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *BatchMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *BatchMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Batch).
func (m *BatchMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *BatchMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.study != nil {
		fields = append(fields, batch.FieldStudyID)
	}
	if m.name != nil {
		fields = append(fields, batch.FieldName)
	}
	if m.status != nil {
		fields = append(fields, batch.FieldStatus)
	}
	if m.actors_created != nil {
		fields = append(fields, batch.FieldActorsCreated)
	}
	if m.actors_completed != nil {
		fields = append(fields, batch.FieldActorsCompleted)
	}
	if m.export_path != nil {
		fields = append(fields, batch.FieldExportPath)
	}
	if m.error_message != nil {
		fields = append(fields, batch.FieldErrorMessage)
	}
	if m.metadata != nil {
		fields = append(fields, batch.FieldMetadata)
	}
	if m.created_at != nil {
		fields = append(fields, batch.FieldCreatedAt)
	}
	if m.started_at != nil {
		fields = append(fields, batch.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, batch.FieldCompletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *BatchMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case batch.FieldStudyID:
		return m.StudyID()
	case batch.FieldName:
		return m.Name()
	case batch.FieldStatus:
		return m.Status()
	case batch.FieldActorsCreated:
		return m.ActorsCreated()
	case batch.FieldActorsCompleted:
		return m.ActorsCompleted()
	case batch.FieldExportPath:
		return m.ExportPath()
	case batch.FieldErrorMessage:
		return m.ErrorMessage()
	case batch.FieldMetadata:
		return m.Metadata()
	case batch.FieldCreatedAt:
		return m.CreatedAt()
	case batch.FieldStartedAt:
		return m.StartedAt()
	case batch.FieldCompletedAt:
		return m.CompletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *BatchMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case batch.FieldStudyID:
		return m.OldStudyID(ctx)
	case batch.FieldName:
		return m.OldName(ctx)
	case batch.FieldStatus:
		return m.OldStatus(ctx)
	case batch.FieldActorsCreated:
		return m.OldActorsCreated(ctx)
	case batch.FieldActorsCompleted:
		return m.OldActorsCompleted(ctx)
	case batch.FieldExportPath:
		return m.OldExportPath(ctx)
	case batch.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case batch.FieldMetadata:
		return m.OldMetadata(ctx)
	case batch.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case batch.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case batch.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Batch field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BatchMutation) SetField(name string, value ent.Value) error {
	switch name {
	case batch.FieldStudyID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStudyID(v)
		return nil
	case batch.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case batch.FieldStatus:
		v, ok := value.(batch.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case batch.FieldActorsCreated:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActorsCreated(v)
		return nil
	case batch.FieldActorsCompleted:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActorsCompleted(v)
		return nil
	case batch.FieldExportPath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExportPath(v)
		return nil
	case batch.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case batch.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	case batch.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case batch.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case batch.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Batch field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *BatchMutation) AddedFields() []string {
	var fields []string
	if m.addactors_created != nil {
		fields = append(fields, batch.FieldActorsCreated)
	}
	if m.addactors_completed != nil {
		fields = append(fields, batch.FieldActorsCompleted)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *BatchMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case batch.FieldActorsCreated:
		return m.AddedActorsCreated()
	case batch.FieldActorsCompleted:
		return m.AddedActorsCompleted()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BatchMutation) AddField(name string, value ent.Value) error {
	switch name {
	case batch.FieldActorsCreated:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddActorsCreated(v)
		return nil
	case batch.FieldActorsCompleted:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddActorsCompleted(v)
		return nil
	}
	return fmt.Errorf("unknown Batch numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *BatchMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(batch.FieldExportPath) {
		fields = append(fields, batch.FieldExportPath)
	}
	if m.FieldCleared(batch.FieldErrorMessage) {
		fields = append(fields, batch.FieldErrorMessage)
	}
	if m.FieldCleared(batch.FieldMetadata) {
		fields = append(fields, batch.FieldMetadata)
	}
	if m.FieldCleared(batch.FieldStartedAt) {
		fields = append(fields, batch.FieldStartedAt)
	}
	if m.FieldCleared(batch.FieldCompletedAt) {
		fields = append(fields, batch.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *BatchMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *BatchMutation) ClearField(name string) error {
	switch name {
	case batch.FieldExportPath:
		m.ClearExportPath()
		return nil
	case batch.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case batch.FieldMetadata:
		m.ClearMetadata()
		return nil
	case batch.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case batch.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown Batch nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *BatchMutation) ResetField(name string) error {
	switch name {
	case batch.FieldStudyID:
		m.ResetStudyID()
		return nil
	case batch.FieldName:
		m.ResetName()
		return nil
	case batch.FieldStatus:
		m.ResetStatus()
		return nil
	case batch.FieldActorsCreated:
		m.ResetActorsCreated()
		return nil
	case batch.FieldActorsCompleted:
		m.ResetActorsCompleted()
		return nil
	case batch.FieldExportPath:
		m.ResetExportPath()
		return nil
	case batch.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case batch.FieldMetadata:
		m.ResetMetadata()
		return nil
	case batch.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case batch.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case batch.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown Batch field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *BatchMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.study != nil {
		edges = append(edges, batch.EdgeStudy)
	}
	if m.participants != nil {
		edges = append(edges, batch.EdgeParticipants)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *BatchMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case batch.EdgeStudy:
		if id := m.study; id != nil {
			return []ent.Value{*id}
		}
	case batch.EdgeParticipants:
		ids := make([]ent.Value, 0, len(m.participants))
		for id := range m.participants {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *BatchMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedparticipants != nil {
		edges = append(edges, batch.EdgeParticipants)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *BatchMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case batch.EdgeParticipants:
		ids := make([]ent.Value, 0, len(m.removedparticipants))
		for id := range m.removedparticipants {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *BatchMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedstudy {
		edges = append(edges, batch.EdgeStudy)
	}
	if m.clearedparticipants {
		edges = append(edges, batch.EdgeParticipants)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *BatchMutation) EdgeCleared(name string) bool {
	switch name {
	case batch.EdgeStudy:
		return m.clearedstudy
	case batch.EdgeParticipants:
		return m.clearedparticipants
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *BatchMutation) ClearEdge(name string) error {
	switch name {
	case batch.EdgeStudy:
		m.ClearStudy()
		return nil
	}
	return fmt.Errorf("unknown Batch unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *BatchMutation) ResetEdge(name string) error {
	switch name {
	case batch.EdgeStudy:
		m.ResetStudy()
		return nil
	case batch.EdgeParticipants:
		m.ResetParticipants()
		return nil
	}
	return fmt.Errorf("unknown Batch edge %s", name)
}

// CommentMutation represents an operation that mutates the Comment nodes in the graph.
type CommentMutation struct {
	config
	op                    Op
	typ                   string
	id                    *string
	story_artifact_id     *string
	passage_id            *string
	content               *string
	_type                 *comment.Type
	round                 *int
	addround              *int
	phase                 *comment.Phase
	parent_id             *string
	resolved              *bool
	addressed_in_round    *int
	addaddressed_in_round *int
	created_at            *time.Time
	clearedFields         map[string]struct{}
	author                *string
	clearedauthor         bool
	target                *string
	clearedtarget         bool
	done                  bool
	oldValue              func(context.Context) (*Comment, error)
	predicates            []predicate.Comment
}

var _ ent.Mutation = (*CommentMutation)(nil)

// commentOption allows management of the mutation configuration using functional options.
type commentOption func(*CommentMutation)

// newCommentMutation creates new mutation for the Comment entity.
func newCommentMutation(c config, op Op, opts ...commentOption) *CommentMutation {
	m := &CommentMutation{
		config:        c,
		op:            op,
		typ:           TypeComment,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCommentID sets the ID field of the mutation.
func withCommentID(id string) commentOption {
	return func(m *CommentMutation) {
		var (
			err   error
			once  sync.Once
			value *Comment
		)
		m.oldValue = func(ctx context.Context) (*Comment, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Comment.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withComment sets the old Comment of the mutation.
func withComment(node *Comment) commentOption {
	return func(m *CommentMutation) {
		m.oldValue = func(context.Context) (*Comment, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CommentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CommentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Comment entities.
func (m *CommentMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CommentMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CommentMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Comment.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAuthorID sets the "author_id" field.
func (m *CommentMutation) SetAuthorID(s string) {
	m.author = &s
}

// AuthorID returns the value of the "author_id" field in the mutation.
func (m *CommentMutation) AuthorID() (r string, exists bool) {
	v := m.author
	if v == nil {
		return
	}
	return *v, true
}

// OldAuthorID returns the old "author_id" field's value of the Comment entity.
// If the Comment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommentMutation) OldAuthorID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAuthorID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAuthorID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAuthorID: %w", err)
	}
	return oldValue.AuthorID, nil
}

// ResetAuthorID resets all changes to the "author_id" field.
func (m *CommentMutation) ResetAuthorID() {
	m.author = nil
}

// SetTargetParticipantID sets the "target_participant_id" field.
func (m *CommentMutation) SetTargetParticipantID(s string) {
	m.target = &s
}

// TargetParticipantID returns the value of the "target_participant_id" field in the mutation.
func (m *CommentMutation) TargetParticipantID() (r string, exists bool) {
	v := m.target
	if v == nil {
		return
	}
	return *v, true
}

// OldTargetParticipantID returns the old "target_participant_id" field's value of the Comment entity.
// If the Comment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommentMutation) OldTargetParticipantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTargetParticipantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTargetParticipantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTargetParticipantID: %w", err)
	}
	return oldValue.TargetParticipantID, nil
}

// ResetTargetParticipantID resets all changes to the "target_participant_id" field.
func (m *CommentMutation) ResetTargetParticipantID() {
	m.target = nil
}

// SetStoryArtifactID sets the "story_artifact_id" field.
func (m *CommentMutation) SetStoryArtifactID(s string) {
	m.story_artifact_id = &s
}

// StoryArtifactID returns the value of the "story_artifact_id" field in the mutation.
func (m *CommentMutation) StoryArtifactID() (r string, exists bool) {
	v := m.story_artifact_id
	if v == nil {
		return
	}
	return *v, true
}

// OldStoryArtifactID returns the old "story_artifact_id" field's value of the Comment entity.
// If the Comment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommentMutation) OldStoryArtifactID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStoryArtifactID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStoryArtifactID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStoryArtifactID: %w", err)
	}
	return oldValue.StoryArtifactID, nil
}

// ClearStoryArtifactID clears the value of the "story_artifact_id" field.
func (m *CommentMutation) ClearStoryArtifactID() {
	m.story_artifact_id = nil
	m.clearedFields[comment.FieldStoryArtifactID] = struct{}{}
}

// StoryArtifactIDCleared returns if the "story_artifact_id" field was cleared in this mutation.
func (m *CommentMutation) StoryArtifactIDCleared() bool {
	_, ok := m.clearedFields[comment.FieldStoryArtifactID]
	return ok
}

// ResetStoryArtifactID resets all changes to the "story_artifact_id" field.
func (m *CommentMutation) ResetStoryArtifactID() {
	m.story_artifact_id = nil
	delete(m.clearedFields, comment.FieldStoryArtifactID)
}

// SetPassageID sets the "passage_id" field.
func (m *CommentMutation) SetPassageID(s string) {
	m.passage_id = &s
}

// PassageID returns the value of the "passage_id" field in the mutation.
func (m *CommentMutation) PassageID() (r string, exists bool) {
	v := m.passage_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPassageID returns the old "passage_id" field's value of the Comment entity.
// If the Comment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommentMutation) OldPassageID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPassageID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPassageID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPassageID: %w", err)
	}
	return oldValue.PassageID, nil
}

// ClearPassageID clears the value of the "passage_id" field.
func (m *CommentMutation) ClearPassageID() {
	m.passage_id = nil
	m.clearedFields[comment.FieldPassageID] = struct{}{}
}

// PassageIDCleared returns if the "passage_id" field was cleared in this mutation.
func (m *CommentMutation) PassageIDCleared() bool {
	_, ok := m.clearedFields[comment.FieldPassageID]
	return ok
}

// ResetPassageID resets all changes to the "passage_id" field.
func (m *CommentMutation) ResetPassageID() {
	m.passage_id = nil
	delete(m.clearedFields, comment.FieldPassageID)
}

// SetContent sets the "content" field.
func (m *CommentMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *CommentMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the Comment entity.
// If the Comment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommentMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *CommentMutation) ResetContent() {
	m.content = nil
}

// SetType sets the "type" field.
func (m *CommentMutation) SetType(c comment.Type) {
	m._type = &c
}

// GetType returns the value of the "type" field in the mutation.
func (m *CommentMutation) GetType() (r comment.Type, exists bool) {
	v := m._type
	if v == nil {
		return
	}
	return *v, true
}

// OldType returns the old "type" field's value of the Comment entity.
// If the Comment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommentMutation) OldType(ctx context.Context) (v comment.Type, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldType: %w", err)
	}
	return oldValue.Type, nil
}

// ResetType resets all changes to the "type" field.
func (m *CommentMutation) ResetType() {
	m._type = nil
}

// SetRound sets the "round" field.
func (m *CommentMutation) SetRound(i int) {
	m.round = &i
	m.addround = nil
}

// Round returns the value of the "round" field in the mutation.
func (m *CommentMutation) Round() (r int, exists bool) {
	v := m.round
	if v == nil {
		return
	}
	return *v, true
}

// OldRound returns the old "round" field's value of the Comment entity.
// If the Comment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommentMutation) OldRound(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRound is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRound requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRound: %w", err)
	}
	return oldValue.Round, nil
}

// AddRound adds i to the "round" field.
func (m *CommentMutation) AddRound(i int) {
	if m.addround != nil {
		*m.addround += i
	} else {
		m.addround = &i
	}
}

// AddedRound returns the value that was added to the "round" field in this mutation.
func (m *CommentMutation) AddedRound() (r int, exists bool) {
	v := m.addround
	if v == nil {
		return
	}
	return *v, true
}

// ResetRound resets all changes to the "round" field.
func (m *CommentMutation) ResetRound() {
	m.round = nil
	m.addround = nil
}

// SetPhase sets the "phase" field.
func (m *CommentMutation) SetPhase(c comment.Phase) {
	m.phase = &c
}

// Phase returns the value of the "phase" field in the mutation.
func (m *CommentMutation) Phase() (r comment.Phase, exists bool) {
	v := m.phase
	if v == nil {
		return
	}
	return *v, true
}

// OldPhase returns the old "phase" field's value of the Comment entity.
// If the Comment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommentMutation) OldPhase(ctx context.Context) (v comment.Phase, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhase is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhase requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhase: %w", err)
	}
	return oldValue.Phase, nil
}

// ResetPhase resets all changes to the "phase" field.
func (m *CommentMutation) ResetPhase() {
	m.phase = nil
}

// SetParentID sets the "parent_id" field.
func (m *CommentMutation) SetParentID(s string) {
	m.parent_id = &s
}

// ParentID returns the value of the "parent_id" field in the mutation.
func (m *CommentMutation) ParentID() (r string, exists bool) {
	v := m.parent_id
	if v == nil {
		return
	}
	return *v, true
}

// OldParentID returns the old "parent_id" field's value of the Comment entity.
// If the Comment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommentMutation) OldParentID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParentID: %w", err)
	}
	return oldValue.ParentID, nil
}

// ClearParentID clears the value of the "parent_id" field.
func (m *CommentMutation) ClearParentID() {
	m.parent_id = nil
	m.clearedFields[comment.FieldParentID] = struct{}{}
}

// ParentIDCleared returns if the "parent_id" field was cleared in this mutation.
func (m *CommentMutation) ParentIDCleared() bool {
	_, ok := m.clearedFields[comment.FieldParentID]
	return ok
}

// ResetParentID resets all changes to the "parent_id" field.
func (m *CommentMutation) ResetParentID() {
	m.parent_id = nil
	delete(m.clearedFields, comment.FieldParentID)
}

// SetResolved sets the "resolved" field.
func (m *CommentMutation) SetResolved(b bool) {
	m.resolved = &b
}

// Resolved returns the value of the "resolved" field in the mutation.
func (m *CommentMutation) Resolved() (r bool, exists bool) {
	v := m.resolved
	if v == nil {
		return
	}
	return *v, true
}

// OldResolved returns the old "resolved" field's value of the Comment entity.
// If the Comment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommentMutation) OldResolved(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResolved is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResolved requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResolved: %w", err)
	}
	return oldValue.Resolved, nil
}

// ResetResolved resets all changes to the "resolved" field.
func (m *CommentMutation) ResetResolved() {
	m.resolved = nil
}

// SetAddressedInRound sets the "addressed_in_round" field.
func (m *CommentMutation) SetAddressedInRound(i int) {
	m.addressed_in_round = &i
	m.addaddressed_in_round = nil
}

// AddressedInRound returns the value of the "addressed_in_round" field in the mutation.
func (m *CommentMutation) AddressedInRound() (r int, exists bool) {
	v := m.addressed_in_round
	if v == nil {
		return
	}
	return *v, true
}

// OldAddressedInRound returns the old "addressed_in_round" field's value of the Comment entity.
// If the Comment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommentMutation) OldAddressedInRound(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAddressedInRound is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAddressedInRound requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAddressedInRound: %w", err)
	}
	return oldValue.AddressedInRound, nil
}

// AddAddressedInRound adds i to the "addressed_in_round" field.
func (m *CommentMutation) AddAddressedInRound(i int) {
	if m.addaddressed_in_round != nil {
		*m.addaddressed_in_round += i
	} else {
		m.addaddressed_in_round = &i
	}
}

// AddedAddressedInRound returns the value that was added to the "addressed_in_round" field in this mutation.
func (m *CommentMutation) AddedAddressedInRound() (r int, exists bool) {
	v := m.addaddressed_in_round
	if v == nil {
		return
	}
	return *v, true
}

// ClearAddressedInRound clears the value of the "addressed_in_round" field.
func (m *CommentMutation) ClearAddressedInRound() {
	m.addressed_in_round = nil
	m.addaddressed_in_round = nil
	m.clearedFields[comment.FieldAddressedInRound] = struct{}{}
}

// AddressedInRoundCleared returns if the "addressed_in_round" field was cleared in this mutation.
func (m *CommentMutation) AddressedInRoundCleared() bool {
	_, ok := m.clearedFields[comment.FieldAddressedInRound]
	return ok
}

// ResetAddressedInRound resets all changes to the "addressed_in_round" field.
func (m *CommentMutation) ResetAddressedInRound() {
	m.addressed_in_round = nil
	m.addaddressed_in_round = nil
	delete(m.clearedFields, comment.FieldAddressedInRound)
}

// SetCreatedAt sets the "created_at" field.
func (m *CommentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CommentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Comment entity.
// If the Comment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CommentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearAuthor clears the "author" edge to the Participant entity.
func (m *CommentMutation) ClearAuthor() {
	m.clearedauthor = true
	m.clearedFields[comment.FieldAuthorID] = struct{}{}
}

// AuthorCleared reports if the "author" edge to the Participant entity was cleared.
func (m *CommentMutation) AuthorCleared() bool {
	return m.clearedauthor
}

// AuthorIDs returns the "author" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AuthorID instead. It exists only for internal usage by the builders.
func (m *CommentMutation) AuthorIDs() (ids []string) {
	if id := m.author; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAuthor resets all changes to the "author" edge.
func (m *CommentMutation) ResetAuthor() {
	m.author = nil
	m.clearedauthor = false
}

// SetTargetID sets the "target" edge to the Participant entity by id.
func (m *CommentMutation) SetTargetID(id string) {
	m.target = &id
}

// ClearTarget clears the "target" edge to the Participant entity.
func (m *CommentMutation) ClearTarget() {
	m.clearedtarget = true
	m.clearedFields[comment.FieldTargetParticipantID] = struct{}{}
}

// TargetCleared reports if the "target" edge to the Participant entity was cleared.
func (m *CommentMutation) TargetCleared() bool {
	return m.clearedtarget
}

// TargetID returns the "target" edge ID in the mutation.
func (m *CommentMutation) TargetID() (id string, exists bool) {
	if m.target != nil {
		return *m.target, true
	}
	return
}

// TargetIDs returns the "target" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TargetID instead. It exists only for internal usage by the builders.
func (m *CommentMutation) TargetIDs() (ids []string) {
	if id := m.target; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTarget resets all changes to the "target" edge.
func (m *CommentMutation) ResetTarget() {
	m.target = nil
	m.clearedtarget = false
}

// Where appends a list predicates to the CommentMutation builder.
func (m *CommentMutation) Where(ps ...predicate.Comment) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CommentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CommentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Comment, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CommentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CommentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Comment).
func (m *CommentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CommentMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.author != nil {
		fields = append(fields, comment.FieldAuthorID)
	}
	if m.target != nil {
		fields = append(fields, comment.FieldTargetParticipantID)
	}
	if m.story_artifact_id != nil {
		fields = append(fields, comment.FieldStoryArtifactID)
	}
	if m.passage_id != nil {
		fields = append(fields, comment.FieldPassageID)
	}
	if m.content != nil {
		fields = append(fields, comment.FieldContent)
	}
	if m._type != nil {
		fields = append(fields, comment.FieldType)
	}
	if m.round != nil {
		fields = append(fields, comment.FieldRound)
	}
	if m.phase != nil {
		fields = append(fields, comment.FieldPhase)
	}
	if m.parent_id != nil {
		fields = append(fields, comment.FieldParentID)
	}
	if m.resolved != nil {
		fields = append(fields, comment.FieldResolved)
	}
	if m.addressed_in_round != nil {
		fields = append(fields, comment.FieldAddressedInRound)
	}
	if m.created_at != nil {
		fields = append(fields, comment.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CommentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case comment.FieldAuthorID:
		return m.AuthorID()
	case comment.FieldTargetParticipantID:
		return m.TargetParticipantID()
	case comment.FieldStoryArtifactID:
		return m.StoryArtifactID()
	case comment.FieldPassageID:
		return m.PassageID()
	case comment.FieldContent:
		return m.Content()
	case comment.FieldType:
		return m.GetType()
	case comment.FieldRound:
		return m.Round()
	case comment.FieldPhase:
		return m.Phase()
	case comment.FieldParentID:
		return m.ParentID()
	case comment.FieldResolved:
		return m.Resolved()
	case comment.FieldAddressedInRound:
		return m.AddressedInRound()
	case comment.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CommentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case comment.FieldAuthorID:
		return m.OldAuthorID(ctx)
	case comment.FieldTargetParticipantID:
		return m.OldTargetParticipantID(ctx)
	case comment.FieldStoryArtifactID:
		return m.OldStoryArtifactID(ctx)
	case comment.FieldPassageID:
		return m.OldPassageID(ctx)
	case comment.FieldContent:
		return m.OldContent(ctx)
	case comment.FieldType:
		return m.OldType(ctx)
	case comment.FieldRound:
		return m.OldRound(ctx)
	case comment.FieldPhase:
		return m.OldPhase(ctx)
	case comment.FieldParentID:
		return m.OldParentID(ctx)
	case comment.FieldResolved:
		return m.OldResolved(ctx)
	case comment.FieldAddressedInRound:
		return m.OldAddressedInRound(ctx)
	case comment.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Comment field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CommentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case comment.FieldAuthorID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAuthorID(v)
		return nil
	case comment.FieldTargetParticipantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTargetParticipantID(v)
		return nil
	case comment.FieldStoryArtifactID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStoryArtifactID(v)
		return nil
	case comment.FieldPassageID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPassageID(v)
		return nil
	case comment.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case comment.FieldType:
		v, ok := value.(comment.Type)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetType(v)
		return nil
	case comment.FieldRound:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRound(v)
		return nil
	case comment.FieldPhase:
		v, ok := value.(comment.Phase)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhase(v)
		return nil
	case comment.FieldParentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParentID(v)
		return nil
	case comment.FieldResolved:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResolved(v)
		return nil
	case comment.FieldAddressedInRound:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAddressedInRound(v)
		return nil
	case comment.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Comment field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CommentMutation) AddedFields() []string {
	var fields []string
	if m.addround != nil {
		fields = append(fields, comment.FieldRound)
	}
	if m.addaddressed_in_round != nil {
		fields = append(fields, comment.FieldAddressedInRound)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CommentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case comment.FieldRound:
		return m.AddedRound()
	case comment.FieldAddressedInRound:
		return m.AddedAddressedInRound()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CommentMutation) AddField(name string, value ent.Value) error {
	switch name {
	case comment.FieldRound:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRound(v)
		return nil
	case comment.FieldAddressedInRound:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAddressedInRound(v)
		return nil
	}
	return fmt.Errorf("unknown Comment numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CommentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(comment.FieldStoryArtifactID) {
		fields = append(fields, comment.FieldStoryArtifactID)
	}
	if m.FieldCleared(comment.FieldPassageID) {
		fields = append(fields, comment.FieldPassageID)
	}
	if m.FieldCleared(comment.FieldParentID) {
		fields = append(fields, comment.FieldParentID)
	}
	if m.FieldCleared(comment.FieldAddressedInRound) {
		fields = append(fields, comment.FieldAddressedInRound)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CommentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CommentMutation) ClearField(name string) error {
	switch name {
	case comment.FieldStoryArtifactID:
		m.ClearStoryArtifactID()
		return nil
	case comment.FieldPassageID:
		m.ClearPassageID()
		return nil
	case comment.FieldParentID:
		m.ClearParentID()
		return nil
	case comment.FieldAddressedInRound:
		m.ClearAddressedInRound()
		return nil
	}
	return fmt.Errorf("unknown Comment nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CommentMutation) ResetField(name string) error {
	switch name {
	case comment.FieldAuthorID:
		m.ResetAuthorID()
		return nil
	case comment.FieldTargetParticipantID:
		m.ResetTargetParticipantID()
		return nil
	case comment.FieldStoryArtifactID:
		m.ResetStoryArtifactID()
		return nil
	case comment.FieldPassageID:
		m.ResetPassageID()
		return nil
	case comment.FieldContent:
		m.ResetContent()
		return nil
	case comment.FieldType:
		m.ResetType()
		return nil
	case comment.FieldRound:
		m.ResetRound()
		return nil
	case comment.FieldPhase:
		m.ResetPhase()
		return nil
	case comment.FieldParentID:
		m.ResetParentID()
		return nil
	case comment.FieldResolved:
		m.ResetResolved()
		return nil
	case comment.FieldAddressedInRound:
		m.ResetAddressedInRound()
		return nil
	case comment.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Comment field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CommentMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.author != nil {
		edges = append(edges, comment.EdgeAuthor)
	}
	if m.target != nil {
		edges = append(edges, comment.EdgeTarget)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CommentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case comment.EdgeAuthor:
		if id := m.author; id != nil {
			return []ent.Value{*id}
		}
	case comment.EdgeTarget:
		if id := m.target; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CommentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CommentMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CommentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedauthor {
		edges = append(edges, comment.EdgeAuthor)
	}
	if m.clearedtarget {
		edges = append(edges, comment.EdgeTarget)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CommentMutation) EdgeCleared(name string) bool {
	switch name {
	case comment.EdgeAuthor:
		return m.clearedauthor
	case comment.EdgeTarget:
		return m.clearedtarget
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CommentMutation) ClearEdge(name string) error {
	switch name {
	case comment.EdgeAuthor:
		m.ClearAuthor()
		return nil
	case comment.EdgeTarget:
		m.ClearTarget()
		return nil
	}
	return fmt.Errorf("unknown Comment unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CommentMutation) ResetEdge(name string) error {
	switch name {
	case comment.EdgeAuthor:
		m.ResetAuthor()
		return nil
	case comment.EdgeTarget:
		m.ResetTarget()
		return nil
	}
	return fmt.Errorf("unknown Comment edge %s", name)
}

// ConditionMutation represents an operation that mutates the Condition nodes in the graph.
type ConditionMutation struct {
	config
	op            Op
	typ           string
	id            *string
	name          *string
	parameters    *map[string]interface{}
	created_at    *time.Time
	clearedFields map[string]struct{}
	study         *string
	clearedstudy  bool
	done          bool
	oldValue      func(context.Context) (*Condition, error)
	predicates    []predicate.Condition
}

var _ ent.Mutation = (*ConditionMutation)(nil)

// conditionOption allows management of the mutation configuration using functional options.
type conditionOption func(*ConditionMutation)

// newConditionMutation creates new mutation for the Condition entity.
func newConditionMutation(c config, op Op, opts ...conditionOption) *ConditionMutation {
	m := &ConditionMutation{
		config:        c,
		op:            op,
		typ:           TypeCondition,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withConditionID sets the ID field of the mutation.
func withConditionID(id string) conditionOption {
	return func(m *ConditionMutation) {
		var (
			err   error
			once  sync.Once
			value *Condition
		)
		m.oldValue = func(ctx context.Context) (*Condition, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Condition.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCondition sets the old Condition of the mutation.
func withCondition(node *Condition) conditionOption {
	return func(m *ConditionMutation) {
		m.oldValue = func(context.Context) (*Condition, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ConditionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ConditionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Condition entities.
func (m *ConditionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ConditionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ConditionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Condition.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetStudyID sets the "study_id" field.
func (m *ConditionMutation) SetStudyID(s string) {
	m.study = &s
}

// StudyID returns the value of the "study_id" field in the mutation.
func (m *ConditionMutation) StudyID() (r string, exists bool) {
	v := m.study
	if v == nil {
		return
	}
	return *v, true
}

// OldStudyID returns the old "study_id" field's value of the Condition entity.
// If the Condition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConditionMutation) OldStudyID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStudyID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStudyID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStudyID: %w", err)
	}
	return oldValue.StudyID, nil
}

// ResetStudyID resets all changes to the "study_id" field.
func (m *ConditionMutation) ResetStudyID() {
	m.study = nil
}

// SetName sets the "name" field.
func (m *ConditionMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *ConditionMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Condition entity.
// If the Condition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConditionMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *ConditionMutation) ResetName() {
	m.name = nil
}

// SetParameters sets the "parameters" field.
func (m *ConditionMutation) SetParameters(value map[string]interface{}) {
	m.parameters = &value
}

// Parameters returns the value of the "parameters" field in the mutation.
func (m *ConditionMutation) Parameters() (r map[string]interface{}, exists bool) {
	v := m.parameters
	if v == nil {
		return
	}
	return *v, true
}

// OldParameters returns the old "parameters" field's value of the Condition entity.
// If the Condition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConditionMutation) OldParameters(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParameters is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParameters requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParameters: %w", err)
	}
	return oldValue.Parameters, nil
}

// ClearParameters clears the value of the "parameters" field.
func (m *ConditionMutation) ClearParameters() {
	m.parameters = nil
	m.clearedFields[condition.FieldParameters] = struct{}{}
}

// ParametersCleared returns if the "parameters" field was cleared in this mutation.
func (m *ConditionMutation) ParametersCleared() bool {
	_, ok := m.clearedFields[condition.FieldParameters]
	return ok
}

// ResetParameters resets all changes to the "parameters" field.
func (m *ConditionMutation) ResetParameters() {
	m.parameters = nil
	delete(m.clearedFields, condition.FieldParameters)
}

// SetCreatedAt sets the "created_at" field.
func (m *ConditionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ConditionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Condition entity.
// If the Condition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConditionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ConditionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearStudy clears the "study" edge to the Study entity.
func (m *ConditionMutation) ClearStudy() {
	m.clearedstudy = true
	m.clearedFields[condition.FieldStudyID] = struct{}{}
}

// StudyCleared reports if the "study" edge to the Study entity was cleared.
func (m *ConditionMutation) StudyCleared() bool {
	return m.clearedstudy
}

// StudyIDs returns the "study" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// StudyID instead. It exists only for internal usage by the builders.
func (m *ConditionMutation) StudyIDs() (ids []string) {
	if id := m.study; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetStudy resets all changes to the "study" edge.
func (m *ConditionMutation) ResetStudy() {
	m.study = nil
	m.clearedstudy = false
}

// Where appends a list predicates to the ConditionMutation builder.
func (m *ConditionMutation) Where(ps ...predicate.Condition) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ConditionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ConditionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Condition, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ConditionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ConditionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Condition).
func (m *ConditionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ConditionMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.study != nil {
		fields = append(fields, condition.FieldStudyID)
	}
	if m.name != nil {
		fields = append(fields, condition.FieldName)
	}
	if m.parameters != nil {
		fields = append(fields, condition.FieldParameters)
	}
	if m.created_at != nil {
		fields = append(fields, condition.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ConditionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case condition.FieldStudyID:
		return m.StudyID()
	case condition.FieldName:
		return m.Name()
	case condition.FieldParameters:
		return m.Parameters()
	case condition.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ConditionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case condition.FieldStudyID:
		return m.OldStudyID(ctx)
	case condition.FieldName:
		return m.OldName(ctx)
	case condition.FieldParameters:
		return m.OldParameters(ctx)
	case condition.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Condition field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ConditionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case condition.FieldStudyID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStudyID(v)
		return nil
	case condition.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case condition.FieldParameters:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParameters(v)
		return nil
	case condition.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Condition field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ConditionMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ConditionMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ConditionMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Condition numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ConditionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(condition.FieldParameters) {
		fields = append(fields, condition.FieldParameters)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ConditionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ConditionMutation) ClearField(name string) error {
	switch name {
	case condition.FieldParameters:
		m.ClearParameters()
		return nil
	}
	return fmt.Errorf("unknown Condition nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ConditionMutation) ResetField(name string) error {
	switch name {
	case condition.FieldStudyID:
		m.ResetStudyID()
		return nil
	case condition.FieldName:
		m.ResetName()
		return nil
	case condition.FieldParameters:
		m.ResetParameters()
		return nil
	case condition.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Condition field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ConditionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.study != nil {
		edges = append(edges, condition.EdgeStudy)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ConditionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case condition.EdgeStudy:
		if id := m.study; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ConditionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ConditionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ConditionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedstudy {
		edges = append(edges, condition.EdgeStudy)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ConditionMutation) EdgeCleared(name string) bool {
	switch name {
	case condition.EdgeStudy:
		return m.clearedstudy
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ConditionMutation) ClearEdge(name string) error {
	switch name {
	case condition.EdgeStudy:
		m.ClearStudy()
		return nil
	}
	return fmt.Errorf("unknown Condition unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ConditionMutation) ResetEdge(name string) error {
	switch name {
	case condition.EdgeStudy:
		m.ResetStudy()
		return nil
	}
	return fmt.Errorf("unknown Condition edge %s", name)
}

// EventMutation represents an operation that mutates the Event nodes in the graph.
type EventMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	_type              *string
	data               *map[string]interface{}
	timestamp          *time.Time
	clearedFields      map[string]struct{}
	participant        *string
	clearedparticipant bool
	done               bool
	oldValue           func(context.Context) (*Event, error)
	predicates         []predicate.Event
}

var _ ent.Mutation = (*EventMutation)(nil)

// eventOption allows management of the mutation configuration using functional options.
type eventOption func(*EventMutation)

// newEventMutation creates new mutation for the Event entity.
func newEventMutation(c config, op Op, opts ...eventOption) *EventMutation {
	m := &EventMutation{
		config:        c,
		op:            op,
		typ:           TypeEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEventID sets the ID field of the mutation.
func withEventID(id string) eventOption {
	return func(m *EventMutation) {
		var (
			err   error
			once  sync.Once
			value *Event
		)
		m.oldValue = func(ctx context.Context) (*Event, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Event.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEvent sets the old Event of the mutation.
func withEvent(node *Event) eventOption {
	return func(m *EventMutation) {
		m.oldValue = func(context.Context) (*Event, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Event entities.
func (m *EventMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EventMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EventMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Event.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetParticipantID sets the "participant_id" field.
func (m *EventMutation) SetParticipantID(s string) {
	m.participant = &s
}

// ParticipantID returns the value of the "participant_id" field in the mutation.
func (m *EventMutation) ParticipantID() (r string, exists bool) {
	v := m.participant
	if v == nil {
		return
	}
	return *v, true
}

// OldParticipantID returns the old "participant_id" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldParticipantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParticipantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParticipantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParticipantID: %w", err)
	}
	return oldValue.ParticipantID, nil
}

// ResetParticipantID resets all changes to the "participant_id" field.
func (m *EventMutation) ResetParticipantID() {
	m.participant = nil
}

// SetType sets the "type" field.
func (m *EventMutation) SetType(s string) {
	m._type = &s
}

// GetType returns the value of the "type" field in the mutation.
func (m *EventMutation) GetType() (r string, exists bool) {
	v := m._type
	if v == nil {
		return
	}
	return *v, true
}

// OldType returns the old "type" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldType: %w", err)
	}
	return oldValue.Type, nil
}

// ResetType resets all changes to the "type" field.
func (m *EventMutation) ResetType() {
	m._type = nil
}

// SetData sets the "data" field.
func (m *EventMutation) SetData(value map[string]interface{}) {
	m.data = &value
}

// Data returns the value of the "data" field in the mutation.
func (m *EventMutation) Data() (r map[string]interface{}, exists bool) {
	v := m.data
	if v == nil {
		return
	}
	return *v, true
}

// OldData returns the old "data" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldData(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldData: %w", err)
	}
	return oldValue.Data, nil
}

// ClearData clears the value of the "data" field.
func (m *EventMutation) ClearData() {
	m.data = nil
	m.clearedFields[event.FieldData] = struct{}{}
}

// DataCleared returns if the "data" field was cleared in this mutation.
func (m *EventMutation) DataCleared() bool {
	_, ok := m.clearedFields[event.FieldData]
	return ok
}

// ResetData resets all changes to the "data" field.
func (m *EventMutation) ResetData() {
	m.data = nil
	delete(m.clearedFields, event.FieldData)
}

// SetTimestamp sets the "timestamp" field.
func (m *EventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *EventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *EventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// ClearParticipant clears the "participant" edge to the Participant entity.
func (m *EventMutation) ClearParticipant() {
	m.clearedparticipant = true
	m.clearedFields[event.FieldParticipantID] = struct{}{}
}

// ParticipantCleared reports if the "participant" edge to the Participant entity was cleared.
func (m *EventMutation) ParticipantCleared() bool {
	return m.clearedparticipant
}

// ParticipantIDs returns the "participant" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ParticipantID instead. It exists only for internal usage by the builders.
func (m *EventMutation) ParticipantIDs() (ids []string) {
	if id := m.participant; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetParticipant resets all changes to the "participant" edge.
func (m *EventMutation) ResetParticipant() {
	m.participant = nil
	m.clearedparticipant = false
}

// Where appends a list predicates to the EventMutation builder.
func (m *EventMutation) Where(ps ...predicate.Event) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Event, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Event).
func (m *EventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EventMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.participant != nil {
		fields = append(fields, event.FieldParticipantID)
	}
	if m._type != nil {
		fields = append(fields, event.FieldType)
	}
	if m.data != nil {
		fields = append(fields, event.FieldData)
	}
	if m.timestamp != nil {
		fields = append(fields, event.FieldTimestamp)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case event.FieldParticipantID:
		return m.ParticipantID()
	case event.FieldType:
		return m.GetType()
	case event.FieldData:
		return m.Data()
	case event.FieldTimestamp:
		return m.Timestamp()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case event.FieldParticipantID:
		return m.OldParticipantID(ctx)
	case event.FieldType:
		return m.OldType(ctx)
	case event.FieldData:
		return m.OldData(ctx)
	case event.FieldTimestamp:
		return m.OldTimestamp(ctx)
	}
	return nil, fmt.Errorf("unknown Event field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case event.FieldParticipantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParticipantID(v)
		return nil
	case event.FieldType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetType(v)
		return nil
	case event.FieldData:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetData(v)
		return nil
	case event.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EventMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EventMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Event numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(event.FieldData) {
		fields = append(fields, event.FieldData)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EventMutation) ClearField(name string) error {
	switch name {
	case event.FieldData:
		m.ClearData()
		return nil
	}
	return fmt.Errorf("unknown Event nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EventMutation) ResetField(name string) error {
	switch name {
	case event.FieldParticipantID:
		m.ResetParticipantID()
		return nil
	case event.FieldType:
		m.ResetType()
		return nil
	case event.FieldData:
		m.ResetData()
		return nil
	case event.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EventMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.participant != nil {
		edges = append(edges, event.EdgeParticipant)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EventMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case event.EdgeParticipant:
		if id := m.participant; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedparticipant {
		edges = append(edges, event.EdgeParticipant)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EventMutation) EdgeCleared(name string) bool {
	switch name {
	case event.EdgeParticipant:
		return m.clearedparticipant
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EventMutation) ClearEdge(name string) error {
	switch name {
	case event.EdgeParticipant:
		m.ClearParticipant()
		return nil
	}
	return fmt.Errorf("unknown Event unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EventMutation) ResetEdge(name string) error {
	switch name {
	case event.EdgeParticipant:
		m.ResetParticipant()
		return nil
	}
	return fmt.Errorf("unknown Event edge %s", name)
}

// HybridSessionMutation represents an operation that mutates the HybridSession nodes in the graph.
type HybridSessionMutation struct {
	config
	op                Op
	typ               string
	id                *string
	study_id          *string
	participant_a     *string
	participant_b     *string
	actor_type_a      *hybridsession.ActorTypeA
	actor_type_b      *hybridsession.ActorTypeB
	_config           *map[string]interface{}
	completions       *[]models.PhaseCompletion
	appendcompletions []models.PhaseCompletion
	started_at        *time.Time
	completed_at      *time.Time
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*HybridSession, error)
	predicates        []predicate.HybridSession
}

var _ ent.Mutation = (*HybridSessionMutation)(nil)

// hybridsessionOption allows management of the mutation configuration using functional options.
type hybridsessionOption func(*HybridSessionMutation)

// newHybridSessionMutation creates new mutation for the HybridSession entity.
func newHybridSessionMutation(c config, op Op, opts ...hybridsessionOption) *HybridSessionMutation {
	m := &HybridSessionMutation{
		config:        c,
		op:            op,
		typ:           TypeHybridSession,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withHybridSessionID sets the ID field of the mutation.
func withHybridSessionID(id string) hybridsessionOption {
	return func(m *HybridSessionMutation) {
		var (
			err   error
			once  sync.Once
			value *HybridSession
		)
		m.oldValue = func(ctx context.Context) (*HybridSession, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().HybridSession.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withHybridSession sets the old HybridSession of the mutation.
func withHybridSession(node *HybridSession) hybridsessionOption {
	return func(m *HybridSessionMutation) {
		m.oldValue = func(context.Context) (*HybridSession, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m HybridSessionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m HybridSessionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of HybridSession entities.
func (m *HybridSessionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *HybridSessionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *HybridSessionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().HybridSession.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetStudyID sets the "study_id" field.
func (m *HybridSessionMutation) SetStudyID(s string) {
	m.study_id = &s
}

// StudyID returns the value of the "study_id" field in the mutation.
func (m *HybridSessionMutation) StudyID() (r string, exists bool) {
	v := m.study_id
	if v == nil {
		return
	}
	return *v, true
}

// OldStudyID returns the old "study_id" field's value of the HybridSession entity.
// If the HybridSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HybridSessionMutation) OldStudyID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStudyID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStudyID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStudyID: %w", err)
	}
	return oldValue.StudyID, nil
}

// ResetStudyID resets all changes to the "study_id" field.
func (m *HybridSessionMutation) ResetStudyID() {
	m.study_id = nil
}

// SetParticipantA sets the "participant_a" field.
func (m *HybridSessionMutation) SetParticipantA(s string) {
	m.participant_a = &s
}

// ParticipantA returns the value of the "participant_a" field in the mutation.
func (m *HybridSessionMutation) ParticipantA() (r string, exists bool) {
	v := m.participant_a
	if v == nil {
		return
	}
	return *v, true
}

// OldParticipantA returns the old "participant_a" field's value of the HybridSession entity.
// If the HybridSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HybridSessionMutation) OldParticipantA(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParticipantA is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParticipantA requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParticipantA: %w", err)
	}
	return oldValue.ParticipantA, nil
}

// ResetParticipantA resets all changes to the "participant_a" field.
func (m *HybridSessionMutation) ResetParticipantA() {
	m.participant_a = nil
}

// SetParticipantB sets the "participant_b" field.
func (m *HybridSessionMutation) SetParticipantB(s string) {
	m.participant_b = &s
}

// ParticipantB returns the value of the "participant_b" field in the mutation.
func (m *HybridSessionMutation) ParticipantB() (r string, exists bool) {
	v := m.participant_b
	if v == nil {
		return
	}
	return *v, true
}

// OldParticipantB returns the old "participant_b" field's value of the HybridSession entity.
// If the HybridSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HybridSessionMutation) OldParticipantB(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParticipantB is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParticipantB requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParticipantB: %w", err)
	}
	return oldValue.ParticipantB, nil
}

// ResetParticipantB resets all changes to the "participant_b" field.
func (m *HybridSessionMutation) ResetParticipantB() {
	m.participant_b = nil
}

// SetActorTypeA sets the "actor_type_a" field.
func (m *HybridSessionMutation) SetActorTypeA(ht hybridsession.ActorTypeA) {
	m.actor_type_a = &ht
}

// ActorTypeA returns the value of the "actor_type_a" field in the mutation.
func (m *HybridSessionMutation) ActorTypeA() (r hybridsession.ActorTypeA, exists bool) {
	v := m.actor_type_a
	if v == nil {
		return
	}
	return *v, true
}

// OldActorTypeA returns the old "actor_type_a" field's value of the HybridSession entity.
// If the HybridSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HybridSessionMutation) OldActorTypeA(ctx context.Context) (v hybridsession.ActorTypeA, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActorTypeA is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActorTypeA requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActorTypeA: %w", err)
	}
	return oldValue.ActorTypeA, nil
}

// ResetActorTypeA resets all changes to the "actor_type_a" field.
func (m *HybridSessionMutation) ResetActorTypeA() {
	m.actor_type_a = nil
}

// SetActorTypeB sets the "actor_type_b" field.
func (m *HybridSessionMutation) SetActorTypeB(ht hybridsession.ActorTypeB) {
	m.actor_type_b = &ht
}

// ActorTypeB returns the value of the "actor_type_b" field in the mutation.
func (m *HybridSessionMutation) ActorTypeB() (r hybridsession.ActorTypeB, exists bool) {
	v := m.actor_type_b
	if v == nil {
		return
	}
	return *v, true
}

// OldActorTypeB returns the old "actor_type_b" field's value of the HybridSession entity.
// If the HybridSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HybridSessionMutation) OldActorTypeB(ctx context.Context) (v hybridsession.ActorTypeB, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActorTypeB is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActorTypeB requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActorTypeB: %w", err)
	}
	return oldValue.ActorTypeB, nil
}

// ResetActorTypeB resets all changes to the "actor_type_b" field.
func (m *HybridSessionMutation) ResetActorTypeB() {
	m.actor_type_b = nil
}

// SetConfig sets the "config" field.
func (m *HybridSessionMutation) SetConfig(value map[string]interface{}) {
	m._config = &value
}

// Config returns the value of the "config" field in the mutation.
func (m *HybridSessionMutation) Config() (r map[string]interface{}, exists bool) {
	v := m._config
	if v == nil {
		return
	}
	return *v, true
}

// OldConfig returns the old "config" field's value of the HybridSession entity.
// If the HybridSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HybridSessionMutation) OldConfig(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfig is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfig requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfig: %w", err)
	}
	return oldValue.Config, nil
}

// ClearConfig clears the value of the "config" field.
func (m *HybridSessionMutation) ClearConfig() {
	m._config = nil
	m.clearedFields[hybridsession.FieldConfig] = struct{}{}
}

// ConfigCleared returns if the "config" field was cleared in this mutation.
func (m *HybridSessionMutation) ConfigCleared() bool {
	_, ok := m.clearedFields[hybridsession.FieldConfig]
	return ok
}

// ResetConfig resets all changes to the "config" field.
func (m *HybridSessionMutation) ResetConfig() {
	m._config = nil
	delete(m.clearedFields, hybridsession.FieldConfig)
}

// SetCompletions sets the "completions" field.
func (m *HybridSessionMutation) SetCompletions(mc []models.PhaseCompletion) {
	m.completions = &mc
	m.appendcompletions = nil
}

// Completions returns the value of the "completions" field in the mutation.
func (m *HybridSessionMutation) Completions() (r []models.PhaseCompletion, exists bool) {
	v := m.completions
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletions returns the old "completions" field's value of the HybridSession entity.
// If the HybridSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HybridSessionMutation) OldCompletions(ctx context.Context) (v []models.PhaseCompletion, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletions: %w", err)
	}
	return oldValue.Completions, nil
}

// AppendCompletions adds mc to the "completions" field.
func (m *HybridSessionMutation) AppendCompletions(mc []models.PhaseCompletion) {
	m.appendcompletions = append(m.appendcompletions, mc...)
}

// AppendedCompletions returns the list of values that were appended to the "completions" field in this mutation.
func (m *HybridSessionMutation) AppendedCompletions() ([]models.PhaseCompletion, bool) {
	if len(m.appendcompletions) == 0 {
		return nil, false
	}
	return m.appendcompletions, true
}

// ResetCompletions resets all changes to the "completions" field.
func (m *HybridSessionMutation) ResetCompletions() {
	m.completions = nil
	m.appendcompletions = nil
}

// SetStartedAt sets the "started_at" field.
func (m *HybridSessionMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *HybridSessionMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the HybridSession entity.
// If the HybridSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HybridSessionMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *HybridSessionMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *HybridSessionMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *HybridSessionMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the HybridSession entity.
// If the HybridSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HybridSessionMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *HybridSessionMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[hybridsession.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *HybridSessionMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[hybridsession.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *HybridSessionMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, hybridsession.FieldCompletedAt)
}

// Where appends a list predicates to the HybridSessionMutation builder.
func (m *HybridSessionMutation) Where(ps ...predicate.HybridSession) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the HybridSessionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *HybridSessionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.HybridSession, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *HybridSessionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *HybridSessionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (HybridSession).
func (m *HybridSessionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *HybridSessionMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.study_id != nil {
		fields = append(fields, hybridsession.FieldStudyID)
	}
	if m.participant_a != nil {
		fields = append(fields, hybridsession.FieldParticipantA)
	}
	if m.participant_b != nil {
		fields = append(fields, hybridsession.FieldParticipantB)
	}
	if m.actor_type_a != nil {
		fields = append(fields, hybridsession.FieldActorTypeA)
	}
	if m.actor_type_b != nil {
		fields = append(fields, hybridsession.FieldActorTypeB)
	}
	if m._config != nil {
		fields = append(fields, hybridsession.FieldConfig)
	}
	if m.completions != nil {
		fields = append(fields, hybridsession.FieldCompletions)
	}
	if m.started_at != nil {
		fields = append(fields, hybridsession.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, hybridsession.FieldCompletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *HybridSessionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case hybridsession.FieldStudyID:
		return m.StudyID()
	case hybridsession.FieldParticipantA:
		return m.ParticipantA()
	case hybridsession.FieldParticipantB:
		return m.ParticipantB()
	case hybridsession.FieldActorTypeA:
		return m.ActorTypeA()
	case hybridsession.FieldActorTypeB:
		return m.ActorTypeB()
	case hybridsession.FieldConfig:
		return m.Config()
	case hybridsession.FieldCompletions:
		return m.Completions()
	case hybridsession.FieldStartedAt:
		return m.StartedAt()
	case hybridsession.FieldCompletedAt:
		return m.CompletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *HybridSessionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case hybridsession.FieldStudyID:
		return m.OldStudyID(ctx)
	case hybridsession.FieldParticipantA:
		return m.OldParticipantA(ctx)
	case hybridsession.FieldParticipantB:
		return m.OldParticipantB(ctx)
	case hybridsession.FieldActorTypeA:
		return m.OldActorTypeA(ctx)
	case hybridsession.FieldActorTypeB:
		return m.OldActorTypeB(ctx)
	case hybridsession.FieldConfig:
		return m.OldConfig(ctx)
	case hybridsession.FieldCompletions:
		return m.OldCompletions(ctx)
	case hybridsession.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case hybridsession.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown HybridSession field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *HybridSessionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case hybridsession.FieldStudyID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStudyID(v)
		return nil
	case hybridsession.FieldParticipantA:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParticipantA(v)
		return nil
	case hybridsession.FieldParticipantB:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParticipantB(v)
		return nil
	case hybridsession.FieldActorTypeA:
		v, ok := value.(hybridsession.ActorTypeA)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActorTypeA(v)
		return nil
	case hybridsession.FieldActorTypeB:
		v, ok := value.(hybridsession.ActorTypeB)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActorTypeB(v)
		return nil
	case hybridsession.FieldConfig:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfig(v)
		return nil
	case hybridsession.FieldCompletions:
		v, ok := value.([]models.PhaseCompletion)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletions(v)
		return nil
	case hybridsession.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case hybridsession.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown HybridSession field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *HybridSessionMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *HybridSessionMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *HybridSessionMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown HybridSession numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *HybridSessionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(hybridsession.FieldConfig) {
		fields = append(fields, hybridsession.FieldConfig)
	}
	if m.FieldCleared(hybridsession.FieldCompletedAt) {
		fields = append(fields, hybridsession.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *HybridSessionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *HybridSessionMutation) ClearField(name string) error {
	switch name {
	case hybridsession.FieldConfig:
		m.ClearConfig()
		return nil
	case hybridsession.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown HybridSession nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *HybridSessionMutation) ResetField(name string) error {
	switch name {
	case hybridsession.FieldStudyID:
		m.ResetStudyID()
		return nil
	case hybridsession.FieldParticipantA:
		m.ResetParticipantA()
		return nil
	case hybridsession.FieldParticipantB:
		m.ResetParticipantB()
		return nil
	case hybridsession.FieldActorTypeA:
		m.ResetActorTypeA()
		return nil
	case hybridsession.FieldActorTypeB:
		m.ResetActorTypeB()
		return nil
	case hybridsession.FieldConfig:
		m.ResetConfig()
		return nil
	case hybridsession.FieldCompletions:
		m.ResetCompletions()
		return nil
	case hybridsession.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case hybridsession.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown HybridSession field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *HybridSessionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *HybridSessionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *HybridSessionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *HybridSessionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *HybridSessionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *HybridSessionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *HybridSessionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown HybridSession unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *HybridSessionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown HybridSession edge %s", name)
}

// JobMutation represents an operation that mutates the Job nodes in the graph.
type JobMutation struct {
	config
	op                    Op
	typ                   string
	id                    *string
	queue                 *string
	payload               *map[string]interface{}
	priority              *int
	addpriority           *int
	status                *job.Status
	attempts_remaining    *int
	addattempts_remaining *int
	max_attempts          *int
	addmax_attempts       *int
	next_run_at           *time.Time
	progress              *int
	addprogress           *int
	result                *map[string]interface{}
	error_message         *string
	pod_id                *string
	last_heartbeat_at     *time.Time
	retain_until          *time.Time
	created_at            *time.Time
	started_at            *time.Time
	completed_at          *time.Time
	clearedFields         map[string]struct{}
	done                  bool
	oldValue              func(context.Context) (*Job, error)
	predicates            []predicate.Job
}

var _ ent.Mutation = (*JobMutation)(nil)

// jobOption allows management of the mutation configuration using functional options.
type jobOption func(*JobMutation)

// newJobMutation creates new mutation for the Job entity.
func newJobMutation(c config, op Op, opts ...jobOption) *JobMutation {
	m := &JobMutation{
		config:        c,
		op:            op,
		typ:           TypeJob,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withJobID sets the ID field of the mutation.
func withJobID(id string) jobOption {
	return func(m *JobMutation) {
		var (
			err   error
			once  sync.Once
			value *Job
		)
		m.oldValue = func(ctx context.Context) (*Job, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Job.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withJob sets the old Job of the mutation.
func withJob(node *Job) jobOption {
	return func(m *JobMutation) {
		m.oldValue = func(context.Context) (*Job, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m JobMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m JobMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Job entities.
func (m *JobMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *JobMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *JobMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Job.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetQueue sets the "queue" field.
func (m *JobMutation) SetQueue(s string) {
	m.queue = &s
}

// Queue returns the value of the "queue" field in the mutation.
func (m *JobMutation) Queue() (r string, exists bool) {
	v := m.queue
	if v == nil {
		return
	}
	return *v, true
}

// OldQueue returns the old "queue" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldQueue(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQueue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQueue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQueue: %w", err)
	}
	return oldValue.Queue, nil
}

// ResetQueue resets all changes to the "queue" field.
func (m *JobMutation) ResetQueue() {
	m.queue = nil
}

// SetPayload sets the "payload" field.
func (m *JobMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *JobMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ResetPayload resets all changes to the "payload" field.
func (m *JobMutation) ResetPayload() {
	m.payload = nil
}

// SetPriority sets the "priority" field.
func (m *JobMutation) SetPriority(i int) {
	m.priority = &i
	m.addpriority = nil
}

// Priority returns the value of the "priority" field in the mutation.
func (m *JobMutation) Priority() (r int, exists bool) {
	v := m.priority
	if v == nil {
		return
	}
	return *v, true
}

// OldPriority returns the old "priority" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldPriority(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriority is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriority requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriority: %w", err)
	}
	return oldValue.Priority, nil
}

// AddPriority adds i to the "priority" field.
func (m *JobMutation) AddPriority(i int) {
	if m.addpriority != nil {
		*m.addpriority += i
	} else {
		m.addpriority = &i
	}
}

// AddedPriority returns the value that was added to the "priority" field in this mutation.
func (m *JobMutation) AddedPriority() (r int, exists bool) {
	v := m.addpriority
	if v == nil {
		return
	}
	return *v, true
}

// ResetPriority resets all changes to the "priority" field.
func (m *JobMutation) ResetPriority() {
	m.priority = nil
	m.addpriority = nil
}

// SetStatus sets the "status" field.
func (m *JobMutation) SetStatus(j job.Status) {
	m.status = &j
}

// Status returns the value of the "status" field in the mutation.
func (m *JobMutation) Status() (r job.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldStatus(ctx context.Context) (v job.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *JobMutation) ResetStatus() {
	m.status = nil
}

// SetAttemptsRemaining sets the "attempts_remaining" field.
func (m *JobMutation) SetAttemptsRemaining(i int) {
	m.attempts_remaining = &i
	m.addattempts_remaining = nil
}

// AttemptsRemaining returns the value of the "attempts_remaining" field in the mutation.
func (m *JobMutation) AttemptsRemaining() (r int, exists bool) {
	v := m.attempts_remaining
	if v == nil {
		return
	}
	return *v, true
}

// OldAttemptsRemaining returns the old "attempts_remaining" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldAttemptsRemaining(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttemptsRemaining is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttemptsRemaining requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttemptsRemaining: %w", err)
	}
	return oldValue.AttemptsRemaining, nil
}

// AddAttemptsRemaining adds i to the "attempts_remaining" field.
func (m *JobMutation) AddAttemptsRemaining(i int) {
	if m.addattempts_remaining != nil {
		*m.addattempts_remaining += i
	} else {
		m.addattempts_remaining = &i
	}
}

// AddedAttemptsRemaining returns the value that was added to the "attempts_remaining" field in this mutation.
func (m *JobMutation) AddedAttemptsRemaining() (r int, exists bool) {
	v := m.addattempts_remaining
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttemptsRemaining resets all changes to the "attempts_remaining" field.
func (m *JobMutation) ResetAttemptsRemaining() {
	m.attempts_remaining = nil
	m.addattempts_remaining = nil
}

// SetMaxAttempts sets the "max_attempts" field.
func (m *JobMutation) SetMaxAttempts(i int) {
	m.max_attempts = &i
	m.addmax_attempts = nil
}

// MaxAttempts returns the value of the "max_attempts" field in the mutation.
func (m *JobMutation) MaxAttempts() (r int, exists bool) {
	v := m.max_attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxAttempts returns the old "max_attempts" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldMaxAttempts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxAttempts: %w", err)
	}
	return oldValue.MaxAttempts, nil
}

// AddMaxAttempts adds i to the "max_attempts" field.
func (m *JobMutation) AddMaxAttempts(i int) {
	if m.addmax_attempts != nil {
		*m.addmax_attempts += i
	} else {
		m.addmax_attempts = &i
	}
}

// AddedMaxAttempts returns the value that was added to the "max_attempts" field in this mutation.
func (m *JobMutation) AddedMaxAttempts() (r int, exists bool) {
	v := m.addmax_attempts
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxAttempts resets all changes to the "max_attempts" field.
func (m *JobMutation) ResetMaxAttempts() {
	m.max_attempts = nil
	m.addmax_attempts = nil
}

// SetNextRunAt sets the "next_run_at" field.
func (m *JobMutation) SetNextRunAt(t time.Time) {
	m.next_run_at = &t
}

// NextRunAt returns the value of the "next_run_at" field in the mutation.
func (m *JobMutation) NextRunAt() (r time.Time, exists bool) {
	v := m.next_run_at
	if v == nil {
		return
	}
	return *v, true
}

// OldNextRunAt returns the old "next_run_at" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldNextRunAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNextRunAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNextRunAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNextRunAt: %w", err)
	}
	return oldValue.NextRunAt, nil
}

// ResetNextRunAt resets all changes to the "next_run_at" field.
func (m *JobMutation) ResetNextRunAt() {
	m.next_run_at = nil
}

// SetProgress sets the "progress" field.
func (m *JobMutation) SetProgress(i int) {
	m.progress = &i
	m.addprogress = nil
}

// Progress returns the value of the "progress" field in the mutation.
func (m *JobMutation) Progress() (r int, exists bool) {
	v := m.progress
	if v == nil {
		return
	}
	return *v, true
}

// OldProgress returns the old "progress" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldProgress(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProgress is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProgress requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProgress: %w", err)
	}
	return oldValue.Progress, nil
}

// AddProgress adds i to the "progress" field.
func (m *JobMutation) AddProgress(i int) {
	if m.addprogress != nil {
		*m.addprogress += i
	} else {
		m.addprogress = &i
	}
}

// AddedProgress returns the value that was added to the "progress" field in this mutation.
func (m *JobMutation) AddedProgress() (r int, exists bool) {
	v := m.addprogress
	if v == nil {
		return
	}
	return *v, true
}

// ResetProgress resets all changes to the "progress" field.
func (m *JobMutation) ResetProgress() {
	m.progress = nil
	m.addprogress = nil
}

// SetResult sets the "result" field.
func (m *JobMutation) SetResult(value map[string]interface{}) {
	m.result = &value
}

// Result returns the value of the "result" field in the mutation.
func (m *JobMutation) Result() (r map[string]interface{}, exists bool) {
	v := m.result
	if v == nil {
		return
	}
	return *v, true
}

// OldResult returns the old "result" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldResult(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResult is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResult requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResult: %w", err)
	}
	return oldValue.Result, nil
}

// ClearResult clears the value of the "result" field.
func (m *JobMutation) ClearResult() {
	m.result = nil
	m.clearedFields[job.FieldResult] = struct{}{}
}

// ResultCleared returns if the "result" field was cleared in this mutation.
func (m *JobMutation) ResultCleared() bool {
	_, ok := m.clearedFields[job.FieldResult]
	return ok
}

// ResetResult resets all changes to the "result" field.
func (m *JobMutation) ResetResult() {
	m.result = nil
	delete(m.clearedFields, job.FieldResult)
}

// SetErrorMessage sets the "error_message" field.
func (m *JobMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *JobMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *JobMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[job.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *JobMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[job.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *JobMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, job.FieldErrorMessage)
}

// SetPodID sets the "pod_id" field.
func (m *JobMutation) SetPodID(s string) {
	m.pod_id = &s
}

// PodID returns the value of the "pod_id" field in the mutation.
func (m *JobMutation) PodID() (r string, exists bool) {
	v := m.pod_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPodID returns the old "pod_id" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldPodID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPodID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPodID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPodID: %w", err)
	}
	return oldValue.PodID, nil
}

// ClearPodID clears the value of the "pod_id" field.
func (m *JobMutation) ClearPodID() {
	m.pod_id = nil
	m.clearedFields[job.FieldPodID] = struct{}{}
}

// PodIDCleared returns if the "pod_id" field was cleared in this mutation.
func (m *JobMutation) PodIDCleared() bool {
	_, ok := m.clearedFields[job.FieldPodID]
	return ok
}

// ResetPodID resets all changes to the "pod_id" field.
func (m *JobMutation) ResetPodID() {
	m.pod_id = nil
	delete(m.clearedFields, job.FieldPodID)
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (m *JobMutation) SetLastHeartbeatAt(t time.Time) {
	m.last_heartbeat_at = &t
}

// LastHeartbeatAt returns the value of the "last_heartbeat_at" field in the mutation.
func (m *JobMutation) LastHeartbeatAt() (r time.Time, exists bool) {
	v := m.last_heartbeat_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastHeartbeatAt returns the old "last_heartbeat_at" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldLastHeartbeatAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastHeartbeatAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastHeartbeatAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastHeartbeatAt: %w", err)
	}
	return oldValue.LastHeartbeatAt, nil
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (m *JobMutation) ClearLastHeartbeatAt() {
	m.last_heartbeat_at = nil
	m.clearedFields[job.FieldLastHeartbeatAt] = struct{}{}
}

// LastHeartbeatAtCleared returns if the "last_heartbeat_at" field was cleared in this mutation.
func (m *JobMutation) LastHeartbeatAtCleared() bool {
	_, ok := m.clearedFields[job.FieldLastHeartbeatAt]
	return ok
}

// ResetLastHeartbeatAt resets all changes to the "last_heartbeat_at" field.
func (m *JobMutation) ResetLastHeartbeatAt() {
	m.last_heartbeat_at = nil
	delete(m.clearedFields, job.FieldLastHeartbeatAt)
}

// SetRetainUntil sets the "retain_until" field.
func (m *JobMutation) SetRetainUntil(t time.Time) {
	m.retain_until = &t
}

// RetainUntil returns the value of the "retain_until" field in the mutation.
func (m *JobMutation) RetainUntil() (r time.Time, exists bool) {
	v := m.retain_until
	if v == nil {
		return
	}
	return *v, true
}

// OldRetainUntil returns the old "retain_until" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldRetainUntil(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRetainUntil is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRetainUntil requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRetainUntil: %w", err)
	}
	return oldValue.RetainUntil, nil
}

// ClearRetainUntil clears the value of the "retain_until" field.
func (m *JobMutation) ClearRetainUntil() {
	m.retain_until = nil
	m.clearedFields[job.FieldRetainUntil] = struct{}{}
}

// RetainUntilCleared returns if the "retain_until" field was cleared in this mutation.
func (m *JobMutation) RetainUntilCleared() bool {
	_, ok := m.clearedFields[job.FieldRetainUntil]
	return ok
}

// ResetRetainUntil resets all changes to the "retain_until" field.
func (m *JobMutation) ResetRetainUntil() {
	m.retain_until = nil
	delete(m.clearedFields, job.FieldRetainUntil)
}

// SetCreatedAt sets the "created_at" field.
func (m *JobMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *JobMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *JobMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetStartedAt sets the "started_at" field.
func (m *JobMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *JobMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *JobMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[job.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *JobMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[job.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *JobMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, job.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *JobMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *JobMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *JobMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[job.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *JobMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[job.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *JobMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, job.FieldCompletedAt)
}

// Where appends a list predicates to the JobMutation builder.
func (m *JobMutation) Where(ps ...predicate.Job) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the JobMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *JobMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Job, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *JobMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *JobMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Job).
func (m *JobMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *JobMutation) Fields() []string {
	fields := make([]string, 0, 16)
	if m.queue != nil {
		fields = append(fields, job.FieldQueue)
	}
	if m.payload != nil {
		fields = append(fields, job.FieldPayload)
	}
	if m.priority != nil {
		fields = append(fields, job.FieldPriority)
	}
	if m.status != nil {
		fields = append(fields, job.FieldStatus)
	}
	if m.attempts_remaining != nil {
		fields = append(fields, job.FieldAttemptsRemaining)
	}
	if m.max_attempts != nil {
		fields = append(fields, job.FieldMaxAttempts)
	}
	if m.next_run_at != nil {
		fields = append(fields, job.FieldNextRunAt)
	}
	if m.progress != nil {
		fields = append(fields, job.FieldProgress)
	}
	if m.result != nil {
		fields = append(fields, job.FieldResult)
	}
	if m.error_message != nil {
		fields = append(fields, job.FieldErrorMessage)
	}
	if m.pod_id != nil {
		fields = append(fields, job.FieldPodID)
	}
	if m.last_heartbeat_at != nil {
		fields = append(fields, job.FieldLastHeartbeatAt)
	}
	if m.retain_until != nil {
		fields = append(fields, job.FieldRetainUntil)
	}
	if m.created_at != nil {
		fields = append(fields, job.FieldCreatedAt)
	}
	if m.started_at != nil {
		fields = append(fields, job.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, job.FieldCompletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *JobMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case job.FieldQueue:
		return m.Queue()
	case job.FieldPayload:
		return m.Payload()
	case job.FieldPriority:
		return m.Priority()
	case job.FieldStatus:
		return m.Status()
	case job.FieldAttemptsRemaining:
		return m.AttemptsRemaining()
	case job.FieldMaxAttempts:
		return m.MaxAttempts()
	case job.FieldNextRunAt:
		return m.NextRunAt()
	case job.FieldProgress:
		return m.Progress()
	case job.FieldResult:
		return m.Result()
	case job.FieldErrorMessage:
		return m.ErrorMessage()
	case job.FieldPodID:
		return m.PodID()
	case job.FieldLastHeartbeatAt:
		return m.LastHeartbeatAt()
	case job.FieldRetainUntil:
		return m.RetainUntil()
	case job.FieldCreatedAt:
		return m.CreatedAt()
	case job.FieldStartedAt:
		return m.StartedAt()
	case job.FieldCompletedAt:
		return m.CompletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *JobMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case job.FieldQueue:
		return m.OldQueue(ctx)
	case job.FieldPayload:
		return m.OldPayload(ctx)
	case job.FieldPriority:
		return m.OldPriority(ctx)
	case job.FieldStatus:
		return m.OldStatus(ctx)
	case job.FieldAttemptsRemaining:
		return m.OldAttemptsRemaining(ctx)
	case job.FieldMaxAttempts:
		return m.OldMaxAttempts(ctx)
	case job.FieldNextRunAt:
		return m.OldNextRunAt(ctx)
	case job.FieldProgress:
		return m.OldProgress(ctx)
	case job.FieldResult:
		return m.OldResult(ctx)
	case job.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case job.FieldPodID:
		return m.OldPodID(ctx)
	case job.FieldLastHeartbeatAt:
		return m.OldLastHeartbeatAt(ctx)
	case job.FieldRetainUntil:
		return m.OldRetainUntil(ctx)
	case job.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case job.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case job.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Job field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *JobMutation) SetField(name string, value ent.Value) error {
	switch name {
	case job.FieldQueue:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQueue(v)
		return nil
	case job.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case job.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriority(v)
		return nil
	case job.FieldStatus:
		v, ok := value.(job.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case job.FieldAttemptsRemaining:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttemptsRemaining(v)
		return nil
	case job.FieldMaxAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxAttempts(v)
		return nil
	case job.FieldNextRunAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNextRunAt(v)
		return nil
	case job.FieldProgress:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProgress(v)
		return nil
	case job.FieldResult:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResult(v)
		return nil
	case job.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case job.FieldPodID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPodID(v)
		return nil
	case job.FieldLastHeartbeatAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastHeartbeatAt(v)
		return nil
	case job.FieldRetainUntil:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRetainUntil(v)
		return nil
	case job.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case job.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case job.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Job field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *JobMutation) AddedFields() []string {
	var fields []string
	if m.addpriority != nil {
		fields = append(fields, job.FieldPriority)
	}
	if m.addattempts_remaining != nil {
		fields = append(fields, job.FieldAttemptsRemaining)
	}
	if m.addmax_attempts != nil {
		fields = append(fields, job.FieldMaxAttempts)
	}
	if m.addprogress != nil {
		fields = append(fields, job.FieldProgress)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *JobMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case job.FieldPriority:
		return m.AddedPriority()
	case job.FieldAttemptsRemaining:
		return m.AddedAttemptsRemaining()
	case job.FieldMaxAttempts:
		return m.AddedMaxAttempts()
	case job.FieldProgress:
		return m.AddedProgress()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *JobMutation) AddField(name string, value ent.Value) error {
	switch name {
	case job.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPriority(v)
		return nil
	case job.FieldAttemptsRemaining:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttemptsRemaining(v)
		return nil
	case job.FieldMaxAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxAttempts(v)
		return nil
	case job.FieldProgress:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddProgress(v)
		return nil
	}
	return fmt.Errorf("unknown Job numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *JobMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(job.FieldResult) {
		fields = append(fields, job.FieldResult)
	}
	if m.FieldCleared(job.FieldErrorMessage) {
		fields = append(fields, job.FieldErrorMessage)
	}
	if m.FieldCleared(job.FieldPodID) {
		fields = append(fields, job.FieldPodID)
	}
	if m.FieldCleared(job.FieldLastHeartbeatAt) {
		fields = append(fields, job.FieldLastHeartbeatAt)
	}
	if m.FieldCleared(job.FieldRetainUntil) {
		fields = append(fields, job.FieldRetainUntil)
	}
	if m.FieldCleared(job.FieldStartedAt) {
		fields = append(fields, job.FieldStartedAt)
	}
	if m.FieldCleared(job.FieldCompletedAt) {
		fields = append(fields, job.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *JobMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *JobMutation) ClearField(name string) error {
	switch name {
	case job.FieldResult:
		m.ClearResult()
		return nil
	case job.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case job.FieldPodID:
		m.ClearPodID()
		return nil
	case job.FieldLastHeartbeatAt:
		m.ClearLastHeartbeatAt()
		return nil
	case job.FieldRetainUntil:
		m.ClearRetainUntil()
		return nil
	case job.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case job.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown Job nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *JobMutation) ResetField(name string) error {
	switch name {
	case job.FieldQueue:
		m.ResetQueue()
		return nil
	case job.FieldPayload:
		m.ResetPayload()
		return nil
	case job.FieldPriority:
		m.ResetPriority()
		return nil
	case job.FieldStatus:
		m.ResetStatus()
		return nil
	case job.FieldAttemptsRemaining:
		m.ResetAttemptsRemaining()
		return nil
	case job.FieldMaxAttempts:
		m.ResetMaxAttempts()
		return nil
	case job.FieldNextRunAt:
		m.ResetNextRunAt()
		return nil
	case job.FieldProgress:
		m.ResetProgress()
		return nil
	case job.FieldResult:
		m.ResetResult()
		return nil
	case job.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case job.FieldPodID:
		m.ResetPodID()
		return nil
	case job.FieldLastHeartbeatAt:
		m.ResetLastHeartbeatAt()
		return nil
	case job.FieldRetainUntil:
		m.ResetRetainUntil()
		return nil
	case job.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case job.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case job.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown Job field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *JobMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *JobMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *JobMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *JobMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *JobMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *JobMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *JobMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Job unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *JobMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Job edge %s", name)
}

// ParticipantMutation represents an operation that mutates the Participant nodes in the graph.
type ParticipantMutation struct {
	config
	op                       Op
	typ                      string
	id                       *string
	condition_id             *string
	unique_id                *string
	actor_type               *participant.ActorType
	state                    *participant.State
	role                     *string
	partner_id               *string
	llm_config               **models.LLMConfig
	availability             *[]models.AvailabilityWindow
	appendavailability       []models.AvailabilityWindow
	pairing_metadata         *map[string]interface{}
	metadata                 *map[string]interface{}
	email                    *string
	created_at               *time.Time
	completed_at             *time.Time
	clearedFields            map[string]struct{}
	study                    *string
	clearedstudy             bool
	batch                    *string
	clearedbatch             bool
	events                   map[string]struct{}
	removedevents            map[string]struct{}
	clearedevents            bool
	story_artifacts          map[string]struct{}
	removedstory_artifacts   map[string]struct{}
	clearedstory_artifacts   bool
	agent_context            *string
	clearedagent_context     bool
	survey_responses         map[string]struct{}
	removedsurvey_responses  map[string]struct{}
	clearedsurvey_responses  bool
	authored_comments        map[string]struct{}
	removedauthored_comments map[string]struct{}
	clearedauthored_comments bool
	received_comments        map[string]struct{}
	removedreceived_comments map[string]struct{}
	clearedreceived_comments bool
	done                     bool
	oldValue                 func(context.Context) (*Participant, error)
	predicates               []predicate.Participant
}

var _ ent.Mutation = (*ParticipantMutation)(nil)

// participantOption allows management of the mutation configuration using functional options.
type participantOption func(*ParticipantMutation)

// newParticipantMutation creates new mutation for the Participant entity.
func newParticipantMutation(c config, op Op, opts ...participantOption) *ParticipantMutation {
	m := &ParticipantMutation{
		config:        c,
		op:            op,
		typ:           TypeParticipant,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withParticipantID sets the ID field of the mutation.
func withParticipantID(id string) participantOption {
	return func(m *ParticipantMutation) {
		var (
			err   error
			once  sync.Once
			value *Participant
		)
		m.oldValue = func(ctx context.Context) (*Participant, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Participant.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withParticipant sets the old Participant of the mutation.
func withParticipant(node *Participant) participantOption {
	return func(m *ParticipantMutation) {
		m.oldValue = func(context.Context) (*Participant, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ParticipantMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ParticipantMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Participant entities.
func (m *ParticipantMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ParticipantMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ParticipantMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Participant.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetStudyID sets the "study_id" field.
func (m *ParticipantMutation) SetStudyID(s string) {
	m.study = &s
}

// StudyID returns the value of the "study_id" field in the mutation.
func (m *ParticipantMutation) StudyID() (r string, exists bool) {
	v := m.study
	if v == nil {
		return
	}
	return *v, true
}

// OldStudyID returns the old "study_id" field's value of the Participant entity.
// If the Participant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParticipantMutation) OldStudyID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStudyID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStudyID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStudyID: %w", err)
	}
	return oldValue.StudyID, nil
}

// ResetStudyID resets all changes to the "study_id" field.
func (m *ParticipantMutation) ResetStudyID() {
	m.study = nil
}

// SetBatchID sets the "batch_id" field.
func (m *ParticipantMutation) SetBatchID(s string) {
	m.batch = &s
}

// BatchID returns the value of the "batch_id" field in the mutation.
func (m *ParticipantMutation) BatchID() (r string, exists bool) {
	v := m.batch
	if v == nil {
		return
	}
	return *v, true
}

// OldBatchID returns the old "batch_id" field's value of the Participant entity.
// If the Participant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParticipantMutation) OldBatchID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBatchID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBatchID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBatchID: %w", err)
	}
	return oldValue.BatchID, nil
}

// ClearBatchID clears the value of the "batch_id" field.
func (m *ParticipantMutation) ClearBatchID() {
	m.batch = nil
	m.clearedFields[participant.FieldBatchID] = struct{}{}
}

// BatchIDCleared returns if the "batch_id" field was cleared in this mutation.
func (m *ParticipantMutation) BatchIDCleared() bool {
	_, ok := m.clearedFields[participant.FieldBatchID]
	return ok
}

// ResetBatchID resets all changes to the "batch_id" field.
func (m *ParticipantMutation) ResetBatchID() {
	m.batch = nil
	delete(m.clearedFields, participant.FieldBatchID)
}

// SetConditionID sets the "condition_id" field.
func (m *ParticipantMutation) SetConditionID(s string) {
	m.condition_id = &s
}

// ConditionID returns the value of the "condition_id" field in the mutation.
func (m *ParticipantMutation) ConditionID() (r string, exists bool) {
	v := m.condition_id
	if v == nil {
		return
	}
	return *v, true
}

// OldConditionID returns the old "condition_id" field's value of the Participant entity.
// If the Participant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParticipantMutation) OldConditionID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConditionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConditionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConditionID: %w", err)
	}
	return oldValue.ConditionID, nil
}

// ClearConditionID clears the value of the "condition_id" field.
func (m *ParticipantMutation) ClearConditionID() {
	m.condition_id = nil
	m.clearedFields[participant.FieldConditionID] = struct{}{}
}

// ConditionIDCleared returns if the "condition_id" field was cleared in this mutation.
func (m *ParticipantMutation) ConditionIDCleared() bool {
	_, ok := m.clearedFields[participant.FieldConditionID]
	return ok
}

// ResetConditionID resets all changes to the "condition_id" field.
func (m *ParticipantMutation) ResetConditionID() {
	m.condition_id = nil
	delete(m.clearedFields, participant.FieldConditionID)
}

// SetUniqueID sets the "unique_id" field.
func (m *ParticipantMutation) SetUniqueID(s string) {
	m.unique_id = &s
}

// UniqueID returns the value of the "unique_id" field in the mutation.
func (m *ParticipantMutation) UniqueID() (r string, exists bool) {
	v := m.unique_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUniqueID returns the old "unique_id" field's value of the Participant entity.
// If the Participant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParticipantMutation) OldUniqueID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUniqueID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUniqueID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUniqueID: %w", err)
	}
	return oldValue.UniqueID, nil
}

// ClearUniqueID clears the value of the "unique_id" field.
func (m *ParticipantMutation) ClearUniqueID() {
	m.unique_id = nil
	m.clearedFields[participant.FieldUniqueID] = struct{}{}
}

// UniqueIDCleared returns if the "unique_id" field was cleared in this mutation.
func (m *ParticipantMutation) UniqueIDCleared() bool {
	_, ok := m.clearedFields[participant.FieldUniqueID]
	return ok
}

// ResetUniqueID resets all changes to the "unique_id" field.
func (m *ParticipantMutation) ResetUniqueID() {
	m.unique_id = nil
	delete(m.clearedFields, participant.FieldUniqueID)
}

// SetActorType sets the "actor_type" field.
func (m *ParticipantMutation) SetActorType(pt participant.ActorType) {
	m.actor_type = &pt
}

// ActorType returns the value of the "actor_type" field in the mutation.
func (m *ParticipantMutation) ActorType() (r participant.ActorType, exists bool) {
	v := m.actor_type
	if v == nil {
		return
	}
	return *v, true
}

// OldActorType returns the old "actor_type" field's value of the Participant entity.
// If the Participant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParticipantMutation) OldActorType(ctx context.Context) (v participant.ActorType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActorType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActorType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActorType: %w", err)
	}
	return oldValue.ActorType, nil
}

// ResetActorType resets all changes to the "actor_type" field.
func (m *ParticipantMutation) ResetActorType() {
	m.actor_type = nil
}

// SetState sets the "state" field.
func (m *ParticipantMutation) SetState(pa participant.State) {
	m.state = &pa
}

// State returns the value of the "state" field in the mutation.
func (m *ParticipantMutation) State() (r participant.State, exists bool) {
	v := m.state
	if v == nil {
		return
	}
	return *v, true
}

// OldState returns the old "state" field's value of the Participant entity.
// If the Participant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParticipantMutation) OldState(ctx context.Context) (v participant.State, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldState: %w", err)
	}
	return oldValue.State, nil
}

// ResetState resets all changes to the "state" field.
func (m *ParticipantMutation) ResetState() {
	m.state = nil
}

// SetRole sets the "role" field.
func (m *ParticipantMutation) SetRole(s string) {
	m.role = &s
}

// Role returns the value of the "role" field in the mutation.
func (m *ParticipantMutation) Role() (r string, exists bool) {
	v := m.role
	if v == nil {
		return
	}
	return *v, true
}

// OldRole returns the old "role" field's value of the Participant entity.
// If the Participant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParticipantMutation) OldRole(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRole: %w", err)
	}
	return oldValue.Role, nil
}

// ResetRole resets all changes to the "role" field.
func (m *ParticipantMutation) ResetRole() {
	m.role = nil
}

// SetPartnerID sets the "partner_id" field.
func (m *ParticipantMutation) SetPartnerID(s string) {
	m.partner_id = &s
}

// PartnerID returns the value of the "partner_id" field in the mutation.
func (m *ParticipantMutation) PartnerID() (r string, exists bool) {
	v := m.partner_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPartnerID returns the old "partner_id" field's value of the Participant entity.
// If the Participant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParticipantMutation) OldPartnerID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPartnerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPartnerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPartnerID: %w", err)
	}
	return oldValue.PartnerID, nil
}

// ClearPartnerID clears the value of the "partner_id" field.
func (m *ParticipantMutation) ClearPartnerID() {
	m.partner_id = nil
	m.clearedFields[participant.FieldPartnerID] = struct{}{}
}

// PartnerIDCleared returns if the "partner_id" field was cleared in this mutation.
func (m *ParticipantMutation) PartnerIDCleared() bool {
	_, ok := m.clearedFields[participant.FieldPartnerID]
	return ok
}

// ResetPartnerID resets all changes to the "partner_id" field.
func (m *ParticipantMutation) ResetPartnerID() {
	m.partner_id = nil
	delete(m.clearedFields, participant.FieldPartnerID)
}

// SetLlmConfig sets the "llm_config" field.
func (m *ParticipantMutation) SetLlmConfig(mc *models.LLMConfig) {
	m.llm_config = &mc
}

// LlmConfig returns the value of the "llm_config" field in the mutation.
func (m *ParticipantMutation) LlmConfig() (r *models.LLMConfig, exists bool) {
	v := m.llm_config
	if v == nil {
		return
	}
	return *v, true
}

// OldLlmConfig returns the old "llm_config" field's value of the Participant entity.
// If the Participant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParticipantMutation) OldLlmConfig(ctx context.Context) (v *models.LLMConfig, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLlmConfig is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLlmConfig requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLlmConfig: %w", err)
	}
	return oldValue.LlmConfig, nil
}

// ClearLlmConfig clears the value of the "llm_config" field.
func (m *ParticipantMutation) ClearLlmConfig() {
	m.llm_config = nil
	m.clearedFields[participant.FieldLlmConfig] = struct{}{}
}

// LlmConfigCleared returns if the "llm_config" field was cleared in this mutation.
func (m *ParticipantMutation) LlmConfigCleared() bool {
	_, ok := m.clearedFields[participant.FieldLlmConfig]
	return ok
}

// ResetLlmConfig resets all changes to the "llm_config" field.
func (m *ParticipantMutation) ResetLlmConfig() {
	m.llm_config = nil
	delete(m.clearedFields, participant.FieldLlmConfig)
}

// SetAvailability sets the "availability" field.
func (m *ParticipantMutation) SetAvailability(mw []models.AvailabilityWindow) {
	m.availability = &mw
	m.appendavailability = nil
}

// Availability returns the value of the "availability" field in the mutation.
func (m *ParticipantMutation) Availability() (r []models.AvailabilityWindow, exists bool) {
	v := m.availability
	if v == nil {
		return
	}
	return *v, true
}

// OldAvailability returns the old "availability" field's value of the Participant entity.
// If the Participant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParticipantMutation) OldAvailability(ctx context.Context) (v []models.AvailabilityWindow, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAvailability is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAvailability requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAvailability: %w", err)
	}
	return oldValue.Availability, nil
}

// AppendAvailability adds mw to the "availability" field.
func (m *ParticipantMutation) AppendAvailability(mw []models.AvailabilityWindow) {
	m.appendavailability = append(m.appendavailability, mw...)
}

// AppendedAvailability returns the list of values that were appended to the "availability" field in this mutation.
func (m *ParticipantMutation) AppendedAvailability() ([]models.AvailabilityWindow, bool) {
	if len(m.appendavailability) == 0 {
		return nil, false
	}
	return m.appendavailability, true
}

// ClearAvailability clears the value of the "availability" field.
func (m *ParticipantMutation) ClearAvailability() {
	m.availability = nil
	m.appendavailability = nil
	m.clearedFields[participant.FieldAvailability] = struct{}{}
}

// AvailabilityCleared returns if the "availability" field was cleared in this mutation.
func (m *ParticipantMutation) AvailabilityCleared() bool {
	_, ok := m.clearedFields[participant.FieldAvailability]
	return ok
}

// ResetAvailability resets all changes to the "availability" field.
func (m *ParticipantMutation) ResetAvailability() {
	m.availability = nil
	m.appendavailability = nil
	delete(m.clearedFields, participant.FieldAvailability)
}

// SetPairingMetadata sets the "pairing_metadata" field.
func (m *ParticipantMutation) SetPairingMetadata(value map[string]interface{}) {
	m.pairing_metadata = &value
}

// PairingMetadata returns the value of the "pairing_metadata" field in the mutation.
func (m *ParticipantMutation) PairingMetadata() (r map[string]interface{}, exists bool) {
	v := m.pairing_metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldPairingMetadata returns the old "pairing_metadata" field's value of the Participant entity.
// If the Participant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParticipantMutation) OldPairingMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPairingMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPairingMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPairingMetadata: %w", err)
	}
	return oldValue.PairingMetadata, nil
}

// ClearPairingMetadata clears the value of the "pairing_metadata" field.
func (m *ParticipantMutation) ClearPairingMetadata() {
	m.pairing_metadata = nil
	m.clearedFields[participant.FieldPairingMetadata] = struct{}{}
}

// PairingMetadataCleared returns if the "pairing_metadata" field was cleared in this mutation.
func (m *ParticipantMutation) PairingMetadataCleared() bool {
	_, ok := m.clearedFields[participant.FieldPairingMetadata]
	return ok
}

// ResetPairingMetadata resets all changes to the "pairing_metadata" field.
func (m *ParticipantMutation) ResetPairingMetadata() {
	m.pairing_metadata = nil
	delete(m.clearedFields, participant.FieldPairingMetadata)
}

// SetMetadata sets the "metadata" field.
func (m *ParticipantMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *ParticipantMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the Participant entity.
// If the Participant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParticipantMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *ParticipantMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[participant.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *ParticipantMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[participant.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *ParticipantMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, participant.FieldMetadata)
}

// SetEmail sets the "email" field.
func (m *ParticipantMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *ParticipantMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the Participant entity.
// If the Participant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParticipantMutation) OldEmail(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ClearEmail clears the value of the "email" field.
func (m *ParticipantMutation) ClearEmail() {
	m.email = nil
	m.clearedFields[participant.FieldEmail] = struct{}{}
}

// EmailCleared returns if the "email" field was cleared in this mutation.
func (m *ParticipantMutation) EmailCleared() bool {
	_, ok := m.clearedFields[participant.FieldEmail]
	return ok
}

// ResetEmail resets all changes to the "email" field.
func (m *ParticipantMutation) ResetEmail() {
	m.email = nil
	delete(m.clearedFields, participant.FieldEmail)
}

// SetCreatedAt sets the "created_at" field.
func (m *ParticipantMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ParticipantMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Participant entity.
// If the Participant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParticipantMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ParticipantMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *ParticipantMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *ParticipantMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the Participant entity.
// If the Participant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParticipantMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *ParticipantMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[participant.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *ParticipantMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[participant.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *ParticipantMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, participant.FieldCompletedAt)
}

// ClearStudy clears the "study" edge to the Study entity.
func (m *ParticipantMutation) ClearStudy() {
	m.clearedstudy = true
	m.clearedFields[participant.FieldStudyID] = struct{}{}
}

// StudyCleared reports if the "study" edge to the Study entity was cleared.
func (m *ParticipantMutation) StudyCleared() bool {
	return m.clearedstudy
}

// StudyIDs returns the "study" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// StudyID instead. It exists only for internal usage by the builders.
func (m *ParticipantMutation) StudyIDs() (ids []string) {
	if id := m.study; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetStudy resets all changes to the "study" edge.
func (m *ParticipantMutation) ResetStudy() {
	m.study = nil
	m.clearedstudy = false
}

// ClearBatch clears the "batch" edge to the Batch entity.
func (m *ParticipantMutation) ClearBatch() {
	m.clearedbatch = true
	m.clearedFields[participant.FieldBatchID] = struct{}{}
}

// BatchCleared reports if the "batch" edge to the Batch entity was cleared.
func (m *ParticipantMutation) BatchCleared() bool {
	return m.BatchIDCleared() || m.clearedbatch
}

// BatchIDs returns the "batch" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// BatchID instead. It exists only for internal usage by the builders.
func (m *ParticipantMutation) BatchIDs() (ids []string) {
	if id := m.batch; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetBatch resets all changes to the "batch" edge.
func (m *ParticipantMutation) ResetBatch() {
	m.batch = nil
	m.clearedbatch = false
}

// AddEventIDs adds the "events" edge to the Event entity by ids.
func (m *ParticipantMutation) AddEventIDs(ids ...string) {
	if m.events == nil {
		m.events = make(map[string]struct{})
	}
	for i := range ids {
		m.events[ids[i]] = struct{}{}
	}
}

// ClearEvents clears the "events" edge to the Event entity.
func (m *ParticipantMutation) ClearEvents() {
	m.clearedevents = true
}

// EventsCleared reports if the "events" edge to the Event entity was cleared.
func (m *ParticipantMutation) EventsCleared() bool {
	return m.clearedevents
}

// RemoveEventIDs removes the "events" edge to the Event entity by IDs.
func (m *ParticipantMutation) RemoveEventIDs(ids ...string) {
	if m.removedevents == nil {
		m.removedevents = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.events, ids[i])
		m.removedevents[ids[i]] = struct{}{}
	}
}

// RemovedEvents returns the removed IDs of the "events" edge to the Event entity.
func (m *ParticipantMutation) RemovedEventsIDs() (ids []string) {
	for id := range m.removedevents {
		ids = append(ids, id)
	}
	return
}

// EventsIDs returns the "events" edge IDs in the mutation.
func (m *ParticipantMutation) EventsIDs() (ids []string) {
	for id := range m.events {
		ids = append(ids, id)
	}
	return
}

// ResetEvents resets all changes to the "events" edge.
func (m *ParticipantMutation) ResetEvents() {
	m.events = nil
	m.clearedevents = false
	m.removedevents = nil
}

// AddStoryArtifactIDs adds the "story_artifacts" edge to the StoryArtifact entity by ids.
func (m *ParticipantMutation) AddStoryArtifactIDs(ids ...string) {
	if m.story_artifacts == nil {
		m.story_artifacts = make(map[string]struct{})
	}
	for i := range ids {
		m.story_artifacts[ids[i]] = struct{}{}
	}
}

// ClearStoryArtifacts clears the "story_artifacts" edge to the StoryArtifact entity.
func (m *ParticipantMutation) ClearStoryArtifacts() {
	m.clearedstory_artifacts = true
}

// StoryArtifactsCleared reports if the "story_artifacts" edge to the StoryArtifact entity was cleared.
func (m *ParticipantMutation) StoryArtifactsCleared() bool {
	return m.clearedstory_artifacts
}

// RemoveStoryArtifactIDs removes the "story_artifacts" edge to the StoryArtifact entity by IDs.
func (m *ParticipantMutation) RemoveStoryArtifactIDs(ids ...string) {
	if m.removedstory_artifacts == nil {
		m.removedstory_artifacts = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.story_artifacts, ids[i])
		m.removedstory_artifacts[ids[i]] = struct{}{}
	}
}

// RemovedStoryArtifacts returns the removed IDs of the "story_artifacts" edge to the StoryArtifact entity.
func (m *ParticipantMutation) RemovedStoryArtifactsIDs() (ids []string) {
	for id := range m.removedstory_artifacts {
		ids = append(ids, id)
	}
	return
}

// StoryArtifactsIDs returns the "story_artifacts" edge IDs in the mutation.
func (m *ParticipantMutation) StoryArtifactsIDs() (ids []string) {
	for id := range m.story_artifacts {
		ids = append(ids, id)
	}
	return
}

// ResetStoryArtifacts resets all changes to the "story_artifacts" edge.
func (m *ParticipantMutation) ResetStoryArtifacts() {
	m.story_artifacts = nil
	m.clearedstory_artifacts = false
	m.removedstory_artifacts = nil
}

// SetAgentContextID sets the "agent_context" edge to the AgentContext entity by id.
func (m *ParticipantMutation) SetAgentContextID(id string) {
	m.agent_context = &id
}

// ClearAgentContext clears the "agent_context" edge to the AgentContext entity.
func (m *ParticipantMutation) ClearAgentContext() {
	m.clearedagent_context = true
}

// AgentContextCleared reports if the "agent_context" edge to the AgentContext entity was cleared.
func (m *ParticipantMutation) AgentContextCleared() bool {
	return m.clearedagent_context
}

// AgentContextID returns the "agent_context" edge ID in the mutation.
func (m *ParticipantMutation) AgentContextID() (id string, exists bool) {
	if m.agent_context != nil {
		return *m.agent_context, true
	}
	return
}

// AgentContextIDs returns the "agent_context" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AgentContextID instead. It exists only for internal usage by the builders.
func (m *ParticipantMutation) AgentContextIDs() (ids []string) {
	if id := m.agent_context; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAgentContext resets all changes to the "agent_context" edge.
func (m *ParticipantMutation) ResetAgentContext() {
	m.agent_context = nil
	m.clearedagent_context = false
}

// AddSurveyResponseIDs adds the "survey_responses" edge to the SurveyResponse entity by ids.
func (m *ParticipantMutation) AddSurveyResponseIDs(ids ...string) {
	if m.survey_responses == nil {
		m.survey_responses = make(map[string]struct{})
	}
	for i := range ids {
		m.survey_responses[ids[i]] = struct{}{}
	}
}

// ClearSurveyResponses clears the "survey_responses" edge to the SurveyResponse entity.
func (m *ParticipantMutation) ClearSurveyResponses() {
	m.clearedsurvey_responses = true
}

// SurveyResponsesCleared reports if the "survey_responses" edge to the SurveyResponse entity was cleared.
func (m *ParticipantMutation) SurveyResponsesCleared() bool {
	return m.clearedsurvey_responses
}

// RemoveSurveyResponseIDs removes the "survey_responses" edge to the SurveyResponse entity by IDs.
func (m *ParticipantMutation) RemoveSurveyResponseIDs(ids ...string) {
	if m.removedsurvey_responses == nil {
		m.removedsurvey_responses = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.survey_responses, ids[i])
		m.removedsurvey_responses[ids[i]] = struct{}{}
	}
}

// RemovedSurveyResponses returns the removed IDs of the "survey_responses" edge to the SurveyResponse entity.
func (m *ParticipantMutation) RemovedSurveyResponsesIDs() (ids []string) {
	for id := range m.removedsurvey_responses {
		ids = append(ids, id)
	}
	return
}

// SurveyResponsesIDs returns the "survey_responses" edge IDs in the mutation.
func (m *ParticipantMutation) SurveyResponsesIDs() (ids []string) {
	for id := range m.survey_responses {
		ids = append(ids, id)
	}
	return
}

// ResetSurveyResponses resets all changes to the "survey_responses" edge.
func (m *ParticipantMutation) ResetSurveyResponses() {
	m.survey_responses = nil
	m.clearedsurvey_responses = false
	m.removedsurvey_responses = nil
}

// AddAuthoredCommentIDs adds the "authored_comments" edge to the Comment entity by ids.
func (m *ParticipantMutation) AddAuthoredCommentIDs(ids ...string) {
	if m.authored_comments == nil {
		m.authored_comments = make(map[string]struct{})
	}
	for i := range ids {
		m.authored_comments[ids[i]] = struct{}{}
	}
}

// ClearAuthoredComments clears the "authored_comments" edge to the Comment entity.
func (m *ParticipantMutation) ClearAuthoredComments() {
	m.clearedauthored_comments = true
}

// AuthoredCommentsCleared reports if the "authored_comments" edge to the Comment entity was cleared.
func (m *ParticipantMutation) AuthoredCommentsCleared() bool {
	return m.clearedauthored_comments
}

// RemoveAuthoredCommentIDs removes the "authored_comments" edge to the Comment entity by IDs.
func (m *ParticipantMutation) RemoveAuthoredCommentIDs(ids ...string) {
	if m.removedauthored_comments == nil {
		m.removedauthored_comments = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.authored_comments, ids[i])
		m.removedauthored_comments[ids[i]] = struct{}{}
	}
}

// RemovedAuthoredComments returns the removed IDs of the "authored_comments" edge to the Comment entity.
func (m *ParticipantMutation) RemovedAuthoredCommentsIDs() (ids []string) {
	for id := range m.removedauthored_comments {
		ids = append(ids, id)
	}
	return
}

// AuthoredCommentsIDs returns the "authored_comments" edge IDs in the mutation.
func (m *ParticipantMutation) AuthoredCommentsIDs() (ids []string) {
	for id := range m.authored_comments {
		ids = append(ids, id)
	}
	return
}

// ResetAuthoredComments resets all changes to the "authored_comments" edge.
func (m *ParticipantMutation) ResetAuthoredComments() {
	m.authored_comments = nil
	m.clearedauthored_comments = false
	m.removedauthored_comments = nil
}

// AddReceivedCommentIDs adds the "received_comments" edge to the Comment entity by ids.
func (m *ParticipantMutation) AddReceivedCommentIDs(ids ...string) {
	if m.received_comments == nil {
		m.received_comments = make(map[string]struct{})
	}
	for i := range ids {
		m.received_comments[ids[i]] = struct{}{}
	}
}

// ClearReceivedComments clears the "received_comments" edge to the Comment entity.
func (m *ParticipantMutation) ClearReceivedComments() {
	m.clearedreceived_comments = true
}

// ReceivedCommentsCleared reports if the "received_comments" edge to the Comment entity was cleared.
func (m *ParticipantMutation) ReceivedCommentsCleared() bool {
	return m.clearedreceived_comments
}

// RemoveReceivedCommentIDs removes the "received_comments" edge to the Comment entity by IDs.
func (m *ParticipantMutation) RemoveReceivedCommentIDs(ids ...string) {
	if m.removedreceived_comments == nil {
		m.removedreceived_comments = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.received_comments, ids[i])
		m.removedreceived_comments[ids[i]] = struct{}{}
	}
}

// RemovedReceivedComments returns the removed IDs of the "received_comments" edge to the Comment entity.
func (m *ParticipantMutation) RemovedReceivedCommentsIDs() (ids []string) {
	for id := range m.removedreceived_comments {
		ids = append(ids, id)
	}
	return
}

// ReceivedCommentsIDs returns the "received_comments" edge IDs in the mutation.
func (m *ParticipantMutation) ReceivedCommentsIDs() (ids []string) {
	for id := range m.received_comments {
		ids = append(ids, id)
	}
	return
}

// ResetReceivedComments resets all changes to the "received_comments" edge.
func (m *ParticipantMutation) ResetReceivedComments() {
	m.received_comments = nil
	m.clearedreceived_comments = false
	m.removedreceived_comments = nil
}

// Where appends a list predicates to the ParticipantMutation builder.
func (m *ParticipantMutation) Where(ps ...predicate.Participant) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ParticipantMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ParticipantMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Participant, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ParticipantMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ParticipantMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Participant).
func (m *ParticipantMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ParticipantMutation) Fields() []string {
	fields := make([]string, 0, 15)
	if m.study != nil {
		fields = append(fields, participant.FieldStudyID)
	}
	if m.batch != nil {
		fields = append(fields, participant.FieldBatchID)
	}
	if m.condition_id != nil {
		fields = append(fields, participant.FieldConditionID)
	}
	if m.unique_id != nil {
		fields = append(fields, participant.FieldUniqueID)
	}
	if m.actor_type != nil {
		fields = append(fields, participant.FieldActorType)
	}
	if m.state != nil {
		fields = append(fields, participant.FieldState)
	}
	if m.role != nil {
		fields = append(fields, participant.FieldRole)
	}
	if m.partner_id != nil {
		fields = append(fields, participant.FieldPartnerID)
	}
	if m.llm_config != nil {
		fields = append(fields, participant.FieldLlmConfig)
	}
	if m.availability != nil {
		fields = append(fields, participant.FieldAvailability)
	}
	if m.pairing_metadata != nil {
		fields = append(fields, participant.FieldPairingMetadata)
	}
	if m.metadata != nil {
		fields = append(fields, participant.FieldMetadata)
	}
	if m.email != nil {
		fields = append(fields, participant.FieldEmail)
	}
	if m.created_at != nil {
		fields = append(fields, participant.FieldCreatedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, participant.FieldCompletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ParticipantMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case participant.FieldStudyID:
		return m.StudyID()
	case participant.FieldBatchID:
		return m.BatchID()
	case participant.FieldConditionID:
		return m.ConditionID()
	case participant.FieldUniqueID:
		return m.UniqueID()
	case participant.FieldActorType:
		return m.ActorType()
	case participant.FieldState:
		return m.State()
	case participant.FieldRole:
		return m.Role()
	case participant.FieldPartnerID:
		return m.PartnerID()
	case participant.FieldLlmConfig:
		return m.LlmConfig()
	case participant.FieldAvailability:
		return m.Availability()
	case participant.FieldPairingMetadata:
		return m.PairingMetadata()
	case participant.FieldMetadata:
		return m.Metadata()
	case participant.FieldEmail:
		return m.Email()
	case participant.FieldCreatedAt:
		return m.CreatedAt()
	case participant.FieldCompletedAt:
		return m.CompletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ParticipantMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case participant.FieldStudyID:
		return m.OldStudyID(ctx)
	case participant.FieldBatchID:
		return m.OldBatchID(ctx)
	case participant.FieldConditionID:
		return m.OldConditionID(ctx)
	case participant.FieldUniqueID:
		return m.OldUniqueID(ctx)
	case participant.FieldActorType:
		return m.OldActorType(ctx)
	case participant.FieldState:
		return m.OldState(ctx)
	case participant.FieldRole:
		return m.OldRole(ctx)
	case participant.FieldPartnerID:
		return m.OldPartnerID(ctx)
	case participant.FieldLlmConfig:
		return m.OldLlmConfig(ctx)
	case participant.FieldAvailability:
		return m.OldAvailability(ctx)
	case participant.FieldPairingMetadata:
		return m.OldPairingMetadata(ctx)
	case participant.FieldMetadata:
		return m.OldMetadata(ctx)
	case participant.FieldEmail:
		return m.OldEmail(ctx)
	case participant.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case participant.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Participant field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ParticipantMutation) SetField(name string, value ent.Value) error {
	switch name {
	case participant.FieldStudyID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStudyID(v)
		return nil
	case participant.FieldBatchID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBatchID(v)
		return nil
	case participant.FieldConditionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConditionID(v)
		return nil
	case participant.FieldUniqueID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUniqueID(v)
		return nil
	case participant.FieldActorType:
		v, ok := value.(participant.ActorType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActorType(v)
		return nil
	case participant.FieldState:
		v, ok := value.(participant.State)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetState(v)
		return nil
	case participant.FieldRole:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRole(v)
		return nil
	case participant.FieldPartnerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPartnerID(v)
		return nil
	case participant.FieldLlmConfig:
		v, ok := value.(*models.LLMConfig)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLlmConfig(v)
		return nil
	case participant.FieldAvailability:
		v, ok := value.([]models.AvailabilityWindow)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAvailability(v)
		return nil
	case participant.FieldPairingMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPairingMetadata(v)
		return nil
	case participant.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	case participant.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case participant.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case participant.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Participant field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ParticipantMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ParticipantMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ParticipantMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Participant numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ParticipantMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(participant.FieldBatchID) {
		fields = append(fields, participant.FieldBatchID)
	}
	if m.FieldCleared(participant.FieldConditionID) {
		fields = append(fields, participant.FieldConditionID)
	}
	if m.FieldCleared(participant.FieldUniqueID) {
		fields = append(fields, participant.FieldUniqueID)
	}
	if m.FieldCleared(participant.FieldPartnerID) {
		fields = append(fields, participant.FieldPartnerID)
	}
	if m.FieldCleared(participant.FieldLlmConfig) {
		fields = append(fields, participant.FieldLlmConfig)
	}
	if m.FieldCleared(participant.FieldAvailability) {
		fields = append(fields, participant.FieldAvailability)
	}
	if m.FieldCleared(participant.FieldPairingMetadata) {
		fields = append(fields, participant.FieldPairingMetadata)
	}
	if m.FieldCleared(participant.FieldMetadata) {
		fields = append(fields, participant.FieldMetadata)
	}
	if m.FieldCleared(participant.FieldEmail) {
		fields = append(fields, participant.FieldEmail)
	}
	if m.FieldCleared(participant.FieldCompletedAt) {
		fields = append(fields, participant.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ParticipantMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ParticipantMutation) ClearField(name string) error {
	switch name {
	case participant.FieldBatchID:
		m.ClearBatchID()
		return nil
	case participant.FieldConditionID:
		m.ClearConditionID()
		return nil
	case participant.FieldUniqueID:
		m.ClearUniqueID()
		return nil
	case participant.FieldPartnerID:
		m.ClearPartnerID()
		return nil
	case participant.FieldLlmConfig:
		m.ClearLlmConfig()
		return nil
	case participant.FieldAvailability:
		m.ClearAvailability()
		return nil
	case participant.FieldPairingMetadata:
		m.ClearPairingMetadata()
		return nil
	case participant.FieldMetadata:
		m.ClearMetadata()
		return nil
	case participant.FieldEmail:
		m.ClearEmail()
		return nil
	case participant.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown Participant nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ParticipantMutation) ResetField(name string) error {
	switch name {
	case participant.FieldStudyID:
		m.ResetStudyID()
		return nil
	case participant.FieldBatchID:
		m.ResetBatchID()
		return nil
	case participant.FieldConditionID:
		m.ResetConditionID()
		return nil
	case participant.FieldUniqueID:
		m.ResetUniqueID()
		return nil
	case participant.FieldActorType:
		m.ResetActorType()
		return nil
	case participant.FieldState:
		m.ResetState()
		return nil
	case participant.FieldRole:
		m.ResetRole()
		return nil
	case participant.FieldPartnerID:
		m.ResetPartnerID()
		return nil
	case participant.FieldLlmConfig:
		m.ResetLlmConfig()
		return nil
	case participant.FieldAvailability:
		m.ResetAvailability()
		return nil
	case participant.FieldPairingMetadata:
		m.ResetPairingMetadata()
		return nil
	case participant.FieldMetadata:
		m.ResetMetadata()
		return nil
	case participant.FieldEmail:
		m.ResetEmail()
		return nil
	case participant.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case participant.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown Participant field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ParticipantMutation) AddedEdges() []string {
	edges := make([]string, 0, 8)
	if m.study != nil {
		edges = append(edges, participant.EdgeStudy)
	}
	if m.batch != nil {
		edges = append(edges, participant.EdgeBatch)
	}
	if m.events != nil {
		edges = append(edges, participant.EdgeEvents)
	}
	if m.story_artifacts != nil {
		edges = append(edges, participant.EdgeStoryArtifacts)
	}
	if m.agent_context != nil {
		edges = append(edges, participant.EdgeAgentContext)
	}
	if m.survey_responses != nil {
		edges = append(edges, participant.EdgeSurveyResponses)
	}
	if m.authored_comments != nil {
		edges = append(edges, participant.EdgeAuthoredComments)
	}
	if m.received_comments != nil {
		edges = append(edges, participant.EdgeReceivedComments)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ParticipantMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case participant.EdgeStudy:
		if id := m.study; id != nil {
			return []ent.Value{*id}
		}
	case participant.EdgeBatch:
		if id := m.batch; id != nil {
			return []ent.Value{*id}
		}
	case participant.EdgeEvents:
		ids := make([]ent.Value, 0, len(m.events))
		for id := range m.events {
			ids = append(ids, id)
		}
		return ids
	case participant.EdgeStoryArtifacts:
		ids := make([]ent.Value, 0, len(m.story_artifacts))
		for id := range m.story_artifacts {
			ids = append(ids, id)
		}
		return ids
	case participant.EdgeAgentContext:
		if id := m.agent_context; id != nil {
			return []ent.Value{*id}
		}
	case participant.EdgeSurveyResponses:
		ids := make([]ent.Value, 0, len(m.survey_responses))
		for id := range m.survey_responses {
			ids = append(ids, id)
		}
		return ids
	case participant.EdgeAuthoredComments:
		ids := make([]ent.Value, 0, len(m.authored_comments))
		for id := range m.authored_comments {
			ids = append(ids, id)
		}
		return ids
	case participant.EdgeReceivedComments:
		ids := make([]ent.Value, 0, len(m.received_comments))
		for id := range m.received_comments {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ParticipantMutation) RemovedEdges() []string {
	edges := make([]string, 0, 8)
	if m.removedevents != nil {
		edges = append(edges, participant.EdgeEvents)
	}
	if m.removedstory_artifacts != nil {
		edges = append(edges, participant.EdgeStoryArtifacts)
	}
	if m.removedsurvey_responses != nil {
		edges = append(edges, participant.EdgeSurveyResponses)
	}
	if m.removedauthored_comments != nil {
		edges = append(edges, participant.EdgeAuthoredComments)
	}
	if m.removedreceived_comments != nil {
		edges = append(edges, participant.EdgeReceivedComments)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ParticipantMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case participant.EdgeEvents:
		ids := make([]ent.Value, 0, len(m.removedevents))
		for id := range m.removedevents {
			ids = append(ids, id)
		}
		return ids
	case participant.EdgeStoryArtifacts:
		ids := make([]ent.Value, 0, len(m.removedstory_artifacts))
		for id := range m.removedstory_artifacts {
			ids = append(ids, id)
		}
		return ids
	case participant.EdgeSurveyResponses:
		ids := make([]ent.Value, 0, len(m.removedsurvey_responses))
		for id := range m.removedsurvey_responses {
			ids = append(ids, id)
		}
		return ids
	case participant.EdgeAuthoredComments:
		ids := make([]ent.Value, 0, len(m.removedauthored_comments))
		for id := range m.removedauthored_comments {
			ids = append(ids, id)
		}
		return ids
	case participant.EdgeReceivedComments:
		ids := make([]ent.Value, 0, len(m.removedreceived_comments))
		for id := range m.removedreceived_comments {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ParticipantMutation) ClearedEdges() []string {
	edges := make([]string, 0, 8)
	if m.clearedstudy {
		edges = append(edges, participant.EdgeStudy)
	}
	if m.clearedbatch {
		edges = append(edges, participant.EdgeBatch)
	}
	if m.clearedevents {
		edges = append(edges, participant.EdgeEvents)
	}
	if m.clearedstory_artifacts {
		edges = append(edges, participant.EdgeStoryArtifacts)
	}
	if m.clearedagent_context {
		edges = append(edges, participant.EdgeAgentContext)
	}
	if m.clearedsurvey_responses {
		edges = append(edges, participant.EdgeSurveyResponses)
	}
	if m.clearedauthored_comments {
		edges = append(edges, participant.EdgeAuthoredComments)
	}
	if m.clearedreceived_comments {
		edges = append(edges, participant.EdgeReceivedComments)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ParticipantMutation) EdgeCleared(name string) bool {
	switch name {
	case participant.EdgeStudy:
		return m.clearedstudy
	case participant.EdgeBatch:
		return m.clearedbatch
	case participant.EdgeEvents:
		return m.clearedevents
	case participant.EdgeStoryArtifacts:
		return m.clearedstory_artifacts
	case participant.EdgeAgentContext:
		return m.clearedagent_context
	case participant.EdgeSurveyResponses:
		return m.clearedsurvey_responses
	case participant.EdgeAuthoredComments:
		return m.clearedauthored_comments
	case participant.EdgeReceivedComments:
		return m.clearedreceived_comments
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ParticipantMutation) ClearEdge(name string) error {
	switch name {
	case participant.EdgeStudy:
		m.ClearStudy()
		return nil
	case participant.EdgeBatch:
		m.ClearBatch()
		return nil
	case participant.EdgeAgentContext:
		m.ClearAgentContext()
		return nil
	}
	return fmt.Errorf("unknown Participant unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ParticipantMutation) ResetEdge(name string) error {
	switch name {
	case participant.EdgeStudy:
		m.ResetStudy()
		return nil
	case participant.EdgeBatch:
		m.ResetBatch()
		return nil
	case participant.EdgeEvents:
		m.ResetEvents()
		return nil
	case participant.EdgeStoryArtifacts:
		m.ResetStoryArtifacts()
		return nil
	case participant.EdgeAgentContext:
		m.ResetAgentContext()
		return nil
	case participant.EdgeSurveyResponses:
		m.ResetSurveyResponses()
		return nil
	case participant.EdgeAuthoredComments:
		m.ResetAuthoredComments()
		return nil
	case participant.EdgeReceivedComments:
		m.ResetReceivedComments()
		return nil
	}
	return fmt.Errorf("unknown Participant edge %s", name)
}

// StoryArtifactMutation represents an operation that mutates the StoryArtifact nodes in the graph.
type StoryArtifactMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	plugin_type        *string
	version            *int
	addversion         *int
	blob_key           *string
	bucket             *string
	status             *storyartifact.Status
	name               *string
	description        *string
	round              *int
	addround           *int
	created_at         *time.Time
	clearedFields      map[string]struct{}
	participant        *string
	clearedparticipant bool
	done               bool
	oldValue           func(context.Context) (*StoryArtifact, error)
	predicates         []predicate.StoryArtifact
}

var _ ent.Mutation = (*StoryArtifactMutation)(nil)

// storyartifactOption allows management of the mutation configuration using functional options.
type storyartifactOption func(*StoryArtifactMutation)

// newStoryArtifactMutation creates new mutation for the StoryArtifact entity.
func newStoryArtifactMutation(c config, op Op, opts ...storyartifactOption) *StoryArtifactMutation {
	m := &StoryArtifactMutation{
		config:        c,
		op:            op,
		typ:           TypeStoryArtifact,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withStoryArtifactID sets the ID field of the mutation.
func withStoryArtifactID(id string) storyartifactOption {
	return func(m *StoryArtifactMutation) {
		var (
			err   error
			once  sync.Once
			value *StoryArtifact
		)
		m.oldValue = func(ctx context.Context) (*StoryArtifact, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().StoryArtifact.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withStoryArtifact sets the old StoryArtifact of the mutation.
func withStoryArtifact(node *StoryArtifact) storyartifactOption {
	return func(m *StoryArtifactMutation) {
		m.oldValue = func(context.Context) (*StoryArtifact, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m StoryArtifactMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m StoryArtifactMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of StoryArtifact entities.
func (m *StoryArtifactMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *StoryArtifactMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *StoryArtifactMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().StoryArtifact.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetParticipantID sets the "participant_id" field.
func (m *StoryArtifactMutation) SetParticipantID(s string) {
	m.participant = &s
}

// ParticipantID returns the value of the "participant_id" field in the mutation.
func (m *StoryArtifactMutation) ParticipantID() (r string, exists bool) {
	v := m.participant
	if v == nil {
		return
	}
	return *v, true
}

// OldParticipantID returns the old "participant_id" field's value of the StoryArtifact entity.
// If the StoryArtifact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StoryArtifactMutation) OldParticipantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParticipantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParticipantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParticipantID: %w", err)
	}
	return oldValue.ParticipantID, nil
}

// ResetParticipantID resets all changes to the "participant_id" field.
func (m *StoryArtifactMutation) ResetParticipantID() {
	m.participant = nil
}

// SetPluginType sets the "plugin_type" field.
func (m *StoryArtifactMutation) SetPluginType(s string) {
	m.plugin_type = &s
}

// PluginType returns the value of the "plugin_type" field in the mutation.
func (m *StoryArtifactMutation) PluginType() (r string, exists bool) {
	v := m.plugin_type
	if v == nil {
		return
	}
	return *v, true
}

// OldPluginType returns the old "plugin_type" field's value of the StoryArtifact entity.
// If the StoryArtifact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StoryArtifactMutation) OldPluginType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPluginType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPluginType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPluginType: %w", err)
	}
	return oldValue.PluginType, nil
}

// ResetPluginType resets all changes to the "plugin_type" field.
func (m *StoryArtifactMutation) ResetPluginType() {
	m.plugin_type = nil
}

// SetVersion sets the "version" field.
func (m *StoryArtifactMutation) SetVersion(i int) {
	m.version = &i
	m.addversion = nil
}

// Version returns the value of the "version" field in the mutation.
func (m *StoryArtifactMutation) Version() (r int, exists bool) {
	v := m.version
	if v == nil {
		return
	}
	return *v, true
}

// OldVersion returns the old "version" field's value of the StoryArtifact entity.
// If the StoryArtifact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StoryArtifactMutation) OldVersion(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersion: %w", err)
	}
	return oldValue.Version, nil
}

// AddVersion adds i to the "version" field.
func (m *StoryArtifactMutation) AddVersion(i int) {
	if m.addversion != nil {
		*m.addversion += i
	} else {
		m.addversion = &i
	}
}

// AddedVersion returns the value that was added to the "version" field in this mutation.
func (m *StoryArtifactMutation) AddedVersion() (r int, exists bool) {
	v := m.addversion
	if v == nil {
		return
	}
	return *v, true
}

// ResetVersion resets all changes to the "version" field.
func (m *StoryArtifactMutation) ResetVersion() {
	m.version = nil
	m.addversion = nil
}

// SetBlobKey sets the "blob_key" field.
func (m *StoryArtifactMutation) SetBlobKey(s string) {
	m.blob_key = &s
}

// BlobKey returns the value of the "blob_key" field in the mutation.
func (m *StoryArtifactMutation) BlobKey() (r string, exists bool) {
	v := m.blob_key
	if v == nil {
		return
	}
	return *v, true
}

// OldBlobKey returns the old "blob_key" field's value of the StoryArtifact entity.
// If the StoryArtifact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StoryArtifactMutation) OldBlobKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBlobKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBlobKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBlobKey: %w", err)
	}
	return oldValue.BlobKey, nil
}

// ResetBlobKey resets all changes to the "blob_key" field.
func (m *StoryArtifactMutation) ResetBlobKey() {
	m.blob_key = nil
}

// SetBucket sets the "bucket" field.
func (m *StoryArtifactMutation) SetBucket(s string) {
	m.bucket = &s
}

// Bucket returns the value of the "bucket" field in the mutation.
func (m *StoryArtifactMutation) Bucket() (r string, exists bool) {
	v := m.bucket
	if v == nil {
		return
	}
	return *v, true
}

// OldBucket returns the old "bucket" field's value of the StoryArtifact entity.
// If the StoryArtifact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StoryArtifactMutation) OldBucket(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBucket is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBucket requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBucket: %w", err)
	}
	return oldValue.Bucket, nil
}

// ResetBucket resets all changes to the "bucket" field.
func (m *StoryArtifactMutation) ResetBucket() {
	m.bucket = nil
}

// SetStatus sets the "status" field.
func (m *StoryArtifactMutation) SetStatus(s storyartifact.Status) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *StoryArtifactMutation) Status() (r storyartifact.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the StoryArtifact entity.
// If the StoryArtifact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StoryArtifactMutation) OldStatus(ctx context.Context) (v storyartifact.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *StoryArtifactMutation) ResetStatus() {
	m.status = nil
}

// SetName sets the "name" field.
func (m *StoryArtifactMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *StoryArtifactMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the StoryArtifact entity.
// If the StoryArtifact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StoryArtifactMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ClearName clears the value of the "name" field.
func (m *StoryArtifactMutation) ClearName() {
	m.name = nil
	m.clearedFields[storyartifact.FieldName] = struct{}{}
}

// NameCleared returns if the "name" field was cleared in this mutation.
func (m *StoryArtifactMutation) NameCleared() bool {
	_, ok := m.clearedFields[storyartifact.FieldName]
	return ok
}

// ResetName resets all changes to the "name" field.
func (m *StoryArtifactMutation) ResetName() {
	m.name = nil
	delete(m.clearedFields, storyartifact.FieldName)
}

// SetDescription sets the "description" field.
func (m *StoryArtifactMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *StoryArtifactMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the StoryArtifact entity.
// If the StoryArtifact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StoryArtifactMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *StoryArtifactMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[storyartifact.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *StoryArtifactMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[storyartifact.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *StoryArtifactMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, storyartifact.FieldDescription)
}

// SetRound sets the "round" field.
func (m *StoryArtifactMutation) SetRound(i int) {
	m.round = &i
	m.addround = nil
}

// Round returns the value of the "round" field in the mutation.
func (m *StoryArtifactMutation) Round() (r int, exists bool) {
	v := m.round
	if v == nil {
		return
	}
	return *v, true
}

// OldRound returns the old "round" field's value of the StoryArtifact entity.
// If the StoryArtifact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StoryArtifactMutation) OldRound(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRound is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRound requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRound: %w", err)
	}
	return oldValue.Round, nil
}

// AddRound adds i to the "round" field.
func (m *StoryArtifactMutation) AddRound(i int) {
	if m.addround != nil {
		*m.addround += i
	} else {
		m.addround = &i
	}
}

// AddedRound returns the value that was added to the "round" field in this mutation.
func (m *StoryArtifactMutation) AddedRound() (r int, exists bool) {
	v := m.addround
	if v == nil {
		return
	}
	return *v, true
}

// ClearRound clears the value of the "round" field.
func (m *StoryArtifactMutation) ClearRound() {
	m.round = nil
	m.addround = nil
	m.clearedFields[storyartifact.FieldRound] = struct{}{}
}

// RoundCleared returns if the "round" field was cleared in this mutation.
func (m *StoryArtifactMutation) RoundCleared() bool {
	_, ok := m.clearedFields[storyartifact.FieldRound]
	return ok
}

// ResetRound resets all changes to the "round" field.
func (m *StoryArtifactMutation) ResetRound() {
	m.round = nil
	m.addround = nil
	delete(m.clearedFields, storyartifact.FieldRound)
}

// SetCreatedAt sets the "created_at" field.
func (m *StoryArtifactMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *StoryArtifactMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the StoryArtifact entity.
// If the StoryArtifact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StoryArtifactMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *StoryArtifactMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearParticipant clears the "participant" edge to the Participant entity.
func (m *StoryArtifactMutation) ClearParticipant() {
	m.clearedparticipant = true
	m.clearedFields[storyartifact.FieldParticipantID] = struct{}{}
}

// ParticipantCleared reports if the "participant" edge to the Participant entity was cleared.
func (m *StoryArtifactMutation) ParticipantCleared() bool {
	return m.clearedparticipant
}

// ParticipantIDs returns the "participant" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ParticipantID instead. It exists only for internal usage by the builders.
func (m *StoryArtifactMutation) ParticipantIDs() (ids []string) {
	if id := m.participant; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetParticipant resets all changes to the "participant" edge.
func (m *StoryArtifactMutation) ResetParticipant() {
	m.participant = nil
	m.clearedparticipant = false
}

// Where appends a list predicates to the StoryArtifactMutation builder.
func (m *StoryArtifactMutation) Where(ps ...predicate.StoryArtifact) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the StoryArtifactMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *StoryArtifactMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.StoryArtifact, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *StoryArtifactMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *StoryArtifactMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (StoryArtifact).
func (m *StoryArtifactMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *StoryArtifactMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.participant != nil {
		fields = append(fields, storyartifact.FieldParticipantID)
	}
	if m.plugin_type != nil {
		fields = append(fields, storyartifact.FieldPluginType)
	}
	if m.version != nil {
		fields = append(fields, storyartifact.FieldVersion)
	}
	if m.blob_key != nil {
		fields = append(fields, storyartifact.FieldBlobKey)
	}
	if m.bucket != nil {
		fields = append(fields, storyartifact.FieldBucket)
	}
	if m.status != nil {
		fields = append(fields, storyartifact.FieldStatus)
	}
	if m.name != nil {
		fields = append(fields, storyartifact.FieldName)
	}
	if m.description != nil {
		fields = append(fields, storyartifact.FieldDescription)
	}
	if m.round != nil {
		fields = append(fields, storyartifact.FieldRound)
	}
	if m.created_at != nil {
		fields = append(fields, storyartifact.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *StoryArtifactMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case storyartifact.FieldParticipantID:
		return m.ParticipantID()
	case storyartifact.FieldPluginType:
		return m.PluginType()
	case storyartifact.FieldVersion:
		return m.Version()
	case storyartifact.FieldBlobKey:
		return m.BlobKey()
	case storyartifact.FieldBucket:
		return m.Bucket()
	case storyartifact.FieldStatus:
		return m.Status()
	case storyartifact.FieldName:
		return m.Name()
	case storyartifact.FieldDescription:
		return m.Description()
	case storyartifact.FieldRound:
		return m.Round()
	case storyartifact.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *StoryArtifactMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case storyartifact.FieldParticipantID:
		return m.OldParticipantID(ctx)
	case storyartifact.FieldPluginType:
		return m.OldPluginType(ctx)
	case storyartifact.FieldVersion:
		return m.OldVersion(ctx)
	case storyartifact.FieldBlobKey:
		return m.OldBlobKey(ctx)
	case storyartifact.FieldBucket:
		return m.OldBucket(ctx)
	case storyartifact.FieldStatus:
		return m.OldStatus(ctx)
	case storyartifact.FieldName:
		return m.OldName(ctx)
	case storyartifact.FieldDescription:
		return m.OldDescription(ctx)
	case storyartifact.FieldRound:
		return m.OldRound(ctx)
	case storyartifact.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown StoryArtifact field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StoryArtifactMutation) SetField(name string, value ent.Value) error {
	switch name {
	case storyartifact.FieldParticipantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParticipantID(v)
		return nil
	case storyartifact.FieldPluginType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPluginType(v)
		return nil
	case storyartifact.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersion(v)
		return nil
	case storyartifact.FieldBlobKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBlobKey(v)
		return nil
	case storyartifact.FieldBucket:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBucket(v)
		return nil
	case storyartifact.FieldStatus:
		v, ok := value.(storyartifact.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case storyartifact.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case storyartifact.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case storyartifact.FieldRound:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRound(v)
		return nil
	case storyartifact.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown StoryArtifact field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *StoryArtifactMutation) AddedFields() []string {
	var fields []string
	if m.addversion != nil {
		fields = append(fields, storyartifact.FieldVersion)
	}
	if m.addround != nil {
		fields = append(fields, storyartifact.FieldRound)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *StoryArtifactMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case storyartifact.FieldVersion:
		return m.AddedVersion()
	case storyartifact.FieldRound:
		return m.AddedRound()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StoryArtifactMutation) AddField(name string, value ent.Value) error {
	switch name {
	case storyartifact.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVersion(v)
		return nil
	case storyartifact.FieldRound:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRound(v)
		return nil
	}
	return fmt.Errorf("unknown StoryArtifact numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *StoryArtifactMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(storyartifact.FieldName) {
		fields = append(fields, storyartifact.FieldName)
	}
	if m.FieldCleared(storyartifact.FieldDescription) {
		fields = append(fields, storyartifact.FieldDescription)
	}
	if m.FieldCleared(storyartifact.FieldRound) {
		fields = append(fields, storyartifact.FieldRound)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *StoryArtifactMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *StoryArtifactMutation) ClearField(name string) error {
	switch name {
	case storyartifact.FieldName:
		m.ClearName()
		return nil
	case storyartifact.FieldDescription:
		m.ClearDescription()
		return nil
	case storyartifact.FieldRound:
		m.ClearRound()
		return nil
	}
	return fmt.Errorf("unknown StoryArtifact nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *StoryArtifactMutation) ResetField(name string) error {
	switch name {
	case storyartifact.FieldParticipantID:
		m.ResetParticipantID()
		return nil
	case storyartifact.FieldPluginType:
		m.ResetPluginType()
		return nil
	case storyartifact.FieldVersion:
		m.ResetVersion()
		return nil
	case storyartifact.FieldBlobKey:
		m.ResetBlobKey()
		return nil
	case storyartifact.FieldBucket:
		m.ResetBucket()
		return nil
	case storyartifact.FieldStatus:
		m.ResetStatus()
		return nil
	case storyartifact.FieldName:
		m.ResetName()
		return nil
	case storyartifact.FieldDescription:
		m.ResetDescription()
		return nil
	case storyartifact.FieldRound:
		m.ResetRound()
		return nil
	case storyartifact.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown StoryArtifact field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *StoryArtifactMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.participant != nil {
		edges = append(edges, storyartifact.EdgeParticipant)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *StoryArtifactMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case storyartifact.EdgeParticipant:
		if id := m.participant; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *StoryArtifactMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *StoryArtifactMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *StoryArtifactMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedparticipant {
		edges = append(edges, storyartifact.EdgeParticipant)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *StoryArtifactMutation) EdgeCleared(name string) bool {
	switch name {
	case storyartifact.EdgeParticipant:
		return m.clearedparticipant
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *StoryArtifactMutation) ClearEdge(name string) error {
	switch name {
	case storyartifact.EdgeParticipant:
		m.ClearParticipant()
		return nil
	}
	return fmt.Errorf("unknown StoryArtifact unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *StoryArtifactMutation) ResetEdge(name string) error {
	switch name {
	case storyartifact.EdgeParticipant:
		m.ResetParticipant()
		return nil
	}
	return fmt.Errorf("unknown StoryArtifact edge %s", name)
}

// StudyMutation represents an operation that mutates the Study nodes in the graph.
type StudyMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	name                *string
	description         *string
	status              *study.Status
	_config             *map[string]interface{}
	owner_id            *string
	created_at          *time.Time
	updated_at          *time.Time
	clearedFields       map[string]struct{}
	conditions          map[string]struct{}
	removedconditions   map[string]struct{}
	clearedconditions   bool
	batches             map[string]struct{}
	removedbatches      map[string]struct{}
	clearedbatches      bool
	participants        map[string]struct{}
	removedparticipants map[string]struct{}
	clearedparticipants bool
	surveys             map[string]struct{}
	removedsurveys      map[string]struct{}
	clearedsurveys      bool
	done                bool
	oldValue            func(context.Context) (*Study, error)
	predicates          []predicate.Study
}

var _ ent.Mutation = (*StudyMutation)(nil)

// studyOption allows management of the mutation configuration using functional options.
type studyOption func(*StudyMutation)

// newStudyMutation creates new mutation for the Study entity.
func newStudyMutation(c config, op Op, opts ...studyOption) *StudyMutation {
	m := &StudyMutation{
		config:        c,
		op:            op,
		typ:           TypeStudy,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withStudyID sets the ID field of the mutation.
func withStudyID(id string) studyOption {
	return func(m *StudyMutation) {
		var (
			err   error
			once  sync.Once
			value *Study
		)
		m.oldValue = func(ctx context.Context) (*Study, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Study.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withStudy sets the old Study of the mutation.
func withStudy(node *Study) studyOption {
	return func(m *StudyMutation) {
		m.oldValue = func(context.Context) (*Study, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m StudyMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m StudyMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Study entities.
func (m *StudyMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *StudyMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *StudyMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Study.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *StudyMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *StudyMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Study entity.
// If the Study object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudyMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *StudyMutation) ResetName() {
	m.name = nil
}

// SetDescription sets the "description" field.
func (m *StudyMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *StudyMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Study entity.
// If the Study object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudyMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *StudyMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[study.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *StudyMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[study.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *StudyMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, study.FieldDescription)
}

// SetStatus sets the "status" field.
func (m *StudyMutation) SetStatus(s study.Status) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *StudyMutation) Status() (r study.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Study entity.
// If the Study object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudyMutation) OldStatus(ctx context.Context) (v study.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *StudyMutation) ResetStatus() {
	m.status = nil
}

// SetConfig sets the "config" field.
func (m *StudyMutation) SetConfig(value map[string]interface{}) {
	m._config = &value
}

// Config returns the value of the "config" field in the mutation.
func (m *StudyMutation) Config() (r map[string]interface{}, exists bool) {
	v := m._config
	if v == nil {
		return
	}
	return *v, true
}

// OldConfig returns the old "config" field's value of the Study entity.
// If the Study object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudyMutation) OldConfig(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfig is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfig requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfig: %w", err)
	}
	return oldValue.Config, nil
}

// ClearConfig clears the value of the "config" field.
func (m *StudyMutation) ClearConfig() {
	m._config = nil
	m.clearedFields[study.FieldConfig] = struct{}{}
}

// ConfigCleared returns if the "config" field was cleared in this mutation.
func (m *StudyMutation) ConfigCleared() bool {
	_, ok := m.clearedFields[study.FieldConfig]
	return ok
}

// ResetConfig resets all changes to the "config" field.
func (m *StudyMutation) ResetConfig() {
	m._config = nil
	delete(m.clearedFields, study.FieldConfig)
}

// SetOwnerID sets the "owner_id" field.
func (m *StudyMutation) SetOwnerID(s string) {
	m.owner_id = &s
}

// OwnerID returns the value of the "owner_id" field in the mutation.
func (m *StudyMutation) OwnerID() (r string, exists bool) {
	v := m.owner_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOwnerID returns the old "owner_id" field's value of the Study entity.
// If the Study object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudyMutation) OldOwnerID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOwnerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOwnerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOwnerID: %w", err)
	}
	return oldValue.OwnerID, nil
}

// ClearOwnerID clears the value of the "owner_id" field.
func (m *StudyMutation) ClearOwnerID() {
	m.owner_id = nil
	m.clearedFields[study.FieldOwnerID] = struct{}{}
}

// OwnerIDCleared returns if the "owner_id" field was cleared in this mutation.
func (m *StudyMutation) OwnerIDCleared() bool {
	_, ok := m.clearedFields[study.FieldOwnerID]
	return ok
}

// ResetOwnerID resets all changes to the "owner_id" field.
func (m *StudyMutation) ResetOwnerID() {
	m.owner_id = nil
	delete(m.clearedFields, study.FieldOwnerID)
}

// SetCreatedAt sets the "created_at" field.
func (m *StudyMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *StudyMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Study entity.
// If the Study object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudyMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *StudyMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *StudyMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *StudyMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Study entity.
// If the Study object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudyMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *StudyMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddConditionIDs adds the "conditions" edge to the Condition entity by ids.
func (m *StudyMutation) AddConditionIDs(ids ...string) {
	if m.conditions == nil {
		m.conditions = make(map[string]struct{})
	}
	for i := range ids {
		m.conditions[ids[i]] = struct{}{}
	}
}

// ClearConditions clears the "conditions" edge to the Condition entity.
func (m *StudyMutation) ClearConditions() {
	m.clearedconditions = true
}

// ConditionsCleared reports if the "conditions" edge to the Condition entity was cleared.
func (m *StudyMutation) ConditionsCleared() bool {
	return m.clearedconditions
}

// RemoveConditionIDs removes the "conditions" edge to the Condition entity by IDs.
func (m *StudyMutation) RemoveConditionIDs(ids ...string) {
	if m.removedconditions == nil {
		m.removedconditions = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.conditions, ids[i])
		m.removedconditions[ids[i]] = struct{}{}
	}
}

// RemovedConditions returns the removed IDs of the "conditions" edge to the Condition entity.
func (m *StudyMutation) RemovedConditionsIDs() (ids []string) {
	for id := range m.removedconditions {
		ids = append(ids, id)
	}
	return
}

// ConditionsIDs returns the "conditions" edge IDs in the mutation.
func (m *StudyMutation) ConditionsIDs() (ids []string) {
	for id := range m.conditions {
		ids = append(ids, id)
	}
	return
}

// ResetConditions resets all changes to the "conditions" edge.
func (m *StudyMutation) ResetConditions() {
	m.conditions = nil
	m.clearedconditions = false
	m.removedconditions = nil
}

// AddBatchIDs adds the "batches" edge to the Batch entity by ids.
func (m *StudyMutation) AddBatchIDs(ids ...string) {
	if m.batches == nil {
		m.batches = make(map[string]struct{})
	}
	for i := range ids {
		m.batches[ids[i]] = struct{}{}
	}
}

// ClearBatches clears the "batches" edge to the Batch entity.
func (m *StudyMutation) ClearBatches() {
	m.clearedbatches = true
}

// BatchesCleared reports if the "batches" edge to the Batch entity was cleared.
func (m *StudyMutation) BatchesCleared() bool {
	return m.clearedbatches
}

// RemoveBatchIDs removes the "batches" edge to the Batch entity by IDs.
func (m *StudyMutation) RemoveBatchIDs(ids ...string) {
	if m.removedbatches == nil {
		m.removedbatches = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.batches, ids[i])
		m.removedbatches[ids[i]] = struct{}{}
	}
}

// RemovedBatches returns the removed IDs of the "batches" edge to the Batch entity.
func (m *StudyMutation) RemovedBatchesIDs() (ids []string) {
	for id := range m.removedbatches {
		ids = append(ids, id)
	}
	return
}

// BatchesIDs returns the "batches" edge IDs in the mutation.
func (m *StudyMutation) BatchesIDs() (ids []string) {
	for id := range m.batches {
		ids = append(ids, id)
	}
	return
}

// ResetBatches resets all changes to the "batches" edge.
func (m *StudyMutation) ResetBatches() {
	m.batches = nil
	m.clearedbatches = false
	m.removedbatches = nil
}

// AddParticipantIDs adds the "participants" edge to the Participant entity by ids.
func (m *StudyMutation) AddParticipantIDs(ids ...string) {
	if m.participants == nil {
		m.participants = make(map[string]struct{})
	}
	for i := range ids {
		m.participants[ids[i]] = struct{}{}
	}
}

// ClearParticipants clears the "participants" edge to the Participant entity.
func (m *StudyMutation) ClearParticipants() {
	m.clearedparticipants = true
}

// ParticipantsCleared reports if the "participants" edge to the Participant entity was cleared.
func (m *StudyMutation) ParticipantsCleared() bool {
	return m.clearedparticipants
}

// RemoveParticipantIDs removes the "participants" edge to the Participant entity by IDs.
func (m *StudyMutation) RemoveParticipantIDs(ids ...string) {
	if m.removedparticipants == nil {
		m.removedparticipants = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.participants, ids[i])
		m.removedparticipants[ids[i]] = struct{}{}
	}
}

// RemovedParticipants returns the removed IDs of the "participants" edge to the Participant entity.
func (m *StudyMutation) RemovedParticipantsIDs() (ids []string) {
	for id := range m.removedparticipants {
		ids = append(ids, id)
	}
	return
}

// ParticipantsIDs returns the "participants" edge IDs in the mutation.
func (m *StudyMutation) ParticipantsIDs() (ids []string) {
	for id := range m.participants {
		ids = append(ids, id)
	}
	return
}

// ResetParticipants resets all changes to the "participants" edge.
func (m *StudyMutation) ResetParticipants() {
	m.participants = nil
	m.clearedparticipants = false
	m.removedparticipants = nil
}

// AddSurveyIDs adds the "surveys" edge to the Survey entity by ids.
func (m *StudyMutation) AddSurveyIDs(ids ...string) {
	if m.surveys == nil {
		m.surveys = make(map[string]struct{})
	}
	for i := range ids {
		m.surveys[ids[i]] = struct{}{}
	}
}

// ClearSurveys clears the "surveys" edge to the Survey entity.
func (m *StudyMutation) ClearSurveys() {
	m.clearedsurveys = true
}

// SurveysCleared reports if the "surveys" edge to the Survey entity was cleared.
func (m *StudyMutation) SurveysCleared() bool {
	return m.clearedsurveys
}

// RemoveSurveyIDs removes the "surveys" edge to the Survey entity by IDs.
func (m *StudyMutation) RemoveSurveyIDs(ids ...string) {
	if m.removedsurveys == nil {
		m.removedsurveys = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.surveys, ids[i])
		m.removedsurveys[ids[i]] = struct{}{}
	}
}

// RemovedSurveys returns the removed IDs of the "surveys" edge to the Survey entity.
func (m *StudyMutation) RemovedSurveysIDs() (ids []string) {
	for id := range m.removedsurveys {
		ids = append(ids, id)
	}
	return
}

// SurveysIDs returns the "surveys" edge IDs in the mutation.
func (m *StudyMutation) SurveysIDs() (ids []string) {
	for id := range m.surveys {
		ids = append(ids, id)
	}
	return
}

// ResetSurveys resets all changes to the "surveys" edge.
func (m *StudyMutation) ResetSurveys() {
	m.surveys = nil
	m.clearedsurveys = false
	m.removedsurveys = nil
}

// Where appends a list predicates to the StudyMutation builder.
func (m *StudyMutation) Where(ps ...predicate.Study) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the StudyMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *StudyMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Study, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *StudyMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *StudyMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Study).
func (m *StudyMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *StudyMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.name != nil {
		fields = append(fields, study.FieldName)
	}
	if m.description != nil {
		fields = append(fields, study.FieldDescription)
	}
	if m.status != nil {
		fields = append(fields, study.FieldStatus)
	}
	if m._config != nil {
		fields = append(fields, study.FieldConfig)
	}
	if m.owner_id != nil {
		fields = append(fields, study.FieldOwnerID)
	}
	if m.created_at != nil {
		fields = append(fields, study.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, study.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *StudyMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case study.FieldName:
		return m.Name()
	case study.FieldDescription:
		return m.Description()
	case study.FieldStatus:
		return m.Status()
	case study.FieldConfig:
		return m.Config()
	case study.FieldOwnerID:
		return m.OwnerID()
	case study.FieldCreatedAt:
		return m.CreatedAt()
	case study.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *StudyMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case study.FieldName:
		return m.OldName(ctx)
	case study.FieldDescription:
		return m.OldDescription(ctx)
	case study.FieldStatus:
		return m.OldStatus(ctx)
	case study.FieldConfig:
		return m.OldConfig(ctx)
	case study.FieldOwnerID:
		return m.OldOwnerID(ctx)
	case study.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case study.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Study field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StudyMutation) SetField(name string, value ent.Value) error {
	switch name {
	case study.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case study.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case study.FieldStatus:
		v, ok := value.(study.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case study.FieldConfig:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfig(v)
		return nil
	case study.FieldOwnerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOwnerID(v)
		return nil
	case study.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case study.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Study field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *StudyMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *StudyMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StudyMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Study numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *StudyMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(study.FieldDescription) {
		fields = append(fields, study.FieldDescription)
	}
	if m.FieldCleared(study.FieldConfig) {
		fields = append(fields, study.FieldConfig)
	}
	if m.FieldCleared(study.FieldOwnerID) {
		fields = append(fields, study.FieldOwnerID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *StudyMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *StudyMutation) ClearField(name string) error {
	switch name {
	case study.FieldDescription:
		m.ClearDescription()
		return nil
	case study.FieldConfig:
		m.ClearConfig()
		return nil
	case study.FieldOwnerID:
		m.ClearOwnerID()
		return nil
	}
	return fmt.Errorf("unknown Study nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *StudyMutation) ResetField(name string) error {
	switch name {
	case study.FieldName:
		m.ResetName()
		return nil
	case study.FieldDescription:
		m.ResetDescription()
		return nil
	case study.FieldStatus:
		m.ResetStatus()
		return nil
	case study.FieldConfig:
		m.ResetConfig()
		return nil
	case study.FieldOwnerID:
		m.ResetOwnerID()
		return nil
	case study.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case study.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Study field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *StudyMutation) AddedEdges() []string {
	edges := make([]string, 0, 4)
	if m.conditions != nil {
		edges = append(edges, study.EdgeConditions)
	}
	if m.batches != nil {
		edges = append(edges, study.EdgeBatches)
	}
	if m.participants != nil {
		edges = append(edges, study.EdgeParticipants)
	}
	if m.surveys != nil {
		edges = append(edges, study.EdgeSurveys)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *StudyMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case study.EdgeConditions:
		ids := make([]ent.Value, 0, len(m.conditions))
		for id := range m.conditions {
			ids = append(ids, id)
		}
		return ids
	case study.EdgeBatches:
		ids := make([]ent.Value, 0, len(m.batches))
		for id := range m.batches {
			ids = append(ids, id)
		}
		return ids
	case study.EdgeParticipants:
		ids := make([]ent.Value, 0, len(m.participants))
		for id := range m.participants {
			ids = append(ids, id)
		}
		return ids
	case study.EdgeSurveys:
		ids := make([]ent.Value, 0, len(m.surveys))
		for id := range m.surveys {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *StudyMutation) RemovedEdges() []string {
	edges := make([]string, 0, 4)
	if m.removedconditions != nil {
		edges = append(edges, study.EdgeConditions)
	}
	if m.removedbatches != nil {
		edges = append(edges, study.EdgeBatches)
	}
	if m.removedparticipants != nil {
		edges = append(edges, study.EdgeParticipants)
	}
	if m.removedsurveys != nil {
		edges = append(edges, study.EdgeSurveys)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *StudyMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case study.EdgeConditions:
		ids := make([]ent.Value, 0, len(m.removedconditions))
		for id := range m.removedconditions {
			ids = append(ids, id)
		}
		return ids
	case study.EdgeBatches:
		ids := make([]ent.Value, 0, len(m.removedbatches))
		for id := range m.removedbatches {
			ids = append(ids, id)
		}
		return ids
	case study.EdgeParticipants:
		ids := make([]ent.Value, 0, len(m.removedparticipants))
		for id := range m.removedparticipants {
			ids = append(ids, id)
		}
		return ids
	case study.EdgeSurveys:
		ids := make([]ent.Value, 0, len(m.removedsurveys))
		for id := range m.removedsurveys {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *StudyMutation) ClearedEdges() []string {
	edges := make([]string, 0, 4)
	if m.clearedconditions {
		edges = append(edges, study.EdgeConditions)
	}
	if m.clearedbatches {
		edges = append(edges, study.EdgeBatches)
	}
	if m.clearedparticipants {
		edges = append(edges, study.EdgeParticipants)
	}
	if m.clearedsurveys {
		edges = append(edges, study.EdgeSurveys)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *StudyMutation) EdgeCleared(name string) bool {
	switch name {
	case study.EdgeConditions:
		return m.clearedconditions
	case study.EdgeBatches:
		return m.clearedbatches
	case study.EdgeParticipants:
		return m.clearedparticipants
	case study.EdgeSurveys:
		return m.clearedsurveys
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *StudyMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Study unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *StudyMutation) ResetEdge(name string) error {
	switch name {
	case study.EdgeConditions:
		m.ResetConditions()
		return nil
	case study.EdgeBatches:
		m.ResetBatches()
		return nil
	case study.EdgeParticipants:
		m.ResetParticipants()
		return nil
	case study.EdgeSurveys:
		m.ResetSurveys()
		return nil
	}
	return fmt.Errorf("unknown Study edge %s", name)
}

// SurveyMutation represents an operation that mutates the Survey nodes in the graph.
type SurveyMutation struct {
	config
	op               Op
	typ              string
	id               *string
	name             *string
	questions        *[]map[string]interface{}
	appendquestions  []map[string]interface{}
	created_at       *time.Time
	clearedFields    map[string]struct{}
	study            *string
	clearedstudy     bool
	responses        map[string]struct{}
	removedresponses map[string]struct{}
	clearedresponses bool
	done             bool
	oldValue         func(context.Context) (*Survey, error)
	predicates       []predicate.Survey
}

var _ ent.Mutation = (*SurveyMutation)(nil)

// surveyOption allows management of the mutation configuration using functional options.
type surveyOption func(*SurveyMutation)

// newSurveyMutation creates new mutation for the Survey entity.
func newSurveyMutation(c config, op Op, opts ...surveyOption) *SurveyMutation {
	m := &SurveyMutation{
		config:        c,
		op:            op,
		typ:           TypeSurvey,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSurveyID sets the ID field of the mutation.
func withSurveyID(id string) surveyOption {
	return func(m *SurveyMutation) {
		var (
			err   error
			once  sync.Once
			value *Survey
		)
		m.oldValue = func(ctx context.Context) (*Survey, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Survey.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSurvey sets the old Survey of the mutation.
func withSurvey(node *Survey) surveyOption {
	return func(m *SurveyMutation) {
		m.oldValue = func(context.Context) (*Survey, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SurveyMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SurveyMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Survey entities.
func (m *SurveyMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SurveyMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SurveyMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Survey.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetStudyID sets the "study_id" field.
func (m *SurveyMutation) SetStudyID(s string) {
	m.study = &s
}

// StudyID returns the value of the "study_id" field in the mutation.
func (m *SurveyMutation) StudyID() (r string, exists bool) {
	v := m.study
	if v == nil {
		return
	}
	return *v, true
}

// OldStudyID returns the old "study_id" field's value of the Survey entity.
// If the Survey object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SurveyMutation) OldStudyID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStudyID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStudyID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStudyID: %w", err)
	}
	return oldValue.StudyID, nil
}

// ResetStudyID resets all changes to the "study_id" field.
func (m *SurveyMutation) ResetStudyID() {
	m.study = nil
}

// SetName sets the "name" field.
func (m *SurveyMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *SurveyMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Survey entity.
// If the Survey object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SurveyMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *SurveyMutation) ResetName() {
	m.name = nil
}

// SetQuestions sets the "questions" field.
func (m *SurveyMutation) SetQuestions(value []map[string]interface{}) {
	m.questions = &value
	m.appendquestions = nil
}

// Questions returns the value of the "questions" field in the mutation.
func (m *SurveyMutation) Questions() (r []map[string]interface{}, exists bool) {
	v := m.questions
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestions returns the old "questions" field's value of the Survey entity.
// If the Survey object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SurveyMutation) OldQuestions(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestions: %w", err)
	}
	return oldValue.Questions, nil
}

// AppendQuestions adds value to the "questions" field.
func (m *SurveyMutation) AppendQuestions(value []map[string]interface{}) {
	m.appendquestions = append(m.appendquestions, value...)
}

// AppendedQuestions returns the list of values that were appended to the "questions" field in this mutation.
func (m *SurveyMutation) AppendedQuestions() ([]map[string]interface{}, bool) {
	if len(m.appendquestions) == 0 {
		return nil, false
	}
	return m.appendquestions, true
}

// ClearQuestions clears the value of the "questions" field.
func (m *SurveyMutation) ClearQuestions() {
	m.questions = nil
	m.appendquestions = nil
	m.clearedFields[survey.FieldQuestions] = struct{}{}
}

// QuestionsCleared returns if the "questions" field was cleared in this mutation.
func (m *SurveyMutation) QuestionsCleared() bool {
	_, ok := m.clearedFields[survey.FieldQuestions]
	return ok
}

// ResetQuestions resets all changes to the "questions" field.
func (m *SurveyMutation) ResetQuestions() {
	m.questions = nil
	m.appendquestions = nil
	delete(m.clearedFields, survey.FieldQuestions)
}

// SetCreatedAt sets the "created_at" field.
func (m *SurveyMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SurveyMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Survey entity.
// If the Survey object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SurveyMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SurveyMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearStudy clears the "study" edge to the Study entity.
func (m *SurveyMutation) ClearStudy() {
	m.clearedstudy = true
	m.clearedFields[survey.FieldStudyID] = struct{}{}
}

// StudyCleared reports if the "study" edge to the Study entity was cleared.
func (m *SurveyMutation) StudyCleared() bool {
	return m.clearedstudy
}

// StudyIDs returns the "study" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// StudyID instead. It exists only for internal usage by the builders.
func (m *SurveyMutation) StudyIDs() (ids []string) {
	if id := m.study; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetStudy resets all changes to the "study" edge.
func (m *SurveyMutation) ResetStudy() {
	m.study = nil
	m.clearedstudy = false
}

// AddResponseIDs adds the "responses" edge to the SurveyResponse entity by ids.
func (m *SurveyMutation) AddResponseIDs(ids ...string) {
	if m.responses == nil {
		m.responses = make(map[string]struct{})
	}
	for i := range ids {
		m.responses[ids[i]] = struct{}{}
	}
}

// ClearResponses clears the "responses" edge to the SurveyResponse entity.
func (m *SurveyMutation) ClearResponses() {
	m.clearedresponses = true
}

// ResponsesCleared reports if the "responses" edge to the SurveyResponse entity was cleared.
func (m *SurveyMutation) ResponsesCleared() bool {
	return m.clearedresponses
}

// RemoveResponseIDs removes the "responses" edge to the SurveyResponse entity by IDs.
func (m *SurveyMutation) RemoveResponseIDs(ids ...string) {
	if m.removedresponses == nil {
		m.removedresponses = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.responses, ids[i])
		m.removedresponses[ids[i]] = struct{}{}
	}
}

// RemovedResponses returns the removed IDs of the "responses" edge to the SurveyResponse entity.
func (m *SurveyMutation) RemovedResponsesIDs() (ids []string) {
	for id := range m.removedresponses {
		ids = append(ids, id)
	}
	return
}

// ResponsesIDs returns the "responses" edge IDs in the mutation.
func (m *SurveyMutation) ResponsesIDs() (ids []string) {
	for id := range m.responses {
		ids = append(ids, id)
	}
	return
}

// ResetResponses resets all changes to the "responses" edge.
func (m *SurveyMutation) ResetResponses() {
	m.responses = nil
	m.clearedresponses = false
	m.removedresponses = nil
}

// Where appends a list predicates to the SurveyMutation builder.
func (m *SurveyMutation) Where(ps ...predicate.Survey) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SurveyMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SurveyMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Survey, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SurveyMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SurveyMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Survey).
func (m *SurveyMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SurveyMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.study != nil {
		fields = append(fields, survey.FieldStudyID)
	}
	if m.name != nil {
		fields = append(fields, survey.FieldName)
	}
	if m.questions != nil {
		fields = append(fields, survey.FieldQuestions)
	}
	if m.created_at != nil {
		fields = append(fields, survey.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SurveyMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case survey.FieldStudyID:
		return m.StudyID()
	case survey.FieldName:
		return m.Name()
	case survey.FieldQuestions:
		return m.Questions()
	case survey.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SurveyMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case survey.FieldStudyID:
		return m.OldStudyID(ctx)
	case survey.FieldName:
		return m.OldName(ctx)
	case survey.FieldQuestions:
		return m.OldQuestions(ctx)
	case survey.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Survey field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SurveyMutation) SetField(name string, value ent.Value) error {
	switch name {
	case survey.FieldStudyID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStudyID(v)
		return nil
	case survey.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case survey.FieldQuestions:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestions(v)
		return nil
	case survey.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Survey field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SurveyMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SurveyMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SurveyMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Survey numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SurveyMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(survey.FieldQuestions) {
		fields = append(fields, survey.FieldQuestions)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SurveyMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SurveyMutation) ClearField(name string) error {
	switch name {
	case survey.FieldQuestions:
		m.ClearQuestions()
		return nil
	}
	return fmt.Errorf("unknown Survey nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SurveyMutation) ResetField(name string) error {
	switch name {
	case survey.FieldStudyID:
		m.ResetStudyID()
		return nil
	case survey.FieldName:
		m.ResetName()
		return nil
	case survey.FieldQuestions:
		m.ResetQuestions()
		return nil
	case survey.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Survey field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SurveyMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.study != nil {
		edges = append(edges, survey.EdgeStudy)
	}
	if m.responses != nil {
		edges = append(edges, survey.EdgeResponses)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SurveyMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case survey.EdgeStudy:
		if id := m.study; id != nil {
			return []ent.Value{*id}
		}
	case survey.EdgeResponses:
		ids := make([]ent.Value, 0, len(m.responses))
		for id := range m.responses {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SurveyMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedresponses != nil {
		edges = append(edges, survey.EdgeResponses)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SurveyMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case survey.EdgeResponses:
		ids := make([]ent.Value, 0, len(m.removedresponses))
		for id := range m.removedresponses {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SurveyMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedstudy {
		edges = append(edges, survey.EdgeStudy)
	}
	if m.clearedresponses {
		edges = append(edges, survey.EdgeResponses)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SurveyMutation) EdgeCleared(name string) bool {
	switch name {
	case survey.EdgeStudy:
		return m.clearedstudy
	case survey.EdgeResponses:
		return m.clearedresponses
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SurveyMutation) ClearEdge(name string) error {
	switch name {
	case survey.EdgeStudy:
		m.ClearStudy()
		return nil
	}
	return fmt.Errorf("unknown Survey unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SurveyMutation) ResetEdge(name string) error {
	switch name {
	case survey.EdgeStudy:
		m.ResetStudy()
		return nil
	case survey.EdgeResponses:
		m.ResetResponses()
		return nil
	}
	return fmt.Errorf("unknown Survey edge %s", name)
}

// SurveyResponseMutation represents an operation that mutates the SurveyResponse nodes in the graph.
type SurveyResponseMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	responses          *map[string]interface{}
	submitted_at       *time.Time
	clearedFields      map[string]struct{}
	survey             *string
	clearedsurvey      bool
	participant        *string
	clearedparticipant bool
	done               bool
	oldValue           func(context.Context) (*SurveyResponse, error)
	predicates         []predicate.SurveyResponse
}

var _ ent.Mutation = (*SurveyResponseMutation)(nil)

// surveyresponseOption allows management of the mutation configuration using functional options.
type surveyresponseOption func(*SurveyResponseMutation)

// newSurveyResponseMutation creates new mutation for the SurveyResponse entity.
func newSurveyResponseMutation(c config, op Op, opts ...surveyresponseOption) *SurveyResponseMutation {
	m := &SurveyResponseMutation{
		config:        c,
		op:            op,
		typ:           TypeSurveyResponse,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSurveyResponseID sets the ID field of the mutation.
func withSurveyResponseID(id string) surveyresponseOption {
	return func(m *SurveyResponseMutation) {
		var (
			err   error
			once  sync.Once
			value *SurveyResponse
		)
		m.oldValue = func(ctx context.Context) (*SurveyResponse, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SurveyResponse.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSurveyResponse sets the old SurveyResponse of the mutation.
func withSurveyResponse(node *SurveyResponse) surveyresponseOption {
	return func(m *SurveyResponseMutation) {
		m.oldValue = func(context.Context) (*SurveyResponse, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SurveyResponseMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SurveyResponseMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of SurveyResponse entities.
func (m *SurveyResponseMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SurveyResponseMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SurveyResponseMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SurveyResponse.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSurveyID sets the "survey_id" field.
func (m *SurveyResponseMutation) SetSurveyID(s string) {
	m.survey = &s
}

// SurveyID returns the value of the "survey_id" field in the mutation.
func (m *SurveyResponseMutation) SurveyID() (r string, exists bool) {
	v := m.survey
	if v == nil {
		return
	}
	return *v, true
}

// OldSurveyID returns the old "survey_id" field's value of the SurveyResponse entity.
// If the SurveyResponse object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SurveyResponseMutation) OldSurveyID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSurveyID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSurveyID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSurveyID: %w", err)
	}
	return oldValue.SurveyID, nil
}

// ResetSurveyID resets all changes to the "survey_id" field.
func (m *SurveyResponseMutation) ResetSurveyID() {
	m.survey = nil
}

// SetParticipantID sets the "participant_id" field.
func (m *SurveyResponseMutation) SetParticipantID(s string) {
	m.participant = &s
}

// ParticipantID returns the value of the "participant_id" field in the mutation.
func (m *SurveyResponseMutation) ParticipantID() (r string, exists bool) {
	v := m.participant
	if v == nil {
		return
	}
	return *v, true
}

// OldParticipantID returns the old "participant_id" field's value of the SurveyResponse entity.
// If the SurveyResponse object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SurveyResponseMutation) OldParticipantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParticipantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParticipantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParticipantID: %w", err)
	}
	return oldValue.ParticipantID, nil
}

// ResetParticipantID resets all changes to the "participant_id" field.
func (m *SurveyResponseMutation) ResetParticipantID() {
	m.participant = nil
}

// SetResponses sets the "responses" field.
func (m *SurveyResponseMutation) SetResponses(value map[string]interface{}) {
	m.responses = &value
}

// Responses returns the value of the "responses" field in the mutation.
func (m *SurveyResponseMutation) Responses() (r map[string]interface{}, exists bool) {
	v := m.responses
	if v == nil {
		return
	}
	return *v, true
}

// OldResponses returns the old "responses" field's value of the SurveyResponse entity.
// If the SurveyResponse object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SurveyResponseMutation) OldResponses(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResponses is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResponses requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResponses: %w", err)
	}
	return oldValue.Responses, nil
}

// ResetResponses resets all changes to the "responses" field.
func (m *SurveyResponseMutation) ResetResponses() {
	m.responses = nil
}

// SetSubmittedAt sets the "submitted_at" field.
func (m *SurveyResponseMutation) SetSubmittedAt(t time.Time) {
	m.submitted_at = &t
}

// SubmittedAt returns the value of the "submitted_at" field in the mutation.
func (m *SurveyResponseMutation) SubmittedAt() (r time.Time, exists bool) {
	v := m.submitted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldSubmittedAt returns the old "submitted_at" field's value of the SurveyResponse entity.
// If the SurveyResponse object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SurveyResponseMutation) OldSubmittedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubmittedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubmittedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubmittedAt: %w", err)
	}
	return oldValue.SubmittedAt, nil
}

// ResetSubmittedAt resets all changes to the "submitted_at" field.
func (m *SurveyResponseMutation) ResetSubmittedAt() {
	m.submitted_at = nil
}

// ClearSurvey clears the "survey" edge to the Survey entity.
func (m *SurveyResponseMutation) ClearSurvey() {
	m.clearedsurvey = true
	m.clearedFields[surveyresponse.FieldSurveyID] = struct{}{}
}

// SurveyCleared reports if the "survey" edge to the Survey entity was cleared.
func (m *SurveyResponseMutation) SurveyCleared() bool {
	return m.clearedsurvey
}

// SurveyIDs returns the "survey" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SurveyID instead. It exists only for internal usage by the builders.
func (m *SurveyResponseMutation) SurveyIDs() (ids []string) {
	if id := m.survey; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSurvey resets all changes to the "survey" edge.
func (m *SurveyResponseMutation) ResetSurvey() {
	m.survey = nil
	m.clearedsurvey = false
}

// ClearParticipant clears the "participant" edge to the Participant entity.
func (m *SurveyResponseMutation) ClearParticipant() {
	m.clearedparticipant = true
	m.clearedFields[surveyresponse.FieldParticipantID] = struct{}{}
}

// ParticipantCleared reports if the "participant" edge to the Participant entity was cleared.
func (m *SurveyResponseMutation) ParticipantCleared() bool {
	return m.clearedparticipant
}

// ParticipantIDs returns the "participant" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ParticipantID instead. It exists only for internal usage by the builders.
func (m *SurveyResponseMutation) ParticipantIDs() (ids []string) {
	if id := m.participant; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetParticipant resets all changes to the "participant" edge.
func (m *SurveyResponseMutation) ResetParticipant() {
	m.participant = nil
	m.clearedparticipant = false
}

// Where appends a list predicates to the SurveyResponseMutation builder.
func (m *SurveyResponseMutation) Where(ps ...predicate.SurveyResponse) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SurveyResponseMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SurveyResponseMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SurveyResponse, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SurveyResponseMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SurveyResponseMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SurveyResponse).
func (m *SurveyResponseMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SurveyResponseMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.survey != nil {
		fields = append(fields, surveyresponse.FieldSurveyID)
	}
	if m.participant != nil {
		fields = append(fields, surveyresponse.FieldParticipantID)
	}
	if m.responses != nil {
		fields = append(fields, surveyresponse.FieldResponses)
	}
	if m.submitted_at != nil {
		fields = append(fields, surveyresponse.FieldSubmittedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SurveyResponseMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case surveyresponse.FieldSurveyID:
		return m.SurveyID()
	case surveyresponse.FieldParticipantID:
		return m.ParticipantID()
	case surveyresponse.FieldResponses:
		return m.Responses()
	case surveyresponse.FieldSubmittedAt:
		return m.SubmittedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SurveyResponseMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case surveyresponse.FieldSurveyID:
		return m.OldSurveyID(ctx)
	case surveyresponse.FieldParticipantID:
		return m.OldParticipantID(ctx)
	case surveyresponse.FieldResponses:
		return m.OldResponses(ctx)
	case surveyresponse.FieldSubmittedAt:
		return m.OldSubmittedAt(ctx)
	}
	return nil, fmt.Errorf("unknown SurveyResponse field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SurveyResponseMutation) SetField(name string, value ent.Value) error {
	switch name {
	case surveyresponse.FieldSurveyID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSurveyID(v)
		return nil
	case surveyresponse.FieldParticipantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParticipantID(v)
		return nil
	case surveyresponse.FieldResponses:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResponses(v)
		return nil
	case surveyresponse.FieldSubmittedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubmittedAt(v)
		return nil
	}
	return fmt.Errorf("unknown SurveyResponse field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SurveyResponseMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SurveyResponseMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SurveyResponseMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown SurveyResponse numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SurveyResponseMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SurveyResponseMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SurveyResponseMutation) ClearField(name string) error {
	return fmt.Errorf("unknown SurveyResponse nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SurveyResponseMutation) ResetField(name string) error {
	switch name {
	case surveyresponse.FieldSurveyID:
		m.ResetSurveyID()
		return nil
	case surveyresponse.FieldParticipantID:
		m.ResetParticipantID()
		return nil
	case surveyresponse.FieldResponses:
		m.ResetResponses()
		return nil
	case surveyresponse.FieldSubmittedAt:
		m.ResetSubmittedAt()
		return nil
	}
	return fmt.Errorf("unknown SurveyResponse field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SurveyResponseMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.survey != nil {
		edges = append(edges, surveyresponse.EdgeSurvey)
	}
	if m.participant != nil {
		edges = append(edges, surveyresponse.EdgeParticipant)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SurveyResponseMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case surveyresponse.EdgeSurvey:
		if id := m.survey; id != nil {
			return []ent.Value{*id}
		}
	case surveyresponse.EdgeParticipant:
		if id := m.participant; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SurveyResponseMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SurveyResponseMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SurveyResponseMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedsurvey {
		edges = append(edges, surveyresponse.EdgeSurvey)
	}
	if m.clearedparticipant {
		edges = append(edges, surveyresponse.EdgeParticipant)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SurveyResponseMutation) EdgeCleared(name string) bool {
	switch name {
	case surveyresponse.EdgeSurvey:
		return m.clearedsurvey
	case surveyresponse.EdgeParticipant:
		return m.clearedparticipant
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SurveyResponseMutation) ClearEdge(name string) error {
	switch name {
	case surveyresponse.EdgeSurvey:
		m.ClearSurvey()
		return nil
	case surveyresponse.EdgeParticipant:
		m.ClearParticipant()
		return nil
	}
	return fmt.Errorf("unknown SurveyResponse unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SurveyResponseMutation) ResetEdge(name string) error {
	switch name {
	case surveyresponse.EdgeSurvey:
		m.ResetSurvey()
		return nil
	case surveyresponse.EdgeParticipant:
		m.ResetParticipant()
		return nil
	}
	return fmt.Errorf("unknown SurveyResponse edge %s", name)
}
