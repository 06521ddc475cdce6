package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/dyadlab/fabula/ent"
	"github.com/dyadlab/fabula/ent/agentcontext"
	"github.com/dyadlab/fabula/pkg/models"
)

// ContextService manages the per-participant agent context: the round/phase
// pointer and the five append-only lists. Every append is a serializable
// read-modify-write so concurrent appends never lose entries.
type ContextService struct {
	client *ent.Client
}

// NewContextService creates a new ContextService
func NewContextService(client *ent.Client) *ContextService {
	return &ContextService{client: client}
}

// GetOrCreate returns the participant's context, creating it at round 1,
// phase author with empty lists when absent.
func (s *ContextService) GetOrCreate(ctx context.Context, participantID string) (*models.AgentContext, error) {
	row, err := s.client.AgentContext.Query().
		Where(agentcontext.ParticipantIDEQ(participantID)).
		Only(ctx)
	if err == nil {
		return contextFromEnt(row), nil
	}
	if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to get context for participant %s: %w", participantID, err)
	}

	row, err = s.client.AgentContext.Create().
		SetID(uuid.NewString()).
		SetParticipantID(participantID).
		Save(ctx)
	if err != nil {
		// A concurrent creator may have won the unique-index race.
		if ent.IsConstraintError(err) {
			row, err = s.client.AgentContext.Query().
				Where(agentcontext.ParticipantIDEQ(participantID)).
				Only(ctx)
			if err == nil {
				return contextFromEnt(row), nil
			}
		}
		return nil, fmt.Errorf("failed to create context for participant %s: %w", participantID, err)
	}
	return contextFromEnt(row), nil
}

// UpdatePhase moves the participant's phase pointer.
func (s *ContextService) UpdatePhase(ctx context.Context, participantID string, phase models.Phase) error {
	if !models.ValidPhase(phase) {
		return fmt.Errorf("%w: phase %q", ErrInvalidInput, phase)
	}
	n, err := s.client.AgentContext.Update().
		Where(agentcontext.ParticipantIDEQ(participantID)).
		SetCurrentPhase(agentcontext.CurrentPhase(phase)).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to update phase for participant %s: %w", participantID, err)
	}
	if n == 0 {
		return fmt.Errorf("%w: context for participant %s", ErrNotFound, participantID)
	}
	return nil
}

// AdvanceRound atomically increments the round and resets the phase to
// author.
func (s *ContextService) AdvanceRound(ctx context.Context, participantID string) error {
	n, err := s.client.AgentContext.Update().
		Where(agentcontext.ParticipantIDEQ(participantID)).
		AddCurrentRound(1).
		SetCurrentPhase(agentcontext.CurrentPhase(models.PhaseAuthor)).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to advance round for participant %s: %w", participantID, err)
	}
	if n == 0 {
		return fmt.Errorf("%w: context for participant %s", ErrNotFound, participantID)
	}
	return nil
}

// AppendOwnDraft records a story the participant authored.
func (s *ContextService) AppendOwnDraft(ctx context.Context, participantID string, entry models.StoryDraftEntry) error {
	return s.appendList(ctx, participantID, func(row *ent.AgentContext, u *ent.AgentContextUpdateOne) {
		u.SetOwnStoryDrafts(append(row.OwnStoryDrafts, entry))
	})
}

// AppendPartnerStoryPlayed records a play-through of the partner's story.
func (s *ContextService) AppendPartnerStoryPlayed(ctx context.Context, participantID string, entry models.PartnerStoryEntry) error {
	return s.appendList(ctx, participantID, func(row *ent.AgentContext, u *ent.AgentContextUpdateOne) {
		u.SetPartnerStoriesPlayed(append(row.PartnerStoriesPlayed, entry))
	})
}

// AppendFeedbackGiven records feedback the participant gave.
func (s *ContextService) AppendFeedbackGiven(ctx context.Context, participantID string, entry models.FeedbackEntry) error {
	return s.appendList(ctx, participantID, func(row *ent.AgentContext, u *ent.AgentContextUpdateOne) {
		u.SetFeedbackGiven(append(row.FeedbackGiven, entry))
	})
}

// AppendFeedbackReceived records feedback the participant received.
func (s *ContextService) AppendFeedbackReceived(ctx context.Context, participantID string, entry models.FeedbackEntry) error {
	return s.appendList(ctx, participantID, func(row *ent.AgentContext, u *ent.AgentContextUpdateOne) {
		u.SetFeedbackReceived(append(row.FeedbackReceived, entry))
	})
}

// AppendLearning records an accumulated learning.
func (s *ContextService) AppendLearning(ctx context.Context, participantID string, entry models.LearningEntry) error {
	return s.appendList(ctx, participantID, func(row *ent.AgentContext, u *ent.AgentContextUpdateOne) {
		u.SetCumulativeLearnings(append(row.CumulativeLearnings, entry))
	})
}

// appendList runs one read-modify-write append under a serializable
// transaction, retried on serialization failure.
func (s *ContextService) appendList(ctx context.Context, participantID string, apply func(*ent.AgentContext, *ent.AgentContextUpdateOne)) error {
	return withSerializableTx(ctx, s.client, func(tx *ent.Tx) error {
		row, err := tx.AgentContext.Query().
			Where(agentcontext.ParticipantIDEQ(participantID)).
			Only(ctx)
		if err != nil {
			if ent.IsNotFound(err) {
				return fmt.Errorf("%w: context for participant %s", ErrNotFound, participantID)
			}
			return fmt.Errorf("failed to read context for participant %s: %w", participantID, err)
		}
		update := tx.AgentContext.UpdateOneID(row.ID)
		apply(row, update)
		if err := update.Exec(ctx); err != nil {
			return fmt.Errorf("failed to append to context of participant %s: %w", participantID, err)
		}
		return nil
	})
}
