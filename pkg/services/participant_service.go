package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dyadlab/fabula/ent"
	"github.com/dyadlab/fabula/ent/participant"
	"github.com/dyadlab/fabula/pkg/models"
)

// ParticipantService manages participant rows and their state machine.
type ParticipantService struct {
	client *ent.Client
}

// NewParticipantService creates a new ParticipantService
func NewParticipantService(client *ent.Client) *ParticipantService {
	return &ParticipantService{client: client}
}

// CreateParticipantInput describes one participant row to create.
type CreateParticipantInput struct {
	ID          string // empty means a random UUID
	StudyID     string
	BatchID     string
	ConditionID string
	UniqueID    string
	ActorType   models.ActorType // empty means synthetic
	Role        string
	PartnerID   string
	LLMConfig   *models.LLMConfig
	Metadata    map[string]any
}

// CreateBulk inserts participant rows in one statement. Batch workers
// pre-assign IDs so partner references can point at rows of the same bulk
// insert.
func (s *ParticipantService) CreateBulk(ctx context.Context, inputs []CreateParticipantInput) ([]*models.Participant, error) {
	if len(inputs) == 0 {
		return nil, nil
	}
	builders := make([]*ent.ParticipantCreate, len(inputs))
	for i, input := range inputs {
		if input.StudyID == "" {
			return nil, NewValidationError("study_id", "study id is required")
		}
		id := input.ID
		if id == "" {
			id = uuid.NewString()
		}
		actorType := input.ActorType
		if actorType == "" {
			actorType = models.ActorSynthetic
		}
		builder := s.client.Participant.Create().
			SetID(id).
			SetStudyID(input.StudyID).
			SetActorType(participant.ActorType(actorType))
		if input.BatchID != "" {
			builder = builder.SetBatchID(input.BatchID)
		}
		if input.ConditionID != "" {
			builder = builder.SetConditionID(input.ConditionID)
		}
		if input.UniqueID != "" {
			builder = builder.SetUniqueID(input.UniqueID)
		}
		if input.Role != "" {
			builder = builder.SetRole(input.Role)
		}
		if input.PartnerID != "" {
			builder = builder.SetPartnerID(input.PartnerID)
		}
		if input.LLMConfig != nil {
			builder = builder.SetLlmConfig(input.LLMConfig)
		}
		if input.Metadata != nil {
			builder = builder.SetMetadata(input.Metadata)
		}
		builders[i] = builder
	}
	rows, err := s.client.Participant.CreateBulk(builders...).Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to bulk create %d participants: %w", len(inputs), err)
	}
	out := make([]*models.Participant, len(rows))
	for i, row := range rows {
		out[i] = participantFromEnt(row)
	}
	return out, nil
}

// Get fetches a participant by ID.
func (s *ParticipantService) Get(ctx context.Context, id string) (*models.Participant, error) {
	row, err := s.client.Participant.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: participant %s", ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to get participant %s: %w", id, err)
	}
	return participantFromEnt(row), nil
}

// ListForBatch returns all participants of a batch.
func (s *ParticipantService) ListForBatch(ctx context.Context, batchID string) ([]*models.Participant, error) {
	rows, err := s.client.Participant.Query().
		Where(participant.BatchIDEQ(batchID)).
		Order(ent.Asc(participant.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list participants for batch %s: %w", batchID, err)
	}
	out := make([]*models.Participant, len(rows))
	for i, row := range rows {
		out[i] = participantFromEnt(row)
	}
	return out, nil
}

// UpdateStateWithEvent moves a participant to newState and appends a
// state_change event carrying the previous state; both inside one
// transaction, so the journal never disagrees with the row.
func (s *ParticipantService) UpdateStateWithEvent(ctx context.Context, id string, newState models.ParticipantState, eventData map[string]any) (*models.Participant, error) {
	if !models.ValidParticipantState(newState) {
		return nil, fmt.Errorf("%w: participant state %q", ErrInvalidInput, newState)
	}

	var updated *ent.Participant
	err := runTx(ctx, s.client, func(tx *ent.Tx) error {
		row, err := tx.Participant.Get(ctx, id)
		if err != nil {
			if ent.IsNotFound(err) {
				return fmt.Errorf("%w: participant %s", ErrNotFound, id)
			}
			return fmt.Errorf("failed to get participant %s: %w", id, err)
		}

		previous := string(row.State)
		update := row.Update().
			SetState(participant.State(newState))
		if newState.Terminal() && row.CompletedAt == nil {
			update = update.SetCompletedAt(time.Now())
		}
		updated, err = update.Save(ctx)
		if err != nil {
			return fmt.Errorf("failed to update participant %s state: %w", id, err)
		}

		data := map[string]any{
			"previous_state": previous,
			"new_state":      string(newState),
		}
		for k, v := range eventData {
			data[k] = v
		}
		if _, err := tx.Event.Create().
			SetID(uuid.NewString()).
			SetParticipantID(id).
			SetType(string(models.EventStateChange)).
			SetData(data).
			Save(ctx); err != nil {
			return fmt.Errorf("failed to append state_change event for participant %s: %w", id, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return participantFromEnt(updated), nil
}

// CountTerminalForBatch returns (terminal, total) participant counts for a
// batch. Terminal means complete or excluded.
func (s *ParticipantService) CountTerminalForBatch(ctx context.Context, batchID string) (terminal, total int, err error) {
	total, err = s.client.Participant.Query().
		Where(participant.BatchIDEQ(batchID)).
		Count(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to count batch %s participants: %w", batchID, err)
	}
	terminal, err = s.client.Participant.Query().
		Where(
			participant.BatchIDEQ(batchID),
			participant.StateIn(
				participant.State(models.ParticipantComplete),
				participant.State(models.ParticipantExcluded),
			),
		).
		Count(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to count terminal participants of batch %s: %w", batchID, err)
	}
	return terminal, total, nil
}
