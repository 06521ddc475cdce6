package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dyadlab/fabula/ent"
	"github.com/dyadlab/fabula/ent/hybridsession"
	"github.com/dyadlab/fabula/pkg/models"
)

// SessionService persists hybrid session state machines. The row is
// authoritative; orchestrator memory is a reconstructable cache.
type SessionService struct {
	client *ent.Client
}

// NewSessionService creates a new SessionService
func NewSessionService(client *ent.Client) *SessionService {
	return &SessionService{client: client}
}

// Create inserts a new session row. Creating an existing session ID fails
// with ErrConflict.
func (s *SessionService) Create(ctx context.Context, state *models.HybridSessionState) error {
	var configMap map[string]interface{}
	if state.Config != nil {
		raw, err := json.Marshal(state.Config)
		if err != nil {
			return fmt.Errorf("failed to encode session config: %w", err)
		}
		if err := json.Unmarshal(raw, &configMap); err != nil {
			return fmt.Errorf("failed to encode session config: %w", err)
		}
	}

	builder := s.client.HybridSession.Create().
		SetID(state.SessionID).
		SetStudyID(state.StudyID).
		SetParticipantA(state.ParticipantA).
		SetParticipantB(state.ParticipantB).
		SetActorTypeA(hybridsession.ActorTypeA(state.ActorTypeA)).
		SetActorTypeB(hybridsession.ActorTypeB(state.ActorTypeB)).
		SetCompletions(state.Completions)
	if configMap != nil {
		builder = builder.SetConfig(configMap)
	}
	if err := builder.Exec(ctx); err != nil {
		if ent.IsConstraintError(err) {
			return fmt.Errorf("%w: session %s already exists", ErrConflict, state.SessionID)
		}
		return fmt.Errorf("failed to create hybrid session %s: %w", state.SessionID, err)
	}
	return nil
}

// Get loads a session's persisted state.
func (s *SessionService) Get(ctx context.Context, sessionID string) (*models.HybridSessionState, error) {
	row, err := s.client.HybridSession.Get(ctx, sessionID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: hybrid session %s", ErrNotFound, sessionID)
		}
		return nil, fmt.Errorf("failed to get hybrid session %s: %w", sessionID, err)
	}
	return sessionFromEnt(row)
}

// FindForParticipant returns the most recent open session the participant
// belongs to.
func (s *SessionService) FindForParticipant(ctx context.Context, participantID string) (*models.HybridSessionState, error) {
	row, err := s.client.HybridSession.Query().
		Where(
			hybridsession.Or(
				hybridsession.ParticipantAEQ(participantID),
				hybridsession.ParticipantBEQ(participantID),
			),
			hybridsession.CompletedAtIsNil(),
		).
		Order(ent.Desc(hybridsession.FieldStartedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: open session for participant %s", ErrNotFound, participantID)
		}
		return nil, fmt.Errorf("failed to find session for participant %s: %w", participantID, err)
	}
	return sessionFromEnt(row)
}

// Mutate applies fn to the session state under a serializable transaction
// and persists the result. fn sees the latest persisted state; concurrent
// mutations retry rather than interleave.
func (s *SessionService) Mutate(ctx context.Context, sessionID string, fn func(*models.HybridSessionState) error) (*models.HybridSessionState, error) {
	var result *models.HybridSessionState
	err := withSerializableTx(ctx, s.client, func(tx *ent.Tx) error {
		row, err := tx.HybridSession.Get(ctx, sessionID)
		if err != nil {
			if ent.IsNotFound(err) {
				return fmt.Errorf("%w: hybrid session %s", ErrNotFound, sessionID)
			}
			return fmt.Errorf("failed to get hybrid session %s: %w", sessionID, err)
		}
		state, err := sessionFromEnt(row)
		if err != nil {
			return err
		}
		if err := fn(state); err != nil {
			return err
		}

		update := tx.HybridSession.UpdateOneID(sessionID).
			SetCompletions(state.Completions)
		if state.CompletedAt != nil && row.CompletedAt == nil {
			update = update.SetCompletedAt(*state.CompletedAt)
		}
		if err := update.Exec(ctx); err != nil {
			return fmt.Errorf("failed to persist hybrid session %s: %w", sessionID, err)
		}
		result = state
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// MarkComplete stamps the session's completion time.
func (s *SessionService) MarkComplete(ctx context.Context, sessionID string) error {
	err := s.client.HybridSession.UpdateOneID(sessionID).
		SetCompletedAt(time.Now()).
		Exec(ctx)
	if ent.IsNotFound(err) {
		return fmt.Errorf("%w: hybrid session %s", ErrNotFound, sessionID)
	}
	if err != nil {
		return fmt.Errorf("failed to complete hybrid session %s: %w", sessionID, err)
	}
	return nil
}

func sessionFromEnt(row *ent.HybridSession) (*models.HybridSessionState, error) {
	state := &models.HybridSessionState{
		SessionID:    row.ID,
		StudyID:      row.StudyID,
		ParticipantA: row.ParticipantA,
		ParticipantB: row.ParticipantB,
		ActorTypeA:   models.ActorType(row.ActorTypeA),
		ActorTypeB:   models.ActorType(row.ActorTypeB),
		Completions:  row.Completions,
		StartedAt:    row.StartedAt,
		CompletedAt:  row.CompletedAt,
	}
	if row.Config != nil {
		raw, err := json.Marshal(row.Config)
		if err != nil {
			return nil, fmt.Errorf("failed to read config of session %s: %w", row.ID, err)
		}
		cfg, err := models.ParseStudyConfig(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: session %s config: %v", ErrInvalidInput, row.ID, err)
		}
		state.Config = cfg
	}
	return state, nil
}
