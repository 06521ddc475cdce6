package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/dyadlab/fabula/ent"
	"github.com/dyadlab/fabula/ent/event"
	"github.com/dyadlab/fabula/pkg/models"
)

// EventService appends to and reads the per-participant journal. Rows are
// immutable; the journal is the ground truth for exports and analysis.
type EventService struct {
	client *ent.Client
}

// NewEventService creates a new EventService
func NewEventService(client *ent.Client) *EventService {
	return &EventService{client: client}
}

// Append writes one event for a participant.
func (s *EventService) Append(ctx context.Context, participantID string, eventType models.EventType, data map[string]any) (*models.Event, error) {
	row, err := s.client.Event.Create().
		SetID(uuid.NewString()).
		SetParticipantID(participantID).
		SetType(string(eventType)).
		SetData(data).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to append %s event for participant %s: %w", eventType, participantID, err)
	}
	return eventFromEnt(row), nil
}

// ListForParticipant returns a participant's events ordered by timestamp,
// optionally filtered by type.
func (s *EventService) ListForParticipant(ctx context.Context, participantID string, types ...models.EventType) ([]*models.Event, error) {
	q := s.client.Event.Query().
		Where(event.ParticipantIDEQ(participantID))
	if len(types) > 0 {
		names := make([]string, len(types))
		for i, t := range types {
			names[i] = string(t)
		}
		q = q.Where(event.TypeIn(names...))
	}
	rows, err := q.Order(ent.Asc(event.FieldTimestamp)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list events for participant %s: %w", participantID, err)
	}
	return eventsFromEnt(rows), nil
}

// ListForParticipants bulk-fetches events for many participants in one query,
// ordered by participant then timestamp. Used by the export worker to avoid
// per-participant round trips.
func (s *EventService) ListForParticipants(ctx context.Context, participantIDs []string, types ...models.EventType) ([]*models.Event, error) {
	if len(participantIDs) == 0 {
		return nil, nil
	}
	q := s.client.Event.Query().
		Where(event.ParticipantIDIn(participantIDs...))
	if len(types) > 0 {
		names := make([]string, len(types))
		for i, t := range types {
			names[i] = string(t)
		}
		q = q.Where(event.TypeIn(names...))
	}
	rows, err := q.Order(ent.Asc(event.FieldParticipantID), ent.Asc(event.FieldTimestamp)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to bulk list events: %w", err)
	}
	return eventsFromEnt(rows), nil
}

// CountForParticipant returns how many events a participant has, optionally
// filtered by type.
func (s *EventService) CountForParticipant(ctx context.Context, participantID string, types ...models.EventType) (int, error) {
	q := s.client.Event.Query().
		Where(event.ParticipantIDEQ(participantID))
	if len(types) > 0 {
		names := make([]string, len(types))
		for i, t := range types {
			names[i] = string(t)
		}
		q = q.Where(event.TypeIn(names...))
	}
	count, err := q.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count events for participant %s: %w", participantID, err)
	}
	return count, nil
}
