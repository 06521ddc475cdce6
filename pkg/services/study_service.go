package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/dyadlab/fabula/ent"
	"github.com/dyadlab/fabula/ent/agentcontext"
	"github.com/dyadlab/fabula/ent/batch"
	"github.com/dyadlab/fabula/ent/comment"
	"github.com/dyadlab/fabula/ent/condition"
	"github.com/dyadlab/fabula/ent/event"
	"github.com/dyadlab/fabula/ent/hybridsession"
	"github.com/dyadlab/fabula/ent/participant"
	"github.com/dyadlab/fabula/ent/storyartifact"
	"github.com/dyadlab/fabula/ent/survey"
	"github.com/dyadlab/fabula/ent/surveyresponse"
	"github.com/dyadlab/fabula/pkg/models"
)

// StudyService manages the study container and its factorial design.
type StudyService struct {
	client *ent.Client
}

// NewStudyService creates a new StudyService
func NewStudyService(client *ent.Client) *StudyService {
	return &StudyService{client: client}
}

// ConditionInput describes one design cell at study creation.
type ConditionInput struct {
	Name       string
	Parameters map[string]any
}

// SurveyInput describes one survey instrument at study creation.
type SurveyInput struct {
	Name      string
	Questions []map[string]any
}

// CreateStudyInput is the payload for CreateStudyWithRelations.
type CreateStudyInput struct {
	Name        string
	Description string
	OwnerID     string
	Config      *models.StudyConfig
	Conditions  []ConditionInput
	Surveys     []SurveyInput
}

// CreateStudyWithRelations atomically creates a study together with its
// conditions and surveys.
func (s *StudyService) CreateStudyWithRelations(ctx context.Context, input CreateStudyInput) (*ent.Study, error) {
	if input.Name == "" {
		return nil, NewValidationError("name", "study name is required")
	}
	var configMap map[string]interface{}
	if input.Config != nil {
		if err := input.Config.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		raw, err := json.Marshal(input.Config)
		if err != nil {
			return nil, fmt.Errorf("failed to encode study config: %w", err)
		}
		if err := json.Unmarshal(raw, &configMap); err != nil {
			return nil, fmt.Errorf("failed to encode study config: %w", err)
		}
	}

	var created *ent.Study
	err := runTx(ctx, s.client, func(tx *ent.Tx) error {
		builder := tx.Study.Create().
			SetID(uuid.NewString()).
			SetName(input.Name).
			SetDescription(input.Description)
		if input.OwnerID != "" {
			builder = builder.SetOwnerID(input.OwnerID)
		}
		if configMap != nil {
			builder = builder.SetConfig(configMap)
		}
		study, err := builder.Save(ctx)
		if err != nil {
			return fmt.Errorf("failed to create study: %w", err)
		}

		for _, c := range input.Conditions {
			if _, err := tx.Condition.Create().
				SetID(uuid.NewString()).
				SetStudyID(study.ID).
				SetName(c.Name).
				SetParameters(c.Parameters).
				Save(ctx); err != nil {
				return fmt.Errorf("failed to create condition %q: %w", c.Name, err)
			}
		}
		for _, sv := range input.Surveys {
			if _, err := tx.Survey.Create().
				SetID(uuid.NewString()).
				SetStudyID(study.ID).
				SetName(sv.Name).
				SetQuestions(sv.Questions).
				Save(ctx); err != nil {
				return fmt.Errorf("failed to create survey %q: %w", sv.Name, err)
			}
		}
		created = study
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Get fetches a study by ID.
func (s *StudyService) Get(ctx context.Context, id string) (*ent.Study, error) {
	study, err := s.client.Study.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: study %s", ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to get study %s: %w", id, err)
	}
	return study, nil
}

// Config returns the parsed study configuration document.
func (s *StudyService) Config(ctx context.Context, id string) (*models.StudyConfig, error) {
	study, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if study.Config == nil {
		return nil, fmt.Errorf("%w: study %s has no config", ErrInvalidInput, id)
	}
	raw, err := json.Marshal(study.Config)
	if err != nil {
		return nil, fmt.Errorf("failed to read study %s config: %w", id, err)
	}
	cfg, err := models.ParseStudyConfig(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: study %s config: %v", ErrInvalidInput, id, err)
	}
	return cfg, nil
}

// DeleteStudyWithRelations removes a study and everything it owns. Refuses
// with ErrConflict while any participant is mid-run (active, scheduled,
// confirmed, or checked in). Children are deleted leaf-first so foreign keys
// hold at every step.
func (s *StudyService) DeleteStudyWithRelations(ctx context.Context, id string) error {
	return runTx(ctx, s.client, func(tx *ent.Tx) error {
		if _, err := tx.Study.Get(ctx, id); err != nil {
			if ent.IsNotFound(err) {
				return fmt.Errorf("%w: study %s", ErrNotFound, id)
			}
			return fmt.Errorf("failed to get study %s: %w", id, err)
		}

		blocked, err := tx.Participant.Query().
			Where(
				participant.StudyIDEQ(id),
				participant.StateIn(
					participant.State(models.ParticipantActive),
					participant.State(models.ParticipantScheduled),
					participant.State(models.ParticipantConfirmed),
					participant.State(models.ParticipantCheckedIn),
				),
			).
			Count(ctx)
		if err != nil {
			return fmt.Errorf("failed to check active participants of study %s: %w", id, err)
		}
		if blocked > 0 {
			return fmt.Errorf("%w: study %s has %d participants mid-run", ErrConflict, id, blocked)
		}

		participantIDs, err := tx.Participant.Query().
			Where(participant.StudyIDEQ(id)).
			IDs(ctx)
		if err != nil {
			return fmt.Errorf("failed to list participants of study %s: %w", id, err)
		}

		if len(participantIDs) > 0 {
			if _, err := tx.Event.Delete().
				Where(event.ParticipantIDIn(participantIDs...)).
				Exec(ctx); err != nil {
				return fmt.Errorf("failed to delete events of study %s: %w", id, err)
			}
			if _, err := tx.SurveyResponse.Delete().
				Where(surveyresponse.ParticipantIDIn(participantIDs...)).
				Exec(ctx); err != nil {
				return fmt.Errorf("failed to delete survey responses of study %s: %w", id, err)
			}
			if _, err := tx.Comment.Delete().
				Where(comment.Or(
					comment.AuthorIDIn(participantIDs...),
					comment.TargetParticipantIDIn(participantIDs...),
				)).
				Exec(ctx); err != nil {
				return fmt.Errorf("failed to delete comments of study %s: %w", id, err)
			}
			if _, err := tx.StoryArtifact.Delete().
				Where(storyartifact.ParticipantIDIn(participantIDs...)).
				Exec(ctx); err != nil {
				return fmt.Errorf("failed to delete story artifacts of study %s: %w", id, err)
			}
			if _, err := tx.AgentContext.Delete().
				Where(agentcontext.ParticipantIDIn(participantIDs...)).
				Exec(ctx); err != nil {
				return fmt.Errorf("failed to delete agent contexts of study %s: %w", id, err)
			}
			if _, err := tx.Participant.Delete().
				Where(participant.StudyIDEQ(id)).
				Exec(ctx); err != nil {
				return fmt.Errorf("failed to delete participants of study %s: %w", id, err)
			}
		}

		if _, err := tx.HybridSession.Delete().
			Where(hybridsession.StudyIDEQ(id)).
			Exec(ctx); err != nil {
			return fmt.Errorf("failed to delete hybrid sessions of study %s: %w", id, err)
		}
		if _, err := tx.Condition.Delete().
			Where(condition.StudyIDEQ(id)).
			Exec(ctx); err != nil {
			return fmt.Errorf("failed to delete conditions of study %s: %w", id, err)
		}
		if _, err := tx.Survey.Delete().
			Where(survey.StudyIDEQ(id)).
			Exec(ctx); err != nil {
			return fmt.Errorf("failed to delete surveys of study %s: %w", id, err)
		}
		if _, err := tx.Batch.Delete().
			Where(batch.StudyIDEQ(id)).
			Exec(ctx); err != nil {
			return fmt.Errorf("failed to delete batches of study %s: %w", id, err)
		}
		if err := tx.Study.DeleteOneID(id).Exec(ctx); err != nil {
			return fmt.Errorf("failed to delete study %s: %w", id, err)
		}
		return nil
	})
}
