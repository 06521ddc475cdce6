package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/dyadlab/fabula/ent"
	"github.com/dyadlab/fabula/ent/surveyresponse"
	"github.com/dyadlab/fabula/pkg/models"
)

// SurveyService records and reads participant survey responses.
type SurveyService struct {
	client *ent.Client
}

// NewSurveyService creates a new SurveyService
func NewSurveyService(client *ent.Client) *SurveyService {
	return &SurveyService{client: client}
}

// SubmitResponse stores one participant's answers for a survey.
func (s *SurveyService) SubmitResponse(ctx context.Context, surveyID, participantID string, responses map[string]any) (*models.SurveyResponse, error) {
	if len(responses) == 0 {
		return nil, NewValidationError("responses", "survey responses are required")
	}
	row, err := s.client.SurveyResponse.Create().
		SetID(uuid.NewString()).
		SetSurveyID(surveyID).
		SetParticipantID(participantID).
		SetResponses(responses).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to submit survey response: %w", err)
	}
	return surveyResponseFromEnt(row), nil
}

// ListForParticipants bulk-fetches responses for many participants in one
// query. Used by the export worker.
func (s *SurveyService) ListForParticipants(ctx context.Context, participantIDs []string) ([]*models.SurveyResponse, error) {
	if len(participantIDs) == 0 {
		return nil, nil
	}
	rows, err := s.client.SurveyResponse.Query().
		Where(surveyresponse.ParticipantIDIn(participantIDs...)).
		Order(ent.Asc(surveyresponse.FieldParticipantID), ent.Asc(surveyresponse.FieldSubmittedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to bulk list survey responses: %w", err)
	}
	out := make([]*models.SurveyResponse, len(rows))
	for i, row := range rows {
		out[i] = surveyResponseFromEnt(row)
	}
	return out, nil
}

func surveyResponseFromEnt(row *ent.SurveyResponse) *models.SurveyResponse {
	return &models.SurveyResponse{
		ID:            row.ID,
		ParticipantID: row.ParticipantID,
		SurveyID:      row.SurveyID,
		Responses:     row.Responses,
		SubmittedAt:   row.SubmittedAt,
	}
}
