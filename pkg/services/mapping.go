package services

import (
	"github.com/dyadlab/fabula/ent"
	"github.com/dyadlab/fabula/pkg/models"
)

// Conversions from ent rows to the models types workers and orchestrators
// consume. Kept in one place so schema renames have a single blast radius.

func participantFromEnt(row *ent.Participant) *models.Participant {
	p := &models.Participant{
		ID:              row.ID,
		StudyID:         row.StudyID,
		UniqueID:        row.UniqueID,
		ActorType:       models.ActorType(row.ActorType),
		State:           models.ParticipantState(row.State),
		Role:            row.Role,
		LLMConfig:       row.LlmConfig,
		Availability:    row.Availability,
		PairingMetadata: row.PairingMetadata,
		Metadata:        row.Metadata,
		CompletedAt:     row.CompletedAt,
	}
	if row.BatchID != nil {
		p.BatchID = *row.BatchID
	}
	if row.ConditionID != nil {
		p.ConditionID = *row.ConditionID
	}
	if row.PartnerID != nil {
		p.PartnerID = *row.PartnerID
	}
	return p
}

func commentFromEnt(row *ent.Comment) *models.Comment {
	c := &models.Comment{
		ID:                  row.ID,
		AuthorID:            row.AuthorID,
		TargetParticipantID: row.TargetParticipantID,
		Content:             row.Content,
		Type:                models.CommentType(row.Type),
		Round:               row.Round,
		Phase:               models.Phase(row.Phase),
		Resolved:            row.Resolved,
		CreatedAt:           row.CreatedAt,
	}
	if row.StoryArtifactID != nil {
		c.StoryArtifactID = *row.StoryArtifactID
	}
	if row.PassageID != nil {
		c.PassageID = *row.PassageID
	}
	if row.ParentID != nil {
		c.ParentID = *row.ParentID
	}
	if row.AddressedInRound != nil {
		c.AddressedInRound = *row.AddressedInRound
	}
	return c
}

func commentsFromEnt(rows []*ent.Comment) []*models.Comment {
	out := make([]*models.Comment, len(rows))
	for i, row := range rows {
		out[i] = commentFromEnt(row)
	}
	return out
}

func artifactFromEnt(row *ent.StoryArtifact) *models.StoryArtifact {
	return &models.StoryArtifact{
		ID:            row.ID,
		ParticipantID: row.ParticipantID,
		PluginType:    row.PluginType,
		Version:       row.Version,
		BlobKey:       row.BlobKey,
		Bucket:        row.Bucket,
		Status:        string(row.Status),
		Name:          row.Name,
		Description:   row.Description,
		Round:         row.Round,
		CreatedAt:     row.CreatedAt,
	}
}

func eventFromEnt(row *ent.Event) *models.Event {
	return &models.Event{
		ID:            row.ID,
		ParticipantID: row.ParticipantID,
		Type:          models.EventType(row.Type),
		Data:          row.Data,
		Timestamp:     row.Timestamp,
	}
}

func eventsFromEnt(rows []*ent.Event) []*models.Event {
	out := make([]*models.Event, len(rows))
	for i, row := range rows {
		out[i] = eventFromEnt(row)
	}
	return out
}

func contextFromEnt(row *ent.AgentContext) *models.AgentContext {
	return &models.AgentContext{
		ParticipantID:        row.ParticipantID,
		CurrentRound:         row.CurrentRound,
		CurrentPhase:         models.Phase(row.CurrentPhase),
		OwnStoryDrafts:       row.OwnStoryDrafts,
		PartnerStoriesPlayed: row.PartnerStoriesPlayed,
		FeedbackGiven:        row.FeedbackGiven,
		FeedbackReceived:     row.FeedbackReceived,
		CumulativeLearnings:  row.CumulativeLearnings,
	}
}
