package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/dyadlab/fabula/ent"
	"github.com/dyadlab/fabula/ent/storyartifact"
	"github.com/dyadlab/fabula/pkg/blob"
	"github.com/dyadlab/fabula/pkg/models"
)

// ArtifactService persists versioned story documents: JSON in the blob
// store, metadata rows in the database. Version allocation happens in the
// same serializable transaction as the row insert, so versions stay dense
// per (participant, plugin type) even under concurrent saves.
type ArtifactService struct {
	client *ent.Client
	blobs  blob.Store
}

// NewArtifactService creates a new ArtifactService
func NewArtifactService(client *ent.Client, blobs blob.Store) *ArtifactService {
	return &ArtifactService{client: client, blobs: blobs}
}

// storyBlob is the JSON document written to the blob store. Field names
// match models.CreateStoryParams so LoadStory can decode directly.
type storyBlob struct {
	Passages     []models.Passage `json:"passages"`
	StartPassage string           `json:"start_passage"`
	Title        string           `json:"title,omitempty"`
	StorySummary string           `json:"story_summary,omitempty"`
	Round        int              `json:"round,omitempty"`
	CreatedAt    time.Time        `json:"created_at"`
}

// SaveStory uploads a validated story document and inserts its artifact row
// with the next dense version. On row-insert failure the just-written blob
// is deleted best-effort and the original error is returned.
func (s *ArtifactService) SaveStory(ctx context.Context, participantID, pluginType string, round int, doc *models.CreateStoryParams) (*models.StoryArtifact, error) {
	if pluginType == "" {
		return nil, NewValidationError("plugin_type", "plugin type is required")
	}
	if err := doc.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	var saved *ent.StoryArtifact
	err := withSerializableTx(ctx, s.client, func(tx *ent.Tx) error {
		maxVersion, err := tx.StoryArtifact.Query().
			Where(
				storyartifact.ParticipantIDEQ(participantID),
				storyartifact.PluginTypeEQ(pluginType),
			).
			Aggregate(ent.Max(storyartifact.FieldVersion)).
			Int(ctx)
		if err != nil && !ent.IsNotFound(err) {
			return fmt.Errorf("failed to read max story version: %w", err)
		}
		version := maxVersion + 1

		now := time.Now()
		key := blob.StoryKey(participantID, pluginType, version, now)
		payload, err := json.Marshal(storyBlob{
			Passages:     doc.Passages,
			StartPassage: doc.StartPassage,
			Title:        doc.Title,
			StorySummary: doc.StorySummary,
			Round:        round,
			CreatedAt:    now,
		})
		if err != nil {
			return fmt.Errorf("failed to encode story document: %w", err)
		}
		if err := s.blobs.Put(ctx, key, payload, "application/json"); err != nil {
			return fmt.Errorf("failed to upload story blob: %w", err)
		}

		builder := tx.StoryArtifact.Create().
			SetID(uuid.NewString()).
			SetParticipantID(participantID).
			SetPluginType(pluginType).
			SetVersion(version).
			SetBlobKey(key).
			SetBucket(s.blobs.Bucket()).
			SetStatus(storyartifact.Status(models.ArtifactConfirmed)).
			SetName(doc.Title).
			SetDescription(doc.StorySummary)
		if round > 0 {
			builder = builder.SetRound(round)
		}
		saved, err = builder.Save(ctx)
		if err != nil {
			// The transaction rolls back; the blob must not survive it.
			if delErr := s.blobs.Delete(context.WithoutCancel(ctx), key); delErr != nil {
				slog.Warn("Failed to delete orphaned story blob",
					"blob_key", key, "error", delErr)
			}
			return fmt.Errorf("failed to insert story artifact: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return artifactFromEnt(saved), nil
}

// Get fetches an artifact by ID.
func (s *ArtifactService) Get(ctx context.Context, id string) (*models.StoryArtifact, error) {
	row, err := s.client.StoryArtifact.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: story artifact %s", ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to get story artifact %s: %w", id, err)
	}
	return artifactFromEnt(row), nil
}

// FindForRound returns the participant's story artifact for the given round,
// newest version first.
func (s *ArtifactService) FindForRound(ctx context.Context, participantID string, round int) (*models.StoryArtifact, error) {
	row, err := s.client.StoryArtifact.Query().
		Where(
			storyartifact.ParticipantIDEQ(participantID),
			storyartifact.RoundEQ(round),
		).
		Order(ent.Desc(storyartifact.FieldVersion)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: story for participant %s round %d", ErrNotFound, participantID, round)
		}
		return nil, fmt.Errorf("failed to find story for participant %s round %d: %w", participantID, round, err)
	}
	return artifactFromEnt(row), nil
}

// ListForParticipants bulk-fetches artifact metadata for many participants.
// Used by the export worker.
func (s *ArtifactService) ListForParticipants(ctx context.Context, participantIDs []string) ([]*models.StoryArtifact, error) {
	if len(participantIDs) == 0 {
		return nil, nil
	}
	rows, err := s.client.StoryArtifact.Query().
		Where(storyartifact.ParticipantIDIn(participantIDs...)).
		Order(ent.Asc(storyartifact.FieldParticipantID), ent.Asc(storyartifact.FieldVersion)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to bulk list story artifacts: %w", err)
	}
	out := make([]*models.StoryArtifact, len(rows))
	for i, row := range rows {
		out[i] = artifactFromEnt(row)
	}
	return out, nil
}

// LoadStory downloads and decodes an artifact's story document.
func (s *ArtifactService) LoadStory(ctx context.Context, artifactID string) (*models.CreateStoryParams, error) {
	artifact, err := s.Get(ctx, artifactID)
	if err != nil {
		return nil, err
	}
	data, err := s.blobs.Get(ctx, artifact.BlobKey)
	if err != nil {
		return nil, fmt.Errorf("failed to download story %s: %w", artifactID, err)
	}
	var doc models.CreateStoryParams
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode story %s: %w", artifactID, err)
	}
	return &doc, nil
}

// PresignedUpload allocates the next version as a pending artifact and
// returns a presigned URL for a direct client upload.
type PresignedUpload struct {
	ArtifactID string        `json:"artifact_id"`
	URL        string        `json:"url"`
	BlobKey    string        `json:"blob_key"`
	Version    int           `json:"version"`
	ExpiresIn  time.Duration `json:"expires_in"`
}

// PresignUpload reserves a pending artifact version and presigns its upload
// URL. The artifact stays pending until ConfirmUpload verifies the object.
func (s *ArtifactService) PresignUpload(ctx context.Context, participantID, pluginType string, round int, expires time.Duration) (*PresignedUpload, error) {
	if pluginType == "" {
		pluginType = "twine"
	}
	if expires <= 0 {
		expires = 15 * time.Minute
	}

	var artifactID, key string
	var version int
	err := withSerializableTx(ctx, s.client, func(tx *ent.Tx) error {
		maxVersion, err := tx.StoryArtifact.Query().
			Where(
				storyartifact.ParticipantIDEQ(participantID),
				storyartifact.PluginTypeEQ(pluginType),
			).
			Aggregate(ent.Max(storyartifact.FieldVersion)).
			Int(ctx)
		if err != nil && !ent.IsNotFound(err) {
			return fmt.Errorf("failed to read max story version: %w", err)
		}
		version = maxVersion + 1
		key = blob.StoryKey(participantID, pluginType, version, time.Now())

		builder := tx.StoryArtifact.Create().
			SetID(uuid.NewString()).
			SetParticipantID(participantID).
			SetPluginType(pluginType).
			SetVersion(version).
			SetBlobKey(key).
			SetBucket(s.blobs.Bucket()).
			SetStatus(storyartifact.Status(models.ArtifactPending))
		if round > 0 {
			builder = builder.SetRound(round)
		}
		row, err := builder.Save(ctx)
		if err != nil {
			return fmt.Errorf("failed to reserve story artifact version: %w", err)
		}
		artifactID = row.ID
		return nil
	})
	if err != nil {
		return nil, err
	}

	url, err := s.blobs.PresignPut(ctx, key, expires)
	if err != nil {
		return nil, fmt.Errorf("failed to presign upload for artifact %s: %w", artifactID, err)
	}
	return &PresignedUpload{
		ArtifactID: artifactID,
		URL:        url,
		BlobKey:    key,
		Version:    version,
		ExpiresIn:  expires,
	}, nil
}

// ConfirmUpload verifies the uploaded object exists and flips the artifact
// to confirmed.
func (s *ArtifactService) ConfirmUpload(ctx context.Context, artifactID string) error {
	artifact, err := s.Get(ctx, artifactID)
	if err != nil {
		return err
	}
	exists, err := s.blobs.Exists(ctx, artifact.BlobKey)
	if err != nil {
		return fmt.Errorf("failed to check upload of artifact %s: %w", artifactID, err)
	}
	if !exists {
		return fmt.Errorf("%w: no object uploaded for artifact %s", ErrConflict, artifactID)
	}
	if err := s.client.StoryArtifact.UpdateOneID(artifactID).
		SetStatus(storyartifact.Status(models.ArtifactConfirmed)).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to confirm artifact %s: %w", artifactID, err)
	}
	return nil
}
