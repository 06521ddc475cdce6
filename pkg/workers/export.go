package workers

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/dyadlab/fabula/pkg/blob"
	"github.com/dyadlab/fabula/pkg/broker"
	"github.com/dyadlab/fabula/pkg/models"
)

// exportRecord is one participant's slice of the export document.
type exportRecord struct {
	Participant     *models.Participant      `json:"participant"`
	Events          []*models.Event          `json:"events,omitempty"`
	SurveyResponses []*models.SurveyResponse `json:"survey_responses,omitempty"`
	Stories         []*models.StoryArtifact  `json:"stories,omitempty"`
}

// exportDocument is the JSON export envelope.
type exportDocument struct {
	StudyID      string          `json:"study_id"`
	BatchID      string          `json:"batch_id"`
	ExportedAt   time.Time       `json:"exported_at"`
	Participants []*exportRecord `json:"participants"`
}

// HandleDataExport streams a batch's participants, journals, survey
// responses, and story metadata to the blob store. Reads are bulk queries,
// one per data family, regardless of batch size.
func (w *Workers) HandleDataExport(ctx context.Context, job *broker.Job) (map[string]any, error) {
	var payload models.ExportPayload
	if err := json.Unmarshal(job.Payload, &payload); err != nil {
		return nil, fmt.Errorf("invalid export payload: %w", err)
	}
	if err := payload.Validate(); err != nil {
		return nil, fmt.Errorf("invalid export payload: %w", err)
	}
	log := w.log.With("job_id", job.ID, "batch_id", payload.BatchID, "format", payload.Format)

	participants, err := w.participants.ListForBatch(ctx, payload.BatchID)
	if err != nil {
		return nil, broker.Retryable(err)
	}
	if len(payload.ParticipantIDs) > 0 {
		keep := make(map[string]bool, len(payload.ParticipantIDs))
		for _, id := range payload.ParticipantIDs {
			keep[id] = true
		}
		filtered := participants[:0]
		for _, p := range participants {
			if keep[p.ID] {
				filtered = append(filtered, p)
			}
		}
		participants = filtered
	}
	ids := make([]string, len(participants))
	for i, p := range participants {
		ids[i] = p.ID
	}
	job.ReportProgress(ctx, 10)

	records := make([]*exportRecord, len(participants))
	byID := make(map[string]*exportRecord, len(participants))
	for i, p := range participants {
		records[i] = &exportRecord{Participant: p}
		byID[p.ID] = records[i]
	}

	// The three data families land in disjoint record fields, so the bulk
	// reads run concurrently.
	g, gctx := errgroup.WithContext(ctx)
	if payload.Events() {
		g.Go(func() error {
			events, err := w.events.ListForParticipants(gctx, ids, payload.EventTypes...)
			if err != nil {
				return err
			}
			for _, ev := range events {
				if rec, ok := byID[ev.ParticipantID]; ok {
					rec.Events = append(rec.Events, ev)
				}
			}
			return nil
		})
	}
	if payload.Surveys() {
		g.Go(func() error {
			responses, err := w.surveys.ListForParticipants(gctx, ids)
			if err != nil {
				return err
			}
			for _, r := range responses {
				if rec, ok := byID[r.ParticipantID]; ok {
					rec.SurveyResponses = append(rec.SurveyResponses, r)
				}
			}
			return nil
		})
	}
	if payload.Stories() {
		g.Go(func() error {
			artifacts, err := w.artifacts.ListForParticipants(gctx, ids)
			if err != nil {
				return err
			}
			for _, a := range artifacts {
				if rec, ok := byID[a.ParticipantID]; ok {
					rec.Stories = append(rec.Stories, a)
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, broker.Retryable(err)
	}
	job.ReportProgress(ctx, 60)

	data, contentType, err := encodeExport(&payload, records)
	if err != nil {
		return nil, err
	}

	key := blob.ExportKey(payload.StudyID, payload.BatchID, string(payload.Format), time.Now())
	if err := w.blobs.Put(ctx, key, data, contentType); err != nil {
		return nil, broker.Retryable(fmt.Errorf("failed to upload export: %w", err))
	}
	if err := w.batches.SetExportPath(ctx, payload.BatchID, key); err != nil {
		return nil, broker.Retryable(err)
	}

	job.ReportProgress(ctx, 100)
	log.Info("Export written", "export_path", key,
		"participant_count", len(records), "bytes", len(data))
	return map[string]any{
		"status":            models.ResultStatusComplete,
		"export_path":       key,
		"participant_count": len(records),
		"bytes":             len(data),
	}, nil
}

func encodeExport(payload *models.ExportPayload, records []*exportRecord) ([]byte, string, error) {
	switch payload.Format {
	case models.ExportJSON:
		doc := exportDocument{
			StudyID:      payload.StudyID,
			BatchID:      payload.BatchID,
			ExportedAt:   time.Now(),
			Participants: records,
		}
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return nil, "", fmt.Errorf("failed to encode export: %w", err)
		}
		return data, "application/json", nil

	case models.ExportJSONL:
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		for _, rec := range records {
			if err := enc.Encode(rec); err != nil {
				return nil, "", fmt.Errorf("failed to encode export: %w", err)
			}
		}
		return buf.Bytes(), "application/x-ndjson", nil

	case models.ExportCSV:
		var buf bytes.Buffer
		cw := csv.NewWriter(&buf)
		header := []string{
			"participant_id", "unique_id", "actor_type", "state", "role",
			"partner_id", "event_count", "survey_response_count",
			"story_count", "completed_at",
		}
		if err := cw.Write(header); err != nil {
			return nil, "", fmt.Errorf("failed to encode export: %w", err)
		}
		for _, rec := range records {
			p := rec.Participant
			completedAt := ""
			if p.CompletedAt != nil {
				completedAt = p.CompletedAt.UTC().Format(time.RFC3339)
			}
			row := []string{
				p.ID,
				p.UniqueID,
				string(p.ActorType),
				string(p.State),
				p.Role,
				p.PartnerID,
				strconv.Itoa(len(rec.Events)),
				strconv.Itoa(len(rec.SurveyResponses)),
				strconv.Itoa(len(rec.Stories)),
				completedAt,
			}
			if err := cw.Write(row); err != nil {
				return nil, "", fmt.Errorf("failed to encode export: %w", err)
			}
		}
		cw.Flush()
		if err := cw.Error(); err != nil {
			return nil, "", fmt.Errorf("failed to encode export: %w", err)
		}
		return buf.Bytes(), "text/csv", nil
	}
	return nil, "", fmt.Errorf("unsupported export format %q", payload.Format)
}
