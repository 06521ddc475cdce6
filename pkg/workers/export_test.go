package workers

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dyadlab/fabula/pkg/models"
)

func testExportRecords() []*exportRecord {
	completedAt := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	return []*exportRecord{
		{
			Participant: &models.Participant{
				ID:          "p1",
				UniqueID:    "batch001-1",
				ActorType:   models.ActorSynthetic,
				State:       models.ParticipantComplete,
				Role:        models.RolePlayer,
				CompletedAt: &completedAt,
			},
			Events: []*models.Event{
				{ID: "ev1", ParticipantID: "p1", Type: models.EventSessionStart},
				{ID: "ev2", ParticipantID: "p1", Type: models.EventSessionEnd},
			},
			Stories: []*models.StoryArtifact{
				{ID: "art1", ParticipantID: "p1", Version: 1},
			},
		},
		{
			Participant: &models.Participant{
				ID:        "p2",
				UniqueID:  "batch001-2",
				ActorType: models.ActorHuman,
				State:     models.ParticipantActive,
				Role:      models.RolePlayer,
			},
			SurveyResponses: []*models.SurveyResponse{
				{ID: "sr1", ParticipantID: "p2", SurveyID: "post"},
			},
		},
	}
}

func TestEncodeExport_JSON(t *testing.T) {
	payload := &models.ExportPayload{BatchID: "b1", StudyID: "s1", Format: models.ExportJSON}
	data, contentType, err := encodeExport(payload, testExportRecords())
	require.NoError(t, err)
	assert.Equal(t, "application/json", contentType)

	var doc exportDocument
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, "s1", doc.StudyID)
	assert.Equal(t, "b1", doc.BatchID)
	require.Len(t, doc.Participants, 2)
	assert.Equal(t, "p1", doc.Participants[0].Participant.ID)
	assert.Len(t, doc.Participants[0].Events, 2)
	assert.Len(t, doc.Participants[1].SurveyResponses, 1)
}

func TestEncodeExport_JSONL(t *testing.T) {
	payload := &models.ExportPayload{BatchID: "b1", StudyID: "s1", Format: models.ExportJSONL}
	data, contentType, err := encodeExport(payload, testExportRecords())
	require.NoError(t, err)
	assert.Equal(t, "application/x-ndjson", contentType)

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	require.Len(t, lines, 2)
	for _, line := range lines {
		var rec exportRecord
		require.NoError(t, json.Unmarshal([]byte(line), &rec))
		assert.NotNil(t, rec.Participant)
	}
}

func TestEncodeExport_CSV(t *testing.T) {
	payload := &models.ExportPayload{BatchID: "b1", StudyID: "s1", Format: models.ExportCSV}
	data, contentType, err := encodeExport(payload, testExportRecords())
	require.NoError(t, err)
	assert.Equal(t, "text/csv", contentType)

	rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, []string{
		"participant_id", "unique_id", "actor_type", "state", "role",
		"partner_id", "event_count", "survey_response_count",
		"story_count", "completed_at",
	}, rows[0])
	assert.Equal(t, []string{
		"p1", "batch001-1", "synthetic", "complete", "player",
		"", "2", "0", "1", "2026-02-01T12:00:00Z",
	}, rows[1])
	assert.Equal(t, []string{
		"p2", "batch001-2", "human", "active", "player",
		"", "0", "1", "0", "",
	}, rows[2])
}

func TestEncodeExport_UnsupportedFormat(t *testing.T) {
	payload := &models.ExportPayload{BatchID: "b1", StudyID: "s1", Format: "parquet"}
	_, _, err := encodeExport(payload, nil)
	assert.Error(t, err)
}
