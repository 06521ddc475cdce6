package workers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dyadlab/fabula/pkg/broker"
	"github.com/dyadlab/fabula/pkg/models"
)

type recordingEnqueuer struct {
	queue string
	spec  broker.JobSpec
}

func (r *recordingEnqueuer) Enqueue(_ context.Context, queue string, spec broker.JobSpec) (string, error) {
	r.queue = queue
	r.spec = spec
	return spec.ID, nil
}

func (r *recordingEnqueuer) EnqueueBulk(_ context.Context, _ string, specs []broker.JobSpec) ([]string, error) {
	ids := make([]string, len(specs))
	for i, s := range specs {
		ids[i] = s.ID
	}
	return ids, nil
}

func TestPhaseEnqueuer(t *testing.T) {
	rec := &recordingEnqueuer{}
	e := PhaseEnqueuer{Broker: rec}

	payload := models.HybridSyntheticPhasePayload{
		SessionID:              "sess1",
		SyntheticParticipantID: "p-synth",
		HumanParticipantID:     "p-human",
		Phase:                  models.PhasePlay,
		Round:                  2,
	}
	require.NoError(t, e.EnqueueSyntheticPhase(context.Background(), payload))

	assert.Equal(t, models.QueueHybridSyntheticPhase, rec.queue)
	assert.Equal(t, "hybrid-sess1-p-synth-r2-play", rec.spec.ID)
	assert.Equal(t, int(models.PriorityRealTime), rec.spec.Priority)
}

func TestBatchPrefix(t *testing.T) {
	assert.Equal(t, "short", batchPrefix("short"))
	assert.Equal(t, "12345678", batchPrefix("123456789abcdef"))
	assert.Equal(t, "", batchPrefix(""))
}

func TestLastN(t *testing.T) {
	actions := []models.AgentAction{{Type: "a"}, {Type: "b"}, {Type: "c"}}

	assert.Equal(t, actions, lastN(actions, 5))
	assert.Equal(t, actions, lastN(actions, 3))

	tail := lastN(actions, 2)
	require.Len(t, tail, 2)
	assert.Equal(t, "b", tail[0].Type)
	assert.Equal(t, "c", tail[1].Type)

	assert.Empty(t, lastN(actions, 0))
}
