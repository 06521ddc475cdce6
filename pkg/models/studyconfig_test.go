package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStudyConfig_Defaults(t *testing.T) {
	cfg, err := ParseStudyConfig([]byte(`{}`))
	require.NoError(t, err)

	assert.Equal(t, []Phase{PhaseAuthor, PhasePlay, PhaseReview}, cfg.Phases())
	assert.Equal(t, 1, cfg.Rounds())
	assert.Equal(t, 20, cfg.PlayActionLimit())
	assert.False(t, cfg.FeedbackRequired())
	assert.Equal(t, 0, cfg.TimeLimitFor(PhaseAuthor))
}

func TestParseStudyConfig_Collaboration(t *testing.T) {
	raw := []byte(`{
		"executionMode": "asynchronous",
		"maxPlayActions": 5,
		"phaseTimeLimits": {"author": 1800},
		"collaboration": {
			"enabled": true,
			"rounds": 3,
			"phasesPerRound": ["author", "review"],
			"feedbackRequired": true
		}
	}`)

	cfg, err := ParseStudyConfig(raw)
	require.NoError(t, err)

	assert.Equal(t, ModeAsynchronous, cfg.ExecutionMode)
	assert.Equal(t, 3, cfg.Rounds())
	assert.Equal(t, []Phase{PhaseAuthor, PhaseReview}, cfg.Phases())
	assert.True(t, cfg.FeedbackRequired())
	assert.Equal(t, 5, cfg.PlayActionLimit())
	assert.Equal(t, 1800, cfg.TimeLimitFor(PhaseAuthor))
	assert.Equal(t, 0, cfg.TimeLimitFor(PhasePlay))
}

func TestParseStudyConfig_TimedModeNotImplemented(t *testing.T) {
	_, err := ParseStudyConfig([]byte(`{"executionMode": "timed"}`))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotImplemented)
}

func TestParseStudyConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"bad execution mode", `{"executionMode": "batch"}`},
		{"negative play actions", `{"maxPlayActions": -1}`},
		{"unknown phase limit", `{"phaseTimeLimits": {"edit": 60}}`},
		{"zero rounds", `{"collaboration": {"enabled": true, "rounds": 0}}`},
		{"unknown phase in round", `{"collaboration": {"enabled": true, "rounds": 1, "phasesPerRound": ["draft"]}}`},
		{"unknown pairing method", `{"collaboration": {"enabled": true, "rounds": 1, "pairingMethod": "random"}}`},
		{"not json", `{`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseStudyConfig([]byte(tt.raw))
			assert.Error(t, err)
		})
	}
}

func TestParseStudyConfig_DisabledCollaborationSkipsValidation(t *testing.T) {
	// A disabled block is ignored even when its fields would not validate.
	cfg, err := ParseStudyConfig([]byte(`{"collaboration": {"enabled": false, "rounds": 0}}`))
	require.NoError(t, err)
	assert.Equal(t, 1, cfg.Rounds())
}

func TestStudyConfig_ExtraFieldsRoundTrip(t *testing.T) {
	raw := []byte(`{
		"humanRole": "author",
		"consentForm": {"version": 2},
		"recruitmentNotes": "pilot cohort"
	}`)

	cfg, err := ParseStudyConfig(raw)
	require.NoError(t, err)
	require.Contains(t, cfg.Extra, "consentForm")
	require.Contains(t, cfg.Extra, "recruitmentNotes")

	out, err := json.Marshal(cfg)
	require.NoError(t, err)

	var merged map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(out, &merged))
	assert.JSONEq(t, `{"version": 2}`, string(merged["consentForm"]))
	assert.JSONEq(t, `"pilot cohort"`, string(merged["recruitmentNotes"]))
	assert.JSONEq(t, `"author"`, string(merged["humanRole"]))
}

func TestStudyConfig_MarshalTypedFieldsWin(t *testing.T) {
	cfg := &StudyConfig{
		HumanRole: "navigator",
		Extra: map[string]json.RawMessage{
			"humanRole": json.RawMessage(`"stale"`),
		},
	}

	out, err := json.Marshal(cfg)
	require.NoError(t, err)

	var merged map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(out, &merged))
	assert.JSONEq(t, `"navigator"`, string(merged["humanRole"]))
}
