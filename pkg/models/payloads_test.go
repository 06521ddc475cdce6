package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func testLLMConfig() *LLMConfig {
	return &LLMConfig{Provider: "anthropic", Model: "claude-sonnet-4-5", Temperature: 0.7}
}

func TestTaskConfig_Defaults(t *testing.T) {
	var nilCfg *TaskConfig
	assert.Equal(t, "twine", nilCfg.EffectivePluginType())
	assert.Equal(t, DefaultMaxActions, nilCfg.EffectiveMaxActions())
	assert.Equal(t, DefaultTimeout, nilCfg.EffectiveTimeout())

	cfg := &TaskConfig{PluginType: "custom", MaxActions: 10, TimeoutMs: 1500}
	assert.Equal(t, "custom", cfg.EffectivePluginType())
	assert.Equal(t, 10, cfg.EffectiveMaxActions())
	assert.Equal(t, 1500*time.Millisecond, cfg.EffectiveTimeout())
}

func TestBatchCreationPayload_Validate(t *testing.T) {
	valid := BatchCreationPayload{BatchID: "b1", StudyID: "s1", ActorCount: 3, LLMConfig: testLLMConfig()}
	assert.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*BatchCreationPayload)
	}{
		{"missing batch", func(p *BatchCreationPayload) { p.BatchID = "" }},
		{"missing study", func(p *BatchCreationPayload) { p.StudyID = "" }},
		{"zero actors", func(p *BatchCreationPayload) { p.ActorCount = 0 }},
		{"nil llm config", func(p *BatchCreationPayload) { p.LLMConfig = nil }},
		{"temperature out of range", func(p *BatchCreationPayload) { p.LLMConfig = &LLMConfig{Provider: "openai", Model: "gpt-4o", Temperature: 3} }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := valid
			tt.mutate(&p)
			assert.Error(t, p.Validate())
		})
	}
}

func TestCollaborativeBatchPayload_Validate(t *testing.T) {
	valid := CollaborativeBatchPayload{BatchID: "b1", StudyID: "s1", PairCount: 2, LLMConfig: testLLMConfig()}
	assert.NoError(t, valid.Validate())

	varied := valid
	varied.VaryPartnerConfig = true
	assert.Error(t, varied.Validate(), "varied partner config requires partner_llm_config")

	varied.PartnerLLMConfig = testLLMConfig()
	assert.NoError(t, varied.Validate())
}

func TestCollaborativeSessionPayload_Validate(t *testing.T) {
	valid := CollaborativeSessionPayload{StudyID: "s1", ParticipantA: "p1", ParticipantB: "p2"}
	assert.NoError(t, valid.Validate())

	same := valid
	same.ParticipantB = "p1"
	assert.Error(t, same.Validate())

	missing := valid
	missing.ParticipantB = ""
	assert.Error(t, missing.Validate())
}

func TestHybridSyntheticPhasePayload_Validate(t *testing.T) {
	valid := HybridSyntheticPhasePayload{
		SessionID:              "sess1",
		SyntheticParticipantID: "p-synth",
		HumanParticipantID:     "p-human",
		Phase:                  PhaseAuthor,
		Round:                  1,
		LLMConfig:              testLLMConfig(),
	}
	assert.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*HybridSyntheticPhasePayload)
	}{
		{"missing session", func(p *HybridSyntheticPhasePayload) { p.SessionID = "" }},
		{"missing human", func(p *HybridSyntheticPhasePayload) { p.HumanParticipantID = "" }},
		{"bad phase", func(p *HybridSyntheticPhasePayload) { p.Phase = "edit" }},
		{"zero round", func(p *HybridSyntheticPhasePayload) { p.Round = 0 }},
		{"negative delay", func(p *HybridSyntheticPhasePayload) { p.ResponseDelayMs = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := valid
			tt.mutate(&p)
			assert.Error(t, p.Validate())
		})
	}
}

func TestExportPayload_Validate(t *testing.T) {
	valid := ExportPayload{BatchID: "b1", StudyID: "s1", Format: ExportJSONL}
	assert.NoError(t, valid.Validate())

	bad := valid
	bad.Format = "xml"
	assert.Error(t, bad.Validate())
}

func TestExportPayload_IncludeDefaults(t *testing.T) {
	p := ExportPayload{}
	assert.True(t, p.Events())
	assert.True(t, p.Surveys())
	assert.True(t, p.Stories())

	no := false
	p.IncludeEvents = &no
	assert.False(t, p.Events())
	assert.True(t, p.Surveys())
}

func TestEffectivePriority(t *testing.T) {
	assert.Equal(t, PriorityRealTime, EffectivePriority(PriorityRealTime))
	assert.Equal(t, PriorityLow, EffectivePriority(PriorityLow))
	assert.Equal(t, PriorityNormal, EffectivePriority(0))
	assert.Equal(t, PriorityNormal, EffectivePriority(Priority(42)))
}

func TestJobIDHelpers(t *testing.T) {
	assert.Equal(t, "exec-b1-p1", SyntheticExecutionJobID("b1", "p1"))
	assert.Equal(t, "collab-b1-p1", CollaborativeSessionJobID("b1", "p1"))
	assert.Equal(t, "hybrid-sess1-p2-r3-review", HybridPhaseJobID("sess1", "p2", 3, PhaseReview))
}
