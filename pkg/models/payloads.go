package models

import (
	"fmt"
	"time"
)

// Job payloads, one per queue. Payloads are strictly validated on dequeue;
// a failed Validate is a terminal job failure.

// Default task limits for synthetic execution.
const (
	DefaultMaxActions = 100
	DefaultTimeout    = 5 * time.Minute
)

// TaskConfig bounds a synthetic participant's play-through.
type TaskConfig struct {
	PluginType string `json:"plugin_type,omitempty"` // default "twine"
	StoryID    string `json:"story_id,omitempty"`
	MaxActions int    `json:"max_actions,omitempty"`
	TimeoutMs  int    `json:"timeout_ms,omitempty"`
}

// EffectivePluginType returns the plugin type, defaulting to "twine".
func (t *TaskConfig) EffectivePluginType() string {
	if t == nil || t.PluginType == "" {
		return "twine"
	}
	return t.PluginType
}

// EffectiveMaxActions returns the action cap, defaulting to 100.
func (t *TaskConfig) EffectiveMaxActions() int {
	if t == nil || t.MaxActions <= 0 {
		return DefaultMaxActions
	}
	return t.MaxActions
}

// EffectiveTimeout returns the wall-clock deadline, defaulting to 5 minutes.
func (t *TaskConfig) EffectiveTimeout() time.Duration {
	if t == nil || t.TimeoutMs <= 0 {
		return DefaultTimeout
	}
	return time.Duration(t.TimeoutMs) * time.Millisecond
}

// BatchCreationPayload materializes a batch into N single-actor participants.
type BatchCreationPayload struct {
	BatchID           string     `json:"batch_id"`
	StudyID           string     `json:"study_id"`
	ActorCount        int        `json:"actor_count"`
	Role              string     `json:"role,omitempty"`
	LLMConfig         *LLMConfig `json:"llm_config"`
	ConditionID       string     `json:"condition_id,omitempty"`
	AgentDefinitionID string     `json:"agent_definition_id,omitempty"`
	TaskConfig        *TaskConfig `json:"task_config,omitempty"`
	Priority          Priority   `json:"priority,omitempty"`
}

// Validate checks required fields.
func (p *BatchCreationPayload) Validate() error {
	if p.BatchID == "" {
		return fmt.Errorf("batch_id is required")
	}
	if p.StudyID == "" {
		return fmt.Errorf("study_id is required")
	}
	if p.ActorCount < 1 {
		return fmt.Errorf("actor_count must be >= 1")
	}
	if err := p.LLMConfig.Validate(); err != nil {
		return err
	}
	return nil
}

// CollaborativeBatchPayload materializes a batch into N synthetic pairs.
type CollaborativeBatchPayload struct {
	BatchID          string     `json:"batch_id"`
	StudyID          string     `json:"study_id"`
	PairCount        int        `json:"pair_count"`
	LLMConfig        *LLMConfig `json:"llm_config"`
	PartnerLLMConfig *LLMConfig `json:"partner_llm_config,omitempty"`
	VaryPartnerConfig bool      `json:"vary_partner_config,omitempty"`
	ConditionID      string     `json:"condition_id,omitempty"`
	Priority         Priority   `json:"priority,omitempty"`
}

// Validate checks required fields.
func (p *CollaborativeBatchPayload) Validate() error {
	if p.BatchID == "" {
		return fmt.Errorf("batch_id is required")
	}
	if p.StudyID == "" {
		return fmt.Errorf("study_id is required")
	}
	if p.PairCount < 1 {
		return fmt.Errorf("pair_count must be >= 1")
	}
	if err := p.LLMConfig.Validate(); err != nil {
		return err
	}
	if p.VaryPartnerConfig {
		if err := p.PartnerLLMConfig.Validate(); err != nil {
			return fmt.Errorf("partner_llm_config: %w", err)
		}
	}
	return nil
}

// SyntheticExecutionPayload drives one synthetic participant through a
// single-actor study.
type SyntheticExecutionPayload struct {
	ParticipantID    string      `json:"participant_id"`
	ConditionID      string      `json:"condition_id,omitempty"`
	BatchExecutionID string      `json:"batch_execution_id,omitempty"`
	TaskConfig       *TaskConfig `json:"task_config,omitempty"`
	Priority         Priority    `json:"priority,omitempty"`
}

// Validate checks required fields.
func (p *SyntheticExecutionPayload) Validate() error {
	if p.ParticipantID == "" {
		return fmt.Errorf("participant_id is required")
	}
	return nil
}

// CollaborativeSessionPayload runs one all-synthetic pair synchronously.
type CollaborativeSessionPayload struct {
	BatchID        string   `json:"batch_id"`
	StudyID        string   `json:"study_id"`
	ParticipantA   string   `json:"participant_a"`
	ParticipantB   string   `json:"participant_b"`
	Priority       Priority `json:"priority,omitempty"`
}

// Validate checks required fields.
func (p *CollaborativeSessionPayload) Validate() error {
	if p.StudyID == "" {
		return fmt.Errorf("study_id is required")
	}
	if p.ParticipantA == "" || p.ParticipantB == "" {
		return fmt.Errorf("both participants are required")
	}
	if p.ParticipantA == p.ParticipantB {
		return fmt.Errorf("participants must be distinct")
	}
	return nil
}

// HybridSyntheticPhasePayload executes one synthetic phase of a hybrid
// session after the human partner completed theirs.
type HybridSyntheticPhasePayload struct {
	SessionID              string     `json:"session_id"`
	SyntheticParticipantID string     `json:"synthetic_participant_id"`
	HumanParticipantID     string     `json:"human_participant_id"`
	Phase                  Phase      `json:"phase"`
	Round                  int        `json:"round"`
	LLMConfig              *LLMConfig `json:"llm_config"`
	ResponseDelayMs        int        `json:"response_delay_ms,omitempty"`
	Priority               Priority   `json:"priority,omitempty"`
}

// Validate checks required fields.
func (p *HybridSyntheticPhasePayload) Validate() error {
	if p.SessionID == "" {
		return fmt.Errorf("session_id is required")
	}
	if p.SyntheticParticipantID == "" || p.HumanParticipantID == "" {
		return fmt.Errorf("both participant ids are required")
	}
	if !ValidPhase(p.Phase) {
		return fmt.Errorf("invalid phase: %q", p.Phase)
	}
	if p.Round < 1 {
		return fmt.Errorf("round must be >= 1")
	}
	if err := p.LLMConfig.Validate(); err != nil {
		return err
	}
	if p.ResponseDelayMs < 0 {
		return fmt.Errorf("response_delay_ms must be >= 0")
	}
	return nil
}

// ExportPayload streams a batch's data to the blob store.
type ExportPayload struct {
	BatchID                string       `json:"batch_id"`
	StudyID                string       `json:"study_id"`
	Format                 ExportFormat `json:"format"`
	IncludeEvents          *bool        `json:"include_events,omitempty"`           // default true
	IncludeSurveyResponses *bool        `json:"include_survey_responses,omitempty"` // default true
	IncludeStoryData       *bool        `json:"include_story_data,omitempty"`       // default true
	ParticipantIDs         []string     `json:"participant_ids,omitempty"`
	EventTypes             []EventType  `json:"event_types,omitempty"`
	Priority               Priority     `json:"priority,omitempty"`
}

// Validate checks required fields.
func (p *ExportPayload) Validate() error {
	if p.BatchID == "" {
		return fmt.Errorf("batch_id is required")
	}
	if p.StudyID == "" {
		return fmt.Errorf("study_id is required")
	}
	if !ValidExportFormat(p.Format) {
		return fmt.Errorf("invalid format: %q", p.Format)
	}
	return nil
}

// Events reports whether event rows are included (default true).
func (p *ExportPayload) Events() bool { return p.IncludeEvents == nil || *p.IncludeEvents }

// Surveys reports whether survey responses are included (default true).
func (p *ExportPayload) Surveys() bool {
	return p.IncludeSurveyResponses == nil || *p.IncludeSurveyResponses
}

// Stories reports whether story artifact metadata is included (default true).
func (p *ExportPayload) Stories() bool { return p.IncludeStoryData == nil || *p.IncludeStoryData }

// EffectivePriority returns the payload priority, defaulting to normal.
func EffectivePriority(p Priority) Priority {
	switch p {
	case PriorityRealTime, PriorityHigh, PriorityNormal, PriorityLow:
		return p
	}
	return PriorityNormal
}

// SyntheticExecutionJobID builds the idempotency key for a participant's
// execution job.
func SyntheticExecutionJobID(batchID, participantID string) string {
	return fmt.Sprintf("exec-%s-%s", batchID, participantID)
}

// CollaborativeSessionJobID builds the idempotency key for a pair's session
// job.
func CollaborativeSessionJobID(batchID, participantA string) string {
	return fmt.Sprintf("collab-%s-%s", batchID, participantA)
}

// HybridPhaseJobID builds the idempotency key for one synthetic phase of a
// hybrid session. Re-signaling the same phase is a no-op enqueue.
func HybridPhaseJobID(sessionID, participantID string, round int, phase Phase) string {
	return fmt.Sprintf("hybrid-%s-%s-r%d-%s", sessionID, participantID, round, phase)
}
