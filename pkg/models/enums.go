// Package models defines the engine's shared domain types: enums, job
// payloads, the study configuration document, agent context entries, and the
// structured actions exchanged with LLM-driven participants.
package models

import (
	"errors"
	"fmt"
)

// ErrNotImplemented is returned for reserved configuration values that are
// accepted by the schema but have no execution path (e.g. the "timed"
// execution mode).
var ErrNotImplemented = errors.New("not implemented")

// Phase is one stage of a collaborative round.
type Phase string

const (
	PhaseAuthor Phase = "author"
	PhasePlay   Phase = "play"
	PhaseReview Phase = "review"
)

// ValidPhase reports whether p is a known phase.
func ValidPhase(p Phase) bool {
	switch p {
	case PhaseAuthor, PhasePlay, PhaseReview:
		return true
	}
	return false
}

// DefaultPhases is the phase order used when a study config omits
// phases_per_round.
func DefaultPhases() []Phase {
	return []Phase{PhaseAuthor, PhasePlay, PhaseReview}
}

// ActorType distinguishes human participants from LLM-driven synthetic ones.
type ActorType string

const (
	ActorHuman     ActorType = "human"
	ActorSynthetic ActorType = "synthetic"
)

// ParticipantState is the lifecycle state of a participant row.
type ParticipantState string

const (
	ParticipantEnrolled  ParticipantState = "enrolled"
	ParticipantScheduled ParticipantState = "scheduled"
	ParticipantConfirmed ParticipantState = "confirmed"
	ParticipantCheckedIn ParticipantState = "checked_in"
	ParticipantActive    ParticipantState = "active"
	ParticipantComplete  ParticipantState = "complete"
	ParticipantWithdrawn ParticipantState = "withdrawn"
	ParticipantExcluded  ParticipantState = "excluded"
)

// Terminal reports whether the state ends a participant's run.
func (s ParticipantState) Terminal() bool {
	switch s {
	case ParticipantComplete, ParticipantWithdrawn, ParticipantExcluded:
		return true
	}
	return false
}

// ValidParticipantState rejects unknown values, including the legacy
// "completed" spelling that some historical writers produced. "complete" is
// canonical.
func ValidParticipantState(s ParticipantState) bool {
	switch s {
	case ParticipantEnrolled, ParticipantScheduled, ParticipantConfirmed,
		ParticipantCheckedIn, ParticipantActive, ParticipantComplete,
		ParticipantWithdrawn, ParticipantExcluded:
		return true
	}
	return false
}

// BatchStatus is the control status of a batch.
type BatchStatus string

const (
	BatchDraft    BatchStatus = "draft"
	BatchQueued   BatchStatus = "queued"
	BatchRunning  BatchStatus = "running"
	BatchPaused   BatchStatus = "paused"
	BatchComplete BatchStatus = "complete"
	BatchFailed   BatchStatus = "failed"
	BatchDeleting BatchStatus = "deleting"
)

// Terminal reports whether no further worker may mutate participant state on
// the batch's behalf.
func (s BatchStatus) Terminal() bool {
	switch s {
	case BatchComplete, BatchFailed, BatchDeleting:
		return true
	}
	return false
}

// EventType tags rows in the participant event journal.
type EventType string

const (
	EventSessionStart     EventType = "session_start"
	EventSessionEnd       EventType = "session_end"
	EventSyntheticAction  EventType = "synthetic_action"
	EventSyntheticError   EventType = "synthetic_error"
	EventSyntheticTimeout EventType = "synthetic_timeout"
	EventStateChange      EventType = "state_change"
	EventPhaseComplete    EventType = "phase_complete"
)

// CommentType classifies feedback comments.
type CommentType string

const (
	CommentFeedback   CommentType = "feedback"
	CommentPraise     CommentType = "praise"
	CommentSuggestion CommentType = "suggestion"
	CommentCritique   CommentType = "critique"
	CommentQuestion   CommentType = "question"
)

// ParseCommentType maps free-form LLM output to a comment type, defaulting to
// the generic "feedback" when the value is unknown.
func ParseCommentType(s string) CommentType {
	switch CommentType(s) {
	case CommentPraise, CommentSuggestion, CommentCritique, CommentQuestion, CommentFeedback:
		return CommentType(s)
	}
	return CommentFeedback
}

// ExecutionMode describes how a paired session runs.
type ExecutionMode string

const (
	// ModeSynchronous runs the whole session in one execution: both
	// participants synthetic.
	ModeSynchronous ExecutionMode = "synchronous"
	// ModeAsynchronous suspends between phase submissions: at least one
	// human participant.
	ModeAsynchronous ExecutionMode = "asynchronous"
	// ModeTimed is reserved; scheduling against wall-clock slots is not
	// implemented.
	ModeTimed ExecutionMode = "timed"
)

// PairingStrategy selects how unpaired participants are matched.
type PairingStrategy string

const (
	PairHumanHuman         PairingStrategy = "human_human"
	PairSyntheticSynthetic PairingStrategy = "synthetic_synthetic"
	PairHumanSynthetic     PairingStrategy = "human_synthetic"
	PairAuto               PairingStrategy = "auto"
)

// Participant roles.
const (
	RolePlayer        = "player"
	RoleCollaborative = "collaborative"
	RoleEvaluator     = "evaluator"
	RoleNavigator     = "navigator"
)

// Priority orders jobs within a queue; lower runs first.
type Priority int

const (
	PriorityRealTime Priority = 1
	PriorityHigh     Priority = 5
	PriorityNormal   Priority = 10
	PriorityLow      Priority = 20
)

// Queue names: stable identifiers shared with job producers.
const (
	QueueBatchCreation              = "batch-creation"
	QueueSyntheticExecution         = "synthetic-execution"
	QueueDataExport                 = "data-export"
	QueueCollaborativeBatchCreation = "collaborative-batch-creation"
	QueueCollaborativeSession       = "collaborative-session"
	QueueHybridSyntheticPhase       = "hybrid-session-synthetic-phase"
)

// ExportFormat selects the data-export output encoding.
type ExportFormat string

const (
	ExportJSON  ExportFormat = "json"
	ExportJSONL ExportFormat = "jsonl"
	ExportCSV   ExportFormat = "csv"
)

// ValidExportFormat reports whether f is a supported export format.
func ValidExportFormat(f ExportFormat) bool {
	switch f {
	case ExportJSON, ExportJSONL, ExportCSV:
		return true
	}
	return false
}

// CompletionStatus is the status of a single phase completion in a hybrid
// session.
type CompletionStatus string

const (
	CompletionPending    CompletionStatus = "pending"
	CompletionInProgress CompletionStatus = "in_progress"
	CompletionComplete   CompletionStatus = "complete"
	CompletionFailed     CompletionStatus = "failed"
)

// SessionStatus summarizes a collaborative session run.
type SessionStatus string

const (
	SessionComplete SessionStatus = "complete"
	SessionPartial  SessionStatus = "partial"
	SessionFailed   SessionStatus = "failed"
)

// JobStatus values returned by workers for jobs that finish without error but
// did not run to normal completion.
const (
	ResultStatusComplete = "complete"
	ResultStatusSkipped  = "skipped"
	ResultStatusTimeout  = "timeout"
	ResultStatusFailed   = "failed"
)

// ExecutionModeFor derives the session mode from the two actor types:
// synchronous iff both participants are purely synthetic.
func ExecutionModeFor(a, b ActorType) ExecutionMode {
	if a == ActorSynthetic && b == ActorSynthetic {
		return ModeSynchronous
	}
	return ModeAsynchronous
}

// ValidateEnum is a small helper producing a consistent error for bad enum
// values arriving in job payloads.
func ValidateEnum(field, value string, ok bool) error {
	if ok {
		return nil
	}
	return fmt.Errorf("invalid %s: %q", field, value)
}
