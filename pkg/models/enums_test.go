package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidParticipantState(t *testing.T) {
	assert.True(t, ValidParticipantState(ParticipantEnrolled))
	assert.True(t, ValidParticipantState(ParticipantComplete))

	// The legacy "completed" spelling is rejected; "complete" is canonical.
	assert.False(t, ValidParticipantState(ParticipantState("completed")))
	assert.False(t, ValidParticipantState(ParticipantState("")))
}

func TestParticipantState_Terminal(t *testing.T) {
	assert.True(t, ParticipantComplete.Terminal())
	assert.True(t, ParticipantWithdrawn.Terminal())
	assert.True(t, ParticipantExcluded.Terminal())
	assert.False(t, ParticipantActive.Terminal())
	assert.False(t, ParticipantEnrolled.Terminal())
}

func TestBatchStatus_Terminal(t *testing.T) {
	assert.True(t, BatchComplete.Terminal())
	assert.True(t, BatchFailed.Terminal())
	assert.True(t, BatchDeleting.Terminal())
	assert.False(t, BatchRunning.Terminal())
	assert.False(t, BatchPaused.Terminal())
}

func TestParseCommentType(t *testing.T) {
	assert.Equal(t, CommentPraise, ParseCommentType("praise"))
	assert.Equal(t, CommentCritique, ParseCommentType("critique"))
	assert.Equal(t, CommentFeedback, ParseCommentType("observation"))
	assert.Equal(t, CommentFeedback, ParseCommentType(""))
}

func TestExecutionModeFor(t *testing.T) {
	assert.Equal(t, ModeSynchronous, ExecutionModeFor(ActorSynthetic, ActorSynthetic))
	assert.Equal(t, ModeAsynchronous, ExecutionModeFor(ActorHuman, ActorSynthetic))
	assert.Equal(t, ModeAsynchronous, ExecutionModeFor(ActorSynthetic, ActorHuman))
	assert.Equal(t, ModeAsynchronous, ExecutionModeFor(ActorHuman, ActorHuman))
}

func TestValidExportFormat(t *testing.T) {
	assert.True(t, ValidExportFormat(ExportJSON))
	assert.True(t, ValidExportFormat(ExportJSONL))
	assert.True(t, ValidExportFormat(ExportCSV))
	assert.False(t, ValidExportFormat(ExportFormat("parquet")))
}

func TestValidateEnum(t *testing.T) {
	assert.NoError(t, ValidateEnum("phase", "author", true))
	err := ValidateEnum("phase", "edit", false)
	assert.EqualError(t, err, `invalid phase: "edit"`)
}
