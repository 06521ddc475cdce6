// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/dyadlab/fabula/ent/agentcontext"
	"github.com/dyadlab/fabula/ent/batch"
	"github.com/dyadlab/fabula/ent/comment"
	"github.com/dyadlab/fabula/ent/condition"
	"github.com/dyadlab/fabula/ent/event"
	"github.com/dyadlab/fabula/ent/hybridsession"
	"github.com/dyadlab/fabula/ent/job"
	"github.com/dyadlab/fabula/ent/participant"
	"github.com/dyadlab/fabula/ent/schema"
	"github.com/dyadlab/fabula/ent/storyartifact"
	"github.com/dyadlab/fabula/ent/study"
	"github.com/dyadlab/fabula/ent/survey"
	"github.com/dyadlab/fabula/ent/surveyresponse"
	"github.com/dyadlab/fabula/pkg/models"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	agentcontextFields := schema.AgentContext{}.Fields()
	_ = agentcontextFields
	// agentcontextDescCurrentRound is the schema descriptor for current_round field.
	agentcontextDescCurrentRound := agentcontextFields[2].Descriptor()
	// agentcontext.DefaultCurrentRound holds the default value on creation for the current_round field.
	agentcontext.DefaultCurrentRound = agentcontextDescCurrentRound.Default.(int)
	// agentcontextDescOwnStoryDrafts is the schema descriptor for own_story_drafts field.
	agentcontextDescOwnStoryDrafts := agentcontextFields[4].Descriptor()
	// agentcontext.DefaultOwnStoryDrafts holds the default value on creation for the own_story_drafts field.
	agentcontext.DefaultOwnStoryDrafts = agentcontextDescOwnStoryDrafts.Default.([]models.StoryDraftEntry)
	// agentcontextDescPartnerStoriesPlayed is the schema descriptor for partner_stories_played field.
	agentcontextDescPartnerStoriesPlayed := agentcontextFields[5].Descriptor()
	// agentcontext.DefaultPartnerStoriesPlayed holds the default value on creation for the partner_stories_played field.
	agentcontext.DefaultPartnerStoriesPlayed = agentcontextDescPartnerStoriesPlayed.Default.([]models.PartnerStoryEntry)
	// agentcontextDescFeedbackGiven is the schema descriptor for feedback_given field.
	agentcontextDescFeedbackGiven := agentcontextFields[6].Descriptor()
	// agentcontext.DefaultFeedbackGiven holds the default value on creation for the feedback_given field.
	agentcontext.DefaultFeedbackGiven = agentcontextDescFeedbackGiven.Default.([]models.FeedbackEntry)
	// agentcontextDescFeedbackReceived is the schema descriptor for feedback_received field.
	agentcontextDescFeedbackReceived := agentcontextFields[7].Descriptor()
	// agentcontext.DefaultFeedbackReceived holds the default value on creation for the feedback_received field.
	agentcontext.DefaultFeedbackReceived = agentcontextDescFeedbackReceived.Default.([]models.FeedbackEntry)
	// agentcontextDescCumulativeLearnings is the schema descriptor for cumulative_learnings field.
	agentcontextDescCumulativeLearnings := agentcontextFields[8].Descriptor()
	// agentcontext.DefaultCumulativeLearnings holds the default value on creation for the cumulative_learnings field.
	agentcontext.DefaultCumulativeLearnings = agentcontextDescCumulativeLearnings.Default.([]models.LearningEntry)
	// agentcontextDescCreatedAt is the schema descriptor for created_at field.
	agentcontextDescCreatedAt := agentcontextFields[9].Descriptor()
	// agentcontext.DefaultCreatedAt holds the default value on creation for the created_at field.
	agentcontext.DefaultCreatedAt = agentcontextDescCreatedAt.Default.(func() time.Time)
	// agentcontextDescUpdatedAt is the schema descriptor for updated_at field.
	agentcontextDescUpdatedAt := agentcontextFields[10].Descriptor()
	// agentcontext.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	agentcontext.DefaultUpdatedAt = agentcontextDescUpdatedAt.Default.(func() time.Time)
	// agentcontext.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	agentcontext.UpdateDefaultUpdatedAt = agentcontextDescUpdatedAt.UpdateDefault.(func() time.Time)
	batchFields := schema.Batch{}.Fields()
	_ = batchFields
	// batchDescActorsCreated is the schema descriptor for actors_created field.
	batchDescActorsCreated := batchFields[4].Descriptor()
	// batch.DefaultActorsCreated holds the default value on creation for the actors_created field.
	batch.DefaultActorsCreated = batchDescActorsCreated.Default.(int)
	// batchDescActorsCompleted is the schema descriptor for actors_completed field.
	batchDescActorsCompleted := batchFields[5].Descriptor()
	// batch.DefaultActorsCompleted holds the default value on creation for the actors_completed field.
	batch.DefaultActorsCompleted = batchDescActorsCompleted.Default.(int)
	// batchDescCreatedAt is the schema descriptor for created_at field.
	batchDescCreatedAt := batchFields[9].Descriptor()
	// batch.DefaultCreatedAt holds the default value on creation for the created_at field.
	batch.DefaultCreatedAt = batchDescCreatedAt.Default.(func() time.Time)
	commentFields := schema.Comment{}.Fields()
	_ = commentFields
	// commentDescResolved is the schema descriptor for resolved field.
	commentDescResolved := commentFields[10].Descriptor()
	// comment.DefaultResolved holds the default value on creation for the resolved field.
	comment.DefaultResolved = commentDescResolved.Default.(bool)
	// commentDescCreatedAt is the schema descriptor for created_at field.
	commentDescCreatedAt := commentFields[12].Descriptor()
	// comment.DefaultCreatedAt holds the default value on creation for the created_at field.
	comment.DefaultCreatedAt = commentDescCreatedAt.Default.(func() time.Time)
	conditionFields := schema.Condition{}.Fields()
	_ = conditionFields
	// conditionDescCreatedAt is the schema descriptor for created_at field.
	conditionDescCreatedAt := conditionFields[4].Descriptor()
	// condition.DefaultCreatedAt holds the default value on creation for the created_at field.
	condition.DefaultCreatedAt = conditionDescCreatedAt.Default.(func() time.Time)
	eventFields := schema.Event{}.Fields()
	_ = eventFields
	// eventDescTimestamp is the schema descriptor for timestamp field.
	eventDescTimestamp := eventFields[4].Descriptor()
	// event.DefaultTimestamp holds the default value on creation for the timestamp field.
	event.DefaultTimestamp = eventDescTimestamp.Default.(func() time.Time)
	hybridsessionFields := schema.HybridSession{}.Fields()
	_ = hybridsessionFields
	// hybridsessionDescCompletions is the schema descriptor for completions field.
	hybridsessionDescCompletions := hybridsessionFields[7].Descriptor()
	// hybridsession.DefaultCompletions holds the default value on creation for the completions field.
	hybridsession.DefaultCompletions = hybridsessionDescCompletions.Default.([]models.PhaseCompletion)
	// hybridsessionDescStartedAt is the schema descriptor for started_at field.
	hybridsessionDescStartedAt := hybridsessionFields[8].Descriptor()
	// hybridsession.DefaultStartedAt holds the default value on creation for the started_at field.
	hybridsession.DefaultStartedAt = hybridsessionDescStartedAt.Default.(func() time.Time)
	jobFields := schema.Job{}.Fields()
	_ = jobFields
	// jobDescPriority is the schema descriptor for priority field.
	jobDescPriority := jobFields[3].Descriptor()
	// job.DefaultPriority holds the default value on creation for the priority field.
	job.DefaultPriority = jobDescPriority.Default.(int)
	// jobDescAttemptsRemaining is the schema descriptor for attempts_remaining field.
	jobDescAttemptsRemaining := jobFields[5].Descriptor()
	// job.DefaultAttemptsRemaining holds the default value on creation for the attempts_remaining field.
	job.DefaultAttemptsRemaining = jobDescAttemptsRemaining.Default.(int)
	// jobDescMaxAttempts is the schema descriptor for max_attempts field.
	jobDescMaxAttempts := jobFields[6].Descriptor()
	// job.DefaultMaxAttempts holds the default value on creation for the max_attempts field.
	job.DefaultMaxAttempts = jobDescMaxAttempts.Default.(int)
	// jobDescNextRunAt is the schema descriptor for next_run_at field.
	jobDescNextRunAt := jobFields[7].Descriptor()
	// job.DefaultNextRunAt holds the default value on creation for the next_run_at field.
	job.DefaultNextRunAt = jobDescNextRunAt.Default.(func() time.Time)
	// jobDescProgress is the schema descriptor for progress field.
	jobDescProgress := jobFields[8].Descriptor()
	// job.DefaultProgress holds the default value on creation for the progress field.
	job.DefaultProgress = jobDescProgress.Default.(int)
	// jobDescCreatedAt is the schema descriptor for created_at field.
	jobDescCreatedAt := jobFields[14].Descriptor()
	// job.DefaultCreatedAt holds the default value on creation for the created_at field.
	job.DefaultCreatedAt = jobDescCreatedAt.Default.(func() time.Time)
	participantFields := schema.Participant{}.Fields()
	_ = participantFields
	// participantDescRole is the schema descriptor for role field.
	participantDescRole := participantFields[7].Descriptor()
	// participant.DefaultRole holds the default value on creation for the role field.
	participant.DefaultRole = participantDescRole.Default.(string)
	// participantDescCreatedAt is the schema descriptor for created_at field.
	participantDescCreatedAt := participantFields[14].Descriptor()
	// participant.DefaultCreatedAt holds the default value on creation for the created_at field.
	participant.DefaultCreatedAt = participantDescCreatedAt.Default.(func() time.Time)
	storyartifactFields := schema.StoryArtifact{}.Fields()
	_ = storyartifactFields
	// storyartifactDescCreatedAt is the schema descriptor for created_at field.
	storyartifactDescCreatedAt := storyartifactFields[10].Descriptor()
	// storyartifact.DefaultCreatedAt holds the default value on creation for the created_at field.
	storyartifact.DefaultCreatedAt = storyartifactDescCreatedAt.Default.(func() time.Time)
	studyFields := schema.Study{}.Fields()
	_ = studyFields
	// studyDescCreatedAt is the schema descriptor for created_at field.
	studyDescCreatedAt := studyFields[6].Descriptor()
	// study.DefaultCreatedAt holds the default value on creation for the created_at field.
	study.DefaultCreatedAt = studyDescCreatedAt.Default.(func() time.Time)
	// studyDescUpdatedAt is the schema descriptor for updated_at field.
	studyDescUpdatedAt := studyFields[7].Descriptor()
	// study.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	study.DefaultUpdatedAt = studyDescUpdatedAt.Default.(func() time.Time)
	// study.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	study.UpdateDefaultUpdatedAt = studyDescUpdatedAt.UpdateDefault.(func() time.Time)
	surveyFields := schema.Survey{}.Fields()
	_ = surveyFields
	// surveyDescCreatedAt is the schema descriptor for created_at field.
	surveyDescCreatedAt := surveyFields[4].Descriptor()
	// survey.DefaultCreatedAt holds the default value on creation for the created_at field.
	survey.DefaultCreatedAt = surveyDescCreatedAt.Default.(func() time.Time)
	surveyresponseFields := schema.SurveyResponse{}.Fields()
	_ = surveyresponseFields
	// surveyresponseDescSubmittedAt is the schema descriptor for submitted_at field.
	surveyresponseDescSubmittedAt := surveyresponseFields[4].Descriptor()
	// surveyresponse.DefaultSubmittedAt holds the default value on creation for the submitted_at field.
	surveyresponse.DefaultSubmittedAt = surveyresponseDescSubmittedAt.Default.(func() time.Time)
}
