// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AgentContext is the predicate function for agentcontext builders.
type AgentContext func(*sql.Selector)

// Batch is the predicate function for batch builders.
type Batch func(*sql.Selector)

// Comment is the predicate function for comment builders.
type Comment func(*sql.Selector)

// Condition is the predicate function for condition builders.
type Condition func(*sql.Selector)

// Event is the predicate function for event builders.
type Event func(*sql.Selector)

// HybridSession is the predicate function for hybridsession builders.
type HybridSession func(*sql.Selector)

// Job is the predicate function for job builders.
type Job func(*sql.Selector)

// Participant is the predicate function for participant builders.
type Participant func(*sql.Selector)

// StoryArtifact is the predicate function for storyartifact builders.
type StoryArtifact func(*sql.Selector)

// Study is the predicate function for study builders.
type Study func(*sql.Selector)

// Survey is the predicate function for survey builders.
type Survey func(*sql.Selector)

// SurveyResponse is the predicate function for surveyresponse builders.
type SurveyResponse func(*sql.Selector)
