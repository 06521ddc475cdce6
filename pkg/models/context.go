package models

import "time"

// Agent context entry types. Each list on the agent context row is an
// append-only, round-tagged JSON array of one of these.

// StoryDraftEntry records a story the participant authored.
type StoryDraftEntry struct {
	Round           int       `json:"round"`
	StoryArtifactID string    `json:"story_artifact_id"`
	Version         int       `json:"version"`
	Title           string    `json:"title,omitempty"`
	Summary         string    `json:"summary,omitempty"`
	PassageCount    int       `json:"passage_count,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// PartnerStoryEntry records a play-through of the partner's story.
type PartnerStoryEntry struct {
	Round             int       `json:"round"`
	StoryArtifactID   string    `json:"story_artifact_id"`
	PlayNotes         string    `json:"play_notes,omitempty"`
	ChoicesMade       []string  `json:"choices_made,omitempty"`
	Observations      []string  `json:"observations,omitempty"`
	OverallImpression string    `json:"overall_impression,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
}

// FeedbackEntry records feedback given or received in a review phase.
type FeedbackEntry struct {
	Round             int       `json:"round"`
	CommentIDs        []string  `json:"comment_ids,omitempty"`
	Strengths         []string  `json:"strengths,omitempty"`
	Improvements      []string  `json:"improvements,omitempty"`
	OverallAssessment string    `json:"overall_assessment,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
}

// LearningEntry records an accumulated learning carried across rounds.
type LearningEntry struct {
	Round     int       `json:"round"`
	Category  string    `json:"category"` // e.g. "storytelling"
	Insight   string    `json:"insight"`
	CreatedAt time.Time `json:"created_at"`
}

// AgentContext is the per-participant journal used to build LLM prompts.
// Appends are serializable read-modify-write transactions; readers see a
// consistent snapshot in insertion order.
type AgentContext struct {
	ParticipantID        string              `json:"participant_id"`
	CurrentRound         int                 `json:"current_round"`
	CurrentPhase         Phase               `json:"current_phase"`
	OwnStoryDrafts       []StoryDraftEntry   `json:"own_story_drafts"`
	PartnerStoriesPlayed []PartnerStoryEntry `json:"partner_stories_played"`
	FeedbackGiven        []FeedbackEntry     `json:"feedback_given"`
	FeedbackReceived     []FeedbackEntry     `json:"feedback_received"`
	CumulativeLearnings  []LearningEntry     `json:"cumulative_learnings"`
}

// DraftForRound returns the participant's own draft for the given round, or
// nil when the round has no draft yet.
func (c *AgentContext) DraftForRound(round int) *StoryDraftEntry {
	for i := range c.OwnStoryDrafts {
		if c.OwnStoryDrafts[i].Round == round {
			return &c.OwnStoryDrafts[i]
		}
	}
	return nil
}
