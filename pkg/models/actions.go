package models

import (
	"encoding/json"
	"fmt"
)

// Action types a role adapter may request from the LLM.
const (
	ActionCreateStory    = "create_story"
	ActionSubmitFeedback = "submit_feedback"
	ActionChoose         = "choose"
)

// AgentAction is the structured action returned by an LLM client.
type AgentAction struct {
	Type      string          `json:"type"`
	Params    json.RawMessage `json:"params,omitempty"`
	Reasoning string          `json:"reasoning,omitempty"`
	Metadata  map[string]any  `json:"metadata,omitempty"`
}

// DecodeParams unmarshals the action parameters into out.
func (a *AgentAction) DecodeParams(out any) error {
	if len(a.Params) == 0 {
		return fmt.Errorf("action %q has no params", a.Type)
	}
	if err := json.Unmarshal(a.Params, out); err != nil {
		return fmt.Errorf("decoding %q params: %w", a.Type, err)
	}
	return nil
}

// Passage is one node of a branching story.
type Passage struct {
	ID    string        `json:"id"`
	Title string        `json:"title,omitempty"`
	Text  string        `json:"text"`
	Links []PassageLink `json:"links,omitempty"`
}

// PassageLink is a choice leading to another passage.
type PassageLink struct {
	Label  string `json:"label"`
	Target string `json:"target"`
}

// CreateStoryParams is the payload of a create_story action.
type CreateStoryParams struct {
	Passages     []Passage `json:"passages"`
	StartPassage string    `json:"start_passage"`
	Title        string    `json:"title,omitempty"`
	StorySummary string    `json:"story_summary,omitempty"`
}

// Validate checks the story is structurally playable.
func (p *CreateStoryParams) Validate() error {
	if len(p.Passages) == 0 {
		return fmt.Errorf("create_story: at least one passage is required")
	}
	ids := make(map[string]bool, len(p.Passages))
	for _, pass := range p.Passages {
		if pass.ID == "" {
			return fmt.Errorf("create_story: passage with empty id")
		}
		if ids[pass.ID] {
			return fmt.Errorf("create_story: duplicate passage id %q", pass.ID)
		}
		ids[pass.ID] = true
	}
	if p.StartPassage == "" {
		return fmt.Errorf("create_story: start_passage is required")
	}
	if !ids[p.StartPassage] {
		return fmt.Errorf("create_story: start_passage %q not among passages", p.StartPassage)
	}
	for _, pass := range p.Passages {
		for _, link := range pass.Links {
			if !ids[link.Target] {
				return fmt.Errorf("create_story: passage %q links to unknown passage %q", pass.ID, link.Target)
			}
		}
	}
	return nil
}

// FeedbackComment is one comment inside a submit_feedback action.
type FeedbackComment struct {
	PassageID string `json:"passage_id,omitempty"`
	Content   string `json:"content"`
	Type      string `json:"type,omitempty"`
}

// SubmitFeedbackParams is the payload of a submit_feedback action.
type SubmitFeedbackParams struct {
	Strengths         []string          `json:"strengths,omitempty"`
	Improvements      []string          `json:"improvements,omitempty"`
	OverallAssessment string            `json:"overall_assessment,omitempty"`
	Comments          []FeedbackComment `json:"comments,omitempty"`
}

// ChooseParams is the payload of a choose action during play.
type ChooseParams struct {
	Label       string `json:"label"`
	Observation string `json:"observation,omitempty"`
}

// RoleContext is the input to an LLM generate call for a single-actor
// session: the current plugin state, the participant's role, the available
// actions, and a bounded window of recent action history.
type RoleContext struct {
	State            map[string]any `json:"state"`
	Role             string         `json:"role"`
	AvailableActions []string       `json:"available_actions"`
	ActionHistory    []AgentAction  `json:"action_history,omitempty"`
}

// CollaborativeRoleContext is the input to a generate call inside a paired
// session phase.
type CollaborativeRoleContext struct {
	Phase           Phase                `json:"phase"`
	Round           int                  `json:"round"`
	Role            string               `json:"role"`
	Context         *AgentContext        `json:"context,omitempty"`
	PartnerFeedback []FeedbackComment    `json:"partner_feedback,omitempty"`
	Constraints     map[string]any       `json:"constraints,omitempty"`
	PlayState       *PlayState           `json:"play_state,omitempty"`
}

// PlayState is the navigable view of a partner's story during a play phase.
type PlayState struct {
	CurrentPassage Passage  `json:"current_passage"`
	Choices        []string `json:"choices"`
	Visited        []string `json:"visited,omitempty"`
}
