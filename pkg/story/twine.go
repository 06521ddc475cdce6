package story

import (
	"context"
	"fmt"

	"github.com/dyadlab/fabula/pkg/models"
)

// TwinePlugin is the built-in headless runtime for branching twine-style
// stories. It has two modes: without a document it starts in an authoring
// state whose only valid action is create_story; once a document is present
// it becomes a play session navigated with choose actions.
type TwinePlugin struct {
	doc       *models.CreateStoryParams
	passages  map[string]models.Passage
	currentID string
	visited   []string
	ended     bool
	destroyed bool
}

// NewTwinePlugin creates an uninitialized twine plugin.
func NewTwinePlugin() *TwinePlugin {
	return &TwinePlugin{}
}

// InitHeadless loads the story document, when given, and positions the
// session at the start passage.
func (p *TwinePlugin) InitHeadless(_ context.Context, cfg InitConfig) error {
	if cfg.Document == nil {
		return nil
	}
	params := &models.CreateStoryParams{
		Passages:     cfg.Document.Passages,
		StartPassage: cfg.Document.StartPassage,
		Title:        cfg.Document.Title,
		StorySummary: cfg.Document.Summary,
	}
	return p.loadStory(params)
}

func (p *TwinePlugin) loadStory(params *models.CreateStoryParams) error {
	if err := params.Validate(); err != nil {
		return err
	}
	passages := make(map[string]models.Passage, len(params.Passages))
	for _, pass := range params.Passages {
		passages[pass.ID] = pass
	}
	p.doc = params
	p.passages = passages
	p.currentID = params.StartPassage
	p.visited = []string{params.StartPassage}
	p.ended = len(passages[params.StartPassage].Links) == 0
	return nil
}

// GetState returns the LLM-facing session state.
func (p *TwinePlugin) GetState() map[string]any {
	if p.doc == nil {
		return map[string]any{
			"mode": "authoring",
		}
	}
	current := p.passages[p.currentID]
	choices := make([]string, 0, len(current.Links))
	for _, link := range current.Links {
		choices = append(choices, link.Label)
	}
	return map[string]any{
		"mode":            "playing",
		"title":           p.doc.Title,
		"current_passage": current,
		"choices":         choices,
		"visited":         append([]string(nil), p.visited...),
		"ended":           p.ended,
	}
}

// GetAvailableActions lists the valid action names for the current state.
func (p *TwinePlugin) GetAvailableActions() []string {
	if p.doc == nil {
		return []string{models.ActionCreateStory}
	}
	if p.ended {
		return nil
	}
	return []string{models.ActionChoose}
}

// ExecuteHeadless applies a create_story or choose action.
func (p *TwinePlugin) ExecuteHeadless(_ context.Context, action *models.AgentAction) (*ActionResult, error) {
	if p.destroyed {
		return nil, fmt.Errorf("plugin destroyed")
	}
	switch action.Type {
	case models.ActionCreateStory:
		if p.doc != nil {
			return &ActionResult{Success: false, Message: "story already created"}, nil
		}
		var params models.CreateStoryParams
		if err := action.DecodeParams(&params); err != nil {
			return &ActionResult{Success: false, Message: err.Error()}, nil
		}
		if err := p.loadStory(&params); err != nil {
			return &ActionResult{Success: false, Message: err.Error()}, nil
		}
		return &ActionResult{Success: true, Message: fmt.Sprintf("story created with %d passages", len(params.Passages))}, nil

	case models.ActionChoose:
		if p.doc == nil {
			return &ActionResult{Success: false, Message: "no story to play"}, nil
		}
		if p.ended {
			return &ActionResult{Success: false, Message: "story has ended"}, nil
		}
		var params models.ChooseParams
		if err := action.DecodeParams(&params); err != nil {
			return &ActionResult{Success: false, Message: err.Error()}, nil
		}
		current := p.passages[p.currentID]
		for _, link := range current.Links {
			if link.Label == params.Label {
				p.currentID = link.Target
				p.visited = append(p.visited, link.Target)
				p.ended = len(p.passages[link.Target].Links) == 0
				return &ActionResult{Success: true, Message: fmt.Sprintf("moved to passage %q", link.Target)}, nil
			}
		}
		return &ActionResult{Success: false, Message: fmt.Sprintf("no choice labelled %q", params.Label)}, nil

	default:
		return &ActionResult{Success: false, Message: fmt.Sprintf("unsupported action %q", action.Type)}, nil
	}
}

// IsComplete reports whether the play-through reached an ending.
func (p *TwinePlugin) IsComplete() bool {
	return p.doc != nil && p.ended
}

// Destroy releases the session.
func (p *TwinePlugin) Destroy() {
	p.destroyed = true
	p.doc = nil
	p.passages = nil
}
