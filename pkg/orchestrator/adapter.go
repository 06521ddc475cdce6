package orchestrator

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/dyadlab/fabula/pkg/llm"
	"github.com/dyadlab/fabula/pkg/models"
	"github.com/dyadlab/fabula/pkg/services"
)

// rolePersonas maps (plugin type, role) to the persona paragraph that opens
// every system prompt for that role.
var rolePersonas = map[[2]string]string{
	{"twine", models.RolePlayer}: "You are a study participant playing a branching interactive story. " +
		"Read each passage carefully and choose the option that genuinely interests you.",
	{"twine", models.RoleCollaborative}: "You are a study participant in a collaborative storytelling exercise. " +
		"Across rounds you author branching stories, play your partner's story, and exchange feedback. " +
		"Engage earnestly, as a thoughtful human participant would.",
	{"twine", models.RoleEvaluator}: "You are a study participant evaluating branching interactive stories. " +
		"Assess structure, pacing, and the meaningfulness of choices.",
	{"twine", models.RoleNavigator}: "You are a study participant working through a branching interactive story. " +
		"Follow the instructions for the current activity.",
}

// RoleAdapter builds prompts for one (plugin type, role) pair and turns LLM
// replies into structured actions.
type RoleAdapter struct {
	client     llm.Client
	pluginType string
	role       string
}

// AdapterFor returns the adapter for the plugin type and role. Unknown roles
// fall back to the navigator persona instead of failing the session.
func AdapterFor(client llm.Client, pluginType, role string) *RoleAdapter {
	if pluginType == "" {
		pluginType = "twine"
	}
	if _, ok := rolePersonas[[2]string{pluginType, role}]; !ok {
		role = models.RoleNavigator
	}
	return &RoleAdapter{client: client, pluginType: pluginType, role: role}
}

// Role returns the effective role after fallback.
func (a *RoleAdapter) Role() string {
	return a.role
}

const responseFormat = `Respond with exactly one JSON object and nothing else:
{"type": "<action type>", "params": { ... }, "reasoning": "<one sentence>"}`

// GenerateAction produces the next action for a collaborative phase.
func (a *RoleAdapter) GenerateAction(ctx context.Context, rc *models.CollaborativeRoleContext) (*models.AgentAction, error) {
	system := a.persona() + "\n\n" + phaseInstructions(rc.Phase) + "\n\n" + responseFormat
	user, err := collaborativeUserPrompt(rc)
	if err != nil {
		return nil, err
	}
	action, err := a.client.Generate(ctx, system, user)
	if err != nil {
		return nil, fmt.Errorf("generating %s action: %w", rc.Phase, err)
	}
	return action, nil
}

// GenerateSoloAction produces the next action for a single-actor session.
func (a *RoleAdapter) GenerateSoloAction(ctx context.Context, rc *models.RoleContext) (*models.AgentAction, error) {
	system := a.persona() + "\n\nPick one of the available actions each turn.\n\n" + responseFormat
	user, err := soloUserPrompt(rc)
	if err != nil {
		return nil, err
	}
	action, err := a.client.Generate(ctx, system, user)
	if err != nil {
		return nil, fmt.Errorf("generating action: %w", err)
	}
	return action, nil
}

func (a *RoleAdapter) persona() string {
	return rolePersonas[[2]string{a.pluginType, a.role}]
}

func phaseInstructions(phase models.Phase) string {
	switch phase {
	case models.PhaseAuthor:
		return `This is an AUTHOR phase. Write a branching story as a set of passages connected by choice links.
Use the "create_story" action. Params: {"title": string, "story_summary": string, "start_passage": string,
"passages": [{"id": string, "title": string, "text": string, "links": [{"label": string, "target": string}]}]}.
Every link target must be the id of a passage you define. If you received feedback on a previous draft, address it.`
	case models.PhasePlay:
		return `This is a PLAY phase. You are reading your partner's story one passage at a time.
Use the "choose" action to pick a link. Params: {"label": string, "observation": string}.
The label must match one of the offered choices. Note anything that stands out in the observation.`
	case models.PhaseReview:
		return `This is a REVIEW phase. Give your partner feedback on the story you just played.
Use the "submit_feedback" action. Params: {"strengths": [string], "improvements": [string],
"overall_assessment": string, "comments": [{"passage_id": string, "content": string,
"type": "praise"|"suggestion"|"critique"|"question"}]}. Be specific and constructive.`
	}
	return "Follow the instructions for the current activity."
}

func collaborativeUserPrompt(rc *models.CollaborativeRoleContext) (string, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "Round %d, phase %s.\n", rc.Round, rc.Phase)

	if rc.Context != nil {
		b.WriteString("\n# Your session so far\n")
		b.WriteString(services.BuildContextSummary(rc.Context))
		b.WriteString("\n")
	}
	if len(rc.PartnerFeedback) > 0 {
		b.WriteString("\n# Feedback on your previous draft\n")
		for _, fc := range rc.PartnerFeedback {
			if fc.PassageID != "" {
				fmt.Fprintf(&b, "- [passage %s] %s\n", fc.PassageID, fc.Content)
			} else {
				fmt.Fprintf(&b, "- %s\n", fc.Content)
			}
		}
	}
	if rc.PlayState != nil {
		b.WriteString("\n# Current passage\n")
		if rc.PlayState.CurrentPassage.Title != "" {
			fmt.Fprintf(&b, "## %s\n", rc.PlayState.CurrentPassage.Title)
		}
		b.WriteString(rc.PlayState.CurrentPassage.Text)
		b.WriteString("\n\nChoices:\n")
		for _, c := range rc.PlayState.Choices {
			fmt.Fprintf(&b, "- %s\n", c)
		}
	}
	if len(rc.Constraints) > 0 {
		raw, err := json.Marshal(rc.Constraints)
		if err != nil {
			return "", fmt.Errorf("encoding constraints: %w", err)
		}
		fmt.Fprintf(&b, "\n# Constraints\n%s\n", raw)
	}
	return b.String(), nil
}

func soloUserPrompt(rc *models.RoleContext) (string, error) {
	state, err := json.Marshal(rc.State)
	if err != nil {
		return "", fmt.Errorf("encoding state: %w", err)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "# Current state\n%s\n\n# Available actions\n", state)
	for _, a := range rc.AvailableActions {
		fmt.Fprintf(&b, "- %s\n", a)
	}
	if len(rc.ActionHistory) > 0 {
		b.WriteString("\n# Your recent actions\n")
		for _, h := range rc.ActionHistory {
			fmt.Fprintf(&b, "- %s", h.Type)
			if h.Reasoning != "" {
				fmt.Fprintf(&b, ": %s", h.Reasoning)
			}
			b.WriteString("\n")
		}
	}
	return b.String(), nil
}
