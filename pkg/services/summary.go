package services

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dyadlab/fabula/pkg/models"
)

// BuildContextSummary renders an agent context as the deterministic,
// human-readable roll-up used as LLM prompt context. Pure function: output
// depends only on the context value, sectioned by round and list.
func BuildContextSummary(c *models.AgentContext) string {
	if c == nil {
		return ""
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Current position: round %d, phase %s.\n", c.CurrentRound, c.CurrentPhase)

	for _, round := range contextRounds(c) {
		fmt.Fprintf(&sb, "\n## Round %d\n", round)

		for _, d := range c.OwnStoryDrafts {
			if d.Round != round {
				continue
			}
			fmt.Fprintf(&sb, "- Authored story v%d", d.Version)
			if d.Title != "" {
				fmt.Fprintf(&sb, " %q", d.Title)
			}
			if d.PassageCount > 0 {
				fmt.Fprintf(&sb, " (%d passages)", d.PassageCount)
			}
			if d.Summary != "" {
				fmt.Fprintf(&sb, ": %s", d.Summary)
			}
			sb.WriteString("\n")
		}

		for _, p := range c.PartnerStoriesPlayed {
			if p.Round != round {
				continue
			}
			fmt.Fprintf(&sb, "- Played partner story %s", p.StoryArtifactID)
			if len(p.ChoicesMade) > 0 {
				fmt.Fprintf(&sb, ", choices: %s", strings.Join(p.ChoicesMade, " > "))
			}
			if p.OverallImpression != "" {
				fmt.Fprintf(&sb, ". Impression: %s", p.OverallImpression)
			}
			sb.WriteString("\n")
		}

		for _, f := range c.FeedbackGiven {
			if f.Round != round {
				continue
			}
			fmt.Fprintf(&sb, "- Gave feedback (%d comments)", len(f.CommentIDs))
			if f.OverallAssessment != "" {
				fmt.Fprintf(&sb, ": %s", f.OverallAssessment)
			}
			sb.WriteString("\n")
		}

		for _, f := range c.FeedbackReceived {
			if f.Round != round {
				continue
			}
			fmt.Fprintf(&sb, "- Received feedback (%d comments)", len(f.CommentIDs))
			if len(f.Strengths) > 0 {
				fmt.Fprintf(&sb, ". Strengths: %s", strings.Join(f.Strengths, "; "))
			}
			if len(f.Improvements) > 0 {
				fmt.Fprintf(&sb, ". Improvements: %s", strings.Join(f.Improvements, "; "))
			}
			sb.WriteString("\n")
		}
	}

	if len(c.CumulativeLearnings) > 0 {
		sb.WriteString("\n## Learnings\n")
		for _, l := range c.CumulativeLearnings {
			fmt.Fprintf(&sb, "- [round %d, %s] %s\n", l.Round, l.Category, l.Insight)
		}
	}

	return sb.String()
}

// contextRounds collects every round number mentioned in the context's
// lists, ascending.
func contextRounds(c *models.AgentContext) []int {
	seen := make(map[int]bool)
	for _, d := range c.OwnStoryDrafts {
		seen[d.Round] = true
	}
	for _, p := range c.PartnerStoriesPlayed {
		seen[p.Round] = true
	}
	for _, f := range c.FeedbackGiven {
		seen[f.Round] = true
	}
	for _, f := range c.FeedbackReceived {
		seen[f.Round] = true
	}
	rounds := make([]int, 0, len(seen))
	for r := range seen {
		rounds = append(rounds, r)
	}
	sort.Ints(rounds)
	return rounds
}
