package services

import (
	"fmt"
	"strings"

	"github.com/dyadlab/fabula/pkg/models"
)

// feedbackSummaryOrder is the canonical section order of the feedback
// summary. Empty categories are omitted.
var feedbackSummaryOrder = []models.CommentType{
	models.CommentPraise,
	models.CommentSuggestion,
	models.CommentCritique,
	models.CommentQuestion,
	models.CommentFeedback,
}

var feedbackSectionTitles = map[models.CommentType]string{
	models.CommentPraise:     "Praise",
	models.CommentSuggestion: "Suggestions",
	models.CommentCritique:   "Critique",
	models.CommentQuestion:   "Questions",
	models.CommentFeedback:   "General feedback",
}

// BuildFeedbackSummary groups comments by type and renders them in canonical
// order. Pure function; used when preparing revision prompts.
func BuildFeedbackSummary(comments []*models.Comment) string {
	if len(comments) == 0 {
		return ""
	}

	byType := make(map[models.CommentType][]*models.Comment)
	for _, c := range comments {
		t := models.ParseCommentType(string(c.Type))
		byType[t] = append(byType[t], c)
	}

	var sb strings.Builder
	for _, t := range feedbackSummaryOrder {
		group := byType[t]
		if len(group) == 0 {
			continue
		}
		fmt.Fprintf(&sb, "### %s\n", feedbackSectionTitles[t])
		for _, c := range group {
			if c.PassageID != "" {
				fmt.Fprintf(&sb, "- [passage %s] %s\n", c.PassageID, c.Content)
			} else {
				fmt.Fprintf(&sb, "- %s\n", c.Content)
			}
		}
		sb.WriteString("\n")
	}
	return strings.TrimRight(sb.String(), "\n") + "\n"
}
