package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dyadlab/fabula/pkg/models"
)

func TestBuildFeedbackSummary_Empty(t *testing.T) {
	assert.Equal(t, "", BuildFeedbackSummary(nil))
	assert.Equal(t, "", BuildFeedbackSummary([]*models.Comment{}))
}

func TestBuildFeedbackSummary_CanonicalOrder(t *testing.T) {
	comments := []*models.Comment{
		{Type: models.CommentQuestion, Content: "Why does the hallway loop?"},
		{Type: models.CommentPraise, Content: "Strong opening."},
		{Type: models.CommentCritique, Content: "The ending feels abrupt."},
	}

	out := BuildFeedbackSummary(comments)
	praise := strings.Index(out, "### Praise")
	critique := strings.Index(out, "### Critique")
	question := strings.Index(out, "### Questions")

	assert.GreaterOrEqual(t, praise, 0)
	assert.Less(t, praise, critique)
	assert.Less(t, critique, question)
	assert.NotContains(t, out, "### Suggestions")
	assert.True(t, strings.HasSuffix(out, "\n"))
	assert.False(t, strings.HasSuffix(out, "\n\n"))
}

func TestBuildFeedbackSummary_PassagePrefix(t *testing.T) {
	comments := []*models.Comment{
		{Type: models.CommentSuggestion, PassageID: "hall", Content: "Add a second exit."},
		{Type: models.CommentSuggestion, Content: "Vary the sentence rhythm."},
	}

	out := BuildFeedbackSummary(comments)
	want := "### Suggestions\n" +
		"- [passage hall] Add a second exit.\n" +
		"- Vary the sentence rhythm.\n"
	assert.Equal(t, want, out)
}

func TestBuildFeedbackSummary_UnknownTypeFallsBack(t *testing.T) {
	comments := []*models.Comment{
		{Type: models.CommentType("observation"), Content: "Passages are short."},
	}

	out := BuildFeedbackSummary(comments)
	assert.Contains(t, out, "### General feedback")
	assert.Contains(t, out, "- Passages are short.")
}
