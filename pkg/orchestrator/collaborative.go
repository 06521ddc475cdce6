package orchestrator

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/dyadlab/fabula/pkg/models"
	"github.com/dyadlab/fabula/pkg/services"
)

// Collaborative runs a paired session synchronously: both sides execute each
// phase in parallel, a failure on one side never aborts the other, and the
// round advances only after both sides finish all phases of the round.
type Collaborative struct {
	contexts   ContextStore
	comments   CommentStore
	artifacts  ArtifactStore
	events     EventStore
	cfg        *models.StudyConfig
	pluginType string
	log        *slog.Logger
}

// NewCollaborative creates a Collaborative orchestrator for one session's
// configuration.
func NewCollaborative(contexts ContextStore, comments CommentStore, artifacts ArtifactStore, events EventStore, cfg *models.StudyConfig, pluginType string) *Collaborative {
	if cfg == nil {
		cfg = &models.StudyConfig{}
	}
	if pluginType == "" {
		pluginType = "twine"
	}
	return &Collaborative{
		contexts:   contexts,
		comments:   comments,
		artifacts:  artifacts,
		events:     events,
		cfg:        cfg,
		pluginType: pluginType,
		log:        slog.With("component", "collaborative_orchestrator"),
	}
}

// RunSession executes all rounds and phases for the pair. onProgress, when
// non-nil, receives a 0-100 percentage after each phase barrier.
func (o *Collaborative) RunSession(ctx context.Context, a, b *Actor, onProgress func(pct int)) (*SessionResult, error) {
	phases := o.cfg.Phases()
	rounds := o.cfg.Rounds()
	result := &SessionResult{
		PhaseResults: make([]PhaseResult, 0, rounds*len(phases)*2),
	}

	steps := rounds * len(phases)
	step := 0
	for round := 1; round <= rounds; round++ {
		for _, phase := range phases {
			var ra, rb PhaseResult
			var wg sync.WaitGroup
			wg.Add(2)
			go func() {
				defer wg.Done()
				ra = o.ExecutePhase(ctx, a, b, phase, round)
			}()
			go func() {
				defer wg.Done()
				rb = o.ExecutePhase(ctx, b, a, phase, round)
			}()
			wg.Wait()
			result.PhaseResults = append(result.PhaseResults, ra, rb)
			o.exchangePhaseData(phase, round)

			step++
			if onProgress != nil {
				onProgress(10 + step*80/steps)
			}
			if err := ctx.Err(); err != nil {
				result.Status = sessionStatus(result.PhaseResults)
				return result, err
			}
		}
		if round < rounds {
			for _, actor := range []*Actor{a, b} {
				if err := o.contexts.AdvanceRound(ctx, actor.ID); err != nil {
					result.Status = sessionStatus(result.PhaseResults)
					return result, fmt.Errorf("failed to advance participant %s to round %d: %w", actor.ID, round+1, err)
				}
			}
		}
	}

	result.Status = sessionStatus(result.PhaseResults)
	return result, nil
}

// ExecutePhase runs one phase for one side of the pair and reports the
// outcome without returning an error: failures are captured in the result so
// the other side keeps running.
func (o *Collaborative) ExecutePhase(ctx context.Context, actor, partner *Actor, phase models.Phase, round int) PhaseResult {
	result := PhaseResult{Phase: phase, Round: round, ParticipantID: actor.ID}

	if err := o.contexts.UpdatePhase(ctx, actor.ID, phase); err != nil {
		result.Error = err.Error()
		o.logPhaseFailure(actor.ID, phase, round, err)
		return result
	}

	var data map[string]any
	var err error
	switch phase {
	case models.PhaseAuthor:
		data, err = o.runAuthor(ctx, actor, round)
	case models.PhasePlay:
		data, err = o.runPlay(ctx, actor, partner, round)
	case models.PhaseReview:
		data, err = o.runReview(ctx, actor, partner, round)
	default:
		err = fmt.Errorf("unknown phase %q", phase)
	}
	if err != nil {
		result.Error = err.Error()
		o.logPhaseFailure(actor.ID, phase, round, err)
	} else {
		result.Success = true
		result.Data = data
	}

	eventData := map[string]any{
		"phase":   string(phase),
		"round":   round,
		"success": result.Success,
	}
	if result.Error != "" {
		eventData["error"] = result.Error
	}
	if _, evErr := o.events.Append(ctx, actor.ID, models.EventPhaseComplete, eventData); evErr != nil {
		o.log.Warn("Failed to journal phase completion",
			"participant_id", actor.ID, "phase", phase, "round", round, "error", evErr)
	}
	return result
}

// exchangePhaseData marks the barrier between both sides of a phase. The
// data itself flows through the store as the phases run, so running the hook
// twice for the same phase has no effect.
func (o *Collaborative) exchangePhaseData(phase models.Phase, round int) {
	o.log.Debug("Phase barrier reached", "phase", phase, "round", round)
}

func (o *Collaborative) runAuthor(ctx context.Context, actor *Actor, round int) (map[string]any, error) {
	agentCtx, err := o.contexts.GetOrCreate(ctx, actor.ID)
	if err != nil {
		return nil, err
	}
	rc := &models.CollaborativeRoleContext{
		Phase:   models.PhaseAuthor,
		Round:   round,
		Role:    actor.Role,
		Context: agentCtx,
	}
	if round > 1 && o.cfg.FeedbackRequired() {
		received, err := o.comments.Received(ctx, actor.ID, round-1, models.PhaseReview)
		if err != nil {
			return nil, fmt.Errorf("failed to load feedback for round %d: %w", round-1, err)
		}
		for _, c := range received {
			rc.PartnerFeedback = append(rc.PartnerFeedback, models.FeedbackComment{
				PassageID: c.PassageID,
				Content:   c.Content,
				Type:      string(c.Type),
			})
		}
	}

	action, err := actor.Adapter.GenerateAction(ctx, rc)
	if err != nil {
		return nil, err
	}
	if action.Type != models.ActionCreateStory {
		return nil, fmt.Errorf("author phase expected %s, got %q", models.ActionCreateStory, action.Type)
	}
	var params models.CreateStoryParams
	if err := action.DecodeParams(&params); err != nil {
		return nil, err
	}

	artifact, err := o.artifacts.SaveStory(ctx, actor.ID, o.pluginType, round, &params)
	if err != nil {
		return nil, err
	}
	entry := models.StoryDraftEntry{
		Round:           round,
		StoryArtifactID: artifact.ID,
		Version:         artifact.Version,
		Title:           params.Title,
		Summary:         params.StorySummary,
		PassageCount:    len(params.Passages),
		CreatedAt:       time.Now(),
	}
	if err := o.contexts.AppendOwnDraft(ctx, actor.ID, entry); err != nil {
		return nil, err
	}
	return map[string]any{
		"story_artifact_id": artifact.ID,
		"version":           artifact.Version,
	}, nil
}

func (o *Collaborative) runPlay(ctx context.Context, actor, partner *Actor, round int) (map[string]any, error) {
	artifact, err := o.artifacts.FindForRound(ctx, partner.ID, round)
	if err != nil {
		return nil, fmt.Errorf("partner story unavailable: %w", err)
	}
	doc, err := o.artifacts.LoadStory(ctx, artifact.ID)
	if err != nil {
		return nil, err
	}
	agentCtx, err := o.contexts.GetOrCreate(ctx, actor.ID)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]models.Passage, len(doc.Passages))
	for _, p := range doc.Passages {
		byID[p.ID] = p
	}

	var (
		visited     []string
		choicesMade []string
		observations []string
		playNotes   string
	)
	current := doc.StartPassage
	limit := o.cfg.PlayActionLimit()
	for steps := 0; ; steps++ {
		passage, ok := byID[current]
		if !ok {
			return nil, fmt.Errorf("story %s links to unknown passage %q", artifact.ID, current)
		}
		visited = append(visited, current)
		if len(passage.Links) == 0 {
			playNotes = "reached an ending"
			break
		}
		if steps >= limit {
			playNotes = "stopped at the play action limit"
			break
		}

		labels := make([]string, len(passage.Links))
		for i, link := range passage.Links {
			labels[i] = link.Label
		}
		rc := &models.CollaborativeRoleContext{
			Phase:   models.PhasePlay,
			Round:   round,
			Role:    actor.Role,
			Context: agentCtx,
			PlayState: &models.PlayState{
				CurrentPassage: passage,
				Choices:        labels,
				Visited:        visited,
			},
		}
		action, err := actor.Adapter.GenerateAction(ctx, rc)
		if err != nil {
			return nil, err
		}
		if action.Type != models.ActionChoose {
			observations = append(observations, fmt.Sprintf("stopped after unexpected action %q", action.Type))
			playNotes = "stopped early"
			break
		}
		var choice models.ChooseParams
		if err := action.DecodeParams(&choice); err != nil {
			return nil, err
		}
		if choice.Observation != "" {
			observations = append(observations, choice.Observation)
		}

		link, ok := findLink(passage.Links, choice.Label)
		if !ok {
			observations = append(observations, fmt.Sprintf("chose unavailable option %q", choice.Label))
			playNotes = "stopped early"
			break
		}
		choicesMade = append(choicesMade, link.Label)
		current = link.Target
	}

	overall := ""
	if len(observations) > 0 {
		overall = observations[len(observations)-1]
	}
	entry := models.PartnerStoryEntry{
		Round:             round,
		StoryArtifactID:   artifact.ID,
		PlayNotes:         playNotes,
		ChoicesMade:       choicesMade,
		Observations:      observations,
		OverallImpression: overall,
		CreatedAt:         time.Now(),
	}
	if err := o.contexts.AppendPartnerStoryPlayed(ctx, actor.ID, entry); err != nil {
		return nil, err
	}
	return map[string]any{
		"story_artifact_id": artifact.ID,
		"choices_made":      len(choicesMade),
		"passages_visited":  len(visited),
	}, nil
}

func (o *Collaborative) runReview(ctx context.Context, actor, partner *Actor, round int) (map[string]any, error) {
	agentCtx, err := o.contexts.GetOrCreate(ctx, actor.ID)
	if err != nil {
		return nil, err
	}
	rc := &models.CollaborativeRoleContext{
		Phase:   models.PhaseReview,
		Round:   round,
		Role:    actor.Role,
		Context: agentCtx,
	}
	action, err := actor.Adapter.GenerateAction(ctx, rc)
	if err != nil {
		return nil, err
	}
	if action.Type != models.ActionSubmitFeedback {
		return nil, fmt.Errorf("review phase expected %s, got %q", models.ActionSubmitFeedback, action.Type)
	}
	var params models.SubmitFeedbackParams
	if err := action.DecodeParams(&params); err != nil {
		return nil, err
	}

	storyArtifactID := ""
	if artifact, err := o.artifacts.FindForRound(ctx, partner.ID, round); err == nil {
		storyArtifactID = artifact.ID
	}

	commentIDs := make([]string, 0, len(params.Comments))
	for _, fc := range params.Comments {
		comment, err := o.comments.Create(ctx, services.CreateCommentInput{
			AuthorID:            actor.ID,
			TargetParticipantID: partner.ID,
			StoryArtifactID:     storyArtifactID,
			PassageID:           fc.PassageID,
			Content:             fc.Content,
			Type:                models.ParseCommentType(fc.Type),
			Round:               round,
			Phase:               models.PhaseReview,
		})
		if err != nil {
			return nil, err
		}
		commentIDs = append(commentIDs, comment.ID)
	}

	now := time.Now()
	entry := models.FeedbackEntry{
		Round:             round,
		CommentIDs:        commentIDs,
		Strengths:         params.Strengths,
		Improvements:      params.Improvements,
		OverallAssessment: params.OverallAssessment,
		CreatedAt:         now,
	}
	if err := o.contexts.AppendFeedbackGiven(ctx, actor.ID, entry); err != nil {
		return nil, err
	}
	if err := o.contexts.AppendFeedbackReceived(ctx, partner.ID, entry); err != nil {
		return nil, err
	}
	if len(params.Strengths) > 0 {
		learning := models.LearningEntry{
			Round:     round,
			Category:  "storytelling",
			Insight:   strings.Join(params.Strengths, "; "),
			CreatedAt: now,
		}
		if err := o.contexts.AppendLearning(ctx, partner.ID, learning); err != nil {
			return nil, err
		}
	}
	return map[string]any{"comment_ids": commentIDs}, nil
}

func (o *Collaborative) logPhaseFailure(participantID string, phase models.Phase, round int, err error) {
	o.log.Error("Phase execution failed",
		"participant_id", participantID, "phase", phase, "round", round, "error", err)
}

func findLink(links []models.PassageLink, label string) (models.PassageLink, bool) {
	for _, link := range links {
		if link.Label == label {
			return link, true
		}
	}
	// LLMs occasionally restate the label with different spacing or case.
	want := strings.ToLower(strings.TrimSpace(label))
	for _, link := range links {
		if strings.ToLower(strings.TrimSpace(link.Label)) == want {
			return link, true
		}
	}
	return models.PassageLink{}, false
}

// sessionStatus summarizes per-phase outcomes: complete when every phase
// succeeded, failed when none did, partial otherwise.
func sessionStatus(results []PhaseResult) models.SessionStatus {
	succeeded := 0
	for _, r := range results {
		if r.Success {
			succeeded++
		}
	}
	switch {
	case len(results) == 0 || succeeded == 0:
		return models.SessionFailed
	case succeeded == len(results):
		return models.SessionComplete
	default:
		return models.SessionPartial
	}
}
