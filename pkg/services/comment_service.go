package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/dyadlab/fabula/ent"
	"github.com/dyadlab/fabula/ent/comment"
	"github.com/dyadlab/fabula/pkg/models"
)

// maxThreadDepth bounds getThread traversal so a malformed or malicious
// reply chain cannot produce unbounded queries.
const maxThreadDepth = 10

// CommentService manages typed feedback comments and their reply threads.
type CommentService struct {
	client *ent.Client
}

// NewCommentService creates a new CommentService
func NewCommentService(client *ent.Client) *CommentService {
	return &CommentService{client: client}
}

// CreateCommentInput is the payload for Create.
type CreateCommentInput struct {
	AuthorID            string
	TargetParticipantID string
	StoryArtifactID     string
	PassageID           string
	Content             string
	Type                models.CommentType
	Round               int
	Phase               models.Phase
	ParentID            string
}

// Create inserts one comment. Unknown types collapse to feedback.
func (s *CommentService) Create(ctx context.Context, input CreateCommentInput) (*models.Comment, error) {
	if input.AuthorID == "" || input.TargetParticipantID == "" {
		return nil, NewValidationError("author_id", "author and target are required")
	}
	if input.Content == "" {
		return nil, NewValidationError("content", "comment content is required")
	}
	if input.Round < 1 {
		return nil, NewValidationError("round", "round must be >= 1")
	}
	phase := input.Phase
	if phase == "" {
		phase = models.PhaseReview
	}
	if !models.ValidPhase(phase) {
		return nil, NewValidationError("phase", fmt.Sprintf("unknown phase %q", input.Phase))
	}

	builder := s.client.Comment.Create().
		SetID(uuid.NewString()).
		SetAuthorID(input.AuthorID).
		SetTargetParticipantID(input.TargetParticipantID).
		SetContent(input.Content).
		SetType(comment.Type(models.ParseCommentType(string(input.Type)))).
		SetRound(input.Round).
		SetPhase(comment.Phase(phase))
	if input.StoryArtifactID != "" {
		builder = builder.SetStoryArtifactID(input.StoryArtifactID)
	}
	if input.PassageID != "" {
		builder = builder.SetPassageID(input.PassageID)
	}
	if input.ParentID != "" {
		builder = builder.SetParentID(input.ParentID)
	}
	row, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}
	return commentFromEnt(row), nil
}

// Get fetches a comment by ID.
func (s *CommentService) Get(ctx context.Context, id string) (*models.Comment, error) {
	row, err := s.client.Comment.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: comment %s", ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to get comment %s: %w", id, err)
	}
	return commentFromEnt(row), nil
}

// Received returns comments targeting a participant, optionally narrowed to
// one round and phase (pass round 0 to skip the filter).
func (s *CommentService) Received(ctx context.Context, participantID string, round int, phase models.Phase) ([]*models.Comment, error) {
	q := s.client.Comment.Query().
		Where(comment.TargetParticipantIDEQ(participantID))
	if round > 0 {
		q = q.Where(comment.RoundEQ(round))
	}
	if phase != "" {
		q = q.Where(comment.PhaseEQ(comment.Phase(phase)))
	}
	rows, err := q.Order(ent.Asc(comment.FieldCreatedAt)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list received comments for %s: %w", participantID, err)
	}
	return commentsFromEnt(rows), nil
}

// Authored returns comments written by a participant.
func (s *CommentService) Authored(ctx context.Context, authorID string, round int) ([]*models.Comment, error) {
	q := s.client.Comment.Query().
		Where(comment.AuthorIDEQ(authorID))
	if round > 0 {
		q = q.Where(comment.RoundEQ(round))
	}
	rows, err := q.Order(ent.Asc(comment.FieldCreatedAt)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list authored comments for %s: %w", authorID, err)
	}
	return commentsFromEnt(rows), nil
}

// ByStory returns comments attached to a story artifact.
func (s *CommentService) ByStory(ctx context.Context, storyArtifactID string) ([]*models.Comment, error) {
	rows, err := s.client.Comment.Query().
		Where(comment.StoryArtifactIDEQ(storyArtifactID)).
		Order(ent.Asc(comment.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments for story %s: %w", storyArtifactID, err)
	}
	return commentsFromEnt(rows), nil
}

// Replies returns the direct replies to a comment.
func (s *CommentService) Replies(ctx context.Context, parentID string) ([]*models.Comment, error) {
	rows, err := s.client.Comment.Query().
		Where(comment.ParentIDEQ(parentID)).
		Order(ent.Asc(comment.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list replies to comment %s: %w", parentID, err)
	}
	return commentsFromEnt(rows), nil
}

// GetThread returns the root comment plus all transitive replies in creation
// order, traversing at most maxThreadDepth levels.
func (s *CommentService) GetThread(ctx context.Context, rootID string) ([]*models.Comment, error) {
	root, err := s.Get(ctx, rootID)
	if err != nil {
		return nil, err
	}

	thread := []*models.Comment{root}
	frontier := []string{rootID}
	for depth := 0; depth < maxThreadDepth && len(frontier) > 0; depth++ {
		rows, err := s.client.Comment.Query().
			Where(comment.ParentIDIn(frontier...)).
			Order(ent.Asc(comment.FieldCreatedAt)).
			All(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to traverse thread %s: %w", rootID, err)
		}
		frontier = frontier[:0]
		for _, row := range rows {
			thread = append(thread, commentFromEnt(row))
			frontier = append(frontier, row.ID)
		}
	}
	return thread, nil
}

// Resolve marks a comment addressed in the given round.
func (s *CommentService) Resolve(ctx context.Context, id string, addressedInRound int) error {
	err := s.client.Comment.UpdateOneID(id).
		SetResolved(true).
		SetAddressedInRound(addressedInRound).
		Exec(ctx)
	if ent.IsNotFound(err) {
		return fmt.Errorf("%w: comment %s", ErrNotFound, id)
	}
	if err != nil {
		return fmt.Errorf("failed to resolve comment %s: %w", id, err)
	}
	return nil
}

// Unresolve clears a comment's resolved flag.
func (s *CommentService) Unresolve(ctx context.Context, id string) error {
	err := s.client.Comment.UpdateOneID(id).
		SetResolved(false).
		ClearAddressedInRound().
		Exec(ctx)
	if ent.IsNotFound(err) {
		return fmt.Errorf("%w: comment %s", ErrNotFound, id)
	}
	if err != nil {
		return fmt.Errorf("failed to unresolve comment %s: %w", id, err)
	}
	return nil
}

// UpdateContent replaces a comment's text.
func (s *CommentService) UpdateContent(ctx context.Context, id, content string) error {
	if content == "" {
		return NewValidationError("content", "comment content is required")
	}
	err := s.client.Comment.UpdateOneID(id).
		SetContent(content).
		Exec(ctx)
	if ent.IsNotFound(err) {
		return fmt.Errorf("%w: comment %s", ErrNotFound, id)
	}
	if err != nil {
		return fmt.Errorf("failed to update comment %s: %w", id, err)
	}
	return nil
}

// Delete removes a comment and its direct replies (one cascade level).
func (s *CommentService) Delete(ctx context.Context, id string) error {
	return runTx(ctx, s.client, func(tx *ent.Tx) error {
		if _, err := tx.Comment.Delete().
			Where(comment.ParentIDEQ(id)).
			Exec(ctx); err != nil {
			return fmt.Errorf("failed to delete replies of comment %s: %w", id, err)
		}
		if err := tx.Comment.DeleteOneID(id).Exec(ctx); err != nil {
			if ent.IsNotFound(err) {
				return fmt.Errorf("%w: comment %s", ErrNotFound, id)
			}
			return fmt.Errorf("failed to delete comment %s: %w", id, err)
		}
		return nil
	})
}

// RoundStats summarizes a participant's comment traffic for one round.
type RoundStats struct {
	Received   int                        `json:"received"`
	Given      int                        `json:"given"`
	Resolved   int                        `json:"resolved"`
	Unresolved int                        `json:"unresolved"`
	ByType     map[models.CommentType]int `json:"by_type"`
}

// StatsForRound computes received/given/resolved counts and a per-type
// histogram over the comments a participant received in one round.
func (s *CommentService) StatsForRound(ctx context.Context, participantID string, round int) (*RoundStats, error) {
	received, err := s.client.Comment.Query().
		Where(
			comment.TargetParticipantIDEQ(participantID),
			comment.RoundEQ(round),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query received comments: %w", err)
	}
	given, err := s.client.Comment.Query().
		Where(
			comment.AuthorIDEQ(participantID),
			comment.RoundEQ(round),
		).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count given comments: %w", err)
	}

	stats := &RoundStats{
		Received: len(received),
		Given:    given,
		ByType:   make(map[models.CommentType]int),
	}
	for _, row := range received {
		if row.Resolved {
			stats.Resolved++
		} else {
			stats.Unresolved++
		}
		stats.ByType[models.CommentType(row.Type)]++
	}
	return stats, nil
}
