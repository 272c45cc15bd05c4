package board

import (
	"context"
	"log/slog"
	"strings"

	"MedBoard/internal/core/comments"
	"MedBoard/internal/core/identity"
	"MedBoard/internal/core/likes"
	"MedBoard/internal/core/posts"
)

type boardService struct {
	posts    posts.Repository
	comments comments.Repository
	likes    likes.Repository
	logger   *slog.Logger
}

// NewBoardService creates a new board service over the three stores.
// logger can be nil; slog.Default() is used in that case.
func NewBoardService(
	postRepo posts.Repository,
	commentRepo comments.Repository,
	likeRepo likes.Repository,
	logger *slog.Logger,
) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &boardService{
		posts:    postRepo,
		comments: commentRepo,
		likes:    likeRepo,
		logger:   logger,
	}
}

// CreatePost creates a post authored by the identity
// Flow:
// 1. Validate identity name and role
// 2. Validate text (non-empty after trim)
// 3. Persist; the store assigns id and createdAt
func (s *boardService) CreatePost(ctx context.Context, id identity.Identity, text string) (*posts.Post, error) {
	if strings.TrimSpace(id.Name) == "" {
		return nil, posts.NewValidationError("author", "author is required")
	}
	if !id.Role.Valid() {
		return nil, posts.NewValidationError("role", "role must be patient, doctor, or admin")
	}

	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, posts.NewValidationError("text", "text is required")
	}

	post := &posts.Post{
		Author: id.Name,
		Role:   string(id.Role),
		Text:   trimmed,
	}
	if err := s.posts.Create(ctx, post); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "post created",
		"postId", post.ID, "author", post.Author, "role", post.Role)
	return post, nil
}

// EditPost replaces a post's text after the policy check.
// Validation runs before the write: a forbidden or blank edit leaves the
// stored text untouched.
func (s *boardService) EditPost(ctx context.Context, id identity.Identity, postID int64, newText string) error {
	post, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		return err
	}

	if !CanModify(id, post, ActionEdit) {
		s.logger.WarnContext(ctx, "edit denied",
			"postId", postID, "caller", id.Name, "role", id.Role)
		return ErrForbidden
	}

	trimmed := strings.TrimSpace(newText)
	if trimmed == "" {
		return posts.NewValidationError("text", "text is required")
	}

	return s.posts.UpdateText(ctx, postID, trimmed)
}

// DeletePost removes a post and cascades to its comments and likes
func (s *boardService) DeletePost(ctx context.Context, id identity.Identity, postID int64) error {
	post, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		return err
	}

	if !CanModify(id, post, ActionDelete) {
		s.logger.WarnContext(ctx, "delete denied",
			"postId", postID, "caller", id.Name, "role", id.Role)
		return ErrForbidden
	}

	if err := s.posts.DeleteCascade(ctx, postID); err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "post deleted", "postId", postID, "caller", id.Name)
	return nil
}

// AddComment attaches a comment by the identity to a post.
// Any authenticated identity may comment; there is no policy gate here.
func (s *boardService) AddComment(ctx context.Context, id identity.Identity, postID int64, text string) (*comments.Comment, error) {
	if strings.TrimSpace(id.Name) == "" {
		return nil, comments.ErrAuthorRequired
	}

	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, comments.ErrTextRequired
	}

	comment := &comments.Comment{
		PostID: postID,
		Author: id.Name,
		Text:   trimmed,
	}
	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, err
	}

	return comment, nil
}

// ListComments returns a post's comments newest-first.
// The post is loaded first so a deleted post yields not-found instead of a
// stale empty list.
func (s *boardService) ListComments(ctx context.Context, postID int64) ([]*comments.Comment, error) {
	if _, err := s.posts.GetByID(ctx, postID); err != nil {
		return nil, err
	}
	return s.comments.ListForPost(ctx, postID)
}

// ToggleLike flips the identity's like on a post
func (s *boardService) ToggleLike(ctx context.Context, id identity.Identity, postID int64) (bool, error) {
	if strings.TrimSpace(id.Name) == "" {
		return false, likes.ErrUserNameRequired
	}
	return s.likes.Toggle(ctx, postID, id.Name)
}

// RemoveLike explicitly removes the identity's like; no error when absent
func (s *boardService) RemoveLike(ctx context.Context, id identity.Identity, postID int64) error {
	return s.likes.Remove(ctx, postID, id.Name)
}

// LikeCount returns a post's live like count
func (s *boardService) LikeCount(ctx context.Context, postID int64) (int, error) {
	return s.likes.Count(ctx, postID)
}

// ViewBoard lists posts with read-time enrichment
func (s *boardService) ViewBoard(ctx context.Context, roleFilter string) ([]*posts.EnrichedPost, error) {
	return s.posts.ListEnriched(ctx, strings.TrimSpace(roleFilter))
}
