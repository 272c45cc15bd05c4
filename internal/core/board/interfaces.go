package board

import (
	"context"

	"MedBoard/internal/core/comments"
	"MedBoard/internal/core/identity"
	"MedBoard/internal/core/posts"
)

// Service defines the business logic interface for the discussion board.
// It composes the post store, comment store, and like ledger, and enforces
// the authorization policy and the cascade-on-delete contract.
type Service interface {
	// CreatePost creates a post authored by the identity, snapshotting its
	// role. Fails with a ValidationError when the text trims to empty.
	CreatePost(ctx context.Context, id identity.Identity, text string) (*posts.Post, error)

	// EditPost replaces a post's text.
	// Flow: load post -> policy check -> validate text -> update.
	// Fails with posts.ErrNotFound, ErrForbidden, or a ValidationError;
	// on any failure the original text is left untouched.
	EditPost(ctx context.Context, id identity.Identity, postID int64, newText string) error

	// DeletePost removes a post and cascades to its comments and likes.
	// Fails with posts.ErrNotFound or ErrForbidden.
	DeletePost(ctx context.Context, id identity.Identity, postID int64) error

	// AddComment attaches a comment by the identity to a post.
	// Fails with comments.ErrPostNotFound or a validation error.
	AddComment(ctx context.Context, id identity.Identity, postID int64, text string) (*comments.Comment, error)

	// ListComments returns a post's comments newest-first.
	// Fails with posts.ErrNotFound when the post doesn't exist, rather than
	// returning an empty list for a missing post.
	ListComments(ctx context.Context, postID int64) ([]*comments.Comment, error)

	// ToggleLike flips the identity's like on a post and reports the
	// resulting state.
	ToggleLike(ctx context.Context, id identity.Identity, postID int64) (liked bool, err error)

	// RemoveLike explicitly removes the identity's like; idempotent ack
	RemoveLike(ctx context.Context, id identity.Identity, postID int64) error

	// LikeCount returns a post's live like count
	LikeCount(ctx context.Context, postID int64) (int, error)

	// ViewBoard lists posts newest-first, optionally filtered by the
	// author's role snapshot, each enriched with its live like count and
	// comments.
	ViewBoard(ctx context.Context, roleFilter string) ([]*posts.EnrichedPost, error)
}
