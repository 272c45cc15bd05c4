package comments

import "context"

// Repository defines the data access interface for comments
//
// Referential integrity is the store's job: a comment can only be created
// against an existing post, and the post store's cascade is the only way a
// comment is ever removed.
type Repository interface {
	// Create inserts a new comment; the store assigns ID and CreatedAt.
	// Returns ErrPostNotFound when PostID doesn't reference an existing post.
	Create(ctx context.Context, comment *Comment) error

	// ListForPost retrieves a post's comments newest-first (id descending).
	// A post with no comments yields an empty slice, not an error; callers
	// that need "post exists" semantics check the post store first.
	ListForPost(ctx context.Context, postID int64) ([]*Comment, error)

	// DeleteAllForPost removes every comment referencing the post.
	// Idempotent: deleting for a post with no comments is a no-op.
	// Used by the post store's cascade.
	DeleteAllForPost(ctx context.Context, postID int64) error
}
