package posts

import "context"

// Repository defines the data access interface for posts
type Repository interface {
	// Create inserts a new post. The store assigns ID and CreatedAt
	// (server clock) and writes them back onto the post.
	Create(ctx context.Context, post *Post) error

	// GetByID retrieves a post by id
	// Returns ErrNotFound when the id is unknown
	GetByID(ctx context.Context, id int64) (*Post, error)

	// List retrieves posts newest-first (id descending), a snapshot at call
	// time. roleFilter, when non-empty, restricts to posts whose author held
	// that role at post time.
	List(ctx context.Context, roleFilter string) ([]*Post, error)

	// ListEnriched retrieves posts newest-first, each hydrated with its live
	// like count and comment list. The join runs in a single consistent
	// snapshot: a concurrent cascade delete is observed either fully applied
	// or not at all, never halfway.
	ListEnriched(ctx context.Context, roleFilter string) ([]*EnrichedPost, error)

	// UpdateText replaces a post's text in place, leaving CreatedAt untouched
	// Returns ErrNotFound when the id is unknown
	UpdateText(ctx context.Context, id int64, text string) error

	// DeleteCascade removes the post and every comment and like referencing
	// it, atomically with respect to readers.
	// Returns ErrNotFound when the id is unknown
	DeleteCascade(ctx context.Context, id int64) error
}
