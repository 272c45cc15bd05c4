package likes

import "context"

// Repository defines the data access interface for the like ledger
type Repository interface {
	// Toggle flips the (postID, userName) membership: inserts the like and
	// returns true when absent, removes it and returns false when present.
	// Linearizable per key: two concurrent toggles for the same pair net out
	// to applying them in some sequential order. Toggles for different pairs
	// proceed independently.
	// Returns ErrPostNotFound when the post doesn't exist.
	Toggle(ctx context.Context, postID int64, userName string) (liked bool, err error)

	// Remove deletes the (postID, userName) like if present.
	// Idempotent: removing an absent like is a no-op, never an error, and
	// must never resurrect a like.
	Remove(ctx context.Context, postID int64, userName string) error

	// Count returns the number of likes on a post (zero for unknown posts)
	Count(ctx context.Context, postID int64) (int, error)

	// DeleteAllForPost removes every like referencing the post.
	// Idempotent cascade hook used by the post store.
	DeleteAllForPost(ctx context.Context, postID int64) error
}
