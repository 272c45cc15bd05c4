package postgres

import (
	"context"
	"database/sql"

	"MedBoard/internal/core/likes"
	"MedBoard/internal/core/posts"
)

type postgresLikeRepo struct {
	db *sql.DB
}

// NewLikeRepository creates a new PostgreSQL like ledger
func NewLikeRepository(db *sql.DB) likes.Repository {
	return &postgresLikeRepo{db: db}
}

// Toggle flips the (postID, userName) like inside a transaction.
// Locking the parent post row serializes all toggles on the same post, so
// two concurrent toggles for the same pair resolve as if run sequentially.
// The lock query doubles as the post existence check.
func (r *postgresLikeRepo) Toggle(ctx context.Context, postID int64, userName string) (bool, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return false, posts.NewStorageError("begin like toggle", err)
	}
	defer tx.Rollback()

	var lockedID int64
	err = tx.QueryRowContext(ctx, `SELECT id FROM posts WHERE id = $1 FOR UPDATE`, postID).
		Scan(&lockedID)
	if err == sql.ErrNoRows {
		return false, likes.ErrPostNotFound
	}
	if err != nil {
		return false, posts.NewStorageError("lock post for toggle", err)
	}

	var likeID int64
	err = tx.QueryRowContext(ctx,
		`SELECT id FROM post_likes WHERE post_id = $1 AND user_name = $2`,
		postID, userName,
	).Scan(&likeID)

	var liked bool
	switch {
	case err == sql.ErrNoRows:
		_, err = tx.ExecContext(ctx,
			`INSERT INTO post_likes (post_id, user_name, created_at) VALUES ($1, $2, NOW())`,
			postID, userName,
		)
		if err != nil {
			return false, posts.NewStorageError("insert like", err)
		}
		liked = true

	case err != nil:
		return false, posts.NewStorageError("check existing like", err)

	default:
		if _, err := tx.ExecContext(ctx, `DELETE FROM post_likes WHERE id = $1`, likeID); err != nil {
			return false, posts.NewStorageError("delete like", err)
		}
		liked = false
	}

	if err := tx.Commit(); err != nil {
		return false, posts.NewStorageError("commit like toggle", err)
	}

	return liked, nil
}

// Remove deletes the (postID, userName) like; deleting an absent like is a
// no-op, never an error
func (r *postgresLikeRepo) Remove(ctx context.Context, postID int64, userName string) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM post_likes WHERE post_id = $1 AND user_name = $2`,
		postID, userName,
	)
	if err != nil {
		return posts.NewStorageError("remove like", err)
	}
	return nil
}

// Count returns the number of likes on a post
func (r *postgresLikeRepo) Count(ctx context.Context, postID int64) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM post_likes WHERE post_id = $1`, postID,
	).Scan(&count)
	if err != nil {
		return 0, posts.NewStorageError("count likes", err)
	}
	return count, nil
}

// DeleteAllForPost removes every like on a post; cascade hook
func (r *postgresLikeRepo) DeleteAllForPost(ctx context.Context, postID int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM post_likes WHERE post_id = $1`, postID); err != nil {
		return posts.NewStorageError("delete likes for post", err)
	}
	return nil
}
