package postgres

import (
	"context"
	"database/sql"
	"strings"

	"MedBoard/internal/core/comments"
	"MedBoard/internal/core/posts"
)

type postgresCommentRepo struct {
	db *sql.DB
}

// NewCommentRepository creates a new PostgreSQL comment repository
func NewCommentRepository(db *sql.DB) comments.Repository {
	return &postgresCommentRepo{db: db}
}

// Create inserts a new comment; the foreign key enforces that the parent
// post exists at insert time
func (r *postgresCommentRepo) Create(ctx context.Context, comment *comments.Comment) error {
	query := `
		INSERT INTO comments (post_id, author, text, created_at)
		VALUES ($1, $2, $3, NOW())
		RETURNING id, created_at
	`

	err := r.db.QueryRowContext(ctx, query, comment.PostID, comment.Author, comment.Text).
		Scan(&comment.ID, &comment.CreatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "violates foreign key constraint") {
			return comments.ErrPostNotFound
		}
		return posts.NewStorageError("create comment", err)
	}

	return nil
}

// ListForPost retrieves a post's comments newest-first
func (r *postgresCommentRepo) ListForPost(ctx context.Context, postID int64) ([]*comments.Comment, error) {
	query := `
		SELECT id, post_id, author, text, created_at
		FROM comments
		WHERE post_id = $1
		ORDER BY id DESC
	`

	rows, err := r.db.QueryContext(ctx, query, postID)
	if err != nil {
		return nil, posts.NewStorageError("list comments", err)
	}
	defer rows.Close()

	result := []*comments.Comment{}
	for rows.Next() {
		var c comments.Comment
		if err := rows.Scan(&c.ID, &c.PostID, &c.Author, &c.Text, &c.CreatedAt); err != nil {
			return nil, posts.NewStorageError("scan comment", err)
		}
		result = append(result, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, posts.NewStorageError("scan comments", err)
	}

	return result, nil
}

// DeleteAllForPost removes every comment on a post; no-op when none exist
func (r *postgresCommentRepo) DeleteAllForPost(ctx context.Context, postID int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM comments WHERE post_id = $1`, postID); err != nil {
		return posts.NewStorageError("delete comments for post", err)
	}
	return nil
}
