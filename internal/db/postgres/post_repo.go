package postgres

import (
	"context"
	"database/sql"

	"github.com/lib/pq"

	"MedBoard/internal/core/comments"
	"MedBoard/internal/core/posts"
)

type postgresPostRepo struct {
	db *sql.DB
}

// NewPostRepository creates a new PostgreSQL post repository
func NewPostRepository(db *sql.DB) posts.Repository {
	return &postgresPostRepo{db: db}
}

// Create inserts a new post; the database assigns id and created_at
func (r *postgresPostRepo) Create(ctx context.Context, post *posts.Post) error {
	query := `
		INSERT INTO posts (author, role, text, created_at)
		VALUES ($1, $2, $3, NOW())
		RETURNING id, created_at
	`

	err := r.db.QueryRowContext(ctx, query, post.Author, post.Role, post.Text).
		Scan(&post.ID, &post.CreatedAt)
	if err != nil {
		return posts.NewStorageError("create post", err)
	}

	return nil
}

// GetByID retrieves a post by id
func (r *postgresPostRepo) GetByID(ctx context.Context, id int64) (*posts.Post, error) {
	query := `
		SELECT id, author, role, text, created_at
		FROM posts
		WHERE id = $1
	`

	var post posts.Post
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&post.ID, &post.Author, &post.Role, &post.Text, &post.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, posts.ErrNotFound
	}
	if err != nil {
		return nil, posts.NewStorageError("get post", err)
	}

	return &post, nil
}

// List retrieves posts newest-first, optionally filtered by role snapshot
func (r *postgresPostRepo) List(ctx context.Context, roleFilter string) ([]*posts.Post, error) {
	query := `
		SELECT id, author, role, text, created_at
		FROM posts
		WHERE ($1 = '' OR role = $1)
		ORDER BY id DESC
	`

	rows, err := r.db.QueryContext(ctx, query, roleFilter)
	if err != nil {
		return nil, posts.NewStorageError("list posts", err)
	}
	defer rows.Close()

	return scanPosts(rows)
}

// ListEnriched retrieves posts with their live like counts and comments.
// The three reads run in one REPEATABLE READ read-only transaction so the
// join never observes a cascade delete halfway through.
func (r *postgresPostRepo) ListEnriched(ctx context.Context, roleFilter string) ([]*posts.EnrichedPost, error) {
	tx, err := r.db.BeginTx(ctx, &sql.TxOptions{
		Isolation: sql.LevelRepeatableRead,
		ReadOnly:  true,
	})
	if err != nil {
		return nil, posts.NewStorageError("begin board read", err)
	}
	defer tx.Rollback()

	query := `
		SELECT id, author, role, text, created_at
		FROM posts
		WHERE ($1 = '' OR role = $1)
		ORDER BY id DESC
	`

	rows, err := tx.QueryContext(ctx, query, roleFilter)
	if err != nil {
		return nil, posts.NewStorageError("list posts", err)
	}
	plain, err := scanPosts(rows)
	rows.Close()
	if err != nil {
		return nil, err
	}

	enriched := make([]*posts.EnrichedPost, 0, len(plain))
	byID := make(map[int64]*posts.EnrichedPost, len(plain))
	ids := make([]int64, 0, len(plain))
	for _, p := range plain {
		ep := &posts.EnrichedPost{
			Post:     *p,
			Comments: []*comments.Comment{},
		}
		enriched = append(enriched, ep)
		byID[p.ID] = ep
		ids = append(ids, p.ID)
	}

	if len(ids) == 0 {
		return enriched, tx.Commit()
	}

	countQuery := `
		SELECT post_id, COUNT(*)
		FROM post_likes
		WHERE post_id = ANY($1)
		GROUP BY post_id
	`
	countRows, err := tx.QueryContext(ctx, countQuery, pq.Array(ids))
	if err != nil {
		return nil, posts.NewStorageError("count likes", err)
	}
	for countRows.Next() {
		var postID int64
		var count int
		if err := countRows.Scan(&postID, &count); err != nil {
			countRows.Close()
			return nil, posts.NewStorageError("count likes", err)
		}
		if ep, ok := byID[postID]; ok {
			ep.LikesCount = count
		}
	}
	countRows.Close()
	if err := countRows.Err(); err != nil {
		return nil, posts.NewStorageError("count likes", err)
	}

	commentQuery := `
		SELECT id, post_id, author, text, created_at
		FROM comments
		WHERE post_id = ANY($1)
		ORDER BY id DESC
	`
	commentRows, err := tx.QueryContext(ctx, commentQuery, pq.Array(ids))
	if err != nil {
		return nil, posts.NewStorageError("list comments", err)
	}
	for commentRows.Next() {
		var c comments.Comment
		if err := commentRows.Scan(&c.ID, &c.PostID, &c.Author, &c.Text, &c.CreatedAt); err != nil {
			commentRows.Close()
			return nil, posts.NewStorageError("list comments", err)
		}
		if ep, ok := byID[c.PostID]; ok {
			ep.Comments = append(ep.Comments, &c)
		}
	}
	commentRows.Close()
	if err := commentRows.Err(); err != nil {
		return nil, posts.NewStorageError("list comments", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, posts.NewStorageError("commit board read", err)
	}

	return enriched, nil
}

// UpdateText replaces a post's text in place; created_at is untouched
func (r *postgresPostRepo) UpdateText(ctx context.Context, id int64, text string) error {
	result, err := r.db.ExecContext(ctx, `UPDATE posts SET text = $1 WHERE id = $2`, text, id)
	if err != nil {
		return posts.NewStorageError("update post text", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return posts.NewStorageError("update post text", err)
	}
	if affected == 0 {
		return posts.ErrNotFound
	}

	return nil
}

// DeleteCascade removes the post and its comments and likes in one
// transaction. The schema's ON DELETE CASCADE would cover the children on
// its own; the explicit deletes keep the contract independent of the schema.
func (r *postgresPostRepo) DeleteCascade(ctx context.Context, id int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return posts.NewStorageError("begin cascade delete", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM comments WHERE post_id = $1`, id); err != nil {
		return posts.NewStorageError("cascade delete comments", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM post_likes WHERE post_id = $1`, id); err != nil {
		return posts.NewStorageError("cascade delete likes", err)
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return posts.NewStorageError("delete post", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return posts.NewStorageError("delete post", err)
	}
	if affected == 0 {
		return posts.ErrNotFound
	}

	if err := tx.Commit(); err != nil {
		return posts.NewStorageError("commit cascade delete", err)
	}

	return nil
}

func scanPosts(rows *sql.Rows) ([]*posts.Post, error) {
	var result []*posts.Post
	for rows.Next() {
		var post posts.Post
		if err := rows.Scan(&post.ID, &post.Author, &post.Role, &post.Text, &post.CreatedAt); err != nil {
			return nil, posts.NewStorageError("scan post", err)
		}
		result = append(result, &post)
	}
	if err := rows.Err(); err != nil {
		return nil, posts.NewStorageError("scan posts", err)
	}
	return result, nil
}
