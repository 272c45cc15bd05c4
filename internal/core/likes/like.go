package likes

import "time"

// Like is one user's like on one post. Its identity is the
// (PostID, UserName) pair: a user likes a given post at most once.
type Like struct {
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UserName  string    `json:"userName" db:"user_name"`
	PostID    int64     `json:"postId" db:"post_id"`
	ID        int64     `json:"id" db:"id"`
}
