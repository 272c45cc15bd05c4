package posts

import (
	"time"

	"MedBoard/internal/core/comments"
)

// Post is a single board post authored by a patient, doctor, or admin.
// Role is a snapshot of the author's role at post time; it does not track
// later role changes.
type Post struct {
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	Author    string    `json:"author" db:"author"`
	Role      string    `json:"role" db:"role"`
	Text      string    `json:"text" db:"text"`
	ID        int64     `json:"id" db:"id"`
}

// EnrichedPost is a post hydrated with read-time state: the live like count
// and the post's comments (newest first). Enrichment is computed when the
// board is read, never stored.
type EnrichedPost struct {
	Post
	Comments   []*comments.Comment `json:"comments"`
	LikesCount int                 `json:"likesCount"`
}
