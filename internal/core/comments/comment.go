package comments

import "time"

// Comment is a reply attached to a post. Comments have no independent
// lifecycle in this core: they are created by any authenticated identity and
// removed only when their parent post is deleted.
type Comment struct {
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	Author    string    `json:"author" db:"author"`
	Text      string    `json:"text" db:"text"`
	PostID    int64     `json:"postId" db:"post_id"`
	ID        int64     `json:"id" db:"id"`
}
