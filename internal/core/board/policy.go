package board

import (
	"MedBoard/internal/core/identity"
	"MedBoard/internal/core/posts"
)

// Action is a policy-gated operation on a post
type Action string

const (
	ActionEdit   Action = "edit"
	ActionDelete Action = "delete"
)

// CanModify decides whether an identity may perform action on post.
// Pure function: no I/O, no side effects.
//
// Edit is granted to admins and doctors on any post, and to the post's
// author on their own. Delete is granted to admins and doctors only;
// authors cannot delete their own posts. The asymmetry is inherited from
// the site's moderation rules (see DESIGN.md).
func CanModify(id identity.Identity, post *posts.Post, action Action) bool {
	switch action {
	case ActionEdit:
		return id.Role.IsStaff() || id.Name == post.Author
	case ActionDelete:
		return id.Role.IsStaff()
	default:
		return false
	}
}
