package board

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"MedBoard/internal/core/identity"
	"MedBoard/internal/core/posts"
)

func TestCanModify(t *testing.T) {
	post := &posts.Post{ID: 1, Author: "Ann", Role: "patient", Text: "Hi"}

	tests := []struct {
		name   string
		id     identity.Identity
		action Action
		want   bool
	}{
		{"admin can edit any post", identity.Identity{Name: "Root", Role: identity.RoleAdmin}, ActionEdit, true},
		{"doctor can edit any post", identity.Identity{Name: "DrWho", Role: identity.RoleDoctor}, ActionEdit, true},
		{"author can edit own post", identity.Identity{Name: "Ann", Role: identity.RolePatient}, ActionEdit, true},
		{"other patient cannot edit", identity.Identity{Name: "Bob", Role: identity.RolePatient}, ActionEdit, false},

		{"admin can delete any post", identity.Identity{Name: "Root", Role: identity.RoleAdmin}, ActionDelete, true},
		{"doctor can delete any post", identity.Identity{Name: "DrWho", Role: identity.RoleDoctor}, ActionDelete, true},
		{"author cannot delete own post", identity.Identity{Name: "Ann", Role: identity.RolePatient}, ActionDelete, false},
		{"other patient cannot delete", identity.Identity{Name: "Bob", Role: identity.RolePatient}, ActionDelete, false},

		{"unknown action is denied", identity.Identity{Name: "Root", Role: identity.RoleAdmin}, Action("archive"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanModify(tt.id, post, tt.action))
		})
	}
}
