package identity

import (
	"errors"
	"fmt"
	"strings"
)

// Role classifies a board identity. The role is assigned by the login
// collaborator and trusted as-is by the core.
type Role string

const (
	RolePatient Role = "patient"
	RoleDoctor  Role = "doctor"
	RoleAdmin   Role = "admin"
)

// ErrUnknownRole indicates the supplied role string is not a recognized role
var ErrUnknownRole = errors.New("unknown role")

// ParseRole normalizes and validates a role string
func ParseRole(s string) (Role, error) {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RolePatient:
		return RolePatient, nil
	case RoleDoctor:
		return RoleDoctor, nil
	case RoleAdmin:
		return RoleAdmin, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownRole, s)
	}
}

// Valid reports whether the role is one of the three recognized roles
func (r Role) Valid() bool {
	return r == RolePatient || r == RoleDoctor || r == RoleAdmin
}

// IsStaff reports whether the role carries moderation privileges
func (r Role) IsStaff() bool {
	return r == RoleAdmin || r == RoleDoctor
}

// Identity is the authenticated caller as handed off by the login
// collaborator: a display name plus the role it held at login time.
// The core performs no re-verification against a credential store.
type Identity struct {
	Name string `json:"name"`
	Role Role   `json:"role"`
}
