package likes

import "errors"

var (
	// ErrPostNotFound indicates the post being liked doesn't exist
	ErrPostNotFound = errors.New("post not found")

	// ErrUserNameRequired indicates the liking user's name is empty
	ErrUserNameRequired = errors.New("user name is required")
)

// IsNotFound checks if an error is a "not found" error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrPostNotFound)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrUserNameRequired)
}
