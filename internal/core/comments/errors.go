package comments

import "errors"

var (
	// ErrPostNotFound indicates the parent post doesn't exist
	ErrPostNotFound = errors.New("post not found")

	// ErrAuthorRequired indicates the comment author name is empty
	ErrAuthorRequired = errors.New("comment author is required")

	// ErrTextRequired indicates the comment text is empty after trimming
	ErrTextRequired = errors.New("comment text is required")
)

// IsNotFound checks if an error is a "not found" error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrPostNotFound)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrAuthorRequired) ||
		errors.Is(err, ErrTextRequired)
}
