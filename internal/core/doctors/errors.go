package doctors

import "errors"

var (
	// ErrNotFound indicates the requested doctor doesn't exist
	ErrNotFound = errors.New("doctor not found")

	// ErrNameRequired indicates the doctor's name is empty
	ErrNameRequired = errors.New("name is required")

	// ErrSpecialtyRequired indicates the doctor's specialty is empty
	ErrSpecialtyRequired = errors.New("specialty is required")

	// ErrNotAuthorized indicates the caller may not manage the directory
	ErrNotAuthorized = errors.New("not authorized to manage doctors")
)

// IsNotFound checks if an error is a "not found" error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrNameRequired) ||
		errors.Is(err, ErrSpecialtyRequired)
}
