package contact

import "errors"

// ErrAllFieldsRequired indicates one of the four contact fields is empty
var ErrAllFieldsRequired = errors.New("full name, email, subject and message are required")

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrAllFieldsRequired)
}
