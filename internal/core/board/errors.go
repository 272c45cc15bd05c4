package board

import "errors"

// ErrForbidden indicates the authorization policy denied the operation
var ErrForbidden = errors.New("not allowed to modify this post")

// IsForbidden checks if an error is an authorization denial
func IsForbidden(err error) bool {
	return errors.Is(err, ErrForbidden)
}
