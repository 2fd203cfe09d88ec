// internal/room/errors.go
package room

import "errors"

var (
	// ErrValidation marks a constraint violation on room construction or
	// mutation. Callers can match it with errors.Is.
	ErrValidation = errors.New("room validation error")
)
