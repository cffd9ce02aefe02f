package profile

import "errors"

var (
	ErrProfileNotFound = errors.New("profile not found")
	ErrUnknownField    = errors.New("unknown profile field")
	ErrInvalidValue    = errors.New("invalid field value")
	ErrEmailRequired   = errors.New("email is required")
)
