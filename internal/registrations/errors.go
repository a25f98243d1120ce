package registrations

import "errors"

var (
	ErrNotFound     = errors.New("registration not found")
	ErrInvalidInput = errors.New("invalid input")
)
