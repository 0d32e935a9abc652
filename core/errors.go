package core

import "errors"

var (
	// ErrInvalidOperation signals a call that is not allowed in the current state, e.g. moving a dead snake
	ErrInvalidOperation = errors.New("invalid operation")
	// ErrDirectionOutOfRange signals a Direction outside the four headings
	ErrDirectionOutOfRange = errors.New("direction out of range")
)
