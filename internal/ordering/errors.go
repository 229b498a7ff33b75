package ordering

import "errors"

// Caller-contract violations. None of these are recoverable at runtime.
var (
	ErrInvalidIndex = errors.New("index out of range")
	ErrUnknownID    = errors.New("unknown id")
	ErrDuplicateID  = errors.New("duplicate id in sibling collection")
)
