package events

import "errors"

var (
	// ErrQueueFull is returned by SendEvent when the dispatcher is behind
	ErrQueueFull = errors.New("event queue full")

	// ErrClosed is returned when publishing on a closed bus
	ErrClosed = errors.New("event bus closed")
)
