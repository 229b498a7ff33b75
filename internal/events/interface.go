package events

import "context"

// EventPublisher defines the interface for sending and receiving events.
// This interface allows for loose coupling and easier testing by depending
// on behavior rather than concrete implementation.
type EventPublisher interface {
	// SendEvent queues an event for delivery without blocking
	SendEvent(event Event) error

	// Listen returns a channel receiving every dispatched event that passes
	// the current subscription. It is closed when ctx is done or on Close.
	Listen(ctx context.Context) (<-chan Event, error)

	// Subscribe restricts delivery to one board. Empty means all boards.
	Subscribe(boardID string) error

	// Close stops dispatching and closes every listener channel
	Close() error
}

// Compile-time verification that *Bus implements EventPublisher
var _ EventPublisher = (*Bus)(nil)
