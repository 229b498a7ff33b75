package events

import (
	"errors"
	"log/slog"
	"time"
)

// queueFullBackoff is the first pause after ErrQueueFull; it doubles per attempt
const queueFullBackoff = 20 * time.Millisecond

// Publish sends event, retrying while the queue is full. Any other error,
// including ErrClosed, is returned at once. A nil publisher is a no-op.
func Publish(p EventPublisher, event Event, attempts int) error {
	if p == nil {
		return nil
	}
	attempts = max(attempts, 1)

	var err error
	for i := range attempts {
		if err = p.SendEvent(event); !errors.Is(err, ErrQueueFull) {
			break
		}
		if i < attempts-1 {
			time.Sleep(queueFullBackoff << i)
		}
	}

	if err != nil {
		slog.Warn("event dropped",
			"event_type", event.Type,
			"board_id", event.BoardID,
			"error", err)
	}
	return err
}
