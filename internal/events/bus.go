package events

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

const (
	defaultQueueSize    = 100
	defaultListenBuffer = 32
)

type listener struct {
	ch  chan Event
	ctx context.Context
}

// Bus is an in-process event publisher. Events are queued without blocking
// the sender and fanned out to listeners by a single dispatcher goroutine.
type Bus struct {
	mu sync.RWMutex

	eventQueue chan Event
	closed     bool // Prevent double-close panics

	listeners   map[*listener]struct{}
	boardFilter string

	lastSequence int64
	logger       *slog.Logger

	dispatcherDone chan struct{}
}

// NewBus creates a bus and starts its dispatcher
func NewBus(logger *slog.Logger) *Bus {
	if logger == nil {
		logger = slog.Default()
	}
	b := &Bus{
		eventQueue:     make(chan Event, defaultQueueSize),
		listeners:      make(map[*listener]struct{}),
		logger:         logger,
		dispatcherDone: make(chan struct{}),
	}
	go b.dispatch()
	return b
}

// SendEvent queues an event. Returns ErrQueueFull instead of blocking.
func (b *Bus) SendEvent(event Event) error {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		return ErrClosed
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	select {
	case b.eventQueue <- event:
		return nil
	default:
		return ErrQueueFull
	}
}

// Listen registers a listener for dispatched events
func (b *Bus) Listen(ctx context.Context) (<-chan Event, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil, ErrClosed
	}

	l := &listener{ch: make(chan Event, defaultListenBuffer), ctx: ctx}
	b.listeners[l] = struct{}{}

	go func() {
		select {
		case <-ctx.Done():
			b.removeListener(l)
		case <-b.dispatcherDone:
		}
	}()

	return l.ch, nil
}

// Subscribe changes the board filter. Empty subscribes to all boards.
func (b *Bus) Subscribe(boardID string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return ErrClosed
	}
	b.boardFilter = boardID
	return nil
}

// Close drains queued events to listeners, then closes them.
func (b *Bus) Close() error {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return nil
	}
	b.closed = true
	close(b.eventQueue)
	b.mu.Unlock()

	<-b.dispatcherDone

	b.mu.Lock()
	defer b.mu.Unlock()
	for l := range b.listeners {
		close(l.ch)
		delete(b.listeners, l)
	}
	return nil
}

func (b *Bus) removeListener(l *listener) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.listeners[l]; ok {
		delete(b.listeners, l)
		close(l.ch)
	}
}

// dispatch runs in its own goroutine until the queue is closed
func (b *Bus) dispatch() {
	defer close(b.dispatcherDone)

	for event := range b.eventQueue {
		b.mu.Lock()
		b.lastSequence++
		event.SequenceID = b.lastSequence

		if b.boardFilter != "" && event.BoardID != "" && event.BoardID != b.boardFilter {
			b.mu.Unlock()
			continue
		}

		for l := range b.listeners {
			if l.ctx.Err() != nil {
				continue
			}
			select {
			case l.ch <- event:
			default:
				// Slow listener, drop rather than stall every sender
				b.logger.Warn("dropping event for slow listener",
					"event_type", event.Type,
					"board_id", event.BoardID,
					"sequence", event.SequenceID)
			}
		}
		b.mu.Unlock()
	}
}
