package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/thenoetrevino/focusflow/internal/cli/styles"
	"github.com/thenoetrevino/focusflow/internal/events"
)

// Notifier turns bus events into user notices while a command runs.
// Every event is logged; warnings and errors are also printed.
type Notifier struct {
	w      io.Writer
	logger *slog.Logger
	cancel context.CancelFunc
	done   chan struct{}
}

// StartNotifier listens on publisher until Stop is called or the publisher
// is closed. Closing the publisher first delivers everything still queued.
func StartNotifier(publisher events.EventPublisher, w io.Writer, logger *slog.Logger) (*Notifier, error) {
	if logger == nil {
		logger = slog.Default()
	}
	ctx, cancel := context.WithCancel(context.Background())
	ch, err := publisher.Listen(ctx)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("failed to listen for events: %w", err)
	}

	n := &Notifier{w: w, logger: logger, cancel: cancel, done: make(chan struct{})}
	go n.run(ch)
	return n, nil
}

func (n *Notifier) run(ch <-chan events.Event) {
	defer close(n.done)
	for e := range ch {
		n.handle(e)
	}
}

func (n *Notifier) handle(e events.Event) {
	attrs := []any{
		"event_type", e.Type,
		"board_id", e.BoardID,
		"op", e.Op,
		"sequence", e.SequenceID,
	}

	switch e.Severity {
	case events.Error:
		n.logger.Error("event", append(attrs, "message", e.Message)...)
	case events.Warning:
		n.logger.Warn("event", append(attrs, "message", e.Message)...)
	default:
		// stale fetches and confirmations stay in the log
		n.logger.Debug("event", attrs...)
		return
	}

	fmt.Fprintln(n.w, notice(e))
}

// notice renders one event as a single line for the terminal
func notice(e events.Event) string {
	label := styles.WarningStyle.Render("Warning:")
	if e.Severity == events.Error {
		label = styles.ErrorStyle.Render("Rolled back:")
	}

	text := e.Message
	if e.Type == events.EventWriteFailed {
		text = fmt.Sprintf("%s on board %s was not saved", e.Op, e.BoardID)
	}
	return label + " " + text
}

// Stop stops listening and waits for the events already received
func (n *Notifier) Stop() {
	n.cancel()
	<-n.done
}
