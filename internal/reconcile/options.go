package reconcile

import (
	"log/slog"
	"time"

	"github.com/thenoetrevino/focusflow/internal/events"
)

const (
	DefaultWriteTimeout   = 5 * time.Second
	DefaultRetryBaseDelay = 50 * time.Millisecond
)

// Option configures a Session
type Option func(*Session)

// WithLogger sets the session logger
func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithEventPublisher sets where confirmations and failures are announced
func WithEventPublisher(publisher events.EventPublisher) Option {
	return func(s *Session) {
		s.publisher = publisher
	}
}

// WithWriteTimeout bounds every single store call
func WithWriteTimeout(d time.Duration) Option {
	return func(s *Session) {
		if d > 0 {
			s.writeTimeout = d
		}
	}
}

// WithMaxRetries sets how often a failed write is retried. 0 disables retries.
func WithMaxRetries(n int) Option {
	return func(s *Session) {
		if n >= 0 {
			s.maxRetries = n
		}
	}
}

// WithRetryBaseDelay sets the first backoff delay; it doubles per attempt
func WithRetryBaseDelay(d time.Duration) Option {
	return func(s *Session) {
		if d > 0 {
			s.retryBaseDelay = d
		}
	}
}

// WithoutBulkWrites forces one store call per record even when the store
// supports transactions
func WithoutBulkWrites() Option {
	return func(s *Session) {
		s.bulk = nil
	}
}
