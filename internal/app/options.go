package app

import (
	"log/slog"

	"github.com/thenoetrevino/focusflow/internal/config"
	"github.com/thenoetrevino/focusflow/internal/events"
	"github.com/thenoetrevino/focusflow/internal/reconcile"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	eventClient events.EventPublisher
	logger      *slog.Logger
	sessionOpts []reconcile.Option
}

// WithEventPublisher sets the event publisher for the application.
// The caller keeps ownership and closes it.
func WithEventPublisher(ec events.EventPublisher) Option {
	return func(cfg *appConfig) {
		cfg.eventClient = ec
	}
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *appConfig) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

// WithSessionOptions appends options to every board session the app opens
func WithSessionOptions(opts ...reconcile.Option) Option {
	return func(cfg *appConfig) {
		cfg.sessionOpts = append(cfg.sessionOpts, opts...)
	}
}

// WithSyncConfig translates the sync section of the config file into
// session options
func WithSyncConfig(sc config.SyncConfig) Option {
	return WithSessionOptions(
		reconcile.WithWriteTimeout(sc.WriteTimeout),
		reconcile.WithMaxRetries(sc.MaxRetries),
		reconcile.WithRetryBaseDelay(sc.RetryBaseDelay),
	)
}
