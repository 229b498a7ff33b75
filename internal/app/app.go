package app

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/thenoetrevino/focusflow/internal/database"
	"github.com/thenoetrevino/focusflow/internal/events"
	"github.com/thenoetrevino/focusflow/internal/reconcile"
	boardservice "github.com/thenoetrevino/focusflow/internal/services/board"
	listservice "github.com/thenoetrevino/focusflow/internal/services/list"
	taskservice "github.com/thenoetrevino/focusflow/internal/services/task"
)

// App holds all application services and provides dependency injection.
// This is the main application container that manages service lifecycles.
type App struct {
	// Repository layer (direct database access)
	repo database.DataStore

	// Event system for live updates
	eventClient events.EventPublisher
	ownsEvents  bool

	logger      *slog.Logger
	sessionOpts []reconcile.Option

	mu       sync.Mutex
	sessions []*reconcile.Session

	// Service layer (business logic)
	BoardService boardservice.Service
	ListService  listservice.Service
	TaskService  taskservice.Service
}

// New creates a new App with all services initialized.
// Without WithEventPublisher the app creates and owns an in-process bus.
func New(repo database.DataStore, opts ...Option) *App {
	cfg := &appConfig{logger: slog.Default()}
	for _, opt := range opts {
		opt(cfg)
	}

	a := &App{
		repo:        repo,
		eventClient: cfg.eventClient,
		logger:      cfg.logger,
	}
	if a.eventClient == nil {
		a.eventClient = events.NewBus(cfg.logger)
		a.ownsEvents = true
	}

	a.sessionOpts = append([]reconcile.Option{
		reconcile.WithLogger(cfg.logger),
		reconcile.WithEventPublisher(a.eventClient),
	}, cfg.sessionOpts...)

	a.BoardService = boardservice.NewService(repo, a.eventClient)
	a.ListService = listservice.NewService(repo, a.eventClient)
	a.TaskService = taskservice.NewService(repo, a.eventClient)
	return a
}

// Repo returns the underlying repository for direct database access.
func (a *App) Repo() database.DataStore {
	return a.repo
}

// Events returns the publisher services and sessions announce changes on
func (a *App) Events() events.EventPublisher {
	return a.eventClient
}

// OpenBoard starts a reconciliation session for an existing board and loads
// its baseline. The session is closed with the app unless closed earlier.
func (a *App) OpenBoard(ctx context.Context, boardID string) (*reconcile.Session, error) {
	if _, err := a.BoardService.GetBoard(ctx, boardID); err != nil {
		return nil, err
	}

	session := reconcile.NewSession(boardID, a.repo, a.sessionOpts...)
	if err := session.Load(ctx); err != nil {
		_ = session.Close()
		return nil, fmt.Errorf("failed to load board %s: %w", boardID, err)
	}

	a.mu.Lock()
	a.sessions = append(a.sessions, session)
	a.mu.Unlock()
	return session, nil
}

// ResetAll deletes every board, list and task
func (a *App) ResetAll(ctx context.Context) error {
	return a.BoardService.ResetAll(ctx)
}

// Close settles open sessions and stops the event bus when the app owns it.
func (a *App) Close() error {
	a.mu.Lock()
	sessions := a.sessions
	a.sessions = nil
	a.mu.Unlock()

	for _, s := range sessions {
		if err := s.Close(); err != nil {
			a.logger.Warn("failed to close board session", "board_id", s.BoardID(), "error", err)
		}
	}

	if a.ownsEvents {
		return a.eventClient.Close()
	}
	return nil
}
