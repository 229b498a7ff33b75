package reconcile

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/thenoetrevino/focusflow/internal/events"
	"github.com/thenoetrevino/focusflow/internal/models"
)

// op is one applied structural action waiting for persistence
type op struct {
	name    string
	version uint64
	after   state // baseline right after the action, promoted on success
	writes  []write
	pending *Pending
}

// Session owns the baseline of a single board. It is safe for concurrent use;
// actions serialize on the session mutex and persist in the order applied.
type Session struct {
	boardID string
	store   Store
	bulk    BulkWriter

	logger         *slog.Logger
	publisher      events.EventPublisher
	writeTimeout   time.Duration
	maxRetries     int
	retryBaseDelay time.Duration

	mu        sync.Mutex
	cond      *sync.Cond
	current   state
	confirmed state
	loaded    bool
	closed    bool
	version   uint64
	queue     []*op // head is being persisted

	metrics *Metrics
	done    chan struct{}
}

// NewSession creates a session for boardID and starts its persistence goroutine.
// Call Load before applying actions and Close when done.
func NewSession(boardID string, store Store, opts ...Option) *Session {
	s := &Session{
		boardID:        boardID,
		store:          store,
		logger:         slog.Default(),
		writeTimeout:   DefaultWriteTimeout,
		retryBaseDelay: DefaultRetryBaseDelay,
		metrics:        NewMetrics(),
		done:           make(chan struct{}),
	}
	if bulk, ok := store.(BulkWriter); ok {
		s.bulk = bulk
	}
	for _, opt := range opts {
		opt(s)
	}
	s.cond = sync.NewCond(&s.mu)
	s.logger = s.logger.With("board_id", boardID)

	go s.run()
	return s
}

// BoardID returns the board this session owns
func (s *Session) BoardID() string { return s.boardID }

// Load fetches the board's lists and tasks and installs them as the baseline.
// Like Refresh it discards the result if a local action was applied meanwhile.
func (s *Session) Load(ctx context.Context) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrSessionClosed
	}
	v := s.version
	s.mu.Unlock()

	return s.fetchAndInstall(ctx, v)
}

// Refresh refetches the baseline from the store. It is refused with
// ErrStaleFetch while actions are in flight or when one is applied during
// the fetch, so optimistic state is never overwritten by older data.
func (s *Session) Refresh(ctx context.Context) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrSessionClosed
	}
	if len(s.queue) > 0 {
		inflight := len(s.queue)
		s.mu.Unlock()
		s.discardFetch("operations in flight", inflight)
		return ErrStaleFetch
	}
	v := s.version
	s.mu.Unlock()

	return s.fetchAndInstall(ctx, v)
}

func (s *Session) fetchAndInstall(ctx context.Context, version uint64) error {
	lists, err := s.store.GetLists(ctx, s.boardID)
	if err != nil {
		return fmt.Errorf("failed to fetch lists: %w", err)
	}
	tasks, err := s.store.GetTasks(ctx, s.boardID)
	if err != nil {
		return fmt.Errorf("failed to fetch tasks: %w", err)
	}

	s.mu.Lock()
	if s.version != version || len(s.queue) > 0 {
		inflight := len(s.queue)
		s.mu.Unlock()
		s.discardFetch("local operation applied during fetch", inflight)
		return ErrStaleFetch
	}
	st, listFixes, taskFixes := newState(lists, tasks)
	s.current = st
	s.confirmed = st.clone()
	s.loaded = true
	if len(listFixes)+len(taskFixes) > 0 {
		// Stored orders had gaps or duplicates; save the renumbered positions
		writes := putWrites(s.listOps(), listFixes, byID(lists))
		writes = append(writes, putWrites(s.taskOps(), taskFixes, byID(tasks))...)
		s.enqueue(OpNormalize, writes)
	}
	s.mu.Unlock()

	s.logger.Debug("baseline loaded",
		"lists", len(lists),
		"tasks", len(tasks),
		"renumbered", len(listFixes)+len(taskFixes))
	return nil
}

func (s *Session) discardFetch(reason string, inflight int) {
	s.metrics.StaleFetches.Add(1)
	s.logger.Debug("discarding stale fetch", "reason", reason, "inflight", inflight)
	s.publish(events.Event{
		Type:     events.EventStaleFetchDiscarded,
		BoardID:  s.boardID,
		Severity: events.Info,
		Message:  reason,
	})
}

// Metrics returns a snapshot of the session counters
func (s *Session) Metrics() MetricsSnapshot {
	return s.metrics.GetSnapshot()
}

// Version returns the number of local actions applied so far
func (s *Session) Version() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.version
}

// Inflight returns the number of actions not yet confirmed or rolled back
func (s *Session) Inflight() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.queue)
}

// Lists returns a copy of the current lists in display order
func (s *Session) Lists() []*models.List {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneAll(s.current.lists)
}

// Tasks returns a copy of the current tasks of a list in display order
func (s *Session) Tasks(listID string) []*models.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneAll(s.current.tasks[listID])
}

// Confirmed returns a copy of the last confirmed lists and tasks by list
func (s *Session) Confirmed() ([]*models.List, map[string][]*models.Task) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.confirmed.clone()
	return st.lists, st.tasks
}

// Flush waits until every queued action has settled
func (s *Session) Flush(ctx context.Context) error {
	for {
		s.mu.Lock()
		if len(s.queue) == 0 {
			s.mu.Unlock()
			return nil
		}
		last := s.queue[len(s.queue)-1].pending
		s.mu.Unlock()

		select {
		case <-last.Done():
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// Close persists what is queued, then stops the persistence goroutine.
// Actions after Close fail with ErrSessionClosed.
func (s *Session) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		<-s.done
		return nil
	}
	s.closed = true
	s.cond.Broadcast()
	s.mu.Unlock()

	<-s.done
	return nil
}

// begin checks that actions can be applied. Callers hold s.mu.
func (s *Session) begin() error {
	if s.closed {
		return ErrSessionClosed
	}
	if !s.loaded {
		return ErrNotLoaded
	}
	return nil
}

// enqueue records an applied action. Callers hold s.mu and have already
// replaced s.current.
func (s *Session) enqueue(name string, writes []write) *Pending {
	s.version++
	o := &op{
		name:    name,
		version: s.version,
		after:   s.current.clone(),
		writes:  writes,
		pending: newPending(name),
	}
	s.queue = append(s.queue, o)
	s.metrics.OpsApplied.Add(1)
	s.cond.Signal()
	s.logger.Debug("operation applied", "op", name, "version", o.version, "writes", len(writes))
	return o.pending
}

// run persists queued operations one at a time
func (s *Session) run() {
	defer close(s.done)

	for {
		s.mu.Lock()
		for len(s.queue) == 0 && !s.closed {
			s.cond.Wait()
		}
		if len(s.queue) == 0 {
			s.mu.Unlock()
			return
		}
		o := s.queue[0]
		s.mu.Unlock()

		err := s.persist(o)

		s.mu.Lock()
		s.queue = s.queue[1:]
		if err == nil {
			s.confirmed = o.after
			s.mu.Unlock()
			s.metrics.OpsConfirmed.Add(1)

			o.pending.resolve(nil)
			s.publish(events.Event{
				Type:     events.EventWriteConfirmed,
				BoardID:  s.boardID,
				Op:       o.name,
				Severity: events.Info,
			})
			continue
		}

		// Everything queued behind o was built on top of it
		cancelled := s.queue
		s.queue = nil
		s.current = s.confirmed.clone()
		s.version++
		s.mu.Unlock()

		s.metrics.OpsRolledBack.Add(1)
		s.metrics.OpsCancelled.Add(int64(len(cancelled)))
		werr := &WriteError{Op: o.name, BoardID: s.boardID, Err: err}
		s.logger.Error("operation rolled back",
			"op", o.name,
			"version", o.version,
			"cancelled", len(cancelled),
			"error", err)

		o.pending.resolve(werr)
		for _, c := range cancelled {
			c.pending.resolve(fmt.Errorf("%s: %w", c.name, ErrRolledBack))
		}
		s.publish(events.Event{
			Type:     events.EventWriteFailed,
			BoardID:  s.boardID,
			Op:       o.name,
			Severity: events.Error,
			Message:  werr.Error(),
		})
	}
}

// persist issues the writes of one operation in parallel. On failure the
// writes that succeeded are reversed.
func (s *Session) persist(o *op) error {
	succeeded := make([]bool, len(o.writes))

	var g errgroup.Group
	for i, w := range o.writes {
		g.Go(func() error {
			if err := s.attempt(w.desc, w.do); err != nil {
				return fmt.Errorf("%s: %w", w.desc, err)
			}
			succeeded[i] = true
			return nil
		})
	}
	err := g.Wait()
	if err == nil {
		return nil
	}

	for i, w := range o.writes {
		if !succeeded[i] || w.undo == nil {
			continue
		}
		if uerr := s.attempt("undo "+w.desc, w.undo); uerr != nil {
			s.metrics.CompensationFailures.Add(1)
			s.logger.Error("compensation failed", "op", o.name, "write", w.desc, "error", uerr)
		}
	}
	return err
}

// attempt runs one store call with a timeout and bounded exponential retry
func (s *Session) attempt(desc string, fn func(context.Context) error) error {
	var err error
	for attempt := 0; attempt <= s.maxRetries; attempt++ {
		if attempt > 0 {
			s.metrics.Retries.Add(1)
			delay := s.retryBaseDelay * (1 << (attempt - 1))
			s.logger.Debug("write failed, retrying",
				"write", desc,
				"attempt", attempt,
				"max_retries", s.maxRetries,
				"retry_delay", delay,
				"error", err)
			time.Sleep(delay)
		}

		ctx, cancel := context.WithTimeout(context.Background(), s.writeTimeout)
		err = fn(ctx)
		cancel()
		if err == nil {
			return nil
		}
		if errors.Is(err, models.ErrListNotEmpty) {
			// a refusal, retrying cannot change it
			return err
		}
	}
	return err
}

func (s *Session) publish(e events.Event) {
	if s.publisher == nil {
		return
	}
	_ = events.Publish(s.publisher, e, 3)
}
