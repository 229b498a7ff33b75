package reconcile

import (
	"errors"
	"fmt"
)

var (
	// ErrWriteFailed marks an operation whose persistence failed and was rolled back
	ErrWriteFailed = errors.New("write failed")

	// ErrRolledBack is returned for operations cancelled because an earlier
	// operation they were built on failed
	ErrRolledBack = errors.New("operation rolled back")

	// ErrStaleFetch is returned by Refresh when the fetched data predates a
	// local operation. Internal; never shown to the user.
	ErrStaleFetch = errors.New("stale fetch discarded")

	// ErrNotLoaded is returned when an action runs before Load
	ErrNotLoaded = errors.New("session not loaded")

	// ErrSessionClosed is returned for actions on a closed session
	ErrSessionClosed = errors.New("session closed")
)

// WriteError describes a failed operation. It matches both ErrWriteFailed
// and the underlying store error with errors.Is.
type WriteError struct {
	Op      string
	BoardID string
	Err     error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("%s on board %s: %v: %v", e.Op, e.BoardID, ErrWriteFailed, e.Err)
}

func (e *WriteError) Unwrap() []error {
	return []error{ErrWriteFailed, e.Err}
}
