package cli

import (
	"errors"
	"fmt"

	"github.com/thenoetrevino/focusflow/internal/database"
	"github.com/thenoetrevino/focusflow/internal/models"
	"github.com/thenoetrevino/focusflow/internal/ordering"
	"github.com/thenoetrevino/focusflow/internal/reconcile"
	boardservice "github.com/thenoetrevino/focusflow/internal/services/board"
	listservice "github.com/thenoetrevino/focusflow/internal/services/list"
	taskservice "github.com/thenoetrevino/focusflow/internal/services/task"
)

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: Database errors, failed writes, unexpected failures.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: Missing required flags, invalid flag combinations.
	ExitUsage = 2

	// ExitNotFound indicates a requested resource was not found.
	// Use for: Board, list or task IDs (or list names) that don't exist.
	ExitNotFound = 3

	// ExitDataErr indicates invalid or malformed data.
	// Use for: Unreadable stdin, corrupted rows.
	ExitDataErr = 4

	// ExitValidation indicates a validation error.
	// Use for: Empty titles, positions out of range, deleting a list that
	// still has tasks.
	ExitValidation = 5
)

// ExitCodeError carries the process exit code of a failed command.
// The message has already been reported to the user when it is returned.
type ExitCodeError struct {
	Code int
	Err  error
}

func (e *ExitCodeError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Err.Error()
}

func (e *ExitCodeError) Unwrap() error { return e.Err }

var errConfirmationRequired = errors.New("confirmation required: pass --force with --json or --quiet")

var notFoundErrors = []error{
	database.ErrNotFound,
	ordering.ErrUnknownID,
	models.ErrInvalidReference,
	boardservice.ErrBoardNotFound,
	listservice.ErrListNotFound,
	taskservice.ErrTaskNotFound,
}

var validationErrors = []error{
	ordering.ErrInvalidIndex,
	ordering.ErrDuplicateID,
	models.ErrListNotEmpty,
	boardservice.ErrEmptyTitle,
	boardservice.ErrTitleTooLong,
	boardservice.ErrInvalidBoardID,
	listservice.ErrEmptyTitle,
	listservice.ErrTitleTooLong,
	listservice.ErrInvalidListID,
	listservice.ErrInvalidBoardID,
	taskservice.ErrEmptyTitle,
	taskservice.ErrTitleTooLong,
	taskservice.ErrInvalidTaskID,
	taskservice.ErrInvalidListID,
	taskservice.ErrInvalidBoardID,
	taskservice.ErrNegativePomodoros,
}

func isAny(err error, targets []error) bool {
	for _, target := range targets {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// ExitCodeFor maps an error to the exit code a command should terminate with
func ExitCodeFor(err error) int {
	var exitErr *ExitCodeError
	switch {
	case err == nil:
		return ExitSuccess
	case errors.As(err, &exitErr):
		return exitErr.Code
	case isAny(err, notFoundErrors):
		return ExitNotFound
	case isAny(err, validationErrors):
		return ExitValidation
	default:
		return ExitError
	}
}

// ErrorCode returns the machine readable code reported in JSON output
func ErrorCode(err error) string {
	switch {
	case errors.Is(err, models.ErrListNotEmpty):
		return "LIST_NOT_EMPTY"
	case errors.Is(err, ordering.ErrInvalidIndex):
		return "INVALID_POSITION"
	case errors.Is(err, reconcile.ErrRolledBack):
		return "ROLLED_BACK"
	case errors.Is(err, reconcile.ErrWriteFailed):
		return "WRITE_FAILED"
	case errors.Is(err, database.ErrStoreUnavailable):
		return "STORE_UNAVAILABLE"
	}

	switch ExitCodeFor(err) {
	case ExitNotFound:
		return "NOT_FOUND"
	case ExitValidation:
		return "VALIDATION_ERROR"
	case ExitDataErr:
		return "DATA_ERROR"
	case ExitUsage:
		return "USAGE_ERROR"
	default:
		return "ERROR"
	}
}
