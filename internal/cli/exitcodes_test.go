package cli

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/thenoetrevino/focusflow/internal/database"
	"github.com/thenoetrevino/focusflow/internal/models"
	"github.com/thenoetrevino/focusflow/internal/ordering"
	"github.com/thenoetrevino/focusflow/internal/reconcile"
	listservice "github.com/thenoetrevino/focusflow/internal/services/list"
	taskservice "github.com/thenoetrevino/focusflow/internal/services/task"
)

func TestExitCodeFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"wrapped not found", fmt.Errorf("get: %w", database.ErrNotFound), ExitNotFound},
		{"dangling reference", fmt.Errorf("list x: %w", models.ErrInvalidReference), ExitNotFound},
		{"unknown task", taskservice.ErrTaskNotFound, ExitNotFound},
		{"list not empty", listservice.ErrListNotEmpty, ExitValidation},
		{"bad index", fmt.Errorf("move_task: %w", ordering.ErrInvalidIndex), ExitValidation},
		{"explicit", &ExitCodeError{Code: ExitDataErr, Err: errors.New("bad stdin")}, ExitDataErr},
		{"write failed", &reconcile.WriteError{Op: "move_task", Err: errors.New("disk full")}, ExitError},
		{"other", errors.New("boom"), ExitError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCodeFor(tt.err))
		})
	}
}

func TestErrorCode(t *testing.T) {
	assert.Equal(t, "LIST_NOT_EMPTY", ErrorCode(models.ErrListNotEmpty))
	assert.Equal(t, "INVALID_POSITION", ErrorCode(ordering.ErrInvalidIndex))
	assert.Equal(t, "WRITE_FAILED", ErrorCode(&reconcile.WriteError{Op: "add_task", Err: errors.New("x")}))
	assert.Equal(t, "ROLLED_BACK", ErrorCode(fmt.Errorf("move_list: %w", reconcile.ErrRolledBack)))
	assert.Equal(t, "NOT_FOUND", ErrorCode(database.ErrNotFound))
	assert.Equal(t, "USAGE_ERROR", ErrorCode(&ExitCodeError{Code: ExitUsage, Err: errConfirmationRequired}))
	assert.Equal(t, "ERROR", ErrorCode(errors.New("boom")))
}

func TestExitErrorUnwrap(t *testing.T) {
	err := &ExitCodeError{Code: ExitNotFound, Err: database.ErrNotFound}
	assert.ErrorIs(t, err, database.ErrNotFound)
	assert.Equal(t, database.ErrNotFound.Error(), err.Error())
	assert.Equal(t, "exit status 2", (&ExitCodeError{Code: ExitUsage}).Error())
}
