package reconcile

import (
	"context"

	"github.com/thenoetrevino/focusflow/internal/models"
)

// Store is the persistence surface a session reads and writes.
// Each call is atomic for the single record it touches.
type Store interface {
	GetLists(ctx context.Context, boardID string) ([]*models.List, error)
	GetTasks(ctx context.Context, boardID string) ([]*models.Task, error)
	PutList(ctx context.Context, l *models.List) error
	PutTask(ctx context.Context, t *models.Task) error
	DeleteList(ctx context.Context, id string) error
	DeleteTask(ctx context.Context, id string) error
}

// BulkWriter is implemented by stores that can write many records in one
// transaction. Sessions use it to make renumbering atomic.
type BulkWriter interface {
	PutLists(ctx context.Context, lists []*models.List) error
	PutTasks(ctx context.Context, tasks []*models.Task) error
}
