package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/thenoetrevino/focusflow/internal/models"
)

// DataStore is the full persistence surface used by the services and the
// reconciliation layer. *Repository implements it.
type DataStore interface {
	GetAllBoards(ctx context.Context) ([]*models.Board, error)
	GetBoard(ctx context.Context, id string) (*models.Board, error)
	CreateBoard(ctx context.Context, b *models.Board) error
	PutBoard(ctx context.Context, b *models.Board) error
	DeleteBoard(ctx context.Context, id string) error
	ReorderBoards(ctx context.Context, boards []*models.Board) error

	GetLists(ctx context.Context, boardID string) ([]*models.List, error)
	GetList(ctx context.Context, id string) (*models.List, error)
	CreateList(ctx context.Context, l *models.List) error
	PutList(ctx context.Context, l *models.List) error
	PutLists(ctx context.Context, lists []*models.List) error
	DeleteList(ctx context.Context, id string) error
	RemoveList(ctx context.Context, id string, renumbered []*models.List) error

	GetTasks(ctx context.Context, boardID string) ([]*models.Task, error)
	GetTasksByList(ctx context.Context, listID string) ([]*models.Task, error)
	GetTask(ctx context.Context, id string) (*models.Task, error)
	CountTasks(ctx context.Context, listID string) (int, error)
	CreateTask(ctx context.Context, t *models.Task) error
	PutTask(ctx context.Context, t *models.Task) error
	PutTasks(ctx context.Context, tasks []*models.Task) error
	DeleteTask(ctx context.Context, id string) error
	RemoveTask(ctx context.Context, id string, renumbered []*models.Task) error

	ClearAll(ctx context.Context) error
}

// Repository groups the per-kind repositories behind one handle.
type Repository struct {
	db *sql.DB

	Boards *BoardRepo
	Lists  *ListRepo
	Tasks  *TaskRepo
}

// NewRepository creates a new repository over an open database
func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		db:     db,
		Boards: &BoardRepo{db: db},
		Lists:  &ListRepo{db: db},
		Tasks:  &TaskRepo{db: db},
	}
}

// DB exposes the underlying handle
func (r *Repository) DB() *sql.DB {
	return r.db
}

// ClearAll removes every board, list and task in one transaction. Irreversible.
func (r *Repository) ClearAll(ctx context.Context) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		for _, table := range []string{"tasks", "lists", "boards"} {
			if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
				return fmt.Errorf("failed to clear %s: %w", table, err)
			}
		}
		return nil
	})
}

// ============================================================================
// BOARD OPERATIONS
// ============================================================================

func (r *Repository) GetAllBoards(ctx context.Context) ([]*models.Board, error) {
	return r.Boards.GetAll(ctx)
}

func (r *Repository) GetBoard(ctx context.Context, id string) (*models.Board, error) {
	return r.Boards.GetByID(ctx, id)
}

func (r *Repository) CreateBoard(ctx context.Context, b *models.Board) error {
	return r.Boards.Create(ctx, b)
}

func (r *Repository) PutBoard(ctx context.Context, b *models.Board) error {
	return r.Boards.Put(ctx, b)
}

func (r *Repository) DeleteBoard(ctx context.Context, id string) error {
	return r.Boards.Delete(ctx, id)
}

func (r *Repository) ReorderBoards(ctx context.Context, boards []*models.Board) error {
	return r.Boards.Reorder(ctx, boards)
}

// ============================================================================
// LIST OPERATIONS
// ============================================================================

func (r *Repository) GetLists(ctx context.Context, boardID string) ([]*models.List, error) {
	return r.Lists.GetByBoard(ctx, boardID)
}

func (r *Repository) GetList(ctx context.Context, id string) (*models.List, error) {
	return r.Lists.GetByID(ctx, id)
}

func (r *Repository) CreateList(ctx context.Context, l *models.List) error {
	return r.Lists.Create(ctx, l)
}

func (r *Repository) PutList(ctx context.Context, l *models.List) error {
	return r.Lists.Put(ctx, l)
}

func (r *Repository) PutLists(ctx context.Context, lists []*models.List) error {
	return r.Lists.PutAll(ctx, lists)
}

func (r *Repository) DeleteList(ctx context.Context, id string) error {
	return r.Lists.Delete(ctx, id)
}

func (r *Repository) RemoveList(ctx context.Context, id string, renumbered []*models.List) error {
	return r.Lists.Remove(ctx, id, renumbered)
}

// ============================================================================
// TASK OPERATIONS
// ============================================================================

func (r *Repository) GetTasks(ctx context.Context, boardID string) ([]*models.Task, error) {
	return r.Tasks.GetByBoard(ctx, boardID)
}

func (r *Repository) GetTasksByList(ctx context.Context, listID string) ([]*models.Task, error) {
	return r.Tasks.GetByList(ctx, listID)
}

func (r *Repository) GetTask(ctx context.Context, id string) (*models.Task, error) {
	return r.Tasks.GetByID(ctx, id)
}

func (r *Repository) CountTasks(ctx context.Context, listID string) (int, error) {
	return r.Tasks.CountByList(ctx, listID)
}

func (r *Repository) CreateTask(ctx context.Context, t *models.Task) error {
	return r.Tasks.Create(ctx, t)
}

func (r *Repository) PutTask(ctx context.Context, t *models.Task) error {
	return r.Tasks.Put(ctx, t)
}

func (r *Repository) PutTasks(ctx context.Context, tasks []*models.Task) error {
	return r.Tasks.PutAll(ctx, tasks)
}

func (r *Repository) DeleteTask(ctx context.Context, id string) error {
	return r.Tasks.Delete(ctx, id)
}

func (r *Repository) RemoveTask(ctx context.Context, id string, renumbered []*models.Task) error {
	return r.Tasks.Remove(ctx, id, renumbered)
}

// Compile-time check
var _ DataStore = (*Repository)(nil)
