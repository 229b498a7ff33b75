package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/thenoetrevino/focusflow/internal/models"
)

// TaskRepo handles all task-related database operations.
type TaskRepo struct {
	db *sql.DB
}

const taskColumns = `id, list_id, board_id, title, description, sort_order,
	is_repeated, is_completed, pomodoro_count, created_at, updated_at`

func scanTask(s scanner) (*models.Task, error) {
	var (
		t                  models.Task
		createdAt, updated int64
	)
	err := s.Scan(&t.ID, &t.ListID, &t.BoardID, &t.Title, &t.Description, &t.Order,
		&t.IsRepeated, &t.IsCompleted, &t.PomodoroCount, &createdAt, &updated)
	if err != nil {
		return nil, err
	}
	t.CreatedAt = fromMillis(createdAt)
	t.UpdatedAt = fromMillis(updated)
	return &t, nil
}

func (r *TaskRepo) query(ctx context.Context, where string, arg any) ([]*models.Task, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+taskColumns+` FROM tasks WHERE `+where+` ORDER BY list_id, sort_order, rowid`, arg)
	if err != nil {
		return nil, fmt.Errorf("querying tasks: %w", err)
	}
	defer rows.Close()

	tasks := []*models.Task{}
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning task: %w", err)
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

// GetByBoard returns every task of a board, grouped by list and sorted by order
func (r *TaskRepo) GetByBoard(ctx context.Context, boardID string) ([]*models.Task, error) {
	return r.query(ctx, "board_id = ?", boardID)
}

// GetByList returns the tasks of one list sorted by order
func (r *TaskRepo) GetByList(ctx context.Context, listID string) ([]*models.Task, error) {
	return r.query(ctx, "list_id = ?", listID)
}

// GetByID returns a single task
func (r *TaskRepo) GetByID(ctx context.Context, id string) (*models.Task, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+taskColumns+` FROM tasks WHERE id = ?`, id)
	t, err := scanTask(row)
	if err != nil {
		return nil, notFound(err, "task", id)
	}
	return t, nil
}

// CountByList returns the number of tasks owned by a list
func (r *TaskRepo) CountByList(ctx context.Context, listID string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM tasks WHERE list_id = ?`, listID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count tasks of list %s: %w", listID, err)
	}
	return count, nil
}

// Create inserts a new task
func (r *TaskRepo) Create(ctx context.Context, t *models.Task) error {
	stamp(&t.CreatedAt, &t.UpdatedAt)
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO tasks (`+taskColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.ListID, t.BoardID, t.Title, t.Description, t.Order,
		t.IsRepeated, t.IsCompleted, t.PomodoroCount, toMillis(t.CreatedAt), toMillis(t.UpdatedAt))
	if err != nil {
		return fmt.Errorf("failed to create task %s: %w", t.ID, err)
	}
	return nil
}

// Put inserts or updates a task in place
func (r *TaskRepo) Put(ctx context.Context, t *models.Task) error {
	return putTask(ctx, r.db, t)
}

func putTask(ctx context.Context, ex execer, t *models.Task) error {
	stamp(&t.CreatedAt, &t.UpdatedAt)
	_, err := ex.ExecContext(ctx,
		`INSERT INTO tasks (`+taskColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
			list_id = excluded.list_id,
			board_id = excluded.board_id,
			title = excluded.title,
			description = excluded.description,
			sort_order = excluded.sort_order,
			is_repeated = excluded.is_repeated,
			is_completed = excluded.is_completed,
			pomodoro_count = excluded.pomodoro_count,
			updated_at = excluded.updated_at`,
		t.ID, t.ListID, t.BoardID, t.Title, t.Description, t.Order,
		t.IsRepeated, t.IsCompleted, t.PomodoroCount, toMillis(t.CreatedAt), toMillis(t.UpdatedAt))
	if err != nil {
		return fmt.Errorf("failed to put task %s: %w", t.ID, err)
	}
	return nil
}

// PutAll writes several tasks atomically, each with its own order and list
func (r *TaskRepo) PutAll(ctx context.Context, tasks []*models.Task) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		for _, t := range tasks {
			if err := putTask(ctx, tx, t); err != nil {
				return err
			}
		}
		return nil
	})
}

// Delete removes a task. Deleting a missing task is a no-op.
func (r *TaskRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete task %s: %w", id, err)
	}
	return nil
}

// Remove deletes a task and writes its renumbered siblings atomically
func (r *TaskRepo) Remove(ctx context.Context, id string, renumbered []*models.Task) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id); err != nil {
			return fmt.Errorf("failed to delete task %s: %w", id, err)
		}
		for _, t := range renumbered {
			if err := putTask(ctx, tx, t); err != nil {
				return err
			}
		}
		return nil
	})
}
