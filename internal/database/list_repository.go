package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/thenoetrevino/focusflow/internal/models"
)

// ListRepo handles all list-related database operations.
type ListRepo struct {
	db *sql.DB
}

const listColumns = `id, board_id, title, sort_order, created_at, updated_at`

func scanList(s scanner) (*models.List, error) {
	var (
		l                  models.List
		createdAt, updated int64
	)
	if err := s.Scan(&l.ID, &l.BoardID, &l.Title, &l.Order, &createdAt, &updated); err != nil {
		return nil, err
	}
	l.CreatedAt = fromMillis(createdAt)
	l.UpdatedAt = fromMillis(updated)
	return &l, nil
}

// GetByBoard returns the lists of a board sorted by order.
// Equal orders keep insertion order.
func (r *ListRepo) GetByBoard(ctx context.Context, boardID string) ([]*models.List, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+listColumns+` FROM lists WHERE board_id = ? ORDER BY sort_order, rowid`, boardID)
	if err != nil {
		return nil, fmt.Errorf("querying lists for board: %w", err)
	}
	defer rows.Close()

	lists := []*models.List{}
	for rows.Next() {
		l, err := scanList(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning list: %w", err)
		}
		lists = append(lists, l)
	}
	return lists, rows.Err()
}

// GetByID returns a single list
func (r *ListRepo) GetByID(ctx context.Context, id string) (*models.List, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+listColumns+` FROM lists WHERE id = ?`, id)
	l, err := scanList(row)
	if err != nil {
		return nil, notFound(err, "list", id)
	}
	return l, nil
}

// Create inserts a new list
func (r *ListRepo) Create(ctx context.Context, l *models.List) error {
	stamp(&l.CreatedAt, &l.UpdatedAt)
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO lists (`+listColumns+`) VALUES (?, ?, ?, ?, ?, ?)`,
		l.ID, l.BoardID, l.Title, l.Order, toMillis(l.CreatedAt), toMillis(l.UpdatedAt))
	if err != nil {
		return fmt.Errorf("failed to create list %s: %w", l.ID, err)
	}
	return nil
}

// Put inserts or updates a list in place
func (r *ListRepo) Put(ctx context.Context, l *models.List) error {
	return putList(ctx, r.db, l)
}

func putList(ctx context.Context, ex execer, l *models.List) error {
	stamp(&l.CreatedAt, &l.UpdatedAt)
	_, err := ex.ExecContext(ctx,
		`INSERT INTO lists (`+listColumns+`) VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
			board_id = excluded.board_id,
			title = excluded.title,
			sort_order = excluded.sort_order,
			updated_at = excluded.updated_at`,
		l.ID, l.BoardID, l.Title, l.Order, toMillis(l.CreatedAt), toMillis(l.UpdatedAt))
	if err != nil {
		return fmt.Errorf("failed to put list %s: %w", l.ID, err)
	}
	return nil
}

// PutAll writes several lists atomically, each with its own order
func (r *ListRepo) PutAll(ctx context.Context, lists []*models.List) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		for _, l := range lists {
			if err := putList(ctx, tx, l); err != nil {
				return err
			}
		}
		return nil
	})
}

// Delete removes a list only if it owns no tasks.
// Returns models.ErrListNotEmpty otherwise; deleting a missing list is a no-op.
func (r *ListRepo) Delete(ctx context.Context, id string) error {
	return r.Remove(ctx, id, nil)
}

// Remove deletes an empty list and writes the renumbered siblings in the
// same transaction, so a failure leaves both untouched.
func (r *ListRepo) Remove(ctx context.Context, id string, renumbered []*models.List) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		var count int
		if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM tasks WHERE list_id = ?`, id).Scan(&count); err != nil {
			return fmt.Errorf("failed to count tasks of list %s: %w", id, err)
		}
		if count > 0 {
			return models.ErrListNotEmpty
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM lists WHERE id = ?`, id); err != nil {
			return fmt.Errorf("failed to delete list %s: %w", id, err)
		}
		for _, l := range renumbered {
			if err := putList(ctx, tx, l); err != nil {
				return err
			}
		}
		return nil
	})
}
