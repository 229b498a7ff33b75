package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/thenoetrevino/focusflow/internal/models"
)

// BoardRepo handles all board-related database operations.
type BoardRepo struct {
	db *sql.DB
}

const boardColumns = `id, title, type, is_pinned, sort_order, created_at, updated_at`

func scanBoard(s scanner) (*models.Board, error) {
	var (
		b                  models.Board
		order              sql.NullInt64
		createdAt, updated int64
	)
	if err := s.Scan(&b.ID, &b.Title, &b.Type, &b.IsPinned, &order, &createdAt, &updated); err != nil {
		return nil, err
	}
	b.Order = nullInt64ToPtr(order)
	b.CreatedAt = fromMillis(createdAt)
	b.UpdatedAt = fromMillis(updated)
	return &b, nil
}

// GetAll returns every board. Positioned boards come first in order,
// unpositioned ones follow by creation time.
func (r *BoardRepo) GetAll(ctx context.Context) ([]*models.Board, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+boardColumns+` FROM boards
		 ORDER BY sort_order IS NULL, sort_order, created_at, rowid`)
	if err != nil {
		return nil, fmt.Errorf("querying boards: %w", err)
	}
	defer rows.Close()

	boards := []*models.Board{}
	for rows.Next() {
		b, err := scanBoard(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning board: %w", err)
		}
		boards = append(boards, b)
	}
	return boards, rows.Err()
}

// GetByID returns a single board
func (r *BoardRepo) GetByID(ctx context.Context, id string) (*models.Board, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+boardColumns+` FROM boards WHERE id = ?`, id)
	b, err := scanBoard(row)
	if err != nil {
		return nil, notFound(err, "board", id)
	}
	return b, nil
}

// Create inserts a new board. A duplicate id is a constraint error.
func (r *BoardRepo) Create(ctx context.Context, b *models.Board) error {
	stamp(&b.CreatedAt, &b.UpdatedAt)
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO boards (`+boardColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		b.ID, b.Title, b.Type, b.IsPinned, intPtrToNull(b.Order), toMillis(b.CreatedAt), toMillis(b.UpdatedAt))
	if err != nil {
		return fmt.Errorf("failed to create board %s: %w", b.ID, err)
	}
	return nil
}

// Put inserts or updates a board in place
func (r *BoardRepo) Put(ctx context.Context, b *models.Board) error {
	return putBoard(ctx, r.db, b)
}

func putBoard(ctx context.Context, ex execer, b *models.Board) error {
	stamp(&b.CreatedAt, &b.UpdatedAt)
	_, err := ex.ExecContext(ctx,
		`INSERT INTO boards (`+boardColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			type = excluded.type,
			is_pinned = excluded.is_pinned,
			sort_order = excluded.sort_order,
			updated_at = excluded.updated_at`,
		b.ID, b.Title, b.Type, b.IsPinned, intPtrToNull(b.Order), toMillis(b.CreatedAt), toMillis(b.UpdatedAt))
	if err != nil {
		return fmt.Errorf("failed to put board %s: %w", b.ID, err)
	}
	return nil
}

// Delete removes a board together with its lists and tasks.
// Deleting a missing board is a no-op.
func (r *BoardRepo) Delete(ctx context.Context, id string) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		// explicit child deletes keep the cascade independent of the foreign_keys pragma
		if _, err := tx.ExecContext(ctx, `DELETE FROM tasks WHERE board_id = ?`, id); err != nil {
			return fmt.Errorf("failed to delete tasks of board %s: %w", id, err)
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM lists WHERE board_id = ?`, id); err != nil {
			return fmt.Errorf("failed to delete lists of board %s: %w", id, err)
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM boards WHERE id = ?`, id); err != nil {
			return fmt.Errorf("failed to delete board %s: %w", id, err)
		}
		return nil
	})
}

// Reorder writes every board with order = its index, in one transaction
func (r *BoardRepo) Reorder(ctx context.Context, boards []*models.Board) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		for i, b := range boards {
			b.SetOrder(i)
			if err := putBoard(ctx, tx, b); err != nil {
				return err
			}
		}
		return nil
	})
}
