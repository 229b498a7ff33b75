package database

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/thenoetrevino/focusflow/internal/models"
	_ "modernc.org/sqlite"
)

// ============================================================================
// DATABASE SETUP HELPERS
// ============================================================================

// setupTestDB creates an in-memory database and runs migrations
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	// every pooled connection would get its own empty :memory: database
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		t.Fatalf("Failed to enable foreign keys: %v", err)
	}
	if err := runMigrations(context.Background(), db); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}
	return db
}

// setupTestDBFile creates a file-based database for persistence tests
func setupTestDBFile(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "focusflow-test.db")
}

// ============================================================================
// FIXTURES
// ============================================================================

func createBoard(t *testing.T, repo *Repository, title string) *models.Board {
	t.Helper()
	b := &models.Board{ID: models.NewBoardID(), Title: title}
	if err := repo.CreateBoard(context.Background(), b); err != nil {
		t.Fatalf("Failed to create board: %v", err)
	}
	return b
}

func createList(t *testing.T, repo *Repository, boardID, title string, order int) *models.List {
	t.Helper()
	l := &models.List{ID: models.NewListID(), BoardID: boardID, Title: title, Order: order}
	if err := repo.CreateList(context.Background(), l); err != nil {
		t.Fatalf("Failed to create list: %v", err)
	}
	return l
}

func createTask(t *testing.T, repo *Repository, list *models.List, title string, order int) *models.Task {
	t.Helper()
	task := &models.Task{ID: models.NewTaskID(), Title: title, Order: order}
	task.MoveTo(list)
	if err := repo.CreateTask(context.Background(), task); err != nil {
		t.Fatalf("Failed to create task: %v", err)
	}
	return task
}
