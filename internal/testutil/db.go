package testutil

import (
	"context"
	"database/sql"
	"testing"

	"github.com/thenoetrevino/focusflow/internal/database"
	"github.com/thenoetrevino/focusflow/internal/models"
)

// SetupTestDB creates an in-memory database with the full schema.
// The connection pool is capped at one so every query sees the same database.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.InitDB(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// SetupTestRepo wraps SetupTestDB in a repository
func SetupTestRepo(t *testing.T) *database.Repository {
	t.Helper()
	return database.NewRepository(SetupTestDB(t))
}

// CreateTestBoard creates a board with default lists (Todo, Doing, Done)
func CreateTestBoard(t *testing.T, repo *database.Repository, title string) (*models.Board, []*models.List) {
	t.Helper()
	b := &models.Board{ID: models.NewBoardID(), Title: title}
	if err := repo.CreateBoard(context.Background(), b); err != nil {
		t.Fatalf("Failed to create test board: %v", err)
	}

	lists := []*models.List{
		CreateTestList(t, repo, b.ID, "Todo"),
		CreateTestList(t, repo, b.ID, "Doing"),
		CreateTestList(t, repo, b.ID, "Done"),
	}
	return b, lists
}

// CreateTestList appends a list to a board
func CreateTestList(t *testing.T, repo *database.Repository, boardID, title string) *models.List {
	t.Helper()
	ctx := context.Background()
	existing, err := repo.GetLists(ctx, boardID)
	if err != nil {
		t.Fatalf("Failed to get lists: %v", err)
	}

	l := &models.List{ID: models.NewListID(), BoardID: boardID, Title: title, Order: len(existing)}
	if err := repo.CreateList(ctx, l); err != nil {
		t.Fatalf("Failed to create test list: %v", err)
	}
	return l
}

// CreateTestTask appends a task to a list
func CreateTestTask(t *testing.T, repo *database.Repository, list *models.List, title string) *models.Task {
	t.Helper()
	ctx := context.Background()
	count, err := repo.CountTasks(ctx, list.ID)
	if err != nil {
		t.Fatalf("Failed to count tasks: %v", err)
	}

	task := &models.Task{ID: models.NewTaskID(), Title: title, Order: count}
	task.MoveTo(list)
	if err := repo.CreateTask(ctx, task); err != nil {
		t.Fatalf("Failed to create test task: %v", err)
	}
	return task
}
