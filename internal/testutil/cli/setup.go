package cli

import (
	"testing"

	"github.com/thenoetrevino/focusflow/internal/app"
	"github.com/thenoetrevino/focusflow/internal/database"
	"github.com/thenoetrevino/focusflow/internal/models"
	"github.com/thenoetrevino/focusflow/internal/testutil"
)

// SetupCLITest creates an in-memory DB and returns both the repository and App instance
// This function is only for CLI tests and is isolated in a separate package
// to avoid import cycles when service tests import testutil
func SetupCLITest(t *testing.T) (*database.Repository, *app.App) {
	t.Helper()
	repo := testutil.SetupTestRepo(t)

	appInstance := app.New(repo)
	t.Cleanup(func() { _ = appInstance.Close() })

	return repo, appInstance
}

// CreateTestBoard wraps testutil.CreateTestBoard for CLI tests
// Creates a test board with default lists (Todo, Doing, Done)
func CreateTestBoard(t *testing.T, repo *database.Repository, title string) (*models.Board, []*models.List) {
	t.Helper()
	return testutil.CreateTestBoard(t, repo, title)
}

// CreateTestList wraps testutil.CreateTestList for CLI tests
func CreateTestList(t *testing.T, repo *database.Repository, boardID, title string) *models.List {
	t.Helper()
	return testutil.CreateTestList(t, repo, boardID, title)
}

// CreateTestTask wraps testutil.CreateTestTask for CLI tests
func CreateTestTask(t *testing.T, repo *database.Repository, list *models.List, title string) *models.Task {
	t.Helper()
	return testutil.CreateTestTask(t, repo, list, title)
}
