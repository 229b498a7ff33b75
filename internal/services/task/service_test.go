package task

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/focusflow/internal/database"
	"github.com/thenoetrevino/focusflow/internal/models"
	"github.com/thenoetrevino/focusflow/internal/testutil"
)

func setupService(t *testing.T) (Service, *database.Repository) {
	t.Helper()
	repo := testutil.SetupTestRepo(t)
	return NewService(repo, nil), repo
}

func ptr[T any](v T) *T { return &v }

func taskTitles(tasks []*models.Task) []string {
	out := make([]string, len(tasks))
	for i, t := range tasks {
		out[i] = t.Title
	}
	return out
}

func TestCreateTaskDerivesBoard(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, repo := setupService(t)
	b, lists := testutil.CreateTestBoard(t, repo, "Board")

	first, err := svc.CreateTask(ctx, CreateTaskRequest{ListID: lists[0].ID, Title: "first", Description: "## plan"})
	require.NoError(t, err)
	second, err := svc.CreateTask(ctx, CreateTaskRequest{ListID: lists[0].ID, Title: "second", IsRepeated: true})
	require.NoError(t, err)

	assert.Equal(t, b.ID, first.BoardID)
	assert.Equal(t, 0, first.Order)
	assert.Equal(t, 1, second.Order)
	assert.True(t, second.IsRepeated)

	tasks, err := svc.ListTasks(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second"}, taskTitles(tasks))
}

func TestCreateTaskValidation(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, repo := setupService(t)
	_, lists := testutil.CreateTestBoard(t, repo, "Board")

	_, err := svc.CreateTask(ctx, CreateTaskRequest{ListID: lists[0].ID})
	assert.ErrorIs(t, err, ErrEmptyTitle)

	_, err = svc.CreateTask(ctx, CreateTaskRequest{Title: "x"})
	assert.ErrorIs(t, err, ErrInvalidListID)

	_, err = svc.CreateTask(ctx, CreateTaskRequest{ListID: "list-missing", Title: "x"})
	assert.ErrorIs(t, err, models.ErrInvalidReference)
}

func TestUpdateTaskFields(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, repo := setupService(t)
	_, lists := testutil.CreateTestBoard(t, repo, "Board")
	task := testutil.CreateTestTask(t, repo, lists[0], "draft")

	updated, err := svc.UpdateTask(ctx, UpdateTaskRequest{
		ID:          task.ID,
		Title:       ptr("final"),
		Description: ptr("details"),
		IsCompleted: ptr(true),
	})
	require.NoError(t, err)
	assert.Equal(t, "final", updated.Title)
	assert.Equal(t, "details", updated.Description)
	assert.True(t, updated.IsCompleted)

	_, err = svc.UpdateTask(ctx, UpdateTaskRequest{ID: task.ID, PomodoroCount: ptr(-1)})
	assert.ErrorIs(t, err, ErrNegativePomodoros)

	_, err = svc.UpdateTask(ctx, UpdateTaskRequest{ID: "task-missing", Title: ptr("x")})
	assert.ErrorIs(t, err, ErrTaskNotFound)
}

func TestUpdateTaskMovesList(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, repo := setupService(t)
	_, lists := testutil.CreateTestBoard(t, repo, "Board")
	t1 := testutil.CreateTestTask(t, repo, lists[0], "T1")
	testutil.CreateTestTask(t, repo, lists[0], "T2")
	testutil.CreateTestTask(t, repo, lists[1], "T3")

	moved, err := svc.UpdateTask(ctx, UpdateTaskRequest{ID: t1.ID, ListID: ptr(lists[1].ID), Title: ptr("T1 edited")})
	require.NoError(t, err)
	assert.Equal(t, lists[1].ID, moved.ListID)
	assert.Equal(t, 1, moved.Order)
	assert.Equal(t, "T1 edited", moved.Title)

	source, err := svc.ListTasksByList(ctx, lists[0].ID)
	require.NoError(t, err)
	require.Len(t, source, 1)
	assert.Equal(t, "T2", source[0].Title)
	assert.Equal(t, 0, source[0].Order)

	dest, err := svc.ListTasksByList(ctx, lists[1].ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"T3", "T1 edited"}, taskTitles(dest))
}

func TestUpdateTaskAcrossBoardsRewritesBoardID(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, repo := setupService(t)
	_, listsA := testutil.CreateTestBoard(t, repo, "A")
	boardB, listsB := testutil.CreateTestBoard(t, repo, "B")
	task := testutil.CreateTestTask(t, repo, listsA[0], "wanderer")

	moved, err := svc.UpdateTask(ctx, UpdateTaskRequest{ID: task.ID, ListID: ptr(listsB[2].ID)})
	require.NoError(t, err)
	assert.Equal(t, boardB.ID, moved.BoardID)

	stored, err := repo.GetTask(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, boardB.ID, stored.BoardID)
	assert.Equal(t, listsB[2].ID, stored.ListID)
}

func TestUpdateTaskDanglingList(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, repo := setupService(t)
	_, lists := testutil.CreateTestBoard(t, repo, "Board")
	task := testutil.CreateTestTask(t, repo, lists[0], "stay")

	_, err := svc.UpdateTask(ctx, UpdateTaskRequest{ID: task.ID, ListID: ptr("list-gone")})
	assert.ErrorIs(t, err, models.ErrInvalidReference)

	stored, err := repo.GetTask(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, lists[0].ID, stored.ListID)
}

func TestDeleteTaskRenumbers(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, repo := setupService(t)
	_, lists := testutil.CreateTestBoard(t, repo, "Board")
	a := testutil.CreateTestTask(t, repo, lists[0], "a")
	testutil.CreateTestTask(t, repo, lists[0], "b")
	testutil.CreateTestTask(t, repo, lists[0], "c")

	require.NoError(t, svc.DeleteTask(ctx, a.ID))

	tasks, err := svc.ListTasksByList(ctx, lists[0].ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "c"}, taskTitles(tasks))
	for i, task := range tasks {
		assert.Equal(t, i, task.Order)
	}

	assert.ErrorIs(t, svc.DeleteTask(ctx, a.ID), ErrTaskNotFound)
}

func TestCardActions(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, repo := setupService(t)
	_, lists := testutil.CreateTestBoard(t, repo, "Board")
	task := testutil.CreateTestTask(t, repo, lists[0], "focus")

	done, err := svc.ToggleCompleted(ctx, task.ID)
	require.NoError(t, err)
	assert.True(t, done.IsCompleted)

	undone, err := svc.ToggleCompleted(ctx, task.ID)
	require.NoError(t, err)
	assert.False(t, undone.IsCompleted)

	for i := 1; i <= 3; i++ {
		got, err := svc.IncrementPomodoro(ctx, task.ID)
		require.NoError(t, err)
		assert.Equal(t, i, got.PomodoroCount)
	}
}
