package reconcile_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/focusflow/internal/database"
	"github.com/thenoetrevino/focusflow/internal/models"
	"github.com/thenoetrevino/focusflow/internal/reconcile"
)

func setupRepo(t *testing.T) *database.Repository {
	t.Helper()
	db, err := database.InitDB(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return database.NewRepository(db)
}

func TestSessionAgainstSQLite(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	repo := setupRepo(t)

	board := &models.Board{ID: models.NewBoardID(), Title: "Focus"}
	require.NoError(t, repo.CreateBoard(ctx, board))

	s := reconcile.NewSession(board.ID, repo)
	defer func() { _ = s.Close() }()
	require.NoError(t, s.Load(ctx))

	todo, _, err := s.AddList("Todo", 0)
	require.NoError(t, err)
	done, _, err := s.AddList("Done", 1)
	require.NoError(t, err)
	t1, _, err := s.AddTask(todo.ID, models.Task{Title: "T1"}, 0)
	require.NoError(t, err)
	_, _, err = s.AddTask(todo.ID, models.Task{Title: "T2"}, 1)
	require.NoError(t, err)

	p, err := s.TransferTask(todo.ID, done.ID, 0, 0)
	require.NoError(t, err)
	require.NoError(t, p.Wait(ctx))
	require.NoError(t, s.Flush(ctx))

	stored, err := repo.GetTask(ctx, t1.ID)
	require.NoError(t, err)
	assert.Equal(t, done.ID, stored.ListID)
	assert.Equal(t, board.ID, stored.BoardID)
	assert.Equal(t, 0, stored.Order)

	remaining, err := repo.GetTasksByList(ctx, todo.ID)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, "T2", remaining[0].Title)
	assert.Equal(t, 0, remaining[0].Order)

	// non-empty lists are refused before anything is queued
	_, err = s.RemoveList(done.ID)
	assert.ErrorIs(t, err, models.ErrListNotEmpty)

	// refetching yields the persisted state
	require.NoError(t, s.Refresh(ctx))
	lists := s.Lists()
	require.Len(t, lists, 2)
	assert.Equal(t, "Todo", lists[0].Title)
	assert.Len(t, s.Tasks(done.ID), 1)
}

func TestSessionRollsBackOnStoreRefusal(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	repo := setupRepo(t)

	board := &models.Board{ID: models.NewBoardID(), Title: "Focus"}
	require.NoError(t, repo.CreateBoard(ctx, board))
	list := &models.List{ID: models.NewListID(), BoardID: board.ID, Title: "Todo"}
	require.NoError(t, repo.CreateList(ctx, list))

	s := reconcile.NewSession(board.ID, repo)
	defer func() { _ = s.Close() }()
	require.NoError(t, s.Load(ctx))

	// a task written behind the session's back makes the list non-empty
	task := &models.Task{ID: models.NewTaskID(), Title: "external"}
	task.MoveTo(list)
	require.NoError(t, repo.CreateTask(ctx, task))

	p, err := s.RemoveList(list.ID)
	require.NoError(t, err)
	assert.Empty(t, s.Lists())

	err = p.Wait(ctx)
	assert.ErrorIs(t, err, reconcile.ErrWriteFailed)
	assert.ErrorIs(t, err, models.ErrListNotEmpty)

	require.Len(t, s.Lists(), 1)
	_, err = repo.GetList(ctx, list.ID)
	assert.NoError(t, err)
}
