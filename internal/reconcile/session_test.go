package reconcile

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/focusflow/internal/events"
	"github.com/thenoetrevino/focusflow/internal/models"
	"github.com/thenoetrevino/focusflow/internal/ordering"
)

const testBoard = "board-1"

func waitCtx(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)
	return ctx
}

func newLoadedSession(t *testing.T, store Store, opts ...Option) *Session {
	t.Helper()
	s := NewSession(testBoard, store, opts...)
	t.Cleanup(func() { _ = s.Close() })
	require.NoError(t, s.Load(context.Background()))
	return s
}

type placed struct {
	ID    string
	Order int
}

func listPlacement(lists []*models.List) []placed {
	out := make([]placed, len(lists))
	for i, l := range lists {
		out[i] = placed{l.ID, l.Order}
	}
	return out
}

func taskPlacement(tasks []*models.Task) []placed {
	out := make([]placed, len(tasks))
	for i, t := range tasks {
		out[i] = placed{t.ID, t.Order}
	}
	return out
}

// twoListBoard seeds List1 = [T1, T2] and List2 = [T3]
func twoListBoard() (*fakeStore, *models.List, *models.List) {
	store := newFakeStore()
	l1 := store.seedList("list-1", testBoard, 0)
	l2 := store.seedList("list-2", testBoard, 1)
	store.seedTask("task-1", l1, 0)
	store.seedTask("task-2", l1, 1)
	store.seedTask("task-3", l2, 0)
	return store, l1, l2
}

func TestActionsRequireLoad(t *testing.T) {
	s := NewSession(testBoard, newFakeStore())
	defer func() { _ = s.Close() }()

	_, err := s.MoveList(0, 1)
	assert.ErrorIs(t, err, ErrNotLoaded)
}

func TestActionsAfterClose(t *testing.T) {
	s := NewSession(testBoard, newFakeStore())
	require.NoError(t, s.Load(context.Background()))
	require.NoError(t, s.Close())

	_, _, err := s.AddList("Todo", 0)
	assert.ErrorIs(t, err, ErrSessionClosed)
	assert.NoError(t, s.Close())
}

func TestLoadSortsBaseline(t *testing.T) {
	store := newFakeStore()
	store.seedList("list-a", testBoard, 2)
	store.seedList("list-b", testBoard, 0)
	store.seedList("list-c", testBoard, 1)
	store.seedList("list-other", "board-2", 0)

	s := newLoadedSession(t, store)
	assert.Equal(t, []placed{{"list-b", 0}, {"list-c", 1}, {"list-a", 2}}, listPlacement(s.Lists()))
}

func TestLoadRenumbersGapsAndDuplicates(t *testing.T) {
	store := newFakeStore()
	store.seedList("list-a", testBoard, 0)
	store.seedList("list-b", testBoard, 0)
	l3 := store.seedList("list-c", testBoard, 7)
	store.seedTask("task-1", l3, 4)
	store.seedTask("task-2", l3, 4)

	s := newLoadedSession(t, store)

	// ties keep fetch position, gaps close
	lists := listPlacement(s.Lists())
	assert.Equal(t, []placed{{"list-a", 0}, {"list-b", 1}, {"list-c", 2}}, lists)
	assert.Equal(t, []placed{{"task-1", 0}, {"task-2", 1}}, taskPlacement(s.Tasks("list-c")))

	// the repaired positions are saved in the background
	require.NoError(t, s.Flush(waitCtx(t)))
	assert.Equal(t, 1, store.list("list-b").Order)
	assert.Equal(t, 2, store.list("list-c").Order)
	assert.Equal(t, 1, store.task("task-2").Order)

	confirmed, _ := s.Confirmed()
	assert.Equal(t, listPlacement(s.Lists()), listPlacement(confirmed))

	// a no-op move leaves the repaired numbering alone
	p, err := s.MoveList(1, 1)
	require.NoError(t, err)
	require.NoError(t, p.Wait(waitCtx(t)))
	assert.Equal(t, lists, listPlacement(s.Lists()))
}

func TestMoveListScenario(t *testing.T) {
	store := newFakeStore()
	store.seedList("A", testBoard, 0)
	store.seedList("B", testBoard, 1)
	store.seedList("C", testBoard, 2)
	s := newLoadedSession(t, store)

	p, err := s.MoveList(0, 2)
	require.NoError(t, err)

	// optimistic state is visible before persistence settles
	assert.Equal(t, []placed{{"B", 0}, {"C", 1}, {"A", 2}}, listPlacement(s.Lists()))

	require.NoError(t, p.Wait(waitCtx(t)))
	assert.Equal(t, 3, store.putCalls)
	assert.Equal(t, 2, store.list("A").Order)
	assert.Equal(t, 0, store.list("B").Order)
	assert.Equal(t, 1, store.list("C").Order)

	confirmed, _ := s.Confirmed()
	assert.Equal(t, listPlacement(s.Lists()), listPlacement(confirmed))
}

func TestMoveNoOpEmitsNothing(t *testing.T) {
	store, _, _ := twoListBoard()
	s := newLoadedSession(t, store)
	before := s.Version()

	p, err := s.MoveTask("list-1", 1, 1)
	require.NoError(t, err)
	require.NoError(t, p.Wait(waitCtx(t)))

	assert.Equal(t, before, s.Version())
	assert.Zero(t, store.putCalls)
}

func TestInvalidIndexLeavesStateUntouched(t *testing.T) {
	store, _, _ := twoListBoard()
	s := newLoadedSession(t, store)
	before := listPlacement(s.Lists())

	_, err := s.MoveList(0, 5)
	assert.ErrorIs(t, err, ordering.ErrInvalidIndex)
	assert.Equal(t, before, listPlacement(s.Lists()))
	assert.Zero(t, s.Version())
}

func TestTransferScenario(t *testing.T) {
	store, _, _ := twoListBoard()
	s := newLoadedSession(t, store)

	p, err := s.TransferTask("list-1", "list-2", 0, 1)
	require.NoError(t, err)

	assert.Equal(t, []placed{{"task-2", 0}}, taskPlacement(s.Tasks("list-1")))
	assert.Equal(t, []placed{{"task-3", 0}, {"task-1", 1}}, taskPlacement(s.Tasks("list-2")))
	assert.Equal(t, "list-2", s.Tasks("list-2")[1].ListID)

	require.NoError(t, p.Wait(waitCtx(t)))
	moved := store.task("task-1")
	assert.Equal(t, "list-2", moved.ListID)
	assert.Equal(t, testBoard, moved.BoardID)
	assert.Equal(t, 1, moved.Order)
	assert.Equal(t, 0, store.task("task-2").Order)
}

func TestTransferUnknownList(t *testing.T) {
	store, _, _ := twoListBoard()
	s := newLoadedSession(t, store)

	_, err := s.TransferTask("list-1", "list-elsewhere", 0, 0)
	assert.ErrorIs(t, err, models.ErrInvalidReference)
	assert.Len(t, s.Tasks("list-1"), 2)
}

func TestTransferWithinListIsMove(t *testing.T) {
	store, _, _ := twoListBoard()
	s := newLoadedSession(t, store)

	p, err := s.TransferTask("list-1", "list-1", 0, 1)
	require.NoError(t, err)
	require.NoError(t, p.Wait(waitCtx(t)))
	assert.Equal(t, []placed{{"task-2", 0}, {"task-1", 1}}, taskPlacement(s.Tasks("list-1")))
}

func TestRollbackOnPartialTransferFailure(t *testing.T) {
	store, _, _ := twoListBoard()
	s := newLoadedSession(t, store)
	beforeL1 := taskPlacement(s.Tasks("list-1"))
	beforeL2 := taskPlacement(s.Tasks("list-2"))

	store.failOn("task-2", 1)
	p, err := s.TransferTask("list-1", "list-2", 0, 1)
	require.NoError(t, err)

	err = p.Wait(waitCtx(t))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrWriteFailed)
	assert.ErrorIs(t, err, errInjected)
	var werr *WriteError
	require.ErrorAs(t, err, &werr)
	assert.Equal(t, OpTransferTask, werr.Op)

	// both collections revert, not just the failed record
	assert.Equal(t, beforeL1, taskPlacement(s.Tasks("list-1")))
	assert.Equal(t, beforeL2, taskPlacement(s.Tasks("list-2")))

	// the moved task's write was compensated in the store
	t1 := store.task("task-1")
	assert.Equal(t, "list-1", t1.ListID)
	assert.Equal(t, 0, t1.Order)
	assert.Equal(t, 1, store.task("task-2").Order)
}

func TestRollbackWithBulkWrites(t *testing.T) {
	store, _, _ := twoListBoard()
	bulk := bulkFakeStore{store}
	s := newLoadedSession(t, bulk)
	beforeL1 := taskPlacement(s.Tasks("list-1"))

	store.failOn("task-2", 1)
	p, err := s.TransferTask("list-1", "list-2", 0, 1)
	require.NoError(t, err)
	assert.ErrorIs(t, p.Wait(waitCtx(t)), ErrWriteFailed)

	assert.Equal(t, beforeL1, taskPlacement(s.Tasks("list-1")))
	assert.Equal(t, "list-1", store.task("task-1").ListID)
	assert.Equal(t, 1, store.bulkCalls)
	assert.Zero(t, store.putCalls)
}

func TestBulkWritesUsedForRenumbering(t *testing.T) {
	store, _, _ := twoListBoard()
	s := newLoadedSession(t, bulkFakeStore{store})

	p, err := s.MoveList(0, 1)
	require.NoError(t, err)
	require.NoError(t, p.Wait(waitCtx(t)))
	assert.Equal(t, 1, store.bulkCalls)
	assert.Equal(t, 1, store.list("list-1").Order)
}

func TestFailureCancelsQueuedOperations(t *testing.T) {
	store, _, _ := twoListBoard()
	gate := make(chan struct{})
	store.gate = gate
	s := newLoadedSession(t, store)
	initial := listPlacement(s.Lists())
	initialTasks := taskPlacement(s.Tasks("list-1"))

	store.failOn("list-1", 1)
	first, err := s.MoveList(0, 1)
	require.NoError(t, err)

	// the second action sees the first one's optimistic result
	second, err := s.MoveTask("list-1", 0, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, s.Inflight())

	close(gate)

	assert.ErrorIs(t, first.Wait(waitCtx(t)), ErrWriteFailed)
	assert.ErrorIs(t, second.Wait(waitCtx(t)), ErrRolledBack)

	assert.Equal(t, initial, listPlacement(s.Lists()))
	assert.Equal(t, initialTasks, taskPlacement(s.Tasks("list-1")))
	assert.Zero(t, s.Inflight())
	assert.Equal(t, 0, store.task("task-1").Order)
}

func TestSequentialOperationsSeeEachOther(t *testing.T) {
	store := newFakeStore()
	store.seedList("A", testBoard, 0)
	store.seedList("B", testBoard, 1)
	store.seedList("C", testBoard, 2)
	gate := make(chan struct{})
	store.gate = gate
	s := newLoadedSession(t, store)

	_, err := s.MoveList(0, 2) // B C A
	require.NoError(t, err)
	_, err = s.MoveList(0, 1) // C B A
	require.NoError(t, err)

	close(gate)
	require.NoError(t, s.Flush(waitCtx(t)))

	assert.Equal(t, []placed{{"C", 0}, {"B", 1}, {"A", 2}}, listPlacement(s.Lists()))
	assert.Equal(t, 0, store.list("C").Order)
	assert.Equal(t, 1, store.list("B").Order)
	assert.Equal(t, 2, store.list("A").Order)
}

func TestStaleFetchDiscarded(t *testing.T) {
	store := newFakeStore()
	store.seedList("A", testBoard, 0)
	store.seedList("B", testBoard, 1)
	store.seedList("C", testBoard, 2)
	s := newLoadedSession(t, store)

	var applied *Pending
	store.onFetch = func() {
		store.onFetch = nil
		p, err := s.MoveList(0, 2)
		require.NoError(t, err)
		applied = p
	}

	err := s.Refresh(context.Background())
	assert.ErrorIs(t, err, ErrStaleFetch)
	assert.Equal(t, []placed{{"B", 0}, {"C", 1}, {"A", 2}}, listPlacement(s.Lists()))
	require.NoError(t, applied.Wait(waitCtx(t)))
}

func TestRefreshRefusedWhileInflight(t *testing.T) {
	store, _, _ := twoListBoard()
	gate := make(chan struct{})
	store.gate = gate
	s := newLoadedSession(t, store)

	p, err := s.MoveList(0, 1)
	require.NoError(t, err)
	assert.ErrorIs(t, s.Refresh(context.Background()), ErrStaleFetch)

	close(gate)
	require.NoError(t, p.Wait(waitCtx(t)))
	assert.NoError(t, s.Refresh(context.Background()))
	assert.Equal(t, []placed{{"list-2", 0}, {"list-1", 1}}, listPlacement(s.Lists()))
}

func TestRemoveListWithTasksRefused(t *testing.T) {
	store, _, _ := twoListBoard()
	s := newLoadedSession(t, store)

	_, err := s.RemoveList("list-1")
	assert.ErrorIs(t, err, models.ErrListNotEmpty)
	assert.Len(t, s.Lists(), 2)
	assert.NotNil(t, store.list("list-1"))
	assert.Zero(t, s.Version())
}

func TestRemoveEmptyListRenumbers(t *testing.T) {
	store := newFakeStore()
	store.seedList("A", testBoard, 0)
	store.seedList("B", testBoard, 1)
	s := newLoadedSession(t, store)

	p, err := s.RemoveList("A")
	require.NoError(t, err)
	require.NoError(t, p.Wait(waitCtx(t)))

	assert.Equal(t, []placed{{"B", 0}}, listPlacement(s.Lists()))
	assert.Nil(t, store.list("A"))
	assert.Equal(t, 0, store.list("B").Order)
}

func TestRemoveTaskCompensatesDelete(t *testing.T) {
	store, _, _ := twoListBoard()
	s := newLoadedSession(t, store)

	// the renumber of task-2 fails after task-1 was deleted
	store.failOn("task-2", 1)
	p, err := s.RemoveTask("task-1")
	require.NoError(t, err)
	assert.ErrorIs(t, p.Wait(waitCtx(t)), ErrWriteFailed)

	assert.Equal(t, []placed{{"task-1", 0}, {"task-2", 1}}, taskPlacement(s.Tasks("list-1")))
	restored := store.task("task-1")
	require.NotNil(t, restored)
	assert.Equal(t, 0, restored.Order)
}

func TestAddListAndTask(t *testing.T) {
	store, _, _ := twoListBoard()
	s := newLoadedSession(t, store)

	list, p, err := s.AddList("Review", 1)
	require.NoError(t, err)
	assert.Equal(t, 1, list.Order)
	assert.Equal(t, testBoard, list.BoardID)
	require.NoError(t, p.Wait(waitCtx(t)))
	assert.Equal(t, 2, store.list("list-2").Order)

	task, p, err := s.AddTask(list.ID, models.Task{Title: "check", IsRepeated: true}, 99)
	require.NoError(t, err)
	assert.Equal(t, 0, task.Order)
	assert.Equal(t, list.ID, task.ListID)
	require.NoError(t, p.Wait(waitCtx(t)))
	stored := store.task(task.ID)
	require.NotNil(t, stored)
	assert.True(t, stored.IsRepeated)

	_, _, err = s.AddTask("list-missing", models.Task{Title: "x"}, 0)
	assert.ErrorIs(t, err, models.ErrInvalidReference)
}

func TestAddRollbackDeletesInserted(t *testing.T) {
	store := newFakeStore()
	store.seedList("A", testBoard, 0)
	s := newLoadedSession(t, store)

	// list A moves to index 1 and fails, the inserted list must be removed again
	store.failOn("A", 1)
	list, p, err := s.AddList("New", 0)
	require.NoError(t, err)
	assert.ErrorIs(t, p.Wait(waitCtx(t)), ErrWriteFailed)

	assert.Nil(t, store.list(list.ID))
	assert.Equal(t, []placed{{"A", 0}}, listPlacement(s.Lists()))
}

func TestRetryRecoversTransientFailure(t *testing.T) {
	store, _, _ := twoListBoard()
	s := newLoadedSession(t, store, WithMaxRetries(2), WithRetryBaseDelay(time.Millisecond))

	store.failOn("list-1", 2)
	p, err := s.MoveList(0, 1)
	require.NoError(t, err)
	require.NoError(t, p.Wait(waitCtx(t)))
	assert.Equal(t, 1, store.list("list-1").Order)
}

func TestWriteTimeoutSurfacesFailure(t *testing.T) {
	store, _, _ := twoListBoard()
	store.gate = make(chan struct{}) // never released
	s := newLoadedSession(t, store, WithWriteTimeout(20*time.Millisecond))

	p, err := s.MoveList(0, 1)
	require.NoError(t, err)
	err = p.Wait(waitCtx(t))
	assert.ErrorIs(t, err, ErrWriteFailed)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
}

func TestFailurePublishesEvent(t *testing.T) {
	bus := events.NewBus(nil)
	defer func() { _ = bus.Close() }()
	ch, err := bus.Listen(context.Background())
	require.NoError(t, err)

	store, _, _ := twoListBoard()
	s := newLoadedSession(t, store, WithEventPublisher(bus))

	store.failOn("list-1", 1)
	p, err := s.MoveList(0, 1)
	require.NoError(t, err)
	require.Error(t, p.Wait(waitCtx(t)))

	select {
	case e := <-ch:
		assert.Equal(t, events.EventWriteFailed, e.Type)
		assert.Equal(t, events.Error, e.Severity)
		assert.Equal(t, OpMoveList, e.Op)
		assert.Equal(t, testBoard, e.BoardID)
	case <-time.After(2 * time.Second):
		t.Fatal("no failure event published")
	}
}

func TestMetricsCountOutcomes(t *testing.T) {
	store, _, _ := twoListBoard()
	s := newLoadedSession(t, store, WithMaxRetries(1), WithRetryBaseDelay(time.Millisecond))

	store.failOn("list-1", 1)
	p, err := s.MoveList(0, 1)
	require.NoError(t, err)
	require.NoError(t, p.Wait(waitCtx(t)))

	store.failOn("task-1", 2)
	p, err = s.MoveTask("list-1", 0, 1)
	require.NoError(t, err)
	assert.ErrorIs(t, p.Wait(waitCtx(t)), ErrWriteFailed)

	m := s.Metrics()
	assert.Equal(t, int64(2), m.OpsApplied)
	assert.Equal(t, int64(1), m.OpsConfirmed)
	assert.Equal(t, int64(1), m.OpsRolledBack)
	assert.Equal(t, int64(2), m.Retries)
	assert.Zero(t, m.OpsCancelled)
	assert.NotEmpty(t, m.Uptime)
}
