package reconcile

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/thenoetrevino/focusflow/internal/models"
)

var errInjected = errors.New("injected store failure")

// fakeStore is an in-memory Store with failure injection
type fakeStore struct {
	mu    sync.Mutex
	lists map[string]*models.List
	tasks map[string]*models.Task

	failIDs   map[string]int // id -> remaining failures for puts and deletes
	gate      chan struct{}  // when set, every write waits for it to close
	onFetch   func()         // runs inside GetLists after the data was read
	putCalls  int
	bulkCalls int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		lists:   map[string]*models.List{},
		tasks:   map[string]*models.Task{},
		failIDs: map[string]int{},
	}
}

func (f *fakeStore) failOn(id string, times int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failIDs[id] = times
}

func (f *fakeStore) seedList(id, boardID string, order int) *models.List {
	l := &models.List{ID: id, BoardID: boardID, Title: id, Order: order}
	f.lists[id] = l.Clone()
	return l
}

func (f *fakeStore) seedTask(id string, list *models.List, order int) *models.Task {
	t := &models.Task{ID: id, Title: id, Order: order}
	t.MoveTo(list)
	f.tasks[id] = t.Clone()
	return t
}

func (f *fakeStore) wait(ctx context.Context) error {
	f.mu.Lock()
	gate := f.gate
	f.mu.Unlock()
	if gate == nil {
		return nil
	}
	select {
	case <-gate:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// shouldFail consumes one injected failure. Callers hold f.mu.
func (f *fakeStore) shouldFail(id string) bool {
	if n := f.failIDs[id]; n > 0 {
		f.failIDs[id] = n - 1
		return true
	}
	return false
}

func (f *fakeStore) GetLists(ctx context.Context, boardID string) ([]*models.List, error) {
	f.mu.Lock()
	var out []*models.List
	for _, l := range f.lists {
		if l.BoardID == boardID {
			out = append(out, l.Clone())
		}
	}
	hook := f.onFetch
	f.mu.Unlock()

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	if hook != nil {
		hook()
	}
	return out, nil
}

func (f *fakeStore) GetTasks(ctx context.Context, boardID string) ([]*models.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*models.Task
	for _, t := range f.tasks {
		if t.BoardID == boardID {
			out = append(out, t.Clone())
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeStore) PutList(ctx context.Context, l *models.List) error {
	if err := f.wait(ctx); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.putCalls++
	if f.shouldFail(l.ID) {
		return errInjected
	}
	f.lists[l.ID] = l.Clone()
	return nil
}

func (f *fakeStore) PutTask(ctx context.Context, t *models.Task) error {
	if err := f.wait(ctx); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.putCalls++
	if f.shouldFail(t.ID) {
		return errInjected
	}
	f.tasks[t.ID] = t.Clone()
	return nil
}

func (f *fakeStore) DeleteList(ctx context.Context, id string) error {
	if err := f.wait(ctx); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.shouldFail(id) {
		return errInjected
	}
	for _, t := range f.tasks {
		if t.ListID == id {
			return models.ErrListNotEmpty
		}
	}
	delete(f.lists, id)
	return nil
}

func (f *fakeStore) DeleteTask(ctx context.Context, id string) error {
	if err := f.wait(ctx); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.shouldFail(id) {
		return errInjected
	}
	delete(f.tasks, id)
	return nil
}

func (f *fakeStore) task(id string) *models.Task {
	f.mu.Lock()
	defer f.mu.Unlock()
	if t, ok := f.tasks[id]; ok {
		return t.Clone()
	}
	return nil
}

func (f *fakeStore) list(id string) *models.List {
	f.mu.Lock()
	defer f.mu.Unlock()
	if l, ok := f.lists[id]; ok {
		return l.Clone()
	}
	return nil
}

// bulkFakeStore adds all-or-nothing batch writes
type bulkFakeStore struct {
	*fakeStore
}

func (b bulkFakeStore) PutLists(ctx context.Context, lists []*models.List) error {
	if err := b.wait(ctx); err != nil {
		return err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.bulkCalls++
	for _, l := range lists {
		if b.shouldFail(l.ID) {
			return errInjected
		}
	}
	for _, l := range lists {
		b.lists[l.ID] = l.Clone()
	}
	return nil
}

func (b bulkFakeStore) PutTasks(ctx context.Context, tasks []*models.Task) error {
	if err := b.wait(ctx); err != nil {
		return err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.bulkCalls++
	for _, t := range tasks {
		if b.shouldFail(t.ID) {
			return errInjected
		}
	}
	for _, t := range tasks {
		b.tasks[t.ID] = t.Clone()
	}
	return nil
}
