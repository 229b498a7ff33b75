package reconcile

import (
	"github.com/thenoetrevino/focusflow/internal/models"
	"github.com/thenoetrevino/focusflow/internal/ordering"
)

// state is one board's lists and their tasks, each sibling set in display order
type state struct {
	lists []*models.List
	tasks map[string][]*models.Task // by list id
}

// newState sorts each sibling set by stored order (ties by fetch position) and
// renumbers it 0..n-1. The returned writes hold the records whose stored order
// did not match their position.
func newState(lists []*models.List, tasks []*models.Task) (state, []ordering.Write[*models.List], []ordering.Write[*models.Task]) {
	normalized := ordering.Normalize(lists)
	st := state{
		lists: normalized.Items,
		tasks: make(map[string][]*models.Task, len(lists)),
	}
	byList := make(map[string][]*models.Task)
	for _, t := range tasks {
		byList[t.ListID] = append(byList[t.ListID], t)
	}

	var taskFixes []ordering.Write[*models.Task]
	for _, l := range st.lists {
		res := ordering.Normalize(byList[l.ID])
		st.tasks[l.ID] = res.Items
		taskFixes = append(taskFixes, res.Writes...)
	}
	return st, normalized.Writes, taskFixes
}

func (st state) clone() state {
	out := state{
		lists: cloneAll(st.lists),
		tasks: make(map[string][]*models.Task, len(st.tasks)),
	}
	for id, ts := range st.tasks {
		out.tasks[id] = cloneAll(ts)
	}
	return out
}

func (st state) list(id string) *models.List {
	if i := ordering.IndexOf(st.lists, id); i >= 0 {
		return st.lists[i]
	}
	return nil
}

// findTask returns the owning list id and position of a task
func (st state) findTask(id string) (string, int) {
	for listID, ts := range st.tasks {
		if i := ordering.IndexOf(ts, id); i >= 0 {
			return listID, i
		}
	}
	return "", -1
}

func cloneAll[T ordering.Item[T]](items []T) []T {
	out := make([]T, len(items))
	for i, it := range items {
		out[i] = it.Clone()
	}
	return out
}

func byID[T ordering.Item[T]](collections ...[]T) map[string]T {
	m := make(map[string]T)
	for _, c := range collections {
		for _, it := range c {
			m[it.GetID()] = it
		}
	}
	return m
}
