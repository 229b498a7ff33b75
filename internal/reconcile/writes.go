package reconcile

import (
	"context"
	"fmt"

	"github.com/thenoetrevino/focusflow/internal/models"
	"github.com/thenoetrevino/focusflow/internal/ordering"
)

// write is one store call of an operation plus the call that reverses it
type write struct {
	desc string
	do   func(ctx context.Context) error
	undo func(ctx context.Context) error
}

// recordOps binds one record kind to the store
type recordOps[T ordering.Item[T]] struct {
	kind   string
	put    func(context.Context, T) error
	putAll func(context.Context, []T) error // nil without bulk support
	del    func(context.Context, string) error
}

func (s *Session) listOps() recordOps[*models.List] {
	ops := recordOps[*models.List]{kind: "list", put: s.store.PutList, del: s.store.DeleteList}
	if s.bulk != nil {
		ops.putAll = s.bulk.PutLists
	}
	return ops
}

func (s *Session) taskOps() recordOps[*models.Task] {
	ops := recordOps[*models.Task]{kind: "task", put: s.store.PutTask, del: s.store.DeleteTask}
	if s.bulk != nil {
		ops.putAll = s.bulk.PutTasks
	}
	return ops
}

// putWrites turns engine writes into store calls. prev holds the pre-operation
// records used to undo. Several puts collapse into one transaction when the
// store supports it.
func putWrites[T ordering.Item[T]](k recordOps[T], writes []ordering.Write[T], prev map[string]T) []write {
	if len(writes) == 0 {
		return nil
	}

	items := make([]T, len(writes))
	for i, w := range writes {
		items[i] = w.Item.Clone()
	}

	if k.putAll != nil && len(items) > 1 {
		return []write{{
			desc: fmt.Sprintf("put %d %ss", len(items), k.kind),
			do: func(ctx context.Context) error {
				return k.putAll(ctx, cloneAll(items))
			},
			undo: func(ctx context.Context) error {
				var restore []T
				for _, it := range items {
					if p, ok := prev[it.GetID()]; ok {
						restore = append(restore, p.Clone())
					} else if err := k.del(ctx, it.GetID()); err != nil {
						return err
					}
				}
				if len(restore) == 0 {
					return nil
				}
				return k.putAll(ctx, restore)
			},
		}}
	}

	out := make([]write, 0, len(items))
	for _, it := range items {
		id := it.GetID()
		w := write{
			desc: fmt.Sprintf("put %s %s", k.kind, id),
			do: func(ctx context.Context) error {
				return k.put(ctx, it.Clone())
			},
		}
		if p, ok := prev[id]; ok {
			w.undo = func(ctx context.Context) error { return k.put(ctx, p.Clone()) }
		} else {
			w.undo = func(ctx context.Context) error { return k.del(ctx, id) }
		}
		out = append(out, w)
	}
	return out
}

// deleteWrite removes a record; undo puts the removed copy back
func deleteWrite[T ordering.Item[T]](k recordOps[T], removed T) write {
	keep := removed.Clone()
	id := keep.GetID()
	return write{
		desc: fmt.Sprintf("delete %s %s", k.kind, id),
		do: func(ctx context.Context) error {
			return k.del(ctx, id)
		},
		undo: func(ctx context.Context) error {
			return k.put(ctx, keep.Clone())
		},
	}
}
