package ordering

import (
	"fmt"
	"sort"
)

// Item is a record that lives in an ordered sibling collection.
// Implementations are pointer types whose Clone returns an independent copy.
type Item[T any] interface {
	GetID() string
	GetParentID() string
	GetOrder() int
	SetOrder(order int)
	Clone() T
}

// Write is one record that has to be persisted after an operation
type Write[T any] struct {
	Item          T // copy carrying the final order and parent
	PrevOrder     int
	ParentChanged bool
	Inserted      bool // record did not exist in the input collections
}

// Result is the outcome of an operation on a single sibling collection
type Result[T any] struct {
	Items  []T
	Writes []Write[T]
}

// TransferResult is the outcome of moving an item between two collections
type TransferResult[T any] struct {
	Source []T
	Dest   []T
	Moved  T
	Writes []Write[T]
}

type placement struct {
	order  int
	parent string
}

// snapshot remembers the pre-operation order and parent of every input record
type snapshot map[string]placement

func takeSnapshot[T Item[T]](collections ...[]T) snapshot {
	s := make(snapshot)
	for _, c := range collections {
		for _, it := range c {
			s[it.GetID()] = placement{order: it.GetOrder(), parent: it.GetParentID()}
		}
	}
	return s
}

// Sort returns a copy of items ordered by GetOrder ascending.
// Equal orders keep their input position. Items are cloned, orders untouched.
func Sort[T Item[T]](items []T) []T {
	out := make([]T, len(items))
	for i, it := range items {
		out[i] = it.Clone()
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].GetOrder() < out[j].GetOrder()
	})
	return out
}

// Normalize sorts items by order (ties broken by input position) and
// renumbers them 0..n-1. The returned writes hold the items whose order changed.
func Normalize[T Item[T]](items []T) Result[T] {
	before := takeSnapshot(items)
	out := Sort(items)
	return Result[T]{Items: out, Writes: renumber(out, before)}
}

// Insert places item at index atIndex (clamped to [0, len]) and renumbers the
// collection. The inserted item is always part of the writes.
func Insert[T Item[T]](siblings []T, item T, atIndex int) (Result[T], error) {
	if IndexOf(siblings, item.GetID()) >= 0 {
		return Result[T]{}, fmt.Errorf("insert %s: %w", item.GetID(), ErrDuplicateID)
	}
	before := takeSnapshot(siblings)
	items := Sort(siblings)
	atIndex = clamp(atIndex, 0, len(items))
	items = splice(items, atIndex, item.Clone())
	return Result[T]{Items: items, Writes: renumber(items, before)}, nil
}

// Move relocates the item at fromIndex to toIndex within one collection.
// Indices refer to display order. fromIndex == toIndex is a no-op with no writes.
func Move[T Item[T]](siblings []T, fromIndex, toIndex int) (Result[T], error) {
	if err := checkIndex(fromIndex, len(siblings)); err != nil {
		return Result[T]{}, fmt.Errorf("move from: %w", err)
	}
	if err := checkIndex(toIndex, len(siblings)); err != nil {
		return Result[T]{}, fmt.Errorf("move to: %w", err)
	}

	before := takeSnapshot(siblings)
	items := Sort(siblings)
	if fromIndex == toIndex {
		return Result[T]{Items: items}, nil
	}

	moved := items[fromIndex]
	items = append(items[:fromIndex:fromIndex], items[fromIndex+1:]...)
	items = splice(items, toIndex, moved)
	return Result[T]{Items: items, Writes: renumber(items, before)}, nil
}

// Transfer removes the item at fromIndex in source, applies reparent to it and
// inserts it into dest at toIndex (clamped to [0, len(dest)]).
// Both collections are renumbered.
func Transfer[T Item[T]](source, dest []T, fromIndex, toIndex int, reparent func(T)) (TransferResult[T], error) {
	if err := checkIndex(fromIndex, len(source)); err != nil {
		return TransferResult[T]{}, fmt.Errorf("transfer from: %w", err)
	}

	before := takeSnapshot(source, dest)
	src := Sort(source)
	dst := Sort(dest)

	moved := src[fromIndex]
	if IndexOf(dst, moved.GetID()) >= 0 {
		return TransferResult[T]{}, fmt.Errorf("transfer %s: %w", moved.GetID(), ErrDuplicateID)
	}
	src = append(src[:fromIndex:fromIndex], src[fromIndex+1:]...)
	if reparent != nil {
		reparent(moved)
	}
	toIndex = clamp(toIndex, 0, len(dst))
	dst = splice(dst, toIndex, moved)

	writes := renumber(src, before)
	writes = append(writes, renumber(dst, before)...)
	return TransferResult[T]{Source: src, Dest: dst, Moved: moved, Writes: writes}, nil
}

// Remove deletes the item with the given id and renumbers the survivors.
// The removed item is returned separately and is not part of the writes.
func Remove[T Item[T]](siblings []T, id string) (Result[T], T, error) {
	var removed T
	before := takeSnapshot(siblings)
	items := Sort(siblings)
	idx := IndexOf(items, id)
	if idx < 0 {
		return Result[T]{}, removed, fmt.Errorf("remove %s: %w", id, ErrUnknownID)
	}
	removed = items[idx]
	items = append(items[:idx:idx], items[idx+1:]...)
	return Result[T]{Items: items, Writes: renumber(items, before)}, removed, nil
}

// IndexOf returns the position of id in items, or -1
func IndexOf[T Item[T]](items []T, id string) int {
	for i, it := range items {
		if it.GetID() == id {
			return i
		}
	}
	return -1
}

// IsDense reports whether items carry orders 0..n-1 in slice order
func IsDense[T Item[T]](items []T) bool {
	for i, it := range items {
		if it.GetOrder() != i {
			return false
		}
	}
	return true
}

// renumber assigns order = position and collects the items that differ from before
func renumber[T Item[T]](items []T, before snapshot) []Write[T] {
	var writes []Write[T]
	for i, it := range items {
		it.SetOrder(i)
		prev, existed := before[it.GetID()]
		switch {
		case !existed:
			writes = append(writes, Write[T]{Item: it, PrevOrder: -1, Inserted: true})
		case prev.order != i || prev.parent != it.GetParentID():
			writes = append(writes, Write[T]{
				Item:          it,
				PrevOrder:     prev.order,
				ParentChanged: prev.parent != it.GetParentID(),
			})
		}
	}
	return writes
}

func splice[T any](items []T, at int, item T) []T {
	items = append(items, item)
	copy(items[at+1:], items[at:])
	items[at] = item
	return items
}

func checkIndex(i, n int) error {
	if i < 0 || i >= n {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrInvalidIndex, i, n)
	}
	return nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
