// Package ordering computes new sibling orderings for boards, lists and tasks.
//
// Every structural change (insert, move, transfer, remove) renumbers the
// affected sibling collections to a dense zero-based sequence and reports the
// records whose order or parent changed. The functions are pure: they never
// touch storage and never mutate the slices or items passed in.
package ordering
