// Package reconcile keeps one board's optimistic in-memory state consistent
// with the store.
//
// Structural actions (add, move, transfer, remove) are applied to the
// session baseline synchronously and return a Pending handle at once. A
// single goroutine per session persists the resulting writes in FIFO order.
// When a write fails the baseline reverts to the last confirmed state, the
// operations queued behind the failed one are cancelled, and writes that had
// already landed are compensated.
package reconcile
