package reconcile

import "context"

// Pending tracks the persistence of one optimistic operation
type Pending struct {
	op   string
	done chan struct{}
	err  error
}

func newPending(op string) *Pending {
	return &Pending{op: op, done: make(chan struct{})}
}

// resolved returns a Pending that already completed, used for no-op actions
func resolved(op string) *Pending {
	p := newPending(op)
	p.resolve(nil)
	return p
}

func (p *Pending) resolve(err error) {
	p.err = err
	close(p.done)
}

// Op returns the operation name
func (p *Pending) Op() string { return p.op }

// Done is closed once the operation is confirmed or rolled back
func (p *Pending) Done() <-chan struct{} { return p.done }

// Wait blocks until the operation settles or ctx is done.
// A nil error means every write of the operation was confirmed.
func (p *Pending) Wait(ctx context.Context) error {
	select {
	case <-p.done:
		return p.err
	case <-ctx.Done():
		return ctx.Err()
	}
}
