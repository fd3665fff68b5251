package promise

// A Promise is the write handle for a [State]: the capability to settle it
// exactly once and to issue the single [Future] that observes it.
//
// A Promise is a single-owner handle. It is not safe for concurrent use by
// multiple goroutines; instead, transfer ownership between goroutines by
// handing over the result of [Promise.Move]. The State underneath is what
// both sides share, and it carries its own lock.
//
// The goroutine that ends up owning a Promise should defer [Promise.Release]
// so that a consumer blocked on the future is unblocked with [ErrBroken]
// even when the producer exits without settling.
type Promise[T any] struct {
	state  *State[T]
	issued bool // a Future has been handed out for this lineage
}

// New constructs a new Promise with a fresh unsettled [State].
func New[T any]() *Promise[T] { return &Promise[T]{state: NewState[T]()} }

// Future returns the read handle for p's state. At most one Future may be
// issued per promise lineage: a second call reports [ErrFutureIssued], even
// after the promise has been moved. Calling Future on an empty handle
// reports [ErrNoState].
func (p *Promise[T]) Future() (*Future[T], error) {
	if p.state == nil {
		return nil, ErrNoState
	}
	if p.issued {
		return nil, ErrFutureIssued
	}
	p.issued = true
	return &Future[T]{state: p.state}, nil
}

// Set settles the promise with the value v. It reports [ErrNoState] on an
// empty handle and [ErrAlreadySet] if an outcome was already written.
func (p *Promise[T]) Set(v T) error {
	if p.state == nil {
		return ErrNoState
	}
	return p.state.Set(v)
}

// Fail settles the promise with the error err. It reports [ErrNoState] on
// an empty handle and [ErrAlreadySet] if an outcome was already written.
// The error is delivered to the future's Get verbatim.
func (p *Promise[T]) Fail(err error) error {
	if p.state == nil {
		return ErrNoState
	}
	return p.state.Fail(err)
}

// Move transfers ownership of p's state to a new Promise and empties p.
// The new handle behaves exactly as p would have, including the record of
// whether a future was issued. After Move, every operation on p reports
// [ErrNoState]; it never silently succeeds.
//
// Use Move when handing the write side to another goroutine, so that the
// sender keeps no usable alias to the write capability.
func (p *Promise[T]) Move() *Promise[T] {
	np := &Promise[T]{state: p.state, issued: p.issued}
	p.state = nil
	p.issued = false
	return np
}

// Valid reports whether p currently holds a state.
func (p *Promise[T]) Valid() bool { return p.state != nil }

// Release abandons the promise. If it still holds a state, a future was
// issued, and no outcome was ever written, Release settles the state with
// [ErrBroken] so that a blocked or future Get terminates instead of hanging.
// If no future was issued nobody can be waiting, and no outcome is
// installed.
//
// Release empties the handle and is safe to call more than once; a call on
// an empty or already-settled handle does nothing. Producers should defer
// it as soon as they take ownership, so it runs on every exit path.
func (p *Promise[T]) Release() {
	if p.state != nil && p.issued {
		// A settled state reports ErrAlreadySet here; losing that race to a
		// real outcome is exactly what we want.
		_ = p.state.Fail(ErrBroken)
	}
	p.state = nil
	p.issued = false
}
