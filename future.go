package promise

// A Future is the read handle for a [State]: it observes the outcome of
// the corresponding [Promise], blocking until one is available. Futures are
// issued by [Promise.Future], at most one per promise.
//
// The methods of a Future only read shared state, so a Future may be used
// from the goroutine that owns it regardless of where the Promise lives.
type Future[T any] struct {
	state *State[T]
}

// Get blocks until the promise is settled, then returns its outcome: the
// value passed to Set, or the error passed to Fail (including the
// synthesized [ErrBroken] from an abandoned promise), unwrapped and
// unmodified. Get does not consume the outcome: after a successful settle
// it returns the same value on every call.
//
// Get reports [ErrNoState] if f holds no state. It blocks forever if the
// producer neither settles nor releases the promise.
func (f *Future[T]) Get() (T, error) {
	if f.state == nil {
		var zero T
		return zero, ErrNoState
	}
	return f.state.Get()
}

// IsReady reports whether the promise has been settled, without blocking.
// It reports false if f holds no state.
func (f *Future[T]) IsReady() bool {
	if f.state == nil {
		return false
	}
	return f.state.IsReady()
}

// Wait blocks until the promise is settled, without fetching the outcome,
// and returns nil. It reports [ErrNoState] if f holds no state.
func (f *Future[T]) Wait() error {
	if f.state == nil {
		return ErrNoState
	}
	f.state.Wait()
	return nil
}

// Valid reports whether f currently holds a state.
func (f *Future[T]) Valid() bool { return f.state != nil }
