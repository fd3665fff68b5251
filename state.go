// Package promise implements a one-shot handoff of a single value (or
// failure) from one producer to one consumer.
//
// A [Promise] is the producer's write handle: it may be settled at most
// once, with either a value ([Promise.Set]) or an error ([Promise.Fail]).
// A [Future] is the consumer's read handle, obtained once per promise via
// [Promise.Future]; its [Future.Get] method blocks until the promise is
// settled and then reports the outcome.
//
// Both handles share a [State], which holds the outcome and coordinates
// waiting. The State is the only object shared between goroutines; each
// handle is meant to be owned by one goroutine at a time, and ownership is
// transferred by moving the handle (see [Promise.Move]).
//
// There are no timeouts or cancellation: a Get on an unsettled state blocks
// indefinitely. To guarantee a waiting consumer is eventually released even
// if the producer never settles, the producer should defer a call to
// [Promise.Release], which installs [ErrBroken] when the promise is
// abandoned without an outcome.
package promise

import (
	"errors"
	"sync"
)

// Errors reported by operations on promises, futures, and their shared
// state. Errors passed to Fail are surfaced by Get verbatim and are never
// wrapped in any of these.
var (
	// ErrAlreadySet is reported by Set and Fail when the state has already
	// been settled.
	ErrAlreadySet = errors.New("state is already settled")

	// ErrFutureIssued is reported by Promise.Future when a future has
	// already been issued for the promise.
	ErrFutureIssued = errors.New("future was already issued")

	// ErrNoState is reported by operations on a handle that holds no state,
	// either because it was moved from or because it was released.
	ErrNoState = errors.New("handle has no state")

	// ErrBroken is the outcome installed by Promise.Release when a promise
	// with an issued future is abandoned before being settled.
	ErrBroken = errors.New("broken promise")

	// ErrIncomplete is reported by Get when the state was settled with
	// neither a value nor an error. It indicates a misuse such as Fail(nil)
	// and should otherwise be unreachable.
	ErrIncomplete = errors.New("state is settled without an outcome")
)

// A State is the cell shared by a [Promise] and a [Future]: a slot for one
// value or one error, settled at most once. A State is safe for concurrent
// use by multiple goroutines. A zero State is ready for use, but must not
// be copied after its first use.
//
// Most callers do not use a State directly; construct a [Promise] and let
// the handles mediate access. The State API is the building block for
// callers that need a bare settle-once cell without handle discipline.
type State[T any] struct {
	μ     sync.Mutex
	value T
	err   error
	ready bool          // terminal; set exactly once, never cleared
	has   bool          // value is populated (ready with has == false and err == nil is the incomplete case)
	done  chan struct{} // lazily allocated; closed when ready
}

// NewState constructs a new unsettled State.
func NewState[T any]() *State[T] { return new(State[T]) }

// Set settles s with the value v and wakes all goroutines blocked in Get or
// Wait. If s was already settled, Set reports [ErrAlreadySet] and the state
// is unchanged. Set does not block.
func (s *State[T]) Set(v T) error {
	s.μ.Lock()
	defer s.μ.Unlock()
	if s.ready {
		return ErrAlreadySet
	}
	s.value = v
	s.has = true
	s.settleLocked()
	return nil
}

// Fail settles s with the error err and wakes all goroutines blocked in Get
// or Wait. If s was already settled, Fail reports [ErrAlreadySet] and the
// state is unchanged. Fail does not block.
//
// The error is delivered to Get exactly as given. If err == nil the state
// becomes settled with no outcome at all, and Get reports [ErrIncomplete];
// callers should treat a nil failure as a bug.
func (s *State[T]) Fail(err error) error {
	s.μ.Lock()
	defer s.μ.Unlock()
	if s.ready {
		return ErrAlreadySet
	}
	s.err = err
	s.settleLocked()
	return nil
}

// settleLocked marks s ready and wakes any waiters. The caller must hold
// s.μ and have already populated the outcome.
func (s *State[T]) settleLocked() {
	s.ready = true
	if s.done != nil {
		close(s.done)
	}
}

// Get blocks until s is settled, then returns its outcome: the value from
// Set, or the error given to Fail, unwrapped and unmodified. Once settled
// the outcome never changes, and Get may be called any number of times; a
// successful value is returned (by copy) on every call.
//
// Get blocks forever if s is never settled; see [Promise.Release] for the
// producer-side discipline that prevents this.
func (s *State[T]) Get() (T, error) {
	<-s.readyChan()

	// The state is terminal here, but the lock is still needed to order
	// this read after the settling write.
	s.μ.Lock()
	defer s.μ.Unlock()
	var zero T
	if s.err != nil {
		return zero, s.err
	}
	if !s.has {
		return zero, ErrIncomplete
	}
	return s.value, nil
}

// IsReady reports whether s has been settled, without blocking.
func (s *State[T]) IsReady() bool {
	s.μ.Lock()
	defer s.μ.Unlock()
	return s.ready
}

// Wait blocks until s is settled, without inspecting the outcome. It
// returns immediately if s is already settled.
func (s *State[T]) Wait() { <-s.readyChan() }

// readyChan returns a channel that is closed when s is settled, allocating
// it if no waiter has needed it yet.
func (s *State[T]) readyChan() <-chan struct{} {
	s.μ.Lock()
	defer s.μ.Unlock()
	if s.done == nil {
		s.done = make(chan struct{})
		if s.ready {
			close(s.done)
		}
	}
	return s.done
}
