package promise_test

import (
	"errors"
	"fmt"

	"github.com/creachadair/promise"
)

func ExamplePromise() {
	p := promise.New[int]()
	f, err := p.Future()
	if err != nil {
		panic(err) // only one future was requested
	}

	// The producer takes ownership of the write handle, settles it exactly
	// once, and defers Release so an early exit before Set would still
	// unblock the consumer with an error.
	done := make(chan struct{})
	go func(p *promise.Promise[int]) {
		defer close(done)
		defer p.Release()
		p.Set(42)
	}(p.Move())

	// The consumer blocks in Get until the outcome is committed.
	v, err := f.Get()
	fmt.Println(v, err)

	// After settlement the outcome is stable: Get repeats it freely.
	fmt.Println(f.IsReady())
	v, _ = f.Get()
	fmt.Println(v)

	<-done
	// Output:
	// 42 <nil>
	// true
	// 42
}

func ExamplePromise_Fail() {
	p := promise.New[string]()
	f, _ := p.Future()

	errNoQuorum := errors.New("no quorum")

	// A producer that cannot deliver reports why. The consumer receives the
	// producer's own error value, not a wrapper.
	go func(p *promise.Promise[string]) {
		defer p.Release()
		p.Fail(errNoQuorum)
	}(p.Move())

	if _, err := f.Get(); errors.Is(err, errNoQuorum) {
		fmt.Println("got:", err)
	}
	// Output:
	// got: no quorum
}

func ExamplePromise_Release() {
	p := promise.New[int]()
	f, _ := p.Future()

	// A producer that exits without settling leaves a broken promise. The
	// deferred Release converts that into a terminal error for the reader
	// instead of an indefinite hang.
	done := make(chan struct{})
	go func(p *promise.Promise[int]) {
		defer close(done)
		defer p.Release()
		// some failure path: returns without calling Set or Fail
	}(p.Move())
	<-done

	_, err := f.Get()
	fmt.Println(errors.Is(err, promise.ErrBroken))
	// Output:
	// true
}
