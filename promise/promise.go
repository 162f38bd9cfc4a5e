package promise

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/npillmayer/dombuilder/result"
)

// Thenable is a value which will become available later, or fail.
// Then registers reactions for both outcomes. Exactly one of the reactions
// is called, at most once; reactions registered after the value settled
// are called as well. Implementations may call a reaction on any goroutine,
// including the one calling Then.
type Thenable interface {
	Then(onFulfilled func(any), onRejected func(error))
}

// ThenFunc adapts a function to the Thenable interface.
type ThenFunc func(onFulfilled func(any), onRejected func(error))

// Then calls f.
func (f ThenFunc) Then(onFulfilled func(any), onRejected func(error)) {
	f(onFulfilled, onRejected)
}

// IsThenable is true if v is a non-nil Thenable.
func IsThenable(v any) bool {
	t, ok := v.(Thenable)
	return ok && t != nil
}

// ErrCycle is the rejection of a promise resolved with itself.
var ErrCycle = errors.New("promise resolved with itself")

// State is the settlement state of a promise.
type State uint8

// A promise starts out Pending and settles to one of Fulfilled or Rejected.
const (
	Pending State = iota
	Fulfilled
	Rejected
)

func (s State) String() string {
	switch s {
	case Fulfilled:
		return "fulfilled"
	case Rejected:
		return "rejected"
	}
	return "pending"
}

type reaction struct {
	onFulfilled func(any)
	onRejected  func(error)
}

// Promise is a Thenable settled by code holding its resolving functions.
// The zero value is not usable; create promises with New, Resolve, Reject,
// After or WithResolvers.
type Promise struct {
	mu        sync.Mutex
	state     State
	outcome   result.Result[any]
	locked    bool          // resolved with a thenable, waiting for it to settle
	done      chan struct{} // closed on settlement
	reactions []reaction
}

func newPromise() *Promise {
	return &Promise{done: make(chan struct{})}
}

// New creates a promise and runs executor synchronously, handing it the
// resolving functions. A panic in executor rejects the promise.
func New(executor func(resolve func(any), reject func(error))) *Promise {
	p := newPromise()
	func() {
		defer func() {
			if r := recover(); r != nil {
				tracer().Errorf("promise: executor panicked: %v", r)
				p.reject(fmt.Errorf("promise: executor panicked: %v", r))
			}
		}()
		executor(p.resolve, p.reject)
	}()
	return p
}

// WithResolvers creates a pending promise and returns it together with its
// resolving functions. Calls after the first one have no effect.
func WithResolvers() (p *Promise, resolve func(any), reject func(error)) {
	p = newPromise()
	return p, p.resolve, p.reject
}

// Resolve returns a promise fulfilled with v. If v is a Thenable, the
// promise follows it.
func Resolve(v any) *Promise {
	if p, ok := v.(*Promise); ok {
		return p
	}
	p := newPromise()
	p.resolve(v)
	return p
}

// Reject returns a promise rejected with err.
func Reject(err error) *Promise {
	p := newPromise()
	p.reject(err)
	return p
}

// After returns a promise which is fulfilled with v after a delay.
func After(d time.Duration, v any) *Promise {
	p := newPromise()
	time.AfterFunc(d, func() { p.resolve(v) })
	return p
}

// resolve fulfills p with v, or makes p follow v if it is a Thenable.
// Once p has been resolved, further calls of resolve and reject are
// ignored.
func (p *Promise) resolve(v any) {
	p.mu.Lock()
	if p.state != Pending || p.locked {
		p.mu.Unlock()
		return
	}
	p.resolveLocked(v)
}

func (p *Promise) reject(err error) {
	p.mu.Lock()
	if p.state != Pending || p.locked {
		p.mu.Unlock()
		return
	}
	p.settleLocked(result.Err[any](rejection(err)))
}

func rejection(err error) error {
	if err == nil {
		return errors.New("promise rejected")
	}
	return err
}

// resolveLocked is called with p.mu held and releases it.
func (p *Promise) resolveLocked(v any) {
	if v == any(p) {
		p.settleLocked(result.Err[any](ErrCycle))
		return
	}
	t, ok := v.(Thenable)
	if !ok || t == nil {
		p.settleLocked(result.Ok(v))
		return
	}
	p.locked = true
	p.mu.Unlock()
	var once sync.Once
	t.Then(func(x any) {
		once.Do(func() {
			p.mu.Lock()
			p.resolveLocked(x)
		})
	}, func(err error) {
		once.Do(func() {
			p.mu.Lock()
			p.settleLocked(result.Err[any](rejection(err)))
		})
	})
}

// settleLocked is called with p.mu held and releases it before running
// the reactions.
func (p *Promise) settleLocked(r result.Result[any]) {
	if p.state != Pending {
		p.mu.Unlock()
		return
	}
	p.state = Fulfilled
	if !r.IsOk() {
		p.state = Rejected
	}
	p.outcome = r
	p.locked = false
	reactions := p.reactions
	p.reactions = nil
	close(p.done)
	p.mu.Unlock()
	for _, re := range reactions {
		react(re, r)
	}
}

func react(re reaction, r result.Result[any]) {
	v, err := r.Get()
	if err != nil {
		if re.onRejected != nil {
			re.onRejected(err)
		}
		return
	}
	if re.onFulfilled != nil {
		re.onFulfilled(v)
	}
}

// Then registers reactions. If p has already settled, the matching reaction
// is called before Then returns; otherwise it is called on the goroutine
// settling p. Either reaction may be nil.
func (p *Promise) Then(onFulfilled func(any), onRejected func(error)) {
	re := reaction{onFulfilled: onFulfilled, onRejected: onRejected}
	p.mu.Lock()
	if p.state == Pending {
		p.reactions = append(p.reactions, re)
		p.mu.Unlock()
		return
	}
	r := p.outcome
	p.mu.Unlock()
	react(re, r)
}

// State returns the current settlement state of p.
func (p *Promise) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Outcome returns the result of a settled promise. ok is false while p is
// pending.
func (p *Promise) Outcome() (r result.Result[any], ok bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.state == Pending {
		return nil, false
	}
	return p.outcome, true
}

// Done returns a channel which is closed as soon as p settles.
func (p *Promise) Done() <-chan struct{} {
	return p.done
}

// Await blocks until p settles or ctx is done.
func (p *Promise) Await(ctx context.Context) (any, error) {
	select {
	case <-p.done:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	p.mu.Lock()
	r := p.outcome
	p.mu.Unlock()
	return r.Get()
}

// All returns a promise fulfilled with the values of all thenables, in
// argument order, or rejected with the first rejection.
func All(ts ...Thenable) *Promise {
	p := newPromise()
	if len(ts) == 0 {
		p.resolve([]any{})
		return p
	}
	values := make([]any, len(ts))
	var mu sync.Mutex
	remaining := len(ts)
	for i, t := range ts {
		i := i
		t.Then(func(v any) {
			mu.Lock()
			values[i] = v
			remaining--
			last := remaining == 0
			mu.Unlock()
			if last {
				p.resolve(values)
			}
		}, p.reject)
	}
	return p
}
