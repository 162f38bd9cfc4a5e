package promise

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPromiseResolve(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dombuilder.promise")
	defer teardown()
	//
	p := Resolve(7)
	assert.Equal(t, Fulfilled, p.State())
	var got any
	p.Then(func(v any) { got = v }, nil)
	assert.Equal(t, 7, got, "reaction on settled promise runs before Then returns")
	r, ok := p.Outcome()
	require.True(t, ok)
	var v any
	var err error
	switch m := r.Match(); m {
	case m.Ok(&v):
	case m.Err(&err):
		t.Errorf("expected promise to be fulfilled, is rejected: %v", err)
	}
	assert.Equal(t, 7, v)
}

func TestPromiseReject(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dombuilder.promise")
	defer teardown()
	//
	boom := errors.New("boom")
	p := Reject(boom)
	assert.Equal(t, Rejected, p.State())
	var got error
	p.Then(func(any) { t.Error("fulfillment reaction called for rejected promise") },
		func(err error) { got = err })
	assert.ErrorIs(t, got, boom)
	_, err := p.Await(context.Background())
	assert.ErrorIs(t, err, boom)
}

func TestPromiseSettlesOnce(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dombuilder.promise")
	defer teardown()
	//
	p, resolve, reject := WithResolvers()
	_, ok := p.Outcome()
	assert.False(t, ok)
	calls := 0
	p.Then(func(any) { calls++ }, func(error) { calls++ })
	resolve("a")
	resolve("b")
	reject(errors.New("late"))
	assert.Equal(t, 1, calls)
	v, err := p.Await(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, "a", v)
}

func TestPromiseFollowsThenable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dombuilder.promise")
	defer teardown()
	//
	inner, resolveInner, _ := WithResolvers()
	outer, resolveOuter, rejectOuter := WithResolvers()
	resolveOuter(inner)
	rejectOuter(errors.New("ignored"))
	assert.Equal(t, Pending, outer.State())
	resolveInner("x")
	v, err := outer.Await(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, "x", v)
}

func TestPromiseSelfResolution(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dombuilder.promise")
	defer teardown()
	//
	p, resolve, _ := WithResolvers()
	resolve(p)
	_, err := p.Await(context.Background())
	assert.ErrorIs(t, err, ErrCycle)
}

func TestPromiseExecutorPanics(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dombuilder.promise")
	defer teardown()
	//
	p := New(func(resolve func(any), reject func(error)) {
		panic("oops")
	})
	assert.Equal(t, Rejected, p.State())
}

func TestPromiseAfter(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dombuilder.promise")
	defer teardown()
	//
	p := After(10*time.Millisecond, "late")
	assert.Equal(t, Pending, p.State())
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	v, err := p.Await(ctx)
	require.NoError(t, err)
	assert.Equal(t, "late", v)
}

func TestPromiseAwaitCancelled(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dombuilder.promise")
	defer teardown()
	//
	p, _, _ := WithResolvers()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Millisecond)
	defer cancel()
	_, err := p.Await(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestPromiseAll(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dombuilder.promise")
	defer teardown()
	//
	p := All(After(20*time.Millisecond, 1), Resolve(2), ThenFunc(func(f func(any), _ func(error)) {
		f(3)
	}))
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	v, err := p.Await(ctx)
	require.NoError(t, err)
	assert.Equal(t, []any{1, 2, 3}, v)
	//
	boom := errors.New("boom")
	p = All(Resolve(1), Reject(boom))
	_, err = p.Await(ctx)
	assert.ErrorIs(t, err, boom)
}

func TestIsThenable(t *testing.T) {
	assert.True(t, IsThenable(Resolve(1)))
	assert.True(t, IsThenable(ThenFunc(func(func(any), func(error)) {})))
	assert.False(t, IsThenable("text"))
	assert.False(t, IsThenable(nil))
}
