/*
Package result holds the outcome of a computation that may fail.

A Result is either Ok, carrying a value, or Err, carrying an error. Clients
take results apart with Match:

    switch m := r.Match(); m {
    case m.Ok(&v):
        use(v)
    case m.Err(&err):
        report(err)
    }

A branch of the matcher returns the matcher itself if it applies, nil
otherwise, which makes exactly one case of the switch fire. The switch
compares matchers, so it works for comparable values only; use Get for
slices, maps and the like.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package result

import "fmt"

// Result is the outcome of a computation that may fail.
type Result[T any] interface {
	Match() Matcher[T]
	Get() (T, error)     // value and error, Go style
	IsOk() bool          // did the computation succeed?
	WithDefault(def T) T // value, or def for an error
	String() string      // "Ok(…)" or "Err(…)"
}

type result[T any] struct {
	value T
	err   error
}

// Ok wraps a value into a successful result.
func Ok[T any](x T) Result[T] {
	return result[T]{value: x}
}

// Err wraps an error into a failed result. err must not be nil.
func Err[T any](err error) Result[T] {
	if err == nil {
		panic("result: Err called with nil error")
	}
	return result[T]{err: err}
}

// From converts a Go style return pair into a result.
func From[T any](x T, err error) Result[T] {
	if err != nil {
		return Err[T](err)
	}
	return Ok(x)
}

func (r result[T]) Match() Matcher[T] {
	return matcher[T]{r: r}
}

func (r result[T]) Get() (T, error) {
	return r.value, r.err
}

func (r result[T]) IsOk() bool {
	return r.err == nil
}

func (r result[T]) WithDefault(def T) T {
	if r.err != nil {
		return def
	}
	return r.value
}

func (r result[T]) String() string {
	if r.err != nil {
		return fmt.Sprintf("Err(%v)", r.err)
	}
	return fmt.Sprintf("Ok(%v)", r.value)
}

// Map applies f to the value of a successful result.
func Map[T, S any](r Result[T], f func(T) S) Result[S] {
	v, err := r.Get()
	if err != nil {
		return Err[S](err)
	}
	return Ok(f(v))
}

// --- Matching --------------------------------------------------------------

// Matcher takes a result apart. Each branch stores the matching part of the
// result and returns the matcher, or returns nil if it does not apply.
type Matcher[T any] interface {
	Ok(*T) Matcher[T]
	Err(*error) Matcher[T]
}

type matcher[T any] struct {
	r result[T]
}

func (rm matcher[T]) Ok(v *T) Matcher[T] {
	if rm.r.err == nil {
		*v = rm.r.value
		return rm
	}
	return nil
}

func (rm matcher[T]) Err(err *error) Matcher[T] {
	if rm.r.err != nil {
		*err = rm.r.err
		return rm
	}
	return nil
}
