package dombuilder

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/npillmayer/dombuilder/dom"
	"github.com/npillmayer/dombuilder/promise"
	"golang.org/x/net/html"
)

// Wrapper is implemented by components which wrap a node. A pending child
// settling to a Wrapper is replaced by the wrapped node.
type Wrapper interface {
	Element() *html.Node
}

// pendingChild is a placeholder waiting for its Thenable to settle.
type pendingChild struct {
	ph      *html.Node
	t       promise.Thenable
	release func()
}

// queue collects the placeholders created while the document is locked.
type queue []pendingChild

// appendPending attaches a placeholder for t to parent and queues it. The
// reactions of t are registered later by subscribe.
func (b *Builder) appendPending(parent *html.Node, t promise.Thenable, q *queue) bool {
	ph, err := b.host.CreateElement(b.conf.PlaceholderTag)
	if err != nil {
		tracer().Errorf("dombuilder: cannot create placeholder: %v", err)
		return false
	}
	if err = b.host.AppendChild(parent, ph); err != nil {
		tracer().Errorf("dombuilder: cannot append placeholder: %v", err)
		return false
	}
	b.conf.Metrics.placeholder()
	*q = append(*q, pendingChild{ph: ph, t: t, release: b.host.Hold()})
	return true
}

// subscribe registers the reactions of queued placeholders. It must be
// called without holding the document lock: Then, Element and settlement
// callbacks are client code and may build elements themselves.
func (b *Builder) subscribe(q queue) {
	for _, pc := range q {
		b.await(pc)
	}
}

func (b *Builder) await(pc pendingChild) {
	var once sync.Once
	settle := func(v any, err error) {
		once.Do(func() {
			var n *html.Node
			if err == nil {
				n, err = b.nodeFor(v)
			}
			b.host.Go(func() {
				defer pc.release()
				b.swap(pc.ph, n, v, err)
			})
		})
	}
	defer func() {
		if r := recover(); r != nil {
			settle(nil, fmt.Errorf("dombuilder: pending child panicked: %v", r))
		}
	}()
	pc.t.Then(func(v any) { settle(v, nil) }, func(err error) { settle(nil, err) })
}

// nodeFor calls resolvedNode, turning a panicking wrapper into an error.
func (b *Builder) nodeFor(v any) (n *html.Node, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("dombuilder: wrapper of pending child panicked: %v", r)
		}
	}()
	return b.resolvedNode(v), nil
}

// swap replaces placeholder ph by n, the node standing in for the value v
// the pending child settled to, or removes ph if n is nil. It runs as a
// task of the host document.
func (b *Builder) swap(ph, n *html.Node, v any, err error) {
	parent := ph.Parent
	if parent == nil {
		tracer().Debugf("dombuilder: placeholder detached, resolved value dropped")
		b.conf.Metrics.settled(OutcomeDetached)
		return
	}
	if err != nil {
		tracer().Errorf("dombuilder: pending child of <%s> rejected: %v", parent.Data, err)
		b.remove(parent, ph)
		b.conf.Metrics.settled(OutcomeRejected)
		if h := b.conf.OnRejected; h != nil {
			done := b.host.Hold()
			go func() {
				defer done()
				h(err)
			}()
		}
		return
	}
	if n == nil {
		tracer().Debugf("dombuilder: pending child settled to %T, placeholder removed", v)
		b.remove(parent, ph)
		b.conf.Metrics.settled(OutcomeRemoved)
		return
	}
	if err = b.host.ReplaceChild(parent, n, ph); err != nil {
		tracer().Errorf("dombuilder: cannot swap placeholder: %v", err)
		b.remove(parent, ph)
		b.conf.Metrics.settled(OutcomeRemoved)
		return
	}
	b.conf.Metrics.settled(OutcomeReplaced)
}

func (b *Builder) remove(parent, ph *html.Node) {
	if err := b.host.RemoveChild(parent, ph); err != nil {
		tracer().Errorf("dombuilder: cannot remove placeholder: %v", err)
	}
}

// resolvedNode returns the node standing in for a settled value: the value
// itself if it is a node, the wrapped node of a wrapper, or a text node for
// a string. For anything else it returns nil. It is called without holding
// the document lock.
func (b *Builder) resolvedNode(v any) *html.Node {
	switch x := v.(type) {
	case *html.Node:
		if dom.IsValidChild(x) {
			return x
		}
		return nil
	case string:
		return b.host.CreateTextNode(x)
	case Wrapper:
		if isNil(x) {
			return nil
		}
		if n := x.Element(); dom.IsValidChild(n) {
			return n
		}
		return nil
	}
	if n := b.wrapped(v); dom.IsValidChild(n) {
		return n
	}
	return nil
}

// wrapped extracts the node held in the wrapper field of a struct (or a
// pointer to a struct).
func (b *Builder) wrapped(v any) *html.Node {
	if isNil(v) {
		return nil
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Ptr {
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil
	}
	f, ok := rv.Type().FieldByName(b.conf.WrapperField)
	if !ok || !f.IsExported() {
		return nil
	}
	fv, err := rv.FieldByIndexErr(f.Index)
	if err != nil || !fv.CanInterface() {
		return nil
	}
	n, _ := fv.Interface().(*html.Node)
	return n
}
