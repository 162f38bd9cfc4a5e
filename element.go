package dombuilder

import (
	"fmt"
	"reflect"

	"github.com/npillmayer/dombuilder/dom"
	"github.com/npillmayer/dombuilder/promise"
	"golang.org/x/net/html"
)

// Append appends a value to parent, if it is appendable:
//
//   - sequences have each of their items appended, in order, recursively;
//     items which are not appendable are skipped
//   - nodes are attached as last child; fragments move their children
//   - strings are attached as text nodes
//   - pending values are represented by a placeholder until they settle
//
// Append returns false, without touching parent, for anything else,
// including a nil parent.
func (b *Builder) Append(parent *html.Node, v any) (ok bool) {
	if parent == nil {
		return false
	}
	var q queue
	b.host.Do(func() {
		ok = b.append(parent, v, &q)
	})
	b.subscribe(q)
	return
}

func (b *Builder) append(parent *html.Node, v any, q *queue) bool {
	switch Classify(v) {
	case KindSequence:
		rv := reflect.ValueOf(v)
		for i := 0; i < rv.Len(); i++ {
			item := rv.Index(i).Interface()
			if !b.append(parent, item, q) && !isNil(item) {
				b.warn("child", "dombuilder: %T ignored as child of <%s>", item, parent.Data)
			}
		}
		return true
	case KindNode:
		if err := b.host.AppendChild(parent, v.(*html.Node)); err != nil {
			tracer().Errorf("dombuilder: cannot append child: %v", err)
			return false
		}
		return true
	case KindText:
		return b.host.AppendChild(parent, b.host.CreateTextNode(v.(string))) == nil
	case KindPending:
		return b.appendPending(parent, v.(promise.Thenable), q)
	}
	return false
}

// MakeElement creates an element. If firstArg is appendable (see Append),
// it is appended; otherwise, if it is a property bag, its entries are
// assigned to the element. The remaining arguments are appended in order.
//
// firstArg may be absent: nil, false and numeric zero are ignored.
// MakeElement panics if tag is not a valid tag name.
func (b *Builder) MakeElement(tag string, firstArg any, rest ...any) *html.Node {
	el, err := b.Build(tag, firstArg, rest...)
	if err != nil {
		panic(err)
	}
	return el
}

// Build is like MakeElement, but returns an error for an invalid tag name.
func (b *Builder) Build(tag string, firstArg any, rest ...any) (el *html.Node, err error) {
	var q queue
	b.host.Do(func() {
		el, err = b.build(tag, firstArg, rest, &q)
	})
	b.subscribe(q)
	return
}

func (b *Builder) build(tag string, firstArg any, rest []any, q *queue) (*html.Node, error) {
	el, err := b.host.CreateElement(tag)
	if err != nil {
		tracer().Errorf("dombuilder: %v", err)
		return nil, fmt.Errorf("dombuilder: cannot create <%s>: %w", tag, err)
	}
	b.conf.Metrics.built()
	b.decorate(el, firstArg, q)
	for _, child := range rest {
		if !b.append(el, child, q) && !isNil(child) {
			b.warn("child", "dombuilder: %T ignored as child of <%s>", child, el.Data)
		}
	}
	return el, nil
}

// decorate appends firstArg to el or assigns its properties.
func (b *Builder) decorate(el *html.Node, firstArg any, q *queue) {
	if isAbsent(firstArg) {
		return
	}
	if b.append(el, firstArg, q) {
		return
	}
	props, ok := entries(firstArg)
	if !ok {
		b.warn("child", "dombuilder: %T ignored as first argument of <%s>", firstArg, el.Data)
		return
	}
	b.assign(el, props)
}

// assign routes the entries of a property bag to properties, attributes,
// inline style and dataset of el.
func (b *Builder) assign(el *html.Node, props Props) {
	for _, p := range props {
		attr, marked := b.markedAttribute(p.Key)
		exception := b.isException(p.Key)
		switch {
		case !exception && !marked && !b.host.HasSettableProperty(el, p.Key):
			b.warn("property", "dombuilder: <%s> has no property %q", el.Data, p.Key)
		case p.Key == "style":
			b.setStyles(el, p.Value)
		case p.Key == "dataset":
			b.setData(el, p.Value)
		case exception:
			b.setAttribute(el, p.Key, p.Value)
		case marked:
			b.setAttribute(el, attr, p.Value)
		case dom.IsPrimitive(p.Value):
			if !b.host.SetProperty(el, p.Key, p.Value) {
				b.warn("property", "dombuilder: cannot set property %q of <%s>", p.Key, el.Data)
			}
		default:
			b.warn("property", "dombuilder: value of type %T for property %q of <%s> dropped",
				p.Value, p.Key, el.Data)
		}
	}
}

func (b *Builder) setAttribute(el *html.Node, name string, value any) {
	if err := b.host.SetAttribute(el, name, dom.Stringify(value)); err != nil {
		tracer().Errorf("dombuilder: %v", err)
		b.conf.Metrics.dropped("attribute")
	}
}

// setStyles assigns the entries of a style bag to the inline style of el.
func (b *Builder) setStyles(el *html.Node, styles any) {
	props, ok := entries(styles)
	if !ok {
		b.warn("style", "dombuilder: style of <%s> is not a property bag: %T", el.Data, styles)
		return
	}
	for _, p := range props {
		if !b.host.SetStyle(el, p.Key, dom.Stringify(p.Value)) {
			b.warn("style", "dombuilder: style %q of <%s> dropped", p.Key, el.Data)
		}
	}
}

// setData assigns the entries of a dataset bag to the data-* attributes
// of el.
func (b *Builder) setData(el *html.Node, data any) {
	props, ok := entries(data)
	if !ok {
		b.warn("dataset", "dombuilder: dataset of <%s> is not a property bag: %T", el.Data, data)
		return
	}
	for _, p := range props {
		if !dom.IsPrimitive(p.Value) {
			b.warn("dataset", "dombuilder: value of type %T for dataset entry %q dropped", p.Value, p.Key)
			continue
		}
		if err := b.host.SetData(el, p.Key, dom.Stringify(p.Value)); err != nil {
			b.warn("dataset", "dombuilder: dataset entry %q dropped: %v", p.Key, err)
		}
	}
}
