package dombuilder

import (
	"fmt"

	"golang.org/x/net/html"
)

// Fragment creates a document fragment holding the given children.
func (b *Builder) Fragment(children ...any) *html.Node {
	var frag *html.Node
	var q queue
	b.host.Do(func() {
		frag = b.host.CreateDocumentFragment()
		for _, child := range children {
			if !b.append(frag, child, &q) && !isNil(child) {
				b.warn("child", "dombuilder: %T ignored as child of fragment", child)
			}
		}
	})
	b.subscribe(q)
	return frag
}

// Template creates a <template> element with the given children as its
// content.
func (b *Builder) Template(children ...any) *html.Node {
	return b.MakeElement("template", nil, children...)
}

// Text creates a text node.
func (b *Builder) Text(s string) *html.Node {
	return b.host.CreateTextNode(s)
}

// SVG parses SVG markup and returns its svg element. If stripTitle is set,
// the first <title> of the graphic is removed.
func (b *Builder) SVG(markup string, stripTitle bool) (svg *html.Node, err error) {
	b.host.Do(func() {
		svg, err = b.host.ParseSVG(markup, stripTitle)
	})
	if err != nil {
		return nil, fmt.Errorf("dombuilder: %w", err)
	}
	b.conf.Metrics.built()
	return svg, nil
}

// A creates an <a> element (see MakeElement).
func (b *Builder) A(firstArg any, children ...any) *html.Node {
	return b.MakeElement("a", firstArg, children...)
}

// Button creates a <button> element (see MakeElement).
func (b *Builder) Button(firstArg any, children ...any) *html.Node {
	return b.MakeElement("button", firstArg, children...)
}

// Div creates a <div> element (see MakeElement).
func (b *Builder) Div(firstArg any, children ...any) *html.Node {
	return b.MakeElement("div", firstArg, children...)
}

// P creates a <p> element (see MakeElement).
func (b *Builder) P(firstArg any, children ...any) *html.Node {
	return b.MakeElement("p", firstArg, children...)
}

// Span creates a <span> element (see MakeElement).
func (b *Builder) Span(firstArg any, children ...any) *html.Node {
	return b.MakeElement("span", firstArg, children...)
}

// Ul creates a <ul> element (see MakeElement).
func (b *Builder) Ul(firstArg any, children ...any) *html.Node {
	return b.MakeElement("ul", firstArg, children...)
}

// Li creates a <li> element (see MakeElement).
func (b *Builder) Li(firstArg any, children ...any) *html.Node {
	return b.MakeElement("li", firstArg, children...)
}

// Input creates an <input> element (see MakeElement).
func (b *Builder) Input(firstArg any, children ...any) *html.Node {
	return b.MakeElement("input", firstArg, children...)
}

// Label creates a <label> element (see MakeElement).
func (b *Builder) Label(firstArg any, children ...any) *html.Node {
	return b.MakeElement("label", firstArg, children...)
}

// Style creates a <style> element (see MakeElement).
func (b *Builder) Style(firstArg any, children ...any) *html.Node {
	return b.MakeElement("style", firstArg, children...)
}

// Slot creates a <slot> element (see MakeElement).
func (b *Builder) Slot(firstArg any, children ...any) *html.Node {
	return b.MakeElement("slot", firstArg, children...)
}

// Table creates a <table> element (see MakeElement).
func (b *Builder) Table(firstArg any, children ...any) *html.Node {
	return b.MakeElement("table", firstArg, children...)
}

// Tr creates a <tr> element (see MakeElement).
func (b *Builder) Tr(firstArg any, children ...any) *html.Node {
	return b.MakeElement("tr", firstArg, children...)
}

// Td creates a <td> element (see MakeElement).
func (b *Builder) Td(firstArg any, children ...any) *html.Node {
	return b.MakeElement("td", firstArg, children...)
}

// Th creates a <th> element (see MakeElement).
func (b *Builder) Th(firstArg any, children ...any) *html.Node {
	return b.MakeElement("th", firstArg, children...)
}

// --- Package level functions, using the default builder --------------------

// MakeElement creates an element with the default builder.
func MakeElement(tag string, firstArg any, rest ...any) *html.Node {
	return Default().MakeElement(tag, firstArg, rest...)
}

// Build creates an element with the default builder.
func Build(tag string, firstArg any, rest ...any) (*html.Node, error) {
	return Default().Build(tag, firstArg, rest...)
}

// Append appends a value to parent with the default builder.
func Append(parent *html.Node, v any) bool {
	return Default().Append(parent, v)
}

// Fragment creates a document fragment with the default builder.
func Fragment(children ...any) *html.Node { return Default().Fragment(children...) }

// Template creates a <template> element with the default builder.
func Template(children ...any) *html.Node { return Default().Template(children...) }

// Text creates a text node with the default builder.
func Text(s string) *html.Node { return Default().Text(s) }

// SVG parses SVG markup with the default builder.
func SVG(markup string, stripTitle bool) (*html.Node, error) {
	return Default().SVG(markup, stripTitle)
}

func A(firstArg any, children ...any) *html.Node      { return Default().A(firstArg, children...) }
func Button(firstArg any, children ...any) *html.Node { return Default().Button(firstArg, children...) }
func Div(firstArg any, children ...any) *html.Node    { return Default().Div(firstArg, children...) }
func P(firstArg any, children ...any) *html.Node      { return Default().P(firstArg, children...) }
func Span(firstArg any, children ...any) *html.Node   { return Default().Span(firstArg, children...) }
func Ul(firstArg any, children ...any) *html.Node     { return Default().Ul(firstArg, children...) }
func Li(firstArg any, children ...any) *html.Node     { return Default().Li(firstArg, children...) }
func Input(firstArg any, children ...any) *html.Node  { return Default().Input(firstArg, children...) }
func Label(firstArg any, children ...any) *html.Node  { return Default().Label(firstArg, children...) }
func Style(firstArg any, children ...any) *html.Node  { return Default().Style(firstArg, children...) }
func Slot(firstArg any, children ...any) *html.Node   { return Default().Slot(firstArg, children...) }
func Table(firstArg any, children ...any) *html.Node  { return Default().Table(firstArg, children...) }
func Tr(firstArg any, children ...any) *html.Node     { return Default().Tr(firstArg, children...) }
func Td(firstArg any, children ...any) *html.Node     { return Default().Td(firstArg, children...) }
func Th(firstArg any, children ...any) *html.Node     { return Default().Th(firstArg, children...) }
