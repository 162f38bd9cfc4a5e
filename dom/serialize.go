package dom

import (
	"bytes"
	"strings"

	"github.com/npillmayer/dombuilder/dom/style"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// OuterHTML serializes a node and its descendents. For document fragments,
// the children are serialized.
func OuterHTML(n *html.Node) string {
	if n == nil {
		return ""
	}
	if IsFragment(n) {
		return InnerHTML(n)
	}
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		tracer().Errorf("dom: cannot render %s: %v", NodeName(n), err)
	}
	return buf.String()
}

// InnerHTML serializes the children of a node.
func InnerHTML(n *html.Node) string {
	if n == nil {
		return ""
	}
	var buf bytes.Buffer
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&buf, c); err != nil {
			tracer().Errorf("dom: cannot render %s: %v", NodeName(c), err)
		}
	}
	return buf.String()
}

// SetInnerHTML replaces the children of el with the nodes parsed from
// markup, in the context of el.
func (d *Document) SetInnerHTML(el *html.Node, markup string) error {
	if !canHaveChildren(el) {
		return hierarchyRequest("%s cannot have children", NodeName(el))
	}
	context := el
	if el.Type != html.ElementNode {
		context = &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	}
	nodes, err := html.ParseFragment(strings.NewReader(markup), context)
	if err != nil {
		return syntaxError("cannot parse markup: %v", err)
	}
	for c := el.FirstChild; c != nil; c = el.FirstChild {
		el.RemoveChild(c)
	}
	for _, n := range nodes {
		detach(n)
		el.AppendChild(n)
	}
	return nil
}

// Style returns the inline style declaration of an element.
func (d *Document) Style(el *html.Node) *style.Declaration {
	return style.DeclarationFor(el)
}

// SetStyle sets a property of the inline style of an element. name may be
// given in either spelling, "backgroundColor" or "background-color".
// SetStyle returns false for unknown properties and malformed values.
func (d *Document) SetStyle(el *html.Node, name, value string) bool {
	return d.Style(el).SetProperty(name, style.Property(value))
}
