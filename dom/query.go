package dom

import (
	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
)

// compile parses a selector group. Syntax errors are reported as a
// SyntaxError.
func compile(selector string) (cascadia.SelectorGroup, error) {
	sel, err := cascadia.ParseGroup(selector)
	if err != nil {
		return nil, syntaxError("%q is not a valid selector: %v", selector, err)
	}
	return sel, nil
}

// QuerySelector returns the first descendent of root matching a CSS
// selector, or nil. Works on elements as well as document fragments.
func QuerySelector(root *html.Node, selector string) (*html.Node, error) {
	sel, err := compile(selector)
	if err != nil {
		return nil, err
	}
	if m := Walk(root, matcher(sel), 1); len(m) > 0 {
		return m[0], nil
	}
	return nil, nil
}

// QuerySelectorAll returns all descendents of root matching a CSS
// selector, in document order.
func QuerySelectorAll(root *html.Node, selector string) ([]*html.Node, error) {
	sel, err := compile(selector)
	if err != nil {
		return nil, err
	}
	return Walk(root, matcher(sel), 0), nil
}

// GetElementByID returns the first descendent of root with a given id.
func GetElementByID(root *html.Node, id string) *html.Node {
	m := Walk(root, func(n *html.Node) bool {
		if n.Type != html.ElementNode {
			return false
		}
		v, ok := GetAttribute(n, "id")
		return ok && v == id
	}, 1)
	if len(m) == 0 {
		return nil
	}
	return m[0]
}

func matcher(sel cascadia.Matcher) Predicate {
	return func(n *html.Node) bool {
		return n.Type == html.ElementNode && sel.Match(n)
	}
}
