package dom

import "golang.org/x/net/html"

// Predicate matches nodes during a tree walk.
type Predicate func(n *html.Node) bool

// NodeIsText is a predicate to match text-nodes of a DOM.
var NodeIsText Predicate = func(n *html.Node) bool {
	return n.Type == html.TextNode
}

// NodeIsElement is a predicate to match element nodes of a DOM.
var NodeIsElement Predicate = func(n *html.Node) bool {
	return n.Type == html.ElementNode
}

// NodeHasTag returns a predicate matching elements of a given tag name.
func NodeHasTag(tag string) Predicate {
	return func(n *html.Node) bool {
		return n.Type == html.ElementNode && n.Data == tag
	}
}

// Walk visits the descendents of root in document order, excluding root,
// and collects the ones matching pred. Walk stops after max matches if
// max > 0.
func Walk(root *html.Node, pred Predicate, max int) []*html.Node {
	var matches []*html.Node
	var walk func(*html.Node) bool
	walk = func(n *html.Node) bool {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if pred(c) {
				matches = append(matches, c)
				if max > 0 && len(matches) >= max {
					return false
				}
			}
			if !walk(c) {
				return false
			}
		}
		return true
	}
	if root != nil {
		walk(root)
	}
	return matches
}
