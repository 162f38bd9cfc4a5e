package dom

import (
	"strings"

	"golang.org/x/net/html"
)

// IsFragment is true for document fragments.
func IsFragment(n *html.Node) bool {
	return n != nil && n.Type == html.DocumentNode && n.Data == FragmentName
}

// IsValidChild is a predicate for nodes which may be appended as a child
// by element construction: elements, text nodes and document fragments.
func IsValidChild(n *html.Node) bool {
	if n == nil {
		return false
	}
	return n.Type == html.ElementNode || n.Type == html.TextNode || IsFragment(n)
}

// NodeName returns the W3C node name: the upper-cased tag name for HTML
// elements, the tag name for foreign elements, "#text" for text nodes etc.
func NodeName(n *html.Node) string {
	if n == nil {
		return ""
	}
	switch n.Type {
	case html.ElementNode:
		if n.Namespace == "" {
			return strings.ToUpper(n.Data)
		}
		return n.Data
	case html.TextNode:
		return "#text"
	case html.CommentNode:
		return "#comment"
	case html.DocumentNode:
		if IsFragment(n) {
			return FragmentName
		}
		return "#document"
	case html.DoctypeNode:
		return n.Data
	}
	return ""
}

// canHaveChildren is true for parents a node may be inserted into.
func canHaveChildren(n *html.Node) bool {
	return n != nil && (n.Type == html.ElementNode || n.Type == html.DocumentNode)
}

// checkHierarchy makes sure that inserting child into parent does not
// create a cycle.
func checkHierarchy(parent, child *html.Node) error {
	if !canHaveChildren(parent) {
		return hierarchyRequest("%s cannot have children", NodeName(parent))
	}
	if child == nil {
		return hierarchyRequest("cannot insert nil node into %s", NodeName(parent))
	}
	for p := parent; p != nil; p = p.Parent {
		if p == child {
			return hierarchyRequest("%s is an ancestor of the parent", NodeName(child))
		}
	}
	return nil
}

// detach removes n from its parent, if any.
func detach(n *html.Node) {
	if n.Parent != nil {
		n.Parent.RemoveChild(n)
	}
}

// AppendChild inserts child as the last child of parent. If child is part
// of a tree it is moved. If child is a document fragment, its children are
// moved instead, leaving the fragment empty.
func (d *Document) AppendChild(parent, child *html.Node) error {
	if err := checkHierarchy(parent, child); err != nil {
		return err
	}
	if IsFragment(child) {
		for c := child.FirstChild; c != nil; c = child.FirstChild {
			child.RemoveChild(c)
			parent.AppendChild(c)
		}
		return nil
	}
	detach(child)
	parent.AppendChild(child)
	return nil
}

// InsertBefore inserts child into parent, immediately before ref. A nil
// ref appends child.
func (d *Document) InsertBefore(parent, child, ref *html.Node) error {
	if ref == nil {
		return d.AppendChild(parent, child)
	}
	if ref.Parent != parent {
		return notFound("reference node is not a child of %s", NodeName(parent))
	}
	if err := checkHierarchy(parent, child); err != nil {
		return err
	}
	if child == ref {
		return nil
	}
	if IsFragment(child) {
		for c := child.FirstChild; c != nil; c = child.FirstChild {
			child.RemoveChild(c)
			parent.InsertBefore(c, ref)
		}
		return nil
	}
	detach(child)
	parent.InsertBefore(child, ref)
	return nil
}

// ReplaceChild replaces old, a child of parent, with child. old is detached
// from the tree.
func (d *Document) ReplaceChild(parent, child, old *html.Node) error {
	if old == nil || old.Parent != parent {
		return notFound("node to replace is not a child of %s", NodeName(parent))
	}
	if child == old {
		return nil
	}
	if err := d.InsertBefore(parent, child, old); err != nil {
		return err
	}
	parent.RemoveChild(old)
	return nil
}

// RemoveChild removes child from parent.
func (d *Document) RemoveChild(parent, child *html.Node) error {
	if child == nil || child.Parent != parent {
		return notFound("node to remove is not a child of %s", NodeName(parent))
	}
	parent.RemoveChild(child)
	return nil
}

// --- Node content ----------------------------------------------------------

// Children returns the element children of n.
func Children(n *html.Node) []*html.Node {
	var children []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			children = append(children, c)
		}
	}
	return children
}

// ChildNodes returns all children of n.
func ChildNodes(n *html.Node) []*html.Node {
	var children []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		children = append(children, c)
	}
	return children
}

// TextContent returns the text of a node and all its descendents.
func TextContent(n *html.Node) string {
	if n == nil {
		return ""
	}
	switch n.Type {
	case html.TextNode, html.CommentNode:
		return n.Data
	case html.ElementNode, html.DocumentNode:
		var b strings.Builder
		collectText(n, &b)
		return b.String()
	}
	return ""
}

func collectText(n *html.Node, b *strings.Builder) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			b.WriteString(c.Data)
		} else if c.Type == html.ElementNode {
			collectText(c, b)
		}
	}
}

// setTextContent replaces all children of n with a single text node.
func (d *Document) setTextContent(n *html.Node, text string) {
	for c := n.FirstChild; c != nil; c = n.FirstChild {
		n.RemoveChild(c)
	}
	if text != "" {
		n.AppendChild(d.CreateTextNode(text))
	}
}
