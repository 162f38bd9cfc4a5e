package dom

import (
	"strings"

	"golang.org/x/net/html"
)

// isValidAttributeName rejects names the HTML serializer could not
// round-trip.
func isValidAttributeName(name string) bool {
	return name != "" && !strings.ContainsAny(name, "\x00\t\n\f\r \"'<>/=")
}

// attributeKey normalizes an attribute name: HTML elements use lower-case
// attribute names, foreign elements (SVG, MathML) keep the case.
func attributeKey(el *html.Node, name string) string {
	if el.Namespace == "" {
		return strings.ToLower(name)
	}
	return name
}

// SetAttribute sets an attribute of an element, replacing an existing value.
func (d *Document) SetAttribute(el *html.Node, name, value string) error {
	if el == nil || el.Type != html.ElementNode {
		return hierarchyRequest("cannot set attribute %q on %s", name, NodeName(el))
	}
	if !isValidAttributeName(name) {
		return invalidCharacter("%q is not a valid attribute name", name)
	}
	setAttr(el, attributeKey(el, name), value)
	return nil
}

// GetAttribute returns the value of an attribute and whether it is present.
func GetAttribute(el *html.Node, name string) (string, bool) {
	if el == nil || el.Type != html.ElementNode {
		return "", false
	}
	key := attributeKey(el, name)
	for _, a := range el.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// HasAttribute is true if an attribute is present on el.
func HasAttribute(el *html.Node, name string) bool {
	_, ok := GetAttribute(el, name)
	return ok
}

// RemoveAttribute removes an attribute, if present.
func (d *Document) RemoveAttribute(el *html.Node, name string) {
	if el == nil || el.Type != html.ElementNode {
		return
	}
	removeAttr(el, attributeKey(el, name))
}

func setAttr(el *html.Node, key, value string) {
	for i := range el.Attr {
		if el.Attr[i].Namespace == "" && el.Attr[i].Key == key {
			el.Attr[i].Val = value
			return
		}
	}
	el.Attr = append(el.Attr, html.Attribute{Key: key, Val: value})
}

func removeAttr(el *html.Node, key string) {
	attrs := el.Attr[:0]
	for _, a := range el.Attr {
		if a.Namespace != "" || a.Key != key {
			attrs = append(attrs, a)
		}
	}
	el.Attr = attrs
}
