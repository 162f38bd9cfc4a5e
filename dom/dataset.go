package dom

import (
	"sort"
	"strings"

	"golang.org/x/net/html"
)

// Dataset is the view of an element's data-* attributes, keyed by their
// camel-cased names: data-user-id is dataset entry "userId".
type Dataset struct {
	el *html.Node
}

// Dataset returns the dataset view of an element.
func (d *Document) Dataset(el *html.Node) *Dataset {
	if el == nil || el.Type != html.ElementNode {
		return nil
	}
	return &Dataset{el: el}
}

// Set stores a dataset entry. A key containing a hyphen followed by a
// lower-case ASCII letter is rejected with a SyntaxError, as is a key
// which would produce an invalid attribute name.
func (ds *Dataset) Set(key, value string) error {
	attr, err := DataAttributeName(key)
	if err != nil {
		return err
	}
	setAttr(ds.el, attr, value)
	return nil
}

// Get returns a dataset entry and whether it is present.
func (ds *Dataset) Get(key string) (string, bool) {
	attr, err := DataAttributeName(key)
	if err != nil {
		return "", false
	}
	return GetAttribute(ds.el, attr)
}

// Delete removes a dataset entry.
func (ds *Dataset) Delete(key string) {
	if attr, err := DataAttributeName(key); err == nil {
		removeAttr(ds.el, attr)
	}
}

// Keys returns the camel-cased keys of all data-* attributes, sorted.
func (ds *Dataset) Keys() []string {
	var keys []string
	for _, a := range ds.el.Attr {
		if a.Namespace == "" && strings.HasPrefix(a.Key, "data-") {
			keys = append(keys, DataKey(a.Key))
		}
	}
	sort.Strings(keys)
	return keys
}

// DataAttributeName converts a dataset key to the name of its attribute,
// e.g. "userId" => "data-user-id".
func DataAttributeName(key string) (string, error) {
	for i := 0; i+1 < len(key); i++ {
		if key[i] == '-' && key[i+1] >= 'a' && key[i+1] <= 'z' {
			return "", syntaxError("%q is not a valid dataset key", key)
		}
	}
	var b strings.Builder
	b.WriteString("data-")
	for _, r := range key {
		if r >= 'A' && r <= 'Z' {
			b.WriteByte('-')
			b.WriteRune(r + 'a' - 'A')
		} else {
			b.WriteRune(r)
		}
	}
	name := b.String()
	if !isValidAttributeName(name) {
		return "", invalidCharacter("%q is not a valid dataset key", key)
	}
	return name, nil
}

// DataKey converts the name of a data-* attribute to its dataset key,
// e.g. "data-user-id" => "userId".
func DataKey(attr string) string {
	name := strings.TrimPrefix(attr, "data-")
	var b strings.Builder
	for i := 0; i < len(name); i++ {
		c := name[i]
		if c == '-' && i+1 < len(name) && name[i+1] >= 'a' && name[i+1] <= 'z' {
			b.WriteByte(name[i+1] - 'a' + 'A')
			i++
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}

// SetData stores a dataset entry of an element.
func (d *Document) SetData(el *html.Node, key, value string) error {
	ds := d.Dataset(el)
	if ds == nil {
		return hierarchyRequest("%s has no dataset", NodeName(el))
	}
	return ds.Set(key, value)
}
