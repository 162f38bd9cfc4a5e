package style

import (
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"golang.org/x/net/html"
)

// Declaration is the inline style of an element, i.e. the declarations
// held in its "style" attribute. It plays the role of a browser's
// CSSStyleDeclaration: the attribute is the single source of truth and
// is re-parsed and re-written on every access.
//
// Declaration performs no locking; callers synchronize through the
// document the element belongs to.
type Declaration struct {
	node *html.Node
}

// DeclarationFor returns the inline style declaration of an element node.
// For non-element nodes, nil is returned.
func DeclarationFor(n *html.Node) *Declaration {
	if n == nil || n.Type != html.ElementNode {
		return nil
	}
	return &Declaration{node: n}
}

// Supports is true if name is a property the declaration accepts.
func (d *Declaration) Supports(name string) bool {
	return IsKnown(name)
}

// SetProperty sets a style property. An empty value removes the property.
// SetProperty returns false if the property is unknown or the value
// does not survive a round trip through the declaration parser.
func (d *Declaration) SetProperty(name string, value Property) bool {
	if d == nil {
		return false
	}
	key, known := PropertyName(name)
	if !known {
		tracer().P("property", name).Debugf("style: unknown property")
		return false
	}
	decls := d.Properties()
	if value.IsEmpty() {
		d.write(remove(decls, key))
		return true
	}
	v, ok := checkValue(key, value)
	if !ok {
		tracer().P("property", key).Debugf("style: cannot parse value %q", value)
		return false
	}
	replaced := false
	for i := range decls {
		if decls[i].Key == key {
			decls[i].Value = v
			replaced = true
		}
	}
	if !replaced {
		decls = append(decls, KeyValue{Key: key, Value: v})
	}
	d.write(decls)
	return true
}

// GetPropertyValue returns the value of a style property, or NullStyle.
func (d *Declaration) GetPropertyValue(name string) Property {
	key, _ := PropertyName(name)
	for _, kv := range d.Properties() {
		if kv.Key == key {
			return kv.Value
		}
	}
	return NullStyle
}

// RemoveProperty removes a style property and returns its former value.
func (d *Declaration) RemoveProperty(name string) Property {
	p := d.GetPropertyValue(name)
	if !p.IsEmpty() {
		key, _ := PropertyName(name)
		d.write(remove(d.Properties(), key))
	}
	return p
}

// Length returns the number of declarations.
func (d *Declaration) Length() int {
	return len(d.Properties())
}

// Properties returns all declarations in source order.
func (d *Declaration) Properties() []KeyValue {
	if d == nil {
		return nil
	}
	return ParseDeclarations(d.CSSText())
}

// CSSText returns the textual form of the declarations, as held in the
// element's style attribute.
func (d *Declaration) CSSText() string {
	if d == nil {
		return ""
	}
	for _, a := range d.node.Attr {
		if a.Namespace == "" && a.Key == "style" {
			return a.Val
		}
	}
	return ""
}

// SetCSSText replaces all declarations with the ones parsed from text.
// Declarations for unknown properties are dropped.
func (d *Declaration) SetCSSText(text string) {
	if d == nil {
		return
	}
	var decls []KeyValue
	for _, kv := range ParseDeclarations(text) {
		if IsKnown(kv.Key) || strings.HasPrefix(kv.Key, "--") {
			decls = append(decls, kv)
		}
	}
	d.write(decls)
}

func (d *Declaration) write(decls []KeyValue) {
	text := SerializeDeclarations(decls)
	attrs := d.node.Attr[:0]
	found := false
	for _, a := range d.node.Attr {
		if a.Namespace == "" && a.Key == "style" {
			if text == "" {
				continue
			}
			a.Val = text
			found = true
		}
		attrs = append(attrs, a)
	}
	if !found && text != "" {
		attrs = append(attrs, html.Attribute{Key: "style", Val: text})
	}
	d.node.Attr = attrs
}

// --- Parsing ---------------------------------------------------------------

const important = " !important"

// ParseDeclarations parses the content of a style attribute. Malformed
// input yields the declarations which could be recovered, possibly none.
func ParseDeclarations(text string) []KeyValue {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	decls, err := parser.ParseDeclarations(terminated(text))
	if err != nil {
		tracer().Errorf("style: cannot parse inline style %q: %v", text, err)
		return nil
	}
	kvs := make([]KeyValue, 0, len(decls))
	for _, decl := range decls {
		if decl.Property == "" || decl.Value == "" {
			continue
		}
		value := decl.Value
		if decl.Important {
			value += important
		}
		kvs = append(kvs, KeyValue{
			Key:   strings.ToLower(decl.Property),
			Value: Property(value),
		})
	}
	return kvs
}

// SerializeDeclarations writes declarations in the format browsers use
// for the style attribute, e.g. "width: 100px; color: red;".
func SerializeDeclarations(decls []KeyValue) string {
	var b strings.Builder
	for i, kv := range decls {
		if i > 0 {
			b.WriteByte(' ')
		}
		v := kv.Value.String()
		decl := css.Declaration{
			Property:  kv.Key,
			Value:     strings.TrimSuffix(v, important),
			Important: strings.HasSuffix(v, important),
		}
		b.WriteString(decl.String())
	}
	return b.String()
}

// checkValue makes sure a value is a single, well-formed declaration value.
// Values like "red; position: fixed" are rejected.
func checkValue(key string, value Property) (Property, bool) {
	v := strings.TrimSpace(value.String())
	if strings.ContainsAny(v, ";{}") {
		return NullStyle, false
	}
	decls, err := parser.ParseDeclarations(key + ": " + v + ";")
	if err != nil || len(decls) != 1 {
		return NullStyle, false
	}
	if strings.TrimSpace(decls[0].Value) == "" {
		return NullStyle, false
	}
	return Property(v), true
}

// terminated makes sure the last declaration of text ends with a
// semicolon; the parser drops the value of an unterminated one.
func terminated(text string) string {
	t := strings.TrimSpace(text)
	if strings.HasSuffix(t, ";") {
		return t
	}
	return t + ";"
}

func remove(decls []KeyValue, key string) []KeyValue {
	r := decls[:0]
	for _, kv := range decls {
		if kv.Key != key {
			r = append(r, kv)
		}
	}
	return r
}
