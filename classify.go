package dombuilder

import (
	"reflect"
	"sort"

	"github.com/npillmayer/dombuilder/dom"
	"github.com/npillmayer/dombuilder/promise"
	"golang.org/x/net/html"
)

// Kind classifies the arguments of element construction.
type Kind uint8

// Kinds in order of priority: a value is of the first kind it matches.
const (
	KindUnrecognized Kind = iota // none of the below
	KindSequence                 // slice or array of arguments
	KindNode                     // element, text node or document fragment
	KindText                     // string
	KindPending                  // promise.Thenable
	KindPropertyBag              // Props or a map keyed by strings
)

func (k Kind) String() string {
	switch k {
	case KindSequence:
		return "sequence"
	case KindNode:
		return "node"
	case KindText:
		return "text"
	case KindPending:
		return "pending"
	case KindPropertyBag:
		return "property bag"
	}
	return "unrecognized"
}

// Appendable is true for kinds Append accepts.
func (k Kind) Appendable() bool {
	return k == KindSequence || k == KindNode || k == KindText || k == KindPending
}

// Classify determines the kind of an argument.
func Classify(v any) Kind {
	switch x := v.(type) {
	case nil:
		return KindUnrecognized
	case Props, []Prop, map[string]any, map[string]string:
		return KindPropertyBag
	case *html.Node:
		if dom.IsValidChild(x) {
			return KindNode
		}
		return KindUnrecognized
	case string:
		return KindText
	}
	t := reflect.TypeOf(v)
	switch t.Kind() {
	case reflect.Slice, reflect.Array:
		if t.Elem().Kind() == reflect.Uint8 {
			return KindUnrecognized // []byte is data, not a sequence of children
		}
		return KindSequence
	}
	if th, ok := v.(promise.Thenable); ok {
		if isNil(th) {
			return KindUnrecognized
		}
		return KindPending
	}
	if t.Kind() == reflect.Map && t.Key().Kind() == reflect.String {
		return KindPropertyBag
	}
	return KindUnrecognized
}

// isNil is true for nil interfaces and typed nil pointers, maps, slices,
// channels and functions.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

// isAbsent is true for arguments which count as "not given": nil, typed
// nil, false and numeric zero.
func isAbsent(v any) bool {
	if isNil(v) {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return !rv.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return rv.IsZero()
	}
	return false
}

// --- Property bags ---------------------------------------------------------

// Prop is an entry of a property bag.
type Prop struct {
	Key   string
	Value any
}

// Props is a property bag which keeps its entries in order.
type Props []Prop

// Get returns the value of the last entry for key.
func (p Props) Get(key string) (any, bool) {
	for i := len(p) - 1; i >= 0; i-- {
		if p[i].Key == key {
			return p[i].Value, true
		}
	}
	return nil, false
}

// Set replaces the value of the entry for key, or appends a new entry.
func (p Props) Set(key string, value any) Props {
	for i := range p {
		if p[i].Key == key {
			p[i].Value = value
			return p
		}
	}
	return append(p, Prop{Key: key, Value: value})
}

// entries returns the entries of a property bag. Maps are iterated in
// sorted key order. ok is false if v is not a property bag.
func entries(v any) (props Props, ok bool) {
	switch x := v.(type) {
	case Props:
		return x, true
	case []Prop:
		return Props(x), true
	case map[string]any:
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		props = make(Props, len(keys))
		for i, k := range keys {
			props[i] = Prop{Key: k, Value: x[k]}
		}
		return props, true
	case map[string]string:
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		props = make(Props, len(keys))
		for i, k := range keys {
			props[i] = Prop{Key: k, Value: x[k]}
		}
		return props, true
	}
	if isNil(v) {
		return nil, false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, false
	}
	keys := rv.MapKeys()
	sort.Slice(keys, func(i, j int) bool { return keys[i].String() < keys[j].String() })
	props = make(Props, len(keys))
	for i, k := range keys {
		props[i] = Prop{Key: k.String(), Value: rv.MapIndex(k).Interface()}
	}
	return props, true
}
