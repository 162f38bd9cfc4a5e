package style

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"strings"

	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'dombuilder.style'
func tracer() tracing.Trace {
	return tracing.Select("dombuilder.style")
}

// Property is a raw value for a CSS property. For example, with
//
//     color: black
//
// a property value of "black" is set. Values are kept verbatim; no unit
// coercion or syntax validation beyond the declaration parser is performed.
type Property string

// NullStyle is an empty property value.
const NullStyle Property = ""

func (p Property) String() string {
	return string(p)
}

// IsInitial denotes if a property is of inheritence-type "initial"
func (p Property) IsInitial() bool {
	return p == "initial"
}

// IsInherit denotes if a property is of inheritence-type "inherit"
func (p Property) IsInherit() bool {
	return p == "inherit"
}

// IsEmpty checks wether a property is empty, i.e. the null-string.
func (p Property) IsEmpty() bool {
	return strings.TrimSpace(string(p)) == ""
}

// KeyValue is a container for a style property.
type KeyValue struct {
	Key   string
	Value Property
}

// --- Property names --------------------------------------------------------

// PropertyName normalizes a style property name as clients of an element's
// style object may spell it. Both the scripting form
//
//     backgroundColor, cssFloat, WebkitTransform
//
// and the stylesheet form
//
//     background-color, float, -webkit-transform
//
// are accepted. PropertyName returns the stylesheet form and true if the
// property is known, or the converted name and false otherwise.
func PropertyName(name string) (string, bool) {
	if name == "" {
		return "", false
	}
	key := name
	if !strings.Contains(name, "-") {
		key = CamelToKebab(name)
	}
	key = strings.ToLower(key)
	if key == "css-float" {
		key = "float"
	}
	_, known := knownProperties[key]
	return key, known
}

// IsKnown returns true if name (in either spelling) denotes a CSS property
// supported by an element's inline style.
func IsKnown(name string) bool {
	_, ok := PropertyName(name)
	return ok
}

// CamelToKebab converts a scripting-style property name to its stylesheet
// form, e.g. "borderTopWidth" => "border-top-width". A leading upper case
// letter denotes a vendor prefix: "MozAppearance" => "-moz-appearance".
func CamelToKebab(name string) string {
	var b strings.Builder
	b.Grow(len(name) + 4)
	for _, r := range name {
		if r >= 'A' && r <= 'Z' {
			b.WriteByte('-')
			b.WriteRune(r + ('a' - 'A'))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// KebabToCamel converts a stylesheet property name to its scripting form,
// e.g. "border-top-width" => "borderTopWidth".
func KebabToCamel(name string) string {
	if name == "float" {
		return "cssFloat"
	}
	var b strings.Builder
	upper := false
	for i, r := range name {
		if r == '-' {
			upper = i > 0 || !strings.HasPrefix(name, "-ms-")
			continue
		}
		if upper && r >= 'a' && r <= 'z' {
			r -= 'a' - 'A'
		}
		upper = false
		b.WriteRune(r)
	}
	return b.String()
}
