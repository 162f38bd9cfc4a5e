/*
Package dombuilder builds element trees declaratively.

MakeElement creates an element from a tag name, one overloaded argument
and any number of children:

    list := dombuilder.Ul(dombuilder.Props{
            {Key: "className", Value: "menu"},
            {Key: "@aria-orientation", Value: "vertical"},
        },
        dombuilder.Li("Home"),
        dombuilder.Li(fetchUserName()), // a promise.Thenable
    )

The first argument is appended if it is appendable: a node, a string, a
sequence of appendables (nested arbitrarily) or a pending value
(promise.Thenable). Otherwise, if it is a property bag (Props,
map[string]any or map[string]string), its entries are assigned to the
element:

   - keys naming a property of the element are assigned to the property
     ("className", "htmlFor", "onclick", …)
   - "style" takes a bag of inline style properties, in either spelling
     ("backgroundColor" or "background-color")
   - "dataset" takes a bag of data-* entries ("userId" => data-user-id)
   - "role", "aria-label" and keys prefixed with "@" are set as attributes

Everything else is dropped, and traced if Config.Warnings is set.

Pending Children

A pending child is represented by an empty placeholder element until it
settles. The placeholder is then replaced by the value it settled to if
this is a node, a node wrapper or a string, and removed otherwise. Thus
the order of children always matches the order of arguments, regardless
of the order in which pending children settle. Placeholders are swapped
by tasks of the host document (see dom.Document.Go); clients wait for
them with Settled. Client code (Then methods, node wrappers, the rejection
handler) never runs holding the document's lock and may build elements.

Builders and Documents

A Builder binds construction to a host document and a configuration. The
package level functions use a default builder on a document of its own,
which may be replaced with SetDefault. Building holds the document's lock:
do not call a builder from within Document.Do.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package dombuilder

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'dombuilder.engine'
func tracer() tracing.Trace {
	return tracing.Select("dombuilder.engine")
}
