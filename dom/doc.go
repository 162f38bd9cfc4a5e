/*
Package dom is the host document for element construction.

Status

Early draft, API may change frequently. Please stay patient.

Overview

Nodes are plain `*html.Node` values of https://pkg.go.dev/golang.org/x/net/html,
so trees built here may be rendered with html.Render or handed to any
library working on the x/net/html parse tree. Type Document adds what a
browser's document and element objects provide on top of a bare node tree:

   - node creation with tag name validation
   - tree mutation with DOM semantics (re-parenting, document fragments)
   - attributes, element properties, dataset and inline style
   - descendant lookup with CSS selectors (https://github.com/andybalholm/cascadia)
   - serialization and SVG parsing

Element properties (className, htmlFor, tabIndex, onclick, …) are resolved
through a static per-tag schema. Most of them reflect an attribute; event
handler properties are held in a side table of the document.

Document Fragments

x/net/html has no node type for document fragments. A fragment is a node
of type html.DocumentNode named "#document-fragment" (see
CreateDocumentFragment). Inserting a fragment moves its children.

Concurrency

A Document guards its trees with a single mutex. Clients run code
touching a tree with Do; deferred work (e.g., the completion of a pending
child) is scheduled with Go and runs later, one task at a time, holding the
same mutex. Settled waits for all work registered with Hold to finish.
The mutex is not re-entrant: never call Do from within a task.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package dom

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'dombuilder.dom'
func tracer() tracing.Trace {
	return tracing.Select("dombuilder.dom")
}
