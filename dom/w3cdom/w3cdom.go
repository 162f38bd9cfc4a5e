/*
Package w3cdom defines interface types for the parts of a W3C Document
Object Model which element construction depends on.

See also https://www.w3schools.com/XML/dom_intro.asp

Nodes are x/net/html nodes throughout; the interfaces describe the
document operations a builder needs on top of them. Package dom provides
the implementation.

Status

Early draft, API may change frequently. Please stay patient.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package w3cdom

import (
	"context"

	"golang.org/x/net/html"
)

// NodeFactory creates nodes.
type NodeFactory interface {
	CreateElement(tag string) (*html.Node, error)                // validated HTML element
	CreateTextNode(text string) *html.Node                       // text node
	CreateDocumentFragment() *html.Node                          // empty fragment
	ParseSVG(markup string, stripTitle bool) (*html.Node, error) // detached svg element
}

// TreeMutator changes the structure of node trees.
type TreeMutator interface {
	AppendChild(parent, child *html.Node) error
	InsertBefore(parent, child, ref *html.Node) error
	ReplaceChild(parent, child, old *html.Node) error
	RemoveChild(parent, child *html.Node) error
}

// PropertySchema knows the scripting properties of elements.
type PropertySchema interface {
	HasSettableProperty(el *html.Node, key string) bool
	SetProperty(el *html.Node, key string, value any) bool
	Property(el *html.Node, key string) (any, bool)
}

// Decorator sets attributes, inline style and dataset entries.
type Decorator interface {
	SetAttribute(el *html.Node, name, value string) error
	SetStyle(el *html.Node, name, value string) bool
	SetData(el *html.Node, key, value string) error
}

// Scheduler serializes access to node trees and runs deferred tasks.
type Scheduler interface {
	Do(f func())                       // run f exclusively
	Go(task func())                    // run task later, exclusively
	Hold() (release func())            // register outstanding work
	Settled(ctx context.Context) error // wait for outstanding work
}

// Host is a document able to serve element construction.
type Host interface {
	NodeFactory
	TreeMutator
	PropertySchema
	Decorator
	Scheduler
}
