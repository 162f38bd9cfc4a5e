package dom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"context"
	"strings"
	"sync"

	"github.com/npillmayer/dombuilder/dom/w3cdom"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

var _ w3cdom.Host = (*Document)(nil)

// FragmentName is the node name of document fragments.
const FragmentName = "#document-fragment"

// Namespaces for CreateElementNS.
const (
	NamespaceHTML = "http://www.w3.org/1999/xhtml"
	NamespaceSVG  = "http://www.w3.org/2000/svg"
	NamespaceMath = "http://www.w3.org/1998/Math/MathML"
)

// Document creates nodes and holds per-document state: event handler
// properties of elements and the bookkeeping for deferred tasks.
type Document struct {
	mu       sync.Mutex                    // guards trees and handlers
	handlers map[*html.Node]map[string]any // event handler properties
	pmu      sync.Mutex                    // guards the fields below
	pending  int                           // number of unreleased holds
	idle     chan struct{}                 // closed as soon as pending drops to 0
}

// NewDocument creates an empty host document.
func NewDocument() *Document {
	return &Document{
		handlers: make(map[*html.Node]map[string]any),
	}
}

// --- Node creation ---------------------------------------------------------

// CreateElement creates an HTML element. Tag names are lower-cased.
// An invalid tag name results in an InvalidCharacterError.
func (d *Document) CreateElement(tag string) (*html.Node, error) {
	if !isValidTagName(tag) {
		return nil, invalidCharacter("%q is not a valid tag name", tag)
	}
	name := strings.ToLower(tag)
	return &html.Node{
		Type:     html.ElementNode,
		Data:     name,
		DataAtom: atom.Lookup([]byte(name)),
	}, nil
}

// CreateElementNS creates an element in a namespace. Only the HTML, SVG and
// MathML namespaces are supported, as these are the namespaces x/net/html
// is able to render.
func (d *Document) CreateElementNS(namespace, tag string) (*html.Node, error) {
	switch namespace {
	case "", NamespaceHTML:
		return d.CreateElement(tag)
	case NamespaceSVG, NamespaceMath:
	default:
		return nil, notFound("namespace %q is not supported", namespace)
	}
	if !isValidTagName(tag) {
		return nil, invalidCharacter("%q is not a valid tag name", tag)
	}
	ns := "svg"
	if namespace == NamespaceMath {
		ns = "math"
	}
	return &html.Node{
		Type:      html.ElementNode,
		Data:      tag,
		Namespace: ns,
	}, nil
}

// CreateTextNode creates a text node.
func (d *Document) CreateTextNode(text string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: text}
}

// CreateComment creates a comment node.
func (d *Document) CreateComment(text string) *html.Node {
	return &html.Node{Type: html.CommentNode, Data: text}
}

// CreateDocumentFragment creates an empty document fragment.
func (d *Document) CreateDocumentFragment() *html.Node {
	return &html.Node{Type: html.DocumentNode, Data: FragmentName}
}

// isValidTagName checks a tag name the way browsers do for createElement:
// an ASCII letter, followed by anything but whitespace, NUL, '/' and '>'.
func isValidTagName(tag string) bool {
	if tag == "" {
		return false
	}
	c := tag[0]
	if !(c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z') {
		return false
	}
	return !strings.ContainsAny(tag[1:], "\x00\t\n\f\r />")
}

// --- Synchronization -------------------------------------------------------

// Do runs f while holding the document's lock. Every client access to a
// tree which may receive deferred updates must go through Do.
func (d *Document) Do(f func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	f()
}

// Go schedules task to run later, holding the document's lock. Go never
// runs task on the calling goroutine, thus it is safe to call from within
// Do. Tasks scheduled by different calls are not ordered.
func (d *Document) Go(task func()) {
	go func() {
		d.mu.Lock()
		defer d.mu.Unlock()
		task()
	}()
}

// Hold registers a unit of outstanding work with the document. The returned
// function releases it; calling it more than once has no effect.
// Settled waits for all holds to be released.
func (d *Document) Hold() (release func()) {
	d.pmu.Lock()
	if d.pending == 0 {
		d.idle = make(chan struct{})
	}
	d.pending++
	d.pmu.Unlock()
	var once sync.Once
	return func() {
		once.Do(func() {
			d.pmu.Lock()
			defer d.pmu.Unlock()
			d.pending--
			if d.pending == 0 {
				close(d.idle)
			}
		})
	}
}

// Pending returns the number of unreleased holds.
func (d *Document) Pending() int {
	d.pmu.Lock()
	defer d.pmu.Unlock()
	return d.pending
}

// Settled blocks until all holds have been released or ctx is done.
// Holds acquired while waiting are waited for as well.
func (d *Document) Settled(ctx context.Context) error {
	for {
		d.pmu.Lock()
		if d.pending == 0 {
			d.pmu.Unlock()
			return nil
		}
		idle := d.idle
		d.pmu.Unlock()
		select {
		case <-idle:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
