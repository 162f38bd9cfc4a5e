package dom

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func TestCreateElement(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dombuilder.dom")
	defer teardown()
	//
	doc := NewDocument()
	el, err := doc.CreateElement("DIV")
	require.NoError(t, err)
	assert.Equal(t, "div", el.Data)
	assert.Equal(t, "DIV", NodeName(el))
	assert.Equal(t, "<div></div>", OuterHTML(el))
	//
	custom, err := doc.CreateElement("my-widget")
	require.NoError(t, err)
	assert.Equal(t, "my-widget", custom.Data)
	//
	for _, tag := range []string{"", "1abc", "a b", "a>b", "a/b"} {
		_, err = doc.CreateElement(tag)
		var domErr *Error
		if assert.ErrorAs(t, err, &domErr, "tag %q", tag) {
			assert.Equal(t, "InvalidCharacterError", domErr.Name)
		}
		assert.True(t, errors.Is(err, ErrInvalidCharacter))
	}
}

func TestCreateElementNS(t *testing.T) {
	doc := NewDocument()
	svg, err := doc.CreateElementNS(NamespaceSVG, "svg")
	require.NoError(t, err)
	assert.Equal(t, "svg", svg.Namespace)
	_, err = doc.CreateElementNS("urn:nowhere", "x")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFragmentInsertionMovesChildren(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dombuilder.dom")
	defer teardown()
	//
	doc := NewDocument()
	frag := doc.CreateDocumentFragment()
	assert.True(t, IsFragment(frag))
	a, _ := doc.CreateElement("a")
	b, _ := doc.CreateElement("b")
	require.NoError(t, doc.AppendChild(frag, a))
	require.NoError(t, doc.AppendChild(frag, b))
	p, _ := doc.CreateElement("p")
	require.NoError(t, doc.AppendChild(p, doc.CreateTextNode("x")))
	require.NoError(t, doc.AppendChild(p, frag))
	assert.Equal(t, "<p>x<a></a><b></b></p>", OuterHTML(p))
	assert.Nil(t, frag.FirstChild, "fragment is empty after insertion")
}

func TestReparenting(t *testing.T) {
	doc := NewDocument()
	p1, _ := doc.CreateElement("p")
	p2, _ := doc.CreateElement("p")
	s, _ := doc.CreateElement("span")
	require.NoError(t, doc.AppendChild(p1, s))
	require.NoError(t, doc.AppendChild(p2, s))
	assert.Nil(t, p1.FirstChild)
	assert.Equal(t, p2, s.Parent)
}

func TestHierarchyErrors(t *testing.T) {
	doc := NewDocument()
	outer, _ := doc.CreateElement("div")
	inner, _ := doc.CreateElement("div")
	require.NoError(t, doc.AppendChild(outer, inner))
	err := doc.AppendChild(inner, outer)
	assert.ErrorIs(t, err, ErrHierarchyRequest)
	err = doc.AppendChild(doc.CreateTextNode("t"), inner)
	assert.ErrorIs(t, err, ErrHierarchyRequest)
	other, _ := doc.CreateElement("i")
	assert.ErrorIs(t, doc.RemoveChild(outer, other), ErrNotFound)
	assert.ErrorIs(t, doc.ReplaceChild(outer, other, other), ErrNotFound)
}

func TestInsertAndReplace(t *testing.T) {
	doc := NewDocument()
	ul, _ := doc.CreateElement("ul")
	li := make([]*html.Node, 3)
	for i := range li {
		li[i], _ = doc.CreateElement("li")
		li[i].AppendChild(doc.CreateTextNode(string(rune('a' + i))))
	}
	require.NoError(t, doc.AppendChild(ul, li[2]))
	require.NoError(t, doc.InsertBefore(ul, li[0], li[2]))
	require.NoError(t, doc.InsertBefore(ul, li[1], li[2]))
	assert.Equal(t, "<ul><li>a</li><li>b</li><li>c</li></ul>", OuterHTML(ul))
	em, _ := doc.CreateElement("em")
	require.NoError(t, doc.ReplaceChild(ul, em, li[1]))
	assert.Equal(t, "<ul><li>a</li><em></em><li>c</li></ul>", OuterHTML(ul))
	assert.Nil(t, li[1].Parent)
}

func TestAttributes(t *testing.T) {
	doc := NewDocument()
	el, _ := doc.CreateElement("div")
	require.NoError(t, doc.SetAttribute(el, "Role", "button"))
	v, ok := GetAttribute(el, "role")
	assert.True(t, ok)
	assert.Equal(t, "button", v)
	assert.ErrorIs(t, doc.SetAttribute(el, "a b", "x"), ErrInvalidCharacter)
	doc.RemoveAttribute(el, "ROLE")
	assert.False(t, HasAttribute(el, "role"))
}

func TestTextContent(t *testing.T) {
	doc := NewDocument()
	p, _ := doc.CreateElement("p")
	b, _ := doc.CreateElement("b")
	b.AppendChild(doc.CreateTextNode("bold"))
	p.AppendChild(doc.CreateTextNode("a "))
	p.AppendChild(b)
	assert.Equal(t, "a bold", TextContent(p))
	assert.Len(t, ChildNodes(p), 2)
	assert.Len(t, Children(p), 1)
}

func TestHoldAndSettled(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dombuilder.dom")
	defer teardown()
	//
	doc := NewDocument()
	assert.NoError(t, doc.Settled(context.Background()), "no holds")
	release := doc.Hold()
	assert.Equal(t, 1, doc.Pending())
	var wg sync.WaitGroup
	wg.Add(1)
	var touched bool
	doc.Go(func() {
		defer wg.Done()
		touched = true
		release()
		release() // no effect
	})
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, doc.Settled(ctx))
	wg.Wait()
	assert.True(t, touched)
	assert.Equal(t, 0, doc.Pending())
	//
	doc.Hold()
	ctx2, cancel2 := context.WithTimeout(context.Background(), 5*time.Millisecond)
	defer cancel2()
	assert.ErrorIs(t, doc.Settled(ctx2), context.DeadlineExceeded)
}

func TestGoRunsExclusively(t *testing.T) {
	doc := NewDocument()
	counter := 0
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		doc.Go(func() {
			defer wg.Done()
			counter++
		})
	}
	wg.Wait()
	doc.Do(func() {
		assert.Equal(t, 50, counter)
	})
}
