package dom

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func TestHasSettableProperty(t *testing.T) {
	doc := NewDocument()
	label, _ := doc.CreateElement("label")
	div, _ := doc.CreateElement("div")
	input, _ := doc.CreateElement("input")
	svg, _ := doc.CreateElementNS(NamespaceSVG, "svg")
	elements := map[string]*html.Node{"label": label, "div": div, "input": input, "svg": svg}
	for _, tc := range []struct {
		el   string
		key  string
		want bool
	}{
		{"label", "htmlFor", true},
		{"div", "htmlFor", false},
		{"div", "className", true},
		{"div", "class", false},
		{"div", "onclick", true},
		{"div", "onfrobnicate", false},
		{"input", "checked", true},
		{"input", "value", true},
		{"div", "value", false},
		{"div", "dataset", true},
		{"div", "style", true},
		{"svg", "className", false},
		{"svg", "id", true},
		{"svg", "onclick", true},
	} {
		got := doc.HasSettableProperty(elements[tc.el], tc.key)
		assert.Equal(t, tc.want, got, "<%s>.%s", tc.el, tc.key)
	}
	assert.False(t, doc.HasSettableProperty(doc.CreateTextNode("x"), "id"))
}

func TestSetReflectedProperties(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dombuilder.dom")
	defer teardown()
	//
	doc := NewDocument()
	label, _ := doc.CreateElement("label")
	assert.True(t, doc.SetProperty(label, "htmlFor", "name"))
	assert.True(t, doc.SetProperty(label, "className", "big red"))
	assert.Equal(t, `<label for="name" class="big red"></label>`, OuterHTML(label))
	//
	input, _ := doc.CreateElement("input")
	assert.True(t, doc.SetProperty(input, "disabled", true))
	assert.True(t, doc.SetProperty(input, "maxLength", 12.7))
	assert.True(t, doc.SetProperty(input, "tabIndex", "3"))
	assert.Equal(t, `<input disabled="" maxlength="12" tabindex="3"/>`, OuterHTML(input))
	assert.True(t, doc.SetProperty(input, "disabled", false))
	assert.False(t, HasAttribute(input, "disabled"))
	v, ok := doc.Property(input, "maxLength")
	assert.True(t, ok)
	assert.Equal(t, 12, v)
	//
	assert.False(t, doc.SetProperty(input, "dataset", "x"), "dataset is read-only")
	assert.False(t, doc.SetProperty(input, "frobnicate", 1))
}

func TestSetContentProperties(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dombuilder.dom")
	defer teardown()
	//
	doc := NewDocument()
	div, _ := doc.CreateElement("div")
	assert.True(t, doc.SetProperty(div, "innerHTML", "<b>bold</b> text"))
	assert.Equal(t, "<b>bold</b> text", InnerHTML(div))
	assert.True(t, doc.SetProperty(div, "textContent", "<plain>"))
	assert.Equal(t, "<div>&lt;plain&gt;</div>", OuterHTML(div))
	assert.True(t, doc.SetProperty(div, "textContent", 42))
	assert.Equal(t, "42", TextContent(div))
}

func TestEventHandlerProperties(t *testing.T) {
	doc := NewDocument()
	button, _ := doc.CreateElement("button")
	clicked := false
	handler := func() { clicked = true }
	assert.True(t, doc.SetProperty(button, "onclick", handler))
	h, ok := doc.Handler(button, "onclick").(func())
	require.True(t, ok)
	h()
	assert.True(t, clicked)
	assert.Empty(t, button.Attr, "handlers are not reflected as attributes")
	//
	assert.True(t, doc.SetProperty(button, "onclick", "alert(1)"))
	assert.Nil(t, doc.Handler(button, "onclick"), "non-callable clears the handler")
}

func TestStyleProperty(t *testing.T) {
	doc := NewDocument()
	div, _ := doc.CreateElement("div")
	assert.True(t, doc.SetProperty(div, "style", "color: red"))
	assert.Equal(t, "color: red;", doc.Style(div).CSSText())
	assert.True(t, doc.SetStyle(div, "marginTop", "4px"))
	assert.False(t, doc.SetStyle(div, "notAProperty", "4px"))
	assert.Equal(t, `<div style="color: red; margin-top: 4px;"></div>`, OuterHTML(div))
}

func TestStringify(t *testing.T) {
	type celsius float64
	for _, tc := range []struct {
		in   any
		want string
	}{
		{"text", "text"},
		{42, "42"},
		{-7, "-7"},
		{uint8(7), "7"},
		{3.5, "3.5"},
		{2.0, "2"},
		{float32(0.1), "0.1"},
		{celsius(21.5), "21.5"},
		{true, "true"},
		{false, "false"},
		{nil, "null"},
	} {
		assert.Equal(t, tc.want, Stringify(tc.in), "%#v", tc.in)
	}
	assert.Contains(t, Stringify(TestStringify), "TestStringify")
	assert.True(t, IsPrimitive(TestStringify))
	assert.False(t, IsPrimitive([]int{1}))
	assert.False(t, IsPrimitive(map[string]any{}))
	assert.False(t, IsPrimitive(nil))
}

func TestForgetHandlers(t *testing.T) {
	doc := NewDocument()
	div, _ := doc.CreateElement("div")
	button, _ := doc.CreateElement("button")
	require.NoError(t, doc.AppendChild(div, button))
	handler := func() {}
	assert.True(t, doc.SetProperty(div, "onclick", handler))
	assert.True(t, doc.SetProperty(button, "onclick", handler))
	assert.True(t, doc.SetProperty(button, "onfocus", handler))
	assert.Equal(t, 2, doc.handlerCount())
	//
	assert.True(t, doc.SetProperty(div, "onclick", nil))
	assert.Equal(t, 1, doc.handlerCount(), "clearing the last handler prunes the element")
	//
	doc.Forget(div)
	assert.Equal(t, 0, doc.handlerCount())
	assert.Nil(t, doc.Handler(button, "onfocus"))
	doc.Forget(nil)
}
