package dombuilder

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/dombuilder/dom"
	"github.com/npillmayer/dombuilder/promise"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

// render serializes n while holding the lock of the builder's document.
func render(b *Builder, n *html.Node) (s string) {
	b.Host().Do(func() {
		s = dom.OuterHTML(n)
	})
	return
}

func TestClassify(t *testing.T) {
	doc := dom.NewDocument()
	div, _ := doc.CreateElement("div")
	var nilPromise *promise.Promise
	type point struct{ X, Y int }
	for _, tc := range []struct {
		name string
		in   any
		want Kind
	}{
		{"nil", nil, KindUnrecognized},
		{"string", "s", KindText},
		{"empty string", "", KindText},
		{"slice", []any{1, "a"}, KindSequence},
		{"array", [2]string{"a", "b"}, KindSequence},
		{"node slice", []*html.Node{div}, KindSequence},
		{"bytes", []byte("data"), KindUnrecognized},
		{"element", div, KindNode},
		{"text node", doc.CreateTextNode("t"), KindNode},
		{"fragment", doc.CreateDocumentFragment(), KindNode},
		{"comment", doc.CreateComment("c"), KindUnrecognized},
		{"props", Props{{Key: "id", Value: "x"}}, KindPropertyBag},
		{"map", map[string]any{"id": "x"}, KindPropertyBag},
		{"typed map", map[string]int{"tabIndex": 1}, KindPropertyBag},
		{"int keyed map", map[int]string{1: "x"}, KindUnrecognized},
		{"promise", promise.Resolve(1), KindPending},
		{"then func", promise.ThenFunc(func(func(any), func(error)) {}), KindPending},
		{"nil promise", nilPromise, KindUnrecognized},
		{"number", 42, KindUnrecognized},
		{"bool", true, KindUnrecognized},
		{"struct", point{1, 2}, KindUnrecognized},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Classify(tc.in), "kind of %#v", tc.in)
		})
	}
	assert.True(t, KindSequence.Appendable())
	assert.False(t, KindPropertyBag.Appendable())
	assert.Equal(t, "property bag", KindPropertyBag.String())
}

func TestAppendRejectsUnappendable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dombuilder.engine")
	defer teardown()
	//
	b := New(nil, WithWarnings(true))
	div := b.Div(nil)
	for _, v := range []any{nil, 42, true, map[string]any{"id": "x"}, Props{}, struct{}{}} {
		assert.False(t, b.Append(div, v), "%#v", v)
	}
	assert.Equal(t, "<div></div>", render(b, div))
	//
	assert.True(t, b.Append(div, []any{"a", 42, b.Span(nil)}), "bad items are skipped")
	assert.Equal(t, "<div>a<span></span></div>", render(b, div))
	//
	assert.False(t, b.Append(nil, []any{"x", 42}), "nil parent")
	assert.False(t, b.Append(nil, "x"))
}

func TestNestedSequencesAreFlattened(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dombuilder.engine")
	defer teardown()
	//
	b := New(nil)
	child := b.Span(nil, "c")
	el := b.Div(nil, []any{[]any{child}, "t", [][]any{{"x"}, {"y"}}})
	assert.Equal(t, "<div><span>c</span>txy</div>", render(b, el))
}

func TestFirstArgument(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dombuilder.engine")
	defer teardown()
	//
	b := New(nil)
	for _, absent := range []any{nil, false, 0, 0.0, uint8(0), (*html.Node)(nil)} {
		assert.Equal(t, "<div></div>", render(b, b.MakeElement("div", absent)), "%#v", absent)
	}
	assert.Equal(t, "<p>hello</p>", render(b, b.P("hello")))
	assert.Equal(t, "<p></p>", render(b, b.P("")), "empty string is a child")
	assert.Equal(t, "<p>a<b>b</b>c</p>",
		render(b, b.P([]any{"a", b.MakeElement("b", "b")}, "c")))
	assert.Equal(t, `<p id="x">body</p>`,
		render(b, b.P(Props{{Key: "id", Value: "x"}}, "body")))
	assert.Equal(t, "<p>more</p>", render(b, b.P(42, "more")), "rest is always appended")
}

func TestPropertiesAndAttributes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dombuilder.engine")
	defer teardown()
	//
	b := New(nil, WithWarnings(true))
	el := b.Label(Props{
		{Key: "htmlFor", Value: "name"},
		{Key: "className", Value: "big"},
		{Key: "role", Value: "button"},
		{Key: "aria-label", Value: "Name"},
		{Key: "@data-raw", Value: 1},
		{Key: "@aria-hidden", Value: true},
		{Key: "class", Value: "dropped"},
		{Key: "bogus", Value: 3},
	})
	assert.Equal(t,
		`<label for="name" class="big" role="button" aria-label="Name" data-raw="1" aria-hidden="true"></label>`,
		render(b, el))
	//
	input := b.Input(map[string]any{"type": "checkbox", "checked": true, "value": 7})
	assert.Equal(t, `<input checked="" type="checkbox" value="7"/>`, render(b, input))
	//
	b = New(nil, WithAttributeMarker("attr:"), WithAttributeExceptions("title"))
	el = b.Div(Props{{Key: "attr:x-y", Value: "1"}, {Key: "title", Value: "t"}, {Key: "@z", Value: "2"}})
	assert.Equal(t, `<div x-y="1" title="t"></div>`, render(b, el))
}

func TestContentProperties(t *testing.T) {
	b := New(nil)
	el := b.Div(Props{{Key: "innerHTML", Value: "<i>x</i>"}}, "y")
	assert.Equal(t, "<div><i>x</i>y</div>", render(b, el))
	el = b.Div(Props{{Key: "textContent", Value: "<b>"}})
	assert.Equal(t, "<div>&lt;b&gt;</div>", render(b, el))
}

func TestEventHandlers(t *testing.T) {
	doc := dom.NewDocument()
	b := New(doc)
	clicks := 0
	el := b.Button(Props{{Key: "onclick", Value: func() { clicks++ }}}, "Go")
	assert.Equal(t, "<button>Go</button>", render(b, el))
	h, ok := doc.Handler(el, "onclick").(func())
	require.True(t, ok)
	h()
	assert.Equal(t, 1, clicks)
}

func TestStyleBag(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dombuilder.engine")
	defer teardown()
	//
	m := NewMetrics("test", nil)
	b := New(nil, WithMetrics(m))
	el := b.Div(Props{{Key: "style", Value: Props{
		{Key: "backgroundColor", Value: "red"},
		{Key: "margin-top", Value: "2px"},
		{Key: "zIndex", Value: 3},
		{Key: "bogus", Value: "1"},
	}}})
	assert.Equal(t, `<div style="background-color: red; margin-top: 2px; z-index: 3;"></div>`, render(b, el))
	assert.Equal(t, 1.0, counterValue(t, m.Dropped.WithLabelValues("style")))
	//
	el = b.Div(Props{{Key: "style", Value: "color: red"}})
	assert.Equal(t, "<div></div>", render(b, el), "style must be a bag")
	assert.Equal(t, 2.0, counterValue(t, m.Dropped.WithLabelValues("style")))
}

func TestDatasetBag(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dombuilder.engine")
	defer teardown()
	//
	b := New(nil)
	el := b.Div(Props{{Key: "dataset", Value: Props{
		{Key: "userId", Value: 42},
		{Key: "flag", Value: false},
		{Key: "fn", Value: strings.ToUpper},
		{Key: "bad-key", Value: "x"},
		{Key: "nested", Value: []int{1}},
	}}})
	assert.Equal(t, `<div data-user-id="42" data-flag="false" data-fn="strings.ToUpper"></div>`, render(b, el))
}

func TestInvalidTag(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dombuilder.engine")
	defer teardown()
	//
	b := New(nil)
	el, err := b.Build("1nvalid", nil)
	assert.Nil(t, el)
	assert.ErrorIs(t, err, dom.ErrInvalidCharacter)
	assert.Panics(t, func() { b.MakeElement("a b", nil) })
}

func TestShorthands(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dombuilder.engine")
	defer teardown()
	//
	b := New(nil)
	table := b.Table(nil, b.Tr(nil, b.Th(nil, "h"), b.Td(nil, "d")))
	assert.Equal(t, "<table><tr><th>h</th><td>d</td></tr></table>", render(b, table))
	ul := b.Ul(nil, b.Li(nil, "1"), b.Li(nil, "2"))
	assert.Equal(t, "<ul><li>1</li><li>2</li></ul>", render(b, ul))
	a := b.A(Props{{Key: "href", Value: "/x"}}, "x")
	assert.Equal(t, `<a href="/x">x</a>`, render(b, a))
	slot := b.Slot(Props{{Key: "name", Value: "s"}})
	assert.Equal(t, `<slot name="s"></slot>`, render(b, slot))
	css := b.Style(nil, "p { color: red }")
	assert.Equal(t, "<style>p { color: red }</style>", render(b, css))
	//
	frag := b.Fragment("a", b.Span(nil), 42)
	p := b.P(nil, frag)
	assert.Equal(t, "<p>a<span></span></p>", render(b, p))
	assert.Nil(t, frag.FirstChild)
	//
	tmpl := b.Template(b.Span(nil, "x"))
	assert.Equal(t, "<template><span>x</span></template>", render(b, tmpl))
	assert.Equal(t, "t", b.Text("t").Data)
}

func TestSVG(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dombuilder.engine")
	defer teardown()
	//
	b := New(nil)
	svg, err := b.SVG(`<svg><title>tip</title><rect></rect></svg>`, true)
	require.NoError(t, err)
	assert.Equal(t, "<svg><rect></rect></svg>", render(b, svg))
	div := b.Div(nil, svg)
	assert.Equal(t, div, svg.Parent)
	_, err = b.SVG("no graphic", false)
	assert.ErrorIs(t, err, dom.ErrSyntax)
}

func TestDefaultBuilder(t *testing.T) {
	doc := dom.NewDocument()
	b := New(doc)
	SetDefault(b)
	defer SetDefault(nil)
	assert.Same(t, b, Default())
	el := Div(nil, Span(nil, "x"))
	assert.Equal(t, "<div><span>x</span></div>", render(b, el))
	assert.True(t, Append(el, "y"))
	built, err := Build("p", "z")
	require.NoError(t, err)
	assert.Equal(t, "<p>z</p>", render(b, built))
	assert.Equal(t, "<i></i>", render(b, MakeElement("i", nil)))
	SetDefault(nil)
	assert.NotSame(t, b, Default())
}

func TestConfig(t *testing.T) {
	rejected := errors.New("x")
	var seen error
	b := New(nil, WithPlaceholderTag(""), WithWrapperField(""),
		WithRejectionHandler(func(err error) { seen = err }))
	conf := b.Config()
	assert.Equal(t, DefaultPlaceholderTag, conf.PlaceholderTag)
	assert.Equal(t, DefaultWrapperField, conf.WrapperField)
	assert.Equal(t, []string{"role", "aria-label"}, conf.AttributeExceptions)
	conf.AttributeExceptions[0] = "changed"
	assert.True(t, b.isException("role"), "Config returns a copy")
	conf.OnRejected(rejected)
	assert.Equal(t, rejected, seen)
}
