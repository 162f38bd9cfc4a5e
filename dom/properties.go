package dom

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/net/html"
)

// propKind tells how an element property is stored.
type propKind uint8

const (
	reflectString propKind = iota // reflects a string attribute
	reflectBool                   // reflects a boolean attribute (present/absent)
	reflectInt                    // reflects an integer attribute
	reflectFloat                  // reflects a floating point attribute
	textContent                   // replaces the children with a text node
	innerHTML                     // parses markup into the children
	eventHandler                  // held in the document's handler table
	styleObject                   // the inline style; assignment sets its text
	readOnly                      // exists but cannot be assigned to (e.g. dataset)
)

// propDef maps an element property to its storage.
type propDef struct {
	attr string
	kind propKind
}

func str(attr string) propDef   { return propDef{attr, reflectString} }
func flag(attr string) propDef  { return propDef{attr, reflectBool} }
func num(attr string) propDef   { return propDef{attr, reflectInt} }
func float(attr string) propDef { return propDef{attr, reflectFloat} }

// globalProperties are settable on every HTML element.
var globalProperties = map[string]propDef{
	"id":              str("id"),
	"className":       str("class"),
	"title":           str("title"),
	"lang":            str("lang"),
	"dir":             str("dir"),
	"slot":            str("slot"),
	"nonce":           str("nonce"),
	"accessKey":       str("accesskey"),
	"contentEditable": str("contenteditable"),
	"draggable":       str("draggable"),
	"spellcheck":      str("spellcheck"),
	"translate":       str("translate"),
	"inputMode":       str("inputmode"),
	"enterKeyHint":    str("enterkeyhint"),
	"autocapitalize":  str("autocapitalize"),
	"popover":         str("popover"),
	"role":            str("role"),
	"hidden":          flag("hidden"),
	"autofocus":       flag("autofocus"),
	"inert":           flag("inert"),
	"tabIndex":        num("tabindex"),
	"textContent":     {kind: textContent},
	"innerText":       {kind: textContent},
	"innerHTML":       {kind: innerHTML},
	"style":           {attr: "style", kind: styleObject},
	"dataset":         {kind: readOnly},
}

// eventNames are the events with an on… handler property.
var eventNames = []string{
	"abort", "animationend", "animationiteration", "animationstart", "auxclick",
	"beforeinput", "blur", "cancel", "change", "click", "close", "contextmenu",
	"copy", "cut", "dblclick", "drag", "dragend", "dragenter", "dragleave",
	"dragover", "dragstart", "drop", "error", "focus", "focusin", "focusout",
	"input", "invalid", "keydown", "keypress", "keyup", "load", "mousedown",
	"mouseenter", "mouseleave", "mousemove", "mouseout", "mouseover", "mouseup",
	"paste", "pointercancel", "pointerdown", "pointerenter", "pointerleave",
	"pointermove", "pointerout", "pointerover", "pointerup", "reset", "resize",
	"scroll", "select", "submit", "toggle", "touchcancel", "touchend",
	"touchmove", "touchstart", "transitionend", "wheel",
}

func init() {
	for _, ev := range eventNames {
		globalProperties["on"+ev] = propDef{kind: eventHandler}
	}
}

// tagProperties are the properties specific to an HTML element type.
var tagProperties = map[string]map[string]propDef{
	"a": {
		"href": str("href"), "target": str("target"), "rel": str("rel"),
		"download": str("download"), "hreflang": str("hreflang"), "type": str("type"),
		"referrerPolicy": str("referrerpolicy"), "ping": str("ping"),
		"text": {kind: textContent},
	},
	"area": {
		"href": str("href"), "alt": str("alt"), "coords": str("coords"),
		"shape": str("shape"), "target": str("target"), "rel": str("rel"),
		"download": str("download"),
	},
	"audio": {
		"src": str("src"), "autoplay": flag("autoplay"), "controls": flag("controls"),
		"loop": flag("loop"), "defaultMuted": flag("muted"), "preload": str("preload"),
		"crossOrigin": str("crossorigin"),
	},
	"blockquote": {"cite": str("cite")},
	"button": {
		"type": str("type"), "name": str("name"), "value": str("value"),
		"disabled": flag("disabled"), "formAction": str("formaction"),
		"formMethod": str("formmethod"), "formEnctype": str("formenctype"),
		"formTarget": str("formtarget"), "formNoValidate": flag("formnovalidate"),
	},
	"canvas":   {"width": num("width"), "height": num("height")},
	"col":      {"span": num("span")},
	"colgroup": {"span": num("span")},
	"data":     {"value": str("value")},
	"del":      {"cite": str("cite"), "dateTime": str("datetime")},
	"details":  {"open": flag("open"), "name": str("name")},
	"dialog":   {"open": flag("open")},
	"embed": {
		"src": str("src"), "type": str("type"), "width": str("width"), "height": str("height"),
	},
	"fieldset": {"disabled": flag("disabled"), "name": str("name")},
	"form": {
		"action": str("action"), "method": str("method"), "enctype": str("enctype"),
		"encoding": str("enctype"), "target": str("target"), "name": str("name"),
		"noValidate": flag("novalidate"), "autocomplete": str("autocomplete"),
		"acceptCharset": str("accept-charset"), "rel": str("rel"),
	},
	"iframe": {
		"src": str("src"), "srcdoc": str("srcdoc"), "name": str("name"),
		"width": str("width"), "height": str("height"), "allow": str("allow"),
		"allowFullscreen": flag("allowfullscreen"), "loading": str("loading"),
		"referrerPolicy": str("referrerpolicy"),
	},
	"img": {
		"src": str("src"), "alt": str("alt"), "srcset": str("srcset"), "sizes": str("sizes"),
		"width": num("width"), "height": num("height"), "loading": str("loading"),
		"decoding": str("decoding"), "crossOrigin": str("crossorigin"),
		"useMap": str("usemap"), "isMap": flag("ismap"), "referrerPolicy": str("referrerpolicy"),
	},
	"input": {
		"type": str("type"), "name": str("name"), "value": str("value"),
		"defaultValue": str("value"), "checked": flag("checked"),
		"defaultChecked": flag("checked"), "disabled": flag("disabled"),
		"placeholder": str("placeholder"), "readOnly": flag("readonly"),
		"required": flag("required"), "min": str("min"), "max": str("max"),
		"step": str("step"), "pattern": str("pattern"), "multiple": flag("multiple"),
		"autocomplete": str("autocomplete"), "size": num("size"),
		"maxLength": num("maxlength"), "minLength": num("minlength"),
		"accept": str("accept"), "src": str("src"), "alt": str("alt"),
		"width": num("width"), "height": num("height"), "dirName": str("dirname"),
		"formAction": str("formaction"), "formMethod": str("formmethod"),
		"formNoValidate": flag("formnovalidate"), "formTarget": str("formtarget"),
	},
	"ins":   {"cite": str("cite"), "dateTime": str("datetime")},
	"label": {"htmlFor": str("for")},
	"li":    {"value": num("value")},
	"link": {
		"href": str("href"), "rel": str("rel"), "type": str("type"), "media": str("media"),
		"as": str("as"), "crossOrigin": str("crossorigin"), "integrity": str("integrity"),
		"hreflang": str("hreflang"), "referrerPolicy": str("referrerpolicy"),
		"disabled": flag("disabled"),
	},
	"map":  {"name": str("name")},
	"meta": {"name": str("name"), "content": str("content"), "httpEquiv": str("http-equiv"), "media": str("media")},
	"meter": {
		"value": float("value"), "min": float("min"), "max": float("max"),
		"low": float("low"), "high": float("high"), "optimum": float("optimum"),
	},
	"object": {
		"data": str("data"), "type": str("type"), "name": str("name"),
		"width": str("width"), "height": str("height"),
	},
	"ol":       {"start": num("start"), "reversed": flag("reversed"), "type": str("type")},
	"optgroup": {"disabled": flag("disabled"), "label": str("label")},
	"option": {
		"value": str("value"), "label": str("label"), "disabled": flag("disabled"),
		"defaultSelected": flag("selected"), "selected": flag("selected"),
		"text": {kind: textContent},
	},
	"output":   {"name": str("name"), "value": {kind: textContent}, "defaultValue": {kind: textContent}},
	"progress": {"value": float("value"), "max": float("max")},
	"q":        {"cite": str("cite")},
	"script": {
		"src": str("src"), "type": str("type"), "async": flag("async"),
		"defer": flag("defer"), "noModule": flag("nomodule"),
		"crossOrigin": str("crossorigin"), "integrity": str("integrity"),
		"referrerPolicy": str("referrerpolicy"), "text": {kind: textContent},
	},
	"select": {
		"name": str("name"), "disabled": flag("disabled"), "multiple": flag("multiple"),
		"required": flag("required"), "size": num("size"), "autocomplete": str("autocomplete"),
	},
	"slot": {"name": str("name")},
	"source": {
		"src": str("src"), "type": str("type"), "srcset": str("srcset"),
		"sizes": str("sizes"), "media": str("media"),
		"width": num("width"), "height": num("height"),
	},
	"style": {"media": str("media"), "type": str("type")},
	"td":    {"colSpan": num("colspan"), "rowSpan": num("rowspan"), "headers": str("headers")},
	"th": {
		"colSpan": num("colspan"), "rowSpan": num("rowspan"), "headers": str("headers"),
		"scope": str("scope"), "abbr": str("abbr"),
	},
	"textarea": {
		"name": str("name"), "rows": num("rows"), "cols": num("cols"),
		"placeholder": str("placeholder"), "disabled": flag("disabled"),
		"readOnly": flag("readonly"), "required": flag("required"),
		"maxLength": num("maxlength"), "minLength": num("minlength"),
		"wrap": str("wrap"), "autocomplete": str("autocomplete"),
		"value": {kind: textContent}, "defaultValue": {kind: textContent},
	},
	"time":  {"dateTime": str("datetime")},
	"track": {"kind": str("kind"), "src": str("src"), "srclang": str("srclang"), "label": str("label"), "default": flag("default")},
	"video": {
		"src": str("src"), "poster": str("poster"), "autoplay": flag("autoplay"),
		"controls": flag("controls"), "loop": flag("loop"), "defaultMuted": flag("muted"),
		"playsInline": flag("playsinline"), "preload": str("preload"),
		"width": num("width"), "height": num("height"), "crossOrigin": str("crossorigin"),
	},
}

// foreignProperties are settable on SVG and MathML elements.
var foreignProperties = map[string]propDef{
	"id":          str("id"),
	"tabIndex":    num("tabindex"),
	"textContent": {kind: textContent},
	"innerHTML":   {kind: innerHTML},
	"style":       {attr: "style", kind: styleObject},
	"dataset":     {kind: readOnly},
}

// lookupProperty finds the definition of an element property.
func lookupProperty(el *html.Node, key string) (propDef, bool) {
	if el == nil || el.Type != html.ElementNode {
		return propDef{}, false
	}
	if el.Namespace != "" {
		if def, ok := foreignProperties[key]; ok {
			return def, true
		}
		if strings.HasPrefix(key, "on") {
			def, ok := globalProperties[key]
			return def, ok && def.kind == eventHandler
		}
		return propDef{}, false
	}
	if defs, ok := tagProperties[el.Data]; ok {
		if def, ok := defs[key]; ok {
			return def, true
		}
	}
	def, ok := globalProperties[key]
	return def, ok
}

// HasSettableProperty is true if key names a property of el which
// construction may assign to.
func (d *Document) HasSettableProperty(el *html.Node, key string) bool {
	_, ok := lookupProperty(el, key)
	return ok
}

// SetProperty assigns a value to an element property. It returns false if
// el has no such property or the property cannot be assigned to.
//
// Most properties reflect an attribute. Boolean properties add or remove
// their attribute depending on the truthiness of the value; numeric
// properties store the numeric form of the value. Event handler properties
// accept callables only; other values clear the handler.
func (d *Document) SetProperty(el *html.Node, key string, value any) bool {
	def, ok := lookupProperty(el, key)
	if !ok {
		return false
	}
	switch def.kind {
	case reflectString:
		setAttr(el, def.attr, Stringify(value))
	case reflectBool:
		if truthy(value) {
			setAttr(el, def.attr, "")
		} else {
			removeAttr(el, def.attr)
		}
	case reflectInt:
		f := toNumber(value)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			f = 0
		}
		setAttr(el, def.attr, strconv.FormatInt(int64(f), 10))
	case reflectFloat:
		f := toNumber(value)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			tracer().P("property", key).Debugf("dom: non-finite value ignored")
			return false
		}
		setAttr(el, def.attr, formatNumber(f))
	case textContent:
		d.setTextContent(el, Stringify(value))
	case innerHTML:
		if err := d.SetInnerHTML(el, Stringify(value)); err != nil {
			tracer().Errorf("dom: cannot set innerHTML of <%s>: %v", el.Data, err)
			return false
		}
	case eventHandler:
		d.setHandler(el, key, value)
	case styleObject:
		d.Style(el).SetCSSText(Stringify(value))
	case readOnly:
		return false
	}
	return true
}

// Property reads an element property. Handler properties return the
// callable, reflected properties their current value.
func (d *Document) Property(el *html.Node, key string) (any, bool) {
	def, ok := lookupProperty(el, key)
	if !ok {
		return nil, false
	}
	switch def.kind {
	case reflectString:
		v, _ := GetAttribute(el, def.attr)
		return v, true
	case reflectBool:
		return HasAttribute(el, def.attr), true
	case reflectInt:
		v, _ := GetAttribute(el, def.attr)
		n, _ := strconv.Atoi(v)
		return n, true
	case reflectFloat:
		v, _ := GetAttribute(el, def.attr)
		f, _ := strconv.ParseFloat(v, 64)
		return f, true
	case textContent:
		return TextContent(el), true
	case innerHTML:
		return InnerHTML(el), true
	case eventHandler:
		return d.Handler(el, key), true
	case styleObject:
		return d.Style(el), true
	case readOnly:
		if key == "dataset" {
			return d.Dataset(el), true
		}
	}
	return nil, false
}

// --- Event handlers --------------------------------------------------------

// Event handler properties are held in a side table of the document, keyed
// by element. An element stays reachable from the table until its last
// handler is cleared or it is passed to Forget.

func (d *Document) setHandler(el *html.Node, key string, value any) {
	if !IsCallable(value) {
		if hs := d.handlers[el]; hs != nil {
			delete(hs, key)
			if len(hs) == 0 {
				delete(d.handlers, el)
			}
		}
		return
	}
	hs := d.handlers[el]
	if hs == nil {
		hs = make(map[string]any)
		d.handlers[el] = hs
	}
	hs[key] = value
}

// Handler returns the callable assigned to an event handler property
// (e.g., "onclick"), or nil.
func (d *Document) Handler(el *html.Node, key string) any {
	if hs := d.handlers[el]; hs != nil {
		return hs[key]
	}
	return nil
}

// Forget drops the event handlers of el and all of its descendants. Clients
// call it for subtrees they discard, so the document no longer keeps them
// alive.
func (d *Document) Forget(el *html.Node) {
	if el == nil || len(d.handlers) == 0 {
		return
	}
	delete(d.handlers, el)
	for _, n := range Walk(el, NodeIsElement, 0) {
		delete(d.handlers, n)
	}
}

// handlerCount is the number of elements with event handlers.
func (d *Document) handlerCount() int {
	return len(d.handlers)
}
