package dom

import (
	"strings"

	"golang.org/x/net/html"
)

// ParseSVG parses SVG markup and returns the (first) svg element, detached
// from the parse tree. If stripTitle is set, the first <title> descendent
// of the svg element is removed, suppressing the tooltip browsers show for it.
func (d *Document) ParseSVG(markup string, stripTitle bool) (*html.Node, error) {
	root, err := html.Parse(strings.NewReader(markup))
	if err != nil {
		return nil, syntaxError("cannot parse SVG: %v", err)
	}
	found := Walk(root, func(n *html.Node) bool {
		return n.Type == html.ElementNode && n.Namespace == "svg" && n.Data == "svg"
	}, 1)
	if len(found) == 0 {
		return nil, syntaxError("markup contains no svg element")
	}
	svg := found[0]
	detach(svg)
	if stripTitle {
		if t := Walk(svg, NodeHasTag("title"), 1); len(t) > 0 {
			detach(t[0])
		}
	}
	return svg, nil
}
