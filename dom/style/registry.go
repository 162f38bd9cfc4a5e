package style

// Symbolic names for string literals, denoting groups of CSS properties.
// Groups are used for debugging output only; an element's inline style
// is a flat list of declarations.
const (
	PGMargins    = "Margins"
	PGPadding    = "Padding"
	PGBorder     = "Border"
	PGDimension  = "Dimension"
	PGDisplay    = "Display"
	PGPosition   = "Position"
	PGFlex       = "Flex"
	PGGrid       = "Grid"
	PGColor      = "Color"
	PGBackground = "Background"
	PGFont       = "Font"
	PGText       = "Text"
	PGList       = "List"
	PGTable      = "Table"
	PGEffects    = "Effects"
	PGAnimation  = "Animation"
	PGX          = "X"
)

// GroupNameFromPropertyKey returns the style property group name for a
// style property.
// Example:
//    GroupNameFromPropertyKey("margin-top") => "Margins"
//
// Unknown style property keys will return a group name of "X".
func GroupNameFromPropertyKey(key string) string {
	if k, ok := PropertyName(key); ok {
		return knownProperties[k]
	}
	return PGX
}

// knownProperties lists the CSS properties an inline style declaration
// accepts, with their property group.
var knownProperties = map[string]string{
	"margin":        PGMargins,
	"margin-top":    PGMargins,
	"margin-left":   PGMargins,
	"margin-right":  PGMargins,
	"margin-bottom": PGMargins,
	"margin-block":  PGMargins,
	"margin-inline": PGMargins,

	"padding":        PGPadding,
	"padding-top":    PGPadding,
	"padding-left":   PGPadding,
	"padding-right":  PGPadding,
	"padding-bottom": PGPadding,
	"padding-block":  PGPadding,
	"padding-inline": PGPadding,

	"border":                     PGBorder,
	"border-top":                 PGBorder,
	"border-left":                PGBorder,
	"border-right":               PGBorder,
	"border-bottom":              PGBorder,
	"border-color":               PGBorder,
	"border-width":               PGBorder,
	"border-style":               PGBorder,
	"border-radius":              PGBorder,
	"border-collapse":            PGBorder,
	"border-spacing":             PGBorder,
	"border-top-color":           PGBorder,
	"border-left-color":          PGBorder,
	"border-right-color":         PGBorder,
	"border-bottom-color":        PGBorder,
	"border-top-width":           PGBorder,
	"border-left-width":          PGBorder,
	"border-right-width":         PGBorder,
	"border-bottom-width":        PGBorder,
	"border-top-style":           PGBorder,
	"border-left-style":          PGBorder,
	"border-right-style":         PGBorder,
	"border-bottom-style":        PGBorder,
	"border-top-left-radius":     PGBorder,
	"border-top-right-radius":    PGBorder,
	"border-bottom-left-radius":  PGBorder,
	"border-bottom-right-radius": PGBorder,
	"outline":                    PGBorder,
	"outline-color":              PGBorder,
	"outline-style":              PGBorder,
	"outline-width":              PGBorder,
	"outline-offset":             PGBorder,

	"width":        PGDimension,
	"height":       PGDimension,
	"min-width":    PGDimension,
	"min-height":   PGDimension,
	"max-width":    PGDimension,
	"max-height":   PGDimension,
	"box-sizing":   PGDimension,
	"aspect-ratio": PGDimension,

	"display":    PGDisplay,
	"float":      PGDisplay,
	"clear":      PGDisplay,
	"visibility": PGDisplay,
	"overflow":   PGDisplay,
	"overflow-x": PGDisplay,
	"overflow-y": PGDisplay,
	"opacity":    PGDisplay,
	"cursor":     PGDisplay,
	"content":    PGDisplay,

	"position": PGPosition,
	"top":      PGPosition,
	"right":    PGPosition,
	"bottom":   PGPosition,
	"left":     PGPosition,
	"inset":    PGPosition,
	"z-index":  PGPosition,

	"flex":            PGFlex,
	"flex-direction":  PGFlex,
	"flex-wrap":       PGFlex,
	"flex-flow":       PGFlex,
	"flex-grow":       PGFlex,
	"flex-shrink":     PGFlex,
	"flex-basis":      PGFlex,
	"justify-content": PGFlex,
	"justify-items":   PGFlex,
	"justify-self":    PGFlex,
	"align-items":     PGFlex,
	"align-content":   PGFlex,
	"align-self":      PGFlex,
	"order":           PGFlex,
	"gap":             PGFlex,
	"row-gap":         PGFlex,
	"column-gap":      PGFlex,

	"grid":                  PGGrid,
	"grid-area":             PGGrid,
	"grid-template":         PGGrid,
	"grid-template-columns": PGGrid,
	"grid-template-rows":    PGGrid,
	"grid-template-areas":   PGGrid,
	"grid-column":           PGGrid,
	"grid-row":              PGGrid,
	"grid-auto-flow":        PGGrid,
	"grid-auto-columns":     PGGrid,
	"grid-auto-rows":        PGGrid,

	"color":               PGColor,
	"accent-color":        PGColor,
	"caret-color":         PGColor,
	"fill":                PGColor,
	"stroke":              PGColor,
	"stroke-width":        PGColor,
	"background":          PGBackground,
	"background-color":    PGBackground,
	"background-image":    PGBackground,
	"background-size":     PGBackground,
	"background-repeat":   PGBackground,
	"background-position": PGBackground,
	"background-clip":     PGBackground,

	"font":           PGFont,
	"font-family":    PGFont,
	"font-size":      PGFont,
	"font-style":     PGFont,
	"font-weight":    PGFont,
	"font-variant":   PGFont,
	"line-height":    PGFont,
	"letter-spacing": PGFont,

	"direction":       PGText,
	"white-space":     PGText,
	"word-spacing":    PGText,
	"word-break":      PGText,
	"word-wrap":       PGText,
	"overflow-wrap":   PGText,
	"text-align":      PGText,
	"text-decoration": PGText,
	"text-indent":     PGText,
	"text-overflow":   PGText,
	"text-shadow":     PGText,
	"text-transform":  PGText,
	"vertical-align":  PGText,
	"user-select":     PGText,
	"quotes":          PGText,

	"list-style":          PGList,
	"list-style-type":     PGList,
	"list-style-position": PGList,
	"list-style-image":    PGList,

	"table-layout": PGTable,
	"caption-side": PGTable,
	"empty-cells":  PGTable,

	"box-shadow":       PGEffects,
	"filter":           PGEffects,
	"transform":        PGEffects,
	"transform-origin": PGEffects,
	"clip-path":        PGEffects,
	"pointer-events":   PGEffects,
	"object-fit":       PGEffects,
	"mix-blend-mode":   PGEffects,

	"transition":                 PGAnimation,
	"transition-property":        PGAnimation,
	"transition-duration":        PGAnimation,
	"transition-delay":           PGAnimation,
	"transition-timing-function": PGAnimation,
	"animation":                  PGAnimation,
	"animation-name":             PGAnimation,
	"animation-duration":         PGAnimation,
	"animation-delay":            PGAnimation,
	"will-change":                PGAnimation,

	"-webkit-transform":  PGX,
	"-webkit-appearance": PGX,
	"-moz-appearance":    PGX,
	"appearance":         PGX,
}
