package render

import "github.com/vango-dev/featuregrid/pkg/vdom"

// inlineElements don't get newlines in pretty-printed output.
var inlineElements = map[string]bool{
	"a":      true,
	"b":      true,
	"br":     true,
	"code":   true,
	"em":     true,
	"i":      true,
	"small":  true,
	"span":   true,
	"strong": true,
}

func isInlineElement(tag string) bool {
	return inlineElements[tag]
}

func isVoidElement(tag string) bool {
	return vdom.IsVoidElement(tag)
}

// booleanAttrs are attributes that don't need a value.
// When true, they're rendered as just the attribute name.
var booleanAttrs = map[string]bool{
	"async":       true,
	"autofocus":   true,
	"autoplay":    true,
	"checked":     true,
	"controls":    true,
	"defer":       true,
	"disabled":    true,
	"hidden":      true,
	"loop":        true,
	"multiple":    true,
	"muted":       true,
	"open":        true,
	"playsinline": true,
	"readonly":    true,
	"required":    true,
	"selected":    true,
}

func isBooleanAttr(name string) bool {
	return booleanAttrs[name]
}
