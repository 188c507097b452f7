package cards

import "github.com/vango-dev/featuregrid/pkg/vdom"

// Fallback describes a resolution that did not produce a card.
type Fallback struct {
	Category   string
	Name       string
	Outcome    Outcome // OutcomeNotFound or OutcomeFailed
	Suggestion string  // "category/name" or empty
	Reason     string  // recovered panic value, for OutcomeFailed
}

// FallbackFunc renders the placeholder for a Fallback.
// It must not return nil and must not panic.
type FallbackFunc func(f Fallback) *vdom.VNode

// DefaultFallback renders a bordered placeholder naming the missing pair.
func DefaultFallback(f Fallback) *vdom.VNode {
	title := "Card not found"
	if f.Outcome == OutcomeFailed {
		title = "Card failed"
	}

	return vdom.Div(
		vdom.Class("rounded-lg border-2 border-dashed border-red-300 bg-red-50 p-6 text-center"),
		vdom.Data("fallback", f.Outcome.String()),
		vdom.Role("alert"),
		vdom.P(vdom.Class("font-semibold text-red-700"), title),
		vdom.P(vdom.Class("mt-1 font-mono text-sm text-red-600"), f.Category+"/"+f.Name),
		vdom.If(f.Suggestion != "",
			vdom.P(vdom.Class("mt-2 text-sm text-gray-600"), "Did you mean "+f.Suggestion+"?"),
		),
	)
}

// IsFallback reports whether node was produced by a fallback renderer that
// marks its root with data-fallback, as DefaultFallback does.
func IsFallback(node *vdom.VNode) bool {
	_, ok := node.Attr("data-fallback")
	return ok
}
