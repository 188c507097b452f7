// Package vdom provides the in-memory HTML tree used by featuregrid.
//
// Every card, layout and builder screen renders to a *VNode. The tree is
// plain data: it can be compared structurally (Equal), inspected (Walk,
// Find) and turned into HTML by the render package.
//
// # Core Types
//
// VNode is the fundamental building block representing elements, text,
// fragments and raw HTML. Props holds attributes and event handlers.
// Attr and EventHandler are used to build Props.
//
// # Element API
//
// Elements are created using variadic factory functions:
//
//	Div(Class("card"), ID("main"),
//	    H3(Text("Lightning Fast")),
//	    P(Text("Click to see the details")),
//	    OnClick(toggle),
//	)
//
// # Event Handlers
//
// OnClick and OnInput attach Go closures to elements. The renderer gives
// such elements a hydration id and collects their handlers so a live
// session can invoke them when the browser reports the event.
package vdom
