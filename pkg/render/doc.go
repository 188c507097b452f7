// Package render turns vdom trees into HTML.
//
// The renderer produces deterministic output: attributes are written in
// sorted order, text and attribute values are escaped, void elements have
// no closing tag and boolean attributes are written bare.
//
// # Basic Usage
//
//	renderer := render.NewRenderer(render.RendererConfig{})
//	html, err := renderer.RenderToString(node)
//
// # Hydration IDs
//
// Elements with event handlers receive a data-hid attribute and a
// data-on-<event> marker. The handlers are collected during rendering and
// can be retrieved via Handlers(), keyed "<hid>_<event>" (e.g. "h3_onclick").
// A live session keeps that map and invokes the handler when the browser
// reports the event for that id.
//
// # Full Page Rendering
//
//	err := renderer.RenderPage(w, render.PageData{
//	    Title: "Feature Grid Builder",
//	    Body:  body,
//	    Dark:  true,
//	})
package render
