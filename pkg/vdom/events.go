package vdom

// event creates an EventHandler with the given name and handler.
// The name is prefixed with "on" (e.g., "click" becomes "onclick").
func event(name string, handler any) EventHandler {
	return EventHandler{Event: "on" + name, Handler: handler}
}

// OnClick handles click events.
func OnClick(handler func()) EventHandler {
	if handler == nil {
		return EventHandler{}
	}
	return event("click", handler)
}

// OnInput handles input events. The handler receives the element's new value.
func OnInput(handler func(string)) EventHandler {
	if handler == nil {
		return EventHandler{}
	}
	return event("input", handler)
}

// OnChange handles change events. The handler receives the committed value.
func OnChange(handler func(string)) EventHandler {
	if handler == nil {
		return EventHandler{}
	}
	return event("change", handler)
}
