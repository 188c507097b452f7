package ui

import (
	"strconv"

	"github.com/vango-dev/featuregrid/pkg/vdom"
)

// Switch renders a toggle switch. onToggle is called on click.
func Switch(checked bool, label string, onToggle func()) *vdom.VNode {
	track := "peer inline-flex h-6 w-11 shrink-0 cursor-pointer items-center rounded-full border-2 border-transparent transition-colors"
	thumb := "pointer-events-none block h-5 w-5 rounded-full bg-background shadow-lg ring-0 transition-transform"
	state := "unchecked"
	if checked {
		track = CN(track, "bg-primary")
		thumb = CN(thumb, "translate-x-5")
		state = "checked"
	} else {
		track = CN(track, "bg-input")
		thumb = CN(thumb, "translate-x-0")
	}

	return vdom.Button(
		vdom.Type("button"),
		vdom.Role("switch"),
		vdom.Class(track),
		vdom.AriaLabel(label),
		vdom.Attr{Key: "aria-checked", Value: boolString(checked)},
		vdom.Data("state", state),
		vdom.OnClick(onToggle),
		vdom.Span(vdom.Class(thumb)),
	)
}

// Slider renders a range input. onInput receives the raw input value.
func Slider(value, lo, hi int, label string, onInput func(string)) *vdom.VNode {
	return vdom.Input(
		vdom.Type("range"),
		vdom.Class("w-full accent-primary"),
		vdom.Min(strconv.Itoa(lo)),
		vdom.Max(strconv.Itoa(hi)),
		vdom.Value(strconv.Itoa(value)),
		vdom.AriaLabel(label),
		vdom.OnInput(onInput),
	)
}

func boolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
