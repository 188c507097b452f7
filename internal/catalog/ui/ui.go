// Package ui holds the card chrome shared by the built-in cards: card
// containers, buttons, badges, progress bars and icons. Components take
// functional options and return *vdom.VNode.
package ui

import (
	"strings"

	"github.com/vango-dev/featuregrid/pkg/vdom"
)

// TailwindCDN is the Tailwind runtime that pages embedding these
// components load.
const TailwindCDN = "https://cdn.tailwindcss.com"

// Variant is a component color variant.
type Variant int

const (
	VariantDefault Variant = iota
	VariantOutline
	VariantSecondary
	VariantGhost
	VariantSuccess
	VariantWarning
	VariantDestructive
)

// Size is a component size.
type Size int

const (
	SizeMd Size = iota
	SizeSm
	SizeLg
	SizeIcon
)

// CN joins class lists, dropping empty entries and repeated classes.
func CN(classes ...string) string {
	seen := make(map[string]bool)
	var out []string
	for _, list := range classes {
		for _, c := range strings.Fields(list) {
			if !seen[c] {
				seen[c] = true
				out = append(out, c)
			}
		}
	}
	return strings.Join(out, " ")
}

// Accent holds the Tailwind classes of a theme color.
type Accent struct {
	Name   string
	Soft   string // tinted background
	Text   string // colored foreground
	Solid  string // filled background
	Border string
}

// AccentFor returns the classes for a Tailwind color name such as "blue".
// An empty name means blue.
func AccentFor(name string) Accent {
	if name == "" {
		name = "blue"
	}
	return Accent{
		Name:   name,
		Soft:   "bg-" + name + "-100",
		Text:   "text-" + name + "-600",
		Solid:  "bg-" + name + "-500",
		Border: "border-" + name + "-200",
	}
}

// Stat renders a "label ... value" row.
func Stat(label, value string) *vdom.VNode {
	return vdom.Div(
		vdom.Class("flex justify-between text-sm"),
		vdom.Span(label),
		vdom.Span(vdom.Class("font-medium"), value),
	)
}
