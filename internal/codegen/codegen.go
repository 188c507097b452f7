// Package codegen produces the code shown in the builder's code view: a
// React component with Tailwind classes that mirrors the selected layout.
//
// The output is a static template. It is meant as a starting point and is
// not checked for correctness.
package codegen

import (
	"bytes"
	"fmt"
	"sort"
	"strings"
	"text/template"
	"unicode"
)

// Selection is the builder state the code is generated for.
type Selection struct {
	Layout  string
	Variant string
	Theme   string
	Dark    bool

	// GridClass holds the desktop grid classes, e.g. "grid-cols-3".
	GridClass string

	// Slots lists the card of every slot in slot order.
	Slots []Slot
}

// Slot is the card placed into one layout slot.
type Slot struct {
	Category string
	Name     string
}

// Component returns the React component name of the slot's card.
func (s Slot) Component() string {
	return componentName(s.Name)
}

// ImportPath returns the module path the component is imported from.
func (s Slot) ImportPath() string {
	return "@/components/cards/" + sanitizePath(s.Category) + "/" + sanitizePath(s.Name)
}

type templateData struct {
	Selection
	Imports []Slot
	Section string
}

var componentTemplate = template.Must(template.New("component").Parse(
	`// Generated feature grid: {{.Layout}} / {{.Variant}}
{{- range .Imports}}
import { {{.Component}} } from "{{.ImportPath}}";
{{- end}}

export default function FeatureGrid() {
  return (
    <section className="{{.Section}}">
      <div className="grid {{.GridClass}} gap-6">
{{- range $i, $s := .Slots}}
        <{{$s.Component}} /> {/* slot {{$i}}: {{$s.Category}}/{{$s.Name}} */}
{{- end}}
      </div>
    </section>
  );
}
`))

// Generate renders the component source for sel.
func Generate(sel Selection) (string, error) {
	if sel.GridClass == "" {
		sel.GridClass = "grid-cols-1"
	}

	section := "max-w-6xl mx-auto px-8 py-16"
	if sel.Dark {
		section += " bg-gray-900 text-white"
	}

	data := templateData{
		Selection: sel,
		Imports:   uniqueSlots(sel.Slots),
		Section:   section,
	}

	var buf bytes.Buffer
	if err := componentTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("codegen: %w", err)
	}
	return buf.String(), nil
}

// uniqueSlots returns one slot per distinct card, sorted by import path.
func uniqueSlots(slots []Slot) []Slot {
	seen := make(map[string]bool)
	var out []Slot
	for _, s := range slots {
		key := s.ImportPath()
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].ImportPath() < out[j].ImportPath()
	})
	return out
}

// componentName turns "flip-card" into "FlipCard". Characters that are
// not letters or digits separate words; a leading digit gets a "Card"
// prefix.
func componentName(name string) string {
	var b strings.Builder
	upper := true
	for _, r := range name {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			upper = true
			continue
		}
		if upper {
			r = unicode.ToUpper(r)
			upper = false
		}
		b.WriteRune(r)
	}

	out := b.String()
	if out == "" {
		return "UnknownCard"
	}
	if unicode.IsDigit(rune(out[0])) {
		return "Card" + out
	}
	return out
}

func sanitizePath(s string) string {
	s = strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '_' {
			return unicode.ToLower(r)
		}
		return '-'
	}, s)
	if s == "" {
		return "unknown"
	}
	return s
}
