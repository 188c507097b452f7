// Package layout arranges card slots into feature-grid sections.
//
// A Descriptor is a layout template (classic grid, masonry, bento, ...)
// and each of its Variants fixes the parameters that decide how many
// slots exist and where they go. Render asks a SlotFunc for the content
// of every slot and positions the results for the chosen ViewMode.
package layout

import (
	"errors"
	"fmt"
)

// ErrUnknownLayout is returned for a layout id with no arranger.
var ErrUnknownLayout = errors.New("layout: unknown layout")

// Layout ids with a built-in arranger.
const (
	ClassicGrid = "classic-grid"
	HeroGrid    = "hero-grid"
	Masonry     = "masonry"
	Zigzag      = "zigzag"
	Carousel    = "carousel"
	Bento       = "bento"
	Timeline    = "timeline"
	Pyramid     = "pyramid"
)

// Descriptor describes a layout template. It is never mutated after load.
type Descriptor struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	Guide       string    `json:"guide,omitempty"` // HTML
	Variants    []Variant `json:"variants"`
}

// Variant parameterizes a layout. Only the fields relevant to the
// layout are set.
type Variant struct {
	ID   string `json:"id"`
	Name string `json:"name"`

	Cols     int  `json:"cols,omitempty"`
	AutoCols bool `json:"autoCols,omitempty"`
	Rows     int  `json:"rows,omitempty"`
	Items    int  `json:"items,omitempty"`

	Visible     int  `json:"visible,omitempty"`
	AutoVisible bool `json:"autoVisible,omitempty"`
	Infinite    bool `json:"infinite,omitempty"`

	// Arrangement selects a sub-layout: hero-quad, hero-six, hero-side,
	// dual-hero for hero-grid; mixed, spotlight, sidebar for bento.
	Arrangement string `json:"arrangement,omitempty"`

	// Alignment is center, left or alternating for timelines.
	Alignment string `json:"alignment,omitempty"`

	Levels   int  `json:"levels,omitempty"`
	Inverted bool `json:"inverted,omitempty"`
}

// Variant returns the variant with the given id.
func (d Descriptor) Variant(id string) (Variant, bool) {
	for _, v := range d.Variants {
		if v.ID == id {
			return v, true
		}
	}
	return Variant{}, false
}

// DefaultVariant returns the first variant, or the zero Variant.
func (d Descriptor) DefaultVariant() Variant {
	if len(d.Variants) == 0 {
		return Variant{}
	}
	return d.Variants[0]
}

// Find returns the layout with the given id.
func Find(layouts []Descriptor, id string) (Descriptor, bool) {
	for _, l := range layouts {
		if l.ID == id {
			return l, true
		}
	}
	return Descriptor{}, false
}

// Known reports whether id has a built-in arranger.
func Known(id string) bool {
	_, ok := arrangers[id]
	return ok
}

// SlotCount returns the number of card slots the variant of layoutID has.
func SlotCount(layoutID string, v Variant) (int, error) {
	switch layoutID {
	case ClassicGrid:
		if v.Items > 0 {
			return v.Items, nil
		}
		return max(v.Cols, 1) * max(v.Rows, 1), nil
	case HeroGrid:
		switch v.Arrangement {
		case "hero-six":
			return 7, nil
		case "hero-side":
			return 4, nil
		case "dual-hero":
			return 6, nil
		default:
			return 5, nil
		}
	case Masonry:
		return 8, nil
	case Zigzag:
		if v.Items > 0 {
			return v.Items, nil
		}
		return 4, nil
	case Carousel:
		return 6, nil
	case Bento:
		if v.Arrangement == "spotlight" || v.Arrangement == "sidebar" {
			return 5, nil
		}
		return 6, nil
	case Timeline:
		return 4, nil
	case Pyramid:
		n := pyramidLevels(v)
		return n * (n + 1) / 2, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownLayout, layoutID)
	}
}

func pyramidLevels(v Variant) int {
	if v.Levels > 0 {
		return v.Levels
	}
	return 3
}
