package layout

import (
	"fmt"
	"strconv"

	"github.com/vango-dev/featuregrid/pkg/vdom"
)

// SlotFunc returns the content of slot i.
type SlotFunc func(i int) *vdom.VNode

// arranger positions the slots of one layout.
type arranger func(a arrangement) *vdom.VNode

// arrangement is the input of an arranger.
type arrangement struct {
	variant Variant
	mode    ViewMode
	slot    SlotFunc
	count   int
}

// cell wraps slot i in a positioned element.
func (a arrangement) cell(i int, classes ...string) *vdom.VNode {
	return vdom.Div(
		vdom.Class(classes...),
		vdom.Data("slot", strconv.Itoa(i)),
		a.slot(i),
	)
}

func (a arrangement) mobile() bool {
	return a.mode == Mobile
}

var arrangers map[string]arranger

func init() {
	arrangers = map[string]arranger{
		ClassicGrid: arrangeClassic,
		HeroGrid:    arrangeHero,
		Masonry:     arrangeMasonry,
		Zigzag:      arrangeZigzag,
		Carousel:    arrangeCarousel,
		Bento:       arrangeBento,
		Timeline:    arrangeTimeline,
		Pyramid:     arrangePyramid,
	}
}

// Render builds the section for desc and variant in the given mode.
// slot is called exactly once for every index below SlotCount.
func Render(desc Descriptor, variant Variant, mode ViewMode, slot SlotFunc) (*vdom.VNode, error) {
	arrange, ok := arrangers[desc.ID]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLayout, desc.ID)
	}
	count, err := SlotCount(desc.ID, variant)
	if err != nil {
		return nil, err
	}
	if mode == "" {
		mode = Desktop
	}
	if slot == nil {
		slot = func(int) *vdom.VNode { return nil }
	}

	body := arrange(arrangement{variant: variant, mode: mode, slot: slot, count: count})

	return vdom.Section(
		vdom.Class(mode.ContainerClasses()),
		vdom.Data("layout", desc.ID),
		vdom.Data("variant", variant.ID),
		body,
	), nil
}

const gap = "gap-6"

func arrangeClassic(a arrangement) *vdom.VNode {
	return vdom.Div(
		vdom.Class("grid", gap, a.mode.GridClasses(a.variant.Cols)),
		vdom.Times(a.count, func(i int) *vdom.VNode {
			return a.cell(i, "min-h-48")
		}),
	)
}

func arrangeHero(a arrangement) *vdom.VNode {
	if a.mobile() {
		return vdom.Div(
			vdom.Class("grid grid-cols-1", gap),
			vdom.Times(a.count, func(i int) *vdom.VNode { return a.cell(i) }),
		)
	}

	switch a.variant.Arrangement {
	case "hero-six":
		return vdom.Div(vdom.Class("space-y-6"),
			a.cell(0, "min-h-72"),
			vdom.Div(vdom.Class("grid", gap, a.mode.GridClasses(3)),
				vdom.Times(6, func(i int) *vdom.VNode { return a.cell(i + 1) }),
			),
		)
	case "hero-side":
		return vdom.Div(vdom.Class("grid grid-cols-3", gap),
			a.cell(0, "col-span-2 min-h-96"),
			vdom.Div(vdom.Class("flex flex-col", gap),
				vdom.Times(3, func(i int) *vdom.VNode { return a.cell(i+1, "flex-1") }),
			),
		)
	case "dual-hero":
		return vdom.Div(vdom.Class("space-y-6"),
			vdom.Div(vdom.Class("grid grid-cols-2", gap),
				a.cell(0, "min-h-72"),
				a.cell(1, "min-h-72"),
			),
			vdom.Div(vdom.Class("grid", gap, a.mode.GridClasses(4)),
				vdom.Times(4, func(i int) *vdom.VNode { return a.cell(i + 2) }),
			),
		)
	default: // hero-quad
		return vdom.Div(vdom.Class("grid grid-cols-3", gap),
			a.cell(0, "col-span-2 row-span-2 min-h-96"),
			vdom.Div(vdom.Class("grid grid-cols-1", gap),
				a.cell(1), a.cell(2),
			),
			vdom.Div(vdom.Class("col-span-3 grid grid-cols-2", gap),
				a.cell(3), a.cell(4),
			),
		)
	}
}

var masonryHeights = []string{"min-h-48", "min-h-56", "min-h-52", "min-h-60", "min-h-44", "min-h-64"}

func arrangeMasonry(a arrangement) *vdom.VNode {
	cols := a.variant.Cols
	if a.variant.AutoCols || cols == 0 {
		cols = 3
	}
	return vdom.Div(
		vdom.Class(fmt.Sprintf("columns-%d", a.mode.Columns(cols)), gap),
		vdom.Times(a.count, func(i int) *vdom.VNode {
			return a.cell(i, "break-inside-avoid mb-6", masonryHeights[i%len(masonryHeights)])
		}),
	)
}

func arrangeZigzag(a arrangement) *vdom.VNode {
	return vdom.Div(vdom.Class("space-y-16"),
		vdom.Times(a.count, func(i int) *vdom.VNode {
			row := "flex items-center gap-12"
			switch {
			case a.mobile():
				row = "flex flex-col gap-6"
			case i%2 == 1:
				row += " flex-row-reverse"
			}
			return vdom.Div(vdom.Class(row),
				a.cell(i, "flex-1"),
				vdom.If(!a.mobile(), vdom.Div(
					vdom.Class("w-40 h-40 flex-shrink-0 rounded-lg border border-gray-200 bg-gray-50"),
					vdom.AriaHidden(true),
				)),
			)
		}),
	)
}

func arrangeCarousel(a arrangement) *vdom.VNode {
	basis := "basis-72"
	if !a.variant.AutoVisible {
		visible := a.variant.Visible
		if visible == 0 {
			visible = 3
		}
		basis = fmt.Sprintf("basis-1/%d", a.mode.Columns(visible))
	}
	if a.mobile() {
		basis = "basis-full"
	}

	nav := func(label, text string) *vdom.VNode {
		return vdom.Button(
			vdom.Class("rounded-full border border-gray-200 px-3 py-1 text-sm"),
			vdom.Type("button"),
			vdom.AriaLabel(label),
			text,
		)
	}

	return vdom.Div(
		vdom.Class("relative"),
		vdom.If(a.variant.Infinite, vdom.Span(vdom.Data("infinite", "true"), vdom.Class("sr-only"), "Loops")),
		vdom.Div(vdom.Class("flex overflow-x-auto snap-x", gap),
			vdom.Times(a.count, func(i int) *vdom.VNode {
				return a.cell(i, "shrink-0 snap-start", basis)
			}),
		),
		vdom.Div(vdom.Class("mt-4 flex justify-center gap-2"),
			nav("Previous", "‹"),
			nav("Next", "›"),
		),
	)
}

func arrangeBento(a arrangement) *vdom.VNode {
	if a.mobile() {
		return vdom.Div(
			vdom.Class("grid grid-cols-1", gap),
			vdom.Times(a.count, func(i int) *vdom.VNode { return a.cell(i, "min-h-48") }),
		)
	}

	var grid string
	var spans []string
	switch a.variant.Arrangement {
	case "spotlight":
		grid = "grid grid-cols-4 grid-rows-2"
		spans = []string{"col-span-2 row-span-2", "", "", "", ""}
	case "sidebar":
		grid = "grid grid-cols-3 grid-rows-4"
		spans = []string{"row-span-4", "col-span-2", "col-span-2", "col-span-2", "col-span-2"}
	default: // mixed
		grid = "grid grid-cols-4 grid-rows-3"
		spans = []string{"col-span-2 row-span-2", "", "row-span-2", "", "col-span-2", ""}
	}

	return vdom.Div(vdom.Class(grid, gap),
		vdom.Times(a.count, func(i int) *vdom.VNode {
			return a.cell(i, spans[i])
		}),
	)
}

func arrangeTimeline(a arrangement) *vdom.VNode {
	align := a.variant.Alignment
	if align == "" || a.mobile() {
		align = "left"
	}

	line := "absolute left-4 top-0 h-full w-px bg-gray-200"
	if align != "left" {
		line = "absolute left-1/2 top-0 h-full w-px bg-gray-200"
	}

	return vdom.Div(vdom.Class("relative space-y-12"),
		vdom.Div(vdom.Class(line), vdom.AriaHidden(true)),
		vdom.Times(a.count, func(i int) *vdom.VNode {
			var row, item string
			switch {
			case align == "left":
				row, item = "relative pl-12", ""
			case align == "alternating" && i%2 == 1:
				row, item = "relative flex justify-end", "w-5/12"
			case align == "alternating":
				row, item = "relative flex justify-start", "w-5/12"
			default: // center
				row, item = "relative flex justify-center", "w-1/2"
			}
			return vdom.Div(vdom.Class(row),
				vdom.Span(vdom.Class("absolute top-6 h-3 w-3 rounded-full bg-primary"), vdom.AriaHidden(true)),
				a.cell(i, item),
			)
		}),
	)
}

func arrangePyramid(a arrangement) *vdom.VNode {
	levels := pyramidLevels(a.variant)
	rows := make([]*vdom.VNode, 0, levels)
	next := 0
	for level := 0; level < levels; level++ {
		n := level + 1
		if a.variant.Inverted {
			n = levels - level
		}
		cells := make([]*vdom.VNode, 0, n)
		for j := 0; j < n; j++ {
			cells = append(cells, a.cell(next, "flex-1"))
			next++
		}
		rowClass := "flex justify-center " + gap
		if a.mobile() {
			rowClass = "flex flex-col " + gap
		}
		rows = append(rows, vdom.Div(
			vdom.Class(rowClass),
			vdom.Data("level", strconv.Itoa(level)),
			cells,
		))
	}
	return vdom.Div(vdom.Class("space-y-6"), rows)
}
