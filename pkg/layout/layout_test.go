package layout

import (
	"errors"
	"strconv"
	"testing"

	"github.com/vango-dev/featuregrid/pkg/vdom"
)

// testLayouts mirrors the built-in catalog's variants.
var testLayouts = []Descriptor{
	{ID: ClassicGrid, Variants: []Variant{
		{ID: "2x2", Cols: 2, Rows: 2, Items: 4},
		{ID: "3x2", Cols: 3, Rows: 2, Items: 6},
		{ID: "4x2", Cols: 4, Rows: 2, Items: 8},
		{ID: "3x3", Cols: 3, Rows: 3},
	}},
	{ID: HeroGrid, Variants: []Variant{
		{ID: "hero-4", Arrangement: "hero-quad"},
		{ID: "hero-6", Arrangement: "hero-six"},
		{ID: "hero-sidebar", Arrangement: "hero-side"},
		{ID: "dual-hero", Arrangement: "dual-hero"},
	}},
	{ID: Masonry, Variants: []Variant{
		{ID: "masonry-2", Cols: 2},
		{ID: "masonry-auto", AutoCols: true},
	}},
	{ID: Zigzag, Variants: []Variant{
		{ID: "zigzag-standard", Items: 4},
		{ID: "zigzag-compact", Items: 6},
		{ID: "zigzag-wide", Items: 3},
	}},
	{ID: Carousel, Variants: []Variant{
		{ID: "carousel-3", Visible: 3},
		{ID: "carousel-auto", AutoVisible: true},
		{ID: "carousel-infinite", Visible: 3, Infinite: true},
	}},
	{ID: Bento, Variants: []Variant{
		{ID: "bento-mixed", Arrangement: "mixed"},
		{ID: "bento-spotlight", Arrangement: "spotlight"},
		{ID: "bento-sidebar", Arrangement: "sidebar"},
	}},
	{ID: Timeline, Variants: []Variant{
		{ID: "timeline-center", Alignment: "center"},
		{ID: "timeline-left", Alignment: "left"},
		{ID: "timeline-alternating", Alignment: "alternating"},
	}},
	{ID: Pyramid, Variants: []Variant{
		{ID: "pyramid-3", Levels: 3},
		{ID: "pyramid-4", Levels: 4},
		{ID: "inverted-pyramid", Levels: 3, Inverted: true},
	}},
}

func TestSlotCount(t *testing.T) {
	want := map[string]int{
		"2x2": 4, "3x2": 6, "4x2": 8, "3x3": 9,
		"hero-4": 5, "hero-6": 7, "hero-sidebar": 4, "dual-hero": 6,
		"masonry-2": 8, "masonry-auto": 8,
		"zigzag-standard": 4, "zigzag-compact": 6, "zigzag-wide": 3,
		"carousel-3": 6, "carousel-auto": 6, "carousel-infinite": 6,
		"bento-mixed": 6, "bento-spotlight": 5, "bento-sidebar": 5,
		"timeline-center": 4, "timeline-left": 4, "timeline-alternating": 4,
		"pyramid-3": 6, "pyramid-4": 10, "inverted-pyramid": 6,
	}

	for _, l := range testLayouts {
		for _, v := range l.Variants {
			got, err := SlotCount(l.ID, v)
			if err != nil {
				t.Fatalf("SlotCount(%s, %s) error = %v", l.ID, v.ID, err)
			}
			if got != want[v.ID] {
				t.Errorf("SlotCount(%s, %s) = %d, want %d", l.ID, v.ID, got, want[v.ID])
			}
		}
	}
}

func TestSlotCountUnknownLayout(t *testing.T) {
	_, err := SlotCount("spiral", Variant{})
	if !errors.Is(err, ErrUnknownLayout) {
		t.Errorf("SlotCount() error = %v, want ErrUnknownLayout", err)
	}
}

func TestRenderCallsEverySlotOnce(t *testing.T) {
	for _, l := range testLayouts {
		for _, v := range l.Variants {
			for _, mode := range ViewModes {
				t.Run(v.ID+"/"+string(mode), func(t *testing.T) {
					calls := map[int]int{}
					node, err := Render(l, v, mode, func(i int) *vdom.VNode {
						calls[i]++
						return vdom.Span(vdom.Data("card", strconv.Itoa(i)))
					})
					if err != nil {
						t.Fatalf("Render() error = %v", err)
					}

					count, _ := SlotCount(l.ID, v)
					if len(calls) != count {
						t.Errorf("slot called for %d indexes, want %d", len(calls), count)
					}
					for i := 0; i < count; i++ {
						if calls[i] != 1 {
							t.Errorf("slot(%d) called %d times", i, calls[i])
						}
						if vdom.Find(node, vdom.ByData("card", strconv.Itoa(i))) == nil {
							t.Errorf("slot %d content missing from tree", i)
						}
					}

					if got, _ := node.Attr("data-layout"); got != l.ID {
						t.Errorf("data-layout = %q, want %q", got, l.ID)
					}
					if !node.HasClass("mx-auto") {
						t.Errorf("section should carry container classes for %s", mode)
					}
				})
			}
		}
	}
}

func TestRenderUnknownLayout(t *testing.T) {
	_, err := Render(Descriptor{ID: "spiral"}, Variant{}, Desktop, nil)
	if !errors.Is(err, ErrUnknownLayout) {
		t.Errorf("Render() error = %v, want ErrUnknownLayout", err)
	}
}

func TestRenderNilSlot(t *testing.T) {
	node, err := Render(testLayouts[0], testLayouts[0].Variants[0], "", nil)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if cells := vdom.FindAll(node, func(n *vdom.VNode) bool {
		_, ok := n.Attr("data-slot")
		return ok
	}); len(cells) != 4 {
		t.Errorf("got %d cells, want 4", len(cells))
	}
}

func TestPyramidRows(t *testing.T) {
	tests := []struct {
		variant Variant
		want    []int
	}{
		{Variant{ID: "p3", Levels: 3}, []int{1, 2, 3}},
		{Variant{ID: "p4", Levels: 4}, []int{1, 2, 3, 4}},
		{Variant{ID: "inv", Levels: 3, Inverted: true}, []int{3, 2, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.variant.ID, func(t *testing.T) {
			node, err := Render(Descriptor{ID: Pyramid}, tt.variant, Desktop, nil)
			if err != nil {
				t.Fatalf("Render() error = %v", err)
			}
			for level, want := range tt.want {
				row := vdom.Find(node, vdom.ByData("level", strconv.Itoa(level)))
				if row == nil {
					t.Fatalf("level %d missing", level)
				}
				if len(row.Children) != want {
					t.Errorf("level %d has %d cells, want %d", level, len(row.Children), want)
				}
			}
		})
	}
}

func TestZigzagAlternates(t *testing.T) {
	desc := Descriptor{ID: Zigzag}
	node, _ := Render(desc, Variant{Items: 4}, Desktop, nil)

	rows := node.Children[0].Children
	for i, row := range rows {
		reversed := row.HasClass("flex-row-reverse")
		if reversed != (i%2 == 1) {
			t.Errorf("row %d reversed = %v", i, reversed)
		}
	}

	node, _ = Render(desc, Variant{Items: 4}, Mobile, nil)
	for i, row := range node.Children[0].Children {
		if !row.HasClass("flex-col") {
			t.Errorf("mobile row %d should stack", i)
		}
	}
}

func TestViewModeClasses(t *testing.T) {
	tests := []struct {
		mode ViewMode
		cols int
		want string
	}{
		{Mobile, 4, "grid-cols-1"},
		{Tablet, 1, "grid-cols-1"},
		{Tablet, 2, "grid-cols-2"},
		{Tablet, 4, "grid-cols-2"},
		{Desktop, 3, "grid-cols-3"},
		{Desktop, 6, "grid-cols-4"},
		{Desktop, 0, "grid-cols-1"},
	}

	for _, tt := range tests {
		if got := tt.mode.GridClasses(tt.cols); got != tt.want {
			t.Errorf("%s.GridClasses(%d) = %q, want %q", tt.mode, tt.cols, got, tt.want)
		}
	}
}

func TestParseViewMode(t *testing.T) {
	for _, m := range ViewModes {
		got, err := ParseViewMode(string(m))
		if err != nil || got != m {
			t.Errorf("ParseViewMode(%q) = %q, %v", m, got, err)
		}
	}
	if _, err := ParseViewMode("watch"); err == nil {
		t.Error("ParseViewMode(watch) should fail")
	}
}

func TestFindAndVariant(t *testing.T) {
	l, ok := Find(testLayouts, Bento)
	if !ok {
		t.Fatal("Find(bento) failed")
	}
	if l.DefaultVariant().ID != "bento-mixed" {
		t.Errorf("DefaultVariant() = %q", l.DefaultVariant().ID)
	}
	if v, ok := l.Variant("bento-sidebar"); !ok || v.Arrangement != "sidebar" {
		t.Errorf("Variant(bento-sidebar) = %+v, %v", v, ok)
	}
	if _, ok := l.Variant("3x2"); ok {
		t.Error("Variant should not find another layout's variant")
	}
	if _, ok := Find(testLayouts, "spiral"); ok {
		t.Error("Find(spiral) should fail")
	}
	if !Known(Timeline) || Known("spiral") {
		t.Error("Known() mismatch")
	}
}
