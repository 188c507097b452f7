package catalog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vango-dev/featuregrid/internal/errors"
	"github.com/vango-dev/featuregrid/pkg/cards"
	"github.com/vango-dev/featuregrid/pkg/layout"
)

func TestLoadEmbedded(t *testing.T) {
	cat, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if len(cat.Layouts) != 8 {
		t.Errorf("layouts = %d, want 8", len(cat.Layouts))
	}
	if len(cat.Categories) != 7 {
		t.Errorf("categories = %d, want 7", len(cat.Categories))
	}
	if n := len(cat.Entries()); n != 22 {
		t.Errorf("cards = %d, want 22", n)
	}
	if len(cat.Themes) != 4 {
		t.Errorf("themes = %d, want 4", len(cat.Themes))
	}

	for _, l := range cat.Layouts {
		if !layout.Known(l.ID) {
			t.Errorf("layout %q has no arranger", l.ID)
		}
		if !strings.Contains(l.Guide, "<p>") {
			t.Errorf("layout %q guide not rendered to HTML: %q", l.ID, l.Guide)
		}
		for _, v := range l.Variants {
			if _, err := layout.SlotCount(l.ID, v); err != nil {
				t.Errorf("SlotCount(%s, %s) error = %v", l.ID, v.ID, err)
			}
		}
	}
}

func TestLoadUnionAttributes(t *testing.T) {
	cat, err := Load()
	if err != nil {
		t.Fatal(err)
	}

	masonry, ok := cat.Layout("masonry")
	if !ok {
		t.Fatal("masonry missing")
	}
	auto, _ := masonry.Variant("masonry-auto")
	if !auto.AutoCols || auto.Cols != 0 {
		t.Errorf("masonry-auto = %+v, want AutoCols", auto)
	}
	three, _ := masonry.Variant("masonry-3")
	if three.AutoCols || three.Cols != 3 {
		t.Errorf("masonry-3 = %+v, want Cols 3", three)
	}

	carousel, _ := cat.Layout("carousel")
	inf, _ := carousel.Variant("carousel-infinite")
	if inf.Visible != 3 || !inf.Infinite {
		t.Errorf("carousel-infinite = %+v", inf)
	}
	autoVis, _ := carousel.Variant("carousel-auto")
	if !autoVis.AutoVisible {
		t.Errorf("carousel-auto = %+v, want AutoVisible", autoVis)
	}

	pyramid, _ := cat.Layout("pyramid")
	inv, _ := pyramid.Variant("inverted-pyramid")
	if inv.Levels != 3 || !inv.Inverted {
		t.Errorf("inverted-pyramid = %+v", inv)
	}
}

func TestLookups(t *testing.T) {
	cat, err := Load()
	if err != nil {
		t.Fatal(err)
	}

	card, ok := cat.Card("interactive", "pricing-calculator")
	if !ok || card.Preview != "50 users = $25/month" {
		t.Errorf("Card() = %+v, %v", card, ok)
	}
	if _, ok := cat.Card("interactive", "nonexistent"); ok {
		t.Error("unknown card found")
	}
	if _, ok := cat.Card("nope", "flip-card"); ok {
		t.Error("unknown category found")
	}

	theme, ok := cat.Theme("purple")
	if !ok || theme.Swatch() != "bg-purple-500" {
		t.Errorf("Theme(purple) = %+v, %v", theme, ok)
	}
	if _, ok := cat.Category("contextual"); !ok {
		t.Error("contextual category missing")
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		code string
	}{
		{
			name: "syntax error",
			src:  `layout "classic-grid" {`,
			code: "E201",
		},
		{
			name: "missing required attribute",
			src:  `layout "classic-grid" { variant "2x2" {} }`,
			code: "E201",
		},
		{
			name: "duplicate layout",
			src: `
layout "zigzag" {
  name = "A"
  variant "z" { name = "z" }
}
layout "zigzag" {
  name = "B"
  variant "z" { name = "z" }
}`,
			code: "E202",
		},
		{
			name: "duplicate card",
			src: `
category "interactive" {
  name = "Interactive"
  card "flip-card" { name = "A" }
  card "flip-card" { name = "B" }
}`,
			code: "E202",
		},
		{
			name: "no variants",
			src:  `layout "zigzag" { name = "Zigzag" }`,
			code: "E203",
		},
		{
			name: "unknown layout",
			src: `
layout "spiral" {
  name = "Spiral"
  variant "s" { name = "s" }
}`,
			code: "E204",
		},
		{
			name: "cols not auto",
			src: `
layout "masonry" {
  name = "Masonry"
  variant "m" {
    name = "m"
    cols = "wide"
  }
}`,
			code: "E205",
		},
		{
			name: "cols zero",
			src: `
layout "masonry" {
  name = "Masonry"
  variant "m" {
    name = "m"
    cols = 0
  }
}`,
			code: "E205",
		},
		{
			name: "fractional visible",
			src: `
layout "carousel" {
  name = "Carousel"
  variant "c" {
    name    = "c"
    visible = 2.5
  }
}`,
			code: "E205",
		},
		{
			name: "negative levels",
			src: `
layout "pyramid" {
  name = "Pyramid"
  variant "p" {
    name   = "p"
    levels = -1
  }
}`,
			code: "E205",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.src), "test.hcl")
			if err == nil {
				t.Fatal("expected error")
			}
			if got := errors.Code(err); got != tt.code {
				t.Errorf("code = %q, want %q (%v)", got, tt.code, err)
			}
		})
	}
}

func TestParseErrorLocation(t *testing.T) {
	src := `
layout "masonry" {
  name = "Masonry"
  variant "m" {
    name = "m"
    cols = "wide"
  }
}`
	_, err := Parse([]byte(src), "test.hcl")
	var e *errors.Error
	if !asError(err, &e) {
		t.Fatalf("error %T is not *errors.Error", err)
	}
	if e.Location == nil || e.Location.Line != 6 {
		t.Errorf("location = %+v, want line 6", e.Location)
	}
}

func asError(err error, target **errors.Error) bool {
	e, ok := err.(*errors.Error)
	if ok {
		*target = e
	}
	return ok
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.hcl")
	src := `
layout "timeline" {
  name  = "Timeline"
  guide = "Read *top* to bottom."
  variant "timeline-left" {
    name      = "Left"
    alignment = "left"
  }
}

category "interactive" {
  name = "Interactive"
  card "flip-card" { name = "Flip Card" }
  card "confetti" { name = "Confetti" }
}

theme "teal" {
  name = "Teal"
}
`
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}

	cat, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if got := cat.Layouts[0].Guide; !strings.Contains(got, "<em>top</em>") {
		t.Errorf("guide = %q", got)
	}
	if cat.Themes[0].Color != "teal" {
		t.Errorf("theme color should default to its id, got %q", cat.Themes[0].Color)
	}

	reg, err := NewRegistry()
	if err != nil {
		t.Fatal(err)
	}
	missing := Missing(cat, reg)
	if len(missing) != 1 || missing[0] != (cards.Entry{Category: "interactive", Name: "confetti"}) {
		t.Errorf("Missing() = %v", missing)
	}

	if _, err := LoadFile(filepath.Join(dir, "absent.hcl")); errors.Code(err) != "E201" {
		t.Errorf("missing file error = %v, want E201", err)
	}
}

func TestLoadOrEmbedded(t *testing.T) {
	cat, err := LoadOrEmbedded("")
	if err != nil {
		t.Fatal(err)
	}
	if len(cat.Layouts) != 8 {
		t.Errorf("layouts = %d", len(cat.Layouts))
	}
}

func TestRegistryCoversCatalog(t *testing.T) {
	cat, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	reg, err := NewRegistry()
	if err != nil {
		t.Fatal(err)
	}

	if missing := Missing(cat, reg); len(missing) != 0 {
		t.Errorf("catalog cards without renderer: %v", missing)
	}
	if reg.Len() != 22 {
		t.Errorf("Len() = %d, want 22", reg.Len())
	}
	if got := reg.Categories(); len(got) != 7 {
		t.Errorf("Categories() = %v", got)
	}
}

func TestNewRegistryReject(t *testing.T) {
	reg, err := NewRegistry(cards.WithDuplicatePolicy(cards.Reject))
	if err != nil {
		t.Fatalf("built-ins must not collide: %v", err)
	}
	if reg.Policy() != cards.Reject {
		t.Error("policy not applied")
	}
}

func TestDeclareCategories(t *testing.T) {
	cat, err := Parse([]byte(`category "labs" { name = "Labs" }`), "labs.hcl")
	if err != nil {
		t.Fatal(err)
	}
	reg, err := NewRegistry()
	if err != nil {
		t.Fatal(err)
	}
	if err := DeclareCategories(cat, reg); err != nil {
		t.Fatal(err)
	}
	if !reg.HasCategory("labs") {
		t.Error("labs should be declared")
	}
	if names := reg.Names("labs"); len(names) != 0 {
		t.Errorf("Names(labs) = %v", names)
	}
}
