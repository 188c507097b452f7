package codegen

import (
	"strings"
	"testing"
)

func TestGenerate(t *testing.T) {
	src, err := Generate(Selection{
		Layout:    "classic-grid",
		Variant:   "3x2",
		GridClass: "grid-cols-3",
		Slots: []Slot{
			{"interactive", "flip-card"},
			{"data-viz", "performance-meter"},
			{"interactive", "flip-card"},
		},
	})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	for _, want := range []string{
		"// Generated feature grid: classic-grid / 3x2",
		`import { FlipCard } from "@/components/cards/interactive/flip-card";`,
		`import { PerformanceMeter } from "@/components/cards/data-viz/performance-meter";`,
		`<section className="max-w-6xl mx-auto px-8 py-16">`,
		`<div className="grid grid-cols-3 gap-6">`,
		"<FlipCard /> {/* slot 0: interactive/flip-card */}",
		"<FlipCard /> {/* slot 2: interactive/flip-card */}",
	} {
		if !strings.Contains(src, want) {
			t.Errorf("output missing %q:\n%s", want, src)
		}
	}

	if n := strings.Count(src, "import { FlipCard }"); n != 1 {
		t.Errorf("FlipCard imported %d times", n)
	}
	if strings.Index(src, "data-viz/performance-meter") > strings.Index(src, "interactive/flip-card") {
		t.Error("imports should be sorted by path")
	}
}

func TestGenerateDarkAndDefaults(t *testing.T) {
	src, err := Generate(Selection{Layout: "zigzag", Variant: "zigzag-standard", Dark: true})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(src, "bg-gray-900 text-white") {
		t.Error("dark section classes missing")
	}
	if !strings.Contains(src, "grid grid-cols-1 gap-6") {
		t.Error("empty grid class should default to one column")
	}
}

func TestComponentName(t *testing.T) {
	tests := map[string]string{
		"flip-card":         "FlipCard",
		"pricing_calc":      "PricingCalc",
		"3d-tilt":           "Card3dTilt",
		"":                  "UnknownCard",
		"<script>":          "Script",
		"user avatars":      "UserAvatars",
		"achievement-badge": "AchievementBadge",
	}
	for in, want := range tests {
		if got := componentName(in); got != want {
			t.Errorf("componentName(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestImportPathSanitized(t *testing.T) {
	s := Slot{Category: "Demo", Name: `x"/../y`}
	if got := s.ImportPath(); got != "@/components/cards/demo/x-----y" {
		t.Errorf("ImportPath() = %q", got)
	}
}

func TestHighlight(t *testing.T) {
	html, err := Highlight(`const x = "y";`, "javascript")
	if err != nil {
		t.Fatalf("Highlight() error = %v", err)
	}
	if !strings.HasPrefix(html, "<pre") {
		t.Errorf("expected <pre> wrapper, got %q", html)
	}
	if !strings.Contains(html, "style=") {
		t.Error("styles should be inlined")
	}
	if !strings.Contains(html, "&#34;y&#34;") && !strings.Contains(html, "&quot;y&quot;") {
		t.Errorf("string literal not escaped: %q", html)
	}
}

func TestHighlightUnknownLanguage(t *testing.T) {
	html, err := Highlight("<b>plain</b>", "no-such-language")
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(html, "<b>") {
		t.Errorf("source must be escaped: %q", html)
	}
}
