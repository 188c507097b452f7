package ui

import (
	"testing"

	"github.com/vango-dev/featuregrid/pkg/vdom"
)

func TestCN(t *testing.T) {
	tests := []struct {
		in   []string
		want string
	}{
		{[]string{"a b", "", "c"}, "a b c"},
		{[]string{"a  b", "b a"}, "a b"},
		{nil, ""},
	}
	for _, tt := range tests {
		if got := CN(tt.in...); got != tt.want {
			t.Errorf("CN(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestButtonOptions(t *testing.T) {
	clicked := false
	b := Button(Outline(), Sm(), WithLabel("Flip"), WithPressed(true), WithOnClick(func() { clicked = true }), WithChildren("Go"))

	if !b.HasClass("border-input") || !b.HasClass("h-9") {
		t.Errorf("variant/size classes missing: %v", b.Props["class"])
	}
	if label, _ := b.Attr("aria-label"); label != "Flip" {
		t.Errorf("aria-label = %q", label)
	}
	if b.Props["aria-pressed"] != true {
		t.Errorf("aria-pressed = %v", b.Props["aria-pressed"])
	}
	h, ok := b.Props["onclick"].(func())
	if !ok {
		t.Fatal("click handler missing")
	}
	h()
	if !clicked {
		t.Error("handler not invoked")
	}
	if b.TextContent() != "Go" {
		t.Errorf("text = %q", b.TextContent())
	}
}

func TestButtonDisabledDropsHandler(t *testing.T) {
	b := Button(WithDisabled(true), WithOnClick(func() {}))
	if b.IsInteractive() {
		t.Error("disabled button should not be interactive")
	}
	if b.Props["disabled"] != true {
		t.Error("disabled attribute missing")
	}
}

func TestProgressClamps(t *testing.T) {
	tests := []struct {
		value, max int
		width      string
		now        int
	}{
		{87, 100, "width: 87%", 87},
		{150, 100, "width: 100%", 100},
		{-3, 100, "width: 0%", 0},
		{3, 4, "width: 75%", 3},
		{10, 0, "width: 10%", 10},
	}
	for _, tt := range tests {
		p := Progress(ProgressValue(tt.value), ProgressMax(tt.max))
		if p.Props["aria-valuenow"] != tt.now {
			t.Errorf("value %d/%d: aria-valuenow = %v, want %d", tt.value, tt.max, p.Props["aria-valuenow"], tt.now)
		}
		bar := p.Children[0]
		if style, _ := bar.Attr("style"); style != tt.width {
			t.Errorf("value %d/%d: style = %q, want %q", tt.value, tt.max, style, tt.width)
		}
	}
}

func TestSwitchState(t *testing.T) {
	on := Switch(true, "Annual", func() {})
	if state, _ := on.Attr("data-state"); state != "checked" {
		t.Errorf("state = %q", state)
	}
	if v, _ := on.Attr("aria-checked"); v != "true" {
		t.Errorf("aria-checked = %q", v)
	}
	off := Switch(false, "Annual", nil)
	if off.IsInteractive() {
		t.Error("switch without handler should not be interactive")
	}
}

func TestSlider(t *testing.T) {
	var got string
	s := Slider(50, 1, 200, "Users", func(v string) { got = v })
	for key, want := range map[string]string{"type": "range", "min": "1", "max": "200", "value": "50"} {
		if v, _ := s.Attr(key); v != want {
			t.Errorf("%s = %q, want %q", key, v, want)
		}
	}
	s.Props["oninput"].(func(string))("120")
	if got != "120" {
		t.Errorf("got %q", got)
	}
}

func TestIcon(t *testing.T) {
	icon := Icon("arrow-right", "h-4 w-4")
	if icon.Tag != "svg" {
		t.Fatalf("tag = %q", icon.Tag)
	}
	if len(icon.Children) != 2 {
		t.Errorf("paths = %d, want 2", len(icon.Children))
	}
	if class, _ := icon.Attr("class"); class != "h-5 w-5 h-4 w-4" {
		t.Errorf("class = %q", class)
	}
	if n := len(vdom.FindAll(Icon("nope"), func(n *vdom.VNode) bool { return n.Tag == "path" })); n != 0 {
		t.Errorf("unknown icon paths = %d", n)
	}
	if !HasIcon("zap") || HasIcon("nope") {
		t.Error("HasIcon mismatch")
	}
}

func TestAccentFor(t *testing.T) {
	a := AccentFor("")
	if a.Solid != "bg-blue-500" || a.Text != "text-blue-600" {
		t.Errorf("default accent = %+v", a)
	}
	if AccentFor("purple").Soft != "bg-purple-100" {
		t.Error("purple soft class")
	}
}
