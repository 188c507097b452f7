package cards

import (
	"errors"
	"reflect"
	"sync"
	"testing"

	"github.com/vango-dev/featuregrid/pkg/vdom"
)

func textCard(s string) Card {
	return CardFunc(func(Props) *vdom.VNode { return vdom.Div(s) })
}

func mustRegister(t *testing.T, reg *Registry, category, name string, card Card) {
	t.Helper()
	if err := reg.Register(category, name, card); err != nil {
		t.Fatalf("Register(%q, %q) error = %v", category, name, err)
	}
}

func TestRegisterAndGet(t *testing.T) {
	reg := NewRegistry()

	if err := reg.Register("interactive", "flip-card", textCard("flip")); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	card, ok := reg.Get("interactive", "flip-card")
	if !ok {
		t.Fatal("Get() should find registered card")
	}
	if got := card.Render(Props{}).TextContent(); got != "flip" {
		t.Errorf("Render() text = %q, want %q", got, "flip")
	}

	if _, ok := reg.Get("interactive", "missing"); ok {
		t.Error("Get() should not find unregistered name")
	}
	if _, ok := reg.Get("missing", "flip-card"); ok {
		t.Error("Get() should not find unregistered category")
	}
}

func TestRegisterValidation(t *testing.T) {
	reg := NewRegistry()

	tests := []struct {
		name     string
		category string
		card     string
		value    Card
		wantErr  error
	}{
		{"empty category", "", "flip-card", textCard("x"), ErrInvalidKey},
		{"empty name", "interactive", "", textCard("x"), ErrInvalidKey},
		{"space in name", "interactive", "flip card", textCard("x"), ErrInvalidKey},
		{"slash in category", "a/b", "x", textCard("x"), ErrInvalidKey},
		{"nil card", "interactive", "flip-card", nil, ErrNilCard},
		{"underscore and digits", "data_viz2", "meter-1", textCard("x"), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := reg.Register(tt.category, tt.card, tt.value)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Register() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestRegisterOverwrite(t *testing.T) {
	reg := NewRegistry()

	mustRegister(t, reg, "demo", "video", textCard("old"))
	if err := reg.Register("demo", "video", textCard("new")); err != nil {
		t.Fatalf("Register() overwrite error = %v", err)
	}

	card, _ := reg.Get("demo", "video")
	if got := card.Render(Props{}).TextContent(); got != "new" {
		t.Errorf("last write should win, got %q", got)
	}
	if reg.Len() != 1 {
		t.Errorf("Len() = %d, want 1", reg.Len())
	}
}

func TestRegisterReject(t *testing.T) {
	reg := NewRegistry(WithDuplicatePolicy(Reject))

	mustRegister(t, reg, "demo", "video", textCard("old"))
	err := reg.Register("demo", "video", textCard("new"))
	if !errors.Is(err, ErrDuplicate) {
		t.Fatalf("Register() error = %v, want ErrDuplicate", err)
	}

	card, _ := reg.Get("demo", "video")
	if got := card.Render(Props{}).TextContent(); got != "old" {
		t.Errorf("rejected registration must keep old card, got %q", got)
	}
}

func TestParseDuplicatePolicy(t *testing.T) {
	tests := []struct {
		in      string
		want    DuplicatePolicy
		wantErr bool
	}{
		{"", Overwrite, false},
		{"overwrite", Overwrite, false},
		{"reject", Reject, false},
		{"ignore", Overwrite, true},
	}

	for _, tt := range tests {
		got, err := ParseDuplicatePolicy(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseDuplicatePolicy(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseDuplicatePolicy(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
	if Reject.String() != "reject" {
		t.Errorf("Reject.String() = %q", Reject.String())
	}
}

func TestDiscovery(t *testing.T) {
	reg := NewRegistry()
	mustRegister(t, reg, "interactive", "toggle-comparison", textCard("t"))
	mustRegister(t, reg, "interactive", "flip-card", textCard("f"))
	mustRegister(t, reg, "data-viz", "performance-meter", textCard("p"))
	if err := reg.AddCategory("demo"); err != nil {
		t.Fatalf("AddCategory() error = %v", err)
	}

	if got, want := reg.Categories(), []string{"data-viz", "demo", "interactive"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Categories() = %v, want %v", got, want)
	}
	if got, want := reg.Names("interactive"), []string{"flip-card", "toggle-comparison"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}
	if got := reg.Names("demo"); len(got) != 0 {
		t.Errorf("Names(demo) = %v, want empty", got)
	}
	if !reg.HasCategory("demo") || reg.HasCategory("social-proof") {
		t.Error("HasCategory() mismatch")
	}

	want := []Entry{
		{"data-viz", "performance-meter"},
		{"interactive", "flip-card"},
		{"interactive", "toggle-comparison"},
	}
	if got := reg.Entries(); !reflect.DeepEqual(got, want) {
		t.Errorf("Entries() = %v, want %v", got, want)
	}
	if reg.Len() != 3 {
		t.Errorf("Len() = %d, want 3", reg.Len())
	}
}

func TestSuggest(t *testing.T) {
	reg := NewRegistry()
	mustRegister(t, reg, "interactive", "flip-card", textCard("f"))
	mustRegister(t, reg, "interactive", "pricing-calculator", textCard("p"))
	mustRegister(t, reg, "demo", "video-demo", textCard("v"))

	tests := []struct {
		category string
		name     string
		want     string
	}{
		{"interactive", "flip-crad", "interactive/flip-card"},
		{"interactive", "pricing-calculater", "interactive/pricing-calculator"},
		{"interactive", "video-demo", "demo/video-demo"},
		{"demos", "video-demo", "demo/video-demo"},
		{"interactive", "nonexistent", ""},
		{"interactive", "", ""},
	}

	for _, tt := range tests {
		if got := reg.Suggest(tt.category, tt.name); got != tt.want {
			t.Errorf("Suggest(%q, %q) = %q, want %q", tt.category, tt.name, got, tt.want)
		}
	}
}

func TestRegistryConcurrentReads(t *testing.T) {
	reg := NewRegistry()
	mustRegister(t, reg, "interactive", "flip-card", textCard("f"))

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if _, ok := reg.Get("interactive", "flip-card"); !ok {
					t.Error("Get() failed under concurrency")
					return
				}
				_ = reg.Entries()
			}
		}()
	}
	wg.Wait()
}
