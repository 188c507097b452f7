// Package catalog holds the definition-time data of the builder: the
// layout templates, the card categories and the accent themes, decoded
// from an HCL file, plus the built-in card renderers.
//
// The default catalog is embedded:
//
//	cat, err := catalog.Load()
//	reg, err := catalog.NewRegistry()
//	for _, e := range catalog.Missing(cat, reg) {
//	    log.Printf("no renderer for %s", e)
//	}
package catalog

import (
	_ "embed"
	"os"
	"sort"
	"strings"

	"github.com/vango-dev/featuregrid/internal/errors"
	"github.com/vango-dev/featuregrid/pkg/cards"
	"github.com/vango-dev/featuregrid/pkg/layout"
)

//go:embed catalog.hcl
var embedded []byte

// EmbeddedName is the file name reported for the embedded catalog.
const EmbeddedName = "catalog.hcl"

// Catalog is the decoded catalog. It is not modified after Load.
type Catalog struct {
	Layouts    []layout.Descriptor `json:"layouts"`
	Categories []Category          `json:"categories"`
	Themes     []Theme             `json:"themes"`

	ranges []sourceRange
}

// Category is a group of cards shown together in the card picker.
type Category struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Icon        string     `json:"icon"`
	Cards       []CardInfo `json:"cards"`
}

// CardInfo describes a card type for the picker.
type CardInfo struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Preview     string `json:"preview"`
}

// Theme is an accent color.
type Theme struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"` // Tailwind color name
}

// Swatch returns the class of the theme's color swatch.
func (t Theme) Swatch() string {
	return "bg-" + t.Color + "-500"
}

// Load decodes the embedded catalog.
func Load() (*Catalog, error) {
	return Parse(embedded, EmbeddedName)
}

// LoadFile decodes the catalog file at path.
func LoadFile(path string) (*Catalog, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.New("E201").
			WithDetailf("cannot read %s", path).
			Wrap(err)
	}
	return Parse(src, path)
}

// LoadOrEmbedded loads path, or the embedded catalog when path is empty.
func LoadOrEmbedded(path string) (*Catalog, error) {
	if path == "" {
		return Load()
	}
	return LoadFile(path)
}

// Parse decodes and validates catalog source. Layout guides are converted
// from Markdown to HTML.
func Parse(src []byte, filename string) (*Catalog, error) {
	cat, err := decode(src, filename)
	if err != nil {
		return nil, err
	}
	if err := cat.validate(); err != nil {
		return nil, err
	}
	for i := range cat.Layouts {
		html, err := RenderGuide(cat.Layouts[i].Guide)
		if err != nil {
			return nil, errors.New("E206").
				WithDetailf("layout %q", cat.Layouts[i].ID).
				Wrap(err)
		}
		cat.Layouts[i].Guide = html
	}
	return cat, nil
}

func (c *Catalog) validate() error {
	seen := make(map[string]bool, len(c.ranges))
	for _, r := range c.ranges {
		key := r.kind + ":" + r.id
		if seen[key] {
			return c.errorAt("E202", r.kind, r.id).
				WithDetailf("%s %q is defined more than once", r.kind, r.id)
		}
		seen[key] = true
	}

	for _, l := range c.Layouts {
		if len(l.Variants) == 0 {
			return c.errorAt("E203", "layout", l.ID).
				WithDetailf("layout %q has no variant blocks", l.ID)
		}
		if !layout.Known(l.ID) {
			return c.errorAt("E204", "layout", l.ID).
				WithDetailf("no arranger for layout %q", l.ID).
				WithSuggestion("Known layouts: " + strings.Join(knownLayouts(), ", "))
		}
	}
	return nil
}

func (c *Catalog) errorAt(code, kind, id string) *errors.Error {
	err := errors.New(code)
	for _, r := range c.ranges {
		if r.kind == kind && r.id == id {
			return err.WithLocation(r.rng.Filename, r.rng.Start.Line, r.rng.Start.Column)
		}
	}
	return err
}

func knownLayouts() []string {
	ids := []string{
		layout.ClassicGrid, layout.HeroGrid, layout.Masonry, layout.Zigzag,
		layout.Carousel, layout.Bento, layout.Timeline, layout.Pyramid,
	}
	sort.Strings(ids)
	return ids
}

// Layout returns the layout with the given id.
func (c *Catalog) Layout(id string) (layout.Descriptor, bool) {
	return layout.Find(c.Layouts, id)
}

// Category returns the category with the given id.
func (c *Catalog) Category(id string) (Category, bool) {
	for _, cat := range c.Categories {
		if cat.ID == id {
			return cat, true
		}
	}
	return Category{}, false
}

// Card returns the picker entry of a card.
func (c *Catalog) Card(category, name string) (CardInfo, bool) {
	cat, ok := c.Category(category)
	if !ok {
		return CardInfo{}, false
	}
	for _, card := range cat.Cards {
		if card.ID == name {
			return card, true
		}
	}
	return CardInfo{}, false
}

// Theme returns the theme with the given id.
func (c *Catalog) Theme(id string) (Theme, bool) {
	for _, t := range c.Themes {
		if t.ID == id {
			return t, true
		}
	}
	return Theme{}, false
}

// Entries lists every card of the catalog as category/name pairs, in
// catalog order.
func (c *Catalog) Entries() []cards.Entry {
	var out []cards.Entry
	for _, cat := range c.Categories {
		for _, card := range cat.Cards {
			out = append(out, cards.Entry{Category: cat.ID, Name: card.ID})
		}
	}
	return out
}

// Missing lists the catalog cards that have no renderer in reg. They
// still resolve, to the not-found fallback.
func Missing(c *Catalog, reg *cards.Registry) []cards.Entry {
	var out []cards.Entry
	for _, e := range c.Entries() {
		if _, ok := reg.Get(e.Category, e.Name); !ok {
			out = append(out, e)
		}
	}
	return out
}
