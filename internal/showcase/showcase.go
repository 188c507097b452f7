// Package showcase implements the card gallery: every registered card
// category is a tab, and the cards of the selected one are rendered live
// through the resolver. Each card keeps its own flip and value state, so
// interactive cards can be tried out in place.
//
// A Showcase is not safe for concurrent use. The server gives every
// gallery session its own Showcase and serializes calls to it.
package showcase

import (
	"log/slog"
	"slices"
	"strconv"
	"strings"

	"github.com/vango-dev/featuregrid/internal/catalog"
	"github.com/vango-dev/featuregrid/internal/catalog/ui"
	"github.com/vango-dev/featuregrid/internal/errors"
	"github.com/vango-dev/featuregrid/pkg/cards"
	"github.com/vango-dev/featuregrid/pkg/vdom"
)

// DefaultCategory is selected first when it has cards.
const DefaultCategory = "interactive"

// Showcase owns the selected tab and the per-card state.
type Showcase struct {
	cat      *catalog.Catalog
	resolver *cards.Resolver
	logger   *slog.Logger

	selected string
	flipped  map[cards.Entry]bool
	values   map[cards.Entry]int
}

// Option configures a Showcase.
type Option func(*Showcase)

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Showcase) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New creates a Showcase over the cards registered in resolver. cat
// supplies tab titles and order; categories it does not describe are
// listed after its own, under their ids.
func New(cat *catalog.Catalog, resolver *cards.Resolver, opts ...Option) (*Showcase, error) {
	s := &Showcase{
		cat:      cat,
		resolver: resolver,
		logger:   slog.Default(),
		flipped:  make(map[cards.Entry]bool),
		values:   make(map[cards.Entry]int),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With("component", "showcase")

	categories := s.Categories()
	if len(categories) == 0 {
		return nil, errors.New("E309").WithDetail("no card categories are registered")
	}
	s.selected = categories[0]
	if slices.Contains(categories, DefaultCategory) {
		s.selected = DefaultCategory
	}
	return s, nil
}

// Categories returns the tabs: the catalog's categories in catalog order,
// then other registered categories sorted. Categories without cards are
// left out.
func (s *Showcase) Categories() []string {
	reg := s.resolver.Registry()
	var out []string
	for _, c := range s.cat.Categories {
		if len(reg.Names(c.ID)) > 0 {
			out = append(out, c.ID)
		}
	}
	for _, c := range reg.Categories() {
		if _, described := s.cat.Category(c); !described && len(reg.Names(c)) > 0 {
			out = append(out, c)
		}
	}
	return out
}

// Names returns the cards shown for category, catalog order first.
func (s *Showcase) Names(category string) []string {
	registered := s.resolver.Registry().Names(category)
	out := make([]string, 0, len(registered))
	if c, ok := s.cat.Category(category); ok {
		for _, card := range c.Cards {
			if slices.Contains(registered, card.ID) {
				out = append(out, card.ID)
			}
		}
	}
	for _, name := range registered {
		if !slices.Contains(out, name) {
			out = append(out, name)
		}
	}
	return out
}

// Selected returns the selected category.
func (s *Showcase) Selected() string {
	return s.selected
}

// Select switches tabs. Card state survives the switch.
func (s *Showcase) Select(category string) error {
	categories := s.Categories()
	if !slices.Contains(categories, category) {
		return errors.New("E309").
			WithDetailf("category %q has no cards", category).
			WithSuggestion("Use one of: " + strings.Join(categories, ", "))
	}
	s.selected = category
	s.logger.Debug("category selected", "category", category)
	return nil
}

// Flipped reports the flip state of a card.
func (s *Showcase) Flipped(category, name string) bool {
	return s.flipped[cards.Entry{Category: category, Name: name}]
}

// Value returns the input value of a card; zero means the card's default.
func (s *Showcase) Value(category, name string) int {
	return s.values[cards.Entry{Category: category, Name: name}]
}

// Props returns the props a card is rendered with. The callbacks write
// back into the showcase.
func (s *Showcase) Props(category, name string) cards.Props {
	e := cards.Entry{Category: category, Name: name}
	return cards.Props{
		Flipped:    s.flipped[e],
		ToggleFlip: func() { s.flipped[e] = !s.flipped[e] },
		Value:      s.values[e],
		SetValue:   func(v int) { s.values[e] = v },
	}
}

// Render builds the gallery: the header, the category tabs and the
// selected category's cards.
func (s *Showcase) Render() (*vdom.VNode, error) {
	categories := s.Categories()
	if !slices.Contains(categories, s.selected) {
		return nil, errors.New("E309").WithDetailf("category %q is no longer registered", s.selected)
	}

	tabs := make([]*vdom.VNode, 0, len(categories))
	for _, id := range categories {
		title, description := s.describe(id)
		selected := id == s.selected
		class := "rounded-lg border bg-card p-6 text-left shadow-sm transition-all hover:shadow-md"
		if selected {
			class = ui.CN(class, "ring-2 ring-primary shadow-lg")
		}
		tabs = append(tabs, vdom.Button(
			vdom.Type("button"),
			vdom.Role("tab"),
			vdom.Class(class),
			vdom.AriaSelected(selected),
			vdom.Data("category", id),
			vdom.OnClick(func() { _ = s.Select(id) }),
			vdom.H3(vdom.Class("text-lg font-semibold"), title),
			vdom.P(vdom.Class("mt-1.5 text-sm text-muted-foreground"), description),
		))
	}

	names := s.Names(s.selected)
	grid := make([]*vdom.VNode, 0, len(names))
	for i, name := range names {
		props := s.Props(s.selected, name)
		props.Slot = i
		grid = append(grid, vdom.Div(
			vdom.Data("card", s.selected+"/"+name),
			s.resolver.Resolve(s.selected, name, props),
		))
	}

	title, description := s.describe(s.selected)
	return vdom.Div(
		vdom.ID("showcase"),
		vdom.Class("min-h-screen bg-background"),
		vdom.Header(
			vdom.Class("border-b bg-white"),
			vdom.Div(
				vdom.Class("container mx-auto px-4 py-6"),
				vdom.H1(vdom.Class("text-3xl font-bold"), "Innovative Feature Cards"),
				vdom.P(vdom.Class("mt-2 text-muted-foreground"), "Unique and engaging card designs beyond traditional layouts"),
			),
		),
		vdom.Main(
			vdom.Class("container mx-auto px-4 py-8"),
			vdom.Nav(
				vdom.Class("mb-8 grid grid-cols-1 gap-4 md:grid-cols-2 lg:grid-cols-3"),
				vdom.Role("tablist"),
				tabs,
			),
			vdom.Section(
				vdom.Class("space-y-6"),
				vdom.Data("selected", s.selected),
				vdom.Div(
					vdom.Class("flex items-center justify-between"),
					vdom.Div(
						vdom.H2(vdom.Class("text-2xl font-semibold"), title),
						vdom.P(vdom.Class("text-muted-foreground"), description),
					),
					ui.Badge(examples(len(names)), ui.BadgeOutline(), ui.BadgeClass("text-sm")),
				),
				vdom.Div(
					vdom.Class("grid grid-cols-1 gap-6 rounded-lg bg-gray-50 p-6 md:grid-cols-2 lg:grid-cols-3"),
					grid,
				),
			),
		),
	), nil
}

// describe returns the tab title and description of a category.
func (s *Showcase) describe(category string) (string, string) {
	if c, ok := s.cat.Category(category); ok {
		return c.Name, c.Description
	}
	return category, ""
}

func examples(n int) string {
	if n == 1 {
		return "1 example"
	}
	return strconv.Itoa(n) + " examples"
}
