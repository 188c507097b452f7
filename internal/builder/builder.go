// Package builder implements the feature grid builder: the selection
// state machine, the operations that change it, and the views rendered
// from it.
//
// A Builder is not safe for concurrent use. The server gives every
// browser session its own Builder and serializes calls to it.
package builder

import (
	"log/slog"
	"strings"

	"github.com/vango-dev/featuregrid/internal/catalog"
	"github.com/vango-dev/featuregrid/internal/config"
	"github.com/vango-dev/featuregrid/internal/errors"
	"github.com/vango-dev/featuregrid/pkg/cards"
	"github.com/vango-dev/featuregrid/pkg/layout"
)

// Builder owns one selection state and renders it through a resolver.
type Builder struct {
	cat      *catalog.Catalog
	resolver *cards.Resolver
	logger   *slog.Logger

	state State
	desc  layout.Descriptor
	vari  layout.Variant
}

// Option configures a Builder.
type Option func(*options)

type options struct {
	defaults config.BuilderConfig
	logger   *slog.Logger
}

// WithDefaults sets the initial selection. Empty fields keep the built-in
// defaults.
func WithDefaults(d config.BuilderConfig) Option {
	return func(o *options) {
		o.defaults = d
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// New creates a Builder over cat that resolves cards through resolver.
func New(cat *catalog.Catalog, resolver *cards.Resolver, opts ...Option) (*Builder, error) {
	o := options{logger: slog.Default().With("component", "builder")}
	for _, opt := range opts {
		opt(&o)
	}
	if len(cat.Layouts) == 0 {
		return nil, errors.New("E301").WithDetail("the catalog defines no layouts")
	}

	b := &Builder{
		cat:      cat,
		resolver: resolver,
		logger:   o.logger,
		state: State{
			Block:       NoBlock,
			ViewMode:    layout.Desktop,
			PreviewMode: PreviewRendered,
			Card:        Selection{Category: "interactive", Name: "flip-card"},
		},
	}
	b.state.resetSlots()

	d := o.defaults
	layoutID := d.Layout
	if layoutID == "" {
		layoutID = cat.Layouts[0].ID
	}
	if err := b.SelectLayout(layoutID); err != nil {
		return nil, err
	}
	if d.Variant != "" {
		if err := b.SelectVariant(d.Variant); err != nil {
			return nil, err
		}
	}
	if d.Category != "" || d.Card != "" {
		b.state.Card = Selection{Category: d.Category, Name: d.Card}
	}
	if d.ViewMode != "" {
		if err := b.SetViewMode(d.ViewMode); err != nil {
			return nil, err
		}
	}

	theme := d.Theme
	if theme == "" && len(cat.Themes) > 0 {
		theme = cat.Themes[0].ID
	}
	if theme != "" {
		if err := b.SetTheme(theme); err != nil {
			return nil, err
		}
	}
	b.state.Dark = d.Dark

	return b, nil
}

// State returns a copy of the current state.
func (b *Builder) State() State {
	s := b.state.clone()
	s.Stage = b.Stage()
	return s
}

// Stage returns the current workflow stage.
func (b *Builder) Stage() Stage {
	if b.state.Block == NoBlock {
		return StageLayout
	}
	return StageCard
}

// Catalog returns the catalog the builder selects from.
func (b *Builder) Catalog() *catalog.Catalog {
	return b.cat
}

// Layout returns the selected layout and variant.
func (b *Builder) Layout() (layout.Descriptor, layout.Variant) {
	return b.desc, b.vari
}

// SlotCount returns the number of slots of the selected variant.
func (b *Builder) SlotCount() int {
	n, err := layout.SlotCount(b.desc.ID, b.vari)
	if err != nil {
		return 0
	}
	return n
}

// SelectionFor returns the card shown in slot i: its assignment, or the
// default card.
func (b *Builder) SelectionFor(i int) Selection {
	if sel, ok := b.state.Assignments[i]; ok {
		return sel
	}
	return b.state.Card
}

// SelectLayout switches the layout. The variant resets to the layout's
// first variant and all per-slot state is cleared.
func (b *Builder) SelectLayout(id string) error {
	desc, ok := b.cat.Layout(id)
	if !ok {
		ids := make([]string, 0, len(b.cat.Layouts))
		for _, l := range b.cat.Layouts {
			ids = append(ids, l.ID)
		}
		return errors.New("E301").
			WithDetailf("layout %q is not in the catalog", id).
			WithSuggestion("Pick one of: " + strings.Join(ids, ", "))
	}

	b.desc = desc
	b.vari = desc.DefaultVariant()
	b.state.Layout = desc.ID
	b.state.Variant = b.vari.ID
	b.state.Block = NoBlock
	b.state.resetSlots()

	b.logger.Debug("layout selected", "layout", desc.ID, "variant", b.vari.ID)
	return nil
}

// SelectVariant switches the variant of the current layout. Per-slot
// state of slots that no longer exist is dropped.
func (b *Builder) SelectVariant(id string) error {
	v, ok := b.desc.Variant(id)
	if !ok {
		ids := make([]string, 0, len(b.desc.Variants))
		for _, v := range b.desc.Variants {
			ids = append(ids, v.ID)
		}
		return errors.New("E302").
			WithDetailf("variant %q is not part of layout %q", id, b.desc.ID).
			WithSuggestion("Pick one of: " + strings.Join(ids, ", "))
	}

	b.vari = v
	b.state.Variant = v.ID

	count := b.SlotCount()
	b.state.trimSlots(count)
	if b.state.Block >= count {
		b.state.Block = NoBlock
	}
	return nil
}

// SelectBlock selects slot i and enters StageCard.
func (b *Builder) SelectBlock(i int) error {
	if err := b.checkSlot(i); err != nil {
		return err
	}
	b.state.Block = i
	return nil
}

// Back deselects the block and returns to StageLayout.
func (b *Builder) Back() {
	b.state.Block = NoBlock
}

// SelectCard assigns a card. In StageCard it is assigned to the selected
// block, resetting that slot's state; in StageLayout it becomes the card
// of every unassigned slot.
func (b *Builder) SelectCard(category, name string) {
	sel := Selection{Category: category, Name: name}
	if b.state.Block == NoBlock {
		b.state.Card = sel
		return
	}

	i := b.state.Block
	b.state.Assignments[i] = sel
	delete(b.state.Flipped, i)
	delete(b.state.Values, i)
}

// SetViewMode sets the simulated device width.
func (b *Builder) SetViewMode(mode string) error {
	m, err := layout.ParseViewMode(mode)
	if err != nil {
		return errors.New("E304").
			WithDetailf("view mode %q", mode).
			WithSuggestion("Use desktop, tablet or mobile")
	}
	b.state.ViewMode = m
	return nil
}

// SetPreviewMode switches between the rendered preview and the code view.
func (b *Builder) SetPreviewMode(mode string) error {
	switch m := PreviewMode(mode); m {
	case PreviewRendered, PreviewCode:
		b.state.PreviewMode = m
		return nil
	default:
		return errors.New("E305").
			WithDetailf("preview mode %q", mode).
			WithSuggestion("Use preview or code")
	}
}

// SetDark turns dark mode on or off.
func (b *Builder) SetDark(on bool) {
	b.state.Dark = on
}

// SetTheme sets the accent theme.
func (b *Builder) SetTheme(id string) error {
	if _, ok := b.cat.Theme(id); !ok {
		ids := make([]string, 0, len(b.cat.Themes))
		for _, t := range b.cat.Themes {
			ids = append(ids, t.ID)
		}
		return errors.New("E306").
			WithDetailf("theme %q is not in the catalog", id).
			WithSuggestion("Pick one of: " + strings.Join(ids, ", "))
	}
	b.state.Theme = id
	return nil
}

// ToggleFlip flips the two-state card in slot i.
func (b *Builder) ToggleFlip(i int) error {
	if err := b.checkSlot(i); err != nil {
		return err
	}
	if b.state.Flipped[i] {
		delete(b.state.Flipped, i)
	} else {
		b.state.Flipped[i] = true
	}
	return nil
}

// SetValue sets the numeric state of the card in slot i.
func (b *Builder) SetValue(i, v int) error {
	if err := b.checkSlot(i); err != nil {
		return err
	}
	b.state.Values[i] = v
	return nil
}

func (b *Builder) checkSlot(i int) error {
	if n := b.SlotCount(); i < 0 || i >= n {
		return errors.New("E303").
			WithDetailf("slot %d is outside 0..%d of %s/%s", i, n-1, b.desc.ID, b.vari.ID)
	}
	return nil
}

// accent returns the Tailwind color of the current theme.
func (b *Builder) accent() string {
	if t, ok := b.cat.Theme(b.state.Theme); ok {
		return t.Color
	}
	return ""
}

// Props returns the card props of slot i. The callbacks change this
// builder's state.
func (b *Builder) Props(i int) cards.Props {
	return cards.Props{
		Slot:    i,
		Accent:  b.accent(),
		Dark:    b.state.Dark,
		Flipped: b.state.Flipped[i],
		ToggleFlip: func() {
			if err := b.ToggleFlip(i); err != nil {
				b.logger.Debug("stale flip", "slot", i, "error", err)
			}
		},
		Value: b.state.Values[i],
		SetValue: func(v int) {
			if err := b.SetValue(i, v); err != nil {
				b.logger.Debug("stale value", "slot", i, "error", err)
			}
		},
	}
}
