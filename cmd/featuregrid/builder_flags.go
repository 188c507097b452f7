package main

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vango-dev/featuregrid/internal/builder"
	"github.com/vango-dev/featuregrid/internal/config"
	"github.com/vango-dev/featuregrid/internal/errors"
)

// builderFlags select the grid rendered by render and export. Unset flags
// keep the builder defaults from featuregrid.json.
type builderFlags struct {
	layout  string
	variant string
	card    string
	theme   string
	dark    bool
	assign  []string
}

func (f *builderFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVarP(&f.layout, "layout", "l", "", "Layout template, e.g. bento")
	flags.StringVarP(&f.variant, "variant", "v", "", "Layout variant, e.g. bento-mixed")
	flags.StringVar(&f.card, "card", "", "Card for unassigned blocks, as category/name")
	flags.StringVar(&f.theme, "theme", "", "Accent theme, e.g. purple")
	flags.BoolVar(&f.dark, "dark", false, "Render in dark mode")
	flags.StringArrayVarP(&f.assign, "assign", "a", nil, "Assign a card to a block, as N=category/name (repeatable)")
}

// apply overrides the builder defaults with the flags that were set.
func (f *builderFlags) apply(cmd *cobra.Command, d *config.BuilderConfig) error {
	if f.layout != "" {
		d.Layout = f.layout
		if f.variant == "" {
			d.Variant = ""
		}
	}
	if f.variant != "" {
		d.Variant = f.variant
	}
	if f.card != "" {
		sel, err := parseSelection(f.card)
		if err != nil {
			return err
		}
		d.Category, d.Card = sel.Category, sel.Name
	}
	if f.theme != "" {
		d.Theme = f.theme
	}
	if cmd.Flags().Changed("dark") {
		d.Dark = f.dark
	}
	return nil
}

// assignCards applies the --assign flags to b.
func (f *builderFlags) assignCards(b *builder.Builder) error {
	for _, a := range f.assign {
		slot, card, ok := strings.Cut(a, "=")
		if !ok {
			return errors.New("E303").
				WithDetailf("--assign %q", a).
				WithExample("--assign 2=data-viz/performance-meter")
		}
		sel, err := parseSelection(card)
		if err != nil {
			return err
		}
		n, err := parseSlot(slot)
		if err != nil {
			return err
		}
		if err := b.SelectBlock(n); err != nil {
			return err
		}
		b.SelectCard(sel.Category, sel.Name)
	}
	b.Back()
	return nil
}

func parseSelection(s string) (builder.Selection, error) {
	category, name, ok := strings.Cut(s, "/")
	if !ok || category == "" || name == "" {
		return builder.Selection{}, errors.New("E307").
			WithDetailf("card %q is not category/name", s).
			WithExample("interactive/flip-card")
	}
	return builder.Selection{Category: category, Name: name}, nil
}

// parseSlot parses a 1-based block number as shown in the builder.
func parseSlot(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 0, errors.New("E303").WithDetailf("block %q is not a positive number", s)
	}
	return n - 1, nil
}
