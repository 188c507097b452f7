package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vango-dev/featuregrid/internal/builder"
	"github.com/vango-dev/featuregrid/internal/export"
	"github.com/vango-dev/featuregrid/pkg/cards"
	"github.com/vango-dev/featuregrid/pkg/render"
)

func renderCmd(opts *rootOptions) *cobra.Command {
	var (
		bf      builderFlags
		single  string
		code    bool
		flipped bool
		value   int
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print a grid or a single card as HTML",
		Long: `Render a grid, or one card, to stdout.

Without --single the whole grid is printed as a standalone HTML page.
With --code the generated component source is printed instead.

Examples:
  featuregrid render --layout hero-grid --variant hero-4
  featuregrid render --layout bento -a 1=data-viz/performance-meter --code
  featuregrid render --single interactive/flip-card --flipped`,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(opts, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if single != "" {
				sel, err := parseSelection(single)
				if err != nil {
					return err
				}
				props := cards.Props{Flipped: flipped, Value: value, Dark: bf.dark, Accent: bf.theme}
				node := a.resolver(nil).Resolve(sel.Category, sel.Name, props)
				html, err := render.NewRenderer(render.RendererConfig{Pretty: true, StripHandlers: true}).RenderToString(node)
				if err != nil {
					return err
				}
				fmt.Fprint(out, html)
				return nil
			}

			if err := bf.apply(cmd, &a.cfg.Builder); err != nil {
				return err
			}
			b, err := builder.New(a.cat, a.resolver(nil), builder.WithDefaults(a.cfg.Builder), builder.WithLogger(a.logger))
			if err != nil {
				return err
			}
			if err := bf.assignCards(b); err != nil {
				return err
			}

			if code {
				src, err := b.Code()
				if err != nil {
					return err
				}
				fmt.Fprint(out, src)
				return nil
			}
			page, err := export.Page(b)
			if err != nil {
				return err
			}
			_, err = out.Write(page)
			return err
		},
	}

	bf.register(cmd)
	cmd.Flags().StringVarP(&single, "single", "s", "", "Render only this card, as category/name")
	cmd.Flags().BoolVar(&code, "code", false, "Print the generated component source")
	cmd.Flags().BoolVar(&flipped, "flipped", false, "With --single: render the card flipped")
	cmd.Flags().IntVar(&value, "value", 0, "With --single: the card's numeric value")

	return cmd
}
