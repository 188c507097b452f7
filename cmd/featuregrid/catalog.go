package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/vango-dev/featuregrid/pkg/layout"
)

type catalogListing struct {
	Layouts    []layoutListing   `json:"layouts"`
	Categories []categoryListing `json:"categories"`
	Themes     []string          `json:"themes"`
}

type layoutListing struct {
	ID       string           `json:"id"`
	Name     string           `json:"name"`
	Variants []variantListing `json:"variants"`
}

type variantListing struct {
	ID    string `json:"id"`
	Slots int    `json:"slots"`
}

type categoryListing struct {
	ID    string   `json:"id"`
	Name  string   `json:"name"`
	Cards []string `json:"cards"`
}

func catalogCmd(opts *rootOptions) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List layouts, variants, card categories and themes",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(opts, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			var listing catalogListing
			for _, d := range a.cat.Layouts {
				l := layoutListing{ID: d.ID, Name: d.Name}
				for _, v := range d.Variants {
					n, _ := layout.SlotCount(d.ID, v)
					l.Variants = append(l.Variants, variantListing{ID: v.ID, Slots: n})
				}
				listing.Layouts = append(listing.Layouts, l)
			}
			for _, c := range a.cat.Categories {
				cl := categoryListing{ID: c.ID, Name: c.Name}
				for _, card := range c.Cards {
					cl.Cards = append(cl.Cards, card.ID)
				}
				listing.Categories = append(listing.Categories, cl)
			}
			for _, t := range a.cat.Themes {
				listing.Themes = append(listing.Themes, t.ID)
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(listing)
			}

			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "LAYOUT\tVARIANT\tSLOTS")
			for _, l := range listing.Layouts {
				for _, v := range l.Variants {
					fmt.Fprintf(tw, "%s\t%s\t%d\n", l.ID, v.ID, v.Slots)
				}
			}
			fmt.Fprintln(tw)
			fmt.Fprintln(tw, "CATEGORY\tCARD\t")
			for _, c := range listing.Categories {
				for _, card := range c.Cards {
					fmt.Fprintf(tw, "%s\t%s\t\n", c.ID, card)
				}
			}
			fmt.Fprintln(tw)
			fmt.Fprintf(tw, "THEMES\t%v\t\n", listing.Themes)
			return tw.Flush()
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print as JSON")
	return cmd
}
