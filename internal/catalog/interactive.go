package catalog

import (
	"strconv"

	"github.com/vango-dev/featuregrid/internal/catalog/ui"
	"github.com/vango-dev/featuregrid/pkg/cards"
	"github.com/vango-dev/featuregrid/pkg/vdom"
)

// FlipCard shows a feature on the front and its metrics on the back.
// Props.Flipped selects the side; both sides flip with Props.ToggleFlip.
type FlipCard struct{}

func (FlipCard) Render(p cards.Props) *vdom.VNode {
	accent := ui.AccentFor(p.Accent)

	if !p.Flipped {
		return ui.Card(
			ui.CardChildren(
				vdom.Data("side", "front"),
				ui.CardHeader("text-center",
					vdom.Div(
						vdom.Class("mx-auto mb-4 flex h-16 w-16 items-center justify-center rounded-full", accent.Soft),
						ui.Icon("zap", "h-8 w-8", accent.Text),
					),
					ui.CardTitle("Lightning Fast"),
					ui.CardDescription("Click to see the details"),
				),
				ui.CardContent("text-center",
					ui.Button(
						ui.Outline(),
						ui.WithClass("w-full"),
						ui.WithOnClick(p.ToggleFlip),
						ui.WithChildren("Learn More", ui.Icon("arrow-right", "ml-2 h-4 w-4")),
					),
				),
			),
		)
	}

	return ui.Card(
		ui.CardChildren(
			vdom.Data("side", "back"),
			ui.CardHeader("", ui.CardTitle("Performance Details", "text-lg")),
			ui.CardContent("space-y-3",
				ui.Stat("Load Time", "0.8s"),
				ui.Stat("Response Time", "120ms"),
				ui.Stat("Uptime", "99.9%"),
				ui.Button(
					ui.Ghost(),
					ui.Sm(),
					ui.WithClass("mt-4 w-full"),
					ui.WithOnClick(p.ToggleFlip),
					ui.WithChildren(ui.Icon("arrow-left", "mr-2 h-4 w-4"), "Back"),
				),
			),
		),
	)
}

// ToggleComparison switches between a before and an after measurement.
type ToggleComparison struct{}

func (ToggleComparison) Render(p cards.Props) *vdom.VNode {
	value, label, color, progress := "8.7s", "Before Optimization", "text-red-600", 25
	if p.Flipped {
		value, label, color, progress = "2.1s", "After Optimization", "text-green-600", 85
	}

	return ui.Card(
		ui.CardChildren(
			ui.CardHeader("",
				vdom.Div(
					vdom.Class("flex items-center justify-between"),
					ui.CardTitle("Before vs After", "text-lg"),
					ui.Switch(p.Flipped, "Show optimized result", p.ToggleFlip),
				),
			),
			ui.CardContent("space-y-4",
				vdom.Div(
					vdom.Class("text-center transition-all duration-300", color),
					vdom.Div(vdom.Class("text-3xl font-bold"), value),
					vdom.Div(vdom.Class("text-sm text-muted-foreground"), label),
				),
				ui.Progress(ui.ProgressValue(progress), ui.ProgressLabel("Page load speed")),
				vdom.Div(vdom.Class("text-center text-sm text-muted-foreground"), "Page Load Speed"),
			),
		),
	)
}

// Pricing calculator bounds, in users.
const (
	PricingMinUsers     = 1
	PricingMaxUsers     = 200
	PricingDefaultUsers = 50
)

// PricingCalculator prices a plan by seat count at $0.50 per user.
// Props.Value is the user count; zero means the default.
type PricingCalculator struct{}

func (PricingCalculator) Render(p cards.Props) *vdom.VNode {
	users := p.Value
	if users == 0 {
		users = PricingDefaultUsers
	}
	users = min(max(users, PricingMinUsers), PricingMaxUsers)

	var onInput func(string)
	if p.SetValue != nil {
		onInput = func(raw string) {
			if n, err := strconv.Atoi(raw); err == nil {
				p.SetValue(n)
			}
		}
	}

	return ui.Card(
		ui.CardChildren(
			ui.CardHeader("",
				ui.CardTitle("Pricing Calculator", "text-lg"),
				ui.CardDescription("Adjust to see pricing"),
			),
			ui.CardContent("space-y-4",
				vdom.Div(
					vdom.Div(
						vdom.Class("mb-2 flex justify-between text-sm"),
						vdom.Span("Users"),
						vdom.Span(vdom.Class("font-medium"), strconv.Itoa(users)),
					),
					ui.Slider(users, PricingMinUsers, PricingMaxUsers, "Users", onInput),
				),
				vdom.Div(
					vdom.Class("rounded-lg bg-primary/5 p-4 text-center"),
					vdom.Div(vdom.Class("text-2xl font-bold text-primary"), "$"+strconv.Itoa(MonthlyPrice(users))),
					vdom.Div(vdom.Class("text-sm text-muted-foreground"), "per month"),
				),
			),
		),
	)
}

// MonthlyPrice returns the monthly price in dollars for users seats,
// rounded half up.
func MonthlyPrice(users int) int {
	return (users + 1) / 2
}
