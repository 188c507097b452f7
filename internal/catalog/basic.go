package catalog

import (
	"strconv"

	"github.com/vango-dev/featuregrid/internal/catalog/ui"
	"github.com/vango-dev/featuregrid/pkg/cards"
	"github.com/vango-dev/featuregrid/pkg/vdom"
)

// IconText is the plain feature card: an icon over a title and a short
// description.
type IconText struct{}

func (IconText) Render(p cards.Props) *vdom.VNode {
	accent := ui.AccentFor(p.Accent)

	return ui.Card(
		ui.CardChildren(
			ui.CardHeader("pb-4 text-center",
				vdom.Div(
					vdom.Class("mx-auto mb-4 flex h-16 w-16 items-center justify-center rounded-xl", accent.Soft),
					ui.Icon("star", "h-8 w-8", accent.Text),
				),
				ui.CardTitle("Premium Quality"),
			),
			ui.CardContent("text-center",
				ui.CardDescription(
					"High-quality materials and craftsmanship in every product we deliver to ensure customer satisfaction.",
					"leading-relaxed",
				),
			),
		),
	)
}

// FeatureCard adds a badge, a checklist and a call to action to the
// icon card.
type FeatureCard struct{}

var featureChecklist = []string{"Real-time data", "Custom reports", "Export options"}

func (FeatureCard) Render(p cards.Props) *vdom.VNode {
	accent := ui.AccentFor(p.Accent)

	return ui.Card(
		ui.CardChildren(
			ui.CardHeader("pb-4",
				vdom.Div(
					vdom.Class("mb-4 flex items-start justify-between"),
					vdom.Div(
						vdom.Class("flex h-12 w-12 items-center justify-center rounded-lg", accent.Soft),
						ui.Icon("bar-chart", "h-6 w-6", accent.Text),
					),
					ui.Badge("Popular"),
				),
				ui.CardTitle("Advanced Analytics", "text-lg"),
			),
			ui.CardContent("space-y-4",
				ui.CardDescription(
					"Get detailed insights into your business performance with our comprehensive analytics dashboard.",
					"leading-relaxed",
				),
				vdom.Hr(vdom.Class("border-border")),
				vdom.Ul(
					vdom.Class("space-y-2"),
					vdom.Range(featureChecklist, func(item string, _ int) *vdom.VNode {
						return vdom.Li(
							vdom.Class("flex items-center gap-2 text-sm text-muted-foreground"),
							ui.Icon("check", "h-4 w-4 text-green-500"),
							item,
						)
					}),
				),
				ui.Button(
					ui.WithClass("mt-4 w-full"),
					ui.WithChildren("Learn More", ui.Icon("arrow-up-right", "ml-2 h-4 w-4")),
				),
			),
		),
	)
}

// StatCard shows one metric with its trend and progress toward a
// target.
type StatCard struct{}

const revenueProgress = 75

func (StatCard) Render(p cards.Props) *vdom.VNode {
	accent := ui.AccentFor(p.Accent)

	return ui.Card(
		ui.CardChildren(
			ui.CardHeader("pb-4",
				vdom.Div(
					vdom.Class("flex items-center justify-between"),
					vdom.Div(
						vdom.Class("flex h-12 w-12 items-center justify-center rounded-lg bg-green-50"),
						ui.Icon("dollar-sign", "h-6 w-6 text-green-600"),
					),
					ui.Badge("vs last month", ui.BadgeOutline()),
				),
			),
			ui.CardContent("space-y-4",
				vdom.Div(
					vdom.Div(
						vdom.Class("mb-2 flex items-baseline justify-between"),
						ui.CardTitle("$124,563", "text-2xl font-bold"),
						vdom.Div(
							vdom.Class("flex items-center gap-1 text-sm font-medium text-green-600"),
							ui.Icon("arrow-up-right", "h-4 w-4"),
							"+12.5%",
						),
					),
					ui.CardDescription("Total Revenue", "font-medium"),
				),
				vdom.Div(
					vdom.Class("space-y-2"),
					ui.Stat("Progress", strconv.Itoa(revenueProgress)+"%"),
					ui.Progress(
						ui.ProgressValue(revenueProgress),
						ui.ProgressBarClass(accent.Solid),
						ui.ProgressLabel("Revenue target"),
					),
				),
				vdom.Div(
					vdom.Class("flex items-center justify-between pt-2 text-xs text-muted-foreground"),
					vdom.Span("Target: 100%"),
					vdom.Span(strconv.Itoa(100-revenueProgress)+"% remaining"),
				),
			),
		),
	)
}

// Testimonial is a customer quote with a star rating and its author.
type Testimonial struct{}

func (Testimonial) Render(p cards.Props) *vdom.VNode {
	accent := ui.AccentFor(p.Accent)

	return ui.Card(
		ui.CardChildren(
			ui.CardHeader("pb-2",
				vdom.Div(
					vdom.Class("flex items-center gap-0.5"),
					vdom.AriaLabel("Rated 5 out of 5"),
					vdom.Times(5, func(int) *vdom.VNode {
						return ui.Icon("star", "h-4 w-4 fill-yellow-400 text-yellow-400")
					}),
				),
			),
			ui.CardContent("space-y-4",
				vdom.P(
					vdom.Class("text-sm leading-relaxed"),
					`"Switching took an afternoon. Our support queue has been half the size ever since."`,
				),
				vdom.Div(
					vdom.Class("flex items-center gap-3"),
					avatar("SC", accent),
					vdom.Div(
						vdom.Div(vdom.Class("text-sm font-medium"), "Sarah Chen"),
						vdom.Div(vdom.Class("text-xs text-muted-foreground"), "Head of Product, Northwind"),
					),
				),
			),
		),
	)
}
