package catalog

import (
	"github.com/vango-dev/featuregrid/internal/catalog/ui"
	"github.com/vango-dev/featuregrid/pkg/cards"
	"github.com/vango-dev/featuregrid/pkg/vdom"
)

// GlobalPresence lists supported regions.
type GlobalPresence struct{}

func (GlobalPresence) Render(p cards.Props) *vdom.VNode {
	accent := ui.AccentFor(p.Accent)
	regions := []string{"United States", "Europe", "Asia Pacific"}

	return ui.Card(
		ui.CardChildren(
			ui.CardHeader("",
				vdom.Div(
					vdom.Class("flex items-center gap-2"),
					ui.Icon("map-pin", "h-5 w-5", accent.Text),
					ui.CardTitle("Global Presence", "text-lg"),
				),
				ui.CardDescription("Available worldwide"),
			),
			ui.CardContent("space-y-3",
				vdom.Range(regions, func(region string, _ int) *vdom.VNode {
					return vdom.Div(
						vdom.Class("flex items-center justify-between"),
						vdom.Span(vdom.Class("text-sm"), region),
						ui.Badge("24/7", ui.BadgeSecondary()),
					)
				}),
				vdom.Div(
					vdom.Class("rounded-lg bg-green-50 p-3 text-center"),
					vdom.Div(vdom.Class("text-sm font-medium text-green-800"), "99.9% Uptime Globally"),
					vdom.Div(vdom.Class("text-xs text-green-600"), "Distributed across 15+ data centers"),
				),
			),
		),
	)
}

// SmartMonitoring shows environmental readings.
type SmartMonitoring struct{}

func (SmartMonitoring) Render(p cards.Props) *vdom.VNode {
	accent := ui.AccentFor(p.Accent)

	return ui.Card(
		ui.CardChildren(
			ui.CardHeader("",
				vdom.Div(
					vdom.Class("flex items-center gap-2"),
					ui.Icon("sun", "h-5 w-5", accent.Text),
					ui.CardTitle("Smart Monitoring", "text-lg"),
				),
				ui.CardDescription("Environmental awareness"),
			),
			ui.CardContent("space-y-4",
				vdom.Div(
					vdom.Class("grid grid-cols-2 gap-4"),
					metric("72°F", "Temperature", "text-orange-500"),
					metric("45%", "Humidity", "text-blue-500"),
				),
				vdom.Div(
					vdom.Class("space-y-2"),
					vdom.Div(
						vdom.Class("flex items-center justify-between text-sm"),
						vdom.Span("Air Quality"),
						ui.Badge("Good", ui.BadgeSuccess()),
					),
					vdom.Div(
						vdom.Class("flex items-center justify-between text-sm"),
						vdom.Span("UV Index"),
						ui.Badge("Moderate", ui.BadgeWarning()),
					),
				),
			),
		),
	)
}

// ScheduleOptimizer recommends engagement windows.
type ScheduleOptimizer struct{}

func (ScheduleOptimizer) Render(p cards.Props) *vdom.VNode {
	accent := ui.AccentFor(p.Accent)
	rows := [][2]string{
		{"Peak Hours", "9AM - 11AM"},
		{"Optimal Days", "Tue - Thu"},
		{"Response Time", "< 2 hours"},
	}

	return ui.Card(
		ui.CardChildren(
			ui.CardHeader("",
				vdom.Div(
					vdom.Class("flex items-center gap-2"),
					ui.Icon("clock", "h-5 w-5", accent.Text),
					ui.CardTitle("Schedule Optimizer", "text-lg"),
				),
				ui.CardDescription("Best time to engage"),
			),
			ui.CardContent("space-y-3",
				vdom.Range(rows, func(row [2]string, _ int) *vdom.VNode {
					return vdom.Div(
						vdom.Class("flex items-center justify-between"),
						vdom.Span(vdom.Class("text-sm"), row[0]),
						ui.Badge(row[1], ui.BadgeSecondary()),
					)
				}),
				vdom.Div(
					vdom.Class("rounded-lg p-3 text-center", accent.Soft),
					vdom.Div(vdom.Class("text-sm font-medium"), "Next Optimal Window"),
					vdom.Div(vdom.Class("text-xs", accent.Text), "Tomorrow at 9:30 AM"),
				),
			),
		),
	)
}
