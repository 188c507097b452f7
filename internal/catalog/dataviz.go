package catalog

import (
	"fmt"
	"math"

	"github.com/vango-dev/featuregrid/internal/catalog/ui"
	"github.com/vango-dev/featuregrid/pkg/cards"
	"github.com/vango-dev/featuregrid/pkg/vdom"
)

// PerformanceMeter draws a circular gauge around a score of 87.
type PerformanceMeter struct{}

const performanceScore = 87

func (PerformanceMeter) Render(p cards.Props) *vdom.VNode {
	accent := ui.AccentFor(p.Accent)
	circumference := 2 * math.Pi * 40
	offset := circumference * (1 - performanceScore/100.0)

	circle := func(class string, extra ...any) *vdom.VNode {
		args := []any{
			vdom.Class(class),
			vdom.Attr{Key: "cx", Value: "50"},
			vdom.Attr{Key: "cy", Value: "50"},
			vdom.Attr{Key: "r", Value: "40"},
			vdom.Attr{Key: "fill", Value: "none"},
			vdom.Attr{Key: "stroke", Value: "currentColor"},
			vdom.Attr{Key: "stroke-width", Value: "8"},
		}
		return vdom.CustomElement("circle", append(args, extra...)...)
	}

	return ui.Card(
		ui.CardChildren(
			ui.CardHeader("", ui.CardTitle("Performance Score", "text-lg")),
			ui.CardContent("space-y-4",
				vdom.Div(
					vdom.Class("relative mx-auto h-32 w-32"),
					vdom.Role("meter"),
					vdom.AriaValueNow(performanceScore),
					vdom.CustomElement("svg",
						vdom.Class("h-32 w-32 -rotate-90"),
						vdom.Attr{Key: "viewBox", Value: "0 0 100 100"},
						circle("text-gray-200"),
						circle(accent.Text,
							vdom.Attr{Key: "stroke-dasharray", Value: fmt.Sprintf("%.2f", circumference)},
							vdom.Attr{Key: "stroke-dashoffset", Value: fmt.Sprintf("%.2f", offset)},
							vdom.Attr{Key: "stroke-linecap", Value: "round"},
						),
					),
					vdom.Div(
						vdom.Class("absolute inset-0 flex flex-col items-center justify-center"),
						vdom.Div(vdom.Class("text-2xl font-bold"), fmt.Sprint(performanceScore)),
						vdom.Div(vdom.Class("text-xs text-muted-foreground"), "Score"),
					),
				),
				vdom.Div(
					vdom.Class("grid grid-cols-2 gap-4 text-center text-sm"),
					vdom.Div(
						vdom.Div(vdom.Class("font-medium text-green-600"), "Fast"),
						vdom.Div(vdom.Class("text-muted-foreground"), "Load Time"),
					),
					vdom.Div(
						vdom.Div(vdom.Class("font-medium text-blue-600"), "Optimized"),
						vdom.Div(vdom.Class("text-muted-foreground"), "Resources"),
					),
				),
			),
		),
	)
}

// AnalyticsOverview is a mini dashboard with a weekly bar chart.
type AnalyticsOverview struct{}

var weeklyVisits = []int{40, 65, 45, 80, 55, 90, 70}

func (AnalyticsOverview) Render(p cards.Props) *vdom.VNode {
	accent := ui.AccentFor(p.Accent)

	return ui.Card(
		ui.CardChildren(
			ui.CardHeader("",
				ui.CardTitle("Analytics Overview", "text-lg"),
				ui.CardDescription("Last 7 days"),
			),
			ui.CardContent("space-y-4",
				vdom.Div(
					vdom.Class("grid grid-cols-2 gap-4"),
					metric("1.2K", "Visitors", "text-blue-600"),
					metric("3.4%", "Conversion", "text-green-600"),
				),
				vdom.Div(
					vdom.Class("flex h-16 items-end justify-between gap-1"),
					vdom.Range(weeklyVisits, func(height int, _ int) *vdom.VNode {
						return vdom.Div(
							vdom.Class("w-2 rounded-t", accent.Solid),
							vdom.StyleAttr(fmt.Sprintf("height: %d%%", height)),
						)
					}),
				),
				vdom.Div(
					vdom.Class("flex justify-between text-xs text-muted-foreground"),
					vdom.Span("Mon"),
					vdom.Span("Sun"),
				),
			),
		),
	)
}

func metric(value, label, color string) *vdom.VNode {
	return vdom.Div(
		vdom.Class("text-center"),
		vdom.Div(vdom.Class("text-2xl font-bold", color), value),
		vdom.Div(vdom.Class("text-xs text-muted-foreground"), label),
	)
}

// StatusMonitor lists system health indicators.
type StatusMonitor struct{}

type healthCheck struct {
	name  string
	value int
}

func (StatusMonitor) Render(cards.Props) *vdom.VNode {
	systems := []healthCheck{
		{"API Server", 99},
		{"Security", 100},
		{"Performance", 94},
	}

	return ui.Card(
		ui.CardChildren(
			ui.CardHeader("",
				vdom.Div(
					vdom.Class("flex items-center justify-between"),
					ui.CardTitle("System Status", "text-lg"),
					vdom.Div(
						vdom.Class("flex items-center gap-1"),
						vdom.Span(vdom.Class("h-2 w-2 rounded-full bg-green-500"), vdom.AriaHidden(true)),
						vdom.Span(vdom.Class("text-xs text-green-600"), "Online"),
					),
				),
			),
			ui.CardContent("space-y-3",
				vdom.Range(systems, func(s healthCheck, _ int) *vdom.VNode {
					return vdom.Div(
						vdom.Class("space-y-1"),
						ui.Stat(s.name, fmt.Sprintf("%d%%", s.value)),
						ui.Progress(ui.ProgressValue(s.value), ui.ProgressBarClass("bg-green-500"), ui.ProgressLabel(s.name)),
					)
				}),
				vdom.Div(vdom.Class("text-xs text-muted-foreground"), "Last updated: 2 minutes ago"),
			),
		),
	)
}
