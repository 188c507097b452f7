package catalog

import (
	"github.com/vango-dev/featuregrid/internal/catalog/ui"
	"github.com/vango-dev/featuregrid/pkg/cards"
	"github.com/vango-dev/featuregrid/pkg/vdom"
)

// VideoDemo is a product video placeholder. Props.Flipped means playing.
type VideoDemo struct{}

func (VideoDemo) Render(p cards.Props) *vdom.VNode {
	accent := ui.AccentFor(p.Accent)
	label, state := "Play demo", "paused"
	if p.Flipped {
		label, state = "Pause demo", "playing"
	}

	return ui.Card(
		ui.CardChildren(
			ui.CardHeader("",
				ui.CardTitle("Product Demo", "text-lg"),
				ui.CardDescription("2 min overview"),
			),
			ui.CardContent("space-y-3",
				vdom.Div(
					vdom.Class("relative flex aspect-video items-center justify-center rounded-lg bg-gradient-to-br from-slate-800 to-slate-900"),
					vdom.Data("state", state),
					ui.Button(
						ui.IconSize(),
						ui.WithClass("rounded-full "+accent.Solid),
						ui.WithLabel(label),
						ui.WithPressed(p.Flipped),
						ui.WithOnClick(p.ToggleFlip),
						ui.WithChildren(ui.Icon("play", "h-6 w-6 text-white")),
					),
				),
				vdom.Div(
					vdom.Class("flex items-center justify-between text-sm"),
					vdom.Span("Watch full demo"),
					ui.Badge("HD", ui.BadgeOutline()),
				),
			),
		),
	)
}

// CodePreview shows a short SDK snippet.
type CodePreview struct{}

var codePreviewLines = [][2]string{
	{"text-green-400", "// Initialize SDK"},
	{"text-blue-400", "const api = new SDK('your-key')"},
	{"text-green-400", "// Make request"},
	{"text-white", "api.get('/users')"},
}

func (CodePreview) Render(cards.Props) *vdom.VNode {
	lines := vdom.Range(codePreviewLines, func(line [2]string, _ int) *vdom.VNode {
		return vdom.Div(vdom.Class(line[0]), line[1])
	})

	return ui.Card(
		ui.CardChildren(
			ui.CardHeader("",
				ui.CardTitle("API Integration", "text-lg"),
				ui.CardDescription("Simple implementation"),
			),
			ui.CardContent("space-y-3",
				vdom.Pre(
					vdom.Class("overflow-x-auto rounded-lg bg-slate-900 p-4 font-mono text-sm"),
					vdom.Code(lines),
				),
				ui.Badge("JavaScript", ui.BadgeSecondary()),
			),
		),
	)
}

// DeviceMockup lists the supported device classes.
type DeviceMockup struct{}

type device struct{ name, detail string }

func (DeviceMockup) Render(p cards.Props) *vdom.VNode {
	accent := ui.AccentFor(p.Accent)
	devices := []device{
		{"Mobile", "iOS & Android"},
		{"Tablet", "iPad & Android"},
		{"Desktop", "All Browsers"},
	}

	return ui.Card(
		ui.CardChildren(
			ui.CardHeader("",
				ui.CardTitle("Multi-Device Support", "text-lg"),
				ui.CardDescription("Works everywhere"),
			),
			ui.CardContent("",
				vdom.Div(
					vdom.Class("grid grid-cols-3 gap-2 text-center text-xs"),
					vdom.Range(devices, func(d device, _ int) *vdom.VNode {
						return vdom.Div(
							vdom.Class("rounded-lg p-2", accent.Soft),
							vdom.Div(vdom.Class("font-medium"), d.name),
							vdom.Div(vdom.Class("text-muted-foreground"), d.detail),
						)
					}),
				),
			),
		),
	)
}
