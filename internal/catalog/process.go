package catalog

import (
	"strconv"

	"github.com/vango-dev/featuregrid/internal/catalog/ui"
	"github.com/vango-dev/featuregrid/pkg/cards"
	"github.com/vango-dev/featuregrid/pkg/vdom"
)

type stepStatus string

const (
	stepCompleted stepStatus = "completed"
	stepCurrent   stepStatus = "current"
	stepPending   stepStatus = "pending"
)

// TimelineProcess walks through three setup steps.
type TimelineProcess struct{}

func (TimelineProcess) Render(p cards.Props) *vdom.VNode {
	accent := ui.AccentFor(p.Accent)
	steps := []struct {
		title  string
		status stepStatus
	}{
		{"Create Account", stepCompleted},
		{"Configure Settings", stepCurrent},
		{"Start Using", stepPending},
	}

	items := make([]*vdom.VNode, 0, len(steps))
	for i, s := range steps {
		var marker *vdom.VNode
		switch s.status {
		case stepCompleted:
			marker = vdom.Div(vdom.Class("flex h-8 w-8 items-center justify-center rounded-full bg-green-100 text-green-600"),
				ui.Icon("check", "h-4 w-4"))
		case stepCurrent:
			marker = vdom.Div(vdom.Class("flex h-8 w-8 items-center justify-center rounded-full text-sm font-medium text-white", accent.Solid),
				strconv.Itoa(i+1))
		default:
			marker = vdom.Div(vdom.Class("flex h-8 w-8 items-center justify-center rounded-full bg-gray-100 text-sm font-medium text-gray-400"),
				strconv.Itoa(i+1))
		}

		titleClass := "text-sm"
		if s.status == stepCurrent {
			titleClass = "text-sm font-medium"
		}

		items = append(items, vdom.Li(
			vdom.Class("flex items-center gap-3"),
			vdom.Data("status", string(s.status)),
			marker,
			vdom.Div(
				vdom.Div(vdom.Class(titleClass), s.title),
				vdom.If(s.status == stepCurrent, vdom.Div(vdom.Class("text-xs", accent.Text), "In progress...")),
			),
		))
	}

	return ui.Card(
		ui.CardChildren(
			ui.CardHeader("",
				ui.CardTitle("Setup Process", "text-lg"),
				ui.CardDescription("3 simple steps"),
			),
			ui.CardContent("", vdom.Ol(vdom.Class("space-y-4"), items)),
		),
	)
}

// WorkflowAutomation shows an automated lead pipeline.
type WorkflowAutomation struct{}

func (WorkflowAutomation) Render(p cards.Props) *vdom.VNode {
	accent := ui.AccentFor(p.Accent)
	stages := []string{"New lead detected", "Send welcome email", "Add to CRM"}

	return ui.Card(
		ui.CardChildren(
			ui.CardHeader("",
				vdom.Div(
					vdom.Class("flex items-center gap-2"),
					ui.Icon("zap", "h-5 w-5", accent.Text),
					ui.CardTitle("Auto Workflow", "text-lg"),
				),
				ui.CardDescription("Saves 5 hours per week"),
			),
			ui.CardContent("space-y-2",
				vdom.Range(stages, func(stage string, i int) *vdom.VNode {
					return vdom.Fragment(
						vdom.If(i > 0, vdom.Div(vdom.Class("ml-4 h-4 border-l-2 border-dashed border-gray-300"), vdom.AriaHidden(true))),
						vdom.Div(
							vdom.Class("flex items-center gap-3 rounded-lg p-2", accent.Soft),
							ui.Icon("check", "h-4 w-4 text-green-600"),
							vdom.Span(vdom.Class("text-sm"), stage),
						),
					)
				}),
			),
		),
	)
}

// ProgressJourney shows skill level progression.
type ProgressJourney struct{}

func (ProgressJourney) Render(p cards.Props) *vdom.VNode {
	accent := ui.AccentFor(p.Accent)

	return ui.Card(
		ui.CardChildren(
			ui.CardHeader("",
				vdom.Div(
					vdom.Class("flex items-center gap-2"),
					ui.Icon("trending-up", "h-5 w-5", accent.Text),
					ui.CardTitle("Your Journey", "text-lg"),
				),
				ui.CardDescription("Level up your skills"),
			),
			ui.CardContent("space-y-3",
				vdom.Div(
					vdom.Class("flex justify-between"),
					vdom.Span(vdom.Class("text-sm font-medium"), "Beginner"),
					vdom.Span(vdom.Class("text-sm text-muted-foreground"), "Level 3"),
				),
				ui.Progress(ui.ProgressValue(35), ui.ProgressBarClass(accent.Solid), ui.ProgressLabel("Journey progress")),
				vdom.Div(
					vdom.Class("grid grid-cols-3 text-center text-xs"),
					journeyLevel("Basics", true),
					journeyLevel("Advanced", false),
					journeyLevel("Expert", false),
				),
			),
		),
	)
}

func journeyLevel(name string, reached bool) *vdom.VNode {
	color := "text-muted-foreground"
	if reached {
		color = "font-medium text-green-600"
	}
	return vdom.Div(vdom.Class(color), name)
}
