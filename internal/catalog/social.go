package catalog

import (
	"fmt"

	"github.com/vango-dev/featuregrid/internal/catalog/ui"
	"github.com/vango-dev/featuregrid/pkg/cards"
	"github.com/vango-dev/featuregrid/pkg/vdom"
)

// UserAvatars shows an avatar cluster, a rating and a testimonial.
type UserAvatars struct{}

func (UserAvatars) Render(p cards.Props) *vdom.VNode {
	accent := ui.AccentFor(p.Accent)

	return ui.Card(
		ui.CardChildren(
			ui.CardHeader("",
				ui.CardTitle("Trusted by Teams", "text-lg"),
				ui.CardDescription("Join 10,000+ users"),
			),
			ui.CardContent("space-y-4",
				vdom.Div(
					vdom.Class("flex -space-x-2"),
					vdom.Times(5, func(i int) *vdom.VNode {
						return avatar(fmt.Sprintf("U%d", i+1), accent)
					}),
				),
				vdom.Div(
					vdom.Class("flex items-center"),
					vdom.AriaLabel("Rated 4.9 out of 5"),
					vdom.Times(5, func(int) *vdom.VNode {
						return ui.Icon("star", "h-4 w-4 fill-yellow-400 text-yellow-400")
					}),
					vdom.Span(vdom.Class("ml-2 text-sm font-medium"), "4.9"),
				),
				vdom.P(
					vdom.Class("text-sm text-muted-foreground"),
					`"Amazing product! Our team productivity increased by 40%"`,
				),
			),
		),
	)
}

func avatar(initials string, accent ui.Accent) *vdom.VNode {
	return vdom.Span(
		vdom.Class("flex h-10 w-10 items-center justify-center rounded-full border-2 border-background text-xs font-medium", accent.Soft, accent.Text),
		initials,
	)
}

// LiveActivity is a feed of recent user actions.
type LiveActivity struct{}

var activityFeed = []struct{ initials, action, when string }{
	{"JS", "John just signed up", "2 seconds ago"},
	{"MK", "Maria completed setup", "1 minute ago"},
	{"AL", "Alex upgraded to Pro", "3 minutes ago"},
}

func (LiveActivity) Render(p cards.Props) *vdom.VNode {
	accent := ui.AccentFor(p.Accent)

	items := make([]*vdom.VNode, 0, len(activityFeed))
	for _, a := range activityFeed {
		items = append(items, vdom.Li(
			vdom.Class("flex items-center gap-3"),
			avatar(a.initials, accent),
			vdom.Div(
				vdom.Div(vdom.Class("text-sm"), a.action),
				vdom.Div(vdom.Class("text-xs text-muted-foreground"), a.when),
			),
		))
	}

	return ui.Card(
		ui.CardChildren(
			ui.CardHeader("",
				vdom.Div(
					vdom.Class("flex items-center gap-2"),
					ui.CardTitle("Live Activity", "text-lg"),
					vdom.Span(vdom.Class("h-2 w-2 animate-pulse rounded-full bg-green-500"), vdom.AriaHidden(true)),
				),
				ui.CardDescription("Real-time user actions"),
			),
			ui.CardContent("",
				vdom.Ul(vdom.Class("space-y-3"), items),
			),
		),
	)
}

// AchievementBadge lists awards.
type AchievementBadge struct{}

func (AchievementBadge) Render(p cards.Props) *vdom.VNode {
	accent := ui.AccentFor(p.Accent)
	awards := []string{"Best Innovation", "User's Choice", "Editor's Pick"}

	return ui.Card(
		ui.CardChildren(
			ui.CardHeader("text-center",
				vdom.Div(
					vdom.Class("mx-auto mb-2 flex h-16 w-16 items-center justify-center rounded-full", accent.Soft),
					ui.Icon("star", "h-8 w-8", accent.Text),
				),
				ui.CardTitle("Award Winner", "text-lg"),
				ui.CardDescription("Product of the Year 2024"),
			),
			ui.CardContent("space-y-2",
				vdom.Range(awards, func(award string, _ int) *vdom.VNode {
					return vdom.Div(
						vdom.Class("flex items-center gap-2"),
						ui.Icon("check", "h-4 w-4 text-green-600"),
						vdom.Span(vdom.Class("text-sm"), award),
					)
				}),
				vdom.Div(
					vdom.Class("pt-2 text-xs text-muted-foreground"),
					"Recognized by TechCrunch, ProductHunt, and Gartner",
				),
			),
		),
	)
}
