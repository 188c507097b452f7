package ui

import "github.com/vango-dev/featuregrid/pkg/vdom"

// CardOption configures a Card component.
type CardOption func(*cardConfig)

type cardConfig struct {
	className string
	children  []any
}

// CardClass adds additional CSS classes to the card.
func CardClass(className string) CardOption {
	return func(c *cardConfig) {
		c.className = className
	}
}

// CardChildren sets the card children.
func CardChildren(children ...any) CardOption {
	return func(c *cardConfig) {
		c.children = children
	}
}

// Card renders a card container.
func Card(opts ...CardOption) *vdom.VNode {
	cfg := cardConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	classes := CN(
		"group relative overflow-hidden rounded-lg border bg-card text-card-foreground shadow-sm transition-all duration-300 hover:shadow-lg",
		cfg.className,
	)

	attrs := []any{vdom.Class(classes)}
	attrs = append(attrs, cfg.children...)

	return vdom.Div(attrs...)
}

// CardHeader renders the card header section.
func CardHeader(className string, children ...any) *vdom.VNode {
	attrs := []any{vdom.Class(CN("flex flex-col space-y-1.5 p-6", className))}
	return vdom.Div(append(attrs, children...)...)
}

// CardTitle renders the card title.
func CardTitle(text string, className ...string) *vdom.VNode {
	return vdom.H3(
		vdom.Class(CN(append([]string{"text-xl font-semibold leading-none tracking-tight"}, className...)...)),
		text,
	)
}

// CardDescription renders the card description.
func CardDescription(text string, className ...string) *vdom.VNode {
	return vdom.P(
		vdom.Class(CN(append([]string{"text-sm text-muted-foreground"}, className...)...)),
		text,
	)
}

// CardContent renders the card content section.
func CardContent(className string, children ...any) *vdom.VNode {
	attrs := []any{vdom.Class(CN("p-6 pt-0", className))}
	return vdom.Div(append(attrs, children...)...)
}
