package ui

import "github.com/vango-dev/featuregrid/pkg/vdom"

// ButtonOption configures a Button component.
type ButtonOption func(*buttonConfig)

type buttonConfig struct {
	variant   Variant
	size      Size
	disabled  bool
	pressed   *bool
	label     string
	className string
	children  []any
	onClick   func()
}

// Outline sets the button to outline variant.
func Outline() ButtonOption {
	return func(c *buttonConfig) {
		c.variant = VariantOutline
	}
}

// Secondary sets the button to secondary variant.
func Secondary() ButtonOption {
	return func(c *buttonConfig) {
		c.variant = VariantSecondary
	}
}

// Ghost sets the button to ghost variant.
func Ghost() ButtonOption {
	return func(c *buttonConfig) {
		c.variant = VariantGhost
	}
}

// Sm sets the button to small size.
func Sm() ButtonOption {
	return func(c *buttonConfig) {
		c.size = SizeSm
	}
}

// Lg sets the button to large size.
func Lg() ButtonOption {
	return func(c *buttonConfig) {
		c.size = SizeLg
	}
}

// IconSize sets the button to a square icon size.
func IconSize() ButtonOption {
	return func(c *buttonConfig) {
		c.size = SizeIcon
	}
}

// WithDisabled sets the disabled state.
func WithDisabled(d bool) ButtonOption {
	return func(c *buttonConfig) {
		c.disabled = d
	}
}

// WithPressed marks a toggle button's state with aria-pressed.
func WithPressed(p bool) ButtonOption {
	return func(c *buttonConfig) {
		c.pressed = &p
	}
}

// WithLabel sets the accessible label.
func WithLabel(label string) ButtonOption {
	return func(c *buttonConfig) {
		c.label = label
	}
}

// WithOnClick sets the click handler.
func WithOnClick(handler func()) ButtonOption {
	return func(c *buttonConfig) {
		c.onClick = handler
	}
}

// WithChildren sets the button children.
func WithChildren(children ...any) ButtonOption {
	return func(c *buttonConfig) {
		c.children = children
	}
}

// WithClass adds additional CSS classes.
func WithClass(className string) ButtonOption {
	return func(c *buttonConfig) {
		c.className = className
	}
}

var buttonVariantClasses = map[Variant]string{
	VariantDefault:   "bg-primary text-primary-foreground hover:bg-primary/90",
	VariantOutline:   "border border-input bg-background hover:bg-accent hover:text-accent-foreground",
	VariantSecondary: "bg-secondary text-secondary-foreground hover:bg-secondary/80",
	VariantGhost:     "hover:bg-accent hover:text-accent-foreground",
}

var buttonSizeClasses = map[Size]string{
	SizeMd:   "h-10 px-4 py-2",
	SizeSm:   "h-9 rounded-md px-3",
	SizeLg:   "h-11 rounded-md px-8",
	SizeIcon: "h-10 w-10",
}

// Button renders a button element with the configured options.
func Button(opts ...ButtonOption) *vdom.VNode {
	cfg := buttonConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	classes := CN(
		"inline-flex items-center justify-center whitespace-nowrap rounded-md text-sm font-medium transition-colors focus-visible:outline-none focus-visible:ring-2 focus-visible:ring-ring disabled:pointer-events-none disabled:opacity-50",
		buttonVariantClasses[cfg.variant],
		buttonSizeClasses[cfg.size],
		cfg.className,
	)

	attrs := []any{
		vdom.Class(classes),
		vdom.Type("button"),
	}
	if cfg.label != "" {
		attrs = append(attrs, vdom.AriaLabel(cfg.label))
	}
	if cfg.pressed != nil {
		attrs = append(attrs, vdom.AriaPressed(*cfg.pressed))
	}
	if cfg.disabled {
		attrs = append(attrs, vdom.Disabled())
	} else if cfg.onClick != nil {
		attrs = append(attrs, vdom.OnClick(cfg.onClick))
	}
	attrs = append(attrs, cfg.children...)

	return vdom.Button(attrs...)
}
