package ui

import "github.com/vango-dev/featuregrid/pkg/vdom"

// BadgeOption configures a Badge component.
type BadgeOption func(*badgeConfig)

type badgeConfig struct {
	variant   Variant
	className string
}

// BadgeSecondary sets the badge to secondary variant.
func BadgeSecondary() BadgeOption {
	return func(c *badgeConfig) {
		c.variant = VariantSecondary
	}
}

// BadgeOutline sets the badge to outline variant.
func BadgeOutline() BadgeOption {
	return func(c *badgeConfig) {
		c.variant = VariantOutline
	}
}

// BadgeSuccess sets the badge to success variant.
func BadgeSuccess() BadgeOption {
	return func(c *badgeConfig) {
		c.variant = VariantSuccess
	}
}

// BadgeWarning sets the badge to warning variant.
func BadgeWarning() BadgeOption {
	return func(c *badgeConfig) {
		c.variant = VariantWarning
	}
}

// BadgeClass adds additional CSS classes.
func BadgeClass(className string) BadgeOption {
	return func(c *badgeConfig) {
		c.className = className
	}
}

var badgeVariantClasses = map[Variant]string{
	VariantDefault:   "border-transparent bg-primary text-primary-foreground",
	VariantSecondary: "border-transparent bg-secondary text-secondary-foreground",
	VariantOutline:   "text-foreground",
	VariantSuccess:   "border-transparent bg-green-100 text-green-700",
	VariantWarning:   "border-transparent bg-yellow-100 text-yellow-700",
}

// Badge renders a badge/tag element.
func Badge(text string, opts ...BadgeOption) *vdom.VNode {
	cfg := badgeConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	classes := CN(
		"inline-flex items-center rounded-full border px-2.5 py-0.5 text-xs font-semibold",
		badgeVariantClasses[cfg.variant],
		cfg.className,
	)

	return vdom.Span(vdom.Class(classes), text)
}
