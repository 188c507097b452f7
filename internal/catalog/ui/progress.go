package ui

import (
	"fmt"
	"strconv"

	"github.com/vango-dev/featuregrid/pkg/vdom"
)

// ProgressOption configures a Progress component.
type ProgressOption func(*progressConfig)

type progressConfig struct {
	value     int
	max       int
	className string
	barClass  string
	label     string
}

// ProgressValue sets the current progress value.
func ProgressValue(v int) ProgressOption {
	return func(c *progressConfig) {
		c.value = v
	}
}

// ProgressMax sets the maximum value. Defaults to 100.
func ProgressMax(m int) ProgressOption {
	return func(c *progressConfig) {
		c.max = m
	}
}

// ProgressClass adds classes to the track.
func ProgressClass(className string) ProgressOption {
	return func(c *progressConfig) {
		c.className = className
	}
}

// ProgressBarClass sets the classes of the filled bar.
func ProgressBarClass(className string) ProgressOption {
	return func(c *progressConfig) {
		c.barClass = className
	}
}

// ProgressLabel sets the accessible label.
func ProgressLabel(label string) ProgressOption {
	return func(c *progressConfig) {
		c.label = label
	}
}

// Progress renders a horizontal progress bar.
func Progress(opts ...ProgressOption) *vdom.VNode {
	cfg := progressConfig{max: 100, barClass: "bg-primary"}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.max <= 0 {
		cfg.max = 100
	}

	value := min(max(cfg.value, 0), cfg.max)
	percent := value * 100 / cfg.max

	attrs := []any{
		vdom.Class(CN("relative h-2 w-full overflow-hidden rounded-full bg-secondary", cfg.className)),
		vdom.Role("progressbar"),
		vdom.AriaValueNow(value),
		vdom.Attr{Key: "aria-valuemin", Value: "0"},
		vdom.Attr{Key: "aria-valuemax", Value: strconv.Itoa(cfg.max)},
	}
	if cfg.label != "" {
		attrs = append(attrs, vdom.AriaLabel(cfg.label))
	}
	attrs = append(attrs, vdom.Div(
		vdom.Class(CN("h-full transition-all", cfg.barClass)),
		vdom.StyleAttr(fmt.Sprintf("width: %d%%", percent)),
	))

	return vdom.Div(attrs...)
}
