package catalog

import (
	"github.com/vango-dev/featuregrid/internal/errors"
	"github.com/vango-dev/featuregrid/pkg/cards"
)

// Builtin is a card renderer shipped with featuregrid.
type Builtin struct {
	Category string
	Name     string
	Card     cards.Card
}

// Builtins returns the built-in cards in catalog order.
func Builtins() []Builtin {
	return []Builtin{
		{"basic", "card-icon-text", IconText{}},
		{"basic", "feature-card", FeatureCard{}},
		{"basic", "stat-card", StatCard{}},
		{"basic", "testimonial", Testimonial{}},

		{"interactive", "flip-card", FlipCard{}},
		{"interactive", "toggle-comparison", ToggleComparison{}},
		{"interactive", "pricing-calculator", PricingCalculator{}},

		{"demo", "video-demo", VideoDemo{}},
		{"demo", "code-preview", CodePreview{}},
		{"demo", "device-mockup", DeviceMockup{}},

		{"data-viz", "performance-meter", PerformanceMeter{}},
		{"data-viz", "analytics-overview", AnalyticsOverview{}},
		{"data-viz", "status-monitor", StatusMonitor{}},

		{"social-proof", "user-avatars", UserAvatars{}},
		{"social-proof", "live-activity", LiveActivity{}},
		{"social-proof", "achievement-badge", AchievementBadge{}},

		{"process", "timeline-process", TimelineProcess{}},
		{"process", "workflow-automation", WorkflowAutomation{}},
		{"process", "progress-journey", ProgressJourney{}},

		{"contextual", "global-presence", GlobalPresence{}},
		{"contextual", "smart-monitoring", SmartMonitoring{}},
		{"contextual", "schedule-optimizer", ScheduleOptimizer{}},
	}
}

// NewRegistry builds the card registry and registers every built-in
// card. It is the only place cards are registered.
func NewRegistry(opts ...cards.RegistryOption) (*cards.Registry, error) {
	reg := cards.NewRegistry(opts...)
	for _, b := range Builtins() {
		if err := reg.Register(b.Category, b.Name, b.Card); err != nil {
			return nil, errors.New("E207").
				WithDetailf("%s/%s", b.Category, b.Name).
				Wrap(err)
		}
	}
	return reg, nil
}

// DeclareCategories adds the catalog's categories to reg, so that
// categories without renderers are still listed.
func DeclareCategories(c *Catalog, reg *cards.Registry) error {
	for _, cat := range c.Categories {
		if err := reg.AddCategory(cat.ID); err != nil {
			return errors.New("E207").
				WithDetailf("category %q", cat.ID).
				Wrap(err)
		}
	}
	return nil
}
