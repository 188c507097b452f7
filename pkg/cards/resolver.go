package cards

import (
	"fmt"
	"log/slog"

	"github.com/vango-dev/featuregrid/pkg/vdom"
)

// Outcome classifies a resolution.
type Outcome int

const (
	OutcomeFound    Outcome = iota // card rendered
	OutcomeNotFound                // pair not registered
	OutcomeFailed                  // card panicked
)

// String returns the outcome's metric label.
func (o Outcome) String() string {
	switch o {
	case OutcomeFound:
		return "found"
	case OutcomeNotFound:
		return "not_found"
	case OutcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Observer is notified once per resolution.
type Observer interface {
	ObserveResolve(category, name string, outcome Outcome)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(category, name string, outcome Outcome)

// ObserveResolve calls f.
func (f ObserverFunc) ObserveResolve(category, name string, outcome Outcome) {
	f(category, name, outcome)
}

// ResolverOption configures a Resolver.
type ResolverOption func(*Resolver)

// WithFallback replaces DefaultFallback.
func WithFallback(fn FallbackFunc) ResolverOption {
	return func(r *Resolver) {
		if fn != nil {
			r.fallback = fn
		}
	}
}

// WithObserver sets the resolution observer.
func WithObserver(o Observer) ResolverOption {
	return func(r *Resolver) {
		r.observer = o
	}
}

// WithLogger sets the resolver's logger.
func WithLogger(logger *slog.Logger) ResolverOption {
	return func(r *Resolver) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// Resolver turns a (category, name, props) selection into a VNode.
// It holds no per-call state and is safe for concurrent use when the
// registry is.
type Resolver struct {
	registry *Registry
	fallback FallbackFunc
	observer Observer
	logger   *slog.Logger
}

// NewResolver creates a Resolver over reg.
func NewResolver(reg *Registry, opts ...ResolverOption) *Resolver {
	r := &Resolver{
		registry: reg,
		fallback: DefaultFallback,
		logger:   slog.Default().With("component", "resolver"),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Registry returns the registry the resolver reads from.
func (r *Resolver) Registry() *Registry {
	return r.registry
}

// Resolve renders the card registered under (category, name) with props.
// It never returns nil and never panics: missing pairs and failing cards
// yield the fallback unit.
func (r *Resolver) Resolve(category, name string, props Props) *vdom.VNode {
	node, _ := r.Lookup(category, name, props)
	return node
}

// Lookup is Resolve that also reports how the node was produced.
// Every call invokes the card again; nothing is cached.
func (r *Resolver) Lookup(category, name string, props Props) (*vdom.VNode, Outcome) {
	card, ok := r.registry.Get(category, name)
	if !ok {
		r.logger.Debug("card not found", "category", category, "name", name)
		node := r.renderFallback(Fallback{
			Category:   category,
			Name:       name,
			Outcome:    OutcomeNotFound,
			Suggestion: r.registry.Suggest(category, name),
		})
		r.observe(category, name, OutcomeNotFound)
		return node, OutcomeNotFound
	}

	node, reason, failed := invoke(card, props)
	if failed {
		r.logger.Error("card panicked",
			"category", category,
			"name", name,
			"panic", reason,
		)
		node = r.renderFallback(Fallback{
			Category: category,
			Name:     name,
			Outcome:  OutcomeFailed,
			Reason:   reason,
		})
		r.observe(category, name, OutcomeFailed)
		return node, OutcomeFailed
	}

	if node == nil {
		node = vdom.Fragment()
	}
	r.observe(category, name, OutcomeFound)
	return node, OutcomeFound
}

// invoke calls card.Render, converting a panic into failed=true.
func invoke(card Card, props Props) (node *vdom.VNode, reason string, failed bool) {
	defer func() {
		if p := recover(); p != nil {
			node, reason, failed = nil, fmt.Sprint(p), true
		}
	}()
	return card.Render(props), "", false
}

// renderFallback calls the configured fallback, falling back to
// DefaultFallback if it misbehaves.
func (r *Resolver) renderFallback(f Fallback) (node *vdom.VNode) {
	defer func() {
		if p := recover(); p != nil {
			r.logger.Error("fallback panicked", "panic", p)
			node = DefaultFallback(f)
		}
	}()

	node = r.fallback(f)
	if node == nil {
		node = DefaultFallback(f)
	}
	return node
}

func (r *Resolver) observe(category, name string, outcome Outcome) {
	if r.observer != nil {
		r.observer.ObserveResolve(category, name, outcome)
	}
}
