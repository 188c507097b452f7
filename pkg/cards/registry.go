package cards

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/agnivade/levenshtein"
)

var (
	// ErrInvalidKey is returned when a category or name is not an identifier.
	ErrInvalidKey = errors.New("cards: invalid key")

	// ErrNilCard is returned when registering a nil card.
	ErrNilCard = errors.New("cards: nil card")

	// ErrDuplicate is returned when a pair is registered twice under the
	// Reject policy.
	ErrDuplicate = errors.New("cards: duplicate registration")
)

// DuplicatePolicy decides what Register does with an existing pair.
type DuplicatePolicy int

const (
	// Overwrite replaces the existing entry (last write wins).
	Overwrite DuplicatePolicy = iota
	// Reject keeps the existing entry and returns ErrDuplicate.
	Reject
)

// String returns the policy's configuration name.
func (p DuplicatePolicy) String() string {
	switch p {
	case Overwrite:
		return "overwrite"
	case Reject:
		return "reject"
	default:
		return fmt.Sprintf("DuplicatePolicy(%d)", int(p))
	}
}

// ParseDuplicatePolicy parses "overwrite" or "reject". The empty string
// means Overwrite.
func ParseDuplicatePolicy(s string) (DuplicatePolicy, error) {
	switch s {
	case "", "overwrite":
		return Overwrite, nil
	case "reject":
		return Reject, nil
	default:
		return Overwrite, fmt.Errorf("cards: unknown duplicate policy %q", s)
	}
}

// Entry identifies a registered card.
type Entry struct {
	Category string `json:"category"`
	Name     string `json:"name"`
}

// String returns "category/name".
func (e Entry) String() string {
	return e.Category + "/" + e.Name
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithDuplicatePolicy sets how re-registration is handled.
func WithDuplicatePolicy(p DuplicatePolicy) RegistryOption {
	return func(r *Registry) {
		r.policy = p
	}
}

// WithRegistryLogger sets the logger used for registration events.
func WithRegistryLogger(logger *slog.Logger) RegistryOption {
	return func(r *Registry) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// Registry maps category and name to a Card.
// It is safe for concurrent use.
type Registry struct {
	mu     sync.RWMutex
	cards  map[string]map[string]Card
	policy DuplicatePolicy
	logger *slog.Logger
}

// NewRegistry creates an empty registry.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{
		cards:  make(map[string]map[string]Card),
		policy: Overwrite,
		logger: slog.Default().With("component", "cards"),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Policy returns the registry's duplicate policy.
func (r *Registry) Policy() DuplicatePolicy {
	return r.policy
}

// Register adds card under (category, name).
func (r *Registry) Register(category, name string, card Card) error {
	if !validKey(category) || !validKey(name) {
		return fmt.Errorf("%w: %q/%q", ErrInvalidKey, category, name)
	}
	if card == nil {
		return fmt.Errorf("%w: %s/%s", ErrNilCard, category, name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	names, ok := r.cards[category]
	if !ok {
		names = make(map[string]Card)
		r.cards[category] = names
	}

	if _, exists := names[name]; exists {
		if r.policy == Reject {
			return fmt.Errorf("%w: %s/%s", ErrDuplicate, category, name)
		}
		r.logger.Debug("card overwritten", "category", category, "name", name)
	}

	names[name] = card
	return nil
}

// AddCategory declares a category with no cards.
func (r *Registry) AddCategory(category string) error {
	if !validKey(category) {
		return fmt.Errorf("%w: %q", ErrInvalidKey, category)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.cards[category]; !ok {
		r.cards[category] = make(map[string]Card)
	}
	return nil
}

// Get returns the card registered under (category, name).
func (r *Registry) Get(category, name string) (Card, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	card, ok := r.cards[category][name]
	return card, ok
}

// HasCategory reports whether the category is known, even if empty.
func (r *Registry) HasCategory(category string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.cards[category]
	return ok
}

// Categories returns all category names in sorted order.
func (r *Registry) Categories() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, 0, len(r.cards))
	for category := range r.cards {
		out = append(out, category)
	}
	sort.Strings(out)
	return out
}

// Names returns the card names of a category in sorted order.
func (r *Registry) Names(category string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := r.cards[category]
	out := make([]string, 0, len(names))
	for name := range names {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Entries returns every registered pair, sorted by category then name.
func (r *Registry) Entries() []Entry {
	var out []Entry
	for _, category := range r.Categories() {
		for _, name := range r.Names(category) {
			out = append(out, Entry{Category: category, Name: name})
		}
	}
	return out
}

// Len returns the number of registered cards.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n := 0
	for _, names := range r.cards {
		n += len(names)
	}
	return n
}

// Suggest returns the registered pair closest to (category, name), as
// "category/name", or "" if nothing is close enough. Names in the same
// category are preferred.
func (r *Registry) Suggest(category, name string) string {
	if name == "" {
		return ""
	}

	best, bestDist := "", -1
	for _, candidate := range r.Names(category) {
		d := levenshtein.ComputeDistance(name, candidate)
		if d <= maxDistance(name) && (bestDist < 0 || d < bestDist) {
			best, bestDist = category+"/"+candidate, d
		}
	}
	if best != "" {
		return best
	}

	// Same name under another category, or a typo in the category.
	target := category + "/" + name
	for _, e := range r.Entries() {
		d := levenshtein.ComputeDistance(name, e.Name)
		if d > maxDistance(name) {
			d = levenshtein.ComputeDistance(target, e.String())
			if d > maxDistance(target) {
				continue
			}
		}
		if bestDist < 0 || d < bestDist {
			best, bestDist = e.String(), d
		}
	}
	return best
}

// maxDistance is the largest edit distance still worth suggesting.
func maxDistance(s string) int {
	if d := len(s) / 3; d > 2 {
		return d
	}
	return 2
}

// validKey reports whether s is a non-empty identifier of letters, digits,
// '-' and '_'.
func validKey(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		case c == '-' || c == '_':
		default:
			return false
		}
	}
	return true
}
