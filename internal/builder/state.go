package builder

import (
	"maps"

	"github.com/vango-dev/featuregrid/pkg/layout"
)

// Stage is the step of the builder workflow.
type Stage int

const (
	// StageLayout edits the layout; no block is selected.
	StageLayout Stage = iota
	// StageCard picks the card of the selected block.
	StageCard
)

func (s Stage) String() string {
	if s == StageCard {
		return "card"
	}
	return "layout"
}

// MarshalText encodes the stage by name.
func (s Stage) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// PreviewMode selects what the main pane shows.
type PreviewMode string

const (
	PreviewRendered PreviewMode = "preview"
	PreviewCode     PreviewMode = "code"
)

// NoBlock is the Block value when no block is selected.
const NoBlock = -1

// Selection names a card by category and name. Any strings are accepted;
// unknown pairs render as fallbacks.
type Selection struct {
	Category string `json:"category"`
	Name     string `json:"name"`
}

func (s Selection) String() string {
	return s.Category + "/" + s.Name
}

// State is a snapshot of the builder selection.
type State struct {
	Layout  string `json:"layout"`
	Variant string `json:"variant"`
	Stage   Stage  `json:"stage"`
	Block   int    `json:"block"`

	// Card is the card used by slots without an assignment.
	Card        Selection         `json:"card"`
	Assignments map[int]Selection `json:"assignments"`

	ViewMode    layout.ViewMode `json:"viewMode"`
	PreviewMode PreviewMode     `json:"previewMode"`
	Dark        bool            `json:"dark"`
	Theme       string          `json:"theme"`

	Flipped map[int]bool `json:"flipped"`
	Values  map[int]int  `json:"values"`
}

// clone returns a deep copy of s.
func (s State) clone() State {
	s.Assignments = maps.Clone(s.Assignments)
	s.Flipped = maps.Clone(s.Flipped)
	s.Values = maps.Clone(s.Values)
	return s
}

// resetSlots drops per-slot state.
func (s *State) resetSlots() {
	s.Assignments = make(map[int]Selection)
	s.Flipped = make(map[int]bool)
	s.Values = make(map[int]int)
}

// trimSlots drops per-slot state at or above count.
func (s *State) trimSlots(count int) {
	maps.DeleteFunc(s.Assignments, func(i int, _ Selection) bool { return i >= count })
	maps.DeleteFunc(s.Flipped, func(i int, _ bool) bool { return i >= count })
	maps.DeleteFunc(s.Values, func(i int, _ int) bool { return i >= count })
}
