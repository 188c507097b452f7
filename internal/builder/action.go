package builder

import (
	"encoding/json"
	"slices"
	"strings"

	"github.com/vango-dev/featuregrid/internal/errors"
)

// Action types accepted by Apply.
const (
	ActionSelectLayout   = "select-layout"
	ActionSelectVariant  = "select-variant"
	ActionSelectBlock    = "select-block"
	ActionBack           = "back"
	ActionSelectCard     = "select-card"
	ActionSetViewMode    = "set-view-mode"
	ActionSetPreviewMode = "set-preview-mode"
	ActionSetDark        = "set-dark"
	ActionSetTheme       = "set-theme"
	ActionToggleFlip     = "toggle-flip"
	ActionSetValue       = "set-value"
)

// ActionTypes lists every action type in documentation order.
var ActionTypes = []string{
	ActionSelectLayout,
	ActionSelectVariant,
	ActionSelectBlock,
	ActionBack,
	ActionSelectCard,
	ActionSetViewMode,
	ActionSetPreviewMode,
	ActionSetDark,
	ActionSetTheme,
	ActionToggleFlip,
	ActionSetValue,
}

// KnownAction reports whether t is an action type Apply accepts.
func KnownAction(t string) bool {
	return slices.Contains(ActionTypes, t)
}

// Action is a serialized builder operation, as sent by clients.
//
//	{"type": "select-layout", "id": "bento"}
//	{"type": "select-card", "category": "data-viz", "name": "performance-meter"}
//	{"type": "set-value", "slot": 2, "value": 120}
type Action struct {
	Type     string `json:"type"`
	ID       string `json:"id,omitempty"`
	Category string `json:"category,omitempty"`
	Name     string `json:"name,omitempty"`
	Slot     int    `json:"slot,omitempty"`
	Value    int    `json:"value,omitempty"`
	On       bool   `json:"on,omitempty"`
}

// ParseAction decodes a JSON action.
func ParseAction(data []byte) (Action, error) {
	var a Action
	if err := json.Unmarshal(data, &a); err != nil {
		return a, errors.New("E307").
			WithDetail("action is not valid JSON").
			Wrap(err)
	}
	return a, nil
}

// Apply performs a. Invalid actions leave the state unchanged.
func (b *Builder) Apply(a Action) error {
	switch a.Type {
	case ActionSelectLayout:
		return b.SelectLayout(a.ID)
	case ActionSelectVariant:
		return b.SelectVariant(a.ID)
	case ActionSelectBlock:
		return b.SelectBlock(a.Slot)
	case ActionBack:
		b.Back()
	case ActionSelectCard:
		b.SelectCard(a.Category, a.Name)
	case ActionSetViewMode:
		return b.SetViewMode(a.ID)
	case ActionSetPreviewMode:
		return b.SetPreviewMode(a.ID)
	case ActionSetDark:
		b.SetDark(a.On)
	case ActionSetTheme:
		return b.SetTheme(a.ID)
	case ActionToggleFlip:
		return b.ToggleFlip(a.Slot)
	case ActionSetValue:
		return b.SetValue(a.Slot, a.Value)
	default:
		return errors.New("E307").
			WithDetailf("action type %q", a.Type).
			WithSuggestion("Use one of: " + strings.Join(ActionTypes, ", "))
	}
	return nil
}
