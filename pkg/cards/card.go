package cards

import "github.com/vango-dev/featuregrid/pkg/vdom"

// Card renders one visual unit placeable in a layout slot.
//
// Render must be a pure function of props. Stateful cards keep their state
// in the caller and receive it through Props together with the callbacks
// that change it.
type Card interface {
	Render(props Props) *vdom.VNode
}

// CardFunc adapts a plain function to the Card interface.
type CardFunc func(props Props) *vdom.VNode

// Render calls f(props).
func (f CardFunc) Render(props Props) *vdom.VNode {
	return f(props)
}

// Props is the fixed-shape property record passed to every card.
// Cards read only the fields they use; nothing is validated.
type Props struct {
	// Slot is the layout slot index the card is rendered into.
	Slot int

	// Accent is the theme accent color name (e.g. "blue").
	Accent string

	// Dark reports whether the page is in dark mode.
	Dark bool

	// Flipped and ToggleFlip carry a two-state card's state and the
	// action that flips it.
	Flipped    bool
	ToggleFlip func()

	// Value and SetValue carry a numeric input card's state.
	Value    int
	SetValue func(int)
}
