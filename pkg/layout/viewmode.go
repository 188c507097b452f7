package layout

import "fmt"

// ViewMode simulates a device width.
type ViewMode string

const (
	Mobile  ViewMode = "mobile"
	Tablet  ViewMode = "tablet"
	Desktop ViewMode = "desktop"
)

// ViewModes lists the modes in toolbar order.
var ViewModes = []ViewMode{Desktop, Tablet, Mobile}

// ParseViewMode parses a view mode name.
func ParseViewMode(s string) (ViewMode, error) {
	switch m := ViewMode(s); m {
	case Mobile, Tablet, Desktop:
		return m, nil
	default:
		return "", fmt.Errorf("layout: unknown view mode %q", s)
	}
}

// Columns clamps cols to what fits the mode: one on mobile, at most
// two on tablet and at most four on desktop.
func (m ViewMode) Columns(cols int) int {
	if cols < 1 {
		cols = 1
	}
	switch m {
	case Mobile:
		return 1
	case Tablet:
		return min(cols, 2)
	default:
		return min(cols, 4)
	}
}

// GridClasses returns the grid-cols class for cols columns in this mode.
func (m ViewMode) GridClasses(cols int) string {
	return fmt.Sprintf("grid-cols-%d", m.Columns(cols))
}

// ContainerClasses returns the section container classes, a realistic
// page width for each device.
func (m ViewMode) ContainerClasses() string {
	switch m {
	case Mobile:
		return "max-w-sm mx-auto px-4 py-8"
	case Tablet:
		return "max-w-4xl mx-auto px-6 py-12"
	default:
		return "max-w-6xl mx-auto px-8 py-16"
	}
}

// FrameClasses returns the classes of the simulated device frame.
func (m ViewMode) FrameClasses() string {
	switch m {
	case Mobile:
		return "w-[375px] mx-auto"
	case Tablet:
		return "w-[768px] mx-auto"
	default:
		return "w-full"
	}
}
