// Package device classifies terminal dimensions into coarse size classes
// that drive responsive layout decisions.
package device

// Class is the coarse screen-size category of the host terminal.
type Class int

const (
	// Phone is for terminals narrower than PhoneMaxWidth (icon-only chrome,
	// navigation collapsed behind a menu toggle).
	Phone Class = iota

	// Tablet is for terminals between PhoneMaxWidth and TabletMaxWidth
	// (abbreviated chrome, navigation still collapsed).
	Tablet

	// Desktop is for anything wider (full inline navigation and search).
	Desktop
)

// Width breakpoints. Height is accepted by Classify for symmetry with
// windowed hosts but terminal heights carry no signal, so it is unused.
const (
	PhoneMaxWidth  = 79
	TabletMaxWidth = 119
)

// Classify returns the size class for the given terminal dimensions.
func Classify(width, _ int) Class {
	switch {
	case width <= PhoneMaxWidth:
		return Phone
	case width <= TabletMaxWidth:
		return Tablet
	default:
		return Desktop
	}
}

// String returns a human-readable name for the class.
func (c Class) String() string {
	switch c {
	case Phone:
		return "phone"
	case Tablet:
		return "tablet"
	case Desktop:
		return "desktop"
	default:
		return "unknown"
	}
}
