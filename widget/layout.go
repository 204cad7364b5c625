package widget

import "time"

// Part identifies which single layout overlay is open. The zero value means
// none. Modeling this as one enum rather than per-overlay booleans makes
// "at most one overlay at a time" structural.
type Part int

const (
	PartNone Part = iota
	PartLeftSheet
	PartRightSheet
	PartSearch
)

// String returns a human-readable name for the part.
func (p Part) String() string {
	switch p {
	case PartNone:
		return "none"
	case PartLeftSheet:
		return "left sheet"
	case PartRightSheet:
		return "right sheet"
	case PartSearch:
		return "search"
	default:
		return "unknown"
	}
}

// LayoutState is the persistent state behind the responsive layout: the
// snackbar queue plus whichever overlay is currently open. The host event
// loop owns one LayoutState, advances it with TimePassed on a periodic tick,
// and feeds user interactions through Activate and QueueMessage. All
// transitions are pure: old state in, new state out.
type LayoutState struct {
	Snackbar SnackbarQueue[Message]
	Active   Part
}

// NewLayoutState returns a layout with no open overlay and an empty snackbar
// queue.
func NewLayoutState() LayoutState {
	return LayoutState{Snackbar: NewSnackbarQueue[Message]()}
}

// Activate opens the given part, closing whichever was open before.
// PartNone closes everything. No validation happens here; the presenter
// decides which parts are reachable in the current device class.
func (s LayoutState) Activate(p Part) LayoutState {
	s.Active = p
	return s
}

// QueueMessage appends a snackbar message. The open overlay is untouched.
func (s LayoutState) QueueMessage(m Message) LayoutState {
	s.Snackbar = s.Snackbar.Insert(m)
	return s
}

// TimePassed advances the snackbar queue by elapsed. While a side sheet is
// open the queue is frozen, so transient messages do not expire (or appear)
// under the sheet; the search overlay does not freeze it.
func (s LayoutState) TimePassed(elapsed time.Duration) LayoutState {
	if s.Active == PartLeftSheet || s.Active == PartRightSheet {
		return s
	}
	s.Snackbar = s.Snackbar.TimePassed(elapsed)
	return s
}
