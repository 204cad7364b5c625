package widget

import (
	"slices"
	"time"

	"matui/material"
)

// DefaultSnackbarDuration is how long a promoted message stays on screen
// unless the queue was configured with WithDuration.
const DefaultSnackbarDuration = 10 * time.Second

// SnackbarQueue holds messages waiting to be shown plus the one currently on
// screen with its remaining display time. At most one message is visible at a
// time; newly inserted messages queue behind it in FIFO order.
//
// The queue does not own a timer. The host event loop must call TimePassed
// with real elapsed time (e.g. from a one-second tick) to advance it.
type SnackbarQueue[T any] struct {
	pending   []T
	current   T
	remaining time.Duration
	showing   bool
	duration  time.Duration // 0 means DefaultSnackbarDuration
}

// NewSnackbarQueue returns an empty queue with no current message.
func NewSnackbarQueue[T any]() SnackbarQueue[T] {
	return SnackbarQueue[T]{}
}

// WithDuration sets the display duration used when a message is promoted.
// Non-positive values fall back to DefaultSnackbarDuration.
func (q SnackbarQueue[T]) WithDuration(d time.Duration) SnackbarQueue[T] {
	q.duration = d
	return q
}

// Insert appends msg to the pending queue. The currently shown message, if
// any, is not interrupted. Queue depth is unbounded; the caller is
// responsible for not flooding it.
func (q SnackbarQueue[T]) Insert(msg T) SnackbarQueue[T] {
	q.pending = append(slices.Clone(q.pending), msg)
	return q
}

// TimePassed advances the queue by elapsed. If a message is shown its
// remaining time is decremented; on expiry it is dropped and the head of
// pending is promoted with a fresh display duration. If nothing is shown the
// head is promoted first and then charged for the elapsed time. Zero or
// negative elapsed is a no-op.
func (q SnackbarQueue[T]) TimePassed(elapsed time.Duration) SnackbarQueue[T] {
	if elapsed <= 0 {
		return q
	}
	if !q.showing {
		q = q.promote()
		if !q.showing {
			return q
		}
	}
	q.remaining -= elapsed
	if q.remaining <= 0 {
		var zero T
		q.current = zero
		q.showing = false
		q.remaining = 0
		q = q.promote()
	}
	return q
}

// Current returns the shown message and its remaining display time.
func (q SnackbarQueue[T]) Current() (T, time.Duration, bool) {
	return q.current, q.remaining, q.showing
}

// Queued returns how many messages are waiting behind the current one.
func (q SnackbarQueue[T]) Queued() int {
	return len(q.pending)
}

// View renders the current message through render, or returns the empty
// string when nothing is shown. Pure projection; the queue is not mutated.
func (q SnackbarQueue[T]) View(st material.SnackbarStyle, render func(T) string) string {
	if !q.showing {
		return ""
	}
	box := st.Box
	if st.Width > 0 {
		box = box.MaxWidth(st.Width)
	}
	return box.Render(render(q.current))
}

func (q SnackbarQueue[T]) promote() SnackbarQueue[T] {
	if len(q.pending) == 0 {
		return q
	}
	q.current = q.pending[0]
	q.pending = slices.Clone(q.pending[1:])
	q.showing = true
	q.remaining = q.displayDuration()
	return q
}

func (q SnackbarQueue[T]) displayDuration() time.Duration {
	if q.duration > 0 {
		return q.duration
	}
	return DefaultSnackbarDuration
}

// Message is the standard snackbar payload: a line of text plus an optional
// action button. The layout's snackbar queue carries Messages; hosts with
// custom payloads can run their own SnackbarQueue.
type Message struct {
	Text   string
	Action *Button
}

// RenderMessage renders a Message for display inside the snackbar banner.
func RenderMessage(st material.SnackbarStyle) func(Message) string {
	return func(m Message) string {
		out := st.Text.Render(m.Text)
		if m.Action != nil {
			out += "  " + st.Action.Render(m.Action.Label)
		}
		return out
	}
}
