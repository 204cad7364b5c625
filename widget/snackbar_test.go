package widget

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSnackbarInsertDoesNotPromote(t *testing.T) {
	q := NewSnackbarQueue[string]()
	q = q.Insert("a").Insert("b").Insert("c")

	_, _, showing := q.Current()
	require.False(t, showing, "insert alone must never promote")
	require.Equal(t, 3, q.Queued())
}

func TestSnackbarPromotesOnFirstTick(t *testing.T) {
	q := NewSnackbarQueue[string]().WithDuration(10 * time.Second)
	q = q.Insert("a").Insert("b")
	q = q.TimePassed(time.Second)

	msg, remaining, showing := q.Current()
	require.True(t, showing)
	require.Equal(t, "a", msg, "head of pending promotes first")
	require.Equal(t, 9*time.Second, remaining, "promotion is charged for the tick")
	require.Equal(t, 1, q.Queued())
}

func TestSnackbarPartialDecrementLeavesMessage(t *testing.T) {
	q := NewSnackbarQueue[string]().WithDuration(10 * time.Second)
	q = q.Insert("a").Insert("b")
	q = q.TimePassed(time.Second) // a @ 9s
	q = q.TimePassed(4 * time.Second)

	msg, remaining, showing := q.Current()
	require.True(t, showing)
	require.Equal(t, "a", msg)
	require.Equal(t, 5*time.Second, remaining)
	require.Equal(t, 1, q.Queued(), "pending untouched while current survives")
}

func TestSnackbarExpiryPromotesWithFreshDuration(t *testing.T) {
	q := NewSnackbarQueue[string]().WithDuration(4 * time.Second)
	q = q.Insert("a").Insert("b")
	q = q.TimePassed(time.Second) // a @ 3s
	q = q.TimePassed(5 * time.Second)

	msg, remaining, showing := q.Current()
	require.True(t, showing)
	require.Equal(t, "b", msg)
	require.Equal(t, 4*time.Second, remaining, "successor gets an undedecremented duration")
	require.Equal(t, 0, q.Queued())
}

func TestSnackbarImmediateExpiryCascades(t *testing.T) {
	// One tick both promotes the head and expires it when the tick exceeds
	// the display duration.
	q := NewSnackbarQueue[string]().WithDuration(4 * time.Second)
	q = q.Insert("a").Insert("b")
	q = q.TimePassed(5 * time.Second)

	msg, remaining, showing := q.Current()
	require.True(t, showing)
	require.Equal(t, "b", msg)
	require.Equal(t, 4*time.Second, remaining)
}

func TestSnackbarZeroAndNegativeTicksAreNoOps(t *testing.T) {
	q := NewSnackbarQueue[string]().WithDuration(4 * time.Second)
	q = q.Insert("a")

	require.Equal(t, q, q.TimePassed(0))
	require.Equal(t, q, q.TimePassed(-3*time.Second))

	q = q.TimePassed(time.Second)
	require.Equal(t, q, q.TimePassed(0))
	require.Equal(t, q, q.TimePassed(-time.Second), "negative time must not extend the message")
}

func TestSnackbarInsertWhileShowingQueuesBehind(t *testing.T) {
	q := NewSnackbarQueue[string]().WithDuration(10 * time.Second)
	q = q.Insert("a")
	q = q.TimePassed(time.Second)
	q = q.Insert("late")

	msg, _, showing := q.Current()
	require.True(t, showing)
	require.Equal(t, "a", msg, "a new insert must not interrupt the shown message")
	require.Equal(t, 1, q.Queued())
}

func TestSnackbarFIFOOrder(t *testing.T) {
	q := NewSnackbarQueue[string]().WithDuration(2 * time.Second)
	for _, s := range []string{"1", "2", "3"} {
		q = q.Insert(s)
	}
	var seen []string
	for i := 0; i < 6; i++ {
		q = q.TimePassed(time.Second)
		if msg, _, ok := q.Current(); ok {
			if len(seen) == 0 || seen[len(seen)-1] != msg {
				seen = append(seen, msg)
			}
		}
	}
	require.Equal(t, []string{"1", "2", "3"}, seen)
}

func TestSnackbarDrainsToEmpty(t *testing.T) {
	q := NewSnackbarQueue[string]().WithDuration(time.Second)
	q = q.Insert("only")
	q = q.TimePassed(time.Second) // promote + expire
	q = q.TimePassed(time.Second)

	_, _, showing := q.Current()
	require.False(t, showing)
	require.Equal(t, 0, q.Queued())
}

func TestSnackbarViewRendersCurrentOnly(t *testing.T) {
	render := func(s string) string { return s }
	st := testTheme().Snackbar

	q := NewSnackbarQueue[string]().WithDuration(time.Minute)
	require.Empty(t, q.View(st, render))

	q = q.Insert("hello")
	require.Empty(t, q.View(st, render), "pending-only queue shows nothing")

	q = q.TimePassed(time.Second)
	require.Contains(t, q.View(st, render), "hello")
}

func TestSnackbarValueSemantics(t *testing.T) {
	base := NewSnackbarQueue[string]().WithDuration(time.Minute).Insert("a")
	forked := base.Insert("b")

	require.Equal(t, 1, base.Queued(), "insert on a copy must not alias the original")
	require.Equal(t, 2, forked.Queued())
}
