package widget

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"
)

func testLayout(width int) Layout {
	return Layout{
		Theme:  testTheme(),
		Width:  width,
		Height: 24,
		Title:  "Mail",
		Menu: Select{
			Selected: 1,
			Options: []Option{
				{Text: "Inbox"},
				{Text: "Starred"},
				{Text: "Sent"},
			},
		},
		Search:  &SearchField{Placeholder: "Find"},
		Content: "page body",
	}
}

func plain(s string) string {
	return ansi.Strip(s)
}

func TestRenderEmptyDimensions(t *testing.T) {
	l := testLayout(0)
	require.Empty(t, l.Render(NewLayoutState()))

	l = testLayout(120)
	l.Height = 0
	require.Empty(t, l.Render(NewLayoutState()))
}

func TestRenderDesktopInlineNavigation(t *testing.T) {
	out := plain(testLayout(160).Render(NewLayoutState()))

	require.Contains(t, out, "Mail", "title shown inline on desktop")
	require.Contains(t, out, "Inbox")
	require.Contains(t, out, "Starred")
	require.Contains(t, out, "Sent")
	require.NotContains(t, out, glyphMenu, "no menu toggle on desktop with few options")
	require.Contains(t, out, "Find", "search field inline on desktop")
	require.NotContains(t, out, glyphSearch+" Search", "no search trigger on desktop")
	require.Contains(t, out, "page body")
}

func TestRenderPhoneCollapsesNavigation(t *testing.T) {
	out := plain(testLayout(60).Render(NewLayoutState()))

	require.Contains(t, out, glyphMenu, "phone collapses navigation behind the toggle")
	require.Contains(t, out, "Starred", "bar shows the selected option's label")
	require.NotContains(t, out, "Inbox", "unselected options stay off the bar")
	require.Contains(t, out, glyphSearch, "phone gets an icon-only search trigger")
	require.NotContains(t, out, glyphSearch+" Search")
}

func TestRenderPhoneFallsBackToTitle(t *testing.T) {
	l := testLayout(60)
	l.Menu.Selected = -1
	out := plain(l.Render(NewLayoutState()))

	require.Contains(t, out, "Mail", "no selection falls back to the page title")
}

func TestRenderTabletSearchTriggerIsLabeled(t *testing.T) {
	out := plain(testLayout(100).Render(NewLayoutState()))

	require.Contains(t, out, glyphMenu)
	require.Contains(t, out, glyphSearch+" Search")
}

func TestRenderManyOptionsCollapseEvenOnDesktop(t *testing.T) {
	l := testLayout(160)
	l.Menu.Options = []Option{
		{Text: "One"}, {Text: "Two"}, {Text: "Three"},
		{Text: "Four"}, {Text: "Five"}, {Text: "Six"},
	}
	l.Menu.Selected = 0
	out := plain(l.Render(NewLayoutState()))

	require.Contains(t, out, glyphMenu, "more than 5 options collapses the select")
	require.NotContains(t, out, "Six")
}

func TestRenderNoSearchConfigured(t *testing.T) {
	l := testLayout(60)
	l.Search = nil
	out := plain(l.Render(NewLayoutState()))

	require.NotContains(t, out, glyphSearch)
}

func TestRenderOverflowButton(t *testing.T) {
	l := testLayout(160)
	l.Actions = []Button{{Label: "Cut"}, {Label: "Copy"}}
	out := plain(l.Render(NewLayoutState()))
	require.NotContains(t, out, glyphMore, "two actions stay inline")
	require.Contains(t, out, "Cut")
	require.Contains(t, out, "Copy")

	l.Actions = []Button{{Label: "Cut"}, {Label: "Copy"}, {Label: "Paste"}}
	out = plain(l.Render(NewLayoutState()))
	require.Contains(t, out, glyphMore, "three actions collapse entirely")
	require.NotContains(t, out, "Cut")
}

func TestRenderPhoneActionsAreIconOnly(t *testing.T) {
	l := testLayout(60)
	l.Actions = []Button{{Label: "Compose", Icon: "✎"}}
	out := plain(l.Render(NewLayoutState()))

	require.Contains(t, out, "✎")
	require.NotContains(t, out, "Compose")
}

func TestRenderLeftSheetListsOptions(t *testing.T) {
	l := testLayout(160)
	out := plain(l.Render(NewLayoutState().Activate(PartLeftSheet)))

	lines := strings.Split(out, "\n")
	var inbox, sent int
	for i, line := range lines {
		if strings.Contains(line, "Inbox") {
			inbox = i
		}
		if strings.Contains(line, "Sent") {
			sent = i
		}
	}
	require.Greater(t, sent, inbox, "sheet renders options as a vertical list")
}

func TestRenderRightSheetListsOverflowActions(t *testing.T) {
	l := testLayout(160)
	l.Actions = []Button{
		{Label: "Cut"}, {Label: "Copy"}, {Label: "Paste"}, {Label: "Share"},
	}
	out := plain(l.Render(NewLayoutState().Activate(PartRightSheet)))

	// N==4: Cut inline, the other three in the sheet.
	require.Contains(t, out, "Copy")
	require.Contains(t, out, "Paste")
	require.Contains(t, out, "Share")
}

func TestRenderSearchOverlay(t *testing.T) {
	l := testLayout(60)
	l.Search = &SearchField{Value: "inv", Placeholder: "Find"}
	out := plain(l.Render(NewLayoutState().Activate(PartSearch)))

	require.Contains(t, out, "inv", "overlay shows the typed query")
}

func TestRenderDialogOverridesSheet(t *testing.T) {
	l := testLayout(160)
	l.Dialog = &Dialog{Content: DialogCard(l.Theme.Dialog, "Discard?", "y/n")}
	out := plain(l.Render(NewLayoutState().Activate(PartLeftSheet)))

	require.Contains(t, out, "Discard?", "dialog override wins over the sheet")
}

func TestRenderSnackbarBottomRight(t *testing.T) {
	l := testLayout(160)
	st := NewLayoutState().
		QueueMessage(Message{Text: "Saved"}).
		TimePassed(time.Second)
	out := plain(l.Render(st))

	lines := strings.Split(out, "\n")
	found := -1
	for i, line := range lines {
		if strings.Contains(line, "Saved") {
			found = i
		}
	}
	require.Greater(t, found, len(lines)/2, "snackbar sits in the bottom half")
	require.Greater(t, strings.Index(lines[found], "Saved"), l.Width/2,
		"snackbar sits in the right half")
}

func TestRenderCanvasDimensions(t *testing.T) {
	l := testLayout(80)
	out := l.Render(NewLayoutState())

	lines := strings.Split(out, "\n")
	require.Len(t, lines, l.Height)
	for i, line := range lines {
		require.Equal(t, l.Width, ansi.StringWidth(line), "line %d", i)
	}
}
