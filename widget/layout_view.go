package widget

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"matui/device"
	"matui/material"
)

// Glyphs for the app-bar trigger buttons.
const (
	glyphMenu   = "☰"
	glyphSearch = "⌕"
	glyphMore   = "⋮"
)

// SearchField describes the app-level search input. The layout only renders
// it; input editing stays with the host (the catalog keeps a textinput).
type SearchField struct {
	Value       string
	Placeholder string
}

// Dialog substitutes the computed sheet layer with custom modal content for
// one render (confirmation prompts and the like). OnDismiss is the message
// the host must route to an Activate(PartNone) transition.
type Dialog struct {
	Content   string
	OnDismiss tea.Msg
}

// Layout describes one render of the responsive application frame: a top app
// bar, collapsible side sheets, a search overlay, a dialog layer and a
// snackbar, composited around the page content. It holds no state of its own;
// the host passes its LayoutState to Render each frame.
type Layout struct {
	Theme   material.Theme
	Width   int
	Height  int
	Title   string
	Menu    Select       // primary navigation
	Search  *SearchField // nil when the app has no search
	Actions []Button
	Dialog  *Dialog // overrides the computed sheet layer when set
	Content string
}

// PartitionActions splits the action list into the buttons shown inline on
// the app bar and the ones collapsed behind the overflow menu. The split is
// deliberately non-monotonic — three actions collapse entirely while two stay
// inline — and must not be "simplified":
//
//	N > 4:  first 2 inline, rest overflow
//	N == 4: first 1 inline, rest overflow
//	N == 3: all 3 overflow
//	N <= 2: all inline
func PartitionActions(actions []Button) (primary, more []Button) {
	switch n := len(actions); {
	case n > 4:
		return actions[:2], actions[2:]
	case n == 4:
		return actions[:1], actions[1:]
	case n == 3:
		return nil, actions
	default:
		return actions, nil
	}
}

// Render composes the full frame for the given layout state. Pure and total:
// empty menus, absent search, and empty action lists all degrade to nothing.
func (l Layout) Render(st LayoutState) string {
	if l.Width <= 0 || l.Height <= 0 {
		return ""
	}
	class := device.Classify(l.Width, l.Height)
	primary, more := PartitionActions(l.Actions)

	canvas := strings.Join(canvasLines(l.Content, l.Width, l.Height), "\n")
	canvas = stamp(canvas, l.renderAppBar(class, primary, more), 0, 0, l.Width, l.Height)

	if snack := st.Snackbar.View(l.Theme.Snackbar, RenderMessage(l.Theme.Snackbar)); snack != "" {
		x := l.Width - lipgloss.Width(snack) - 1
		y := l.Height - lipgloss.Height(snack) - 1
		canvas = stamp(canvas, snack, max(0, x), max(0, y), l.Width, l.Height)
	}

	return l.renderModalLayer(canvas, st, more)
}

// renderModalLayer overlays the sheet, search, or dialog layer behind a scrim.
// An explicit dialog override wins over the computed sheet content.
func (l Layout) renderModalLayer(canvas string, st LayoutState, more []Button) string {
	if l.Dialog != nil {
		return RenderDialog(l.Theme, canvas, l.Dialog.Content, l.Width, l.Height)
	}
	if st.Active == PartNone {
		return canvas
	}
	dimmed := Scrim(l.Theme.Scrim, canvas, l.Width, l.Height)
	switch st.Active {
	case PartLeftSheet:
		return stamp(dimmed, l.renderLeftSheet(), 0, 0, l.Width, l.Height)
	case PartRightSheet:
		sheet := l.renderRightSheet(more)
		x := l.Width - lipgloss.Width(sheet)
		return stamp(dimmed, sheet, max(0, x), 0, l.Width, l.Height)
	case PartSearch:
		return stamp(dimmed, l.renderSearchOverlay(), 0, 1, l.Width, l.Height)
	default:
		return dimmed
	}
}

// renderAppBar draws the single-line top bar: leading navigation, then a
// filler, then the trailing action cluster, all on the bar background.
func (l Layout) renderAppBar(class device.Class, primary, more []Button) string {
	th := l.Theme
	compact := class == device.Phone || class == device.Tablet

	// Navigation collapses behind the menu toggle on small screens, and on
	// any screen once the select outgrows an inline tab row.
	var lead []string
	if compact || len(l.Menu.Options) > 5 {
		lead = append(lead, th.AppBar.Toggle.Render(glyphMenu))
		title := l.Title
		if o, ok := l.Menu.SelectedOption(); ok {
			title = o.Text
		}
		lead = append(lead, th.AppBar.Title.Render(title))
	} else {
		lead = append(lead, th.AppBar.Title.Render(l.Title))
		if row := l.Menu.RenderTabRow(th.Select); row != "" {
			lead = append(lead, " ", row)
		}
	}

	var trail []string
	if l.Search != nil {
		switch class {
		case device.Phone:
			trail = append(trail, th.AppBar.Toggle.Render(glyphSearch))
		case device.Tablet:
			trail = append(trail, th.AppBar.Toggle.Render(glyphSearch+" Search"))
		default:
			// Desktop searches inline; no trigger needed.
			trail = append(trail, l.renderInlineSearch())
		}
	}
	for _, b := range primary {
		trail = append(trail, l.renderBarAction(b, class == device.Phone))
	}
	if len(more) > 0 {
		trail = append(trail, th.AppBar.Toggle.Render(glyphMore))
	}

	leading := lipgloss.JoinHorizontal(lipgloss.Center, lead...)
	trailing := lipgloss.JoinHorizontal(lipgloss.Center, trail...)
	gap := l.Width - lipgloss.Width(leading) - lipgloss.Width(trailing)
	if gap < 1 {
		gap = 1
	}
	return leading + th.AppBar.Bar.Render(strings.Repeat(" ", gap)) + trailing
}

// renderBarAction draws one inline action on the bar, icon-only on phones.
func (l Layout) renderBarAction(b Button, iconOnly bool) string {
	text := b.Label
	if iconOnly {
		text = b.Icon
		if text == "" {
			text = b.Label
		}
	} else if b.Icon != "" {
		text = b.Icon + " " + text
	}
	return l.Theme.AppBar.Toggle.Render(text)
}

func (l Layout) renderInlineSearch() string {
	th := l.Theme
	text := l.Search.Value
	if text == "" {
		text = l.Search.Placeholder
	}
	return th.Search.Inline.Render(th.Search.Prompt + text)
}

// renderLeftSheet draws the full-height navigation panel: page title plus the
// select as a vertical list.
func (l Layout) renderLeftSheet() string {
	th := l.Theme
	content := th.Sheet.Title.Render(l.Title)
	if list := l.Menu.RenderSheet(th.Select); list != "" {
		content += "\n\n" + list
	}
	return th.Sheet.Panel.
		Width(th.Sheet.Width).
		Height(l.Height - 2).
		Render(content)
}

// renderRightSheet draws the overflow panel listing the collapsed actions.
func (l Layout) renderRightSheet(more []Button) string {
	th := l.Theme
	items := make([]string, len(more))
	for i, b := range more {
		items[i] = b.Render(th.Button, TextButton)
	}
	return th.Sheet.Panel.
		Width(th.Sheet.Width).
		Height(l.Height - 2).
		Render(strings.Join(items, "\n"))
}

// renderSearchOverlay draws the search field full-width, styled apart from
// the inline variant.
func (l Layout) renderSearchOverlay() string {
	th := l.Theme
	var value, placeholder string
	if l.Search != nil {
		value, placeholder = l.Search.Value, l.Search.Placeholder
	}
	text := value
	if text == "" {
		text = placeholder
	}
	return th.Search.Overlay.
		Width(l.Width - 2).
		Render(th.Search.Prompt + text)
}
