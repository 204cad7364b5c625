package catalog

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"matui/device"
	"matui/material"
	"matui/widget"
)

// PageContext is what a page gets to render itself: the theme, the width it
// must fit, and a read-only view of the layout state (for pages that
// visualize it, like the snackbar demo).
type PageContext struct {
	Theme material.Theme
	Width int
	State widget.LayoutState
}

// Page is one demo screen in the catalog. Pages follow the same Elm shape as
// the app: value in, value out.
type Page interface {
	Title() string
	Init() tea.Cmd
	Update(msg tea.Msg) (Page, tea.Cmd)
	View(ctx PageContext) string
}

// notifyMsg queues a snackbar message on the app's layout state.
type notifyMsg struct {
	text   string
	action *widget.Button
}

// showDialogMsg opens the modal dialog override.
type showDialogMsg struct {
	title string
	body  string
}

func defaultPages(th material.Theme) []Page {
	return []Page{
		&buttonsPage{},
		&selectPage{sel: widget.Select{
			Selected: 0,
			Options: []widget.Option{
				{Text: "Inbox", Icon: "▣"},
				{Text: "Starred", Icon: "★"},
				{Text: "Sent", Icon: "➤"},
				{Text: "Archive", Icon: "▤"},
			},
		}},
		&snackbarPage{},
		&dialogPage{},
		newTablePage(),
		&progressPage{indicator: widget.NewProgressIndicator(th.Progress, "Working…")},
		&layoutPage{},
	}
}

// --- buttons -------------------------------------------------------------

type buttonsPage struct {
	pressed int
}

func (p *buttonsPage) Title() string { return "Buttons" }
func (p *buttonsPage) Init() tea.Cmd { return nil }

func (p *buttonsPage) Update(msg tea.Msg) (Page, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok && k.String() == "enter" {
		p.pressed++
		return p, func() tea.Msg {
			return notifyMsg{text: fmt.Sprintf("Pressed %d time(s)", p.pressed)}
		}
	}
	return p, nil
}

func (p *buttonsPage) View(ctx PageContext) string {
	th := ctx.Theme
	ok := widget.Button{Label: "Submit", Icon: "✓"}
	cancel := widget.Button{Label: "Cancel"}
	off := widget.Button{Label: "Disabled", Disabled: true}
	rows := []string{
		"Contained  " + ok.Render(th.Button, widget.Contained),
		"Outlined   " + cancel.Render(th.Button, widget.Outlined),
		"Text       " + cancel.Render(th.Button, widget.TextButton),
		"Icon       " + ok.RenderIcon(th.Button),
		"Disabled   " + off.Render(th.Button, widget.Contained),
		"",
		"enter: press the contained button (queues a snackbar)",
	}
	return strings.Join(rows, "\n")
}

// --- select / tabs -------------------------------------------------------

type selectPage struct {
	sel widget.Select
}

func (p *selectPage) Title() string { return "Selects" }
func (p *selectPage) Init() tea.Cmd { return nil }

func (p *selectPage) Update(msg tea.Msg) (Page, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "left", "h":
			if p.sel.Selected > 0 {
				p.sel.Selected--
			}
		case "right", "l":
			if p.sel.Selected < len(p.sel.Options)-1 {
				p.sel.Selected++
			}
		}
	}
	return p, nil
}

func (p *selectPage) View(ctx PageContext) string {
	th := ctx.Theme
	rows := []string{
		"Tab row:",
		p.sel.RenderTabRow(th.Select),
		"",
		"Toggle row:",
		p.sel.RenderToggleRow(th.Select),
		"",
		"Sheet list:",
		p.sel.RenderSheet(th.Select),
		"",
		"←/→: change selection",
	}
	return strings.Join(rows, "\n")
}

// --- snackbar ------------------------------------------------------------

type snackbarPage struct {
	sent int
}

func (p *snackbarPage) Title() string { return "Snackbars" }
func (p *snackbarPage) Init() tea.Cmd { return nil }

func (p *snackbarPage) Update(msg tea.Msg) (Page, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok && k.String() == "n" {
		p.sent++
		n := p.sent
		return p, func() tea.Msg {
			return notifyMsg{
				text:   fmt.Sprintf("Message #%d", n),
				action: &widget.Button{Label: "UNDO"},
			}
		}
	}
	return p, nil
}

func (p *snackbarPage) View(ctx PageContext) string {
	q := ctx.State.Snackbar
	status := "nothing showing"
	if _, remaining, ok := q.Current(); ok {
		status = fmt.Sprintf("showing, %s left", remaining)
	}
	return strings.Join([]string{
		"Messages display one at a time, oldest first; new ones",
		"queue behind the current message without interrupting it.",
		"",
		fmt.Sprintf("Current: %s", status),
		fmt.Sprintf("Queued:  %d", q.Queued()),
		"",
		"n: queue a message",
		"Open a side sheet (m) to see the countdown freeze.",
	}, "\n")
}

// --- dialog --------------------------------------------------------------

type dialogPage struct{}

func (p *dialogPage) Title() string { return "Dialogs" }
func (p *dialogPage) Init() tea.Cmd { return nil }

func (p *dialogPage) Update(msg tea.Msg) (Page, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok && k.String() == "enter" {
		return p, func() tea.Msg {
			return showDialogMsg{
				title: "Discard draft?",
				body:  "This cannot be undone.\n\nesc: cancel",
			}
		}
	}
	return p, nil
}

func (p *dialogPage) View(ctx PageContext) string {
	return strings.Join([]string{
		"Dialogs replace the sheet layer with custom modal content",
		"behind a scrim. Dismissing always clears the active overlay.",
		"",
		"enter: open a confirmation dialog",
	}, "\n")
}

// --- sortable table ------------------------------------------------------

type tablePage struct {
	table widget.Table
}

func newTablePage() *tablePage {
	return &tablePage{table: widget.NewTable(
		[]string{"Dessert", "Calories", "Fat (g)"},
		[][]string{
			{"Frozen yogurt", "159", "6.0"},
			{"Ice cream sandwich", "237", "9.0"},
			{"Eclair", "262", "16.0"},
			{"Cupcake", "305", "3.7"},
			{"Gingerbread", "356", "16.0"},
		},
	)}
}

func (p *tablePage) Title() string { return "Tables" }
func (p *tablePage) Init() tea.Cmd { return nil }

func (p *tablePage) Update(msg tea.Msg) (Page, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "1", "2", "3":
			p.table = p.table.SortBy(int(k.String()[0] - '1'))
		}
	}
	return p, nil
}

func (p *tablePage) View(ctx PageContext) string {
	return p.table.Render(ctx.Theme.Table) +
		"\n1/2/3: sort by column (again to flip direction)"
}

// --- progress ------------------------------------------------------------

type progressPage struct {
	indicator widget.ProgressIndicator
}

func (p *progressPage) Title() string { return "Progress" }

func (p *progressPage) Init() tea.Cmd {
	return p.indicator.Init()
}

func (p *progressPage) Update(msg tea.Msg) (Page, tea.Cmd) {
	var cmd tea.Cmd
	p.indicator, cmd = p.indicator.Update(msg)
	return p, cmd
}

func (p *progressPage) View(ctx PageContext) string {
	return "Indeterminate:\n\n" + p.indicator.View(ctx.Theme.Progress)
}

// --- layout --------------------------------------------------------------

type layoutPage struct{}

func (p *layoutPage) Title() string { return "Layout" }
func (p *layoutPage) Init() tea.Cmd { return nil }

func (p *layoutPage) Update(msg tea.Msg) (Page, tea.Cmd) {
	return p, nil
}

func (p *layoutPage) View(ctx PageContext) string {
	class := device.Classify(ctx.Width, 0)
	return strings.Join([]string{
		fmt.Sprintf("Terminal width %d → device class %q", ctx.Width, class),
		"",
		fmt.Sprintf("  phone   ≤ %d cols", device.PhoneMaxWidth),
		fmt.Sprintf("  tablet  ≤ %d cols", device.TabletMaxWidth),
		"  desktop   wider",
		"",
		"Resize the terminal to watch the app bar adapt: below the",
		"tablet breakpoint navigation collapses behind ☰ and search",
		"moves into an overlay (/).",
	}, "\n")
}
