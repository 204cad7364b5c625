// Package catalog is the interactive explorer for the widget library: one
// demo page per widget family, browsable through the responsive layout the
// library itself provides.
package catalog

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sahilm/fuzzy"

	"matui/internal/telemetry"
	"matui/material"
	"matui/widget"
)

// tickInterval drives the snackbar countdown.
const tickInterval = time.Second

type tickMsg time.Time

// jumpMsg switches to page index.
type jumpMsg struct {
	index int
}

// dismissDialogMsg closes the modal dialog and clears the active overlay.
type dismissDialogMsg struct{}

// Model is the catalog's root Bubble Tea model. It owns the LayoutState and
// advances it on every tick; everything else is per-page demo state.
type Model struct {
	theme   material.Theme
	frames  *telemetry.Frames
	state   widget.LayoutState
	pages   []Page
	active  int
	actions []widget.Button
	dialog  *widget.Dialog

	width  int
	height int

	search textinput.Model
	body   viewport.Model
	keys   keyMap
	help   help.Model
}

// New builds the catalog model. frames may be nil (tracing disabled).
func New(th material.Theme, frames *telemetry.Frames) Model {
	search := textinput.New()
	search.Placeholder = "Search pages"
	search.Prompt = th.Search.Prompt
	return Model{
		theme:  th,
		frames: frames,
		state:  widget.NewLayoutState(),
		pages:  defaultPages(th),
		actions: []widget.Button{
			{Label: "Notify", Icon: "✉", OnPress: notifyMsg{text: "Hello from the app bar"}},
			{Label: "About", Icon: "ℹ", OnPress: showDialogMsg{
				title: "matui catalog",
				body:  "Material-styled widgets for Bubble Tea.\n\nesc: close",
			}},
			{Label: "Theme", Icon: "◐", OnPress: notifyMsg{text: "Only the default theme is bundled"}},
			{Label: "Freeze", Icon: "❄", OnPress: notifyMsg{text: "Open a sheet to freeze the snackbar timer"}},
			{Label: "Quit", Icon: "✕", OnPress: tea.QuitMsg{}},
		},
		search: search,
		body:   viewport.New(0, 0),
		keys:   defaultKeyMap(),
		help:   help.New(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tick(), m.pages[m.active].Init())
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	done := m.frames.Frame("update", m.pages[m.active].Title())
	defer done()

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.body.Width = msg.Width
		m.body.Height = max(1, msg.Height-3) // app bar + help footer
		m.help.Width = msg.Width
		m.body.SetContent(m.pageContent())
		return m, nil

	case tickMsg:
		m.state = m.state.TimePassed(tickInterval)
		return m, tick()

	case notifyMsg:
		m.state = m.state.QueueMessage(widget.Message{Text: msg.text, Action: msg.action})
		return m, nil

	case showDialogMsg:
		m.dialog = &widget.Dialog{
			Content:   widget.DialogCard(m.theme.Dialog, msg.title, msg.body),
			OnDismiss: dismissDialogMsg{},
		}
		return m, nil

	case dismissDialogMsg:
		m.dialog = nil
		m.state = m.state.Activate(widget.PartNone)
		return m, nil

	case activateMsg:
		if m.state.Active == msg.part {
			m.state = m.state.Activate(widget.PartNone)
		} else {
			m.state = m.state.Activate(msg.part)
		}
		return m, nil

	case jumpMsg:
		if msg.index >= 0 && msg.index < len(m.pages) {
			m.active = msg.index
		}
		m.state = m.state.Activate(widget.PartNone)
		m.search.SetValue("")
		m.body.SetContent(m.pageContent())
		m.body.GotoTop()
		return m, m.pages[m.active].Init()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m.updatePage(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// The dialog is modal: it swallows every key and only lets its dismiss
	// handler through.
	if m.dialog != nil {
		if key.Matches(msg, m.keys.Close) || msg.String() == "enter" {
			dismiss := m.dialog.OnDismiss
			return m, func() tea.Msg { return dismiss }
		}
		return m, nil
	}

	if m.state.Active == widget.PartSearch {
		return m.handleSearchKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Menu):
		return m, m.toggle(widget.PartLeftSheet)
	case key.Matches(msg, m.keys.More):
		return m, m.toggle(widget.PartRightSheet)
	case key.Matches(msg, m.keys.Search):
		m.state = m.state.Activate(widget.PartSearch)
		return m, m.search.Focus()
	case key.Matches(msg, m.keys.Close):
		m.state = m.state.Activate(widget.PartNone)
		return m, nil
	case key.Matches(msg, m.keys.NextPage):
		return m, jump((m.active + 1) % len(m.pages))
	case key.Matches(msg, m.keys.PrevPage):
		return m, jump((m.active + len(m.pages) - 1) % len(m.pages))
	}

	// Number keys pick from whichever sheet is open.
	if n, ok := digit(msg.String()); ok {
		switch m.state.Active {
		case widget.PartLeftSheet:
			return m, m.menu().Choose(n)
		case widget.PartRightSheet:
			_, more := widget.PartitionActions(m.actions)
			if n < len(more) {
				return m, more[n].Press()
			}
			return m, nil
		}
	}

	return m.updatePage(msg)
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.state = m.state.Activate(widget.PartNone)
		m.search.Blur()
		return m, nil
	case "enter":
		if matches := m.searchMatches(); len(matches) > 0 {
			m.search.Blur()
			return m, jump(matches[0].Index)
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, cmd
}

func (m Model) updatePage(msg tea.Msg) (tea.Model, tea.Cmd) {
	page, cmd := m.pages[m.active].Update(msg)
	m.pages[m.active] = page
	m.body.SetContent(m.pageContent())

	// Leftover keys scroll the page body.
	var vpCmd tea.Cmd
	m.body, vpCmd = m.body.Update(msg)
	return m, tea.Batch(cmd, vpCmd)
}

func (m Model) toggle(p widget.Part) tea.Cmd {
	return func() tea.Msg {
		return activateMsg{part: p}
	}
}

// activateMsg flips an overlay: opening it if closed, closing it if open.
type activateMsg struct {
	part widget.Part
}

func jump(i int) tea.Cmd {
	return func() tea.Msg { return jumpMsg{index: i} }
}

func digit(s string) (int, bool) {
	if len(s) == 1 && s[0] >= '1' && s[0] <= '9' {
		return int(s[0] - '1'), true
	}
	return 0, false
}

// pageContent is what the body viewport shows: the active page, or the
// result list while searching.
func (m Model) pageContent() string {
	if m.state.Active == widget.PartSearch {
		return m.searchResultsView()
	}
	return m.pages[m.active].View(PageContext{
		Theme: m.theme,
		Width: m.width,
		State: m.state,
	})
}

// View implements tea.Model.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "loading…"
	}
	done := m.frames.Frame("render", m.pages[m.active].Title())
	defer done()

	// Refresh on a copy: the scroll position lives on m.body, the content is
	// recomputed every frame.
	body := m.body
	body.SetContent(m.pageContent())

	l := widget.Layout{
		Theme:  m.theme,
		Width:  m.width,
		Height: m.height,
		Title:  "matui",
		Menu:   m.menu(),
		Search: &widget.SearchField{
			Value:       m.search.Value(),
			Placeholder: "Search pages",
		},
		Actions: m.actions,
		Dialog:  m.dialog,
		Content: "\n" + body.View() + "\n" + m.help.View(m.keys),
	}
	return l.Render(m.state)
}

// menu exposes the page registry as the layout's navigation select.
func (m Model) menu() widget.Select {
	opts := make([]widget.Option, len(m.pages))
	for i, p := range m.pages {
		opts[i] = widget.Option{Text: p.Title()}
	}
	return widget.Select{
		Selected: m.active,
		Options:  opts,
		OnSelect: func(i int) tea.Msg { return jumpMsg{index: i} },
	}
}

func (m Model) searchMatches() fuzzy.Matches {
	titles := make([]string, len(m.pages))
	for i, p := range m.pages {
		titles[i] = p.Title()
	}
	query := m.search.Value()
	if query == "" {
		matches := make(fuzzy.Matches, len(titles))
		for i, t := range titles {
			matches[i] = fuzzy.Match{Str: t, Index: i}
		}
		return matches
	}
	return fuzzy.Find(query, titles)
}

func (m Model) searchResultsView() string {
	matches := m.searchMatches()
	if len(matches) == 0 {
		return "No matching pages."
	}
	out := "Pages:\n"
	for i, match := range matches {
		out += fmt.Sprintf("\n  %d. %s", i+1, match.Str)
	}
	return out + "\n\nenter: open best match   esc: close"
}
