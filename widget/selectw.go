package widget

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"matui/material"
)

// Option is one choice in a Select.
type Option struct {
	Text string
	Icon string
}

func (o Option) label() string {
	if o.Icon != "" && o.Text != "" {
		return o.Icon + " " + o.Text
	}
	if o.Icon != "" {
		return o.Icon
	}
	return o.Text
}

// Select is a single-choice list of labeled options. Selected is an index
// into Options; -1 means nothing is selected. OnSelect builds the message the
// host should emit when option i is chosen.
type Select struct {
	Selected int
	Options  []Option
	OnSelect func(i int) tea.Msg
}

// SelectedOption returns the currently selected option.
func (s Select) SelectedOption() (Option, bool) {
	if s.Selected < 0 || s.Selected >= len(s.Options) {
		return Option{}, false
	}
	return s.Options[s.Selected], true
}

// Choose returns a command emitting the selection message for option i, or
// nil when i is out of range or no OnSelect is configured.
func (s Select) Choose(i int) tea.Cmd {
	if s.OnSelect == nil || i < 0 || i >= len(s.Options) {
		return nil
	}
	msg := s.OnSelect(i)
	return func() tea.Msg { return msg }
}

// RenderTabRow draws the options as an inline row of tab-like buttons, the
// desktop app-bar rendering. Empty selects render as nothing.
func (s Select) RenderTabRow(st material.SelectStyle) string {
	if len(s.Options) == 0 {
		return ""
	}
	tabs := make([]string, len(s.Options))
	for i, o := range s.Options {
		if i == s.Selected {
			tabs[i] = st.TabActive.Render(o.label())
		} else {
			tabs[i] = st.Tab.Render(o.label())
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, tabs...)
}

// RenderSheet draws the options as a vertical list of buttons, the side-sheet
// rendering.
func (s Select) RenderSheet(st material.SelectStyle) string {
	if len(s.Options) == 0 {
		return ""
	}
	items := make([]string, len(s.Options))
	for i, o := range s.Options {
		if i == s.Selected {
			items[i] = st.ItemActive.Render(o.label())
		} else {
			items[i] = st.Item.Render(o.label())
		}
	}
	return strings.Join(items, "\n")
}

// RenderToggleRow draws the options as a connected row of toggle buttons, the
// compact single-choice rendering used on settings-style pages.
func (s Select) RenderToggleRow(st material.SelectStyle) string {
	if len(s.Options) == 0 {
		return ""
	}
	parts := make([]string, len(s.Options))
	for i, o := range s.Options {
		if i == s.Selected {
			parts[i] = st.ToggleOn.Render(o.label())
		} else {
			parts[i] = st.ToggleOff.Render(o.label())
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, parts...)
}
