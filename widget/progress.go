package widget

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"matui/material"
)

// ProgressIndicator is an indeterminate activity spinner with an optional
// label. It wraps bubbles/spinner, so the host must run Init's command and
// forward tick messages through Update for it to animate.
type ProgressIndicator struct {
	Label   string
	spinner spinner.Model
}

// NewProgressIndicator returns an indicator styled by st.
func NewProgressIndicator(st material.ProgressStyle, label string) ProgressIndicator {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = st.Spinner
	return ProgressIndicator{Label: label, spinner: s}
}

// Init starts the spin animation.
func (p ProgressIndicator) Init() tea.Cmd {
	return p.spinner.Tick
}

// Update advances the animation on spinner tick messages.
func (p ProgressIndicator) Update(msg tea.Msg) (ProgressIndicator, tea.Cmd) {
	var cmd tea.Cmd
	p.spinner, cmd = p.spinner.Update(msg)
	return p, cmd
}

// View draws the spinner frame and label.
func (p ProgressIndicator) View(st material.ProgressStyle) string {
	out := p.spinner.View()
	if p.Label != "" {
		out += " " + st.Label.Render(p.Label)
	}
	return out
}
