package widget

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"matui/material"
)

// Scrim redraws base stripped of its own styling and recolored by the scrim
// style, so content behind a modal layer reads as inactive.
func Scrim(st lipgloss.Style, base string, width, height int) string {
	lines := canvasLines(base, width, height)
	for i := range lines {
		lines[i] = st.Render(ansi.Strip(lines[i]))
	}
	return strings.Join(lines, "\n")
}

// RenderDialog composites a centered modal card over base behind a scrim.
func RenderDialog(th material.Theme, base, card string, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	dimmed := Scrim(th.Scrim, base, width, height)
	x := (width - lipgloss.Width(card)) / 2
	y := (height - lipgloss.Height(card)) / 2
	return stamp(dimmed, card, max(0, x), max(0, y), width, height)
}

// DialogCard wraps title and body in the dialog card style, ready for
// RenderDialog.
func DialogCard(st material.DialogStyle, title, body string) string {
	content := body
	if title != "" {
		content = st.Title.Render(title) + "\n\n" + body
	}
	return st.Card.Render(content)
}
