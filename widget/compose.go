package widget

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// canvasLines normalizes s to exactly height lines, each padded to width
// display columns. Overlong input is truncated ANSI-safely.
func canvasLines(s string, width, height int) []string {
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	for i := range lines {
		lines[i] = padRight(lines[i], width)
	}
	return lines
}

// stamp draws layer onto base with its top-left corner at column x, row y.
// Both canvases are treated as width x height; layer cells outside the canvas
// are clipped. Styling on either side is preserved.
func stamp(base, layer string, x, y, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	lines := canvasLines(base, width, height)
	for i, row := range strings.Split(layer, "\n") {
		r := y + i
		if r < 0 || r >= height || x >= width {
			continue
		}
		row = ansi.Truncate(row, width-x, "")
		w := ansi.StringWidth(row)
		if w == 0 {
			continue
		}
		left := ansi.Truncate(lines[r], x, "")
		right := cutLeft(lines[r], x+w)
		lines[r] = padRight(left+row+right, width)
	}
	return strings.Join(lines, "\n")
}

// cutLeft drops the first cols display columns of s.
func cutLeft(s string, cols int) string {
	if cols <= 0 {
		return s
	}
	return ansi.TruncateLeft(s, cols, "")
}

// padRight truncates s to width columns and pads with spaces up to width.
func padRight(s string, width int) string {
	s = ansi.Truncate(s, width, "")
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
