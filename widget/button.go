package widget

import (
	tea "github.com/charmbracelet/bubbletea"

	"matui/material"
)

// ButtonVariant selects one of the material button renderings.
type ButtonVariant int

const (
	Contained ButtonVariant = iota
	Outlined
	TextButton
)

// Button is a pressable action. OnPress is the message the host should emit
// when the button is activated; the widget itself never dispatches it.
type Button struct {
	Label    string
	Icon     string
	Disabled bool
	OnPress  tea.Msg
}

// Press returns a command emitting OnPress, or nil for disabled or inert
// buttons.
func (b Button) Press() tea.Cmd {
	if b.Disabled || b.OnPress == nil {
		return nil
	}
	msg := b.OnPress
	return func() tea.Msg { return msg }
}

// Render draws the button with its label (and icon, when set) in the given
// variant.
func (b Button) Render(st material.ButtonStyle, v ButtonVariant) string {
	text := b.Label
	if b.Icon != "" {
		if text != "" {
			text = b.Icon + " " + text
		} else {
			text = b.Icon
		}
	}
	if b.Disabled {
		return st.Disabled.Render(text)
	}
	switch v {
	case Outlined:
		return st.Outlined.Render(text)
	case TextButton:
		return st.Text.Render(text)
	default:
		return st.Contained.Render(text)
	}
}

// RenderIcon draws the icon-only rendering, falling back to the label when
// the button has no icon.
func (b Button) RenderIcon(st material.ButtonStyle) string {
	text := b.Icon
	if text == "" {
		text = b.Label
	}
	if b.Disabled {
		return st.Disabled.Render(text)
	}
	return st.Icon.Render(text)
}
