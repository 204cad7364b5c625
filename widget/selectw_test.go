package widget

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
)

type chosenMsg struct{ index int }

func options() []Option {
	return []Option{{Text: "Day"}, {Text: "Week"}, {Text: "Month"}}
}

func TestSelectedOption(t *testing.T) {
	s := Select{Selected: 1, Options: options()}
	o, ok := s.SelectedOption()
	assert.True(t, ok)
	assert.Equal(t, "Week", o.Text)

	for _, idx := range []int{-1, 3} {
		s.Selected = idx
		_, ok := s.SelectedOption()
		assert.False(t, ok, "index %d", idx)
	}
}

func TestSelectChoose(t *testing.T) {
	s := Select{
		Options:  options(),
		OnSelect: func(i int) tea.Msg { return chosenMsg{index: i} },
	}
	cmd := s.Choose(2)
	if assert.NotNil(t, cmd) {
		assert.Equal(t, chosenMsg{index: 2}, cmd())
	}
	assert.Nil(t, s.Choose(-1))
	assert.Nil(t, s.Choose(3))
	assert.Nil(t, Select{Options: options()}.Choose(0))
}

func TestSelectRenderingsDegradeWhenEmpty(t *testing.T) {
	st := testTheme().Select
	var s Select
	assert.Empty(t, s.RenderTabRow(st))
	assert.Empty(t, s.RenderSheet(st))
	assert.Empty(t, s.RenderToggleRow(st))
}

func TestSelectRenderSheetIsVertical(t *testing.T) {
	s := Select{Selected: 0, Options: options()}
	out := ansi.Strip(s.RenderSheet(testTheme().Select))
	assert.Equal(t, 3, len(strings.Split(out, "\n")))
}

func TestSelectRenderTabRowIsOneLine(t *testing.T) {
	s := Select{Selected: 0, Options: options()}
	out := ansi.Strip(s.RenderTabRow(testTheme().Select))
	assert.Equal(t, 1, len(strings.Split(out, "\n")))
	for _, o := range options() {
		assert.Contains(t, out, o.Text)
	}
}
