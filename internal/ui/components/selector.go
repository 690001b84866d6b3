package components

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/asdscreen/internal/ui/theme"
)

// Selector is a single-line choice field cycled with left/right.
// Index 0 is always the placeholder, so a fresh Selector has no answer.
type Selector struct {
	Label       string
	Placeholder string
	Options     []string
	Index       int
	Focused     bool
}

// NewSelector creates a selector showing placeholder until a choice is made.
func NewSelector(label, placeholder string, options []string) Selector {
	return Selector{
		Label:       label,
		Placeholder: placeholder,
		Options:     options,
	}
}

// Selected returns the 0-based option index, or -1 for the placeholder.
func (s Selector) Selected() int {
	return s.Index - 1
}

// Update cycles the choice. Keys are ignored unless focused.
func (s Selector) Update(msg tea.Msg) (Selector, tea.Cmd) {
	if !s.Focused {
		return s, nil
	}
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	n := len(s.Options) + 1
	switch kmsg.String() {
	case "left", "h":
		s.Index = (s.Index - 1 + n) % n
	case "right", "l", "space":
		s.Index = (s.Index + 1) % n
	}
	return s, nil
}

// View renders "Label  ◂ value ▸".
func (s Selector) View(labelWidth int) string {
	label := theme.Label.Width(labelWidth).Render(s.Label)

	var value string
	if s.Index == 0 {
		value = theme.Placeholder.Render(s.Placeholder)
	} else {
		value = theme.Unselected.Render(s.Options[s.Index-1])
	}

	arrow := lipgloss.NewStyle().Foreground(theme.TextDim)
	if s.Focused {
		arrow = arrow.Foreground(theme.Primary).Bold(true)
		value = lipgloss.NewStyle().Underline(true).Render(value)
	}
	return label + arrow.Render("◂ ") + value + arrow.Render(" ▸")
}
