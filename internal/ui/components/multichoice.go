package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/asdscreen/internal/ui/theme"
)

// MultiChoice is a vertical option list with a cursor and an optional
// chosen entry. Chosen is -1 until an option is picked.
type MultiChoice struct {
	Options []string
	Cursor  int
	Chosen  int
}

// NewMultiChoice creates a list with nothing chosen.
func NewMultiChoice(options []string) MultiChoice {
	return MultiChoice{
		Options: options,
		Chosen:  -1,
	}
}

// Up moves the cursor up one option.
func (m *MultiChoice) Up() {
	if m.Cursor > 0 {
		m.Cursor--
	}
}

// Down moves the cursor down one option.
func (m *MultiChoice) Down() {
	if m.Cursor < len(m.Options)-1 {
		m.Cursor++
	}
}

// Choose marks option i as chosen and moves the cursor to it.
// It reports false when i is out of range.
func (m *MultiChoice) Choose(i int) bool {
	if i < 0 || i >= len(m.Options) {
		return false
	}
	m.Chosen = i
	m.Cursor = i
	return true
}

// View renders the options numbered from 1.
func (m MultiChoice) View() string {
	var b strings.Builder
	for i, opt := range m.Options {
		prefix := "  "
		if i == m.Cursor {
			prefix = "▸ "
		}
		mark := "○"
		if i == m.Chosen {
			mark = "●"
		}
		line := fmt.Sprintf("%s%d) %s %s", prefix, i+1, mark, opt)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		switch {
		case i == m.Cursor:
			style = theme.Selected
		case i == m.Chosen:
			style = lipgloss.NewStyle().Foreground(theme.Secondary)
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}
	return b.String()
}
