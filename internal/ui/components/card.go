package components

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/asdscreen/internal/ui/layout"
	"github.com/abhisek/asdscreen/internal/ui/theme"
)

// ContentWidth returns the uniform inner width used for forms and cards,
// so stacked sections line up.
func ContentWidth(frameWidth int) int {
	// Leave room for card border (2) + padding (4)
	w := frameWidth - 6
	if w > layout.ContentWidth {
		w = layout.ContentWidth
	}
	if w < 20 {
		w = 20
	}
	return w
}

// Card wraps content in a rounded-border box. A nil accent uses the
// default border color.
func Card(content string, cw int, accent color.Color) string {
	if accent == nil {
		accent = theme.Border
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accent).
		Width(cw-2).
		Padding(1, 2).
		Render(content)
}
