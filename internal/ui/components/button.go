package components

import (
	"github.com/abhisek/asdscreen/internal/ui/theme"
)

// Button is a styled, render-only button. The owning screen decides what
// Enter does.
type Button struct {
	Label   string
	Focused bool
}

// NewButton creates a new button.
func NewButton(label string, focused bool) Button {
	return Button{Label: label, Focused: focused}
}

// View renders the button.
func (b Button) View() string {
	if b.Focused {
		return theme.ButtonActive.Render("▸ " + b.Label)
	}
	return theme.ButtonInactive.Render(b.Label)
}
