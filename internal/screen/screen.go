package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/asdscreen/internal/ui/layout"
)

// Screen defines the interface for all application screens.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// StageChangedMsg tells the app the session moved to another stage and
// the screen for the new stage should replace the active one.
type StageChangedMsg struct{}

// StageChanged is a tea.Cmd that emits StageChangedMsg.
func StageChanged() tea.Msg {
	return StageChangedMsg{}
}
