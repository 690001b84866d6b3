package components

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

// Action is a single button in an ActionBar.
type Action struct {
	Label string
	Run   func() tea.Cmd
}

// ActionBar is a horizontal row of buttons.
type ActionBar struct {
	Actions  []Action
	Selected int
}

// NewActionBar creates a bar with the first action selected.
func NewActionBar(actions ...Action) ActionBar {
	return ActionBar{Actions: actions}
}

// Update handles left/right selection and Enter.
func (a ActionBar) Update(msg tea.Msg) (ActionBar, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || len(a.Actions) == 0 {
		return a, nil
	}

	switch kmsg.String() {
	case "left", "h", "up", "k", "shift+tab":
		if a.Selected > 0 {
			a.Selected--
		}
	case "right", "l", "down", "j", "tab":
		if a.Selected < len(a.Actions)-1 {
			a.Selected++
		}
	case "enter":
		if act := a.Actions[a.Selected]; act.Run != nil {
			return a, act.Run()
		}
	}
	return a, nil
}

// View renders the buttons side by side.
func (a ActionBar) View() string {
	buttons := make([]string, 0, len(a.Actions)*2)
	for i, act := range a.Actions {
		if i > 0 {
			buttons = append(buttons, "  ")
		}
		buttons = append(buttons, NewButton(act.Label, i == a.Selected).View())
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, buttons...)
}
