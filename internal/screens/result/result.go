package result

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/asdscreen/internal/screen"
	"github.com/abhisek/asdscreen/internal/session"
	"github.com/abhisek/asdscreen/internal/ui/components"
	"github.com/abhisek/asdscreen/internal/ui/layout"
)

// ResultScreen shows the screening outcome, or the inference error with a
// retry action.
type ResultScreen struct {
	sess      *session.Session
	predictor session.Predictor
	actions   components.ActionBar
	rebuilt   bool
}

var _ screen.Screen = (*ResultScreen)(nil)
var _ screen.KeyHintProvider = (*ResultScreen)(nil)

// New creates the result screen. Evaluation runs on Init.
func New(sess *session.Session, p session.Predictor) *ResultScreen {
	s := &ResultScreen{sess: sess, predictor: p}
	s.buildActions()
	return s
}

// Init evaluates the record unless a result is already cached.
func (s *ResultScreen) Init() tea.Cmd {
	if s.sess.Outcome == nil && s.sess.InferenceErr == nil {
		s.evaluate()
	}
	return nil
}

func (s *ResultScreen) Title() string {
	return "Result"
}

func (s *ResultScreen) KeyHints() []layout.KeyHint {
	if s.sess.Failed() {
		return []layout.KeyHint{
			{Key: "←→", Description: "Choose"},
			{Key: "Enter", Description: "Select"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Start new screening"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *ResultScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if _, ok := msg.(tea.KeyMsg); !ok {
		return s, nil
	}
	// Running an action may rebuild the bar; the rebuilt one wins.
	s.rebuilt = false
	bar, cmd := s.actions.Update(msg)
	if !s.rebuilt {
		s.actions = bar
	}
	return s, cmd
}

// Actions returns the labels of the available actions, in order.
func (s *ResultScreen) Actions() []string {
	labels := make([]string, len(s.actions.Actions))
	for i, a := range s.actions.Actions {
		labels[i] = a.Label
	}
	return labels
}

func (s *ResultScreen) evaluate() {
	// The error is kept on the session and rendered by View.
	_ = session.Evaluate(s.sess, s.predictor)
	s.buildActions()
}

func (s *ResultScreen) retry() tea.Cmd {
	s.evaluate()
	return nil
}

func (s *ResultScreen) startOver() tea.Cmd {
	session.Reset(s.sess)
	return screen.StageChanged
}

func (s *ResultScreen) buildActions() {
	s.rebuilt = true
	restart := components.Action{Label: "Start new screening", Run: s.startOver}
	if s.sess.Failed() {
		s.actions = components.NewActionBar(
			components.Action{Label: "Try again", Run: s.retry},
			restart,
		)
		return
	}
	s.actions = components.NewActionBar(restart)
}
