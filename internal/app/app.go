package app

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/asdscreen/internal/router"
	"github.com/abhisek/asdscreen/internal/screen"
	"github.com/abhisek/asdscreen/internal/screens/basics"
	"github.com/abhisek/asdscreen/internal/screens/questionnaire"
	"github.com/abhisek/asdscreen/internal/screens/result"
	"github.com/abhisek/asdscreen/internal/session"
	"github.com/abhisek/asdscreen/internal/ui/layout"
)

// stepCount is the number of wizard stages shown in the header.
const stepCount = 3

// Options holds dependencies injected into the app.
type Options struct {
	Predictor session.Predictor
	Logger    *zap.Logger
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router    *router.Router
	sess      *session.Session
	predictor session.Predictor
	log       *zap.Logger
	width     int
	height    int
}

// newAppModel creates an AppModel on the first stage of a fresh session.
func newAppModel(opts Options) AppModel {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	sess := session.New()
	sess.Log = log

	m := AppModel{
		sess:      sess,
		predictor: opts.Predictor,
		log:       log,
	}
	m.router = router.New(m.screenForStage())
	return m
}

func (m AppModel) Init() tea.Cmd {
	m.log.Info("screening started", zap.String("session_id", m.sess.ID))
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.log.Info("quit", zap.String("session_id", m.sess.ID), zap.Stringer("stage", m.sess.Stage))
			return m, tea.Quit
		}

	case screen.StageChangedMsg:
		return m, m.router.Replace(m.screenForStage())
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

// screenForStage builds the screen matching the session's current stage.
func (m AppModel) screenForStage() screen.Screen {
	switch m.sess.Stage {
	case session.StageCollectingQuestionnaire:
		return questionnaire.New(m.sess)
	case session.StageShowingResult:
		return result.New(m.sess, m.predictor)
	default:
		return basics.New(m.sess)
	}
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true
	if m.width == 0 || m.height == 0 {
		return v
	}
	v.SetContent(m.render())
	return v
}

// render composes header, active screen and footer for the current size.
func (m AppModel) render() string {
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title := ""
	footerHints := []layout.KeyHint{
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if active != nil {
		title = active.Title()
		if hp, ok := active.(screen.KeyHintProvider); ok {
			footerHints = hp.KeyHints()
		}
	}

	header := layout.RenderHeader(title, int(m.sess.Stage)+1, stepCount, m.width)
	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Run starts the Bubble Tea program and blocks until the user quits.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}
