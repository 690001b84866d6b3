package questionnaire

import (
	"errors"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/asdscreen/internal/screen"
	"github.com/abhisek/asdscreen/internal/screening"
	"github.com/abhisek/asdscreen/internal/session"
	"github.com/abhisek/asdscreen/internal/ui/components"
	"github.com/abhisek/asdscreen/internal/ui/layout"
)

// QuestionnaireScreen walks through the ten questions. Answers are kept on
// the screen until all ten are submitted together.
type QuestionnaireScreen struct {
	sess    *session.Session
	answers [screening.QuestionCount]screening.Response
	current int
	choices components.MultiChoice
	errMsg  string
}

var _ screen.Screen = (*QuestionnaireScreen)(nil)
var _ screen.KeyHintProvider = (*QuestionnaireScreen)(nil)

// New creates the questionnaire bound to sess.
func New(sess *session.Session) *QuestionnaireScreen {
	s := &QuestionnaireScreen{sess: sess}
	s.goTo(0)
	return s
}

func (s *QuestionnaireScreen) Init() tea.Cmd {
	return nil
}

func (s *QuestionnaireScreen) Title() string {
	return "Questionnaire"
}

func (s *QuestionnaireScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Move"},
		{Key: "1-4/Enter", Description: "Answer"},
		{Key: "←→", Description: "Question"},
		{Key: "S", Description: "Submit"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *QuestionnaireScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch key := kmsg.String(); key {
	case "up", "k":
		s.choices.Up()
	case "down", "j":
		s.choices.Down()
	case "left", "h", "shift+tab":
		if s.current > 0 {
			s.goTo(s.current - 1)
		}
	case "right", "l", "tab":
		if s.current < screening.QuestionCount-1 {
			s.goTo(s.current + 1)
		}
	case "1", "2", "3", "4":
		return s.answer(int(key[0]-'1'), false)
	case "enter":
		return s.answer(s.choices.Cursor, true)
	case "s", "S":
		return s.submit()
	}
	return s, nil
}

// Answers returns a copy of the responses given so far.
func (s *QuestionnaireScreen) Answers() []screening.Response {
	out := make([]screening.Response, len(s.answers))
	copy(out, s.answers[:])
	return out
}

// Answered returns how many questions have an explicit response.
func (s *QuestionnaireScreen) Answered() int {
	n := 0
	for _, r := range s.answers {
		if r.Answered() {
			n++
		}
	}
	return n
}

// answer records option i for the current question and moves on. Enter on
// the last question submits once everything is answered.
func (s *QuestionnaireScreen) answer(i int, viaEnter bool) (screen.Screen, tea.Cmd) {
	if !s.choices.Choose(i) {
		return s, nil
	}
	s.answers[s.current] = screening.ResponseOptions[i]
	s.errMsg = ""

	last := s.current == screening.QuestionCount-1
	switch {
	case !last:
		s.goTo(s.current + 1)
	case viaEnter && s.Answered() == screening.QuestionCount:
		return s.submit()
	}
	return s, nil
}

func (s *QuestionnaireScreen) submit() (screen.Screen, tea.Cmd) {
	err := session.SubmitQuestionnaire(s.sess, s.Answers())
	if err == nil {
		return s, screen.StageChanged
	}

	var ve *screening.ValidationError
	if errors.As(err, &ve) {
		s.errMsg = unansweredMessage(ve)
		if first := s.firstUnanswered(); first >= 0 {
			s.goTo(first)
		}
		return s, nil
	}
	s.errMsg = err.Error()
	return s, nil
}

func (s *QuestionnaireScreen) firstUnanswered() int {
	for i, r := range s.answers {
		if !r.Answered() {
			return i
		}
	}
	return -1
}

// goTo shows question i with its recorded answer, if any, under the cursor.
func (s *QuestionnaireScreen) goTo(i int) {
	s.current = i
	s.choices = components.NewMultiChoice(responseLabels())
	for j, opt := range screening.ResponseOptions {
		if s.answers[i] == opt {
			s.choices.Choose(j)
		}
	}
}

func unansweredMessage(ve *screening.ValidationError) string {
	nums := make([]string, 0, len(ve.Fields))
	for _, f := range ve.Fields {
		nums = append(nums, strings.TrimPrefix(f.Field, "Q"))
	}
	if len(nums) == 1 {
		return fmt.Sprintf("Please answer question %s before submitting", nums[0])
	}
	return fmt.Sprintf("Please answer questions %s before submitting", strings.Join(nums, ", "))
}

func responseLabels() []string {
	out := make([]string, len(screening.ResponseOptions))
	for i, r := range screening.ResponseOptions {
		out[i] = r.Label()
	}
	return out
}
