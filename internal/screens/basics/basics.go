package basics

import (
	"errors"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/asdscreen/internal/screen"
	"github.com/abhisek/asdscreen/internal/screening"
	"github.com/abhisek/asdscreen/internal/session"
	"github.com/abhisek/asdscreen/internal/ui/components"
	"github.com/abhisek/asdscreen/internal/ui/layout"
)

// Focus positions, top to bottom.
const (
	focusAge = iota
	focusGender
	focusJaundice
	focusRelation
	focusContinue
	focusCount
)

// BasicsScreen collects the four demographic answers.
type BasicsScreen struct {
	sess *session.Session

	age      components.TextInput
	gender   components.Selector
	jaundice components.Selector
	relation components.Selector
	focus    int

	// fieldErrs maps a BasicsInput field name to its inline message.
	fieldErrs map[string]string
	errMsg    string
}

var _ screen.Screen = (*BasicsScreen)(nil)
var _ screen.KeyHintProvider = (*BasicsScreen)(nil)

// New creates the demographics form bound to sess.
func New(sess *session.Session) *BasicsScreen {
	return &BasicsScreen{
		sess:     sess,
		age:      components.NewTextInput("Age (years)", "e.g. 7", true, 3),
		gender:   components.NewSelector("Gender", screening.PlaceholderLabel, labels(screening.GenderOptions)),
		jaundice: components.NewSelector("Jaundice at birth", screening.PlaceholderLabel, labels(screening.JaundiceOptions)),
		relation: components.NewSelector("Who is completing", screening.PlaceholderLabel, labels(screening.RelationOptions)),
	}
}

func (s *BasicsScreen) Init() tea.Cmd {
	return s.setFocus(focusAge)
}

func (s *BasicsScreen) Title() string {
	return "About the person"
}

func (s *BasicsScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "Tab/↑↓", Description: "Field"},
	}
	if s.focus != focusAge && s.focus != focusContinue {
		hints = append(hints, layout.KeyHint{Key: "←→", Description: "Change"})
	}
	return append(hints,
		layout.KeyHint{Key: "Enter", Description: "Continue"},
		layout.KeyHint{Key: "Ctrl+C", Description: "Quit"},
	)
}

func (s *BasicsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		// Cursor blink and other internal messages.
		var cmd tea.Cmd
		s.age, cmd = s.age.Update(msg)
		return s, cmd
	}

	switch kmsg.String() {
	case "tab", "down":
		return s, s.setFocus((s.focus + 1) % focusCount)
	case "shift+tab", "up":
		return s, s.setFocus((s.focus - 1 + focusCount) % focusCount)
	case "enter":
		return s.submit()
	}

	var cmd tea.Cmd
	switch s.focus {
	case focusAge:
		s.age, cmd = s.age.Update(msg)
	case focusGender:
		s.gender, cmd = s.gender.Update(msg)
	case focusJaundice:
		s.jaundice, cmd = s.jaundice.Update(msg)
	case focusRelation:
		s.relation, cmd = s.relation.Update(msg)
	}
	return s, cmd
}

// Input returns the current form contents as a BasicsInput. Placeholder
// selections map to the unset value; an unparsable age maps to zero.
func (s *BasicsScreen) Input() screening.BasicsInput {
	in := screening.BasicsInput{
		Gender:   pick(screening.GenderOptions, s.gender.Selected()),
		Jaundice: pick(screening.JaundiceOptions, s.jaundice.Selected()),
		Relation: pick(screening.RelationOptions, s.relation.Selected()),
	}
	if age, err := s.age.NumericValue(); err == nil {
		in.Age = age
	}
	return in
}

func (s *BasicsScreen) submit() (screen.Screen, tea.Cmd) {
	err := session.SubmitBasics(s.sess, s.Input())
	if err == nil {
		s.fieldErrs = nil
		s.errMsg = ""
		return s, screen.StageChanged
	}

	var ve *screening.ValidationError
	if errors.As(err, &ve) {
		s.errMsg = ""
		s.fieldErrs = make(map[string]string, len(ve.Fields))
		for _, f := range ve.Fields {
			s.fieldErrs[f.Field] = f.Message
		}
		return s, s.setFocus(s.firstInvalid())
	}

	s.errMsg = err.Error()
	return s, nil
}

// firstInvalid returns the focus position of the topmost failing field.
func (s *BasicsScreen) firstInvalid() int {
	for i, name := range []string{"Age", "Gender", "Jaundice", "Relation"} {
		if _, bad := s.fieldErrs[name]; bad {
			return i
		}
	}
	return s.focus
}

func (s *BasicsScreen) setFocus(f int) tea.Cmd {
	s.focus = f
	s.gender.Focused = f == focusGender
	s.jaundice.Focused = f == focusJaundice
	s.relation.Focused = f == focusRelation
	if f == focusAge {
		return s.age.Focus()
	}
	s.age.Blur()
	return nil
}

type labeled interface {
	Label() string
}

func labels[T labeled](opts []T) []string {
	out := make([]string, len(opts))
	for i, o := range opts {
		out[i] = o.Label()
	}
	return out
}

// pick maps a selector index to an option, or the zero (unset) value for -1.
func pick[T any](opts []T, i int) T {
	var zero T
	if i < 0 || i >= len(opts) {
		return zero
	}
	return opts[i]
}
