package basics

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/asdscreen/internal/screen"
	"github.com/abhisek/asdscreen/internal/screening"
	"github.com/abhisek/asdscreen/internal/session"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func send(s *BasicsScreen, msgs ...tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	for _, m := range msgs {
		_, cmd = s.Update(m)
	}
	return cmd
}

// fill types an age and sets every selector to the option at the given
// 1-based position.
func fill(s *BasicsScreen, age string, gender, jaundice, relation int) {
	for _, r := range age {
		send(s, keyPress(r))
	}
	for _, n := range []int{gender, jaundice, relation} {
		send(s, specialKey(tea.KeyTab))
		for i := 0; i < n; i++ {
			send(s, specialKey(tea.KeyRight))
		}
	}
}

func newScreen() (*BasicsScreen, *session.Session) {
	sess := session.New()
	s := New(sess)
	s.Init()
	return s, sess
}

func TestBasicsScreen_Title(t *testing.T) {
	s, _ := newScreen()
	if s.Title() != "About the person" {
		t.Errorf("Title = %q", s.Title())
	}
}

func TestBasicsScreen_StartsWithPlaceholders(t *testing.T) {
	s, _ := newScreen()
	in := s.Input()
	if in != (screening.BasicsInput{}) {
		t.Errorf("fresh form input = %+v, want zero value", in)
	}
}

func TestBasicsScreen_SubmitValid(t *testing.T) {
	s, sess := newScreen()
	// Male, No, Self
	fill(s, "25", 1, 2, 1)

	want := screening.BasicsInput{
		Age:      25,
		Gender:   screening.GenderMale,
		Jaundice: screening.JaundiceNo,
		Relation: screening.RelationSelf,
	}
	if got := s.Input(); got != want {
		t.Fatalf("Input() = %+v, want %+v", got, want)
	}

	cmd := send(s, specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected a stage change command on valid submit")
	}
	if _, ok := cmd().(screen.StageChangedMsg); !ok {
		t.Error("expected StageChangedMsg")
	}
	if sess.Stage != session.StageCollectingQuestionnaire {
		t.Errorf("stage = %v, want questionnaire", sess.Stage)
	}
	if sess.Record.Age != 25 {
		t.Errorf("record age = %d, want 25", sess.Record.Age)
	}
}

func TestBasicsScreen_PlaceholderBlocks(t *testing.T) {
	s, sess := newScreen()
	// Gender left on the placeholder.
	fill(s, "25", 0, 2, 1)

	send(s, specialKey(tea.KeyEnter))

	if sess.Stage != session.StageCollectingBasics {
		t.Errorf("stage = %v, want basics", sess.Stage)
	}
	if !sess.Record.IsEmpty() {
		t.Error("record mutated by an invalid submit")
	}
	if _, ok := s.fieldErrs["Gender"]; !ok {
		t.Errorf("expected inline gender error, got %v", s.fieldErrs)
	}
	if s.focus != focusGender {
		t.Errorf("focus = %d, want gender field", s.focus)
	}
}

func TestBasicsScreen_AgeOutOfRange(t *testing.T) {
	s, sess := newScreen()
	fill(s, "130", 2, 1, 2)

	send(s, specialKey(tea.KeyEnter))

	if sess.Stage != session.StageCollectingBasics {
		t.Error("expected to stay on basics for age 130")
	}
	if s.fieldErrs["Age"] == "" {
		t.Error("expected inline age error")
	}
}

func TestBasicsScreen_AgeIgnoresLetters(t *testing.T) {
	s, _ := newScreen()
	send(s, keyPress('4'), keyPress('x'), keyPress('2'))
	if got := s.age.Value(); got != "42" {
		t.Errorf("age value = %q, want %q", got, "42")
	}
}

func TestBasicsScreen_SelectorWraps(t *testing.T) {
	s, _ := newScreen()
	send(s, specialKey(tea.KeyTab))  // gender
	send(s, specialKey(tea.KeyLeft)) // wraps to the last option
	if got := s.Input().Gender; got != screening.GenderFemale {
		t.Errorf("gender = %v, want female after wrapping left", got)
	}
}

func TestBasicsScreen_FocusCycles(t *testing.T) {
	s, _ := newScreen()
	for i := 0; i < focusCount; i++ {
		send(s, specialKey(tea.KeyTab))
	}
	if s.focus != focusAge {
		t.Errorf("focus = %d after a full cycle, want %d", s.focus, focusAge)
	}
	send(s, specialKey(tea.KeyUp))
	if s.focus != focusContinue {
		t.Errorf("focus = %d after up from age, want continue button", s.focus)
	}
}

func TestBasicsScreen_View(t *testing.T) {
	s, _ := newScreen()
	if s.View(80, 20) == "" {
		t.Error("expected non-empty view")
	}
}

func TestBasicsScreen_KeyHints(t *testing.T) {
	s, _ := newScreen()
	if len(s.KeyHints()) != 3 {
		t.Errorf("KeyHints on age field = %d, want 3", len(s.KeyHints()))
	}
	send(s, specialKey(tea.KeyTab))
	if len(s.KeyHints()) != 4 {
		t.Errorf("KeyHints on selector = %d, want 4", len(s.KeyHints()))
	}
}
