package app

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/asdscreen/internal/predictor"
	"github.com/abhisek/asdscreen/internal/session"
)

type fixedPredictor struct{ outcome predictor.Outcome }

func (p fixedPredictor) Predict([]float64) (predictor.Outcome, error) {
	return p.outcome, nil
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

// drive feeds msg to the model and then any message its command yields,
// which is enough to follow stage changes synchronously.
func drive(t *testing.T, m AppModel, msg tea.Msg) AppModel {
	t.Helper()
	updated, cmd := m.Update(msg)
	m = updated.(AppModel)
	if cmd == nil {
		return m
	}
	next := cmd()
	if next == nil {
		return m
	}
	if _, isBatch := next.(tea.BatchMsg); isBatch {
		return m
	}
	updated, _ = m.Update(next)
	return updated.(AppModel)
}

// press updates the model without running the returned command. Text input
// keystrokes return cursor blink ticks, which would otherwise block.
func press(m AppModel, msg tea.Msg) AppModel {
	updated, _ := m.Update(msg)
	return updated.(AppModel)
}

func TestAppModel_FullScreening(t *testing.T) {
	m := newAppModel(Options{Predictor: fixedPredictor{outcome: predictor.Positive}})
	m.Init()
	m = drive(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})

	if m.router.Active().Title() != "About the person" {
		t.Fatalf("initial screen = %q", m.router.Active().Title())
	}

	// Basics: age 25, Male, No, Self.
	m = press(m, keyPress('2'))
	m = press(m, keyPress('5'))
	for _, n := range []int{1, 2, 1} {
		m = drive(t, m, specialKey(tea.KeyTab))
		for i := 0; i < n; i++ {
			m = drive(t, m, specialKey(tea.KeyRight))
		}
	}
	m = drive(t, m, specialKey(tea.KeyEnter))

	if m.sess.Stage != session.StageCollectingQuestionnaire {
		t.Fatalf("stage = %v, want questionnaire", m.sess.Stage)
	}
	if m.router.Active().Title() != "Questionnaire" {
		t.Fatalf("active screen = %q, want Questionnaire", m.router.Active().Title())
	}

	for i := 0; i < 10; i++ {
		m = drive(t, m, keyPress('1'))
	}
	m = drive(t, m, keyPress('s'))

	if m.sess.Stage != session.StageShowingResult {
		t.Fatalf("stage = %v, want result", m.sess.Stage)
	}
	if m.sess.Outcome == nil || *m.sess.Outcome != predictor.Positive {
		t.Fatalf("Outcome = %v, want positive", m.sess.Outcome)
	}
	if m.router.Depth() != 1 {
		t.Errorf("router depth = %d, want 1 (no back stack)", m.router.Depth())
	}

	if !strings.Contains(m.render(), "Step 3 of 3") {
		t.Error("expected step counter in header")
	}

	// Start new screening.
	m = drive(t, m, specialKey(tea.KeyEnter))
	if m.sess.Stage != session.StageCollectingBasics {
		t.Fatalf("stage = %v, want basics after reset", m.sess.Stage)
	}
	if !m.sess.Record.IsEmpty() {
		t.Error("record not cleared after reset")
	}
	if m.router.Active().Title() != "About the person" {
		t.Errorf("active screen = %q after reset", m.router.Active().Title())
	}
}

func TestAppModel_EscDoesNotGoBack(t *testing.T) {
	m := newAppModel(Options{})
	m = drive(t, m, specialKey(tea.KeyEscape))
	if m.router.Active().Title() != "About the person" {
		t.Errorf("active screen = %q", m.router.Active().Title())
	}
}

func TestAppModel_CtrlCQuits(t *testing.T) {
	m := newAppModel(Options{})
	_, cmd := m.Update(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}

func TestAppModel_TooSmall(t *testing.T) {
	m := newAppModel(Options{})
	m = drive(t, m, tea.WindowSizeMsg{Width: 60, Height: 20})
	if !strings.Contains(m.render(), "Terminal too small") {
		t.Error("expected resize message below 80x24")
	}
}
