package questionnaire

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/asdscreen/internal/screening"
	"github.com/abhisek/asdscreen/internal/ui/components"
	"github.com/abhisek/asdscreen/internal/ui/layout"
	"github.com/abhisek/asdscreen/internal/ui/theme"
)

func (s *QuestionnaireScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	inner := cw - 6

	var b strings.Builder

	b.WriteString(components.NewProgressBar("Answered", s.Answered(), screening.QuestionCount, inner).View())
	b.WriteString("\n\n")

	b.WriteString(theme.Label.Render(fmt.Sprintf("Question %d of %d", s.current+1, screening.QuestionCount)))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(inner).
		Foreground(theme.Text).
		Bold(true).
		Render(screening.Questions[s.current]))
	b.WriteString("\n\n")

	b.WriteString(s.choices.View())
	b.WriteString("\n")
	b.WriteString(s.dots())

	if s.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(theme.ErrorText.Width(inner).Render(s.errMsg))
	} else if s.Answered() == screening.QuestionCount {
		b.WriteString("\n\n")
		b.WriteString(theme.Hint.Render("All questions answered. Press S to see the result."))
	}

	return layout.Center(components.Card(b.String(), cw, nil), width, height)
}

// dots renders one marker per question: filled when answered, ringed for
// the current one.
func (s *QuestionnaireScreen) dots() string {
	parts := make([]string, len(s.answers))
	for i, r := range s.answers {
		style := lipgloss.NewStyle().Foreground(theme.Border)
		mark := "•"
		if r.Answered() {
			style = style.Foreground(theme.Secondary)
		}
		if i == s.current {
			style = style.Foreground(theme.Primary).Bold(true)
			mark = "◉"
		}
		parts[i] = style.Render(mark)
	}
	return strings.Join(parts, " ")
}
