package result

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/asdscreen/internal/predictor"
	"github.com/abhisek/asdscreen/internal/ui/components"
	"github.com/abhisek/asdscreen/internal/ui/layout"
	"github.com/abhisek/asdscreen/internal/ui/theme"
)

const disclaimer = "This screening is not a diagnosis. Only a qualified clinician can assess ASD."

func (s *ResultScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	inner := cw - 6

	var b strings.Builder
	var card string

	switch {
	case s.sess.Failed():
		b.WriteString(theme.ErrorText.Bold(true).Render("We could not compute a result"))
		b.WriteString("\n\n")
		b.WriteString(theme.Body.Width(inner).Render(s.sess.InferenceErr.Error()))
		b.WriteString("\n\n")
		b.WriteString(theme.Hint.Width(inner).Render("Your answers are kept. Try again, or start over."))
		b.WriteString("\n\n")
		b.WriteString(s.actions.View())
		card = components.Card(b.String(), cw, theme.Error)

	case s.sess.Outcome != nil:
		outcome := *s.sess.Outcome
		style, accent := theme.OutcomeNegative, theme.Success
		if outcome == predictor.Positive {
			style, accent = theme.OutcomePositive, theme.Accent
		}
		b.WriteString(style.Width(inner).Align(lipgloss.Center).Render(outcome.Headline()))
		b.WriteString("\n\n")
		b.WriteString(theme.Body.Width(inner).Align(lipgloss.Center).Render(outcome.Message()))
		b.WriteString("\n\n")
		b.WriteString(theme.Hint.Width(inner).Align(lipgloss.Center).Render(disclaimer))
		b.WriteString("\n\n")
		b.WriteString(lipgloss.PlaceHorizontal(inner, lipgloss.Center, s.actions.View()))
		card = components.Card(b.String(), cw, accent)

	default:
		b.WriteString(theme.Hint.Render("Computing result..."))
		card = components.Card(b.String(), cw, nil)
	}

	return layout.Center(card, width, height)
}
