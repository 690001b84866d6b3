package basics

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/asdscreen/internal/ui/components"
	"github.com/abhisek/asdscreen/internal/ui/layout"
	"github.com/abhisek/asdscreen/internal/ui/theme"
)

const labelWidth = 22

func (s *BasicsScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	inner := cw - 6

	var b strings.Builder
	b.WriteString(theme.Title.Width(inner).Render("Tell us a little about the person being screened"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(inner).Render("All four answers are required"))
	b.WriteString("\n\n")

	rows := []struct {
		view  string
		field string
	}{
		{s.age.View(labelWidth), "Age"},
		{s.gender.View(labelWidth), "Gender"},
		{s.jaundice.View(labelWidth), "Jaundice"},
		{s.relation.View(labelWidth), "Relation"},
	}
	for i, row := range rows {
		marker := "  "
		if s.focus == i {
			marker = lipgloss.NewStyle().Foreground(theme.Primary).Render("▌ ")
		}
		b.WriteString(marker + row.view)
		b.WriteString("\n")
		if msg, bad := s.fieldErrs[row.field]; bad {
			b.WriteString(strings.Repeat(" ", labelWidth+2))
			b.WriteString(theme.ErrorText.Render(msg))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(components.NewButton("Continue", s.focus == focusContinue).View())

	if s.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(theme.ErrorText.Render(s.errMsg))
	}

	return layout.Center(components.Card(b.String(), cw, theme.Border), width, height)
}
