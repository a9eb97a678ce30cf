package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/tzgrid/internal/constants"
	"github.com/julianstephens/tzgrid/internal/render"
)

var docStyle = lipgloss.NewStyle().Padding(1, 2)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var sections []string

	title := m.styles.Header.Render(constants.AppName) +
		m.styles.Dim.Render("  "+strings.Join(m.zones(), " · "))
	sections = append(sections, title, "")

	sections = append(sections, m.input.View(), "")

	switch {
	case m.errMsg != "":
		sections = append(sections, m.styles.Error.Render(m.errMsg))
	case m.resolved:
		sections = append(sections,
			m.styles.Accent.Render(m.instant.UTC().Format(constants.LongClockFormat)),
			"",
			render.Table(m.zones(), m.rows, m.styles),
			render.Timeline(m.entries, m.styles),
		)
	default:
		sections = append(sections, m.styles.Dim.Render("Type a date/time expression and press enter."))
	}

	sections = append(sections, "", m.help.View(m.keys))

	return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}
