package tui

import (
	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case StateAddHabit:
		content = m.form.View()
	default:
		content = m.habitsModel.View()
	}

	header := lipgloss.JoinHorizontal(lipgloss.Top,
		titleStyle.Render("streakr"),
		filterStyle.Render("showing: "+m.filterLabel()),
	)

	var footer string
	if m.err != nil {
		footer = dangerStyle.Render("Error: " + m.err.Error())
	} else if m.status != "" {
		footer = statusStyle.Render(m.status)
	}

	return docStyle.Render(lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		content,
		footer,
		m.help.View(m.keys),
	))
}
