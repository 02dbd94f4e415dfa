package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/streakr/internal/analytics"
	"github.com/julianstephens/streakr/internal/constants"
	"github.com/julianstephens/streakr/internal/logger"
	"github.com/julianstephens/streakr/internal/tui/components/habits"
)

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width, m.height = msg.Width, msg.Height
		h, v := docStyle.GetFrameSize()
		// title, status line and help
		m.habitsModel.SetSize(msg.Width-h, msg.Height-v-4)
		m.help.Width = msg.Width
		return m, nil
	}

	if m.state == StateAddHabit {
		return m.updateAddHabit(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if !m.habitsModel.Filtering() {
			switch {
			case key.Matches(msg, m.keys.Quit):
				m.quitting = true
				return m, tea.Quit
			case key.Matches(msg, m.keys.Help):
				m.help.ShowAll = !m.help.ShowAll
				return m, nil
			}
		}

	case habits.AddHabitMsg:
		m.habitForm = &HabitFormModel{Periodicity: "daily"}
		m.form = newHabitForm(m.habitForm)
		m.state = StateAddHabit
		return m, m.form.Init()

	case habits.CheckOffMsg:
		at := m.tracker.Now()
		updated, err := m.tracker.CheckOff(msg.Name, at)
		if err != nil {
			logger.Debug("Dashboard check-off failed", "name", msg.Name, "error", err)
			m.err = err
			return m, nil
		}
		m.err = nil
		m.status = fmt.Sprintf("Checked off %s at %s (streak %d)",
			updated.Name, at.Format(constants.DisplayTimeFormat), analytics.LongestStreakFor(updated))
		m.reload()
		return m, nil

	case habits.CycleFilterMsg:
		m.filter = (m.filter + 1) % len(filters)
		m.status = ""
		m.reload()
		return m, nil
	}

	var cmd tea.Cmd
	m.habitsModel, cmd = m.habitsModel.Update(msg)
	return m, cmd
}

func (m Model) updateAddHabit(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.state = StateHabits
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		habit, err := m.tracker.Create(m.habitForm.Name, m.habitForm.Periodicity)
		if err != nil {
			// stay on the form so the user can fix the name
			m.err = err
			m.form.State = huh.StateNormal
			return m, cmd
		}
		m.err = nil
		m.status = fmt.Sprintf("Habit '%s' created", habit.Name)
		m.state = StateHabits
		m.reload()
	case huh.StateAborted:
		m.state = StateHabits
	}
	return m, cmd
}
