package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/streakr/internal/analytics"
	"github.com/julianstephens/streakr/internal/models"
	"github.com/julianstephens/streakr/internal/tracker"
	"github.com/julianstephens/streakr/internal/tui/components/habits"
)

type SessionState int

const (
	StateHabits SessionState = iota
	StateAddHabit
)

type HabitFormModel struct {
	Name        string
	Periodicity string
}

// filters is the order the periodicity filter cycles through; "" shows all.
var filters = periodicityFilters()

func periodicityFilters() []string {
	f := []string{""}
	for _, p := range models.Periodicities {
		f = append(f, p.String())
	}
	return f
}

type Model struct {
	tracker     *tracker.Tracker
	state       SessionState
	keys        KeyMap
	help        help.Model
	habitsModel habits.Model
	form        *huh.Form
	habitForm   *HabitFormModel
	filter      int
	status      string
	err         error
	quitting    bool
	width       int
	height      int
}

func NewModel(t *tracker.Tracker) Model {
	m := Model{
		tracker:     t,
		state:       StateHabits,
		keys:        DefaultKeyMap(),
		help:        help.New(),
		habitsModel: habits.New(nil, 80, 20),
	}
	m.reload()
	return m
}

// reload re-reads habits through the active periodicity filter.
func (m *Model) reload() {
	var (
		list []models.Habit
		err  error
	)
	if f := filters[m.filter]; f != "" {
		list, err = m.tracker.ByPeriodicity(f)
	} else {
		list, err = m.tracker.Habits()
	}
	if err != nil {
		m.err = err
		return
	}
	m.habitsModel.SetHabits(analytics.Summarize(list))
}

func (m Model) filterLabel() string {
	if f := filters[m.filter]; f != "" {
		return f
	}
	return "all"
}

func periodicityOptions() []huh.Option[string] {
	opts := make([]huh.Option[string], 0, len(models.Periodicities))
	for _, p := range models.Periodicities {
		opts = append(opts, huh.NewOption(strings.ToUpper(p.String()[:1])+p.String()[1:], p.String()))
	}
	return opts
}

func newHabitForm(fm *HabitFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Value(&fm.Name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("name is required")
					}
					return nil
				}),
			huh.NewSelect[string]().
				Title("Periodicity").
				Options(periodicityOptions()...).
				Value(&fm.Periodicity),
		),
	)
}
