package habits

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/streakr/internal/analytics"
)

type AddHabitMsg struct{}

type CheckOffMsg struct {
	Name string
}

type CycleFilterMsg struct{}

type Item struct {
	Summary analytics.Summary
}

func (i Item) Title() string {
	if i.Summary.Broken {
		return "✗ " + i.Summary.Name
	}
	return "✓ " + i.Summary.Name
}

func (i Item) Description() string {
	desc := fmt.Sprintf("%s · streak %d · %d completions", i.Summary.Periodicity, i.Summary.Streak, i.Summary.Completions)
	if i.Summary.Completions == 0 {
		return desc + " · never completed"
	}
	if i.Summary.Broken {
		return desc + " · broken"
	}
	return desc
}

func (i Item) FilterValue() string { return i.Summary.Name }

type KeyMap struct {
	Add    key.Binding
	Check  key.Binding
	Period key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add"),
		),
		Check: key.NewBinding(
			key.WithKeys("c", "enter"),
			key.WithHelp("c", "check off"),
		),
		Period: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "cycle periodicity"),
		),
	}
}

type Model struct {
	list list.Model
	keys KeyMap
}

func New(summaries []analytics.Summary, width, height int) Model {
	l := list.New(toItems(summaries), list.NewDefaultDelegate(), width, height)
	l.Title = "Habits"
	l.SetShowTitle(false)
	l.SetShowHelp(false)

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add, keys.Check, keys.Period}
	}
	l.AdditionalFullHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add, keys.Check, keys.Period}
	}

	return Model{
		list: l,
		keys: keys,
	}
}

func toItems(summaries []analytics.Summary) []list.Item {
	items := make([]list.Item, len(summaries))
	for i, s := range summaries {
		items[i] = Item{Summary: s}
	}
	return items
}

func (m *Model) SetHabits(summaries []analytics.Summary) {
	m.list.SetItems(toItems(summaries))
}

// Selected returns the summary under the cursor.
func (m Model) Selected() (analytics.Summary, bool) {
	i, ok := m.list.SelectedItem().(Item)
	return i.Summary, ok
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	if msg, ok := msg.(tea.KeyMsg); ok && m.list.FilterState() != list.Filtering {
		switch {
		case key.Matches(msg, m.keys.Add):
			return m, func() tea.Msg { return AddHabitMsg{} }
		case key.Matches(msg, m.keys.Check):
			if s, ok := m.Selected(); ok {
				return m, func() tea.Msg { return CheckOffMsg{Name: s.Name} }
			}
			return m, nil
		case key.Matches(msg, m.keys.Period):
			return m, func() tea.Msg { return CycleFilterMsg{} }
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 && m.list.FilterState() != list.Filtering {
		return "\n  No habits yet.\n  Press 'a' to add one."
	}
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}

// Filtering reports whether the list is capturing keys for its filter input.
func (m Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}
