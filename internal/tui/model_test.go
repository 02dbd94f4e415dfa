package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/streakr/internal/storage/sqlite"
	"github.com/julianstephens/streakr/internal/tracker"
)

var day0 = time.Date(2025, 7, 1, 6, 0, 0, 0, time.UTC)

func setupTestModel(t *testing.T, habits ...[2]string) (Model, *tracker.Tracker) {
	t.Helper()
	store := sqlite.NewStore(filepath.Join(t.TempDir(), "test.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to initialize store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	tr := tracker.New(store, func() time.Time { return day0 })
	for _, h := range habits {
		if _, err := tr.Create(h[0], h[1]); err != nil {
			t.Fatalf("Create(%s): %v", h[0], err)
		}
	}
	return NewModel(tr), tr
}

func keyPress(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

// press sends a key and feeds any command result back into the model.
func press(t *testing.T, m Model, msg tea.KeyMsg) Model {
	t.Helper()
	next, cmd := m.Update(msg)
	m = next.(Model)
	if cmd != nil {
		if out := cmd(); out != nil {
			next, _ = m.Update(out)
			m = next.(Model)
		}
	}
	return m
}

func TestCheckOffFromDashboard(t *testing.T) {
	m, tr := setupTestModel(t, [2]string{"Floss", "daily"}, [2]string{"Review", "weekly"})

	m = press(t, m, keyPress('c'))

	if m.err != nil {
		t.Fatalf("unexpected error: %v", m.err)
	}
	if !strings.Contains(m.status, "Checked off Floss") {
		t.Errorf("status = %q", m.status)
	}

	h, err := tr.Find("Floss")
	if err != nil {
		t.Fatal(err)
	}
	if len(h.Completions) != 1 {
		t.Errorf("expected 1 completion, got %d", len(h.Completions))
	}
	if !strings.Contains(m.View(), "streak 1") {
		t.Errorf("dashboard not refreshed:\n%s", m.View())
	}
}

func TestCycleFilter(t *testing.T) {
	m, _ := setupTestModel(t, [2]string{"Floss", "daily"}, [2]string{"Review", "weekly"})

	if !strings.Contains(m.View(), "showing: all") {
		t.Fatalf("expected unfiltered view:\n%s", m.View())
	}

	m = press(t, m, keyPress('p'))
	view := m.View()
	if !strings.Contains(view, "showing: daily") || strings.Contains(view, "Review") {
		t.Errorf("daily filter not applied:\n%s", view)
	}

	m = press(t, m, keyPress('p'))
	view = m.View()
	if !strings.Contains(view, "showing: weekly") || strings.Contains(view, "Floss") {
		t.Errorf("weekly filter not applied:\n%s", view)
	}

	m = press(t, m, keyPress('p'))
	if !strings.Contains(m.View(), "showing: all") {
		t.Errorf("filter did not wrap around:\n%s", m.View())
	}
}

func TestAddHabitFormOpensAndCancels(t *testing.T) {
	m, _ := setupTestModel(t)

	if !strings.Contains(m.View(), "No habits yet.") {
		t.Errorf("expected empty state:\n%s", m.View())
	}

	m = press(t, m, keyPress('a'))
	if m.state != StateAddHabit {
		t.Fatalf("state = %v, want StateAddHabit", m.state)
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(Model)
	if m.state != StateHabits {
		t.Errorf("state = %v after esc, want StateHabits", m.state)
	}
}

func TestQuit(t *testing.T) {
	m, _ := setupTestModel(t)

	next, cmd := m.Update(keyPress('q'))
	m = next.(Model)
	if !m.quitting {
		t.Error("expected quitting after q")
	}
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
	if m.View() != "" {
		t.Error("expected empty view after quit")
	}
}

func TestWindowResize(t *testing.T) {
	m, _ := setupTestModel(t, [2]string{"Floss", "daily"})
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m = next.(Model)
	if m.width != 100 || m.height != 40 {
		t.Errorf("size = %dx%d, want 100x40", m.width, m.height)
	}
}

func TestPeriodicityChoices(t *testing.T) {
	want := []string{"", "daily", "weekly"}
	if len(filters) != len(want) {
		t.Fatalf("filters = %v, want %v", filters, want)
	}
	for i := range want {
		if filters[i] != want[i] {
			t.Errorf("filters[%d] = %q, want %q", i, filters[i], want[i])
		}
	}

	opts := periodicityOptions()
	if len(opts) != 2 || opts[0].Key != "Daily" || opts[0].Value != "daily" || opts[1].Key != "Weekly" {
		t.Errorf("unexpected form options: %+v", opts)
	}
}
