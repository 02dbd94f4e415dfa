package habits

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/streakr/internal/analytics"
	"github.com/julianstephens/streakr/internal/models"
)

func TestItemRendering(t *testing.T) {
	tests := []struct {
		name      string
		summary   analytics.Summary
		wantTitle string
		wantDesc  string
	}{
		{
			name:      "never completed",
			summary:   analytics.Summary{Name: "Floss", Periodicity: models.Daily, Broken: true},
			wantTitle: "✗ Floss",
			wantDesc:  "never completed",
		},
		{
			name:      "broken",
			summary:   analytics.Summary{Name: "Run", Periodicity: models.Weekly, Streak: 1, Broken: true, Completions: 3},
			wantTitle: "✗ Run",
			wantDesc:  "weekly · streak 1 · 3 completions · broken",
		},
		{
			name:      "intact",
			summary:   analytics.Summary{Name: "Read", Periodicity: models.Daily, Streak: 4, Completions: 4},
			wantTitle: "✓ Read",
			wantDesc:  "daily · streak 4 · 4 completions",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := Item{Summary: tt.summary}
			if got := item.Title(); got != tt.wantTitle {
				t.Errorf("Title() = %q, want %q", got, tt.wantTitle)
			}
			if got := item.Description(); !strings.Contains(got, tt.wantDesc) {
				t.Errorf("Description() = %q, want it to contain %q", got, tt.wantDesc)
			}
			if item.FilterValue() != tt.summary.Name {
				t.Errorf("FilterValue() = %q", item.FilterValue())
			}
		})
	}
}

func TestKeysEmitMessages(t *testing.T) {
	m := New([]analytics.Summary{{Name: "Floss", Periodicity: models.Daily}}, 80, 20)

	tests := []struct {
		key  rune
		want tea.Msg
	}{
		{'a', AddHabitMsg{}},
		{'c', CheckOffMsg{Name: "Floss"}},
		{'p', CycleFilterMsg{}},
	}
	for _, tt := range tests {
		_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{tt.key}})
		if cmd == nil {
			t.Fatalf("key %q produced no command", tt.key)
		}
		if got := cmd(); got != tt.want {
			t.Errorf("key %q produced %#v, want %#v", tt.key, got, tt.want)
		}
	}
}

func TestCheckOffWithoutSelection(t *testing.T) {
	m := New(nil, 80, 20)
	if _, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'c'}}); cmd != nil {
		t.Error("check-off on an empty list should do nothing")
	}
	if !strings.Contains(m.View(), "No habits yet.") {
		t.Errorf("unexpected empty view: %q", m.View())
	}
}
