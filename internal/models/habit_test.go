package models

import (
	"errors"
	"testing"
	"time"
)

func TestParsePeriodicity(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Periodicity
		wantErr bool
	}{
		{name: "daily", input: "daily", want: Daily},
		{name: "weekly", input: "weekly", want: Weekly},
		{name: "mixed case", input: "Daily", want: Daily},
		{name: "surrounding whitespace", input: "  WEEKLY ", want: Weekly},
		{name: "monthly", input: "monthly", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePeriodicity(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidPeriodicity) {
					t.Fatalf("ParsePeriodicity(%q) error = %v, want ErrInvalidPeriodicity", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParsePeriodicity(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParsePeriodicity(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestPeriodicityStep(t *testing.T) {
	if got := Daily.Step(); got != 24*time.Hour {
		t.Errorf("Daily.Step() = %v, want 24h", got)
	}
	if got := Weekly.Step(); got != 168*time.Hour {
		t.Errorf("Weekly.Step() = %v, want 168h", got)
	}
	if Periodicity("monthly").Valid() {
		t.Error("monthly should not be valid")
	}
}

func TestNewHabit(t *testing.T) {
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	h, err := NewHabit("  Read ", "Weekly", now)
	if err != nil {
		t.Fatalf("NewHabit failed: %v", err)
	}
	if h.ID == "" {
		t.Error("expected generated ID")
	}
	if h.Name != "Read" {
		t.Errorf("expected trimmed name %q, got %q", "Read", h.Name)
	}
	if h.Periodicity != Weekly {
		t.Errorf("expected weekly, got %q", h.Periodicity)
	}
	if !h.CreatedAt.Equal(now) {
		t.Errorf("expected CreatedAt %v, got %v", now, h.CreatedAt)
	}
	if len(h.Completions) != 0 {
		t.Errorf("expected no completions, got %d", len(h.Completions))
	}

	if _, err := NewHabit("Read", "fortnightly", now); !errors.Is(err, ErrInvalidPeriodicity) {
		t.Errorf("expected ErrInvalidPeriodicity, got %v", err)
	}
	if _, err := NewHabit("   ", "daily", now); !errors.Is(err, ErrEmptyName) {
		t.Errorf("expected ErrEmptyName, got %v", err)
	}
}

func TestCheckOffReturnsNewSnapshot(t *testing.T) {
	created := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	h, err := NewHabit("Run", "daily", created)
	if err != nil {
		t.Fatalf("NewHabit failed: %v", err)
	}

	first, err := h.CheckOff(created.Add(time.Hour))
	if err != nil {
		t.Fatalf("CheckOff failed: %v", err)
	}
	second, err := first.CheckOff(created.Add(25 * time.Hour))
	if err != nil {
		t.Fatalf("CheckOff failed: %v", err)
	}

	if len(h.Completions) != 0 {
		t.Errorf("original habit mutated: %v", h.Completions)
	}
	if len(first.Completions) != 1 {
		t.Errorf("first snapshot should have 1 completion, got %d", len(first.Completions))
	}
	if len(second.Completions) != 2 {
		t.Errorf("second snapshot should have 2 completions, got %d", len(second.Completions))
	}

	// Appending to a snapshot must not leak into a sibling snapshot
	a, _ := first.CheckOff(created.Add(2 * time.Hour))
	b, _ := first.CheckOff(created.Add(3 * time.Hour))
	if a.Completions[1].Equal(b.Completions[1]) {
		t.Error("sibling snapshots share backing storage")
	}
}

func TestCheckOffBeforeCreation(t *testing.T) {
	created := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	h, _ := NewHabit("Run", "daily", created)

	_, err := h.CheckOff(created.Add(-time.Minute))
	if !errors.Is(err, ErrCompletionBeforeCreation) {
		t.Errorf("expected ErrCompletionBeforeCreation, got %v", err)
	}
}

func TestLastCompletion(t *testing.T) {
	created := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	h := Habit{Name: "Run", Periodicity: Daily, CreatedAt: created}

	if _, ok := h.LastCompletion(); ok {
		t.Error("expected no last completion")
	}

	h.Completions = []time.Time{created.Add(48 * time.Hour), created.Add(72 * time.Hour), created.Add(24 * time.Hour)}
	last, ok := h.LastCompletion()
	if !ok || !last.Equal(created.Add(72*time.Hour)) {
		t.Errorf("LastCompletion() = %v, %v; want %v", last, ok, created.Add(72*time.Hour))
	}
}
