// Package analytics applies the streak engine across collections of habits.
// Every function here is a read-only list operation over habit snapshots.
package analytics

import (
	"strings"

	"github.com/julianstephens/streakr/internal/models"
	"github.com/julianstephens/streakr/internal/streak"
)

// Summary is the per-habit view used by list and dashboard output
type Summary struct {
	Name        string
	Periodicity models.Periodicity
	Streak      int
	Broken      bool
	Completions int
}

// NamesOf returns the habit names in input order
func NamesOf(habits []models.Habit) []string {
	names := make([]string, 0, len(habits))
	for _, h := range habits {
		names = append(names, h.Name)
	}
	return names
}

// FilterByPeriodicity returns the habits whose periodicity matches period.
// The comparison is case-insensitive; an unknown period matches nothing.
func FilterByPeriodicity(habits []models.Habit, period string) []models.Habit {
	want := models.Periodicity(strings.ToLower(strings.TrimSpace(period)))
	if !want.Valid() {
		return nil
	}

	var filtered []models.Habit
	for _, h := range habits {
		if h.Periodicity == want {
			filtered = append(filtered, h)
		}
	}
	return filtered
}

// LongestStreakAcross returns the highest current streak among habits, or 0
// when there are none.
func LongestStreakAcross(habits []models.Habit) int {
	longest := 0
	for _, h := range habits {
		if s := streak.Streak(h); s > longest {
			longest = s
		}
	}
	return longest
}

// LongestStreakFor returns the streak reported for a single habit
func LongestStreakFor(h models.Habit) int {
	return streak.Streak(h)
}

// FindByName looks up a habit by exact name
func FindByName(habits []models.Habit, name string) (models.Habit, bool) {
	for _, h := range habits {
		if h.Name == name {
			return h, true
		}
	}
	return models.Habit{}, false
}

// Summarize computes streak metrics for each habit, preserving order
func Summarize(habits []models.Habit) []Summary {
	summaries := make([]Summary, 0, len(habits))
	for _, h := range habits {
		summaries = append(summaries, SummaryOf(h))
	}
	return summaries
}

// SummaryOf computes streak metrics for one habit
func SummaryOf(h models.Habit) Summary {
	return Summary{
		Name:        h.Name,
		Periodicity: h.Periodicity,
		Streak:      streak.Streak(h),
		Broken:      streak.Broken(h),
		Completions: len(h.Completions),
	}
}
