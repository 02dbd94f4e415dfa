// Package streak derives consistency metrics from a habit's completion log.
//
// The two computations answer different questions and scan in opposite
// directions. CurrentStreak walks backward from the most recent completion and
// stops at the first oversized gap, so only the tail of the history matters.
// WasBroken walks forward from the creation time and reports the first
// oversized gap found anywhere in the history.
//
// Both functions are pure: they copy their input before sorting and never
// retain it.
package streak

import (
	"slices"
	"time"

	"github.com/julianstephens/streakr/internal/models"
)

// CurrentStreak returns how many completions form an unbroken chain ending at
// the most recent one. Consecutive entries may be at most one period apart;
// duplicates and ties continue the chain.
func CurrentStreak(p models.Periodicity, completions []time.Time) int {
	if len(completions) == 0 {
		return 0
	}

	log := sortedCopy(completions)
	slices.Reverse(log)

	step := p.Step()
	window := log[0]
	streak := 0
	for _, entry := range log {
		if window.Sub(entry) > step {
			break
		}
		streak++
		window = entry
	}

	return streak
}

// WasBroken reports whether any gap between creation (or a completion) and
// the next completion exceeded one period. A habit that was never completed
// counts as broken.
func WasBroken(p models.Periodicity, createdAt time.Time, completions []time.Time) bool {
	if len(completions) == 0 {
		return true
	}

	step := p.Step()
	expected := createdAt
	for _, entry := range sortedCopy(completions) {
		if entry.Sub(expected) > step {
			return true
		}
		expected = entry
	}

	return false
}

// Streak applies CurrentStreak to a habit snapshot
func Streak(h models.Habit) int {
	return CurrentStreak(h.Periodicity, h.Completions)
}

// Broken applies WasBroken to a habit snapshot
func Broken(h models.Habit) bool {
	return WasBroken(h.Periodicity, h.CreatedAt, h.Completions)
}

func sortedCopy(completions []time.Time) []time.Time {
	log := slices.Clone(completions)
	slices.SortFunc(log, func(a, b time.Time) int {
		return a.Compare(b)
	})
	return log
}
