// Package tracker holds the habit operations shared by the command line,
// the interactive menu and the dashboard. It owns no state beyond the store;
// every call re-reads the habit snapshots it needs.
package tracker

import (
	"errors"
	"fmt"
	"time"

	"github.com/julianstephens/streakr/internal/analytics"
	"github.com/julianstephens/streakr/internal/logger"
	"github.com/julianstephens/streakr/internal/models"
	"github.com/julianstephens/streakr/internal/storage"
)

type Tracker struct {
	store storage.Provider
	now   func() time.Time
}

func New(store storage.Provider, now func() time.Time) *Tracker {
	if now == nil {
		now = time.Now
	}
	return &Tracker{store: store, now: now}
}

func (t *Tracker) Now() time.Time {
	return t.now()
}

// Create validates and stores a new habit.
func (t *Tracker) Create(name, periodicity string) (models.Habit, error) {
	habit, err := models.NewHabit(name, periodicity, t.now())
	if err != nil {
		return models.Habit{}, err
	}
	if err := t.store.AddHabit(habit); err != nil {
		return models.Habit{}, err
	}
	logger.Info("Created habit", "name", habit.Name, "periodicity", habit.Periodicity)
	return habit, nil
}

// Find looks a habit up by exact name.
func (t *Tracker) Find(name string) (models.Habit, error) {
	habit, err := t.store.GetHabitByName(name)
	if errors.Is(err, storage.ErrNotFound) {
		return models.Habit{}, fmt.Errorf("habit %q %w", name, storage.ErrNotFound)
	}
	if err != nil {
		return models.Habit{}, fmt.Errorf("failed to load habit %q: %w", name, err)
	}
	return habit, nil
}

// CheckOff records a completion at the given time and returns the updated
// snapshot. A zero time means now.
func (t *Tracker) CheckOff(name string, at time.Time) (models.Habit, error) {
	if at.IsZero() {
		at = t.now()
	}

	habit, err := t.Find(name)
	if err != nil {
		return models.Habit{}, err
	}

	updated, err := habit.CheckOff(at)
	if err != nil {
		return models.Habit{}, err
	}
	if err := t.store.AddCompletion(habit.NewCompletion(at)); err != nil {
		return models.Habit{}, err
	}

	logger.Debug("Checked off habit", "name", habit.Name, "at", at)
	return updated, nil
}

func (t *Tracker) Habits() ([]models.Habit, error) {
	habits, err := t.store.GetAllHabits()
	if err != nil {
		return nil, fmt.Errorf("failed to load habits: %w", err)
	}
	return habits, nil
}

// ByPeriodicity returns the habits whose periodicity matches period.
func (t *Tracker) ByPeriodicity(period string) ([]models.Habit, error) {
	habits, err := t.Habits()
	if err != nil {
		return nil, err
	}
	return analytics.FilterByPeriodicity(habits, period), nil
}

// LongestStreak returns the longest current streak across all habits.
func (t *Tracker) LongestStreak() (int, error) {
	habits, err := t.Habits()
	if err != nil {
		return 0, err
	}
	return analytics.LongestStreakAcross(habits), nil
}

// Status is a habit's streak summary plus its most recent check-off.
type Status struct {
	analytics.Summary
	LastCompletion time.Time
	Completed      bool
}

// Status returns the streak summary for one habit.
func (t *Tracker) Status(name string) (Status, error) {
	habit, err := t.Find(name)
	if err != nil {
		return Status{}, err
	}
	last, ok := habit.LastCompletion()
	return Status{
		Summary:        analytics.SummaryOf(habit),
		LastCompletion: last,
		Completed:      ok,
	}, nil
}
