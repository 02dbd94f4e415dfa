package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrEmptyName is returned when a habit is created without a name
	ErrEmptyName = errors.New("habit name cannot be empty")
	// ErrCompletionBeforeCreation is returned when a check-off predates the habit
	ErrCompletionBeforeCreation = errors.New("completion cannot be earlier than habit creation")
)

// Habit represents a recurring practice and its completion history.
// A Habit value is a snapshot: CheckOff returns a new value instead of
// mutating the receiver.
type Habit struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Periodicity Periodicity `json:"periodicity"`
	CreatedAt   time.Time   `json:"created_at"`
	Completions []time.Time `json:"completions,omitempty"`
}

// Completion is a single stored check-off of a habit
type Completion struct {
	ID          string    `json:"id"`
	HabitID     string    `json:"habit_id"`
	CompletedAt time.Time `json:"completed_at"`
}

// NewHabit validates its input and returns a habit with no completions.
func NewHabit(name, periodicity string, now time.Time) (Habit, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Habit{}, ErrEmptyName
	}

	p, err := ParsePeriodicity(periodicity)
	if err != nil {
		return Habit{}, err
	}

	return Habit{
		ID:          uuid.New().String(),
		Name:        name,
		Periodicity: p,
		CreatedAt:   now,
	}, nil
}

// CheckOff returns a copy of the habit with a completion recorded at the given time.
func (h Habit) CheckOff(at time.Time) (Habit, error) {
	if at.Before(h.CreatedAt) {
		return h, fmt.Errorf("%w: %s is before %s", ErrCompletionBeforeCreation,
			at.Format(time.RFC3339), h.CreatedAt.Format(time.RFC3339))
	}

	completions := make([]time.Time, len(h.Completions), len(h.Completions)+1)
	copy(completions, h.Completions)
	h.Completions = append(completions, at)
	return h, nil
}

// NewCompletion builds the storage record for a check-off of this habit
func (h Habit) NewCompletion(at time.Time) Completion {
	return Completion{
		ID:          uuid.New().String(),
		HabitID:     h.ID,
		CompletedAt: at,
	}
}

// LastCompletion returns the most recent completion, if any
func (h Habit) LastCompletion() (time.Time, bool) {
	if len(h.Completions) == 0 {
		return time.Time{}, false
	}
	last := h.Completions[0]
	for _, c := range h.Completions[1:] {
		if c.After(last) {
			last = c
		}
	}
	return last, true
}
