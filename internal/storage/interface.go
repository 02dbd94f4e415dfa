package storage

import (
	"errors"
	"time"

	"github.com/julianstephens/streakr/internal/models"
)

var (
	// ErrNotFound is returned when a habit lookup matches no row
	ErrNotFound = errors.New("not found")
	// ErrDuplicateName is returned when a habit name is already taken
	ErrDuplicateName = errors.New("habit with this name already exists")
	// ErrNotInitialized is returned by Load when the store has never been created
	ErrNotInitialized = errors.New("storage not initialized")
)

// Provider persists habits and their completions. It holds no streak logic;
// callers fetch snapshots and hand them to the streak engine.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Habits
	AddHabit(models.Habit) error
	GetHabit(id string) (models.Habit, error)
	GetHabitByName(name string) (models.Habit, error)
	// GetAllHabits returns every habit ordered by creation time, with
	// completions loaded.
	GetAllHabits() ([]models.Habit, error)

	// Completions
	AddCompletion(models.Completion) error
	GetCompletions(habitID string) ([]models.Completion, error)
	GetAllCompletions() ([]models.Completion, error)

	// Utils
	GetConfigPath() string
}

// CompletionTimes projects stored completions onto the timestamps the streak
// engine consumes.
func CompletionTimes(completions []models.Completion) []time.Time {
	times := make([]time.Time, 0, len(completions))
	for _, c := range completions {
		times = append(times, c.CompletedAt)
	}
	return times
}
