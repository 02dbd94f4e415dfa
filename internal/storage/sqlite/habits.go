package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/julianstephens/streakr/internal/models"
	"github.com/julianstephens/streakr/internal/storage"
)

// AddHabit inserts a habit together with any completions it already carries
func (s *Store) AddHabit(habit models.Habit) error {
	if !habit.Periodicity.Valid() {
		return fmt.Errorf("%w: %q", models.ErrInvalidPeriodicity, habit.Periodicity)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	_, err = tx.Exec(`
		INSERT INTO habits (id, name, periodicity, created_at)
		VALUES (?, ?, ?, ?)`,
		habit.ID, habit.Name, string(habit.Periodicity), formatTime(habit.CreatedAt))
	if err != nil {
		_ = tx.Rollback()
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %q", storage.ErrDuplicateName, habit.Name)
		}
		return fmt.Errorf("failed to insert habit: %w", err)
	}

	for _, at := range habit.Completions {
		c := habit.NewCompletion(at)
		if _, err := tx.Exec(`
			INSERT INTO completions (id, habit_id, completed_at) VALUES (?, ?, ?)`,
			c.ID, c.HabitID, formatTime(c.CompletedAt)); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to insert completion: %w", err)
		}
	}

	return tx.Commit()
}

func (s *Store) GetHabit(id string) (models.Habit, error) {
	row := s.db.QueryRow(`
		SELECT id, name, periodicity, created_at
		FROM habits WHERE id = ?`, id)
	return s.loadHabit(row)
}

func (s *Store) GetHabitByName(name string) (models.Habit, error) {
	row := s.db.QueryRow(`
		SELECT id, name, periodicity, created_at
		FROM habits WHERE name = ?`, name)
	return s.loadHabit(row)
}

func (s *Store) GetAllHabits() ([]models.Habit, error) {
	rows, err := s.db.Query(`
		SELECT id, name, periodicity, created_at
		FROM habits ORDER BY created_at, name`)
	if err != nil {
		return nil, fmt.Errorf("failed to query habits: %w", err)
	}
	defer rows.Close()

	var habits []models.Habit
	index := make(map[string]int)
	for rows.Next() {
		h, err := scanHabit(rows)
		if err != nil {
			return nil, err
		}
		index[h.ID] = len(habits)
		habits = append(habits, h)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	completions, err := s.GetAllCompletions()
	if err != nil {
		return nil, err
	}
	for _, c := range completions {
		if i, ok := index[c.HabitID]; ok {
			habits[i].Completions = append(habits[i].Completions, c.CompletedAt)
		}
	}

	return habits, nil
}

func (s *Store) loadHabit(row *sql.Row) (models.Habit, error) {
	h, err := scanHabit(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Habit{}, storage.ErrNotFound
		}
		return models.Habit{}, err
	}

	completions, err := s.GetCompletions(h.ID)
	if err != nil {
		return models.Habit{}, err
	}
	h.Completions = storage.CompletionTimes(completions)

	return h, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanHabit(row scanner) (models.Habit, error) {
	var h models.Habit
	var periodicity, createdAt string

	if err := row.Scan(&h.ID, &h.Name, &periodicity, &createdAt); err != nil {
		return models.Habit{}, err
	}

	p, err := models.ParsePeriodicity(periodicity)
	if err != nil {
		return models.Habit{}, fmt.Errorf("habit %s: %w", h.ID, err)
	}
	h.Periodicity = p

	h.CreatedAt, err = parseTime(createdAt)
	if err != nil {
		return models.Habit{}, fmt.Errorf("failed to parse created_at for habit %s: %w", h.ID, err)
	}

	return h, nil
}
