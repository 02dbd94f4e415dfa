package postgres

import (
	"fmt"

	"github.com/julianstephens/streakr/internal/models"
	"github.com/julianstephens/streakr/internal/storage"
)

func (s *Store) AddCompletion(c models.Completion) error {
	var exists bool
	if err := s.db.QueryRow("SELECT EXISTS(SELECT 1 FROM habits WHERE id = $1)", c.HabitID).Scan(&exists); err != nil {
		return fmt.Errorf("failed to look up habit: %w", err)
	}
	if !exists {
		return fmt.Errorf("habit %s: %w", c.HabitID, storage.ErrNotFound)
	}

	_, err := s.db.Exec(`
		INSERT INTO completions (id, habit_id, completed_at) VALUES ($1, $2, $3)`,
		c.ID, c.HabitID, c.CompletedAt)
	if err != nil {
		return fmt.Errorf("failed to insert completion: %w", err)
	}
	return nil
}

func (s *Store) GetCompletions(habitID string) ([]models.Completion, error) {
	return s.queryCompletions(`
		SELECT id, habit_id, completed_at FROM completions
		WHERE habit_id = $1 ORDER BY completed_at`, habitID)
}

func (s *Store) GetAllCompletions() ([]models.Completion, error) {
	return s.queryCompletions(`
		SELECT id, habit_id, completed_at FROM completions
		ORDER BY habit_id, completed_at`)
}

func (s *Store) queryCompletions(query string, args ...any) ([]models.Completion, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query completions: %w", err)
	}
	defer rows.Close()

	var completions []models.Completion
	for rows.Next() {
		var c models.Completion
		if err := rows.Scan(&c.ID, &c.HabitID, &c.CompletedAt); err != nil {
			return nil, err
		}
		completions = append(completions, c)
	}

	return completions, rows.Err()
}
