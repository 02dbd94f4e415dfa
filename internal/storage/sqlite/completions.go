package sqlite

import (
	"fmt"

	"github.com/julianstephens/streakr/internal/models"
	"github.com/julianstephens/streakr/internal/storage"
)

func (s *Store) AddCompletion(c models.Completion) error {
	var exists int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM habits WHERE id = ?", c.HabitID).Scan(&exists); err != nil {
		return fmt.Errorf("failed to look up habit: %w", err)
	}
	if exists == 0 {
		return fmt.Errorf("habit %s: %w", c.HabitID, storage.ErrNotFound)
	}

	_, err := s.db.Exec(`
		INSERT INTO completions (id, habit_id, completed_at) VALUES (?, ?, ?)`,
		c.ID, c.HabitID, formatTime(c.CompletedAt))
	if err != nil {
		return fmt.Errorf("failed to insert completion: %w", err)
	}
	return nil
}

func (s *Store) GetCompletions(habitID string) ([]models.Completion, error) {
	return s.queryCompletions(`
		SELECT id, habit_id, completed_at FROM completions
		WHERE habit_id = ? ORDER BY completed_at`, habitID)
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
		var completedAt string
		if err := rows.Scan(&c.ID, &c.HabitID, &completedAt); err != nil {
			return nil, err
		}
		c.CompletedAt, err = parseTime(completedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse completed_at for completion %s: %w", c.ID, err)
		}
		completions = append(completions, c)
	}

	return completions, rows.Err()
}
