package sqlstore

import (
	"context"
	"fmt"
	"time"

	model "github.com/SaiAmirthesh/Looped-sub000/internal/models"
	"github.com/SaiAmirthesh/Looped-sub000/internal/scanner"
	"github.com/SaiAmirthesh/Looped-sub000/internal/store"
	"github.com/SaiAmirthesh/Looped-sub000/internal/utils"
)

func (s *Store) CreateHabit(ctx context.Context, h model.Habit) error {
	if err := s.ready(ctx); err != nil {
		return err
	}
	if err := required("habit id", h.ID); err != nil {
		return err
	}
	if err := required("habit name", h.Name); err != nil {
		return err
	}
	if h.CreatedAt.IsZero() {
		h.CreatedAt = time.Now()
	}
	return s.insert(ctx, "create habit",
		`INSERT INTO habits (id, user_id, name, category, skill, streak, longest_streak, last_completed, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		h.ID, h.UserID, h.Name, h.Category, h.Skill, h.Streak, h.LongestStreak,
		utils.StringPointerToNull(h.LastCompleted), utils.TimeToMillis(h.CreatedAt),
	)
}

func (s *Store) GetHabit(ctx context.Context, habitID, userID string) (model.Habit, error) {
	if err := s.ready(ctx); err != nil {
		return model.Habit{}, err
	}
	h, err := scanner.ScanHabit(s.queryRow(ctx,
		`SELECT `+scanner.HabitColumns+` FROM habits h WHERE h.id = ? AND h.user_id = ?`, habitID, userID))
	if err != nil {
		return model.Habit{}, notFound(err, "get habit")
	}
	return *h, nil
}

func (s *Store) ListHabitsWithStatus(ctx context.Context, userID, date string) ([]model.HabitWithStatus, error) {
	if err := s.ready(ctx); err != nil {
		return nil, err
	}
	rows, err := s.query(ctx,
		`SELECT `+scanner.HabitColumns+`, c.id IS NOT NULL
		 FROM habits h
		 LEFT JOIN habit_completions c ON c.habit_id = h.id AND c.completed_date = ?
		 WHERE h.user_id = ?
		 ORDER BY h.created_at, h.id`,
		date, userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list habits: %w", err)
	}
	defer rows.Close()

	habits := []model.HabitWithStatus{}
	for rows.Next() {
		var done bool
		h, err := scanner.ScanHabit(rows, &done)
		if err != nil {
			return nil, fmt.Errorf("scan habit: %w", err)
		}
		habits = append(habits, model.HabitWithStatus{Habit: *h, CompletedToday: done})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate habits: %w", err)
	}
	return habits, nil
}

func (s *Store) UpdateHabitStreak(ctx context.Context, habitID string, streak, longest int, lastCompleted *string) error {
	if err := s.ready(ctx); err != nil {
		return err
	}
	return s.execAffecting(ctx, "update habit streak",
		`UPDATE habits SET streak = ?, longest_streak = ?, last_completed = ? WHERE id = ?`,
		streak, longest, utils.StringPointerToNull(lastCompleted), habitID,
	)
}

func (s *Store) DeleteHabit(ctx context.Context, habitID, userID string) error {
	if err := s.ready(ctx); err != nil {
		return err
	}
	return s.execAffecting(ctx, "delete habit",
		`DELETE FROM habits WHERE id = ? AND user_id = ?`, habitID, userID)
}

func (s *Store) InsertHabitCompletion(ctx context.Context, c model.HabitCompletion) error {
	if err := s.ready(ctx); err != nil {
		return err
	}
	if err := required("completion id", c.ID); err != nil {
		return err
	}
	if err := required("completed date", c.CompletedDate); err != nil {
		return err
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now()
	}
	res, err := s.exec(ctx,
		`INSERT INTO habit_completions (`+scanner.CompletionColumns+`)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT (habit_id, completed_date) DO NOTHING`,
		c.ID, c.HabitID, c.UserID, c.CompletedDate, c.XPEarned, utils.TimeToMillis(c.CreatedAt),
	)
	if err != nil {
		if s.dialect.IsUniqueViolation(err) {
			return store.ErrConflict
		}
		return fmt.Errorf("insert habit completion: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("insert habit completion rows affected: %w", err)
	}
	if n == 0 {
		return store.ErrConflict
	}
	return nil
}

func (s *Store) DeleteHabitCompletion(ctx context.Context, habitID, userID, date string) (bool, error) {
	if err := s.ready(ctx); err != nil {
		return false, err
	}
	res, err := s.exec(ctx,
		`DELETE FROM habit_completions WHERE habit_id = ? AND user_id = ? AND completed_date = ?`,
		habitID, userID, date,
	)
	if err != nil {
		return false, fmt.Errorf("delete habit completion: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete habit completion rows affected: %w", err)
	}
	return n > 0, nil
}

func (s *Store) ListCompletionsBetween(ctx context.Context, userID, from, to string) ([]model.HabitCompletion, error) {
	if err := s.ready(ctx); err != nil {
		return nil, err
	}
	rows, err := s.query(ctx,
		`SELECT `+scanner.CompletionColumns+` FROM habit_completions
		 WHERE user_id = ? AND completed_date >= ? AND completed_date <= ?
		 ORDER BY completed_date, created_at`,
		userID, from, to,
	)
	if err != nil {
		return nil, fmt.Errorf("list completions: %w", err)
	}
	defer rows.Close()

	completions := []model.HabitCompletion{}
	for rows.Next() {
		c, err := scanner.ScanCompletion(rows)
		if err != nil {
			return nil, fmt.Errorf("scan completion: %w", err)
		}
		completions = append(completions, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate completions: %w", err)
	}
	return completions, nil
}
