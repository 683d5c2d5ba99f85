package sqlstore

import (
	"context"
	"fmt"
	"time"

	model "github.com/SaiAmirthesh/Looped-sub000/internal/models"
	"github.com/SaiAmirthesh/Looped-sub000/internal/scanner"
	"github.com/SaiAmirthesh/Looped-sub000/internal/utils"
)

func (s *Store) CreateReminder(ctx context.Context, r model.Reminder) error {
	if err := s.ready(ctx); err != nil {
		return err
	}
	if err := required("reminder id", r.ID); err != nil {
		return err
	}
	if err := required("reminder date", r.ReminderDate); err != nil {
		return err
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now()
	}
	return s.insert(ctx, "create reminder",
		`INSERT INTO reminders (`+scanner.ReminderColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.UserID, r.Title, r.Note, r.ReminderDate, r.ReminderTime, utils.TimeToMillis(r.CreatedAt),
	)
}

func (s *Store) ListRemindersBetween(ctx context.Context, userID, from, to string) ([]model.Reminder, error) {
	if err := s.ready(ctx); err != nil {
		return nil, err
	}
	rows, err := s.query(ctx,
		`SELECT `+scanner.ReminderColumns+` FROM reminders
		 WHERE user_id = ? AND reminder_date >= ? AND reminder_date <= ?
		 ORDER BY reminder_date, reminder_time, id`,
		userID, from, to,
	)
	if err != nil {
		return nil, fmt.Errorf("list reminders: %w", err)
	}
	defer rows.Close()

	reminders := []model.Reminder{}
	for rows.Next() {
		r, err := scanner.ScanReminder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan reminder: %w", err)
		}
		reminders = append(reminders, *r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate reminders: %w", err)
	}
	return reminders, nil
}

func (s *Store) DeleteReminder(ctx context.Context, reminderID, userID string) error {
	if err := s.ready(ctx); err != nil {
		return err
	}
	return s.execAffecting(ctx, "delete reminder",
		`DELETE FROM reminders WHERE id = ? AND user_id = ?`, reminderID, userID)
}
