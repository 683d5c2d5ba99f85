package sqlstore

import (
	"context"
	"errors"
	"time"

	model "github.com/SaiAmirthesh/Looped-sub000/internal/models"
	"github.com/SaiAmirthesh/Looped-sub000/internal/scanner"
	"github.com/SaiAmirthesh/Looped-sub000/internal/store"
	"github.com/SaiAmirthesh/Looped-sub000/internal/utils"
)

func (s *Store) CreateFocusSession(ctx context.Context, fs model.FocusSession) error {
	if err := s.ready(ctx); err != nil {
		return err
	}
	if err := required("focus session id", fs.ID); err != nil {
		return err
	}
	if fs.SessionType == "" {
		fs.SessionType = model.SessionFocus
	}
	if fs.CreatedAt.IsZero() {
		fs.CreatedAt = time.Now()
	}
	return s.insert(ctx, "create focus session",
		`INSERT INTO focus_sessions (`+scanner.FocusSessionColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		fs.ID, fs.UserID, fs.DurationMinutes, string(fs.SessionType), fs.Completed, fs.XPEarned,
		utils.TimeToMillis(fs.CreatedAt),
	)
}

func (s *Store) GetFocusSession(ctx context.Context, sessionID, userID string) (model.FocusSession, error) {
	if err := s.ready(ctx); err != nil {
		return model.FocusSession{}, err
	}
	fs, err := scanner.ScanFocusSession(s.queryRow(ctx,
		`SELECT `+scanner.FocusSessionColumns+` FROM focus_sessions WHERE id = ? AND user_id = ?`,
		sessionID, userID))
	if err != nil {
		return model.FocusSession{}, notFound(err, "get focus session")
	}
	return *fs, nil
}

func (s *Store) MarkFocusSessionCompleted(ctx context.Context, sessionID, userID string, durationMinutes, xpEarned int) error {
	if err := s.ready(ctx); err != nil {
		return err
	}
	err := s.execAffecting(ctx, "complete focus session",
		`UPDATE focus_sessions SET completed = ?, duration_minutes = ?, xp_earned = ?
		 WHERE id = ? AND user_id = ? AND completed = ?`,
		true, durationMinutes, xpEarned, sessionID, userID, false,
	)
	if !errors.Is(err, store.ErrNotFound) {
		return err
	}
	if _, err := s.GetFocusSession(ctx, sessionID, userID); err != nil {
		return err
	}
	return store.ErrConflict
}
