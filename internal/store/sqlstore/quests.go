package sqlstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	model "github.com/SaiAmirthesh/Looped-sub000/internal/models"
	"github.com/SaiAmirthesh/Looped-sub000/internal/scanner"
	"github.com/SaiAmirthesh/Looped-sub000/internal/store"
	"github.com/SaiAmirthesh/Looped-sub000/internal/utils"
)

func (s *Store) CreateQuest(ctx context.Context, q model.Quest) error {
	if err := s.ready(ctx); err != nil {
		return err
	}
	if err := required("quest id", q.ID); err != nil {
		return err
	}
	if err := required("quest title", q.Title); err != nil {
		return err
	}
	if q.CreatedAt.IsZero() {
		q.CreatedAt = time.Now()
	}
	return s.insert(ctx, "create quest",
		`INSERT INTO quests (`+scanner.QuestColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		q.ID, q.UserID, q.Title, q.Description, string(q.Difficulty), q.Skill, q.XPReward,
		q.Completed, utils.TimePointerToNullMillis(q.CompletedAt), utils.TimeToMillis(q.CreatedAt),
	)
}

func (s *Store) GetQuest(ctx context.Context, questID, userID string) (model.Quest, error) {
	if err := s.ready(ctx); err != nil {
		return model.Quest{}, err
	}
	q, err := scanner.ScanQuest(s.queryRow(ctx,
		`SELECT `+scanner.QuestColumns+` FROM quests WHERE id = ? AND user_id = ?`, questID, userID))
	if err != nil {
		return model.Quest{}, notFound(err, "get quest")
	}
	return *q, nil
}

func (s *Store) ListOpenQuests(ctx context.Context, userID string) ([]model.Quest, error) {
	if err := s.ready(ctx); err != nil {
		return nil, err
	}
	rows, err := s.query(ctx,
		`SELECT `+scanner.QuestColumns+` FROM quests WHERE user_id = ? AND completed = ? ORDER BY created_at, id`,
		userID, false,
	)
	if err != nil {
		return nil, fmt.Errorf("list quests: %w", err)
	}
	defer rows.Close()

	quests := []model.Quest{}
	for rows.Next() {
		q, err := scanner.ScanQuest(rows)
		if err != nil {
			return nil, fmt.Errorf("scan quest: %w", err)
		}
		quests = append(quests, *q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate quests: %w", err)
	}
	return quests, nil
}

func (s *Store) MarkQuestCompleted(ctx context.Context, questID, userID string, at time.Time) error {
	if err := s.ready(ctx); err != nil {
		return err
	}
	err := s.execAffecting(ctx, "complete quest",
		`UPDATE quests SET completed = ?, completed_at = ? WHERE id = ? AND user_id = ? AND completed = ?`,
		true, utils.TimeToMillis(at), questID, userID, false,
	)
	if !errors.Is(err, store.ErrNotFound) {
		return err
	}
	// Nothing updated: either missing or already completed.
	if _, err := s.GetQuest(ctx, questID, userID); err != nil {
		return err
	}
	return store.ErrConflict
}

func (s *Store) DeleteQuest(ctx context.Context, questID, userID string) error {
	if err := s.ready(ctx); err != nil {
		return err
	}
	return s.execAffecting(ctx, "delete quest",
		`DELETE FROM quests WHERE id = ? AND user_id = ?`, questID, userID)
}
