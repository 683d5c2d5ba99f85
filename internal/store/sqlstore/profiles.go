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

// CreateProfile inserts a profile. Level defaults to 1.
func (s *Store) CreateProfile(ctx context.Context, p model.Profile) error {
	if err := s.ready(ctx); err != nil {
		return err
	}
	if err := required("profile id", p.ID); err != nil {
		return err
	}
	if p.Level < 1 {
		p.Level = 1
	}
	now := time.Now()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	if p.UpdatedAt.IsZero() {
		p.UpdatedAt = p.CreatedAt
	}
	return s.insert(ctx, "create profile",
		`INSERT INTO profiles (`+scanner.ProfileColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.DisplayName, p.AvatarURL, p.Level, p.CurrentXP, p.TotalXP,
		utils.TimeToMillis(p.CreatedAt), utils.TimeToMillis(p.UpdatedAt),
	)
}

func (s *Store) GetProfile(ctx context.Context, userID string) (model.Profile, error) {
	if err := s.ready(ctx); err != nil {
		return model.Profile{}, err
	}
	p, err := scanner.ScanProfile(s.queryRow(ctx,
		`SELECT `+scanner.ProfileColumns+` FROM profiles WHERE id = ?`, userID))
	if err != nil {
		return model.Profile{}, notFound(err, "get profile")
	}
	return *p, nil
}

func (s *Store) UpdateProfileDetails(ctx context.Context, userID, displayName, avatarURL string) error {
	if err := s.ready(ctx); err != nil {
		return err
	}
	return s.execAffecting(ctx, "update profile",
		`UPDATE profiles SET display_name = ?, avatar_url = ?, updated_at = ? WHERE id = ?`,
		displayName, avatarURL, utils.TimeToMillis(time.Now()), userID,
	)
}

func (s *Store) UpdateProfileXP(ctx context.Context, userID string, state store.XPState) error {
	if err := s.ready(ctx); err != nil {
		return err
	}
	return s.execAffecting(ctx, "update profile xp",
		`UPDATE profiles SET level = ?, current_xp = ?, total_xp = ?, updated_at = ? WHERE id = ?`,
		state.Level, state.CurrentXP, state.TotalXP, utils.TimeToMillis(time.Now()), userID,
	)
}

// ListProfilesByTotalXP breaks ties by creation order.
func (s *Store) ListProfilesByTotalXP(ctx context.Context, limit int) ([]model.Profile, error) {
	if err := s.ready(ctx); err != nil {
		return nil, err
	}
	if limit <= 0 {
		return nil, fmt.Errorf("limit must be greater than zero")
	}
	rows, err := s.query(ctx,
		`SELECT `+scanner.ProfileColumns+` FROM profiles ORDER BY total_xp DESC, created_at ASC, id ASC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	defer rows.Close()

	profiles := []model.Profile{}
	for rows.Next() {
		p, err := scanner.ScanProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("scan profile: %w", err)
		}
		profiles = append(profiles, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate profiles: %w", err)
	}
	return profiles, nil
}
