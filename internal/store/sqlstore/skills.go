package sqlstore

import (
	"context"
	"fmt"

	model "github.com/SaiAmirthesh/Looped-sub000/internal/models"
	"github.com/SaiAmirthesh/Looped-sub000/internal/scanner"
)

func (s *Store) CreateSkill(ctx context.Context, sk model.Skill) error {
	if err := s.ready(ctx); err != nil {
		return err
	}
	if err := required("skill id", sk.ID); err != nil {
		return err
	}
	if err := required("skill name", sk.Name); err != nil {
		return err
	}
	if sk.Level < 1 {
		sk.Level = 1
	}
	return s.insert(ctx, "create skill",
		`INSERT INTO skills (`+scanner.SkillColumns+`) VALUES (?, ?, ?, ?, ?)`,
		sk.ID, sk.UserID, sk.Name, sk.Level, sk.CurrentXP,
	)
}

func (s *Store) GetSkillByName(ctx context.Context, userID, name string) (model.Skill, error) {
	if err := s.ready(ctx); err != nil {
		return model.Skill{}, err
	}
	sk, err := scanner.ScanSkill(s.queryRow(ctx,
		`SELECT `+scanner.SkillColumns+` FROM skills WHERE user_id = ? AND name = ?`, userID, name))
	if err != nil {
		return model.Skill{}, notFound(err, "get skill")
	}
	return *sk, nil
}

func (s *Store) ListSkills(ctx context.Context, userID string) ([]model.Skill, error) {
	if err := s.ready(ctx); err != nil {
		return nil, err
	}
	rows, err := s.query(ctx,
		`SELECT `+scanner.SkillColumns+` FROM skills WHERE user_id = ? ORDER BY name`, userID)
	if err != nil {
		return nil, fmt.Errorf("list skills: %w", err)
	}
	defer rows.Close()

	skills := []model.Skill{}
	for rows.Next() {
		sk, err := scanner.ScanSkill(rows)
		if err != nil {
			return nil, fmt.Errorf("scan skill: %w", err)
		}
		skills = append(skills, *sk)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate skills: %w", err)
	}
	return skills, nil
}

func (s *Store) UpdateSkillXP(ctx context.Context, skillID string, level, currentXP int) error {
	if err := s.ready(ctx); err != nil {
		return err
	}
	return s.execAffecting(ctx, "update skill xp",
		`UPDATE skills SET level = ?, current_xp = ? WHERE id = ?`, level, currentXP, skillID)
}
