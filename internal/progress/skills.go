package progress

import (
	"context"
	"errors"
	"strings"

	"github.com/SaiAmirthesh/Looped-sub000/internal/logger"
	model "github.com/SaiAmirthesh/Looped-sub000/internal/models"
	"github.com/SaiAmirthesh/Looped-sub000/internal/store"
	"github.com/SaiAmirthesh/Looped-sub000/internal/xp"
)

// AddSkillXP awards amount to the user's named skill.
func (s *Service) AddSkillXP(ctx context.Context, userID, skillName string, amount int) Result {
	return s.skillResult(ctx, "add skill xp", userID, skillName, amount)
}

// SubtractSkillXP removes amount from the user's named skill.
func (s *Service) SubtractSkillXP(ctx context.Context, userID, skillName string, amount int) Result {
	return s.skillResult(ctx, "subtract skill xp", userID, skillName, -amount)
}

func (s *Service) skillResult(ctx context.Context, op, userID, skillName string, delta int) Result {
	before, after, err := s.applySkillXP(ctx, userID, skillName, delta)
	if err != nil {
		return s.fail(op, err)
	}
	if after == nil {
		return Result{Success: true}
	}
	return Result{
		Success:     true,
		XPAwarded:   delta,
		LevelBefore: before.Level,
		LevelAfter:  after.Level,
		LevelUp:     after.Level > before.Level,
		Skill:       after,
	}
}

// applySkillXP runs the ledger over one skill and writes it back. A blank
// name or a missing skill is logged and skipped: after is nil, err is nil.
func (s *Service) applySkillXP(ctx context.Context, userID, skillName string, delta int) (before model.Skill, after *model.Skill, err error) {
	skillName = strings.TrimSpace(skillName)
	if skillName == "" {
		logger.Warning("[progress] no skill to update for user %s", userID)
		return model.Skill{}, nil, nil
	}

	skill, err := s.store.GetSkillByName(ctx, userID, skillName)
	if errors.Is(err, store.ErrNotFound) {
		logger.Warning("[progress] skill %q not found for user %s", skillName, userID)
		return model.Skill{}, nil, nil
	}
	if err != nil {
		return model.Skill{}, nil, err
	}

	next := xp.Apply(xp.Progress{Level: skill.Level, CurrentXP: skill.CurrentXP}, delta)
	if err := s.store.UpdateSkillXP(ctx, skill.ID, next.Level, next.CurrentXP); err != nil {
		return model.Skill{}, nil, err
	}

	updated := skill
	updated.Level = next.Level
	updated.CurrentXP = next.CurrentXP
	updated.NextLevelXP = next.NextLevelXP()
	return skill, &updated, nil
}
