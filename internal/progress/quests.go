package progress

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"github.com/SaiAmirthesh/Looped-sub000/internal/logger"
	model "github.com/SaiAmirthesh/Looped-sub000/internal/models"
	"github.com/SaiAmirthesh/Looped-sub000/internal/store"
)

// CompleteQuest marks an open quest completed and awards its XPReward to the
// profile. The quest's skill is credited in the background; see Wait.
func (s *Service) CompleteQuest(ctx context.Context, questID, userID string) Result {
	var quest model.Quest
	var profile model.Profile
	var g errgroup.Group
	g.Go(func() error {
		var err error
		quest, err = s.store.GetQuest(ctx, questID, userID)
		return err
	})
	g.Go(func() error {
		var err error
		profile, err = s.store.GetProfile(ctx, userID)
		return err
	})
	if err := g.Wait(); err != nil {
		return s.fail("complete quest", err)
	}
	if quest.Completed {
		return Result{Success: true, AlreadyDone: true}
	}

	// Conditional on completed = false, so concurrent submissions award once.
	err := s.store.MarkQuestCompleted(ctx, questID, userID, s.now())
	if errors.Is(err, store.ErrConflict) {
		return Result{Success: true, AlreadyDone: true}
	}
	if err != nil {
		return s.fail("complete quest", err)
	}

	updated, state := applyToProfile(profile, quest.XPReward)
	if err := s.store.UpdateProfileXP(ctx, userID, state); err != nil {
		return s.fail("complete quest", err)
	}

	s.awardInBackground(ctx, userID, quest.Skill, quest.XPReward, "quest "+quest.ID)

	return awarded(profile, updated, quest.XPReward)
}

// awardInBackground credits a skill without holding up the caller. Failures
// are logged only; the caller's request context may already be gone.
func (s *Service) awardInBackground(ctx context.Context, userID, skillName string, amount int, source string) {
	ctx = context.WithoutCancel(ctx)
	s.background.Add(1)
	go func() {
		defer s.background.Done()
		if _, _, err := s.applySkillXP(ctx, userID, skillName, amount); err != nil {
			logger.Error("[progress] skill award for %s: %v", source, err)
		}
	}()
}
