package progress

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/SaiAmirthesh/Looped-sub000/internal/logger"
	model "github.com/SaiAmirthesh/Looped-sub000/internal/models"
	"github.com/SaiAmirthesh/Looped-sub000/internal/store"
	"github.com/SaiAmirthesh/Looped-sub000/internal/xp"
)

// CompleteHabit records today's completion of a habit and awards xpEarned
// (xp.HabitXP when xpEarned <= 0) to the profile and the habit's skill.
//
// The completion insert is the only guard against double awards: a second
// call on the same day reports AlreadyDone and writes nothing.
func (s *Service) CompleteHabit(ctx context.Context, habitID, userID string, xpEarned int) Result {
	if xpEarned <= 0 {
		xpEarned = xp.HabitXP
	}
	today := s.Today()

	err := s.store.InsertHabitCompletion(ctx, model.HabitCompletion{
		ID:            uuid.NewString(),
		HabitID:       habitID,
		UserID:        userID,
		CompletedDate: today,
		XPEarned:      xpEarned,
		CreatedAt:     s.now(),
	})
	if errors.Is(err, store.ErrConflict) {
		return Result{Success: true, AlreadyDone: true}
	}
	if err != nil {
		return s.fail("complete habit", err)
	}

	profile, habit, err := s.readProfileAndHabit(ctx, userID, habitID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// The habit is not the caller's; drop the row we just wrote.
			if _, derr := s.store.DeleteHabitCompletion(ctx, habitID, userID, today); derr != nil {
				logger.Error("[progress] drop completion for habit %s: %v", habitID, derr)
			}
		}
		return s.fail("complete habit", err)
	}

	updated, state := applyToProfile(profile, xpEarned)
	streak := habit.Streak + 1
	longest := max(habit.LongestStreak, streak)

	var skill *model.Skill
	var g errgroup.Group
	g.Go(func() error {
		return s.store.UpdateProfileXP(ctx, userID, state)
	})
	g.Go(func() error {
		return s.store.UpdateHabitStreak(ctx, habit.ID, streak, longest, &today)
	})
	g.Go(func() error {
		_, after, err := s.applySkillXP(ctx, userID, habit.Skill, xpEarned)
		skill = after
		return err
	})
	if err := g.Wait(); err != nil {
		return s.fail("complete habit", err)
	}

	logger.Debug("[progress] habit %s completed by %s (+%d XP, streak %d)", habitID, userID, xpEarned, streak)
	res := awarded(profile, updated, xpEarned)
	res.Skill = skill
	return res
}

// UncompleteHabit removes today's completion and takes xp.HabitXP back from
// the profile and the habit's skill. Without a completion today it reports
// AlreadyDone and changes nothing.
func (s *Service) UncompleteHabit(ctx context.Context, habitID, userID string) Result {
	removed, err := s.store.DeleteHabitCompletion(ctx, habitID, userID, s.Today())
	if err != nil {
		return s.fail("uncomplete habit", err)
	}
	if !removed {
		return Result{Success: true, AlreadyDone: true}
	}

	profile, habit, err := s.readProfileAndHabit(ctx, userID, habitID)
	if err != nil {
		return s.fail("uncomplete habit", err)
	}

	delta := -xp.HabitXP
	updated, state := applyToProfile(profile, delta)
	streak := max(habit.Streak-1, 0)

	var skill *model.Skill
	var g errgroup.Group
	g.Go(func() error {
		return s.store.UpdateProfileXP(ctx, userID, state)
	})
	g.Go(func() error {
		return s.store.UpdateHabitStreak(ctx, habit.ID, streak, habit.LongestStreak, habit.LastCompleted)
	})
	g.Go(func() error {
		_, after, err := s.applySkillXP(ctx, userID, habit.Skill, delta)
		skill = after
		return err
	})
	if err := g.Wait(); err != nil {
		return s.fail("uncomplete habit", err)
	}

	res := awarded(profile, updated, delta)
	res.Skill = skill
	return res
}

func (s *Service) readProfileAndHabit(ctx context.Context, userID, habitID string) (model.Profile, model.Habit, error) {
	var profile model.Profile
	var habit model.Habit
	var g errgroup.Group
	g.Go(func() error {
		var err error
		profile, err = s.store.GetProfile(ctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		habit, err = s.store.GetHabit(ctx, habitID, userID)
		return err
	})
	if err := g.Wait(); err != nil {
		return model.Profile{}, model.Habit{}, err
	}
	return profile, habit, nil
}
