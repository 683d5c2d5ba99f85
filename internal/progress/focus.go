package progress

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	model "github.com/SaiAmirthesh/Looped-sub000/internal/models"
	"github.com/SaiAmirthesh/Looped-sub000/internal/store"
	"github.com/SaiAmirthesh/Looped-sub000/internal/xp"
)

// CompleteFocusSession closes an open session of durationMinutes (xp.FocusBaseMinutes
// when <= 0) and awards xp.FocusXP to the profile and the Focus skill.
func (s *Service) CompleteFocusSession(ctx context.Context, sessionID, userID string, durationMinutes int) Result {
	if durationMinutes <= 0 {
		durationMinutes = xp.FocusBaseMinutes
	}
	earned := xp.FocusXP(durationMinutes)

	err := s.store.MarkFocusSessionCompleted(ctx, sessionID, userID, durationMinutes, earned)
	if errors.Is(err, store.ErrConflict) {
		return Result{Success: true, AlreadyDone: true}
	}
	if err != nil {
		return s.fail("complete focus session", err)
	}

	profile, err := s.store.GetProfile(ctx, userID)
	if err != nil {
		return s.fail("complete focus session", err)
	}
	updated, state := applyToProfile(profile, earned)

	var skill *model.Skill
	var g errgroup.Group
	g.Go(func() error {
		return s.store.UpdateProfileXP(ctx, userID, state)
	})
	g.Go(func() error {
		_, after, err := s.applySkillXP(ctx, userID, model.SkillFocus, earned)
		skill = after
		return err
	})
	if err := g.Wait(); err != nil {
		return s.fail("complete focus session", err)
	}

	res := awarded(profile, updated, earned)
	res.Skill = skill
	return res
}
