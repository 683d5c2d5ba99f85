// Package progress applies the XP ledger to stored profiles, skills, habits,
// quests and focus sessions, and serves the aggregated reads built on them.
//
// Operations never return Go errors. Failures are logged and reported in the
// returned Result so callers can roll back optimistic state.
package progress

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/SaiAmirthesh/Looped-sub000/internal/logger"
	model "github.com/SaiAmirthesh/Looped-sub000/internal/models"
	"github.com/SaiAmirthesh/Looped-sub000/internal/store"
	"github.com/SaiAmirthesh/Looped-sub000/internal/xp"
)

// DayLayout is the format of habit completion and reminder day keys.
const DayLayout = "2006-01-02"

// DefaultLeaderboardLimit applies when GetLeaderboard is called with limit <= 0.
const DefaultLeaderboardLimit = 50

// Result is the outcome of a progress operation.
type Result struct {
	Success     bool   `json:"success"`
	AlreadyDone bool   `json:"alreadyDone,omitempty"`
	Error       string `json:"error,omitempty"`

	XPAwarded   int  `json:"xpAwarded"`
	LevelBefore int  `json:"levelBefore,omitempty"`
	LevelAfter  int  `json:"levelAfter,omitempty"`
	LevelUp     bool `json:"levelUp,omitempty"`

	Profile *model.Profile `json:"profile,omitempty"`
	Skill   *model.Skill   `json:"skill,omitempty"`

	cause error
}

// Err returns the failure behind an unsuccessful Result, or nil.
func (r Result) Err() error { return r.cause }

// Service runs progress operations against a store.
type Service struct {
	store store.Store
	loc   *time.Location
	now   func() time.Time

	// background tracks best-effort side writes that outlive the request.
	background sync.WaitGroup
}

// Option configures a Service.
type Option func(*Service)

// WithLocation sets the time zone used for day keys. Defaults to UTC.
func WithLocation(loc *time.Location) Option {
	return func(s *Service) {
		if loc != nil {
			s.loc = loc
		}
	}
}

// WithClock overrides time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// NewService returns a Service over st, in UTC with the wall clock unless
// opts say otherwise.
func NewService(st store.Store, opts ...Option) *Service {
	s := &Service{
		store: st,
		loc:   time.UTC,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Wait blocks until background skill awards have finished.
func (s *Service) Wait() {
	s.background.Wait()
}

// Today returns the current day key in the service's time zone.
func (s *Service) Today() string {
	return s.now().In(s.loc).Format(DayLayout)
}

func (s *Service) fail(op string, err error) Result {
	logger.Error("[progress] %s: %v", op, err)
	return Result{Error: err.Error(), cause: err}
}

// awarded fills the level fields of a successful Result from a profile transition.
func awarded(before, after model.Profile, delta int) Result {
	after.NextLevelXP = xp.LevelThreshold(after.Level)
	return Result{
		Success:     true,
		XPAwarded:   delta,
		LevelBefore: before.Level,
		LevelAfter:  after.Level,
		LevelUp:     after.Level > before.Level,
		Profile:     &after,
	}
}

// applyToProfile runs the ledger over a profile, total included.
func applyToProfile(p model.Profile, delta int) (model.Profile, store.XPState) {
	next := xp.Apply(xp.Progress{Level: p.Level, CurrentXP: p.CurrentXP}, delta)
	p.Level = next.Level
	p.CurrentXP = next.CurrentXP
	p.TotalXP = xp.Total(p.TotalXP, delta)
	p.NextLevelXP = next.NextLevelXP()
	return p, store.XPState{Level: p.Level, CurrentXP: p.CurrentXP, TotalXP: p.TotalXP}
}

// SetupAccount creates the profile and the full skill set for a new user.
// Rows that already exist are left untouched.
func (s *Service) SetupAccount(ctx context.Context, userID, displayName string) Result {
	now := s.now()
	err := s.store.CreateProfile(ctx, model.Profile{
		ID:          userID,
		DisplayName: displayName,
		Level:       1,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	alreadyDone := errors.Is(err, store.ErrConflict)
	if err != nil && !alreadyDone {
		return s.fail("setup account", err)
	}

	for _, name := range model.SkillNames {
		err := s.store.CreateSkill(ctx, model.Skill{
			ID:     uuid.NewString(),
			UserID: userID,
			Name:   name,
			Level:  1,
		})
		if err != nil && !errors.Is(err, store.ErrConflict) {
			return s.fail("setup skill "+name, err)
		}
	}

	profile, err := s.store.GetProfile(ctx, userID)
	if err != nil {
		return s.fail("setup account", err)
	}
	profile.NextLevelXP = xp.LevelThreshold(profile.Level)
	return Result{
		Success:     true,
		AlreadyDone: alreadyDone,
		LevelBefore: profile.Level,
		LevelAfter:  profile.Level,
		Profile:     &profile,
	}
}
