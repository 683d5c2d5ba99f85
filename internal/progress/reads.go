package progress

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	model "github.com/SaiAmirthesh/Looped-sub000/internal/models"
	"github.com/SaiAmirthesh/Looped-sub000/internal/xp"
)

// GetDashboardData loads the profile, today's habits, open quests and skills in one batch.
func (s *Service) GetDashboardData(ctx context.Context, userID string) (model.DashboardData, Result) {
	var data model.DashboardData
	today := s.Today()

	var g errgroup.Group
	g.Go(func() error {
		p, err := s.store.GetProfile(ctx, userID)
		if err != nil {
			return fmt.Errorf("profile: %w", err)
		}
		p.NextLevelXP = xp.LevelThreshold(p.Level)
		data.Profile = p
		return nil
	})
	g.Go(func() error {
		habits, err := s.store.ListHabitsWithStatus(ctx, userID, today)
		if err != nil {
			return fmt.Errorf("habits: %w", err)
		}
		data.Habits = habits
		return nil
	})
	g.Go(func() error {
		quests, err := s.store.ListOpenQuests(ctx, userID)
		if err != nil {
			return fmt.Errorf("quests: %w", err)
		}
		data.Quests = quests
		return nil
	})
	g.Go(func() error {
		skills, err := s.store.ListSkills(ctx, userID)
		if err != nil {
			return fmt.Errorf("skills: %w", err)
		}
		for i := range skills {
			skills[i].NextLevelXP = xp.LevelThreshold(skills[i].Level)
		}
		data.Skills = skills
		return nil
	})
	if err := g.Wait(); err != nil {
		return model.DashboardData{}, s.fail("get dashboard", err)
	}
	return data, Result{Success: true, Profile: &data.Profile}
}

// GetMonthCompletions rolls up a calendar month: distinct completion days,
// the XP they earned, and the month's reminders.
func (s *Service) GetMonthCompletions(ctx context.Context, userID string, year, month int) (model.MonthCompletions, Result) {
	if month < 1 || month > 12 {
		return model.MonthCompletions{}, s.fail("get month completions", fmt.Errorf("invalid month %d", month))
	}
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	from := first.Format(DayLayout)
	to := first.AddDate(0, 1, -1).Format(DayLayout)

	var completions []model.HabitCompletion
	var reminders []model.Reminder
	var g errgroup.Group
	g.Go(func() error {
		var err error
		completions, err = s.store.ListCompletionsBetween(ctx, userID, from, to)
		return err
	})
	g.Go(func() error {
		var err error
		reminders, err = s.store.ListRemindersBetween(ctx, userID, from, to)
		return err
	})
	if err := g.Wait(); err != nil {
		return model.MonthCompletions{}, s.fail("get month completions", err)
	}

	out := model.MonthCompletions{
		Year:      year,
		Month:     month,
		Dates:     []string{},
		Reminders: reminders,
	}
	// Completions arrive ordered by date.
	for _, c := range completions {
		if n := len(out.Dates); n == 0 || out.Dates[n-1] != c.CompletedDate {
			out.Dates = append(out.Dates, c.CompletedDate)
		}
		out.TotalXP += c.XPEarned
	}
	return out, Result{Success: true}
}

// GetLeaderboard ranks profiles by lifetime XP. Rank is the 1-based position.
func (s *Service) GetLeaderboard(ctx context.Context, limit int) ([]model.LeaderboardEntry, Result) {
	if limit <= 0 {
		limit = DefaultLeaderboardLimit
	}
	profiles, err := s.store.ListProfilesByTotalXP(ctx, limit)
	if err != nil {
		return nil, s.fail("get leaderboard", err)
	}

	entries := make([]model.LeaderboardEntry, 0, len(profiles))
	for i, p := range profiles {
		entries = append(entries, model.LeaderboardEntry{
			Rank:        i + 1,
			UserID:      p.ID,
			DisplayName: p.DisplayName,
			AvatarURL:   p.AvatarURL,
			Level:       p.Level,
			TotalXP:     p.TotalXP,
		})
	}
	return entries, Result{Success: true}
}
