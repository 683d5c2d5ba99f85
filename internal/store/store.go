// Package store defines the persistence contract the progress core runs against.
package store

import (
	"context"
	"errors"
	"time"

	model "github.com/SaiAmirthesh/Looped-sub000/internal/models"
)

var (
	// ErrNotFound indicates a requested record is missing or not owned by the user.
	ErrNotFound = errors.New("record not found")
	// ErrConflict indicates a uniqueness or state guard rejected the write.
	ErrConflict = errors.New("record already exists")
)

// XPState is the XP-bearing part of a profile written back after a Ledger pass.
type XPState struct {
	Level     int
	CurrentXP int
	TotalXP   int
}

// ProfileStore persists profiles.
type ProfileStore interface {
	CreateProfile(ctx context.Context, p model.Profile) error
	GetProfile(ctx context.Context, userID string) (model.Profile, error)
	UpdateProfileDetails(ctx context.Context, userID, displayName, avatarURL string) error
	UpdateProfileXP(ctx context.Context, userID string, state XPState) error
	// ListProfilesByTotalXP returns profiles ordered by total XP descending.
	ListProfilesByTotalXP(ctx context.Context, limit int) ([]model.Profile, error)
}

// SkillStore persists per-user skill trackers.
type SkillStore interface {
	CreateSkill(ctx context.Context, s model.Skill) error
	GetSkillByName(ctx context.Context, userID, name string) (model.Skill, error)
	ListSkills(ctx context.Context, userID string) ([]model.Skill, error)
	UpdateSkillXP(ctx context.Context, skillID string, level, currentXP int) error
}

// HabitStore persists habits and their daily completions.
type HabitStore interface {
	CreateHabit(ctx context.Context, h model.Habit) error
	GetHabit(ctx context.Context, habitID, userID string) (model.Habit, error)
	// ListHabitsWithStatus flags each habit with whether it has a completion on date.
	ListHabitsWithStatus(ctx context.Context, userID, date string) ([]model.HabitWithStatus, error)
	UpdateHabitStreak(ctx context.Context, habitID string, streak, longest int, lastCompleted *string) error
	DeleteHabit(ctx context.Context, habitID, userID string) error

	// InsertHabitCompletion inserts c only if no row exists for
	// (HabitID, CompletedDate); otherwise it returns ErrConflict.
	InsertHabitCompletion(ctx context.Context, c model.HabitCompletion) error
	// DeleteHabitCompletion reports whether a row was removed.
	DeleteHabitCompletion(ctx context.Context, habitID, userID, date string) (bool, error)
	// ListCompletionsBetween returns completions with from <= date <= to.
	ListCompletionsBetween(ctx context.Context, userID, from, to string) ([]model.HabitCompletion, error)
}

// QuestStore persists quests.
type QuestStore interface {
	CreateQuest(ctx context.Context, q model.Quest) error
	GetQuest(ctx context.Context, questID, userID string) (model.Quest, error)
	ListOpenQuests(ctx context.Context, userID string) ([]model.Quest, error)
	// MarkQuestCompleted flips an open quest to completed, or returns
	// ErrConflict if it is already completed.
	MarkQuestCompleted(ctx context.Context, questID, userID string, at time.Time) error
	DeleteQuest(ctx context.Context, questID, userID string) error
}

// FocusStore persists focus sessions.
type FocusStore interface {
	CreateFocusSession(ctx context.Context, s model.FocusSession) error
	GetFocusSession(ctx context.Context, sessionID, userID string) (model.FocusSession, error)
	// MarkFocusSessionCompleted records the outcome of an open session, or
	// returns ErrConflict if it is already completed.
	MarkFocusSessionCompleted(ctx context.Context, sessionID, userID string, durationMinutes, xpEarned int) error
}

// ReminderStore persists calendar reminders.
type ReminderStore interface {
	CreateReminder(ctx context.Context, r model.Reminder) error
	ListRemindersBetween(ctx context.Context, userID, from, to string) ([]model.Reminder, error)
	DeleteReminder(ctx context.Context, reminderID, userID string) error
}

// AuthStore persists accounts and login sessions.
type AuthStore interface {
	CreateUser(ctx context.Context, u model.User) error
	GetUserByEmail(ctx context.Context, email string) (model.User, error)
	CreateSession(ctx context.Context, s model.Session) error
	// GetSessionUserID resolves a token that has not expired at now.
	GetSessionUserID(ctx context.Context, token string, now time.Time) (string, error)
	DeleteSession(ctx context.Context, token string) error
}

// Store is the full contract.
type Store interface {
	ProfileStore
	SkillStore
	HabitStore
	QuestStore
	FocusStore
	ReminderStore
	AuthStore
	Close() error
}
