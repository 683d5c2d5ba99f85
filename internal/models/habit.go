package model

import "time"

type Habit struct {
	ID            string    `json:"id"`
	UserID        string    `json:"userId"`
	Name          string    `json:"name"`
	Category      string    `json:"category,omitempty"`
	Skill         string    `json:"skill,omitempty"`
	Streak        int       `json:"streak"`
	LongestStreak int       `json:"longestStreak"`
	LastCompleted *string   `json:"lastCompleted,omitempty"` // YYYY-MM-DD
	CreatedAt     time.Time `json:"createdAt"`
}

// HabitWithStatus is a habit annotated with whether it has a completion for the requested day.
type HabitWithStatus struct {
	Habit
	CompletedToday bool `json:"completedToday"`
}

// HabitCompletion is at most one row per (HabitID, CompletedDate).
type HabitCompletion struct {
	ID            string    `json:"id"`
	HabitID       string    `json:"habitId"`
	UserID        string    `json:"userId"`
	CompletedDate string    `json:"completedDate"` // YYYY-MM-DD
	XPEarned      int       `json:"xpEarned"`
	CreatedAt     time.Time `json:"createdAt"`
}
