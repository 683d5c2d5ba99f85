package model

import "time"

// Reminder is a calendar annotation. It never awards XP.
type Reminder struct {
	ID           string    `json:"id"`
	UserID       string    `json:"userId"`
	Title        string    `json:"title"`
	Note         string    `json:"note,omitempty"`
	ReminderDate string    `json:"reminderDate"`           // YYYY-MM-DD
	ReminderTime string    `json:"reminderTime,omitempty"` // HH:MM
	CreatedAt    time.Time `json:"createdAt"`
}
