package model

import "time"

type SessionType string

const (
	SessionFocus      SessionType = "focus"
	SessionShortBreak SessionType = "short-break"
	SessionLongBreak  SessionType = "long-break"
)

func (t SessionType) IsValid() bool {
	switch t {
	case SessionFocus, SessionShortBreak, SessionLongBreak:
		return true
	default:
		return false
	}
}

type FocusSession struct {
	ID              string      `json:"id"`
	UserID          string      `json:"userId"`
	DurationMinutes int         `json:"durationMinutes"`
	SessionType     SessionType `json:"sessionType"`
	Completed       bool        `json:"completed"`
	XPEarned        int         `json:"xpEarned"`
	CreatedAt       time.Time   `json:"createdAt"`
}
