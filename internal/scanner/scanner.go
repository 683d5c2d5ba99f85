package scanner

import (
	"database/sql"

	model "github.com/SaiAmirthesh/Looped-sub000/internal/models"
	"github.com/SaiAmirthesh/Looped-sub000/internal/utils"
)

// Row is satisfied by *sql.Row and *sql.Rows.
type Row interface {
	Scan(dest ...interface{}) error
}

// ProfileColumns matches ScanProfile.
const ProfileColumns = `id, display_name, avatar_url, level, current_xp, total_xp, created_at, updated_at`

// ScanProfile scans a SQL row into a Profile
func ScanProfile(row Row) (*model.Profile, error) {
	var p model.Profile
	var createdAt, updatedAt int64
	if err := row.Scan(
		&p.ID, &p.DisplayName, &p.AvatarURL, &p.Level, &p.CurrentXP, &p.TotalXP,
		&createdAt, &updatedAt,
	); err != nil {
		return nil, err
	}
	p.CreatedAt = utils.MillisToTime(createdAt)
	p.UpdatedAt = utils.MillisToTime(updatedAt)
	return &p, nil
}

// SkillColumns matches ScanSkill.
const SkillColumns = `id, user_id, name, level, current_xp`

// ScanSkill scans a SQL row into a Skill
func ScanSkill(row Row) (*model.Skill, error) {
	var s model.Skill
	if err := row.Scan(&s.ID, &s.UserID, &s.Name, &s.Level, &s.CurrentXP); err != nil {
		return nil, err
	}
	return &s, nil
}

// HabitColumns matches ScanHabit, prefixed for joins.
const HabitColumns = `h.id, h.user_id, h.name, h.category, h.skill, h.streak, h.longest_streak, h.last_completed, h.created_at`

// ScanHabit scans a SQL row into a Habit. extra receives any trailing columns.
func ScanHabit(row Row, extra ...interface{}) (*model.Habit, error) {
	var h model.Habit
	var lastCompleted sql.NullString
	var createdAt int64
	dest := []interface{}{
		&h.ID, &h.UserID, &h.Name, &h.Category, &h.Skill,
		&h.Streak, &h.LongestStreak, &lastCompleted, &createdAt,
	}
	if err := row.Scan(append(dest, extra...)...); err != nil {
		return nil, err
	}
	h.LastCompleted = utils.NullStringToPointer(lastCompleted)
	h.CreatedAt = utils.MillisToTime(createdAt)
	return &h, nil
}

// CompletionColumns matches ScanCompletion.
const CompletionColumns = `id, habit_id, user_id, completed_date, xp_earned, created_at`

// ScanCompletion scans a SQL row into a HabitCompletion
func ScanCompletion(row Row) (*model.HabitCompletion, error) {
	var c model.HabitCompletion
	var createdAt int64
	if err := row.Scan(&c.ID, &c.HabitID, &c.UserID, &c.CompletedDate, &c.XPEarned, &createdAt); err != nil {
		return nil, err
	}
	c.CreatedAt = utils.MillisToTime(createdAt)
	return &c, nil
}

// QuestColumns matches ScanQuest.
const QuestColumns = `id, user_id, title, description, difficulty, skill, xp_reward, completed, completed_at, created_at`

// ScanQuest scans a SQL row into a Quest
func ScanQuest(row Row) (*model.Quest, error) {
	var q model.Quest
	var difficulty string
	var completedAt sql.NullInt64
	var createdAt int64
	if err := row.Scan(
		&q.ID, &q.UserID, &q.Title, &q.Description, &difficulty, &q.Skill,
		&q.XPReward, &q.Completed, &completedAt, &createdAt,
	); err != nil {
		return nil, err
	}
	q.Difficulty = model.Difficulty(difficulty)
	q.CompletedAt = utils.NullMillisToPointer(completedAt)
	q.CreatedAt = utils.MillisToTime(createdAt)
	return &q, nil
}

// FocusSessionColumns matches ScanFocusSession.
const FocusSessionColumns = `id, user_id, duration_minutes, session_type, completed, xp_earned, created_at`

// ScanFocusSession scans a SQL row into a FocusSession
func ScanFocusSession(row Row) (*model.FocusSession, error) {
	var s model.FocusSession
	var sessionType string
	var createdAt int64
	if err := row.Scan(
		&s.ID, &s.UserID, &s.DurationMinutes, &sessionType, &s.Completed, &s.XPEarned, &createdAt,
	); err != nil {
		return nil, err
	}
	s.SessionType = model.SessionType(sessionType)
	s.CreatedAt = utils.MillisToTime(createdAt)
	return &s, nil
}

// ReminderColumns matches ScanReminder.
const ReminderColumns = `id, user_id, title, note, reminder_date, reminder_time, created_at`

// ScanReminder scans a SQL row into a Reminder
func ScanReminder(row Row) (*model.Reminder, error) {
	var r model.Reminder
	var createdAt int64
	if err := row.Scan(
		&r.ID, &r.UserID, &r.Title, &r.Note, &r.ReminderDate, &r.ReminderTime, &createdAt,
	); err != nil {
		return nil, err
	}
	r.CreatedAt = utils.MillisToTime(createdAt)
	return &r, nil
}

// ScanUser scans a SQL row into a User, password hash included
func ScanUser(row Row) (*model.User, error) {
	var u model.User
	var createdAt int64
	if err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &createdAt); err != nil {
		return nil, err
	}
	u.CreatedAt = utils.MillisToTime(createdAt)
	return &u, nil
}
