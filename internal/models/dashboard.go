package model

// DashboardData is the batch the home screen renders from.
type DashboardData struct {
	Profile Profile           `json:"profile"`
	Habits  []HabitWithStatus `json:"habits"`
	Quests  []Quest           `json:"quests"`
	Skills  []Skill           `json:"skills"`
}

// MonthCompletions is the calendar rollup for one month.
type MonthCompletions struct {
	Year      int        `json:"year"`
	Month     int        `json:"month"`
	Dates     []string   `json:"dates"` // distinct YYYY-MM-DD, ascending
	TotalXP   int        `json:"totalXp"`
	Reminders []Reminder `json:"reminders"`
}
