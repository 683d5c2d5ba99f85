package model

// Skill names. Every account gets one row per name at setup.
const (
	SkillFocus        = "Focus"
	SkillHealth       = "Health"
	SkillFitness      = "Fitness"
	SkillMind         = "Mind"
	SkillCreativity   = "Creativity"
	SkillSocial       = "Social"
	SkillProductivity = "Productivity"
)

// SkillNames lists the fixed skill set in display order.
var SkillNames = []string{
	SkillFocus,
	SkillHealth,
	SkillFitness,
	SkillMind,
	SkillCreativity,
	SkillSocial,
	SkillProductivity,
}

// IsSkillName reports whether name belongs to the fixed skill set.
func IsSkillName(name string) bool {
	for _, s := range SkillNames {
		if s == name {
			return true
		}
	}
	return false
}

type Skill struct {
	ID          string `json:"id"`
	UserID      string `json:"userId"`
	Name        string `json:"name"`
	Level       int    `json:"level"`
	CurrentXP   int    `json:"currentXp"`
	NextLevelXP int    `json:"nextLevelXp,omitempty"`
}
