// Package xp holds the pure leveling rules shared by profiles and skills.
package xp

import "math"

const (
	// ThresholdCoef scales the curve: threshold(level) = floor(100 * level^1.5).
	ThresholdCoef = 100.0

	// HabitXP is the default award for completing a habit, and the amount
	// reverted when a completion is undone.
	HabitXP = 10

	// FocusBaseMinutes and FocusBaseXP define focus-session XP: a
	// FocusBaseMinutes session is worth FocusBaseXP, scaled linearly.
	FocusBaseMinutes = 25
	FocusBaseXP      = 15

	// MaxAward caps a single client-supplied award (habit xpEarned, quest
	// xpReward).
	MaxAward = 10_000

	// MaxFocusMinutes caps a single focus session.
	MaxFocusMinutes = 24 * 60
)

// LevelThreshold returns the XP needed to advance from level to level+1.
// Levels below 1 are treated as 1.
func LevelThreshold(level int) int {
	if level < 1 {
		level = 1
	}
	l := float64(level)
	// l*sqrt(l) is exact for perfect squares, where Pow may drift below the integer.
	return int(math.Floor(ThresholdCoef * l * math.Sqrt(l)))
}

// Progress is the part of a profile or skill that moves with XP.
type Progress struct {
	Level     int
	CurrentXP int
}

// NextLevelXP is the threshold of the current level.
func (p Progress) NextLevelXP() int {
	return LevelThreshold(p.Level)
}

// Fraction returns how far CurrentXP is toward the next level, in [0, 1).
func (p Progress) Fraction() float64 {
	next := p.NextLevelXP()
	if next <= 0 || p.CurrentXP <= 0 {
		return 0
	}
	f := float64(p.CurrentXP) / float64(next)
	if f > 1 {
		return 1
	}
	return f
}

// Apply adds a signed delta to p, carrying level-ups and level-downs.
//
// Negative deltas never take the level below 1 or CurrentXP below 0; any
// excess is discarded rather than carried as debt.
func Apply(p Progress, delta int) Progress {
	if p.Level < 1 {
		p.Level = 1
	}
	if p.CurrentXP < 0 {
		p.CurrentXP = 0
	}
	value := addSaturating(p.CurrentXP, delta)

	if delta <= 0 {
		for value < 0 && p.Level > 1 {
			p.Level--
			value += LevelThreshold(p.Level)
		}
		if value < 0 {
			value = 0
		}
	}

	for value >= LevelThreshold(p.Level) {
		value -= LevelThreshold(p.Level)
		p.Level++
	}

	p.CurrentXP = value
	return p
}

// Total applies delta to a lifetime total, floored at 0.
func Total(total, delta int) int {
	if total < 0 {
		total = 0
	}
	total = addSaturating(total, delta)
	if total < 0 {
		return 0
	}
	return total
}

// addSaturating returns base+delta for base >= 0, pinned at math.MaxInt.
func addSaturating(base, delta int) int {
	if delta > 0 && base > math.MaxInt-delta {
		return math.MaxInt
	}
	return base + delta
}

// FocusXP is the award for a focus session of the given length, rounded to
// the nearest integer.
func FocusXP(durationMinutes int) int {
	if durationMinutes <= 0 {
		return 0
	}
	return int(math.Round(float64(durationMinutes) / FocusBaseMinutes * FocusBaseXP))
}
