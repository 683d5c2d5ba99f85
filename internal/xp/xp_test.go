package xp

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelThreshold(t *testing.T) {
	cases := map[int]int{
		1:  100,
		2:  282,
		3:  519,
		4:  800,
		5:  1118,
		9:  2700,
		16: 6400,
	}
	for level, want := range cases {
		assert.Equal(t, want, LevelThreshold(level), "level %d", level)
	}
	assert.Equal(t, 100, LevelThreshold(0))
}

func TestLevelThresholdMatchesFormulaAndGrows(t *testing.T) {
	prev := 0
	for level := 1; level <= 500; level++ {
		got := LevelThreshold(level)
		want := int(math.Floor(100 * math.Pow(float64(level), 1.5)))
		// Pow may land a hair under a perfect cube; allow that single unit.
		assert.InDelta(t, want, got, 1, "level %d", level)
		require.Greater(t, got, prev, "threshold must grow at level %d", level)
		prev = got
	}
}

func TestApplyLevelUp(t *testing.T) {
	// 95 + 10 crosses the level-1 threshold of 100.
	got := Apply(Progress{Level: 1, CurrentXP: 95}, 10)
	assert.Equal(t, Progress{Level: 2, CurrentXP: 5}, got)
	assert.Equal(t, 282, got.NextLevelXP())
	assert.Equal(t, 105, Total(95, 10))
}

func TestApplyLevelDown(t *testing.T) {
	// Taking the 10 back returns to level 1 with the threshold restored.
	got := Apply(Progress{Level: 2, CurrentXP: 5}, -10)
	assert.Equal(t, Progress{Level: 1, CurrentXP: 95}, got)
	assert.Equal(t, 95, Total(105, -10))
}

func TestApplyMultipleLevels(t *testing.T) {
	// 100 + 282 + 519 = 901 gets from level 1 to level 4.
	got := Apply(Progress{Level: 1, CurrentXP: 0}, 901+7)
	assert.Equal(t, Progress{Level: 4, CurrentXP: 7}, got)

	back := Apply(got, -(901 + 7))
	assert.Equal(t, Progress{Level: 1, CurrentXP: 0}, back)
}

func TestApplyFloorsAtLevelOne(t *testing.T) {
	got := Apply(Progress{Level: 2, CurrentXP: 5}, -10_000)
	assert.Equal(t, Progress{Level: 1, CurrentXP: 0}, got)

	got = Apply(Progress{Level: 1, CurrentXP: 3}, -10)
	assert.Equal(t, Progress{Level: 1, CurrentXP: 0}, got)
	assert.Equal(t, 0, Total(3, -10))
}

func TestApplyZeroIsIdentity(t *testing.T) {
	p := Progress{Level: 3, CurrentXP: 120}
	assert.Equal(t, p, Apply(p, 0))
	assert.Equal(t, 777, Total(777, 0))
}

func TestApplyNormalisesBadLevel(t *testing.T) {
	got := Apply(Progress{Level: 0, CurrentXP: 0}, 0)
	assert.Equal(t, 1, got.Level)
}

func TestApplyPreservesInvariant(t *testing.T) {
	deltas := []int{-5000, -1000, -283, -100, -10, -1, 0, 1, 10, 99, 100, 281, 1000, 5000}
	for level := 1; level <= 12; level++ {
		threshold := LevelThreshold(level)
		for _, current := range []int{0, 1, threshold / 2, threshold - 1} {
			for _, d := range deltas {
				got := Apply(Progress{Level: level, CurrentXP: current}, d)
				require.GreaterOrEqual(t, got.Level, 1)
				require.GreaterOrEqual(t, got.CurrentXP, 0)
				require.Less(t, got.CurrentXP, LevelThreshold(got.Level),
					"level=%d current=%d delta=%d -> %+v", level, current, d, got)
			}
		}
	}
}

func TestApplyRoundTrip(t *testing.T) {
	for level := 1; level <= 10; level++ {
		threshold := LevelThreshold(level)
		for _, current := range []int{0, threshold / 3, threshold - 1} {
			start := Progress{Level: level, CurrentXP: current}
			for _, d := range []int{1, 10, 250, 3000} {
				up := Apply(start, d)
				assert.Equal(t, start, Apply(up, -d), "start=%+v d=%d", start, d)
			}
		}
	}
}

func TestTotalZeroSumSequence(t *testing.T) {
	total := 40
	for _, d := range []int{10, 25, -5, -30} {
		total = Total(total, d)
	}
	assert.Equal(t, 40, total)
}

func TestApplySaturatesHugeDeltas(t *testing.T) {
	up := Apply(Progress{Level: 1, CurrentXP: 50}, math.MaxInt)
	assert.Greater(t, up.Level, 1)
	assert.GreaterOrEqual(t, up.CurrentXP, 0)
	assert.Less(t, up.CurrentXP, up.NextLevelXP())

	down := Apply(Progress{Level: 3, CurrentXP: 10}, math.MinInt)
	assert.Equal(t, Progress{Level: 1, CurrentXP: 0}, down)
}

func TestTotalSaturatesHugeDeltas(t *testing.T) {
	assert.Equal(t, math.MaxInt, Total(50, math.MaxInt))
	assert.Equal(t, math.MaxInt, Total(math.MaxInt, 1))
	assert.Equal(t, 0, Total(50, math.MinInt))
}

func TestFraction(t *testing.T) {
	assert.Equal(t, 0.0, Progress{Level: 1}.Fraction())
	assert.InDelta(t, 0.5, Progress{Level: 1, CurrentXP: 50}.Fraction(), 1e-9)
}

func TestFocusXP(t *testing.T) {
	// A 25-minute session is worth 15, scaled linearly and rounded.
	assert.Equal(t, 15, FocusXP(25))
	assert.Equal(t, 30, FocusXP(50))
	assert.Equal(t, 3, FocusXP(5))
	assert.Equal(t, 9, FocusXP(15))
	assert.Equal(t, 0, FocusXP(0))
}
