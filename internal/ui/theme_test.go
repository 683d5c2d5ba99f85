package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgressBarWidth(t *testing.T) {
	for _, f := range []float64{-1, 0, 0.5, 1, 3} {
		bar := ProgressBar(f, 10)
		assert.Equal(t, 10, strings.Count(bar, "█")+strings.Count(bar, "░"), "fraction %v", f)
	}
	assert.Equal(t, 5, strings.Count(ProgressBar(0.5, 10), "█"))
	assert.Empty(t, ProgressBar(0.5, 0))
}

func TestRankAndLabels(t *testing.T) {
	assert.Contains(t, Rank(1), "#1")
	assert.Contains(t, Rank(12), "#12")
	assert.Contains(t, LabelValue("Level", 3), "3")
	assert.Contains(t, Heading(IconTrophy, "Leaderboard"), "Leaderboard")
}

func TestPanelFramesContent(t *testing.T) {
	out := Panel.Render("Level: 3")
	assert.Contains(t, out, "Level: 3")
	assert.Contains(t, out, "╭")
	assert.Contains(t, out, "╯")
}
