package root

import (
	"bytes"
	"context"
	"io"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SaiAmirthesh/Looped-sub000/internal/logger"
	model "github.com/SaiAmirthesh/Looped-sub000/internal/models"
	"github.com/SaiAmirthesh/Looped-sub000/internal/progress"
	"github.com/SaiAmirthesh/Looped-sub000/internal/store/sqlstore"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func seed(t *testing.T, path string) {
	t.Helper()
	ctx := context.Background()
	st, err := sqlstore.OpenSQLite(ctx, path)
	require.NoError(t, err)
	defer st.Close()

	svc := progress.NewService(st)
	require.True(t, svc.SetupAccount(ctx, "u1", "Ada").Success)
	require.True(t, svc.SetupAccount(ctx, "u2", "Grace").Success)
	require.NoError(t, st.CreateHabit(ctx, model.Habit{ID: "h1", UserID: "u1", Name: "Read", Skill: model.SkillMind}))
	require.NoError(t, st.CreateQuest(ctx, model.Quest{ID: "q1", UserID: "u1", Title: "Ship v1", Difficulty: model.DifficultyHard, XPReward: 100}))
	require.True(t, svc.CompleteHabit(ctx, "h1", "u1", 0).Success)
	svc.Wait()
}

func TestMigrateLeaderboardDashboard(t *testing.T) {
	logger.SetOutput(io.Discard)
	path := filepath.Join(t.TempDir(), "looped.db")

	out, err := run(t, "--driver", "sqlite", "--dsn", path, "migrate")
	require.NoError(t, err)
	assert.Contains(t, out, "migrations applied (sqlite)")

	out, err = run(t, "--driver", "sqlite", "--dsn", path, "leaderboard")
	require.NoError(t, err)
	assert.Contains(t, out, "No players yet.")

	seed(t, path)

	out, err = run(t, "--driver", "sqlite", "--dsn", path, "leaderboard", "--limit", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Ada")
	assert.NotContains(t, out, "Grace")

	out, err = run(t, "--driver", "sqlite", "--dsn", path, "dashboard", "u1")
	require.NoError(t, err)
	assert.Contains(t, out, "Ada")
	assert.Contains(t, out, "╭", "profile header is framed")
	assert.Contains(t, out, "Total XP")
	assert.Contains(t, out, "Read")
	assert.Contains(t, out, "Ship v1")
	assert.Contains(t, out, model.SkillMind)

	_, err = run(t, "--driver", "sqlite", "--dsn", path, "dashboard", "nobody")
	assert.Error(t, err)
}

func TestCalendarCommand(t *testing.T) {
	logger.SetOutput(io.Discard)
	path := filepath.Join(t.TempDir(), "looped.db")
	seed(t, path)

	now := time.Now().UTC()
	out, err := run(t, "--driver", "sqlite", "--dsn", path, "calendar", "u1",
		now.Format("2006"), now.Format("1"))
	require.NoError(t, err)
	assert.Contains(t, out, now.Format("2006-01-02"))
	assert.Contains(t, out, "10")

	_, err = run(t, "--driver", "sqlite", "--dsn", path, "calendar", "u1", "2024", "13")
	assert.Error(t, err)
}

func TestRejectsUnknownDriver(t *testing.T) {
	_, err := run(t, "--driver", "oracle", "migrate")
	assert.Error(t, err)
}
