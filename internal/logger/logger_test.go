package logger

import (
	"bytes"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func capture(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() { SetOutput(&bytes.Buffer{}) })
	return &buf
}

func TestLevelsWriteMessage(t *testing.T) {
	buf := capture(t)

	Info("habit %s", "h1")
	Success("done")
	Warning("skill %q not found", "Focus")
	Error("boom: %v", assert.AnError)

	out := buf.String()
	assert.Contains(t, out, "habit h1")
	assert.Contains(t, out, "✓ done")
	assert.Contains(t, out, `⚠ skill "Focus" not found`)
	assert.Contains(t, out, "✗ boom")
}

func TestDebugCanBeDisabled(t *testing.T) {
	buf := capture(t)
	SetDebug(false)
	t.Cleanup(func() { SetDebug(true) })

	Debug("hidden")
	assert.Empty(t, buf.String())
}

func TestRequestLine(t *testing.T) {
	buf := capture(t)

	Request(http.MethodPost, "/habits/h1/complete", http.StatusOK, 1500*time.Microsecond)
	out := buf.String()
	assert.Contains(t, out, "POST")
	assert.Contains(t, out, "/habits/h1/complete")
	assert.Contains(t, out, "[200]")
	assert.Contains(t, out, "(1ms)")
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "250µs", formatDuration(250*time.Microsecond))
	assert.Equal(t, "42ms", formatDuration(42*time.Millisecond))
	assert.Equal(t, "1.50s", formatDuration(1500*time.Millisecond))
}
