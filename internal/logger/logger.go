package logger

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/fatih/color"
)

var (
	mu  sync.Mutex
	out io.Writer = color.Output

	gray   = color.New(color.FgHiBlack)
	blue   = color.New(color.FgBlue)
	green  = color.New(color.FgGreen)
	yellow = color.New(color.FgYellow)
	red    = color.New(color.FgRed)
	cyan   = color.New(color.FgCyan)
	purple = color.New(color.FgMagenta)
	white  = color.New(color.FgWhite)

	debugEnabled = true
)

// SetOutput redirects log output.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	out = w
}

// SetDebug toggles Debug messages.
func SetDebug(enabled bool) {
	mu.Lock()
	defer mu.Unlock()
	debugEnabled = enabled
}

func write(c *color.Color, prefix, message string, args ...interface{}) {
	mu.Lock()
	defer mu.Unlock()
	timestamp := time.Now().Format("15:04:05")
	fmt.Fprintf(out, "%s %s\n", gray.Sprintf("[%s]", timestamp), c.Sprint(prefix+fmt.Sprintf(message, args...)))
}

// Info logs general information (blue)
func Info(message string, args ...interface{}) {
	write(blue, "", message, args...)
}

// Success logs a success (green)
func Success(message string, args ...interface{}) {
	write(green, "✓ ", message, args...)
}

// Warning logs a warning (yellow)
func Warning(message string, args ...interface{}) {
	write(yellow, "⚠ ", message, args...)
}

// Error logs an error (red)
func Error(message string, args ...interface{}) {
	write(red, "✗ ", message, args...)
}

// Debug logs a debug message (gray)
func Debug(message string, args ...interface{}) {
	mu.Lock()
	enabled := debugEnabled
	mu.Unlock()
	if !enabled {
		return
	}
	write(gray, "DEBUG: ", message, args...)
}

// Request logs an HTTP request with its duration
func Request(method, path string, statusCode int, duration time.Duration) {
	var status *color.Color
	switch {
	case statusCode >= 200 && statusCode < 300:
		status = green
	case statusCode >= 300 && statusCode < 400:
		status = cyan
	case statusCode >= 400 && statusCode < 500:
		status = yellow
	default:
		status = red
	}

	mu.Lock()
	defer mu.Unlock()
	timestamp := time.Now().Format("15:04:05")
	fmt.Fprintf(out, "%s %s %s %s %s\n",
		gray.Sprintf("[%s]", timestamp),
		purple.Sprintf("%-6s", method),
		white.Sprintf("%-50s", path),
		status.Sprintf("[%d]", statusCode),
		gray.Sprintf("(%s)", formatDuration(duration)),
	)
}

func formatDuration(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return fmt.Sprintf("%dµs", d.Microseconds())
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	default:
		return fmt.Sprintf("%.2fs", d.Seconds())
	}
}
