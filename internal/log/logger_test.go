package log

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// capture redirects the package logger into a buffer for one test.
func capture(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := logger.Out
	logger.SetOutput(&buf)
	t.Cleanup(func() { logger.SetOutput(prev) })
	return &buf
}

func TestBasicLogging(t *testing.T) {
	buf := capture(t)

	// Test basic logging methods
	Info("info message")
	assert.Contains(t, buf.String(), "level=info")
	assert.Contains(t, buf.String(), "info message")
	buf.Reset()

	Warnf("warn %s", "message")
	assert.Contains(t, buf.String(), "level=warning")
	assert.Contains(t, buf.String(), "warn message")
	buf.Reset()

	Errorf("error %s", "message")
	assert.Contains(t, buf.String(), "level=error")
	assert.Contains(t, buf.String(), "error message")
	buf.Reset()

	// The argument forms append the arguments after the message
	Error("load failed", "boom")
	assert.Contains(t, buf.String(), "load failed: boom")
	buf.Reset()

	Warn("offset clamped", 42)
	assert.Contains(t, buf.String(), "offset clamped: 42")
	buf.Reset()
}

func TestDebugLogging(t *testing.T) {
	buf := capture(t)

	// Test with debug off
	SetDebug(false)
	Debugf("debug message")
	assert.Empty(t, buf.String())
	buf.Reset()

	// Test with debug on
	SetDebug(true)
	Debugf("debug message")
	assert.Contains(t, buf.String(), "level=debug")
	assert.Contains(t, buf.String(), "debug message")
	buf.Reset()

	Debug("collection changed", 3)
	assert.Contains(t, buf.String(), "collection changed: 3")
	buf.Reset()

	// Reset debug for other tests
	SetDebug(false)
}

func TestStructuredLogging(t *testing.T) {
	buf := capture(t)

	WithFields(map[string]interface{}{
		"count":  3,
		"status": "hovering",
	}).Info("tracking")

	output := buf.String()
	assert.Contains(t, output, "tracking")
	assert.Contains(t, output, "count=3")
	assert.Contains(t, output, "status=hovering")
}

func TestToFile(t *testing.T) {
	prev := logger.Out
	t.Cleanup(func() { logger.SetOutput(prev) })

	// The parent directory does not exist yet
	path := filepath.Join(t.TempDir(), "logs", "dragd.log")
	require.NoError(t, ToFile(path))

	Info("file test message")

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "file test message")
}

func TestQuiet(t *testing.T) {
	buf := capture(t)

	Quiet()
	Info("silenced")
	assert.Empty(t, buf.String())
}
