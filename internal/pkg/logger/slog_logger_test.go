//go:build unit
// +build unit

package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/MGTheTrain/rsa-keyring/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriterLogger_TextOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := newWriterLogger(&buf, config.LogLevelInfo, false)

	logger.Info("generated ", 512, "-bit key pair")
	logger.Warn("warn message")
	logger.Error("error message")

	output := buf.String()
	assert.Contains(t, output, "generated 512-bit key pair")
	assert.Contains(t, output, "level=WARN")
	assert.Contains(t, output, "level=ERROR")
}

func TestWriterLogger_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	logger := newWriterLogger(&buf, config.LogLevelError, true)

	logger.Info("hidden")
	logger.Error("shown")

	output := buf.String()
	assert.NotContains(t, output, "hidden")
	assert.Contains(t, output, `"msg":"shown"`)
}

func TestWriterLogger_Fatal(t *testing.T) {
	var buf bytes.Buffer
	logger := newWriterLogger(&buf, config.LogLevelInfo, false)

	code := -1
	logger.exit = func(c int) { code = c }

	logger.Fatal("boom")
	assert.Equal(t, 1, code)
	assert.Contains(t, buf.String(), "boom")
}

func TestWriterLogger_Panic(t *testing.T) {
	var buf bytes.Buffer
	logger := newWriterLogger(&buf, config.LogLevelInfo, false)

	assert.PanicsWithValue(t, "bad key", func() {
		logger.Panic("bad ", "key")
	})
}

func TestNewConsoleLogger(t *testing.T) {
	logger := NewConsoleLogger(config.LogLevelInfo)
	require.NotNil(t, logger)

	require.NotPanics(t, func() {
		logger.Info("test")
		logger.Warn("test")
		logger.Error("test")
	})
}

func TestNewStreamLogger(t *testing.T) {
	var stderr bytes.Buffer
	logger := NewStreamLogger(&stderr, config.LogLevelWarning)

	logger.Info("Applied 16-bit RSA key to hex value")
	logger.Warn("key file has no trailing newline")

	output := stderr.String()
	assert.NotContains(t, output, "Applied 16-bit RSA key")
	assert.Contains(t, output, "key file has no trailing newline")
	assert.Contains(t, output, "level=WARN")
}

func TestNewFileLogger(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "keyring.log")

	logger := NewFileLogger(config.LogLevelInfo, logPath, 10, 3, 28)
	require.NotNil(t, logger)

	logger.Info("info message")
	logger.Warn("warn message")

	content, err := os.ReadFile(logPath)
	require.NoError(t, err)

	logOutput := string(content)
	assert.Contains(t, logOutput, "info message")
	assert.Contains(t, logOutput, "warn message")
	assert.Contains(t, logOutput, `"level":"INFO"`)
	assert.Contains(t, logOutput, `"level":"WARN"`)
}
