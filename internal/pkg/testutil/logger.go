package testutil

import (
	"strings"
	"testing"

	"github.com/MGTheTrain/rsa-keyring/internal/pkg/config"
	"github.com/MGTheTrain/rsa-keyring/internal/pkg/logger"
	"github.com/stretchr/testify/require"
)

// testLogWriter forwards log records to t.Log so they only show up for failing or verbose runs.
type testLogWriter struct {
	t *testing.T
}

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(strings.TrimRight(string(p), "\n"))
	return len(p), nil
}

// SetupTestLogger returns a debug console logger attached to t, for processors,
// services and repositories under test.
func SetupTestLogger(t *testing.T) logger.Logger {
	t.Helper()

	settings := &config.LoggerSettings{
		LogLevel: config.LogLevelDebug,
		LogType:  config.LogTypeConsole,
	}
	require.NoError(t, settings.Validate())

	return logger.NewStreamLogger(testLogWriter{t: t}, settings.LogLevel)
}
