package commands

import (
	"fmt"
	"io"

	"github.com/MGTheTrain/rsa-keyring/internal/pkg/config"
	"github.com/MGTheTrain/rsa-keyring/internal/pkg/logger"
)

// setupLogger builds the CLI logger on w, normally the root command's stderr.
func setupLogger(w io.Writer) (logger.Logger, error) {
	settings := &config.LoggerSettings{
		LogLevel: config.LogLevelInfo,
		LogType:  config.LogTypeConsole,
	}

	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid logger settings: %w", err)
	}

	return logger.NewStreamLogger(w, settings.LogLevel), nil
}
