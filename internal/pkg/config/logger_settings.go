package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/hashicorp/go-multierror"
)

// Log level constants. "critical" is logged at error level.
const (
	LogLevelInfo     = "info"
	LogLevelDebug    = "debug"
	LogLevelError    = "error"
	LogLevelWarning  = "warning"
	LogLevelCritical = "critical"
)

// Log type constants
const (
	LogTypeConsole = "console"
	LogTypeFile    = "file"
)

// Rotation defaults applied by InitializeRestConfig when the REST server logs to a file
const (
	DefaultLogFilePath   = "logs/rsa-keyring-rest-api.log"
	DefaultLogMaxSize    = 10
	DefaultLogMaxBackups = 3
	DefaultLogMaxAge     = 28
)

// LoggerSettings configures the key ring logger. The CLI always logs to the console;
// the REST server reads these from the logger block of its config file.
type LoggerSettings struct {
	LogLevel   string `mapstructure:"log_level" validate:"required,oneof=info debug error warning critical"`
	LogType    string `mapstructure:"log_type" validate:"required,oneof=console file"`
	FilePath   string `mapstructure:"file_path"`
	MaxSize    int    `mapstructure:"max_size"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAge     int    `mapstructure:"max_age"`
}

// IsFile reports whether records go to a rotated log file.
func (s *LoggerSettings) IsFile() bool {
	return s.LogType == LogTypeFile
}

// Validate checks that all fields in LoggerSettings are valid. Rotation problems of a
// file logger are reported together.
func (s *LoggerSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for LoggerSettings: %w", err)
	}

	if !s.IsFile() {
		return nil
	}

	var result *multierror.Error
	if s.FilePath == "" {
		result = multierror.Append(result, fmt.Errorf("file path is required for file logger"))
	}
	if s.MaxSize < 1 || s.MaxSize > 100 {
		result = multierror.Append(result, fmt.Errorf("max size must be between 1 and 100 MB"))
	}
	if s.MaxBackups < 1 || s.MaxBackups > 10 {
		result = multierror.Append(result, fmt.Errorf("max backups must be between 1 and 10"))
	}
	if s.MaxAge < 1 || s.MaxAge > 365 {
		result = multierror.Append(result, fmt.Errorf("max age must be between 1 and 365 days"))
	}
	return result.ErrorOrNil()
}
