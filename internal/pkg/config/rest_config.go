package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. RSA_KEYRING_DATABASE_DSN
const EnvPrefix = "RSA_KEYRING"

// RestConfig is the configuration of the REST server binary
type RestConfig struct {
	Port     string           `mapstructure:"port"`
	Logger   LoggerSettings   `mapstructure:"logger"`
	Database DatabaseSettings `mapstructure:"database"`
	KeyGen   KeyGenSettings   `mapstructure:"keygen"`
}

// Validate checks every nested settings block
func (c *RestConfig) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("port is required")
	}
	if err := c.Logger.Validate(); err != nil {
		return err
	}
	if err := c.Database.Validate(); err != nil {
		return err
	}
	return c.KeyGen.Validate()
}

// InitializeRestConfig reads the YAML file at path, applies environment
// overrides and validates the result.
func InitializeRestConfig(path string) (*RestConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setRestDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg RestConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setRestDefaults(v *viper.Viper) {
	v.SetDefault("port", "8080")
	v.SetDefault("logger.log_level", LogLevelInfo)
	v.SetDefault("logger.log_type", LogTypeConsole)
	v.SetDefault("logger.file_path", DefaultLogFilePath)
	v.SetDefault("logger.max_size", DefaultLogMaxSize)
	v.SetDefault("logger.max_backups", DefaultLogMaxBackups)
	v.SetDefault("logger.max_age", DefaultLogMaxAge)
	v.SetDefault("database.type", SqliteDbType)
	v.SetDefault("database.dsn", "keyring.db")
	v.SetDefault("database.name", "")
	v.SetDefault("keygen.default_key_size", DefaultKeySize)
	v.SetDefault("keygen.prime_rounds", 0)
	v.SetDefault("keygen.max_retries", 0)
}
