package config

import (
	"fmt"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"

	"github.com/tatianab/nightreign-notebook/internal/i18n"
)

// Config holds the application configuration.
type Config struct {
	SettingsDir string `env:"NOTEBOOK_SETTINGS_DIR" envDefault:".notebook"`
	// DataDir overrides the embedded fixtures when set.
	DataDir  string `env:"NOTEBOOK_DATA_DIR"`
	Locale   string `env:"NOTEBOOK_LOCALE" envDefault:"zh-TW"`
	LogLevel string `env:"NOTEBOOK_LOG_LEVEL" envDefault:"info"`
	LogFile  string `env:"NOTEBOOK_LOG_FILE" envDefault:"notebook.log"`
}

// LoadConfig loads the configuration from environment variables.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if !i18n.Supported(c.Locale) {
		return fmt.Errorf("NOTEBOOK_LOCALE %q is not supported (want one of %v)", c.Locale, i18n.Locales)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("NOTEBOOK_LOG_LEVEL: %w", err)
	}
	return nil
}

// Level returns the parsed log level.
func (c *Config) Level() zerolog.Level {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}

// LogPath resolves LogFile against the settings dir.
func (c *Config) LogPath() string {
	if filepath.IsAbs(c.LogFile) {
		return c.LogFile
	}
	return filepath.Join(c.SettingsDir, c.LogFile)
}
