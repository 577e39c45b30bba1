// Package config loads the optional econquiz.yaml settings file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds user-tunable settings. Every field has a default, so
// the app runs with no config file at all. Precedence: command-line
// flags, then ECONQUIZ_* environment variables, then the file.
type Config struct {
	// BankDir is an optional directory of extra question-bank files,
	// merged into the embedded bank at startup.
	BankDir string `mapstructure:"bank_dir"`

	// Database overrides the SQLite file path.
	Database string `mapstructure:"database"`
}

// Load reads econquiz.yaml from the working directory or the user
// config directory, then applies environment overrides. A missing file
// is fine; an unreadable one is an error.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("econquiz")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if dir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(dir, "econquiz"))
	}

	v.SetDefault("bank_dir", "")
	v.SetDefault("database", "")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	v.SetEnvPrefix("ECONQUIZ")
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return &cfg, nil
}
