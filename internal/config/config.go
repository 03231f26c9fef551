// Package config loads themekit configuration with viper.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/opencode-ai/themekit/internal/storage"
)

// Config is the full themekit configuration.
type Config struct {
	Themes      ThemesConfig      `mapstructure:"themes"`
	Persistence PersistenceConfig `mapstructure:"persistence"`
	Database    DatabaseConfig    `mapstructure:"database"`
	Logging     LoggingConfig     `mapstructure:"logging"`
	Keyring     KeyringConfig     `mapstructure:"keyring"`
}

// ThemesConfig controls where themes come from.
type ThemesConfig struct {
	// Dir is an extra theme directory searched before the defaults.
	Dir string `mapstructure:"dir"`
	// Default is applied when no theme name has been persisted.
	Default string `mapstructure:"default"`
}

// PersistenceConfig selects where the applied theme name is remembered.
type PersistenceConfig struct {
	Storage string `mapstructure:"storage"`
	Key     string `mapstructure:"key"`
}

// DatabaseConfig locates the SQLite database.
type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

// LoggingConfig controls diagnostics output.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// KeyringConfig configures the keyring backend.
type KeyringConfig struct {
	Service string `mapstructure:"service"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Persistence: PersistenceConfig{
			Storage: string(storage.KindLocal),
			Key:     "themekit.theme",
		},
		Database: DatabaseConfig{
			Path: filepath.Join(DefaultDataDir(), "themekit.db"),
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "console",
		},
		Keyring: KeyringConfig{
			Service: storage.DefaultKeyringService,
		},
	}
}

// StorageKind returns the parsed persistence backend.
func (c *Config) StorageKind() storage.Kind {
	return storage.ParseKind(c.Persistence.Storage)
}

// Validate checks the configuration for values that cannot work.
func (c *Config) Validate() error {
	var problems []string
	if c.StorageKind() != storage.KindNone && strings.TrimSpace(c.Persistence.Key) == "" {
		problems = append(problems, "persistence.key is required when persistence.storage is set")
	}
	if strings.TrimSpace(c.Database.Path) == "" {
		problems = append(problems, "database.path is required")
	}
	switch strings.ToLower(c.Logging.Format) {
	case "", "console", "json":
	default:
		problems = append(problems, fmt.Sprintf("logging.format must be console or json, got %q", c.Logging.Format))
	}
	if c.StorageKind() == storage.KindKeyring && strings.TrimSpace(c.Keyring.Service) == "" {
		problems = append(problems, "keyring.service is required for keyring storage")
	}
	if len(problems) > 0 {
		return fmt.Errorf("invalid config: %s", strings.Join(problems, "; "))
	}
	return nil
}

// DefaultConfigDir returns ~/.config/themekit.
func DefaultConfigDir() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "themekit")
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return filepath.Join(".", ".themekit")
	}
	return filepath.Join(home, ".config", "themekit")
}

// DefaultDataDir returns ~/.local/share/themekit.
func DefaultDataDir() string {
	if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
		return filepath.Join(dir, "themekit")
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return filepath.Join(".", ".themekit")
	}
	return filepath.Join(home, ".local", "share", "themekit")
}
