package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/opencode-ai/themekit/internal/storage"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("XDG_DATA_HOME", "")
	return home
}

func TestLoadDefaultsWithoutFile(t *testing.T) {
	home := isolate(t)

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, storage.KindLocal, cfg.StorageKind())
	require.Equal(t, "themekit.theme", cfg.Persistence.Key)
	require.Equal(t, filepath.Join(home, ".local", "share", "themekit", "themekit.db"), cfg.Database.Path)
	require.Equal(t, "warn", cfg.Logging.Level)
}

func TestLoadFile(t *testing.T) {
	home := isolate(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `themes:
  dir: ~/themes
  default: dark
persistence:
  storage: sessionStorage
  key: current
logging:
  level: debug
  format: json
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "dark", cfg.Themes.Default)
	require.Equal(t, filepath.Join(home, "themes"), cfg.Themes.Dir)
	require.Equal(t, storage.KindSession, cfg.StorageKind())
	require.Equal(t, "current", cfg.Persistence.Key)
	require.Equal(t, "json", cfg.Logging.Format)
}

func TestLoadDefaultConfigDir(t *testing.T) {
	home := isolate(t)
	dir := filepath.Join(home, ".config", "themekit")
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("themes:\n  default: light\n"), 0644))

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "light", cfg.Themes.Default)
}

func TestLoadEnvOverride(t *testing.T) {
	isolate(t)
	t.Setenv("THEMEKIT_PERSISTENCE_STORAGE", "keyring")
	t.Setenv("THEMEKIT_THEMES_DEFAULT", "high-contrast")

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, storage.KindKeyring, cfg.StorageKind())
	require.Equal(t, "high-contrast", cfg.Themes.Default)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	isolate(t)
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	cfg.Persistence.Key = " "
	cfg.Logging.Format = "xml"
	err := cfg.Validate()
	require.Error(t, err)
	require.True(t, strings.Contains(err.Error(), "persistence.key"))
	require.True(t, strings.Contains(err.Error(), "logging.format"))

	cfg = DefaultConfig()
	cfg.Persistence.Storage = "cookies"
	cfg.Persistence.Key = ""
	require.NoError(t, cfg.Validate(), "unknown storage disables persistence")
}
