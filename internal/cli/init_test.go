package cli

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/opencode-ai/themekit/internal/config"
)

func withConfigDir(t *testing.T, dir string) {
	t.Helper()
	originalFunc := configDirFunc
	configDirFunc = func() string {
		return dir
	}
	t.Cleanup(func() {
		configDirFunc = originalFunc
	})
}

func withForce(t *testing.T, force bool) {
	t.Helper()
	originalForce := initForce
	initForce = force
	t.Cleanup(func() {
		initForce = originalForce
	})
}

func TestCreateConfigFile(t *testing.T) {
	tempDir := t.TempDir()
	withConfigDir(t, tempDir)
	withForce(t, true)

	result := createConfigFile()

	if result.status != "done" {
		t.Errorf("expected status 'done', got %q: %s", result.status, result.message)
	}

	configPath := filepath.Join(tempDir, "config.yaml")
	content, err := os.ReadFile(configPath)
	if err != nil {
		t.Fatalf("failed to read config file: %v", err)
	}
	if !strings.Contains(string(content), "themekit Configuration File") {
		t.Error("config file doesn't contain expected header")
	}
	if !strings.Contains(string(content), "storage: local") {
		t.Error("config file doesn't contain expected default")
	}
}

func TestCreateConfigFile_ExistingNoForce(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("existing"), 0644); err != nil {
		t.Fatalf("failed to create existing config: %v", err)
	}
	withConfigDir(t, tempDir)
	withForce(t, false)

	result := createConfigFile()

	if result.status != "skipped" {
		t.Errorf("expected status 'skipped', got %q: %s", result.status, result.message)
	}

	content, _ := os.ReadFile(configPath)
	if string(content) != "existing" {
		t.Error("existing config was modified")
	}
}

func TestConfigTemplateLoads(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("XDG_DATA_HOME", filepath.Join(tempDir, "data"))
	path := filepath.Join(tempDir, "config.yaml")
	if err := os.WriteFile(path, []byte(configTemplate), 0644); err != nil {
		t.Fatalf("write template: %v", err)
	}

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("template should load: %v", err)
	}
	if cfg.Persistence.Key != "themekit.theme" {
		t.Errorf("unexpected persistence key %q", cfg.Persistence.Key)
	}
	if cfg.Database.Path != filepath.Join(tempDir, "data", "themekit", "themekit.db") {
		t.Errorf("expected default database path, got %q", cfg.Database.Path)
	}

	for _, section := range []string{"themes:", "persistence:", "database:", "logging:", "keyring:"} {
		if !strings.Contains(configTemplate, section) {
			t.Errorf("config template missing section: %s", section)
		}
	}
}

func TestInitDatabaseIsRepeatable(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", t.TempDir())
	originalConfig := appConfig
	appConfig = nil
	t.Cleanup(func() { appConfig = originalConfig })

	first := initDatabase(context.Background())
	if first.status != "done" {
		t.Fatalf("expected status 'done', got %q: %s", first.status, first.message)
	}

	second := initDatabase(context.Background())
	if second.status != "skipped" {
		t.Fatalf("expected status 'skipped', got %q: %s", second.status, second.message)
	}
}

func TestInitCommand(t *testing.T) {
	env := newTestEnv(t)

	out := env.mustRun(t, "init")
	if !strings.Contains(out, "[done]") {
		t.Fatalf("unexpected init output: %s", out)
	}
	if _, err := os.Stat(filepath.Join(env.config, "themekit", "config.yaml")); err != nil {
		t.Fatalf("config file not created: %v", err)
	}
	if _, err := os.Stat(env.userThemes()); err != nil {
		t.Fatalf("themes dir not created: %v", err)
	}

	out = env.mustRun(t, "init")
	if !strings.Contains(out, "[skipped]") {
		t.Fatalf("expected second init to skip, got: %s", out)
	}
}
