package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/opencode-ai/themekit/internal/config"
	"github.com/opencode-ai/themekit/internal/db"
	"github.com/spf13/cobra"
)

var initForce bool

// configDirFunc is swapped out in tests.
var configDirFunc = config.DefaultConfigDir

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().BoolVar(&initForce, "force", false, "overwrite an existing config file")
}

type initResult struct {
	name    string
	status  string // done, skipped, failed
	message string
}

const configTemplate = `# themekit Configuration File
#
# Every key can be overridden with a THEMEKIT_ environment variable,
# e.g. THEMEKIT_PERSISTENCE_STORAGE=session.

themes:
  # Extra directory searched first for .yaml/.yml/.json theme files.
  dir: ""
  # Applied when no theme name has been remembered yet.
  default: ""

persistence:
  # local, session, keyring, or none.
  storage: local
  key: themekit.theme

database:
  # Defaults to $XDG_DATA_HOME/themekit/themekit.db.
  # path: ~/.local/share/themekit/themekit.db

logging:
  level: warn
  format: console

keyring:
  service: themekit
`

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the config file, theme directory, and database",
	RunE: func(cmd *cobra.Command, args []string) error {
		results := []initResult{
			createConfigFile(),
			createThemesDir(),
			initDatabase(cmd.Context()),
		}

		out := cmd.OutOrStdout()
		if IsJSONOutput() {
			payload := make([]map[string]string, 0, len(results))
			for _, r := range results {
				payload = append(payload, map[string]string{"step": r.name, "status": r.status, "message": r.message})
			}
			return WriteOutput(out, payload)
		}

		failed := false
		for _, r := range results {
			fmt.Fprintf(out, "%-8s %s: %s\n", "["+r.status+"]", r.name, r.message)
			if r.status == "failed" {
				failed = true
			}
		}
		if failed {
			return fmt.Errorf("init did not complete")
		}
		return nil
	},
}

func createConfigFile() initResult {
	result := initResult{name: "Config file"}
	dir := configDirFunc()
	path := filepath.Join(dir, "config.yaml")

	if _, err := os.Stat(path); err == nil && !initForce {
		result.status = "skipped"
		result.message = fmt.Sprintf("%s already exists (use --force to overwrite)", path)
		return result
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		result.status = "failed"
		result.message = err.Error()
		return result
	}
	if err := os.WriteFile(path, []byte(configTemplate), 0o644); err != nil {
		result.status = "failed"
		result.message = err.Error()
		return result
	}

	result.status = "done"
	result.message = path
	return result
}

func createThemesDir() initResult {
	result := initResult{name: "Themes directory"}
	dir := filepath.Join(configDirFunc(), "themes")
	if cfg := GetConfig(); cfg != nil && cfg.Themes.Dir != "" {
		dir = cfg.Themes.Dir
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		result.status = "failed"
		result.message = err.Error()
		return result
	}
	result.status = "done"
	result.message = dir
	return result
}

func initDatabase(ctx context.Context) initResult {
	result := initResult{name: "Database"}
	if ctx == nil {
		ctx = context.Background()
	}

	cfg := GetConfig()
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	database, err := db.Open(cfg.Database.Path)
	if err != nil {
		result.status = "failed"
		result.message = err.Error()
		return result
	}
	defer database.Close()

	applied, err := database.MigrateUp(ctx)
	if err != nil {
		result.status = "failed"
		result.message = err.Error()
		return result
	}

	result.status = "done"
	result.message = fmt.Sprintf("%s (%d migrations applied)", database.Path(), applied)
	if applied == 0 {
		result.status = "skipped"
		result.message = fmt.Sprintf("%s is up to date", database.Path())
	}
	return result
}
