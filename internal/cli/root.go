// Package cli implements the themekit command line.
package cli

import (
	"os"
	"strings"

	"github.com/opencode-ai/themekit/internal/config"
	"github.com/opencode-ai/themekit/internal/logging"
	"github.com/spf13/cobra"
)

var (
	cfgFile        string
	jsonOutput     bool
	logLevel       string
	storageFlag    string
	keyFlag        string
	projectDir     string
	nonInteractive bool

	appConfig *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "themekit",
	Short: "Manage and apply CSS custom-property themes",
	Long: `themekit keeps a registry of named themes (maps of CSS custom properties,
optionally referencing other themes), applies one to the style root, and
remembers the applied theme name.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		if storageFlag != "" {
			cfg.Persistence.Storage = storageFlag
		}
		if keyFlag != "" {
			cfg.Persistence.Key = keyFlag
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		level := cfg.Logging.Level
		if logLevel != "" {
			level = logLevel
		}
		logging.Init(logging.Config{
			Level:  level,
			Format: cfg.Logging.Format,
			Output: cmd.ErrOrStderr(),
		})

		appConfig = cfg
		return nil
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default ~/.config/themekit/config.yaml)")
	flags.BoolVar(&jsonOutput, "json", false, "output JSON")
	flags.StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	flags.StringVar(&storageFlag, "storage", "", "persistence backend (local, session, keyring, none)")
	flags.StringVar(&keyFlag, "key", "", "persistence key for the applied theme name")
	flags.StringVar(&projectDir, "project", "", "project directory searched for .themekit/themes (default current directory)")
	flags.BoolVar(&nonInteractive, "non-interactive", false, "never prompt; fail instead")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// GetConfig returns the configuration loaded for the running command.
func GetConfig() *config.Config {
	return appConfig
}

// IsJSONOutput reports whether --json was requested.
func IsJSONOutput() bool {
	return jsonOutput
}

func resolveProjectDir() string {
	if strings.TrimSpace(projectDir) != "" {
		return projectDir
	}
	if wd, err := os.Getwd(); err == nil {
		return wd
	}
	return ""
}
