package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/opencode-ai/themekit/internal/catalog"
	"github.com/opencode-ai/themekit/internal/config"
	"github.com/opencode-ai/themekit/internal/events"
	"github.com/opencode-ai/themekit/internal/theme"
	"github.com/spf13/cobra"
)

var (
	addSets        []string
	addRefs        []string
	addDescription string
)

func init() {
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(removeCmd)

	addCmd.Flags().StringArrayVar(&addSets, "set", nil, "property as name=value (repeatable)")
	addCmd.Flags().StringArrayVar(&addRefs, "ref", nil, "theme to copy properties from (repeatable)")
	addCmd.Flags().StringVar(&addDescription, "description", "", "theme description")
}

var addCmd = &cobra.Command{
	Use:   "add <theme>",
	Short: "Register a new theme",
	Long: `Register a new theme and save it to the user theme directory.

References are declared before properties, so --set values override what a
referenced theme provides.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		name := strings.TrimSpace(args[0])

		t, err := buildTheme(addRefs, addSets)
		if err != nil {
			return err
		}

		sess, err := openSession(ctx)
		if err != nil {
			return err
		}
		defer sess.Close()

		if !sess.manager.Register(name, t) {
			return &PreflightError{
				Message:  fmt.Sprintf("theme %q was not registered", name),
				Hint:     "Theme names must be non-empty and unique",
				NextStep: "themekit list",
			}
		}

		path := filepath.Join(userThemeDir(sess.cfg), themeFileName(name))
		if _, err := os.Stat(path); err == nil {
			return &PreflightError{
				Message: fmt.Sprintf("theme file %s already exists", path),
				Hint:    "Remove or rename the existing file first",
			}
		}
		entry := &catalog.Entry{Name: name, Description: strings.TrimSpace(addDescription), Theme: t}
		if err := catalog.WriteFile(path, entry); err != nil {
			return err
		}
		sess.record(events.LogThemeRegistered(ctx, sess.events, name))

		out := cmd.OutOrStdout()
		if IsJSONOutput() {
			return WriteOutput(out, map[string]string{"theme": name, "source": path})
		}
		fmt.Fprintf(out, "Registered theme %s (%s)\n", name, path)
		return nil
	},
}

var removeCmd = &cobra.Command{
	Use:     "remove <theme>",
	Aliases: []string{"rm"},
	Short:   "Remove a user theme",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		name := args[0]

		sess, err := openSession(ctx)
		if err != nil {
			return err
		}
		defer sess.Close()

		entry, known := sess.entry(name)
		if known {
			if entry.Source == "builtin" {
				return &PreflightError{
					Message: fmt.Sprintf("theme %q is built in and cannot be removed", name),
				}
			}
			if siblings := countSource(sess.entries, entry.Source); siblings > 1 {
				return &PreflightError{
					Message: fmt.Sprintf("theme %q shares %s with %d other themes", name, entry.Source, siblings-1),
					Hint:    "Edit that file to remove the theme",
				}
			}
		}

		removed := sess.manager.Remove(name)
		if removed && known {
			if err := os.Remove(entry.Source); err != nil && !os.IsNotExist(err) {
				return fmt.Errorf("failed to remove theme file: %w", err)
			}
			sess.record(events.LogThemeRemoved(ctx, sess.events, name))
		}

		out := cmd.OutOrStdout()
		if IsJSONOutput() {
			return WriteOutput(out, map[string]any{"theme": name, "removed": removed})
		}
		if removed {
			fmt.Fprintf(out, "Removed theme %s\n", name)
		}
		return nil
	},
}

func buildTheme(refs, sets []string) (*theme.Theme, error) {
	t := &theme.Theme{}
	for _, ref := range refs {
		ref = strings.TrimSpace(ref)
		if ref == "" {
			return nil, fmt.Errorf("--ref requires a theme name")
		}
		t.Ref(ref)
	}
	for _, set := range sets {
		name, value, ok := strings.Cut(set, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid --set %q: expected name=value", set)
		}
		t.Set(name, strings.TrimSpace(value))
	}
	if len(t.Entries) == 0 {
		return nil, &PreflightError{
			Message: "a theme needs at least one --set or --ref",
			Hint:    "themekit add ocean --ref dark --set --bg=#001f3f",
		}
	}
	return t, nil
}

func userThemeDir(cfg *config.Config) string {
	if cfg != nil && cfg.Themes.Dir != "" {
		return cfg.Themes.Dir
	}
	return catalog.UserDir()
}

var unsafeFileChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

func themeFileName(name string) string {
	cleaned := strings.Trim(unsafeFileChars.ReplaceAllString(name, "-"), "-.")
	if cleaned == "" {
		cleaned = "theme"
	}
	return cleaned + ".yaml"
}

func countSource(entries []*catalog.Entry, source string) int {
	count := 0
	for _, entry := range entries {
		if entry.Source == source {
			count++
		}
	}
	return count
}
