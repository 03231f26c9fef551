package cli

import (
	"context"
	"fmt"

	"github.com/opencode-ai/themekit/internal/events"
	"github.com/opencode-ai/themekit/internal/models"
	"github.com/opencode-ai/themekit/internal/style"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(applyCmd)
	rootCmd.AddCommand(currentCmd)
}

var applyCmd = &cobra.Command{
	Use:   "apply <theme>",
	Short: "Apply a theme to the style root",
	Long:  "Apply a registered theme, resolving references, and remember its name in the configured store.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		sess, err := openSession(ctx)
		if err != nil {
			return err
		}
		defer sess.Close()

		return applyTheme(ctx, cmd, sess, args[0])
	},
}

// ApplyResult is the payload printed by `themekit apply`.
type ApplyResult struct {
	Theme      string            `json:"theme"`
	Storage    string            `json:"storage"`
	Properties []models.Property `json:"properties"`
}

func applyTheme(ctx context.Context, cmd *cobra.Command, sess *session, name string) error {
	if !sess.manager.Apply(name) {
		return &PreflightError{
			Message:  fmt.Sprintf("theme %q was not applied", name),
			Hint:     "Run `themekit list` to see registered themes",
			NextStep: "themekit list",
		}
	}
	if err := sess.save(ctx); err != nil {
		return err
	}

	props := sess.root.Snapshot()
	sess.record(events.LogThemeApplied(ctx, sess.events, name, models.ThemeAppliedPayload{
		Storage:    sess.cfg.StorageKind().String(),
		Key:        sess.cfg.Persistence.Key,
		Properties: len(props),
	}))

	out := cmd.OutOrStdout()
	if IsJSONOutput() {
		return WriteOutput(out, ApplyResult{
			Theme:      name,
			Storage:    sess.cfg.StorageKind().String(),
			Properties: props,
		})
	}
	fmt.Fprintf(out, "Applied theme %s\n", name)
	return style.RenderCSS(out, props)
}

var currentCmd = &cobra.Command{
	Use:   "current",
	Short: "Print the remembered theme name",
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := openSession(context.Background())
		if err != nil {
			return err
		}
		defer sess.Close()

		name, ok := sess.manager.Persisted()
		out := cmd.OutOrStdout()
		if IsJSONOutput() {
			return WriteOutput(out, map[string]any{
				"theme":     name,
				"persisted": ok,
				"storage":   sess.cfg.StorageKind().String(),
			})
		}
		if !ok {
			fmt.Fprintf(out, "No theme remembered (storage: %s)\n", sess.cfg.StorageKind())
			return nil
		}
		fmt.Fprintln(out, name)
		return nil
	},
}
