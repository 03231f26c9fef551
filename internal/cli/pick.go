package cli

import (
	"context"
	"fmt"

	"github.com/opencode-ai/themekit/internal/tui"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(pickCmd)
}

var pickCmd = &cobra.Command{
	Use:   "pick",
	Short: "Choose and apply a theme interactively",
	RunE: func(cmd *cobra.Command, args []string) error {
		if IsNonInteractive() {
			return &PreflightError{
				Message:  "pick requires an interactive terminal",
				Hint:     "Apply a theme by name instead",
				NextStep: "themekit apply <theme>",
			}
		}

		ctx := context.Background()
		sess, err := openSession(ctx)
		if err != nil {
			return err
		}
		defer sess.Close()

		if sess.registry.Len() == 0 {
			return &PreflightError{Message: "no themes registered", NextStep: "themekit add <theme>"}
		}

		name, ok, err := tui.RunPicker(sess.registry, sess.activeName())
		if err != nil {
			return fmt.Errorf("theme picker failed: %w", err)
		}
		if !ok {
			return nil
		}
		return applyTheme(ctx, cmd, sess, name)
	},
}
