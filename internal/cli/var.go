package cli

import (
	"context"
	"fmt"

	"github.com/opencode-ai/themekit/internal/events"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(varCmd)
	varCmd.AddCommand(varGetCmd)
	varCmd.AddCommand(varSetCmd)
}

var varCmd = &cobra.Command{
	Use:   "var",
	Short: "Read or write a single custom property on the style root",
	Example: `  themekit var get -- --bg
  themekit var set -- --bg "#101010"`,
}

var varGetCmd = &cobra.Command{
	Use:   "get <name>",
	Short: "Print a custom property value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := openSession(context.Background())
		if err != nil {
			return err
		}
		defer sess.Close()

		name := args[0]
		value, ok := sess.manager.Var(name)
		if !ok {
			return &PreflightError{Message: "property name cannot be empty"}
		}

		out := cmd.OutOrStdout()
		if IsJSONOutput() {
			return WriteOutput(out, map[string]string{"name": name, "value": value})
		}
		fmt.Fprintln(out, value)
		return nil
	},
}

var varSetCmd = &cobra.Command{
	Use:   "set <name> <value>",
	Short: "Set a custom property value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		sess, err := openSession(ctx)
		if err != nil {
			return err
		}
		defer sess.Close()

		name, value := args[0], args[1]
		if !sess.manager.SetVar(name, value) {
			return &PreflightError{
				Message: fmt.Sprintf("property %q was not set", name),
				Hint:    "Both the property name and value must be non-empty",
			}
		}
		if err := sess.save(ctx); err != nil {
			return err
		}
		sess.record(events.LogVarSet(ctx, sess.events, name, value))

		out := cmd.OutOrStdout()
		if IsJSONOutput() {
			return WriteOutput(out, map[string]string{"name": name, "value": value})
		}
		fmt.Fprintf(out, "%s: %s\n", name, value)
		return nil
	},
}
