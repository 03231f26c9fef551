package cli

import (
	"context"
	"fmt"

	"github.com/opencode-ai/themekit/internal/logging"
	"github.com/opencode-ai/themekit/internal/models"
	"github.com/opencode-ai/themekit/internal/style"
	"github.com/opencode-ai/themekit/internal/theme"
	"github.com/opencode-ai/themekit/internal/tui/styles"
	"github.com/spf13/cobra"
)

var (
	exportFormat string
	exportTheme  string
)

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "css", "output format (css, json, swatch)")
	exportCmd.Flags().StringVarP(&exportTheme, "theme", "t", "", "render this theme instead of the current style root")
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Render the style root as CSS, JSON, or terminal swatches",
	Long: `Render the current style root. With --theme, the named theme is resolved on a
scratch root so the current root and the remembered theme are left untouched.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := openSession(context.Background())
		if err != nil {
			return err
		}
		defer sess.Close()

		props := sess.root.Snapshot()
		if exportTheme != "" {
			props, err = resolveTheme(sess.registry, exportTheme)
			if err != nil {
				return err
			}
		}
		return renderProperties(cmd, exportFormat, props)
	},
}

// resolveTheme applies name to a scratch root without persistence.
func resolveTheme(registry *theme.Registry, name string) ([]models.Property, error) {
	scratch := style.NewRoot()
	manager := theme.NewManager(scratch,
		theme.WithLogger(logging.Component("theme")),
		theme.WithRegistry(registry),
	)
	if !manager.Apply(name) {
		return nil, &PreflightError{
			Message:  fmt.Sprintf("theme %q could not be resolved", name),
			NextStep: "themekit list",
		}
	}
	return scratch.Snapshot(), nil
}

func renderProperties(cmd *cobra.Command, format string, props []models.Property) error {
	out := cmd.OutOrStdout()
	switch format {
	case "css":
		return style.RenderCSS(out, props)
	case "json":
		rendered, err := style.RenderJSON(props)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, rendered)
		return err
	case "swatch", "swatches":
		s := styles.BuildStyles(styles.TokensFromProperties(props))
		_, err := fmt.Fprintln(out, styles.Swatches(s, props))
		return err
	default:
		return &PreflightError{
			Message: fmt.Sprintf("unknown export format %q", format),
			Hint:    "Use css, json, or swatch",
		}
	}
}
