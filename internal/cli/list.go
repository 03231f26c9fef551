package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/opencode-ai/themekit/internal/theme"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
}

// ThemeSummary describes one registered theme.
type ThemeSummary struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Source      string   `json:"source"`
	Properties  int      `json:"properties"`
	References  []string `json:"references,omitempty"`
	Active      bool     `json:"active"`
}

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List registered themes",
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := openSession(context.Background())
		if err != nil {
			return err
		}
		defer sess.Close()

		active := sess.activeName()
		summaries := make([]ThemeSummary, 0, sess.registry.Len())
		for _, name := range sess.registry.Names() {
			t, _ := sess.registry.Get(name)
			summary := ThemeSummary{
				Name:       name,
				Properties: len(t.Properties()),
				References: t.References(),
				Active:     name == active,
			}
			if entry, ok := sess.entry(name); ok {
				summary.Description = entry.Description
				summary.Source = entry.Source
			}
			summaries = append(summaries, summary)
		}

		out := cmd.OutOrStdout()
		if IsJSONOutput() {
			return WriteOutput(out, summaries)
		}

		rows := make([][]string, 0, len(summaries))
		for _, s := range summaries {
			rows = append(rows, []string{
				s.Name,
				strconv.Itoa(s.Properties),
				strings.Join(s.References, ","),
				formatYesNo(s.Active),
				s.Source,
			})
		}
		return writeTable(out, []string{"NAME", "PROPS", "REFS", "ACTIVE", "SOURCE"}, rows)
	},
}

var showCmd = &cobra.Command{
	Use:   "show <theme>",
	Short: "Show a theme's declarations",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := openSession(context.Background())
		if err != nil {
			return err
		}
		defer sess.Close()

		name := args[0]
		t, ok := sess.manager.Theme(name)
		if !ok || t == nil {
			return &PreflightError{
				Message:  fmt.Sprintf("theme %q not found", name),
				NextStep: "themekit list",
			}
		}

		out := cmd.OutOrStdout()
		if IsJSONOutput() {
			entries := make([]map[string]string, 0, len(t.Entries))
			for _, e := range t.Entries {
				if e.Kind == theme.ReferenceEntry {
					entries = append(entries, map[string]string{theme.RefKey: e.Ref})
					continue
				}
				entries = append(entries, map[string]string{"name": e.Name, "value": e.Value})
			}
			return WriteOutput(out, map[string]any{"name": name, "entries": entries})
		}

		rows := make([][]string, 0, len(t.Entries))
		for _, e := range t.Entries {
			if e.Kind == theme.ReferenceEntry {
				rows = append(rows, []string{theme.RefKey, e.Ref})
				continue
			}
			rows = append(rows, []string{e.Name, e.Value})
		}
		return writeTable(out, []string{"PROPERTY", "VALUE"}, rows)
	},
}
