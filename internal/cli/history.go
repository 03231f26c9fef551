package cli

import (
	"context"
	"time"

	"github.com/opencode-ai/themekit/internal/db"
	"github.com/opencode-ai/themekit/internal/models"
	"github.com/spf13/cobra"
)

var (
	historyLimit int
	historyType  string
	historySince time.Duration
)

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "maximum number of events")
	historyCmd.Flags().StringVar(&historyType, "type", "", "only show events of this type (theme.applied, theme.registered, theme.removed, var.set)")
	historyCmd.Flags().DurationVar(&historySince, "since", 0, "only show events newer than this duration (e.g. 24h)")
}

var historyCmd = &cobra.Command{
	Use:   "history [name]",
	Short: "Show recent theme and property changes",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		sess, err := openSession(ctx)
		if err != nil {
			return err
		}
		defer sess.Close()

		query := db.EventQuery{Limit: historyLimit}
		if historyType != "" {
			eventType := models.EventType(historyType)
			query.Type = &eventType
		}
		if len(args) == 1 {
			query.EntityID = &args[0]
		}
		if historySince > 0 {
			since := time.Now().UTC().Add(-historySince)
			query.Since = &since
		}

		found, err := sess.events.Query(ctx, query)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if IsJSONOutput() {
			return WriteOutput(out, found)
		}

		rows := make([][]string, 0, len(found))
		for _, event := range found {
			rows = append(rows, []string{
				event.Timestamp.Local().Format(time.DateTime),
				string(event.Type),
				event.EntityID,
				string(event.Payload),
			})
		}
		return writeTable(out, []string{"TIME", "TYPE", "NAME", "DETAILS"}, rows)
	},
}
