package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func syncCmd() *cobra.Command {
	syncRoot := &cobra.Command{
		Use:   "sync",
		Short: "Trigger order syncs and view their history",
		Long: "A sync lists orders in the configured statuses, stores their details,\n" +
			"and notifies about new ready orders. The server also runs syncs on a\n" +
			"schedule; each run is recorded.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := newClient().Sync(cmd.Context())
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(res)
			}
			fmt.Printf("Sync %s: %d seen, %d stored, %d skipped, %d failed, %d notified in %s.\n",
				res.RunID, res.Seen, res.Stored, res.Skipped, res.Failed, res.Notified, res.Duration)
			return nil
		},
	}

	syncRoot.AddCommand(syncRunsCmd())

	return syncRoot
}

func syncRunsCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "runs",
		Short: "List recent sync runs",
		Example: `  jetctl sync runs
  jetctl sync runs --limit 50 --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			runs, err := newClient().ListSyncRuns(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(runs)
			}
			if len(runs) == 0 {
				fmt.Println("No sync runs found.")
				return nil
			}
			return printSyncRunsTable(runs)
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 20, "number of runs to show")

	return cmd
}

func quotaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "quota",
		Short: "Show merchant API usage for the current window",
		RunE: func(cmd *cobra.Command, _ []string) error {
			q, err := newClient().GetQuota(cmd.Context())
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(q)
			}
			return printQuota(q)
		},
	}
}
