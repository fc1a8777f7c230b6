package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

func ledgerCmd() *cobra.Command {
	ledgerRoot := &cobra.Command{
		Use:   "ledger",
		Short: "Inspect the idempotency ledger",
	}

	ledgerRoot.AddCommand(&cobra.Command{
		Use:   "stats",
		Short: "Show ledger key counts",
		Example: `  stocksync ledger stats
  stocksync ledger stats --output json`,
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			stats, err := c.GetLedgerStats(context.Background())
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(stats)
			}
			return printLedgerStats(stats)
		},
	})

	return ledgerRoot
}
