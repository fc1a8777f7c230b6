package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func returnsCmd() *cobra.Command {
	var (
		platform string
		limit    int
		offset   int
	)

	c := &cobra.Command{
		Use:   "returns",
		Short: "List the returns log",
		Example: `  stocksync returns
  stocksync returns --platform tiktok --limit 10`,
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			resp, err := c.ListReturns(context.Background(), platform, limit, offset)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(resp)
			}
			if len(resp.Entries) == 0 {
				fmt.Println("No return entries found.")
				return nil
			}
			return printReturnsTable(resp.Entries)
		},
	}

	c.Flags().StringVar(&platform, "platform", "", "filter by marketplace (shopee, tiktok)")
	c.Flags().IntVar(&limit, "limit", 0, "number of results")
	c.Flags().IntVar(&offset, "offset", 0, "pagination offset")

	return c
}
