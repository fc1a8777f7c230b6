package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	apiclient "github.com/kjdelacruz/stocksync/internal/api/client"
)

func taxesCmd() *cobra.Command {
	var (
		platform string
		dateFrom string
		dateTo   string
		limit    int
		offset   int
		orderBy  string
	)

	c := &cobra.Command{
		Use:   "taxes",
		Short: "List per-order tax entries",
		Example: `  stocksync taxes --platform shopee
  stocksync taxes --date-from 2024-01-01 --date-to 2024-01-31 --output json`,
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			resp, err := c.ListTaxes(context.Background(), &apiclient.ListTaxesParams{
				Platform: platform,
				DateFrom: dateFrom,
				DateTo:   dateTo,
				Limit:    limit,
				Offset:   offset,
				OrderBy:  orderBy,
			})
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(resp)
			}
			if len(resp.Entries) == 0 {
				fmt.Println("No tax entries found.")
				return nil
			}
			return printTaxesTable(resp.Entries)
		},
	}

	c.Flags().StringVar(&platform, "platform", "", "filter by marketplace (shopee, tiktok)")
	c.Flags().StringVar(&dateFrom, "date-from", "", "inclusive ISO-8601 start date")
	c.Flags().StringVar(&dateTo, "date-to", "", "inclusive ISO-8601 end date")
	c.Flags().IntVar(&limit, "limit", 0, "number of results")
	c.Flags().IntVar(&offset, "offset", 0, "pagination offset")
	c.Flags().StringVar(&orderBy, "order-by", "", "sort field (date, amount, created_at)")

	return c
}
