package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kjdelacruz/stocksync/internal/sheet"
	domain "github.com/kjdelacruz/stocksync/pkg/types"
)

func importCmd() *cobra.Command {
	var (
		platform string
		preview  bool
	)

	c := &cobra.Command{
		Use:   "import <file.xlsx>",
		Short: "Import an order-export workbook",
		Long: "Reads an xlsx order export and sends it to the server for\n" +
			"reconciliation. With --preview the rows are assembled into\n" +
			"per-order views without touching stock.",
		Args: cobra.ExactArgs(1),
		Example: `  stocksync import shopee_orders.xlsx --platform shopee
  stocksync import export.xlsx --platform tiktok --preview`,
		RunE: func(_ *cobra.Command, args []string) error {
			path := args[0]

			if platform == "" {
				if p, ok := sheet.DetectPlatform(path); ok {
					platform = string(p)
				}
			}
			if platform == "" {
				return fmt.Errorf("cannot infer platform from %q, pass --platform", path)
			}

			rows, err := sheet.ReadFile(path)
			if err != nil {
				return fmt.Errorf("reading workbook: %w", err)
			}

			c := newClient()
			ctx := context.Background()

			if preview {
				resp, err := c.Preview(ctx, rows)
				if err != nil {
					return err
				}
				if jsonOutput() {
					return outputJSON(resp)
				}
				return printOrdersTable(resp.Orders)
			}

			summary, err := c.Import(ctx, domain.Platform(platform), rows)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(summary)
			}
			return printImportSummary(summary)
		},
	}

	c.Flags().StringVar(&platform, "platform", "", "source marketplace (shopee, tiktok)")
	c.Flags().BoolVar(&preview, "preview", false, "assemble orders without importing")

	return c
}
