package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	apiclient "github.com/kjdelacruz/stocksync/internal/api/client"
	domain "github.com/kjdelacruz/stocksync/pkg/types"
)

func catalogCmd() *cobra.Command {
	catalogRoot := &cobra.Command{
		Use:   "catalog",
		Short: "Manage the inventory catalog",
	}

	catalogRoot.AddCommand(
		catalogListCmd(),
		catalogGetCmd(),
		catalogSetCmd(),
		catalogDeleteCmd(),
	)

	return catalogRoot
}

func catalogListCmd() *cobra.Command {
	var (
		category string
		ptype    string
		name     string
		limit    int
		offset   int
		orderBy  string
	)

	c := &cobra.Command{
		Use:   "list",
		Short: "List catalog products",
		Example: `  stocksync catalog list
  stocksync catalog list --category kitchen --order-by quantity
  stocksync catalog list --name mug --output json`,
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			resp, err := c.ListProducts(context.Background(), &apiclient.ListProductsParams{
				Category: category,
				Type:     ptype,
				Name:     name,
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
			if len(resp.Products) == 0 {
				fmt.Println("No products found.")
				return nil
			}
			return printProductsTable(resp.Products)
		},
	}

	c.Flags().StringVar(&category, "category", "", "filter by category")
	c.Flags().StringVar(&ptype, "type", "", "filter by product type")
	c.Flags().StringVar(&name, "name", "", "substring match on name")
	c.Flags().IntVar(&limit, "limit", 0, "number of results")
	c.Flags().IntVar(&offset, "offset", 0, "pagination offset")
	c.Flags().StringVar(&orderBy, "order-by", "", "sort field (name, quantity, updated_at)")

	return c
}

func catalogGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Get a product by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			p, err := c.GetProduct(context.Background(), args[0])
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(p)
			}
			return printProductDetail(p)
		},
	}
}

func catalogSetCmd() *cobra.Command {
	var (
		category string
		ptype    string
		quantity int
		imageURL string
	)

	c := &cobra.Command{
		Use:   "set <name>",
		Short: "Create or update a product",
		Args:  cobra.ExactArgs(1),
		Example: `  stocksync catalog set "Red Mug" --quantity 25 --category kitchen
  stocksync catalog set "Blue Vase" --quantity 0`,
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			p, err := c.UpsertProduct(context.Background(), &domain.Product{
				Name:     args[0],
				Category: category,
				Type:     ptype,
				Quantity: quantity,
				ImageURL: imageURL,
			})
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(p)
			}
			return printProductDetail(p)
		},
	}

	c.Flags().StringVar(&category, "category", "", "category")
	c.Flags().StringVar(&ptype, "type", "", "product type")
	c.Flags().IntVar(&quantity, "quantity", 0, "stock on hand")
	c.Flags().StringVar(&imageURL, "image-url", "", "image URL")

	return c
}

func catalogDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			if err := c.DeleteProduct(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Println("Deleted.")
			return nil
		},
	}
}
