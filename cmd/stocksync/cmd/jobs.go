package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func jobsCmd() *cobra.Command {
	var (
		jobName string
		limit   int
	)

	c := &cobra.Command{
		Use:   "jobs",
		Short: "View import job history",
		Example: `  stocksync jobs
  stocksync jobs --job-name import --limit 10`,
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			runs, err := c.ListJobs(context.Background(), jobName, limit)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(runs)
			}
			if len(runs) == 0 {
				fmt.Println("No job runs found.")
				return nil
			}
			return printJobRunsTable(runs)
		},
	}

	c.Flags().StringVar(&jobName, "job-name", "", "filter by job name")
	c.Flags().IntVar(&limit, "limit", 0, "number of results")

	return c
}
