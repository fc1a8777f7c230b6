package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	domain "github.com/kjdelacruz/stocksync/pkg/types"
)

// tabWriter wraps tabwriter with error tracking.
type tabWriter struct {
	*tabwriter.Writer
	err error
}

func newTabWriter(w io.Writer) *tabWriter {
	return &tabWriter{Writer: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
}

func (tw *tabWriter) writef(format string, args ...any) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintf(tw.Writer, format, args...)
}

func (tw *tabWriter) finish() error {
	if tw.err != nil {
		return tw.err
	}
	return tw.Flush()
}

func printProductsTable(products []domain.Product) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ID\tNAME\tCATEGORY\tTYPE\tQTY\n")
	for i := range products {
		tw.writef("%s\t%s\t%s\t%s\t%d\n",
			products[i].ID,
			truncate(products[i].Name, 40),
			products[i].Category,
			products[i].Type,
			products[i].Quantity,
		)
	}
	return tw.finish()
}

func printProductDetail(p *domain.Product) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ID:\t%s\n", p.ID)
	tw.writef("Name:\t%s\n", p.Name)
	tw.writef("Category:\t%s\n", p.Category)
	tw.writef("Type:\t%s\n", p.Type)
	tw.writef("Quantity:\t%d\n", p.Quantity)
	if p.ImageURL != "" {
		tw.writef("Image:\t%s\n", p.ImageURL)
	}
	return tw.finish()
}

func printOrdersTable(orders []domain.Order) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ORDER\tDATE\tSTATUS\tLINES\tTOTAL\n")
	for i := range orders {
		tw.writef("%s\t%s\t%s\t%d\t%.2f\n",
			orders[i].OrderID,
			orders[i].Date,
			truncate(orders[i].Status, 30),
			len(orders[i].Lines),
			orders[i].Total,
		)
	}
	return tw.finish()
}

func printImportSummary(s *domain.ImportSummary) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("Platform:\t%s\n", s.Platform)
	tw.writef("Rows:\t%d\n", s.RowsTotal)
	tw.writef("Skipped:\t%d\n", s.RowsSkipped)
	tw.writef("Already applied:\t%d\n", s.DedupSkips)
	tw.writef("Unmatched:\t%d\n", s.Unmatched)
	tw.writef("Products moved:\t%d\n", s.ProductsMoved)
	tw.writef("Tax entries:\t%d\n", s.TaxEntries)
	tw.writef("Return entries:\t%d\n", s.ReturnEntries)
	for _, d := range s.Deltas {
		tw.writef("  %s\t%+d\n", d.ProductName, d.SignedQuantity)
	}
	return tw.finish()
}

func printTaxesTable(entries []domain.TaxEntry) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ORDER\tDATE\tPLATFORM\tAMOUNT\n")
	for i := range entries {
		tw.writef("%s\t%s\t%s\t%.2f\n",
			entries[i].OrderID,
			entries[i].Date,
			entries[i].Platform,
			entries[i].Amount,
		)
	}
	return tw.finish()
}

func printReturnsTable(entries []domain.ReturnEntry) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ORDER\tPRODUCT\tVARIATION\tQTY\tDATE\tPLATFORM\n")
	for i := range entries {
		tw.writef("%s\t%s\t%s\t%d\t%s\t%s\n",
			entries[i].OrderID,
			truncate(entries[i].Product, 40),
			entries[i].Variation,
			entries[i].Quantity,
			entries[i].Date,
			entries[i].Platform,
		)
	}
	return tw.finish()
}

func printLedgerStats(s *domain.LedgerStats) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("Total keys:\t%d\n", s.TotalKeys)
	tw.writef("Decrements:\t%d\n", s.Decrements)
	tw.writef("Increments:\t%d\n", s.Increments)
	return tw.finish()
}

func printJobRunsTable(runs []domain.JobRun) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("JOB\tSTATUS\tSTARTED\tCOMPLETED\tROWS\tERROR\n")
	for i := range runs {
		r := &runs[i]
		completed := "-"
		if r.CompletedAt != nil {
			completed = r.CompletedAt.Format("2006-01-02 15:04:05")
		}
		rows := "-"
		if r.RowsAffected != nil {
			rows = fmt.Sprintf("%d", *r.RowsAffected)
		}
		tw.writef("%s\t%s\t%s\t%s\t%s\t%s\n",
			r.JobName,
			r.Status,
			r.StartedAt.Format("2006-01-02 15:04:05"),
			completed,
			rows,
			truncate(r.ErrorText, 40),
		)
	}
	return tw.finish()
}

func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
