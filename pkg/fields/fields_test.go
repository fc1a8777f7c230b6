package fields

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeLabel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"Order ID", "order id"},
		{"  Order   No.  ", "order no"},
		{"PAYOUT COMPLETED DATE", "payout completed date"},
		{"Qty!", "qty"},
		{"Total_1", "total1"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeLabel(tt.in), "label %q", tt.in)
	}
}

func TestResolve_ExactBeatsSubstring(t *testing.T) {
	t.Parallel()

	row := map[string]any{
		"Order Number Extra": "sub",
		"Order Number":       "exact",
	}

	assert.Equal(t, "exact", Resolve(row, "Order Number"))
}

func TestResolve_CandidatePriority(t *testing.T) {
	t.Parallel()

	// Both columns populated: the first candidate wins even though the
	// second also matches.
	row := map[string]any{
		"Order No":     "N-2",
		"Order Number": "N-1",
	}

	assert.Equal(t, "N-1", Resolve(row, "Order Number", "Order No"))
}

func TestResolve_SkipsBlankOverFallback(t *testing.T) {
	t.Parallel()

	row := map[string]any{
		"Order Number": "   ",
		"Order No":     "N-2",
	}

	// The blank preferred column must not shadow the populated fallback.
	assert.Equal(t, "N-2", Resolve(row, "Order Number", "Order No"))
}

func TestResolve_SubstringMatch(t *testing.T) {
	t.Parallel()

	row := map[string]any{
		"Delivered Date / Estimated Payout Date": "2024-03-15",
	}

	assert.Equal(t, "2024-03-15", Resolve(row, "delivered date / estimated payout date"))
	// The row label contains "payout date" as a substring too.
	assert.Equal(t, "2024-03-15", Resolve(row, "payout date"))
}

func TestResolve_PunctuationAndCaseInsensitive(t *testing.T) {
	t.Parallel()

	// Punctuation is stripped without inserting a space, so "ORDER-ID:"
	// collapses to "orderid" and only an unspaced candidate can match it.
	row := map[string]any{"ORDER-ID:": "A1"}
	assert.Equal(t, "A1", Resolve(row, "OrderID"))
	assert.Equal(t, "", Resolve(row, "order id"))
}

func TestResolve_NumericCell(t *testing.T) {
	t.Parallel()

	row := map[string]any{"Quantity": float64(2)}
	assert.Equal(t, "2", Resolve(row, "Quantity", "Qty"))
}

func TestResolve_NothingFound(t *testing.T) {
	t.Parallel()

	row := map[string]any{"Unrelated": "x"}
	assert.Equal(t, "", Resolve(row, "Order ID"))
	assert.Equal(t, "fallback", ResolveOr(row, "fallback", "Order ID"))
}

func TestCellString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", CellString(nil))
	assert.Equal(t, "x", CellString("  x "))
	assert.Equal(t, "2", CellString(float64(2)))
	assert.Equal(t, "2.5", CellString(2.5))
	assert.Equal(t, "true", CellString(true))
	assert.Equal(t, "7", CellString(7))
}

func TestCollectTotals(t *testing.T) {
	t.Parallel()

	parse := func(s string) (float64, bool) {
		n, err := strconv.ParseFloat(s, 64)
		return n, err == nil
	}

	row := map[string]any{
		"Total":  "100",
		"TOTAL:": "150",
		"Qty":    "2",
	}

	totals := CollectTotals(row, parse)
	assert.Equal(t, []float64{150, 100}, totals) // sorted by raw label: "TOTAL:" < "Total"
}

func TestCollectTotals_SuffixedDuplicates(t *testing.T) {
	t.Parallel()

	parse := func(s string) (float64, bool) {
		n, err := strconv.ParseFloat(s, 64)
		return n, err == nil
	}

	// Workbook decoders rename repeated headers with a numeric suffix.
	row := map[string]any{
		"Total":               "100",
		"Total_2":             "150",
		"Total Buyer Payment": "999",
	}

	totals := CollectTotals(row, parse)
	assert.Equal(t, []float64{100, 150}, totals)
}
