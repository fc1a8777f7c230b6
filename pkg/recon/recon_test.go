package recon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kjdelacruz/stocksync/pkg/match"
	domain "github.com/kjdelacruz/stocksync/pkg/types"
)

func testResolver(names ...string) *match.Resolver {
	catalog := make([]domain.Product, 0, len(names))
	for _, n := range names {
		catalog = append(catalog, domain.Product{Name: n})
	}
	return match.NewResolver(catalog)
}

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status    string
		direction domain.Direction
		countable bool
	}{
		{"Completed", domain.DirectionDecrement, true},
		{"Delivered", domain.DirectionDecrement, true},
		{"", domain.DirectionDecrement, true},
		{"Return/Refund Approved", domain.DirectionIncrement, true},
		{"RETURNED", domain.DirectionIncrement, true},
		{"Cancelled", "", false},
		{"Cancellation Requested", "", false},
		// Both markers present: return wins, stock is restored.
		{"Cancelled - Return Completed", domain.DirectionIncrement, true},
	}
	for _, tt := range tests {
		dir, countable := Classify(tt.status)
		assert.Equal(t, tt.direction, dir, "status %q", tt.status)
		assert.Equal(t, tt.countable, countable, "status %q", tt.status)
	}
}

func TestBuildEvent_SkipReasons(t *testing.T) {
	t.Parallel()

	r := testResolver("Red Mug")

	_, skip := BuildEvent(domain.Row{"Quantity": "2", "Product Name": "Red Mug"}, r)
	assert.Equal(t, SkipNoOrderID, skip)

	_, skip = BuildEvent(domain.Row{"Order ID": "A1", "Product Name": "Red Mug"}, r)
	assert.Equal(t, SkipNoQuantity, skip)

	ev, skip := BuildEvent(domain.Row{
		"Order ID":     "A1",
		"Product Name": "Red Mug",
		"Quantity":     "1",
		"Order Status": "Cancelled",
	}, r)
	assert.Equal(t, SkipInformational, skip)
	assert.Equal(t, "Red Mug", ev.Product)
}

func TestBuildEvent_NormalizesRow(t *testing.T) {
	t.Parallel()

	r := testResolver("Red Mug")
	ev, skip := BuildEvent(domain.Row{
		"Order ID":     "ORD-1001",
		"Product Name": "Red Mug - Flash Sale",
		"Variation":    "Large (new)",
		"Quantity":     "2",
		"DATE":         "15 Mar 2024",
		"Order Status": "Completed",
	}, r)

	require.Equal(t, SkipNone, skip)
	assert.Equal(t, "ORD-1001", ev.OrderID)
	assert.Equal(t, "Red Mug", ev.Product)
	assert.Equal(t, "Large", ev.Variation)
	assert.Equal(t, 2, ev.Quantity)
	assert.Equal(t, "2024-03-15", ev.Date)
	assert.Equal(t, domain.DirectionDecrement, ev.Direction)
	assert.Equal(t, domain.MatchExact, ev.Match.Tier)
}

func TestLedger_DedupAcrossBatches(t *testing.T) {
	t.Parallel()

	sale := domain.OrderEvent{
		OrderID:   "A1",
		Product:   "Red Mug",
		Quantity:  2,
		Direction: domain.DirectionDecrement,
	}

	// First import: the sale counts.
	first := NewLedger(nil)
	assert.True(t, first.Apply(domain.PlatformShopee, sale))
	require.Len(t, first.Deltas(), 1)
	assert.Equal(t, -2, first.Deltas()[0].SignedQuantity)

	// Re-import with the durable keys loaded: the same sale is a no-op,
	// but the return of the same order still counts (distinct direction).
	second := NewLedger(first.NewKeys())
	assert.False(t, second.Apply(domain.PlatformShopee, sale))

	ret := sale
	ret.Direction = domain.DirectionIncrement
	assert.True(t, second.Apply(domain.PlatformShopee, ret))

	require.Len(t, second.Deltas(), 1)
	assert.Equal(t, 2, second.Deltas()[0].SignedQuantity)
}

func TestLedger_Idempotence(t *testing.T) {
	t.Parallel()

	events := []domain.OrderEvent{
		{OrderID: "A1", Product: "Red Mug", Quantity: 2, Direction: domain.DirectionDecrement},
		{OrderID: "A2", Product: "Red Mug", Quantity: 1, Direction: domain.DirectionDecrement},
		{OrderID: "A3", Product: "Blue Vase", Quantity: 3, Direction: domain.DirectionIncrement},
	}

	once := NewLedger(nil)
	for _, ev := range events {
		once.Apply(domain.PlatformTiktok, ev)
	}

	// Same batch applied twice in one pass: deltas must be identical to
	// applying it once.
	twice := NewLedger(nil)
	for range 2 {
		for _, ev := range events {
			twice.Apply(domain.PlatformTiktok, ev)
		}
	}

	assert.Equal(t, once.Deltas(), twice.Deltas())
	assert.Equal(t, once.NewKeys(), twice.NewKeys())
}

func TestLedger_DistinctVariationsBothCount(t *testing.T) {
	t.Parallel()

	l := NewLedger(nil)
	base := domain.OrderEvent{
		OrderID:   "A1",
		Product:   "Red Mug",
		Quantity:  1,
		Direction: domain.DirectionDecrement,
	}
	small, large := base, base
	small.Variation = "Small"
	large.Variation = "Large"

	assert.True(t, l.Apply(domain.PlatformShopee, small))
	assert.True(t, l.Apply(domain.PlatformShopee, large))

	require.Len(t, l.Deltas(), 1)
	assert.Equal(t, -2, l.Deltas()[0].SignedQuantity)
}

func TestApplyDeltas_FloorsAtZero(t *testing.T) {
	t.Parallel()

	snapshot := []domain.Product{{Name: "Red Mug", Quantity: 3}}
	next := ApplyDeltas(snapshot, []domain.InventoryDelta{
		{ProductName: "Red Mug", SignedQuantity: -5},
	})

	require.Len(t, next, 1)
	assert.Equal(t, 0, next[0].Quantity)
	// Input snapshot untouched.
	assert.Equal(t, 3, snapshot[0].Quantity)
}

func TestApplyDeltas_DropsUnknownProducts(t *testing.T) {
	t.Parallel()

	snapshot := []domain.Product{{Name: "Red Mug", Quantity: 3}}
	next := ApplyDeltas(snapshot, []domain.InventoryDelta{
		{ProductName: "Never Heard Of It", SignedQuantity: -2},
		{ProductName: "Red Mug", SignedQuantity: 1},
	})

	require.Len(t, next, 1)
	assert.Equal(t, "Red Mug", next[0].Name)
	assert.Equal(t, 4, next[0].Quantity)
}

func TestChangedProducts(t *testing.T) {
	t.Parallel()

	prev := []domain.Product{
		{Name: "Red Mug", Quantity: 3},
		{Name: "Blue Vase", Quantity: 7},
	}
	next := []domain.Product{
		{Name: "Red Mug", Quantity: 1},
		{Name: "Blue Vase", Quantity: 7},
	}

	changed := ChangedProducts(prev, next)
	require.Len(t, changed, 1)
	assert.Equal(t, "Red Mug", changed[0].Name)
}

func TestDeriveTaxes_MergesByOrderAndSkipsReturns(t *testing.T) {
	t.Parallel()

	rows := []domain.Row{
		{"Order ID": "A1", "Tax": "10.50", "DATE": "2024-01-05"},
		{"Order ID": "A1", "Tax": "4.50"},
		{"Order ID": "A2", "Tax": "0"},
		{"Order ID": "A3", "Tax": "2.00", "Order Status": "Return/Refund Approved"},
		{"Tax": "9.99"},
	}

	entries := DeriveTaxes(rows, domain.PlatformShopee)
	require.Len(t, entries, 1)
	assert.Equal(t, "A1", entries[0].OrderID)
	assert.InDelta(t, 15.0, entries[0].Amount, 1e-9)
	assert.Equal(t, "2024-01-05", entries[0].Date)
	assert.Equal(t, domain.PlatformShopee, entries[0].Platform)
}

func TestDeriveReturns_DedupAndQuantityFloor(t *testing.T) {
	t.Parallel()

	events := []domain.OrderEvent{
		{OrderID: "A1", Product: "Red Mug", Quantity: 2, Direction: domain.DirectionIncrement},
		{OrderID: "A1", Product: "Red Mug", Quantity: 2, Direction: domain.DirectionIncrement},
		{OrderID: "A2", Product: "Blue Vase", Quantity: 0, Direction: domain.DirectionIncrement},
		{OrderID: "A3", Product: "Red Mug", Quantity: 1, Direction: domain.DirectionDecrement},
	}

	entries := DeriveReturns(events, domain.PlatformTiktok)
	require.Len(t, entries, 2)
	assert.Equal(t, "A1", entries[0].OrderID)
	assert.Equal(t, 2, entries[0].Quantity)
	assert.Equal(t, "A2", entries[1].OrderID)
	assert.Equal(t, 1, entries[1].Quantity)
}

func TestAssembleOrders_ForwardFillAndTotals(t *testing.T) {
	t.Parallel()

	r := testResolver("Red Mug", "Blue Vase")
	rows := []domain.Row{
		{
			"Order ID":     "A1",
			"Product Name": "Red Mug",
			"Quantity":     "2",
			"Price":        "100",
			"Total":        "250",
			"DATE":         "2024-01-05",
			"Order Status": "Completed",
		},
		{
			// Second line of A1: blank id inherits from the row above.
			"Product Name": "Blue Vase",
			"Quantity":     "1",
			"Price":        "50",
		},
		{
			"Order ID":     "A2",
			"Product Name": "Blue Vase",
			"Quantity":     "3",
			"Price":        "40",
		},
	}

	orders := AssembleOrders(rows, r)
	require.Len(t, orders, 2)

	a1 := orders[0]
	assert.Equal(t, "A1", a1.OrderID)
	require.Len(t, a1.Lines, 2)
	assert.Equal(t, "2024-01-05", a1.Date)
	assert.Equal(t, "Completed", a1.Status)
	// Line 1 has an explicit total, line 2 falls back to price x qty.
	assert.InDelta(t, 300.0, a1.Total, 1e-9)

	a2 := orders[1]
	require.Len(t, a2.Lines, 1)
	assert.InDelta(t, 120.0, a2.Total, 1e-9)
}

func TestAssembleOrders_LeadingBlankIDDropped(t *testing.T) {
	t.Parallel()

	r := testResolver()
	rows := []domain.Row{
		{"Product Name": "Orphan Line", "Quantity": "1"},
		{"Order ID": "A1", "Product Name": "Red Mug", "Quantity": "1"},
	}

	orders := AssembleOrders(rows, r)
	require.Len(t, orders, 1)
	assert.Equal(t, "A1", orders[0].OrderID)
}
