package recon

import (
	"sort"

	domain "github.com/kjdelacruz/stocksync/pkg/types"
)

// Ledger is the in-memory working set for one batch: the durable
// idempotency keys loaded from the store plus the per-product delta
// accumulator. The check-and-insert in Apply is the critical section that
// makes re-imports no-ops; callers must not run two batches through one
// Ledger concurrently.
type Ledger struct {
	seen    map[string]struct{}
	newKeys []string
	deltas  map[string]int
}

// NewLedger seeds a batch ledger with the previously applied keys.
func NewLedger(existing []string) *Ledger {
	seen := make(map[string]struct{}, len(existing))
	for _, k := range existing {
		seen[k] = struct{}{}
	}
	return &Ledger{
		seen:   seen,
		deltas: make(map[string]int),
	}
}

// Apply records one countable event under its ledger key and accumulates
// its signed quantity. It returns false when the key was already applied
// (in this batch or any earlier one) and the event is a no-op.
func (l *Ledger) Apply(platform domain.Platform, ev domain.OrderEvent) bool {
	key := domain.LedgerKey{
		Platform:  platform,
		OrderID:   ev.OrderID,
		Product:   ev.Product,
		Variation: ev.Variation,
		Direction: ev.Direction,
	}.String()

	if _, dup := l.seen[key]; dup {
		return false
	}
	l.seen[key] = struct{}{}
	l.newKeys = append(l.newKeys, key)

	qty := ev.Quantity
	if ev.Direction == domain.DirectionDecrement {
		qty = -qty
	}
	l.deltas[ev.Product] += qty
	return true
}

// NewKeys returns the keys first applied during this batch, in
// application order. These are what the caller persists.
func (l *Ledger) NewKeys() []string {
	return l.newKeys
}

// Deltas returns the per-product signed quantities accumulated this
// batch, sorted by product name for stable output.
func (l *Ledger) Deltas() []domain.InventoryDelta {
	out := make([]domain.InventoryDelta, 0, len(l.deltas))
	for name, qty := range l.deltas {
		out = append(out, domain.InventoryDelta{ProductName: name, SignedQuantity: qty})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ProductName < out[j].ProductName })
	return out
}
