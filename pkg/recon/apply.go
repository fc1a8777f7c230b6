package recon

import (
	domain "github.com/kjdelacruz/stocksync/pkg/types"
)

// ApplyDeltas folds ledger-approved deltas into a catalog snapshot and
// returns the new snapshot. Quantities floor at zero: a decrement larger
// than the stock on hand truncates rather than erroring. Deltas naming no
// catalog entry (synthetic unmatched products) are dropped; no entry is
// created for them. The input snapshot is not mutated and no I/O happens
// here — persistence is the caller's concern, once per batch.
func ApplyDeltas(snapshot []domain.Product, deltas []domain.InventoryDelta) []domain.Product {
	byName := make(map[string]int, len(deltas))
	for _, d := range deltas {
		byName[d.ProductName] += d.SignedQuantity
	}

	out := make([]domain.Product, len(snapshot))
	copy(out, snapshot)
	for i := range out {
		dq, ok := byName[out[i].Name]
		if !ok || dq == 0 {
			continue
		}
		q := out[i].Quantity + dq
		if q < 0 {
			q = 0
		}
		out[i].Quantity = q
	}
	return out
}

// ChangedProducts returns the entries of next whose quantity differs from
// prev, matched by name. Used to persist only what a batch actually moved.
func ChangedProducts(prev, next []domain.Product) []domain.Product {
	prevQty := make(map[string]int, len(prev))
	for _, p := range prev {
		prevQty[p.Name] = p.Quantity
	}

	var changed []domain.Product
	for _, p := range next {
		if q, ok := prevQty[p.Name]; !ok || q != p.Quantity {
			changed = append(changed, p)
		}
	}
	return changed
}
