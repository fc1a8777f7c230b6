// Package recon turns raw order-export rows into normalized order events
// and folds them into inventory deltas exactly once per (platform, order,
// product, variation, direction) tuple.
//
// All computation here is pure and synchronous: the caller loads the
// durable ledger keys and the catalog snapshot, runs a batch through, and
// persists what comes out. Per-row anomalies (missing fields, unparsable
// values, unmatched products) never fail a batch; rows are skipped or fall
// back per the rules below.
package recon

import (
	"strings"

	"github.com/kjdelacruz/stocksync/pkg/fields"
	"github.com/kjdelacruz/stocksync/pkg/match"
	"github.com/kjdelacruz/stocksync/pkg/normalize"
	domain "github.com/kjdelacruz/stocksync/pkg/types"
)

// SkipReason explains why a row produced no ledger effect.
type SkipReason string

// Skip reasons. SkipNone means the row produced an event.
const (
	SkipNone          SkipReason = ""
	SkipNoOrderID     SkipReason = "no_order_id"
	SkipNoQuantity    SkipReason = "no_quantity"
	SkipInformational SkipReason = "informational" // cancelled but not returned
)

// Classify maps a raw status string to the row's inventory direction.
//
// A "return" indicator (case-insensitive substring) increments stock.
// A "cancel" indicator without a return indicator is informational only:
// the observed upstream behavior neither decrements nor restores stock for
// such rows, and that asymmetry is preserved deliberately. Everything else
// is a sale and decrements.
func Classify(status string) (domain.Direction, bool) {
	s := strings.ToLower(status)
	if strings.Contains(s, "return") {
		return domain.DirectionIncrement, true
	}
	if strings.Contains(s, "cancel") {
		return "", false
	}
	return domain.DirectionDecrement, true
}

// BuildEvent distills one row into a normalized order event using the
// shared label tables and the given catalog resolver. The second return
// names the skip reason when the row cannot contribute a ledger effect.
func BuildEvent(row domain.Row, resolver *match.Resolver) (domain.OrderEvent, SkipReason) {
	orderID := strings.TrimSpace(fields.Resolve(row, fields.OrderID...))
	if orderID == "" {
		return domain.OrderEvent{}, SkipNoOrderID
	}

	status := fields.Resolve(row, fields.Status...)
	direction, countable := Classify(status)

	baseClean := match.CleanName(fields.Resolve(row, fields.ProductName...))
	varClean := match.CleanName(fields.Resolve(row, fields.Variation...))
	matched := resolver.Resolve(baseClean, varClean)

	qty := normalize.Quantity(fields.ResolveOr(row, "0", fields.Quantity...), 0)

	ev := domain.OrderEvent{
		OrderID:   orderID,
		Product:   matched.ProductName,
		Variation: varClean,
		Quantity:  qty,
		Date:      normalize.Date(fields.Resolve(row, fields.Date...)),
		Status:    status,
		Direction: direction,
		Match:     matched,
	}

	if !countable {
		return ev, SkipInformational
	}
	if qty <= 0 || matched.ProductName == "" {
		return ev, SkipNoQuantity
	}
	return ev, SkipNone
}
