package recon

import (
	"strings"

	"github.com/kjdelacruz/stocksync/pkg/fields"
	"github.com/kjdelacruz/stocksync/pkg/match"
	"github.com/kjdelacruz/stocksync/pkg/normalize"
	domain "github.com/kjdelacruz/stocksync/pkg/types"
)

// DeriveTaxes aggregates per-row tax amounts into one entry per order.
// Return rows are excluded (they feed the returns log instead); rows with
// no order id or a zero tax amount contribute nothing. The first non-empty
// date seen for an order wins. Output preserves first-appearance order.
func DeriveTaxes(rows []domain.Row, platform domain.Platform) []domain.TaxEntry {
	byOrder := make(map[string]int)
	var entries []domain.TaxEntry

	for _, row := range rows {
		orderID := strings.TrimSpace(fields.Resolve(row, fields.OrderID...))
		if orderID == "" {
			continue
		}

		status := fields.Resolve(row, fields.Status...)
		if strings.Contains(strings.ToLower(status), "return") {
			continue
		}

		amount := normalize.Number(fields.ResolveOr(row, "0", fields.Tax...), 0)
		if amount == 0 {
			continue
		}

		date := normalize.Date(fields.Resolve(row, fields.Date...))

		if i, ok := byOrder[orderID]; ok {
			entries[i].Amount += amount
			if entries[i].Date == "" {
				entries[i].Date = date
			}
			continue
		}
		byOrder[orderID] = len(entries)
		entries = append(entries, domain.TaxEntry{
			OrderID:  orderID,
			Date:     date,
			Amount:   amount,
			Platform: platform,
		})
	}

	return entries
}

// DeriveReturns builds the returns log from a batch's normalized events:
// one entry per returned order, first row wins, quantity defaulting to one
// when the row's quantity was unresolvable.
func DeriveReturns(events []domain.OrderEvent, platform domain.Platform) []domain.ReturnEntry {
	seen := make(map[string]struct{})
	var entries []domain.ReturnEntry

	for _, ev := range events {
		if ev.Direction != domain.DirectionIncrement {
			continue
		}
		if _, dup := seen[ev.OrderID]; dup {
			continue
		}
		seen[ev.OrderID] = struct{}{}

		qty := ev.Quantity
		if qty <= 0 {
			qty = 1
		}
		entries = append(entries, domain.ReturnEntry{
			OrderID:   ev.OrderID,
			Product:   ev.Product,
			Variation: ev.Variation,
			Quantity:  qty,
			Date:      ev.Date,
			Status:    ev.Status,
			Platform:  platform,
		})
	}

	return entries
}

// AssembleOrders groups a batch's rows into per-order views. Blank order
// ids forward-fill from the previous row (multi-line exports repeat the id
// only on the first line); rows with no id to inherit are dropped. The
// order's date and status come from the first line that has one; the total
// is the sum of line totals, falling back to price x quantity per line and
// to the largest buyer payment when no line totals exist.
func AssembleOrders(rows []domain.Row, resolver *match.Resolver) []domain.Order {
	byID := make(map[string]int)
	var ordered []domain.Order

	lastOrderID := ""
	for _, row := range rows {
		orderID := strings.TrimSpace(fields.Resolve(row, fields.OrderID...))
		if orderID == "" {
			orderID = lastOrderID
		} else {
			lastOrderID = orderID
		}
		if orderID == "" {
			continue
		}

		baseRaw := fields.Resolve(row, fields.ProductName...)
		varRaw := fields.Resolve(row, fields.Variation...)
		resolved := resolver.Resolve(match.CleanName(baseRaw), match.CleanName(varRaw))

		qty := normalize.Quantity(fields.ResolveOr(row, "0", fields.Quantity...), 0)
		itemPrice := normalize.Number(fields.ResolveOr(row, "0", fields.ItemPrice...), 0)

		totals := fields.CollectTotals(row, normalize.ParseNumber)
		rowTotal := itemPrice * float64(qty)
		switch {
		case len(totals) >= 2:
			rowTotal = totals[1]
		case len(totals) == 1:
			rowTotal = totals[0]
		}

		line := domain.OrderLine{
			Product:    baseRaw,
			Variation:  varRaw,
			Quantity:   qty,
			ItemPrice:  itemPrice,
			RowTotal:   rowTotal,
			BuyerTotal: normalize.Number(fields.ResolveOr(row, "0", fields.BuyerPayment...), 0),
			ImageURL:   resolved.ImageURL,
		}

		i, ok := byID[orderID]
		if !ok {
			i = len(ordered)
			byID[orderID] = i
			ordered = append(ordered, domain.Order{OrderID: orderID})
		}
		o := &ordered[i]
		o.Lines = append(o.Lines, line)

		if o.Date == "" {
			o.Date = normalize.Date(fields.Resolve(row, fields.Date...))
		}
		if o.Status == "" {
			o.Status = fields.Resolve(row, fields.Status...)
		}
		if o.Buyer == "" {
			o.Buyer = fields.Resolve(row, fields.Buyer...)
		}
	}

	out := make([]domain.Order, 0, len(ordered))
	for _, o := range ordered {
		var sum, maxBuyer float64
		for _, l := range o.Lines {
			lineTotal := l.RowTotal
			if lineTotal <= 0 {
				lineTotal = l.ItemPrice * float64(l.Quantity)
			}
			sum += lineTotal
			if l.BuyerTotal > maxBuyer {
				maxBuyer = l.BuyerTotal
			}
		}
		o.Total = sum
		if o.Total == 0 {
			o.Total = maxBuyer
		}
		out = append(out, o)
	}
	return out
}
