// Package fields resolves canonical order fields from the inconsistently
// labeled columns of marketplace export spreadsheets.
//
// Column labels are provider-controlled and drift between exports ("Order
// ID", "Order No.", "order number", ...). Resolution normalizes both the
// row's labels and the caller's candidate labels, then matches exactly and
// by substring, in the caller's priority order. There is deliberately no
// edit-distance matching: substring-only keeps resolution predictable on
// noisy headers.
package fields

import (
	"sort"
	"strconv"
	"strings"
)

// NormalizeLabel lowercases a column label, collapses runs of whitespace
// to single spaces, and strips every character outside [a-z0-9 ].
func NormalizeLabel(s string) string {
	s = strings.ToLower(s)

	var b strings.Builder
	b.Grow(len(s))
	space := false
	for _, r := range s {
		switch {
		case r == ' ' || r == '\t' || r == '\n' || r == '\r':
			space = true
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			if space && b.Len() > 0 {
				b.WriteByte(' ')
			}
			space = false
			b.WriteRune(r)
		}
	}
	return b.String()
}

// CellString renders a raw cell value as its trimmed string form.
// Numbers drop insignificant trailing zeros the way spreadsheet decoders
// present them.
func CellString(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(x)
	case bool:
		return strconv.FormatBool(x)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	default:
		return ""
	}
}

// Resolve returns the first non-empty cell value for the given candidate
// labels, tried in order. For each candidate it prefers an exact match on
// the normalized label, then any row label containing the candidate as a
// substring. Empty or whitespace-only cells never win over a later
// candidate; if nothing resolves, the empty string is returned.
func Resolve(row map[string]any, candidates ...string) string {
	if len(row) == 0 {
		return ""
	}

	// Sort for deterministic substring scans; map order is randomized.
	normalized := make(map[string]string, len(row))
	var normKeys []string
	for k := range row {
		nk := NormalizeLabel(k)
		if _, dup := normalized[nk]; !dup {
			normalized[nk] = k
			normKeys = append(normKeys, nk)
		}
	}
	sort.Strings(normKeys)

	for _, cand := range candidates {
		target := NormalizeLabel(cand)
		if target == "" {
			continue
		}

		if orig, ok := normalized[target]; ok {
			if v := CellString(row[orig]); v != "" {
				return v
			}
		}

		for _, nk := range normKeys {
			if strings.Contains(nk, target) {
				if v := CellString(row[normalized[nk]]); v != "" {
					return v
				}
				break
			}
		}
	}

	return ""
}

// ResolveOr is Resolve with a fallback when nothing matches.
func ResolveOr(row map[string]any, fallback string, candidates ...string) string {
	if v := Resolve(row, candidates...); v != "" {
		return v
	}
	return fallback
}

// CollectTotals gathers every cell labeled "total", in column order.
// Marketplace exports repeat the label (order total vs. settlement total),
// which workbook decoders disambiguate with a numeric suffix; both the
// bare label and suffixed forms count. Callers pick the occurrence they
// want.
func CollectTotals(row map[string]any, parse func(string) (float64, bool)) []float64 {
	keys := make([]string, 0, len(row))
	for k := range row {
		if isTotalLabel(NormalizeLabel(k)) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	var totals []float64
	for _, k := range keys {
		if n, ok := parse(CellString(row[k])); ok {
			totals = append(totals, n)
		}
	}
	return totals
}

// isTotalLabel reports whether a normalized label is "total" or "total"
// plus a disambiguation suffix ("total 2", "total2"). Longer labels like
// "total buyer payment" do not count.
func isTotalLabel(nk string) bool {
	rest, ok := strings.CutPrefix(nk, "total")
	if !ok {
		return false
	}
	rest = strings.TrimSpace(rest)
	if rest == "" {
		return true
	}
	for _, r := range rest {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
