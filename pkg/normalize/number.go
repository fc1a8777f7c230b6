// Package normalize converts raw spreadsheet cell text into canonical
// numeric and date values. Marketplace exports mix currency symbols,
// thousands separators, parenthesized negatives, several minus-sign glyphs,
// spreadsheet day serials and a handful of textual date formats; this
// package folds all of them into plain numbers and zero-padded ISO dates.
package normalize

import (
	"strconv"
	"strings"
)

// Unicode minus variants seen in real exports: minus sign, en dash, em dash.
var minusGlyphs = strings.NewReplacer("−", "-", "–", "-", "—", "-")

// ParseNumber parses raw as a decimal number. An overall parenthesized
// form is treated as a negative marker; currency symbols, separators and
// any other character outside [0-9.-] are stripped before parsing. The
// second return reports whether anything parsable remained.
func ParseNumber(raw string) (float64, bool) {
	s := strings.TrimSpace(raw)

	parenNeg := len(s) >= 2 && s[0] == '(' && s[len(s)-1] == ')'

	s = minusGlyphs.Replace(s)

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			b.WriteRune(r)
		}
	}

	n, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return 0, false
	}
	if parenNeg && n > 0 {
		n = -n
	}
	return n, true
}

// Number is ParseNumber with a fallback instead of an ok flag.
func Number(raw string, fallback float64) float64 {
	n, ok := ParseNumber(raw)
	if !ok {
		return fallback
	}
	return n
}

// Quantity parses raw as a non-negative integer quantity, truncating any
// fractional part. Unparsable input returns fallback.
func Quantity(raw string, fallback int) int {
	n := Number(raw, float64(fallback))
	return int(n)
}
