package normalize

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Spreadsheet day serials count from 1899-12-30, the classic base that
// absorbs the historical 1900 leap-year bug.
var serialEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

var (
	isoPattern   = regexp.MustCompile(`(\d{4})[-/](\d{1,2})[-/](\d{1,2})`)
	dmyPattern   = regexp.MustCompile(`(\d{1,2})[-/](\d{1,2})[-/](\d{4})`)
	dMonYPattern = regexp.MustCompile(`(\d{1,2})\s+([A-Za-z]{3,})\s+(\d{4})`)
	monDYPattern = regexp.MustCompile(`([A-Za-z]{3,})\s+(\d{1,2}),?\s+(\d{4})`)
)

var monthsByPrefix = map[string]int{
	"jan": 1, "feb": 2, "mar": 3, "apr": 4, "may": 5, "jun": 6,
	"jul": 7, "aug": 8, "sep": 9, "oct": 10, "nov": 11, "dec": 12,
}

// SerialToISO converts a spreadsheet day serial (rounded to the nearest
// whole day) to a zero-padded YYYY-MM-DD string.
func SerialToISO(serial float64) string {
	days := int(serial + 0.5)
	if serial < 0 {
		days = int(serial - 0.5)
	}
	return serialEpoch.AddDate(0, 0, days).Format("2006-01-02")
}

// Date normalizes a raw cell into a zero-padded YYYY-MM-DD string.
//
// Numeric input is interpreted as a spreadsheet day serial. String input is
// tried against, in order: YYYY-MM-DD (or slashes), DD-MM-YYYY (or
// slashes), "DD Mon YYYY", "Mon DD, YYYY" — month names matched
// case-insensitively on their first three letters. The first matching
// pattern wins. If nothing matches, the first whitespace-delimited token is
// returned unparsed; empty input returns empty.
func Date(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}

	if n, err := strconv.ParseFloat(s, 64); err == nil {
		return SerialToISO(n)
	}

	if m := isoPattern.FindStringSubmatch(s); m != nil {
		return isoDate(atoi(m[1]), atoi(m[2]), atoi(m[3]))
	}

	if m := dmyPattern.FindStringSubmatch(s); m != nil {
		d, mo, y := atoi(m[1]), atoi(m[2]), atoi(m[3])
		// Exports disagree on day/month order; an impossible month with a
		// plausible day means the file was month-first.
		if mo > 12 && d <= 12 {
			d, mo = mo, d
		}
		return isoDate(y, mo, d)
	}

	if m := dMonYPattern.FindStringSubmatch(s); m != nil {
		if mo, ok := monthsByPrefix[strings.ToLower(m[2][:3])]; ok {
			return isoDate(atoi(m[3]), mo, atoi(m[1]))
		}
	}

	if m := monDYPattern.FindStringSubmatch(s); m != nil {
		if mo, ok := monthsByPrefix[strings.ToLower(m[1][:3])]; ok {
			return isoDate(atoi(m[3]), mo, atoi(m[2]))
		}
	}

	tok, _, _ := strings.Cut(s, " ")
	return tok
}

// DateDisplay renders a normalized date as DD/MM/YYYY for display, or an
// em-dash placeholder when empty. Unparseable leftovers pass through as-is.
func DateDisplay(raw string) string {
	iso := Date(raw)
	if iso == "" {
		return "—"
	}
	parts := strings.FieldsFunc(iso, func(r rune) bool { return r == '-' || r == '/' })
	if len(parts) == 3 {
		return fmt.Sprintf("%s/%s/%s", parts[2], parts[1], parts[0])
	}
	return iso
}

func isoDate(y, m, d int) string {
	return fmt.Sprintf("%04d-%02d-%02d", y, m, d)
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
