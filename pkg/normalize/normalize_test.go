package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNumber(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		in       string
		fallback float64
		want     float64
	}{
		{"plain", "1234", 0, 1234},
		{"decimal", "12.5", 0, 12.5},
		{"thousands separator", "1,234.50", 0, 1234.50},
		{"parenthesized negative", "(1,234.50)", 0, -1234.50},
		{"currency symbol", "₱500", 0, 500},
		{"currency with decimals", "$1,000.25", 0, 1000.25},
		{"unicode minus sign", "−42", 0, -42},
		{"en dash minus", "–7", 0, -7},
		{"em dash minus", "—7", 0, -7},
		{"explicit negative", "-15", 0, -15},
		{"already negative in parens", "(-3)", 0, -3},
		{"garbage", "abc", 0, 0},
		{"garbage custom fallback", "abc", 99, 99},
		{"empty", "", 7, 7},
		{"whitespace padded", "  250  ", 0, 250},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.InDelta(t, tt.want, Number(tt.in, tt.fallback), 1e-9)
		})
	}
}

func TestParseNumber(t *testing.T) {
	t.Parallel()

	n, ok := ParseNumber("42")
	assert.True(t, ok)
	assert.InDelta(t, 42.0, n, 1e-9)

	n, ok = ParseNumber("-1")
	assert.True(t, ok)
	assert.InDelta(t, -1.0, n, 1e-9)

	n, ok = ParseNumber("(₱1,250.00)")
	assert.True(t, ok)
	assert.InDelta(t, -1250.0, n, 1e-9)

	_, ok = ParseNumber("n/a")
	assert.False(t, ok)
}

func TestQuantity(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 2, Quantity("2", 0))
	assert.Equal(t, 2, Quantity("2.0", 0))
	assert.Equal(t, 0, Quantity("", 0))
	assert.Equal(t, 1, Quantity("junk", 1))
}

func TestDate_SpreadsheetSerial(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "2024-01-01", Date("45292"))
	assert.Equal(t, "1899-12-30", Date("0"))
	// Serial 60 is the phantom 1900-02-29 slot; the 1899-12-30 epoch
	// absorbs it so 61 lands on 1900-03-01.
	assert.Equal(t, "1900-03-01", Date("61"))
}

func TestDate_TextFormats(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"iso dashes", "2024-03-15", "2024-03-15"},
		{"iso slashes", "2024/3/5", "2024-03-05"},
		{"dmy", "15-03-2024", "2024-03-15"},
		{"dmy slashes", "15/3/2024", "2024-03-15"},
		{"mdy disambiguated", "3/15/2024", "2024-03-15"},
		{"day month-name year", "15 Mar 2024", "2024-03-15"},
		{"day full month-name year", "15 March 2024", "2024-03-15"},
		{"month-name day year", "Mar 15, 2024", "2024-03-15"},
		{"month-name day year no comma", "March 15 2024", "2024-03-15"},
		{"mixed case month", "15 MAR 2024", "2024-03-15"},
		{"iso with time suffix", "2024-03-15 10:30:00", "2024-03-15"},
		{"unknown falls back to first token", "sometime soon", "sometime"},
		{"empty", "", ""},
		{"whitespace only", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Date(tt.in))
		})
	}
}

func TestDateDisplay(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "15/03/2024", DateDisplay("2024-03-15"))
	assert.Equal(t, "15/03/2024", DateDisplay("15 Mar 2024"))
	assert.Equal(t, "—", DateDisplay(""))
}
