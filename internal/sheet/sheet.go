// Package sheet reads order-export workbooks into raw rows. It is the only
// package that touches xlsx files; everything downstream works on
// domain.Row values and never sees the workbook format.
package sheet

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	domain "github.com/kjdelacruz/stocksync/pkg/types"
)

// ReadFile opens an xlsx workbook and returns the rows of its first sheet.
func ReadFile(path string) ([]domain.Row, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close() //nolint:errcheck // read-only close

	return readRows(f)
}

// Read parses an xlsx workbook from a stream and returns the rows of its
// first sheet.
func Read(r io.Reader) ([]domain.Row, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close() //nolint:errcheck // read-only close

	return readRows(f)
}

func readRows(f *excelize.File) ([]domain.Row, error) {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", sheets[0], err)
	}

	// First non-empty row is the header.
	headerIdx := -1
	for i, row := range rows {
		if !rowEmpty(row) {
			headerIdx = i
			break
		}
	}
	if headerIdx < 0 {
		return nil, nil
	}

	// Duplicate headers keep the first column; later ones get a numeric
	// suffix so no cell is silently lost.
	headers := make([]string, len(rows[headerIdx]))
	seen := make(map[string]int)
	for i, h := range rows[headerIdx] {
		h = strings.TrimSpace(h)
		if h == "" {
			h = fmt.Sprintf("column_%d", i+1)
		}
		if n, dup := seen[h]; dup {
			seen[h] = n + 1
			h = fmt.Sprintf("%s_%d", h, n+1)
		} else {
			seen[h] = 1
		}
		headers[i] = h
	}

	var out []domain.Row
	for _, row := range rows[headerIdx+1:] {
		if rowEmpty(row) {
			continue
		}
		r := make(domain.Row, len(headers))
		for i, h := range headers {
			if i < len(row) {
				r[h] = row[i]
			} else {
				r[h] = ""
			}
		}
		out = append(out, r)
	}

	return out, nil
}

func rowEmpty(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// DetectPlatform infers the marketplace from a workbook filename. The
// second return is false when the name carries no recognizable hint.
func DetectPlatform(filename string) (domain.Platform, bool) {
	name := strings.ToLower(filename)
	switch {
	case strings.Contains(name, "shopee"):
		return domain.PlatformShopee, true
	case strings.Contains(name, "tiktok"):
		return domain.PlatformTiktok, true
	}
	return "", false
}
