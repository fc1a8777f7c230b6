// Package domain defines the core business types for stocksync.
package domain

import (
	"fmt"
	"time"
)

// Platform identifies which marketplace an order export came from.
// It is supplied by the caller of an import, never inferred from row content.
type Platform string

// Platform constants.
const (
	PlatformShopee Platform = "shopee"
	PlatformTiktok Platform = "tiktok"
)

// Valid reports whether p is one of the known platforms.
func (p Platform) Valid() bool {
	return p == PlatformShopee || p == PlatformTiktok
}

// Direction classifies the inventory effect of an order row.
type Direction string

// Direction constants. A sale decrements stock, a return increments it.
const (
	DirectionDecrement Direction = "dec"
	DirectionIncrement Direction = "inc"
)

// Row is one order-export spreadsheet record: a mapping from the column
// label as found in the source file (arbitrary casing, spacing and
// punctuation) to the raw cell value. Cells may be strings, numbers or
// booleans depending on how the workbook was decoded.
type Row map[string]any

// Product is one catalog entry from the inventory store. The engine reads
// products as an immutable snapshot and returns deltas; it never mutates
// quantities in place.
type Product struct {
	ID        string    `json:"id"                  db:"id"`
	Name      string    `json:"name"                db:"name"`
	Category  string    `json:"category,omitempty"  db:"category"`
	Type      string    `json:"type,omitempty"      db:"type"`
	Quantity  int       `json:"quantity"            db:"quantity"`
	ImageURL  string    `json:"image_url,omitempty" db:"image_url"`
	UpdatedAt time.Time `json:"updated_at"          db:"updated_at"`
}

// MatchTier records which pass of the product matcher produced a result.
type MatchTier string

// Match tier constants, in resolution priority order.
const (
	MatchExact      MatchTier = "exact"
	MatchSimilarity MatchTier = "similarity"
	MatchFallback   MatchTier = "fallback"
	MatchUnmatched  MatchTier = "unmatched"
)

// MatchResult is the outcome of resolving a raw (base, variation) name pair
// against the catalog. When Tier is MatchUnmatched, ProductName carries the
// raw name as a synthetic identity and Confidence is zero; the row is still
// countable but never linked to real stock.
type MatchResult struct {
	ProductName string    `json:"product_name"`
	ImageURL    string    `json:"image_url,omitempty"`
	Confidence  float64   `json:"confidence"`
	Tier        MatchTier `json:"tier"`
}

// Matched reports whether the result is linked to a catalog entry.
func (m MatchResult) Matched() bool {
	return m.Tier != MatchUnmatched
}

// LedgerKey is the idempotency token gating one inventory effect per
// (platform, order, product, variation, direction) tuple. Keys are durable
// and append-only: once recorded, the tuple is never reprocessed.
type LedgerKey struct {
	Platform  Platform
	OrderID   string
	Product   string
	Variation string
	Direction Direction
}

// String encodes the key in its stored pipe-delimited form.
func (k LedgerKey) String() string {
	return fmt.Sprintf("%s|%s|%s|%s|%s",
		k.Platform, k.OrderID, k.Product, k.Variation, k.Direction)
}

// OrderEvent is the per-row distilled record produced by the import
// pipeline. Quantity is always >= 0; sign is carried by Direction.
type OrderEvent struct {
	OrderID   string      `json:"order_id"`
	Product   string      `json:"product"`
	Variation string      `json:"variation,omitempty"`
	Quantity  int         `json:"quantity"`
	Date      string      `json:"date,omitempty"` // ISO-8601 calendar date, or empty
	Status    string      `json:"status,omitempty"`
	Direction Direction   `json:"direction"`
	Match     MatchResult `json:"match"`
}

// InventoryDelta is a signed stock movement for one product, aggregated
// across a batch. Negative means sold, positive means returned.
type InventoryDelta struct {
	ProductName    string `json:"product_name"`
	SignedQuantity int    `json:"signed_quantity"`
}

// TaxEntry is the per-order aggregated tax amount derived from an import.
// Entries are merged by order id across imports.
type TaxEntry struct {
	ID        string    `json:"id"             db:"id"`
	OrderID   string    `json:"order_id"       db:"order_id"`
	Date      string    `json:"date,omitempty" db:"date"`
	Amount    float64   `json:"amount"         db:"amount"`
	Platform  Platform  `json:"platform"       db:"platform"`
	CreatedAt time.Time `json:"created_at"     db:"created_at"`
}

// ReturnEntry logs one returned order line. Entries are deduplicated by
// order id; the first recorded return for an order wins.
type ReturnEntry struct {
	ID        string    `json:"id"                  db:"id"`
	OrderID   string    `json:"order_id"            db:"order_id"`
	Product   string    `json:"product"             db:"product"`
	Variation string    `json:"variation,omitempty" db:"variation"`
	Quantity  int       `json:"quantity"            db:"quantity"`
	Date      string    `json:"date,omitempty"      db:"date"`
	Status    string    `json:"status,omitempty"    db:"status"`
	Platform  Platform  `json:"platform"            db:"platform"`
	CreatedAt time.Time `json:"created_at"          db:"created_at"`
}

// OrderLine is one row of an assembled order view.
type OrderLine struct {
	Product    string  `json:"product"`
	Variation  string  `json:"variation,omitempty"`
	Quantity   int     `json:"quantity"`
	ItemPrice  float64 `json:"item_price"`
	RowTotal   float64 `json:"row_total"`
	BuyerTotal float64 `json:"buyer_total"`
	ImageURL   string  `json:"image_url,omitempty"`
}

// Order is an assembled view of all rows sharing one order id within a
// batch, for downstream display and financial views.
type Order struct {
	OrderID string      `json:"order_id"`
	Date    string      `json:"date,omitempty"`
	Status  string      `json:"status,omitempty"`
	Buyer   string      `json:"buyer,omitempty"`
	Total   float64     `json:"total"`
	Lines   []OrderLine `json:"lines"`
}

// ImportSummary reports what one batch import did.
type ImportSummary struct {
	Platform      Platform         `json:"platform"`
	RowsTotal     int              `json:"rows_total"`
	RowsSkipped   int              `json:"rows_skipped"`
	DedupSkips    int              `json:"dedup_skips"`
	Unmatched     int              `json:"unmatched"`
	Deltas        []InventoryDelta `json:"deltas"`
	TaxEntries    int              `json:"tax_entries"`
	ReturnEntries int              `json:"return_entries"`
	ProductsMoved int              `json:"products_moved"`
}

// JobRun records a single execution of a scheduled or triggered job.
type JobRun struct {
	ID           string     `json:"id"                      db:"id"`
	JobName      string     `json:"job_name"                db:"job_name"`
	StartedAt    time.Time  `json:"started_at"              db:"started_at"`
	CompletedAt  *time.Time `json:"completed_at,omitempty"  db:"completed_at"`
	Status       string     `json:"status"                  db:"status"`
	ErrorText    string     `json:"error_text,omitempty"    db:"error_text"`
	RowsAffected *int       `json:"rows_affected,omitempty" db:"rows_affected"`
}

// LedgerStats summarizes the durable idempotency ledger.
type LedgerStats struct {
	TotalKeys  int `json:"total_keys" db:"total_keys"`
	Decrements int `json:"decrements" db:"decrements"`
	Increments int `json:"increments" db:"increments"`
}
