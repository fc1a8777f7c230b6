// Package store defines the datastore abstraction for stocksync.
// All business logic depends on the Store interface, never on concrete
// implementations. This enables mock-based testing without a running database.
package store

import (
	"context"

	domain "github.com/kjdelacruz/stocksync/pkg/types"
)

// ProductQuery defines optional filters for catalog queries.
type ProductQuery struct {
	Category     *string
	Type         *string
	NameContains *string
	Limit        int // default 50
	Offset       int
	OrderBy      string // "name", "quantity", "updated_at"
}

// TaxQuery defines optional filters for tax entry queries.
type TaxQuery struct {
	Platform *string
	DateFrom *string // inclusive ISO-8601 date
	DateTo   *string // inclusive ISO-8601 date
	Limit    int     // default 50
	Offset   int
	OrderBy  string // "date", "amount", "created_at"
}

// Store defines all data access operations for stocksync.
type Store interface {
	// Catalog
	UpsertProduct(ctx context.Context, p *domain.Product) error
	GetProduct(ctx context.Context, id string) (*domain.Product, error)
	ListProducts(ctx context.Context, opts *ProductQuery) ([]domain.Product, int, error)
	SnapshotProducts(ctx context.Context) ([]domain.Product, error)
	UpdateQuantities(ctx context.Context, products []domain.Product) error
	DeleteProduct(ctx context.Context, id string) error

	// Ledger
	LoadLedgerKeys(ctx context.Context, platform domain.Platform) ([]string, error)
	AppendLedgerKeys(ctx context.Context, platform domain.Platform, keys []string) error
	GetLedgerStats(ctx context.Context) (*domain.LedgerStats, error)

	// Taxes
	InsertTaxEntries(ctx context.Context, entries []domain.TaxEntry) (int, error)
	ListTaxEntries(ctx context.Context, opts *TaxQuery) ([]domain.TaxEntry, int, error)

	// Returns
	InsertReturnEntries(ctx context.Context, entries []domain.ReturnEntry) (int, error)
	ListReturnEntries(ctx context.Context, platform string, limit, offset int) ([]domain.ReturnEntry, int, error)

	// Scheduler
	InsertJobRun(ctx context.Context, jobName string) (id string, err error)
	CompleteJobRun(ctx context.Context, id string, status string, errText string, rowsAffected int) error
	ListJobRuns(ctx context.Context, jobName string, limit int) ([]domain.JobRun, error)

	// Migrations
	Migrate(ctx context.Context) error

	// Health
	Ping(ctx context.Context) error
}
