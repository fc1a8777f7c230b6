package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	domain "github.com/kjdelacruz/stocksync/pkg/types"
)

const defaultPoolSize = 10

// PostgresStore implements Store using pgxpool (connection-pooled PostgreSQL).
//
// TODO(test): PostgresStore methods require live Postgres, tested via integration tests.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a new PostgresStore with connection pooling.
func NewPostgresStore(ctx context.Context, connString string) (*PostgresStore, error) {
	cfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("parsing connection string: %w", err)
	}

	cfg.MaxConns = defaultPoolSize

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

// Close gracefully shuts down the connection pool.
func (s *PostgresStore) Close() {
	s.pool.Close()
}

// Ping verifies the database connection is alive.
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Migrate applies pending SQL schema migrations.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	return RunMigrations(ctx, s.pool)
}

// UpsertProduct inserts or updates a catalog entry by name.
func (s *PostgresStore) UpsertProduct(ctx context.Context, p *domain.Product) error {
	args := pgx.NamedArgs{
		"name":      p.Name,
		"category":  p.Category,
		"type":      p.Type,
		"quantity":  p.Quantity,
		"image_url": p.ImageURL,
	}

	return s.pool.QueryRow(ctx, queryUpsertProduct, args).Scan(&p.ID, &p.UpdatedAt)
}

// GetProduct retrieves a catalog entry by its internal UUID.
func (s *PostgresStore) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	p := &domain.Product{}
	err := s.pool.QueryRow(ctx, queryGetProduct, id).Scan(
		&p.ID, &p.Name, &p.Category, &p.Type, &p.Quantity, &p.ImageURL, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// ListProducts queries the catalog with optional filters, returning results
// and total count.
func (s *PostgresStore) ListProducts(
	ctx context.Context,
	opts *ProductQuery,
) ([]domain.Product, int, error) {
	dataSQL, countSQL, args := opts.ToSQL()

	var total int
	if err := s.pool.QueryRow(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting products: %w", err)
	}

	rows, err := s.pool.Query(ctx, dataSQL, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("querying products: %w", err)
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(
			&p.ID, &p.Name, &p.Category, &p.Type, &p.Quantity, &p.ImageURL, &p.UpdatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("scanning product: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterating products: %w", err)
	}

	return products, total, nil
}

// SnapshotProducts returns the whole catalog ordered by name. The engine
// treats the result as an immutable snapshot for one batch.
func (s *PostgresStore) SnapshotProducts(ctx context.Context) ([]domain.Product, error) {
	rows, err := s.pool.Query(ctx, querySnapshotProducts)
	if err != nil {
		return nil, fmt.Errorf("querying catalog snapshot: %w", err)
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(
			&p.ID, &p.Name, &p.Category, &p.Type, &p.Quantity, &p.ImageURL, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning product: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating catalog snapshot: %w", err)
	}

	return products, nil
}

// UpdateQuantities persists new stock levels for the given products, matched
// by name, in a single transaction.
func (s *PostgresStore) UpdateQuantities(ctx context.Context, products []domain.Product) error {
	if len(products) == 0 {
		return nil
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning quantity update: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // rollback after commit is a no-op

	for _, p := range products {
		if _, err := tx.Exec(ctx, queryUpdateQuantity, p.Name, p.Quantity); err != nil {
			return fmt.Errorf("updating quantity for %q: %w", p.Name, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing quantity update: %w", err)
	}
	return nil
}

// DeleteProduct removes a catalog entry by its internal UUID.
func (s *PostgresStore) DeleteProduct(ctx context.Context, id string) error {
	_, err := s.pool.Exec(ctx, queryDeleteProduct, id)
	if err != nil {
		return fmt.Errorf("deleting product: %w", err)
	}
	return nil
}

// LoadLedgerKeys returns every applied idempotency key for a platform.
func (s *PostgresStore) LoadLedgerKeys(
	ctx context.Context,
	platform domain.Platform,
) ([]string, error) {
	rows, err := s.pool.Query(ctx, queryLoadLedgerKeys, string(platform))
	if err != nil {
		return nil, fmt.Errorf("querying ledger keys: %w", err)
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, fmt.Errorf("scanning ledger key: %w", err)
		}
		keys = append(keys, k)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating ledger keys: %w", err)
	}

	return keys, nil
}

// AppendLedgerKeys persists newly applied keys in a single transaction.
// Already-present keys are ignored.
func (s *PostgresStore) AppendLedgerKeys(
	ctx context.Context,
	platform domain.Platform,
	keys []string,
) error {
	if len(keys) == 0 {
		return nil
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning ledger append: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // rollback after commit is a no-op

	for _, k := range keys {
		args := pgx.NamedArgs{
			"key":       k,
			"platform":  string(platform),
			"direction": keyDirection(k),
		}
		if _, err := tx.Exec(ctx, queryAppendLedgerKey, args); err != nil {
			return fmt.Errorf("appending ledger key: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing ledger append: %w", err)
	}
	return nil
}

// keyDirection extracts the direction segment from a pipe-delimited key.
func keyDirection(key string) string {
	if i := strings.LastIndexByte(key, '|'); i >= 0 {
		return key[i+1:]
	}
	return ""
}

// GetLedgerStats summarizes the durable ledger.
func (s *PostgresStore) GetLedgerStats(ctx context.Context) (*domain.LedgerStats, error) {
	st := &domain.LedgerStats{}
	err := s.pool.QueryRow(ctx, queryLedgerStats).Scan(
		&st.TotalKeys, &st.Decrements, &st.Increments,
	)
	if err != nil {
		return nil, fmt.Errorf("querying ledger stats: %w", err)
	}
	return st, nil
}

// InsertTaxEntries persists aggregated tax entries, skipping order ids
// already recorded. Returns the number of rows actually inserted.
func (s *PostgresStore) InsertTaxEntries(
	ctx context.Context,
	entries []domain.TaxEntry,
) (int, error) {
	if len(entries) == 0 {
		return 0, nil
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("beginning tax insert: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // rollback after commit is a no-op

	inserted := 0
	for _, e := range entries {
		args := pgx.NamedArgs{
			"order_id": e.OrderID,
			"date":     e.Date,
			"amount":   e.Amount,
			"platform": string(e.Platform),
		}
		tag, err := tx.Exec(ctx, queryInsertTaxEntry, args)
		if err != nil {
			return 0, fmt.Errorf("inserting tax entry: %w", err)
		}
		inserted += int(tag.RowsAffected())
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("committing tax insert: %w", err)
	}
	return inserted, nil
}

// ListTaxEntries queries tax entries with optional filters, returning
// results and total count.
func (s *PostgresStore) ListTaxEntries(
	ctx context.Context,
	opts *TaxQuery,
) ([]domain.TaxEntry, int, error) {
	dataSQL, countSQL, args := opts.ToSQL()

	var total int
	if err := s.pool.QueryRow(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting tax entries: %w", err)
	}

	rows, err := s.pool.Query(ctx, dataSQL, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("querying tax entries: %w", err)
	}
	defer rows.Close()

	var entries []domain.TaxEntry
	for rows.Next() {
		var e domain.TaxEntry
		if err := rows.Scan(
			&e.ID, &e.OrderID, &e.Date, &e.Amount, &e.Platform, &e.CreatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("scanning tax entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterating tax entries: %w", err)
	}

	return entries, total, nil
}

// InsertReturnEntries persists return log entries, skipping order ids
// already recorded. Returns the number of rows actually inserted.
func (s *PostgresStore) InsertReturnEntries(
	ctx context.Context,
	entries []domain.ReturnEntry,
) (int, error) {
	if len(entries) == 0 {
		return 0, nil
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("beginning return insert: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // rollback after commit is a no-op

	inserted := 0
	for _, e := range entries {
		args := pgx.NamedArgs{
			"order_id":  e.OrderID,
			"product":   e.Product,
			"variation": e.Variation,
			"quantity":  e.Quantity,
			"date":      e.Date,
			"status":    e.Status,
			"platform":  string(e.Platform),
		}
		tag, err := tx.Exec(ctx, queryInsertReturnEntry, args)
		if err != nil {
			return 0, fmt.Errorf("inserting return entry: %w", err)
		}
		inserted += int(tag.RowsAffected())
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("committing return insert: %w", err)
	}
	return inserted, nil
}

// ListReturnEntries returns the returns log, optionally filtered by
// platform, newest first.
func (s *PostgresStore) ListReturnEntries(
	ctx context.Context,
	platform string,
	limit, offset int,
) ([]domain.ReturnEntry, int, error) {
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	offset = max(offset, 0)

	var total int
	var rows pgx.Rows
	var err error
	if platform == "" {
		if err = s.pool.QueryRow(ctx, queryCountReturnsAll).Scan(&total); err != nil {
			return nil, 0, fmt.Errorf("counting return entries: %w", err)
		}
		rows, err = s.pool.Query(ctx, queryListReturnsAll, limit, offset)
	} else {
		if err = s.pool.QueryRow(ctx, queryCountReturnsByPlatform, platform).Scan(&total); err != nil {
			return nil, 0, fmt.Errorf("counting return entries: %w", err)
		}
		rows, err = s.pool.Query(ctx, queryListReturnsByPlatform, limit, offset, platform)
	}
	if err != nil {
		return nil, 0, fmt.Errorf("querying return entries: %w", err)
	}
	defer rows.Close()

	var entries []domain.ReturnEntry
	for rows.Next() {
		var e domain.ReturnEntry
		if err := rows.Scan(
			&e.ID, &e.OrderID, &e.Product, &e.Variation,
			&e.Quantity, &e.Date, &e.Status, &e.Platform, &e.CreatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("scanning return entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterating return entries: %w", err)
	}

	return entries, total, nil
}

// InsertJobRun records the start of a job execution and returns its id.
func (s *PostgresStore) InsertJobRun(ctx context.Context, jobName string) (string, error) {
	var id string
	if err := s.pool.QueryRow(ctx, queryInsertJobRun, jobName).Scan(&id); err != nil {
		return "", fmt.Errorf("inserting job run: %w", err)
	}
	return id, nil
}

// CompleteJobRun finalizes a job run record.
func (s *PostgresStore) CompleteJobRun(
	ctx context.Context,
	id string,
	status string,
	errText string,
	rowsAffected int,
) error {
	_, err := s.pool.Exec(ctx, queryCompleteJobRun, id, status, errText, rowsAffected)
	if err != nil {
		return fmt.Errorf("completing job run: %w", err)
	}
	return nil
}

// ListJobRuns returns recent job runs, newest first. An empty jobName
// returns runs for all jobs.
func (s *PostgresStore) ListJobRuns(
	ctx context.Context,
	jobName string,
	limit int,
) ([]domain.JobRun, error) {
	if limit <= 0 {
		limit = defaultLimit
	}

	var rows pgx.Rows
	var err error
	if jobName == "" {
		rows, err = s.pool.Query(ctx, queryListJobRunsAll, limit)
	} else {
		rows, err = s.pool.Query(ctx, queryListJobRuns, jobName, limit)
	}
	if err != nil {
		return nil, fmt.Errorf("querying job runs: %w", err)
	}
	defer rows.Close()

	var runs []domain.JobRun
	for rows.Next() {
		var r domain.JobRun
		if err := rows.Scan(
			&r.ID, &r.JobName, &r.StartedAt, &r.CompletedAt,
			&r.Status, &r.ErrorText, &r.RowsAffected,
		); err != nil {
			return nil, fmt.Errorf("scanning job run: %w", err)
		}
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating job runs: %w", err)
	}

	return runs, nil
}
