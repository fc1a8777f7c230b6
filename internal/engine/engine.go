// Package engine orchestrates spreadsheet imports: rows in, idempotent
// inventory movement plus tax and return logs out.
package engine

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/kjdelacruz/stocksync/internal/metrics"
	"github.com/kjdelacruz/stocksync/internal/notify"
	"github.com/kjdelacruz/stocksync/internal/sheet"
	"github.com/kjdelacruz/stocksync/internal/store"
	"github.com/kjdelacruz/stocksync/pkg/match"
	"github.com/kjdelacruz/stocksync/pkg/recon"
	domain "github.com/kjdelacruz/stocksync/pkg/types"
)

const defaultMaxRows = 50000

// Engine runs import batches against the store. Batches are serialized by
// an internal mutex: the ledger check-and-insert is only safe when one
// batch at a time reads and extends the durable key set.
type Engine struct {
	store    store.Store
	notifier notify.Notifier
	log      *slog.Logger

	maxRows  int
	importMu sync.Mutex
}

// NewEngine creates a new Engine with injected dependencies.
func NewEngine(s store.Store, n notify.Notifier, opts ...EngineOption) *Engine {
	eng := &Engine{
		store:    s,
		notifier: n,
		log:      slog.Default(),
		maxRows:  defaultMaxRows,
	}
	for _, opt := range opts {
		opt(eng)
	}
	return eng
}

// EngineOption configures the Engine.
type EngineOption func(*Engine)

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) EngineOption {
	return func(e *Engine) {
		e.log = l
	}
}

// WithMaxRows caps the number of rows accepted in one batch.
func WithMaxRows(n int) EngineOption {
	return func(e *Engine) {
		e.maxRows = n
	}
}

// ImportBatch runs one order-export batch through the full pipeline:
// resolve each row against the catalog, fold countable events through the
// idempotency ledger, apply the surviving deltas to stock, and record the
// batch's tax entries and returns log. Per-row anomalies are counted and
// skipped, never fatal; storage failures abort the batch.
func (eng *Engine) ImportBatch(
	ctx context.Context,
	platform domain.Platform,
	rows []domain.Row,
) (*domain.ImportSummary, error) {
	if !platform.Valid() {
		return nil, fmt.Errorf("unknown platform %q", platform)
	}
	if len(rows) > eng.maxRows {
		return nil, fmt.Errorf("batch of %d rows exceeds limit of %d", len(rows), eng.maxRows)
	}

	eng.importMu.Lock()
	defer eng.importMu.Unlock()

	start := time.Now()
	defer func() {
		metrics.ImportDuration.Observe(time.Since(start).Seconds())
	}()

	batchID := uuid.NewString()
	log := eng.log.With("batch_id", batchID, "platform", platform)
	log.Info("import starting", "rows", len(rows))

	jobID, err := eng.store.InsertJobRun(ctx, "import")
	if err != nil {
		return nil, fmt.Errorf("recording job run: %w", err)
	}

	summary, err := eng.runBatch(ctx, log, platform, rows)
	if err != nil {
		metrics.ImportErrorsTotal.Inc()
		if cErr := eng.store.CompleteJobRun(ctx, jobID, "failed", err.Error(), 0); cErr != nil {
			log.Error("completing job run failed", "error", cErr)
		}
		if nErr := eng.notifier.SendImportFailure(ctx, platform, err.Error()); nErr != nil {
			metrics.NotificationFailuresTotal.Inc()
			log.Error("failure notification failed", "error", nErr)
		}
		return nil, err
	}

	if cErr := eng.store.CompleteJobRun(ctx, jobID, "completed", "", len(rows)); cErr != nil {
		log.Error("completing job run failed", "error", cErr)
	}
	if nErr := eng.notifier.SendImportSummary(ctx, summary); nErr != nil {
		metrics.NotificationFailuresTotal.Inc()
		log.Error("summary notification failed", "error", nErr)
	}

	log.Info("import complete",
		"rows", summary.RowsTotal,
		"skipped", summary.RowsSkipped,
		"dedup_skips", summary.DedupSkips,
		"unmatched", summary.Unmatched,
		"products_moved", summary.ProductsMoved,
	)

	return summary, nil
}

func (eng *Engine) runBatch(
	ctx context.Context,
	log *slog.Logger,
	platform domain.Platform,
	rows []domain.Row,
) (*domain.ImportSummary, error) {
	metrics.ImportBatchesTotal.WithLabelValues(string(platform)).Inc()
	metrics.ImportRowsTotal.WithLabelValues(string(platform)).Add(float64(len(rows)))

	snapshot, err := eng.store.SnapshotProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading catalog snapshot: %w", err)
	}
	resolver := match.NewResolver(snapshot)

	existingKeys, err := eng.store.LoadLedgerKeys(ctx, platform)
	if err != nil {
		return nil, fmt.Errorf("loading ledger keys: %w", err)
	}
	ledger := recon.NewLedger(existingKeys)

	summary := &domain.ImportSummary{
		Platform:  platform,
		RowsTotal: len(rows),
	}

	var events []domain.OrderEvent
	for _, row := range rows {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		ev, skip := recon.BuildEvent(row, resolver)
		if skip != recon.SkipNone {
			summary.RowsSkipped++
			metrics.ImportRowsSkippedTotal.
				WithLabelValues(string(platform), string(skip)).Inc()
			continue
		}

		metrics.MatchResolutionsTotal.WithLabelValues(string(ev.Match.Tier)).Inc()
		if !ev.Match.Matched() {
			summary.Unmatched++
		}

		if !ledger.Apply(platform, ev) {
			summary.DedupSkips++
			metrics.LedgerDedupSkipsTotal.Inc()
			continue
		}
		events = append(events, ev)
	}

	deltas := ledger.Deltas()
	next := recon.ApplyDeltas(snapshot, deltas)
	changed := recon.ChangedProducts(snapshot, next)

	if err := eng.store.UpdateQuantities(ctx, changed); err != nil {
		return nil, fmt.Errorf("applying inventory deltas: %w", err)
	}
	metrics.DeltasAppliedTotal.Add(float64(len(deltas)))

	newKeys := ledger.NewKeys()
	if err := eng.store.AppendLedgerKeys(ctx, platform, newKeys); err != nil {
		return nil, fmt.Errorf("persisting ledger keys: %w", err)
	}
	metrics.LedgerKeysWrittenTotal.Add(float64(len(newKeys)))

	taxes := recon.DeriveTaxes(rows, platform)
	taxInserted, err := eng.store.InsertTaxEntries(ctx, taxes)
	if err != nil {
		return nil, fmt.Errorf("persisting tax entries: %w", err)
	}

	returns := recon.DeriveReturns(events, platform)
	retInserted, err := eng.store.InsertReturnEntries(ctx, returns)
	if err != nil {
		return nil, fmt.Errorf("persisting return entries: %w", err)
	}

	summary.Deltas = deltas
	summary.TaxEntries = taxInserted
	summary.ReturnEntries = retInserted
	summary.ProductsMoved = len(changed)

	if summary.Unmatched > 0 {
		log.Warn("batch had unmatched products", "count", summary.Unmatched)
	}

	return summary, nil
}

// ImportFile reads an xlsx workbook and imports its rows.
func (eng *Engine) ImportFile(
	ctx context.Context,
	path string,
	platform domain.Platform,
) (*domain.ImportSummary, error) {
	rows, err := sheet.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading workbook: %w", err)
	}
	return eng.ImportBatch(ctx, platform, rows)
}

// PreviewOrders assembles per-order views from raw rows against the
// current catalog without touching the ledger or stock. Used for
// inspecting an export before committing it.
func (eng *Engine) PreviewOrders(
	ctx context.Context,
	rows []domain.Row,
) ([]domain.Order, error) {
	snapshot, err := eng.store.SnapshotProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading catalog snapshot: %w", err)
	}
	return recon.AssembleOrders(rows, match.NewResolver(snapshot)), nil
}
