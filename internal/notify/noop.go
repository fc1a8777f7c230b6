package notify

import (
	"context"
	"log/slog"

	domain "github.com/kjdelacruz/stocksync/pkg/types"
)

// NoOpNotifier implements Notifier by logging discarded notifications. It
// is used when no webhook endpoint is configured.
type NoOpNotifier struct {
	log *slog.Logger
}

// NewNoOpNotifier creates a notifier that discards notifications with a log message.
func NewNoOpNotifier(log *slog.Logger) *NoOpNotifier {
	return &NoOpNotifier{log: log}
}

// SendImportSummary logs and discards an import summary.
func (n *NoOpNotifier) SendImportSummary(_ context.Context, summary *domain.ImportSummary) error {
	n.log.Debug("notification discarded (no backend configured)",
		"platform", summary.Platform,
		"rows", summary.RowsTotal,
		"products_moved", summary.ProductsMoved,
	)
	return nil
}

// SendImportFailure logs and discards a failure notice.
func (n *NoOpNotifier) SendImportFailure(_ context.Context, platform domain.Platform, errText string) error {
	n.log.Debug("failure notification discarded (no backend configured)",
		"platform", platform,
		"error", errText,
	)
	return nil
}
