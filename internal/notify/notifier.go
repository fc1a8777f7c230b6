// Package notify defines the notification interface and implementations
// for import result delivery.
package notify

import (
	"context"

	domain "github.com/kjdelacruz/stocksync/pkg/types"
)

// Notifier defines the interface for reporting completed imports.
type Notifier interface {
	SendImportSummary(ctx context.Context, summary *domain.ImportSummary) error
	SendImportFailure(ctx context.Context, platform domain.Platform, errText string) error
}
