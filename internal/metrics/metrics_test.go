package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMetricsRegistered(t *testing.T) {
	t.Parallel()

	// Verify all metrics are non-nil (registered via promauto on package init).
	assert.NotNil(t, HTTPRequestDuration)
	assert.NotNil(t, HTTPRequestsTotal)
	assert.NotNil(t, ImportBatchesTotal)
	assert.NotNil(t, ImportRowsTotal)
	assert.NotNil(t, ImportRowsSkippedTotal)
	assert.NotNil(t, ImportErrorsTotal)
	assert.NotNil(t, ImportDuration)
	assert.NotNil(t, MatchResolutionsTotal)
	assert.NotNil(t, LedgerDedupSkipsTotal)
	assert.NotNil(t, LedgerKeysWrittenTotal)
	assert.NotNil(t, DeltasAppliedTotal)
	assert.NotNil(t, HealthzUp)
	assert.NotNil(t, ReadyzUp)
	assert.NotNil(t, NotificationFailuresTotal)
}
