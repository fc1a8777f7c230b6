package main

import "errors"

// KnownMetrics is the set of metric names exported by stocksync plus
// recording rule names referenced in dashboards and alerts.
var KnownMetrics = map[string]bool{
	// HTTP metrics.
	"stocksync_http_request_duration_seconds": true,
	"stocksync_http_requests_total":           true,

	// Health metrics.
	"stocksync_healthz_up": true,
	"stocksync_readyz_up":  true,

	// Import metrics.
	"stocksync_import_batches_total":      true,
	"stocksync_import_rows_total":         true,
	"stocksync_import_rows_skipped_total": true,
	"stocksync_import_errors_total":       true,
	"stocksync_import_duration_seconds":   true,

	// Matcher metrics.
	"stocksync_match_resolutions_total": true,

	// Ledger metrics.
	"stocksync_ledger_dedup_skips_total":  true,
	"stocksync_ledger_keys_written_total": true,
	"stocksync_deltas_applied_total":      true,

	// Notification metrics.
	"stocksync_notification_failures_total": true,

	// Recording rules.
	"stocksync:http_requests:rate5m": true,
	"stocksync:http_errors:rate5m":   true,
	"stocksync:import_rows:rate5m":   true,
	"stocksync:import_errors:rate5m": true,
	"stocksync:dedup_skips:rate5m":   true,

	// Standard Prometheus metrics referenced in dashboards.
	"up":                         true,
	"process_start_time_seconds": true,
}

// Config controls which artifacts the generator produces and where they go.
type Config struct {
	OutputDir        string
	DashboardEnabled bool
	RulesEnabled     bool
}

// DefaultConfig returns a Config that generates all artifacts into ../../deploy
// (relative to tools/dashgen/).
func DefaultConfig() Config {
	return Config{
		OutputDir:        "../../deploy",
		DashboardEnabled: true,
		RulesEnabled:     true,
	}
}

// Validate checks that the config is usable.
func (c Config) Validate() error {
	if c.OutputDir == "" {
		return errors.New("output directory must be set")
	}
	if !c.DashboardEnabled && !c.RulesEnabled {
		return errors.New("at least one of dashboard or rules must be enabled")
	}
	return nil
}
