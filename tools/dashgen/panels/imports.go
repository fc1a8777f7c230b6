package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// RowsRate returns a timeseries panel showing imported rows per minute
// broken down by platform.
func RowsRate() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Rows / min").
		Description("Rate of export rows processed per minute, by platform").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(
			`sum(rate(stocksync_import_rows_total{job="stocksync"}[5m])) by (platform) * 60`,
			"{{platform}}", "A",
		)).
		FillOpacity(10).
		LineWidth(2).
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// SkippedRows returns a timeseries panel showing skipped rows per minute
// broken down by skip reason.
func SkippedRows() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Skipped Rows / min").
		Description("Rate of rows skipped per minute, by reason").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(
			`sum(rate(stocksync_import_rows_skipped_total{job="stocksync"}[5m])) by (reason) * 60`,
			"{{reason}}", "A",
		)).
		FillOpacity(10).
		LineWidth(2).
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// ImportErrors returns a timeseries panel showing failed import batches
// per minute.
func ImportErrors() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Errors / min").
		Description("Rate of failed import batches per minute").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(`stocksync:import_errors:rate5m * 60`, "errors/min", "A")).
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenYellowRed(0.1, 1)).
		ColorScheme(ColorSchemeThresholds()).
		DrawStyle(common.GraphDrawStyleLine)
}

// BatchDuration returns a timeseries panel showing the p95 import batch
// duration.
func BatchDuration() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Batch Duration (p95)").
		Description("95th percentile import batch duration").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(
			`histogram_quantile(0.95, sum(rate(stocksync_import_duration_seconds_bucket{job="stocksync"}[5m])) by (le))`,
			"p95",
			"A",
		)).
		Unit("s").
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}
