package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// MatchResolutions returns a timeseries panel showing product name
// resolutions per minute broken down by matcher tier.
func MatchResolutions() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Match Resolutions / min").
		Description("Rate of product name resolutions per minute, by matcher tier").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(
			`sum(rate(stocksync_match_resolutions_total{job="stocksync"}[5m])) by (tier) * 60`,
			"{{tier}}", "A",
		)).
		FillOpacity(10).
		LineWidth(2).
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// DedupSkips returns a timeseries panel showing ledger dedup skips per
// minute. A sustained spike usually means the same export is being
// re-imported.
func DedupSkips() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Dedup Skips / min").
		Description("Rate of events skipped as already applied").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(`stocksync:dedup_skips:rate5m * 60`, "skips/min", "A")).
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// DeltasApplied returns a timeseries panel showing inventory deltas applied
// per minute alongside new ledger keys written.
func DeltasApplied() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Deltas / min").
		Description("Rate of inventory deltas applied and ledger keys written").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(
			`rate(stocksync_deltas_applied_total{job="stocksync"}[5m]) * 60`,
			"deltas/min", "A",
		)).
		WithTarget(PromQuery(
			`rate(stocksync_ledger_keys_written_total{job="stocksync"}[5m]) * 60`,
			"keys/min", "B",
		)).
		FillOpacity(10).
		LineWidth(2).
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}
