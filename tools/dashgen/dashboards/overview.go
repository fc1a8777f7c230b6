// Package dashboards assembles Grafana dashboard definitions from panel builders.
package dashboards

import (
	"github.com/grafana/grafana-foundation-sdk/go/dashboard"

	"github.com/kjdelacruz/stocksync/tools/dashgen/panels"
)

// BuildOverview constructs the Stocksync Overview dashboard with all metric rows.
func BuildOverview() *dashboard.DashboardBuilder {
	b := dashboard.NewDashboardBuilder("Stocksync Overview").
		Uid("stocksync-overview").
		Tags([]string{"stocksync"}).
		Refresh("30s").
		Time("now-6h", "now").
		Timezone("browser").
		Editable().
		Tooltip(dashboard.DashboardCursorSyncCrosshair).
		WithVariable(datasourceVar())

	// Row 1: Overview.
	b.WithRow(dashboard.NewRowBuilder("Overview").
		WithPanel(panels.HealthzStat()).
		WithPanel(panels.ReadyzStat()).
		WithPanel(panels.ImportBatchesStat()).
		WithPanel(panels.UptimeStat()))

	// Row 2: HTTP.
	b.WithRow(dashboard.NewRowBuilder("HTTP").
		WithPanel(panels.RequestRate()).
		WithPanel(panels.LatencyPercentiles()).
		WithPanel(panels.ErrorRate()))

	// Row 3: Imports.
	b.WithRow(dashboard.NewRowBuilder("Imports").
		WithPanel(panels.RowsRate()).
		WithPanel(panels.SkippedRows()).
		WithPanel(panels.ImportErrors()).
		WithPanel(panels.BatchDuration()))

	// Row 4: Matching & Ledger.
	b.WithRow(dashboard.NewRowBuilder("Matching & Ledger").
		WithPanel(panels.MatchResolutions()).
		WithPanel(panels.DedupSkips()).
		WithPanel(panels.DeltasApplied()))

	// Row 5: Notifications.
	b.WithRow(dashboard.NewRowBuilder("Notifications").
		WithPanel(panels.NotificationFailures()))

	return b
}

func datasourceVar() *dashboard.DatasourceVariableBuilder {
	return dashboard.NewDatasourceVariableBuilder("datasource").
		Label("Datasource").
		Type("prometheus")
}
