// Package dashboards assembles Grafana dashboard definitions from panel builders.
package dashboards

import (
	"github.com/grafana/grafana-foundation-sdk/go/dashboard"

	"github.com/donaldgifford/jet-merchant/tools/dashgen/panels"
)

// BuildOverview constructs the jet-merchant overview dashboard with all
// metric rows.
func BuildOverview() *dashboard.DashboardBuilder {
	b := dashboard.NewDashboardBuilder("Jet Merchant Overview").
		Uid("jet-merchant-overview").
		Tags([]string{"jet", "jet-merchant"}).
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
		WithPanel(panels.ReadyOrdersStat()).
		WithPanel(panels.UptimeStat()))

	// Row 2: HTTP.
	b.WithRow(dashboard.NewRowBuilder("HTTP").
		WithPanel(panels.RequestRate()).
		WithPanel(panels.LatencyPercentiles()).
		WithPanel(panels.ErrorRate()))

	// Row 3: Merchant API.
	b.WithRow(dashboard.NewRowBuilder("Merchant API").
		WithPanel(panels.APICallsRate()).
		WithPanel(panels.APIErrorRate()).
		WithPanel(panels.APILatency()).
		WithPanel(panels.TokenExchanges()).
		WithPanel(panels.DailyUsage()).
		WithPanel(panels.LimitHits()))

	// Row 4: Order sync.
	b.WithRow(dashboard.NewRowBuilder("Order Sync").
		WithPanel(panels.LastSync()).
		WithPanel(panels.NextSync()).
		WithPanel(panels.SyncRuns()).
		WithPanel(panels.SyncDuration()).
		WithPanel(panels.OrdersStored()).
		WithPanel(panels.OrdersInStore()))

	// Row 5: Notifications.
	b.WithRow(dashboard.NewRowBuilder("Notifications").
		WithPanel(panels.NotificationsRate()).
		WithPanel(panels.NotificationLatency()).
		WithPanel(panels.NotificationFailures()))

	return b
}

func datasourceVar() *dashboard.DatasourceVariableBuilder {
	return dashboard.NewDatasourceVariableBuilder("datasource").
		Label("Datasource").
		Type("prometheus")
}
