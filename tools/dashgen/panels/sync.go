package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// LastSync returns a stat panel showing time since the last successful
// order sync.
func LastSync() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Last Sync").
		Description("Time since last successful order sync").
		Datasource(DSRef()).
		Height(StatHeight).
		Span(StatWidth).
		WithTarget(PromQuery(`time() - `+sel("jet_sync_last_success_timestamp_seconds"), "", "A")).
		Unit("s").
		Thresholds(ThresholdsGreenYellowRed(1800, 3600)).
		ColorScheme(ColorSchemeThresholds()).
		ColorMode(common.BigValueColorModeBackground).
		GraphMode(common.BigValueGraphModeNone)
}

// NextSync returns a stat panel showing time until the next scheduled sync.
func NextSync() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Next Sync").
		Description("Time until next scheduled order sync").
		Datasource(DSRef()).
		Height(StatHeight).
		Span(StatWidth).
		WithTarget(PromQuery(sel("jet_sync_next_run_timestamp_seconds")+` - time()`, "", "A")).
		Unit("s").
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemeThresholds()).
		GraphMode(common.BigValueGraphModeNone)
}

// SyncRuns returns a timeseries panel showing sync runs per hour by result.
func SyncRuns() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Sync Runs").
		Description("Order sync runs per hour by result").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(StatWidth).
		WithTarget(PromQuery(
			`sum(increase(`+sel("jet_sync_runs_total")+`[1h])) by (result)`,
			"{{result}}", "A",
		)).
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleBars)
}

// SyncDuration returns a timeseries panel showing the p95 sync run duration.
func SyncDuration() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Sync Duration (p95)").
		Description("95th percentile order sync run duration").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(StatWidth).
		WithTarget(PromQuery(
			`histogram_quantile(0.95, sum(rate(`+sel("jet_sync_duration_seconds_bucket")+`[30m])) by (le))`,
			"p95", "A",
		)).
		Unit("s").
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// OrdersStored returns a timeseries panel showing orders stored by sync per
// status, alongside orders skipped as already known.
func OrdersStored() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Orders Stored").
		Description("Orders stored per hour by status").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(`jet:sync_orders:increase1h`, "{{status}}", "A")).
		WithTarget(PromQuery(
			`increase(`+sel("jet_sync_orders_skipped_total")+`[1h])`,
			"skipped", "B",
		)).
		FillOpacity(10).
		LineWidth(2).
		Legend(TableLegend("sum")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleBars)
}

// OrdersInStore returns a timeseries panel showing stored orders per status.
func OrdersInStore() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Orders in Store").
		Description("Stored orders by status").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(`max(`+sel("jet_sync_orders_in_store")+`) by (status)`, "{{status}}", "A")).
		FillOpacity(30).
		LineWidth(1).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}
