package rules

// RecordingRules returns a PrometheusRule CR containing pre-computed rate
// expressions used by dashboards and alert rules.
func RecordingRules() PrometheusRule {
	return newPrometheusRule("jet-merchant-recording-rules", RuleGroup{
		Name: "jet-merchant-recording",
		Rules: []Rule{
			{
				Record: "jet:http_requests:rate5m",
				Expr:   `sum(rate(jet_http_requests_total[5m]))`,
			},
			{
				Record: "jet:http_errors:rate5m",
				Expr:   `sum(rate(jet_http_requests_total{status=~"5.."}[5m]))`,
			},
			{
				Record: "jet:api_requests:rate5m",
				Expr:   `sum(rate(jet_api_requests_total[5m])) by (method)`,
			},
			{
				Record: "jet:api_errors:rate5m",
				Expr:   `sum(rate(jet_api_requests_total{status!~"2.."}[5m])) by (status)`,
			},
			{
				Record: "jet:sync_orders:increase1h",
				Expr:   `sum(increase(jet_sync_orders_total[1h])) by (status)`,
			},
			{
				Record: "jet:notification_duration:p95_5m",
				Expr:   `histogram_quantile(0.95, sum(rate(jet_notification_duration_seconds_bucket[5m])) by (le))`,
			},
		},
	})
}
