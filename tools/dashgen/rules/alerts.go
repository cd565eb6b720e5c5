package rules

// AlertRules returns a PrometheusRule CR containing alert rules for
// jet-merchant operational monitoring.
func AlertRules() PrometheusRule {
	return newPrometheusRule("jet-merchant-alerts", RuleGroup{
		Name: "jet-merchant-alerts",
		Rules: []Rule{
			{
				Alert: "JetMerchantDown",
				Expr:  `absent(up{job="jet-merchant"})`,
				For:   "2m",
				Labels: map[string]string{
					"severity": "critical",
				},
				Annotations: map[string]string{
					"summary":     "jet-merchant is down",
					"description": "The jet-merchant job has been absent for more than 2 minutes.",
				},
			},
			{
				Alert: "JetMerchantReadinessDown",
				Expr:  `jet_readyz_up == 0`,
				For:   "2m",
				Labels: map[string]string{
					"severity": "critical",
				},
				Annotations: map[string]string{
					"summary":     "jet-merchant readiness check is failing",
					"description": "The readiness probe has been reporting not-ready for more than 2 minutes.",
				},
			},
			{
				Alert: "JetMerchantHighErrorRate",
				Expr:  `jet:http_errors:rate5m / jet:http_requests:rate5m > 0.05`,
				For:   "5m",
				Labels: map[string]string{
					"severity": "warning",
				},
				Annotations: map[string]string{
					"summary":     "High HTTP error rate on jet-merchant",
					"description": "More than 5% of HTTP requests are returning 5xx errors over the last 5 minutes.",
				},
			},
			{
				Alert: "JetTokenExchangeFailing",
				Expr:  `increase(jet_token_exchanges_total{result="error"}[15m]) > 0`,
				For:   "5m",
				Labels: map[string]string{
					"severity": "critical",
				},
				Annotations: map[string]string{
					"summary":     "Merchant API token exchange is failing",
					"description": "The server could not obtain a bearer token from the merchant API. Check the API user and secret.",
				},
			},
			{
				Alert: "JetSyncStale",
				Expr:  `time() - jet_sync_last_success_timestamp_seconds > 3600`,
				For:   "10m",
				Labels: map[string]string{
					"severity": "warning",
				},
				Annotations: map[string]string{
					"summary":     "Order sync has not succeeded in over an hour",
					"description": "No successful order sync has completed in the last hour. New orders may be going unacknowledged.",
				},
			},
			{
				Alert: "JetDailyLimitReached",
				Expr:  `increase(jet_api_daily_limit_hits_total[5m]) > 0`,
				For:   "0m",
				Labels: map[string]string{
					"severity": "critical",
				},
				Annotations: map[string]string{
					"summary":     "Merchant API daily budget has been spent",
					"description": "Calls are being rejected locally until the 24h throttle window resets.",
				},
			},
			{
				Alert: "JetNotificationFailures",
				Expr:  `increase(jet_notifications_total{result="error"}[5m]) > 0`,
				For:   "1m",
				Labels: map[string]string{
					"severity": "warning",
				},
				Annotations: map[string]string{
					"summary":     "Notification delivery failures detected",
					"description": "One or more order notifications (Discord webhooks) have failed to send.",
				},
			},
		},
	})
}
