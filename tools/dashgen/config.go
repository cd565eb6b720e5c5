package main

import "errors"

// KnownMetrics is the set of metric names exported by jet-merchant plus
// recording rule names referenced in dashboards and alerts.
var KnownMetrics = map[string]bool{
	// HTTP metrics.
	"jet_http_request_duration_seconds": true,
	"jet_http_requests_total":           true,
	"jet_http_panics_total":             true,

	// Health metrics.
	"jet_healthz_up": true,
	"jet_readyz_up":  true,

	// Merchant API metrics.
	"jet_api_requests_total":           true,
	"jet_api_request_duration_seconds": true,
	"jet_token_exchanges_total":        true,
	"jet_api_daily_usage":              true,
	"jet_api_daily_limit_hits_total":   true,

	// Sync metrics.
	"jet_sync_runs_total":                     true,
	"jet_sync_duration_seconds":               true,
	"jet_sync_orders_total":                   true,
	"jet_sync_orders_skipped_total":           true,
	"jet_sync_last_success_timestamp_seconds": true,
	"jet_sync_next_run_timestamp_seconds":     true,
	"jet_sync_orders_in_store":                true,

	// Notification metrics.
	"jet_notifications_total":           true,
	"jet_notification_duration_seconds": true,

	// Recording rules.
	"jet:http_requests:rate5m":         true,
	"jet:http_errors:rate5m":           true,
	"jet:api_requests:rate5m":          true,
	"jet:api_errors:rate5m":            true,
	"jet:sync_orders:increase1h":       true,
	"jet:notification_duration:p95_5m": true,

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
