package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetricsRegistered(t *testing.T) {
	t.Parallel()

	// Verify all metrics are non-nil (registered via promauto on package init).
	assert.NotNil(t, APIRequestsTotal)
	assert.NotNil(t, APIRequestDuration)
	assert.NotNil(t, TokenExchangesTotal)
	assert.NotNil(t, DailyUsage)
	assert.NotNil(t, DailyLimitHitsTotal)
	assert.NotNil(t, SyncRunsTotal)
	assert.NotNil(t, SyncDuration)
	assert.NotNil(t, SyncOrdersTotal)
	assert.NotNil(t, SyncOrdersSkippedTotal)
	assert.NotNil(t, SyncLastSuccessTimestamp)
	assert.NotNil(t, SyncNextRunTimestamp)
	assert.NotNil(t, SyncOrdersInStore)
	assert.NotNil(t, NotificationsTotal)
	assert.NotNil(t, NotificationDuration)
	assert.NotNil(t, HTTPRequestDuration)
	assert.NotNil(t, HTTPRequestsTotal)
	assert.NotNil(t, HealthzUp)
	assert.NotNil(t, ReadyzUp)
	assert.NotNil(t, HTTPPanicsTotal)
}

func TestTokenExchangesTotal_Labels(t *testing.T) {
	t.Parallel()

	before := testutil.ToFloat64(TokenExchangesTotal.WithLabelValues("metrics-test"))
	TokenExchangesTotal.WithLabelValues("metrics-test").Inc()
	after := testutil.ToFloat64(TokenExchangesTotal.WithLabelValues("metrics-test"))

	assert.InDelta(t, 1.0, after-before, 0.0001)
}
