package telemetry

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/jet-merchant/internal/config"
)

func TestSetup_Disabled(t *testing.T) {
	t.Parallel()

	shutdown, err := Setup(context.Background(), &config.TelemetryConfig{Enabled: false}, "test")
	require.NoError(t, err)
	require.NotNil(t, shutdown)
	require.NoError(t, shutdown(context.Background()))
}

func TestSetup_EnabledShutsDown(t *testing.T) {
	// Installs global providers, so not parallel.
	cfg := &config.TelemetryConfig{
		Enabled:      true,
		Endpoint:     "127.0.0.1:1", // nothing listening; exporters connect lazily
		Insecure:     true,
		ServiceName:  "jet-merchant-test",
		SampleRatio:  1,
		ExportPeriod: time.Hour,
	}

	shutdown, err := Setup(context.Background(), cfg, "test")
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	// The final flush may fail against a dead endpoint; it must not hang.
	_ = shutdown(ctx)
}

func TestSampler(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		ratio float64
		want  string
	}{
		{name: "always", ratio: 1, want: "AlwaysOnSampler"},
		{name: "above one clamps", ratio: 2, want: "AlwaysOnSampler"},
		{name: "never", ratio: 0, want: "AlwaysOffSampler"},
		{name: "ratio", ratio: 0.25, want: "TraceIDRatioBased{0.25}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Contains(t, Sampler(tt.ratio).Description(), "root:"+tt.want)
		})
	}
}
