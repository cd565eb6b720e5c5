package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/jet-merchant/internal/jet"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name      string
		yaml      string
		envVars   map[string]string
		wantErr   string
		checkFunc func(t *testing.T, cfg *Config)
	}{
		{
			name: "valid minimal config",
			yaml: `
jet:
  api_user: user
  secret: secret
  merchant_id: merchant
`,
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "user", cfg.Jet.APIUser)
				assert.Equal(t, "secret", cfg.Jet.Secret)
				assert.Equal(t, "merchant", cfg.Jet.MerchantID)
				assert.False(t, cfg.Database.Configured())
			},
		},
		{
			name: "defaults applied for optional fields",
			yaml: `
jet:
  api_user: user
  secret: secret
`,
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, jet.DefaultBaseURL, cfg.Jet.BaseURL)
				assert.Equal(t, 30*time.Second, cfg.Jet.RequestTimeout)
				assert.InDelta(t, 5.0, cfg.Jet.RateLimit.PerSecond, 0.0001)
				assert.Equal(t, 10, cfg.Jet.RateLimit.Burst)
				assert.Equal(t, int64(0), cfg.Jet.RateLimit.DailyLimit)
				assert.Equal(t, "0.0.0.0", cfg.Server.Host)
				assert.Equal(t, 8080, cfg.Server.Port)
				assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
				assert.Equal(t, 30*time.Second, cfg.Server.WriteTimeout)
				assert.Equal(t, 5432, cfg.Database.Port)
				assert.Equal(t, "disable", cfg.Database.SSLMode)
				assert.Equal(t, 10, cfg.Database.PoolSize)
				assert.False(t, cfg.Sync.Enabled)
				assert.Equal(t, 15*time.Minute, cfg.Sync.Interval)
				assert.Equal(t, []jet.OrderStatus{
					jet.OrderReady,
					jet.OrderAcknowledged,
					jet.OrderInProgress,
				}, cfg.Sync.OrderStatuses())
				assert.Equal(t, "info", cfg.Logging.Level)
				assert.Equal(t, "text", cfg.Logging.Format)
				assert.False(t, cfg.Telemetry.Enabled)
				assert.Equal(t, "localhost:4317", cfg.Telemetry.Endpoint)
				assert.Equal(t, "jet-merchant", cfg.Telemetry.ServiceName)
				assert.InDelta(t, 1.0, cfg.Telemetry.SampleRatio, 0.0001)
				assert.Equal(t, 30*time.Second, cfg.Telemetry.ExportPeriod)
			},
		},
		{
			name: "env var substitution",
			yaml: `
jet:
  api_user: "${TEST_JET_USER}"
  secret: "${TEST_JET_SECRET}"
`,
			envVars: map[string]string{
				"TEST_JET_USER":   "env-user",
				"TEST_JET_SECRET": "env-secret",
			},
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "env-user", cfg.Jet.APIUser)
				assert.Equal(t, "env-secret", cfg.Jet.Secret)
			},
		},
		{
			name: "missing required jet.api_user",
			yaml: `
jet:
  secret: secret
`,
			wantErr: "jet.api_user is required",
		},
		{
			name: "missing required jet.secret",
			yaml: `
jet:
  api_user: user
`,
			wantErr: "jet.secret is required",
		},
		{
			name: "relative base url",
			yaml: `
jet:
  api_user: user
  secret: secret
  base_url: /api
`,
			wantErr: `jet.base_url must be an absolute URL (got "/api")`,
		},
		{
			name: "database host set without name",
			yaml: `
jet:
  api_user: user
  secret: secret
database:
  host: localhost
  user: jet
`,
			wantErr: "database.name is required",
		},
		{
			name: "database host set without user",
			yaml: `
jet:
  api_user: user
  secret: secret
database:
  host: localhost
  name: jet
`,
			wantErr: "database.user is required",
		},
		{
			name: "sync enabled without database",
			yaml: `
jet:
  api_user: user
  secret: secret
sync:
  enabled: true
`,
			wantErr: "database.host is required when sync is enabled",
		},
		{
			name: "unknown sync status",
			yaml: `
jet:
  api_user: user
  secret: secret
sync:
  statuses: [ready, shipped]
`,
			wantErr: `sync.statuses: unknown order status "shipped"`,
		},
		{
			name: "invalid logging format",
			yaml: `
jet:
  api_user: user
  secret: secret
logging:
  format: xml
`,
			wantErr: `logging.format must be one of: text, json (got "xml")`,
		},
		{
			name: "sample ratio out of range",
			yaml: `
jet:
  api_user: user
  secret: secret
telemetry:
  sample_ratio: 1.5
`,
			wantErr: "telemetry.sample_ratio must be within [0, 1]",
		},
		{
			name: "discord enabled without webhook",
			yaml: `
jet:
  api_user: user
  secret: secret
notifications:
  discord:
    enabled: true
`,
			wantErr: "notifications.discord.webhook_url is required when discord is enabled",
		},
		{
			name: "discord webhook from env",
			yaml: `
jet:
  api_user: user
  secret: secret
notifications:
  discord:
    enabled: true
    webhook_url: ${TEST_DISCORD_WEBHOOK}
`,
			envVars: map[string]string{"TEST_DISCORD_WEBHOOK": "https://discord.example/hook"},
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "https://discord.example/hook", cfg.Notifications.Discord.WebhookURL)
			},
		},
		{
			name: "all errors reported together",
			yaml: `
database:
  host: localhost
`,
			wantErr: "jet.api_user is required\njet.secret is required\ndatabase.name is required\ndatabase.user is required",
		},
		{
			name:    "invalid YAML",
			yaml:    `{{{not valid yaml`,
			wantErr: "parsing config YAML",
		},
		{
			name: "full config with overrides",
			yaml: `
jet:
  api_user: user
  secret: secret
  merchant_id: m-123
  base_url: https://sandbox.example.com/api
  request_timeout: 10s
  rate_limit:
    per_second: 2
    burst: 4
    daily_limit: 20000
database:
  host: db.example.com
  port: 5433
  name: jet_prod
  user: admin
  password: pass
  sslmode: require
  pool_size: 20
server:
  host: "127.0.0.1"
  port: 9090
  read_timeout: 60s
  write_timeout: 60s
sync:
  enabled: true
  interval: 5m
  statuses: [ready, complete]
  max_details_per_run: 200
logging:
  level: debug
  format: json
telemetry:
  enabled: true
  endpoint: otel-collector:4317
  insecure: true
  service_name: jetctl
  sample_ratio: 0.25
  export_period: 10s
`,
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "https://sandbox.example.com/api", cfg.Jet.BaseURL)
				assert.Equal(t, 10*time.Second, cfg.Jet.RequestTimeout)
				assert.InDelta(t, 2.0, cfg.Jet.RateLimit.PerSecond, 0.0001)
				assert.Equal(t, 4, cfg.Jet.RateLimit.Burst)
				assert.Equal(t, int64(20000), cfg.Jet.RateLimit.DailyLimit)
				assert.Equal(t, "db.example.com", cfg.Database.Host)
				assert.Equal(t, 5433, cfg.Database.Port)
				assert.Equal(t, "require", cfg.Database.SSLMode)
				assert.Equal(t, 20, cfg.Database.PoolSize)
				assert.Equal(t, "127.0.0.1", cfg.Server.Host)
				assert.Equal(t, 9090, cfg.Server.Port)
				assert.Equal(t, 60*time.Second, cfg.Server.ReadTimeout)
				assert.True(t, cfg.Sync.Enabled)
				assert.Equal(t, 5*time.Minute, cfg.Sync.Interval)
				assert.Equal(t, []jet.OrderStatus{jet.OrderReady, jet.OrderComplete}, cfg.Sync.OrderStatuses())
				assert.Equal(t, 200, cfg.Sync.MaxDetailsPerRun)
				assert.Equal(t, "debug", cfg.Logging.Level)
				assert.Equal(t, "json", cfg.Logging.Format)
				assert.True(t, cfg.Telemetry.Enabled)
				assert.Equal(t, "otel-collector:4317", cfg.Telemetry.Endpoint)
				assert.True(t, cfg.Telemetry.Insecure)
				assert.Equal(t, "jetctl", cfg.Telemetry.ServiceName)
				assert.InDelta(t, 0.25, cfg.Telemetry.SampleRatio, 0.0001)
				assert.Equal(t, 10*time.Second, cfg.Telemetry.ExportPeriod)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Only parallelize tests that don't modify env vars.
			if len(tt.envVars) == 0 {
				t.Parallel()
			}

			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			dir := t.TempDir()
			path := filepath.Join(dir, "config.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.yaml), 0o644))

			cfg, err := Load(path)

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, cfg)

			if tt.checkFunc != nil {
				tt.checkFunc(t, cfg)
			}
		})
	}
}

func TestLoad_FileNotFound(t *testing.T) {
	t.Parallel()

	_, err := Load("/nonexistent/path/config.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config file")
}

func TestDatabaseConfig_DSN(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cfg  DatabaseConfig
		want string
	}{
		{
			name: "basic DSN",
			cfg: DatabaseConfig{
				Host:     "localhost",
				Port:     5432,
				Name:     "jet",
				User:     "jet",
				Password: "jetpass",
				SSLMode:  "disable",
			},
			want: "host=localhost port=5432 dbname=jet user=jet password=jetpass sslmode=disable",
		},
		{
			name: "production DSN",
			cfg: DatabaseConfig{
				Host:     "db.example.com",
				Port:     5433,
				Name:     "jet_prod",
				User:     "admin",
				Password: "s3cret",
				SSLMode:  "require",
			},
			want: "host=db.example.com port=5433 dbname=jet_prod user=admin password=s3cret sslmode=require",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.cfg.DSN())
		})
	}
}
