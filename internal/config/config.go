// Package config handles loading and validating the application configuration
// from YAML files with environment variable substitution.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/donaldgifford/jet-merchant/internal/jet"
)

// Config is the top-level application configuration.
type Config struct {
	Jet           JetConfig           `yaml:"jet"`
	Database      DatabaseConfig      `yaml:"database"`
	Server        ServerConfig        `yaml:"server"`
	Sync          SyncConfig          `yaml:"sync"`
	Notifications NotificationsConfig `yaml:"notifications"`
	Logging       LoggingConfig       `yaml:"logging"`
	Telemetry     TelemetryConfig     `yaml:"telemetry"`
}

// JetConfig defines merchant API settings.
type JetConfig struct {
	APIUser        string          `yaml:"api_user"`
	Secret         string          `yaml:"secret"`
	MerchantID     string          `yaml:"merchant_id"`
	BaseURL        string          `yaml:"base_url"`
	RequestTimeout time.Duration   `yaml:"request_timeout"`
	RateLimit      RateLimitConfig `yaml:"rate_limit"`
}

// RateLimitConfig defines merchant API rate limiting settings.
type RateLimitConfig struct {
	PerSecond  float64 `yaml:"per_second"`
	Burst      int     `yaml:"burst"`
	DailyLimit int64   `yaml:"daily_limit"` // 0 disables the daily cap
}

// DatabaseConfig defines PostgreSQL connection settings.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"sslmode"`
	PoolSize int    `yaml:"pool_size"`
}

// DSN returns a PostgreSQL connection string.
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d dbname=%s user=%s password=%s sslmode=%s",
		d.Host, d.Port, d.Name, d.User, d.Password, d.SSLMode,
	)
}

// Configured reports whether a database was set up at all. Commands that
// only talk to the merchant API run without one.
func (d *DatabaseConfig) Configured() bool {
	return d.Host != ""
}

// ServerConfig defines the Echo HTTP server settings.
type ServerConfig struct {
	Host         string        `yaml:"host"`
	Port         int           `yaml:"port"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

// SyncConfig defines the periodic order sync.
type SyncConfig struct {
	Enabled          bool          `yaml:"enabled"`
	Interval         time.Duration `yaml:"interval"`
	Statuses         []string      `yaml:"statuses"`
	MaxDetailsPerRun int           `yaml:"max_details_per_run"`
}

// OrderStatuses returns Statuses as typed order statuses. Load has already
// rejected unknown values.
func (s *SyncConfig) OrderStatuses() []jet.OrderStatus {
	out := make([]jet.OrderStatus, 0, len(s.Statuses))
	for _, v := range s.Statuses {
		out = append(out, jet.OrderStatus(v))
	}
	return out
}

// NotificationsConfig defines notification backends.
type NotificationsConfig struct {
	Discord DiscordConfig `yaml:"discord"`
}

// DiscordConfig defines Discord webhook notification settings.
type DiscordConfig struct {
	Enabled    bool   `yaml:"enabled"`
	WebhookURL string `yaml:"webhook_url"`
}

// LoggingConfig defines logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
}

// TelemetryConfig defines OpenTelemetry export settings.
type TelemetryConfig struct {
	Enabled      bool          `yaml:"enabled"`
	Endpoint     string        `yaml:"endpoint"` // OTLP gRPC collector, host:port
	Insecure     bool          `yaml:"insecure"`
	ServiceName  string        `yaml:"service_name"`
	SampleRatio  float64       `yaml:"sample_ratio"`
	ExportPeriod time.Duration `yaml:"export_period"`
}

// Load reads and parses a YAML config file, performing environment variable
// substitution and validation.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // config path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	return Parse(data)
}

// Parse is Load for an in-memory document.
func Parse(data []byte) (*Config, error) {
	// Expand environment variables in the YAML content.
	expanded := os.ExpandEnv(string(data))

	cfg := &Config{}
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}

	applyDefaults(cfg)

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	applyJetDefaults(&cfg.Jet)
	applyServerDefaults(&cfg.Server)
	applyDatabaseDefaults(&cfg.Database)
	applySyncDefaults(&cfg.Sync)
	applyLoggingDefaults(&cfg.Logging)
	applyTelemetryDefaults(&cfg.Telemetry)
}

func applyJetDefaults(j *JetConfig) {
	if j.BaseURL == "" {
		j.BaseURL = jet.DefaultBaseURL
	}
	if j.RequestTimeout == 0 {
		j.RequestTimeout = 30 * time.Second
	}
	applyRateLimitDefaults(&j.RateLimit)
}

func applyRateLimitDefaults(r *RateLimitConfig) {
	if r.PerSecond == 0 {
		r.PerSecond = 5.0
	}
	if r.Burst == 0 {
		r.Burst = 10
	}
}

func applyServerDefaults(s *ServerConfig) {
	if s.Host == "" {
		s.Host = "0.0.0.0"
	}
	if s.Port == 0 {
		s.Port = 8080
	}
	if s.ReadTimeout == 0 {
		s.ReadTimeout = 30 * time.Second
	}
	if s.WriteTimeout == 0 {
		s.WriteTimeout = 30 * time.Second
	}
}

func applyDatabaseDefaults(d *DatabaseConfig) {
	if d.Port == 0 {
		d.Port = 5432
	}
	if d.SSLMode == "" {
		d.SSLMode = "disable"
	}
	if d.PoolSize == 0 {
		d.PoolSize = 10
	}
}

func applySyncDefaults(s *SyncConfig) {
	if s.Interval == 0 {
		s.Interval = 15 * time.Minute
	}
	if len(s.Statuses) == 0 {
		s.Statuses = []string{
			string(jet.OrderReady),
			string(jet.OrderAcknowledged),
			string(jet.OrderInProgress),
		}
	}
}

func applyLoggingDefaults(l *LoggingConfig) {
	if l.Level == "" {
		l.Level = "info"
	}
	if l.Format == "" {
		l.Format = "text"
	}
}

func applyTelemetryDefaults(t *TelemetryConfig) {
	if t.Endpoint == "" {
		t.Endpoint = "localhost:4317"
	}
	if t.ServiceName == "" {
		t.ServiceName = "jet-merchant"
	}
	if t.SampleRatio == 0 {
		t.SampleRatio = 1.0
	}
	if t.ExportPeriod == 0 {
		t.ExportPeriod = 30 * time.Second
	}
}

func validate(cfg *Config) error {
	var errs []error

	if cfg.Jet.APIUser == "" {
		errs = append(errs, errors.New("jet.api_user is required"))
	}
	if cfg.Jet.Secret == "" {
		errs = append(errs, errors.New("jet.secret is required"))
	}
	if u, err := url.Parse(cfg.Jet.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		errs = append(errs, fmt.Errorf("jet.base_url must be an absolute URL (got %q)", cfg.Jet.BaseURL))
	}
	if cfg.Jet.RateLimit.PerSecond < 0 {
		errs = append(errs, errors.New("jet.rate_limit.per_second must not be negative"))
	}

	if cfg.Database.Configured() {
		if cfg.Database.Name == "" {
			errs = append(errs, errors.New("database.name is required"))
		}
		if cfg.Database.User == "" {
			errs = append(errs, errors.New("database.user is required"))
		}
	}

	if cfg.Sync.Enabled && !cfg.Database.Configured() {
		errs = append(errs, errors.New("database.host is required when sync is enabled"))
	}
	for _, s := range cfg.Sync.Statuses {
		if _, ok := jet.ParseOrderStatus(s); !ok {
			errs = append(errs, fmt.Errorf(
				"sync.statuses: unknown order status %q (want one of: created, ready, acknowledged, inprogress, complete)",
				s,
			))
		}
	}

	if cfg.Notifications.Discord.Enabled && cfg.Notifications.Discord.WebhookURL == "" {
		errs = append(errs, errors.New("notifications.discord.webhook_url is required when discord is enabled"))
	}

	switch cfg.Logging.Format {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("logging.format must be one of: text, json (got %q)", cfg.Logging.Format))
	}

	if cfg.Telemetry.SampleRatio < 0 || cfg.Telemetry.SampleRatio > 1 {
		errs = append(errs, fmt.Errorf("telemetry.sample_ratio must be within [0, 1] (got %v)", cfg.Telemetry.SampleRatio))
	}

	return errors.Join(errs...)
}
