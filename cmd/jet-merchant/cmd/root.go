// Package cmd implements the CLI commands for jet-merchant.
package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/donaldgifford/jet-merchant/internal/config"
	"github.com/donaldgifford/jet-merchant/internal/jet"
	"github.com/donaldgifford/jet-merchant/pkg/logger"
)

var rootCmd = &cobra.Command{
	Use:   "jet-merchant",
	Short: "Jet merchant API client and order sync service",
	Long: "jet-merchant talks to the Jet merchant API on behalf of a seller account.\n" +
		"It can fetch and act on orders, inventory and prices directly, or run as\n" +
		"a service that syncs orders into PostgreSQL and exposes them over HTTP.",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().String("config", "config.yaml", "config file path")
	rootCmd.PersistentFlags().String("output", "table", "output format (table, json)")
	rootCmd.PersistentFlags().String("log-level", "", "override logging.level from the config file")

	cobra.CheckErr(viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config")))
	cobra.CheckErr(viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output")))
	cobra.CheckErr(viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level")))

	viper.SetEnvPrefix("JET_MERCHANT")
	viper.AutomaticEnv()

	rootCmd.AddCommand(
		serveCmd(),
		migrateCmd(),
		syncCmd(),
		tokenCmd(),
		ordersCmd(),
		inventoryCmd(),
		priceCmd(),
		versionCommand(),
	)
}

// Root returns the root cobra command for documentation generation.
func Root() *cobra.Command {
	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(viper.GetString("config"))
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if lvl := viper.GetString("log_level"); lvl != "" {
		cfg.Logging.Level = lvl
	}
	return cfg, nil
}

func newLogger(cfg *config.Config) *slog.Logger {
	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	slog.SetDefault(log)
	return log
}

// newJetClient builds the merchant API client and the throttle gating it.
func newJetClient(cfg *config.Config, log *slog.Logger) (*jet.Client, *jet.Throttle) {
	rl := cfg.Jet.RateLimit
	throttle := jet.NewThrottle(rl.PerSecond, rl.Burst, rl.DailyLimit)

	client := jet.New(
		jet.Options{
			APIUser:    cfg.Jet.APIUser,
			Secret:     cfg.Jet.Secret,
			MerchantID: cfg.Jet.MerchantID,
		},
		jet.WithBaseURL(cfg.Jet.BaseURL),
		jet.WithRequestTimeout(cfg.Jet.RequestTimeout),
		jet.WithThrottle(throttle),
		jet.WithLogger(log),
	)
	return client, throttle
}

func jsonOutput() bool {
	return viper.GetString("output") == "json"
}
