package cmd

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/donaldgifford/jet-merchant/internal/store"
)

func migrateCmd() *cobra.Command {
	var status bool

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
		Example: `  jet-merchant migrate
  jet-merchant migrate --status`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runMigrate(cmd, status)
		},
	}
	cmd.Flags().BoolVar(&status, "status", false, "list pending migrations without applying them")

	return cmd
}

func runMigrate(cmd *cobra.Command, statusOnly bool) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if !cfg.Database.Configured() {
		return errors.New("database.host is not configured")
	}

	logger := newLogger(cfg)

	ctx, cancel := context.WithTimeout(cmd.Context(), 60*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer pool.Close()

	if statusOnly {
		pending, err := store.PendingMigrations(ctx, pool)
		if err != nil {
			return fmt.Errorf("checking migrations: %w", err)
		}
		if len(pending) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "Database is up to date.")
			return nil
		}
		for _, name := range pending {
			fmt.Fprintln(cmd.OutOrStdout(), "pending:", name)
		}
		return nil
	}

	logger.Info("running migrations", "host", cfg.Database.Host, "database", cfg.Database.Name)

	if err := store.RunMigrations(ctx, pool); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}

	logger.Info("migrations complete")
	return nil
}
