package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/jet-merchant/internal/store"
	"github.com/donaldgifford/jet-merchant/internal/syncer"
)

func syncCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Run a single order sync into the database and exit",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if !cfg.Database.Configured() {
				return errors.New("sync requires database.host to be configured")
			}
			logger := newLogger(cfg)
			ctx := cmd.Context()

			st, err := store.NewPostgresStore(ctx, cfg.Database.DSN(), store.WithPoolSize(cfg.Database.PoolSize))
			if err != nil {
				return fmt.Errorf("connecting to database: %w", err)
			}
			defer st.Close()

			if err := st.Migrate(ctx); err != nil {
				return fmt.Errorf("running migrations: %w", err)
			}

			client, _ := newJetClient(cfg, logger)
			sy := syncer.New(st, client, newNotifier(cfg, logger),
				syncer.WithLogger(logger),
				syncer.WithStatuses(cfg.Sync.OrderStatuses()...),
				syncer.WithMaxDetailsPerRun(cfg.Sync.MaxDetailsPerRun),
			)

			res, err := sy.Run(ctx, syncer.TriggerManual)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(res)
			}
			return printSyncResult(cmd.OutOrStdout(), res)
		},
	}
}
