package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humaecho"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"

	"github.com/donaldgifford/jet-merchant/internal/api/handlers"
	mw "github.com/donaldgifford/jet-merchant/internal/api/middleware"
	"github.com/donaldgifford/jet-merchant/internal/config"
	"github.com/donaldgifford/jet-merchant/internal/notify"
	"github.com/donaldgifford/jet-merchant/internal/store"
	"github.com/donaldgifford/jet-merchant/internal/syncer"
	"github.com/donaldgifford/jet-merchant/internal/telemetry"
)

const shutdownTimeout = 10 * time.Second

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the API server and order sync scheduler",
		RunE:  runServe,
	}
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if !cfg.Database.Configured() {
		return errors.New("serve requires database.host to be configured")
	}

	logger := newLogger(cfg)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTelemetry, err := telemetry.Setup(ctx, &cfg.Telemetry, Version)
	if err != nil {
		return fmt.Errorf("setting up telemetry: %w", err)
	}
	defer func() {
		tctx, cancel := context.WithTimeout(context.Background(), telemetry.ShutdownTimeout)
		defer cancel()
		if err := shutdownTelemetry(tctx); err != nil {
			logger.Warn("telemetry shutdown failed", "error", err)
		}
	}()

	st, err := store.NewPostgresStore(ctx, cfg.Database.DSN(), store.WithPoolSize(cfg.Database.PoolSize))
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer st.Close()

	// Registered after st.Close so background runs finish before the pool
	// closes.
	bg := newBackgroundRuns(ctx)
	defer bg.Stop()

	if err := st.Migrate(ctx); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}

	client, throttle := newJetClient(cfg, logger)

	sy := syncer.New(st, client, newNotifier(cfg, logger),
		syncer.WithLogger(logger),
		syncer.WithStatuses(cfg.Sync.OrderStatuses()...),
		syncer.WithMaxDetailsPerRun(cfg.Sync.MaxDetailsPerRun),
	)

	e := newEcho(logger)

	health := handlers.NewHealthHandler(st)
	e.GET("/healthz", health.Healthz)
	e.GET("/readyz", health.Readyz)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := humaecho.New(e, huma.DefaultConfig("jet-merchant API", Version))
	handlers.RegisterOrderRoutes(api, handlers.NewOrdersHandler(st, client))
	handlers.RegisterSyncRoutes(api, handlers.NewSyncHandler(sy, st))
	handlers.RegisterQuotaRoutes(api, handlers.NewQuotaHandler(throttle))

	if cfg.Sync.Enabled {
		sched, err := syncer.NewScheduler(sy, cfg.Sync.Interval, logger)
		if err != nil {
			return fmt.Errorf("creating scheduler: %w", err)
		}
		sched.Start()
		defer func() { <-sched.Stop().Done() }()

		bg.Go(func(ctx context.Context) {
			if _, err := sy.Run(ctx, syncer.TriggerStartup); err != nil && !errors.Is(err, context.Canceled) {
				logger.Error("startup sync failed", "error", err)
			}
		})
	}

	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("starting server", "addr", addr, "version", Version, "sync_enabled", cfg.Sync.Enabled)

	errCh := make(chan error, 1)
	go func() {
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	}

	logger.Info("shutting down server")

	sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(sctx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}

	logger.Info("server stopped")
	return nil
}

func newEcho(logger *slog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(
		mw.Recovery(logger),
		mw.Tracing(otel.GetTracerProvider(), otel.GetTextMapPropagator()),
		mw.RequestLog(logger),
		mw.Metrics(),
	)
	return e
}

func newNotifier(cfg *config.Config, logger *slog.Logger) notify.Notifier {
	if cfg.Notifications.Discord.Enabled {
		logger.Info("discord notifications enabled")
		return notify.NewDiscordNotifier(cfg.Notifications.Discord.WebhookURL)
	}
	return notify.NewNoOpNotifier(logger)
}

// backgroundRuns tracks goroutines started by serve so shutdown can cancel
// and wait for them.
type backgroundRuns struct {
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func newBackgroundRuns(parent context.Context) *backgroundRuns {
	ctx, cancel := context.WithCancel(parent)
	return &backgroundRuns{ctx: ctx, cancel: cancel}
}

// Go runs f in a goroutine with a context canceled by Stop.
func (b *backgroundRuns) Go(f func(ctx context.Context)) {
	b.wg.Go(func() { f(b.ctx) })
}

// Stop cancels every run and waits for them to return.
func (b *backgroundRuns) Stop() {
	b.cancel()
	b.wg.Wait()
}
