// Package syncer mirrors merchant orders into the local store, either on
// demand or on a cron schedule.
package syncer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/donaldgifford/jet-merchant/internal/domain"
	"github.com/donaldgifford/jet-merchant/internal/jet"
	"github.com/donaldgifford/jet-merchant/internal/metrics"
	"github.com/donaldgifford/jet-merchant/internal/notify"
	"github.com/donaldgifford/jet-merchant/internal/store"
)

// Sync triggers recorded on each run.
const (
	TriggerSchedule = "schedule"
	TriggerManual   = "manual"
	TriggerStartup  = "startup"
)

// ErrSyncInProgress is returned when a run is requested while another is
// still going.
var ErrSyncInProgress = errors.New("sync already in progress")

// Result summarizes one sync run.
type Result struct {
	RunID    string                  `json:"run_id"`
	Seen     int                     `json:"orders_seen"`
	Stored   int                     `json:"orders_stored"`
	Skipped  int                     `json:"orders_skipped"`
	Failed   int                     `json:"orders_failed"`
	Notified int                     `json:"orders_notified"`
	ByStatus map[jet.OrderStatus]int `json:"by_status"`
	Duration time.Duration           `json:"duration"`
}

// Syncer pulls orders from the merchant API into the store.
type Syncer struct {
	store    store.Store
	client   jet.MerchantClient
	notifier notify.Notifier
	log      *slog.Logger

	statuses   []jet.OrderStatus
	maxDetails int
	nowFunc    func() time.Time

	running sync.Mutex
}

// Option configures the Syncer.
type Option func(*Syncer)

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Syncer) {
		s.log = l
	}
}

// WithStatuses limits the statuses walked on each run.
func WithStatuses(statuses ...jet.OrderStatus) Option {
	return func(s *Syncer) {
		s.statuses = statuses
	}
}

// WithMaxDetailsPerRun caps the order details fetched per run.
func WithMaxDetailsPerRun(n int) Option {
	return func(s *Syncer) {
		s.maxDetails = n
	}
}

// WithNowFunc overrides the clock.
func WithNowFunc(f func() time.Time) Option {
	return func(s *Syncer) {
		s.nowFunc = f
	}
}

// New creates a new Syncer with injected dependencies.
func New(
	st store.Store,
	client jet.MerchantClient,
	n notify.Notifier,
	opts ...Option,
) *Syncer {
	s := &Syncer{
		store:    st,
		client:   client,
		notifier: n,
		log:      slog.Default(),
		nowFunc:  time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run executes one sync: list orders for each configured status, fetch the
// ones not already stored in that status, upsert them, and announce newly
// ready orders. Only one run executes at a time.
func (s *Syncer) Run(ctx context.Context, trigger string) (*Result, error) {
	if !s.running.TryLock() {
		return nil, ErrSyncInProgress
	}
	defer s.running.Unlock()

	start := s.nowFunc()

	runID, err := s.store.InsertSyncRun(ctx, trigger)
	if err != nil {
		metrics.SyncRunsTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("recording sync run: %w", err)
	}

	log := s.log.With("run_id", runID, "trigger", trigger)
	log.Info("order sync starting")

	result, runErr := s.run(ctx, log)
	result.RunID = runID
	result.Duration = s.nowFunc().Sub(start)

	stats := domain.SyncStats{
		OrdersSeen:    result.Seen,
		OrdersStored:  result.Stored,
		OrdersSkipped: result.Skipped,
	}
	// Record the outcome even when ctx was canceled mid-run.
	if err := s.store.CompleteSyncRun(context.WithoutCancel(ctx), runID, stats, runErr); err != nil {
		log.Error("recording sync completion failed", "error", err)
	}

	metrics.SyncDuration.Observe(result.Duration.Seconds())

	if runErr != nil {
		metrics.SyncRunsTotal.WithLabelValues("error").Inc()
		log.Error("order sync failed", "error", runErr, "stored", result.Stored, "failed", result.Failed)
		return result, runErr
	}

	metrics.SyncRunsTotal.WithLabelValues("success").Inc()
	metrics.SyncLastSuccessTimestamp.Set(float64(s.nowFunc().Unix()))
	log.Info("order sync complete",
		"seen", result.Seen,
		"stored", result.Stored,
		"skipped", result.Skipped,
		"notified", result.Notified,
		"duration", result.Duration,
	)

	s.syncStoreMetrics(ctx, log)

	return result, nil
}

func (s *Syncer) run(ctx context.Context, log *slog.Logger) (*Result, error) {
	result := &Result{ByStatus: map[jet.OrderStatus]int{}}

	collector := jet.NewCollector(s.client,
		jet.WithKnownOrderChecker(s.store),
		jet.WithCollectorLogger(log),
		jet.WithMaxDetailsPerRun(s.maxDetails),
	)

	// A stopped collection still returns what it fetched; store that.
	collected, collectErr := collector.Collect(ctx, s.statuses...)
	if collected == nil {
		return result, collectErr
	}

	result.Seen = collected.URLsSeen
	result.Skipped = collected.Skipped
	result.Failed = len(collected.Errors)
	metrics.SyncOrdersSkippedTotal.Add(float64(collected.Skipped))

	var (
		ready []notify.OrderPayload
		errs  []error
	)
	for i := range collected.Orders {
		c := &collected.Orders[i]
		so := domain.NewStoredOrder(c.URL, &c.Order)
		if err := s.store.UpsertOrder(ctx, so); err != nil {
			errs = append(errs, err)
			continue
		}

		result.Stored++
		result.ByStatus[so.Status]++
		metrics.SyncOrdersTotal.WithLabelValues(string(so.Status)).Inc()

		if so.Status == jet.OrderReady {
			ready = append(ready, notify.NewOrderPayload(&c.Order))
		}
	}

	if len(ready) > 0 {
		// Notification failures never fail the sync.
		if err := s.notifier.SendBatch(ctx, ready); err != nil {
			log.Warn("sending order notifications failed", "error", err, "count", len(ready))
		} else {
			result.Notified = len(ready)
		}
	}

	var runErrs []error
	if collectErr != nil {
		runErrs = append(runErrs, collectErr)
	}
	if len(collected.Errors) > 0 {
		runErrs = append(runErrs, fmt.Errorf("collecting orders: %d failed: %w",
			len(collected.Errors), errors.Join(collected.Errors...)))
	}
	if len(errs) > 0 {
		runErrs = append(runErrs, fmt.Errorf("storing %d of %d orders: %w",
			len(errs), len(collected.Orders), errors.Join(errs...)))
	}
	return result, errors.Join(runErrs...)
}

// syncStoreMetrics refreshes the per-status order gauges.
func (s *Syncer) syncStoreMetrics(ctx context.Context, log *slog.Logger) {
	counts, err := s.store.CountOrdersByStatus(ctx)
	if err != nil {
		log.Warn("counting stored orders failed", "error", err)
		return
	}
	for _, st := range jet.AllOrderStatuses {
		metrics.SyncOrdersInStore.WithLabelValues(string(st)).Set(0)
	}
	for _, c := range counts {
		metrics.SyncOrdersInStore.WithLabelValues(string(c.Status)).Set(float64(c.Count))
	}
}
