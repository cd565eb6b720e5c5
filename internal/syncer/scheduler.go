package syncer

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/donaldgifford/jet-merchant/internal/metrics"
)

// Runner runs one order sync.
type Runner interface {
	Run(ctx context.Context, trigger string) (*Result, error)
}

// Scheduler runs order syncs periodically.
type Scheduler struct {
	cron    *cron.Cron
	runner  Runner
	log     *slog.Logger
	entryID cron.EntryID
	timeout time.Duration
}

// NewScheduler creates a new Scheduler that syncs every interval. Each run is
// bounded by the interval so a stuck run cannot block the next one forever.
func NewScheduler(
	r Runner,
	interval time.Duration,
	log *slog.Logger,
) (*Scheduler, error) {
	c := cron.New()

	s := &Scheduler{
		cron:    c,
		runner:  r,
		log:     log,
		timeout: interval,
	}

	id, err := c.AddFunc("@every "+interval.String(), s.runSync)
	if err != nil {
		return nil, err
	}
	s.entryID = id

	return s, nil
}

// Start begins running scheduled tasks.
func (s *Scheduler) Start() {
	s.log.Info("scheduler started")
	s.cron.Start()
	s.SyncNextRunTimestamp()
}

// Stop gracefully stops the scheduler, waiting for running jobs to finish.
func (s *Scheduler) Stop() context.Context {
	s.log.Info("scheduler stopping")
	return s.cron.Stop()
}

// Entries returns the registered cron entries for inspection.
func (s *Scheduler) Entries() []cron.Entry {
	return s.cron.Entries()
}

// SyncNextRunTimestamp publishes the next scheduled run time as a gauge.
func (s *Scheduler) SyncNextRunTimestamp() {
	next := s.cron.Entry(s.entryID).Next
	if !next.IsZero() {
		metrics.SyncNextRunTimestamp.Set(float64(next.Unix()))
	}
}

func (s *Scheduler) runSync() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()
	defer s.SyncNextRunTimestamp()

	s.log.Info("scheduled order sync starting")
	if _, err := s.runner.Run(ctx, TriggerSchedule); err != nil {
		if errors.Is(err, ErrSyncInProgress) {
			s.log.Info("scheduled order sync skipped", "reason", err)
			return
		}
		s.log.Error("scheduled order sync failed", "error", err)
	}
}
