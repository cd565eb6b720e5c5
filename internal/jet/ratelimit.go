package jet

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// ErrDailyLimitReached is returned when the daily call budget is spent.
var ErrDailyLimitReached = errors.New("daily API limit reached")

const budgetWindow = 24 * time.Hour

// Throttle paces API calls with a token bucket and caps the number of calls
// in a rolling 24-hour window. The window opens with the first call after
// the previous one closed.
type Throttle struct {
	limiter  *rate.Limiter
	maxDaily int64

	mu       sync.Mutex
	used     int64
	windowAt time.Time // zero until the first call
	nowFunc  func() time.Time
}

// ThrottleOption configures the Throttle.
type ThrottleOption func(*Throttle)

// WithThrottleNowFunc overrides the time function for testing.
func WithThrottleNowFunc(f func() time.Time) ThrottleOption {
	return func(t *Throttle) {
		t.nowFunc = f
	}
}

// NewThrottle creates a throttle allowing perSecond calls with the given
// burst, and at most maxDaily calls per window. maxDaily <= 0 disables the
// daily cap.
func NewThrottle(perSecond float64, burst int, maxDaily int64, opts ...ThrottleOption) *Throttle {
	t := &Throttle{
		limiter:  rate.NewLimiter(rate.Limit(perSecond), burst),
		maxDaily: maxDaily,
		nowFunc:  time.Now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Acquire reserves one call from the daily budget and then waits for the
// token bucket. It fails fast with ErrDailyLimitReached when the budget is
// spent, and returns the context error if ctx ends while waiting.
func (t *Throttle) Acquire(ctx context.Context) error {
	if err := t.reserve(); err != nil {
		return err
	}

	if err := t.limiter.Wait(ctx); err != nil {
		t.release()
		return fmt.Errorf("throttle wait: %w", err)
	}
	return nil
}

// MaxDaily returns the configured daily cap, or 0 when uncapped.
func (t *Throttle) MaxDaily() int64 {
	return max(t.maxDaily, 0)
}

// Used returns the number of calls made in the current window.
func (t *Throttle) Used() int64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.rollLocked()
	return t.used
}

// Remaining returns the calls left in the current window, or -1 when there
// is no daily cap.
func (t *Throttle) Remaining() int64 {
	if t.maxDaily <= 0 {
		return -1
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.rollLocked()
	return max(t.maxDaily-t.used, 0)
}

// ResetAt returns when the current window closes. It is the zero time when
// no window is open.
func (t *Throttle) ResetAt() time.Time {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.rollLocked()
	if t.windowAt.IsZero() {
		return time.Time{}
	}
	return t.windowAt.Add(budgetWindow)
}

func (t *Throttle) reserve() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.rollLocked()
	if t.windowAt.IsZero() {
		t.windowAt = t.nowFunc()
	}
	if t.maxDaily > 0 && t.used >= t.maxDaily {
		return fmt.Errorf("%w (%d/%d)", ErrDailyLimitReached, t.used, t.maxDaily)
	}
	t.used++
	return nil
}

func (t *Throttle) release() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.used > 0 {
		t.used--
	}
}

func (t *Throttle) rollLocked() {
	if t.windowAt.IsZero() {
		return
	}
	if !t.nowFunc().Before(t.windowAt.Add(budgetWindow)) {
		t.used = 0
		t.windowAt = time.Time{}
	}
}
