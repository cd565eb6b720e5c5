package jet_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/jet-merchant/internal/jet"
)

func TestThrottle_Acquire(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		rate    float64
		burst   int
		daily   int64
		calls   int
		wantErr bool
	}{
		{
			name:  "allows calls within rate",
			rate:  100,
			burst: 10,
			daily: 5000,
			calls: 3,
		},
		{
			name:  "allows burst",
			rate:  100,
			burst: 5,
			daily: 5000,
			calls: 5,
		},
		{
			name:  "no daily cap",
			rate:  1000,
			burst: 50,
			daily: 0,
			calls: 50,
		},
		{
			name:    "rejects when daily limit reached",
			rate:    100,
			burst:   10,
			daily:   2,
			calls:   3,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			th := jet.NewThrottle(tt.rate, tt.burst, tt.daily)

			var lastErr error
			for range tt.calls {
				lastErr = th.Acquire(context.Background())
				if lastErr != nil {
					break
				}
			}

			if tt.wantErr {
				require.ErrorIs(t, lastErr, jet.ErrDailyLimitReached)
				assert.Contains(t, lastErr.Error(), "(2/2)")
			} else {
				require.NoError(t, lastErr)
			}
		})
	}
}

func TestThrottle_Counters(t *testing.T) {
	t.Parallel()

	th := jet.NewThrottle(100, 10, 5)

	assert.Equal(t, int64(0), th.Used())
	assert.Equal(t, int64(5), th.Remaining())
	assert.True(t, th.ResetAt().IsZero())

	for range 3 {
		require.NoError(t, th.Acquire(context.Background()))
	}

	assert.Equal(t, int64(3), th.Used())
	assert.Equal(t, int64(2), th.Remaining())
	assert.False(t, th.ResetAt().IsZero())

	assert.Equal(t, int64(5), th.MaxDaily())

	unlimited := jet.NewThrottle(100, 10, 0)
	assert.Equal(t, int64(-1), unlimited.Remaining())
	assert.Equal(t, int64(0), unlimited.MaxDaily())
}

func TestThrottle_WindowRolls(t *testing.T) {
	t.Parallel()

	start := time.Date(2021, 3, 5, 10, 0, 0, 0, time.UTC)
	var mu sync.Mutex
	current := start

	th := jet.NewThrottle(100, 10, 1, jet.WithThrottleNowFunc(func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		return current
	}))

	require.NoError(t, th.Acquire(context.Background()))
	assert.Equal(t, start.Add(24*time.Hour), th.ResetAt())
	require.ErrorIs(t, th.Acquire(context.Background()), jet.ErrDailyLimitReached)

	mu.Lock()
	current = start.Add(24 * time.Hour)
	mu.Unlock()

	assert.Equal(t, int64(0), th.Used())
	require.NoError(t, th.Acquire(context.Background()))
	assert.Equal(t, int64(1), th.Used())
}

func TestThrottle_CanceledWaitReleasesBudget(t *testing.T) {
	t.Parallel()

	// One call per hour with a burst of one: the second call must wait.
	th := jet.NewThrottle(1.0/3600, 1, 10)
	require.NoError(t, th.Acquire(context.Background()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	err := th.Acquire(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "throttle wait")
	assert.Equal(t, int64(1), th.Used())
}

func TestThrottle_ConcurrentAcquire(t *testing.T) {
	t.Parallel()

	th := jet.NewThrottle(10000, 100, 50)

	var wg sync.WaitGroup
	errs := make([]error, 80)
	for i := range 80 {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			errs[idx] = th.Acquire(context.Background())
		}(i)
	}
	wg.Wait()

	var ok, limited int
	for _, err := range errs {
		if err == nil {
			ok++
			continue
		}
		require.ErrorIs(t, err, jet.ErrDailyLimitReached)
		limited++
	}
	assert.Equal(t, 50, ok)
	assert.Equal(t, 30, limited)
	assert.Equal(t, int64(50), th.Used())
}
