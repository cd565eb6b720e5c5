package cmd

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBackgroundRuns_StopCancelsAndWaits(t *testing.T) {
	t.Parallel()

	bg := newBackgroundRuns(context.Background())

	started := make(chan struct{})
	var finished atomic.Bool
	bg.Go(func(ctx context.Context) {
		close(started)
		<-ctx.Done()
		// Simulate a run still recording its outcome after cancellation.
		time.Sleep(20 * time.Millisecond)
		finished.Store(true)
	})

	<-started
	bg.Stop()
	assert.True(t, finished.Load(), "Stop returned before the run finished")
}

func TestBackgroundRuns_ParentCancellation(t *testing.T) {
	t.Parallel()

	parent, cancel := context.WithCancel(context.Background())
	bg := newBackgroundRuns(parent)

	done := make(chan error, 1)
	bg.Go(func(ctx context.Context) {
		<-ctx.Done()
		done <- ctx.Err()
	})

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("run was not canceled with its parent")
	}
	bg.Stop()
}
