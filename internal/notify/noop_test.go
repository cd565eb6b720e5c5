package notify

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNoOpNotifier_SendOrder(t *testing.T) {
	t.Parallel()

	n := NewNoOpNotifier(slog.New(slog.NewTextHandler(io.Discard, nil)))
	err := n.SendOrder(context.Background(), &OrderPayload{
		MerchantOrderID: "abc",
		Status:          "ready",
	})
	require.NoError(t, err)
}

func TestNoOpNotifier_SendBatch(t *testing.T) {
	t.Parallel()

	n := NewNoOpNotifier(slog.New(slog.NewTextHandler(io.Discard, nil)))
	orders := []OrderPayload{
		{MerchantOrderID: "a", Status: "ready"},
		{MerchantOrderID: "b", Status: "ready"},
	}

	err := n.SendBatch(context.Background(), orders)
	require.NoError(t, err)
}

func TestNoOpNotifier_SendBatch_Empty(t *testing.T) {
	t.Parallel()

	n := NewNoOpNotifier(slog.New(slog.NewTextHandler(io.Discard, nil)))
	err := n.SendBatch(context.Background(), nil)
	require.NoError(t, err)
}

// compile-time interface check.
var _ Notifier = (*NoOpNotifier)(nil)
