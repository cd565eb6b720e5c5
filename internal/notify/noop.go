package notify

import (
	"context"
	"log/slog"
)

// NoOpNotifier implements Notifier by logging discarded notifications. It is
// used when Discord (or another notification backend) is not configured.
type NoOpNotifier struct {
	log *slog.Logger
}

// NewNoOpNotifier creates a notifier that discards orders with a log message.
func NewNoOpNotifier(log *slog.Logger) *NoOpNotifier {
	return &NoOpNotifier{log: log}
}

// SendOrder logs and discards a single order notification.
func (n *NoOpNotifier) SendOrder(_ context.Context, order *OrderPayload) error {
	n.log.Debug("notification discarded (no backend configured)",
		"merchant_order_id", order.MerchantOrderID,
		"status", order.Status,
	)
	return nil
}

// SendBatch logs and discards a batch of order notifications.
func (n *NoOpNotifier) SendBatch(_ context.Context, orders []OrderPayload) error {
	n.log.Debug("batch notification discarded (no backend configured)",
		"count", len(orders),
	)
	return nil
}
