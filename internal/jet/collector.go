package jet

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
)

// KnownOrderChecker reports whether an order is already stored with the
// given status, in which case the collector skips fetching its detail.
type KnownOrderChecker interface {
	HasOrder(ctx context.Context, orderURL string, status OrderStatus) (bool, error)
}

// CollectedOrder pairs an order with the URL it was fetched from.
type CollectedOrder struct {
	URL   string
	Order Order
}

// CollectResult holds the outcome of a collection run. Errors holds the
// listing and detail failures the run stepped over.
type CollectResult struct {
	Orders   []CollectedOrder
	URLsSeen int
	Skipped  int
	ByStatus map[OrderStatus]int
	Errors   []error
}

// Collector walks the order listings for a set of statuses and downloads
// the detail of every order it has not seen.
type Collector struct {
	client    MerchantClient
	checker   KnownOrderChecker
	log       *slog.Logger
	maxPerRun int
}

// CollectorOption configures the Collector.
type CollectorOption func(*Collector)

// WithKnownOrderChecker skips orders the checker already knows about.
func WithKnownOrderChecker(k KnownOrderChecker) CollectorOption {
	return func(c *Collector) {
		c.checker = k
	}
}

// WithCollectorLogger sets the logger.
func WithCollectorLogger(l *slog.Logger) CollectorOption {
	return func(c *Collector) {
		c.log = l
	}
}

// WithMaxDetailsPerRun caps the number of order details fetched in one
// run. Zero means no cap.
func WithMaxDetailsPerRun(n int) CollectorOption {
	return func(c *Collector) {
		c.maxPerRun = n
	}
}

// NewCollector creates a new Collector.
func NewCollector(client MerchantClient, opts ...CollectorOption) *Collector {
	c := &Collector{
		client: client,
		log:    slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Collect fetches orders in each of statuses, or in every status when none
// are given. A checker error is logged and the order fetched anyway. A
// failed listing or detail is recorded in the result and skipped. Only
// cancellation or ErrDailyLimitReached stops the run early, and the partial
// result is returned alongside the error.
func (c *Collector) Collect(
	ctx context.Context,
	statuses ...OrderStatus,
) (*CollectResult, error) {
	if len(statuses) == 0 {
		statuses = AllOrderStatuses
	}

	result := &CollectResult{ByStatus: make(map[OrderStatus]int, len(statuses))}
	fetched := 0

	for _, status := range statuses {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		list, err := c.client.GetOrders(ctx, status)
		if err != nil {
			err = fmt.Errorf("listing %s orders: %w", status, err)
			if stopsCollection(ctx, err) {
				return result, err
			}
			c.log.Warn("listing orders failed", "status", status, "err", err)
			result.Errors = append(result.Errors, err)
			continue
		}

		for _, orderURL := range list.OrderURLs {
			result.URLsSeen++

			if c.known(ctx, orderURL, status) {
				result.Skipped++
				continue
			}

			if c.maxPerRun > 0 && fetched >= c.maxPerRun {
				c.log.Warn("order detail budget exhausted",
					"status", status,
					"max_details_per_run", c.maxPerRun,
				)
				return result, nil
			}

			order, err := c.client.GetOrderDetail(ctx, orderURL)
			if err != nil {
				err = fmt.Errorf("fetching order %s: %w", orderURL, err)
				if stopsCollection(ctx, err) {
					return result, err
				}
				c.log.Warn("fetching order failed", "order_url", orderURL, "err", err)
				result.Errors = append(result.Errors, err)
				continue
			}
			fetched++

			result.Orders = append(result.Orders, CollectedOrder{URL: orderURL, Order: *order})
			result.ByStatus[status]++
		}

		c.log.Debug("collected orders",
			"status", status,
			"listed", len(list.OrderURLs),
			"fetched", result.ByStatus[status],
		)
	}

	return result, nil
}

// stopsCollection reports whether err means no further call can succeed.
func stopsCollection(ctx context.Context, err error) bool {
	return ctx.Err() != nil || errors.Is(err, ErrDailyLimitReached)
}

func (c *Collector) known(ctx context.Context, orderURL string, status OrderStatus) bool {
	if c.checker == nil {
		return false
	}
	ok, err := c.checker.HasOrder(ctx, orderURL, status)
	if err != nil {
		// A store error shouldn't stop collection.
		c.log.Warn("error checking order", "order_url", orderURL, "err", err)
		return false
	}
	return ok
}
