package jet

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// GetOrders lists the URLs of orders currently in status.
func (c *Client) GetOrders(ctx context.Context, status OrderStatus) (*OrderURLs, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("unknown order status %q", status)
	}

	var resp OrderURLs
	if err := c.Do(ctx, http.MethodGet, "/orders/"+string(status), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetOrderDetail fetches a full order record. orderURL is one of the URLs
// returned by GetOrders and is dereferenced as-is.
func (c *Client) GetOrderDetail(ctx context.Context, orderURL string) (*Order, error) {
	var order Order
	if err := c.Do(ctx, http.MethodGet, orderURL, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// AcknowledgeOrder accepts or rejects a ready order.
func (c *Client) AcknowledgeOrder(
	ctx context.Context,
	orderID string,
	ack *AcknowledgeOrderRequest,
) error {
	return c.DoNoContent(ctx, http.MethodPut,
		fmt.Sprintf("/orders/%s/acknowledge", url.PathEscape(orderID)),
		WithJSONBody(ack),
	)
}

// ShipOrder sends a shipped message for an acknowledged order. Shipments
// from repeated messages are aggregated by Jet into the same order.
func (c *Client) ShipOrder(
	ctx context.Context,
	orderID string,
	ship *ShipOrderRequest,
) error {
	return c.DoNoContent(ctx, http.MethodPut,
		fmt.Sprintf("/orders/%s/shipped", url.PathEscape(orderID)),
		WithJSONBody(ship),
	)
}
