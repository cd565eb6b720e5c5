package client

import (
	"context"
	"net/url"
	"strconv"

	"github.com/donaldgifford/jet-merchant/internal/api/handlers"
	"github.com/donaldgifford/jet-merchant/internal/domain"
	"github.com/donaldgifford/jet-merchant/internal/jet"
)

// OrderFilter narrows an order listing. Zero values are left to the server
// defaults.
type OrderFilter struct {
	Status       jet.OrderStatus
	HasShipments *bool
	Limit        int
	Offset       int
	OrderBy      string
}

func (f *OrderFilter) query() string {
	v := url.Values{}
	if f.Status != "" {
		v.Set("status", string(f.Status))
	}
	if f.HasShipments != nil {
		v.Set("has_shipments", strconv.FormatBool(*f.HasShipments))
	}
	if f.Limit > 0 {
		v.Set("limit", strconv.Itoa(f.Limit))
	}
	if f.Offset > 0 {
		v.Set("offset", strconv.Itoa(f.Offset))
	}
	if f.OrderBy != "" {
		v.Set("order_by", f.OrderBy)
	}
	if len(v) == 0 {
		return ""
	}
	return "?" + v.Encode()
}

// OrderList is a page of stored orders.
type OrderList struct {
	Orders []domain.StoredOrder `json:"orders"`
	Total  int                  `json:"total"`
	Limit  int                  `json:"limit"`
	Offset int                  `json:"offset"`
}

// ListOrders returns stored orders matching f.
func (c *Client) ListOrders(ctx context.Context, f *OrderFilter) (*OrderList, error) {
	if f == nil {
		f = &OrderFilter{}
	}
	var out OrderList
	if err := c.get(ctx, "/api/v1/orders"+f.query(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetOrder returns a single stored order by its merchant order ID.
func (c *Client) GetOrder(ctx context.Context, id string) (*domain.StoredOrder, error) {
	var o domain.StoredOrder
	if err := c.get(ctx, "/api/v1/orders/"+url.PathEscape(id), &o); err != nil {
		return nil, err
	}
	return &o, nil
}

// OrderCounts returns the number of stored orders per status.
func (c *Client) OrderCounts(ctx context.Context) ([]domain.StatusCount, error) {
	var out struct {
		Counts []domain.StatusCount `json:"counts"`
	}
	if err := c.get(ctx, "/api/v1/orders/counts", &out); err != nil {
		return nil, err
	}
	return out.Counts, nil
}

// AcknowledgeOrder asks the server to acknowledge an order with Jet.
func (c *Client) AcknowledgeOrder(ctx context.Context, id string, ack *jet.AcknowledgeOrderRequest) error {
	return c.put(ctx, "/api/v1/orders/"+url.PathEscape(id)+"/acknowledge", ack, nil)
}

// ShipOrder asks the server to send a shipped message to Jet.
func (c *Client) ShipOrder(ctx context.Context, id string, ship *handlers.ShipOrderBody) error {
	return c.put(ctx, "/api/v1/orders/"+url.PathEscape(id)+"/shipped", ship, nil)
}
