// Package notify defines the notification interface and implementations
// for announcing orders that need merchant action.
package notify

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/donaldgifford/jet-merchant/internal/jet"
)

// OrderPayload contains the data needed to announce a newly synced order.
type OrderPayload struct {
	MerchantOrderID  string
	ReferenceOrderID string
	Status           jet.OrderStatus
	PlacedAt         time.Time
	ShipBy           time.Time
	ServiceLevel     string
	ItemCount        int
	SKUs             []string
	Total            string
	ShipTo           string
}

// NewOrderPayload summarizes o for a notification.
func NewOrderPayload(o *jet.Order) OrderPayload {
	p := OrderPayload{
		MerchantOrderID:  o.MerchantOrderID,
		ReferenceOrderID: o.ReferenceOrderID,
		Status:           o.Status,
		PlacedAt:         o.OrderPlacedDate,
		ShipBy:           o.OrderDetail.RequestShipBy,
		ServiceLevel:     o.OrderDetail.RequestServiceLevel,
	}

	var total float64
	for i := range o.OrderItems {
		item := &o.OrderItems[i]
		p.ItemCount += item.RequestOrderQuantity
		p.SKUs = append(p.SKUs, item.MerchantSKU)
		total += item.ItemPrice.BasePrice + item.ItemPrice.ItemShippingCost
	}
	if o.OrderTotals.ItemPrice != nil {
		total = o.OrderTotals.ItemPrice.BasePrice + o.OrderTotals.ItemPrice.ItemShippingCost
	}
	p.Total = fmt.Sprintf("$%.2f", total)

	addr := o.ShippingTo.Address
	if addr.City != "" || addr.State != "" {
		p.ShipTo = strings.TrimSpace(fmt.Sprintf("%s, %s %s", addr.City, addr.State, addr.ZipCode))
	}

	return p
}

// Notifier defines the interface for sending order notifications.
type Notifier interface {
	SendOrder(ctx context.Context, order *OrderPayload) error
	SendBatch(ctx context.Context, orders []OrderPayload) error
}
