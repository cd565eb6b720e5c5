package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/donaldgifford/jet-merchant/internal/api/handlers"
	"github.com/donaldgifford/jet-merchant/internal/jet"
)

const orderDetailPrefix = "/orders/withoutShipmentDetail/"

// orderRef turns a bare merchant order ID into its detail URL. Anything
// containing a slash is taken to already be an order URL.
func orderRef(arg string) string {
	if strings.Contains(arg, "/") {
		return arg
	}
	return orderDetailPrefix + arg
}

// parseItemAcks parses "item_id[=status]" flags. A missing status means
// fulfillable.
func parseItemAcks(items []string) ([]jet.AcknowledgeOrderItem, error) {
	out := make([]jet.AcknowledgeOrderItem, 0, len(items))
	for _, it := range items {
		id, status, found := strings.Cut(it, "=")
		if id == "" {
			return nil, fmt.Errorf("item %q: missing order item id", it)
		}
		st := jet.ItemFulfillable
		if found {
			st = jet.ItemAcknowledgementStatus(status)
		}
		out = append(out, jet.AcknowledgeOrderItem{
			OrderItemID:                    id,
			OrderItemAcknowledgementStatus: st,
		})
	}
	return out, nil
}

// parseShipItems parses "sku=qty" flags.
func parseShipItems(items []string, daysToReturn int) ([]handlers.ShipmentItem, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("at least one --item sku=qty is required")
	}
	out := make([]handlers.ShipmentItem, 0, len(items))
	for _, it := range items {
		sku, qty, err := splitQuantity(it)
		if err != nil {
			return nil, err
		}
		out = append(out, handlers.ShipmentItem{
			MerchantSKU:  sku,
			Quantity:     qty,
			DaysToReturn: daysToReturn,
		})
	}
	return out, nil
}

// parseNodeQuantities parses "node_id=qty" flags.
func parseNodeQuantities(nodes []string) (*jet.Inventory, error) {
	if len(nodes) == 0 {
		return nil, fmt.Errorf("at least one --node node_id=qty is required")
	}
	inv := &jet.Inventory{FulfillmentNodes: make([]jet.FulfillmentNodeQuantity, 0, len(nodes))}
	for _, n := range nodes {
		id, qty, err := splitQuantity(n)
		if err != nil {
			return nil, err
		}
		inv.FulfillmentNodes = append(inv.FulfillmentNodes, jet.FulfillmentNodeQuantity{
			FulfillmentNodeID: id,
			Quantity:          qty,
		})
	}
	return inv, nil
}

func splitQuantity(s string) (string, int, error) {
	key, val, found := strings.Cut(s, "=")
	if !found || key == "" {
		return "", 0, fmt.Errorf("%q: want key=quantity", s)
	}
	qty, err := strconv.Atoi(val)
	if err != nil || qty < 0 {
		return "", 0, fmt.Errorf("%q: quantity must be a non-negative integer", s)
	}
	return key, qty, nil
}

// parseShippedAt accepts RFC 3339 or an empty string for now.
func parseShippedAt(s string, now time.Time) (time.Time, error) {
	if s == "" {
		return now, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("--shipped-at: %w", err)
	}
	return t, nil
}
