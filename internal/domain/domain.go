// Package types defines the persisted domain records shared by the store,
// the order syncer, and the HTTP API.
package domain

import (
	"time"

	"github.com/donaldgifford/jet-merchant/internal/jet"
)

// StoredOrder is the local snapshot of a merchant order, keyed by Jet's
// merchant_order_id. Order holds the last detail fetched from the API.
type StoredOrder struct {
	ID               string          `json:"id"                 db:"id"`
	MerchantOrderID  string          `json:"merchant_order_id"  db:"merchant_order_id"`
	ReferenceOrderID string          `json:"reference_order_id" db:"reference_order_id"`
	OrderURL         string          `json:"order_url"          db:"order_url"`
	Status           jet.OrderStatus `json:"status"             db:"status"`
	HasShipments     bool            `json:"has_shipments"      db:"has_shipments"`
	OrderPlacedAt    time.Time       `json:"order_placed_at"    db:"order_placed_at"`
	Order            jet.Order       `json:"order"              db:"payload"`
	FirstSeenAt      time.Time       `json:"first_seen_at"      db:"first_seen_at"`
	UpdatedAt        time.Time       `json:"updated_at"         db:"updated_at"`
}

// NewStoredOrder builds a snapshot of o as fetched from orderURL.
func NewStoredOrder(orderURL string, o *jet.Order) *StoredOrder {
	return &StoredOrder{
		MerchantOrderID:  o.MerchantOrderID,
		ReferenceOrderID: o.ReferenceOrderID,
		OrderURL:         orderURL,
		Status:           o.Status,
		HasShipments:     o.HasShipments,
		OrderPlacedAt:    o.OrderPlacedDate,
		Order:            *o,
	}
}

// ItemCount returns the total requested quantity across line items.
func (s *StoredOrder) ItemCount() int {
	n := 0
	for i := range s.Order.OrderItems {
		n += s.Order.OrderItems[i].RequestOrderQuantity
	}
	return n
}

// Sync run statuses.
const (
	SyncRunRunning   = "running"
	SyncRunSucceeded = "succeeded"
	SyncRunFailed    = "failed"
)

// SyncRun records a single execution of the order sync.
type SyncRun struct {
	ID            string     `json:"id"                     db:"id"`
	Trigger       string     `json:"trigger"                db:"trigger"`
	StartedAt     time.Time  `json:"started_at"             db:"started_at"`
	CompletedAt   *time.Time `json:"completed_at,omitempty" db:"completed_at"`
	Status        string     `json:"status"                 db:"status"`
	ErrorText     string     `json:"error_text,omitempty"   db:"error_text"`
	OrdersSeen    int        `json:"orders_seen"            db:"orders_seen"`
	OrdersStored  int        `json:"orders_stored"          db:"orders_stored"`
	OrdersSkipped int        `json:"orders_skipped"         db:"orders_skipped"`
}

// SyncStats summarizes a finished sync run.
type SyncStats struct {
	OrdersSeen    int
	OrdersStored  int
	OrdersSkipped int
}

// StatusCount is the number of stored orders in one status.
type StatusCount struct {
	Status jet.OrderStatus `json:"status" db:"status"`
	Count  int             `json:"count"  db:"count"`
}
