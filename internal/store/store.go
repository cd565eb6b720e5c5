// Package store defines the datastore abstraction for jet-merchant.
// All business logic depends on the Store interface, never on concrete
// implementations. This enables mock-based testing without a running database.
package store

import (
	"context"
	"errors"

	"github.com/donaldgifford/jet-merchant/internal/domain"
	"github.com/donaldgifford/jet-merchant/internal/jet"
)

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("not found")

// OrderQuery defines optional filters for order listings.
type OrderQuery struct {
	Status       *jet.OrderStatus
	HasShipments *bool
	Limit        int // default 50
	Offset       int
	OrderBy      string // "placed", "updated"
}

// Store defines all data access operations for jet-merchant.
type Store interface {
	// Orders
	UpsertOrder(ctx context.Context, o *domain.StoredOrder) error
	GetOrder(ctx context.Context, merchantOrderID string) (*domain.StoredOrder, error)
	ListOrders(ctx context.Context, q *OrderQuery) ([]domain.StoredOrder, int, error)
	HasOrder(ctx context.Context, orderURL string, status jet.OrderStatus) (bool, error)
	CountOrdersByStatus(ctx context.Context) ([]domain.StatusCount, error)

	// Sync runs
	InsertSyncRun(ctx context.Context, trigger string) (string, error)
	CompleteSyncRun(ctx context.Context, id string, stats domain.SyncStats, runErr error) error
	ListSyncRuns(ctx context.Context, limit int) ([]domain.SyncRun, error)

	// Lifecycle
	Ping(ctx context.Context) error
	Migrate(ctx context.Context) error
}
