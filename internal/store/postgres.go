package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/donaldgifford/jet-merchant/internal/domain"
	"github.com/donaldgifford/jet-merchant/internal/jet"
)

const defaultPoolSize = 10

// PostgresStore implements Store using pgxpool (connection-pooled PostgreSQL).
type PostgresStore struct {
	pool *pgxpool.Pool
}

// PostgresOption configures the PostgresStore pool.
type PostgresOption func(*pgxpool.Config)

// WithPoolSize sets the maximum number of pooled connections.
func WithPoolSize(n int) PostgresOption {
	return func(cfg *pgxpool.Config) {
		if n > 0 {
			cfg.MaxConns = int32(n) //nolint:gosec // pool size comes from validated config
		}
	}
}

// NewPostgresStore creates a new PostgresStore with connection pooling.
func NewPostgresStore(
	ctx context.Context,
	connString string,
	opts ...PostgresOption,
) (*PostgresStore, error) {
	cfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("parsing connection string: %w", err)
	}

	cfg.MaxConns = defaultPoolSize
	for _, opt := range opts {
		opt(cfg)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

// Close gracefully shuts down the connection pool.
func (s *PostgresStore) Close() {
	s.pool.Close()
}

// Ping verifies the database connection is alive.
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Migrate applies pending SQL schema migrations.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	return RunMigrations(ctx, s.pool)
}

// UpsertOrder inserts or updates an order by merchant_order_id, filling in
// the row's ID and timestamps.
func (s *PostgresStore) UpsertOrder(ctx context.Context, o *domain.StoredOrder) error {
	payload, err := json.Marshal(&o.Order)
	if err != nil {
		return fmt.Errorf("encoding order payload: %w", err)
	}

	args := pgx.NamedArgs{
		"merchant_order_id":  o.MerchantOrderID,
		"reference_order_id": o.ReferenceOrderID,
		"order_url":          o.OrderURL,
		"status":             string(o.Status),
		"has_shipments":      o.HasShipments,
		"order_placed_at":    o.OrderPlacedAt,
		"payload":            payload,
	}

	if err := s.pool.QueryRow(ctx, queryUpsertOrder, args).Scan(
		&o.ID, &o.FirstSeenAt, &o.UpdatedAt,
	); err != nil {
		return fmt.Errorf("upserting order %s: %w", o.MerchantOrderID, err)
	}
	return nil
}

// GetOrder retrieves an order by Jet's merchant order ID.
func (s *PostgresStore) GetOrder(ctx context.Context, merchantOrderID string) (*domain.StoredOrder, error) {
	o := &domain.StoredOrder{}
	err := scanOrder(s.pool.QueryRow(ctx, queryGetOrder, merchantOrderID), o)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("order %s: %w", merchantOrderID, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return o, nil
}

// ListOrders queries orders with optional filters, returning results and total count.
func (s *PostgresStore) ListOrders(
	ctx context.Context,
	q *OrderQuery,
) ([]domain.StoredOrder, int, error) {
	if q == nil {
		q = &OrderQuery{}
	}
	dataSQL, countSQL, args := q.ToSQL()

	var total int
	if err := s.pool.QueryRow(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting orders: %w", err)
	}

	rows, err := s.pool.Query(ctx, dataSQL, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("listing orders: %w", err)
	}
	defer rows.Close()

	var orders []domain.StoredOrder
	for rows.Next() {
		var o domain.StoredOrder
		if err := scanOrder(rows, &o); err != nil {
			return nil, 0, err
		}
		orders = append(orders, o)
	}

	return orders, total, rows.Err()
}

// HasOrder reports whether the order at orderURL is stored with status.
func (s *PostgresStore) HasOrder(
	ctx context.Context,
	orderURL string,
	status jet.OrderStatus,
) (bool, error) {
	var exists bool
	err := s.pool.QueryRow(ctx, queryHasOrder, orderURL, string(status)).Scan(&exists)
	return exists, err
}

// CountOrdersByStatus returns the number of stored orders per status.
func (s *PostgresStore) CountOrdersByStatus(ctx context.Context) ([]domain.StatusCount, error) {
	rows, err := s.pool.Query(ctx, queryCountOrdersByStatus)
	if err != nil {
		return nil, fmt.Errorf("counting orders by status: %w", err)
	}
	defer rows.Close()

	var out []domain.StatusCount
	for rows.Next() {
		var (
			c      domain.StatusCount
			status string
		)
		if err := rows.Scan(&status, &c.Count); err != nil {
			return nil, err
		}
		c.Status = jet.OrderStatus(status)
		out = append(out, c)
	}
	return out, rows.Err()
}

// InsertSyncRun records the start of a sync run and returns its ID.
func (s *PostgresStore) InsertSyncRun(ctx context.Context, trigger string) (string, error) {
	var id string
	if err := s.pool.QueryRow(ctx, queryInsertSyncRun, trigger).Scan(&id); err != nil {
		return "", fmt.Errorf("inserting sync run: %w", err)
	}
	return id, nil
}

// CompleteSyncRun marks a sync run finished. A nil runErr records success.
func (s *PostgresStore) CompleteSyncRun(
	ctx context.Context,
	id string,
	stats domain.SyncStats,
	runErr error,
) error {
	status := domain.SyncRunSucceeded
	var errText string
	if runErr != nil {
		status = domain.SyncRunFailed
		errText = runErr.Error()
	}

	_, err := s.pool.Exec(ctx, queryCompleteSyncRun,
		id, status, errText,
		stats.OrdersSeen, stats.OrdersStored, stats.OrdersSkipped,
	)
	if err != nil {
		return fmt.Errorf("completing sync run %s: %w", id, err)
	}
	return nil
}

// ListSyncRuns returns the most recent sync runs, newest first.
func (s *PostgresStore) ListSyncRuns(ctx context.Context, limit int) ([]domain.SyncRun, error) {
	rows, err := s.pool.Query(ctx, queryListSyncRuns, limit)
	if err != nil {
		return nil, fmt.Errorf("listing sync runs: %w", err)
	}
	defer rows.Close()

	var runs []domain.SyncRun
	for rows.Next() {
		var r domain.SyncRun
		if err := rows.Scan(
			&r.ID, &r.Trigger, &r.StartedAt, &r.CompletedAt, &r.Status, &r.ErrorText,
			&r.OrdersSeen, &r.OrdersStored, &r.OrdersSkipped,
		); err != nil {
			return nil, err
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

func scanOrder(row pgx.Row, o *domain.StoredOrder) error {
	var (
		status  string
		payload []byte
	)
	if err := row.Scan(
		&o.ID, &o.MerchantOrderID, &o.ReferenceOrderID, &o.OrderURL,
		&status, &o.HasShipments, &o.OrderPlacedAt, &payload,
		&o.FirstSeenAt, &o.UpdatedAt,
	); err != nil {
		return err
	}
	o.Status = jet.OrderStatus(status)
	if err := json.Unmarshal(payload, &o.Order); err != nil {
		return fmt.Errorf("decoding order payload: %w", err)
	}
	return nil
}
