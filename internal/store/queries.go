package store

// SQL query constants organized by entity.
// All SQL lives here; PostgresStore methods reference these constants.

// Order queries.
const (
	queryUpsertOrder = `
		INSERT INTO orders (
			merchant_order_id, reference_order_id, order_url,
			status, has_shipments, order_placed_at, payload,
			first_seen_at, updated_at
		) VALUES (
			@merchant_order_id, @reference_order_id, @order_url,
			@status, @has_shipments, @order_placed_at, @payload,
			now(), now()
		)
		ON CONFLICT (merchant_order_id) DO UPDATE SET
			reference_order_id = EXCLUDED.reference_order_id,
			order_url = EXCLUDED.order_url,
			status = EXCLUDED.status,
			has_shipments = EXCLUDED.has_shipments,
			order_placed_at = EXCLUDED.order_placed_at,
			payload = EXCLUDED.payload,
			updated_at = now()
		RETURNING id, first_seen_at, updated_at`

	queryGetOrder = `
		SELECT id, merchant_order_id, reference_order_id, order_url,
			status, has_shipments, order_placed_at, payload, first_seen_at, updated_at
		FROM orders
		WHERE merchant_order_id = $1`

	queryHasOrder = `
		SELECT EXISTS(
			SELECT 1 FROM orders WHERE order_url = $1 AND status = $2
		)`

	queryCountOrdersByStatus = `
		SELECT status, COUNT(*)
		FROM orders
		GROUP BY status
		ORDER BY status`
)

// Sync run queries.
const (
	queryInsertSyncRun = `
		INSERT INTO sync_runs (trigger, status)
		VALUES ($1, 'running')
		RETURNING id`

	queryCompleteSyncRun = `
		UPDATE sync_runs SET
			completed_at = now(),
			status = $2,
			error_text = $3,
			orders_seen = $4,
			orders_stored = $5,
			orders_skipped = $6
		WHERE id = $1`

	queryListSyncRuns = `
		SELECT id, trigger, started_at, completed_at, status, error_text,
			orders_seen, orders_stored, orders_skipped
		FROM sync_runs
		ORDER BY started_at DESC
		LIMIT $1`
)
