package store

import (
	"fmt"
	"strings"
)

const (
	defaultLimit = 50
	maxLimit     = 500

	orderByPlaced  = "placed"
	orderByUpdated = "updated"
)

// validOrderBy maps allowed OrderBy values to their SQL column expressions.
var validOrderBy = map[string]string{
	orderByPlaced:  "order_placed_at DESC",
	orderByUpdated: "updated_at DESC",
}

const defaultOrderBy = "order_placed_at DESC"

const baseOrdersSelect = `SELECT id, merchant_order_id, reference_order_id, order_url,
	status, has_shipments, order_placed_at, payload, first_seen_at, updated_at
FROM orders`

const countOrdersSelect = "SELECT COUNT(*) FROM orders"

// ToSQL builds the WHERE clause, ORDER BY, LIMIT, and OFFSET for an order query.
// It returns two SQL strings (one for the data query, one for the count query)
// and the positional parameters.
func (q *OrderQuery) ToSQL() (dataSQL, countSQL string, args []any) {
	var conditions []string
	paramIdx := 1

	if q.Status != nil {
		conditions = append(conditions, fmt.Sprintf("status = $%d", paramIdx))
		args = append(args, string(*q.Status))
		paramIdx++
	}

	if q.HasShipments != nil {
		conditions = append(conditions, fmt.Sprintf("has_shipments = $%d", paramIdx))
		args = append(args, *q.HasShipments)
	}

	var whereClause string
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	orderClause := defaultOrderBy
	if q.OrderBy != "" {
		if col, ok := validOrderBy[q.OrderBy]; ok {
			orderClause = col
		}
	}

	limit := q.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	offset := max(q.Offset, 0)

	dataSQL = fmt.Sprintf(
		"%s%s ORDER BY %s LIMIT %d OFFSET %d",
		baseOrdersSelect, whereClause, orderClause, limit, offset,
	)

	countSQL = countOrdersSelect + whereClause

	return dataSQL, countSQL, args
}
