package store

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/donaldgifford/jet-merchant/internal/jet"
)

func ptr[T any](v T) *T { return &v }

func TestOrderQuery_ToSQL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		query         OrderQuery
		wantCountSQL  string
		wantArgs      []any
		wantDataHas   []string // substrings that must appear in dataSQL
		wantDataNotIn []string // substrings that must NOT appear
	}{
		{
			name:  "empty query uses defaults",
			query: OrderQuery{},
			wantDataHas: []string{
				"FROM orders",
				"ORDER BY order_placed_at DESC",
				"LIMIT 50",
				"OFFSET 0",
			},
			wantDataNotIn: []string{"WHERE"},
			wantCountSQL:  "SELECT COUNT(*) FROM orders",
			wantArgs:      nil,
		},
		{
			name:         "status filter",
			query:        OrderQuery{Status: ptr(jet.OrderReady)},
			wantDataHas:  []string{"WHERE status = $1", "LIMIT 50"},
			wantCountSQL: "SELECT COUNT(*) FROM orders WHERE status = $1",
			wantArgs:     []any{"ready"},
		},
		{
			name:         "has shipments filter",
			query:        OrderQuery{HasShipments: ptr(true)},
			wantDataHas:  []string{"WHERE has_shipments = $1"},
			wantCountSQL: "SELECT COUNT(*) FROM orders WHERE has_shipments = $1",
			wantArgs:     []any{true},
		},
		{
			name: "combined filters",
			query: OrderQuery{
				Status:       ptr(jet.OrderInProgress),
				HasShipments: ptr(false),
			},
			wantDataHas:  []string{"WHERE status = $1 AND has_shipments = $2"},
			wantCountSQL: "SELECT COUNT(*) FROM orders WHERE status = $1 AND has_shipments = $2",
			wantArgs:     []any{"inprogress", false},
		},
		{
			name:        "order by updated",
			query:       OrderQuery{OrderBy: "updated"},
			wantDataHas: []string{"ORDER BY updated_at DESC"},
		},
		{
			name:          "unknown order by falls back to default",
			query:         OrderQuery{OrderBy: "merchant_order_id; DROP TABLE orders"},
			wantDataHas:   []string{"ORDER BY order_placed_at DESC"},
			wantDataNotIn: []string{"DROP TABLE"},
		},
		{
			name:        "limit capped at max",
			query:       OrderQuery{Limit: 10000},
			wantDataHas: []string{"LIMIT 500"},
		},
		{
			name:        "custom limit and offset",
			query:       OrderQuery{Limit: 25, Offset: 50},
			wantDataHas: []string{"LIMIT 25", "OFFSET 50"},
		},
		{
			name:        "negative offset clamped",
			query:       OrderQuery{Offset: -5},
			wantDataHas: []string{"OFFSET 0"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			dataSQL, countSQL, args := tt.query.ToSQL()

			for _, s := range tt.wantDataHas {
				assert.Contains(t, dataSQL, s)
			}
			for _, s := range tt.wantDataNotIn {
				assert.NotContains(t, dataSQL, s)
			}
			if tt.wantCountSQL != "" {
				assert.Equal(t, tt.wantCountSQL, countSQL)
			}
			if tt.wantArgs != nil || tt.wantCountSQL != "" {
				assert.Equal(t, tt.wantArgs, args)
			}
		})
	}
}
