package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/jet-merchant/internal/api/handlers"
	"github.com/donaldgifford/jet-merchant/internal/domain"
	"github.com/donaldgifford/jet-merchant/internal/jet"
	"github.com/donaldgifford/jet-merchant/internal/syncer"
)

func TestClient_ConnectionRefused(t *testing.T) {
	t.Parallel()

	c := New("http://127.0.0.1:1") // nothing listening
	_, err := c.OrderCounts(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API server not running")
}

func TestClient_HTTPError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		status     int
		body       string
		wantDetail string
	}{
		{
			name:       "problem document",
			status:     http.StatusConflict,
			body:       `{"title":"Conflict","status":409,"detail":"sync already in progress"}`,
			wantDetail: "sync already in progress",
		},
		{
			name:       "plain body",
			status:     http.StatusInternalServerError,
			body:       "internal\n",
			wantDetail: "internal",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := New(srv.URL).Sync(context.Background())
			require.Error(t, err)

			var apiErr *APIError
			require.True(t, errors.As(err, &apiErr))
			assert.Equal(t, tt.status, apiErr.StatusCode)
			assert.Equal(t, tt.wantDetail, apiErr.Detail)
		})
	}
}

func TestClient_ListOrders(t *testing.T) {
	t.Parallel()

	shipped := false

	tests := []struct {
		name      string
		filter    *OrderFilter
		wantQuery string
	}{
		{name: "nil filter", filter: nil, wantQuery: ""},
		{name: "empty filter", filter: &OrderFilter{}, wantQuery: ""},
		{
			name: "all filters",
			filter: &OrderFilter{
				Status:       jet.OrderReady,
				HasShipments: &shipped,
				Limit:        10,
				Offset:       20,
				OrderBy:      "updated",
			},
			wantQuery: "has_shipments=false&limit=10&offset=20&order_by=updated&status=ready",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/api/v1/orders", r.URL.Path)
				assert.Equal(t, tt.wantQuery, r.URL.RawQuery)
				w.Header().Set("Content-Type", "application/json")
				_ = json.NewEncoder(w).Encode(OrderList{
					Orders: []domain.StoredOrder{{MerchantOrderID: "m1", Status: jet.OrderReady}},
					Total:  1,
					Limit:  50,
				})
			}))
			defer srv.Close()

			list, err := New(srv.URL).ListOrders(context.Background(), tt.filter)
			require.NoError(t, err)
			assert.Equal(t, 1, list.Total)
			require.Len(t, list.Orders, 1)
			assert.Equal(t, "m1", list.Orders[0].MerchantOrderID)
		})
	}
}

func TestClient_GetOrder(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/orders/abc%2Fdef", r.URL.EscapedPath())
		_ = json.NewEncoder(w).Encode(domain.StoredOrder{MerchantOrderID: "abc/def"})
	}))
	defer srv.Close()

	o, err := New(srv.URL).GetOrder(context.Background(), "abc/def")
	require.NoError(t, err)
	assert.Equal(t, "abc/def", o.MerchantOrderID)
}

func TestClient_OrderCounts(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/orders/counts", r.URL.Path)
		_, _ = w.Write([]byte(`{"counts":[{"status":"ready","count":2}]}`))
	}))
	defer srv.Close()

	counts, err := New(srv.URL).OrderCounts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.StatusCount{{Status: jet.OrderReady, Count: 2}}, counts)
}

func TestClient_AcknowledgeOrder(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/v1/orders/m1/acknowledge", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var ack jet.AcknowledgeOrderRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&ack))
		assert.Equal(t, jet.AckAccepted, ack.AcknowledgementStatus)

		_, _ = w.Write([]byte(`{"status":"acknowledged"}`))
	}))
	defer srv.Close()

	err := New(srv.URL).AcknowledgeOrder(context.Background(), "m1", &jet.AcknowledgeOrderRequest{
		AcknowledgementStatus: jet.AckAccepted,
	})
	require.NoError(t, err)
}

func TestClient_ShipOrder(t *testing.T) {
	t.Parallel()

	shippedAt := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/orders/m1/shipped", r.URL.Path)

		var body handlers.ShipOrderBody
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		if assert.Len(t, body.Shipments, 1) {
			assert.Equal(t, "FedEx", body.Shipments[0].Carrier)
			assert.True(t, shippedAt.Equal(body.Shipments[0].ShippedAt))
		}
		_, _ = w.Write([]byte(`{"status":"shipped"}`))
	}))
	defer srv.Close()

	err := New(srv.URL).ShipOrder(context.Background(), "m1", &handlers.ShipOrderBody{
		Shipments: []handlers.ShipmentBody{{
			Carrier:   "FedEx",
			ShippedAt: shippedAt,
			Items:     []handlers.ShipmentItem{{MerchantSKU: "sku-1", Quantity: 1}},
		}},
	})
	require.NoError(t, err)
}

func TestClient_Sync(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/sync", r.URL.Path)
		_ = json.NewEncoder(w).Encode(syncer.Result{RunID: "run-1", Seen: 3, Stored: 2})
	}))
	defer srv.Close()

	res, err := New(srv.URL).Sync(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "run-1", res.RunID)
	assert.Equal(t, 2, res.Stored)
}

func TestClient_ListSyncRuns(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/sync/runs", r.URL.Path)
		assert.Equal(t, "5", r.URL.Query().Get("limit"))
		_, _ = w.Write([]byte(`{"runs":[{"id":"r1","trigger":"manual","status":"succeeded"}]}`))
	}))
	defer srv.Close()

	runs, err := New(srv.URL).ListSyncRuns(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, domain.SyncRunSucceeded, runs[0].Status)
}

func TestClient_GetQuota(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"daily_limit":100,"daily_used":7,"remaining":93}`))
	}))
	defer srv.Close()

	q, err := New(srv.URL).GetQuota(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(93), q.Remaining)
	assert.Nil(t, q.ResetAt)
}
