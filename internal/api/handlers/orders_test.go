package handlers_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/jet-merchant/internal/api/handlers"
	"github.com/donaldgifford/jet-merchant/internal/domain"
	"github.com/donaldgifford/jet-merchant/internal/jet"
	jetMocks "github.com/donaldgifford/jet-merchant/internal/jet/mocks"
	"github.com/donaldgifford/jet-merchant/internal/store"
	storeMocks "github.com/donaldgifford/jet-merchant/internal/store/mocks"
)

func newOrdersAPI(t *testing.T) (humatest.TestAPI, *storeMocks.MockStore, *jetMocks.MockMerchantClient) {
	t.Helper()
	ms := storeMocks.NewMockStore(t)
	mc := jetMocks.NewMockMerchantClient(t)

	_, api := humatest.New(t)
	handlers.RegisterOrderRoutes(api, handlers.NewOrdersHandler(ms, mc))
	return api, ms, mc
}

func TestOrdersHandler_List(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		query      string
		setupMock  func(*storeMocks.MockStore)
		wantStatus int
		wantBody   string
	}{
		{
			name:  "no filters returns orders",
			query: "",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					ListOrders(mock.Anything, mock.Anything).
					Return([]domain.StoredOrder{
						{ID: "o1", MerchantOrderID: "m1", Status: jet.OrderReady},
					}, 1, nil).
					Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"total":1`,
		},
		{
			name:  "status filter",
			query: "?status=ready",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					ListOrders(mock.Anything, mock.MatchedBy(func(q *store.OrderQuery) bool {
						return q.Status != nil && *q.Status == jet.OrderReady && q.HasShipments == nil
					})).
					Return(nil, 0, nil).
					Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"orders":[]`,
		},
		{
			name:  "has shipments filter",
			query: "?has_shipments=false",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					ListOrders(mock.Anything, mock.MatchedBy(func(q *store.OrderQuery) bool {
						return q.HasShipments != nil && !*q.HasShipments
					})).
					Return(nil, 0, nil).
					Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name:  "pagination params",
			query: "?limit=10&offset=20&order_by=updated",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					ListOrders(mock.Anything, mock.MatchedBy(func(q *store.OrderQuery) bool {
						return q.Limit == 10 && q.Offset == 20 && q.OrderBy == "updated"
					})).
					Return(nil, 0, nil).
					Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"offset":20`,
		},
		{
			name:       "unknown status rejected",
			query:      "?status=shipped",
			setupMock:  func(*storeMocks.MockStore) {},
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:  "store error",
			query: "",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().ListOrders(mock.Anything, mock.Anything).Return(nil, 0, errors.New("db down")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   "order query failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			api, ms, _ := newOrdersAPI(t)
			tt.setupMock(ms)

			resp := api.Get("/api/v1/orders" + tt.query)
			require.Equal(t, tt.wantStatus, resp.Code)
			if tt.wantBody != "" {
				assert.Contains(t, resp.Body.String(), tt.wantBody)
			}
		})
	}
}

func TestOrdersHandler_Get(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		getErr     error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "found",
			wantStatus: http.StatusOK,
			wantBody:   `"merchant_order_id":"m1"`,
		},
		{
			name:       "not found",
			getErr:     fmt.Errorf("order m1: %w", store.ErrNotFound),
			wantStatus: http.StatusNotFound,
			wantBody:   "order not found",
		},
		{
			name:       "store error",
			getErr:     errors.New("db down"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   "order lookup failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			api, ms, _ := newOrdersAPI(t)

			var o *domain.StoredOrder
			if tt.getErr == nil {
				o = &domain.StoredOrder{
					ID:              "o1",
					MerchantOrderID: "m1",
					Status:          jet.OrderAcknowledged,
					Order:           jet.Order{MerchantOrderID: "m1", Status: jet.OrderAcknowledged},
				}
			}
			ms.EXPECT().GetOrder(mock.Anything, "m1").Return(o, tt.getErr).Once()

			resp := api.Get("/api/v1/orders/m1")
			require.Equal(t, tt.wantStatus, resp.Code)
			assert.Contains(t, resp.Body.String(), tt.wantBody)
		})
	}
}

func TestOrdersHandler_Counts(t *testing.T) {
	t.Parallel()

	api, ms, _ := newOrdersAPI(t)
	ms.EXPECT().CountOrdersByStatus(mock.Anything).Return([]domain.StatusCount{
		{Status: jet.OrderReady, Count: 4},
		{Status: jet.OrderComplete, Count: 9},
	}, nil).Once()

	resp := api.Get("/api/v1/orders/counts")
	require.Equal(t, http.StatusOK, resp.Code)

	var body struct {
		Counts []domain.StatusCount `json:"counts"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	require.Len(t, body.Counts, 2)
	assert.Equal(t, jet.OrderReady, body.Counts[0].Status)
	assert.Equal(t, 9, body.Counts[1].Count)
}

func TestOrdersHandler_Acknowledge(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		ackErr     error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "accepted",
			wantStatus: http.StatusOK,
			wantBody:   `"status":"acknowledged"`,
		},
		{
			name:       "jet rejects message",
			ackErr:     &jet.RequestError{Path: "/orders/m1/acknowledge", StatusCode: 400, Body: "bad item"},
			wantStatus: http.StatusBadRequest,
			wantBody:   "bad item",
		},
		{
			name:       "jet rejects our credential",
			ackErr:     &jet.RequestError{Path: "/orders/m1/acknowledge", StatusCode: 401, Body: "expired"},
			wantStatus: http.StatusBadGateway,
			wantBody:   "expired",
		},
		{
			name:       "jet forbids the merchant",
			ackErr:     &jet.RequestError{Path: "/orders/m1/acknowledge", StatusCode: 403, Body: "forbidden"},
			wantStatus: http.StatusBadGateway,
		},
		{
			name:       "order not found passes through",
			ackErr:     &jet.RequestError{Path: "/orders/m1/acknowledge", StatusCode: 404, Body: "no order"},
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "token exchange failure is bad gateway",
			ackErr:     &jet.TokenRequestError{StatusCode: 401, Body: "nope"},
			wantStatus: http.StatusBadGateway,
		},
		{
			name:       "daily limit",
			ackErr:     fmt.Errorf("rate limit: %w", jet.ErrDailyLimitReached),
			wantStatus: http.StatusTooManyRequests,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			api, _, mc := newOrdersAPI(t)
			mc.EXPECT().
				AcknowledgeOrder(mock.Anything, "m1", mock.MatchedBy(func(r *jet.AcknowledgeOrderRequest) bool {
					return r.AcknowledgementStatus == jet.AckAccepted &&
						len(r.OrderItems) == 1 &&
						r.OrderItems[0].OrderItemID == "item-1" &&
						r.OrderItems[0].OrderItemAcknowledgementStatus == jet.ItemFulfillable
				})).
				Return(tt.ackErr).
				Once()

			resp := api.Put("/api/v1/orders/m1/acknowledge", map[string]any{
				"acknowledgement_status": "accepted",
				"order_items": []map[string]any{
					{"order_item_id": "item-1", "order_item_acknowledgement_status": "fulfillable"},
				},
			})
			require.Equal(t, tt.wantStatus, resp.Code)
			if tt.wantBody != "" {
				assert.Contains(t, resp.Body.String(), tt.wantBody)
			}
		})
	}
}

func TestOrdersHandler_Ship(t *testing.T) {
	t.Parallel()

	api, _, mc := newOrdersAPI(t)

	shipped := time.Date(2021, 3, 5, 10, 15, 30, 0, time.UTC)
	mc.EXPECT().
		ShipOrder(mock.Anything, "m1", mock.MatchedBy(func(r *jet.ShipOrderRequest) bool {
			if len(r.Shipments) != 1 || r.AltOrderID != nil {
				return false
			}
			sh := r.Shipments[0]
			return sh.Carrier == "UPS" &&
				sh.ShipmentTrackingNumber != nil && *sh.ShipmentTrackingNumber == "1Z" &&
				sh.ResponseShipmentDate.String() == "2021-03-05T10:15:30.0000000-00:00" &&
				len(sh.ShipmentItems) == 1 &&
				sh.ShipmentItems[0].MerchantSKU == "sku-1" &&
				sh.ShipmentItems[0].ResponseShipmentSKUQuantity == 2
		})).
		Return(nil).
		Once()

	resp := api.Put("/api/v1/orders/m1/shipped", map[string]any{
		"shipments": []map[string]any{{
			"carrier":         "UPS",
			"tracking_number": "1Z",
			"shipped_at":      shipped.Format(time.RFC3339),
			"items": []map[string]any{
				{"merchant_sku": "sku-1", "quantity": 2, "days_to_return": 30},
			},
		}},
	})
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"status":"shipped"`)
}

func TestOrdersHandler_ShipValidation(t *testing.T) {
	t.Parallel()

	api, _, _ := newOrdersAPI(t)

	resp := api.Put("/api/v1/orders/m1/shipped", map[string]any{
		"shipments": []map[string]any{},
	})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
}
