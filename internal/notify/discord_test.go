package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/jet-merchant/internal/jet"
	"github.com/donaldgifford/jet-merchant/internal/metrics"
)

func testPayload(status jet.OrderStatus) OrderPayload {
	return OrderPayload{
		MerchantOrderID:  "6d6a9b3c2f0e4b1a8f5d3e2c1b0a9f8e",
		ReferenceOrderID: "502018354041",
		Status:           status,
		PlacedAt:         time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
		ShipBy:           time.Date(2024, 5, 3, 12, 0, 0, 0, time.UTC),
		ServiceLevel:     "Standard",
		ItemCount:        3,
		SKUs:             []string{"sku-1", "sku-2"},
		Total:            "$45.99",
		ShipTo:           "Hoboken, NJ 07030",
	}
}

func TestNewOrderPayload(t *testing.T) {
	t.Parallel()

	o := &jet.Order{
		MerchantOrderID:  "m1",
		ReferenceOrderID: "r1",
		Status:           jet.OrderReady,
		OrderDetail:      jet.OrderDetail{RequestServiceLevel: "Expedited"},
		ShippingTo: jet.ShippingTo{
			Address: jet.Address{City: "Hoboken", State: "NJ", ZipCode: "07030"},
		},
		OrderItems: []jet.OrderItem{
			{MerchantSKU: "a", RequestOrderQuantity: 2, ItemPrice: jet.ItemPrice{BasePrice: 10, ItemShippingCost: 1}},
			{MerchantSKU: "b", RequestOrderQuantity: 1, ItemPrice: jet.ItemPrice{BasePrice: 5}},
		},
	}

	p := NewOrderPayload(o)
	assert.Equal(t, "m1", p.MerchantOrderID)
	assert.Equal(t, 3, p.ItemCount)
	assert.Equal(t, []string{"a", "b"}, p.SKUs)
	assert.Equal(t, "$16.00", p.Total)
	assert.Equal(t, "Hoboken, NJ 07030", p.ShipTo)
	assert.Equal(t, "Expedited", p.ServiceLevel)

	// Order totals win over the per-item sum when present.
	o.OrderTotals.ItemPrice = &jet.ItemPrice{BasePrice: 20, ItemShippingCost: 2.5}
	assert.Equal(t, "$22.50", NewOrderPayload(o).Total)
}

func TestDiscordNotifier_SendOrder(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		order      OrderPayload
		statusCode int
		wantErr    bool
		errMsg     string
		wantColor  int
	}{
		{
			name:       "ready order uses green color",
			order:      testPayload(jet.OrderReady),
			statusCode: http.StatusNoContent,
			wantColor:  colorGreen,
		},
		{
			name:       "acknowledged order uses yellow color",
			order:      testPayload(jet.OrderAcknowledged),
			statusCode: http.StatusNoContent,
			wantColor:  colorYellow,
		},
		{
			name:       "complete order uses grey color",
			order:      testPayload(jet.OrderComplete),
			statusCode: http.StatusNoContent,
			wantColor:  colorGrey,
		},
		{
			name:       "discord returns 429 rate limited",
			order:      testPayload(jet.OrderReady),
			statusCode: http.StatusTooManyRequests,
			wantErr:    true,
			errMsg:     "rate limited",
		},
		{
			name:       "discord returns 400 error",
			order:      testPayload(jet.OrderReady),
			statusCode: http.StatusBadRequest,
			wantErr:    true,
			errMsg:     "discord returned 400",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var received discordWebhookPayload

			srv := httptest.NewServer(
				http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
					assert.Equal(t, http.MethodPost, r.Method)

					err := json.NewDecoder(r.Body).Decode(&received)
					assert.NoError(t, err)

					w.WriteHeader(tt.statusCode)
				}),
			)
			defer srv.Close()

			d := NewDiscordNotifier(srv.URL)
			err := d.SendOrder(context.Background(), &tt.order)

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}

			require.NoError(t, err)
			require.Len(t, received.Embeds, 1)

			embed := received.Embeds[0]
			assert.Equal(t, tt.wantColor, embed.Color)
			assert.Contains(t, embed.Title, tt.order.ReferenceOrderID)
			assert.Contains(t, embed.Title, string(tt.order.Status))
			assert.Equal(t, "2024-05-01T12:00:00Z", embed.Timestamp)

			fieldMap := make(map[string]string)
			for _, f := range embed.Fields {
				fieldMap[f.Name] = f.Value
			}
			assert.Equal(t, tt.order.MerchantOrderID, fieldMap["Merchant Order ID"])
			assert.Equal(t, "3", fieldMap["Items"])
			assert.Equal(t, "$45.99", fieldMap["Total"])
			assert.Equal(t, "sku-1, sku-2", fieldMap["SKUs"])
			assert.Equal(t, "Hoboken, NJ 07030", fieldMap["Ship To"])
		})
	}
}

func TestDiscordNotifier_SendOrder_MinimalFields(t *testing.T) {
	t.Parallel()

	var received discordWebhookPayload

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		err := json.NewDecoder(r.Body).Decode(&received)
		assert.NoError(t, err)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	d := NewDiscordNotifier(srv.URL)
	err := d.SendOrder(context.Background(), &OrderPayload{MerchantOrderID: "m1", Status: jet.OrderReady})
	require.NoError(t, err)

	require.Len(t, received.Embeds, 1)
	assert.Len(t, received.Embeds[0].Fields, 3)
	assert.Empty(t, received.Embeds[0].Timestamp)
}

func TestDiscordNotifier_SendBatch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		count      int
		wantEmbeds int
		wantCalls  int
	}{
		{name: "empty batch sends nothing", count: 0, wantEmbeds: 0, wantCalls: 0},
		{name: "three orders", count: 3, wantEmbeds: 3, wantCalls: 1},
		{name: "exactly ten orders", count: 10, wantEmbeds: 10, wantCalls: 1},
		{name: "overflow adds summary embed", count: 13, wantEmbeds: 11, wantCalls: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var (
				received discordWebhookPayload
				calls    int
			)
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				calls++
				err := json.NewDecoder(r.Body).Decode(&received)
				assert.NoError(t, err)
				w.WriteHeader(http.StatusNoContent)
			}))
			defer srv.Close()

			orders := make([]OrderPayload, tt.count)
			for i := range orders {
				orders[i] = testPayload(jet.OrderReady)
			}

			d := NewDiscordNotifier(srv.URL)
			require.NoError(t, d.SendBatch(context.Background(), orders))

			assert.Equal(t, tt.wantCalls, calls)
			assert.Len(t, received.Embeds, tt.wantEmbeds)
			if tt.count > maxEmbeds {
				assert.Equal(t, "... and 3 more orders", received.Embeds[maxEmbeds].Title)
			}
		})
	}
}

func TestDiscordNotifier_NetworkError(t *testing.T) {
	t.Parallel()

	d := NewDiscordNotifier("http://127.0.0.1:1") // nothing listening
	order := testPayload(jet.OrderReady)
	err := d.SendOrder(context.Background(), &order)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sending discord webhook")
}

func TestDiscordNotifier_InvalidWebhookURL(t *testing.T) {
	t.Parallel()

	d := NewDiscordNotifier("://not-a-valid-url")
	order := testPayload(jet.OrderReady)
	err := d.SendOrder(context.Background(), &order)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "creating discord request")
}

func TestWithHTTPClient(t *testing.T) {
	t.Parallel()

	custom := &http.Client{}
	d := NewDiscordNotifier("https://example.com", WithHTTPClient(custom))
	assert.Same(t, custom, d.client)
}

func getNotificationHistogramSampleCount() uint64 {
	ch := make(chan prometheus.Metric, 1)
	metrics.NotificationDuration.Collect(ch)
	m := <-ch
	pb := &dto.Metric{}
	_ = m.Write(pb)
	return pb.GetHistogram().GetSampleCount()
}

func TestSendOrder_ObservesNotificationDuration(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	before := getNotificationHistogramSampleCount()

	d := NewDiscordNotifier(srv.URL)
	err := d.SendOrder(context.Background(), &OrderPayload{MerchantOrderID: "m1", Status: jet.OrderReady})
	require.NoError(t, err)

	after := getNotificationHistogramSampleCount()
	assert.Greater(t, after, before, "NotificationDuration histogram sample count should increase")
}
