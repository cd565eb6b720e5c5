// Package main implements a mock Jet merchant API server for local
// development. It issues tokens for any user and secret and serves a small
// in-memory order book that moves through the ready, acknowledged and
// inprogress states as the client acknowledges and ships orders.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/donaldgifford/jet-merchant/internal/jet"
)

const (
	tokenPrefix   = "mock-token-"
	tokenLifetime = 10 * time.Hour
	detailPrefix  = "/orders/withoutShipmentDetail/"
)

// merchant is the mock server's in-memory state.
type merchant struct {
	log *slog.Logger

	mu        sync.Mutex
	orders    map[string]*jet.Order
	inventory map[string]*jet.Inventory
	prices    map[string]*jet.Price
}

func newMerchant(log *slog.Logger, readyOrders int, now time.Time) *merchant {
	m := &merchant{
		log:       log,
		orders:    make(map[string]*jet.Order, readyOrders),
		inventory: make(map[string]*jet.Inventory),
		prices:    make(map[string]*jet.Price),
	}
	for i := range readyOrders {
		o := seedOrder(i, now)
		m.orders[o.MerchantOrderID] = o
	}
	return m
}

func seedOrder(i int, now time.Time) *jet.Order {
	placed := now.Add(-time.Duration(i+1) * time.Hour).UTC().Truncate(time.Second)
	sku := fmt.Sprintf("SKU-%03d", i%5)
	return &jet.Order{
		MerchantOrderID:  strings.ReplaceAll(uuid.NewString(), "-", ""),
		ReferenceOrderID: strconv.Itoa(800000000000 + i),
		FulfillmentNode:  "mock-node-1",
		Status:           jet.OrderReady,
		OrderPlacedDate:  placed,
		OrderDetail: jet.OrderDetail{
			RequestShippingMethod: "UPS",
			RequestServiceLevel:   "Standard",
			RequestShipBy:         placed.Add(48 * time.Hour),
			RequestDeliveryBy:     placed.Add(120 * time.Hour),
		},
		Buyer: jet.Buyer{Name: "Mock Buyer", PhoneNumber: "555-0100"},
		ShippingTo: jet.ShippingTo{
			Recipient: jet.Buyer{Name: "Mock Buyer", PhoneNumber: "555-0100"},
			Address: jet.Address{
				Address1: strconv.Itoa(100+i) + " Main St",
				City:     "Hoboken",
				State:    "NJ",
				ZipCode:  "07030",
			},
		},
		OrderItems: []jet.OrderItem{{
			OrderItemID:          strings.ReplaceAll(uuid.NewString(), "-", ""),
			MerchantSKU:          sku,
			ProductTitle:         "Mock product " + sku,
			RequestOrderQuantity: 1 + i%3,
			ItemPrice:            jet.ItemPrice{BasePrice: 19.99, ItemShippingCost: 4.5},
		}},
	}
}

func main() {
	port := flag.Int("port", 8089, "port to listen on")
	readyOrders := flag.Int("orders", 5, "number of ready orders to seed")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	m := newMerchant(logger, *readyOrders, time.Now())
	logger.Info("seeded orders", "ready", *readyOrders)

	addr := fmt.Sprintf(":%d", *port)
	logger.Info("starting mock Jet server", "addr", addr, "base_url", fmt.Sprintf("http://localhost:%d/api", *port))

	srv := &http.Server{
		Addr:         addr,
		Handler:      requestLogger(logger, m.routes()),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func (m *merchant) routes() http.Handler {
	api := http.NewServeMux()
	api.HandleFunc("POST /token", m.tokenHandler)
	api.HandleFunc("GET /orders/withoutShipmentDetail/{id}", m.orderDetailHandler)
	api.HandleFunc("GET /orders/{status}", m.orderListHandler)
	api.HandleFunc("PUT /orders/{id}/acknowledge", m.acknowledgeHandler)
	api.HandleFunc("PUT /orders/{id}/shipped", m.shippedHandler)
	api.HandleFunc("GET /merchant-skus/{sku}/inventory", m.getInventoryHandler)
	api.HandleFunc("PUT /merchant-skus/{sku}/inventory", m.putInventoryHandler)
	api.HandleFunc("GET /merchant-skus/{sku}/price", m.getPriceHandler)
	api.HandleFunc("PUT /merchant-skus/{sku}/price", m.putPriceHandler)

	mux := http.NewServeMux()
	mux.Handle("/api/", http.StripPrefix("/api", requireBearer(api)))
	return mux
}

func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.Debug("request", "method", r.Method, "path", r.URL.Path)
		next.ServeHTTP(w, r)
	})
}

// requireBearer rejects everything but the token endpoint unless it carries
// a token this server issued.
func requireBearer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/token" {
			tok, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !ok || !strings.HasPrefix(tok, tokenPrefix) {
				writeJSON(w, http.StatusUnauthorized, map[string]string{"Message": "Authorization has been denied for this request."})
				return
			}
		}
		next.ServeHTTP(w, r)
	})
}

func (m *merchant) tokenHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		User string `json:"user"`
		Pass string `json:"pass"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.User == "" || req.Pass == "" {
		m.log.Warn("token request missing user or pass")
		writeJSON(w, http.StatusBadRequest, map[string]string{"Message": "user and pass are required"})
		return
	}

	writeJSON(w, http.StatusOK, jet.Credential{
		Token:     tokenPrefix + strings.ReplaceAll(uuid.NewString(), "-", ""),
		TokenType: "Bearer",
		ExpiresOn: time.Now().Add(tokenLifetime).UTC(),
	})
	m.log.Info("issued mock token", "user", req.User)
}

func (m *merchant) orderListHandler(w http.ResponseWriter, r *http.Request) {
	st, ok := jet.ParseOrderStatus(r.PathValue("status"))
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"Message": "unknown order status"})
		return
	}

	m.mu.Lock()
	urls := make([]string, 0, len(m.orders))
	for id, o := range m.orders {
		if o.Status == st {
			urls = append(urls, detailPrefix+id)
		}
	}
	m.mu.Unlock()

	writeJSON(w, http.StatusOK, jet.OrderURLs{OrderURLs: urls})
	m.log.Info("listed orders", "status", st, "count", len(urls))
}

func (m *merchant) orderDetailHandler(w http.ResponseWriter, r *http.Request) {
	m.mu.Lock()
	o, ok := m.orders[r.PathValue("id")]
	var snapshot jet.Order
	if ok {
		snapshot = *o
	}
	m.mu.Unlock()

	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"Message": "order not found"})
		return
	}
	writeJSON(w, http.StatusOK, snapshot)
}

func (m *merchant) acknowledgeHandler(w http.ResponseWriter, r *http.Request) {
	var ack jet.AcknowledgeOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&ack); err != nil || ack.AcknowledgementStatus == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"Message": "acknowledgement_status is required"})
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	o, ok := m.orders[r.PathValue("id")]
	switch {
	case !ok:
		writeJSON(w, http.StatusNotFound, map[string]string{"Message": "order not found"})
		return
	case o.Status != jet.OrderReady:
		writeJSON(w, http.StatusBadRequest, map[string]string{"Message": "order is not ready"})
		return
	}

	now := time.Now().UTC()
	status := string(ack.AcknowledgementStatus)
	o.AcknowledgementStatus = &status
	o.OrderAcknowledgeDate = &now
	o.Status = jet.OrderAcknowledged
	if ack.AcknowledgementStatus != jet.AckAccepted {
		o.Status = jet.OrderComplete
	}
	for _, it := range ack.OrderItems {
		for i := range o.OrderItems {
			if o.OrderItems[i].OrderItemID == it.OrderItemID {
				st := it.OrderItemAcknowledgementStatus
				o.OrderItems[i].OrderItemAcknowledgementStatus = &st
			}
		}
	}

	w.WriteHeader(http.StatusNoContent)
	m.log.Info("acknowledged order", "id", o.MerchantOrderID, "status", status)
}

func (m *merchant) shippedHandler(w http.ResponseWriter, r *http.Request) {
	var ship jet.ShipOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&ship); err != nil || len(ship.Shipments) == 0 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"Message": "at least one shipment is required"})
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	o, ok := m.orders[r.PathValue("id")]
	switch {
	case !ok:
		writeJSON(w, http.StatusNotFound, map[string]string{"Message": "order not found"})
		return
	case o.Status != jet.OrderAcknowledged && o.Status != jet.OrderInProgress:
		writeJSON(w, http.StatusBadRequest, map[string]string{"Message": "order is not acknowledged"})
		return
	}

	for i := range ship.Shipments {
		s := &ship.Shipments[i]
		shipped := s.ResponseShipmentDate.Time
		rec := jet.Shipment{
			ShipmentID:             strings.ReplaceAll(uuid.NewString(), "-", ""),
			ShipmentTrackingNumber: s.ShipmentTrackingNumber,
			ResponseShipmentDate:   &shipped,
			Carrier:                s.Carrier,
		}
		for _, it := range s.ShipmentItems {
			days := it.DaysToReturn
			rec.ShipmentItems = append(rec.ShipmentItems, jet.ShipmentItem{
				MerchantSKU:                 it.MerchantSKU,
				ResponseShipmentSKUQuantity: it.ResponseShipmentSKUQuantity,
				DaysToReturn:                &days,
			})
		}
		o.Shipments = append(o.Shipments, rec)
	}
	o.HasShipments = true
	o.Status = jet.OrderInProgress
	if shippedAll(o) {
		o.Status = jet.OrderComplete
	}

	w.WriteHeader(http.StatusNoContent)
	m.log.Info("shipped order", "id", o.MerchantOrderID, "status", o.Status)
}

// shippedAll reports whether every requested unit of o has shipped.
func shippedAll(o *jet.Order) bool {
	shipped := make(map[string]int)
	for _, s := range o.Shipments {
		for _, it := range s.ShipmentItems {
			shipped[it.MerchantSKU] += it.ResponseShipmentSKUQuantity
		}
	}
	for _, it := range o.OrderItems {
		if shipped[it.MerchantSKU] < it.RequestOrderQuantity {
			return false
		}
	}
	return true
}

func (m *merchant) getInventoryHandler(w http.ResponseWriter, r *http.Request) {
	m.mu.Lock()
	inv, ok := m.inventory[r.PathValue("sku")]
	m.mu.Unlock()
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"Message": "sku not found"})
		return
	}
	writeJSON(w, http.StatusOK, inv)
}

func (m *merchant) putInventoryHandler(w http.ResponseWriter, r *http.Request) {
	var inv jet.Inventory
	if err := json.NewDecoder(r.Body).Decode(&inv); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"Message": "invalid inventory body"})
		return
	}
	m.mu.Lock()
	m.inventory[r.PathValue("sku")] = &inv
	m.mu.Unlock()
	w.WriteHeader(http.StatusNoContent)
}

func (m *merchant) getPriceHandler(w http.ResponseWriter, r *http.Request) {
	m.mu.Lock()
	p, ok := m.prices[r.PathValue("sku")]
	m.mu.Unlock()
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"Message": "sku not found"})
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (m *merchant) putPriceHandler(w http.ResponseWriter, r *http.Request) {
	var p jet.Price
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil || p.Price < 0 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"Message": "invalid price body"})
		return
	}
	m.mu.Lock()
	m.prices[r.PathValue("sku")] = &p
	m.mu.Unlock()
	w.WriteHeader(http.StatusNoContent)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
	json.NewEncoder(w).Encode(v)
}
