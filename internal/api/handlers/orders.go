package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/jet-merchant/internal/domain"
	"github.com/donaldgifford/jet-merchant/internal/jet"
	"github.com/donaldgifford/jet-merchant/internal/store"
)

// OrdersHandler serves stored orders and forwards order actions to Jet.
type OrdersHandler struct {
	store  store.Store
	client jet.MerchantClient
}

// NewOrdersHandler creates a new OrdersHandler.
func NewOrdersHandler(s store.Store, c jet.MerchantClient) *OrdersHandler {
	return &OrdersHandler{store: s, client: c}
}

// --- Input/Output types ---

// ListOrdersInput is the input for listing stored orders.
type ListOrdersInput struct {
	Status       string `query:"status"        doc:"Filter by order status" enum:"created,ready,acknowledged,inprogress,complete,"`
	HasShipments string `query:"has_shipments" doc:"Filter by shipment state" enum:"true,false,"`
	Limit        int    `query:"limit"         doc:"Number of results" default:"50" minimum:"1" maximum:"500"`
	Offset       int    `query:"offset"        doc:"Pagination offset" minimum:"0"`
	OrderBy      string `query:"order_by"      doc:"Sort field" enum:"placed,updated,"`
}

// ListOrdersOutput is the response for listing stored orders.
type ListOrdersOutput struct {
	Body struct {
		Orders []domain.StoredOrder `json:"orders"`
		Total  int                  `json:"total"`
		Limit  int                  `json:"limit"`
		Offset int                  `json:"offset"`
	}
}

// GetOrderInput is the input for getting a single stored order.
type GetOrderInput struct {
	ID string `path:"id" doc:"Jet merchant order ID"`
}

// GetOrderOutput is the response for getting a single stored order.
type GetOrderOutput struct {
	Body domain.StoredOrder
}

// OrderCountsOutput is the response for order counts by status.
type OrderCountsOutput struct {
	Body struct {
		Counts []domain.StatusCount `json:"counts"`
	}
}

// AcknowledgeOrderInput is the input for acknowledging an order.
type AcknowledgeOrderInput struct {
	ID   string `path:"id" doc:"Jet merchant order ID"`
	Body jet.AcknowledgeOrderRequest
}

// ShipOrderInput is the input for marking an order shipped.
type ShipOrderInput struct {
	ID   string `path:"id" doc:"Jet merchant order ID"`
	Body ShipOrderBody
}

// ShipOrderBody describes the shipments sent for an order.
type ShipOrderBody struct {
	AltOrderID string         `json:"alt_order_id,omitempty" doc:"Merchant's own order ID"`
	Shipments  []ShipmentBody `json:"shipments"              minItems:"1"`
}

// ShipmentBody is one shipment in a ship request.
type ShipmentBody struct {
	Carrier        string         `json:"carrier"                   example:"UPS"`
	TrackingNumber string         `json:"tracking_number,omitempty" example:"1Z999AA10123456784"`
	ShippedAt      time.Time      `json:"shipped_at"                doc:"When the shipment left the fulfillment node"`
	Items          []ShipmentItem `json:"items"                     minItems:"1"`
}

// ShipmentItem is a SKU quantity within a shipment.
type ShipmentItem struct {
	MerchantSKU  string `json:"merchant_sku"`
	Quantity     int    `json:"quantity"       minimum:"1"`
	DaysToReturn int    `json:"days_to_return" minimum:"0"`
}

// Request converts the body into Jet's shipped message.
func (b *ShipOrderBody) Request() *jet.ShipOrderRequest {
	req := &jet.ShipOrderRequest{
		Shipments: make([]jet.ShipOrderShipment, 0, len(b.Shipments)),
	}
	if b.AltOrderID != "" {
		req.AltOrderID = &b.AltOrderID
	}
	for i := range b.Shipments {
		sb := &b.Shipments[i]
		sh := jet.ShipOrderShipment{
			Carrier:              sb.Carrier,
			ResponseShipmentDate: jet.NewShipmentTime(sb.ShippedAt),
		}
		if sb.TrackingNumber != "" {
			sh.ShipmentTrackingNumber = &sb.TrackingNumber
		}
		for _, it := range sb.Items {
			sh.ShipmentItems = append(sh.ShipmentItems, jet.ShipOrderItem{
				MerchantSKU:                 it.MerchantSKU,
				ResponseShipmentSKUQuantity: it.Quantity,
				DaysToReturn:                it.DaysToReturn,
			})
		}
		req.Shipments = append(req.Shipments, sh)
	}
	return req
}

// --- Handlers ---

// ListOrders returns stored orders with optional filters and pagination.
func (h *OrdersHandler) ListOrders(
	ctx context.Context,
	input *ListOrdersInput,
) (*ListOrdersOutput, error) {
	q := &store.OrderQuery{
		Limit:   input.Limit,
		Offset:  input.Offset,
		OrderBy: input.OrderBy,
	}

	if input.Status != "" {
		st := jet.OrderStatus(input.Status)
		q.Status = &st
	}

	if input.HasShipments != "" {
		v := input.HasShipments == "true"
		q.HasShipments = &v
	}

	orders, total, err := h.store.ListOrders(ctx, q)
	if err != nil {
		return nil, huma.Error500InternalServerError("order query failed: " + err.Error())
	}

	resp := &ListOrdersOutput{}
	resp.Body.Orders = orders
	if resp.Body.Orders == nil {
		resp.Body.Orders = []domain.StoredOrder{}
	}
	resp.Body.Total = total
	resp.Body.Limit = q.Limit
	resp.Body.Offset = q.Offset

	return resp, nil
}

// GetOrder returns a single stored order.
func (h *OrdersHandler) GetOrder(
	ctx context.Context,
	input *GetOrderInput,
) (*GetOrderOutput, error) {
	o, err := h.store.GetOrder(ctx, input.ID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, huma.Error404NotFound("order not found")
	}
	if err != nil {
		return nil, huma.Error500InternalServerError("order lookup failed: " + err.Error())
	}

	return &GetOrderOutput{Body: *o}, nil
}

// OrderCounts returns the number of stored orders per status.
func (h *OrdersHandler) OrderCounts(ctx context.Context, _ *struct{}) (*OrderCountsOutput, error) {
	counts, err := h.store.CountOrdersByStatus(ctx)
	if err != nil {
		return nil, huma.Error500InternalServerError("counting orders failed: " + err.Error())
	}

	resp := &OrderCountsOutput{}
	resp.Body.Counts = counts
	if resp.Body.Counts == nil {
		resp.Body.Counts = []domain.StatusCount{}
	}
	return resp, nil
}

// AcknowledgeOrder forwards an acknowledgement to Jet.
func (h *OrdersHandler) AcknowledgeOrder(
	ctx context.Context,
	input *AcknowledgeOrderInput,
) (*StatusOutput, error) {
	if err := h.client.AcknowledgeOrder(ctx, input.ID, &input.Body); err != nil {
		return nil, upstreamError("acknowledge failed", err)
	}
	return statusOutput("acknowledged"), nil
}

// ShipOrder forwards a shipment notice to Jet.
func (h *OrdersHandler) ShipOrder(
	ctx context.Context,
	input *ShipOrderInput,
) (*StatusOutput, error) {
	if err := h.client.ShipOrder(ctx, input.ID, input.Body.Request()); err != nil {
		return nil, upstreamError("ship failed", err)
	}
	return statusOutput("shipped"), nil
}

// upstreamError maps a merchant API failure onto an HTTP error. Jet's 4xx
// rejections of the message pass through. A 401 or 403 from Jet rejects our
// own credential, not the caller's, so it is a bad gateway like a failed
// token exchange and everything else.
func upstreamError(msg string, err error) error {
	var reqErr *jet.RequestError
	if errors.As(err, &reqErr) && passesThrough(reqErr.StatusCode) {
		return huma.NewError(reqErr.StatusCode, msg+": "+err.Error())
	}
	if errors.Is(err, jet.ErrDailyLimitReached) {
		return huma.Error429TooManyRequests(msg + ": " + err.Error())
	}
	return huma.NewError(http.StatusBadGateway, msg+": "+err.Error())
}

func passesThrough(code int) bool {
	switch code {
	case http.StatusUnauthorized, http.StatusForbidden:
		return false
	}
	return code >= 400 && code < 500
}

// RegisterOrderRoutes registers order endpoints with the Huma API.
func RegisterOrderRoutes(api huma.API, h *OrdersHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-orders",
		Method:      http.MethodGet,
		Path:        "/api/v1/orders",
		Summary:     "List stored orders",
		Description: "Returns synced orders with optional filters for status, shipments, and pagination.",
		Tags:        []string{"orders"},
		Errors:      []int{http.StatusInternalServerError},
	}, h.ListOrders)

	huma.Register(api, huma.Operation{
		OperationID: "order-counts",
		Method:      http.MethodGet,
		Path:        "/api/v1/orders/counts",
		Summary:     "Count stored orders by status",
		Tags:        []string{"orders"},
		Errors:      []int{http.StatusInternalServerError},
	}, h.OrderCounts)

	huma.Register(api, huma.Operation{
		OperationID: "get-order",
		Method:      http.MethodGet,
		Path:        "/api/v1/orders/{id}",
		Summary:     "Get a stored order",
		Description: "Returns a single synced order by its Jet merchant order ID.",
		Tags:        []string{"orders"},
		Errors:      []int{http.StatusNotFound, http.StatusInternalServerError},
	}, h.GetOrder)

	huma.Register(api, huma.Operation{
		OperationID: "acknowledge-order",
		Method:      http.MethodPut,
		Path:        "/api/v1/orders/{id}/acknowledge",
		Summary:     "Acknowledge an order",
		Description: "Sends an acknowledgement message for the order to Jet.",
		Tags:        []string{"orders"},
		Errors:      []int{http.StatusBadRequest, http.StatusTooManyRequests, http.StatusBadGateway},
	}, h.AcknowledgeOrder)

	huma.Register(api, huma.Operation{
		OperationID: "ship-order",
		Method:      http.MethodPut,
		Path:        "/api/v1/orders/{id}/shipped",
		Summary:     "Mark an order shipped",
		Description: "Sends a shipped message for the order to Jet.",
		Tags:        []string{"orders"},
		Errors:      []int{http.StatusBadRequest, http.StatusTooManyRequests, http.StatusBadGateway},
	}, h.ShipOrder)
}
