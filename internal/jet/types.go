package jet

import "time"

// OrderStatus is the lifecycle state of a merchant order.
type OrderStatus string

// Order lifecycle states.
const (
	// OrderCreated orders are still inside the fraud-check and cancellation
	// window and must not be fulfilled.
	OrderCreated OrderStatus = "created"
	// OrderReady orders are ready to be fulfilled by the merchant.
	OrderReady OrderStatus = "ready"
	// OrderAcknowledged orders were accepted and await fulfillment.
	OrderAcknowledged OrderStatus = "acknowledged"
	// OrderInProgress orders are partially shipped.
	OrderInProgress OrderStatus = "inprogress"
	// OrderComplete orders are fully shipped or cancelled.
	OrderComplete OrderStatus = "complete"
)

// AllOrderStatuses lists every status in lifecycle order.
var AllOrderStatuses = []OrderStatus{
	OrderCreated,
	OrderReady,
	OrderAcknowledged,
	OrderInProgress,
	OrderComplete,
}

// Valid reports whether s is a known order status.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderCreated, OrderReady, OrderAcknowledged, OrderInProgress, OrderComplete:
		return true
	default:
		return false
	}
}

// ParseOrderStatus converts a string to an OrderStatus.
func ParseOrderStatus(s string) (OrderStatus, bool) {
	st := OrderStatus(s)
	return st, st.Valid()
}

// AcknowledgementStatus tells Jet whether the merchant accepts an order.
type AcknowledgementStatus string

// Order-level acknowledgement values.
const (
	AckAccepted                       AcknowledgementStatus = "accepted"
	AckRejectedOther                  AcknowledgementStatus = "rejected - other"
	AckRejectedFraud                  AcknowledgementStatus = "rejected - fraud"
	AckRejectedItemLevelError         AcknowledgementStatus = "rejected - item level error"
	AckRejectedShipFromNotAvailable   AcknowledgementStatus = "rejected - ship from location not available"
	AckRejectedShippingMethodNotValid AcknowledgementStatus = "rejected - shipping method not supported"
	AckRejectedUnfulfillableAddress   AcknowledgementStatus = "rejected - unfulfillable address"
)

// ItemAcknowledgementStatus marks a single order item as fulfillable or not.
type ItemAcknowledgementStatus string

// Item-level acknowledgement values.
const (
	ItemFulfillable               ItemAcknowledgementStatus = "fulfillable"
	ItemNonfulfillableInvalidSKU  ItemAcknowledgementStatus = "nonfulfillable - invalid merchant SKU"
	ItemNonfulfillableNoInventory ItemAcknowledgementStatus = "nonfulfillable - no inventory"
)

// OrderURLs is the response of the order listing endpoint.
type OrderURLs struct {
	OrderURLs []string `json:"order_urls"`
}

// OrderDetail holds the requested shipping details of an order.
type OrderDetail struct {
	RequestShippingCarrier *string   `json:"request_shipping_carrier,omitempty"`
	RequestShippingMethod  string    `json:"request_shipping_method"`
	RequestServiceLevel    string    `json:"request_service_level"`
	RequestShipBy          time.Time `json:"request_ship_by"`
	RequestDeliveryBy      time.Time `json:"request_delivery_by"`
}

// Buyer identifies a person on an order.
type Buyer struct {
	Name        string `json:"name"`
	PhoneNumber string `json:"phone_number"`
}

// Address is a postal address.
type Address struct {
	Address1 string  `json:"address1"`
	Address2 *string `json:"address2,omitempty"`
	City     string  `json:"city"`
	State    string  `json:"state"`
	ZipCode  string  `json:"zip_code"`
}

// ShippingTo is who and where the order ships to.
type ShippingTo struct {
	Recipient Buyer   `json:"recipient"`
	Address   Address `json:"address"`
}

// ItemPrice is the price breakdown of an order or order item.
type ItemPrice struct {
	BasePrice        float64  `json:"base_price"`
	ItemTax          *float64 `json:"item_tax,omitempty"`
	ItemShippingCost float64  `json:"item_shipping_cost"`
	ItemShippingTax  *float64 `json:"item_shipping_tax,omitempty"`
}

// FeeAdjustment is a commission adjustment applied by Jet.
type FeeAdjustment struct {
	AdjustmentName string  `json:"adjustment_name"`
	AdjustmentType string  `json:"adjustment_type"`
	CommissionID   string  `json:"commission_id"`
	Value          float64 `json:"value"`
}

// OrderTotals sums prices and fees across the order.
type OrderTotals struct {
	ItemPrice      *ItemPrice      `json:"item_price,omitempty"`
	ItemFees       *float64        `json:"item_fees,omitempty"`
	FeeAdjustments []FeeAdjustment `json:"fee_adjustments,omitzero"`
	RegulatoryFees *float64        `json:"regulatory_fees,omitempty"`
}

// OrderItem is a line item of an order.
type OrderItem struct {
	OrderItemID          string          `json:"order_item_id"`
	AltOrderItemID       *string         `json:"alt_order_item_id,omitempty"`
	MerchantSKU          string          `json:"merchant_sku"`
	ProductTitle         string          `json:"product_title"`
	RequestOrderQuantity int             `json:"request_order_quantity"`
	AdjustmentReason     *string         `json:"adjustment_reason,omitempty"`
	ItemTaxCode          *string         `json:"item_tax_code,omitempty"`
	URL                  string          `json:"url"`
	PriceAdjustment      *float64        `json:"price_adjustment,omitempty"`
	ItemFees             *float64        `json:"item_fees,omitempty"`
	FeeAdjustments       []FeeAdjustment `json:"fee_adjustments,omitzero"`
	RegulatoryFees       *float64        `json:"regulatory_fees,omitempty"`
	ItemPrice            ItemPrice       `json:"item_price"`

	// Set once the order moves from ready to acknowledged.
	OrderItemAcknowledgementStatus *ItemAcknowledgementStatus `json:"order_item_acknowledgement_status,omitempty"`
}

// ShipmentItem is a SKU within a recorded shipment.
type ShipmentItem struct {
	ShipmentItemID              *string  `json:"shipment_item_id,omitempty"`
	AltShipmentItemID           *string  `json:"alt_shipment_item_id,omitempty"`
	MerchantSKU                 string   `json:"merchant_sku"`
	ResponseShipmentSKUQuantity int      `json:"response_shipment_sku_quantity"`
	ResponseShipmentCancelQty   *int     `json:"response_shipment_cancel_qty,omitempty"`
	RMANumber                   *string  `json:"RMA_number,omitempty"`
	DaysToReturn                *int     `json:"days_to_return,omitempty"`
	ReturnLocation              *Address `json:"return_location,omitempty"`
}

// Shipment is a shipment recorded against an order by a shipped message.
type Shipment struct {
	ShipmentID             string         `json:"shipment_id"`
	AltShipmentID          *string        `json:"alt_shipment_id,omitempty"`
	ShipmentTrackingNumber *string        `json:"shipment_tracking_number,omitempty"`
	ResponseShipmentDate   *time.Time     `json:"response_shipment_date,omitempty"`
	ResponseShipmentMethod *string        `json:"response_shipment_method,omitempty"`
	ExpectedDeliveryDate   *time.Time     `json:"expected_delivery_date,omitempty"`
	ShipFromZipCode        *string        `json:"ship_from_zip_code,omitempty"`
	Carrier                string         `json:"carrier"`
	CarrierPickUpDate      *time.Time     `json:"carrier_pick_up_date,omitempty"`
	ShipmentItems          []ShipmentItem `json:"shipment_items"`
}

// Order is the full merchant order record. Pointer fields are absent until
// the order reaches the lifecycle stage that populates them. Optional lists
// use omitzero so that a present empty list is re-encoded as [].
type Order struct {
	// MerchantOrderID is Jet's unique ID for the order.
	MerchantOrderID string `json:"merchant_order_id"`
	// ReferenceOrderID is human readable and may collide over time.
	ReferenceOrderID         string      `json:"reference_order_id"`
	CustomerReferenceOrderID string      `json:"customer_reference_order_id"`
	FulfillmentNode          string      `json:"fulfillment_node"`
	AltOrderID               *string     `json:"alt_order_id,omitempty"`
	HashEmail                string      `json:"hash_email"`
	Status                   OrderStatus `json:"status"`
	ExceptionState           *string     `json:"exception_state,omitempty"`
	OrderPlacedDate          time.Time   `json:"order_placed_date"`
	OrderDetail              OrderDetail `json:"order_detail"`
	Buyer                    Buyer       `json:"buyer"`
	ShippingTo               ShippingTo  `json:"shipping_to"`
	OrderTotals              OrderTotals `json:"order_totals"`
	OrderItems               []OrderItem `json:"order_items"`
	OrderReadyDate           *time.Time  `json:"order_ready_date,omitempty"`
	HasShipments             bool        `json:"has_shipments"`
	OrderAcknowledgeDate     *time.Time  `json:"order_acknowledge_date,omitempty"`
	AcknowledgementStatus    *string     `json:"acknowledgement_status,omitempty"`
	Shipments                []Shipment  `json:"shipments,omitzero"`
}

// AcknowledgeOrderItem acknowledges a single order item.
type AcknowledgeOrderItem struct {
	OrderItemAcknowledgementStatus ItemAcknowledgementStatus `json:"order_item_acknowledgement_status"`
	OrderItemID                    string                    `json:"order_item_id"`
	// AltOrderItemID maps a merchant item ID onto Jet's order_item_id for
	// later messages.
	AltOrderItemID *string `json:"alt_order_item_id,omitempty"`
}

// AcknowledgeOrderRequest is the body of the acknowledge message.
type AcknowledgeOrderRequest struct {
	AcknowledgementStatus AcknowledgementStatus  `json:"acknowledgement_status"`
	AltOrderID            *string                `json:"alt_order_id,omitempty"`
	OrderItems            []AcknowledgeOrderItem `json:"order_items"`
}

// ShipOrderItem is a SKU within a shipped message.
type ShipOrderItem struct {
	MerchantSKU                 string `json:"merchant_sku"`
	ResponseShipmentSKUQuantity int    `json:"response_shipment_sku_quantity"`
	DaysToReturn                int    `json:"days_to_return"`
}

// ShipOrderShipment is one shipment within a shipped message.
type ShipOrderShipment struct {
	Carrier                string          `json:"carrier"`
	ShipmentTrackingNumber *string         `json:"shipment_tracking_number,omitempty"`
	ShipmentItems          []ShipOrderItem `json:"shipment_items"`
	ResponseShipmentDate   ShipmentTime    `json:"response_shipment_date"`
}

// ShipOrderRequest is the body of the shipped message.
type ShipOrderRequest struct {
	AltOrderID *string             `json:"alt_order_id,omitempty"`
	Shipments  []ShipOrderShipment `json:"shipments"`
}

// FulfillmentNodeQuantity is the stock of a SKU at one fulfillment node.
type FulfillmentNodeQuantity struct {
	FulfillmentNodeID string `json:"fulfillment_node_id"`
	Quantity          int    `json:"quantity"`
}

// Inventory is the per-node stock of a merchant SKU.
type Inventory struct {
	FulfillmentNodes []FulfillmentNodeQuantity `json:"fulfillment_nodes"`
}

// Price is the selling price of a merchant SKU.
type Price struct {
	Price float64 `json:"price"`
}
