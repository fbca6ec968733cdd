package kafka

import "time"

// StockReservation is one stock row touched during order confirmation.
type StockReservation struct {
	StockID     string `json:"stock_id"`
	WarehouseID string `json:"warehouse_id"`
	Qty         int    `json:"qty"`
}

// OrderConfirmedEvent is emitted after an order transitions to
// CONFIRMED and all of its stock has been reserved.
type OrderConfirmedEvent struct {
	EventID      string             `json:"event_id"`
	EventType    string             `json:"event_type"`
	OrderID      string             `json:"order_id"`
	CustomerID   string             `json:"customer_id"`
	TotalAmount  float64            `json:"total_amount"`
	TotalItems   int                `json:"total_items"`
	Reservations []StockReservation `json:"reservations"`
	Timestamp    time.Time          `json:"timestamp"`
}

// PaymentConfirmedEvent is emitted after a payment transitions to
// CONFIRMED.
type PaymentConfirmedEvent struct {
	EventID   string    `json:"event_id"`
	EventType string    `json:"event_type"`
	PaymentID string    `json:"payment_id"`
	OrderID   string    `json:"order_id"`
	Method    string    `json:"method"`
	Amount    float64   `json:"amount"`
	Timestamp time.Time `json:"timestamp"`
}

// Event types
const (
	EventTypeOrderConfirmed   = "order.confirmed"
	EventTypePaymentConfirmed = "payment.confirmed"
)

// Kafka topics
const (
	TopicOrderConfirmed   = "order-confirmed"
	TopicPaymentConfirmed = "payment-confirmed"
)
