// AngelaMos | 2026
// events.go

package order

import (
	"time"
)

const (
	EventOrderCreated       = "order.created"
	EventOrderStatusChanged = "order.status_changed"
	EventPaymentConfirmed   = "order.payment_confirmed"
)

type createdPayload struct {
	OrderID       string    `json:"order_id"`
	Total         float64   `json:"total"`
	ItemCount     int       `json:"item_count"`
	PaymentMethod string    `json:"payment_method"`
	PaymentStatus string    `json:"payment_status"`
	CreatedAt     time.Time `json:"created_at"`
}

type statusChangedPayload struct {
	OrderID       string `json:"order_id"`
	OrderStatus   string `json:"order_status"`
	PaymentStatus string `json:"payment_status"`
}

type paymentConfirmedPayload struct {
	OrderID           string  `json:"order_id"`
	RazorpayOrderID   string  `json:"razorpay_order_id"`
	RazorpayPaymentID string  `json:"razorpay_payment_id"`
	Total             float64 `json:"total"`
}
