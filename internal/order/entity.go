// AngelaMos | 2026
// entity.go

package order

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusShipped   = "shipped"
	StatusDelivered = "delivered"
	StatusCancelled = "cancelled"
)

const (
	PaymentPending = "pending"
	PaymentPaid    = "paid"
	PaymentFailed  = "failed"
)

const (
	MethodCOD      = "COD"
	MethodRazorpay = "RAZORPAY"
)

type Order struct {
	OrderID           string       `db:"order_id"            json:"order_id"`
	CustomerInfo      CustomerInfo `db:"customer_info"       json:"customer_info"`
	Items             Items        `db:"items"               json:"items"`
	Subtotal          float64      `db:"subtotal"            json:"subtotal"`
	ShippingFee       float64      `db:"shipping_fee"        json:"shipping_fee"`
	Total             float64      `db:"total"               json:"total"`
	PaymentMethod     string       `db:"payment_method"      json:"payment_method"`
	RazorpayOrderID   *string      `db:"razorpay_order_id"   json:"razorpay_order_id"`
	RazorpayPaymentID *string      `db:"razorpay_payment_id" json:"razorpay_payment_id"`
	RazorpaySignature *string      `db:"razorpay_signature"  json:"razorpay_signature"`
	OrderStatus       string       `db:"order_status"        json:"order_status"`
	PaymentStatus     string       `db:"payment_status"      json:"payment_status"`
	CreatedAt         time.Time    `db:"created_at"          json:"created_at"`
}

// CustomerInfo is the buyer snapshot taken at checkout. It is stored with
// the order and never follows later profile edits.
type CustomerInfo struct {
	Name    string `json:"name"    validate:"required,max=100"`
	Email   string `json:"email"   validate:"required,email"`
	Phone   string `json:"phone"   validate:"required,min=7,max=20"`
	Address string `json:"address" validate:"required,max=500"`
	City    string `json:"city"    validate:"required,max=100"`
	State   string `json:"state"   validate:"required,max=100"`
	Pincode string `json:"pincode" validate:"required,max=12"`
}

func (c CustomerInfo) Value() (driver.Value, error) {
	return json.Marshal(c)
}

func (c *CustomerInfo) Scan(src any) error {
	return scanJSON(src, c)
}

type Item struct {
	ID       string  `json:"id"       validate:"required"`
	Name     string  `json:"name"     validate:"required"`
	Price    float64 `json:"price"    validate:"gte=0"`
	Quantity int     `json:"quantity" validate:"gte=1"`
	Weight   string  `json:"weight"`
	Image    string  `json:"image"`
}

type Items []Item

func (i Items) Value() (driver.Value, error) {
	if i == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]Item(i))
}

func (i *Items) Scan(src any) error {
	return scanJSON(src, (*[]Item)(i))
}

func scanJSON(src, dest any) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, dest)
	case string:
		return json.Unmarshal([]byte(v), dest)
	case nil:
		return nil
	default:
		return fmt.Errorf("unsupported jsonb source %T", src)
	}
}

// ListFilter selects a page of orders, newest first.
type ListFilter struct {
	OrderStatus string
	Limit       int
	Skip        int
}

// Stats are the order-side figures of the admin dashboard. Revenue sums
// every order total regardless of status.
type Stats struct {
	TotalOrders     int
	TotalRevenue    float64
	PendingOrders   int
	DeliveredOrders int
}

// PaymentConfirmation records a verified gateway payment against an order.
type PaymentConfirmation struct {
	OrderID           string
	RazorpayOrderID   string
	RazorpayPaymentID string
	RazorpaySignature string
}
