// AngelaMos | 2026
// dto.go

package payment

import (
	"github.com/dheerghayush/storefront-api/internal/order"
)

type CreateOrderRequest struct {
	Amount   float64 `json:"amount"   validate:"gt=0,lte=9999999999.99"`
	Currency string  `json:"currency" validate:"omitempty,len=3"`
}

type CreateOrderResponse struct {
	RazorpayOrderID string `json:"razorpay_order_id"`
	RazorpayKeyID   string `json:"razorpay_key_id"`
	Amount          int64  `json:"amount"`
	Currency        string `json:"currency"`
}

// VerifyRequest optionally names a stored order to mark paid.
type VerifyRequest struct {
	RazorpayOrderID   string `json:"razorpay_order_id"   validate:"required"`
	RazorpayPaymentID string `json:"razorpay_payment_id" validate:"required"`
	RazorpaySignature string `json:"razorpay_signature"  validate:"required"`
	OrderID           string `json:"order_id,omitempty"`
}

type VerifyResponse struct {
	Verified          bool         `json:"verified"`
	RazorpayOrderID   string       `json:"razorpay_order_id"`
	RazorpayPaymentID string       `json:"razorpay_payment_id"`
	Message           string       `json:"message"`
	Order             *order.Order `json:"order,omitempty"`
}

type KeyResponse struct {
	KeyID string `json:"key_id"`
}
