// AngelaMos | 2026
// dto.go

package order

const (
	DefaultListLimit = 50
	MaxListLimit     = 200
)

type CreateOrderRequest struct {
	CustomerInfo      CustomerInfo `json:"customer_info"       validate:"required"`
	Items             []Item       `json:"items"               validate:"required,min=1,dive"`
	Subtotal          float64      `json:"subtotal"            validate:"gte=0"`
	ShippingFee       float64      `json:"shipping_fee"        validate:"gte=0"`
	Total             float64      `json:"total"               validate:"gte=0"`
	PaymentMethod     string       `json:"payment_method"      validate:"required,oneof=COD RAZORPAY"`
	RazorpayPaymentID *string      `json:"razorpay_payment_id"`
	RazorpayOrderID   *string      `json:"razorpay_order_id"`
	RazorpaySignature *string      `json:"razorpay_signature"`
}

type UpdateStatusRequest struct {
	OrderStatus   *string `json:"order_status,omitempty"   validate:"omitempty,oneof=pending confirmed shipped delivered cancelled"`
	PaymentStatus *string `json:"payment_status,omitempty" validate:"omitempty,oneof=pending paid failed"`
}

type ListResponse struct {
	Orders []Order `json:"orders"`
	Total  int     `json:"total"`
	Limit  int     `json:"limit"`
	Skip   int     `json:"skip"`
}

type DashboardStats struct {
	TotalOrders     int     `json:"total_orders"`
	TotalRevenue    float64 `json:"total_revenue"`
	PendingOrders   int     `json:"pending_orders"`
	DeliveredOrders int     `json:"delivered_orders"`
	TotalProducts   int     `json:"total_products"`
	TotalCategories int     `json:"total_categories"`
}
