// AngelaMos | 2026
// service.go

package payment

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"go.opentelemetry.io/otel/attribute"

	"github.com/dheerghayush/storefront-api/internal/core"
	"github.com/dheerghayush/storefront-api/internal/order"
)

const verifiedMessage = "Payment signature verified successfully"

// OrderConfirmer records a verified payment against a stored order.
type OrderConfirmer interface {
	ConfirmPayment(ctx context.Context, c order.PaymentConfirmation) (*order.Order, error)
}

type Service struct {
	gateway         Gateway
	signer          *Signer
	orders          OrderConfirmer
	keyID           string
	defaultCurrency string
}

type ServiceConfig struct {
	Gateway         Gateway
	Signer          *Signer
	Orders          OrderConfirmer
	KeyID           string
	DefaultCurrency string
}

func NewService(cfg ServiceConfig) *Service {
	currency := cfg.DefaultCurrency
	if currency == "" {
		currency = "INR"
	}
	return &Service{
		gateway:         cfg.Gateway,
		signer:          cfg.Signer,
		orders:          cfg.Orders,
		keyID:           cfg.KeyID,
		defaultCurrency: currency,
	}
}

// CreateGatewayOrder opens a gateway order for amount rupees. Nothing is
// persisted locally.
func (s *Service) CreateGatewayOrder(
	ctx context.Context,
	req CreateOrderRequest,
) (*CreateOrderResponse, error) {
	currency := strings.ToUpper(strings.TrimSpace(req.Currency))
	if currency == "" {
		currency = s.defaultCurrency
	}

	minor, err := ToMinorUnits(req.Amount)
	if err != nil {
		return nil, err
	}

	ctx, span := core.StartSpan(ctx, "payment.create_gateway_order",
		attribute.Int64("amount", minor),
		attribute.String("currency", currency),
	)
	defer span.End()

	gwOrder, err := s.gateway.CreateOrder(ctx, minor, currency)
	if err != nil {
		core.SetSpanError(ctx, err)
		slog.ErrorContext(ctx, "gateway order failed", "amount", minor, "error", err)
		return nil, core.NewAppError(
			core.ErrGateway,
			"Failed to create Razorpay order",
			http.StatusBadGateway,
			"GATEWAY_ERROR",
		)
	}

	slog.InfoContext(ctx, "gateway order created", "razorpay_order_id", gwOrder.ID)

	return &CreateOrderResponse{
		RazorpayOrderID: gwOrder.ID,
		RazorpayKeyID:   s.keyID,
		Amount:          gwOrder.Amount,
		Currency:        gwOrder.Currency,
	}, nil
}

// VerifyPayment checks the signature. When req names a stored order the
// payment is also recorded on it.
func (s *Service) VerifyPayment(
	ctx context.Context,
	req VerifyRequest,
) (*VerifyResponse, error) {
	resp := &VerifyResponse{
		Verified:          true,
		RazorpayOrderID:   req.RazorpayOrderID,
		RazorpayPaymentID: req.RazorpayPaymentID,
		Message:           verifiedMessage,
	}

	if req.OrderID == "" {
		if err := s.signer.Verify(
			req.RazorpayOrderID,
			req.RazorpayPaymentID,
			req.RazorpaySignature,
		); err != nil {
			slog.WarnContext(ctx, "payment signature mismatch",
				"razorpay_order_id", req.RazorpayOrderID,
			)
			return nil, err
		}
		return resp, nil
	}

	o, err := s.orders.ConfirmPayment(ctx, order.PaymentConfirmation{
		OrderID:           req.OrderID,
		RazorpayOrderID:   req.RazorpayOrderID,
		RazorpayPaymentID: req.RazorpayPaymentID,
		RazorpaySignature: req.RazorpaySignature,
	})
	if err != nil {
		return nil, err
	}

	resp.Order = o
	return resp, nil
}

func (s *Service) KeyID() string {
	return s.keyID
}
