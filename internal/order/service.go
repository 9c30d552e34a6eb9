// AngelaMos | 2026
// service.go

package order

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"

	"github.com/dheerghayush/storefront-api/internal/core"
	"github.com/dheerghayush/storefront-api/internal/events"
)

var errNoFields = core.InvalidInput("No fields to update")

// SignatureVerifier checks a gateway payment signature. It returns an error
// wrapping core.ErrPaymentVerification on mismatch.
type SignatureVerifier interface {
	Verify(gatewayOrderID, paymentID, signature string) error
}

type CatalogCounter interface {
	ActiveCounts(ctx context.Context) (products, categories int, err error)
}

type Service struct {
	repo      Repository
	publisher events.Publisher
	verifier  SignatureVerifier
	catalog   CatalogCounter
	now       func() time.Time
}

func NewService(
	repo Repository,
	publisher events.Publisher,
	verifier SignatureVerifier,
	catalog CatalogCounter,
) *Service {
	if publisher == nil {
		publisher = events.Noop{}
	}
	return &Service{
		repo:      repo,
		publisher: publisher,
		verifier:  verifier,
		catalog:   catalog,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (s *Service) CreateOrder(
	ctx context.Context,
	req CreateOrderRequest,
) (*Order, error) {
	ctx, span := core.StartSpan(ctx, "order.create",
		attribute.String("payment_method", req.PaymentMethod),
		attribute.Int("items", len(req.Items)),
	)
	defer span.End()

	checkTotals(ctx, req)

	o := &Order{
		OrderID:           uuid.New().String(),
		CustomerInfo:      req.CustomerInfo,
		Items:             Items(req.Items),
		Subtotal:          core.RoundMoney(req.Subtotal),
		ShippingFee:       core.RoundMoney(req.ShippingFee),
		Total:             core.RoundMoney(req.Total),
		PaymentMethod:     req.PaymentMethod,
		RazorpayOrderID:   req.RazorpayOrderID,
		RazorpayPaymentID: req.RazorpayPaymentID,
		RazorpaySignature: req.RazorpaySignature,
		OrderStatus:       StatusPending,
		PaymentStatus:     initialPaymentStatus(req.PaymentMethod, req.RazorpayPaymentID),
		CreatedAt:         s.now(),
	}

	if err := s.repo.Create(ctx, o); err != nil {
		core.SetSpanError(ctx, err)
		return nil, paymentConflict(err)
	}

	span.SetAttributes(attribute.String("order_id", o.OrderID))
	slog.InfoContext(ctx, "order created",
		"order_id", o.OrderID,
		"payment_method", o.PaymentMethod,
		"payment_status", o.PaymentStatus,
	)

	s.publish(ctx, events.Event{
		Type: EventOrderCreated,
		Key:  o.OrderID,
		Payload: createdPayload{
			OrderID:       o.OrderID,
			Total:         o.Total,
			ItemCount:     len(o.Items),
			PaymentMethod: o.PaymentMethod,
			PaymentStatus: o.PaymentStatus,
			CreatedAt:     o.CreatedAt,
		},
	})

	return o, nil
}

func (s *Service) GetOrder(ctx context.Context, orderID string) (*Order, error) {
	return s.repo.Get(ctx, orderID)
}

func (s *Service) ListOrders(
	ctx context.Context,
	filter ListFilter,
) (*ListResponse, error) {
	if filter.OrderStatus != "" && !validOrderStatus(filter.OrderStatus) {
		return nil, core.InvalidInput("Invalid order_status %q", filter.OrderStatus)
	}

	switch {
	case filter.Limit <= 0:
		filter.Limit = DefaultListLimit
	case filter.Limit > MaxListLimit:
		filter.Limit = MaxListLimit
	}
	if filter.Skip < 0 {
		filter.Skip = 0
	}

	orders, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &ListResponse{
		Orders: orders,
		Total:  total,
		Limit:  filter.Limit,
		Skip:   filter.Skip,
	}, nil
}

// UpdateStatus applies an admin status edit. Any status may follow any
// other; there is no transition graph.
func (s *Service) UpdateStatus(
	ctx context.Context,
	orderID string,
	req UpdateStatusRequest,
) (*Order, error) {
	var set core.Assignments
	core.SetIf(&set, "order_status", req.OrderStatus)
	core.SetIf(&set, "payment_status", req.PaymentStatus)

	if set.Empty() {
		return nil, errNoFields
	}

	o, err := s.repo.Update(ctx, orderID, &set)
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "order updated",
		"order_id", orderID,
		"fields", set.Columns(),
	)

	s.publish(ctx, events.Event{
		Type: EventOrderStatusChanged,
		Key:  o.OrderID,
		Payload: statusChangedPayload{
			OrderID:       o.OrderID,
			OrderStatus:   o.OrderStatus,
			PaymentStatus: o.PaymentStatus,
		},
	})

	return o, nil
}

// ConfirmPayment verifies the gateway signature and then records the
// payment on the order in one conditional write.
func (s *Service) ConfirmPayment(
	ctx context.Context,
	c PaymentConfirmation,
) (*Order, error) {
	ctx, span := core.StartSpan(ctx, "order.confirm_payment",
		attribute.String("order_id", c.OrderID),
	)
	defer span.End()

	if err := s.verifier.Verify(
		c.RazorpayOrderID,
		c.RazorpayPaymentID,
		c.RazorpaySignature,
	); err != nil {
		core.SetSpanError(ctx, err)
		return nil, err
	}

	o, err := s.repo.ConfirmPayment(ctx, c)
	if err != nil {
		err = paymentConflict(err)
		core.SetSpanError(ctx, err)
		return nil, err
	}

	s.publish(ctx, events.Event{
		Type: EventPaymentConfirmed,
		Key:  o.OrderID,
		Payload: paymentConfirmedPayload{
			OrderID:           o.OrderID,
			RazorpayOrderID:   c.RazorpayOrderID,
			RazorpayPaymentID: c.RazorpayPaymentID,
			Total:             o.Total,
		},
	})

	return o, nil
}

func (s *Service) Dashboard(ctx context.Context) (*DashboardStats, error) {
	stats, err := s.repo.Stats(ctx)
	if err != nil {
		return nil, err
	}

	products, categories, err := s.catalog.ActiveCounts(ctx)
	if err != nil {
		return nil, err
	}

	return &DashboardStats{
		TotalOrders:     stats.TotalOrders,
		TotalRevenue:    stats.TotalRevenue,
		PendingOrders:   stats.PendingOrders,
		DeliveredOrders: stats.DeliveredOrders,
		TotalProducts:   products,
		TotalCategories: categories,
	}, nil
}

// paymentConflict maps the repository's payment rejections to client
// errors; anything else passes through.
func paymentConflict(err error) error {
	switch {
	case errors.Is(err, ErrAlreadyPaid):
		return core.NewAppError(
			err,
			"Order already paid with a different payment",
			http.StatusConflict,
			"ALREADY_PAID",
		)
	case errors.Is(err, ErrPaymentInUse), core.ConstraintOf(err) == constraintPaymentID:
		return core.NewAppError(
			err,
			"Payment already recorded on another order",
			http.StatusConflict,
			"PAYMENT_IN_USE",
		)
	}
	return err
}

func (s *Service) publish(ctx context.Context, evt events.Event) {
	if err := s.publisher.Publish(ctx, evt); err != nil {
		slog.WarnContext(ctx, "event publish failed",
			"event_type", evt.Type,
			"key", evt.Key,
			"error", err,
		)
	}
}

func initialPaymentStatus(method string, paymentID *string) string {
	if method == MethodRazorpay && paymentID != nil && *paymentID != "" {
		return PaymentPaid
	}
	return PaymentPending
}

// checkTotals logs, but accepts, an order whose total is not subtotal plus
// shipping.
func checkTotals(ctx context.Context, req CreateOrderRequest) {
	expected := decimal.NewFromFloat(req.Subtotal).Add(decimal.NewFromFloat(req.ShippingFee))
	total := decimal.NewFromFloat(req.Total)

	if !expected.Round(2).Equal(total.Round(2)) {
		slog.WarnContext(ctx, "order total mismatch",
			"subtotal", req.Subtotal,
			"shipping_fee", req.ShippingFee,
			"total", req.Total,
		)
	}
}

func validOrderStatus(status string) bool {
	switch status {
	case StatusPending, StatusConfirmed, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}
