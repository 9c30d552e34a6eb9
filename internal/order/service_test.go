// AngelaMos | 2026
// service_test.go

package order

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dheerghayush/storefront-api/internal/core"
	"github.com/dheerghayush/storefront-api/internal/events"
)

type memRepo struct {
	mu     sync.Mutex
	orders map[string]Order
}

func newMemRepo() *memRepo {
	return &memRepo{orders: map[string]Order{}}
}

func (m *memRepo) Create(_ context.Context, o *Order) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if o.RazorpayPaymentID != nil && m.paymentRecordedElsewhere(o.OrderID, *o.RazorpayPaymentID) {
		return &core.DuplicateKeyError{Constraint: constraintPaymentID}
	}
	m.orders[o.OrderID] = *o
	return nil
}

func (m *memRepo) Get(_ context.Context, id string) (*Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.orders[id]
	if !ok {
		return nil, fmt.Errorf("get order: %w", core.ErrNotFound)
	}
	return &o, nil
}

func (m *memRepo) List(_ context.Context, f ListFilter) ([]Order, int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	matched := []Order{}
	for _, o := range m.orders {
		if f.OrderStatus == "" || o.OrderStatus == f.OrderStatus {
			matched = append(matched, o)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	total := len(matched)
	start := min(f.Skip, total)
	end := min(start+f.Limit, total)
	return matched[start:end], total, nil
}

func (m *memRepo) Update(_ context.Context, id string, set *core.Assignments) (*Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.orders[id]
	if !ok {
		return nil, core.ErrNotFound
	}
	_, args := set.UpdateQuery("orders", "order_id", id, "")
	for i, col := range set.Columns() {
		switch col {
		case "order_status":
			o.OrderStatus = args[i].(string)
		case "payment_status":
			o.PaymentStatus = args[i].(string)
		}
	}
	m.orders[id] = o
	return &o, nil
}

func (m *memRepo) ConfirmPayment(_ context.Context, c PaymentConfirmation) (*Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.orders[c.OrderID]
	if !ok {
		return nil, core.ErrNotFound
	}
	if m.paymentRecordedElsewhere(c.OrderID, c.RazorpayPaymentID) {
		return nil, ErrPaymentInUse
	}
	if o.RazorpayOrderID != nil && *o.RazorpayOrderID != c.RazorpayOrderID {
		return nil, core.ErrPaymentVerification
	}
	if o.PaymentStatus == PaymentPaid &&
		(o.RazorpayPaymentID == nil || *o.RazorpayPaymentID != c.RazorpayPaymentID) {
		return nil, ErrAlreadyPaid
	}
	o.RazorpayOrderID = &c.RazorpayOrderID
	o.RazorpayPaymentID = &c.RazorpayPaymentID
	o.RazorpaySignature = &c.RazorpaySignature
	o.PaymentStatus = PaymentPaid
	m.orders[c.OrderID] = o
	return &o, nil
}

func (m *memRepo) paymentRecordedElsewhere(orderID, paymentID string) bool {
	if paymentID == "" {
		return false
	}
	for id, o := range m.orders {
		if id != orderID && o.RazorpayPaymentID != nil && *o.RazorpayPaymentID == paymentID {
			return true
		}
	}
	return false
}

func (m *memRepo) Stats(context.Context) (*Stats, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s := &Stats{}
	for _, o := range m.orders {
		s.TotalOrders++
		s.TotalRevenue += o.Total
		switch o.OrderStatus {
		case StatusPending:
			s.PendingOrders++
		case StatusDelivered:
			s.DeliveredOrders++
		}
	}
	return s, nil
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []events.Event
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, evt events.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, evt)
	return p.err
}

func (p *recordingPublisher) Close(context.Context) error { return nil }

func (p *recordingPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.Type)
	}
	return out
}

type stubVerifier struct {
	valid string
}

func (v stubVerifier) Verify(_, _, signature string) error {
	if signature != v.valid {
		return fmt.Errorf("verify: %w", core.ErrPaymentVerification)
	}
	return nil
}

type fixedCounts struct{ products, categories int }

func (f fixedCounts) ActiveCounts(context.Context) (int, int, error) {
	return f.products, f.categories, nil
}

func newTestService(repo Repository, pub events.Publisher) *Service {
	svc := NewService(repo, pub, stubVerifier{valid: "good-sig"}, fixedCounts{24, 7})
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	tick := 0
	svc.now = func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Minute)
	}
	return svc
}

func codRequest() CreateOrderRequest {
	return CreateOrderRequest{
		CustomerInfo: CustomerInfo{
			Name:    "Asha",
			Email:   "asha@example.com",
			Phone:   "9876543210",
			Address: "12 MG Road",
			City:    "Bengaluru",
			State:   "Karnataka",
			Pincode: "560001",
		},
		Items: []Item{
			{ID: "1", Name: "Toor Dal", Price: 180, Quantity: 2, Weight: "1kg", Image: "t.jpg"},
		},
		Subtotal:      360,
		ShippingFee:   40,
		Total:         400,
		PaymentMethod: MethodCOD,
	}
}

func ptr[T any](v T) *T { return &v }

func TestCreateOrder_COD(t *testing.T) {
	ctx := context.Background()
	pub := &recordingPublisher{}
	svc := newTestService(newMemRepo(), pub)

	o, err := svc.CreateOrder(ctx, codRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, o.OrderID)
	assert.Equal(t, StatusPending, o.OrderStatus)
	assert.Equal(t, PaymentPending, o.PaymentStatus)
	assert.Equal(t, []string{EventOrderCreated}, pub.types())
	assert.Equal(t, o.OrderID, pub.events[0].Key)

	got, err := svc.GetOrder(ctx, o.OrderID)
	require.NoError(t, err)
	assert.Equal(t, "Asha", got.CustomerInfo.Name)
	require.Len(t, got.Items, 1)
	assert.Equal(t, 2, got.Items[0].Quantity)
}

func TestCreateOrder_PaymentStatusRules(t *testing.T) {
	tests := []struct {
		name      string
		method    string
		paymentID *string
		want      string
	}{
		{"cod ignores payment id", MethodCOD, ptr("pay_1"), PaymentPending},
		{"razorpay with payment id", MethodRazorpay, ptr("pay_1"), PaymentPaid},
		{"razorpay without payment id", MethodRazorpay, nil, PaymentPending},
		{"razorpay with empty payment id", MethodRazorpay, ptr(""), PaymentPending},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService(newMemRepo(), nil)
			req := codRequest()
			req.PaymentMethod = tt.method
			req.RazorpayPaymentID = tt.paymentID

			o, err := svc.CreateOrder(context.Background(), req)
			require.NoError(t, err)
			assert.Equal(t, tt.want, o.PaymentStatus)
		})
	}
}

func TestCreateOrder_TotalMismatchAccepted(t *testing.T) {
	svc := newTestService(newMemRepo(), nil)
	req := codRequest()
	req.Total = 999

	o, err := svc.CreateOrder(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 999.0, o.Total)
}

func TestCreateOrder_PublishFailureDoesNotFail(t *testing.T) {
	pub := &recordingPublisher{err: events.ErrBufferFull}
	svc := newTestService(newMemRepo(), pub)

	_, err := svc.CreateOrder(context.Background(), codRequest())
	assert.NoError(t, err)
}

func TestGetOrder_NotFound(t *testing.T) {
	svc := newTestService(newMemRepo(), nil)

	_, err := svc.GetOrder(context.Background(), "missing")
	assert.ErrorIs(t, err, core.ErrNotFound)
}

func TestUpdateStatus_Sparse(t *testing.T) {
	ctx := context.Background()
	pub := &recordingPublisher{}
	svc := newTestService(newMemRepo(), pub)

	o, err := svc.CreateOrder(ctx, codRequest())
	require.NoError(t, err)

	updated, err := svc.UpdateStatus(ctx, o.OrderID, UpdateStatusRequest{
		OrderStatus: ptr(StatusShipped),
	})
	require.NoError(t, err)
	assert.Equal(t, StatusShipped, updated.OrderStatus)
	assert.Equal(t, PaymentPending, updated.PaymentStatus)
	assert.Equal(t, []string{EventOrderCreated, EventOrderStatusChanged}, pub.types())

	updated, err = svc.UpdateStatus(ctx, o.OrderID, UpdateStatusRequest{
		OrderStatus: ptr(StatusPending),
	})
	require.NoError(t, err)
	assert.Equal(t, StatusPending, updated.OrderStatus)
}

func TestUpdateStatus_Errors(t *testing.T) {
	svc := newTestService(newMemRepo(), nil)

	_, err := svc.UpdateStatus(context.Background(), "any", UpdateStatusRequest{})
	assert.ErrorIs(t, err, core.ErrInvalidInput)

	_, err = svc.UpdateStatus(context.Background(), "missing", UpdateStatusRequest{
		PaymentStatus: ptr(PaymentPaid),
	})
	assert.ErrorIs(t, err, core.ErrNotFound)
}

func TestListOrders_NewestFirstWithPaging(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(newMemRepo(), nil)

	var ids []string
	for range 3 {
		o, err := svc.CreateOrder(ctx, codRequest())
		require.NoError(t, err)
		ids = append(ids, o.OrderID)
	}

	page, err := svc.ListOrders(ctx, ListFilter{Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, 3, page.Total)
	assert.Equal(t, 2, page.Limit)
	require.Len(t, page.Orders, 2)
	assert.Equal(t, ids[2], page.Orders[0].OrderID)
	assert.Equal(t, ids[1], page.Orders[1].OrderID)

	page, err = svc.ListOrders(ctx, ListFilter{Skip: 2})
	require.NoError(t, err)
	assert.Equal(t, DefaultListLimit, page.Limit)
	require.Len(t, page.Orders, 1)
	assert.Equal(t, ids[0], page.Orders[0].OrderID)

	page, err = svc.ListOrders(ctx, ListFilter{Limit: 5000})
	require.NoError(t, err)
	assert.Equal(t, MaxListLimit, page.Limit)

	_, err = svc.ListOrders(ctx, ListFilter{OrderStatus: "lost"})
	assert.ErrorIs(t, err, core.ErrInvalidInput)
}

func TestConfirmPayment(t *testing.T) {
	ctx := context.Background()
	pub := &recordingPublisher{}
	svc := newTestService(newMemRepo(), pub)

	req := codRequest()
	req.PaymentMethod = MethodRazorpay
	o, err := svc.CreateOrder(ctx, req)
	require.NoError(t, err)
	require.Equal(t, PaymentPending, o.PaymentStatus)

	_, err = svc.ConfirmPayment(ctx, PaymentConfirmation{
		OrderID:           o.OrderID,
		RazorpayOrderID:   "order_1",
		RazorpayPaymentID: "pay_1",
		RazorpaySignature: "bad-sig",
	})
	require.ErrorIs(t, err, core.ErrPaymentVerification)

	confirm := PaymentConfirmation{
		OrderID:           o.OrderID,
		RazorpayOrderID:   "order_1",
		RazorpayPaymentID: "pay_1",
		RazorpaySignature: "good-sig",
	}
	paid, err := svc.ConfirmPayment(ctx, confirm)
	require.NoError(t, err)
	assert.Equal(t, PaymentPaid, paid.PaymentStatus)
	assert.Equal(t, "pay_1", *paid.RazorpayPaymentID)

	_, err = svc.ConfirmPayment(ctx, confirm)
	require.NoError(t, err, "replaying the same payment is idempotent")

	confirm.RazorpayPaymentID = "pay_2"
	_, err = svc.ConfirmPayment(ctx, confirm)
	var appErr *core.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusConflict, appErr.StatusCode)

	assert.Equal(t, []string{
		EventOrderCreated,
		EventPaymentConfirmed,
		EventPaymentConfirmed,
	}, pub.types())
}

func TestConfirmPayment_BoundToStoredGatewayOrder(t *testing.T) {
	ctx := context.Background()
	repo := newMemRepo()
	svc := newTestService(repo, nil)

	req := codRequest()
	req.PaymentMethod = MethodRazorpay
	req.RazorpayOrderID = ptr("order_B")
	o, err := svc.CreateOrder(ctx, req)
	require.NoError(t, err)

	_, err = svc.ConfirmPayment(ctx, PaymentConfirmation{
		OrderID:           o.OrderID,
		RazorpayOrderID:   "order_A",
		RazorpayPaymentID: "pay_A",
		RazorpaySignature: "good-sig",
	})
	require.ErrorIs(t, err, core.ErrPaymentVerification)

	stored, err := svc.GetOrder(ctx, o.OrderID)
	require.NoError(t, err)
	assert.Equal(t, PaymentPending, stored.PaymentStatus)
	assert.Equal(t, "order_B", *stored.RazorpayOrderID)
}

func TestConfirmPayment_PaymentSettlesOneOrder(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(newMemRepo(), nil)

	req := codRequest()
	req.PaymentMethod = MethodRazorpay
	first, err := svc.CreateOrder(ctx, req)
	require.NoError(t, err)
	second, err := svc.CreateOrder(ctx, req)
	require.NoError(t, err)

	confirm := PaymentConfirmation{
		OrderID:           first.OrderID,
		RazorpayOrderID:   "order_1",
		RazorpayPaymentID: "pay_1",
		RazorpaySignature: "good-sig",
	}
	_, err = svc.ConfirmPayment(ctx, confirm)
	require.NoError(t, err)

	confirm.OrderID = second.OrderID
	_, err = svc.ConfirmPayment(ctx, confirm)
	var appErr *core.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusConflict, appErr.StatusCode)
	assert.Equal(t, "PAYMENT_IN_USE", appErr.Code)

	stored, err := svc.GetOrder(ctx, second.OrderID)
	require.NoError(t, err)
	assert.Equal(t, PaymentPending, stored.PaymentStatus)
}

func TestCreateOrder_RoundsAmountsToPaise(t *testing.T) {
	svc := newTestService(newMemRepo(), nil)

	req := codRequest()
	req.Subtotal = 359.999
	req.ShippingFee = 40.004
	req.Total = 400.003
	o, err := svc.CreateOrder(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, 360.0, o.Subtotal)
	assert.Equal(t, 40.0, o.ShippingFee)
	assert.Equal(t, 400.0, o.Total)
}

func TestDashboard(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(newMemRepo(), nil)

	first, err := svc.CreateOrder(ctx, codRequest())
	require.NoError(t, err)
	_, err = svc.CreateOrder(ctx, codRequest())
	require.NoError(t, err)
	_, err = svc.UpdateStatus(ctx, first.OrderID, UpdateStatusRequest{
		OrderStatus: ptr(StatusDelivered),
	})
	require.NoError(t, err)

	stats, err := svc.Dashboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, &DashboardStats{
		TotalOrders:     2,
		TotalRevenue:    800,
		PendingOrders:   1,
		DeliveredOrders: 1,
		TotalProducts:   24,
		TotalCategories: 7,
	}, stats)
}

func TestItems_ScanRoundTripsJSONB(t *testing.T) {
	items := Items{{ID: "1", Name: "Ragi", Price: 90, Quantity: 3}}
	raw, err := items.Value()
	require.NoError(t, err)

	var got Items
	require.NoError(t, got.Scan(raw))
	assert.Equal(t, items, got)

	require.NoError(t, got.Scan(string(raw.([]byte))))
	assert.Equal(t, items, got)

	assert.Error(t, got.Scan(42))

	empty, err := Items(nil).Value()
	require.NoError(t, err)
	assert.Equal(t, []byte("[]"), empty)
}
