// AngelaMos | 2026
// payment_test.go

package payment

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dheerghayush/storefront-api/internal/core"
	"github.com/dheerghayush/storefront-api/internal/order"
)

const (
	testSecret    = "test_secret"
	testOrderID   = "order_IluGWxBm9U8zJ8"
	testPaymentID = "pay_IluGiNPEuGyB0j"
	testSignature = "fcc376d623ab1cec63bf2684b4cfbb79b104da8fca5ca810faa456febc7b1c09"
)

type fakeGateway struct {
	amount   int64
	currency string
	err      error
}

func (g *fakeGateway) CreateOrder(_ context.Context, amount int64, currency string) (*GatewayOrder, error) {
	if g.err != nil {
		return nil, g.err
	}
	g.amount = amount
	g.currency = currency
	return &GatewayOrder{ID: "order_test", Amount: amount, Currency: currency}, nil
}

type fakeConfirmer struct {
	got *order.PaymentConfirmation
	err error
}

func (c *fakeConfirmer) ConfirmPayment(_ context.Context, pc order.PaymentConfirmation) (*order.Order, error) {
	if c.err != nil {
		return nil, c.err
	}
	c.got = &pc
	return &order.Order{OrderID: pc.OrderID, PaymentStatus: order.PaymentPaid}, nil
}

func newTestService(gw Gateway, confirmer OrderConfirmer) *Service {
	return NewService(ServiceConfig{
		Gateway: gw,
		Signer:  NewSigner(testSecret),
		Orders:  confirmer,
		KeyID:   "rzp_test_key",
	})
}

func TestToMinorUnits(t *testing.T) {
	tests := []struct {
		amount float64
		want   int64
	}{
		{499, 49900},
		{19.99, 1999},
		{0.1, 10},
		{10.505, 1050},
		{9999999999.99, MaxMinorUnits},
	}

	for _, tt := range tests {
		got, err := ToMinorUnits(tt.amount)
		require.NoError(t, err, "amount %v", tt.amount)
		assert.Equal(t, tt.want, got, "amount %v", tt.amount)
	}
}

func TestToMinorUnits_RejectsOutOfRange(t *testing.T) {
	for _, amount := range []float64{
		0,
		0.004,
		-5,
		10000000000,
		9.22e16,
		1e17,
		1.8446744073709552e17,
	} {
		got, err := ToMinorUnits(amount)
		assert.ErrorIs(t, err, core.ErrInvalidInput, "amount %v", amount)
		assert.Zero(t, got, "amount %v", amount)
	}
}

func TestSigner(t *testing.T) {
	s := NewSigner(testSecret)

	assert.Equal(t, testSignature, s.Sign(testOrderID, testPaymentID))
	assert.NoError(t, s.Verify(testOrderID, testPaymentID, testSignature))

	err := s.Verify(testOrderID, testPaymentID, strings.ToUpper(testSignature))
	assert.ErrorIs(t, err, core.ErrPaymentVerification)

	err = s.Verify(testOrderID, "pay_other", testSignature)
	assert.ErrorIs(t, err, core.ErrPaymentVerification)

	err = NewSigner("other_secret").Verify(testOrderID, testPaymentID, testSignature)
	assert.ErrorIs(t, err, core.ErrPaymentVerification)
}

func TestCreateGatewayOrder(t *testing.T) {
	gw := &fakeGateway{}
	svc := newTestService(gw, nil)

	resp, err := svc.CreateGatewayOrder(context.Background(), CreateOrderRequest{Amount: 499.5})
	require.NoError(t, err)

	assert.Equal(t, int64(49950), gw.amount)
	assert.Equal(t, "INR", gw.currency)
	assert.Equal(t, &CreateOrderResponse{
		RazorpayOrderID: "order_test",
		RazorpayKeyID:   "rzp_test_key",
		Amount:          49950,
		Currency:        "INR",
	}, resp)
}

func TestCreateGatewayOrder_Errors(t *testing.T) {
	_, err := newTestService(&fakeGateway{}, nil).
		CreateGatewayOrder(context.Background(), CreateOrderRequest{Amount: 0.001})
	assert.ErrorIs(t, err, core.ErrInvalidInput)

	gw := &fakeGateway{}
	_, err = newTestService(gw, nil).
		CreateGatewayOrder(context.Background(), CreateOrderRequest{Amount: 1.8446744073709552e17})
	assert.ErrorIs(t, err, core.ErrInvalidInput)
	assert.Zero(t, gw.amount, "gateway must not be called")

	_, err = newTestService(&fakeGateway{err: errors.New("boom")}, nil).
		CreateGatewayOrder(context.Background(), CreateOrderRequest{Amount: 10})
	var appErr *core.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusBadGateway, appErr.StatusCode)
	assert.ErrorIs(t, err, core.ErrGateway)
}

func TestVerifyPayment_Stateless(t *testing.T) {
	confirmer := &fakeConfirmer{}
	svc := newTestService(nil, confirmer)

	resp, err := svc.VerifyPayment(context.Background(), VerifyRequest{
		RazorpayOrderID:   testOrderID,
		RazorpayPaymentID: testPaymentID,
		RazorpaySignature: testSignature,
	})
	require.NoError(t, err)
	assert.True(t, resp.Verified)
	assert.Equal(t, "Payment signature verified successfully", resp.Message)
	assert.Nil(t, resp.Order)
	assert.Nil(t, confirmer.got)

	_, err = svc.VerifyPayment(context.Background(), VerifyRequest{
		RazorpayOrderID:   testOrderID,
		RazorpayPaymentID: testPaymentID,
		RazorpaySignature: "deadbeef",
	})
	assert.ErrorIs(t, err, core.ErrPaymentVerification)
}

func TestVerifyPayment_WithOrderDelegates(t *testing.T) {
	confirmer := &fakeConfirmer{}
	svc := newTestService(nil, confirmer)

	resp, err := svc.VerifyPayment(context.Background(), VerifyRequest{
		RazorpayOrderID:   testOrderID,
		RazorpayPaymentID: testPaymentID,
		RazorpaySignature: testSignature,
		OrderID:           "ord-1",
	})
	require.NoError(t, err)
	require.NotNil(t, confirmer.got)
	assert.Equal(t, "ord-1", confirmer.got.OrderID)
	require.NotNil(t, resp.Order)
	assert.Equal(t, order.PaymentPaid, resp.Order.PaymentStatus)
}

func TestParseGatewayOrder(t *testing.T) {
	got, err := parseGatewayOrder(map[string]interface{}{
		"id":       "order_9A33XWu170gUtm",
		"amount":   float64(50000),
		"currency": "INR",
	}, 1, "USD")
	require.NoError(t, err)
	assert.Equal(t, &GatewayOrder{ID: "order_9A33XWu170gUtm", Amount: 50000, Currency: "INR"}, got)

	_, err = parseGatewayOrder(map[string]interface{}{}, 1, "INR")
	assert.Error(t, err)
}

func TestHandler(t *testing.T) {
	h := NewHandler(newTestService(&fakeGateway{}, &fakeConfirmer{}))
	r := chi.NewRouter()
	h.RegisterRoutes(r)

	call := func(method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
		req := httptest.NewRequest(method, path, strings.NewReader(body))
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		var env map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
		return rec, env
	}

	rec, env := call(http.MethodGet, "/razorpay/key", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, map[string]any{"key_id": "rzp_test_key"}, env["data"])

	rec, env = call(http.MethodPost, "/razorpay/create-order", `{"amount":250}`)
	require.Equal(t, http.StatusOK, rec.Code)
	data := env["data"].(map[string]any)
	assert.Equal(t, float64(25000), data["amount"])

	rec, _ = call(http.MethodPost, "/razorpay/create-order", `{"amount":0}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, _ = call(http.MethodPost, "/razorpay/create-order", `{"amount":1.8446744073709552e17}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, env = call(http.MethodPost, "/razorpay/verify-payment",
		`{"razorpay_order_id":"`+testOrderID+`","razorpay_payment_id":"`+testPaymentID+
			`","razorpay_signature":"nope"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "PAYMENT_VERIFICATION_FAILED", env["error"].(map[string]any)["code"])

	rec, _ = call(http.MethodPost, "/razorpay/verify-payment",
		`{"razorpay_order_id":"`+testOrderID+`","razorpay_payment_id":"`+testPaymentID+
			`","razorpay_signature":"`+testSignature+`"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
}
