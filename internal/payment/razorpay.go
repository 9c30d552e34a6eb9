// AngelaMos | 2026
// razorpay.go

package payment

import (
	"context"
	"fmt"
	"time"

	"github.com/razorpay/razorpay-go"
)

// GatewayOrder is the subset of the gateway's order object the API returns.
type GatewayOrder struct {
	ID       string
	Amount   int64
	Currency string
}

type Gateway interface {
	CreateOrder(ctx context.Context, amount int64, currency string) (*GatewayOrder, error)
}

type RazorpayGateway struct {
	client  *razorpay.Client
	timeout time.Duration
}

func NewRazorpayGateway(keyID, keySecret string, timeout time.Duration) *RazorpayGateway {
	return &RazorpayGateway{
		client:  razorpay.NewClient(keyID, keySecret),
		timeout: timeout,
	}
}

type createResult struct {
	body map[string]interface{}
	err  error
}

// CreateOrder runs the SDK call, which takes no context, on its own
// goroutine so the caller's deadline and the gateway timeout both apply.
func (g *RazorpayGateway) CreateOrder(
	ctx context.Context,
	amount int64,
	currency string,
) (*GatewayOrder, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	done := make(chan createResult, 1)
	go func() {
		body, err := g.client.Order.Create(map[string]interface{}{
			"amount":          amount,
			"currency":        currency,
			"payment_capture": 1,
		}, nil)
		done <- createResult{body: body, err: err}
	}()

	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("razorpay create order: %w", ctx.Err())
	case res := <-done:
		if res.err != nil {
			return nil, fmt.Errorf("razorpay create order: %w", res.err)
		}
		return parseGatewayOrder(res.body, amount, currency)
	}
}

func parseGatewayOrder(
	body map[string]interface{},
	amount int64,
	currency string,
) (*GatewayOrder, error) {
	id, _ := body["id"].(string)
	if id == "" {
		return nil, fmt.Errorf("razorpay create order: response missing id")
	}

	order := &GatewayOrder{ID: id, Amount: amount, Currency: currency}
	if v, ok := body["amount"].(float64); ok {
		order.Amount = int64(v)
	}
	if v, ok := body["currency"].(string); ok && v != "" {
		order.Currency = v
	}

	return order, nil
}
