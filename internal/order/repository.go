// AngelaMos | 2026
// repository.go

package order

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/dheerghayush/storefront-api/internal/core"
)

const orderColumns = `order_id, customer_info, items, subtotal, shipping_fee, total,
	payment_method, razorpay_order_id, razorpay_payment_id, razorpay_signature,
	order_status, payment_status, created_at`

// constraintPaymentID is the partial unique index on razorpay_payment_id.
const constraintPaymentID = "orders_razorpay_payment_id_key"

var (
	// ErrAlreadyPaid reports a confirmation for an order already settled by
	// a different gateway payment.
	ErrAlreadyPaid = errors.New("order already paid")

	// ErrPaymentInUse reports a gateway payment already recorded on another
	// order.
	ErrPaymentInUse = errors.New("payment already recorded on another order")
)

type Repository interface {
	Create(ctx context.Context, order *Order) error
	Get(ctx context.Context, orderID string) (*Order, error)
	List(ctx context.Context, filter ListFilter) ([]Order, int, error)
	Update(ctx context.Context, orderID string, set *core.Assignments) (*Order, error)
	ConfirmPayment(ctx context.Context, c PaymentConfirmation) (*Order, error)
	Stats(ctx context.Context) (*Stats, error)
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, o *Order) error {
	query := `
		INSERT INTO orders (order_id, customer_info, items, subtotal, shipping_fee,
			total, payment_method, razorpay_order_id, razorpay_payment_id,
			razorpay_signature, order_status, payment_status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	_, err := r.db.ExecContext(ctx, query,
		o.OrderID,
		o.CustomerInfo,
		o.Items,
		o.Subtotal,
		o.ShippingFee,
		o.Total,
		o.PaymentMethod,
		o.RazorpayOrderID,
		o.RazorpayPaymentID,
		o.RazorpaySignature,
		o.OrderStatus,
		o.PaymentStatus,
		o.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create order: %w", core.MapWriteError(err))
	}

	return nil
}

func (r *repository) Get(ctx context.Context, orderID string) (*Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE order_id = $1`

	var o Order
	err := r.db.GetContext(ctx, &o, query, orderID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get order: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}

	return &o, nil
}

func (r *repository) List(
	ctx context.Context,
	filter ListFilter,
) ([]Order, int, error) {
	where := ``
	var args []any
	if filter.OrderStatus != "" {
		where = ` WHERE order_status = $1`
		args = append(args, filter.OrderStatus)
	}

	var total int
	countQuery := `SELECT COUNT(*) FROM orders` + where
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("count orders: %w", err)
	}

	query := fmt.Sprintf(
		`SELECT %s FROM orders%s ORDER BY created_at DESC, order_id LIMIT $%d OFFSET $%d`,
		orderColumns, where, len(args)+1, len(args)+2,
	)
	args = append(args, filter.Limit, filter.Skip)

	orders := []Order{}
	if err := r.db.SelectContext(ctx, &orders, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list orders: %w", err)
	}

	return orders, total, nil
}

func (r *repository) Update(
	ctx context.Context,
	orderID string,
	set *core.Assignments,
) (*Order, error) {
	query, args := set.UpdateQuery("orders", "order_id", orderID, orderColumns)

	var o Order
	err := r.db.GetContext(ctx, &o, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("update order: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("update order: %w", err)
	}

	return &o, nil
}

// ConfirmPayment marks the order paid in a single compare-and-set. The
// payment must belong to the gateway order already stored on the row, if
// any. Replaying the same payment id succeeds; a different one on a paid
// order does not.
func (r *repository) ConfirmPayment(
	ctx context.Context,
	c PaymentConfirmation,
) (*Order, error) {
	query := `
		UPDATE orders
		SET razorpay_order_id = $2,
			razorpay_payment_id = $3,
			razorpay_signature = $4,
			payment_status = 'paid'
		WHERE order_id = $1
			AND (razorpay_order_id IS NULL OR razorpay_order_id = $2)
			AND (payment_status <> 'paid' OR razorpay_payment_id = $3)
		RETURNING ` + orderColumns

	var o Order
	err := r.db.GetContext(ctx, &o, query,
		c.OrderID,
		c.RazorpayOrderID,
		c.RazorpayPaymentID,
		c.RazorpaySignature,
	)
	if err == nil {
		return &o, nil
	}
	err = core.MapWriteError(err)
	if core.ConstraintOf(err) == constraintPaymentID {
		return nil, fmt.Errorf("confirm payment: %w", ErrPaymentInUse)
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("confirm payment: %w", err)
	}

	var current struct {
		RazorpayOrderID *string `db:"razorpay_order_id"`
	}
	err = r.db.GetContext(ctx, &current,
		`SELECT razorpay_order_id FROM orders WHERE order_id = $1`, c.OrderID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("confirm payment: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("confirm payment: %w", err)
	}

	return nil, fmt.Errorf("confirm payment: %w", confirmRejection(current.RazorpayOrderID, c))
}

// confirmRejection explains why the conditional update matched no row.
func confirmRejection(storedGatewayOrder *string, c PaymentConfirmation) error {
	if storedGatewayOrder != nil && *storedGatewayOrder != c.RazorpayOrderID {
		return core.ErrPaymentVerification
	}
	return ErrAlreadyPaid
}

type statsRow struct {
	TotalOrders     int             `db:"total_orders"`
	TotalRevenue    decimal.Decimal `db:"total_revenue"`
	PendingOrders   int             `db:"pending_orders"`
	DeliveredOrders int             `db:"delivered_orders"`
}

func (r *repository) Stats(ctx context.Context) (*Stats, error) {
	query := `
		SELECT
			COUNT(*) AS total_orders,
			COALESCE(SUM(total), 0) AS total_revenue,
			COUNT(*) FILTER (WHERE order_status = 'pending') AS pending_orders,
			COUNT(*) FILTER (WHERE order_status = 'delivered') AS delivered_orders
		FROM orders`

	var row statsRow
	if err := r.db.GetContext(ctx, &row, query); err != nil {
		return nil, fmt.Errorf("order stats: %w", err)
	}

	return &Stats{
		TotalOrders:     row.TotalOrders,
		TotalRevenue:    row.TotalRevenue.InexactFloat64(),
		PendingOrders:   row.PendingOrders,
		DeliveredOrders: row.DeliveredOrders,
	}, nil
}
