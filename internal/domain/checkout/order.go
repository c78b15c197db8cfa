// Package checkout turns a session cart into a persisted order: it bills the
// cart with the checkout ruleset, authorizes payment, and clears the cart.
package checkout

import (
	"context"
	"time"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"

	"github.com/harvesthub/storefront/internal/domain/payment"
)

// ErrOrderNotFound is returned when a requested order does not exist.
var ErrOrderNotFound = errors.New("order not found")

// Status is an order's fulfilment state.
type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusShipped    Status = "shipped"
	StatusDelivered  Status = "delivered"
	StatusCancelled  Status = "cancelled"
)

// Item is a single denormalized order line. Name and unit price are copied
// from the cart line at order time so the order is self-contained.
type Item struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Quantity    int             `json:"quantity"`
	LineTotal   decimal.Decimal `json:"line_total"`
}

// Order is a completed customer order with its full price breakdown.
type Order struct {
	ID              string
	Number          string
	CustomerName    string
	Email           string
	Phone           string
	ShippingAddress string
	PaymentMethod   payment.Method
	Items           []Item
	Subtotal        decimal.Decimal
	Tax             decimal.Decimal
	Shipping        decimal.Decimal
	Total           decimal.Decimal
	Notes           string
	Status          Status
	CreatedAt       time.Time
}

// Repository defines persistence operations for orders.
type Repository interface {
	Create(ctx context.Context, o *Order) error
	List(ctx context.Context) ([]Order, error)
	GetByID(ctx context.Context, id string) (*Order, error)
}
