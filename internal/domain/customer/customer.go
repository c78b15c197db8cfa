// Package customer holds the read model for registered customers. Customers
// are created by the demo seeder, not by the API; the storefront itself has
// no sign-up flow.
package customer

import (
	"context"
	"time"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
)

// ErrNotFound is returned when a customer does not exist.
var ErrNotFound = errors.New("customer not found")

// Customer is a registered customer with order aggregates.
type Customer struct {
	ID          string
	Name        string
	Email       string
	Phone       string
	Address     string
	JoinedAt    time.Time
	OrdersCount int
	TotalSpent  decimal.Decimal
}

// Repository defines read operations over customers.
type Repository interface {
	List(ctx context.Context) ([]Customer, error)
	GetByID(ctx context.Context, id string) (*Customer, error)
}
