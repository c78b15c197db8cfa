package checkout

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/harvesthub/storefront/internal/domain/cart"
	"github.com/harvesthub/storefront/internal/domain/payment"
	"github.com/harvesthub/storefront/internal/domain/pricing"
)

// ErrEmptyCart is returned when checkout is attempted with no items in the
// session's cart.
var ErrEmptyCart = errors.New("cart is empty")

// MissingFieldError reports a required checkout field left blank.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required field: %s", e.Field)
}

// Request carries the shopper's checkout form.
type Request struct {
	FirstName     string
	LastName      string
	Email         string
	Phone         string
	Address       string
	City          string
	State         string
	Pincode       string
	PaymentMethod payment.Method
	Notes         string
}

func (r *Request) validate() error {
	required := []struct {
		name, value string
	}{
		{"firstName", r.FirstName},
		{"lastName", r.LastName},
		{"email", r.Email},
		{"phone", r.Phone},
		{"address", r.Address},
		{"city", r.City},
		{"state", r.State},
		{"pincode", r.Pincode},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return &MissingFieldError{Field: f.name}
		}
	}
	if !r.PaymentMethod.Valid() {
		return errors.Wrapf(payment.ErrUnknownMethod, "%q", r.PaymentMethod)
	}
	return nil
}

// Service places orders: it bills the session's cart, authorizes payment and
// persists the resulting order.
type Service struct {
	carts    *cart.Store
	gateway  payment.Gateway
	orders   Repository
	now      func() time.Time
	numberFn func() string
}

// NewService creates a checkout Service.
func NewService(carts *cart.Store, gateway payment.Gateway, orders Repository) *Service {
	return &Service{
		carts:    carts,
		gateway:  gateway,
		orders:   orders,
		now:      time.Now,
		numberFn: newOrderNumber,
	}
}

// newOrderNumber mints a short human-readable order number. Uniqueness is
// enforced by the orders table, not here.
func newOrderNumber() string {
	return fmt.Sprintf("FHH-%06d", rand.IntN(900000)+100000)
}

// PlaceOrder validates the request, prices the session's cart with the
// checkout ruleset, authorizes payment for the total and persists the order.
// The cart is cleared only after the order is stored; a declined payment
// leaves it intact so the shopper can retry.
func (s *Service) PlaceOrder(ctx context.Context, sessionID string, req Request) (*Order, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	c, err := s.carts.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if c.Empty() {
		return nil, ErrEmptyCart
	}

	bd, err := pricing.Compute(c.Subtotal(), pricing.RulesetCheckout)
	if err != nil {
		return nil, err
	}

	number := s.numberFn()
	if _, err := s.gateway.Authorize(ctx, payment.Request{
		Amount:    bd.Total,
		Method:    req.PaymentMethod,
		Reference: number,
	}); err != nil {
		return nil, errors.Wrap(err, "authorize payment")
	}

	lines := c.Lines()
	items := make([]Item, 0, len(lines))
	for _, l := range lines {
		items = append(items, Item{
			ProductID:   l.Product.ID,
			ProductName: l.Product.Name,
			UnitPrice:   l.Product.Price,
			Quantity:    l.Quantity,
			LineTotal:   l.Product.Price.Mul(decimal.NewFromInt(int64(l.Quantity))),
		})
	}

	o := &Order{
		ID:              uuid.New().String(),
		Number:          number,
		CustomerName:    req.FirstName + " " + req.LastName,
		Email:           req.Email,
		Phone:           req.Phone,
		ShippingAddress: fmt.Sprintf("%s, %s, %s %s", req.Address, req.City, req.State, req.Pincode),
		PaymentMethod:   req.PaymentMethod,
		Items:           items,
		Subtotal:        bd.Subtotal,
		Tax:             bd.Tax,
		Shipping:        bd.Shipping,
		Total:           bd.Total,
		Notes:           req.Notes,
		Status:          StatusPending,
		CreatedAt:       s.now(),
	}

	if err := s.orders.Create(ctx, o); err != nil {
		return nil, errors.Wrap(err, "create order")
	}

	if err := s.carts.Clear(ctx, sessionID); err != nil {
		return nil, errors.Wrap(err, "clear cart")
	}
	return o, nil
}
