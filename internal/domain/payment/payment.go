// Package payment defines the payment gateway capability. The storefront has
// no real processor; the production wiring uses the Simulated gateway, and
// tests substitute deterministic fakes.
package payment

import (
	"context"
	"time"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ErrDeclined is returned when the gateway refuses to authorize a charge.
var ErrDeclined = errors.New("payment declined")

// ErrUnknownMethod is returned for a payment method the gateway does not
// support.
var ErrUnknownMethod = errors.New("unknown payment method")

// Method is a supported payment method.
type Method string

const (
	MethodCard    Method = "card"
	MethodCOD     Method = "cod"
	MethodGPay    Method = "gpay"
	MethodPhonePe Method = "phonepe"
	MethodUPI     Method = "upi"
)

// Valid reports whether m is one of the supported methods.
func (m Method) Valid() bool {
	switch m {
	case MethodCard, MethodCOD, MethodGPay, MethodPhonePe, MethodUPI:
		return true
	}
	return false
}

// Request describes a charge to authorize.
type Request struct {
	Amount    decimal.Decimal
	Method    Method
	Reference string
}

// Receipt is the result of a successful authorization.
type Receipt struct {
	TransactionID string
	ProcessedAt   time.Time
}

// Gateway authorizes charges. Implementations must respect context
// cancellation.
type Gateway interface {
	Authorize(ctx context.Context, req Request) (*Receipt, error)
}

// Simulated approves every charge after a fixed processing delay, standing in
// for the payment processor the storefront does not have.
type Simulated struct {
	delay time.Duration
	now   func() time.Time
}

// NewSimulated creates a Simulated gateway with the given processing delay.
func NewSimulated(delay time.Duration) *Simulated {
	return &Simulated{delay: delay, now: time.Now}
}

// Authorize waits out the processing delay and approves the charge with a
// fresh transaction ID. It fails only on an unknown method or a cancelled
// context.
func (g *Simulated) Authorize(ctx context.Context, req Request) (*Receipt, error) {
	if !req.Method.Valid() {
		return nil, ErrUnknownMethod
	}

	if g.delay > 0 {
		timer := time.NewTimer(g.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	return &Receipt{
		TransactionID: uuid.New().String(),
		ProcessedAt:   g.now(),
	}, nil
}
