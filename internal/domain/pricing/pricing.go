// Package pricing turns a cart subtotal into a full price breakdown.
//
// The storefront intentionally carries two divergent rulesets: the cart page
// quotes a 7% estimated tax with a flat shipping fee below the free-shipping
// threshold, while the checkout page bills 18% GST with no shipping line.
// They are modelled as explicit named variants so the divergence stays
// visible and testable instead of being duplicated ad hoc per page.
package pricing

import (
	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
)

// Ruleset names a set of tax/shipping rules applied to a subtotal.
type Ruleset string

const (
	// RulesetPreview is the cart-page quote: 7% estimated tax plus flat
	// shipping, waived above the free-shipping threshold.
	RulesetPreview Ruleset = "preview"
	// RulesetCheckout is the final bill: 18% GST, no shipping line.
	RulesetCheckout Ruleset = "checkout"
)

// Business rule constants shared by both rulesets.
var (
	// PreviewTaxRate is the estimated tax rate shown on the cart page.
	PreviewTaxRate = decimal.NewFromFloat(0.07)
	// CheckoutTaxRate is the GST rate billed at checkout.
	CheckoutTaxRate = decimal.NewFromFloat(0.18)
	// FreeShippingThreshold is the subtotal above which shipping is free.
	FreeShippingThreshold = decimal.NewFromInt(500)
	// FlatShippingFee is charged when the subtotal is at or below the
	// free-shipping threshold.
	FlatShippingFee = decimal.NewFromInt(49)
)

// Breakdown is the result of applying a ruleset to a subtotal.
type Breakdown struct {
	Subtotal decimal.Decimal
	Tax      decimal.Decimal
	Shipping decimal.Decimal
	Total    decimal.Decimal
}

// Compute applies the named ruleset to the subtotal. It is a pure function:
// no state, no side effects, trivially re-callable.
func Compute(subtotal decimal.Decimal, rs Ruleset) (Breakdown, error) {
	switch rs {
	case RulesetPreview:
		return computePreview(subtotal), nil
	case RulesetCheckout:
		return computeCheckout(subtotal), nil
	default:
		return Breakdown{}, errors.Errorf("unsupported ruleset: %q", rs)
	}
}

func computePreview(subtotal decimal.Decimal) Breakdown {
	tax := subtotal.Mul(PreviewTaxRate).Round(2)

	shipping := FlatShippingFee
	if subtotal.GreaterThan(FreeShippingThreshold) {
		shipping = decimal.Zero
	}

	return Breakdown{
		Subtotal: subtotal,
		Tax:      tax,
		Shipping: shipping,
		Total:    subtotal.Add(tax).Add(shipping).Round(2),
	}
}

func computeCheckout(subtotal decimal.Decimal) Breakdown {
	tax := subtotal.Mul(CheckoutTaxRate).Round(2)

	return Breakdown{
		Subtotal: subtotal,
		Tax:      tax,
		Shipping: decimal.Zero,
		Total:    subtotal.Add(tax).Round(2),
	}
}
