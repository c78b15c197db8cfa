// Package cart implements the session shopping cart: an ordered set of
// product lines, unique by product ID, with derived totals and a persisted
// snapshot that is kept in sync on every mutation.
package cart

import (
	"github.com/shopspring/decimal"

	"github.com/harvesthub/storefront/internal/domain/catalog"
)

// Line is one product-and-quantity pair in the cart. The product is embedded
// as a full snapshot, so a line keeps the price it was added at even if the
// catalog changes afterwards.
type Line struct {
	Product  catalog.Product
	Quantity int
}

// Cart is the aggregate of lines for one session. The zero value is an empty
// cart ready for use. Lines are ordered by insertion and unique by product ID;
// every line has Quantity >= 1. Mutate only through the methods below.
type Cart struct {
	lines []Line
}

// New creates a cart from the given lines. Lines with non-positive quantities
// are dropped and later duplicates of a product ID are folded into the first
// occurrence, so a cart never violates its invariants regardless of input.
func New(lines []Line) *Cart {
	c := &Cart{}
	for _, l := range lines {
		if l.Quantity > 0 {
			c.Add(l.Product, l.Quantity)
		}
	}
	return c
}

// Lines returns a copy of the cart's lines in insertion order.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// Empty reports whether the cart has no lines.
func (c *Cart) Empty() bool {
	return len(c.lines) == 0
}

// Add increments the quantity of an existing line for the product, or appends
// a new line. quantity must be positive; callers pass 1 by default.
func (c *Cart) Add(p catalog.Product, quantity int) {
	for i := range c.lines {
		if c.lines[i].Product.ID == p.ID {
			c.lines[i].Quantity += quantity
			return
		}
	}
	c.lines = append(c.lines, Line{Product: p, Quantity: quantity})
}

// Remove deletes the line matching productID. Removing an absent product is
// a no-op, not an error.
func (c *Cart) Remove(productID string) {
	for i := range c.lines {
		if c.lines[i].Product.ID == productID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// SetQuantity sets the quantity of the line matching productID, preserving
// its position. A quantity <= 0 means "remove the line"; that is the
// documented policy, not an error.
func (c *Cart) SetQuantity(productID string, quantity int) {
	if quantity <= 0 {
		c.Remove(productID)
		return
	}
	for i := range c.lines {
		if c.lines[i].Product.ID == productID {
			c.lines[i].Quantity = quantity
			return
		}
	}
}

// Clear removes all lines.
func (c *Cart) Clear() {
	c.lines = nil
}

// ItemCount returns the total quantity across all lines. Always recomputed
// from the lines; there is no separately maintained counter to drift.
func (c *Cart) ItemCount() int {
	count := 0
	for _, l := range c.lines {
		count += l.Quantity
	}
	return count
}

// Subtotal returns the sum of price x quantity across all lines.
func (c *Cart) Subtotal() decimal.Decimal {
	sum := decimal.Zero
	for _, l := range c.lines {
		qty := decimal.NewFromInt(int64(l.Quantity))
		sum = sum.Add(l.Product.Price.Mul(qty))
	}
	return sum
}
