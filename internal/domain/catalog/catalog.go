// Package catalog defines the read-only product catalog consumed by the cart,
// checkout, and storefront handlers. Nothing mutates the catalog at runtime.
package catalog

import (
	"context"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
)

// ErrNotFound is returned when a requested product does not exist.
var ErrNotFound = errors.New("product not found")

// Category is the closed set of product categories.
type Category string

const (
	CategoryFruits     Category = "fruits"
	CategoryVegetables Category = "vegetables"
	CategoryDairy      Category = "dairy"
	CategoryHerbs      Category = "herbs"
)

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryFruits, CategoryVegetables, CategoryDairy, CategoryHerbs:
		return true
	}
	return false
}

// Product represents a catalog item available for purchase. Price is the
// amount per Unit; Unit is a display label only and never enters arithmetic.
type Product struct {
	ID          string
	Name        string
	Category    Category
	Price       decimal.Decimal
	Unit        string
	Image       string
	Description string
	Organic     bool
	Local       bool
	InSeason    bool
	Featured    bool
}

// Filter narrows a catalog listing. Zero values mean "no constraint";
// the tag filters are tri-state pointers so false can be matched explicitly.
type Filter struct {
	Category Category
	Search   string
	Organic  *bool
	Local    *bool
	InSeason *bool
	Featured *bool
}

// Repository defines read operations for the product catalog.
type Repository interface {
	List(ctx context.Context, f Filter) ([]Product, error)
	GetByID(ctx context.Context, id string) (*Product, error)
	GetByIDs(ctx context.Context, ids []string) ([]Product, error)
}
