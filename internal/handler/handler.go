// Package handler exposes the storefront API over net/http. Handlers decode
// requests, delegate to the domain services, and render JSON responses;
// business rules live in the domain packages.
package handler

import (
	"net/http"

	"github.com/harvesthub/storefront/internal/domain/admin"
	"github.com/harvesthub/storefront/internal/domain/bulkorder"
	"github.com/harvesthub/storefront/internal/domain/cart"
	"github.com/harvesthub/storefront/internal/domain/catalog"
	"github.com/harvesthub/storefront/internal/domain/checkout"
	"github.com/harvesthub/storefront/internal/domain/customer"
	"github.com/harvesthub/storefront/internal/domain/feedback"
)

// Handler holds the domain dependencies behind the HTTP API.
type Handler struct {
	products  catalog.Repository
	carts     *cart.Store
	checkout  *checkout.Service
	bulk      *bulkorder.Service
	feedback  *feedback.Service
	dashboard *admin.Service

	// Admin read surfaces go straight to the repositories.
	orders     checkout.Repository
	customers  customer.Repository
	bulkOrders bulkorder.Repository
	entries    feedback.Repository
}

// Deps bundles the Handler's domain dependencies.
type Deps struct {
	Products  catalog.Repository
	Carts     *cart.Store
	Checkout  *checkout.Service
	Bulk      *bulkorder.Service
	Feedback  *feedback.Service
	Dashboard *admin.Service

	Orders     checkout.Repository
	Customers  customer.Repository
	BulkOrders bulkorder.Repository
	Entries    feedback.Repository
}

// New constructs a Handler with the given dependencies.
func New(d Deps) *Handler {
	return &Handler{
		products:   d.Products,
		carts:      d.Carts,
		checkout:   d.Checkout,
		bulk:       d.Bulk,
		feedback:   d.Feedback,
		dashboard:  d.Dashboard,
		orders:     d.Orders,
		customers:  d.Customers,
		bulkOrders: d.BulkOrders,
		entries:    d.Entries,
	}
}

// Routes registers all API routes on mux. The admin surface is wrapped with
// guard, which is expected to enforce API-key authentication.
func (h *Handler) Routes(mux *http.ServeMux, guard func(http.Handler) http.Handler) {
	mux.HandleFunc("GET /api/products", h.listProducts)
	mux.HandleFunc("GET /api/products/{id}", h.getProduct)
	mux.HandleFunc("GET /api/categories", h.listCategories)

	mux.HandleFunc("GET /api/cart", h.getCart)
	mux.HandleFunc("POST /api/cart/items", h.addCartItem)
	mux.HandleFunc("PATCH /api/cart/items/{id}", h.updateCartItem)
	mux.HandleFunc("DELETE /api/cart/items/{id}", h.removeCartItem)
	mux.HandleFunc("DELETE /api/cart", h.clearCart)

	mux.HandleFunc("POST /api/checkout", h.placeOrder)
	mux.HandleFunc("POST /api/bulk-orders", h.submitBulkOrder)
	mux.HandleFunc("POST /api/feedback", h.submitFeedback)

	adminMux := http.NewServeMux()
	adminMux.HandleFunc("GET /api/admin/dashboard", h.adminDashboard)
	adminMux.HandleFunc("GET /api/admin/customers", h.adminListCustomers)
	adminMux.HandleFunc("GET /api/admin/customers/{id}", h.adminGetCustomer)
	adminMux.HandleFunc("GET /api/admin/orders", h.adminListOrders)
	adminMux.HandleFunc("GET /api/admin/orders/{id}", h.adminGetOrder)
	adminMux.HandleFunc("GET /api/admin/bulk-orders", h.adminListBulkOrders)
	adminMux.HandleFunc("GET /api/admin/feedback", h.adminListFeedback)
	adminMux.HandleFunc("PATCH /api/admin/feedback/{id}", h.adminUpdateFeedback)
	mux.Handle("/api/admin/", guard(adminMux))
}
