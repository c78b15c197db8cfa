package handler

import (
	"net/http"
	"time"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"

	"github.com/harvesthub/storefront/internal/domain/checkout"
	"github.com/harvesthub/storefront/internal/domain/customer"
)

type customerResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Email       string          `json:"email"`
	Phone       string          `json:"phone"`
	Address     string          `json:"address"`
	JoinedAt    time.Time       `json:"joinedAt"`
	OrdersCount int             `json:"ordersCount"`
	TotalSpent  decimal.Decimal `json:"totalSpent"`
}

func toCustomerResponse(c customer.Customer) customerResponse {
	return customerResponse{
		ID:          c.ID,
		Name:        c.Name,
		Email:       c.Email,
		Phone:       c.Phone,
		Address:     c.Address,
		JoinedAt:    c.JoinedAt,
		OrdersCount: c.OrdersCount,
		TotalSpent:  c.TotalSpent,
	}
}

type dashboardResponse struct {
	TotalCustomers    int                `json:"totalCustomers"`
	TotalOrders       int                `json:"totalOrders"`
	TotalRevenue      decimal.Decimal    `json:"totalRevenue"`
	AverageOrderValue decimal.Decimal    `json:"averageOrderValue"`
	OrdersByStatus    map[string]int     `json:"ordersByStatus"`
	RecentOrders      []orderResponse    `json:"recentOrders"`
	RecentCustomers   []customerResponse `json:"recentCustomers"`
	TotalFeedback     int                `json:"totalFeedback"`
	AverageRating     decimal.Decimal    `json:"averageRating"`
	NewFeedback       int                `json:"newFeedback"`
}

func (h *Handler) adminDashboard(w http.ResponseWriter, r *http.Request) {
	stats, err := h.dashboard.DashboardStats(r.Context())
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, err.Error())
		return
	}

	byStatus := make(map[string]int, len(stats.OrdersByStatus))
	for s, n := range stats.OrdersByStatus {
		byStatus[string(s)] = n
	}

	recentOrders := make([]orderResponse, 0, len(stats.RecentOrders))
	for i := range stats.RecentOrders {
		recentOrders = append(recentOrders, toOrderResponse(&stats.RecentOrders[i]))
	}
	recentCustomers := make([]customerResponse, 0, len(stats.RecentCustomers))
	for _, c := range stats.RecentCustomers {
		recentCustomers = append(recentCustomers, toCustomerResponse(c))
	}

	writeJSON(w, r, http.StatusOK, dashboardResponse{
		TotalCustomers:    stats.TotalCustomers,
		TotalOrders:       stats.TotalOrders,
		TotalRevenue:      stats.TotalRevenue,
		AverageOrderValue: stats.AverageOrderValue,
		OrdersByStatus:    byStatus,
		RecentOrders:      recentOrders,
		RecentCustomers:   recentCustomers,
		TotalFeedback:     stats.TotalFeedback,
		AverageRating:     stats.AverageRating,
		NewFeedback:       stats.NewFeedback,
	})
}

func (h *Handler) adminListCustomers(w http.ResponseWriter, r *http.Request) {
	customers, err := h.customers.List(r.Context())
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, err.Error())
		return
	}

	out := make([]customerResponse, 0, len(customers))
	for _, c := range customers {
		out = append(out, toCustomerResponse(c))
	}
	writeJSON(w, r, http.StatusOK, out)
}

func (h *Handler) adminGetCustomer(w http.ResponseWriter, r *http.Request) {
	c, err := h.customers.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, customer.ErrNotFound) {
			writeError(w, r, http.StatusNotFound, "customer not found")
			return
		}
		writeError(w, r, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, r, http.StatusOK, toCustomerResponse(*c))
}

func (h *Handler) adminListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orders.List(r.Context())
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, err.Error())
		return
	}

	out := make([]orderResponse, 0, len(orders))
	for i := range orders {
		out = append(out, toOrderResponse(&orders[i]))
	}
	writeJSON(w, r, http.StatusOK, out)
}

func (h *Handler) adminGetOrder(w http.ResponseWriter, r *http.Request) {
	o, err := h.orders.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, checkout.ErrOrderNotFound) {
			writeError(w, r, http.StatusNotFound, "order not found")
			return
		}
		writeError(w, r, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, r, http.StatusOK, toOrderResponse(o))
}
