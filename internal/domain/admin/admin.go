// Package admin derives the staff dashboard from the customer, order and
// feedback read models. It holds no state of its own.
package admin

import (
	"context"
	"sort"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/harvesthub/storefront/internal/domain/checkout"
	"github.com/harvesthub/storefront/internal/domain/customer"
	"github.com/harvesthub/storefront/internal/domain/feedback"
)

// recentLimit caps the recent-orders and recent-customers lists.
const recentLimit = 5

// Stats is the dashboard aggregate.
type Stats struct {
	TotalCustomers    int
	TotalOrders       int
	TotalRevenue      decimal.Decimal
	AverageOrderValue decimal.Decimal
	OrdersByStatus    map[checkout.Status]int
	RecentOrders      []checkout.Order
	RecentCustomers   []customer.Customer
	TotalFeedback     int
	AverageRating     decimal.Decimal
	NewFeedback       int
}

// Service computes dashboard statistics.
type Service struct {
	customers customer.Repository
	orders    checkout.Repository
	feedback  feedback.Repository
}

// NewService creates an admin Service.
func NewService(customers customer.Repository, orders checkout.Repository, fb feedback.Repository) *Service {
	return &Service{customers: customers, orders: orders, feedback: fb}
}

// DashboardStats loads all three collections concurrently and derives the
// dashboard aggregates from them.
func (s *Service) DashboardStats(ctx context.Context) (*Stats, error) {
	var (
		customers []customer.Customer
		orders    []checkout.Order
		entries   []feedback.Feedback
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if customers, err = s.customers.List(ctx); err != nil {
			return errors.Wrap(err, "list customers")
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if orders, err = s.orders.List(ctx); err != nil {
			return errors.Wrap(err, "list orders")
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if entries, err = s.feedback.List(ctx); err != nil {
			return errors.Wrap(err, "list feedback")
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	st := &Stats{
		TotalCustomers:    len(customers),
		TotalOrders:       len(orders),
		TotalRevenue:      decimal.Zero,
		AverageOrderValue: decimal.Zero,
		OrdersByStatus:    make(map[checkout.Status]int),
		TotalFeedback:     len(entries),
		AverageRating:     decimal.Zero,
	}

	for _, o := range orders {
		st.TotalRevenue = st.TotalRevenue.Add(o.Total)
		st.OrdersByStatus[o.Status]++
	}
	if len(orders) > 0 {
		st.AverageOrderValue = st.TotalRevenue.Div(decimal.NewFromInt(int64(len(orders)))).Round(2)
	}

	ratingSum := 0
	for _, f := range entries {
		ratingSum += f.Rating
		if f.Status == feedback.StatusNew {
			st.NewFeedback++
		}
	}
	if len(entries) > 0 {
		st.AverageRating = decimal.NewFromInt(int64(ratingSum)).
			Div(decimal.NewFromInt(int64(len(entries)))).Round(1)
	}

	st.RecentOrders = recentOrders(orders)
	st.RecentCustomers = recentCustomers(customers)
	return st, nil
}

func recentOrders(orders []checkout.Order) []checkout.Order {
	sorted := make([]checkout.Order, len(orders))
	copy(sorted, orders)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})
	if len(sorted) > recentLimit {
		sorted = sorted[:recentLimit]
	}
	return sorted
}

func recentCustomers(customers []customer.Customer) []customer.Customer {
	sorted := make([]customer.Customer, len(customers))
	copy(sorted, customers)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].JoinedAt.After(sorted[j].JoinedAt)
	})
	if len(sorted) > recentLimit {
		sorted = sorted[:recentLimit]
	}
	return sorted
}
