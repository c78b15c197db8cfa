// Package fixtures generates demo customers, orders, and feedback for local
// development and the admin dashboard. Generation is fully deterministic for
// a given seed, so tests can assert on derived statistics.
package fixtures

import (
	"fmt"
	"strings"
	"time"

	"math/rand/v2"

	"github.com/shopspring/decimal"

	"github.com/harvesthub/storefront/internal/domain/catalog"
	"github.com/harvesthub/storefront/internal/domain/checkout"
	"github.com/harvesthub/storefront/internal/domain/customer"
	"github.com/harvesthub/storefront/internal/domain/feedback"
	"github.com/harvesthub/storefront/internal/domain/payment"
)

const customerCount = 20

var firstNames = []string{
	"Aarav", "Priya", "Rohan", "Ananya", "Vikram", "Meera", "Arjun", "Kavya",
	"Rahul", "Sneha", "Aditya", "Ishita", "Karan", "Divya", "Nikhil", "Pooja",
	"Sanjay", "Riya", "Amit", "Lakshmi",
}

var lastNames = []string{
	"Sharma", "Patel", "Reddy", "Iyer", "Gupta", "Nair", "Singh", "Menon",
	"Joshi", "Rao", "Kumar", "Pillai", "Desai", "Verma", "Shetty", "Bhat",
	"Kapoor", "Naidu", "Mehta", "Choudhury",
}

var cities = []string{
	"Bengaluru", "Mumbai", "Chennai", "Hyderabad", "Pune",
	"Kochi", "Jaipur", "Ahmedabad",
}

var feedbackMessages = []string{
	"Loved the freshness of the vegetables, will order again.",
	"Delivery was quick and everything arrived in great condition.",
	"The mangoes were perfectly ripe. Excellent quality.",
	"Some herbs were wilted on arrival, but support resolved it quickly.",
	"Best organic produce I've found online.",
	"Packaging could be better, a few tomatoes were bruised.",
	"Great selection of seasonal fruits.",
	"The dairy products taste just like from the farm.",
}

var orderStatuses = []checkout.Status{
	checkout.StatusPending,
	checkout.StatusProcessing,
	checkout.StatusShipped,
	checkout.StatusDelivered,
	checkout.StatusCancelled,
}

var paymentMethods = []payment.Method{
	payment.MethodCard,
	payment.MethodCOD,
	payment.MethodGPay,
	payment.MethodPhonePe,
	payment.MethodUPI,
}

var feedbackStatuses = []feedback.Status{
	feedback.StatusNew,
	feedback.StatusReviewed,
	feedback.StatusResponded,
}

// Dataset is one generated batch of demo data. Customer aggregates
// (OrdersCount, TotalSpent) are consistent with the contained orders.
type Dataset struct {
	Customers []customer.Customer
	Orders    []checkout.Order
	Feedback  []feedback.Feedback
}

// Generator produces deterministic demo data from a seed.
type Generator struct {
	rng *rand.Rand
	now time.Time
}

// New creates a Generator. The same seed always yields the same dataset.
func New(seed uint64) *Generator {
	return &Generator{
		rng: rand.New(rand.NewPCG(seed, seed)),
		now: time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC),
	}
}

// Generate produces the demo dataset. Order items draw from products; an
// empty catalog yields customers with no orders.
func (g *Generator) Generate(products []catalog.Product) Dataset {
	var ds Dataset

	orderSeq := 0
	feedbackSeq := 0

	for i := range customerCount {
		first := firstNames[i%len(firstNames)]
		last := lastNames[g.rng.IntN(len(lastNames))]
		city := cities[g.rng.IntN(len(cities))]
		joined := g.now.AddDate(0, 0, -g.rng.IntN(365)-1)

		c := customer.Customer{
			ID:         fmt.Sprintf("CUST-%d", 1000+i),
			Name:       first + " " + last,
			Email:      fmt.Sprintf("%s.%s%d@example.com", strings.ToLower(first), strings.ToLower(last), i),
			Phone:      fmt.Sprintf("+91 9%09d", g.rng.IntN(1_000_000_000)),
			Address:    fmt.Sprintf("%d MG Road, %s", g.rng.IntN(200)+1, city),
			JoinedAt:   joined,
			TotalSpent: decimal.Zero,
		}

		var orderIDs []string
		if len(products) > 0 {
			for range g.rng.IntN(5) {
				o := g.genOrder(2000+orderSeq, &c, products)
				orderSeq++
				ds.Orders = append(ds.Orders, o)
				orderIDs = append(orderIDs, o.ID)
				c.OrdersCount++
				c.TotalSpent = c.TotalSpent.Add(o.Total)
			}
		}

		if g.rng.IntN(10) < 3 {
			ds.Feedback = append(ds.Feedback, feedback.Feedback{
				ID:           fmt.Sprintf("FEED-%d", 3000+feedbackSeq),
				CustomerName: c.Name,
				Email:        c.Email,
				Rating:       g.rng.IntN(5) + 1,
				Message:      feedbackMessages[g.rng.IntN(len(feedbackMessages))],
				OrderIDs:     orderIDs,
				Status:       feedbackStatuses[g.rng.IntN(len(feedbackStatuses))],
				CreatedAt:    joined.AddDate(0, 0, g.rng.IntN(30)+1),
			})
			feedbackSeq++
		}

		ds.Customers = append(ds.Customers, c)
	}

	return ds
}

func (g *Generator) genOrder(seq int, c *customer.Customer, products []catalog.Product) checkout.Order {
	itemCount := g.rng.IntN(5) + 1
	items := make([]checkout.Item, 0, itemCount)
	subtotal := decimal.Zero
	for range itemCount {
		p := products[g.rng.IntN(len(products))]
		qty := g.rng.IntN(3) + 1
		line := p.Price.Mul(decimal.NewFromInt(int64(qty)))
		items = append(items, checkout.Item{
			ProductID:   p.ID,
			ProductName: p.Name,
			UnitPrice:   p.Price,
			Quantity:    qty,
			LineTotal:   line,
		})
		subtotal = subtotal.Add(line)
	}

	tax := subtotal.Mul(decimal.NewFromFloat(0.18)).Round(2)
	created := c.JoinedAt.AddDate(0, 0, g.rng.IntN(60)+1)
	if created.After(g.now) {
		created = g.now
	}

	return checkout.Order{
		ID:              fmt.Sprintf("ORD-%d", seq),
		Number:          fmt.Sprintf("FHH-%06d", g.rng.IntN(900000)+100000),
		CustomerName:    c.Name,
		Email:           c.Email,
		Phone:           c.Phone,
		ShippingAddress: c.Address,
		PaymentMethod:   paymentMethods[g.rng.IntN(len(paymentMethods))],
		Items:           items,
		Subtotal:        subtotal,
		Tax:             tax,
		Shipping:        decimal.Zero,
		Total:           subtotal.Add(tax).Round(2),
		Status:          orderStatuses[g.rng.IntN(len(orderStatuses))],
		CreatedAt:       created,
	}
}
