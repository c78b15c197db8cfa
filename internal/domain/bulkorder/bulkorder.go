// Package bulkorder handles wholesale enquiries from restaurants, caterers
// and event planners. Submissions become tickets reviewed by staff; nothing
// here touches the cart or payment paths.
package bulkorder

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/go-faster/errors"
)

// Status is a ticket's review state.
type Status string

const (
	StatusReceived Status = "received"
	StatusApproved Status = "approved"
	StatusDeclined Status = "declined"
)

// MinLeadTime is how far out a requested delivery date must be.
const MinLeadTime = 48 * time.Hour

// ErrDeliveryTooSoon is returned when the requested delivery date is inside
// the minimum lead time.
var ErrDeliveryTooSoon = errors.New("delivery date must be at least 48 hours out")

// MissingFieldError reports a required enquiry field left blank.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required field: %s", e.Field)
}

// Request is a wholesale enquiry form submission.
type Request struct {
	Name         string
	Email        string
	Phone        string
	EventType    string
	Products     string
	Location     string
	DeliveryDate time.Time
	CODRequested bool
}

func (r *Request) validate(now time.Time) error {
	required := []struct {
		name, value string
	}{
		{"name", r.Name},
		{"email", r.Email},
		{"phone", r.Phone},
		{"eventType", r.EventType},
		{"products", r.Products},
		{"location", r.Location},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return &MissingFieldError{Field: f.name}
		}
	}
	if r.DeliveryDate.IsZero() {
		return &MissingFieldError{Field: "deliveryDate"}
	}
	if r.DeliveryDate.Before(now.Add(MinLeadTime)) {
		return ErrDeliveryTooSoon
	}
	return nil
}

// Ticket is a persisted wholesale enquiry awaiting review.
type Ticket struct {
	ID           string
	Name         string
	Email        string
	Phone        string
	EventType    string
	Products     string
	Location     string
	DeliveryDate time.Time
	CODRequested bool
	Status       Status
	CreatedAt    time.Time
}

// Repository defines persistence operations for bulk-order tickets.
type Repository interface {
	Create(ctx context.Context, t *Ticket) error
	List(ctx context.Context) ([]Ticket, error)
}

// Service validates enquiries and files tickets.
type Service struct {
	tickets Repository
	now     func() time.Time
	randInt func(n int) int
}

// NewService creates a bulk-order Service.
func NewService(tickets Repository) *Service {
	return &Service{
		tickets: tickets,
		now:     time.Now,
		randInt: rand.IntN,
	}
}

// Submit validates the enquiry and files a ticket in the received state.
func (s *Service) Submit(ctx context.Context, req Request) (*Ticket, error) {
	now := s.now()
	if err := req.validate(now); err != nil {
		return nil, err
	}

	t := &Ticket{
		ID:           s.ticketID(now),
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		EventType:    req.EventType,
		Products:     req.Products,
		Location:     req.Location,
		DeliveryDate: req.DeliveryDate,
		CODRequested: req.CODRequested,
		Status:       StatusReceived,
		CreatedAt:    now,
	}
	if err := s.tickets.Create(ctx, t); err != nil {
		return nil, errors.Wrap(err, "create ticket")
	}
	return t, nil
}

// ticketID mints IDs like BOR-482913-0774: the last six digits of the unix
// millisecond clock plus four random digits.
func (s *Service) ticketID(now time.Time) string {
	return fmt.Sprintf("BOR-%06d-%04d", now.UnixMilli()%1_000_000, s.randInt(10000))
}
