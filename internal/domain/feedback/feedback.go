// Package feedback collects customer feedback and tracks its review state.
package feedback

import (
	"context"
	"strings"
	"time"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
)

var (
	// ErrNotFound is returned when a feedback entry does not exist.
	ErrNotFound = errors.New("feedback not found")
	// ErrInvalidRating is returned when a rating falls outside 1..5.
	ErrInvalidRating = errors.New("rating must be between 1 and 5")
	// ErrEmptyMessage is returned when the feedback message is blank.
	ErrEmptyMessage = errors.New("message must not be empty")
	// ErrInvalidStatus is returned for an unknown review status.
	ErrInvalidStatus = errors.New("invalid feedback status")
)

// Status is a feedback entry's review state.
type Status string

const (
	StatusNew       Status = "new"
	StatusReviewed  Status = "reviewed"
	StatusResponded Status = "responded"
)

// Valid reports whether s is a known review status.
func (s Status) Valid() bool {
	switch s {
	case StatusNew, StatusReviewed, StatusResponded:
		return true
	}
	return false
}

// Feedback is a customer feedback entry.
type Feedback struct {
	ID           string
	CustomerName string
	Email        string
	Rating       int
	Message      string
	OrderIDs     []string
	Status       Status
	CreatedAt    time.Time
}

// Repository defines persistence operations for feedback.
type Repository interface {
	Create(ctx context.Context, f *Feedback) error
	List(ctx context.Context) ([]Feedback, error)
	UpdateStatus(ctx context.Context, id string, status Status) error
}

// Request is a feedback form submission.
type Request struct {
	CustomerName string
	Email        string
	Rating       int
	Message      string
	OrderIDs     []string
}

// Service validates and records feedback.
type Service struct {
	repo Repository
	now  func() time.Time
}

// NewService creates a feedback Service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// Submit validates the submission and stores it in the new state.
func (s *Service) Submit(ctx context.Context, req Request) (*Feedback, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, ErrInvalidRating
	}
	if strings.TrimSpace(req.Message) == "" {
		return nil, ErrEmptyMessage
	}

	f := &Feedback{
		ID:           uuid.New().String(),
		CustomerName: req.CustomerName,
		Email:        req.Email,
		Rating:       req.Rating,
		Message:      req.Message,
		OrderIDs:     req.OrderIDs,
		Status:       StatusNew,
		CreatedAt:    s.now(),
	}
	if err := s.repo.Create(ctx, f); err != nil {
		return nil, errors.Wrap(err, "create feedback")
	}
	return f, nil
}

// UpdateStatus moves a feedback entry to a new review state.
func (s *Service) UpdateStatus(ctx context.Context, id string, status Status) error {
	if !status.Valid() {
		return errors.Wrapf(ErrInvalidStatus, "%q", status)
	}
	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return errors.Wrap(err, "update status")
	}
	return nil
}
