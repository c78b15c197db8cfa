package feedback

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockRepo struct {
	created    *Feedback
	lastID     string
	lastStatus Status
	createErr  error
	updateErr  error
}

func (m *mockRepo) Create(_ context.Context, f *Feedback) error {
	m.created = f
	return m.createErr
}

func (m *mockRepo) List(_ context.Context) ([]Feedback, error) { return nil, nil }

func (m *mockRepo) UpdateStatus(_ context.Context, id string, status Status) error {
	m.lastID = id
	m.lastStatus = status
	return m.updateErr
}

func validRequest() Request {
	return Request{
		CustomerName: "Meera Pillai",
		Email:        "meera@example.com",
		Rating:       4,
		Message:      "The vegetables were very fresh.",
		OrderIDs:     []string{"ORD-2001"},
	}
}

func TestSubmit_Success(t *testing.T) {
	repo := &mockRepo{}
	svc := NewService(repo)
	svc.now = func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) }

	f, err := svc.Submit(context.Background(), validRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, f.ID)
	assert.Equal(t, StatusNew, f.Status)
	assert.Equal(t, 4, f.Rating)
	assert.Equal(t, []string{"ORD-2001"}, f.OrderIDs)
	require.NotNil(t, repo.created)
}

func TestSubmit_RatingRange(t *testing.T) {
	for _, rating := range []int{0, -1, 6, 100} {
		svc := NewService(&mockRepo{})
		req := validRequest()
		req.Rating = rating

		_, err := svc.Submit(context.Background(), req)
		require.ErrorIs(t, err, ErrInvalidRating, "rating %d", rating)
	}

	for rating := 1; rating <= 5; rating++ {
		svc := NewService(&mockRepo{})
		req := validRequest()
		req.Rating = rating

		_, err := svc.Submit(context.Background(), req)
		require.NoError(t, err, "rating %d", rating)
	}
}

func TestSubmit_EmptyMessage(t *testing.T) {
	svc := NewService(&mockRepo{})
	req := validRequest()
	req.Message = "   \t"

	_, err := svc.Submit(context.Background(), req)
	require.ErrorIs(t, err, ErrEmptyMessage)
}

func TestUpdateStatus(t *testing.T) {
	repo := &mockRepo{}
	svc := NewService(repo)

	require.NoError(t, svc.UpdateStatus(context.Background(), "FEED-3001", StatusReviewed))
	assert.Equal(t, "FEED-3001", repo.lastID)
	assert.Equal(t, StatusReviewed, repo.lastStatus)
}

func TestUpdateStatus_InvalidStatus(t *testing.T) {
	svc := NewService(&mockRepo{})

	err := svc.UpdateStatus(context.Background(), "FEED-3001", Status("archived"))
	require.ErrorIs(t, err, ErrInvalidStatus)
}

func TestUpdateStatus_NotFound(t *testing.T) {
	svc := NewService(&mockRepo{updateErr: ErrNotFound})

	err := svc.UpdateStatus(context.Background(), "missing", StatusResponded)
	require.ErrorIs(t, err, ErrNotFound)
}
