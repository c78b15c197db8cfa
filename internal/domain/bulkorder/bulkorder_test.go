package bulkorder

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/go-faster/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockRepo struct {
	last *Ticket
	err  error
}

func (m *mockRepo) Create(_ context.Context, t *Ticket) error {
	m.last = t
	return m.err
}

func (m *mockRepo) List(_ context.Context) ([]Ticket, error) { return nil, nil }

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func validRequest() Request {
	return Request{
		Name:         "Hotel Saravana",
		Email:        "purchasing@saravana.example.com",
		Phone:        "+91 9876501234",
		EventType:    "restaurant",
		Products:     "50kg tomatoes, 30kg onions, 10kg coriander",
		Location:     "Chennai",
		DeliveryDate: testNow.Add(72 * time.Hour),
		CODRequested: true,
	}
}

func newTestService(repo *mockRepo) *Service {
	svc := NewService(repo)
	svc.now = func() time.Time { return testNow }
	svc.randInt = func(int) int { return 774 }
	return svc
}

func TestSubmit_Success(t *testing.T) {
	repo := &mockRepo{}
	svc := newTestService(repo)

	ticket, err := svc.Submit(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, StatusReceived, ticket.Status)
	assert.Equal(t, testNow, ticket.CreatedAt)
	assert.True(t, ticket.CODRequested)
	require.NotNil(t, repo.last)
	assert.Equal(t, ticket.ID, repo.last.ID)
}

func TestSubmit_TicketIDFormat(t *testing.T) {
	svc := newTestService(&mockRepo{})

	ticket, err := svc.Submit(context.Background(), validRequest())
	require.NoError(t, err)

	// BOR-<last 6 digits of unix ms>-<4 random digits>
	parts := strings.Split(ticket.ID, "-")
	require.Len(t, parts, 3)
	assert.Equal(t, "BOR", parts[0])
	assert.Len(t, parts[1], 6)
	assert.Equal(t, "0774", parts[2])
}

func TestSubmit_MissingFields(t *testing.T) {
	mutations := map[string]func(*Request){
		"name":      func(r *Request) { r.Name = "" },
		"email":     func(r *Request) { r.Email = "   " },
		"phone":     func(r *Request) { r.Phone = "" },
		"eventType": func(r *Request) { r.EventType = "" },
		"products":  func(r *Request) { r.Products = "" },
		"location":  func(r *Request) { r.Location = "" },
	}
	for field, mutate := range mutations {
		t.Run(field, func(t *testing.T) {
			svc := newTestService(&mockRepo{})
			req := validRequest()
			mutate(&req)

			_, err := svc.Submit(context.Background(), req)

			var missing *MissingFieldError
			require.ErrorAs(t, err, &missing)
			assert.Equal(t, field, missing.Field)
		})
	}
}

func TestSubmit_ZeroDeliveryDate(t *testing.T) {
	svc := newTestService(&mockRepo{})
	req := validRequest()
	req.DeliveryDate = time.Time{}

	_, err := svc.Submit(context.Background(), req)

	var missing *MissingFieldError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "deliveryDate", missing.Field)
}

func TestSubmit_DeliveryTooSoon(t *testing.T) {
	svc := newTestService(&mockRepo{})
	req := validRequest()
	req.DeliveryDate = testNow.Add(47 * time.Hour)

	_, err := svc.Submit(context.Background(), req)
	require.ErrorIs(t, err, ErrDeliveryTooSoon)
}

func TestSubmit_DeliveryExactlyAtLeadTime(t *testing.T) {
	svc := newTestService(&mockRepo{})
	req := validRequest()
	req.DeliveryDate = testNow.Add(MinLeadTime)

	_, err := svc.Submit(context.Background(), req)
	require.NoError(t, err)
}

func TestSubmit_RepoError(t *testing.T) {
	svc := newTestService(&mockRepo{err: errors.New("db down")})

	_, err := svc.Submit(context.Background(), validRequest())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "create ticket")
}
