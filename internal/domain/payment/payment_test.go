package payment

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMethodValid(t *testing.T) {
	for _, m := range []Method{MethodCard, MethodCOD, MethodGPay, MethodPhonePe, MethodUPI} {
		assert.True(t, m.Valid(), "method %s", m)
	}
	for _, m := range []Method{"", "bitcoin", "CARD"} {
		assert.False(t, m.Valid(), "method %q", m)
	}
}

func TestSimulatedAuthorize(t *testing.T) {
	g := NewSimulated(0)

	r, err := g.Authorize(context.Background(), Request{
		Amount: decimal.NewFromInt(500),
		Method: MethodUPI,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, r.TransactionID)
	assert.False(t, r.ProcessedAt.IsZero())
}

func TestSimulatedAuthorize_UnknownMethod(t *testing.T) {
	g := NewSimulated(0)

	_, err := g.Authorize(context.Background(), Request{
		Amount: decimal.NewFromInt(500),
		Method: "wire",
	})
	require.ErrorIs(t, err, ErrUnknownMethod)
}

func TestSimulatedAuthorize_ContextCancelled(t *testing.T) {
	g := NewSimulated(time.Minute)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := g.Authorize(ctx, Request{
		Amount: decimal.NewFromInt(500),
		Method: MethodCard,
	})
	require.ErrorIs(t, err, context.Canceled)
}

func TestSimulatedAuthorize_DistinctTransactionIDs(t *testing.T) {
	g := NewSimulated(0)

	r1, err := g.Authorize(context.Background(), Request{Method: MethodCOD})
	require.NoError(t, err)
	r2, err := g.Authorize(context.Background(), Request{Method: MethodCOD})
	require.NoError(t, err)

	assert.NotEqual(t, r1.TransactionID, r2.TransactionID)
}
