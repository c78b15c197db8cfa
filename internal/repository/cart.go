package repository

import (
	"context"
	"fmt"

	"github.com/go-faster/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/harvesthub/storefront/internal/domain/cart"
)

const (
	loadCartSQL = `SELECT snapshot FROM carts WHERE session_id = $1`

	saveCartSQL = `INSERT INTO carts (session_id, snapshot, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (session_id) DO UPDATE SET snapshot = EXCLUDED.snapshot, updated_at = now()`

	deleteCartSQL = `DELETE FROM carts WHERE session_id = $1`
)

var _ cart.SnapshotStore = (*CartRepository)(nil)

// CartRepository implements cart.SnapshotStore backed by PostgreSQL. Each
// session's cart is a single JSONB row; saves are upserts, so concurrent
// writers to one session are last-writer-wins.
type CartRepository struct {
	pool *pgxpool.Pool
}

// NewCartRepository returns a CartRepository that uses the given pool.
func NewCartRepository(pool *pgxpool.Pool) *CartRepository {
	return &CartRepository{pool: pool}
}

// Load returns the raw snapshot for a session, or cart.ErrNoSnapshot when
// the session has never saved one.
func (r *CartRepository) Load(ctx context.Context, sessionID string) ([]byte, error) {
	var snapshot []byte
	err := r.pool.QueryRow(ctx, loadCartSQL, sessionID).Scan(&snapshot)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, cart.ErrNoSnapshot
		}
		return nil, fmt.Errorf("loading cart snapshot %q: %w", sessionID, err)
	}
	return snapshot, nil
}

// Save upserts the session's snapshot.
func (r *CartRepository) Save(ctx context.Context, sessionID string, snapshot []byte) error {
	if _, err := r.pool.Exec(ctx, saveCartSQL, sessionID, snapshot); err != nil {
		return fmt.Errorf("saving cart snapshot %q: %w", sessionID, err)
	}
	return nil
}

// Delete removes the session's snapshot. Deleting an absent snapshot is not
// an error.
func (r *CartRepository) Delete(ctx context.Context, sessionID string) error {
	if _, err := r.pool.Exec(ctx, deleteCartSQL, sessionID); err != nil {
		return fmt.Errorf("deleting cart snapshot %q: %w", sessionID, err)
	}
	return nil
}
