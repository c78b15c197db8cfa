package cart

import (
	"context"
	"fmt"

	"github.com/go-faster/errors"

	"github.com/harvesthub/storefront/internal/domain/catalog"
)

// ErrNoSnapshot is returned by SnapshotStore.Load when no snapshot exists for
// a session.
var ErrNoSnapshot = errors.New("cart snapshot not found")

// SnapshotStore persists raw cart snapshots keyed by session ID. The cart
// Store is the only writer. Concurrent writers to the same session are
// last-writer-wins; there is no cross-session coordination.
type SnapshotStore interface {
	Load(ctx context.Context, sessionID string) ([]byte, error)
	Save(ctx context.Context, sessionID string, snapshot []byte) error
	Delete(ctx context.Context, sessionID string) error
}

// Notifier receives fire-and-forget notifications about cart activity.
// The store never awaits or branches on the outcome.
type Notifier interface {
	ItemAdded(ctx context.Context, sessionID string, p catalog.Product, quantity int)
}

// NopNotifier discards all notifications.
type NopNotifier struct{}

func (NopNotifier) ItemAdded(context.Context, string, catalog.Product, int) {}

// Store is the authoritative cart service. Every operation loads the
// session's snapshot, applies the mutation, and synchronously writes the
// snapshot back before returning, so the persisted state never lags the
// caller's view.
type Store struct {
	snapshots SnapshotStore
	notify    Notifier
}

// NewStore creates a Store. A nil notifier disables notifications.
func NewStore(snapshots SnapshotStore, notify Notifier) *Store {
	if notify == nil {
		notify = NopNotifier{}
	}
	return &Store{snapshots: snapshots, notify: notify}
}

// Get returns the cart for the session. A missing or malformed snapshot
// yields an empty cart, never an error: corrupt state must not block the
// shopper.
func (s *Store) Get(ctx context.Context, sessionID string) (*Cart, error) {
	data, err := s.snapshots.Load(ctx, sessionID)
	if err != nil {
		if errors.Is(err, ErrNoSnapshot) {
			return New(nil), nil
		}
		return nil, fmt.Errorf("loading cart %q: %w", sessionID, err)
	}

	lines, err := decodeSnapshot(data)
	if err != nil {
		// Malformed snapshots are treated as absent.
		return New(nil), nil
	}
	return New(lines), nil
}

// AddItem adds quantity units of the product to the session's cart,
// incrementing the existing line when one exists. quantity must be >= 1;
// callers default to 1. There are no domain failure modes, only storage
// errors surface.
func (s *Store) AddItem(ctx context.Context, sessionID string, p catalog.Product, quantity int) (*Cart, error) {
	c, err := s.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	c.Add(p, quantity)
	if err := s.save(ctx, sessionID, c); err != nil {
		return nil, err
	}

	s.notify.ItemAdded(ctx, sessionID, p, quantity)
	return c, nil
}

// RemoveItem deletes the line matching productID. Removing an absent product
// is a no-op.
func (s *Store) RemoveItem(ctx context.Context, sessionID, productID string) (*Cart, error) {
	c, err := s.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	c.Remove(productID)
	if err := s.save(ctx, sessionID, c); err != nil {
		return nil, err
	}
	return c, nil
}

// UpdateQuantity sets the quantity of the line matching productID. A
// quantity <= 0 removes the line, exactly like RemoveItem.
func (s *Store) UpdateQuantity(ctx context.Context, sessionID, productID string, quantity int) (*Cart, error) {
	c, err := s.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	c.SetQuantity(productID, quantity)
	if err := s.save(ctx, sessionID, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Clear empties the session's cart and deletes the persisted snapshot.
// Clearing an already-empty cart is a no-op.
func (s *Store) Clear(ctx context.Context, sessionID string) error {
	if err := s.snapshots.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("clearing cart %q: %w", sessionID, err)
	}
	return nil
}

func (s *Store) save(ctx context.Context, sessionID string, c *Cart) error {
	if err := s.snapshots.Save(ctx, sessionID, encodeSnapshot(c.lines)); err != nil {
		return fmt.Errorf("saving cart %q: %w", sessionID, err)
	}
	return nil
}
