package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/harvesthub/storefront/internal/domain/bulkorder"
)

const (
	createBulkOrderSQL = `INSERT INTO bulk_orders (id, name, email, phone, event_type, products,
		location, delivery_date, cod_requested, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	listBulkOrdersSQL = `SELECT id, name, email, phone, event_type, products,
		location, delivery_date, cod_requested, status, created_at
		FROM bulk_orders ORDER BY created_at DESC`
)

var _ bulkorder.Repository = (*BulkOrderRepository)(nil)

// BulkOrderRepository implements bulkorder.Repository backed by PostgreSQL.
type BulkOrderRepository struct {
	pool *pgxpool.Pool
}

// NewBulkOrderRepository returns a BulkOrderRepository that uses the given pool.
func NewBulkOrderRepository(pool *pgxpool.Pool) *BulkOrderRepository {
	return &BulkOrderRepository{pool: pool}
}

// Create persists a new bulk-order ticket.
func (r *BulkOrderRepository) Create(ctx context.Context, t *bulkorder.Ticket) error {
	_, err := r.pool.Exec(ctx, createBulkOrderSQL,
		t.ID, t.Name, t.Email, t.Phone, t.EventType, t.Products,
		t.Location, t.DeliveryDate, t.CODRequested, string(t.Status), t.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("creating bulk order %q: %w", t.ID, err)
	}
	return nil
}

// List returns all tickets, newest first.
func (r *BulkOrderRepository) List(ctx context.Context) ([]bulkorder.Ticket, error) {
	rows, err := r.pool.Query(ctx, listBulkOrdersSQL)
	if err != nil {
		return nil, fmt.Errorf("listing bulk orders: %w", err)
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (bulkorder.Ticket, error) {
		var (
			t      bulkorder.Ticket
			status string
		)
		err := row.Scan(
			&t.ID, &t.Name, &t.Email, &t.Phone, &t.EventType, &t.Products,
			&t.Location, &t.DeliveryDate, &t.CODRequested, &status, &t.CreatedAt,
		)
		t.Status = bulkorder.Status(status)
		return t, err
	})
}
