package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/harvesthub/storefront/internal/domain/feedback"
)

const (
	createFeedbackSQL = `INSERT INTO feedback (id, customer_name, email, rating, message, order_ids, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	listFeedbackSQL = `SELECT id, customer_name, email, rating, message, order_ids, status, created_at
		FROM feedback ORDER BY created_at DESC`

	updateFeedbackStatusSQL = `UPDATE feedback SET status = $2 WHERE id = $1`
)

var _ feedback.Repository = (*FeedbackRepository)(nil)

// FeedbackRepository implements feedback.Repository backed by PostgreSQL.
type FeedbackRepository struct {
	pool *pgxpool.Pool
}

// NewFeedbackRepository returns a FeedbackRepository that uses the given pool.
func NewFeedbackRepository(pool *pgxpool.Pool) *FeedbackRepository {
	return &FeedbackRepository{pool: pool}
}

// Create persists a new feedback entry.
func (r *FeedbackRepository) Create(ctx context.Context, f *feedback.Feedback) error {
	_, err := r.pool.Exec(ctx, createFeedbackSQL,
		f.ID, f.CustomerName, f.Email, f.Rating, f.Message, f.OrderIDs,
		string(f.Status), f.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("creating feedback %q: %w", f.ID, err)
	}
	return nil
}

// List returns all feedback entries, newest first.
func (r *FeedbackRepository) List(ctx context.Context) ([]feedback.Feedback, error) {
	rows, err := r.pool.Query(ctx, listFeedbackSQL)
	if err != nil {
		return nil, fmt.Errorf("listing feedback: %w", err)
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (feedback.Feedback, error) {
		var (
			f      feedback.Feedback
			status string
		)
		err := row.Scan(
			&f.ID, &f.CustomerName, &f.Email, &f.Rating, &f.Message,
			&f.OrderIDs, &status, &f.CreatedAt,
		)
		f.Status = feedback.Status(status)
		return f, err
	})
}

// UpdateStatus moves a feedback entry to a new review state.
func (r *FeedbackRepository) UpdateStatus(ctx context.Context, id string, status feedback.Status) error {
	tag, err := r.pool.Exec(ctx, updateFeedbackStatusSQL, id, string(status))
	if err != nil {
		return fmt.Errorf("updating feedback %q: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return feedback.ErrNotFound
	}
	return nil
}
