package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// PaymentRepo implements ports.PaymentRepository.
type PaymentRepo struct {
	pool Pool
}

// NewPaymentRepo creates a new PaymentRepo.
func NewPaymentRepo(pool Pool) *PaymentRepo {
	return &PaymentRepo{pool: pool}
}

// FailedCountSince counts a user's failed payments after the given time.
func (r *PaymentRepo) FailedCountSince(ctx context.Context, userID uuid.UUID, since time.Time) (int, error) {
	query := `SELECT COUNT(*) FROM payments
		WHERE user_id = $1 AND status = 'failed' AND created_at >= $2`

	var count int
	if err := r.pool.QueryRow(ctx, query, userID, since).Scan(&count); err != nil {
		return 0, fmt.Errorf("count failed payments: %w", err)
	}
	return count, nil
}

// CountSince counts a user's payments after the given time.
func (r *PaymentRepo) CountSince(ctx context.Context, userID uuid.UUID, since time.Time) (int, error) {
	query := `SELECT COUNT(*) FROM payments WHERE user_id = $1 AND created_at >= $2`

	var count int
	if err := r.pool.QueryRow(ctx, query, userID, since).Scan(&count); err != nil {
		return 0, fmt.Errorf("count payments: %w", err)
	}
	return count, nil
}

// AverageAmount returns the user's mean successful payment amount, or 0
// when there is no history.
func (r *PaymentRepo) AverageAmount(ctx context.Context, userID uuid.UUID) (float64, error) {
	query := `SELECT COALESCE(AVG(amount), 0) FROM payments
		WHERE user_id = $1 AND status = 'succeeded'`

	var avg float64
	if err := r.pool.QueryRow(ctx, query, userID).Scan(&avg); err != nil {
		return 0, fmt.Errorf("average payment amount: %w", err)
	}
	return avg, nil
}
