package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// BookingRepo implements ports.BookingRepository.
type BookingRepo struct {
	pool Pool
}

// NewBookingRepo creates a new BookingRepo.
func NewBookingRepo(pool Pool) *BookingRepo {
	return &BookingRepo{pool: pool}
}

// CountSince counts a user's bookings created after the given time.
func (r *BookingRepo) CountSince(ctx context.Context, userID uuid.UUID, since time.Time) (int, error) {
	query := `SELECT COUNT(*) FROM bookings WHERE user_id = $1 AND created_at >= $2`

	var count int
	if err := r.pool.QueryRow(ctx, query, userID, since).Scan(&count); err != nil {
		return 0, fmt.Errorf("count bookings: %w", err)
	}
	return count, nil
}

// CancellationStats returns total and cancelled booking counts in the window.
func (r *BookingRepo) CancellationStats(ctx context.Context, userID uuid.UUID, since time.Time) (int, int, error) {
	query := `SELECT COUNT(*), COUNT(*) FILTER (WHERE status = 'cancelled')
		FROM bookings WHERE user_id = $1 AND created_at >= $2`

	var total, cancelled int
	if err := r.pool.QueryRow(ctx, query, userID, since).Scan(&total, &cancelled); err != nil {
		return 0, 0, fmt.Errorf("cancellation stats: %w", err)
	}
	return total, cancelled, nil
}
