package postgres

import (
	"context"
	"errors"
	"fmt"

	"trust-engine/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ProfileRepo implements ports.ProfileRepository.
type ProfileRepo struct {
	pool Pool
}

// NewProfileRepo creates a new ProfileRepo.
func NewProfileRepo(pool Pool) *ProfileRepo {
	return &ProfileRepo{pool: pool}
}

// GetByID fetches a user profile by its UUID. Returns nil, nil when the
// user is unknown.
func (r *ProfileRepo) GetByID(ctx context.Context, userID uuid.UUID) (*domain.UserProfile, error) {
	query := `SELECT id, email_verified, phone_verified, created_at
		FROM user_profiles WHERE id = $1`

	p := &domain.UserProfile{}
	err := r.pool.QueryRow(ctx, query, userID).Scan(
		&p.ID, &p.EmailVerified, &p.PhoneVerified, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user profile: %w", err)
	}
	return p, nil
}
