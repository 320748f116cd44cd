package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"trust-engine/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// TrackingRepo implements ports.TrackingRepository over the ip_tracking
// and device_tracking tables.
type TrackingRepo struct {
	pool Pool
}

// NewTrackingRepo creates a new TrackingRepo.
func NewTrackingRepo(pool Pool) *TrackingRepo {
	return &TrackingRepo{pool: pool}
}

// GetIPTracking fetches the tracking row for an IP. Returns nil, nil for
// an unseen IP.
func (r *TrackingRepo) GetIPTracking(ctx context.Context, ip string) (*domain.IPTracking, error) {
	query := `SELECT ip_address, user_ids, last_seen FROM ip_tracking WHERE ip_address = $1`

	t := &domain.IPTracking{}
	err := r.pool.QueryRow(ctx, query, ip).Scan(&t.IPAddress, &t.UserIDs, &t.LastSeen)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get ip tracking: %w", err)
	}
	return t, nil
}

// GetDeviceTracking fetches the tracking row for a device fingerprint.
// Returns nil, nil for an unseen fingerprint.
func (r *TrackingRepo) GetDeviceTracking(ctx context.Context, fingerprint string) (*domain.DeviceTracking, error) {
	query := `SELECT fingerprint, user_ids, last_seen FROM device_tracking WHERE fingerprint = $1`

	t := &domain.DeviceTracking{}
	err := r.pool.QueryRow(ctx, query, fingerprint).Scan(&t.Fingerprint, &t.UserIDs, &t.LastSeen)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get device tracking: %w", err)
	}
	return t, nil
}

// UpsertIP associates a user with an IP and bumps last_seen. The user id
// set only grows; an already-known user is not appended twice.
func (r *TrackingRepo) UpsertIP(ctx context.Context, ip string, userID *uuid.UUID, seenAt time.Time) error {
	query := `INSERT INTO ip_tracking (ip_address, user_ids, last_seen)
		VALUES ($1, CASE WHEN $2::uuid IS NULL THEN '{}'::uuid[] ELSE ARRAY[$2::uuid] END, $3)
		ON CONFLICT (ip_address) DO UPDATE SET
			user_ids = CASE
				WHEN $2::uuid IS NULL OR $2 = ANY(ip_tracking.user_ids) THEN ip_tracking.user_ids
				ELSE array_append(ip_tracking.user_ids, $2)
			END,
			last_seen = $3`

	if _, err := r.pool.Exec(ctx, query, ip, userID, seenAt); err != nil {
		return fmt.Errorf("upsert ip tracking: %w", err)
	}
	return nil
}

// UpsertDevice associates a user with a device fingerprint and bumps
// last_seen.
func (r *TrackingRepo) UpsertDevice(ctx context.Context, fingerprint string, userID *uuid.UUID, seenAt time.Time) error {
	query := `INSERT INTO device_tracking (fingerprint, user_ids, last_seen)
		VALUES ($1, CASE WHEN $2::uuid IS NULL THEN '{}'::uuid[] ELSE ARRAY[$2::uuid] END, $3)
		ON CONFLICT (fingerprint) DO UPDATE SET
			user_ids = CASE
				WHEN $2::uuid IS NULL OR $2 = ANY(device_tracking.user_ids) THEN device_tracking.user_ids
				ELSE array_append(device_tracking.user_ids, $2)
			END,
			last_seen = $3`

	if _, err := r.pool.Exec(ctx, query, fingerprint, userID, seenAt); err != nil {
		return fmt.Errorf("upsert device tracking: %w", err)
	}
	return nil
}
