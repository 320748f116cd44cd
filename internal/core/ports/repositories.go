package ports

import (
	"context"
	"time"

	"trust-engine/internal/core/domain"

	"github.com/google/uuid"
)

// The repository interfaces below form the Signal Store Adapter: pure data
// access over historical records, no policy. Analyzers only ever read;
// the audit writer is the single mutation path.

// ProfileRepository reads user account signals.
type ProfileRepository interface {
	// GetByID returns nil, nil when the user is unknown.
	GetByID(ctx context.Context, userID uuid.UUID) (*domain.UserProfile, error)
}

// BookingRepository reads booking history for the behavior analyzer.
type BookingRepository interface {
	CountSince(ctx context.Context, userID uuid.UUID, since time.Time) (int, error)
	// CancellationStats returns total and cancelled bookings in the window.
	CancellationStats(ctx context.Context, userID uuid.UUID, since time.Time) (total, cancelled int, err error)
}

// PaymentRepository reads payment history for the payment pattern analyzer.
type PaymentRepository interface {
	FailedCountSince(ctx context.Context, userID uuid.UUID, since time.Time) (int, error)
	CountSince(ctx context.Context, userID uuid.UUID, since time.Time) (int, error)
	// AverageAmount returns 0 when the user has no payment history.
	AverageAmount(ctx context.Context, userID uuid.UUID) (float64, error)
}

// SessionLogRepository is the append-only session log.
type SessionLogRepository interface {
	Append(ctx context.Context, log *domain.SessionLog) error
	CountByUserSince(ctx context.Context, userID uuid.UUID, since time.Time) (int, error)
	CountByIPSince(ctx context.Context, ip string, since time.Time) (int, error)
	DistinctIPsByUserSince(ctx context.Context, userID uuid.UUID, since time.Time) (int, error)
	// RecentUserAgents returns the newest user agents first, at most limit.
	RecentUserAgents(ctx context.Context, userID uuid.UUID, limit int) ([]string, error)
}

// TrackingRepository reads and upserts IP/device tracking rows.
// Analyzers only call the Get methods; upserts happen once per session
// from the audit writer.
type TrackingRepository interface {
	// GetIPTracking returns nil, nil for an unseen IP.
	GetIPTracking(ctx context.Context, ip string) (*domain.IPTracking, error)
	// GetDeviceTracking returns nil, nil for an unseen fingerprint.
	GetDeviceTracking(ctx context.Context, fingerprint string) (*domain.DeviceTracking, error)
	UpsertIP(ctx context.Context, ip string, userID *uuid.UUID, seenAt time.Time) error
	UpsertDevice(ctx context.Context, fingerprint string, userID *uuid.UUID, seenAt time.Time) error
}

// AuditRepository persists fraud-check decisions.
type AuditRepository interface {
	// Create is idempotent on session id: inserting a record whose
	// session id already exists is a no-op, not an error.
	Create(ctx context.Context, rec *domain.AuditRecord) error
	GetBySessionID(ctx context.Context, sessionID uuid.UUID) (*domain.AuditRecord, error)
	ListRecent(ctx context.Context, limit int) ([]domain.AuditRecord, error)
}

// VelocityCounter is the fast-path action counter consumed by the
// velocity analyzer, backed by fixed time windows in Redis. Counters are
// incremented by the audit writer after a decision is finalized so the
// current request is never counted against itself.
type VelocityCounter interface {
	// Incr bumps the counter for key in the current window and returns
	// the new count.
	Incr(ctx context.Context, key string, window time.Duration) (int64, error)
	// Count returns the counter for key in the current window.
	Count(ctx context.Context, key string, window time.Duration) (int64, error)
}
