package postgres

import (
	"context"
	"fmt"
	"time"

	"trust-engine/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// SessionLogRepo implements ports.SessionLogRepository over the
// append-only session_logs table.
type SessionLogRepo struct {
	pool Pool
}

// NewSessionLogRepo creates a new SessionLogRepo.
func NewSessionLogRepo(pool Pool) *SessionLogRepo {
	return &SessionLogRepo{pool: pool}
}

// Append inserts one session row. Idempotent on session_id: replaying a
// session is a no-op.
func (r *SessionLogRepo) Append(ctx context.Context, log *domain.SessionLog) error {
	query := `INSERT INTO session_logs (session_id, user_id, ip_address, user_agent, action_type, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (session_id) DO NOTHING`

	_, err := r.pool.Exec(ctx, query,
		log.SessionID, log.UserID, log.IPAddress, log.UserAgent,
		string(log.ActionType), log.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert session log: %w", err)
	}
	return nil
}

// CountByUserSince counts a user's sessions after the given time.
func (r *SessionLogRepo) CountByUserSince(ctx context.Context, userID uuid.UUID, since time.Time) (int, error) {
	query := `SELECT COUNT(*) FROM session_logs WHERE user_id = $1 AND created_at >= $2`

	var count int
	if err := r.pool.QueryRow(ctx, query, userID, since).Scan(&count); err != nil {
		return 0, fmt.Errorf("count sessions by user: %w", err)
	}
	return count, nil
}

// CountByIPSince counts sessions from an IP after the given time.
func (r *SessionLogRepo) CountByIPSince(ctx context.Context, ip string, since time.Time) (int, error) {
	query := `SELECT COUNT(*) FROM session_logs WHERE ip_address = $1 AND created_at >= $2`

	var count int
	if err := r.pool.QueryRow(ctx, query, ip, since).Scan(&count); err != nil {
		return 0, fmt.Errorf("count sessions by ip: %w", err)
	}
	return count, nil
}

// DistinctIPsByUserSince counts the distinct IPs a user appeared from
// after the given time.
func (r *SessionLogRepo) DistinctIPsByUserSince(ctx context.Context, userID uuid.UUID, since time.Time) (int, error) {
	query := `SELECT COUNT(DISTINCT ip_address) FROM session_logs
		WHERE user_id = $1 AND created_at >= $2 AND ip_address <> ''`

	var count int
	if err := r.pool.QueryRow(ctx, query, userID, since).Scan(&count); err != nil {
		return 0, fmt.Errorf("count distinct ips: %w", err)
	}
	return count, nil
}

// RecentUserAgents returns the user's newest user agents, newest first.
func (r *SessionLogRepo) RecentUserAgents(ctx context.Context, userID uuid.UUID, limit int) ([]string, error) {
	query := `SELECT user_agent FROM session_logs
		WHERE user_id = $1 AND user_agent <> ''
		ORDER BY created_at DESC LIMIT $2`

	rows, err := r.pool.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("recent user agents: %w", err)
	}
	defer rows.Close()

	agents, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("scan user agents: %w", err)
	}
	return agents, nil
}
