package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"trust-engine/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// AuditRepo implements ports.AuditRepository.
type AuditRepo struct {
	pool Pool
}

// NewAuditRepo creates a new AuditRepo.
func NewAuditRepo(pool Pool) *AuditRepo {
	return &AuditRepo{pool: pool}
}

// Create inserts one audit record. Idempotent on session_id: a retried
// insert for the same session is a no-op, not an error.
func (r *AuditRepo) Create(ctx context.Context, rec *domain.AuditRecord) error {
	factors, err := json.Marshal(rec.RiskFactors)
	if err != nil {
		return fmt.Errorf("marshal risk factors: %w", err)
	}
	var metadata []byte
	if rec.Metadata != nil {
		if metadata, err = json.Marshal(rec.Metadata); err != nil {
			return fmt.Errorf("marshal metadata: %w", err)
		}
	}

	query := `INSERT INTO audit_records
		(id, session_id, action_type, user_id, ip_address, risk_score, action, risk_factors, reasons, metadata, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (session_id) DO NOTHING`

	_, err = r.pool.Exec(ctx, query,
		rec.ID, rec.SessionID, string(rec.ActionType), rec.UserID, rec.IPAddress,
		rec.RiskScore, string(rec.Action), factors, rec.Reasons, metadata, rec.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert audit record: %w", err)
	}
	return nil
}

// GetBySessionID fetches the audit record for a session. Returns nil,
// nil when no record exists.
func (r *AuditRepo) GetBySessionID(ctx context.Context, sessionID uuid.UUID) (*domain.AuditRecord, error) {
	query := `SELECT id, session_id, action_type, user_id, ip_address, risk_score, action, risk_factors, reasons, metadata, created_at
		FROM audit_records WHERE session_id = $1`

	rec, err := scanAuditRecord(r.pool.QueryRow(ctx, query, sessionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get audit record: %w", err)
	}
	return rec, nil
}

// ListRecent returns the newest audit records, newest first.
func (r *AuditRepo) ListRecent(ctx context.Context, limit int) ([]domain.AuditRecord, error) {
	query := `SELECT id, session_id, action_type, user_id, ip_address, risk_score, action, risk_factors, reasons, metadata, created_at
		FROM audit_records ORDER BY created_at DESC LIMIT $1`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list audit records: %w", err)
	}
	defer rows.Close()

	var recs []domain.AuditRecord
	for rows.Next() {
		rec, err := scanAuditRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scan audit record: %w", err)
		}
		recs = append(recs, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list audit records: %w", err)
	}
	return recs, nil
}

func scanAuditRecord(row pgx.Row) (*domain.AuditRecord, error) {
	rec := &domain.AuditRecord{}
	var actionType, action string
	var factors, metadata []byte

	err := row.Scan(
		&rec.ID, &rec.SessionID, &actionType, &rec.UserID, &rec.IPAddress,
		&rec.RiskScore, &action, &factors, &rec.Reasons, &metadata, &rec.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	rec.ActionType = domain.ActionType(actionType)
	rec.Action = domain.Action(action)
	if err := json.Unmarshal(factors, &rec.RiskFactors); err != nil {
		return nil, fmt.Errorf("unmarshal risk factors: %w", err)
	}
	if len(metadata) > 0 {
		if err := json.Unmarshal(metadata, &rec.Metadata); err != nil {
			return nil, fmt.Errorf("unmarshal metadata: %w", err)
		}
	}
	return rec, nil
}
