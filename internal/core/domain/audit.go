package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditRecord is the durable copy of one fraud-check decision.
// At most one record exists per session id; the session id is the
// idempotency key for the write.
type AuditRecord struct {
	ID          uuid.UUID   `json:"id"`
	SessionID   uuid.UUID   `json:"session_id"`
	ActionType  ActionType  `json:"action_type"`
	UserID      *uuid.UUID  `json:"user_id,omitempty"`
	IPAddress   string      `json:"ip_address,omitempty"`
	RiskScore   int         `json:"risk_score"`
	Action      Action      `json:"action"`
	RiskFactors RiskFactors `json:"risk_factors"`
	Reasons     []string    `json:"reasons"`
	Metadata    Metadata    `json:"metadata,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
}
