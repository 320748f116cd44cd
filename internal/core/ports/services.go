package ports

import (
	"context"
	"time"

	"trust-engine/internal/core/domain"
)

// --- Service Ports (Business Logic) ---

// FraudCheckService is the entry point of the decision pipeline: it
// validates the request, assigns a session id, fans out the applicable
// analyzers, aggregates their sub-scores and returns the decision.
type FraudCheckService interface {
	Check(ctx context.Context, req *domain.CheckRequest) (*domain.CheckResult, error)
}

// AuditJob carries everything the audit writer persists for one session:
// the audit record plus the request fields needed for tracking upserts.
type AuditJob struct {
	Record            *domain.AuditRecord
	UserAgent         string
	DeviceFingerprint string
}

// AuditWriter is the single write path for audit records, tracking rows,
// session logs and velocity counters. Enqueue must never block the
// request path; Close drains queued jobs.
type AuditWriter interface {
	Enqueue(job AuditJob)
	Close(ctx context.Context) error
}

// ReportingService exposes recent decisions for operational review.
type ReportingService interface {
	RecentDecisions(ctx context.Context, limit int) ([]domain.AuditRecord, error)
}

// TokenService handles JWT service tokens. Callers of this service are
// internal systems (booking, payments, messaging), each identified by a
// caller name claim.
type TokenService interface {
	Generate(caller string) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed JWT claims.
type TokenClaims struct {
	Caller string
}
