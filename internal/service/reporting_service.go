package service

import (
	"context"
	"fmt"

	"trust-engine/internal/core/domain"
	"trust-engine/internal/core/ports"
	"trust-engine/pkg/apperror"

	"github.com/rs/zerolog"
)

// ReportingServiceImpl implements ports.ReportingService.
type ReportingServiceImpl struct {
	audits       ports.AuditRepository
	defaultLimit int
	log          zerolog.Logger
}

// NewReportingService creates a new ReportingServiceImpl.
func NewReportingService(audits ports.AuditRepository, defaultLimit int, log zerolog.Logger) *ReportingServiceImpl {
	return &ReportingServiceImpl{audits: audits, defaultLimit: defaultLimit, log: log}
}

// RecentDecisions returns the newest audit records, newest first.
// A non-positive limit falls back to the configured default.
func (s *ReportingServiceImpl) RecentDecisions(ctx context.Context, limit int) ([]domain.AuditRecord, error) {
	if limit <= 0 || limit > s.defaultLimit {
		limit = s.defaultLimit
	}
	recs, err := s.audits.ListRecent(ctx, limit)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("list recent audits: %w", err))
	}
	return recs, nil
}
