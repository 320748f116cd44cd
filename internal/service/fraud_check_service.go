package service

import (
	"context"
	"time"

	"trust-engine/config"
	"trust-engine/internal/core/domain"
	"trust-engine/internal/core/ports"
	"trust-engine/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Metrics receives pipeline observations. Implemented by the prometheus
// collector; a no-op implementation is fine for tests.
type Metrics interface {
	ObserveDecision(action string, duration time.Duration)
	AnalyzerTimeout(factor string)
	AuditRetry()
	AuditFailure()
}

// FraudCheckServiceImpl implements ports.FraudCheckService.
type FraudCheckServiceImpl struct {
	orch    *orchestrator
	writer  ports.AuditWriter
	weights config.WeightsConfig
	thresh  config.ThresholdsConfig
	metrics Metrics
	now     func() time.Time
	log     zerolog.Logger
}

// NewFraudCheckService wires the analyzers into an orchestrator and
// returns the pipeline entry point.
func NewFraudCheckService(
	analyzers []Analyzer,
	writer ports.AuditWriter,
	cfg config.FraudConfig,
	metrics Metrics,
	log zerolog.Logger,
) *FraudCheckServiceImpl {
	s := &FraudCheckServiceImpl{
		writer:  writer,
		weights: cfg.Weights,
		thresh:  cfg.Thresholds,
		metrics: metrics,
		now:     time.Now,
		log:     log,
	}
	s.orch = &orchestrator{
		analyzers:       analyzers,
		analyzerTimeout: cfg.AnalyzerTimeout,
		overallDeadline: cfg.OverallDeadline,
		penalty:         cfg.DegradedPenalty,
		log:             log,
	}
	if metrics != nil {
		s.orch.onTimeout = metrics.AnalyzerTimeout
	}
	return s
}

// Check runs the full decision pipeline for one request. Requests with
// an unknown action type are rejected before any analyzer runs; a
// cancelled request produces no result and no audit record.
func (s *FraudCheckServiceImpl) Check(ctx context.Context, req *domain.CheckRequest) (*domain.CheckResult, error) {
	if !req.ActionType.Valid() {
		return nil, apperror.ErrUnknownActionType(string(req.ActionType))
	}

	sessionID := uuid.New()
	started := s.now()

	factors, reasonsByFactor, err := s.orch.run(ctx, req)
	if err != nil {
		s.log.Info().Err(err).Str("session_id", sessionID.String()).Msg("check cancelled")
		return nil, apperror.ErrRequestCancelled(err)
	}

	score := weightedScore(factors, s.weights)
	action := actionFor(score, s.thresh)
	result := &domain.CheckResult{
		SessionID:   sessionID,
		RiskScore:   score,
		Action:      action,
		RiskFactors: factors,
		Reasons:     collectReasons(reasonsByFactor),
		EvaluatedAt: s.now(),
	}

	elapsed := s.now().Sub(started)
	if s.metrics != nil {
		s.metrics.ObserveDecision(string(action), elapsed)
	}
	s.log.Info().
		Str("session_id", sessionID.String()).
		Str("action_type", string(req.ActionType)).
		Int("risk_score", score).
		Str("action", string(action)).
		Dur("elapsed", elapsed).
		Msg("fraud check complete")

	s.writer.Enqueue(ports.AuditJob{
		Record: &domain.AuditRecord{
			ID:          uuid.New(),
			SessionID:   sessionID,
			ActionType:  req.ActionType,
			UserID:      req.UserID,
			IPAddress:   req.IPAddress,
			RiskScore:   score,
			Action:      action,
			RiskFactors: factors,
			Reasons:     result.Reasons,
			Metadata:    req.Metadata,
			CreatedAt:   result.EvaluatedAt,
		},
		UserAgent:         req.UserAgent,
		DeviceFingerprint: req.DeviceFingerprint,
	})

	return result, nil
}
