package service

import (
	"context"
	"fmt"
	"time"

	"trust-engine/config"
	"trust-engine/internal/core/domain"
	"trust-engine/internal/core/ports"

	"github.com/rs/zerolog"
)

// VelocityAnalyzer scores action rates per user and per IP over trailing
// windows. The fast path reads redis-backed counters; when the counter
// store is unavailable it falls back to the postgres session log.
type VelocityAnalyzer struct {
	counters ports.VelocityCounter
	sessions ports.SessionLogRepository
	cfg      config.VelocityHeuristics
	penalty  int
	now      func() time.Time
	log      zerolog.Logger
}

// NewVelocityAnalyzer creates a new VelocityAnalyzer.
func NewVelocityAnalyzer(
	counters ports.VelocityCounter,
	sessions ports.SessionLogRepository,
	cfg config.FraudConfig,
	log zerolog.Logger,
) *VelocityAnalyzer {
	return &VelocityAnalyzer{
		counters: counters,
		sessions: sessions,
		cfg:      cfg.Velocity,
		penalty:  cfg.DegradedPenalty,
		now:      time.Now,
		log:      log,
	}
}

func (a *VelocityAnalyzer) Factor() domain.Factor { return domain.FactorVelocityRisk }

// Applies: requires a user id or an IP address.
func (a *VelocityAnalyzer) Applies(req *domain.CheckRequest) bool {
	return req.UserID != nil || req.IPAddress != ""
}

func (a *VelocityAnalyzer) Analyze(ctx context.Context, req *domain.CheckRequest) (int, []string) {
	score := 0
	var reasons []string

	if req.UserID != nil {
		hourly, err := a.userCount(ctx, req, userHourKey(req.UserID.String()), time.Hour)
		if err != nil {
			a.log.Warn().Err(err).Msg("user velocity lookup failed")
			score += a.penalty
			reasons = append(reasons, degradedReason(a.Factor()))
		} else if hourly > int64(a.cfg.MaxUserPerHour) {
			score += a.cfg.UserHourPenalty
			reasons = append(reasons, fmt.Sprintf("%d actions in the last hour", hourly))
		}

		burst, err := a.userCount(ctx, req, userBurstKey(req.UserID.String()), a.cfg.BurstWindow)
		if err != nil {
			a.log.Warn().Err(err).Msg("user burst lookup failed")
			score += a.penalty
			reasons = append(reasons, degradedReason(a.Factor()))
		} else if burst > int64(a.cfg.MaxUserPerBurst) {
			score += a.cfg.BurstPenalty
			reasons = append(reasons, "rapid repeated actions")
		}
	}

	if req.IPAddress != "" {
		hourly, err := a.ipCount(ctx, req.IPAddress)
		if err != nil {
			a.log.Warn().Err(err).Msg("ip velocity lookup failed")
			score += a.penalty
			reasons = append(reasons, degradedReason(a.Factor()))
		} else if hourly > int64(a.cfg.MaxIPPerHour) {
			score += a.cfg.IPHourPenalty
			reasons = append(reasons, fmt.Sprintf("%d actions from ip in the last hour", hourly))
		}
	}

	return domain.ClampScore(score), reasons
}

// userCount reads the redis counter, falling back to a session log count
// over the same window.
func (a *VelocityAnalyzer) userCount(ctx context.Context, req *domain.CheckRequest, key string, window time.Duration) (int64, error) {
	n, err := a.counters.Count(ctx, key, window)
	if err == nil {
		return n, nil
	}
	a.log.Warn().Err(err).Str("key", key).Msg("velocity counter unavailable, using session log")
	c, err := a.sessions.CountByUserSince(ctx, *req.UserID, a.now().Add(-window))
	return int64(c), err
}

func (a *VelocityAnalyzer) ipCount(ctx context.Context, ip string) (int64, error) {
	n, err := a.counters.Count(ctx, ipHourKey(ip), time.Hour)
	if err == nil {
		return n, nil
	}
	a.log.Warn().Err(err).Str("ip", ip).Msg("velocity counter unavailable, using session log")
	c, err := a.sessions.CountByIPSince(ctx, ip, a.now().Add(-time.Hour))
	return int64(c), err
}
