package service

import (
	"context"
	"fmt"
	"net"
	"time"

	"trust-engine/config"
	"trust-engine/internal/core/domain"
	"trust-engine/internal/core/ports"

	"github.com/rs/zerolog"
)

// IPRiskAnalyzer scores IP sharing across accounts, per-user IP churn
// and address validity.
type IPRiskAnalyzer struct {
	tracking ports.TrackingRepository
	sessions ports.SessionLogRepository
	cfg      config.IPHeuristics
	penalty  int
	now      func() time.Time
	log      zerolog.Logger
}

// NewIPRiskAnalyzer creates a new IPRiskAnalyzer.
func NewIPRiskAnalyzer(
	tracking ports.TrackingRepository,
	sessions ports.SessionLogRepository,
	cfg config.FraudConfig,
	log zerolog.Logger,
) *IPRiskAnalyzer {
	return &IPRiskAnalyzer{
		tracking: tracking,
		sessions: sessions,
		cfg:      cfg.IP,
		penalty:  cfg.DegradedPenalty,
		now:      time.Now,
		log:      log,
	}
}

func (a *IPRiskAnalyzer) Factor() domain.Factor { return domain.FactorIPRisk }

// Applies: requires an IP address.
func (a *IPRiskAnalyzer) Applies(req *domain.CheckRequest) bool {
	return req.IPAddress != ""
}

func (a *IPRiskAnalyzer) Analyze(ctx context.Context, req *domain.CheckRequest) (int, []string) {
	score := 0
	var reasons []string

	ip := net.ParseIP(req.IPAddress)
	if ip == nil {
		// A malformed client IP is a signal too, but no lookups make
		// sense against it.
		return a.cfg.InvalidIPPenalty, []string{"malformed ip address"}
	}
	if ip.IsPrivate() || ip.IsLoopback() || ip.IsUnspecified() {
		score += a.cfg.PrivateIPPenalty
		reasons = append(reasons, "private or reserved ip address")
	}

	tr, err := a.tracking.GetIPTracking(ctx, req.IPAddress)
	if err != nil {
		a.log.Warn().Err(err).Str("ip", req.IPAddress).Msg("ip tracking lookup failed")
		score += a.penalty
		reasons = append(reasons, degradedReason(a.Factor()))
	} else if tr != nil && len(tr.UserIDs) > a.cfg.SharedIPUsers {
		score += a.cfg.SharedIPPenalty
		reasons = append(reasons, fmt.Sprintf("ip shared by %d accounts", len(tr.UserIDs)))
	}

	if req.UserID != nil {
		distinct, err := a.sessions.DistinctIPsByUserSince(ctx, *req.UserID, a.now().Add(-time.Hour))
		if err != nil {
			a.log.Warn().Err(err).Msg("distinct ip lookup failed")
			score += a.penalty
			reasons = append(reasons, degradedReason(a.Factor()))
		} else if distinct > a.cfg.MaxIPsPerHour {
			score += a.cfg.IPChurnPenalty
			reasons = append(reasons, fmt.Sprintf("%d distinct ips in the last hour", distinct))
		}
	}

	return domain.ClampScore(score), reasons
}
