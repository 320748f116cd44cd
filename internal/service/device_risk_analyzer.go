package service

import (
	"context"
	"fmt"
	"strings"

	"trust-engine/config"
	"trust-engine/internal/core/domain"
	"trust-engine/internal/core/ports"

	"github.com/rs/zerolog"
)

var botAgentMarkers = []string{
	"bot", "crawler", "spider", "scraper", "curl", "wget",
	"python-requests", "headless", "phantomjs", "selenium",
}

var mobileAgentMarkers = []string{"mobile", "android", "iphone", "ipad"}

// DeviceRiskAnalyzer scores device fingerprint sharing, bot user agents
// and platform switching across recent sessions. Read-only against the
// tracking and session log stores.
type DeviceRiskAnalyzer struct {
	tracking ports.TrackingRepository
	sessions ports.SessionLogRepository
	cfg      config.DeviceHeuristics
	penalty  int
	log      zerolog.Logger
}

// NewDeviceRiskAnalyzer creates a new DeviceRiskAnalyzer.
func NewDeviceRiskAnalyzer(
	tracking ports.TrackingRepository,
	sessions ports.SessionLogRepository,
	cfg config.FraudConfig,
	log zerolog.Logger,
) *DeviceRiskAnalyzer {
	return &DeviceRiskAnalyzer{
		tracking: tracking,
		sessions: sessions,
		cfg:      cfg.Device,
		penalty:  cfg.DegradedPenalty,
		log:      log,
	}
}

func (a *DeviceRiskAnalyzer) Factor() domain.Factor { return domain.FactorDeviceRisk }

// Applies: requires a device fingerprint or a user agent.
func (a *DeviceRiskAnalyzer) Applies(req *domain.CheckRequest) bool {
	return req.DeviceFingerprint != "" || req.UserAgent != ""
}

func (a *DeviceRiskAnalyzer) Analyze(ctx context.Context, req *domain.CheckRequest) (int, []string) {
	score := 0
	var reasons []string

	if req.DeviceFingerprint != "" {
		dev, err := a.tracking.GetDeviceTracking(ctx, req.DeviceFingerprint)
		if err != nil {
			a.log.Warn().Err(err).Msg("device tracking lookup failed")
			score += a.penalty
			reasons = append(reasons, degradedReason(a.Factor()))
		} else if dev != nil && len(dev.UserIDs) > a.cfg.SharedDeviceUsers {
			score += a.cfg.SharedDevicePenalty
			reasons = append(reasons, fmt.Sprintf("device shared by %d accounts", len(dev.UserIDs)))
		}
	}

	if req.UserAgent != "" {
		if isBotAgent(req.UserAgent) {
			score += a.cfg.BotAgentPenalty
			reasons = append(reasons, "automated user agent detected")
		}
		if req.UserID != nil {
			ps, pr := a.analyzePlatformSwitch(ctx, req)
			score += ps
			reasons = append(reasons, pr...)
		}
	}

	return domain.ClampScore(score), reasons
}

// analyzePlatformSwitch flags a user alternating between mobile and
// desktop user agents across recent sessions.
func (a *DeviceRiskAnalyzer) analyzePlatformSwitch(ctx context.Context, req *domain.CheckRequest) (int, []string) {
	agents, err := a.sessions.RecentUserAgents(ctx, *req.UserID, 10)
	if err != nil {
		a.log.Warn().Err(err).Msg("recent user agents lookup failed")
		return a.penalty, []string{degradedReason(a.Factor())}
	}

	current := isMobileAgent(req.UserAgent)
	for _, ua := range agents {
		if ua != "" && isMobileAgent(ua) != current {
			return a.cfg.PlatformSwitchPenalty, []string{"switching between mobile and desktop"}
		}
	}
	return 0, nil
}

func isBotAgent(ua string) bool {
	lower := strings.ToLower(ua)
	for _, marker := range botAgentMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

func isMobileAgent(ua string) bool {
	lower := strings.ToLower(ua)
	for _, marker := range mobileAgentMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}
