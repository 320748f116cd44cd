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

// UserBehaviorAnalyzer scores account-level signals: account age,
// verification status and booking behavior.
type UserBehaviorAnalyzer struct {
	profiles ports.ProfileRepository
	bookings ports.BookingRepository
	cfg      config.BehaviorHeuristics
	penalty  int
	now      func() time.Time
	log      zerolog.Logger
}

// NewUserBehaviorAnalyzer creates a new UserBehaviorAnalyzer.
func NewUserBehaviorAnalyzer(
	profiles ports.ProfileRepository,
	bookings ports.BookingRepository,
	cfg config.FraudConfig,
	log zerolog.Logger,
) *UserBehaviorAnalyzer {
	return &UserBehaviorAnalyzer{
		profiles: profiles,
		bookings: bookings,
		cfg:      cfg.Behavior,
		penalty:  cfg.DegradedPenalty,
		now:      time.Now,
		log:      log,
	}
}

func (a *UserBehaviorAnalyzer) Factor() domain.Factor { return domain.FactorUserBehavior }

// Applies: requires an authenticated user.
func (a *UserBehaviorAnalyzer) Applies(req *domain.CheckRequest) bool {
	return req.UserID != nil
}

func (a *UserBehaviorAnalyzer) Analyze(ctx context.Context, req *domain.CheckRequest) (int, []string) {
	profile, err := a.profiles.GetByID(ctx, *req.UserID)
	if err != nil {
		a.log.Warn().Err(err).Str("user_id", req.UserID.String()).Msg("profile lookup failed")
		return a.penalty, []string{degradedReason(a.Factor())}
	}
	if profile == nil {
		// Unknown user id on an authenticated action is itself suspicious.
		return a.cfg.NewAccountPenalty, []string{"user profile not found"}
	}

	score := 0
	var reasons []string

	// Age penalties do not stack: a brand-new account gets the higher
	// penalty only.
	age := profile.AccountAge(a.now())
	switch {
	case age < a.cfg.NewAccountAge:
		score += a.cfg.NewAccountPenalty
		reasons = append(reasons, "account created less than 24h ago")
	case age < a.cfg.YoungAccountAge:
		score += a.cfg.YoungAccountPenalty
		reasons = append(reasons, "account created less than 7 days ago")
	}

	if !profile.EmailVerified {
		score += a.cfg.EmailUnverified
		reasons = append(reasons, "email not verified")
	}
	if !profile.PhoneVerified {
		score += a.cfg.PhoneUnverified
		reasons = append(reasons, "phone not verified")
	}

	if req.ActionType == domain.ActionBooking {
		bs, br := a.analyzeBookings(ctx, req)
		score += bs
		reasons = append(reasons, br...)
	}

	return domain.ClampScore(score), reasons
}

func (a *UserBehaviorAnalyzer) analyzeBookings(ctx context.Context, req *domain.CheckRequest) (int, []string) {
	score := 0
	var reasons []string
	now := a.now()

	count, err := a.bookings.CountSince(ctx, *req.UserID, now.Add(-24*time.Hour))
	if err != nil {
		a.log.Warn().Err(err).Msg("booking count lookup failed")
		return a.penalty, []string{degradedReason(a.Factor())}
	}
	if count > a.cfg.MaxBookingsPerDay {
		score += a.cfg.ExcessBookingPenalty
		reasons = append(reasons, fmt.Sprintf("%d bookings in the last 24h", count))
	}

	total, cancelled, err := a.bookings.CancellationStats(ctx, *req.UserID, now.Add(-7*24*time.Hour))
	if err != nil {
		a.log.Warn().Err(err).Msg("cancellation stats lookup failed")
		return score + a.penalty, append(reasons, degradedReason(a.Factor()))
	}
	if total > 0 && float64(cancelled)/float64(total) > a.cfg.CancellationRate {
		score += a.cfg.CancellationPenalty
		reasons = append(reasons, "high booking cancellation rate")
	}

	return score, reasons
}
