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

// PaymentPatternAnalyzer scores payment failure history, unusual
// amounts and payment frequency. Payment actions only.
type PaymentPatternAnalyzer struct {
	payments ports.PaymentRepository
	cfg      config.PaymentHeuristics
	penalty  int
	now      func() time.Time
	log      zerolog.Logger
}

// NewPaymentPatternAnalyzer creates a new PaymentPatternAnalyzer.
func NewPaymentPatternAnalyzer(
	payments ports.PaymentRepository,
	cfg config.FraudConfig,
	log zerolog.Logger,
) *PaymentPatternAnalyzer {
	return &PaymentPatternAnalyzer{
		payments: payments,
		cfg:      cfg.Payment,
		penalty:  cfg.DegradedPenalty,
		now:      time.Now,
		log:      log,
	}
}

func (a *PaymentPatternAnalyzer) Factor() domain.Factor { return domain.FactorPaymentRisk }

// Applies: payment actions by an authenticated user only.
func (a *PaymentPatternAnalyzer) Applies(req *domain.CheckRequest) bool {
	return req.ActionType == domain.ActionPayment && req.UserID != nil
}

func (a *PaymentPatternAnalyzer) Analyze(ctx context.Context, req *domain.CheckRequest) (int, []string) {
	score := 0
	var reasons []string
	now := a.now()

	failed, err := a.payments.FailedCountSince(ctx, *req.UserID, now.Add(-7*24*time.Hour))
	if err != nil {
		a.log.Warn().Err(err).Msg("failed payment lookup failed")
		return a.penalty, []string{degradedReason(a.Factor())}
	}
	if failed > a.cfg.MaxFailedPerWeek {
		score += a.cfg.FailedPenalty
		reasons = append(reasons, fmt.Sprintf("%d failed payments in the last 7 days", failed))
	}

	if amount, ok := req.Metadata.Float("amount"); ok {
		if amount > a.cfg.HighAmount {
			score += a.cfg.HighAmountPenalty
			reasons = append(reasons, "unusually high payment amount")
		}
		avg, err := a.payments.AverageAmount(ctx, *req.UserID)
		if err != nil {
			a.log.Warn().Err(err).Msg("average amount lookup failed")
			score += a.penalty
			reasons = append(reasons, degradedReason(a.Factor()))
		} else if avg > 0 && amount > avg*a.cfg.AvgAmountMultiple {
			score += a.cfg.AvgMultiplePenalty
			reasons = append(reasons, "amount far above user average")
		}
	}

	recent, err := a.payments.CountSince(ctx, *req.UserID, now.Add(-time.Hour))
	if err != nil {
		a.log.Warn().Err(err).Msg("recent payment count lookup failed")
		score += a.penalty
		reasons = append(reasons, degradedReason(a.Factor()))
	} else if recent > a.cfg.MaxPaymentsPerHour {
		score += a.cfg.FrequencyPenalty
		reasons = append(reasons, fmt.Sprintf("%d payments in the last hour", recent))
	}

	return domain.ClampScore(score), reasons
}
