package service

import (
	"math"

	"trust-engine/config"
	"trust-engine/internal/core/domain"
)

// weightedScore combines the six sub-scores into one risk score.
// Rounding is half-up via math.Round; the sum is commutative so
// analyzer completion order never changes the result.
func weightedScore(f domain.RiskFactors, w config.WeightsConfig) int {
	sum := w.UserBehavior*float64(f.UserBehavior) +
		w.DeviceRisk*float64(f.DeviceRisk) +
		w.IPRisk*float64(f.IPRisk) +
		w.PaymentRisk*float64(f.PaymentRisk) +
		w.ContentRisk*float64(f.ContentRisk) +
		w.VelocityRisk*float64(f.VelocityRisk)
	return domain.ClampScore(int(math.Round(sum)))
}

// actionFor maps a risk score to an action, highest threshold first.
func actionFor(score int, t config.ThresholdsConfig) domain.Action {
	switch {
	case score >= t.Block:
		return domain.ActionBlock
	case score >= t.RequireVerify:
		return domain.ActionRequireVerify
	case score >= t.Review:
		return domain.ActionReview
	default:
		return domain.ActionAllow
	}
}

// collectReasons concatenates per-factor reasons in the fixed analyzer
// order and caps the list at MaxReasons.
func collectReasons(byFactor map[domain.Factor][]string) []string {
	var out []string
	for _, f := range domain.FactorOrder {
		for _, r := range byFactor[f] {
			if len(out) == domain.MaxReasons {
				return out
			}
			out = append(out, r)
		}
	}
	return out
}
