package domain

import (
	"time"

	"github.com/google/uuid"
)

// Factor identifies one analyzer's contribution to the overall score.
type Factor string

const (
	FactorUserBehavior Factor = "user_behavior"
	FactorDeviceRisk   Factor = "device_risk"
	FactorIPRisk       Factor = "ip_risk"
	FactorPaymentRisk  Factor = "payment_risk"
	FactorContentRisk  Factor = "content_risk"
	FactorVelocityRisk Factor = "velocity_risk"
)

// FactorOrder is the fixed analyzer order used when concatenating reasons.
// It is independent of the completion order of concurrent analyzers.
var FactorOrder = []Factor{
	FactorUserBehavior,
	FactorDeviceRisk,
	FactorIPRisk,
	FactorPaymentRisk,
	FactorContentRisk,
	FactorVelocityRisk,
}

// Action is the enforcement outcome derived from the risk score.
// The caller enforces it; this service only decides.
type Action string

const (
	ActionAllow         Action = "allow"
	ActionReview        Action = "review"
	ActionRequireVerify Action = "require_verification"
	ActionBlock         Action = "block"
)

// RiskFactors holds the six bounded sub-scores, each in [0,100].
// A factor not applicable to the request's action type is 0, never absent.
type RiskFactors struct {
	UserBehavior int `json:"user_behavior"`
	DeviceRisk   int `json:"device_risk"`
	IPRisk       int `json:"ip_risk"`
	PaymentRisk  int `json:"payment_risk"`
	ContentRisk  int `json:"content_risk"`
	VelocityRisk int `json:"velocity_risk"`
}

// Get returns the sub-score for a factor.
func (r RiskFactors) Get(f Factor) int {
	switch f {
	case FactorUserBehavior:
		return r.UserBehavior
	case FactorDeviceRisk:
		return r.DeviceRisk
	case FactorIPRisk:
		return r.IPRisk
	case FactorPaymentRisk:
		return r.PaymentRisk
	case FactorContentRisk:
		return r.ContentRisk
	case FactorVelocityRisk:
		return r.VelocityRisk
	}
	return 0
}

// Set assigns the sub-score for a factor, clamped to [0,100].
func (r *RiskFactors) Set(f Factor, score int) {
	score = ClampScore(score)
	switch f {
	case FactorUserBehavior:
		r.UserBehavior = score
	case FactorDeviceRisk:
		r.DeviceRisk = score
	case FactorIPRisk:
		r.IPRisk = score
	case FactorPaymentRisk:
		r.PaymentRisk = score
	case FactorContentRisk:
		r.ContentRisk = score
	case FactorVelocityRisk:
		r.VelocityRisk = score
	}
}

// ClampScore bounds a score to [0,100].
func ClampScore(s int) int {
	if s < 0 {
		return 0
	}
	if s > 100 {
		return 100
	}
	return s
}

// MaxReasons caps the reasons list on a check result.
const MaxReasons = 10

// CheckResult is the decision returned to the caller for one request.
type CheckResult struct {
	SessionID   uuid.UUID   `json:"session_id"`
	RiskScore   int         `json:"risk_score"`
	Action      Action      `json:"action"`
	RiskFactors RiskFactors `json:"risk_factors"`
	Reasons     []string    `json:"reasons"`
	EvaluatedAt time.Time   `json:"evaluated_at"`
}
